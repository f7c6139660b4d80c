package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp      bool
	ListPresets   bool
	ConfigPath    string
	Preset        string
	Method        string
	ShortcutsPath string
	WordsPath     string
	Encoding      string
	LogLevel      string
	SocketPath    string
	Serve         bool
	NoWatch       bool
}

func Parse(args []string) (Options, error) {
	opts := Options{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-presets":
			opts.ListPresets = true
		case arg == "--no-watch":
			opts.NoWatch = true
		case arg == "--serve":
			opts.Serve = true
		case hasOption(arg, "--socket"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.SocketPath = value
			opts.Serve = true
			i = next
		case hasOption(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case hasOption(arg, "--preset"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Preset = value
			i = next
		case hasOption(arg, "--method"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Method = value
			i = next
		case hasOption(arg, "--shortcuts"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ShortcutsPath = value
			i = next
		case hasOption(arg, "--words"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.WordsPath = value
			i = next
		case hasOption(arg, "--encoding"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Encoding = value
			i = next
		case hasOption(arg, "--log-level"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LogLevel = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func hasOption(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `goxviet - Vietnamese Telex/VNI input for the terminal
Usage: goxviet [options]

Options:
  --config PATH           INI configuration file (default: ./goxviet.ini if present)
  --preset NAME           Engine preset (telex, vni, telex-classic, telex-plain, telex-free)
  --method NAME           Input method: telex or vni (overrides the preset)
  --shortcuts PATH        Shortcut file (.json, .toml, .yaml)
  --words PATH            Extra English words, one per line
  --encoding NAME         Output encoding: unicode, nfd or cp1258
  --log-level LEVEL       debug, info, warn or error
  --serve                 Serve line conversions on the default unix socket
  --socket PATH           Serve line conversions on PATH (implies --serve)
  --no-watch              Do not reload the configuration file when it changes
  --list-presets          List available presets
  -h, --help              Show this help message

Keys:
  ctrl+space              Switch Vietnamese input on and off (see [toggle] key)
  ctrl+c                  Quit`
}
