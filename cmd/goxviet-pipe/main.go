package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"goxviet/internal/app"
	"goxviet/internal/charset"
	"goxviet/internal/cli"
	"goxviet/internal/common"
	"goxviet/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "goxviet-pipe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "INI configuration file (default: ./goxviet.ini if present)")
	preset := flag.String("preset", "", fmt.Sprintf("engine preset (%s)", strings.Join(config.PresetNames(), ", ")))
	method := flag.String("method", "", "input method: telex or vni")
	shortcuts := flag.String("shortcuts", "", "shortcut file (.json, .toml, .yaml)")
	encoding := flag.String("encoding", "", "output encoding: unicode, nfd or cp1258")
	socketPath := flag.String("socket", common.DefaultSocketPath(), "unix socket of a running goxviet session")
	remote := flag.Bool("remote", false, "convert through a running goxviet session")
	flag.Parse()

	st, err := app.LoadSettings(cli.Options{
		ConfigPath:    *configPath,
		Preset:        *preset,
		Method:        *method,
		ShortcutsPath: *shortcuts,
		Encoding:      *encoding,
	})
	if err != nil {
		return err
	}
	translator := app.NewTranslator(st.Config.Engine, st.Guard, st.Shortcuts)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := charset.NewWriter(os.Stdout, st.Config.Encoding)
	defer writer.Close()
	out := bufio.NewWriter(writer)
	defer out.Flush()

	localOnly := !*remote
	warned := false

	for scanner.Scan() {
		line := scanner.Text()
		var converted string
		if !localOnly {
			converted, err = app.TranslateViaSocket(*socketPath, line)
			if err != nil {
				if !warned {
					fmt.Fprintf(os.Stderr, "goxviet-pipe: falling back to local conversion: %v\n", err)
					warned = true
				}
				localOnly = true
			}
		}
		if localOnly {
			converted = translator.Translate(line)
		}
		if _, err := out.WriteString(converted); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}
