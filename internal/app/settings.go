package app

import (
	"fmt"
	"strings"

	"goxviet/internal/charset"
	"goxviet/internal/cli"
	"goxviet/internal/common"
	engineconfig "goxviet/internal/config"
	"goxviet/internal/english"
	"goxviet/internal/logging"
	"goxviet/internal/shortcut"
	"goxviet/internal/types"
	pkgconfig "goxviet/pkg/config"
)

// Settings is the resolved host configuration: the INI file with command
// line overrides applied, plus the files it points at.
type Settings struct {
	ConfigPath string
	Config     pkgconfig.Config
	Shortcuts  []shortcut.Shortcut
	Guard      *english.Guard
}

func LoadSettings(opts cli.Options) (Settings, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = common.DefaultConfigPath()
	}
	cfg, err := pkgconfig.Load(path)
	if err != nil {
		return Settings{}, err
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return Settings{}, err
	}

	st := Settings{ConfigPath: path, Config: cfg, Guard: english.DefaultGuard()}
	if cfg.ShortcutsFile != "" {
		list, err := shortcut.Load(cfg.ShortcutsFile)
		if err != nil {
			return Settings{}, err
		}
		st.Shortcuts = list
	}
	if cfg.WordsFile != "" {
		words, err := english.LoadWords(cfg.WordsFile)
		if err != nil {
			return Settings{}, err
		}
		for _, w := range words {
			st.Guard.Add(w)
		}
	}
	return st, nil
}

func applyOverrides(cfg *pkgconfig.Config, opts cli.Options) error {
	if name := strings.TrimSpace(opts.Preset); name != "" {
		preset, err := engineconfig.Preset(name)
		if err != nil {
			return err
		}
		cfg.Preset = name
		cfg.Engine = preset
	}
	if opts.Method != "" {
		m, err := types.ParseInputMethod(opts.Method)
		if err != nil {
			return err
		}
		cfg.Engine.Method = m
	}
	if opts.Encoding != "" {
		enc, err := charset.ParseEncoding(opts.Encoding)
		if err != nil {
			return err
		}
		cfg.Encoding = enc
	}
	if opts.LogLevel != "" {
		level, err := logging.ParseLevel(opts.LogLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = level
	}
	if opts.ShortcutsPath != "" {
		cfg.ShortcutsFile = opts.ShortcutsPath
	}
	if opts.WordsPath != "" {
		cfg.WordsFile = opts.WordsPath
	}
	if err := cfg.Engine.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
