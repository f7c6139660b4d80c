package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "github.com/go-ini/ini"

	"goxviet/internal/charset"
	engineconfig "goxviet/internal/config"
	"goxviet/internal/logging"
	"goxviet/internal/types"
)

// Config is everything a goxviet host reads from its INI file.
type Config struct {
	Preset        string
	Engine        engineconfig.EngineConfig
	Toggle        engineconfig.Toggle
	ShortcutsFile string
	WordsFile     string
	Encoding      charset.Encoding
	Log           logging.Config
}

const defaultPreset = "telex"

func Default() Config {
	return Config{
		Preset:   defaultPreset,
		Engine:   engineconfig.DefaultEngineConfig(),
		Toggle:   engineconfig.DefaultToggle(),
		Encoding: charset.Unicode,
		Log:      logging.DefaultConfig(),
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := apply(&cfg, file, filepath.Dir(path)); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads INI text. Relative file paths stay relative.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	file, err := ini.Load(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := apply(&cfg, file, ""); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func apply(cfg *Config, file *ini.File, dir string) error {
	eng := file.Section("engine")
	if name := eng.Key("preset").MustString(""); name != "" {
		preset, err := engineconfig.Preset(name)
		if err != nil {
			return err
		}
		cfg.Preset = name
		cfg.Engine = preset
	}
	if eng.HasKey("method") {
		m, err := types.ParseInputMethod(eng.Key("method").String())
		if err != nil {
			return err
		}
		cfg.Engine.Method = m
	}
	if eng.HasKey("tone_style") {
		s, err := types.ParseToneStyle(eng.Key("tone_style").String())
		if err != nil {
			return err
		}
		cfg.Engine.ToneStyle = s
	}
	bools := []struct {
		section *ini.Section
		name    string
		dst     *bool
	}{
		{eng, "smart_mode", &cfg.Engine.SmartMode},
		{eng, "instant_restore", &cfg.Engine.InstantRestore},
		{eng, "esc_restore", &cfg.Engine.EscRestore},
		{eng, "free_tone", &cfg.Engine.FreeTone},
		{file.Section("shortcuts"), "enabled", &cfg.Engine.ShortcutsEnabled},
		{file.Section("shortcuts"), "skip_w", &cfg.Engine.SkipWShortcut},
	}
	for _, b := range bools {
		if err := readBool(b.section, b.name, b.dst); err != nil {
			return err
		}
	}
	// smart_mode = false without an explicit instant_restore turns both off.
	if !cfg.Engine.SmartMode && !eng.HasKey("instant_restore") {
		cfg.Engine.InstantRestore = false
	}
	cfg.WordsFile = resolve(dir, eng.Key("english_words").MustString(""))

	sc := file.Section("shortcuts")
	if sc.HasKey("source") {
		src, err := engineconfig.ParseShortcutSource(sc.Key("source").String())
		if err != nil {
			return err
		}
		cfg.Engine.ShortcutSource = src
	}
	cfg.ShortcutsFile = resolve(dir, sc.Key("file").MustString(""))

	if out := file.Section("output"); out.HasKey("encoding") {
		enc, err := charset.ParseEncoding(out.Key("encoding").String())
		if err != nil {
			return err
		}
		cfg.Encoding = enc
	}

	logSec := file.Section("log")
	if logSec.HasKey("level") {
		level, err := logging.ParseLevel(logSec.Key("level").String())
		if err != nil {
			return err
		}
		cfg.Log.Level = level
	}
	if logSec.HasKey("format") {
		format, err := logging.ParseFormat(logSec.Key("format").String())
		if err != nil {
			return err
		}
		cfg.Log.Format = format
	}
	cfg.Log.Output = logSec.Key("output").MustString(cfg.Log.Output)

	if key := file.Section("toggle").Key("key").MustString(""); key != "" {
		toggle, err := engineconfig.ParseToggle(key)
		if err != nil {
			return err
		}
		cfg.Toggle = toggle
	}

	return cfg.Engine.Validate()
}

func readBool(section *ini.Section, name string, dst *bool) error {
	if !section.HasKey(name) {
		return nil
	}
	v, err := section.Key(name).Bool()
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", section.Name(), name, err)
	}
	*dst = v
	return nil
}

func resolve(dir, path string) string {
	if path == "" || dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
