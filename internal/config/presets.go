package config

import (
	"fmt"
	"sort"
	"strings"

	"goxviet/internal/types"
)

// Presets are named starting points for an EngineConfig.
func Presets() map[string]EngineConfig {
	telex := DefaultEngineConfig()

	vni := DefaultEngineConfig()
	vni.Method = types.MethodVNI

	classic := DefaultEngineConfig()
	classic.ToneStyle = types.ToneTraditional

	plain := DefaultEngineConfig()
	plain.SmartMode = false
	plain.InstantRestore = false
	plain.ShortcutsEnabled = false

	free := DefaultEngineConfig()
	free.FreeTone = true

	return map[string]EngineConfig{
		"telex":         telex,
		"vni":           vni,
		"telex-classic": classic,
		"telex-plain":   plain,
		"telex-free":    free,
	}
}

func PresetNames() []string {
	presets := Presets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Preset(name string) (EngineConfig, error) {
	cfg, ok := Presets()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return EngineConfig{}, ConfigError{msg: fmt.Sprintf("unknown preset '%s' (available: %s)", name, strings.Join(PresetNames(), ", "))}
	}
	return cfg, nil
}
