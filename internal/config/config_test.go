package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"goxviet/internal/keys"
	"goxviet/internal/types"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	if cfg.Method != types.MethodTelex {
		t.Fatalf("expected telex by default, got %v", cfg.Method)
	}
	if cfg.ToneStyle != types.ToneModern {
		t.Fatalf("expected modern tone style, got %v", cfg.ToneStyle)
	}
	if !cfg.SmartMode || !cfg.InstantRestore || !cfg.ShortcutsEnabled {
		t.Fatalf("expected smart mode, instant restore and shortcuts on: %+v", cfg)
	}
	if cfg.EscRestore || cfg.FreeTone || cfg.SkipWShortcut {
		t.Fatalf("expected esc restore, free tone and skip-w off: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.SmartMode = false
	err := cfg.Validate()
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	cfg = DefaultEngineConfig()
	cfg.Method = types.InputMethod(7)
	if cfg.Validate() == nil {
		t.Fatalf("expected invalid method to fail")
	}
}

func TestPresets(t *testing.T) {
	vni, err := Preset("VNI")
	if err != nil {
		t.Fatalf("preset vni: %v", err)
	}
	if vni.Method != types.MethodVNI {
		t.Fatalf("expected vni method, got %v", vni.Method)
	}
	for _, name := range PresetNames() {
		cfg, _ := Preset(name)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset %s invalid: %v", name, err)
		}
	}
	if _, err := Preset("dvorak"); err == nil {
		t.Fatalf("expected unknown preset to fail")
	}
}

func TestParseToggle(t *testing.T) {
	cases := []struct {
		in   string
		want Toggle
	}{
		{"ctrl+space", Toggle{Key: keys.KeySpace, Ctrl: true}},
		{"Control+Z", Toggle{Key: keys.KeyZ, Ctrl: true}},
		{"key_grave", Toggle{Key: keys.KeyGrave}},
		{"7", Toggle{Key: keys.Key7}},
		{"0", Toggle{Key: keys.Key0}},
		{"escape", Toggle{Key: keys.KeyEsc}},
	}
	for _, tc := range cases {
		got, err := ParseToggle(tc.in)
		if err != nil {
			t.Fatalf("ParseToggle(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseToggle(%q): expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
	for _, bad := range []string{"", "shift+space", "ctrl+", "hyper", "alt+z", "meta+space", "super+x"} {
		if _, err := ParseToggle(bad); err == nil {
			t.Fatalf("expected ParseToggle(%q) to fail", bad)
		}
	}
	if DefaultToggle().Matches(keys.Keystroke{Code: keys.KeySpace}) {
		t.Fatalf("default toggle should not match a bare space")
	}
	if !DefaultToggle().Matches(keys.Keystroke{Code: keys.KeySpace, Ctrl: true}) {
		t.Fatalf("default toggle should match ctrl+space")
	}
}

func TestParseShortcutSource(t *testing.T) {
	if src, err := ParseShortcutSource("RAW"); err != nil || src != SourceRaw {
		t.Fatalf("expected raw, got %v (%v)", src, err)
	}
	if _, err := ParseShortcutSource("both"); err == nil {
		t.Fatalf("expected unknown source to fail")
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goxviet.ini")
	if err := os.WriteFile(path, []byte("[engine]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.ini"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(path, []byte("[engine]\nmethod = vni\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-w.Changes():
	case err := <-w.Errors():
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a change notification")
	}
}
