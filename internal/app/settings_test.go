package app

import (
	"os"
	"path/filepath"
	"testing"

	"goxviet/internal/charset"
	"goxviet/internal/cli"
	"goxviet/internal/logging"
	"goxviet/internal/types"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadSettingsReadsReferencedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shortcuts.yaml"), "shortcuts:\n  - trigger: ko\n    replacement: không\n")
	writeFile(t, filepath.Join(dir, "words.txt"), "# extra\nbossa\n")
	cfgPath := filepath.Join(dir, "goxviet.ini")
	writeFile(t, cfgPath, "[shortcuts]\nfile = shortcuts.yaml\n[engine]\nenglish_words = words.txt\n")

	st, err := LoadSettings(cli.Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Shortcuts) != 1 || st.Shortcuts[0].Replacement != "không" {
		t.Fatalf("unexpected shortcuts %+v", st.Shortcuts)
	}
	if !st.Guard.IsWord("bossa") {
		t.Fatalf("expected extra word in guard")
	}
	if st.ConfigPath != cfgPath {
		t.Fatalf("expected config path %q, got %q", cfgPath, st.ConfigPath)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	opts := cli.Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.ini"),
		Preset:     "telex-classic",
		Method:     "vni",
		Encoding:   "nfd",
		LogLevel:   "debug",
	}
	st, err := LoadSettings(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := st.Config
	if cfg.Engine.Method != types.MethodVNI || cfg.Engine.ToneStyle != types.ToneTraditional {
		t.Fatalf("overrides not applied: %+v", cfg.Engine)
	}
	if cfg.Encoding != charset.Decomposed || cfg.Log.Level != logging.LevelDebug {
		t.Fatalf("unexpected encoding %v or level %v", cfg.Encoding, cfg.Log.Level)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ini")
	bad := []cli.Options{
		{ConfigPath: missing, Preset: "dvorak"},
		{ConfigPath: missing, Method: "qwerty"},
		{ConfigPath: missing, Encoding: "tcvn3"},
		{ConfigPath: missing, ShortcutsPath: filepath.Join(t.TempDir(), "none.json")},
	}
	for _, opts := range bad {
		if _, err := LoadSettings(opts); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
}
