package cli

import "testing"

func TestParseValues(t *testing.T) {
	opts, err := Parse([]string{"goxviet", "--config", "a.ini", "--method=vni", "--preset", "telex-free",
		"--shortcuts=s.toml", "--words", "w.txt", "--encoding", "cp1258", "--log-level=debug", "--no-watch", "--socket", "/tmp/g.sock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Options{
		ConfigPath:    "a.ini",
		Method:        "vni",
		Preset:        "telex-free",
		ShortcutsPath: "s.toml",
		WordsPath:     "w.txt",
		Encoding:      "cp1258",
		LogLevel:      "debug",
		NoWatch:       true,
		SocketPath:    "/tmp/g.sock",
		Serve:         true,
	}
	if opts != want {
		t.Fatalf("expected %+v, got %+v", want, opts)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{"goxviet", "-h", "--list-presets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.ShowHelp || !opts.ListPresets {
		t.Fatalf("expected help and list flags, got %+v", opts)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]string{"goxviet", "--config"}); err == nil {
		t.Fatalf("expected missing value error")
	}
	if _, err := Parse([]string{"goxviet", "--device", "/dev/input/event0"}); err == nil {
		t.Fatalf("expected unknown option error")
	}
	if _, err := Parse([]string{"goxviet", "--configs=x"}); err == nil {
		t.Fatalf("expected unknown option error for a longer name")
	}
}
