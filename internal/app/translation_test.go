package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"goxviet/internal/config"
	"goxviet/internal/english"
	"goxviet/internal/shortcut"
	"goxviet/internal/types"
)

func TestTranslatorLine(t *testing.T) {
	tr := NewTranslator(config.DefaultEngineConfig(), english.DefaultGuard(), []shortcut.Shortcut{shortcut.New("ko", "không")})
	tests := map[string]string{
		"Tieengs Vieetj":     "Tiếng Việt",
		"ko sao":             "không sao",
		"tooi ko":            "tôi không",
		"the mason ook":      "the mason ook",
		"":                   "",
		"chaof, banj khoer?": "chào, bạn khoẻ?",
	}
	for in, want := range tests {
		if got := tr.Translate(in); got != want {
			t.Fatalf("translate %q: expected %q, got %q", in, want, got)
		}
	}
}

func TestTranslatorUpdate(t *testing.T) {
	tr := NewTranslator(config.DefaultEngineConfig(), english.DefaultGuard(), nil)
	cfg := config.DefaultEngineConfig()
	cfg.Method = types.MethodVNI
	tr.Update(cfg, english.DefaultGuard(), nil)
	if got := tr.Translate("Vie65t"); got != "Việt" {
		t.Fatalf("expected VNI conversion, got %q", got)
	}
}

func TestTranslationServerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goxviet.sock")
	tr := NewTranslator(config.DefaultEngineConfig(), english.DefaultGuard(), nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := StartTranslationServer(path, tr, log)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	defer srv.Close()

	got, err := TranslateViaSocket(path, "xin chaof")
	if err != nil {
		t.Fatalf("translate via socket: %v", err)
	}
	if got != "xin chào" {
		t.Fatalf("unexpected response %q", got)
	}
}

func TestStartTranslationServerWithoutPath(t *testing.T) {
	srv, err := StartTranslationServer("", nil, nil)
	if err != nil || srv != nil {
		t.Fatalf("expected no server, got %v %v", srv, err)
	}
	srv.Close()
	if srv.Err() != nil {
		t.Fatalf("expected nil error channel")
	}
}
