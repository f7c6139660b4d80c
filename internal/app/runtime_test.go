package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"goxviet/internal/charset"
	"goxviet/internal/cli"
	"goxviet/internal/emitter"
)

func TestReloadSwapsWordList(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	writeFile(t, words, "bossa\n")
	cfgPath := filepath.Join(dir, "goxviet.ini")
	writeFile(t, cfgPath, "[engine]\nenglish_words = words.txt\n")

	rt := NewRuntime(cli.Options{ConfigPath: cfgPath})
	rt.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := rt.prepareSettings(); err != nil {
		t.Fatalf("settings: %v", err)
	}
	if err := rt.buildComposer(); err != nil {
		t.Fatalf("composer: %v", err)
	}
	rt.terminal = emitter.NewTerminal(io.Discard, charset.Unicode)
	rt.session = NewSession(rt.composer, rt.terminal, rt.settings.Config.Toggle, rt.log)

	if got := rt.composer.TypeString("tas"); got != "tá" {
		t.Fatalf("expected tá before reload, got %q", got)
	}
	rt.composer.Reset()

	writeFile(t, words, "bossa\ntas\n")
	rt.reload()
	if !rt.composer.Guard().IsWord("tas") {
		t.Fatalf("expected reloaded word list in the session composer")
	}
	if got := rt.composer.TypeString("tas"); got != "tas" {
		t.Fatalf("expected tas after reload, got %q", got)
	}
	if got := rt.translator.Translate("tas"); got != "tas" {
		t.Fatalf("expected translator to use the reloaded list, got %q", got)
	}
}
