package english

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGuardLookup(t *testing.T) {
	g := DefaultGuard()

	cases := []struct {
		raw  string
		want Match
	}{
		{"nurses", WordMatch},
		{"nurs", PrefixMatch},
		{"nur", NoMatch},
		{"miss", WordMatch},
		{"seas", PrefixMatch},
		{"mas", NoMatch},
		{"viet", NoMatch},
		{"", NoMatch},
		{"businessmen", NoMatch},
	}
	for _, tc := range cases {
		if got := g.Lookup(tc.raw); got != tc.want {
			t.Fatalf("lookup %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestGuardAddIgnoresDuplicates(t *testing.T) {
	g := NewGuard("Mason", "mason ", "")
	if g.Len() != 1 {
		t.Fatalf("expected 1 word, got %d", g.Len())
	}
	if g.MaxLen() != 5 {
		t.Fatalf("expected max length 5, got %d", g.MaxLen())
	}
	if !g.IsWord("mason") {
		t.Fatalf("expected mason to be guarded")
	}
}

func TestDefaultWordsDoNotCollideWithShortPrefixes(t *testing.T) {
	g := DefaultGuard()
	for _, raw := range []string{"as", "mas", "vie", "tie", "dd", "tes"} {
		if g.Lookup(raw) != NoMatch {
			t.Fatalf("expected %q to stay free for Vietnamese typing", raw)
		}
	}
}

func TestLoadWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "# extra words\nGopher\n\n; comment\nrustacean\tcrab\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "gopher" || words[1] != "rustacean" {
		t.Fatalf("unexpected words %v", words)
	}
	if _, err := LoadWords(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
