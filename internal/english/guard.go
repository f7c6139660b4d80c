package english

import (
	"strings"

	"github.com/derekparker/trie"
)

// MinPrefix is the shortest raw sequence that may match as a prefix.
// Shorter prefixes collide with common Vietnamese keystrokes (mas -> má).
const MinPrefix = 4

type Match int

const (
	NoMatch Match = iota
	PrefixMatch
	WordMatch
)

func (m Match) String() string {
	switch m {
	case NoMatch:
		return "none"
	case PrefixMatch:
		return "prefix"
	case WordMatch:
		return "word"
	default:
		return "unknown"
	}
}

// Guard recognises English words whose letters double as Telex or VNI
// modifier keys.
type Guard struct {
	words  *trie.Trie
	count  int
	maxLen int
}

func NewGuard(words ...string) *Guard {
	g := &Guard{words: trie.New()}
	for _, w := range words {
		g.Add(w)
	}
	return g
}

// DefaultGuard returns a guard loaded with the built-in word list.
func DefaultGuard() *Guard {
	return NewGuard(defaultWords...)
}

func (g *Guard) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	if _, ok := g.words.Find(word); ok {
		return
	}
	g.words.Add(word, nil)
	g.count++
	if len(word) > g.maxLen {
		g.maxLen = len(word)
	}
}

func (g *Guard) Len() int { return g.count }

// MaxLen is the length of the longest guarded word. Raw input longer than
// this can never match.
func (g *Guard) MaxLen() int { return g.maxLen }

// Lookup matches a lower-case raw key sequence against the word list.
func (g *Guard) Lookup(raw string) Match {
	if g == nil || raw == "" || len(raw) > g.maxLen {
		return NoMatch
	}
	if _, ok := g.words.Find(raw); ok {
		return WordMatch
	}
	if len(raw) >= MinPrefix && g.words.HasKeysWithPrefix(raw) {
		return PrefixMatch
	}
	return NoMatch
}

// IsWord reports an exact match only.
func (g *Guard) IsWord(raw string) bool {
	return g.Lookup(raw) == WordMatch
}
