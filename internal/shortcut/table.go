package shortcut

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/derekparker/trie"

	"goxviet/internal/types"
)

var (
	ErrEmptyTrigger = errors.New("empty trigger")
	ErrDuplicate    = errors.New("trigger already exists")
	ErrNotFound     = errors.New("trigger not found")
	ErrFull         = errors.New("shortcut table is full")
)

// Table maps triggers to expansions. Triggers are keyed case-insensitively.
type Table struct {
	index     *trie.Trie
	count     int
	immediate int
}

func NewTable() *Table {
	return &Table{index: trie.New()}
}

func key(trigger string) string {
	return strings.ToLower(trigger)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxReplacementLen {
		return s
	}
	return string(r[:MaxReplacementLen])
}

// Add inserts a new shortcut. It fails when the trigger is already present.
func (t *Table) Add(s Shortcut) error {
	s.Trigger = strings.TrimSpace(s.Trigger)
	if s.Trigger == "" {
		return ErrEmptyTrigger
	}
	k := key(s.Trigger)
	if _, ok := t.index.Find(k); ok {
		return fmt.Errorf("shortcut %q: %w", s.Trigger, ErrDuplicate)
	}
	if t.count >= MaxShortcuts {
		return fmt.Errorf("shortcut %q: %w", s.Trigger, ErrFull)
	}
	s.Replacement = truncate(s.Replacement)
	t.index.Add(k, s)
	t.count++
	if s.Condition == Immediate {
		t.immediate++
	}
	return nil
}

// Set inserts or replaces a shortcut.
func (t *Table) Set(s Shortcut) error {
	s.Trigger = strings.TrimSpace(s.Trigger)
	if s.Trigger == "" {
		return ErrEmptyTrigger
	}
	k := key(s.Trigger)
	if old, ok := t.Get(k); ok {
		if old.Condition == Immediate {
			t.immediate--
		}
		if s.Condition == Immediate {
			t.immediate++
		}
		s.Replacement = truncate(s.Replacement)
		t.index.Remove(k)
		t.index.Add(k, s)
		return nil
	}
	return t.Add(s)
}

func (t *Table) Remove(trigger string) error {
	k := key(strings.TrimSpace(trigger))
	old, ok := t.Get(k)
	if !ok {
		return fmt.Errorf("shortcut %q: %w", trigger, ErrNotFound)
	}
	t.index.Remove(k)
	t.count--
	if old.Condition == Immediate {
		t.immediate--
	}
	return nil
}

func (t *Table) Clear() {
	t.index = trie.New()
	t.count = 0
	t.immediate = 0
}

func (t *Table) Len() int { return t.count }

// HasImmediate reports whether any shortcut fires without a word boundary.
func (t *Table) HasImmediate() bool { return t.immediate > 0 }

func (t *Table) Get(trigger string) (Shortcut, bool) {
	node, ok := t.index.Find(key(trigger))
	if !ok {
		return Shortcut{}, false
	}
	s, ok := node.Meta().(Shortcut)
	return s, ok
}

// All returns every shortcut sorted by trigger.
func (t *Table) All() []Shortcut {
	keys := t.index.Keys()
	sort.Strings(keys)
	out := make([]Shortcut, 0, len(keys))
	for _, k := range keys {
		if s, ok := t.Get(k); ok {
			out = append(out, s)
		}
	}
	return out
}

// ByLength returns every shortcut, longest trigger first.
func (t *Table) ByLength() []Shortcut {
	out := t.All()
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].Trigger)) > len([]rune(out[j].Trigger))
	})
	return out
}

// WithPrefix lists the shortcuts whose trigger starts with prefix, sorted
// by trigger.
func (t *Table) WithPrefix(prefix string) []Shortcut {
	matches := t.index.PrefixSearch(key(prefix))
	sort.Strings(matches)
	out := make([]Shortcut, 0, len(matches))
	for _, k := range matches {
		if s, ok := t.Get(k); ok {
			out = append(out, s)
		}
	}
	return out
}

// Import adds or replaces every shortcut in list and returns how many were
// stored before an error stopped it.
func (t *Table) Import(list []Shortcut) (int, error) {
	for i, s := range list {
		if err := t.Set(s); err != nil {
			return i, err
		}
	}
	return len(list), nil
}

// Match looks up the typed word. Word-boundary shortcuts only fire when
// atBoundary is set. The returned text has the trigger's case applied.
func (t *Table) Match(typed string, method types.InputMethod, atBoundary bool) (string, bool) {
	if t.count == 0 || typed == "" {
		return "", false
	}
	s, ok := t.Get(typed)
	if !ok || !s.Scope.Allows(method) {
		return "", false
	}
	if s.Case == Exact && s.Trigger != typed {
		return "", false
	}
	if s.Condition == OnWordBoundary && !atBoundary {
		return "", false
	}
	return s.apply(typed), true
}
