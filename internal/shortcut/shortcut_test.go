package shortcut

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxviet/internal/types"
)

func TestTableAddRemove(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(New("btw", "by the way")))
	require.Equal(t, 1, table.Len())

	err := table.Add(New("BTW", "something else"))
	require.True(t, errors.Is(err, ErrDuplicate))

	require.True(t, errors.Is(table.Add(New("  ", "x")), ErrEmptyTrigger))

	require.NoError(t, table.Remove("btw"))
	require.Equal(t, 0, table.Len())
	require.True(t, errors.Is(table.Remove("btw"), ErrNotFound))
}

func TestTableCapacity(t *testing.T) {
	table := NewTable()
	for i := 0; i < MaxShortcuts; i++ {
		require.NoError(t, table.Add(New("k"+strings.Repeat("x", i), "v")))
	}
	err := table.Add(New("overflow", "v"))
	require.True(t, errors.Is(err, ErrFull))
	// replacing an existing trigger still works when full
	require.NoError(t, table.Set(New("k", "updated")))
	s, ok := table.Get("k")
	require.True(t, ok)
	assert.Equal(t, "updated", s.Replacement)
}

func TestReplacementTruncated(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(New("long", strings.Repeat("ă", 300))))
	s, _ := table.Get("long")
	assert.Equal(t, MaxReplacementLen, len([]rune(s.Replacement)))
}

func TestMatchCase(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(New("vn", "Việt Nam")))
	require.NoError(t, table.Add(New("btw", "by the way")))
	require.NoError(t, table.Add(Shortcut{Trigger: "Hn", Replacement: "Hà Nội", Case: Exact}))

	cases := []struct {
		typed string
		want  string
		ok    bool
	}{
		{"btw", "by the way", true},
		{"Btw", "By the way", true},
		{"BTW", "BY THE WAY", true},
		{"vn", "Việt Nam", true},
		{"VN", "VIỆT NAM", true},
		{"Hn", "Hà Nội", true},
		{"hn", "", false},
		{"bt", "", false},
	}
	for _, tc := range cases {
		got, ok := table.Match(tc.typed, types.MethodTelex, true)
		assert.Equal(t, tc.ok, ok, tc.typed)
		assert.Equal(t, tc.want, got, tc.typed)
	}
}

func TestMatchConditionAndScope(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add(Shortcut{Trigger: "->", Replacement: "→", Condition: Immediate}))
	require.NoError(t, table.Add(Shortcut{Trigger: "ko", Replacement: "không", Scope: ScopeVNI}))
	require.NoError(t, table.Add(New("btw", "by the way")))

	_, ok := table.Match("btw", types.MethodTelex, false)
	assert.False(t, ok, "boundary shortcut fired mid-word")

	got, ok := table.Match("->", types.MethodTelex, false)
	assert.True(t, ok)
	assert.Equal(t, "→", got)

	_, ok = table.Match("ko", types.MethodTelex, true)
	assert.False(t, ok)
	got, ok = table.Match("ko", types.MethodVNI, true)
	assert.True(t, ok)
	assert.Equal(t, "không", got)
}

func TestFileRoundTrip(t *testing.T) {
	list := []Shortcut{
		New("btw", "by the way"),
		{Trigger: "vn", Replacement: "Việt Nam", Condition: Immediate, Case: Exact, Scope: ScopeTelex},
	}
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		path := filepath.Join(t.TempDir(), "shortcuts"+ext)
		require.NoError(t, Save(path, list), ext)
		got, err := Load(path)
		require.NoError(t, err, ext)
		assert.Equal(t, list, got, ext)
	}
}

func TestLoadIntoTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, Save(path, []Shortcut{New("a", "1"), New("b", "2")}))
	table := NewTable()
	require.NoError(t, table.Add(New("a", "old")))
	n, err := LoadInto(table, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, table.Len())
	s, _ := table.Get("a")
	assert.Equal(t, "1", s.Replacement)
	assert.Equal(t, []string{"a", "b"}, triggers(table.All()))
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "s.txt"))
	require.Error(t, err)
}

func triggers(list []Shortcut) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Trigger
	}
	return out
}

func TestListings(t *testing.T) {
	table := NewTable()
	_, err := table.Import([]Shortcut{
		New("vn", "Việt Nam"),
		New("vnch", "Việt Nam Cộng hòa"),
		New("hn", "Hà Nội"),
		{Trigger: "tphcm", Replacement: "Thành phố Hồ Chí Minh", Condition: Immediate},
	})
	require.NoError(t, err)
	assert.True(t, table.HasImmediate())

	var triggers []string
	for _, s := range table.ByLength() {
		triggers = append(triggers, s.Trigger)
	}
	assert.Equal(t, []string{"tphcm", "vnch", "hn", "vn"}, triggers)

	triggers = triggers[:0]
	for _, s := range table.WithPrefix("VN") {
		triggers = append(triggers, s.Trigger)
	}
	assert.Equal(t, []string{"vn", "vnch"}, triggers)
	assert.Empty(t, table.WithPrefix("x"))

	require.NoError(t, table.Remove("tphcm"))
	assert.False(t, table.HasImmediate())
}
