package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxviet/internal/vn"
)

func TestCompositionPushPop(t *testing.T) {
	var b Composition
	require.True(t, b.Empty())

	require.True(t, b.Push(Char{Base: 'd', Stroke: true}))
	require.True(t, b.Push(Char{Base: 'a', Tone: vn.ToneGrave}))
	assert.Equal(t, "đà", b.String())
	assert.True(t, b.HasTransforms())

	c, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, 'à', c.Rune())
	assert.Equal(t, 1, b.Len())

	b.Clear()
	_, ok = b.Pop()
	assert.False(t, ok)
}

func TestCompositionRejectsOverflow(t *testing.T) {
	var b Composition
	for i := 0; i < Capacity; i++ {
		require.True(t, b.Push(Char{Base: 'a'}))
	}
	assert.True(t, b.Full())
	assert.False(t, b.Push(Char{Base: 'b'}))
	assert.Equal(t, Capacity, b.Len())
}

func TestCompositionAppendRunesFrom(t *testing.T) {
	var b Composition
	for _, r := range "được" {
		c, ok := FromRune(r)
		require.True(t, ok)
		b.Push(c)
	}
	assert.Equal(t, "ợc", string(b.AppendRunes(nil, 2)))
}

func TestRawShiftsOnOverflow(t *testing.T) {
	var r Raw
	for i := 0; i < Capacity; i++ {
		r.Push('a', false)
	}
	r.Push('b', true)
	assert.Equal(t, Capacity, r.Len())
	assert.Equal(t, RawKey{Key: 'b', Upper: true}, r.At(Capacity-1))
	assert.Equal(t, 'B', r.At(Capacity-1).Rune())
}

func TestRawRendering(t *testing.T) {
	var r Raw
	for _, k := range []RawKey{{'v', true}, {'i', false}, {'e', false}, {'e', false}, {'t', false}, {'s', false}} {
		r.Push(k.Key, k.Upper)
	}
	assert.Equal(t, "Vieets", r.String())
	assert.Equal(t, "vieets", string(r.AppendLower(nil)))

	last, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, 's', last.Key)
}
