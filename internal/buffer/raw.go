package buffer

// RawKey is a literal keystroke: the lower-case key and whether it was typed
// in upper case.
type RawKey struct {
	Key   rune
	Upper bool
}

func (k RawKey) Rune() rune {
	if k.Upper && k.Key >= 'a' && k.Key <= 'z' {
		return k.Key - 'a' + 'A'
	}
	return k.Key
}

// Raw mirrors every keystroke since the last word boundary. When full, the
// oldest key is dropped.
type Raw struct {
	keys [Capacity]RawKey
	n    int
}

func (r *Raw) Len() int { return r.n }

func (r *Raw) Push(key rune, upper bool) {
	if r.n == Capacity {
		copy(r.keys[:], r.keys[1:])
		r.n--
	}
	r.keys[r.n] = RawKey{Key: key, Upper: upper}
	r.n++
}

func (r *Raw) Pop() (RawKey, bool) {
	if r.n == 0 {
		return RawKey{}, false
	}
	r.n--
	return r.keys[r.n], true
}

func (r *Raw) Clear() { r.n = 0 }

func (r *Raw) At(i int) RawKey { return r.keys[i] }

func (r *Raw) Keys() []RawKey { return r.keys[:r.n] }

// AppendRunes renders the literal keystrokes into dst.
func (r *Raw) AppendRunes(dst []rune) []rune {
	for i := 0; i < r.n; i++ {
		dst = append(dst, r.keys[i].Rune())
	}
	return dst
}

// AppendLower writes the keys in lower case, for dictionary lookups.
func (r *Raw) AppendLower(dst []byte) []byte {
	for i := 0; i < r.n; i++ {
		dst = append(dst, byte(r.keys[i].Key))
	}
	return dst
}

func (r *Raw) String() string {
	out := make([]rune, 0, r.n)
	return string(r.AppendRunes(out))
}
