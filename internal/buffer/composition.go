package buffer

const Capacity = 64

// Composition holds the chars typed since the last word boundary.
type Composition struct {
	chars [Capacity]Char
	n     int
}

func (b *Composition) Len() int { return b.n }

func (b *Composition) Empty() bool { return b.n == 0 }

func (b *Composition) Full() bool { return b.n == Capacity }

func (b *Composition) Push(c Char) bool {
	if b.n == Capacity {
		return false
	}
	b.chars[b.n] = c
	b.n++
	return true
}

func (b *Composition) Pop() (Char, bool) {
	if b.n == 0 {
		return Char{}, false
	}
	b.n--
	return b.chars[b.n], true
}

func (b *Composition) Clear() { b.n = 0 }

func (b *Composition) At(i int) Char { return b.chars[i] }

// Ref returns a pointer to the char at i for in-place edits.
func (b *Composition) Ref(i int) *Char { return &b.chars[i] }

func (b *Composition) Last() (Char, bool) {
	if b.n == 0 {
		return Char{}, false
	}
	return b.chars[b.n-1], true
}

// Chars exposes the live chars without copying.
func (b *Composition) Chars() []Char { return b.chars[:b.n] }

// HasTransforms reports whether any char carries a tone, mark or stroke.
func (b *Composition) HasTransforms() bool {
	for i := 0; i < b.n; i++ {
		if !b.chars[i].Plain() {
			return true
		}
	}
	return false
}

// AppendRunes renders chars[from:] into dst.
func (b *Composition) AppendRunes(dst []rune, from int) []rune {
	for i := from; i < b.n; i++ {
		dst = append(dst, b.chars[i].Rune())
	}
	return dst
}

func (b *Composition) String() string {
	out := make([]rune, 0, b.n)
	return string(b.AppendRunes(out, 0))
}
