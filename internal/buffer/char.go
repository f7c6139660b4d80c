package buffer

import "goxviet/internal/vn"

// Char is one composed slot of the composition buffer.
type Char struct {
	Base   rune
	Tone   vn.Tone
	Mark   vn.Mark
	Stroke bool
	Upper  bool
}

func (c Char) IsVowel() bool { return vn.IsVowel(c.Base) }

func (c Char) IsLetter() bool { return c.Base >= 'a' && c.Base <= 'z' }

// Plain reports whether the char carries no diacritic at all.
func (c Char) Plain() bool {
	return c.Tone == vn.ToneNone && c.Mark == vn.MarkNone && !c.Stroke
}

func (c Char) Rune() rune {
	return vn.Compose(vn.Letter{Base: c.Base, Mark: c.Mark, Tone: c.Tone, Stroke: c.Stroke, Upper: c.Upper})
}

// FromRune converts a composed rune back into a buffer char.
func FromRune(r rune) (Char, bool) {
	l, ok := vn.Decompose(r)
	if !ok {
		return Char{}, false
	}
	return Char{Base: l.Base, Tone: l.Tone, Mark: l.Mark, Stroke: l.Stroke, Upper: l.Upper}, true
}
