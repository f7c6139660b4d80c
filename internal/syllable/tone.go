package syllable

import (
	"goxviet/internal/buffer"
	"goxviet/internal/types"
	"goxviet/internal/vn"
)

// Nucleus locates the last vowel group of chars, leaving out the u of "qu"
// and the i of "gi" when another vowel follows. hasFinal reports whether a
// consonant follows the group.
func Nucleus(chars []buffer.Char) (r Range, hasFinal bool) {
	end := len(chars)
	for end > 0 && !chars[end-1].IsVowel() {
		if !chars[end-1].IsLetter() {
			return Range{}, false
		}
		end--
	}
	if end == 0 {
		return Range{}, false
	}
	start := end
	for start > 0 && chars[start-1].IsVowel() {
		start--
	}
	if end-start > 1 && start > 0 {
		prev := chars[start-1]
		first := chars[start]
		if prev.Base == 'q' && first.Base == 'u' && first.Plain() {
			start++
		} else if prev.Base == 'g' && !prev.Stroke && first.Base == 'i' && first.Mark == vn.MarkNone &&
			(start < 2 || !chars[start-2].IsLetter() || chars[start-2].IsVowel()) {
			start++
		}
	}
	return Range{start, end}, end < len(chars)
}

// TonePosition returns the index of the vowel that carries the tone, or -1
// when chars hold no vowel.
func TonePosition(chars []buffer.Char, style types.ToneStyle) int {
	r, hasFinal := Nucleus(chars)
	switch r.Len() {
	case 0:
		return -1
	case 1:
		return r.Start
	}

	if r.Len() == 3 && chars[r.Start+1].Mark != vn.MarkNone {
		return r.Start + 1
	}
	for i := r.End - 1; i >= r.Start; i-- {
		if chars[i].Mark != vn.MarkNone {
			return i
		}
	}

	if r.Len() == 2 {
		if hasFinal {
			return r.Start + 1
		}
		first, second := chars[r.Start].Base, chars[r.Start+1].Base
		switch {
		case first == 'o' && (second == 'a' || second == 'e'), first == 'u' && second == 'y':
			if style == types.ToneModern {
				return r.Start + 1
			}
		}
		return r.Start
	}
	return r.Start + 1
}

// ToneIndex returns the index of the char carrying a tone, or -1.
func ToneIndex(chars []buffer.Char) int {
	for i := len(chars) - 1; i >= 0; i-- {
		if chars[i].Tone != vn.ToneNone {
			return i
		}
	}
	return -1
}

// CrossesBoundary reports whether a consonant sits between positions a and
// b, meaning they belong to different syllables.
func CrossesBoundary(chars []buffer.Char, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for i := a + 1; i < b; i++ {
		if !chars[i].IsVowel() {
			return true
		}
	}
	return false
}
