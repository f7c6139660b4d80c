package syllable

import "goxviet/internal/buffer"

// Range is a half-open index range over the composition buffer.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Empty() bool { return r.End <= r.Start }

// Syllable is a view over a buffer: where the initial consonant, the vowel
// nucleus and the final consonant sit.
type Syllable struct {
	Initial Range
	Vowel   Range
	Final   Range
}

// Parse splits chars into one syllable. The u of "qu" and the i of "gi"
// followed by another vowel belong to the initial.
func Parse(chars []buffer.Char) (Syllable, Verdict) {
	var s Syllable
	i := 0
	for i < len(chars) && chars[i].IsLetter() && !chars[i].IsVowel() {
		i++
	}
	if i < len(chars) && !chars[i].IsLetter() {
		return s, BadStructure
	}
	if i == 1 && i < len(chars) && chars[0].Base == 'q' && chars[i].Base == 'u' && chars[i].Plain() {
		i++
	}
	if i == 1 && i+1 < len(chars) && chars[0].Base == 'g' && !chars[0].Stroke &&
		chars[i].Base == 'i' && chars[i].Mark == 0 && chars[i+1].IsVowel() {
		i++
	}
	s.Initial = Range{0, i}

	start := i
	for i < len(chars) && chars[i].IsVowel() {
		i++
	}
	s.Vowel = Range{start, i}

	start = i
	for i < len(chars) && chars[i].IsLetter() && !chars[i].IsVowel() {
		i++
	}
	s.Final = Range{start, i}

	if i < len(chars) {
		return s, BadStructure
	}
	if s.Vowel.Empty() {
		return s, NoVowel
	}
	return s, Valid
}

// Start returns the index where the last syllable of chars begins: the
// backward scan skips final consonants, then the vowels, then the initial.
func Start(chars []buffer.Char) int {
	i := len(chars)
	for i > 0 && chars[i-1].IsLetter() && !chars[i-1].IsVowel() {
		i--
	}
	for i > 0 && chars[i-1].IsVowel() {
		i--
	}
	for i > 0 && chars[i-1].IsLetter() && !chars[i-1].IsVowel() {
		i--
	}
	return i
}

func hasVowel(chars []buffer.Char) bool {
	for _, c := range chars {
		if c.IsVowel() {
			return true
		}
	}
	return false
}
