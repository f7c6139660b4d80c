package syllable

import (
	"unicode/utf8"

	"goxviet/internal/buffer"
	"goxviet/internal/vn"
)

// Level selects how strict validation is.
type Level int

const (
	// FastPath accepts short vowel-less prefixes without looking further.
	FastPath Level = iota
	// BasicCheck checks the initial, the final and spelling rules.
	BasicCheck
	// FullCheck adds vowel nucleus and diacritic legality.
	FullCheck
)

func (l Level) String() string {
	switch l {
	case FastPath:
		return "fast"
	case BasicCheck:
		return "basic"
	case FullCheck:
		return "full"
	default:
		return "unknown"
	}
}

type Verdict int

const (
	Valid Verdict = iota
	NoVowel
	BadStructure
	BadInitial
	BadFinal
	BadSpelling
	BadNucleus
	BreveBeforeVowel
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case NoVowel:
		return "no vowel"
	case BadStructure:
		return "bad structure"
	case BadInitial:
		return "bad initial"
	case BadFinal:
		return "bad final"
	case BadSpelling:
		return "bad spelling"
	case BadNucleus:
		return "bad nucleus"
	case BreveBeforeVowel:
		return "breve before vowel"
	default:
		return "unknown"
	}
}

func (v Verdict) OK() bool { return v == Valid }

var (
	initials = buildSet([]string{
		"", "b", "c", "ch", "d", "đ", "g", "gh", "gi", "h", "k", "kh", "l", "m",
		"n", "ng", "ngh", "nh", "p", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x",
	})
	// Prefixes of a multi-letter initial that are not initials themselves.
	partialInitials = buildSet([]string{"q"})
	finals          = buildSet([]string{"", "c", "ch", "m", "n", "ng", "nh", "p", "t"})

	nuclei = buildSet([]string{
		"a", "ă", "â", "e", "ê", "i", "o", "ô", "ơ", "u", "ư", "y",
		"ai", "ao", "au", "ay", "âu", "ây", "eo", "êu", "ia", "iê", "iu",
		"oa", "oă", "oe", "oi", "ôi", "ơi", "ua", "uâ", "uê", "ui", "uô",
		"uơ", "uy", "ưa", "ưi", "ươ", "ưu", "yê",
		"iêu", "oai", "oao", "oay", "oeo", "uây", "uôi", "uya", "uyê", "uyu",
		"ươi", "ươu", "yêu",
	})
	// oe only follows these initials (hoè, khoẻ, loé, toé, xoè).
	oeInitials = buildSet([]string{
		"", "ch", "h", "kh", "l", "ng", "nh", "s", "t", "th", "tr", "x",
	})
	// Nuclei ending in a semivowel, plus ia, ua and ưa, never take a final
	// consonant.
	openNuclei = buildSet([]string{
		"ai", "ao", "au", "ay", "âu", "ây", "eo", "êu", "ia", "iu", "oi", "ôi",
		"ơi", "ua", "ui", "ưa", "ưi", "ưu", "iêu", "oai", "oao", "oay", "oeo",
		"uây", "uôi", "uya", "uyu", "ươi", "ươu", "yêu",
	})
)

func buildSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

// Validate checks chars as one Vietnamese syllable at the given level.
// A vowel-less prefix of a legal initial is accepted at every level so that
// syllables still being typed are not rejected.
func Validate(chars []buffer.Char, level Level) Verdict {
	if level == FastPath {
		if len(chars) <= 3 && !hasVowel(chars) {
			return Valid
		}
		level = BasicCheck
	}

	s, verdict := Parse(chars)
	if verdict != Valid && verdict != NoVowel {
		return verdict
	}

	// Map lookups keyed by string(bytes) do not allocate.
	var ini, fin [8]byte
	initial := consonantKey(ini[:0], chars[s.Initial.Start:s.Initial.End])
	if _, ok := initials[string(initial)]; !ok {
		if _, partial := partialInitials[string(initial)]; !partial || verdict != NoVowel {
			return BadInitial
		}
	}
	if verdict == NoVowel {
		return Valid
	}
	final := consonantKey(fin[:0], chars[s.Final.Start:s.Final.End])
	if _, ok := finals[string(final)]; !ok {
		return BadFinal
	}
	if v := checkSpelling(initial, chars[s.Vowel.Start]); v != Valid {
		return v
	}
	if level == BasicCheck {
		return Valid
	}

	for i := s.Vowel.Start; i < s.Vowel.End; i++ {
		if chars[i].Mark == vn.MarkBreve {
			if i+1 < len(chars) && chars[i+1].IsVowel() {
				return BreveBeforeVowel
			}
			break
		}
	}
	var enc [16]byte
	nucleus := nucleusKey(enc[:0], chars[s.Vowel.Start:s.Vowel.End])
	if _, ok := nuclei[string(nucleus)]; !ok {
		return BadNucleus
	}
	if !s.Final.Empty() {
		if _, open := openNuclei[string(nucleus)]; open {
			return BadNucleus
		}
	}
	if len(nucleus) >= 2 && nucleus[0] == 'o' && nucleus[1] == 'e' {
		if _, ok := oeInitials[string(initial)]; !ok {
			return BadNucleus
		}
	}
	return Valid
}

func checkSpelling(initial []byte, first buffer.Char) Verdict {
	switch string(initial) {
	case "c":
		if first.Base == 'e' || first.Base == 'i' || first.Base == 'y' {
			return BadSpelling
		}
	case "k":
		if first.Base == 'a' || first.Base == 'o' || first.Base == 'u' {
			return BadSpelling
		}
	case "gh", "ngh":
		if first.Base != 'e' && first.Base != 'i' {
			return BadSpelling
		}
	case "ng":
		if first.Base == 'e' || first.Base == 'i' {
			return BadSpelling
		}
	}
	return Valid
}

func consonantKey(dst []byte, chars []buffer.Char) []byte {
	for _, c := range chars {
		if c.Stroke {
			dst = append(dst, "đ"...)
			continue
		}
		dst = append(dst, byte(c.Base))
	}
	return dst
}

func nucleusKey(dst []byte, chars []buffer.Char) []byte {
	for _, c := range chars {
		dst = utf8.AppendRune(dst, vn.Compose(vn.Letter{Base: c.Base, Mark: c.Mark}))
	}
	return dst
}
