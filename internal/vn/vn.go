package vn

import "unicode"

type Tone uint8

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

func (t Tone) String() string {
	switch t {
	case ToneNone:
		return "none"
	case ToneAcute:
		return "acute"
	case ToneGrave:
		return "grave"
	case ToneHook:
		return "hook"
	case ToneTilde:
		return "tilde"
	case ToneDot:
		return "dot"
	default:
		return "unknown"
	}
}

type Mark uint8

const (
	MarkNone Mark = iota
	MarkCircumflex
	MarkBreve
	MarkHorn
)

func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkCircumflex:
		return "circumflex"
	case MarkBreve:
		return "breve"
	case MarkHorn:
		return "horn"
	default:
		return "unknown"
	}
}

type vowelKey struct {
	base rune
	mark Mark
}

// Each row lists the plain form followed by acute, grave, hook, tilde, dot.
var vowelRows = map[vowelKey][6]rune{
	{'a', MarkNone}:       {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	{'a', MarkBreve}:      {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	{'a', MarkCircumflex}: {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	{'e', MarkNone}:       {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	{'e', MarkCircumflex}: {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	{'i', MarkNone}:       {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	{'o', MarkNone}:       {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	{'o', MarkCircumflex}: {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	{'o', MarkHorn}:       {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	{'u', MarkNone}:       {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	{'u', MarkHorn}:       {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	{'y', MarkNone}:       {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// Letter is the decomposed form of one Vietnamese character.
type Letter struct {
	Base   rune
	Mark   Mark
	Tone   Tone
	Stroke bool
	Upper  bool
}

var decomposed = buildDecompose(vowelRows)

func buildDecompose(rows map[vowelKey][6]rune) map[rune]Letter {
	idx := make(map[rune]Letter, len(rows)*6+1)
	for key, row := range rows {
		for tone, ch := range row {
			idx[ch] = Letter{Base: key.base, Mark: key.mark, Tone: Tone(tone)}
		}
	}
	idx['đ'] = Letter{Base: 'd', Stroke: true}
	return idx
}

func IsVowel(base rune) bool {
	switch base {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// AcceptsMark reports whether mark may sit on base.
func AcceptsMark(base rune, mark Mark) bool {
	switch mark {
	case MarkNone:
		return true
	case MarkCircumflex:
		return base == 'a' || base == 'e' || base == 'o'
	case MarkBreve:
		return base == 'a'
	case MarkHorn:
		return base == 'o' || base == 'u'
	}
	return false
}

// Compose renders a letter. Combinations that do not exist fall back to
// the nearest renderable form: the tone is dropped for consonants and the
// mark is dropped for vowels that cannot carry it.
func Compose(l Letter) rune {
	ch := l.Base
	if l.Base == 'd' && l.Stroke {
		ch = 'đ'
	} else if IsVowel(l.Base) {
		mark := l.Mark
		if !AcceptsMark(l.Base, mark) {
			mark = MarkNone
		}
		row := vowelRows[vowelKey{base: l.Base, mark: mark}]
		tone := l.Tone
		if tone > ToneDot {
			tone = ToneNone
		}
		ch = row[tone]
	}
	if l.Upper {
		return unicode.ToUpper(ch)
	}
	return ch
}

// Decompose splits a composed rune. Plain ASCII letters and digits decompose
// to themselves; anything else reports false.
func Decompose(r rune) (Letter, bool) {
	lower := unicode.ToLower(r)
	upper := lower != r
	if l, ok := decomposed[lower]; ok {
		l.Upper = upper
		return l, true
	}
	if (lower >= 'a' && lower <= 'z') || (lower >= '0' && lower <= '9') {
		return Letter{Base: lower, Upper: upper}, true
	}
	return Letter{}, false
}

// StripTone returns r without its tone mark.
func StripTone(r rune) rune {
	l, ok := Decompose(r)
	if !ok {
		return r
	}
	l.Tone = ToneNone
	return Compose(l)
}

// CombiningTone returns the Unicode combining mark for t, or 0.
func CombiningTone(t Tone) rune {
	switch t {
	case ToneAcute:
		return '\u0301'
	case ToneGrave:
		return '\u0300'
	case ToneHook:
		return '\u0309'
	case ToneTilde:
		return '\u0303'
	case ToneDot:
		return '\u0323'
	}
	return 0
}

// HasVietnamese reports whether s contains any letter outside plain ASCII
// that this package can decompose.
func HasVietnamese(s string) bool {
	for _, r := range s {
		if r < 0x80 {
			continue
		}
		if _, ok := decomposed[unicode.ToLower(r)]; ok {
			return true
		}
	}
	return false
}
