package keys

import "unicode"

type Class int

const (
	ClassPassThrough Class = iota
	ClassLetter
	ClassDigit
	ClassSpace
	ClassBackspace
	ClassEscape
	ClassBreak
)

func (c Class) String() string {
	switch c {
	case ClassPassThrough:
		return "pass-through"
	case ClassLetter:
		return "letter"
	case ClassDigit:
		return "digit"
	case ClassSpace:
		return "space"
	case ClassBackspace:
		return "backspace"
	case ClassEscape:
		return "escape"
	case ClassBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Classify maps a keystroke to its class. Letters come back lower case;
// digits and break keys come back as the printable rune they produce, or 0.
func Classify(k Keystroke) (Class, rune) {
	if k.Ctrl || IsModifier(k.Code) {
		return ClassPassThrough, 0
	}
	e, ok := qwerty[k.Code]
	if !ok {
		return ClassBreak, 0
	}
	switch e.class {
	case ClassLetter:
		return ClassLetter, e.normal
	case ClassDigit:
		if k.Shift {
			return ClassBreak, e.shifted
		}
		return ClassDigit, e.normal
	case ClassBreak:
		if k.Shift {
			return ClassBreak, e.shifted
		}
		return ClassBreak, e.normal
	default:
		return e.class, e.normal
	}
}

// IsModifier reports whether code is a shift, control, alt or meta key.
func IsModifier(code Code) bool {
	switch code {
	case KeyLeftShift, KeyRightShift, KeyLeftCtrl, KeyRightCtrl,
		KeyLeftAlt, KeyRightAlt, KeyLeftMeta, KeyRightMeta, KeyCapsLock:
		return true
	}
	return false
}

// Printable returns the rune a keystroke renders, honouring shift and caps
// lock for letters.
func Printable(k Keystroke) rune {
	class, r := Classify(k)
	if class == ClassLetter && k.Upper() {
		return unicode.ToUpper(r)
	}
	return r
}
