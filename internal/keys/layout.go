package keys

import "unicode"

type entry struct {
	normal  rune
	shifted rune
	class   Class
}

var (
	qwerty   = buildQwerty()
	runeKeys = invertLayout(qwerty)
)

func addEntry(mapping map[Code]entry, code Code, normal, shifted rune, class Class) {
	mapping[code] = entry{normal: normal, shifted: shifted, class: class}
}

func buildQwerty() map[Code]entry {
	mapping := make(map[Code]entry, 64)

	letters := []struct {
		code Code
		ch   rune
	}{
		{KeyQ, 'q'}, {KeyW, 'w'}, {KeyE, 'e'}, {KeyR, 'r'}, {KeyT, 't'},
		{KeyY, 'y'}, {KeyU, 'u'}, {KeyI, 'i'}, {KeyO, 'o'}, {KeyP, 'p'},
		{KeyA, 'a'}, {KeyS, 's'}, {KeyD, 'd'}, {KeyF, 'f'}, {KeyG, 'g'},
		{KeyH, 'h'}, {KeyJ, 'j'}, {KeyK, 'k'}, {KeyL, 'l'},
		{KeyZ, 'z'}, {KeyX, 'x'}, {KeyC, 'c'}, {KeyV, 'v'}, {KeyB, 'b'},
		{KeyN, 'n'}, {KeyM, 'm'},
	}
	for _, l := range letters {
		addEntry(mapping, l.code, l.ch, unicode.ToUpper(l.ch), ClassLetter)
	}

	digits := []struct {
		code    Code
		ch      rune
		shifted rune
	}{
		{Key1, '1', '!'}, {Key2, '2', '@'}, {Key3, '3', '#'}, {Key4, '4', '$'},
		{Key5, '5', '%'}, {Key6, '6', '^'}, {Key7, '7', '&'}, {Key8, '8', '*'},
		{Key9, '9', '('}, {Key0, '0', ')'},
	}
	for _, d := range digits {
		addEntry(mapping, d.code, d.ch, d.shifted, ClassDigit)
	}

	punctuation := []struct {
		code    Code
		ch      rune
		shifted rune
	}{
		{KeyMinus, '-', '_'}, {KeyEqual, '=', '+'},
		{KeyLeftBrace, '[', '{'}, {KeyRightBrace, ']', '}'},
		{KeyBackslash, '\\', '|'}, {KeySemicolon, ';', ':'},
		{KeyApostrophe, '\'', '"'}, {KeyGrave, '`', '~'},
		{KeyComma, ',', '<'}, {KeyDot, '.', '>'}, {KeySlash, '/', '?'},
	}
	for _, p := range punctuation {
		addEntry(mapping, p.code, p.ch, p.shifted, ClassBreak)
	}

	addEntry(mapping, KeySpace, ' ', ' ', ClassSpace)
	addEntry(mapping, KeyBackspace, 0, 0, ClassBackspace)
	addEntry(mapping, KeyEsc, 0, 0, ClassEscape)

	navigation := []Code{
		KeyTab, KeyEnter, KeyHome, KeyUp, KeyPageUp, KeyLeft, KeyRight,
		KeyEnd, KeyDown, KeyPageDown, KeyInsert, KeyDelete,
	}
	for _, code := range navigation {
		addEntry(mapping, code, 0, 0, ClassBreak)
	}
	return mapping
}

type runeKey struct {
	code  Code
	shift bool
}

func invertLayout(mapping map[Code]entry) map[rune]runeKey {
	idx := make(map[rune]runeKey, 2*len(mapping))
	for code, e := range mapping {
		if e.normal != 0 {
			idx[e.normal] = runeKey{code: code}
		}
		if e.shifted != 0 && e.shifted != e.normal {
			idx[e.shifted] = runeKey{code: code, shift: true}
		}
	}
	idx['\n'] = runeKey{code: KeyEnter}
	idx['\r'] = runeKey{code: KeyEnter}
	idx['\t'] = runeKey{code: KeyTab}
	return idx
}

// FromRune finds the keystroke that types r on a US QWERTY layout.
func FromRune(r rune) (Keystroke, bool) {
	rk, ok := runeKeys[r]
	if !ok {
		return Keystroke{}, false
	}
	return Keystroke{Code: rk.code, Shift: rk.shift}, true
}
