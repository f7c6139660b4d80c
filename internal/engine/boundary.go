package engine

import (
	"unicode"

	"goxviet/internal/buffer"
	"goxviet/internal/syllable"
)

func (e *Engine) onSpace() Result {
	var res Result
	expanded := false
	if text, ok := e.boundaryShortcut(); ok {
		res = e.emit(e.buf.Len(), text, ' ')
		expanded = true
	} else if e.restoreOnSpace() {
		res = e.restoreRaw(e.buf.Len(), ' ', true)
	}

	switch {
	case expanded:
		e.history.clear()
		e.spaces = 0
	case !e.buf.Empty():
		e.history.push(&e.buf, &e.raw)
		e.spaces = 1
	case e.spaces > 0:
		e.spaces++
	}
	e.clearWord()
	return res
}

// restoreOnSpace decides whether a finished word goes back to its raw keys:
// a known English word that was rewritten, or a transformed word that is
// not Vietnamese.
func (e *Engine) restoreOnSpace() bool {
	if !e.cfg.SmartMode || e.buf.Empty() || e.englishWord {
		return false
	}
	if e.diverged() && e.guard.IsWord(string(e.rawLower())) {
		return true
	}
	return e.buf.HasTransforms() && !syllable.Validate(e.buf.Chars(), syllable.FullCheck).OK()
}

func (e *Engine) boundaryShortcut() (string, bool) {
	if !e.cfg.ShortcutsEnabled || e.buf.Empty() || e.shortcuts.Len() == 0 {
		return "", false
	}
	word := e.typedWord()
	text, ok := e.shortcuts.Match(word, e.cfg.Method, true)
	if ok {
		tracer().Debugf("expanded shortcut %q", word)
	}
	return text, ok
}

func (e *Engine) onEscape() Result {
	var res Result
	if e.cfg.EscRestore && e.diverged() {
		res = e.restoreRaw(e.buf.Len(), 0, true)
	}
	e.clearWord()
	e.history.clear()
	e.spaces = 0
	return res
}

// onBreak ends the word on punctuation, enter, tab and navigation keys.
// Printable punctuation may still complete a shortcut.
func (e *Engine) onBreak(r rune) Result {
	var res Result
	if r != 0 && unicode.IsGraphic(r) {
		if text, ok := e.boundaryShortcut(); ok {
			res = e.emit(e.buf.Len(), text, r)
		}
	}
	e.clearWord()
	e.history.clear()
	e.spaces = 0
	return res
}

// RestoreToRaw returns the edit that would put the literal keys back on
// screen, without changing any state.
func (e *Engine) RestoreToRaw() Result {
	if !e.diverged() {
		return Result{}
	}
	e.out = e.raw.AppendRunes(e.out[:0])
	return Result{Consumed: true, Backspace: e.buf.Len(), Chars: e.out}
}

// RestoreWord loads an already composed word as the current word, for
// hosts that move the cursor back into text. It reports false when the
// word holds characters the engine cannot represent.
func (e *Engine) RestoreWord(word string) bool {
	var buf buffer.Composition
	for _, r := range word {
		c, ok := buffer.FromRune(r)
		if !ok || !buf.Push(c) {
			return false
		}
	}
	e.clearWord()
	e.buf = buf
	e.canonicalRaw()
	return true
}
