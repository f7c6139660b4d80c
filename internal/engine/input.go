package engine

import (
	"goxviet/internal/buffer"
	"goxviet/internal/config"
	"goxviet/internal/english"
	"goxviet/internal/syllable"
	"goxviet/internal/types"
	"goxviet/internal/vn"
)

type actionKind int

const (
	actNone actionKind = iota
	actTone
	actCircumflex
	actW
	actHorn
	actBreve
	actStroke
	actRemove
)

type action struct {
	kind actionKind
	tone vn.Tone
	// base restricts a circumflex to one vowel (Telex aa, ee, oo).
	base rune
}

var telexActions = map[rune]action{
	's': {kind: actTone, tone: vn.ToneAcute},
	'f': {kind: actTone, tone: vn.ToneGrave},
	'r': {kind: actTone, tone: vn.ToneHook},
	'x': {kind: actTone, tone: vn.ToneTilde},
	'j': {kind: actTone, tone: vn.ToneDot},
	'a': {kind: actCircumflex, base: 'a'},
	'e': {kind: actCircumflex, base: 'e'},
	'o': {kind: actCircumflex, base: 'o'},
	'w': {kind: actW},
	'd': {kind: actStroke},
	'z': {kind: actRemove},
}

var vniActions = map[rune]action{
	'1': {kind: actTone, tone: vn.ToneAcute},
	'2': {kind: actTone, tone: vn.ToneGrave},
	'3': {kind: actTone, tone: vn.ToneHook},
	'4': {kind: actTone, tone: vn.ToneTilde},
	'5': {kind: actTone, tone: vn.ToneDot},
	'6': {kind: actCircumflex},
	'7': {kind: actHorn},
	'8': {kind: actBreve},
	'9': {kind: actStroke},
	'0': {kind: actRemove},
}

func (e *Engine) actionFor(key rune) action {
	if e.cfg.Method == types.MethodVNI {
		return vniActions[key]
	}
	return telexActions[key]
}

func (e *Engine) onChar(key rune, upper bool) Result {
	e.sylStart = -1
	if e.overflow {
		return Result{}
	}
	e.raw.Push(key, upper)
	if e.literal || e.englishWord {
		if e.raw.Len() > e.buf.Len()+1 {
			// the cancelled tone key was typed twice but is shown once
			return e.restoreRaw(e.buf.Len(), 0, true)
		}
		return e.literalLetter(key, upper)
	}

	act := e.actionFor(key)
	if act.kind == actNone && e.looksEnglish() {
		e.englishWord = true
		tracer().Debugf("%q looks English", e.raw.String())
		if e.cfg.InstantRestore && e.divergedBeforeKey() {
			return e.restoreRaw(e.buf.Len(), 0, true)
		}
		return e.literalLetter(key, upper)
	}
	if act.kind != actNone && !e.buf.Empty() {
		if e.guardMatch() != english.NoMatch {
			if e.cfg.InstantRestore && e.divergedBeforeKey() {
				return e.restoreRaw(e.buf.Len(), 0, true)
			}
			return e.insertLetter(key, upper)
		}
		if res, ok := e.apply(act, key, upper); ok {
			return res
		}
	} else if act.kind == actW {
		if res, ok := e.applyW(key, upper); ok {
			return res
		}
	}
	return e.insertLetter(key, upper)
}

func (e *Engine) apply(act action, key rune, upper bool) (Result, bool) {
	switch act.kind {
	case actTone:
		return e.applyTone(act.tone, key, upper)
	case actCircumflex:
		return e.applyCircumflex(act.base, key, upper)
	case actW:
		return e.applyW(key, upper)
	case actHorn:
		return e.applyHornKey(true, false, key, upper)
	case actBreve:
		return e.applyHornKey(false, true, key, upper)
	case actStroke:
		return e.applyStroke(key, upper)
	case actRemove:
		return e.applyRemove()
	}
	return Result{}, false
}

// literalLetter appends key without transforms. Immediate shortcuts still
// apply.
func (e *Engine) literalLetter(key rune, upper bool) Result {
	before := e.buf.Len()
	if !e.buf.Push(buffer.Char{Base: key, Upper: upper}) {
		e.spill()
		return Result{}
	}
	if res, ok := e.immediateShortcut(before); ok {
		return res
	}
	return Result{}
}

// looksEnglish checks the raw keys, pending key included, for spellings
// Vietnamese never uses. Free tone placement turns the check off.
func (e *Engine) looksEnglish() bool {
	if !e.cfg.SmartMode || e.cfg.FreeTone {
		return false
	}
	return english.LooksEnglish(e.rawLower())
}

// guardMatch looks up the raw keys, pending key included.
func (e *Engine) guardMatch() english.Match {
	if !e.cfg.SmartMode || e.guard == nil {
		return english.NoMatch
	}
	return e.guard.Lookup(string(e.rawLower()))
}

// divergedBeforeKey is diverged for the state before the pending key, which
// is already in the raw buffer.
func (e *Engine) divergedBeforeKey() bool {
	if e.buf.Empty() {
		return false
	}
	return e.buf.HasTransforms() || e.buf.Len()+1 != e.raw.Len()
}

// insertLetter adds key as an ordinary char. The host types it unless the
// insertion moved a tone or completed a compound vowel.
func (e *Engine) insertLetter(key rune, upper bool) Result {
	before := e.buf.Len()
	e.last = lastNone
	e.lastN = 0

	if prev, ok := e.buf.Last(); ok && vn.IsVowel(key) && prev.Base == 'a' && prev.Mark == vn.MarkBreve {
		e.literal = true
		return e.restoreRaw(before, 0, false)
	}
	if !e.buf.Push(buffer.Char{Base: key, Upper: upper}) {
		e.spill()
		return Result{}
	}

	from := -1
	if key == 'o' && before > 0 {
		if prev := e.buf.At(before - 1); prev.Base == 'u' && prev.Mark == vn.MarkHorn {
			e.buf.Ref(before).Mark = vn.MarkHorn
			from = before
		}
	}
	if lo, moved := e.replaceTone(); moved && (from < 0 || lo < from) {
		from = lo
	}

	if e.cfg.SmartMode && e.cfg.InstantRestore && e.diverged() && e.guard.IsWord(string(e.rawLower())) {
		return e.restoreRaw(before, 0, true)
	}
	if res, ok := e.immediateShortcut(before); ok {
		return res
	}
	if from < 0 {
		return Result{}
	}
	return e.rebuild(before, from)
}

// replaceTone moves an existing tone to where the syllable now wants it.
// It returns the lowest index touched.
func (e *Engine) replaceTone() (int, bool) {
	chars := e.buf.Chars()
	cur := syllable.ToneIndex(chars)
	if cur < 0 {
		return 0, false
	}
	pos := syllable.TonePosition(chars, e.cfg.ToneStyle)
	if pos < 0 || pos == cur || syllable.CrossesBoundary(chars, cur, pos) {
		return 0, false
	}
	tone := chars[cur].Tone
	e.buf.Ref(cur).Tone = vn.ToneNone
	e.buf.Ref(pos).Tone = tone
	return min(cur, pos), true
}

// restoreRaw replaces the shown word (before chars long) with the literal
// keys. latin marks the word as English so later keys stay literal.
func (e *Engine) restoreRaw(before int, boundary rune, latin bool) Result {
	e.syncToRaw()
	if latin {
		e.englishWord = true
		tracer().Debugf("restored %q to raw keys", e.raw.String())
	}
	e.out = e.raw.AppendRunes(e.out[:0])
	if boundary != 0 {
		e.out = append(e.out, boundary)
	}
	return Result{Consumed: true, Backspace: before, Chars: e.out}
}

func (e *Engine) syncToRaw() {
	e.buf.Clear()
	for _, k := range e.raw.Keys() {
		e.buf.Push(buffer.Char{Base: k.Key, Upper: k.Upper})
	}
	e.last = lastNone
	e.lastN = 0
	e.sylStart = -1
}

// spill is called when the word no longer fits. The rest of the word goes
// to the host untouched.
func (e *Engine) spill() {
	tracer().Infof("composition buffer full, passing the rest of the word through")
	e.clearWord()
	e.overflow = true
	e.history.clear()
	e.spaces = 0
}

func (e *Engine) typedWord() string {
	if e.cfg.ShortcutSource == config.SourceRaw {
		return e.raw.String()
	}
	return e.buf.String()
}

func (e *Engine) immediateShortcut(before int) (Result, bool) {
	if !e.cfg.ShortcutsEnabled || !e.shortcuts.HasImmediate() {
		return Result{}, false
	}
	text, ok := e.shortcuts.Match(e.typedWord(), e.cfg.Method, false)
	if !ok {
		return Result{}, false
	}
	tracer().Debugf("immediate shortcut %q", e.typedWord())
	res := e.emit(before, text, 0)
	e.clearWord()
	return res, true
}

// canonicalRaw rewrites the raw buffer from the composed chars, using the
// shortest key sequence of the active input method.
func (e *Engine) canonicalRaw() {
	e.raw.Clear()
	vni := e.cfg.Method == types.MethodVNI
	for _, c := range e.buf.Chars() {
		e.raw.Push(c.Base, c.Upper)
		if c.Stroke {
			if vni {
				e.raw.Push('9', false)
			} else {
				e.raw.Push('d', false)
			}
		}
		switch c.Mark {
		case vn.MarkCircumflex:
			if vni {
				e.raw.Push('6', false)
			} else {
				e.raw.Push(c.Base, false)
			}
		case vn.MarkHorn:
			if vni {
				e.raw.Push('7', false)
			} else {
				e.raw.Push('w', false)
			}
		case vn.MarkBreve:
			if vni {
				e.raw.Push('8', false)
			} else {
				e.raw.Push('w', false)
			}
		}
		if c.Tone != vn.ToneNone {
			if vni {
				e.raw.Push(rune('0'+c.Tone), false)
			} else {
				e.raw.Push(telexToneKeys[c.Tone], false)
			}
		}
	}
}

var telexToneKeys = [...]rune{
	vn.ToneNone:  0,
	vn.ToneAcute: 's',
	vn.ToneGrave: 'f',
	vn.ToneHook:  'r',
	vn.ToneTilde: 'x',
	vn.ToneDot:   'j',
}
