package engine

import (
	"goxviet/internal/buffer"
	"goxviet/internal/syllable"
	"goxviet/internal/types"
	"goxviet/internal/vn"
)

func (e *Engine) applyTone(tone vn.Tone, key rune, upper bool) (Result, bool) {
	chars := e.buf.Chars()
	if !e.cfg.FreeTone && !syllable.Validate(chars, syllable.BasicCheck).OK() {
		return Result{}, false
	}
	pos := syllable.TonePosition(chars, e.cfg.ToneStyle)
	if pos < 0 {
		return Result{}, false
	}
	before := len(chars)
	cur := syllable.ToneIndex(chars)

	if cur >= 0 && chars[cur].Tone == tone {
		e.buf.Ref(cur).Tone = vn.ToneNone
		e.buf.Push(buffer.Char{Base: key, Upper: upper})
		e.last = lastNone
		e.lastN = 0
		// a cancelled tone means the word is typed literally from here on
		e.englishWord = true
		return e.rebuild(before, cur), true
	}

	from := pos
	if cur >= 0 {
		e.buf.Ref(cur).Tone = vn.ToneNone
		from = min(cur, pos)
	}
	e.buf.Ref(pos).Tone = tone
	e.last = lastTone
	e.lastN = 0
	return e.rebuild(before, from), true
}

// applyCircumflex handles Telex aa/ee/oo (base set) and VNI 6 (base 0).
func (e *Engine) applyCircumflex(base, key rune, upper bool) (Result, bool) {
	chars := e.buf.Chars()
	r, _ := syllable.Nucleus(chars)
	if r.Empty() {
		return Result{}, false
	}
	target := -1
	for i := r.End - 1; i >= r.Start; i-- {
		c := chars[i]
		if base != 0 && c.Base != base {
			continue
		}
		if base == 0 && !vn.AcceptsMark(c.Base, vn.MarkCircumflex) {
			continue
		}
		if c.Mark == vn.MarkNone || c.Mark == vn.MarkCircumflex {
			target = i
		}
		break
	}
	if target < 0 {
		return Result{}, false
	}
	before := len(chars)

	if chars[target].Mark == vn.MarkCircumflex {
		e.buf.Ref(target).Mark = vn.MarkNone
		e.buf.Push(buffer.Char{Base: key, Upper: upper})
		e.last = lastNone
		e.lastN = 0
		if lo, moved := e.replaceTone(); moved && lo < target {
			target = lo
		}
		return e.rebuild(before, target), true
	}

	e.buf.Ref(target).Mark = vn.MarkCircumflex
	if !syllable.Validate(e.buf.Chars(), syllable.FullCheck).OK() {
		e.buf.Ref(target).Mark = vn.MarkNone
		return Result{}, false
	}
	e.last = lastMark
	e.lastPos[0] = target
	e.lastN = 1
	return e.finishMark(before, target), true
}

// applyW handles the Telex w key: horn or breve on the nucleus, otherwise
// a standalone ư.
func (e *Engine) applyW(key rune, upper bool) (Result, bool) {
	if e.wSkipped {
		return Result{}, false
	}
	before := e.buf.Len()
	switch e.last {
	case lastW:
		e.wSkipped = true
		return e.revertMarks(key, upper), true
	case lastWVowel:
		c := e.buf.Ref(before - 1)
		*c = buffer.Char{Base: 'w', Upper: c.Upper}
		e.wSkipped = true
		e.last = lastNone
		e.lastN = 0
		return e.rebuild(before, before-1), true
	}
	if completeUO(e.buf.Chars()) {
		// ươ is already complete; the key is swallowed.
		return Result{Consumed: true}, true
	}
	if res, ok := e.placeHorn(true, true); ok {
		e.last = lastW
		return res, true
	}
	if e.cfg.SkipWShortcut && before == 0 {
		return Result{}, false
	}
	return e.wAsVowel(upper)
}

// applyHornKey handles VNI 7 (horn) and 8 (breve).
func (e *Engine) applyHornKey(horn, breve bool, key rune, upper bool) (Result, bool) {
	if res, ok := e.placeHorn(horn, breve); ok {
		e.last = lastW
		return res, true
	}
	if e.last == lastW && e.lastN > 0 {
		return e.revertMarks(key, upper), true
	}
	return Result{}, false
}

// placeHorn puts a horn (o, u) or breve (a) on the nucleus. A plain "uo"
// pair takes the horn on both vowels. Candidates are tried from the last
// vowel backwards and the first one that leaves a legal syllable wins.
func (e *Engine) placeHorn(horn, breve bool) (Result, bool) {
	chars := e.buf.Chars()
	r, _ := syllable.Nucleus(chars)
	if r.Empty() {
		return Result{}, false
	}
	before := len(chars)

	if horn {
		for i := r.Start; i+1 < r.End; i++ {
			u, o := chars[i], chars[i+1]
			if u.Base != 'u' || o.Base != 'o' || u.Mark == vn.MarkHorn || o.Mark == vn.MarkHorn {
				continue
			}
			e.buf.Ref(i).Mark = vn.MarkHorn
			e.buf.Ref(i + 1).Mark = vn.MarkHorn
			if syllable.Validate(e.buf.Chars(), syllable.FullCheck).OK() {
				e.lastPos = [2]int{i, i + 1}
				e.lastN = 2
				return e.finishMark(before, i), true
			}
			e.buf.Ref(i).Mark = u.Mark
			e.buf.Ref(i + 1).Mark = o.Mark
		}
	}

	for i := r.End - 1; i >= r.Start; i-- {
		c := chars[i]
		var mark vn.Mark
		switch {
		case horn && (c.Base == 'o' || c.Base == 'u') && c.Mark != vn.MarkHorn:
			mark = vn.MarkHorn
		case breve && c.Base == 'a' && c.Mark != vn.MarkBreve:
			mark = vn.MarkBreve
		default:
			continue
		}
		e.buf.Ref(i).Mark = mark
		if syllable.Validate(e.buf.Chars(), syllable.FullCheck).OK() {
			e.lastPos[0] = i
			e.lastN = 1
			return e.finishMark(before, i), true
		}
		e.buf.Ref(i).Mark = c.Mark
	}
	return Result{}, false
}

func (e *Engine) finishMark(before, from int) Result {
	if lo, moved := e.replaceTone(); moved && lo < from {
		from = lo
	}
	return e.rebuild(before, from)
}

// revertMarks undoes the marks set by the previous key and appends the key.
func (e *Engine) revertMarks(key rune, upper bool) Result {
	before := e.buf.Len()
	from := before
	for _, p := range e.lastPos[:e.lastN] {
		e.buf.Ref(p).Mark = vn.MarkNone
		from = min(from, p)
	}
	e.buf.Push(buffer.Char{Base: key, Upper: upper})
	e.last = lastNone
	e.lastN = 0
	if lo, moved := e.replaceTone(); moved && lo < from {
		from = lo
	}
	return e.rebuild(before, from)
}

// wAsVowel types w as ư. An empty word or a lone consonant takes it without
// checks; anything longer must still be a legal syllable.
func (e *Engine) wAsVowel(upper bool) (Result, bool) {
	before := e.buf.Len()
	fast := before == 0
	if before == 1 {
		first := e.buf.At(0)
		fast = first.IsLetter() && !first.IsVowel()
	}
	if !e.buf.Push(buffer.Char{Base: 'u', Mark: vn.MarkHorn, Upper: upper}) {
		return Result{}, false
	}
	if !fast && !syllable.Validate(e.buf.Chars(), syllable.FullCheck).OK() {
		e.buf.Pop()
		return Result{}, false
	}
	e.last = lastWVowel
	e.lastN = 0
	return e.finishMark(before, before), true
}

func (e *Engine) applyStroke(key rune, upper bool) (Result, bool) {
	chars := e.buf.Chars()
	before := len(chars)
	if e.last == lastStroke && e.lastN == 1 {
		p := e.lastPos[0]
		e.buf.Ref(p).Stroke = false
		e.buf.Push(buffer.Char{Base: key, Upper: upper})
		e.last = lastNone
		e.lastN = 0
		return e.rebuild(before, p), true
	}

	target := -1
	if e.cfg.Method == types.MethodVNI {
		for i, c := range chars {
			if c.Base == 'd' {
				if !c.Stroke {
					target = i
				}
				break
			}
		}
	} else if before > 0 && chars[before-1].Base == 'd' && !chars[before-1].Stroke {
		target = before - 1
	}
	if target < 0 {
		return Result{}, false
	}

	e.buf.Ref(target).Stroke = true
	if vowelBefore(chars, target) && !syllable.Validate(e.buf.Chars(), syllable.BasicCheck).OK() {
		e.buf.Ref(target).Stroke = false
		return Result{}, false
	}
	e.last = lastStroke
	e.lastPos[0] = target
	e.lastN = 1
	return e.rebuild(before, target), true
}

// applyRemove clears the tone, or else the last mark, or else the stroke.
func (e *Engine) applyRemove() (Result, bool) {
	chars := e.buf.Chars()
	before := len(chars)
	pos := syllable.ToneIndex(chars)
	if pos >= 0 {
		e.buf.Ref(pos).Tone = vn.ToneNone
	} else {
		for i := before - 1; i >= 0; i-- {
			if chars[i].Mark != vn.MarkNone {
				e.buf.Ref(i).Mark = vn.MarkNone
				pos = i
				break
			}
		}
	}
	if pos < 0 {
		for i, c := range chars {
			if c.Stroke {
				e.buf.Ref(i).Stroke = false
				pos = i
				break
			}
		}
	}
	if pos < 0 {
		return Result{}, false
	}
	e.last = lastRemove
	e.lastN = 0
	return e.rebuild(before, pos), true
}

func completeUO(chars []buffer.Char) bool {
	r, _ := syllable.Nucleus(chars)
	for i := r.Start; i+1 < r.End; i++ {
		if chars[i].Base == 'u' && chars[i].Mark == vn.MarkHorn &&
			chars[i+1].Base == 'o' && chars[i+1].Mark == vn.MarkHorn {
			return true
		}
	}
	return false
}

func vowelBefore(chars []buffer.Char, end int) bool {
	for _, c := range chars[:end] {
		if c.IsVowel() {
			return true
		}
	}
	return false
}
