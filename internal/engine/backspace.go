package engine

import (
	"goxviet/internal/syllable"
)

// onBackspace deletes the last char. A plain char in an untouched syllable
// is popped directly; otherwise the syllable is rebuilt so its tone can
// move back to where the shorter syllable wants it.
func (e *Engine) onBackspace() Result {
	if e.overflow {
		return Result{}
	}
	if e.buf.Empty() {
		e.raw.Clear()
		if e.spaces > 0 {
			e.spaces--
			if e.spaces == 0 {
				e.resumePrevious()
			}
		}
		return Result{}
	}

	start := e.syllableStart()
	before := e.buf.Len()
	last, _ := e.buf.Last()
	if e.last == lastNone && last.Plain() && e.plainFrom(start) {
		inStep := e.raw.Len() == before
		e.buf.Pop()
		if inStep {
			e.raw.Pop()
		} else {
			e.canonicalRaw()
		}
		e.afterDelete()
		return Result{Consumed: true, Backspace: 1}
	}

	e.buf.Pop()
	e.last = lastNone
	e.lastN = 0
	if start >= e.buf.Len() {
		e.sylStart = -1
		e.canonicalRaw()
		e.afterDelete()
		return Result{Consumed: true, Backspace: 1}
	}
	e.replaceTone()
	e.canonicalRaw()
	return e.rebuild(before, start)
}

// syllableStart returns the cached start of the last syllable, scanning
// for it when the cache is empty or stale.
func (e *Engine) syllableStart() int {
	if e.sylStart < 0 || e.sylStart > e.buf.Len() {
		e.sylStart = syllable.Start(e.buf.Chars())
	}
	return e.sylStart
}

func (e *Engine) plainFrom(start int) bool {
	for _, c := range e.buf.Chars()[start:] {
		if !c.Plain() {
			return false
		}
	}
	return true
}

func (e *Engine) afterDelete() {
	if e.buf.Empty() {
		e.clearWord()
	}
}

// resumePrevious reloads the last committed word after its trailing space
// was deleted.
func (e *Engine) resumePrevious() {
	snap, ok := e.history.pop()
	if !ok {
		return
	}
	e.buf = snap.buf
	e.raw = snap.raw
	e.sylStart = -1
	e.last = lastNone
	e.lastN = 0
	e.wSkipped = false
	e.literal = false
	e.englishWord = false
	tracer().Debugf("resumed word %q", e.buf.String())
}
