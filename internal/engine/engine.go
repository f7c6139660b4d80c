package engine

import (
	"goxviet/internal/buffer"
	"goxviet/internal/config"
	"goxviet/internal/english"
	"goxviet/internal/keys"
	"goxviet/internal/shortcut"
)

// lastKind records the transform applied by the previous key. Reverts
// ("ww", "ddd") and the backspace fast path depend on it.
type lastKind int

const (
	lastNone lastKind = iota
	lastTone
	lastMark
	lastW
	lastWVowel
	lastStroke
	lastRemove
)

const outCap = 2*buffer.Capacity + shortcut.MaxReplacementLen + 1

type Engine struct {
	cfg       config.EngineConfig
	buf       buffer.Composition
	raw       buffer.Raw
	guard     *english.Guard
	shortcuts *shortcut.Table
	history   history
	// spaces counts the spaces typed after the last committed word.
	spaces int
	// sylStart caches the start of the syllable being edited; -1 when unknown.
	sylStart int

	last     lastKind
	lastPos  [2]int
	lastN    int
	wSkipped bool
	// literal stops transforms until the next word boundary.
	literal     bool
	englishWord bool
	overflow    bool

	out     []rune
	scratch [buffer.Capacity]byte
}

// New returns an engine with the built-in English word list and an empty
// shortcut table.
func New(cfg config.EngineConfig) *Engine {
	return NewWithGuard(cfg, english.DefaultGuard())
}

func NewWithGuard(cfg config.EngineConfig, guard *english.Guard) *Engine {
	return &Engine{
		cfg:       cfg,
		guard:     guard,
		shortcuts: shortcut.NewTable(),
		sylStart:  -1,
		out:       make([]rune, 0, outCap),
	}
}

func (e *Engine) Config() config.EngineConfig { return e.cfg }

// SetConfig replaces the configuration. It applies from the next key; the
// word being typed is kept.
func (e *Engine) SetConfig(cfg config.EngineConfig) {
	if cfg != e.cfg {
		tracer().Infof("reconfigured: method=%s tone=%s smart=%t", cfg.Method, cfg.ToneStyle, cfg.SmartMode)
	}
	e.cfg = cfg
}

func (e *Engine) Guard() *english.Guard { return e.guard }

// SetGuard swaps the English word list. It applies from the next key.
func (e *Engine) SetGuard(guard *english.Guard) { e.guard = guard }

func (e *Engine) Shortcuts() *shortcut.Table { return e.shortcuts }

func (e *Engine) AddShortcut(s shortcut.Shortcut) error { return e.shortcuts.Add(s) }

func (e *Engine) RemoveShortcut(trigger string) error { return e.shortcuts.Remove(trigger) }

func (e *Engine) ClearShortcuts() { e.shortcuts.Clear() }

func (e *Engine) ShortcutCount() int { return e.shortcuts.Len() }

func (e *Engine) SetShortcutsEnabled(enabled bool) { e.cfg.ShortcutsEnabled = enabled }

// ResetBuffer forgets the word being typed.
func (e *Engine) ResetBuffer() { e.clearWord() }

// ResetAll also forgets committed words.
func (e *Engine) ResetAll() {
	e.clearWord()
	e.history.clear()
	e.spaces = 0
}

// Composed returns the word being typed as it is shown.
func (e *Engine) Composed() string { return e.buf.String() }

// RawInput returns the literal keys typed for the current word.
func (e *Engine) RawInput() string { return e.raw.String() }

// OnKey processes one key press. It never panics: an internal fault clears
// the word and lets the host handle the key.
func (e *Engine) OnKey(k keys.Keystroke) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("recovered on key %d: %v", k.Code, r)
			e.clearWord()
			res = Result{}
		}
	}()

	class, r := keys.Classify(k)
	switch class {
	case keys.ClassPassThrough:
		return Result{}
	case keys.ClassLetter:
		return e.onChar(r, k.Upper())
	case keys.ClassDigit:
		return e.onChar(r, false)
	case keys.ClassSpace:
		return e.onSpace()
	case keys.ClassBackspace:
		return e.onBackspace()
	case keys.ClassEscape:
		return e.onEscape()
	default:
		return e.onBreak(r)
	}
}

func (e *Engine) clearWord() {
	e.buf.Clear()
	e.raw.Clear()
	e.sylStart = -1
	e.last = lastNone
	e.lastN = 0
	e.wSkipped = false
	e.literal = false
	e.englishWord = false
	e.overflow = false
}

// diverged reports whether the screen differs from the literal keys.
func (e *Engine) diverged() bool {
	if e.buf.Empty() {
		return false
	}
	return e.buf.HasTransforms() || e.buf.Len() != e.raw.Len()
}

// rebuild emits the buffer tail starting at from, replacing what the screen
// showed when the buffer was before chars long.
func (e *Engine) rebuild(before, from int) Result {
	if from > before {
		from = before
	}
	if from < 0 {
		from = 0
	}
	e.out = e.buf.AppendRunes(e.out[:0], from)
	return Result{Consumed: true, Backspace: before - from, Chars: e.out}
}

func (e *Engine) emit(backspace int, text string, boundary rune) Result {
	e.out = append(e.out[:0], []rune(text)...)
	if boundary != 0 {
		e.out = append(e.out, boundary)
	}
	return Result{Consumed: true, Backspace: backspace, Chars: e.out}
}

func (e *Engine) rawLower() []byte {
	return e.raw.AppendLower(e.scratch[:0])
}
