// Package ime wraps the engine for hosts that want text rather than edits.
// A Composer owns one engine and the line it has produced; it is safe for
// concurrent use.
package ime

import (
	"strings"
	"sync"

	"goxviet/internal/config"
	"goxviet/internal/engine"
	"goxviet/internal/english"
	"goxviet/internal/keys"
	"goxviet/internal/shortcut"
)

type Composer struct {
	mu      sync.Mutex
	eng     *engine.Engine
	enabled bool
	text    []rune
}

func NewComposer(cfg config.EngineConfig) *Composer {
	return NewComposerWithGuard(cfg, english.DefaultGuard())
}

func NewComposerWithGuard(cfg config.EngineConfig, guard *english.Guard) *Composer {
	return &Composer{eng: engine.NewWithGuard(cfg, guard), enabled: true, text: make([]rune, 0, 32)}
}

// Feed processes one keystroke and applies the edit to the composed line.
// The returned Result owns its Chars.
func (c *Composer) Feed(k keys.Keystroke) engine.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feed(k)
}

func (c *Composer) feed(k keys.Keystroke) engine.Result {
	var res engine.Result
	if c.enabled {
		res = c.eng.OnKey(k)
	}
	if res.Consumed {
		c.backspace(res.Backspace)
		c.text = append(c.text, res.Chars...)
		res.Chars = append([]rune(nil), res.Chars...)
		return res
	}
	switch k.Code {
	case keys.KeyBackspace:
		c.backspace(1)
	case keys.KeyEnter:
		c.text = append(c.text, '\n')
	default:
		if k.Ctrl {
			break
		}
		if r := keys.Printable(k); r != 0 {
			c.text = append(c.text, r)
		}
	}
	return res
}

func (c *Composer) backspace(n int) {
	if n > len(c.text) {
		n = len(c.text)
	}
	c.text = c.text[:len(c.text)-n]
}

// TypeKey types r through the engine. Runes with no key on the layout are
// appended literally and reported as false.
func (c *Composer) TypeKey(r rune) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typeKey(r)
}

func (c *Composer) typeKey(r rune) bool {
	k, ok := keys.FromRune(r)
	if !ok {
		c.eng.ResetBuffer()
		c.text = append(c.text, r)
		return false
	}
	c.feed(k)
	return true
}

// TypeString types every rune of s and returns the composed line.
func (c *Composer) TypeString(s string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range s {
		c.typeKey(r)
	}
	return string(c.text)
}

func (c *Composer) AppendLiteral(r rune) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.ResetBuffer()
	c.text = append(c.text, r)
}

func (c *Composer) Space() {
	c.Feed(keys.Keystroke{Code: keys.KeySpace})
}

func (c *Composer) Backspace() {
	c.Feed(keys.Keystroke{Code: keys.KeyBackspace})
}

// Enter ends the line and returns it without the newline.
func (c *Composer) Enter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feed(keys.Keystroke{Code: keys.KeyEnter})
	line := strings.TrimSuffix(string(c.text), "\n")
	c.text = make([]rune, 0, 32)
	return line
}

// FlushText ends the current word and returns the line so far.
func (c *Composer) FlushText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.ResetBuffer()
	return string(c.text)
}

func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.ResetAll()
	c.text = c.text[:0]
}

func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.text)
}

// Preedit is the word still open for editing.
func (c *Composer) Preedit() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Composed()
}

func (c *Composer) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled switches Vietnamese input. While disabled every key is typed
// as is.
func (c *Composer) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled != enabled {
		c.eng.ResetAll()
	}
	c.enabled = enabled
}

// Toggle flips Vietnamese input and returns the new state.
func (c *Composer) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.ResetAll()
	c.enabled = !c.enabled
	return c.enabled
}

func (c *Composer) Config() config.EngineConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Config()
}

func (c *Composer) SetConfig(cfg config.EngineConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.SetConfig(cfg)
}

func (c *Composer) Guard() *english.Guard {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Guard()
}

// SetGuard replaces the English word list used by the engine.
func (c *Composer) SetGuard(guard *english.Guard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.SetGuard(guard)
}

func (c *Composer) AddShortcut(s shortcut.Shortcut) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.AddShortcut(s)
}

// LoadShortcuts replaces the shortcut table with the entries in list.
func (c *Composer) LoadShortcuts(list []shortcut.Shortcut) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.ClearShortcuts()
	return c.eng.Shortcuts().Import(list)
}

func (c *Composer) ShortcutCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.ShortcutCount()
}
