package config

import (
	"fmt"
	"strings"

	"goxviet/internal/keys"
	"goxviet/internal/types"
)

// ShortcutSource picks which text a shortcut trigger is matched against.
type ShortcutSource int

const (
	SourceComposed ShortcutSource = iota
	SourceRaw
)

func (s ShortcutSource) String() string {
	switch s {
	case SourceComposed:
		return "composed"
	case SourceRaw:
		return "raw"
	default:
		return "unknown"
	}
}

func ParseShortcutSource(name string) (ShortcutSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "composed":
		return SourceComposed, nil
	case "raw":
		return SourceRaw, nil
	default:
		return SourceComposed, ConfigError{msg: fmt.Sprintf("unknown shortcut source '%s'", name)}
	}
}

type EngineConfig struct {
	Method    types.InputMethod
	ToneStyle types.ToneStyle
	// SmartMode enables the English-word guard and auto-restore on space.
	SmartMode      bool
	InstantRestore bool
	EscRestore     bool
	// FreeTone skips syllable validation before placing a tone.
	FreeTone         bool
	ShortcutsEnabled bool
	// SkipWShortcut keeps a Telex w that starts a word from turning into ư.
	SkipWShortcut  bool
	ShortcutSource ShortcutSource
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Method:           types.MethodTelex,
		ToneStyle:        types.ToneModern,
		SmartMode:        true,
		InstantRestore:   true,
		ShortcutsEnabled: true,
		ShortcutSource:   SourceComposed,
	}
}

func (c EngineConfig) Validate() error {
	switch c.Method {
	case types.MethodTelex, types.MethodVNI:
	default:
		return ConfigError{msg: fmt.Sprintf("invalid input method %d", c.Method)}
	}
	switch c.ToneStyle {
	case types.ToneModern, types.ToneTraditional:
	default:
		return ConfigError{msg: fmt.Sprintf("invalid tone style %d", c.ToneStyle)}
	}
	switch c.ShortcutSource {
	case SourceComposed, SourceRaw:
	default:
		return ConfigError{msg: fmt.Sprintf("invalid shortcut source %d", c.ShortcutSource)}
	}
	if c.InstantRestore && !c.SmartMode {
		return ConfigError{msg: "instant_restore requires smart_mode"}
	}
	return nil
}

// Toggle is the chord that switches Vietnamese input on and off in a host.
type Toggle struct {
	Key  keys.Code
	Ctrl bool
}

func (t Toggle) Matches(k keys.Keystroke) bool {
	return k.Code == t.Key && k.Ctrl == t.Ctrl
}

func DefaultToggle() Toggle {
	return Toggle{Key: keys.KeySpace, Ctrl: true}
}

// ParseToggle reads chords such as "ctrl+space", "ctrl+z" or "f12". Only
// ctrl is accepted as a modifier: hosts fold alt and meta into the same
// flag, so an alt chord would also fire on ctrl.
func ParseToggle(value string) (Toggle, error) {
	tokens := strings.Split(value, "+")
	toggle := Toggle{}
	for i, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			return Toggle{}, ConfigError{msg: fmt.Sprintf("invalid toggle '%s'", value)}
		}
		if i < len(tokens)-1 {
			switch token {
			case "ctrl", "control":
				toggle.Ctrl = true
			case "alt", "meta", "super":
				return Toggle{}, ConfigError{msg: fmt.Sprintf("modifier '%s' in toggle '%s' is not supported, use ctrl", token, value)}
			default:
				return Toggle{}, ConfigError{msg: fmt.Sprintf("unknown modifier '%s' in toggle '%s'", token, value)}
			}
			continue
		}
		code, err := parseKeycode(token)
		if err != nil {
			return Toggle{}, err
		}
		toggle.Key = code
	}
	return toggle, nil
}

func parseKeycode(name string) (keys.Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return 0, ConfigError{msg: "empty key name"}
	}

	aliases := map[string]string{
		"ESCAPE": "KEY_ESC",
		"RETURN": "KEY_ENTER",
		"DEL":    "KEY_DELETE",
		"BS":     "KEY_BACKSPACE",
	}
	if alias, ok := aliases[normalized]; ok {
		normalized = alias
	}

	if !strings.HasPrefix(normalized, "KEY_") {
		normalized = "KEY_" + normalized
	}

	code, ok := keycodeTable()[normalized]
	if !ok {
		return 0, ConfigError{msg: fmt.Sprintf("unknown key code '%s'", name)}
	}
	return code, nil
}

func keycodeTable() map[string]keys.Code {
	table := map[string]keys.Code{}
	letters := []keys.Code{
		keys.KeyA, keys.KeyB, keys.KeyC, keys.KeyD, keys.KeyE, keys.KeyF, keys.KeyG,
		keys.KeyH, keys.KeyI, keys.KeyJ, keys.KeyK, keys.KeyL, keys.KeyM, keys.KeyN,
		keys.KeyO, keys.KeyP, keys.KeyQ, keys.KeyR, keys.KeyS, keys.KeyT, keys.KeyU,
		keys.KeyV, keys.KeyW, keys.KeyX, keys.KeyY, keys.KeyZ,
	}
	for i, code := range letters {
		table[fmt.Sprintf("KEY_%c", 'A'+i)] = code
	}
	table["KEY_0"] = keys.Key0
	for ch := '1'; ch <= '9'; ch++ {
		table[fmt.Sprintf("KEY_%c", ch)] = keys.Key1 + keys.Code(ch-'1')
	}

	additional := map[string]keys.Code{
		"KEY_MINUS":      keys.KeyMinus,
		"KEY_EQUAL":      keys.KeyEqual,
		"KEY_LEFTBRACE":  keys.KeyLeftBrace,
		"KEY_RIGHTBRACE": keys.KeyRightBrace,
		"KEY_BACKSLASH":  keys.KeyBackslash,
		"KEY_SEMICOLON":  keys.KeySemicolon,
		"KEY_APOSTROPHE": keys.KeyApostrophe,
		"KEY_GRAVE":      keys.KeyGrave,
		"KEY_COMMA":      keys.KeyComma,
		"KEY_DOT":        keys.KeyDot,
		"KEY_SLASH":      keys.KeySlash,
		"KEY_SPACE":      keys.KeySpace,
		"KEY_TAB":        keys.KeyTab,
		"KEY_ENTER":      keys.KeyEnter,
		"KEY_ESC":        keys.KeyEsc,
		"KEY_BACKSPACE":  keys.KeyBackspace,
		"KEY_DELETE":     keys.KeyDelete,
		"KEY_INSERT":     keys.KeyInsert,
		"KEY_HOME":       keys.KeyHome,
		"KEY_END":        keys.KeyEnd,
	}
	for name, code := range additional {
		table[name] = code
	}
	return table
}
