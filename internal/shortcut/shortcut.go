package shortcut

import (
	"fmt"
	"strings"

	"goxviet/internal/types"
)

const (
	MaxShortcuts      = 200
	MaxReplacementLen = 255
)

// Condition says when a trigger fires.
type Condition int

const (
	OnWordBoundary Condition = iota
	Immediate
)

func (c Condition) String() string {
	switch c {
	case OnWordBoundary:
		return "boundary"
	case Immediate:
		return "immediate"
	default:
		return "unknown"
	}
}

func (c Condition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Condition) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "boundary", "word", "on_word_boundary":
		*c = OnWordBoundary
	case "immediate", "instant":
		*c = Immediate
	default:
		return fmt.Errorf("unknown trigger condition %q", text)
	}
	return nil
}

// CaseMode controls how the case of the typed trigger carries over.
type CaseMode int

const (
	// MatchCase upper-cases the expansion for an all-caps trigger and
	// capitalises it for a capitalised trigger.
	MatchCase CaseMode = iota
	Exact
)

func (m CaseMode) String() string {
	switch m {
	case MatchCase:
		return "match"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

func (m CaseMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *CaseMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "match", "match_case":
		*m = MatchCase
	case "exact":
		*m = Exact
	default:
		return fmt.Errorf("unknown case mode %q", text)
	}
	return nil
}

// Scope restricts a shortcut to one input method.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeTelex
	ScopeVNI
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeTelex:
		return "telex"
	case ScopeVNI:
		return "vni"
	default:
		return "unknown"
	}
}

func (s Scope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Scope) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "all":
		*s = ScopeAll
	case "telex":
		*s = ScopeTelex
	case "vni":
		*s = ScopeVNI
	default:
		return fmt.Errorf("unknown scope %q", text)
	}
	return nil
}

func (s Scope) Allows(method types.InputMethod) bool {
	switch s {
	case ScopeTelex:
		return method == types.MethodTelex
	case ScopeVNI:
		return method == types.MethodVNI
	default:
		return true
	}
}

type Shortcut struct {
	Trigger     string    `json:"trigger" toml:"trigger" yaml:"trigger"`
	Replacement string    `json:"replacement" toml:"replacement" yaml:"replacement"`
	Condition   Condition `json:"condition,omitempty" toml:"condition,omitempty" yaml:"condition,omitempty"`
	Case        CaseMode  `json:"case,omitempty" toml:"case,omitempty" yaml:"case,omitempty"`
	Scope       Scope     `json:"scope,omitempty" toml:"scope,omitempty" yaml:"scope,omitempty"`
}

// New builds a word-boundary shortcut for every input method.
func New(trigger, replacement string) Shortcut {
	return Shortcut{Trigger: trigger, Replacement: replacement}
}

func (s Shortcut) apply(typed string) string {
	if s.Case == Exact {
		return s.Replacement
	}
	if typed == "" {
		return s.Replacement
	}
	if strings.ToUpper(typed) == typed && strings.ToLower(typed) != typed {
		return strings.ToUpper(s.Replacement)
	}
	first := []rune(typed)[0]
	if strings.ToUpper(string(first)) == string(first) && strings.ToLower(string(first)) != string(first) {
		r := []rune(s.Replacement)
		if len(r) == 0 {
			return ""
		}
		return strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return s.Replacement
}
