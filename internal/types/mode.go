package types

import (
	"fmt"
	"strings"
)

type InputMethod int

const (
	MethodTelex InputMethod = iota
	MethodVNI
)

func (m InputMethod) String() string {
	switch m {
	case MethodTelex:
		return "telex"
	case MethodVNI:
		return "vni"
	default:
		return "unknown"
	}
}

func ParseInputMethod(name string) (InputMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "telex":
		return MethodTelex, nil
	case "vni":
		return MethodVNI, nil
	default:
		return MethodTelex, fmt.Errorf("unknown input method %q", name)
	}
}

// ToneStyle selects where a tone sits on oa, oe and uy without a final
// consonant: hòa (traditional) or hoà (modern).
type ToneStyle int

const (
	ToneModern ToneStyle = iota
	ToneTraditional
)

func (s ToneStyle) String() string {
	switch s {
	case ToneModern:
		return "modern"
	case ToneTraditional:
		return "traditional"
	default:
		return "unknown"
	}
}

func ParseToneStyle(name string) (ToneStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "modern", "new":
		return ToneModern, nil
	case "traditional", "old", "classic":
		return ToneTraditional, nil
	default:
		return ToneModern, fmt.Errorf("unknown tone style %q", name)
	}
}
