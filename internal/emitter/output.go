package emitter

import "goxviet/internal/engine"

// Output is what a host needs to put engine edits on screen. It is
// satisfied by Terminal and lets tests substitute lightweight fakes.
type Output interface {
	Close() error
	SendBackspace(count int) error
	SendText(text string) error
}

var _ Output = (*Terminal)(nil)

// Apply performs res on out: the backspaces first, then the replacement.
func Apply(out Output, res engine.Result) error {
	if !res.Consumed {
		return nil
	}
	if res.Backspace > 0 {
		if err := out.SendBackspace(res.Backspace); err != nil {
			return err
		}
	}
	if len(res.Chars) > 0 {
		return out.SendText(string(res.Chars))
	}
	return nil
}
