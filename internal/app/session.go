package app

import (
	"log/slog"

	"goxviet/internal/config"
	"goxviet/internal/emitter"
	"goxviet/internal/keys"
	"goxviet/pkg/ime"
)

// Session feeds keystrokes to a composer and mirrors the result on an
// output. Keys the engine leaves alone are echoed as typed.
type Session struct {
	composer *ime.Composer
	out      emitter.Output
	toggle   config.Toggle
	log      *slog.Logger
}

func NewSession(composer *ime.Composer, out emitter.Output, toggle config.Toggle, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{composer: composer, out: out, toggle: toggle, log: log}
}

func (s *Session) SetToggle(toggle config.Toggle) { s.toggle = toggle }

// HandleKey processes one keystroke. It reports true when the session
// should end.
func (s *Session) HandleKey(k keys.Keystroke) (bool, error) {
	if isQuit(k) {
		return true, nil
	}
	if s.toggle.Matches(k) {
		on := s.composer.Toggle()
		s.log.Info("vietnamese input toggled", "enabled", on)
		return false, nil
	}

	res := s.composer.Feed(k)
	if res.Consumed {
		return false, emitter.Apply(s.out, res)
	}
	return false, s.echo(k)
}

func (s *Session) echo(k keys.Keystroke) error {
	switch k.Code {
	case keys.KeyBackspace:
		return s.out.SendBackspace(1)
	case keys.KeyEnter:
		return s.out.SendText("\r\n")
	}
	if k.Ctrl {
		return nil
	}
	if r := keys.Printable(k); r != 0 {
		return s.out.SendText(string(r))
	}
	return nil
}
