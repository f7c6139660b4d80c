package app

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"sync"

	"goxviet/internal/common"
	engineconfig "goxviet/internal/config"
	"goxviet/internal/english"
	"goxviet/internal/shortcut"
	"goxviet/pkg/ime"
)

// Translator types whole lines through a fresh composer. The pipe host and
// the socket server share it; its settings can be swapped while in use.
type Translator struct {
	mu        sync.RWMutex
	cfg       engineconfig.EngineConfig
	guard     *english.Guard
	shortcuts []shortcut.Shortcut
}

func NewTranslator(cfg engineconfig.EngineConfig, guard *english.Guard, shortcuts []shortcut.Shortcut) *Translator {
	return &Translator{cfg: cfg, guard: guard, shortcuts: shortcuts}
}

func (t *Translator) Update(cfg engineconfig.EngineConfig, guard *english.Guard, shortcuts []shortcut.Shortcut) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg, t.guard, t.shortcuts = cfg, guard, shortcuts
}

func (t *Translator) Translate(line string) string {
	t.mu.RLock()
	composer := ime.NewComposerWithGuard(t.cfg, t.guard)
	if len(t.shortcuts) > 0 {
		if _, err := composer.LoadShortcuts(t.shortcuts); err != nil {
			slog.Warn("shortcuts partially loaded", "err", err)
		}
	}
	t.mu.RUnlock()

	composer.TypeString(line)
	// a line end is a word boundary
	composer.Space()
	composer.Backspace()
	return composer.FlushText()
}

type TranslationServer struct {
	listener net.Listener
	socket   string
	errCh    chan error
}

func StartTranslationServer(path string, translator *Translator, log *slog.Logger) (*TranslationServer, error) {
	if path == "" {
		return nil, nil
	}
	if err := common.EnsureSocketDir(path); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o660); err != nil && !errors.Is(err, os.ErrNotExist) {
		listener.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("chmod %s: %w", path, err)
	}

	srv := &TranslationServer{listener: listener, socket: path, errCh: make(chan error, 1)}
	go func() {
		srv.errCh <- serveTranslations(listener, translator, log)
		close(srv.errCh)
	}()
	return srv, nil
}

func (s *TranslationServer) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
}

func (s *TranslationServer) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func serveTranslations(listener net.Listener, translator *Translator, log *slog.Logger) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := handleTranslationConnection(c, translator); err != nil {
				log.Warn("translation connection failed", "err", err)
			}
		}(conn)
	}
}

func handleTranslationConnection(conn net.Conn, translator *Translator) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(conn)
	for scanner.Scan() {
		response := translator.Translate(scanner.Text())
		if _, err := writer.WriteString(response); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

// TranslateViaSocket asks a running session to convert text.
func TranslateViaSocket(socketPath, text string) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := fmt.Fprintln(conn, text); err != nil {
		return "", err
	}

	reader := bufio.NewReader(conn)
	response, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(response, "\n"), nil
}
