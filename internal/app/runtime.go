package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eiannone/keyboard"

	"goxviet/internal/cli"
	"goxviet/internal/common"
	"goxviet/internal/config"
	"goxviet/internal/emitter"
	"goxviet/internal/logging"
	"goxviet/pkg/ime"
)

type Runtime struct {
	opts       cli.Options
	settings   Settings
	log        *slog.Logger
	composer   *ime.Composer
	terminal   *emitter.Terminal
	session    *Session
	translator *Translator
	cleanups   []func()
}

func NewRuntime(opts cli.Options) *Runtime {
	return &Runtime{opts: opts}
}

func (rt *Runtime) Run(ctx context.Context) error {
	defer rt.cleanup()

	if err := rt.prepareSettings(); err != nil {
		return err
	}
	if err := rt.prepareLogging(); err != nil {
		return err
	}
	if err := rt.buildComposer(); err != nil {
		return err
	}
	server, err := rt.startServer()
	if err != nil {
		return err
	}
	watcher, err := rt.watchConfig(ctx)
	if err != nil {
		return err
	}

	events, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	rt.registerCleanup(func() { _ = keyboard.Close() })

	rt.terminal = emitter.NewTerminal(os.Stdout, rt.settings.Config.Encoding)
	rt.registerCleanup(func() { _ = rt.terminal.Close() })
	rt.session = NewSession(rt.composer, rt.terminal, rt.settings.Config.Toggle, rt.log)

	rt.log.Info("session started",
		"preset", rt.settings.Config.Preset,
		"method", rt.settings.Config.Engine.Method,
		"encoding", rt.settings.Config.Encoding)
	return rt.runEventLoop(ctx, events, watcher, server)
}

func (rt *Runtime) prepareSettings() error {
	st, err := LoadSettings(rt.opts)
	if err != nil {
		return err
	}
	rt.settings = st
	return nil
}

func (rt *Runtime) prepareLogging() error {
	log, closer, err := logging.New(rt.settings.Config.Log)
	if err != nil {
		return err
	}
	rt.log = log
	rt.registerCleanup(func() { _ = closer.Close() })
	return nil
}

func (rt *Runtime) buildComposer() error {
	st := rt.settings
	rt.composer = ime.NewComposerWithGuard(st.Config.Engine, st.Guard)
	if len(st.Shortcuts) > 0 {
		n, err := rt.composer.LoadShortcuts(st.Shortcuts)
		if err != nil {
			return fmt.Errorf("shortcuts: %w", err)
		}
		rt.log.Info("shortcuts loaded", "count", n, "file", st.Config.ShortcutsFile)
	}
	rt.translator = NewTranslator(st.Config.Engine, st.Guard, st.Shortcuts)
	return nil
}

func (rt *Runtime) startServer() (*TranslationServer, error) {
	if !rt.opts.Serve {
		return nil, nil
	}
	path := rt.opts.SocketPath
	if path == "" {
		path = common.DefaultSocketPath()
	}
	server, err := StartTranslationServer(path, rt.translator, rt.log)
	if err != nil {
		return nil, err
	}
	rt.registerCleanup(server.Close)
	rt.log.Info("serving conversions", "socket", path)
	return server, nil
}

func (rt *Runtime) watchConfig(ctx context.Context) (*config.Watcher, error) {
	if rt.opts.NoWatch {
		return nil, nil
	}
	if _, err := os.Stat(rt.settings.ConfigPath); err != nil {
		return nil, nil
	}
	watcher, err := config.Watch(ctx, rt.settings.ConfigPath)
	if err != nil {
		return nil, err
	}
	return watcher, nil
}

func (rt *Runtime) runEventLoop(ctx context.Context, events <-chan keyboard.KeyEvent, watcher *config.Watcher, server *TranslationServer) error {
	var changes <-chan struct{}
	var watchErrs <-chan error
	if watcher != nil {
		changes = watcher.Changes()
		watchErrs = watcher.Errors()
	}
	serverErrCh := server.Err()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				if errors.Is(ev.Err, io.EOF) {
					return nil
				}
				return fmt.Errorf("read key: %w", ev.Err)
			}
			k, ok := translateEvent(ev)
			if !ok {
				continue
			}
			quit, err := rt.session.HandleKey(k)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-changes:
			rt.reload()
		case err := <-watchErrs:
			rt.log.Warn("config watch", "err", err)
		case err, ok := <-serverErrCh:
			if !ok {
				serverErrCh = nil
				continue
			}
			if err != nil {
				return fmt.Errorf("translation server: %w", err)
			}
			serverErrCh = nil
		}
	}
}

// reload applies a changed config file. A bad file keeps the running
// settings.
func (rt *Runtime) reload() {
	st, err := LoadSettings(rt.opts)
	if err != nil {
		rt.log.Warn("config reload failed", "path", rt.settings.ConfigPath, "err", err)
		return
	}
	rt.composer.SetConfig(st.Config.Engine)
	rt.composer.SetGuard(st.Guard)
	if _, err := rt.composer.LoadShortcuts(st.Shortcuts); err != nil {
		rt.log.Warn("shortcuts reload", "err", err)
	}
	if err := rt.terminal.SetEncoding(st.Config.Encoding); err != nil {
		rt.log.Warn("output encoding", "err", err)
	}
	rt.session.SetToggle(st.Config.Toggle)
	rt.translator.Update(st.Config.Engine, st.Guard, st.Shortcuts)
	rt.settings = st
	rt.log.Info("config reloaded", "path", st.ConfigPath, "method", st.Config.Engine.Method)
}

func (rt *Runtime) registerCleanup(fn func()) {
	if fn == nil {
		return
	}
	rt.cleanups = append([]func(){fn}, rt.cleanups...)
}

func (rt *Runtime) cleanup() {
	for _, fn := range rt.cleanups {
		fn()
	}
	rt.cleanups = nil
}
