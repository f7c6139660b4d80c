package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reports writes to a single config file. Bursts of events are
// collapsed into one notification.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	errs    chan error
}

// Watch follows path until ctx is done. The parent directory is watched so
// editors that replace the file are still seen.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
	}
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) Changes() <-chan struct{} { return w.changes }

func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) loop(ctx context.Context) {
	defer w.watcher.Close()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDelay, w.notify)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
