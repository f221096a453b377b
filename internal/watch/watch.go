// Package watch reloads a config file when it changes on disk and turns
// each revision into a fresh run.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
)

const DefaultDebounce = 150 * time.Millisecond

var ErrClosed = errors.New("watch: watcher is closed")

// Watcher reports debounced changes to one file. It watches the parent
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	fs       *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, debounce: debounce, onChange: onChange, fs: fs}, nil
}

// Run delivers changes until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()
	logger := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("config changed", "path", ev.Name, "op", ev.Op.String())
			w.schedule()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.timer = nil
	w.mu.Unlock()
	if !closed {
		w.onChange()
	}
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.fs.Close()
}

// Reloader regenerates a run from a config file. A failed reload reports
// through OnError and leaves the previous run in place.
type Reloader struct {
	Registry *catalog.Registry
	Path     string
	OnRun    func(*catalog.Run)
	OnError  func(error)
}

func (r *Reloader) Reload(ctx context.Context) {
	run, err := r.generate(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("reload failed", "path", r.Path, "err", err)
		if r.OnError != nil {
			r.OnError(err)
		}
		return
	}
	logging.FromContext(ctx).Info("reloaded", "algorithm", run.Algorithm, "id", run.ID, "steps", run.Trace.Len())
	if r.OnRun != nil {
		r.OnRun(run)
	}
}

func (r *Reloader) generate(ctx context.Context) (*catalog.Run, error) {
	cfg, err := config.Load(r.Path)
	if err != nil {
		return nil, err
	}
	req, err := cfg.Request()
	if err != nil {
		return nil, err
	}
	return r.Registry.Generate(ctx, req)
}

// Watch reloads r whenever its file changes, until ctx is done.
func Watch(ctx context.Context, r *Reloader, debounce time.Duration) error {
	w, err := New(r.Path, debounce, func() { r.Reload(ctx) })
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
