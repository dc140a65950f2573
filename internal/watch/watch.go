// SPDX-License-Identifier: MIT

// Package watch re-runs a callback when model files change on disk.
//
// Parent directories are watched rather than the files themselves, so
// editors that save through rename-and-replace are still seen. Rapid saves
// of one file are debounced into a single callback.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period a file must reach before its callback runs.
const DefaultDebounce = 300 * time.Millisecond

const tick = 50 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher calls OnChange for every settled change of a watched file.
type Watcher struct {
	fs       *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	debounce time.Duration
	logger   *zap.Logger
	pending  map[string]time.Time
}

// New watches paths. onChange receives the cleaned absolute path and runs
// on the goroutine calling Run.
func New(paths []string, onChange func(path string), opts ...Option) (*Watcher, error) {
	w := &Watcher{
		files:    map[string]bool{},
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
		pending:  map[string]time.Time{},
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %q: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)
	for _, d := range sorted {
		if err = fw.Add(d); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %q: %w", d, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", d))
	}
	w.fs = fw

	return w, nil
}

// Run blocks until ctx is done, then releases the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if !w.files[path] {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	w.pending[path] = time.Now()
}

// flush fires the callbacks of files quiet for at least the debounce period,
// in path order.
func (w *Watcher) flush(now time.Time) {
	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)
	for _, path := range ready {
		delete(w.pending, path)
		w.logger.Info("model changed", zap.String("path", path))
		w.onChange(path)
	}
}
