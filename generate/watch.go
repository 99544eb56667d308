package generate

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/pystub/errors"
	"github.com/teranos/pystub/logger"
)

// RegenerateFunc is called after descriptor files changed.
type RegenerateFunc func() error

// Watcher watches descriptor files and calls a regenerate callback once
// changes have settled.
type Watcher struct {
	watcher        *fsnotify.Watcher
	files          map[string]struct{}
	regenerate     RegenerateFunc
	debouncePeriod time.Duration

	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for the given descriptor files. Their
// parent directories are watched so editors that replace files on save
// are still seen.
func NewWatcher(files []string, debounce time.Duration, regenerate RegenerateFunc) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:        watcher,
		files:          make(map[string]struct{}, len(files)),
		regenerate:     regenerate,
		debouncePeriod: debounce,
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
	}
	return w, nil
}

// Run processes file system events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Infow("Descriptor change detected",
				logger.FieldPath, event.Name,
				"op", event.Op.String())
			w.scheduleRegenerate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// relevant reports whether event touches a watched descriptor.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// scheduleRegenerate debounces rapid file changes and triggers regeneration
func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.regenerate(); err != nil {
			logger.Errorw("Regeneration failed", logger.FieldError, err)
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}
