package document

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/alenalex/mcutil/internal/executor"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher dispatches a callback whenever a watched file changes on disk.
type Watcher struct {
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher returns a Watcher. A non-positive debounce uses DefaultDebounce.
func NewWatcher(debounce time.Duration, logger *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{debounce: debounce, logger: logger.Named("watcher")}
}

// Watch blocks until ctx is cancelled, submitting onChange to exec once per
// debounced burst of writes to path. The parent directory is watched so that
// editors replacing the file atomically are still observed.
//
// Precondition: the directory containing path must exist.
// Postcondition: Returns nil on cancellation, or an error if watching could not start.
func (w *Watcher) Watch(ctx context.Context, path string, exec executor.Executor, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.logger.Info("watching file", zap.String("path", abs))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.String("path", abs), zap.Error(err))
		case <-fire:
			fire = nil
			w.logger.Debug("file changed", zap.String("path", abs))
			exec.Submit(onChange)
		}
	}
}

// WatchDocument reloads doc whenever its file changes, then calls onReload with
// the reload result. onReload may be nil.
func (w *Watcher) WatchDocument(ctx context.Context, doc Document, exec executor.Executor, onReload func(error)) error {
	if doc.Path() == "" {
		return fmt.Errorf("document has no backing file")
	}
	return w.Watch(ctx, doc.Path(), exec, func() {
		err := doc.Reload()
		if err != nil {
			w.logger.Warn("reloading document", zap.String("path", doc.Path()), zap.Error(err))
		}
		if onReload != nil {
			onReload(err)
		}
	})
}
