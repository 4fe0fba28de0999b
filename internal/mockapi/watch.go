package mockapi

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"coursehub/internal/domain"
	"coursehub/internal/logging"
	"coursehub/internal/store"
)

// SeedWatcher reloads a store whenever its seed file changes on disk.
type SeedWatcher struct {
	Path     string
	Store    domain.CourseStore
	Logger   logging.Logger
	Debounce time.Duration
	// OnReload, if set, is called after every successful reload.
	OnReload func(n int)
}

// Run watches until ctx is done. A seed that fails to parse is logged and
// the store keeps its current contents.
func (w *SeedWatcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	path := filepath.Clean(w.Path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("seed watcher error", "path", path, "error", err)
		case <-fire:
			w.reload(path, logger)
		}
	}
}

func (w *SeedWatcher) reload(path string, logger logging.Logger) {
	courses, err := store.LoadSeed(path)
	if err != nil {
		logger.Error("seed reload failed", "path", path, "error", err)
		return
	}
	w.Store.Replace(courses)
	logger.Info("seed reloaded", "path", path, "courses", len(courses))
	if w.OnReload != nil {
		w.OnReload(len(courses))
	}
}
