package manifest

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
)

const debounceWindow = 250 * time.Millisecond

// Watcher hot-reloads the manifest directory. Changes debounce into one
// reload so an editor's write-rename dance triggers a single sync, and a
// reload that fails to parse keeps the previous rule set.
type Watcher struct {
	dir      string
	engine   *Engine
	logger   *logging.Logger
	fs       *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher over the manifest directory. The directory
// must exist; callers that tolerate a missing one skip the watcher.
func NewWatcher(dir string, engine *Engine, logger *logging.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, err
	}
	return &Watcher{
		dir:    dir,
		engine: engine,
		logger: logger,
		fs:     fs,
		done:   make(chan struct{}),
	}, nil
}

// Start begins watching. Reloads run on the watcher goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop ends watching. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fs.Close()
	})
}

func (w *Watcher) loop() {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !IsManifestFile(event.Name) || event.Op&relevant == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("manifest watch error", zap.Error(err))

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	entries, err := LoadDir(w.dir)
	if err != nil {
		w.logger.Warn("manifest reload failed, keeping previous rules", zap.Error(err))
		return
	}
	w.engine.Sync(entries)
	w.logger.Info("manifests reloaded",
		zap.String("dir", w.dir),
		zap.Int("entries", len(entries)),
	)
}
