package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"
	"github.com/san-kum/typist/internal/logging"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// WatcherOption customises a Watcher.
type WatcherOption func(*Watcher)

// WithWatchClock replaces the clock driving the debounce timer.
func WithWatchClock(c clock.Clock) WatcherOption {
	return func(w *Watcher) { w.clock = c }
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	clock    clock.Clock
	watcher  *fsnotify.Watcher
	onChange func(*Config, error)
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher watches the directory containing path, since editors that
// write via rename replace the file's inode. onChange receives the reloaded
// config, or the error that prevented loading it.
func NewWatcher(path string, onChange func(*Config, error), logger *slog.Logger, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		clock:    clock.New(),
		watcher:  fw,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins processing filesystem events.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.watchLoop()
}

// Stop ends the watch loop and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()

	// fire stays nil while no reload is pending
	var debounceTimer *clock.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = w.clock.Timer(w.debounce)
			fire = debounceTimer.C

		case <-fire:
			debounceTimer, fire = nil, nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "path", w.path, "error", err)
			} else {
				w.logger.Info("config reloaded", "path", w.path, "phrases", len(cfg.Phrases))
			}
			if w.onChange != nil {
				w.onChange(cfg, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}
