package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"namepick/internal/debounce"
)

// reloadQuiet is how long the file must stay untouched before a reload
// runs. Editors emit several events per save; only the last one counts.
const reloadQuiet = 200 * time.Millisecond

// Watcher reloads the config file when it changes on disk. The parent
// directory is watched rather than the file itself because editors
// replace files by rename, which drops a file-level watch.
type Watcher struct {
	svc       ConfigService
	watcher   *fsnotify.Watcher
	debouncer *debounce.Debouncer
	onReload  func(*Config)
	logger    *log.Logger
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewWatcher starts watching the service's config file. onReload runs on
// the watcher's goroutine after each settled change; callers hand results
// off to their own loop rather than mutating shared state inside it.
func NewWatcher(svc ConfigService, logger *log.Logger, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(svc.Path())
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	w := &Watcher{
		svc:       svc,
		watcher:   fw,
		debouncer: debounce.New(reloadQuiet),
		onReload:  onReload,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.svc.Path()) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("config change detected", "op", event.Op.String())
			w.debouncer.Debounce(w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.svc.LoadFromPath(w.svc.Path())
	if err != nil {
		// Keep the running config; a half-written file will fire again
		w.logger.Warn("failed to reload config", "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.svc.Path())
	w.onReload(cfg)
}

// Close stops the watcher, cancels any pending reload and releases the
// underlying fsnotify resources. Safe to call more than once.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.debouncer.Cancel()
		w.watcher.Close()
	})
}
