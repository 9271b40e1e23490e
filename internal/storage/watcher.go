package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"danaoverlay/internal/core/model"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
)

const defaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads the settings record after it changes on disk.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	clock    clockwork.Clock
	debounce time.Duration
	onReload func(model.TimerConfig)
	logger   *slog.Logger

	mu      sync.Mutex
	pending clockwork.Timer
	started bool
	stopped bool
	done    chan struct{}
}

// NewWatcher prepares a watcher for store. onReload runs on the watcher goroutine.
func NewWatcher(store *Store, clock clockwork.Clock, onReload func(model.TimerConfig)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Watcher{
		store:    store,
		watcher:  watcher,
		clock:    clock,
		debounce: defaultReloadDebounce,
		onReload: onReload,
		logger:   slog.Default().With("path", store.Path()),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce overrides the delay between the last event and the reload.
func (watcher *Watcher) SetDebounce(debounce time.Duration) {
	watcher.debounce = debounce
}

// Start watches the settings directory until ctx ends or Stop is called.
// The directory must exist.
func (watcher *Watcher) Start(ctx context.Context) error {
	settingsDir := filepath.Dir(watcher.store.Path())
	if err := watcher.watcher.Add(settingsDir); err != nil {
		return fmt.Errorf("watch settings directory %s: %w", settingsDir, err)
	}
	watcher.mu.Lock()
	watcher.started = true
	watcher.mu.Unlock()
	watcher.logger.Debug("watching settings")
	go watcher.loop(ctx)
	return nil
}

// Stop closes the underlying watcher and cancels any pending reload.
func (watcher *Watcher) Stop() error {
	watcher.mu.Lock()
	if watcher.stopped {
		watcher.mu.Unlock()
		return nil
	}
	watcher.stopped = true
	started := watcher.started
	if watcher.pending != nil {
		watcher.pending.Stop()
	}
	watcher.mu.Unlock()

	err := watcher.watcher.Close()
	if started {
		<-watcher.done
	}
	return err
}

func (watcher *Watcher) loop(ctx context.Context) {
	defer close(watcher.done)
	settingsFile := filepath.Base(watcher.store.Path())

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != settingsFile {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				watcher.scheduleReload()
			}
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return
			}
			watcher.logger.Warn("settings watcher error", "error", err)
		}
	}
}

func (watcher *Watcher) scheduleReload() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	if watcher.stopped {
		return
	}
	if watcher.pending != nil {
		watcher.pending.Stop()
	}
	watcher.pending = watcher.clock.AfterFunc(watcher.debounce, watcher.reload)
}

func (watcher *Watcher) reload() {
	watcher.mu.Lock()
	stopped := watcher.stopped
	watcher.mu.Unlock()
	if stopped {
		return
	}

	config, err := watcher.store.LoadSettings()
	if err != nil {
		watcher.logger.Warn("ignoring unreadable settings change", "error", err)
		return
	}
	if watcher.onReload != nil {
		watcher.onReload(config)
	}
}
