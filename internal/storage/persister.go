package storage

import (
	"log/slog"
	"sync"
	"time"

	"danaoverlay/internal/core/model"

	"github.com/jonboulle/clockwork"
)

// Saver writes a full settings record.
type Saver interface {
	Save(config model.TimerConfig) error
}

// Persister moves settings writes off the event thread. Writes are serialized
// and only the newest pending value is written.
type Persister struct {
	saver  Saver
	clock  clockwork.Clock
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending *model.TimerConfig
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewPersister starts the writer goroutine. A positive delay is a trailing
// debounce: a write happens once no Save arrived for delay, so bursts such as
// window drags produce one write.
func NewPersister(saver Saver, clock clockwork.Clock, delay time.Duration) *Persister {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	persister := &Persister{
		saver:  saver,
		clock:  clock,
		delay:  delay,
		logger: slog.Default(),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go persister.run()
	return persister
}

// Save queues config. It never blocks on I/O.
func (persister *Persister) Save(config model.TimerConfig) error {
	config = config.Clone()
	persister.mu.Lock()
	if persister.closed {
		persister.mu.Unlock()
		return persister.saver.Save(config)
	}
	persister.pending = &config
	persister.mu.Unlock()

	select {
	case persister.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close writes any pending value and stops the writer.
func (persister *Persister) Close() {
	persister.mu.Lock()
	if persister.closed {
		persister.mu.Unlock()
		return
	}
	persister.closed = true
	persister.mu.Unlock()

	close(persister.stop)
	<-persister.done
	persister.flush()
}

func (persister *Persister) run() {
	defer close(persister.done)
	for {
		select {
		case <-persister.stop:
			return
		case <-persister.wake:
		}

		if persister.delay > 0 && !persister.waitQuiet() {
			return
		}
		persister.flush()
	}
}

// waitQuiet returns once delay passes without another Save. It reports false
// when the persister is closing.
func (persister *Persister) waitQuiet() bool {
	timer := persister.clock.NewTimer(persister.delay)
	defer timer.Stop()
	for {
		select {
		case <-persister.stop:
			return false
		case <-persister.wake:
			timer.Reset(persister.delay)
		case <-timer.Chan():
			return true
		}
	}
}

func (persister *Persister) flush() {
	persister.mu.Lock()
	pending := persister.pending
	persister.pending = nil
	persister.mu.Unlock()

	if pending == nil {
		return
	}
	if err := persister.saver.Save(*pending); err != nil {
		persister.logger.Warn("settings not saved", "error", err)
	}
}
