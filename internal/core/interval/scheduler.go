package interval

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler delivers periodic ticks until the returned cancel func is called.
type Scheduler interface {
	Schedule(interval time.Duration, tick func()) (cancel func())
}

// Dispatcher runs fn on the caller's event thread.
type Dispatcher func(fn func())

// Immediate runs fn on the ticking goroutine. Only suitable for tests.
func Immediate(fn func()) {
	fn()
}

// ClockScheduler ticks on a clockwork clock and hands each tick to a Dispatcher.
type ClockScheduler struct {
	clock    clockwork.Clock
	dispatch Dispatcher
}

// NewClockScheduler creates a scheduler. A nil clock uses the real clock.
func NewClockScheduler(clock clockwork.Clock, dispatch Dispatcher) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if dispatch == nil {
		dispatch = Immediate
	}
	return &ClockScheduler{clock: clock, dispatch: dispatch}
}

// Schedule starts a ticker goroutine. Cancel is idempotent and stops the goroutine.
func (scheduler *ClockScheduler) Schedule(interval time.Duration, tick func()) func() {
	if interval <= 0 {
		interval = TickInterval
	}
	ticker := scheduler.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				select {
				case <-done:
					return
				default:
				}
				scheduler.dispatch(tick)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}
