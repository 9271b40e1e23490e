package interval

import (
	"log/slog"
	"time"

	"danaoverlay/internal/core/model"
)

// TickInterval is the countdown cadence.
const TickInterval = time.Second

// Machine is the work/pause interval state machine.
//
// Machine is not safe for concurrent use. All calls, including ticks delivered
// by the Scheduler, must happen on one event thread.
type Machine struct {
	pending   model.Intervals
	active    model.Intervals
	phase     Phase
	round     int
	timeLeft  int
	scheduler Scheduler
	cancel    func()
	session   uint64
	observers []func(Snapshot)
	logger    *slog.Logger
}

// New creates an idle Machine. A nil scheduler leaves ticking to the caller.
func New(intervals model.Intervals, scheduler Scheduler) *Machine {
	if intervals.Validate() != nil {
		intervals = model.DefaultIntervals()
	}
	return &Machine{
		pending:   intervals,
		active:    intervals,
		phase:     PhaseIdle,
		round:     1,
		scheduler: scheduler,
		logger:    slog.Default(),
	}
}

// SetLogger replaces the logger used for caller errors.
func (machine *Machine) SetLogger(logger *slog.Logger) {
	if logger != nil {
		machine.logger = logger
	}
}

// Observe registers a callback invoked after every state change.
func (machine *Machine) Observe(observer func(Snapshot)) {
	machine.observers = append(machine.observers, observer)
}

// Intervals returns the configuration the next Start will use.
func (machine *Machine) Intervals() model.Intervals {
	return machine.pending
}

// Start begins a new session at round one, discarding any session in progress.
func (machine *Machine) Start() {
	machine.cancelSchedule()
	machine.session++
	machine.active = machine.pending
	machine.round = 1
	machine.phase = PhaseWorking
	machine.timeLeft = machine.active.WorkSeconds

	if machine.scheduler != nil {
		session := machine.session
		machine.cancel = machine.scheduler.Schedule(TickInterval, func() {
			if machine.session != session {
				return
			}
			machine.Tick()
		})
	}
	machine.notify()
}

// Stop halts ticking and returns to Idle. It is safe to call at any time.
func (machine *Machine) Stop() {
	machine.cancelSchedule()
	machine.session++
	machine.phase = PhaseIdle
	machine.round = 1
	machine.timeLeft = 0
	machine.notify()
}

// Tick advances the countdown by one second.
func (machine *Machine) Tick() {
	if !machine.phase.Running() {
		machine.logger.Debug("tick ignored", "phase", machine.phase)
		return
	}
	if machine.timeLeft > 0 {
		machine.timeLeft--
	}
	if machine.timeLeft == 0 {
		machine.advancePhase()
	}
	machine.notify()
}

// SetConfig validates and stores new intervals, then stops the session.
// On error the previous configuration stays in effect.
func (machine *Machine) SetConfig(work, pause, rounds int) error {
	intervals := model.Intervals{WorkSeconds: work, PauseSeconds: pause, TotalRounds: rounds}
	if err := intervals.Validate(); err != nil {
		return err
	}
	machine.pending = intervals
	machine.Stop()
	return nil
}

// Snapshot returns the current display state.
func (machine *Machine) Snapshot() Snapshot {
	total := machine.active.TotalRounds
	if machine.phase == PhaseIdle {
		total = machine.pending.TotalRounds
	}
	return Snapshot{
		Phase:       machine.phase,
		Round:       machine.round,
		TotalRounds: total,
		TimeLeft:    machine.timeLeft,
		IsWorkPhase: machine.phase != PhasePausing,
	}
}

func (machine *Machine) advancePhase() {
	switch machine.phase {
	case PhaseWorking:
		machine.phase = PhasePausing
		machine.timeLeft = machine.active.PauseSeconds
	case PhasePausing:
		machine.round++
		if machine.round <= machine.active.TotalRounds {
			machine.phase = PhaseWorking
			machine.timeLeft = machine.active.WorkSeconds
			return
		}
		machine.cancelSchedule()
		machine.session++
		machine.phase = PhaseCompleted
		machine.timeLeft = 0
	}
}

func (machine *Machine) cancelSchedule() {
	if machine.cancel != nil {
		machine.cancel()
		machine.cancel = nil
	}
}

func (machine *Machine) notify() {
	snapshot := machine.Snapshot()
	for _, observer := range machine.observers {
		observer(snapshot)
	}
}
