package interval

import (
	"testing"
	"time"

	"danaoverlay/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler records schedules so tests can fire ticks deterministically.
type manualScheduler struct {
	ticks     []func()
	cancelled []bool
}

func (scheduler *manualScheduler) Schedule(_ time.Duration, tick func()) func() {
	index := len(scheduler.ticks)
	scheduler.ticks = append(scheduler.ticks, tick)
	scheduler.cancelled = append(scheduler.cancelled, false)
	return func() {
		scheduler.cancelled[index] = true
	}
}

func (scheduler *manualScheduler) active() int {
	count := 0
	for _, cancelled := range scheduler.cancelled {
		if !cancelled {
			count++
		}
	}
	return count
}

func (scheduler *manualScheduler) fire(times int) {
	for i := 0; i < times; i++ {
		for index, tick := range scheduler.ticks {
			if !scheduler.cancelled[index] {
				tick()
			}
		}
	}
}

func newMachine(work, pause, rounds int) (*Machine, *manualScheduler) {
	scheduler := &manualScheduler{}
	intervals := model.Intervals{WorkSeconds: work, PauseSeconds: pause, TotalRounds: rounds}
	return New(intervals, scheduler), scheduler
}

func ticks(machine *Machine, count int) {
	for i := 0; i < count; i++ {
		machine.Tick()
	}
}

func TestNewMachineIsIdle(t *testing.T) {
	machine, scheduler := newMachine(3, 2, 2)
	snapshot := machine.Snapshot()
	assert.Equal(t, PhaseIdle, snapshot.Phase)
	assert.Equal(t, 1, snapshot.Round)
	assert.Equal(t, 2, snapshot.TotalRounds)
	assert.Equal(t, "START", snapshot.TimeText())
	assert.Equal(t, "", snapshot.StatusText())
	assert.Equal(t, HintIdle, snapshot.Hint())
	assert.Zero(t, scheduler.active())
}

func TestNewMachineFallsBackToDefaults(t *testing.T) {
	machine := New(model.Intervals{}, nil)
	assert.Equal(t, model.DefaultIntervals(), machine.Intervals())
}

func TestExampleScenario(t *testing.T) {
	machine, _ := newMachine(3, 2, 2)

	machine.Start()
	assert.Equal(t, Snapshot{Phase: PhaseWorking, Round: 1, TotalRounds: 2, TimeLeft: 3, IsWorkPhase: true}, machine.Snapshot())

	ticks(machine, 3)
	assert.Equal(t, Snapshot{Phase: PhasePausing, Round: 1, TotalRounds: 2, TimeLeft: 2}, machine.Snapshot())
	assert.Equal(t, "PAUSE 1/2", machine.Snapshot().StatusText())

	ticks(machine, 2)
	assert.Equal(t, Snapshot{Phase: PhaseWorking, Round: 2, TotalRounds: 2, TimeLeft: 3, IsWorkPhase: true}, machine.Snapshot())
	assert.Equal(t, "WORK 2/2", machine.Snapshot().StatusText())

	ticks(machine, 3)
	assert.Equal(t, Snapshot{Phase: PhasePausing, Round: 2, TotalRounds: 2, TimeLeft: 2}, machine.Snapshot())

	ticks(machine, 2)
	snapshot := machine.Snapshot()
	assert.Equal(t, PhaseCompleted, snapshot.Phase)
	assert.Equal(t, 3, snapshot.Round)
	assert.Equal(t, 0, snapshot.TimeLeft)
	assert.Equal(t, "COMPLETED", snapshot.StatusText())
	assert.Equal(t, "FINISH", snapshot.TimeText())
	assert.Equal(t, HintIdle, snapshot.Hint())
}

func TestWorkPhaseEndsAfterWorkSecondsTicks(t *testing.T) {
	machine, _ := newMachine(25, 7, 4)
	machine.Start()
	ticks(machine, 24)
	assert.Equal(t, PhaseWorking, machine.Snapshot().Phase)
	assert.Equal(t, 1, machine.Snapshot().TimeLeft)

	machine.Tick()
	assert.Equal(t, PhasePausing, machine.Snapshot().Phase)
	assert.Equal(t, 7, machine.Snapshot().TimeLeft)
	assert.Equal(t, HintPausing, machine.Snapshot().Hint())
}

func TestFullCycleCompletes(t *testing.T) {
	const rounds = 5
	machine, scheduler := newMachine(4, 3, rounds)
	machine.Start()

	lastWorkingRound := 0
	machine.Observe(func(snapshot Snapshot) {
		if snapshot.Phase == PhaseWorking {
			lastWorkingRound = snapshot.Round
		}
	})
	scheduler.fire(rounds * (4 + 3))

	assert.Equal(t, PhaseCompleted, machine.Snapshot().Phase)
	assert.Equal(t, rounds, lastWorkingRound)
	assert.Zero(t, scheduler.active(), "completion must cancel the tick schedule")
}

func TestTickWhileNotRunningIsIgnored(t *testing.T) {
	machine, _ := newMachine(3, 2, 1)
	machine.Tick()
	assert.Equal(t, PhaseIdle, machine.Snapshot().Phase)

	machine.Start()
	ticks(machine, 5)
	require.Equal(t, PhaseCompleted, machine.Snapshot().Phase)

	before := machine.Snapshot()
	machine.Tick()
	assert.Equal(t, before, machine.Snapshot())
}

func TestStopIsIdempotent(t *testing.T) {
	for _, advance := range []int{0, 1, 3, 4, 100} {
		machine, scheduler := newMachine(3, 2, 2)
		machine.Start()
		ticks(machine, advance)

		machine.Stop()
		first := machine.Snapshot()
		machine.Stop()

		assert.Equal(t, first, machine.Snapshot())
		assert.Equal(t, PhaseIdle, first.Phase)
		assert.Equal(t, 0, first.TimeLeft)
		assert.Equal(t, "", first.StatusText())
		assert.Zero(t, scheduler.active())
	}
}

func TestStopFromObserverDuringTick(t *testing.T) {
	machine, scheduler := newMachine(3, 2, 2)
	machine.Observe(func(snapshot Snapshot) {
		if snapshot.Phase == PhasePausing {
			machine.Stop()
		}
	})
	machine.Start()
	scheduler.fire(10)

	assert.Equal(t, PhaseIdle, machine.Snapshot().Phase)
	assert.Zero(t, scheduler.active())
}

func TestRestartIgnoresStaleTicks(t *testing.T) {
	machine, scheduler := newMachine(10, 5, 1)
	machine.Start()
	stale := scheduler.ticks[0]

	machine.Start()
	stale()
	assert.Equal(t, 10, machine.Snapshot().TimeLeft)
	assert.Equal(t, 1, scheduler.active())

	scheduler.fire(1)
	assert.Equal(t, 9, machine.Snapshot().TimeLeft)
}

func TestSetConfigRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name                string
		work, pause, rounds int
	}{
		{"zero work", 0, 5, 1},
		{"negative work", -1, 5, 1},
		{"zero pause", 5, 0, 1},
		{"zero rounds", 5, 5, 0},
		{"too many rounds", 5, 5, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			machine, _ := newMachine(3, 2, 2)
			machine.Start()
			err := machine.SetConfig(tc.work, tc.pause, tc.rounds)
			require.ErrorIs(t, err, model.ErrInvalidConfig)
			assert.Equal(t, model.Intervals{WorkSeconds: 3, PauseSeconds: 2, TotalRounds: 2}, machine.Intervals())
			assert.Equal(t, PhaseWorking, machine.Snapshot().Phase, "rejected config must not interrupt the session")
		})
	}
}

func TestSetConfigStopsAndAppliesOnNextStart(t *testing.T) {
	machine, scheduler := newMachine(3, 2, 2)
	machine.Start()
	ticks(machine, 1)

	require.NoError(t, machine.SetConfig(60, 30, 4))
	assert.Equal(t, PhaseIdle, machine.Snapshot().Phase)
	assert.Equal(t, 4, machine.Snapshot().TotalRounds)
	assert.Zero(t, scheduler.active())

	machine.Start()
	assert.Equal(t, 60, machine.Snapshot().TimeLeft)
	assert.Equal(t, "WORK 1/4", machine.Snapshot().StatusText())
	assert.Equal(t, "01:00", machine.Snapshot().TimeText())
}

func TestObserversSeeEveryMutation(t *testing.T) {
	machine, _ := newMachine(2, 1, 1)
	var phases []Phase
	machine.Observe(func(snapshot Snapshot) {
		phases = append(phases, snapshot.Phase)
	})

	machine.Start()
	ticks(machine, 3)
	machine.Stop()

	assert.Equal(t, []Phase{PhaseWorking, PhaseWorking, PhasePausing, PhaseCompleted, PhaseIdle}, phases)
}
