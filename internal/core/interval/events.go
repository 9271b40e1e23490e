package interval

import "fmt"

// Phase represents the current timer mode.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWorking   Phase = "working"
	PhasePausing   Phase = "pausing"
	PhaseCompleted Phase = "completed"
)

// Running reports whether the phase consumes ticks.
func (phase Phase) Running() bool {
	return phase == PhaseWorking || phase == PhasePausing
}

// ColorHint tells a renderer which palette to use.
type ColorHint string

const (
	HintIdle    ColorHint = "idle"
	HintWorking ColorHint = "working"
	HintPausing ColorHint = "pausing"
)

const (
	idleTimeText      = "START"
	completedTimeText = "FINISH"
	completedStatus   = "COMPLETED"
)

// Snapshot is an immutable view of the machine used for rendering.
type Snapshot struct {
	Phase       Phase
	Round       int
	TotalRounds int
	TimeLeft    int
	IsWorkPhase bool
}

// StatusText returns the round label, for example "WORK 2/10".
func (snapshot Snapshot) StatusText() string {
	switch snapshot.Phase {
	case PhaseWorking:
		return fmt.Sprintf("WORK %d/%d", snapshot.Round, snapshot.TotalRounds)
	case PhasePausing:
		return fmt.Sprintf("PAUSE %d/%d", snapshot.Round, snapshot.TotalRounds)
	case PhaseCompleted:
		return completedStatus
	default:
		return ""
	}
}

// TimeText returns the large label text.
func (snapshot Snapshot) TimeText() string {
	switch snapshot.Phase {
	case PhaseIdle:
		return idleTimeText
	case PhaseCompleted:
		return completedTimeText
	default:
		return FormatDuration(snapshot.TimeLeft)
	}
}

// Hint maps the phase to a color hint. Completed renders like idle.
func (snapshot Snapshot) Hint() ColorHint {
	switch snapshot.Phase {
	case PhaseWorking:
		return HintWorking
	case PhasePausing:
		return HintPausing
	default:
		return HintIdle
	}
}
