package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates a rejected interval configuration.
var ErrInvalidConfig = errors.New("invalid timer config")

const (
	DefaultWorkSeconds  = 1500
	DefaultPauseSeconds = 300
	DefaultTotalRounds  = 10
	DefaultScaleFactor  = 1.0

	MinScaleFactor = 0.4
	MaxScaleFactor = 3.0
	ScaleStep      = 0.1

	MaxRounds          = 999
	MaxDurationSeconds = 1440 * 3600
)

// Intervals defines the durations of a single session.
type Intervals struct {
	WorkSeconds  int
	PauseSeconds int
	TotalRounds  int
}

// Position is the top-left corner of the overlay window in screen pixels.
type Position struct {
	X int
	Y int
}

// TimerConfig contains every persisted setting.
type TimerConfig struct {
	Intervals
	ScaleFactor    float64
	WindowPosition *Position
}

// DefaultIntervals returns the 25/5 minute schedule with ten rounds.
func DefaultIntervals() Intervals {
	return Intervals{
		WorkSeconds:  DefaultWorkSeconds,
		PauseSeconds: DefaultPauseSeconds,
		TotalRounds:  DefaultTotalRounds,
	}
}

// DefaultTimerConfig returns the configuration used on first run.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Intervals:   DefaultIntervals(),
		ScaleFactor: DefaultScaleFactor,
	}
}

// Validate reports whether every field is within bounds.
func (intervals Intervals) Validate() error {
	if !ValidDuration(intervals.WorkSeconds) {
		return fmt.Errorf("%w: work seconds %d out of range [1, %d]", ErrInvalidConfig, intervals.WorkSeconds, MaxDurationSeconds)
	}
	if !ValidDuration(intervals.PauseSeconds) {
		return fmt.Errorf("%w: pause seconds %d out of range [1, %d]", ErrInvalidConfig, intervals.PauseSeconds, MaxDurationSeconds)
	}
	if !ValidRounds(intervals.TotalRounds) {
		return fmt.Errorf("%w: total rounds %d out of range [1, %d]", ErrInvalidConfig, intervals.TotalRounds, MaxRounds)
	}
	return nil
}

// ValidDuration reports whether seconds is a usable phase length.
func ValidDuration(seconds int) bool {
	return seconds >= 1 && seconds <= MaxDurationSeconds
}

// ValidRounds reports whether rounds is a usable round count.
func ValidRounds(rounds int) bool {
	return rounds >= 1 && rounds <= MaxRounds
}

// ValidScale reports whether scale lies within the supported zoom range.
func ValidScale(scale float64) bool {
	return !math.IsNaN(scale) && scale >= MinScaleFactor && scale <= MaxScaleFactor
}

// StepScale moves scale by the given number of wheel notches and clamps it.
func StepScale(scale float64, notches int) float64 {
	next := scale + float64(notches)*ScaleStep
	if next < MinScaleFactor {
		next = MinScaleFactor
	}
	if next > MaxScaleFactor {
		next = MaxScaleFactor
	}
	return math.Round(next*10) / 10
}

// Equal compares two configurations including the optional position.
func (config TimerConfig) Equal(other TimerConfig) bool {
	if config.Intervals != other.Intervals || config.ScaleFactor != other.ScaleFactor {
		return false
	}
	if config.WindowPosition == nil || other.WindowPosition == nil {
		return config.WindowPosition == nil && other.WindowPosition == nil
	}
	return *config.WindowPosition == *other.WindowPosition
}

// Clone returns a copy that shares no pointers with config.
func (config TimerConfig) Clone() TimerConfig {
	if config.WindowPosition != nil {
		position := *config.WindowPosition
		config.WindowPosition = &position
	}
	return config
}
