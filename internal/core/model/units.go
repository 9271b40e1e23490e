package model

import (
	"errors"
	"fmt"
)

// ErrInvalidUnit indicates an unknown or out-of-range duration entry.
var ErrInvalidUnit = errors.New("invalid duration entry")

// Unit is the granularity a duration is entered in.
type Unit string

const (
	UnitSeconds Unit = "Seconds"
	UnitMinutes Unit = "Minutes"
	UnitHours   Unit = "Hours"
)

// Units lists the selectable units in menu order.
var Units = []Unit{UnitSeconds, UnitMinutes, UnitHours}

// Seconds returns how many seconds one unit spans.
func (unit Unit) Seconds() int {
	switch unit {
	case UnitSeconds:
		return 1
	case UnitMinutes:
		return 60
	case UnitHours:
		return 3600
	default:
		return 0
	}
}

// MaxValue is the largest value accepted for the unit.
func (unit Unit) MaxValue() int {
	if unit == UnitSeconds {
		return 3600
	}
	return 1440
}

// ToSeconds converts a user entry to seconds.
func ToSeconds(value int, unit Unit) (int, error) {
	factor := unit.Seconds()
	if factor == 0 {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidUnit, unit)
	}
	if value < 1 || value > unit.MaxValue() {
		return 0, fmt.Errorf("%w: %d %s out of range [1, %d]", ErrInvalidUnit, value, unit, unit.MaxValue())
	}
	return value * factor, nil
}

// SplitSeconds expresses seconds in the largest unit that divides it evenly.
func SplitSeconds(seconds int) (int, Unit) {
	switch {
	case seconds > 0 && seconds%3600 == 0 && seconds/3600 <= UnitHours.MaxValue():
		return seconds / 3600, UnitHours
	case seconds > 0 && seconds%60 == 0 && seconds/60 <= UnitMinutes.MaxValue():
		return seconds / 60, UnitMinutes
	default:
		return seconds, UnitSeconds
	}
}
