package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"
)

// Field selects which interval value the editor changes.
type Field int

const (
	FieldWork Field = iota
	FieldPause
	FieldRounds
)

// Title is the window title for the field.
func (field Field) Title() string {
	switch field {
	case FieldWork:
		return "Set Work Time"
	case FieldPause:
		return "Set Pause Time"
	default:
		return "Set Total Rounds"
	}
}

// Prompt is the label shown above the entry.
func (field Field) Prompt() string {
	switch field {
	case FieldWork:
		return "Work duration:"
	case FieldPause:
		return "Pause duration:"
	default:
		return fmt.Sprintf("Number of rounds (1-%d):", model.MaxRounds)
	}
}

// IsDuration reports whether the field takes a unit.
func (field Field) IsDuration() bool {
	return field != FieldRounds
}

// Current reads the field from the intervals.
func (field Field) Current(intervals model.Intervals) int {
	switch field {
	case FieldWork:
		return intervals.WorkSeconds
	case FieldPause:
		return intervals.PauseSeconds
	default:
		return intervals.TotalRounds
	}
}

// parseEntry converts the text the user typed into seconds or rounds.
// Durations also accept the clock form shown on the overlay, e.g. 25:00.
func parseEntry(field Field, text string, unit model.Unit) (int, error) {
	text = strings.TrimSpace(text)
	if !field.IsDuration() {
		rounds, ok := parsePositiveInt(text)
		if !ok || !model.ValidRounds(rounds) {
			return 0, fmt.Errorf("%w: rounds must be between 1 and %d", model.ErrInvalidConfig, model.MaxRounds)
		}
		return rounds, nil
	}

	if strings.Contains(text, ":") {
		seconds, err := interval.ParseDuration(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", model.ErrInvalidUnit, err)
		}
		if !model.ValidDuration(seconds) {
			return 0, fmt.Errorf("%w: %s is out of range", model.ErrInvalidUnit, text)
		}
		return seconds, nil
	}

	value, ok := parsePositiveInt(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a positive number", model.ErrInvalidUnit, text)
	}
	return model.ToSeconds(value, unit)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
