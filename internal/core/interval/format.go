package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration renders seconds as "42", "04:05" or "01:02:03".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return strconv.Itoa(seconds)
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// ParseDuration inverts FormatDuration.
func ParseDuration(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("parse duration %q: too many fields", text)
	}
	total := 0
	for index, part := range parts {
		if part == "" {
			return 0, fmt.Errorf("parse duration %q: empty field", text)
		}
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("parse duration %q: invalid field %q", text, part)
		}
		if index > 0 && value >= 60 {
			return 0, fmt.Errorf("parse duration %q: field %q exceeds 59", text, part)
		}
		total = total*60 + value
	}
	return total, nil
}
