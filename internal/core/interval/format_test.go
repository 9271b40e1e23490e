package interval

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		-5:    "0",
		0:     "0",
		7:     "7",
		59:    "59",
		60:    "01:00",
		61:    "01:01",
		1500:  "25:00",
		3599:  "59:59",
		3600:  "01:00:00",
		3723:  "01:02:03",
		86399: "23:59:59",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatDuration(seconds), "seconds=%d", seconds)
	}
}

func TestFormatDurationShapes(t *testing.T) {
	minutes := regexp.MustCompile(`^\d{2}:\d{2}$`)
	hours := regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)

	for seconds := 0; seconds < 60; seconds++ {
		require.Equal(t, strconv.Itoa(seconds), FormatDuration(seconds))
	}
	for seconds := 60; seconds < 3600; seconds++ {
		require.Regexp(t, minutes, FormatDuration(seconds))
	}
	for seconds := 3600; seconds < 3*3600; seconds += 7 {
		require.Regexp(t, hours, FormatDuration(seconds))
	}
}

func TestFormatDurationRoundTrip(t *testing.T) {
	for seconds := 0; seconds < 4*3600; seconds += 13 {
		parsed, err := ParseDuration(FormatDuration(seconds))
		require.NoError(t, err)
		require.Equal(t, seconds, parsed)
	}
}

func TestParseDurationRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "START", "1:2:3:4", "01:60", "-1", "01::02"} {
		_, err := ParseDuration(text)
		assert.Error(t, err, "text=%q", text)
	}
}
