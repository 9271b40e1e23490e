package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// note is one sine partial of a chime.
type note struct {
	frequency float64
	duration  time.Duration
}

// tone generates a sine wave with a short linear attack and release so the
// chime does not click.
func tone(rate beep.SampleRate, frequency float64, duration time.Duration) beep.Streamer {
	total := rate.N(duration)
	ramp := rate.N(10 * time.Millisecond)
	if ramp*2 > total {
		ramp = total / 2
	}
	step := 2 * math.Pi * frequency / float64(rate)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && position < total {
			gain := 1.0
			switch {
			case ramp > 0 && position < ramp:
				gain = float64(position) / float64(ramp)
			case ramp > 0 && total-position <= ramp:
				gain = float64(total-position-1) / float64(ramp)
			}
			value := math.Sin(step*float64(position)) * gain * 0.5
			samples[n][0] = value
			samples[n][1] = value
			n++
			position++
		}
		return n, true
	})
}

func chime(rate beep.SampleRate, notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, item := range notes {
		parts = append(parts, tone(rate, item.frequency, item.duration))
	}
	return beep.Seq(parts...)
}
