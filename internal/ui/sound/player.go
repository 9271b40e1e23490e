// Package sound plays short chimes when the timer changes phase.
package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Effect names a chime.
type Effect int

const (
	EffectWork Effect = iota
	EffectPause
	EffectComplete
)

const sampleRate = beep.SampleRate(44100)

var chimes = map[Effect][]note{
	EffectWork:     {{frequency: 660, duration: 120 * time.Millisecond}, {frequency: 880, duration: 180 * time.Millisecond}},
	EffectPause:    {{frequency: 880, duration: 120 * time.Millisecond}, {frequency: 660, duration: 180 * time.Millisecond}},
	EffectComplete: {{frequency: 523, duration: 140 * time.Millisecond}, {frequency: 659, duration: 140 * time.Millisecond}, {frequency: 784, duration: 260 * time.Millisecond}},
}

// Player renders chimes once and plays them through the speaker.
type Player struct {
	format  beep.Format
	buffers map[Effect]*beep.Buffer
	volume  float64
	logger  *slog.Logger

	initOnce sync.Once
	initErr  error
}

// NewPlayer prepares the chimes. Volume is relative on a base-2 scale, 0 is
// unchanged and -1 halves the amplitude.
func NewPlayer(volume float64) *Player {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buffers := make(map[Effect]*beep.Buffer, len(chimes))
	for effect, notes := range chimes {
		buffer := beep.NewBuffer(format)
		buffer.Append(chime(format.SampleRate, notes))
		buffers[effect] = buffer
	}
	return &Player{
		format:  format,
		buffers: buffers,
		volume:  volume,
		logger:  slog.Default(),
	}
}

// Init opens the audio device. Later calls return the first result.
func (player *Player) Init() error {
	player.initOnce.Do(func() {
		err := speaker.Init(player.format.SampleRate, player.format.SampleRate.N(time.Second/10))
		if err != nil {
			player.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return player.initErr
}

// Play starts an effect without blocking. It is silent when the speaker
// could not be opened.
func (player *Player) Play(effect Effect) {
	if err := player.Init(); err != nil {
		return
	}
	buffer, ok := player.buffers[effect]
	if !ok {
		player.logger.Debug("unknown sound effect", "effect", effect)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   player.volume,
	})
}
