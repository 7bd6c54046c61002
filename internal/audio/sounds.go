// Package audio plays synthesized sound effects for game events through the
// beep speaker. Sounds are generated on demand from sine tones; no sample
// files are shipped.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

const sampleRate = beep.SampleRate(44100)

// resampleQuality is the beep resampler interpolation quality.
const resampleQuality = 4

// note is one tone of an effect.
type note struct {
	freq     float64
	duration time.Duration
}

// voicing is the notes and gain for an event kind.
type voicing struct {
	notes []note
	gain  float64
}

var voicings = map[engine.EventKind]voicing{
	engine.EventShoot: {notes: []note{{660, 50 * time.Millisecond}}, gain: 0.35},
	engine.EventHit:   {notes: []note{{880, 90 * time.Millisecond}}, gain: 0.5},
	engine.EventCombo: {notes: []note{{1046.5, 70 * time.Millisecond}, {1318.5, 90 * time.Millisecond}}, gain: 0.5},
	engine.EventGameOver: {notes: []note{
		{392, 160 * time.Millisecond}, {311.1, 160 * time.Millisecond}, {196, 320 * time.Millisecond},
	}, gain: 0.6},
	engine.EventLevelUp: {notes: []note{
		{523.3, 90 * time.Millisecond}, {659.3, 90 * time.Millisecond}, {784, 180 * time.Millisecond},
	}, gain: 0.5},
	engine.EventClick: {notes: []note{{1500, 15 * time.Millisecond}}, gain: 0.25},
}

// PitchRatio returns the playback-rate multiplier for an event.
// Combo and hit rise with the streak, capped at double speed; shoot gets a
// small variation from jitter in [0, 1).
func PitchRatio(e engine.Event, jitter float64) float64 {
	switch e.Kind {
	case engine.EventCombo, engine.EventHit:
		return math.Min(1+0.1*float64(e.Combo), 2)
	case engine.EventShoot:
		return 0.95 + 0.1*jitter
	default:
		return 1
	}
}

// Sound builds a finite streamer for an event kind played at ratio.
func Sound(kind engine.EventKind, ratio float64) (beep.Streamer, error) {
	v, ok := voicings[kind]
	if !ok {
		return nil, fmt.Errorf("audio: no sound for event %s", kind)
	}
	if ratio <= 0 {
		ratio = 1
	}

	parts := make([]beep.Streamer, 0, len(v.notes))
	for _, n := range v.notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot generate %.1f Hz tone: %w", n.freq, err)
		}
		samples := sampleRate.N(n.duration)
		parts = append(parts, newFade(beep.Take(samples, tone), samples))
	}

	var s beep.Streamer = beep.Seq(parts...)
	if ratio != 1 {
		s = beep.ResampleRatio(resampleQuality, ratio, s)
	}
	return newVolume(s, v.gain), nil
}

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so zero gain is made silent instead.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// fade ramps a note down linearly over its length to avoid clicks at the
// cut.
type fade struct {
	s     beep.Streamer
	total int
	pos   int
}

func newFade(s beep.Streamer, total int) *fade {
	return &fade{s: s, total: max(total, 1)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := range n {
		g := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }
