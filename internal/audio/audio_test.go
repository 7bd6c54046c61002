package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestPitchRatio(t *testing.T) {
	tests := []struct {
		name   string
		event  engine.Event
		jitter float64
		want   float64
	}{
		{"combo 1", engine.Event{Kind: engine.EventCombo, Combo: 1}, 0, 1.1},
		{"combo 4", engine.Event{Kind: engine.EventCombo, Combo: 4}, 0, 1.4},
		{"combo capped", engine.Event{Kind: engine.EventCombo, Combo: 25}, 0, 2},
		{"hit without combo", engine.Event{Kind: engine.EventHit}, 0.7, 1},
		{"hit with combo", engine.Event{Kind: engine.EventHit, Combo: 3}, 0, 1.3},
		{"shoot low", engine.Event{Kind: engine.EventShoot}, 0, 0.95},
		{"shoot high", engine.Event{Kind: engine.EventShoot}, 0.999, 1.0499},
		{"click", engine.Event{Kind: engine.EventClick, Combo: 5}, 0.5, 1},
		{"gameover", engine.Event{Kind: engine.EventGameOver}, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PitchRatio(tt.event, tt.jitter), 1e-9)
		})
	}
}

func TestSoundEveryEventKind(t *testing.T) {
	kinds := []engine.EventKind{
		engine.EventShoot, engine.EventHit, engine.EventCombo,
		engine.EventGameOver, engine.EventLevelUp, engine.EventClick,
	}
	for _, k := range kinds {
		s, err := Sound(k, 1)
		require.NoError(t, err, "Sound(%s)", k)
		n, _ := drain(t, s)
		assert.Positive(t, n, "Sound(%s) is empty", k)
	}
}

func TestSoundLengthAndGain(t *testing.T) {
	s, err := Sound(engine.EventShoot, 1)
	require.NoError(t, err)

	n, peak := drain(t, s)
	assert.Equal(t, sampleRate.N(voicings[engine.EventShoot].notes[0].duration), n)
	assert.LessOrEqual(t, peak, voicings[engine.EventShoot].gain+1e-9)
	assert.Greater(t, peak, 0.0)
}

func TestSoundPitchShortens(t *testing.T) {
	plain, err := Sound(engine.EventCombo, 1)
	require.NoError(t, err)
	fast, err := Sound(engine.EventCombo, 2)
	require.NoError(t, err)

	n1, _ := drain(t, plain)
	n2, _ := drain(t, fast)
	assert.InDelta(t, float64(n1)/2, float64(n2), 16, "double rate should halve the length")
}

func TestSoundUnknownKind(t *testing.T) {
	_, err := Sound(engine.EventKind(99), 1)
	assert.Error(t, err)
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(nil)

	// Not initialized: Play and Close are no-ops.
	p.Play(engine.Event{Kind: engine.EventShoot})
	p.Play(engine.Event{Kind: engine.EventCombo, Combo: 3})
	p.Close()

	var sink engine.EventSink = p
	assert.NotNil(t, sink)
}
