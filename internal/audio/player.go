package audio

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

// Player is an engine.EventSink backed by the system speaker.
// Every failure is logged and swallowed: a machine without audio output
// plays a silent game.
type Player struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play queues the sound for e. It never blocks on the audio device.
func (p *Player) Play(e engine.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Sound(e.Kind, PitchRatio(e, p.rng.Float64()))
	if err != nil {
		p.logger.Warn("sound failed", "event", e.Kind, "err", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

var _ engine.EventSink = (*Player)(nil)
