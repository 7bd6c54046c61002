package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during one Step call.
type StepResult struct {
	Tick     uint64
	Events   []Event // Every event since the previous step, muted or not
	Removed  int     // Marbles removed by matches this step
	Scored   int     // Points gained this step
	LevelUp  bool
	GameOver bool
}

// Session owns all mutable game state and advances it one tick at a time.
// It is not safe for concurrent use; the platform calls Step and the input
// operations from a single goroutine.
type Session struct {
	cfg    config.MarblesConfig
	rng    *rand.Rand
	logger *log.Logger
	scores HighScoreStore
	sink   EventSink

	phase      Phase
	startLevel int
	level      int
	params     LevelParams
	bounds     Bounds

	chain      Chain
	queue      SpawnQueue
	projectile *Projectile
	loaded     Color
	next       Color
	aimAngle   float64

	score     int
	highScore int
	combo     ComboTracker
	soundOn   bool

	clock   time.Duration
	tick    uint64
	nextID  int
	pending []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHighScores attaches the persistence collaborator.
func WithHighScores(store HighScoreStore) Option {
	return func(s *Session) { s.scores = store }
}

// WithEventSink attaches the audio collaborator.
func WithEventSink(sink EventSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithStartLevel sets the level Start begins at.
func WithStartLevel(level int) Option {
	return func(s *Session) { s.startLevel = max(level, 1) }
}

// WithSound sets whether events reach the sink initially.
func WithSound(on bool) Option {
	return func(s *Session) { s.soundOn = on }
}

// NewSession creates a session in the menu phase. The seed drives every
// random choice, so equal seeds and inputs replay identically.
func NewSession(cfg config.MarblesConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     log.New(io.Discard),
		startLevel: 1,
		soundOn:    true,
		combo:      NewComboTracker(time.Duration(cfg.Combo.DecaySeconds * float64(time.Second))),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.level = s.startLevel
	s.setParams()

	if s.scores != nil {
		hs, err := s.scores.LoadHighScore()
		if err != nil {
			s.logger.Warn("could not load high score, starting from zero", "err", err)
		} else {
			s.highScore = max(hs, 0)
		}
	}
	return s
}

func (s *Session) setParams() {
	s.params = NewLevelParams(s.cfg, s.level)
	s.bounds = NewBounds(s.params.Board, s.cfg.Projectile.BoundsMargin)
}

// Start leaves the menu (or a finished game) and begins at the start level.
func (s *Session) Start() {
	s.emit(EventClick)
	s.StartLevel(s.startLevel)
}

// Restart replays the current level from scratch.
func (s *Session) Restart() {
	s.emit(EventClick)
	s.StartLevel(s.level)
}

// StartLevel resets score and combo and lays out a fresh wave for lvl.
func (s *Session) StartLevel(lvl int) {
	s.level = max(lvl, 1)
	s.score = 0
	s.combo.Reset()
	s.projectile = nil
	s.phase = PhasePlaying
	s.loadWave()
	s.loaded = s.randomColor()
	s.next = s.randomColor()
	s.logger.Info("level started", "level", s.level, "shape", s.params.Shape, "queue", s.params.QueueLen)
}

// loadWave recomputes the level parameters and replaces chain and queue.
func (s *Session) loadWave() {
	s.setParams()
	colors := GenerateQueue(s.params, s.rng)
	s.chain, s.queue, s.nextID = InitialWave(colors, s.params, s.nextID)
}

func (s *Session) randomColor() Color {
	palette := s.params.Palette()
	return palette[s.rng.Intn(len(palette))]
}

// Aim points the launcher at a board position. It has no simulation effect.
func (s *Session) Aim(target core.Vec2) {
	if d := target.Sub(s.params.Center); d.Len() > 0 {
		s.aimAngle = d.Angle()
	}
}

// SetAimAngle sets the launcher angle in radians.
func (s *Session) SetAimAngle(rad float64) {
	s.aimAngle = rad
}

// AimAngle returns the launcher angle in radians.
func (s *Session) AimAngle() float64 {
	return s.aimAngle
}

// Fire launches the loaded marble toward target. It is a no-op returning
// false when not playing, when a shot is already in flight, or when target
// is the launcher itself.
func (s *Session) Fire(target core.Vec2) bool {
	if s.phase != PhasePlaying || s.projectile != nil {
		return false
	}
	p, ok := Aim(s.params.Center, target, s.cfg.Projectile.Speed, s.loaded)
	if !ok {
		return false
	}
	s.Aim(target)
	s.projectile = &p
	s.loaded = s.next
	s.next = s.randomColor()
	s.emit(EventShoot)
	return true
}

// FireAtAim fires along the current aim angle.
func (s *Session) FireAtAim() bool {
	return s.Fire(s.params.Center.Add(core.FromAngle(s.aimAngle)))
}

// ToggleSound flips whether events reach the sink. The click is emitted
// before the flip, so muting is audible and unmuting is not.
func (s *Session) ToggleSound() bool {
	s.emit(EventClick)
	s.soundOn = !s.soundOn
	return s.soundOn
}

// emit records an event and forwards it to the sink while sound is on.
func (s *Session) emit(kind EventKind) {
	e := Event{Kind: kind, Combo: s.combo.Count()}
	s.pending = append(s.pending, e)
	if s.soundOn && s.sink != nil {
		s.sink.Play(e)
	}
}

// Step advances the simulation by one tick of length dt. Outside the
// playing phase it only drains pending events.
//
// Within a tick: clock and combo decay, chain physics with at most one
// chain match and one spawn, projectile flight, at most one collision with
// its insertion match, high score, then the loss and level-up checks.
func (s *Session) Step(dt time.Duration) StepResult {
	if s.phase != PhasePlaying {
		return StepResult{Tick: s.tick, Events: s.drain()}
	}

	s.clock += dt
	s.tick++
	s.combo.Decay(s.clock)

	var res StepResult

	cs := StepChain(s.chain, s.queue, s.params, s.nextID)
	s.chain, s.queue, s.nextID = cs.Chain, cs.Queue, cs.NextID
	if n := len(cs.Removed); n > 0 {
		gained := n * s.cfg.Scoring.ChainMatchPoints
		s.score += gained
		res.Removed += n
		res.Scored += gained
		combo := s.combo.RegisterMatch(s.clock)
		s.emit(EventCombo)
		s.logger.Debug("chain match", "color", cs.Removed[0].Color, "count", n, "combo", combo)
	}

	if s.projectile != nil {
		if p, alive := s.projectile.Advance(s.bounds); alive {
			s.projectile = &p
		} else {
			s.projectile = nil
		}
	}

	if s.projectile != nil {
		if idx := FindCollision(s.chain, s.params, s.projectile.Pos); idx >= 0 {
			shot := Marble{ID: s.nextID, Color: s.projectile.Color}
			s.nextID++
			chain, n := ResolveInsertion(s.chain, idx, shot, s.params.Spacing, s.params.MinRun)
			s.chain = chain
			s.projectile = nil
			if n > 0 {
				gained := n * s.cfg.Scoring.ShotMatchPoints
				s.score += gained
				res.Removed += n
				res.Scored += gained
				combo := s.combo.RegisterMatch(s.clock)
				s.emit(EventHit)
				s.logger.Debug("shot match", "color", shot.Color, "count", n, "combo", combo)
			}
		}
	}

	s.updateHighScore()

	if s.chain.ReachedPit() {
		s.phase = PhaseOver
		res.GameOver = true
		s.emit(EventGameOver)
		s.logger.Info("game over", "level", s.level, "score", s.score)
	} else if len(s.chain) == 0 && s.queue.Len() == 0 && s.score > 0 {
		s.level++
		s.projectile = nil
		s.loadWave()
		res.LevelUp = true
		s.emit(EventLevelUp)
		s.logger.Info("level up", "level", s.level, "score", s.score)
	}

	res.Tick = s.tick
	res.Events = s.drain()
	return res
}

func (s *Session) drain() []Event {
	events := s.pending
	s.pending = nil
	return events
}

func (s *Session) updateHighScore() {
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	if s.scores == nil {
		return
	}
	if err := s.scores.SaveHighScore(s.highScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "err", err)
	}
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best known score.
func (s *Session) HighScore() int { return s.highScore }

// Combo returns the current streak.
func (s *Session) Combo() int { return s.combo.Count() }

// SoundOn reports whether events reach the sink.
func (s *Session) SoundOn() bool { return s.soundOn }

// Params returns the active level parameters.
func (s *Session) Params() LevelParams { return s.params }

// InFlight reports whether a projectile is currently travelling.
func (s *Session) InFlight() bool { return s.projectile != nil }
