// Package marbles provides the marble-chain shooter for the platform.
// The simulation lives in the engine subpackage; this package adapts it to
// the registry.Game contract: input frames, ticks and screen rendering.
package marbles

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
	"github.com/vovakirdan/tui-marbles/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "marbles"

// Layout constants (rows).
const (
	hudHeight  = 2
	minScreenW = 30
	minScreenH = 14
)

// aimStep is the keyboard aim rotation per key press.
const aimStep = math.Pi / 36

// Settings are the options a game applies on Reset.
type Settings struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	StartLevel int // 0 means level 1
	HighScores engine.HighScoreStore
	EventSink  engine.EventSink
	Logger     *log.Logger
	Muted      bool
}

// defaults are the settings New uses, set via CLI flags.
var defaults = Settings{Logger: log.New(io.Discard)}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	defaults.ConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		defaults.Difficulty = ""
		return
	}
	defaults.Difficulty = p
}

// SetStartLevel sets the starting level. 0 means start from level 1.
func SetStartLevel(level int) {
	defaults.StartLevel = level
}

// SetHighScoreStore sets where the best score is read from and written to.
func SetHighScoreStore(store engine.HighScoreStore) {
	defaults.HighScores = store
}

// SetEventSink sets the sound collaborator.
func SetEventSink(sink engine.EventSink) {
	defaults.EventSink = sink
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaults.Logger = l
	}
}

// SetMuted starts new sessions with sound off.
func SetMuted(muted bool) {
	defaults.Muted = muted
}

// DefaultSettings returns a copy of the settings New uses.
func DefaultSettings() Settings {
	return defaults
}

// LoadConfig resolves the config the way Reset does: custom path or search
// path, then the difficulty preset.
func LoadConfig() config.MarblesConfig {
	return defaults.loadConfig()
}

func (s Settings) loadConfig() config.MarblesConfig {
	cfg, err := config.LoadMarbles(s.ConfigPath)
	if err != nil {
		s.logger().Warn("using default config", "path", s.ConfigPath, "err", err)
		cfg = config.DefaultMarblesConfig()
	}
	if s.Difficulty != "" {
		config.ApplyMarblesPreset(&cfg, s.Difficulty)
	}
	return cfg
}

func (s Settings) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Game implements the marble shooter on top of engine.Session.
type Game struct {
	settings Settings
	runtime  core.RuntimeConfig
	cfg      config.MarblesConfig
	session  *engine.Session

	dt       time.Duration
	paused   bool
	tooSmall bool
	view     viewport
	lastRes  engine.StepResult
}

// New creates a new marbles game with the package default settings.
// Call Reset before use.
func New() *Game {
	return NewWithSettings(defaults)
}

// NewWithSettings creates a game with its own settings, for hosts running
// several games at once.
func NewWithSettings(s Settings) *Game {
	return &Game{settings: s}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Marbles"
}

// Reset builds a fresh session at the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.settings.loadConfig()

	g.dt = runtime.TickInterval()

	opts := []engine.Option{
		engine.WithLogger(g.settings.logger()),
		engine.WithSound(!g.settings.Muted),
	}
	if g.settings.StartLevel > 0 {
		opts = append(opts, engine.WithStartLevel(g.settings.StartLevel))
	}
	if g.settings.HighScores != nil {
		opts = append(opts, engine.WithHighScores(g.settings.HighScores))
	}
	if g.settings.EventSink != nil {
		opts = append(opts, engine.WithEventSink(g.settings.EventSink))
	}

	g.session = engine.NewSession(g.cfg, runtime.Seed, opts...)
	g.paused = false
	g.lastRes = engine.StepResult{}
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the layout without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.layout()
}

// layout recomputes the viewport for the current level and screen.
func (g *Game) layout() {
	if g.session == nil {
		return
	}
	p := g.session.Params()
	g.view = newViewport(p.Center, viewSpan(p), hudHeight, g.runtime.ScreenW, g.runtime.ScreenH-hudHeight)
}

// Step applies input and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionToggleSound) {
		g.session.ToggleSound()
	}

	switch g.session.Phase() {
	case engine.PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.session.Start()
			g.layout()
		}

	case engine.PhaseOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.session.Restart()
			g.layout()
		}

	case engine.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused || g.tooSmall {
			break
		}
		g.handleAim(in)
		level := g.session.Level()
		g.lastRes = g.session.Step(g.dt)
		if g.session.Level() != level {
			g.layout()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleAim turns pointer and rotation input into aim and fire calls.
func (g *Game) handleAim(in core.InputFrame) {
	var target *core.Vec2
	if in.Pointer != nil {
		p := g.view.ToBoard(in.Pointer.X, in.Pointer.Y)
		target = &p
		g.session.Aim(p)
	}
	if in.Has(core.ActionLeft) {
		g.session.SetAimAngle(g.session.AimAngle() - aimStep)
	}
	if in.Has(core.ActionRight) {
		g.session.SetAimAngle(g.session.AimAngle() + aimStep)
	}
	if in.Has(core.ActionFire) {
		if target != nil {
			g.session.Fire(*target)
		} else {
			g.session.FireAtAim()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Phase() == engine.PhaseOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot for the current tick.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// LastStep returns the result of the most recent tick.
func (g *Game) LastStep() engine.StepResult {
	return g.lastRes
}
