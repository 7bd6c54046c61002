package engine

import (
	"iter"
	"math"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
)

// LevelParams is everything the simulation needs to know about one level.
// It is derived only from the level number and the tuning config.
type LevelParams struct {
	Level int
	Shape string

	// Spiral: radius = A + B*t, angle = t. T = MaxT is the mouth, t = 0 the pit.
	A, B      float64
	MaxT      float64
	MaxRadius float64
	Center    core.Vec2
	Board     core.Vec2 // Board width and height

	PaletteSize int
	Speed       float64 // t per tick
	QueueLen    int     // Total marbles for the level, initial wave included

	InitialCount   int
	Spacing        float64
	ClosingSpeed   float64
	TouchTolerance float64
	HitRadius      float64
	MinRun         int
}

// NewLevelParams derives the parameters for a level (1-based).
func NewLevelParams(cfg config.MarblesConfig, level int) LevelParams {
	level = max(level, 1)

	shape := config.ShapePreset{Name: "balanced", InnerRadius: 25, MaxT: 25}
	if len(cfg.Shapes) > 0 {
		shape = cfg.Shapes[(level-1)%len(cfg.Shapes)]
	}

	w, h := cfg.Board.Width, cfg.Board.Height
	maxR := math.Min(w, h)/2 - cfg.Board.RadiusMargin

	speed := cfg.LevelSpeed(level)
	spacing := cfg.Marble.Spacing

	// Enough marbles to keep the chain flowing for WaveSeconds at this speed.
	perSecond := speed * cfg.Chain.WaveTickRate / spacing
	incoming := int(math.Ceil(cfg.Chain.WaveSeconds * perSecond))
	queueLen := min(cfg.Chain.InitialCount+incoming, cfg.Chain.MaxQueue)

	return LevelParams{
		Level:          level,
		Shape:          shape.Name,
		A:              shape.InnerRadius,
		B:              (maxR - shape.InnerRadius) / shape.MaxT,
		MaxT:           shape.MaxT,
		MaxRadius:      maxR,
		Center:         core.V(w/2, h/2),
		Board:          core.V(w, h),
		PaletteSize:    cfg.PaletteSize(level, len(AllColors())),
		Speed:          speed,
		QueueLen:       queueLen,
		InitialCount:   cfg.Chain.InitialCount,
		Spacing:        spacing,
		ClosingSpeed:   cfg.Chain.ClosingSpeed,
		TouchTolerance: cfg.Marble.TouchTolerance,
		HitRadius:      cfg.Marble.HitRadius,
		MinRun:         cfg.Scoring.MinRun,
	}
}

// Position maps a path parameter to a board position.
func (p LevelParams) Position(t float64) core.Vec2 {
	r := p.A + p.B*t
	return p.Center.Add(core.V(math.Cos(t)*r, math.Sin(t)*r))
}

// Mouth returns the spawn end of the path.
func (p LevelParams) Mouth() core.Vec2 {
	return p.Position(p.MaxT)
}

// Samples yields path points for t = 0, step, 2*step, ... up to MaxT.
// The sequence is lazy and can be ranged over any number of times.
func (p LevelParams) Samples(step float64) iter.Seq[core.Vec2] {
	return func(yield func(core.Vec2) bool) {
		if step <= 0 {
			return
		}
		for i := 0; ; i++ {
			t := float64(i) * step
			if t > p.MaxT {
				return
			}
			if !yield(p.Position(t)) {
				return
			}
		}
	}
}

// Palette returns the colors active at this level.
func (p LevelParams) Palette() []Color {
	return AllColors()[:p.PaletteSize]
}
