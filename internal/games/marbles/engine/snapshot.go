package engine

import (
	"fmt"
	"hash/fnv"
	"iter"

	"github.com/vovakirdan/tui-marbles/internal/core"
)

// DefaultPathStep is the t increment between rendered path samples.
const DefaultPathStep = 0.1

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase      Phase
	Level      int
	Score      int
	HighScore  int
	Combo      int
	Chain      Chain
	Projectile *Projectile
	Loaded     Color
	Next       Color
	AimAngle   float64
	Params     LevelParams
	QueueLen   int
	SoundOn    bool
	Tick       uint64
}

// Snapshot copies the session state. Later steps do not affect it.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase,
		Level:     s.level,
		Score:     s.score,
		HighScore: s.highScore,
		Combo:     s.combo.Count(),
		Chain:     s.chain.Clone(),
		Loaded:    s.loaded,
		Next:      s.next,
		AimAngle:  s.aimAngle,
		Params:    s.params,
		QueueLen:  s.queue.Len(),
		SoundOn:   s.soundOn,
		Tick:      s.tick,
	}
	if s.projectile != nil {
		p := *s.projectile
		snap.Projectile = &p
	}
	return snap
}

// Path yields sampled points along the level's spiral.
func (s Snapshot) Path() iter.Seq[core.Vec2] {
	return s.Params.Samples(DefaultPathStep)
}

// Hash returns a deterministic hash of the simulation-relevant state.
// Used for replay and determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "P:%d;L:%d;S:%d;H:%d;C:%d;A:%.6f;O:%t;", s.Phase, s.Level, s.Score, s.HighScore, s.Combo, s.AimAngle, s.SoundOn)

	// Chain
	fmt.Fprintf(h, "M:")
	for _, m := range s.Chain {
		fmt.Fprintf(h, "%d:%d:%.6f,", m.ID, m.Color, m.T)
	}

	if s.Projectile != nil {
		p := s.Projectile
		fmt.Fprintf(h, ";X:%.4f:%.4f:%.4f:%.4f:%d", p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Color)
	}

	fmt.Fprintf(h, ";G:%d:%d;Q:%d;T:%d", s.Loaded, s.Next, s.QueueLen, s.Tick)

	return h.Sum64()
}
