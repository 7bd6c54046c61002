package engine_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

func TestAimNormalizesToSpeed(t *testing.T) {
	origin := core.V(160, 284)
	p, ok := engine.Aim(origin, core.V(160+3, 284+4), 12, R)
	if !ok {
		t.Fatal("Aim() failed for a valid direction")
	}
	if math.Abs(p.Vel.Len()-12) > eps {
		t.Errorf("speed = %v, expected 12", p.Vel.Len())
	}
	if p.Pos != origin || p.Color != R {
		t.Errorf("projectile = %+v, expected red at origin", p)
	}
}

func TestAimZeroVectorSuppressed(t *testing.T) {
	origin := core.V(160, 284)
	if _, ok := engine.Aim(origin, origin, 12, R); ok {
		t.Error("Aim() at the origin should fail")
	}
}

func TestProjectileLeavesBounds(t *testing.T) {
	b := engine.NewBounds(core.V(320, 568), 50)
	p := engine.Projectile{Pos: core.V(365, 100), Vel: core.V(4, 0)}

	p, ok := p.Advance(b)
	if !ok || p.Pos.X != 369 {
		t.Fatalf("Advance() = %+v, %v; expected x=369 alive", p, ok)
	}
	if _, ok := p.Advance(b); ok { // 373: outside 370
		t.Error("projectile beyond the margin should be destroyed")
	}
}

func TestFindCollisionScansFromPit(t *testing.T) {
	params := engine.NewLevelParams(config.DefaultMarblesConfig(), 1)
	chain := spaced(5, params.Spacing, R, G, B)

	// Aim at marble 2; the earlier marbles are far enough along the spiral.
	chain[1].T = 8
	chain[2].T = 11
	if idx := engine.FindCollision(chain, params, params.Position(11)); idx != 2 {
		t.Errorf("FindCollision() = %d, expected 2", idx)
	}

	// Two marbles within range: the pit-side one wins.
	chain = spaced(5, params.Spacing, R, G, B)
	if idx := engine.FindCollision(chain, params, params.Position(5.23)); idx != 0 {
		t.Errorf("FindCollision() = %d, expected 0 (nearest the pit)", idx)
	}

	if idx := engine.FindCollision(chain, params, core.V(-40, -40)); idx != -1 {
		t.Errorf("FindCollision() = %d, expected -1", idx)
	}
}
