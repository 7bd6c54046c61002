package engine

import "github.com/vovakirdan/tui-marbles/internal/core"

// Projectile is the marble in flight. At most one exists at a time.
type Projectile struct {
	Pos   core.Vec2
	Vel   core.Vec2 // Board units per tick
	Color Color
}

// Bounds is the rectangle a projectile may travel in before it is dropped.
type Bounds struct {
	Min, Max core.Vec2
}

// NewBounds returns the board rectangle grown by margin on every side.
func NewBounds(board core.Vec2, margin float64) Bounds {
	return Bounds{
		Min: core.V(-margin, -margin),
		Max: core.V(board.X+margin, board.Y+margin),
	}
}

// Contains reports whether p is inside the bounds, edges included.
func (b Bounds) Contains(p core.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Aim creates a projectile leaving origin toward target at the given speed.
// It fails when target coincides with origin, since the direction is undefined.
func Aim(origin, target core.Vec2, speed float64, color Color) (Projectile, bool) {
	dir, ok := target.Sub(origin).Normalize()
	if !ok {
		return Projectile{}, false
	}
	return Projectile{Pos: origin, Vel: dir.Scale(speed), Color: color}, true
}

// Advance moves the projectile one tick. The bool is false once the
// projectile has left the bounds and should be destroyed.
func (p Projectile) Advance(b Bounds) (Projectile, bool) {
	p.Pos = p.Pos.Add(p.Vel)
	if !b.Contains(p.Pos) {
		return Projectile{}, false
	}
	return p, true
}

// FindCollision returns the index of the first marble, scanning from the
// pit end, whose path position is closer to pos than the hit radius.
// Returns -1 when nothing is hit.
func FindCollision(c Chain, p LevelParams, pos core.Vec2) int {
	for i, m := range c {
		if p.Position(m.T).Dist(pos) < p.HitRadius {
			return i
		}
	}
	return -1
}
