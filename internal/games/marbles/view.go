package marbles

import (
	"math"

	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

// viewport maps board coordinates to terminal cells and back.
// Terminal cells are roughly twice as tall as wide, so one board unit
// covers scale columns but only scale/2 rows.
type viewport struct {
	center  core.Vec2 // Board point shown at the middle of the play area
	originX float64   // Screen column of center
	originY float64   // Screen row of center
	scale   float64   // Columns per board unit
}

// newViewport fits a square of side span (board units) around center into
// the screen rectangle starting at row top with the given size.
func newViewport(center core.Vec2, span float64, top, width, height int) viewport {
	scale := 0.0
	if span > 0 {
		scale = math.Min(float64(width)/span, 2*float64(height)/span)
	}
	return viewport{
		center:  center,
		originX: float64(width) / 2,
		originY: float64(top) + float64(height)/2,
		scale:   scale,
	}
}

// ToScreen returns the cell showing board point p.
func (v viewport) ToScreen(p core.Vec2) (int, int) {
	d := p.Sub(v.center)
	x := v.originX + d.X*v.scale
	y := v.originY + d.Y*v.scale/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToBoard returns the board point under the middle of cell (x, y).
func (v viewport) ToBoard(x, y int) core.Vec2 {
	if v.scale == 0 {
		return v.center
	}
	dx := (float64(x) + 0.5 - v.originX) / v.scale
	dy := (float64(y) + 0.5 - v.originY) * 2 / v.scale
	return v.center.Add(core.V(dx, dy))
}

// viewSpan is the board extent worth showing for a level: the spiral plus
// one marble radius on each side.
func viewSpan(p engine.LevelParams) float64 {
	return 2 * (p.MaxRadius + p.HitRadius/2)
}
