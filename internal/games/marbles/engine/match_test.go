package engine_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

func TestResolveInsertionCompletesRun(t *testing.T) {
	chain := engine.Chain{
		{ID: 1, Color: R, T: 5.0},
		{ID: 2, Color: R, T: 5.23},
		{ID: 3, Color: B, T: 5.46},
	}
	shot := engine.Marble{ID: 9, Color: R}

	out, removed := engine.ResolveInsertion(chain, 1, shot, 0.23, 3)
	if removed != 3 {
		t.Fatalf("removed = %d, expected 3", removed)
	}
	if len(out) != 1 || out[0].Color != B || out[0].ID != 3 {
		t.Errorf("chain = %+v, expected only the blue marble", out)
	}
	if len(chain) != 3 || chain[1].T != 5.23 {
		t.Error("input chain was modified")
	}
}

func TestResolveInsertionWithoutMatchRespaces(t *testing.T) {
	chain := engine.Chain{
		{ID: 1, Color: R, T: 5.0},
		{ID: 2, Color: B, T: 5.23},
		{ID: 3, Color: B, T: 6.0}, // gap left by an earlier removal
	}
	shot := engine.Marble{ID: 9, Color: G}

	out, removed := engine.ResolveInsertion(chain, 1, shot, 0.23, 3)
	if removed != 0 {
		t.Fatalf("removed = %d, expected 0", removed)
	}
	if got := colorsOf(out); !sameColors(got, []engine.Color{R, G, B, B}) {
		t.Fatalf("colors = %v, expected [R G B B]", got)
	}
	if out[1].T != 5.23 || out[1].ID != 9 {
		t.Errorf("shot = %+v, expected id 9 at the struck marble's t", out[1])
	}
	// Rigid push: everything behind the shot is exactly one spacing apart.
	for i := 2; i < len(out); i++ {
		if d := out[i].T - out[i-1].T; math.Abs(d-0.23) > eps {
			t.Errorf("gap %d = %v, expected 0.23", i, d)
		}
	}
}

func TestResolveInsertionIgnoresGapsWhenExpanding(t *testing.T) {
	chain := engine.Chain{
		{ID: 1, Color: R, T: 2.0},
		{ID: 2, Color: R, T: 4.0},
		{ID: 3, Color: B, T: 4.23},
	}
	out, removed := engine.ResolveInsertion(chain, 1, engine.Marble{Color: R}, 0.23, 3)
	if removed != 3 || len(out) != 1 {
		t.Errorf("removed %d, left %v; expected 3 removed across the gap", removed, colorsOf(out))
	}
}

func TestResolveInsertionIsDeterministic(t *testing.T) {
	chain := spaced(3, 0.23, B, R, R, G, G, R, R)
	shot := engine.Marble{ID: 50, Color: G}

	a, na := engine.ResolveInsertion(chain, 4, shot, 0.23, 3)
	b, nb := engine.ResolveInsertion(chain, 4, shot, 0.23, 3)
	if na != nb || len(a) != len(b) {
		t.Fatalf("results differ: %d/%d vs %d/%d", na, len(a), nb, len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("a[%d] = %+v, b[%d] = %+v", i, a[i], i, b[i])
		}
	}
	if na != 3 {
		t.Errorf("removed = %d, expected 3 greens", na)
	}
	// The reds on both sides now meet but only a later chain tick may match them.
	if got := colorsOf(a); !sameColors(got, []engine.Color{B, R, R, R, R}) {
		t.Errorf("colors = %v, expected [B R R R R]", got)
	}
}

func TestExpandRun(t *testing.T) {
	c := spaced(0, 0.23, R, B, B, B, G)
	tests := []struct {
		i, start, end int
	}{
		{0, 0, 0},
		{2, 1, 3},
		{3, 1, 3},
		{4, 4, 4},
	}
	for _, tt := range tests {
		s, e := engine.ExpandRun(c, tt.i)
		if s != tt.start || e != tt.end {
			t.Errorf("ExpandRun(%d) = (%d, %d), expected (%d, %d)", tt.i, s, e, tt.start, tt.end)
		}
	}
}
