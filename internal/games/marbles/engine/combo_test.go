package engine_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

func TestComboDecay(t *testing.T) {
	c := engine.NewComboTracker(5 * time.Second)

	c.RegisterMatch(1 * time.Second)
	c.RegisterMatch(3 * time.Second)
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", c.Count())
	}

	c.Decay(7 * time.Second) // 4s after last match
	if c.Count() != 2 {
		t.Errorf("Count() = %d before window elapsed, expected 2", c.Count())
	}

	c.Decay(8 * time.Second)
	if c.Count() != 0 {
		t.Errorf("Count() = %d after window, expected 0", c.Count())
	}

	// A stale decay after a fresh match does nothing.
	c.RegisterMatch(20 * time.Second)
	c.Decay(21 * time.Second)
	if c.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", c.Count())
	}
}
