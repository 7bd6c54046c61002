package marbles

import (
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

// AutoAim picks a board point to fire the loaded marble at.
//
// It prefers, from the pit end, a pair of adjacent marbles matching the
// loaded color (a shot there completes a run), then any single match, then
// the marble nearest the pit. Returns false when the chain is empty.
func AutoAim(snap engine.Snapshot) (core.Vec2, bool) {
	chain := snap.Chain
	if len(chain) == 0 {
		return core.Vec2{}, false
	}

	pick := -1
	for i := 0; i+1 < len(chain); i++ {
		if chain[i].Color == snap.Loaded && chain[i+1].Color == snap.Loaded {
			pick = i
			break
		}
	}
	if pick < 0 {
		for i, m := range chain {
			if m.Color == snap.Loaded {
				pick = i
				break
			}
		}
	}
	if pick < 0 {
		pick = 0
	}

	return snap.Params.Position(chain[pick].T), true
}
