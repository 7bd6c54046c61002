package engine

// Marble is one ball on the path. T decreases toward the pit.
type Marble struct {
	ID    int
	Color Color
	T     float64
}

// Chain is the ordered list of marbles on the path.
// Index 0 is closest to the pit; T ascends toward the tail.
type Chain []Marble

// Clone returns an independent copy of the chain.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}

// Head returns the marble closest to the pit.
func (c Chain) Head() (Marble, bool) {
	if len(c) == 0 {
		return Marble{}, false
	}
	return c[0], true
}

// Tail returns the marble closest to the mouth.
func (c Chain) Tail() (Marble, bool) {
	if len(c) == 0 {
		return Marble{}, false
	}
	return c[len(c)-1], true
}

// ReachedPit reports whether any marble is at or past the pit.
func (c Chain) ReachedPit() bool {
	for _, m := range c {
		if m.T <= 0 {
			return true
		}
	}
	return false
}

// Remove returns the chain without the count marbles starting at start.
func (c Chain) Remove(start, count int) Chain {
	out := make(Chain, 0, len(c)-count)
	out = append(out, c[:start]...)
	return append(out, c[start+count:]...)
}

// Advance moves every marble toward the pit by speed.
func (c Chain) Advance(speed float64) {
	for i := range c {
		c[i].T -= speed
	}
}

// ResolveOverlaps pushes each marble outward so it sits at least spacing
// beyond its pit-ward neighbour. Runs from the pit end to the tail.
func (c Chain) ResolveOverlaps(spacing float64) {
	for i := 1; i < len(c); i++ {
		if minT := c[i-1].T + spacing; c[i].T < minT {
			c[i].T = minT
		}
	}
}

// ClampMouth keeps marbles on the path: nothing may sit beyond maxT, and a
// clamped marble drags its pit-ward neighbours in to keep their spacing.
func (c Chain) ClampMouth(maxT, spacing float64) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].T > maxT {
			c[i].T = maxT
		}
		if i > 0 {
			if maxPrev := c[i].T - spacing; c[i-1].T > maxPrev {
				c[i-1].T = maxPrev
			}
		}
	}
}

// CloseGaps pulls the pit-ward side of every gap outward by at most
// closing per call, never past its outer neighbour's spacing slot.
func (c Chain) CloseGaps(spacing, closing float64) {
	for i := len(c) - 1; i > 0; i-- {
		if maxInner := c[i].T - spacing; c[i-1].T < maxInner {
			c[i-1].T = min(maxInner, c[i-1].T+closing)
		}
	}
}

// FindTouchingRun scans from the pit end for the first run of at least
// minRun same-colored marbles whose consecutive gaps are all within reach.
func (c Chain) FindTouchingRun(reach float64, minRun int) (start, count int, ok bool) {
	i := 0
	for i < len(c) {
		j := i
		for j+1 < len(c) && c[j+1].Color == c[i].Color && c[j+1].T-c[j].T <= reach {
			j++
		}
		if n := j - i + 1; n >= minRun {
			return i, n, true
		}
		i = j + 1
	}
	return 0, 0, false
}

// ChainStep is the outcome of one chain tick.
type ChainStep struct {
	Chain   Chain
	Queue   SpawnQueue
	Removed []Marble // The run matched this tick, nil if none
	Spawned bool
	NextID  int
}

// StepChain runs one tick of chain physics and returns the new chain.
// The input chain and queue are left untouched.
//
// Order matters: advance, forward overlap pass, mouth clamp, backward
// closing pass, a single match removal, then spawn. Only one run is removed
// per tick so cascades play out over successive ticks as gaps close.
func StepChain(chain Chain, queue SpawnQueue, p LevelParams, nextID int) ChainStep {
	moved := chain.Clone()
	if moved == nil {
		moved = Chain{}
	}

	moved.Advance(p.Speed)
	moved.ResolveOverlaps(p.Spacing)
	moved.ClampMouth(p.MaxT, p.Spacing)
	moved.CloseGaps(p.Spacing, p.ClosingSpeed)

	result := ChainStep{Queue: queue, NextID: nextID}

	if start, n, ok := moved.FindTouchingRun(p.Spacing+p.TouchTolerance, p.MinRun); ok {
		result.Removed = moved[start : start+n].Clone()
		moved = moved.Remove(start, n)
	}

	if queue.Len() > 0 {
		tail, hasTail := moved.Tail()
		if !hasTail || tail.T <= p.MaxT-p.Spacing {
			color, rest, _ := queue.Pop()
			moved = append(moved, Marble{ID: nextID, Color: color, T: p.MaxT})
			result.Queue = rest
			result.NextID = nextID + 1
			result.Spawned = true
		}
	}

	result.Chain = moved
	return result
}
