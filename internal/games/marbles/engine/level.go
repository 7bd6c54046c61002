package engine

import "math/rand"

// SpawnQueue is the ordered list of colors waiting to enter the path.
// Index 0 is the next marble to spawn.
type SpawnQueue []Color

// Len returns the number of queued marbles.
func (q SpawnQueue) Len() int {
	return len(q)
}

// Pop returns the front color and the remaining queue.
// The receiver is not modified, so callers may keep the old queue.
func (q SpawnQueue) Pop() (Color, SpawnQueue, bool) {
	if len(q) == 0 {
		return 0, q, false
	}
	return q[0], q[1:], true
}

// GenerateQueue builds the full color sequence for a level.
func GenerateQueue(p LevelParams, rng *rand.Rand) []Color {
	palette := p.Palette()
	colors := make([]Color, p.QueueLen)
	for i := range colors {
		colors[i] = palette[rng.Intn(len(palette))]
	}
	return colors
}

// InitialWave places the first InitialCount colors on the path, evenly
// spaced with the tail marble at the mouth. It returns the wave, the colors
// left for the spawn queue, and the next free marble id.
func InitialWave(colors []Color, p LevelParams, nextID int) (Chain, SpawnQueue, int) {
	n := min(p.InitialCount, len(colors))
	chain := make(Chain, n)
	for i := 0; i < n; i++ {
		chain[i] = Marble{
			ID:    nextID,
			Color: colors[i],
			T:     p.MaxT - float64(n-1-i)*p.Spacing,
		}
		nextID++
	}
	rest := make(SpawnQueue, len(colors)-n)
	copy(rest, colors[n:])
	return chain, rest, nextID
}
