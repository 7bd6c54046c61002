package core

import "time"

// DefaultTickRate is used when a RuntimeConfig leaves TickRate unset.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game about its surroundings:
// the terminal area it may draw into, how often Step is called and the seed
// for its random choices.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Step calls per second; <= 0 means DefaultTickRate
	Seed     int64 // 0 lets the platform pick one from the clock
}

// TickInterval returns the simulated time covered by one Step call.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the part of a game's state the platform acts on: it records
// scores on GameOver and shows the pause hint.
type GameState struct {
	Score    int
	Level    int // 1-based; 0 for games without levels
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
