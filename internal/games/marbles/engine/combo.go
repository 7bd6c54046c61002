package engine

import "time"

// ComboTracker counts consecutive matches. The streak resets once window
// passes without a match. Decay is evaluated against the simulation clock
// when asked, so there are no timers to cancel.
type ComboTracker struct {
	window time.Duration
	count  int
	last   time.Duration
}

// NewComboTracker creates a tracker with the given decay window.
func NewComboTracker(window time.Duration) ComboTracker {
	return ComboTracker{window: window}
}

// RegisterMatch extends the streak and restarts the decay window at now.
func (c *ComboTracker) RegisterMatch(now time.Duration) int {
	c.count++
	c.last = now
	return c.count
}

// Decay resets the streak if the window has elapsed since the last match.
// Calling it again after a reset, or before the window ends, does nothing.
func (c *ComboTracker) Decay(now time.Duration) {
	if c.count > 0 && now-c.last >= c.window {
		c.count = 0
	}
}

// Count returns the current streak.
func (c *ComboTracker) Count() int {
	return c.count
}

// Reset clears the streak.
func (c *ComboTracker) Reset() {
	c.count = 0
	c.last = 0
}
