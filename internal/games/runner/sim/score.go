package sim

import "math"

// Score accrues points from the distance the world has scrolled.
type Score struct {
	multiplier float64
	value      float64
	frozen     bool
}

// NewScore creates a score worth multiplier points per pixel.
func NewScore(multiplier float64) *Score {
	return &Score{multiplier: multiplier}
}

// Update adds the points for pixels scrolled this tick. Frozen scores
// and non-positive distances are ignored.
func (s *Score) Update(pixels float64) {
	if s.frozen || pixels <= 0 {
		return
	}
	s.value += pixels * s.multiplier
}

// Freeze stops the score from changing until Reset.
func (s *Score) Freeze() { s.frozen = true }

// Frozen reports whether the score is frozen.
func (s *Score) Frozen() bool { return s.frozen }

// Reset zeroes and unfreezes the score.
func (s *Score) Reset() {
	s.value = 0
	s.frozen = false
}

// Current returns the score floored for display.
func (s *Score) Current() int { return int(math.Floor(s.value)) }

// Value returns the unrounded score.
func (s *Score) Value() float64 { return s.value }
