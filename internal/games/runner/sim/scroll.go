package sim

// Scroller tracks the parallax layers. Each layer moves at its factor times
// the obstacle speed; one of them measures distance for the score.
type Scroller struct {
	factors    []float64
	offsets    []float64
	scoreLayer int
	enabled    bool
}

// NewScroller creates an enabled scroller. An out of range scoreLayer
// falls back to the last (fastest) layer.
func NewScroller(factors []float64, scoreLayer int) *Scroller {
	if scoreLayer < 0 || scoreLayer >= len(factors) {
		scoreLayer = len(factors) - 1
	}
	return &Scroller{
		factors:    append([]float64(nil), factors...),
		offsets:    make([]float64, len(factors)),
		scoreLayer: scoreLayer,
		enabled:    true,
	}
}

// Advance scrolls every layer for deltaMs at speed pixels per second and
// returns how far the score layer moved. A disabled scroller returns 0.
func (s *Scroller) Advance(speed, deltaMs float64) float64 {
	if !s.enabled || len(s.factors) == 0 {
		return 0
	}
	base := speed * deltaMs / 1000
	for i, f := range s.factors {
		s.offsets[i] += base * f
	}
	return base * s.factors[s.scoreLayer]
}

// SetEnabled starts or stops scrolling.
func (s *Scroller) SetEnabled(enabled bool) { s.enabled = enabled }

// Enabled reports whether the world is scrolling.
func (s *Scroller) Enabled() bool { return s.enabled }

// Offsets returns a copy of the accumulated offset of each layer.
func (s *Scroller) Offsets() []float64 {
	return append([]float64(nil), s.offsets...)
}

// Reset zeroes the offsets and enables scrolling.
func (s *Scroller) Reset() {
	clear(s.offsets)
	s.enabled = true
}
