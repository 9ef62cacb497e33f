// SPDX-License-Identifier: EPL-2.0

package osc

// Linear is a ramp: it yields its current level, then adds the increment
// and clamps the result to [min, max]. It never ends on its own.
type Linear struct {
	level     float64
	increment float64
	min       float64
	max       float64
}

// NewLinear creates a ramp starting at start. The first value is start
// itself, clamped.
func NewLinear(start, increment, lo, hi float64) *Linear {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Linear{
		level:     clamp(start, lo, hi),
		increment: increment,
		min:       lo,
		max:       hi,
	}
}

func (s *Linear) Next() (float64, bool) {
	v := s.level
	s.level = clamp(s.level+s.increment, s.min, s.max)
	return v, true
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
