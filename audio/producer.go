// SPDX-License-Identifier: EPL-2.0

package audio

// Producer yields one amplitude value per call.
//
// Next returns ok == false once the stream is exhausted; every later call
// must keep returning false. Infinite producers never return false.
// A Producer is single-pass and is not safe for concurrent use.
type Producer interface {
	Next() (v float64, ok bool)
}

// ProducerFunc adapts a plain function to the Producer interface.
type ProducerFunc func() (float64, bool)

func (f ProducerFunc) Next() (float64, bool) { return f() }

type constant float64

func (c constant) Next() (float64, bool) { return float64(c), true }

// Constant returns an infinite Producer that always yields v.
func Constant(v float64) Producer { return constant(v) }

// SliceProducer yields the values of a slice once, then ends.
type SliceProducer struct {
	values []float64
	pos    int
}

// FromSlice returns a finite Producer over values.
// The slice is not copied.
func FromSlice(values []float64) *SliceProducer {
	return &SliceProducer{values: values}
}

func (s *SliceProducer) Next() (float64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// Len reports how many values are left.
func (s *SliceProducer) Len() int { return len(s.values) - s.pos }

// Take pulls up to n values from p. The result is shorter than n only
// when p ends first.
func Take(p Producer, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, 0, n)
	for range n {
		v, ok := p.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Skip discards up to n values from p and reports how many were dropped.
func Skip(p Producer, n int) int {
	for i := range n {
		if _, ok := p.Next(); !ok {
			return i
		}
	}
	return max(n, 0)
}
