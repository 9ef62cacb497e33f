// SPDX-License-Identifier: EPL-2.0

package audiotest

// Ramp is an infinite producer yielding start, start+step, start+2*step...
// It satisfies audio.Producer.
type Ramp struct {
	next  float64
	step  float64
	pulls int
}

func NewRamp(start, step float64) *Ramp {
	return &Ramp{next: start, step: step}
}

func (r *Ramp) Next() (float64, bool) {
	v := r.next
	r.next += r.step
	r.pulls++
	return v, true
}

// Pulls reports how many values were requested.
func (r *Ramp) Pulls() int { return r.pulls }

// Counter yields 0, 1, 2... up to limit-1 and then ends.
// A negative limit never ends.
type Counter struct {
	n     int
	limit int
}

func NewCounter(limit int) *Counter {
	return &Counter{limit: limit}
}

func (c *Counter) Next() (float64, bool) {
	if c.limit >= 0 && c.n >= c.limit {
		return 0, false
	}
	v := float64(c.n)
	c.n++
	return v, true
}

// Collect pulls exactly n values from p, failing with ok == false if p
// ends first.
func Collect(p interface{ Next() (float64, bool) }, n int) (out []float64, ok bool) {
	out = make([]float64, 0, n)
	for range n {
		v, more := p.Next()
		if !more {
			return out, false
		}
		out = append(out, v)
	}
	return out, true
}
