// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/wavesynth/audio"
)

// Clip limits a source to [min, max].
type Clip struct {
	src audio.Producer
	lo  float64
	hi  float64
}

// NewClip swaps lo and hi when they are given in the wrong order.
func NewClip(src audio.Producer, lo, hi float64) *Clip {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Clip{src: src, lo: lo, hi: hi}
}

func (c *Clip) Next() (float64, bool) {
	v, ok := c.src.Next()
	if !ok {
		return 0, false
	}
	return min(max(v, c.lo), c.hi), true
}

// Abs rectifies a source.
type Abs struct {
	src audio.Producer
}

func NewAbs(src audio.Producer) *Abs { return &Abs{src: src} }

func (a *Abs) Next() (float64, bool) {
	v, ok := a.src.Next()
	if !ok {
		return 0, false
	}
	return math.Abs(v), true
}

// Null passes its source through unchanged.
type Null struct {
	src audio.Producer
}

func NewNull(src audio.Producer) *Null { return &Null{src: src} }

func (n *Null) Next() (float64, bool) { return n.src.Next() }
