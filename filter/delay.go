// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/wavesynth/audio"
)

// Delay shifts a source in time. A positive delay emits silence before
// the source starts; a negative one drops the head of the source on the
// first pull.
type Delay struct {
	src     audio.Producer
	pending int // zeros still to emit, or samples to drop when negative
}

// NewDelay delays src by seconds, rounded to the nearest sample.
func NewDelay(src audio.Producer, seconds float64, sampleRate int) *Delay {
	return &Delay{
		src:     src,
		pending: int(math.Round(seconds * float64(sampleRate))),
	}
}

// Samples reports the remaining shift in samples.
func (d *Delay) Samples() int { return d.pending }

func (d *Delay) Next() (float64, bool) {
	switch {
	case d.pending > 0:
		d.pending--
		return 0, true
	case d.pending < 0:
		skip := -d.pending
		d.pending = 0
		if audio.Skip(d.src, skip) < skip {
			return 0, false
		}
	}
	return d.src.Next()
}
