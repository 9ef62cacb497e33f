// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// SourceProducer pulls a decoded Source block by block and yields it one
// mono sample at a time, multiplied by a gain.
type SourceProducer struct {
	src  Source
	gain float64
	buf  []float32
	pos  int
	n    int
	err  error
	done bool
}

// FromSource exposes src as a Producer. Multi-channel sources are
// downmixed with a MonoMixer. gain scales the normalized [-1,1] samples,
// typically to the integer full scale of a synthesizer.
func FromSource(src Source, gain float64) *SourceProducer {
	if src.Channels() > 1 {
		src = NewMonoMixer(src)
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	return &SourceProducer{
		src:  src,
		gain: gain,
		buf:  make([]float32, size),
	}
}

func (p *SourceProducer) Next() (float64, bool) {
	for p.pos >= p.n {
		if p.done {
			return 0, false
		}
		p.fill()
	}

	v := float64(p.buf[p.pos]) * p.gain
	p.pos++

	return v, true
}

func (p *SourceProducer) fill() {
	n, err := p.src.ReadSamples(p.buf)
	p.pos, p.n = 0, n

	switch {
	case errors.Is(err, io.EOF):
		p.done = true
	case err != nil:
		p.done = true
		p.err = fmt.Errorf("%w", err)
	case n == 0:
		// a decoder that reports neither data nor EOF has nothing left
		p.done = true
	}
}

// SampleRate of the underlying source.
func (p *SourceProducer) SampleRate() int { return p.src.SampleRate() }

// Err returns the read error that ended the stream, if any.
func (p *SourceProducer) Err() error { return p.err }

// Close closes the underlying source.
func (p *SourceProducer) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
