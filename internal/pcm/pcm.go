// SPDX-License-Identifier: EPL-2.0

// Package pcm holds what the wav and aiff packages share: adapting
// go-audio integer decoders to audio.Source and driving go-audio encoders.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavesynth/audio"
)

// ErrEmptyBuffer is returned when there is nothing to encode.
var ErrEmptyBuffer = errors.New("empty or unformatted buffer")

// defaultBufSize is the read size, in samples, reported before the first read.
const defaultBufSize = 4096

// Reader is the part of go-audio's wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source adapts a Reader to audio.Source. Samples are divided by
// 2^(bitDepth-1), so full scale maps to [-1, 1).
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	norm       float32
	buf        *goaudio.IntBuffer
}

// NewSource wraps dec. The caller keeps ownership of the underlying
// reader; Close does not close it.
func NewSource(dec Reader, bitDepth int) *Source {
	f := dec.Format()
	return &Source{
		dec:        dec,
		sampleRate: f.SampleRate,
		channels:   f.NumChannels,
		norm:       float32(uint64(1) << (bitDepth - 1)),
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return defaultBufSize
}

func (s *Source) Close() error { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("reading pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.norm
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Seekable returns r itself when it can seek, otherwise reads it into
// memory. go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Encoder is the part of go-audio's wav and aiff encoders Encode drives.
type Encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// CheckBuffer rejects buffers an encoder cannot describe.
func CheckBuffer(buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate < 1 {
		return ErrEmptyBuffer
	}
	return nil
}

// Encode writes buf through enc and finalises the headers.
func Encode(enc Encoder, buf *goaudio.IntBuffer) error {
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}
	return nil
}

// BitDepth returns the depth to encode buf with: SourceBitDepth, or 16
// when unset.
func BitDepth(buf *goaudio.IntBuffer) int {
	if buf.SourceBitDepth == 0 {
		return 16
	}
	return buf.SourceBitDepth
}

var _ audio.Source = (*Source)(nil)
