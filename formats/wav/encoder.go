// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavesynth/internal/pcm"
)

// Encode writes buf to w as a PCM WAV file.
//
// The bit depth is buf.SourceBitDepth (16 when unset), which is what
// wavesynth sets on rendered buffers. w must seek so the header sizes can
// be patched once the data is written.
func Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	if err := pcm.CheckBuffer(buf); err != nil {
		return err
	}

	depth := pcm.BitDepth(buf)
	if !supportedDepth(depth) {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, depth)
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels, formatPCM)
	if err := pcm.Encode(enc, buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	return nil
}
