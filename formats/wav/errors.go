// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/wavesynth/internal/pcm"
)

var (
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout covers compressed or malformed files.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth is returned for depths other than 16, 24 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrEmptyBuffer is returned by Encode for a nil or unformatted buffer.
	ErrEmptyBuffer = pcm.ErrEmptyBuffer
)
