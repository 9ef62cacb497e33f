// SPDX-License-Identifier: EPL-2.0

package wavesynth

import "github.com/ik5/wavesynth/audio"

// Errors returned by the synthesizer. They are the audio package sentinels,
// so errors.Is works with either name.
var (
	ErrInvalidParameter  = audio.ErrInvalidParameter
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
)
