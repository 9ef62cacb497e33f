// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := audio.FromSource(source, float64(synth.FullScale()))
//
// Samples come out as interleaved float32 in [-1, 1] with the channel
// count of the stream. There is no Vorbis encoder.
package vorbis
