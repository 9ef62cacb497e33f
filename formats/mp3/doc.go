// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo, so the returned
// audio.Source reports two channels. audio.FromSource downmixes it when the
// stream is fed into a synthesizer graph:
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := audio.FromSource(source, float64(synth.FullScale()))
//	echo, _ := filter.NewEcho(p, filter.Echo{Amount: 3, Delay: 0.25, Decay: 0.5}, source.SampleRate())
//
// There is no MP3 encoder.
package mp3
