// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files using github.com/go-audio/wav.
//
// # Writing Rendered Audio
//
// Encode writes any *goaudio.IntBuffer, typically one returned by a
// wavesynth render:
//
//	buf, _ := synth.Sine(440, 2)
//	file, _ := os.Create("a4.wav")
//	defer file.Close()
//	if err := wav.Encode(file, buf); err != nil {
//	    // Handle error
//	}
//
// The bit depth follows buf.SourceBitDepth: 16, 24 or 32.
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	p := audio.FromSource(source, float64(synth.FullScale()))
//
// The decoder returns an audio.Source with float32 samples in [-1, 1).
// audio.FromSource turns it into a Producer that filters can shape.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: compressed audio or unreadable chunks
//   - ErrUnsupportedBitDepth: depth other than 16, 24 or 32 bits
//   - ErrEmptyBuffer: Encode was given nothing to write
package wav
