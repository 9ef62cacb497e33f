// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavesynth"
	"github.com/ik5/wavesynth/audio"
	"github.com/ik5/wavesynth/formats/wav"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "*.wav")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 1000)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestEncodeDecode_Rendered(t *testing.T) {
	t.Parallel()

	for _, width := range []int{2, 4} {
		synth, err := wavesynth.New(wavesynth.Config{SampleRate: 8000, SampleWidth: width})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		rendered, err := synth.Sine(440, 0.5, wavesynth.WithAmplitude(0.8))
		if err != nil {
			t.Fatalf("Sine() error = %v", err)
		}

		f := tempFile(t)
		if err := wav.Encode(f, rendered); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("Seek() error = %v", err)
		}

		src, err := wav.Decoder{}.Decode(f)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if src.SampleRate() != 8000 || src.Channels() != 1 {
			t.Errorf("decoded %d Hz, %d channels", src.SampleRate(), src.Channels())
		}

		got := readAll(t, src)
		if len(got) != len(rendered.Data) {
			t.Fatalf("width %d: decoded %d samples, want %d", width, len(got), len(rendered.Data))
		}

		norm := float64(uint64(1) << (width*8 - 1))
		tolerance := 0.0
		if width == 4 {
			// float32 keeps 24 bits of a 32-bit sample
			tolerance = 256
		}
		for i, v := range got {
			back := float64(v) * norm
			if math.Abs(back-float64(rendered.Data[i])) > tolerance {
				t.Fatalf("width %d: sample %d = %v, want %d", width, i, back, rendered.Data[i])
			}
		}
	}
}

func TestDecode_NonSeekingReader(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 16000},
		Data:           []int{100, -100, 200, -200, 300, -300},
		SourceBitDepth: 16,
	}

	f := tempFile(t)
	if err := wav.Encode(f, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	src, err := wav.Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got := readAll(t, src)
	want := []float32{100, -100, 200, -200, 300, -300}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i]*32768 != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i]*32768, want[i])
		}
	}

	// through the producer adapter the stereo pairs cancel out
	again, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	mono := audio.Take(audio.FromSource(again, 1), 10)
	if !slices.Equal(mono, []float64{0, 0, 0}) {
		t.Errorf("downmixed values %v, want [0 0 0]", mono)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":   nil,
		"garbage": []byte("this is not an audio file at all, just some text"),
	}

	var dec wav.Decoder
	for name, in := range inputs {
		if _, err := dec.Decode(bytes.NewReader(in)); !errors.Is(err, wav.ErrNotWavFile) {
			t.Errorf("%s: Decode() error = %v, want ErrNotWavFile", name, err)
		}
	}
}

func TestEncode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		want error
	}{
		{"nil buffer", nil, wav.ErrEmptyBuffer},
		{"no format", &goaudio.IntBuffer{Data: []int{1}}, wav.ErrEmptyBuffer},
		{
			"8-bit",
			&goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, SourceBitDepth: 8},
			wav.ErrUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		if err := wav.Encode(tempFile(t), tt.buf); !errors.Is(err, tt.want) {
			t.Errorf("%s: Encode() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	synth, _ := wavesynth.New(wavesynth.DefaultConfig())
	buf, _ := synth.Square(440, 1)

	f, err := os.CreateTemp(b.TempDir(), "*.wav")
	if err != nil {
		b.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = f.Seek(0, io.SeekStart)
		_ = wav.Encode(f, buf)
	}
}
