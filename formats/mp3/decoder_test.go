// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/wavesynth/audio"
)

// mockMP3Reader simulates gomp3.Decoder, handing out at most chunk bytes
// per Read.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	chunk      int
}

func newMockMP3(samples []int16, chunk int) *mockMP3Reader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: 44100, data: data, chunk: chunk}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := min(len(buf), len(m.data), m.chunk)
	copy(buf, m.data[:n])
	m.data = m.data[n:]
	return n, nil
}

func readAll(t *testing.T, src *source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for range 1000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":   nil,
		"garbage": []byte("This is not MP3 data"),
	}

	var dec Decoder
	for name, in := range inputs {
		if _, err := dec.Decode(bytes.NewReader(in)); !errors.Is(err, ErrNotMP3) {
			t.Errorf("%s: Decode() error = %v, want ErrNotMP3", name, err)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockMP3(nil, 8), sampleRate: 44100, buf: make([]byte, 8192)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	want := []float32{0, 0.5, 32767.0 / 32768, -0.5, -1, 0.25, -0.25, 0}

	src := &source{dec: newMockMP3(samples, 1<<20), sampleRate: 8000}
	got := readAll(t, src, 64)

	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_SplitSamples(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 101)
	for i := range samples {
		samples[i] = int16(i * 300)
	}

	// odd chunk sizes split samples across reads
	for _, chunk := range []int{1, 3, 7, 255} {
		src := &source{dec: newMockMP3(samples, chunk), sampleRate: 8000}
		got := readAll(t, src, 16)

		if len(got) != len(samples) {
			t.Fatalf("chunk %d: read %d samples, want %d", chunk, len(got), len(samples))
		}
		for i, s := range samples {
			if got[i] != float32(s)/32768 {
				t.Fatalf("chunk %d: sample %d = %v, want %v", chunk, i, got[i], float32(s)/32768)
			}
		}
	}
}

func TestSource_ThroughProducer(t *testing.T) {
	t.Parallel()

	// a stereo frame of (L, R) becomes (L+R)/2
	src := &source{dec: newMockMP3([]int16{16384, 0, -16384, -16384}, 64), sampleRate: 8000, buf: make([]byte, 64)}
	got := audio.Take(audio.FromSource(src, 32768), 10)

	if len(got) != 2 || got[0] != 8192 || got[1] != -16384 {
		t.Errorf("producer values = %v, want [8192 -16384]", got)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 1<<16)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: newMockMP3(samples, 8192), sampleRate: 44100, buf: make([]byte, 8192)}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
