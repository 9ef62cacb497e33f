// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/wavesynth/internal/audiotest"
)

type stubDecoder struct {
	rate int
}

func (d stubDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(d.rate, 1, 10), nil
}

type brokenDecoder struct{}

func (brokenDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{rate: 8000})
	reg.Register(".MP3", stubDecoder{rate: 22050})
	reg.Register("ogg", brokenDecoder{})

	tests := []struct {
		key  string
		ok   bool
		rate int
	}{
		{"wav", true, 8000},
		{".wav", true, 8000},
		{"WAV", true, 8000},
		{"mp3", true, 22050},
		{".Mp3", true, 22050},
		{"ogg", true, 0},
		{"aiff", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			dec, ok := reg.Get(tt.key)
			if ok != tt.ok {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if !ok {
				return
			}

			src, err := dec.Decode(nil)
			if tt.rate == 0 {
				if err == nil {
					t.Errorf("Decode() via %q: want error", tt.key)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.rate)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{rate: 8000})
	reg.Register(".wav", stubDecoder{rate: 16000})

	dec, _ := reg.Get("wav")
	if got := dec.(stubDecoder).rate; got != 16000 {
		t.Errorf("rate = %d, want the later registration 16000", got)
	}

	if got := reg.Formats(); !slices.Equal(got, []string{"wav"}) {
		t.Errorf("Formats() = %v, want [wav]", got)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if got := reg.Formats(); len(got) != 0 {
		t.Errorf("empty registry Formats() = %v", got)
	}

	for _, k := range []string{"ogg", ".wav", "MP3", "aiff"} {
		reg.Register(k, stubDecoder{})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := reg.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	keys := []string{"wav", "aiff", "mp3", "ogg"}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				k := keys[(i+j)%len(keys)]
				reg.Register(k, stubDecoder{rate: i})
				reg.Get(k)
				reg.Formats()
			}
		}()
	}
	wg.Wait()

	if got := reg.Formats(); len(got) != len(keys) {
		t.Errorf("Formats() = %v, want %d keys", got, len(keys))
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", stubDecoder{})
	reg.Register("mp3", stubDecoder{})

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		reg.Get(".wav")
	}
}
