// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/nbarak/audmix/internal/audiotest"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.Silence(44100, 2, 100))

	if mono.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.2, 0.3, -0.4}
	mono := NewMonoMixer(NewBufferSource(samples, 8000, 1))

	out, err := Collect(mono, 16)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(out) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(out), len(samples))
	}
	for i := range samples {
		if out[i] != samples[i] {
			t.Errorf("out[%d] = %v, want %v untouched", i, out[i], samples[i])
		}
	}
}

func TestMonoMixer_AveragesFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frame    []float32
		want     float32
	}{
		{name: "stereo", channels: 2, frame: []float32{0.5, -0.25}, want: 0.125},
		{name: "quad", channels: 4, frame: []float32{1, 0, 0.5, 0.5}, want: 0.5},
		{name: "surround", channels: 6, frame: []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const frames = 50
			buf := make([]float32, 0, frames*tt.channels)
			for range frames {
				buf = append(buf, tt.frame...)
			}

			out, err := Collect(NewMonoMixer(NewBufferSource(buf, 8000, tt.channels)), 64)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			if len(out) != frames {
				t.Fatalf("got %d samples, want %d", len(out), frames)
			}
			for i, v := range out {
				if v != tt.want {
					t.Fatalf("out[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOFCarriesFinalFrames(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(NewBufferSource([]float32{0.5, -0.5}, 8000, 2))

	n, err := mono.ReadSamples(make([]float32, 16))
	if n != 1 {
		t.Errorf("ReadSamples() n = %d, want the single averaged frame", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() err = %v, want io.EOF alongside the data", err)
	}
}

func TestMonoMixer_DropsPartialTrailingFrame(t *testing.T) {
	t.Parallel()

	// Five interleaved values are two stereo frames plus half a frame.
	mono := NewMonoMixer(NewBufferSource([]float32{0.2, 0.4, 0.6, 0.8, 1.0}, 8000, 2))

	out, err := Collect(mono, 16)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d frames, want 2 with the partial frame dropped", len(out))
	}
}

func TestMonoMixer_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(&erroringStereoSource{})

	if _, err := mono.ReadSamples(make([]float32, 8)); err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want the source's failure", err)
	}
}

// erroringStereoSource fails every read with a non-EOF error.
type erroringStereoSource struct{}

func (e *erroringStereoSource) SampleRate() int { return 8000 }
func (e *erroringStereoSource) Channels() int   { return 2 }
func (e *erroringStereoSource) BufSize() int    { return 4096 }
func (e *erroringStereoSource) Close() error    { return nil }

func (e *erroringStereoSource) ReadSamples(dst []float32) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
