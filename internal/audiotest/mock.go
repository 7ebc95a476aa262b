// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic waveform sources for tests and
// examples. Wave satisfies the audio.Source interface without importing it.
package audiotest

import (
	"io"
	"math"
)

// Wave streams frames produced by a per-frame function.
type Wave struct {
	rate     int
	channels int
	frames   int
	pos      int
	at       func(frame, channel int) float32
}

// New returns a Wave of the given shape; at is called once per frame and
// channel in stream order.
func New(rate, channels, frames int, at func(frame, channel int) float32) *Wave {
	return &Wave{
		rate:     rate,
		channels: channels,
		frames:   frames,
		at:       at,
	}
}

// Sine returns a Wave carrying a unit sine tone on every channel.
func Sine(rate, channels, frames int, freq float64) *Wave {
	return New(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// Constant returns a Wave holding level on every channel.
func Constant(rate, channels, frames int, level float32) *Wave {
	return New(rate, channels, frames, func(_, _ int) float32 {
		return level
	})
}

// Silence returns an all-zero Wave.
func Silence(rate, channels, frames int) *Wave {
	return Constant(rate, channels, frames, 0)
}

func (w *Wave) SampleRate() int { return w.rate }
func (w *Wave) Channels() int   { return w.channels }
func (w *Wave) BufSize() int    { return 4096 }
func (w *Wave) Close() error    { return nil }

// ReadSamples writes whole frames into dst and reports io.EOF alongside the
// final batch.
func (w *Wave) ReadSamples(dst []float32) (int, error) {
	if w.pos >= w.frames {
		return 0, io.EOF
	}

	frames := len(dst) / w.channels
	if left := w.frames - w.pos; frames > left {
		frames = left
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < w.channels; c++ {
			dst[f*w.channels+c] = w.at(w.pos+f, c)
		}
	}
	w.pos += frames

	if w.pos >= w.frames {
		return frames * w.channels, io.EOF
	}
	return frames * w.channels, nil
}
