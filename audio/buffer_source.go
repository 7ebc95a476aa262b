// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory float buffer as a Source, for feeding
// already-collected samples back into streaming stages like the Resampler.
type BufferSource struct {
	samples  []float32
	rate     int
	channels int
	pos      int
}

func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:  samples,
		rate:     sampleRate,
		channels: channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.rate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
