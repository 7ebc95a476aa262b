// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/nbarak/audmix/utils"
)

// Resampler converts an interleaved stream to a target sample rate with
// Catmull-Rom interpolation over a sliding four-frame window, channel by
// channel. A one-pole low-pass smooths the input when downsampling.
//
// The output length is exact: a source of n frames yields
// round(n * target / native) frames. At the edges of the stream the
// interpolation window clamps to the first and last source frames, so the
// count never falls short of that contract.
type Resampler struct {
	src      Source
	rate     int
	srcRate  int
	channels int
	step     float64 // source frames advanced per output frame

	hist    []float32 // retained source frames, interleaved
	histOff int       // absolute frame index of hist[0]
	inEnd   int       // source frames consumed so far
	outPos  int       // next output frame index
	outEnd  int       // total output frames, -1 until the source drains

	filter  []float32 // one-pole state per channel, nil when upsampling
	primed  bool
	readBuf []float32
}

func NewResampler(src Source, sampleRate int) *Resampler {
	r := &Resampler{
		src:      src,
		rate:     sampleRate,
		srcRate:  src.SampleRate(),
		channels: src.Channels(),
		step:     float64(src.SampleRate()) / float64(sampleRate),
		outEnd:   -1,
		readBuf:  make([]float32, 4096),
	}

	if r.step > 1 {
		r.filter = make([]float32, r.channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fill consumes source frames until frame index last is available or the
// stream ends. Draining the source fixes the exact output length.
func (r *Resampler) fill(last int) error {
	for r.outEnd < 0 && r.inEnd <= last {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			frames := n / r.channels
			chunk := r.readBuf[:frames*r.channels]
			r.smooth(chunk, frames)
			r.hist = append(r.hist, chunk...)
			r.inEnd += frames
		}

		if err == io.EOF {
			r.outEnd = int(math.Round(float64(r.inEnd) * float64(r.rate) / float64(r.srcRate)))
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// smooth runs the anti-alias filter over freshly read frames in place. The
// state starts at the first frame's value so constant signals pass
// unchanged.
func (r *Resampler) smooth(chunk []float32, frames int) {
	if r.filter == nil {
		return
	}

	if !r.primed && frames > 0 {
		copy(r.filter, chunk[:r.channels])
		r.primed = true
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < r.channels; c++ {
			v := 0.5*chunk[f*r.channels+c] + 0.5*r.filter[c]
			chunk[f*r.channels+c] = v
			r.filter[c] = v
		}
	}
}

// frame returns channel c of source frame i, clamping i to the consumed
// range so the window stays valid at both ends of the stream.
func (r *Resampler) frame(i, c int) float32 {
	if i < 0 {
		i = 0
	}
	if i >= r.inEnd {
		i = r.inEnd - 1
	}

	return r.hist[(i-r.histOff)*r.channels+c]
}

// trim drops history the interpolation window can no longer reach.
func (r *Resampler) trim() {
	reach := int(float64(r.outPos)*r.step) - 1
	if reach <= r.histOff {
		return
	}

	drop := reach - r.histOff
	if max := len(r.hist) / r.channels; drop > max {
		drop = max
	}

	r.hist = append(r.hist[:0], r.hist[drop*r.channels:]...)
	r.histOff += drop
}

// ReadSamples produces interleaved samples at the target rate. dst length
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	for written+r.channels <= len(dst) {
		if r.outEnd >= 0 && r.outPos >= r.outEnd {
			break
		}

		pos := float64(r.outPos) * r.step
		base := int(pos)

		if err := r.fill(base + 2); err != nil {
			return written, err
		}
		if r.outEnd >= 0 && r.outPos >= r.outEnd {
			break
		}

		t := float32(pos - float64(base))
		for c := 0; c < r.channels; c++ {
			dst[written+c] = utils.CubicInterpolate(
				r.frame(base-1, c), r.frame(base, c),
				r.frame(base+1, c), r.frame(base+2, c), t)
		}

		written += r.channels
		r.outPos++
	}
	r.trim()

	if r.outEnd >= 0 && r.outPos >= r.outEnd {
		return written, io.EOF
	}
	return written, nil
}
