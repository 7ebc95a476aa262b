// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"log/slog"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/wav"
	"github.com/nbarak/audmix/utils"
)

// BlockFrames is the number of PCM samples fed to the capability per block,
// the standard MP3 frame granularity.
const BlockFrames = 1152

// BlockEncoder is the MP3 encoding capability supplied by the environment.
// EncodeBlock consumes PCM samples and returns the bytes of any complete
// frames emitted so far; Flush emits the trailing frames once input ends.
type BlockEncoder interface {
	EncodeBlock(samples []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// Encode re-encodes raw 16-bit little-endian PCM bytes as MP3 using enc,
// feeding fixed blocks of BlockFrames samples plus a final flush, and
// concatenating every emitted frame range in order.
//
// A nil enc means the environment has no MP3 capability. That case never
// fails: the PCM is wrapped as a WAV container instead, tagged audio/wav,
// with a diagnostic warning. Audio stays downloadable in some format.
func Encode(pcm []byte, sampleRate, channels int, enc BlockEncoder) (audio.EncodedAudio, error) {
	if enc == nil {
		slog.Warn("mp3 encoder capability unavailable, falling back to wav container")
		return audio.EncodedAudio{
			Data: wav.Wrap(pcm, uint32(sampleRate), uint16(channels)),
			MIME: audio.MimeWAV,
		}, nil
	}

	samples := utils.BytesToSamples(pcm)

	var out bytes.Buffer
	for i := 0; i < len(samples); i += BlockFrames {
		end := min(i+BlockFrames, len(samples))

		frames, err := enc.EncodeBlock(samples[i:end])
		if err != nil {
			return audio.EncodedAudio{}, fmt.Errorf("%w", err)
		}
		out.Write(frames)
	}

	frames, err := enc.Flush()
	if err != nil {
		return audio.EncodedAudio{}, fmt.Errorf("%w", err)
	}
	out.Write(frames)

	return audio.EncodedAudio{Data: out.Bytes(), MIME: audio.MimeMP3}, nil
}

// ShineEncoder implements BlockEncoder over the pure-Go shine encoder at its
// default 128 kbit/s constant bitrate.
type ShineEncoder struct {
	enc         *shine.Encoder
	channels    int
	encChannels int
	pending     []int16
	buf         bytes.Buffer
}

// NewShineEncoder returns a BlockEncoder for interleaved PCM with the given
// channel count. Mono input is duplicated to stereo before encoding; shine
// mishandles single-channel streams.
func NewShineEncoder(sampleRate, channels int) *ShineEncoder {
	encChannels := channels
	if encChannels == 1 {
		encChannels = 2
	}

	return &ShineEncoder{
		enc:         shine.NewEncoder(sampleRate, encChannels),
		channels:    channels,
		encChannels: encChannels,
	}
}

func (s *ShineEncoder) EncodeBlock(samples []int16) ([]byte, error) {
	if s.channels == 1 && s.encChannels == 2 {
		for _, v := range samples {
			s.pending = append(s.pending, v, v)
		}
	} else {
		s.pending = append(s.pending, samples...)
	}

	// Hand shine complete frames only; the remainder carries over.
	frameSamples := BlockFrames * s.encChannels
	complete := (len(s.pending) / frameSamples) * frameSamples
	if complete > 0 {
		if err := s.enc.Write(&s.buf, s.pending[:complete]); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		s.pending = s.pending[complete:]
	}

	return s.drain(), nil
}

func (s *ShineEncoder) Flush() ([]byte, error) {
	if len(s.pending) > 0 {
		frameSamples := BlockFrames * s.encChannels
		for len(s.pending)%frameSamples != 0 {
			s.pending = append(s.pending, 0)
		}

		if err := s.enc.Write(&s.buf, s.pending); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		s.pending = nil
	}

	return s.drain(), nil
}

func (s *ShineEncoder) drain() []byte {
	out := append([]byte(nil), s.buf.Bytes()...)
	s.buf.Reset()
	return out
}
