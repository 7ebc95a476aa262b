// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/nbarak/audmix/audio"
)

// go-mp3 always emits interleaved stereo int16 PCM.
const mp3Channels = 2

// pcmStream is the slice of gomp3.Decoder the source needs, kept narrow
// so tests can substitute their own stream.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	pcm        pcmStream
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return mp3Channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := s.pcm.Read(s.buf[:want])
	if n == 0 && err != nil {
		return 0, err
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768
	}
	return samples, err
}

// Decoder wraps hajimehoshi/go-mp3, which handles the MPEG frame parsing
// and hands back 16-bit PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		pcm:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
