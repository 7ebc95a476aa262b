package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nbarak/audmix/audio"
)

const (
	formatPCM      = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
)

// pcmSource streams interleaved little-endian int16 PCM from the data
// chunk, bounded to the declared chunk size.
type pcmSource struct {
	data       io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) BufSize() int    { return cap(s.buf) / bytesPerSample }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * bytesPerSample
	if len(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := io.ReadFull(s.data, s.buf[:want])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("reading PCM data: %w", err)
	}

	samples := n / bytesPerSample
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768
	}

	if samples == 0 && err != nil {
		return 0, io.EOF
	}
	return samples, nil
}

// Decoder reads RIFF/WAVE streams carrying 16-bit PCM. Chunks other
// than fmt and data (LIST, fact, cue and friends) are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var preamble [12]byte
	if _, err := io.ReadFull(r, preamble[:]); err != nil {
		return nil, fmt.Errorf("reading RIFF preamble: %w", err)
	}
	if string(preamble[0:4]) != "RIFF" || string(preamble[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		sampleRate int
		channels   int
		haveFmt    bool
	)

	// Walk chunks until the data chunk shows up. The fmt chunk must
	// come first so the source can be configured.
	for {
		var head [8]byte
		if _, err := io.ReadFull(r, head[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrUnsupportedWavChunks
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}
		id := string(head[0:4])
		size := int64(binary.LittleEndian.Uint32(head[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("reading fmt chunk: %w", err)
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			bits := binary.LittleEndian.Uint16(body[14:16])
			if format != formatPCM || bits != bitsPerSample {
				return nil, ErrOnlyPCM16bitSupported
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			if channels < 1 || sampleRate < 1 {
				return nil, ErrUnsupportedWavLayout
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}
			return &pcmSource{
				data:       io.LimitReader(r, size),
				sampleRate: sampleRate,
				channels:   channels,
				buf:        make([]byte, 4096),
			}, nil

		default:
			// Chunks are word-aligned: odd sizes carry a pad byte.
			skip := size + size%2
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, ErrUnsupportedWavChunks
			}
		}
	}
}
