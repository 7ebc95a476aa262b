// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// MIME tags carried by EncodedAudio containers.
const (
	MimeWAV = "audio/wav"
	MimeMP3 = "audio/mp3"
)

// EncodedAudio is an opaque container byte buffer plus its declared MIME tag.
// Ownership passes entirely to the caller; the buffer is never mutated after
// it is produced.
type EncodedAudio struct {
	Data []byte
	MIME string
}

// Source is a pull-based stream of interleaved float32 PCM in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels in each frame (1 mono, 2 stereo, ...).
	Channels() int
	// ReadSamples fills dst and reports how many float32 values were
	// written. The stream is finished when it returns (0, io.EOF); a
	// final batch of samples may arrive together with io.EOF.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read chunk size the source performs best with.
	BufSize() int
	// Close releases any resources held by the source.
	Close() error
}

// Decoder opens an encoded container as a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps container format keys ("wav", "mp3", "ogg", "aiff") to
// decoders. Safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds format to d, replacing any previous binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
