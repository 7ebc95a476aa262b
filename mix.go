// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/aiff"
	"github.com/nbarak/audmix/formats/mp3"
	"github.com/nbarak/audmix/formats/vorbis"
	"github.com/nbarak/audmix/formats/wav"
	"github.com/nbarak/audmix/utils"
)

// MixRate is the fixed output sample rate of the mixing engine in Hz.
const MixRate = 24000

const collectBufSize = 4096

// DefaultRegistry returns a decoder registry covering every container format
// this library can read.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Shared by every Mix call; the registry is safe for concurrent use.
var defaultRegistry = DefaultRegistry()

// Mix combines a foreground speech container with a looping background music
// container into one mono WAV at MixRate.
//
// The speech stream plays once from sample 0 at unit gain and defines the
// output duration exactly. The music stream wraps to its own start for the
// full duration, scaled by musicGain before summation. Inputs at other
// sample rates or channel counts are normalized to mono MixRate first. The
// running sum is clamped to [-1, 1] only at final quantization.
//
// Decode failure of either stream fails the whole mix: there is no partial
// result. A caller that wants a fallback keeps its unmixed speech container.
func Mix(speech, music audio.EncodedAudio, musicGain float32) (audio.EncodedAudio, error) {
	if musicGain < 0 || musicGain > 1 {
		return audio.EncodedAudio{}, ErrInvalidGain
	}

	fg, err := decodeToMixFloats(speech.Data)
	if err != nil {
		return audio.EncodedAudio{}, fmt.Errorf("%w: speech stream: %s", ErrMixDecode, err)
	}

	bg, err := decodeToMixFloats(music.Data)
	if err != nil {
		return audio.EncodedAudio{}, fmt.Errorf("%w: music stream: %s", ErrMixDecode, err)
	}

	out := make([]int16, len(fg))
	for i := range fg {
		v := fg[i]
		if len(bg) > 0 {
			v += bg[i%len(bg)] * musicGain
		}
		out[i] = utils.QuantizePCM16(v)
	}

	return audio.EncodedAudio{
		Data: wav.Wrap(utils.SamplesToBytes(out), MixRate, 1),
		MIME: audio.MimeWAV,
	}, nil
}

// decodeToMixFloats decodes an arbitrary container and normalizes the stream
// to mono float samples at MixRate. A source of duration d comes out as
// exactly round(MixRate * d) samples; the resampler guarantees that length.
func decodeToMixFloats(data []byte) ([]float32, error) {
	src, err := audio.DecodeBuffer(defaultRegistry, data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var stream audio.Source = src
	if stream.Channels() != 1 {
		stream = audio.NewMonoMixer(stream)
	}
	if stream.SampleRate() != MixRate {
		stream = audio.NewResampler(stream, MixRate)
	}

	return audio.Collect(stream, collectBufSize)
}
