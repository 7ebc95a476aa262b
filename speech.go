// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/mp3"
	"github.com/nbarak/audmix/formats/wav"
	"github.com/nbarak/audmix/transport"
)

// DecodeSpeech converts a transport-encoded payload of raw mono 16-bit PCM
// into a playable WAV container at sampleRate.
//
// The payload is what a speech-generation service hands back: base64 text
// wrapping little-endian PCM bytes with no container of their own.
func DecodeSpeech(payload string, sampleRate int) (audio.EncodedAudio, error) {
	pcm, err := transport.Decode(payload)
	if err != nil {
		return audio.EncodedAudio{}, fmt.Errorf("%w", err)
	}

	return audio.EncodedAudio{
		Data: wav.Wrap(pcm, uint32(sampleRate), 1),
		MIME: audio.MimeWAV,
	}, nil
}

// DecodeSpeechMP3 is DecodeSpeech with on-demand MP3 re-encoding through the
// given capability. A nil enc degrades to the WAV container per the encoder
// fallback contract; only a malformed payload or a failing capability
// returns an error.
func DecodeSpeechMP3(payload string, sampleRate int, enc mp3.BlockEncoder) (audio.EncodedAudio, error) {
	pcm, err := transport.Decode(payload)
	if err != nil {
		return audio.EncodedAudio{}, fmt.Errorf("%w", err)
	}

	return mp3.Encode(pcm, sampleRate, 1, enc)
}
