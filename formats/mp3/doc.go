// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio and re-encodes PCM as MP3.
//
// Decoding wraps github.com/hajimehoshi/go-mp3, which always emits
// interleaved stereo int16 PCM; the source normalizes it to float32 in
// [-1, 1]. Use audio.MonoMixer and audio.Resampler for channel and rate
// conversion downstream.
//
// Encoding goes through the BlockEncoder capability, fed BlockFrames
// samples at a time plus a final flush. ShineEncoder implements it over
// the pure-Go shine encoder at 128 kbit/s. A nil capability never fails:
// Encode falls back to wrapping the PCM as a WAV container tagged
// audio/wav, so callers always get a downloadable result.
package mp3
