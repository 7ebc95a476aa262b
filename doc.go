// SPDX-License-Identifier: EPL-2.0

// Package audmix provides the audio codec and mixing pipeline behind a
// narrated-media application: decoding raw speech payloads, wrapping them in
// playable containers, mixing them with looping backing tracks, and
// procedurally synthesizing those backing tracks without asset files.
//
// Every operation is a pure transform from an owned input buffer to a fresh
// output buffer. Nothing here talks to the network, touches disk, or keeps
// state between calls.
//
// # Speech Pipeline
//
// Speech arrives as base64 text wrapping raw mono 16-bit PCM:
//
//	speech, err := audmix.DecodeSpeech(payload, 24000)
//	// speech.Data is a WAV container, speech.MIME is "audio/wav"
//
// MP3 output is available on demand when an encoding capability exists:
//
//	enc := mp3.NewShineEncoder(24000, 1)
//	speech, err := audmix.DecodeSpeechMP3(payload, 24000, enc)
//
// With a nil capability the call still succeeds and returns WAV instead -
// audio is always downloadable in some format.
//
// # Mixing
//
// Mix layers a background track under speech. The speech defines the output
// duration; the background loops and is scaled by a gain in [0, 1]:
//
//	music, _ := synth.Synthesize(synth.Ambient)
//	mixed, err := audmix.Mix(speech, music, 0.3)
//
// Both inputs are opaque containers; WAV, MP3, Ogg Vorbis, and AIFF are
// recognized by their magic bytes and decoded through the format registry.
// Streams that are not mono 24kHz are resampled and downmixed first.
//
// # Synthesis
//
// The synth package renders three built-in backing tracks (ambient, lofi,
// upbeat) as self-contained 10-second WAV buffers from oscillators alone.
//
// # Subpackages
//
//   - audio: Source interface, decoder registry, resampler, mono downmix
//   - formats/wav: canonical 44-byte-header WAV encode and decode
//   - formats/mp3: MP3 decode plus the block-based encode capability
//   - formats/vorbis, formats/aiff: additional container decoders
//   - transport: base64 payload decode
//   - synth: procedural backing track generation
//   - utils: quantization and interpolation helpers
//
// # Error Handling
//
// Failures are plain returned errors wrapping per-package sentinels
// (transport.ErrMalformedPayload, audio.ErrUnknownFormat, audmix.ErrMixDecode).
// Nothing in this package retries, times out, or panics; recovery policy
// belongs to the caller.
package audmix
