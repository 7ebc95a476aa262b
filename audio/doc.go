// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM processing primitives the mixing pipeline is
// built from.
//
// Everything revolves around the Source interface: a pull-based stream of
// interleaved float32 samples in [-1, 1], finished when ReadSamples returns
// (0, io.EOF). Decoders produce Sources; Resampler and MonoMixer wrap one
// Source and expose another, so conversions chain:
//
//	mono := audio.NewMonoMixer(decoded)
//	out := audio.NewResampler(mono, 24000)
//	samples, err := audio.Collect(out, 4096)
//
// A Resampler over a source of n frames emits exactly
// round(n * targetRate / nativeRate) frames, so output duration is a pure
// function of input duration and the two rates.
//
// Container bytes enter the pipeline through DecodeBuffer, which sniffs the
// leading magic bytes with DetectFormat and dispatches to a Decoder held in
// a Registry. The registry is safe for concurrent use.
package audio
