// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// QuantizePCM16 converts a float sample in [-1, 1] to a signed 16-bit PCM
// sample. Out-of-range values are clamped first, never wrapped.
//
// The scale factor is asymmetric: negative values use 32768 and positive
// values use 32767, so -1.0 maps to -32768 and 1.0 maps to 32767. This
// matches the quantizer used by the rest of the pipeline bit-for-bit; do not
// replace it with a symmetric scale.
func QuantizePCM16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// QuantizeBuffer applies QuantizePCM16 to every sample in src, returning a
// freshly allocated slice.
func QuantizeBuffer(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = QuantizePCM16(x)
	}
	return out
}

// SamplesToBytes converts int16 samples to little-endian PCM bytes.
func SamplesToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}

// BytesToSamples reinterprets little-endian PCM bytes as int16 samples.
// A trailing odd byte is dropped.
func BytesToSamples(pcm []byte) []int16 {
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
	}
	return samples
}
