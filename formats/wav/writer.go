// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// putHeader fills dst (44 bytes) with a canonical PCM WAV header for a data
// chunk of dataSize bytes.
func putHeader(dst []byte, sampleRate uint32, channels uint16, dataSize uint32) {
	const bitsPerSample = 16
	byteRate := sampleRate * uint32(channels) * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(dst[22:24], channels)
	binary.LittleEndian.PutUint32(dst[24:28], sampleRate)
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// Wrap places raw little-endian 16-bit PCM bytes in a WAV container.
//
// The result is always exactly 44+len(pcm) bytes: the fixed header followed
// by the payload verbatim. Sample alignment is not validated; the caller
// guarantees len(pcm) is a multiple of 2*channels.
func Wrap(pcm []byte, sampleRate uint32, channels uint16) []byte {
	out := make([]byte, 44+len(pcm))
	putHeader(out, sampleRate, channels, uint32(len(pcm)))
	copy(out[44:], pcm)
	return out
}

// WritePCM16 writes 16-bit PCM samples as a WAV file at sampleRate.
// Multi-channel samples must already be interleaved.
// This uses an optimized implementation for minimal allocations.
func WritePCM16(w io.Writer, sampleRate int, channels int, samples []int16) error {
	header := make([]byte, 44)
	putHeader(header, uint32(sampleRate), uint16(channels), uint32(len(samples)*2))

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Convert samples to bytes in chunks to bound the scratch buffer
	const chunkSize = 8192
	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
