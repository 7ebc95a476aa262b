// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE containers carrying 16-bit PCM.
//
// Decoder walks the chunk list, skipping metadata chunks such as LIST and
// fact, and streams the data chunk as an audio.Source without loading it
// into memory. Reads stop at the declared data size, so trailing chunks
// never leak into the PCM stream.
//
// Wrap and WritePCM16 produce the canonical 44-byte-header container: a
// RIFF preamble, a 16-byte fmt chunk and a single data chunk. Output size
// is always exactly 44 + len(pcm) bytes, which callers rely on when sizing
// buffers. The header layout is covered by tests against go-audio/wav.
package wav
