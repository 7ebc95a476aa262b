// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and AIFC containers via github.com/go-audio/aiff.
//
// Only 16-bit PCM is accepted; other bit depths fail with
// ErrOnlyPCM16bitSupported at open time. go-audio needs a seekable input,
// so non-seekable readers are buffered in memory before parsing. Samples
// come out as float32 in [-1, 1] through the audio.Source interface.
package aiff
