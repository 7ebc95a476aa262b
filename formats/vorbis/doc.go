// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams via github.com/jfreymuth/oggvorbis.
//
// The underlying reader already produces interleaved float32 samples, so
// the source passes them straight through, trimming each read to whole
// frames. Sample rate and channel count come from the stream header.
package vorbis
