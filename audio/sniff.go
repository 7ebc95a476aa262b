// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// DetectFormat inspects the leading bytes of an encoded audio container and
// returns the registry key of its format, or "" when the format is not
// recognized.
//
// Recognized containers:
//   - "wav": RIFF....WAVE
//   - "ogg": OggS capture pattern
//   - "aiff": FORM....AIFF / AIFC
//   - "mp3": ID3 tag or an MPEG audio sync word
func DetectFormat(data []byte) string {
	if len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WAVE")) {
		return "wav"
	}

	if len(data) >= 4 && bytes.Equal(data[0:4], []byte("OggS")) {
		return "ogg"
	}

	if len(data) >= 12 && bytes.Equal(data[0:4], []byte("FORM")) &&
		(bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))) {
		return "aiff"
	}

	if len(data) >= 3 && bytes.Equal(data[0:3], []byte("ID3")) {
		return "mp3"
	}

	// Frame sync: 11 set bits, then a valid MPEG version/layer nibble.
	if len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 {
		return "mp3"
	}

	return ""
}

// DecodeBuffer sniffs the container format of data, looks the decoder up in
// reg and returns the decoded Source. Returns ErrUnknownFormat when the
// container cannot be identified or no decoder is registered for it.
func DecodeBuffer(reg *Registry, data []byte) (Source, error) {
	format := DetectFormat(data)
	if format == "" {
		return nil, ErrUnknownFormat
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}

	return dec.Decode(bytes.NewReader(data))
}
