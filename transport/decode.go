// SPDX-License-Identifier: EPL-2.0

package transport

import (
	"encoding/base64"
	"fmt"
)

// Decode converts a text-safe payload into the raw bytes it carries.
//
// The payload uses the standard base64 alphabet. The trailing '=' padding is
// optional: padded and unpadded forms of the same payload decode to the same
// bytes. The output length matches the decoded length exactly - no header,
// no metadata. A malformed alphabet or wrong padding yields
// ErrMalformedPayload wrapping the underlying detail.
func Decode(text string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err == nil {
		return raw, nil
	}

	raw, rawErr := base64.RawStdEncoding.DecodeString(text)
	if rawErr == nil {
		return raw, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
}

// Encode converts raw bytes into a text-safe payload using the standard
// base64 alphabet, the inverse of Decode.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
