// SPDX-License-Identifier: EPL-2.0

package transport

import "errors"

var (
	// ErrMalformedPayload indicates the transport text is not valid base64.
	ErrMalformedPayload = errors.New("malformed transport payload")
)
