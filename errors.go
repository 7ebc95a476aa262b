// SPDX-License-Identifier: EPL-2.0

package audmix

import "errors"

var (
	// ErrMixDecode indicates one of the mix input streams could not be
	// decoded; the mix fails as a whole.
	ErrMixDecode = errors.New("mix input stream failed to decode")

	// ErrInvalidGain indicates a background gain outside [0, 1].
	ErrInvalidGain = errors.New("music gain must be within [0, 1]")
)
