// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrUnknownPreset indicates a preset outside the built-in set.
	ErrUnknownPreset = errors.New("unknown synthesizer preset")
)
