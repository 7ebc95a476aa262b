// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// sineAt evaluates a unit sine oscillator of freq Hz at time t seconds.
func sineAt(freq, t float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}

// triangleAt evaluates a unit triangle oscillator of freq Hz at time t
// seconds. The cycle starts at the positive peak.
func triangleAt(freq, t float64) float64 {
	phase := freq*t - math.Floor(freq*t)
	return 4*math.Abs(phase-0.5) - 1
}

// squareAt evaluates a unit square oscillator of freq Hz at time t seconds
// with a 50% duty cycle.
func squareAt(freq, t float64) float64 {
	phase := freq*t - math.Floor(freq*t)
	if phase < 0.5 {
		return 1
	}
	return -1
}
