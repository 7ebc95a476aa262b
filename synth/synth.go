// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/rand/v2"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/wav"
	"github.com/nbarak/audmix/utils"
)

// Render parameters shared by all presets.
const (
	// RenderRate is the synthesis sample rate in Hz. It is intentionally
	// higher than the mixing rate; the header keeps it as-is.
	RenderRate = 44100
	// RenderSeconds is the fixed duration of every backing track.
	RenderSeconds = 10

	// Rendering is stereo internally; only channel 0 reaches the output.
	renderChannels = 2
)

// Preset selects one of the built-in procedurally generated backing tracks.
type Preset int

const (
	// Ambient is two continuous tones, a 110Hz sine under a triangle a
	// fifth above.
	Ambient Preset = iota
	// LoFi is filtered noise hiss under a slowly wobbling middle-C sine.
	LoFi
	// Upbeat is a square-wave arpeggio stepping four notes per second.
	Upbeat
)

func (p Preset) String() string {
	switch p {
	case Ambient:
		return "ambient"
	case LoFi:
		return "lofi"
	case Upbeat:
		return "upbeat"
	default:
		return "unknown"
	}
}

// ParsePreset maps a preset name to its Preset value.
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "ambient":
		return Ambient, nil
	case "lofi":
		return LoFi, nil
	case "upbeat":
		return Upbeat, nil
	default:
		return 0, ErrUnknownPreset
	}
}

// Synthesize renders preset as a self-contained WAV container: RenderSeconds
// of audio at RenderRate, 16-bit mono. No asset files are involved; every
// track is generated from oscillators alone.
//
// Rendering is a pure offline pass. Ambient and Upbeat are fully
// deterministic; LoFi draws fresh noise per call but keeps the same length,
// header and amplitude envelope.
func Synthesize(preset Preset) (audio.EncodedAudio, error) {
	frames := RenderRate * RenderSeconds
	buf := make([]float32, frames*renderChannels)

	switch preset {
	case Ambient:
		renderAmbient(buf)
	case LoFi:
		renderLoFi(buf)
	case Upbeat:
		renderUpbeat(buf)
	default:
		return audio.EncodedAudio{}, ErrUnknownPreset
	}

	// Keep channel 0 only; quantize with the shared clamp/scale rule.
	mono := make([]int16, frames)
	for i := range frames {
		mono[i] = utils.QuantizePCM16(buf[i*renderChannels])
	}

	return audio.EncodedAudio{
		Data: wav.Wrap(utils.SamplesToBytes(mono), RenderRate, 1),
		MIME: audio.MimeWAV,
	}, nil
}

// renderAmbient fills dst with a 110Hz sine plus a triangle a fifth above,
// 0.05 amplitude each so the pad stays under 0.1 combined.
func renderAmbient(dst []float32) {
	frames := len(dst) / renderChannels
	for i := range frames {
		t := float64(i) / RenderRate
		v := float32(0.05*sineAt(110, t) + 0.05*triangleAt(164.81, t))

		dst[i*renderChannels] = v
		dst[i*renderChannels+1] = v
	}
}

// renderLoFi fills dst with vinyl-style hiss under a wobbling tone. The hiss
// is white noise through a leaky integrator whose accumulator lives only for
// this call; the tone is a 261.6Hz sine frequency-modulated by a 2Hz LFO
// with +-5Hz deviation.
func renderLoFi(dst []float32) {
	frames := len(dst) / renderChannels

	filt := 0.0
	phase := 0.0

	for i := range frames {
		t := float64(i) / RenderRate

		white := rand.Float64()*2 - 1
		filt = (filt + 0.02*white) / 1.02

		phase += 2 * math.Pi * (261.6 + 5*sineAt(2, t)) / RenderRate
		v := float32(0.05*filt + 0.15*math.Sin(phase))

		dst[i*renderChannels] = v
		dst[i*renderChannels+1] = v
	}
}

// renderUpbeat fills dst with a square-wave arpeggio over an A-major-ish
// four note loop, one note per quarter second.
func renderUpbeat(dst []float32) {
	notes := [...]float64{440, 554, 659, 880}
	frames := len(dst) / renderChannels

	for i := range frames {
		t := float64(i) / RenderRate
		note := notes[int(t/0.25)%len(notes)]
		v := float32(0.05 * squareAt(note, t))

		dst[i*renderChannels] = v
		dst[i*renderChannels+1] = v
	}
}
