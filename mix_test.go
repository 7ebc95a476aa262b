// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/mp3"
	"github.com/nbarak/audmix/formats/wav"
	"github.com/nbarak/audmix/synth"
	"github.com/nbarak/audmix/utils"
)

// buildWAV packs samples into a WAV container for use as a mix input.
func buildWAV(t *testing.T, sampleRate, channels int, samples []int16) audio.EncodedAudio {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := wav.WritePCM16(buf, sampleRate, channels, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	return audio.EncodedAudio{Data: buf.Bytes(), MIME: audio.MimeWAV}
}

func payloadSamples(t *testing.T, out audio.EncodedAudio) []int16 {
	t.Helper()

	if len(out.Data) < 44 {
		t.Fatalf("container too small: %d bytes", len(out.Data))
	}

	return utils.BytesToSamples(out.Data[44:])
}

func TestMix_DurationFollowsSpeech(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		speechLen int
		musicLen  int
	}{
		{name: "music shorter than speech", speechLen: 24000, musicLen: 1000},
		{name: "music longer than speech", speechLen: 500, musicLen: 24000},
		{name: "equal lengths", speechLen: 4096, musicLen: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			speech := buildWAV(t, MixRate, 1, make([]int16, tt.speechLen))
			music := buildWAV(t, MixRate, 1, make([]int16, tt.musicLen))

			out, err := Mix(speech, music, 0.5)
			if err != nil {
				t.Fatalf("Mix() error = %v", err)
			}

			if got := len(out.Data) - 44; got != tt.speechLen*2 {
				t.Errorf("output payload = %d bytes, want %d", got, tt.speechLen*2)
			}

			if out.MIME != audio.MimeWAV {
				t.Errorf("MIME = %q, want %q", out.MIME, audio.MimeWAV)
			}

			if rate := binary.LittleEndian.Uint32(out.Data[24:28]); rate != MixRate {
				t.Errorf("header sample rate = %d, want %d", rate, MixRate)
			}
		})
	}
}

func TestMix_MusicLoops(t *testing.T) {
	t.Parallel()

	// Silent speech exposes the looped music directly in the output
	pattern := []int16{8000, -8000, 4000, -4000, 2000, 0, 12000}
	speech := buildWAV(t, MixRate, 1, make([]int16, 1000))
	music := buildWAV(t, MixRate, 1, pattern)

	const gain = 0.5

	out, err := Mix(speech, music, gain)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	got := payloadSamples(t, out)
	if len(got) != 1000 {
		t.Fatalf("output samples = %d, want 1000", len(got))
	}

	for i, s := range got {
		v := float32(pattern[i%len(pattern)]) / 32768.0 * gain
		want := utils.QuantizePCM16(v)
		if s != want {
			t.Fatalf("sample %d = %d, want %d (music index %d)", i, s, want, i%len(pattern))
		}
	}
}

func TestMix_SpeechAtUnityGain(t *testing.T) {
	t.Parallel()

	samples := []int16{0, -1, -100, -32768, 1, 100, 32767, -12345, 12345}
	speech := buildWAV(t, MixRate, 1, samples)
	music := buildWAV(t, MixRate, 1, make([]int16, 4))

	out, err := Mix(speech, music, 1.0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	got := payloadSamples(t, out)
	if len(got) != len(samples) {
		t.Fatalf("output samples = %d, want %d", len(got), len(samples))
	}

	for i, s := range samples {
		// The decode normalizes by 32768 while positive quantization
		// scales by 32767, so positive samples land one step low.
		want := s
		if s > 0 {
			want = s - 1
		}
		if got[i] != want {
			t.Errorf("sample %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestMix_ClampsBeforeQuantization(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, []int16{32767, -32768})
	music := buildWAV(t, MixRate, 1, []int16{32767, -32768})

	out, err := Mix(speech, music, 1.0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	got := payloadSamples(t, out)
	if got[0] != 32767 {
		t.Errorf("overdriven positive sample = %d, want 32767", got[0])
	}

	if got[1] != -32768 {
		t.Errorf("overdriven negative sample = %d, want -32768", got[1])
	}
}

func TestMix_EmptyMusic(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, []int16{-5, -10, -15})
	music := buildWAV(t, MixRate, 1, nil)

	out, err := Mix(speech, music, 1.0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	got := payloadSamples(t, out)
	want := []int16{-5, -10, -15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMix_ResamplesMismatchedRates(t *testing.T) {
	t.Parallel()

	// 1 second of speech at 48kHz should render 1 second at 24kHz
	speech := buildWAV(t, 48000, 1, make([]int16, 48000))
	music := buildWAV(t, MixRate, 1, []int16{1000, -1000})

	out, err := Mix(speech, music, 0.2)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if got := (len(out.Data) - 44) / 2; got != MixRate {
		t.Errorf("output samples = %d, want %d", got, MixRate)
	}
}

func TestMix_StereoMusicDownmixed(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, make([]int16, 100))

	// Interleaved stereo frames with distinct channel values
	stereo := make([]int16, 40)
	for f := 0; f < 20; f++ {
		stereo[f*2] = 4000
		stereo[f*2+1] = 8000
	}
	music := buildWAV(t, MixRate, 2, stereo)

	out, err := Mix(speech, music, 1.0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	got := payloadSamples(t, out)

	// Channel average (4000+8000)/2 = 6000, normalized then re-quantized
	want := utils.QuantizePCM16(6000.0 / 32768.0)
	if got[0] != want {
		t.Errorf("downmixed sample = %d, want %d", got[0], want)
	}
}

func TestMix_SynthesizedBackground(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, make([]int16, 12000))

	music, err := synth.Synthesize(synth.Ambient)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	out, err := Mix(speech, music, 0.3)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if got := (len(out.Data) - 44) / 2; got != 12000 {
		t.Errorf("output samples = %d, want 12000", got)
	}

	// The synthesized pad must actually be audible in the result
	for _, s := range payloadSamples(t, out) {
		if s != 0 {
			return
		}
	}
	t.Error("mixed output is all zeros")
}

func TestMix_MP3Background(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, make([]int16, 2000))

	// Build a real MP3 container through the encode capability
	tone := make([]int16, mp3.BlockFrames*4)
	for i := range tone {
		if i%100 < 50 {
			tone[i] = 6000
		} else {
			tone[i] = -6000
		}
	}

	music, err := mp3.Encode(utils.SamplesToBytes(tone), 44100, 1, mp3.NewShineEncoder(44100, 1))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if music.MIME != audio.MimeMP3 {
		t.Fatalf("music MIME = %q, want %q", music.MIME, audio.MimeMP3)
	}

	out, err := Mix(speech, music, 0.4)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if got := (len(out.Data) - 44) / 2; got != 2000 {
		t.Errorf("output samples = %d, want 2000", got)
	}
}

func TestMix_UndecodableInputs(t *testing.T) {
	t.Parallel()

	good := buildWAV(t, MixRate, 1, make([]int16, 10))
	bad := audio.EncodedAudio{Data: []byte("definitely not audio"), MIME: audio.MimeWAV}

	if _, err := Mix(bad, good, 0.5); !errors.Is(err, ErrMixDecode) {
		t.Errorf("Mix() with bad speech error = %v, want ErrMixDecode", err)
	}

	if _, err := Mix(good, bad, 0.5); !errors.Is(err, ErrMixDecode) {
		t.Errorf("Mix() with bad music error = %v, want ErrMixDecode", err)
	}
}

func TestMix_GainRange(t *testing.T) {
	t.Parallel()

	speech := buildWAV(t, MixRate, 1, make([]int16, 10))
	music := buildWAV(t, MixRate, 1, make([]int16, 10))

	for _, gain := range []float32{-0.1, 1.5} {
		if _, err := Mix(speech, music, gain); !errors.Is(err, ErrInvalidGain) {
			t.Errorf("Mix() gain=%v error = %v, want ErrInvalidGain", gain, err)
		}
	}

	for _, gain := range []float32{0, 0.5, 1} {
		if _, err := Mix(speech, music, gain); err != nil {
			t.Errorf("Mix() gain=%v error = %v, want nil", gain, err)
		}
	}
}

func TestDefaultRegistry_CoversAllFormats(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		if _, ok := reg.Get(format); !ok {
			t.Errorf("DefaultRegistry() missing %q decoder", format)
		}
	}
}

func TestDefaultRegistry_SharedInstanceCoversAllFormats(t *testing.T) {
	t.Parallel()

	// Mix dispatches through the package-level registry, not a fresh one
	// per call.
	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		if _, ok := defaultRegistry.Get(format); !ok {
			t.Errorf("shared registry missing %q decoder", format)
		}
	}
}
