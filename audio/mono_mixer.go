package audio

import "fmt"

// MonoMixer folds an interleaved multi-channel stream down to one channel by
// averaging each frame. Mono input passes through untouched.
type MonoMixer struct {
	src     Source
	scratch []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with one averaged sample per source frame. A partial
// frame at the very end of the stream is dropped.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	ch := m.src.Channels()
	if ch == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * ch
	if cap(m.scratch) < need {
		m.scratch = make([]float32, need)
	}

	n, err := m.src.ReadSamples(m.scratch[:need])
	frames := n / ch

	scale := 1 / float32(ch)
	for f := 0; f < frames; f++ {
		var sum float32
		for _, v := range m.scratch[f*ch : (f+1)*ch] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
