// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/nbarak/audmix/audio"
	"github.com/nbarak/audmix/formats/wav"
)

func Example_roundTrip() {
	original := []int16{-16384, 0, 16384}

	var container bytes.Buffer
	if err := wav.WritePCM16(&container, 8000, 1, original); err != nil {
		fmt.Println("encode error:", err)
		return
	}
	fmt.Println("container bytes:", container.Len())

	src, err := wav.Decoder{}.Decode(&container)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	samples, _ := audio.Collect(src, 64)
	fmt.Println("decoded:", samples)
	// Output:
	// container bytes: 50
	// decoded: [-0.5 0 0.5]
}

func ExampleWrap() {
	pcm := make([]byte, 2000)
	container := wav.Wrap(pcm, 8000, 1)

	fmt.Println("header bytes:", len(container)-len(pcm))
	fmt.Printf("magic: %s...%s\n", container[0:4], container[8:12])
	// Output:
	// header bytes: 44
	// magic: RIFF...WAVE
}

func ExampleDecoder_Decode_notWav() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("plain text")))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output: true
}
