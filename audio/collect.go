// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a single float32 buffer.
//
// bufferSize controls the read chunk size (e.g., 4096); larger chunks trade
// memory for fewer ReadSamples calls. The returned slice holds every sample
// the source produced, interleaved as the source delivered them.
func Collect(src Source, bufferSize int) ([]float32, error) {
	var all []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			all = append(all, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return all, nil
}
