package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrOnlyPCM16bitSupported,
		ErrUnsupportedWavChunks,
	}
	for i, sentinel := range sentinels {
		wrapped := fmt.Errorf("wav: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(%v) = false after wrapping", sentinel)
		}
		if errors.Is(sentinels[(i+1)%len(sentinels)], sentinel) {
			t.Errorf("sentinel %v matches a different sentinel", sentinel)
		}
	}
}
