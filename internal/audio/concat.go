package audio

import (
	"errors"
	"fmt"
)

// Concat merges per-chunk engine WAVs into a single WAV. All chunks must
// share the same sample rate.
func Concat(chunkWAVs [][]byte) ([]byte, error) {
	if len(chunkWAVs) == 0 {
		return nil, errors.New("no WAV chunks to concatenate")
	}
	if len(chunkWAVs) == 1 {
		return chunkWAVs[0], nil
	}

	var merged []float32
	rate := 0
	for i, data := range chunkWAVs {
		samples, sampleRate, err := DecodeWAV(data)
		if err != nil {
			return nil, fmt.Errorf("decode chunk %d WAV: %w", i+1, err)
		}
		if rate == 0 {
			rate = sampleRate
		} else if sampleRate != rate {
			return nil, fmt.Errorf("chunk %d sample rate %d differs from %d", i+1, sampleRate, rate)
		}
		merged = append(merged, samples...)
	}

	out, err := EncodeWAV(merged, rate)
	if err != nil {
		return nil, fmt.Errorf("encode merged WAV: %w", err)
	}
	return out, nil
}
