package testutil

import (
	"testing"

	"github.com/example/go-readaloud/internal/audio"
)

func TestAssertValidWAV_AcceptsEncodedOutput(t *testing.T) {
	data, err := audio.EncodeWAV(make([]float32, 100), 22050)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	AssertValidWAV(t, data)
}

func TestFindDataChunkSize_MissingChunk(t *testing.T) {
	// Valid RIFF/WAVE prefix, but no data chunk follows.
	header := append([]byte("RIFF"), 0, 0, 0, 0)
	header = append(header, []byte("WAVE")...)

	if _, err := findDataChunkSize(header); err == nil {
		t.Fatal("expected error for missing data chunk")
	}
}
