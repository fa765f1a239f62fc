package audio

import (
	"errors"
	"math"
	"testing"
)

func sine(n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/22050))
	}
	return samples
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sine(2205)

	data, err := EncodeWAV(in, 22050)
	if err != nil {
		t.Fatalf("EncodeWAV returned error: %v", err)
	}

	out, rate, err := DecodeWAV(data)
	if err != nil {
		t.Fatalf("DecodeWAV returned error: %v", err)
	}
	if rate != 22050 {
		t.Errorf("sample rate = %d, want 22050", rate)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d samples, want %d", len(out), len(in))
	}

	// 16-bit quantization error bound.
	for i := range in {
		if diff := math.Abs(float64(in[i] - out[i])); diff > 1.0/32000 {
			t.Fatalf("sample %d differs by %v", i, diff)
		}
	}
}

func TestEncodeWAV_InvalidSampleRate(t *testing.T) {
	_, err := EncodeWAV(sine(10), 0)
	if err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestDecodeWAV_RejectsGarbage(t *testing.T) {
	if _, _, err := DecodeWAV(nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := DecodeWAV([]byte("not a wav file at all")); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestConcat(t *testing.T) {
	a, err := EncodeWAV(sine(100), 22050)
	if err != nil {
		t.Fatalf("encode a: %v", err)
	}
	b, err := EncodeWAV(sine(200), 22050)
	if err != nil {
		t.Fatalf("encode b: %v", err)
	}

	merged, err := Concat([][]byte{a, b})
	if err != nil {
		t.Fatalf("Concat returned error: %v", err)
	}

	samples, rate, err := DecodeWAV(merged)
	if err != nil {
		t.Fatalf("decode merged: %v", err)
	}
	if rate != 22050 {
		t.Errorf("merged sample rate = %d, want 22050", rate)
	}
	if len(samples) != 300 {
		t.Errorf("merged sample count = %d, want 300", len(samples))
	}
}

func TestConcat_SingleChunkPassesThrough(t *testing.T) {
	a, err := EncodeWAV(sine(50), 16000)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Concat([][]byte{a})
	if err != nil {
		t.Fatalf("Concat returned error: %v", err)
	}
	if len(got) != len(a) {
		t.Errorf("single chunk should pass through unchanged")
	}
}

func TestConcat_MixedSampleRatesRejected(t *testing.T) {
	a, _ := EncodeWAV(sine(50), 22050)
	b, _ := EncodeWAV(sine(50), 16000)

	_, err := Concat([][]byte{a, b})
	if err == nil {
		t.Fatal("expected error for mixed sample rates")
	}
}

func TestConcat_EmptyInput(t *testing.T) {
	_, err := Concat(nil)
	if err == nil {
		t.Fatal("expected error for no chunks")
	}
	if errors.Is(err, ErrFormatMismatch) {
		t.Error("empty input should not report a format mismatch")
	}
}
