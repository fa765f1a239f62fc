package tts

import (
	"context"
	"errors"
	"testing"

	"github.com/example/go-readaloud/internal/audio"
	"github.com/example/go-readaloud/internal/text"
)

// fakeEngine records the chunks it was asked to synthesize and returns a
// short valid WAV per call.
type fakeEngine struct {
	chunks []string
	err    error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Synthesize(_ context.Context, chunk string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.chunks = append(f.chunks, chunk)
	return audio.EncodeWAV(make([]float32, 10), 22050)
}

func TestNewService_Validation(t *testing.T) {
	if _, err := NewService(nil, text.DefaultOptions()); err == nil {
		t.Error("expected error for nil engine")
	}
	if _, err := NewService(&fakeEngine{}, text.Options{MinChars: 10, MaxChars: 5}); err == nil {
		t.Error("expected error for invalid options")
	}
}

func TestService_SynthesizesEachChunkInOrder(t *testing.T) {
	eng := &fakeEngine{}
	svc, err := NewService(eng, text.Options{MinChars: 5, MaxChars: 10})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	wav, err := svc.Synthesize(context.Background(), "A. B. C. A. B. C.")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	want := []string{"A. B. C.", "A. B. C."}
	if len(eng.chunks) != len(want) {
		t.Fatalf("engine saw %d chunks %v, want %d", len(eng.chunks), eng.chunks, len(want))
	}
	for i := range want {
		if eng.chunks[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, eng.chunks[i], want[i])
		}
	}

	samples, _, err := audio.DecodeWAV(wav)
	if err != nil {
		t.Fatalf("decode merged WAV: %v", err)
	}
	if len(samples) != 20 {
		t.Errorf("merged sample count = %d, want 20", len(samples))
	}
}

func TestService_EmptyInput(t *testing.T) {
	svc, err := NewService(&fakeEngine{}, text.DefaultOptions())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Synthesize(context.Background(), "     \t ")
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestService_EngineErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("engine exploded")
	svc, err := NewService(&fakeEngine{err: sentinel}, text.DefaultOptions())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Synthesize(context.Background(), "Hello world.")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped engine error, got %v", err)
	}
}

func TestService_HonoursCancelledContext(t *testing.T) {
	eng := &fakeEngine{}
	svc, err := NewService(eng, text.DefaultOptions())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Synthesize(ctx, "Hello world.")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(eng.chunks) != 0 {
		t.Errorf("engine should not be called after cancellation")
	}
}
