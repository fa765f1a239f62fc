package tts

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/go-readaloud/internal/audio"
	"github.com/example/go-readaloud/internal/text"
)

// ErrNoContent is returned when the input reduces to nothing after
// normalization.
var ErrNoContent = errors.New("no content to synthesize")

// Service prepares input text into chunks and synthesizes them in order
// through an Engine, concatenating the per-chunk audio.
type Service struct {
	engine Engine
	opts   text.Options
}

func NewService(engine Engine, opts text.Options) (*Service, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunk options: %w", err)
	}
	return &Service{engine: engine, opts: opts}, nil
}

// Synthesize runs the full text-to-audio pipeline and returns one WAV.
func (s *Service) Synthesize(ctx context.Context, input string) ([]byte, error) {
	chunks, err := text.PrepareChunks(input, s.opts)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrNoContent
	}

	results := make([][]byte, 0, len(chunks))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wavBytes, err := s.engine.Synthesize(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %d synthesis failed: %w", i+1, len(chunks), err)
		}
		results = append(results, wavBytes)
	}

	merged, err := audio.Concat(results)
	if err != nil {
		return nil, fmt.Errorf("concatenate chunk audio: %w", err)
	}
	return merged, nil
}
