// Package text turns free-form input into bounded, sentence-aligned chunks
// ready for a speech-synthesis engine. The pipeline is pure and
// deterministic: normalize punctuation and whitespace, split into sentences
// at terminal punctuation, then greedily pack whole sentences into chunks
// within the configured size bounds.
package text

import (
	"fmt"
	"strings"
)

// PrepareChunks runs the full pipeline and returns the ordered chunk list.
// Empty or whitespace-only input yields an empty list. The only error is
// invalid Options.
func PrepareChunks(input string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunk options: %w", err)
	}

	normalized := Normalize(input)
	if normalized == "" {
		return nil, nil
	}

	return PackSentences(SplitSentences(normalized), opts), nil
}

// Prepare is PrepareChunks with the chunks joined by newlines, matching the
// payload shape engines that accept one request per line expect.
func Prepare(input string, opts Options) (string, error) {
	chunks, err := PrepareChunks(input, opts)
	if err != nil {
		return "", err
	}

	return strings.Join(chunks, "\n"), nil
}
