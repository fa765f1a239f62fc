package text

import "strings"

// PackSentences groups sentences into chunks using a single greedy
// left-to-right pass. The accumulator carries a trailing space after each
// appended sentence, so the candidate length of acc+sentence+separator is
// len(acc)+len(sentence)+1.
//
// When a sentence would overflow MaxChars, the accumulator is flushed only
// if it has already reached MinChars; otherwise the sentence is force-merged
// and the resulting chunk may exceed MaxChars. Sentences are never split, so
// one longer than MaxChars is emitted whole. The trailing accumulator is
// always flushed, whatever its length.
func PackSentences(sentences []string, opts Options) []string {
	var chunks []string
	current := ""

	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		switch {
		case len(current)+len(sentence)+1 <= opts.MaxChars:
			current += sentence + " "
		case len(strings.TrimSpace(current)) >= opts.MinChars:
			chunks = append(chunks, strings.TrimSpace(current))
			current = sentence + " "
		default:
			// Under the minimum: absorb the sentence even though the
			// chunk now exceeds MaxChars.
			current += sentence + " "
		}
	}

	if trimmed := strings.TrimSpace(current); trimmed != "" {
		chunks = append(chunks, trimmed)
	}

	return chunks
}
