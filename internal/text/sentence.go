package text

// isTerminal reports whether b ends a sentence.
func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SplitSentences splits normalized text at each point where a terminal
// punctuation mark (., !, ?) is immediately followed by whitespace. The
// terminator stays attached to the preceding sentence; the whitespace is
// consumed as the delimiter. Text with no terminator is a single sentence.
// An empty string yields no sentences.
//
// The input is expected to be ASCII (the output of Normalize), so the scan
// works on bytes.
func SplitSentences(s string) []string {
	if s == "" {
		return nil
	}

	var sentences []string
	start := 0

	for i := 0; i < len(s)-1; i++ {
		if !isTerminal(s[i]) || !isSpace(s[i+1]) {
			continue
		}
		sentences = append(sentences, s[start:i+1])
		// Consume the whole whitespace run after the terminator.
		i++
		for i+1 < len(s) && isSpace(s[i+1]) {
			i++
		}
		start = i + 1
	}

	if start < len(s) {
		sentences = append(sentences, s[start:])
	}

	return sentences
}
