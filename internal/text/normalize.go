package text

import "strings"

// replacements maps typographic punctuation to the plain ASCII forms the
// synthesis engine understands. Applied in order, before any filtering.
var replacements = []struct {
	old string
	new string
}{
	{"“", `"`}, // left double quotation mark
	{"”", `"`}, // right double quotation mark
	{"‘", "'"}, // left single quotation mark
	{"’", "'"}, // right single quotation mark / apostrophe
	{"—", "-"}, // em dash
	{"–", "-"}, // en dash
	{" ", " "}, // non-breaking space
}

// Normalize prepares raw input text for sentence splitting:
//  1. Substitute typographic punctuation with ASCII equivalents.
//  2. Drop every rune outside the printable ASCII range 0x20-0x7E,
//     keeping newline, carriage return, and tab for the next step.
//  3. Collapse whitespace runs to single spaces and trim the ends.
//
// The result is a single-line ASCII string. Normalize is idempotent and
// returns "" for empty or whitespace-only input.
func Normalize(s string) string {
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r <= 0x7e) || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
