// Package display holds small presentation helpers shared by screens.
package display

import (
	"strings"

	"golang.org/x/net/html"
)

// MaskSSN returns the display form of a social security number, showing
// only the last four digits. Values too short to have four digits mask
// completely.
func MaskSSN(ssn string) string {
	if len(ssn) < 4 {
		return "XXX-XX-****"
	}
	return "XXX-XX-" + ssn[len(ssn)-4:]
}

// StripHTML reduces HTML from the backend's rich-text notes to plain text.
// Tags are dropped, text nodes are kept, and surrounding whitespace is
// trimmed. Invalid markup never fails: the tokenizer consumes whatever it
// can and the remainder is returned as-is.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}

// ClampProgress limits a fractional progress value to [0, 1] for progress
// bar widths. The backend's percentage_used can exceed 100 for overspent
// budgets; the bar caps at full rather than overflowing the layout.
func ClampProgress(fraction float64) float64 {
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
