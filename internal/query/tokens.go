package query

import (
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
)

var quarterTokens = []string{"q1", "q2", "q3", "q4"}

// MonthToken returns the first month abbreviation, scanning jan through
// dec, contained in text. The scan order decides, not the position in the
// text: "compare april and january" yields "jan".
func MonthToken(text string) string {
	q := strings.ToLower(text)
	for _, m := range model.MonthAbbrevs {
		if strings.Contains(q, m) {
			return m
		}
	}
	return ""
}

// QuarterToken returns the first of q1..q4 contained in text, uppercased.
func QuarterToken(text string) string {
	q := strings.ToLower(text)
	for _, t := range quarterTokens {
		if strings.Contains(q, t) {
			return strings.ToUpper(t)
		}
	}
	return ""
}
