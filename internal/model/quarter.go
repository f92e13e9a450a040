package model

import (
	"strings"
	"time"
)

// Quarter is one of the four fixed three-month groupings.
type Quarter string

// Quarters in calendar order.
const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// AllQuarters lists Q1..Q4 in calendar order.
var AllQuarters = []Quarter{Q1, Q2, Q3, Q4}

// ParseQuarter accepts q1..q4 in any case, surrounded by optional whitespace.
func ParseQuarter(s string) (Quarter, bool) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(s)))
	switch q {
	case Q1, Q2, Q3, Q4:
		return q, true
	}
	return "", false
}

// Months returns the three calendar months that make up the quarter.
func (q Quarter) Months() []time.Month {
	switch q {
	case Q1:
		return []time.Month{time.January, time.February, time.March}
	case Q2:
		return []time.Month{time.April, time.May, time.June}
	case Q3:
		return []time.Month{time.July, time.August, time.September}
	case Q4:
		return []time.Month{time.October, time.November, time.December}
	}
	return nil
}

// Contains reports whether calendar month m falls in the quarter.
func (q Quarter) Contains(m time.Month) bool {
	for _, qm := range q.Months() {
		if qm == m {
			return true
		}
	}
	return false
}

// MonthAbbrevs are the lowercase three-letter month tokens, January first.
var MonthAbbrevs = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// MonthOf resolves the calendar month of a label from its leading
// three-letter abbreviation, e.g. "May-23" or "January 2023".
func MonthOf(label string) (time.Month, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if len(l) < 3 {
		return 0, false
	}
	for i, abbr := range MonthAbbrevs {
		if l[:3] == abbr {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
