// Package money formats currency amounts for answers and reports.
package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// DefaultSymbol is the currency symbol of the bundled sample data.
const DefaultSymbol = "₹"

// Formatter renders amounts with a currency symbol. Digits are grouped
// in thousands only when Group is set, so "₹220000" stays searchable.
type Formatter struct {
	Symbol string
	Group  bool
}

// Default returns the formatter used when nothing is configured.
func Default() Formatter {
	return Formatter{Symbol: DefaultSymbol}
}

// Amount formats a whole currency amount, e.g. ₹455000 or ₹455,000.
func (f Formatter) Amount(n int64) string {
	if n < 0 {
		return "-" + f.Amount(-n)
	}
	return f.Symbol + f.Number(n)
}

// Float formats a fractional amount rounded to whole currency units.
func (f Formatter) Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return f.Amount(int64(math.Round(v)))
}

// Number formats an integer, grouping digits when configured.
func (f Formatter) Number(n int64) string {
	if f.Group {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}

// Percent formats a percentage with one decimal, e.g. 32.4%.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.1f%%", v)
}
