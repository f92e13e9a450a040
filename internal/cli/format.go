// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCompact abbreviates an amount with K/M/B suffixes for narrow
// columns, e.g. 7680000 -> "₹7.7M".
func FormatCompact(symbol string, n int64) string {
	if n < 0 {
		return "-" + FormatCompact(symbol, -n)
	}
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%s%.1fB", symbol, float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", symbol, float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%s%.0fK", symbol, float64(n)/1_000)
	default:
		return fmt.Sprintf("%s%d", symbol, n)
	}
}

// FormatCount groups an integer count in thousands: 1234567 -> "1,234,567".
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatChange is the signed percentage change from prev to curr, or "-"
// when there is no previous value to compare with.
func FormatChange(curr, prev int64) string {
	if prev == 0 {
		return "-"
	}
	pct := float64(curr-prev) / float64(prev) * 100
	if math.Abs(pct) < 0.05 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", pct)
}
