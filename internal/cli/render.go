package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

// SeparatorRow inserts a horizontal rule when used as a table row.
var SeparatorRow = []string{"---"}

// Table represents a bordered text table for CLI output. The first column
// is left-aligned, the rest right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(style(t.TextPrimary).Bold(true).Render(title))
}

// RenderTable renders a bordered table with headers and rows. Widths are
// measured in terminal cells so currency symbols line up.
func RenderTable(tbl Table) string {
	numCols := len(tbl.Headers)
	if numCols == 0 && len(tbl.Rows) > 0 {
		numCols = len(tbl.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < numCols && !isSeparator(row) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	t := theme.Active
	dim, head, val := style(t.TextDim), style(t.Accent).Bold(true), style(t.TextPrimary)

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dim.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString("  " + head.Render(tbl.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(tbl.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range tbl.Headers {
			b.WriteString(head.Render(" " + pad(h, widths[i], i > 0) + " "))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range tbl.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(val.Render(" " + pad(cell, widths[i], i > 0) + " "))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == SeparatorRow[0]
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderSparkline draws values as unicode blocks scaled between the series
// minimum and maximum.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := len(blocks) - 1
		if span > 0 {
			idx = int((v - lo) / span * float64(len(blocks)-1))
		}
		b.WriteRune(blocks[max(0, min(idx, len(blocks)-1))])
	}
	return style(theme.Active.Sales).Render(b.String())
}

// RenderHorizontalBar renders one labelled bar scaled against maxValue.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, valueText string) string {
	barLen := 0
	if maxValue > 0 && value > 0 {
		barLen = int(value / maxValue * float64(maxWidth))
	}
	bar := style(theme.Active.Sales).Render(strings.Repeat("█", barLen))
	rest := strings.Repeat(" ", maxWidth-barLen)
	return fmt.Sprintf("  %s %s%s %s", label, bar, rest, style(theme.Active.TextMuted).Render(valueText))
}

// RenderBullets renders a titled bullet list.
func RenderBullets(title string, items []string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("  " + style(theme.Active.Accent).Bold(true).Render(title) + "\n")
	}
	for _, it := range items {
		b.WriteString("  " + style(theme.Active.Highlight).Render("•") + " " + it + "\n")
	}
	return b.String()
}

// Signed colors an amount as profit or loss.
func Signed(text string, negative bool) string {
	if negative {
		return style(theme.Active.Loss).Render(text)
	}
	return style(theme.Active.Profit).Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return style(theme.Active.TextMuted).Render(text)
}

// Warn renders a warning line.
func Warn(text string) string {
	return style(theme.Active.Warn).Render(text)
}
