// Package components provides reusable widgets for the bizlens chat UI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

// Metric is one headline figure shown in a card.
type Metric struct {
	Label string
	Value string
	Note  string
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a bordered card with a label, a value and an optional
// note. outerWidth includes the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}
	return cardStyle.Render(content)
}

// MetricCardRow renders cards side by side filling exactly totalWidth.
// Shorter cards are padded to the tallest so borders line up.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	tallest := 0
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
		tallest = max(tallest, lipgloss.Height(rendered[i]))
	}
	for i, m := range metrics {
		if lipgloss.Height(rendered[i]) < tallest && m.Note == "" {
			m.Note = " "
			rendered[i] = MetricCard(m, widths[i])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
