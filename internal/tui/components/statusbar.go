package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

// Status is the state shown in the bottom bar.
type Status struct {
	Source     string
	Fallback   bool
	Exchanges  int
	LastIntent string
}

// RenderStatusBar renders the bottom status bar: key hints on the left,
// dataset and last intent on the right.
func RenderStatusBar(width int, s Status) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warn := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)

	left := base.Render(" [enter]ask  [pgup/pgdn]scroll  [ctrl+l]clear  [esc]quit")

	var parts []string
	if s.LastIntent != "" {
		parts = append(parts, base.Render("intent: "+s.LastIntent))
	}
	parts = append(parts, base.Render(fmt.Sprintf("%d asked", s.Exchanges)))
	src := base.Render("data: " + s.Source)
	if s.Fallback {
		src = warn.Render("data: " + s.Source + " (sample)")
	}
	parts = append(parts, src)
	right := strings.Join(parts, base.Render("  │  ")) + base.Render(" ")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + base.Render(strings.Repeat(" ", gap)) + right
}
