package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	assert.Equal(t, []int{34, 33, 33}, LayoutRow(100, 3))
	assert.Nil(t, LayoutRow(10, 0))
}

func TestMetricCardRow_FillsWidthAndAlignsHeights(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Sales", Value: "₹7680000", Note: "12 months"},
		{Label: "Profit", Value: "₹2820000"},
		{Label: "Customers", Value: "259"},
	}, 90)

	lines := strings.Split(row, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 90, lipgloss.Width(l))
	}
	assert.Contains(t, row, "₹2820000")
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(120, Status{Source: "sales.csv", Exchanges: 2, LastIntent: "profit"})
	assert.Equal(t, 120, lipgloss.Width(bar))
	assert.Contains(t, bar, "intent: profit")
	assert.Contains(t, bar, "data: sales.csv")

	bar = RenderStatusBar(120, Status{Source: "sample", Fallback: true})
	assert.Contains(t, bar, "(sample)")
}
