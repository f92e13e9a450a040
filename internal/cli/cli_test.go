package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "₹7.7M", FormatCompact("₹", 7680000))
	assert.Equal(t, "₹640K", FormatCompact("₹", 640000))
	assert.Equal(t, "$999", FormatCompact("$", 999))
	assert.Equal(t, "-₹1.2B", FormatCompact("₹", -1_200_000_000))
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "-", FormatChange(100, 0))
	assert.Equal(t, "+7.8%", FormatChange(485000, 450000))
	assert.Equal(t, "-4.8%", FormatChange(595000, 625000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestRenderTable_AlignsCurrency(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Month", "Sales"},
		Rows: [][]string{
			{"Jan-23", "₹450000"},
			SeparatorRow,
			{"Total", "₹7680000"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(l), l)
	}
	assert.Contains(t, out, "│ Jan-23 │  ₹450000 │")
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "▁▄█", RenderSparkline([]float64{1, 2, 3}))
	assert.Equal(t, "██", RenderSparkline([]float64{5, 5}))
	assert.Empty(t, RenderSparkline(nil))
}

func TestRenderHorizontalBar(t *testing.T) {
	out := RenderHorizontalBar("Q1", 50, 100, 10, "₹50")
	assert.Equal(t, "  Q1 █████      ₹50", out)
}
