package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/bizlens/internal/config"
	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/pipeline"
	"github.com/theirongolddev/bizlens/internal/query"
	"github.com/theirongolddev/bizlens/internal/source"
	"github.com/theirongolddev/bizlens/internal/tui/components"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	router := query.NewRouter(pipeline.New(source.SampleDataset(), money.Default()))
	m, _ := NewApp(router, Options{
		Source:   "sample",
		Fallback: true,
		Headline: []components.Metric{{Label: "Sales", Value: "₹7680000"}},
	}).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func typeText(a App, text string) App {
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m.(App)
}

func TestIsExitWord(t *testing.T) {
	for _, w := range []string{"quit", "EXIT", "  bye "} {
		assert.True(t, IsExitWord(w), w)
	}
	assert.False(t, IsExitWord("goodbye profit"))
}

func TestSubmit_AnswersQuestion(t *testing.T) {
	a := typeText(newTestApp(t), "profit in march")

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	require.NotNil(t, cmd)
	assert.Equal(t, "profit in march", a.pending)
	assert.Empty(t, a.input.Value())

	msg := askCmd(a.router, a.pending)()
	ans, ok := msg.(AnswerMsg)
	require.True(t, ok)
	assert.Equal(t, query.IntentProfit, ans.Exchange.Intent)
	assert.Contains(t, ans.Exchange.Answer, "Profit for Mar-23")

	m, _ = a.Update(ans)
	a = m.(App)
	assert.Empty(t, a.pending)
	require.Len(t, a.Exchanges(), 1)
	assert.Contains(t, a.View(), "Profit for Mar-23")
	assert.Contains(t, a.View(), "intent: profit")
}

func TestSubmit_IgnoresBlankAndQuitsOnExitWord(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	a = typeText(a, "bye")
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestClearTranscript(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(AnswerMsg{Exchange: Exchange{Question: "q", Intent: query.IntentHelp, Answer: "a"}})
	a = m.(App)
	require.Len(t, a.Exchanges(), 1)

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.(App).Exchanges())
}

func TestView_TooNarrow(t *testing.T) {
	m, _ := newTestApp(t).Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, m.(App).View(), "Terminal too narrow")
}

func TestRenderTranscript_Multiline(t *testing.T) {
	out := renderTranscript([]Exchange{{
		Question: "insights",
		Intent:   query.IntentInsights,
		Answer:   "Key Business Insights:\n• one\n• two",
	}}, "", "", 80)
	assert.True(t, strings.Contains(out, "    • one"), out)
	assert.Contains(t, out, "› insights")
}

func TestSetupValues_Apply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValuesFrom(cfg)
	assert.Equal(t, "flexoki-dark", v.Theme)

	data := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("Month\n"), 0o600))
	require.NoError(t, validateDataFile(data))
	require.NoError(t, validateDataFile(""))
	require.Error(t, validateDataFile(data+".missing"))

	v.DataFile = " " + data + " "
	v.Currency = "USD"
	v.GroupDigits = true
	v.Theme = "no-such-theme"
	v.OllamaHost = "http://gpu:11434/"
	v.Apply(&cfg)

	assert.Equal(t, data, cfg.General.DataFile)
	assert.Equal(t, "USD", cfg.Display.CurrencySymbol)
	assert.True(t, cfg.Display.GroupDigits)
	assert.Equal(t, "flexoki-dark", cfg.Display.Theme)
	assert.Equal(t, "http://gpu:11434", cfg.Retrieval.OllamaHost)
}
