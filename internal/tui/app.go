// Package tui provides the interactive Bubble Tea chat for bizlens.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizlens/internal/logging"
	"github.com/theirongolddev/bizlens/internal/query"
	"github.com/theirongolddev/bizlens/internal/tui/components"
	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

// Greeting is the first transcript entry.
const Greeting = "Ask about sales, profit, customers, quarters, growth or costs. Type 'help' for examples, 'quit' to leave."

// exitWords end the chat when typed on their own.
var exitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

// IsExitWord reports whether line asks to leave the chat.
func IsExitWord(line string) bool {
	return exitWords[strings.ToLower(strings.TrimSpace(line))]
}

// Exchange is one question and its answer in the transcript.
type Exchange struct {
	Question string
	Intent   query.Intent
	Answer   string
	Elapsed  time.Duration
}

// AnswerMsg is sent when a question has been answered.
type AnswerMsg struct {
	Exchange Exchange
}

// Options describe the dataset the chat runs over.
type Options struct {
	Source   string
	Fallback bool
	Headline []components.Metric
}

// App is the root Bubble Tea model.
type App struct {
	router *query.Router
	opts   Options

	exchanges []Exchange
	pending   string

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	ready    bool

	width  int
	height int
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	inputHeight      = 3
)

// NewApp creates the chat model over router.
func NewApp(router *query.Router, opts Options) App {
	t := theme.Active

	in := textinput.New()
	in.Placeholder = "What was the profit in March?"
	in.Prompt = "› "
	in.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent)
	in.CharLimit = 256
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Accent)

	return App{
		router:  router,
		opts:    opts,
		input:   in,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Exchanges returns the transcript so far.
func (a App) Exchanges() []Exchange { return a.exchanges }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "ctrl+l":
			a.exchanges = nil
			a.refresh()
			return a, nil
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		case "enter":
			return a.submit()
		}

	case AnswerMsg:
		a.pending = ""
		a.exchanges = append(a.exchanges, msg.Exchange)
		a.refresh()
		return a, nil

	case spinner.TickMsg:
		if a.pending == "" {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.refresh()
		return a, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.pending != "" {
		return a, nil
	}
	if IsExitWord(text) {
		return a, tea.Quit
	}
	a.input.Reset()
	a.pending = text
	a.refresh()
	return a, tea.Batch(askCmd(a.router, text), a.spinner.Tick)
}

// askCmd answers text off the UI goroutine.
func askCmd(router *query.Router, text string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		resp := router.Ask(text)
		logging.L.WithField("intent", resp.Intent).Debug("chat question answered")
		return AnswerMsg{Exchange: Exchange{
			Question: text,
			Intent:   resp.Intent,
			Answer:   resp.Answer,
			Elapsed:  time.Since(start),
		}}
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a *App) resize() {
	cw := a.contentWidth()
	h := a.height - lipgloss.Height(a.header()) - inputHeight - 1
	if !a.ready {
		a.viewport = viewport.New(cw, max(h, 3))
		a.ready = true
	} else {
		a.viewport.Width = cw
		a.viewport.Height = max(h, 3)
	}
	a.input.Width = cw - 6
	a.refresh()
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (a *App) refresh() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(renderTranscript(a.exchanges, a.pending, a.spinner.View(), a.contentWidth()))
	a.viewport.GotoBottom()
}

// renderTranscript renders every exchange followed by the pending question.
func renderTranscript(exchanges []Exchange, pending, spin string, width int) string {
	t := theme.Active
	wrap := lipgloss.NewStyle().Width(max(width-4, 20))
	qStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	aStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	meta := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(wrap.Foreground(t.TextMuted).Render("  "+Greeting) + "\n\n")
	for _, ex := range exchanges {
		b.WriteString(qStyle.Render("  › "+ex.Question) + "\n")
		b.WriteString(indent(wrap.Inherit(aStyle).Render(ex.Answer), "    ") + "\n")
		b.WriteString(meta.Render(fmt.Sprintf("    %s · %s", ex.Intent, ex.Elapsed.Round(time.Microsecond))) + "\n\n")
	}
	if pending != "" {
		b.WriteString(qStyle.Render("  › "+pending) + "\n")
		b.WriteString("    " + spin + meta.Render(" thinking") + "\n")
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func (a App) header() string {
	t := theme.Active
	cw := a.contentWidth()

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("◈ bizlens") +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · business data chat")
	if len(a.opts.Headline) == 0 || cw < minTerminalWidth {
		return title
	}
	return title + "\n" + components.MetricCardRow(a.opts.Headline, cw)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 || !a.ready {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  bizlens chat needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	t := theme.Active
	cw := a.contentWidth()

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Width(cw - 2).
		Render(a.input.View())

	status := components.RenderStatusBar(cw, components.Status{
		Source:     a.opts.Source,
		Fallback:   a.opts.Fallback,
		Exchanges:  len(a.exchanges),
		LastIntent: a.lastIntent(),
	})

	out := lipgloss.JoinVertical(lipgloss.Left, a.header(), a.viewport.View(), inputBox, status)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Top, out)
}

func (a App) lastIntent() string {
	if len(a.exchanges) == 0 {
		return ""
	}
	return string(a.exchanges[len(a.exchanges)-1].Intent)
}
