package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/query"
	"github.com/theirongolddev/bizlens/internal/tui"
	"github.com/theirongolddev/bizlens/internal/tui/components"
	"github.com/theirongolddev/bizlens/internal/tui/theme"
)

var flagChatPlain bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question-and-answer session",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&flagChatPlain, "plain", false, "Line-based prompt instead of the full-screen UI")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if flagChatPlain {
		return chatLoop(os.Stdin, os.Stdout, a.router)
	}

	// The terminal theme sticks to the 16 ANSI colors.
	if theme.Active.Name == theme.Terminal.Name {
		lipgloss.SetColorProfile(termenv.ANSI)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(a.router, tui.Options{
		Source:   a.sourceLabel(),
		Fallback: a.result.Fallback,
		Headline: headline(a),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}

// headline picks the figures shown above the transcript.
func headline(a *app) []components.Metric {
	e, m := a.engine(), a.money()
	if e.Dataset().Len() == 0 {
		return nil
	}
	s := e.MonthlySummary()
	best := e.AllQuarters().Best
	if best == "" {
		best = "-"
	}
	return []components.Metric{
		{Label: "Sales", Value: cli.FormatCompact(m.Symbol, s.TotalSales), Note: fmt.Sprintf("%d months", s.Months)},
		{Label: "Profit", Value: cli.FormatCompact(m.Symbol, s.TotalProfit)},
		{Label: "Avg Customers", Value: fmt.Sprintf("%.0f", s.AvgCustomers)},
		{Label: "Best Quarter", Value: string(best)},
	}
}

// chatLoop answers one question per input line until EOF or an exit word.
func chatLoop(in io.Reader, out io.Writer, router *query.Router) error {
	fmt.Fprintln(out, tui.Greeting)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if tui.IsExitWord(line) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		fmt.Fprintln(out, router.Answer(line))
	}
	fmt.Fprintln(out)
	return sc.Err()
}
