package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/config"
	"github.com/theirongolddev/bizlens/internal/logging"
	"github.com/theirongolddev/bizlens/internal/retrieval"
)

var (
	flagSearchTopK     int
	flagSearchMinScore float64
	flagSearchModel    string
)

var searchCmd = &cobra.Command{
	Use:     "search <text...>",
	Short:   "Find the months most similar to a description (needs Ollama)",
	Example: `  bizlens search "month with high marketing spend and low margin"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchTopK, "top", "k", 0, "Number of months to return (default from config)")
	searchCmd.Flags().Float64Var(&flagSearchMinScore, "min-score", -1, "Minimum cosine similarity (default from config)")
	searchCmd.Flags().StringVar(&flagSearchModel, "model", "", "Ollama embedding model (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	rc := a.cfg.Retrieval
	if flagSearchTopK > 0 {
		rc.TopK = flagSearchTopK
	}
	if flagSearchMinScore >= 0 {
		rc.MinScore = flagSearchMinScore
	}
	if flagSearchModel != "" {
		rc.EmbedModel = flagSearchModel
	}

	host := config.GetOllamaHost(a.cfg)
	timeout := time.Duration(rc.TimeoutSec) * time.Second
	emb := retrieval.NewOllamaEmbedder(host, rc.EmbedModel, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), 2*timeout+10*time.Second)
	defer cancel()

	docs := retrieval.Documents(a.engine().Dataset(), a.money())
	progress := func(current, total int) {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "\r  Embedding months [%d/%d]", current, total)
		}
	}
	idx, err := retrieval.Build(ctx, emb, docs, retrieval.BuildOptions{Workers: 4, Progress: progress})
	if !flagQuiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		var unreachable *retrieval.UnreachableError
		if errors.As(err, &unreachable) {
			return fmt.Errorf("%w\n  start it with `ollama serve` and `ollama pull %s`", err, rc.EmbedModel)
		}
		return err
	}

	text := strings.Join(args, " ")
	hits, err := idx.Query(ctx, emb, text, rc.TopK, rc.MinScore)
	if err != nil {
		return err
	}
	logging.L.WithField("hits", len(hits)).Debug("search complete")

	if len(hits) == 0 {
		fmt.Println("\n  No months matched closely enough.")
		return nil
	}

	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, []string{h.Month, fmt.Sprintf("%.3f", h.Score)})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Closest months to: " + text,
		Headers: []string{"Month", "Score"},
		Rows:    rows,
	}))
	fmt.Println()
	for _, h := range hits {
		fmt.Println("  " + cli.Muted(h.Text))
	}
	return nil
}
