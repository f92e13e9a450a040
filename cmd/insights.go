package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/pipeline"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Rule-based observations about the business",
	RunE:  runInsights,
}

var optimizeCmd = &cobra.Command{
	Use:     "optimize <month>",
	Short:   "Cost-optimization suggestions for one month",
	Example: "  bizlens optimize dec",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runOptimize,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(optimizeCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	insights := a.engine().BusinessInsights()
	if len(insights) == 0 {
		fmt.Println("\n  No insights: the dataset is empty.")
		return nil
	}
	fmt.Println()
	fmt.Print(cli.RenderBullets("Key Business Insights", insights))
	return nil
}

func runOptimize(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	month := strings.Join(args, " ")
	suggestions, err := a.engine().CostOptimizationSuggestions(month)
	if errors.Is(err, pipeline.ErrNotFound) {
		fmt.Println("No data found for month: " + month)
		return nil
	}
	if err != nil {
		return err
	}

	rec, _ := a.engine().Month(month)
	fmt.Println()
	fmt.Print(cli.RenderBullets("Cost Optimization for "+rec.Month, suggestions))
	return nil
}
