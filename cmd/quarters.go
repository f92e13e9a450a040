package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/money"
)

var quartersCmd = &cobra.Command{
	Use:   "quarters [Q1|Q2|Q3|Q4]",
	Short: "Compare quarters, or show one quarter",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuarters,
}

func init() {
	rootCmd.AddCommand(quartersCmd)
}

func runQuarters(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	e, m := a.engine(), a.money()

	if len(args) == 1 {
		agg, err := e.QuarterlySummary(args[0])
		if err != nil {
			return err
		}
		if agg.Months == 0 {
			fmt.Println("No data found for quarter: " + string(agg.Quarter))
			return nil
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   string(agg.Quarter) + " Performance",
			Headers: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Months", fmt.Sprintf("%d", agg.Months)},
				{"Sales", m.Amount(agg.TotalSales)},
				{"Expenses", m.Amount(agg.TotalExpenses)},
				{"Profit", cli.Signed(m.Amount(agg.TotalProfit), agg.TotalProfit < 0)},
				{"Avg Customers", m.Number(agg.AvgCustomers)},
				{"Avg Margin", money.Percent(agg.AvgMargin)},
			},
		}))
		return nil
	}

	cmp := e.AllQuarters()
	var rows [][]string
	var top int64
	for _, q := range cmp.Quarters {
		top = max(top, q.TotalSales)
		name := string(q.Quarter)
		if q.Quarter == cmp.Best {
			name += " ★"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", q.Months),
			m.Amount(q.TotalSales),
			cli.Signed(m.Amount(q.TotalProfit), q.TotalProfit < 0),
			m.Number(q.AvgCustomers),
			money.Percent(q.AvgMargin),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Quarterly Comparison",
		Headers: []string{"Quarter", "Months", "Sales", "Profit", "Avg Customers", "Avg Margin"},
		Rows:    rows,
	}))
	fmt.Println()
	for _, q := range cmp.Quarters {
		fmt.Println(cli.RenderHorizontalBar(string(q.Quarter), float64(q.TotalSales), float64(top), 40,
			cli.FormatCompact(m.Symbol, q.TotalSales)))
	}
	if cmp.Best != "" {
		fmt.Printf("\n  Best performing quarter: %s\n", cmp.Best)
	} else {
		fmt.Println("\n  " + cli.Muted("No month labels map to a calendar quarter"))
	}
	return nil
}
