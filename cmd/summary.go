package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/money"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, best and worst months, and key insights",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	e, m := a.engine(), a.money()
	if e.Dataset().Len() == 0 {
		fmt.Println("\n  No months found in " + a.sourceLabel())
		return nil
	}

	s := e.MonthlySummary()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUSINESS SUMMARY  %s · %d months", a.sourceLabel(), s.Months)))
	fmt.Println()

	margin := 0.0
	if s.TotalSales > 0 {
		margin = float64(s.TotalProfit) / float64(s.TotalSales) * 100
	}
	rows := [][]string{
		{"Total Sales", m.Amount(s.TotalSales)},
		{"Total Expenses", m.Amount(s.TotalExpenses)},
		{"Total Profit", cli.Signed(m.Amount(s.TotalProfit), s.TotalProfit < 0)},
		{"Profit Margin", money.Percent(margin)},
		cli.SeparatorRow,
		{"Avg Monthly Sales", m.Float(e.AverageSales())},
		{"Avg Customers", fmt.Sprintf("%.0f", s.AvgCustomers)},
		cli.SeparatorRow,
		{"Best Month", fmt.Sprintf("%s (%s)", s.BestMonth.Month, m.Amount(s.BestMonth.Sales))},
		{"Worst Month", fmt.Sprintf("%s (%s)", s.WorstMonth.Month, m.Amount(s.WorstMonth.Sales))},
	}
	if g := e.AverageMonthlyGrowth(); g.Available {
		rows = append(rows, []string{"Avg Monthly Growth", money.Percent(g.Value)})
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	if insights := e.BusinessInsights(); len(insights) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderBullets("Key Insights", insights))
	}
	return nil
}
