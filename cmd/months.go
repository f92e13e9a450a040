package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/cli"
	"github.com/theirongolddev/bizlens/internal/money"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Per-month sales, expenses, profit and customers",
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ds, m := a.engine().Dataset(), a.money()
	if ds.Len() == 0 {
		fmt.Println("\n  No months found in " + a.sourceLabel())
		return nil
	}

	rows := make([][]string, 0, ds.Len()+2)
	sales := make([]float64, 0, ds.Len())
	var prev int64
	for i, r := range ds.Records() {
		change := "-"
		if i > 0 {
			change = cli.FormatChange(r.Sales, prev)
		}
		prev = r.Sales
		sales = append(sales, float64(r.Sales))
		rows = append(rows, []string{
			r.Month,
			m.Amount(r.Sales),
			m.Amount(r.Expenses),
			cli.Signed(m.Amount(r.Profit), r.Profit < 0),
			money.Percent(r.Margin),
			m.Number(r.Customers),
			change,
		})
	}

	s := a.engine().MonthlySummary()
	rows = append(rows, cli.SeparatorRow, []string{
		"Total",
		m.Amount(s.TotalSales),
		m.Amount(s.TotalExpenses),
		cli.Signed(m.Amount(s.TotalProfit), s.TotalProfit < 0),
		"",
		fmt.Sprintf("%.0f avg", s.AvgCustomers),
		"",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly Performance",
		Headers: []string{"Month", "Sales", "Expenses", "Profit", "Margin", "Customers", "vs prev"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  Sales trend  %s  %s → %s\n", cli.RenderSparkline(sales),
		cli.FormatCompact(m.Symbol, ds.At(0).Sales), cli.FormatCompact(m.Symbol, ds.At(ds.Len()-1).Sales))
	return nil
}
