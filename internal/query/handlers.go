package query

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/pipeline"
)

func (r *Router) profit(q string) string {
	e, m := r.engine, r.engine.Money()
	if tok := MonthToken(q); tok != "" {
		rec, err := e.Month(tok)
		if err != nil {
			return notFound(err, "month", tok)
		}
		return fmt.Sprintf("Profit for %s: %s (%s margin)", rec.Month, m.Amount(rec.Profit), money.Percent(rec.Margin))
	}
	if tok := QuarterToken(q); tok != "" {
		agg, err := e.QuarterlySummary(tok)
		if err != nil || agg.Months == 0 {
			return "No data found for quarter: " + tok
		}
		return fmt.Sprintf("Total profit for %s: %s", agg.Quarter, m.Amount(agg.TotalProfit))
	}
	return "Total profit across all months: " + m.Amount(e.MonthlySummary().TotalProfit)
}

func (r *Router) sales(q string) string {
	e, m := r.engine, r.engine.Money()
	switch {
	case containsAny("highest", "best", "maximum")(q):
		best := e.MonthlySummary().BestMonth
		return fmt.Sprintf("Highest sales: %s in %s", m.Amount(best.Sales), best.Month)
	case strings.Contains(q, "total"):
		return "Total sales: " + m.Amount(e.MonthlySummary().TotalSales)
	default:
		return "Average monthly sales: " + m.Float(e.AverageSales())
	}
}

func (r *Router) customers(string) string {
	return fmt.Sprintf("Average customers per month: %.0f", r.engine.AverageCustomers())
}

func (r *Router) expenses(q string) string {
	e, m := r.engine, r.engine.Money()
	if strings.Contains(q, "total") {
		return "Total expenses: " + m.Amount(e.MonthlySummary().TotalExpenses)
	}
	return "Average monthly expenses: " + m.Float(e.AverageExpenses())
}

func (r *Router) quarter(q string) string {
	e, m := r.engine, r.engine.Money()
	if tok := QuarterToken(q); tok != "" {
		agg, err := e.QuarterlySummary(tok)
		if err != nil || agg.Months == 0 {
			return "No data found for quarter: " + tok
		}
		return fmt.Sprintf("%s Performance:\n• Sales: %s\n• Profit: %s\n• Avg Customers: %d",
			agg.Quarter, m.Amount(agg.TotalSales), m.Amount(agg.TotalProfit), agg.AvgCustomers)
	}

	cmp := e.AllQuarters()
	if cmp.Best == "" {
		return "No quarterly data available."
	}
	var b strings.Builder
	b.WriteString("Quarterly Performance Summary:")
	for _, agg := range cmp.Quarters {
		if agg.Months == 0 {
			fmt.Fprintf(&b, "\n• %s: no data", agg.Quarter)
			continue
		}
		fmt.Fprintf(&b, "\n• %s: Sales %s, Profit %s, Avg Customers %d",
			agg.Quarter, m.Amount(agg.TotalSales), m.Amount(agg.TotalProfit), agg.AvgCustomers)
	}
	fmt.Fprintf(&b, "\n\nBest performing quarter: %s", cmp.Best)
	return b.String()
}

func (r *Router) growth(string) string {
	e := r.engine
	final := e.FinalRevenueGrowth()
	if !final.Available {
		return fmt.Sprintf("Sales growth over period: %.1f%%", e.SalesGrowth())
	}
	monthly := e.AverageMonthlyGrowth()
	return fmt.Sprintf("Business Growth Analysis:\n• Total growth: %.1f%% over the year\n• Average monthly growth: %.1f%%\n• Trend: %s",
		final.Value, monthly.Value, trend(monthly.Value))
}

func trend(avgMonthly float64) string {
	switch {
	case avgMonthly > 0:
		return "Strong upward trajectory"
	case avgMonthly < 0:
		return "Downward trajectory"
	default:
		return "Flat"
	}
}

func (r *Router) retention(string) string {
	st, err := r.engine.Retention()
	if err != nil {
		return "Customer retention data is not available in this dataset"
	}
	return fmt.Sprintf("Customer Retention Analysis:\n• Current retention: %.1f%%\n• Average retention: %.1f%%\n• Improvement: %+.1f%% over the year",
		st.Current, st.Average, st.Improvement)
}

func (r *Router) marketing(string) string {
	e, m := r.engine, r.engine.Money()
	st, err := e.Marketing()
	if err != nil {
		return "Marketing data is not available in this dataset"
	}
	return fmt.Sprintf("Marketing Performance:\n• Total marketing spend: %s\n• New customers acquired: %s\n• Cost per acquisition: %s",
		m.Amount(st.TotalSpend), m.Number(st.NewCustomers), m.Float(st.CostPerAcquisition))
}

func (r *Router) insights(string) string {
	return bullets(r.engine.BusinessInsights())
}

func (r *Router) summary(string) string {
	e, m := r.engine, r.engine.Money()
	s := e.MonthlySummary()
	var b strings.Builder
	b.WriteString("Business Performance Summary:\n")
	fmt.Fprintf(&b, "• Total Sales: %s\n", m.Amount(s.TotalSales))
	fmt.Fprintf(&b, "• Total Expenses: %s\n", m.Amount(s.TotalExpenses))
	fmt.Fprintf(&b, "• Net Profit: %s\n", m.Amount(s.TotalProfit))
	fmt.Fprintf(&b, "• Best Month: %s\n", s.BestMonth.Month)
	fmt.Fprintf(&b, "• Average Customers: %.0f\n\n", math.Round(s.AvgCustomers))
	b.WriteString("Key Insights:\n")
	b.WriteString(bullets(e.BusinessInsights()))
	return b.String()
}

func bullets(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "• " + l
	}
	return strings.Join(out, "\n")
}

// notFound turns an engine lookup error into the user-facing message.
func notFound(err error, kind, token string) string {
	if errors.Is(err, pipeline.ErrNotFound) {
		return fmt.Sprintf("No data found for %s: %s", kind, token)
	}
	return err.Error()
}
