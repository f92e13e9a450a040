package pipeline

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/bizlens/internal/model"
)

// QuarterlySummary aggregates the three calendar months of quarter q
// ("Q1".."Q4", any case). Records are matched by the month in their label,
// so the Quarter column is not required.
func (e *Engine) QuarterlySummary(q string) (model.QuarterAggregate, error) {
	quarter, ok := model.ParseQuarter(q)
	if !ok {
		return model.QuarterAggregate{}, fmt.Errorf("%w: %q", ErrInvalidQuarter, q)
	}
	return e.aggregateQuarter(quarter), nil
}

// AllQuarters aggregates Q1..Q4 and picks the quarter with the highest
// sales, the earliest one on ties. Best is empty when no record maps to a
// quarter.
func (e *Engine) AllQuarters() model.QuarterComparison {
	var cmp model.QuarterComparison
	bestIdx := -1
	for _, q := range model.AllQuarters {
		agg := e.aggregateQuarter(q)
		cmp.Quarters = append(cmp.Quarters, agg)
		if agg.Months == 0 {
			continue
		}
		if bestIdx < 0 || agg.TotalSales > cmp.Quarters[bestIdx].TotalSales {
			bestIdx = len(cmp.Quarters) - 1
		}
	}
	if bestIdx >= 0 {
		cmp.Best = cmp.Quarters[bestIdx].Quarter
	}
	return cmp
}

func (e *Engine) aggregateQuarter(q model.Quarter) model.QuarterAggregate {
	agg := model.QuarterAggregate{Quarter: q}
	var customers int64
	var margins float64

	for i := 0; i < e.ds.Len(); i++ {
		r := e.ds.At(i)
		m, ok := model.MonthOf(r.Month)
		if !ok || !q.Contains(m) {
			continue
		}
		agg.Months++
		agg.TotalSales += r.Sales
		agg.TotalExpenses += r.Expenses
		agg.TotalProfit += r.Profit
		customers += r.Customers
		margins += r.Margin
	}

	if agg.Months > 0 {
		n := float64(agg.Months)
		agg.AvgCustomers = int64(math.Round(float64(customers) / n))
		agg.AvgMargin = round2(margins / n)
	}
	return agg
}

// labelledQuarterSales sums sales per Quarter column value, in Q1..Q4 order.
// ok is false when the dataset carries no quarter labels.
func (e *Engine) labelledQuarterSales() (sales map[model.Quarter]int64, ok bool) {
	if !e.ds.Has(model.ColQuarter) {
		return nil, false
	}
	sales = make(map[model.Quarter]int64)
	for i := 0; i < e.ds.Len(); i++ {
		r := e.ds.At(i)
		if r.Quarter == "" {
			continue
		}
		sales[r.Quarter] += r.Sales
	}
	return sales, len(sales) > 0
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
