// Package pipeline is the metric engine: it turns a business dataset into
// totals, quarterly aggregates, insights and cost suggestions. It never
// parses free text and never performs I/O.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
)

// Engine computes metrics over one immutable dataset. Construct it once per
// process and share it; it is safe for concurrent use.
type Engine struct {
	ds    *model.Dataset
	money money.Formatter
}

// New returns an engine over ds. A nil dataset behaves as an empty one.
func New(ds *model.Dataset, f money.Formatter) *Engine {
	if ds == nil {
		ds, _ = model.NewDataset("empty", nil)
	}
	return &Engine{ds: ds, money: f}
}

// Dataset returns the dataset the engine was built over.
func (e *Engine) Dataset() *model.Dataset { return e.ds }

// Money returns the currency formatter used in insight text.
func (e *Engine) Money() money.Formatter { return e.money }

// MonthlySummary aggregates every record. Total profit is total sales minus
// total expenses. Best and worst months are the first records holding the
// maximum and minimum sales.
func (e *Engine) MonthlySummary() model.Summary {
	var s model.Summary
	n := e.ds.Len()
	if n == 0 {
		return s
	}

	var customers int64
	best, worst := 0, 0
	for i := 0; i < n; i++ {
		r := e.ds.At(i)
		s.TotalSales += r.Sales
		s.TotalExpenses += r.Expenses
		customers += r.Customers
		if r.Sales > e.ds.At(best).Sales {
			best = i
		}
		if r.Sales < e.ds.At(worst).Sales {
			worst = i
		}
	}

	s.Months = n
	s.TotalProfit = s.TotalSales - s.TotalExpenses
	s.AvgCustomers = float64(customers) / float64(n)
	s.BestMonth = e.ds.At(best)
	s.WorstMonth = e.ds.At(worst)
	return s
}

// Month returns the first record whose label contains filter, ignoring case.
func (e *Engine) Month(filter string) (model.Record, error) {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return model.Record{}, fmt.Errorf("%w: empty month filter", ErrNotFound)
	}
	for i := 0; i < e.ds.Len(); i++ {
		r := e.ds.At(i)
		if strings.Contains(strings.ToLower(r.Month), f) {
			return r, nil
		}
	}
	return model.Record{}, fmt.Errorf("%w: month %q", ErrNotFound, filter)
}

// AverageSales returns mean monthly sales, 0 for an empty dataset.
func (e *Engine) AverageSales() float64 {
	return e.mean(func(r model.Record) float64 { return float64(r.Sales) })
}

// AverageExpenses returns mean monthly expenses, 0 for an empty dataset.
func (e *Engine) AverageExpenses() float64 {
	return e.mean(func(r model.Record) float64 { return float64(r.Expenses) })
}

// AverageCustomers returns the mean customer count, 0 for an empty dataset.
func (e *Engine) AverageCustomers() float64 {
	return e.mean(func(r model.Record) float64 { return float64(r.Customers) })
}

// AverageProfit returns mean monthly profit, 0 for an empty dataset.
func (e *Engine) AverageProfit() float64 {
	return e.mean(func(r model.Record) float64 { return float64(r.Profit) })
}

func (e *Engine) mean(field func(model.Record) float64) float64 {
	n := e.ds.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += field(e.ds.At(i))
	}
	return sum / float64(n)
}

func (e *Engine) sum(field func(model.Record) int64) int64 {
	var total int64
	for i := 0; i < e.ds.Len(); i++ {
		total += field(e.ds.At(i))
	}
	return total
}

// safeDiv returns a/b, or 0 when b is zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
