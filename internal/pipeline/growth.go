package pipeline

import "github.com/theirongolddev/bizlens/internal/model"

// FinalRevenueGrowth is the revenue growth value of the last record.
func (e *Engine) FinalRevenueGrowth() model.Measure {
	n := e.ds.Len()
	if n == 0 || !e.ds.Has(model.ColRevenueGrowth) {
		return model.Unavailable
	}
	return model.Known(e.ds.At(n - 1).RevenueGrowth)
}

// AverageMonthlyGrowth is the mean month-over-month change of the revenue
// growth column, 0 with fewer than two records.
func (e *Engine) AverageMonthlyGrowth() model.Measure {
	n := e.ds.Len()
	if n == 0 || !e.ds.Has(model.ColRevenueGrowth) {
		return model.Unavailable
	}
	if n < 2 {
		return model.Known(0)
	}
	first, last := e.ds.At(0).RevenueGrowth, e.ds.At(n-1).RevenueGrowth
	return model.Known((last - first) / float64(n-1))
}

// SalesGrowth is the percentage change in sales from the first record to
// the last. It is 0 when the dataset is empty or started with no sales.
func (e *Engine) SalesGrowth() float64 {
	n := e.ds.Len()
	if n == 0 {
		return 0
	}
	first, last := float64(e.ds.At(0).Sales), float64(e.ds.At(n-1).Sales)
	return safeDiv(last-first, first) * 100
}

// Retention summarizes the retention column: the final value, the mean and
// the change since the first record.
func (e *Engine) Retention() (model.RetentionStats, error) {
	n := e.ds.Len()
	if n == 0 || !e.ds.Has(model.ColRetention) {
		return model.RetentionStats{}, ErrMissingColumn
	}
	first, last := e.ds.At(0).Retention, e.ds.At(n-1).Retention
	return model.RetentionStats{
		Current:     last,
		Average:     e.mean(func(r model.Record) float64 { return r.Retention }),
		Improvement: last - first,
	}, nil
}

// Marketing totals marketing spend and new customers. Cost per acquisition
// is 0 when no new customers were gained.
func (e *Engine) Marketing() (model.MarketingStats, error) {
	if !e.ds.Has(model.ColMarketingSpend) || !e.ds.Has(model.ColNewCustomers) {
		return model.MarketingStats{}, ErrMissingColumn
	}
	spend := e.sum(func(r model.Record) int64 { return r.MarketingSpend })
	gained := e.sum(func(r model.Record) int64 { return r.NewCustomers })
	return model.MarketingStats{
		TotalSpend:         spend,
		NewCustomers:       gained,
		CostPerAcquisition: safeDiv(float64(spend), float64(gained)),
	}, nil
}
