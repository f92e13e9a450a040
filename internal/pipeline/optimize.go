package pipeline

import (
	"fmt"

	"github.com/theirongolddev/bizlens/internal/model"
)

// lowMarginThreshold is the profit margin (%) below which pricing is flagged.
const lowMarginThreshold = 30.0

// OptimalPerformance is returned when no cost rule fires for a month.
const OptimalPerformance = "Business performance is optimal for this month"

// CostOptimizationSuggestions checks the month matching filter against the
// dataset: inventory cost above the mean, marketing ROI (customers per 1000
// spent) below the mean ROI, and a margin under 30%. Checks over missing
// columns are skipped.
func (e *Engine) CostOptimizationSuggestions(filter string) ([]string, error) {
	r, err := e.Month(filter)
	if err != nil {
		return nil, err
	}

	var out []string
	if e.ds.Has(model.ColInventoryCost) {
		avg := e.mean(func(r model.Record) float64 { return float64(r.InventoryCost) })
		if float64(r.InventoryCost) > avg {
			out = append(out, fmt.Sprintf("Reduce inventory costs from %s (%s above average)",
				e.money.Amount(r.InventoryCost), e.money.Float(float64(r.InventoryCost)-avg)))
		}
	}

	if e.ds.Has(model.ColMarketingSpend) {
		roi := marketingROI(r)
		avgROI := e.mean(marketingROI)
		if roi < avgROI {
			out = append(out, fmt.Sprintf("Improve marketing efficiency - current ROI: %.2f customers per %s spent",
				roi, e.money.Amount(1000)))
		}
	}

	if r.Margin < lowMarginThreshold {
		out = append(out, "Consider raising prices or reducing operational costs to improve profit margin")
	}

	if len(out) == 0 {
		return []string{OptimalPerformance}, nil
	}
	return out, nil
}

// marketingROI is customers gained per 1000 units of marketing spend.
func marketingROI(r model.Record) float64 {
	return safeDiv(float64(r.Customers), float64(r.MarketingSpend)/1000)
}
