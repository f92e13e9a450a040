package pipeline

import (
	"fmt"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
)

// insightRule appends at most one insight. Rules run in declaration order.
type insightRule func(e *Engine) (string, bool)

var insightRules = []insightRule{
	revenueGrowthInsight,
	profitabilityInsight,
	retentionInsight,
	bestQuarterInsight,
	acquisitionCostInsight,
	salesGrowthInsight,
}

// BusinessInsights evaluates the insight rules in a fixed order. Rules whose
// optional columns are missing contribute nothing. An empty dataset yields
// no insights.
func (e *Engine) BusinessInsights() []string {
	if e.ds.Len() == 0 {
		return nil
	}
	var out []string
	for _, rule := range insightRules {
		if s, ok := rule(e); ok {
			out = append(out, s)
		}
	}
	return out
}

func revenueGrowthInsight(e *Engine) (string, bool) {
	g := e.FinalRevenueGrowth()
	if !g.Available {
		return "", false
	}
	return fmt.Sprintf("Excellent revenue growth of %s over the year", money.Percent(g.Value)), true
}

func profitabilityInsight(e *Engine) (string, bool) {
	avgProfit := e.AverageProfit()
	if avgProfit <= 0 {
		return "Loss-making business - immediate action needed", true
	}
	margin := safeDiv(avgProfit, e.AverageSales()) * 100
	return fmt.Sprintf("Strong profitability with %s average profit margin", money.Percent(margin)), true
}

func retentionInsight(e *Engine) (string, bool) {
	st, err := e.Retention()
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s - %s retention rate", retentionVerdict(st.Current), money.Percent(st.Current)), true
}

func retentionVerdict(rate float64) string {
	switch {
	case rate >= 90:
		return "Excellent customer loyalty"
	case rate >= 75:
		return "Healthy customer retention"
	default:
		return "Customer retention needs attention"
	}
}

func bestQuarterInsight(e *Engine) (string, bool) {
	sales, ok := e.labelledQuarterSales()
	if !ok {
		return "", false
	}
	var best model.Quarter
	for _, q := range model.AllQuarters {
		v, seen := sales[q]
		if !seen {
			continue
		}
		if best == "" || v > sales[best] {
			best = q
		}
	}
	if best == "" {
		return "", false
	}
	return fmt.Sprintf("%s was the strongest quarter with %s in sales", best, e.money.Amount(sales[best])), true
}

func acquisitionCostInsight(e *Engine) (string, bool) {
	st, err := e.Marketing()
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("Customer acquisition cost: %s per new customer", e.money.Float(st.CostPerAcquisition)), true
}

func salesGrowthInsight(e *Engine) (string, bool) {
	g := e.SalesGrowth()
	switch {
	case g > 50:
		return "Exceptional business growth - consider scaling operations", true
	case g > 20:
		return "Strong business growth trajectory", true
	}
	return "", false
}
