package retrieval

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
)

// Document is the searchable text of one month.
type Document struct {
	Month string
	Text  string
}

// Documents renders one document per record. Optional columns appear only
// when the dataset carries them.
func Documents(ds *model.Dataset, f money.Formatter) []Document {
	docs := make([]Document, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		var b strings.Builder
		fmt.Fprintf(&b, "Month: %s.", r.Month)
		if ds.Has(model.ColQuarter) && r.Quarter != "" {
			fmt.Fprintf(&b, " Quarter: %s.", r.Quarter)
		}
		fmt.Fprintf(&b, " Sales %s, expenses %s, profit %s, profit margin %s.",
			f.Amount(r.Sales), f.Amount(r.Expenses), f.Amount(r.Profit), money.Percent(r.Margin))
		fmt.Fprintf(&b, " Customers %d.", r.Customers)
		if ds.Has(model.ColNewCustomers) {
			fmt.Fprintf(&b, " New customers %d.", r.NewCustomers)
		}
		costs := []struct {
			col   model.Column
			value int64
		}{
			{model.ColInventoryCost, r.InventoryCost},
			{model.ColMarketingSpend, r.MarketingSpend},
			{model.ColEmployeeCost, r.EmployeeCost},
			{model.ColOperationalCost, r.OperationalCost},
		}
		for _, c := range costs {
			if ds.Has(c.col) {
				fmt.Fprintf(&b, " %s %s.", c.col, f.Amount(c.value))
			}
		}
		if ds.Has(model.ColRevenueGrowth) {
			fmt.Fprintf(&b, " Revenue growth %s.", money.Percent(r.RevenueGrowth))
		}
		if ds.Has(model.ColRetention) {
			fmt.Fprintf(&b, " Customer retention %s.", money.Percent(r.Retention))
		}
		docs = append(docs, Document{Month: r.Month, Text: b.String()})
	}
	return docs
}
