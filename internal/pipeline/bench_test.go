package pipeline

import (
	"fmt"
	"testing"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
)

// yearsDataset builds n years of synthetic monthly records.
func yearsDataset(b *testing.B, years int) *model.Dataset {
	b.Helper()
	var recs []model.Record
	for y := 0; y < years; y++ {
		for m, abbr := range model.MonthAbbrevs {
			recs = append(recs, model.Record{
				Month:          fmt.Sprintf("%s-%02d", abbr, y),
				Sales:          int64(400000 + 1000*(y*12+m)),
				Expenses:       int64(300000 + 700*(y*12+m)),
				Customers:      int64(150 + m),
				InventoryCost:  int64(80000 + 100*m),
				MarketingSpend: int64(20000 + 500*m),
			})
		}
	}
	ds, err := model.NewDataset("bench", recs, model.ColInventoryCost, model.ColMarketingSpend)
	if err != nil {
		b.Fatal(err)
	}
	return ds
}

func BenchmarkBusinessInsights(b *testing.B) {
	e := New(yearsDataset(b, 50), money.Default())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.BusinessInsights()
	}
}

func BenchmarkAllQuarters(b *testing.B) {
	e := New(yearsDataset(b, 50), money.Default())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.AllQuarters()
	}
}

func BenchmarkCostOptimizationSuggestions(b *testing.B) {
	e := New(yearsDataset(b, 50), money.Default())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.CostOptimizationSuggestions("dec-49"); err != nil {
			b.Fatal(err)
		}
	}
}
