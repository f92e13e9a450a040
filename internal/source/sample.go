package source

import "github.com/theirongolddev/bizlens/internal/model"

// SampleSource labels the built-in dataset.
const SampleSource = "sample"

// SampleUnit is the currency of the built-in dataset.
const SampleUnit = "INR"

// SampleDataset returns a fixed twelve-month dataset for Jan-23 through
// Dec-23 carrying every optional column. It is deterministic so answers
// over it are reproducible.
func SampleDataset() *model.Dataset {
	months := []string{"Jan-23", "Feb-23", "Mar-23", "Apr-23", "May-23", "Jun-23", "Jul-23", "Aug-23", "Sep-23", "Oct-23", "Nov-23", "Dec-23"}
	sales := []int64{450000, 485000, 520000, 580000, 625000, 595000, 680000, 715000, 695000, 720000, 765000, 850000}
	expenses := []int64{320000, 335000, 345000, 375000, 390000, 385000, 420000, 435000, 425000, 445000, 465000, 520000}
	customers := []int64{180, 195, 210, 235, 255, 248, 275, 290, 285, 295, 310, 335}
	newCustomers := []int64{25, 20, 18, 28, 25, 22, 30, 28, 26, 32, 35, 45}
	inventory := []int64{85000, 88000, 92000, 95000, 98000, 96000, 102000, 105000, 103000, 108000, 112000, 125000}
	marketing := []int64{25000, 28000, 32000, 38000, 42000, 40000, 45000, 48000, 46000, 50000, 55000, 65000}
	employee := []int64{120000, 125000, 128000, 132000, 135000, 133000, 140000, 143000, 141000, 145000, 148000, 155000}
	operational := []int64{95000, 98000, 100000, 105000, 108000, 106000, 115000, 118000, 116000, 120000, 125000, 140000}
	growth := []float64{0.0, 7.8, 15.6, 28.9, 38.9, 32.2, 51.1, 58.9, 54.4, 60.0, 70.0, 88.9}
	retention := []float64{85.5, 87.2, 88.1, 89.4, 90.2, 89.5, 91.3, 92.1, 91.8, 93.2, 94.1, 95.5}

	records := make([]model.Record, len(months))
	for i := range months {
		records[i] = model.Record{
			Month:           months[i],
			Quarter:         model.AllQuarters[i/3],
			Sales:           sales[i],
			Expenses:        expenses[i],
			Customers:       customers[i],
			NewCustomers:    newCustomers[i],
			InventoryCost:   inventory[i],
			MarketingSpend:  marketing[i],
			EmployeeCost:    employee[i],
			OperationalCost: operational[i],
			RevenueGrowth:   growth[i],
			Retention:       retention[i],
		}
	}

	ds, err := model.NewDataset(SampleSource, records,
		model.ColQuarter, model.ColNewCustomers, model.ColInventoryCost, model.ColMarketingSpend,
		model.ColEmployeeCost, model.ColOperationalCost, model.ColRevenueGrowth, model.ColRetention)
	if err != nil {
		panic("source: invalid sample dataset: " + err.Error())
	}
	ds.Synthetic = true
	return ds
}
