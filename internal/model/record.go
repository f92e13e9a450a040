// Package model defines the business dataset and the result types computed from it.
package model

// Column identifies an optional dataset column.
type Column int

// Optional columns. Month, Sales, Expenses and Customers are always present.
const (
	ColQuarter Column = iota
	ColNewCustomers
	ColInventoryCost
	ColMarketingSpend
	ColEmployeeCost
	ColOperationalCost
	ColRevenueGrowth
	ColRetention
)

var columnNames = map[Column]string{
	ColQuarter:         "Quarter",
	ColNewCustomers:    "New Customers",
	ColInventoryCost:   "Inventory Cost",
	ColMarketingSpend:  "Marketing Spend",
	ColEmployeeCost:    "Employee Cost",
	ColOperationalCost: "Operational Cost",
	ColRevenueGrowth:   "Revenue Growth",
	ColRetention:       "Customer Retention",
}

func (c Column) String() string {
	if n, ok := columnNames[c]; ok {
		return n
	}
	return "unknown"
}

// Record is one reporting month of business metrics.
type Record struct {
	Month   string  `json:"month"`
	Quarter Quarter `json:"quarter,omitempty"`

	Sales     int64 `json:"sales"`
	Expenses  int64 `json:"expenses"`
	Customers int64 `json:"customers"`

	// Optional columns; zero when the dataset lacks the column (see Dataset.Has).
	NewCustomers    int64   `json:"new_customers,omitempty"`
	InventoryCost   int64   `json:"inventory_cost,omitempty"`
	MarketingSpend  int64   `json:"marketing_spend,omitempty"`
	EmployeeCost    int64   `json:"employee_cost,omitempty"`
	OperationalCost int64   `json:"operational_cost,omitempty"`
	RevenueGrowth   float64 `json:"revenue_growth,omitempty"`
	Retention       float64 `json:"retention,omitempty"`

	// Derived once by NewDataset.
	Profit int64   `json:"profit"`
	Margin float64 `json:"margin"`
}

// derive fills Profit and Margin. Margin is 0 when there were no sales.
func (r *Record) derive() {
	r.Profit = r.Sales - r.Expenses
	r.Margin = 0
	if r.Sales != 0 {
		r.Margin = float64(r.Profit) / float64(r.Sales) * 100
	}
}

// Measure is an optional metric value. Available is false when the
// columns it depends on are missing from the dataset.
type Measure struct {
	Value     float64
	Available bool
}

// Known wraps v as an available Measure.
func Known(v float64) Measure { return Measure{Value: v, Available: true} }

// Unavailable is the Measure reported for metrics over missing columns.
var Unavailable = Measure{}
