package model

// Summary holds the all-time aggregate across every record.
type Summary struct {
	Months        int     `json:"months"`
	TotalSales    int64   `json:"total_sales"`
	TotalExpenses int64   `json:"total_expenses"`
	TotalProfit   int64   `json:"total_profit"`
	AvgCustomers  float64 `json:"avg_customers"`
	BestMonth     Record  `json:"best_month"`
	WorstMonth    Record  `json:"worst_month"`
}

// QuarterAggregate holds totals and averages for one quarter.
type QuarterAggregate struct {
	Quarter       Quarter `json:"quarter"`
	Months        int     `json:"months"`
	TotalSales    int64   `json:"total_sales"`
	TotalExpenses int64   `json:"total_expenses"`
	TotalProfit   int64   `json:"total_profit"`
	AvgCustomers  int64   `json:"avg_customers"`
	AvgMargin     float64 `json:"avg_profit_margin"`
}

// QuarterComparison holds all four quarters and the best one by sales.
type QuarterComparison struct {
	Quarters []QuarterAggregate `json:"quarters"`
	Best     Quarter            `json:"best"`
}

// RetentionStats summarizes the customer retention column.
type RetentionStats struct {
	Current     float64 `json:"current"`
	Average     float64 `json:"average"`
	Improvement float64 `json:"improvement"`
}

// MarketingStats summarizes marketing spend against customer acquisition.
type MarketingStats struct {
	TotalSpend         int64   `json:"total_spend"`
	NewCustomers       int64   `json:"new_customers"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
}
