package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/source"
)

func sampleEngine() *Engine {
	return New(source.SampleDataset(), money.Default())
}

func newEngine(t *testing.T, recs []model.Record, cols ...model.Column) *Engine {
	t.Helper()
	ds, err := model.NewDataset("test", recs, cols...)
	require.NoError(t, err)
	return New(ds, money.Default())
}

func TestMonthlySummary_Sample(t *testing.T) {
	s := sampleEngine().MonthlySummary()

	assert.Equal(t, 12, s.Months)
	assert.Equal(t, int64(7680000), s.TotalSales)
	assert.Equal(t, int64(4860000), s.TotalExpenses)
	assert.Equal(t, s.TotalSales-s.TotalExpenses, s.TotalProfit)
	assert.InDelta(t, 3113.0/12, s.AvgCustomers, 1e-9)
	assert.Equal(t, "Dec-23", s.BestMonth.Month)
	assert.Equal(t, "Jan-23", s.WorstMonth.Month)
}

func TestMonthlySummary_TiesPickEarliest(t *testing.T) {
	e := newEngine(t, []model.Record{
		{Month: "Jan-23", Sales: 100, Expenses: 10, Customers: 1},
		{Month: "Feb-23", Sales: 300, Expenses: 10, Customers: 1},
		{Month: "Mar-23", Sales: 300, Expenses: 10, Customers: 1},
		{Month: "Apr-23", Sales: 100, Expenses: 10, Customers: 1},
	})
	s := e.MonthlySummary()
	assert.Equal(t, "Feb-23", s.BestMonth.Month)
	assert.Equal(t, "Jan-23", s.WorstMonth.Month)
}

func TestMonthlySummary_Empty(t *testing.T) {
	e := New(nil, money.Default())
	assert.Equal(t, model.Summary{}, e.MonthlySummary())
	assert.Zero(t, e.AverageSales())
	assert.Empty(t, e.BusinessInsights())
}

func TestMonth(t *testing.T) {
	e := sampleEngine()

	r, err := e.Month("MAY")
	require.NoError(t, err)
	assert.Equal(t, "May-23", r.Month)
	assert.Equal(t, int64(235000), r.Profit)

	_, err = e.Month("xyz")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = e.Month("  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarginWithZeroSales(t *testing.T) {
	e := newEngine(t, []model.Record{
		{Month: "Jan-23", Sales: 0, Expenses: 500, Customers: 2},
	})
	r, err := e.Month("jan")
	require.NoError(t, err)
	assert.Equal(t, int64(-500), r.Profit)
	assert.Zero(t, r.Margin)

	q, err := e.QuarterlySummary("q1")
	require.NoError(t, err)
	assert.Zero(t, q.AvgMargin)
}

func TestQuarterlySummary(t *testing.T) {
	e := sampleEngine()

	q1, err := e.QuarterlySummary(" q1 ")
	require.NoError(t, err)
	assert.Equal(t, model.Q1, q1.Quarter)
	assert.Equal(t, 3, q1.Months)
	assert.Equal(t, int64(1455000), q1.TotalSales)
	assert.Equal(t, int64(1000000), q1.TotalExpenses)
	assert.Equal(t, int64(455000), q1.TotalProfit)
	assert.Equal(t, int64(195), q1.AvgCustomers)
	assert.InDelta(t, 31.16, q1.AvgMargin, 1e-9)

	_, err = e.QuarterlySummary("Q5")
	assert.ErrorIs(t, err, ErrInvalidQuarter)
}

func TestQuarterlySummary_PartitionsYear(t *testing.T) {
	e := sampleEngine()
	var sales, profit int64
	for _, q := range []string{"Q1", "Q2", "Q3", "Q4"} {
		agg, err := e.QuarterlySummary(q)
		require.NoError(t, err)
		sales += agg.TotalSales
		profit += agg.TotalProfit
	}
	s := e.MonthlySummary()
	assert.Equal(t, s.TotalSales, sales)
	assert.Equal(t, s.TotalProfit, profit)
}

func TestQuarterlySummary_IgnoresQuarterLabels(t *testing.T) {
	// Quarter labels disagree with the calendar month; the month wins.
	e := newEngine(t, []model.Record{
		{Month: "Jan-23", Quarter: model.Q3, Sales: 100, Expenses: 50, Customers: 4},
		{Month: "Jul-23", Quarter: model.Q1, Sales: 900, Expenses: 50, Customers: 4},
	}, model.ColQuarter)

	q1, err := e.QuarterlySummary("Q1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), q1.TotalSales)

	q2, err := e.QuarterlySummary("Q2")
	require.NoError(t, err)
	assert.Zero(t, q2.Months)
}

func TestAllQuarters(t *testing.T) {
	cmp := sampleEngine().AllQuarters()
	require.Len(t, cmp.Quarters, 4)
	assert.Equal(t, model.Q4, cmp.Best)
	assert.Equal(t, int64(2335000), cmp.Quarters[3].TotalSales)

	empty := New(nil, money.Default()).AllQuarters()
	assert.Equal(t, model.Quarter(""), empty.Best)
}

func TestGrowthAndRetention(t *testing.T) {
	e := sampleEngine()

	g := e.FinalRevenueGrowth()
	assert.True(t, g.Available)
	assert.InDelta(t, 88.9, g.Value, 1e-9)

	avg := e.AverageMonthlyGrowth()
	assert.True(t, avg.Available)
	assert.InDelta(t, 88.9/11, avg.Value, 1e-9)

	assert.InDelta(t, 400000.0/450000*100, e.SalesGrowth(), 1e-9)

	st, err := e.Retention()
	require.NoError(t, err)
	assert.InDelta(t, 95.5, st.Current, 1e-9)
	assert.InDelta(t, 1087.9/12, st.Average, 1e-9)
	assert.InDelta(t, 10.0, st.Improvement, 1e-9)

	mk, err := e.Marketing()
	require.NoError(t, err)
	assert.Equal(t, int64(514000), mk.TotalSpend)
	assert.Equal(t, int64(334), mk.NewCustomers)
	assert.InDelta(t, 514000.0/334, mk.CostPerAcquisition, 1e-9)
}

func TestOptionalMetricsUnavailable(t *testing.T) {
	e := newEngine(t, []model.Record{
		{Month: "Jan-23", Sales: 100, Expenses: 50, Customers: 4},
		{Month: "Feb-23", Sales: 200, Expenses: 50, Customers: 4},
	})

	assert.False(t, e.FinalRevenueGrowth().Available)
	assert.False(t, e.AverageMonthlyGrowth().Available)
	_, err := e.Retention()
	assert.ErrorIs(t, err, ErrMissingColumn)
	_, err = e.Marketing()
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestMarketing_NoNewCustomers(t *testing.T) {
	e := newEngine(t, []model.Record{
		{Month: "Jan-23", Sales: 100, Expenses: 50, Customers: 4, MarketingSpend: 900},
	}, model.ColMarketingSpend, model.ColNewCustomers)

	mk, err := e.Marketing()
	require.NoError(t, err)
	assert.Zero(t, mk.CostPerAcquisition)
}
