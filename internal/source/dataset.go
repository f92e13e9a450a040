package source

import (
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
)

// buildDataset maps raw string rows onto records. Unknown columns (Year,
// Profit, notes) are ignored; profit is always derived. Blank optional
// cells read as zero, blank rows are skipped.
func buildDataset(src string, header []string, rows [][]string) (*model.Dataset, error) {
	cols := make([]binding, len(header))
	idx := map[field]int{}
	present := map[model.Column]bool{}
	for i, h := range header {
		b := bindHeader(h)
		cols[i] = b
		switch b.field {
		case fieldIgnored:
		case fieldOptional:
			present[b.column] = true
		default:
			if _, dup := idx[b.field]; !dup {
				idx[b.field] = i
			} else {
				cols[i] = binding{}
			}
		}
	}

	for _, req := range []struct {
		f    field
		name string
	}{{fieldMonth, "Month"}, {fieldSales, "Sales"}, {fieldExpenses, "Expenses"}, {fieldCustomers, "Customers"}} {
		if _, ok := idx[req.f]; !ok {
			return nil, &InvalidDatasetError{Source: src, Column: req.name, Reason: "missing mandatory column"}
		}
	}

	var records []model.Record
	for n, row := range rows {
		if blankRow(row) {
			continue
		}
		rowNum := n + 1
		var r model.Record
		for i, b := range cols {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			if err := assign(&r, b, cell); err != nil {
				return nil, &InvalidDatasetError{Source: src, Row: rowNum, Column: header[i], Reason: "malformed value", Err: err}
			}
		}
		if r.Month == "" {
			return nil, &InvalidDatasetError{Source: src, Row: rowNum, Column: header[idx[fieldMonth]], Reason: "empty month label"}
		}
		records = append(records, r)
	}

	var optional []model.Column
	for c := model.ColQuarter; c <= model.ColRetention; c++ {
		if present[c] {
			optional = append(optional, c)
		}
	}

	ds, err := model.NewDataset(src, records, optional...)
	if err != nil {
		return nil, &InvalidDatasetError{Source: src, Reason: "inconsistent records", Err: err}
	}
	return ds, nil
}

func assign(r *model.Record, b binding, cell string) error {
	var err error
	switch b.field {
	case fieldMonth:
		r.Month = cell
	case fieldSales:
		r.Sales, err = parseAmount(cell)
	case fieldExpenses:
		r.Expenses, err = parseAmount(cell)
	case fieldCustomers:
		r.Customers, err = parseAmount(cell)
	case fieldOptional:
		err = assignOptional(r, b.column, cell)
	}
	return err
}

func assignOptional(r *model.Record, c model.Column, cell string) error {
	if cell == "" {
		return nil
	}
	var err error
	switch c {
	case model.ColQuarter:
		// Unrecognized labels leave the record unlabelled.
		r.Quarter, _ = model.ParseQuarter(cell)
	case model.ColNewCustomers:
		r.NewCustomers, err = parseAmount(cell)
	case model.ColInventoryCost:
		r.InventoryCost, err = parseAmount(cell)
	case model.ColMarketingSpend:
		r.MarketingSpend, err = parseAmount(cell)
	case model.ColEmployeeCost:
		r.EmployeeCost, err = parseAmount(cell)
	case model.ColOperationalCost:
		r.OperationalCost, err = parseAmount(cell)
	case model.ColRevenueGrowth:
		r.RevenueGrowth, err = parseNumber(cell)
	case model.ColRetention:
		r.Retention, err = parseNumber(cell)
	}
	return err
}

// parseNumber accepts plain numbers with optional currency symbols,
// thousands commas and a trailing percent sign.
func parseNumber(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSuffix(raw, "%")
	raw = strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\u00a0', '₹', '$', '€', '£':
			return -1
		}
		return r
	}, raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func parseAmount(s string) (int64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(v)), nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
