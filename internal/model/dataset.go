package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDuplicateMonth is returned by NewDataset when two records share a month label.
var ErrDuplicateMonth = errors.New("duplicate month label")

// ErrNegativeValue is returned by NewDataset for negative sales, expenses or customers.
var ErrNegativeValue = errors.New("negative value")

// Dataset is the chronologically ordered set of records for a reporting
// period. It is read-only once constructed.
type Dataset struct {
	Source    string
	Synthetic bool

	records []Record
	columns map[Column]bool
}

// NewDataset validates records, computes their derived fields and returns
// the dataset. cols lists the optional columns the source provided.
func NewDataset(source string, records []Record, cols ...Column) (*Dataset, error) {
	seen := make(map[string]int, len(records))
	out := make([]Record, len(records))
	for i, r := range records {
		key := strings.ToLower(strings.TrimSpace(r.Month))
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateMonth, r.Month, prev+1, i+1)
		}
		seen[key] = i
		if r.Sales < 0 || r.Expenses < 0 || r.Customers < 0 {
			return nil, fmt.Errorf("%w in %q", ErrNegativeValue, r.Month)
		}
		r.derive()
		out[i] = r
	}

	columns := make(map[Column]bool, len(cols))
	for _, c := range cols {
		columns[c] = true
	}
	return &Dataset{Source: source, records: out, columns: columns}, nil
}

// Has reports whether the optional column was present in the source.
func (d *Dataset) Has(c Column) bool {
	if d == nil {
		return false
	}
	return d.columns[c]
}

// Columns returns the optional columns present, in declaration order.
func (d *Dataset) Columns() []Column {
	var cols []Column
	for c := ColQuarter; c <= ColRetention; c++ {
		if d.Has(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of the records in chronological order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// At returns the i-th record.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}
