package pipeline

import "errors"

var (
	// ErrNotFound means a month filter matched no record.
	ErrNotFound = errors.New("no matching month")
	// ErrInvalidQuarter means a quarter token was not one of Q1..Q4.
	ErrInvalidQuarter = errors.New("invalid quarter")
	// ErrMissingColumn means a metric needs an optional column the dataset lacks.
	ErrMissingColumn = errors.New("column not available")
)
