package source

import "fmt"

// InvalidDatasetError reports a readable source that cannot form a dataset.
// Row is 1-based over data rows, 0 when the problem is in the header.
type InvalidDatasetError struct {
	Source string
	Row    int
	Column string
	Reason string
	Err    error
}

func (e *InvalidDatasetError) Error() string {
	loc := e.Source
	if e.Row > 0 {
		loc = fmt.Sprintf("%s row %d", loc, e.Row)
	}
	if e.Column != "" {
		loc = fmt.Sprintf("%s column %q", loc, e.Column)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid dataset %s: %s: %v", loc, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid dataset %s: %s", loc, e.Reason)
}

func (e *InvalidDatasetError) Unwrap() error { return e.Err }
