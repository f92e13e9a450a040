package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads the named sheet, or the first one, of an Excel file.
// The first non-empty row is the header.
func readWorkbook(path, sheet string) ([]string, [][]string, error) {
	if err := exists(path); err != nil {
		return nil, nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil, &InvalidDatasetError{Source: path, Reason: fmt.Sprintf("no sheet named %q", sheet)}
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, &InvalidDatasetError{Source: path, Reason: "unreadable sheet", Err: err}
	}
	for i, row := range all {
		if !blankRow(row) {
			return row, all[i+1:], nil
		}
	}
	return nil, nil, &InvalidDatasetError{Source: path, Reason: "empty sheet"}
}
