package source

import (
	"github.com/theirongolddev/bizlens/internal/store"
)

// readSQLite reads a business table from a SQLite database.
func readSQLite(path, table string) ([]string, [][]string, error) {
	if err := exists(path); err != nil {
		return nil, nil, err
	}
	if table == "" {
		table = store.DefaultTable
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = db.Close() }()

	header, rows, err := db.ReadTable(table)
	if err != nil {
		return nil, nil, &InvalidDatasetError{Source: path, Reason: "unreadable table " + table, Err: err}
	}
	return header, rows, nil
}
