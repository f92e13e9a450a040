// Package store reads business tables from SQLite database files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strconv"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "business_data"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DB is a read-only handle on a SQLite database file.
type DB struct {
	db *sql.DB
}

// Open opens an existing database read-only. It never creates the file.
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro&_pragma=query_only(true)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Tables lists user tables in name order.
func (d *DB) Tables() ([]string, error) {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// ReadTable returns the column names and every row of table, rendered as
// strings in rowid order. NULL cells become empty strings.
func (d *DB) ReadTable(table string) (header []string, rows [][]string, err error) {
	if !identRe.MatchString(table) {
		return nil, nil, fmt.Errorf("invalid table name %q", table)
	}

	rs, err := d.db.Query(`SELECT * FROM "` + table + `" ORDER BY rowid`)
	if err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	defer func() { _ = rs.Close() }()

	header, err = rs.Columns()
	if err != nil {
		return nil, nil, err
	}

	for rs.Next() {
		vals := make([]any, len(header))
		ptrs := make([]any, len(header))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	return header, rows, rs.Err()
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []byte:
		return string(x)
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(x)
	}
}
