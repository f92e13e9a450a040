// Package source loads a business dataset from a tabular file: CSV, TSV,
// Excel workbooks or SQLite databases.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/bizlens/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// Options tunes the loaders that need more than a path.
type Options struct {
	Sheet string // xlsx worksheet; the first sheet when empty
	Table string // sqlite table; store.DefaultTable when empty
}

// Result is a loaded dataset. Fallback is set when the source could not be
// read and the sample dataset was substituted; Reason then says why.
// Unit is the unit of the sales header, e.g. "INR" for "Sales (INR)".
type Result struct {
	Dataset  *model.Dataset
	Unit     string
	Fallback bool
	Reason   error
}

// Load reads the dataset at path. A missing or unreadable file yields the
// sample dataset with Fallback set. A readable file with missing mandatory
// columns or malformed mandatory cells is an *InvalidDatasetError.
func Load(path string, opts Options) (*Result, error) {
	if strings.TrimSpace(path) == "" {
		return fallback(errors.New("no data file configured")), nil
	}

	var (
		header []string
		rows   [][]string
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".tsv", ".txt":
		header, rows, err = readDelimited(path)
	case ".xlsx", ".xlsm":
		header, rows, err = readWorkbook(path, opts.Sheet)
	case ".db", ".sqlite", ".sqlite3":
		header, rows, err = readSQLite(path, opts.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		var inv *InvalidDatasetError
		if errors.As(err, &inv) {
			return nil, err
		}
		return fallback(fmt.Errorf("reading %s: %w", path, err)), nil
	}

	ds, err := buildDataset(path, header, rows)
	if err != nil {
		return nil, err
	}
	return &Result{Dataset: ds, Unit: salesUnit(header)}, nil
}

func fallback(reason error) *Result {
	return &Result{Dataset: SampleDataset(), Unit: SampleUnit, Fallback: true, Reason: reason}
}

// exists reports whether path names a readable regular file.
func exists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
