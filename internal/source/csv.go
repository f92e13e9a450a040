package source

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// readDelimited reads a comma, semicolon or tab separated file. The
// delimiter is taken from the extension for .tsv, otherwise sniffed from
// the header line.
func readDelimited(path string) ([]string, [][]string, error) {
	if err := exists(path); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(path, data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, &InvalidDatasetError{Source: path, Reason: "empty file"}
	}
	if err != nil {
		return nil, nil, &InvalidDatasetError{Source: path, Reason: "unreadable header", Err: err}
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &InvalidDatasetError{Source: path, Reason: "malformed csv", Err: err}
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func sniffDelimiter(path string, data []byte) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return ','
	}
	line := sc.Text()
	best, bestN := ',', strings.Count(line, ",")
	for _, d := range []rune{'\t', ';'} {
		if n := strings.Count(line, string(d)); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}
