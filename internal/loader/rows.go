package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row one data line keyed by header name
type Row struct {
	values map[string]string
	lower  map[string]string
}

// NewRow pairs header names with cells. Missing trailing cells are absent and
// extra cells are ignored. The first occurrence of a repeated header wins on
// exact lookup; on case-insensitive lookup the last one wins.
func NewRow(headers, cells []string) Row {
	row := Row{
		values: make(map[string]string, len(headers)),
		lower:  make(map[string]string, len(headers)),
	}
	for i, h := range headers {
		if i >= len(cells) {
			break
		}
		if _, dup := row.values[h]; !dup {
			row.values[h] = cells[i]
		}
		row.lower[strings.ToLower(h)] = cells[i]
	}
	return row
}

// Get returns the trimmed value of a field: exact header first, then a
// case-insensitive match. An empty result means the field is absent.
func (r Row) Get(key string) string {
	if v, ok := r.values[key]; ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	if v, ok := r.lower[strings.ToLower(key)]; ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// ParseCSV reads a header row followed by data rows. Empty input gives no rows
// and no error. A quote inside an unquoted field is kept as text; read errors
// are an ErrParse.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrParse, err)
	}
	header = cleanHeader(header)

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if isBlank(rec) {
			continue
		}
		rows = append(rows, NewRow(header, rec))
	}
	return rows, nil
}

// ParseXLSX reads the first sheet of a workbook with the same row semantics as
// ParseCSV; leading empty rows are skipped before the header.
func ParseXLSX(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read workbook: %v", ErrFetch, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrParse, sheets[0], err)
	}

	var header []string
	var rows []Row
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if header == nil {
			header = cleanHeader(rec)
			continue
		}
		rows = append(rows, NewRow(header, rec))
	}
	return rows, nil
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if c != "" {
			return false
		}
	}
	return true
}
