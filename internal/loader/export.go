package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CanonicalHeader column names written by WriteCSV, matching DefaultFields
var CanonicalHeader = []string{"gov", "area", "cutomer", "address", "tel", "Latitude", "Longitude"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Records extracts every usable row; nameless rows are dropped
func Records(rows []Row, fields Fields) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		if rec, ok := ExtractRecord(row, fields); ok {
			out = append(out, rec)
		}
	}
	return out
}

// WriteCSV writes records under CanonicalHeader. Missing coordinates are left
// blank. With bom set the output starts with a UTF-8 byte order mark, as
// spreadsheet exports usually do.
func WriteCSV(w io.Writer, records []Record, bom bool) error {
	if bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write bom: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CanonicalHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		lat, lng := "", ""
		if rec.Coordinates != nil {
			lat = strconv.FormatFloat(rec.Coordinates.Lat, 'f', -1, 64)
			lng = strconv.FormatFloat(rec.Coordinates.Lng, 'f', -1, 64)
		}
		line := []string{rec.City, rec.Region, rec.Name, rec.Address, rec.Phone, lat, lng}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
