package amctools

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// WriteRosterCSV writes the normalized roster as the comma-separated,
// latin1-encoded student list AMC imports. All columns are included; the
// code column is written from its coerced value, so invalid codes become
// empty cells.
func WriteRosterCSV(w io.Writer, r *Roster) error {
	cw := csv.NewWriter(charmap.ISO8859_1.NewEncoder().Writer(w))
	if err := cw.Write(r.Columns); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := append([]string(nil), row.Cells...)
		if r.CodeCol >= 0 && r.CodeCol < len(rec) {
			rec[r.CodeCol] = row.Code.String()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
