package amctools

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// GradeColumns are the columns an AMC grade export must provide.
var GradeColumns = []string{CodeColumn, "Nom", "Prénom", NoteColumn}

// GradeTable is a validated AMC grade export. Code and Note are coerced per
// row; everything else stays text.
type GradeTable struct {
	Columns []string
	CodeCol int
	NoteCol int
	Rows    []GradeRow
}

type GradeRow struct {
	Code  Number
	Note  Number
	Cells []string
}

// ParseGrades reads an AMC grade export: ';'-separated, latin1-encoded,
// header on the first line. Missing required columns are fatal; unparsable
// codes and scores are coerced to missing values for the anomaly checks.
func ParseGrades(r io.Reader) (*GradeTable, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grade file: %w", err)
	}
	if len(records) == 0 {
		return nil, &MissingColumnsError{Columns: GradeColumns}
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	var missing []string
	for _, name := range GradeColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	codeCol, noteCol := index[CodeColumn], index[NoteColumn]
	rows := make([]GradeRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		var code, note Number
		if codeCol < len(rec) {
			code = ParseNumber(rec[codeCol])
		}
		if noteCol < len(rec) {
			note = ParseNumber(rec[noteCol])
		}
		rows = append(rows, GradeRow{Code: code, Note: note, Cells: append([]string(nil), rec...)})
	}

	return &GradeTable{Columns: header, CodeCol: codeCol, NoteCol: noteCol, Rows: rows}, nil
}

type AnomalyKind int

const (
	AnomalyMissingNotes AnomalyKind = iota
	AnomalyNotesOutOfRange
	AnomalyMissingCodes
	AnomalyAbsentStudents
)

// Anomaly is an advisory data-quality finding. The out-of-range check is a
// flag without a count; the other kinds carry one.
type Anomaly struct {
	Kind  AnomalyKind
	Count int
}

func (a Anomaly) String() string {
	switch a.Kind {
	case AnomalyMissingNotes:
		return fmt.Sprintf("%d missing scores", a.Count)
	case AnomalyNotesOutOfRange:
		return "scores outside the [0-20] range"
	case AnomalyMissingCodes:
		return fmt.Sprintf("%d invalid student codes", a.Count)
	case AnomalyAbsentStudents:
		return fmt.Sprintf("%d roster students missing from the grade file", a.Count)
	}
	return fmt.Sprintf("unknown anomaly %d", int(a.Kind))
}

// Anomalies runs every advisory check and reports all findings together.
// None of them blocks the merge. roster may be nil, in which case the
// roster/grade-file cross-check is skipped.
func (g *GradeTable) Anomalies(roster *Roster) []Anomaly {
	var out []Anomaly

	missingNotes, missingCodes := 0, 0
	outOfRange := false
	for _, row := range g.Rows {
		if !row.Note.Valid {
			missingNotes++
		} else if row.Note.Value < 0 || row.Note.Value > 20 {
			outOfRange = true
		}
		if !row.Code.Valid {
			missingCodes++
		}
	}
	if missingNotes > 0 {
		out = append(out, Anomaly{Kind: AnomalyMissingNotes, Count: missingNotes})
	}
	if outOfRange {
		out = append(out, Anomaly{Kind: AnomalyNotesOutOfRange})
	}
	if missingCodes > 0 {
		out = append(out, Anomaly{Kind: AnomalyMissingCodes, Count: missingCodes})
	}

	if roster != nil {
		graded := make(map[float64]bool, len(g.Rows))
		for _, row := range g.Rows {
			if row.Code.Valid {
				graded[row.Code.Value] = true
			}
		}
		absent := make(map[float64]bool)
		for _, row := range roster.Rows {
			if row.Code.Valid && !graded[row.Code.Value] {
				absent[row.Code.Value] = true
			}
		}
		if len(absent) > 0 {
			out = append(out, Anomaly{Kind: AnomalyAbsentStudents, Count: len(absent)})
		}
	}

	return out
}
