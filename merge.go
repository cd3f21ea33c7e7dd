package amctools

// Merged is the roster with the scores joined on, ready to be written back
// into the original workbook layout.
type Merged struct {
	Columns []string
	CodeCol int
	NoteCol int
	Rows    []MergedRow
}

type MergedRow struct {
	Code  Number
	Note  Number
	Cells []string
}

// Merge left-joins the roster with the grade file on the student code. Every
// roster row is preserved; students without a matching grade row keep a
// missing Note. Anomalies reported earlier never block the join.
func Merge(s *Session, g *GradeTable) *Merged {
	notes := make(map[float64]Number, len(g.Rows))
	for _, row := range g.Rows {
		if !row.Code.Valid {
			continue
		}
		if _, ok := notes[row.Code.Value]; !ok {
			notes[row.Code.Value] = row.Note
		}
	}

	roster := s.Roster
	columns := append(append([]string(nil), roster.Columns...), NoteColumn)
	rows := make([]MergedRow, 0, len(roster.Rows))
	for _, row := range roster.Rows {
		var note Number
		if row.Code.Valid {
			note = notes[row.Code.Value]
		}
		rows = append(rows, MergedRow{Code: row.Code, Note: note, Cells: row.Cells})
	}

	return &Merged{
		Columns: columns,
		CodeCol: roster.CodeCol,
		NoteCol: len(columns) - 1,
		Rows:    rows,
	}
}
