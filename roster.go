package amctools

// Column labels fixed by the AMC workflow.
const (
	CodeColumn = "A:Code"
	NoteColumn = "Note"
)

// HeaderMarkers identify the roster header row inside the workbook. The
// exported student lists carry an arbitrary preamble (school name, exam
// session, blank rows) above the real header.
var HeaderMarkers = []string{"Code", "Nom", "Prénom"}

// Roster is the normalized student table extracted from the workbook. Cells
// keep the original text of every column; the student code is additionally
// coerced to a Number so invalid codes stay visible instead of being
// dropped.
type Roster struct {
	Columns []string
	CodeCol int
	Rows    []RosterRow
}

type RosterRow struct {
	Code  Number
	Cells []string
}

// Session carries the roster and its preamble between the two workflow
// steps. A new workbook replaces the whole Session.
type Session struct {
	Roster   *Roster
	Preamble RawTable
}

// NormalizeRoster extracts the student list from a raw workbook table. Rows
// above the header become the preamble, the header row is promoted to column
// names, the Code column is renamed to its canonical AMC name and coerced to
// numeric.
func NormalizeRoster(t RawTable) (*Session, error) {
	idx, ok := FindHeader(t, HeaderMarkers)
	if !ok {
		return nil, ErrHeaderNotFound
	}

	preamble := t[:idx]
	header := t[idx]
	data := t[idx+1:]
	if len(data) == 0 {
		return nil, ErrEmptyRoster
	}

	columns := make([]string, len(header))
	codeCol := -1
	for i, name := range header {
		if name == "Code" {
			name = CodeColumn
			if codeCol == -1 {
				codeCol = i
			}
		}
		columns[i] = name
	}

	rows := make([]RosterRow, 0, len(data))
	for _, raw := range data {
		cells := make([]string, len(columns))
		copy(cells, raw)
		var code Number
		if codeCol >= 0 && codeCol < len(raw) {
			code = ParseNumber(raw[codeCol])
		}
		rows = append(rows, RosterRow{Code: code, Cells: cells})
	}

	roster := &Roster{Columns: columns, CodeCol: codeCol, Rows: rows}
	return &Session{Roster: roster, Preamble: preamble}, nil
}

// MissingCodes counts rows whose code failed numeric coercion. A positive
// count is advisory; the rows stay in the roster.
func (r *Roster) MissingCodes() int {
	n := 0
	for _, row := range r.Rows {
		if !row.Code.Valid {
			n++
		}
	}
	return n
}
