package amctools

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal conditions abort the current pipeline step and produce no output.
// Everything else the pipeline reports is advisory and travels alongside a
// valid result.
var (
	// ErrHeaderNotFound means no row of the roster workbook contained all
	// of the required column labels.
	ErrHeaderNotFound = errors.New(`no row containing "Code", "Nom" and "Prénom" was found`)

	// ErrEmptyRoster means the workbook had a header row but no student
	// rows below it.
	ErrEmptyRoster = errors.New("roster is empty after the header row")
)

// MissingColumnsError reports grade-file columns that are required but
// absent. The missing names are part of the failure payload so the boundary
// layer can render them.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Columns, ", "))
}
