package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	amctools "github.com/jmadkour/AMCTools"
)

// ReadRaw reads the active sheet of a workbook as an untyped table. No
// header position is assumed; locating the real header row is the caller's
// problem.
func ReadRaw(r io.Reader) (amctools.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return amctools.RawTable(rows), nil
}
