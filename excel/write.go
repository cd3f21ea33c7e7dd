package excel

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"

	amctools "github.com/jmadkour/AMCTools"
)

// MergedXLSX renders the final workbook: the preamble rows reproduced
// verbatim from the top, then the merged table with its header starting
// right below them. This reconstructs the original file layout with the
// scores appended as a new column.
func MergedXLSX(preamble amctools.RawTable, m *amctools.Merged) ([]byte, error) {
	xlsx := excelize.NewFile()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "github.com/jmadkour/AMCTools",
		DocSecurity: 2,
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())

	row := 1
	for _, cells := range preamble {
		for col, val := range cells {
			name, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			_ = xlsx.SetCellValue(sheet, name, val)
		}
		row++
	}

	headerRow := row
	headerStyle, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom")))
	for col, name := range m.Columns {
		cellName, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		_ = xlsx.SetCellValue(sheet, cellName, name)
		_ = xlsx.SetCellStyle(sheet, cellName, cellName, headerStyle)
	}
	row++

	noteStyle, _ := xlsx.NewStyle(mergeStyles(defaultStyle(), scoreFormat()))
	for _, mr := range m.Rows {
		for col, val := range mr.Cells {
			cellName, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if col == m.CodeCol {
				if mr.Code.Valid {
					_ = xlsx.SetCellValue(sheet, cellName, mr.Code.Value)
				}
				continue
			}
			_ = xlsx.SetCellValue(sheet, cellName, val)
		}
		if mr.Note.Valid {
			cellName, err := excelize.CoordinatesToCellName(m.NoteCol+1, row)
			if err != nil {
				return nil, err
			}
			_ = xlsx.SetCellValue(sheet, cellName, mr.Note.Value)
			_ = xlsx.SetCellStyle(sheet, cellName, cellName, noteStyle)
		}
		row++
	}

	last, err := excelize.ColumnNumberToName(len(m.Columns))
	if err != nil {
		return nil, err
	}
	_ = xlsx.SetColWidth(sheet, "A", last, 14)

	topLeft, err := excelize.CoordinatesToCellName(1, headerRow+1)
	if err != nil {
		return nil, err
	}
	_ = xlsx.SetPanes(sheet, &excelize.Panes{
		ActivePane:  "bottomLeft",
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: topLeft,
	})

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		// solid white
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func scoreFormat() *excelize.Style {
	fmt := "0.00"
	return &excelize.Style{
		CustomNumFmt: &fmt,
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
