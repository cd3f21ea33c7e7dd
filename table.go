package amctools

// RawTable is a sheet as read from a workbook: ordered rows of cell texts,
// with no header assumed anywhere.
type RawTable [][]string

// FindHeader returns the index of the first row whose cell texts include
// every marker, comparing exact text. The second return is false when no
// row qualifies.
func FindHeader(t RawTable, markers []string) (int, bool) {
	for i, row := range t {
		if containsAll(row, markers) {
			return i, true
		}
	}
	return 0, false
}

func containsAll(row []string, markers []string) bool {
	for _, m := range markers {
		found := false
		for _, cell := range row {
			if cell == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
