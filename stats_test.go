package amctools

import "testing"

func TestSummarize(t *testing.T) {
	grades := &GradeTable{
		CodeCol: 0, NoteCol: 1,
		Rows: []GradeRow{
			{Code: Num(1), Note: Num(10)},
			{Code: Num(2), Note: Num(20)},
			{Code: Num(3), Note: Number{}},
			{Code: Num(4), Note: Num(6)},
		},
	}

	sum, ok := Summarize(grades)
	if !ok {
		t.Fatal("expected a summary")
	}
	if sum.Mean != 12 || sum.Max != 20 || sum.Min != 6 || sum.Graded != 3 {
		t.Errorf("summary %+v, expected mean 12, max 20, min 6 over 3 scores", sum)
	}
}

func TestSummarizeNoScores(t *testing.T) {
	grades := &GradeTable{
		CodeCol: 0, NoteCol: 1,
		Rows: []GradeRow{{Code: Num(1), Note: Number{}}},
	}

	if _, ok := Summarize(grades); ok {
		t.Error("expected no summary for a file without scores")
	}
}
