package amctools

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the scores present in a grade file, computed only over
// non-missing values.
type Summary struct {
	Mean   float64
	Max    float64
	Min    float64
	Graded int
}

// Summarize computes the score statistics. ok is false when the file holds
// no usable score.
func Summarize(g *GradeTable) (Summary, bool) {
	var notes []float64
	for _, row := range g.Rows {
		if row.Note.Valid {
			notes = append(notes, row.Note.Value)
		}
	}
	if len(notes) == 0 {
		return Summary{}, false
	}

	mean, err := stats.Mean(notes)
	if err != nil {
		return Summary{}, false
	}
	max, err := stats.Max(notes)
	if err != nil {
		return Summary{}, false
	}
	min, err := stats.Min(notes)
	if err != nil {
		return Summary{}, false
	}

	return Summary{Mean: mean, Max: max, Min: min, Graded: len(notes)}, true
}
