package amctools

import (
	"strconv"
	"strings"
)

// Number is a numeric cell value that may be missing. Coercing a cell that
// does not parse as a number yields the zero Number rather than an error, so
// the missing-vs-invalid distinction stays visible to the anomaly checks.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// ParseNumber coerces a cell text to a Number. Leading and trailing
// whitespace is ignored. Empty or unparsable text is missing, never an
// error.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}
	return Num(v)
}

// String renders a missing Number as the empty string and integral values
// without a decimal point.
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
