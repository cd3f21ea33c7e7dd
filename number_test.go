package amctools

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		out   float64
	}{
		{"0", true, 0},
		{"15", true, 15},
		{"15.5", true, 15.5},
		{"-3", true, -3},
		{" 12 ", true, 12},
		{"", false, 0},
		{"   ", false, 0},
		{"banana", false, 0},
		{"1..2", false, 0},
		{"12,5", false, 0},
	}

	for _, c := range cases {
		n := ParseNumber(c.in)
		if n.Valid != c.valid {
			t.Errorf("ParseNumber(%q).Valid = %v, expected %v", c.in, n.Valid, c.valid)
		} else if n.Valid && n.Value != c.out {
			t.Errorf("ParseNumber(%q) = %v, expected %v", c.in, n.Value, c.out)
		}
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		in  Number
		out string
	}{
		{Number{}, ""},
		{Num(12), "12"},
		{Num(12.5), "12.5"},
		{Num(-3), "-3"},
		{Num(0), "0"},
	}

	for _, c := range cases {
		if got := c.in.String(); got != c.out {
			t.Errorf("String(%v) = %q, expected %q", c.in.Value, got, c.out)
		}
	}
}
