package amctools

import (
	"encoding/json"
	"errors"
	"testing"
)

func rosterTable() RawTable {
	return RawTable{
		{"Université de Test"},
		nil,
		{"Session de juin"},
		{"Code", "Nom", "Prénom", "Groupe"},
		{"1", "Dupont", "Alice", "A"},
		{"2", "Martin", "Bruno", "B"},
		{"X12", "Durand", "Chloé", "A"},
	}
}

func TestNormalizeRoster(t *testing.T) {
	session, err := NormalizeRoster(rosterTable())
	if err != nil {
		t.Fatal(err)
	}

	if len(session.Preamble) != 3 {
		t.Errorf("preamble has %d rows, expected 3", len(session.Preamble))
	}

	expected := &Roster{
		Columns: []string{"A:Code", "Nom", "Prénom", "Groupe"},
		CodeCol: 0,
		Rows: []RosterRow{
			{Code: Num(1), Cells: []string{"1", "Dupont", "Alice", "A"}},
			{Code: Num(2), Cells: []string{"2", "Martin", "Bruno", "B"}},
			{Code: Number{}, Cells: []string{"X12", "Durand", "Chloé", "A"}},
		},
	}

	if jsons(session.Roster) != jsons(expected) {
		t.Errorf("mismatch\n%s\n%s", jsons(session.Roster), jsons(expected))
	}

	if n := session.Roster.MissingCodes(); n != 1 {
		t.Errorf("MissingCodes = %d, expected 1", n)
	}
}

func TestNormalizeRosterIdempotent(t *testing.T) {
	first, err := NormalizeRoster(rosterTable())
	if err != nil {
		t.Fatal(err)
	}
	second, err := NormalizeRoster(rosterTable())
	if err != nil {
		t.Fatal(err)
	}

	if jsons(first) != jsons(second) {
		t.Errorf("mismatch\n%s\n%s", jsons(first), jsons(second))
	}
}

func TestNormalizeRosterHeaderNotFound(t *testing.T) {
	_, err := NormalizeRoster(RawTable{{"Université de Test"}, {"Session de juin"}})
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("expected ErrHeaderNotFound, got %v", err)
	}
}

func TestNormalizeRosterEmpty(t *testing.T) {
	_, err := NormalizeRoster(RawTable{{"Préambule"}, {"Code", "Nom", "Prénom"}})
	if !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestNormalizeRosterPadsShortRows(t *testing.T) {
	session, err := NormalizeRoster(RawTable{
		{"Code", "Nom", "Prénom"},
		{"7", "Petit"},
	})
	if err != nil {
		t.Fatal(err)
	}

	row := session.Roster.Rows[0]
	if len(row.Cells) != 3 || row.Cells[2] != "" {
		t.Errorf("short row not padded: %#v", row.Cells)
	}
	if !row.Code.Valid || row.Code.Value != 7 {
		t.Errorf("code not coerced: %#v", row.Code)
	}
}

func jsons(v interface{}) string {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bs)
}
