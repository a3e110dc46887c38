package domain

import "testing"

func TestDeriveGridWritesLetters(t *testing.T) {
	placements := []Placement{
		{Word: "CAT", Position: Position{Row: 1, Col: 1, Orientation: Horizontal}},
	}
	g, err := DeriveGrid(5, 5, placements)
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	want := []rune("CAT")
	for i, r := range want {
		got := g.At(1, 1+i)
		if !got.IsLetter() || got.Rune != r {
			t.Errorf("cell (1,%d) = %+v, want letter %q", 1+i, got, r)
		}
	}
}

func TestDeriveGridIsPureUnderReorder(t *testing.T) {
	a := []Placement{
		{Word: "CAT", Position: Position{Row: 1, Col: 1, Orientation: Horizontal}},
		{Word: "ART", Position: Position{Row: 1, Col: 3, Orientation: Vertical}},
	}
	b := []Placement{a[1], a[0]}

	gridA, err := DeriveGrid(6, 6, a)
	if err != nil {
		t.Fatalf("DeriveGrid(a): %v", err)
	}
	gridB, err := DeriveGrid(6, 6, b)
	if err != nil {
		t.Fatalf("DeriveGrid(b): %v", err)
	}
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			if gridA.At(r, c) != gridB.At(r, c) {
				t.Fatalf("cell (%d,%d) differs by insertion order: %+v vs %+v", r, c, gridA.At(r, c), gridB.At(r, c))
			}
		}
	}
}

func TestDeriveGridConflictIsInvariantViolation(t *testing.T) {
	placements := []Placement{
		{Word: "CAT", Position: Position{Row: 0, Col: 0, Orientation: Horizontal}},
		{Word: "DOG", Position: Position{Row: 0, Col: 0, Orientation: Horizontal}},
	}
	if _, err := DeriveGrid(5, 5, placements); err == nil {
		t.Fatal("expected an invariant violation for conflicting overlapping letters")
	}
}

func TestPreDoesNotInsertBlockOutsideGrid(t *testing.T) {
	placements := []Placement{
		{Word: "AT", Position: Position{Row: 0, Col: 0, Orientation: Horizontal}, Pre: true},
	}
	g, err := DeriveGrid(3, 3, placements)
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	// no panic, and the first letter must still be 'A'.
	if got := g.At(0, 0); !got.IsLetter() || got.Rune != 'A' {
		t.Fatalf("cell (0,0) = %+v, want letter A", got)
	}
}

func TestRowRunsSplitsOnEmptyAndBlock(t *testing.T) {
	placements := []Placement{
		{Word: "CAT", Position: Position{Row: 0, Col: 0, Orientation: Horizontal}, Post: true},
		{Word: "ON", Position: Position{Row: 0, Col: 4, Orientation: Horizontal}},
	}
	g, err := DeriveGrid(1, 6, placements)
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	runs := g.RowRuns(0)
	if len(runs) != 2 {
		t.Fatalf("RowRuns = %+v, want 2 runs", runs)
	}
	if runs[0].Text != "CAT" || runs[1].Text != "ON" {
		t.Errorf("RowRuns = %+v, want CAT then ON", runs)
	}
}

func TestRowRunsDropsSingleLetterRuns(t *testing.T) {
	placements := []Placement{
		{Word: "A", Position: Position{Row: 0, Col: 0, Orientation: Horizontal}},
	}
	g, err := DeriveGrid(1, 3, placements)
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	if runs := g.RowRuns(0); len(runs) != 0 {
		t.Errorf("RowRuns = %+v, want no runs for a single-letter fragment", runs)
	}
}
