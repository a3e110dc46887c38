package cross

import (
	"testing"

	"crossgen/internal/domain"
)

func gridWithCAT(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.DeriveGrid(5, 5, []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 2, Col: 1, Orientation: domain.Horizontal}},
	})
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	return g
}

func TestEnumerateFindsCrossingWord(t *testing.T) {
	g := gridWithCAT(t)
	table := NewTable()
	// the 'T' of CAT sits at (2,3); ART's own 'T' (index 2) crosses there
	// vertically, anchoring ART at rows 0-2 of column 3.
	c := New(g, 2, 3, table)

	cands := c.Enumerate("ART", Options{Only: domain.Vertical})
	if len(cands) == 0 {
		t.Fatal("expected at least one vertical candidate for ART crossing CAT at T")
	}
	found := false
	for _, cand := range cands {
		if cand.Position.Col == 3 && cand.Position.Row == 0 && cand.Position.Orientation == domain.Vertical {
			found = true
		}
	}
	if !found {
		t.Errorf("candidates = %+v, want one anchored at (0,3)", cands)
	}
}

func TestEnumerateRespectsMemoization(t *testing.T) {
	g := gridWithCAT(t)
	table := NewTable()
	c := New(g, 2, 3, table)

	first := c.Enumerate("ART", Options{Only: domain.Vertical})
	if len(first) == 0 {
		t.Fatal("expected candidates on first enumeration")
	}
	second := c.Enumerate("ART", Options{Only: domain.Vertical})
	if len(second) != 0 {
		t.Errorf("expected memoization to suppress a repeated identical enumeration, got %+v", second)
	}
}

func TestEnumerateSuppressMemoWrite(t *testing.T) {
	g := gridWithCAT(t)
	table := NewTable()
	c := New(g, 2, 3, table)

	c.Enumerate("ART", Options{Only: domain.Vertical, SuppressMemoWrite: true})
	second := c.Enumerate("ART", Options{Only: domain.Vertical, SuppressMemoWrite: true})
	if len(second) == 0 {
		t.Error("expected SuppressMemoWrite to allow repeated enumeration")
	}
}

func TestEnumerateAtBlockCell(t *testing.T) {
	g, err := domain.DeriveGrid(5, 6, []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}, Post: true},
	})
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	table := NewTable()
	// block sits at (0,3), immediately after CAT.
	c := New(g, 0, 3, table)
	if !c.IsBlock() {
		t.Fatal("expected cell (0,3) to be BLOCK")
	}

	cands := c.Enumerate("ON", Options{Only: domain.Horizontal})
	found := false
	for _, cand := range cands {
		if cand.Position.Col == 4 {
			found = true
		}
	}
	if !found {
		t.Errorf("candidates = %+v, want ON opening at column 4 right after the block", cands)
	}
}

func TestFreedomCountsEmptyRun(t *testing.T) {
	g := gridWithCAT(t)
	table := NewTable()
	c := New(g, 2, 1, table) // sits on the 'C' of CAT

	// East of 'C' within CAT itself is letters, so freedom should be 0.
	if f := c.Freedom(East); f != 0 {
		t.Errorf("Freedom(East) = %d, want 0 (blocked by A immediately east)", f)
	}
	// South of (2,1) is empty down to the grid edge (rows 3-4): 2 cells.
	if f := c.Freedom(South); f != 2 {
		t.Errorf("Freedom(South) = %d, want 2", f)
	}
}

func TestLockedWhenBothNeighborsNonEmpty(t *testing.T) {
	g := gridWithCAT(t)
	table := NewTable()
	c := New(g, 2, 2, table) // the 'A' of CAT, flanked by C and T
	if !c.Locked(domain.Horizontal) {
		t.Error("expected the middle letter of CAT to be horizontally locked")
	}
}
