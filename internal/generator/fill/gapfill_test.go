package fill

import (
	"testing"

	"crossgen/internal/domain"
)

func TestGapFillCandidatesFindsExactLengthMatch(t *testing.T) {
	// SKOR = S K O R: anchoring S at (0,0) and R at (0,3) leaves a gap of 2
	// (K, O) that GapFit should be able to fill with SKOR itself.
	cw := newTestCrossword(t, "", "SKOR", 5, 5)

	s := domain.Placement{Word: "S", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}
	r := domain.Placement{Word: "R", Position: domain.Position{Row: 0, Col: 3, Orientation: domain.Horizontal}}
	if err := cw.Apply(s); err != nil {
		t.Fatalf("Apply(S): %v", err)
	}
	if err := cw.Apply(r); err != nil {
		t.Fatalf("Apply(R): %v", err)
	}

	cands := cw.GapFillCandidates()
	found := false
	for _, c := range cands {
		if c.Word == "SKOR" && c.Position.Row == 0 && c.Position.Col == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("candidates = %+v, want SKOR anchored at (0,0)", cands)
	}
}

func TestGapFillCandidatesEmptyWhenNoGap(t *testing.T) {
	cw := newTestCrossword(t, "", "CAT", 5, 5)
	if err := cw.Apply(domain.Placement{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cands := cw.GapFillCandidates(); len(cands) != 0 {
		t.Errorf("expected no gap-fill candidates with a single contiguous word, got %+v", cands)
	}
}
