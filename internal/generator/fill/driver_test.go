package fill

import (
	"testing"

	"crossgen/internal/domain"
)

func TestDriverNextSkipsAlreadyAttempted(t *testing.T) {
	cw := newTestCrossword(t, "", "CAT\nART\nCAR", 6, 6)

	p := domain.Placement{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}
	if err := cw.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	d := NewDriver(cw)
	d.stubQueue = []domain.Placement{p, p}
	got, ok := d.nextStub()
	if ok {
		t.Fatalf("expected both queued copies of an already-attempted placement to be skipped, got %+v", got)
	}
}

func TestDriverNextReturnsFreshStubCandidate(t *testing.T) {
	cw := newTestCrossword(t, "", "CAT\nCATS", 6, 6)

	p := domain.Placement{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}
	if err := cw.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	fresh := domain.Placement{Word: "CATS", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}
	d := NewDriver(cw)
	d.stubQueue = []domain.Placement{p, fresh}

	got, ok := d.nextStub()
	if !ok {
		t.Fatal("expected the fresh candidate after skipping the attempted one")
	}
	if !got.SamePlacement(fresh) {
		t.Errorf("got %+v, want %+v", got, fresh)
	}
}

func TestRestartResetsCrossHairIterator(t *testing.T) {
	cw := newTestCrossword(t, "", "CAT", 4, 4)
	d := NewDriver(cw)
	d.crossHairList = []domain.Cell2D{{Row: 1, Col: 1}}
	d.crossHairCell = 1
	d.crossHairBuf = []domain.Placement{{Word: "X"}}

	d.Restart()

	if d.crossHairList != nil || d.crossHairCell != 0 || d.crossHairBuf != nil {
		t.Errorf("expected Restart to clear all cross-hair iteration state, got list=%v cell=%d buf=%v",
			d.crossHairList, d.crossHairCell, d.crossHairBuf)
	}
}
