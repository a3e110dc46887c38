package fill

import (
	"testing"

	"crossgen/internal/domain"
)

func TestIsStub(t *testing.T) {
	complete := domain.Placement{Word: "CAT", Pre: true, Post: true}
	if isStub(complete) {
		t.Error("a placement with both terminators set should not be a stub")
	}
	open := domain.Placement{Word: "CAT", Pre: true, Post: false}
	if !isStub(open) {
		t.Error("a placement missing one terminator should be a stub")
	}
	tooShort := domain.Placement{Word: "C"}
	if isStub(tooShort) {
		t.Error("a single-letter placement should never be a stub")
	}
}

func TestContinueStubClosesWhenNoMatches(t *testing.T) {
	cw := newTestCrossword(t, "", "ZQ", 5, 5)
	p := domain.Placement{Word: "ZQ", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}}
	if err := cw.Apply(p); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	out := cw.ContinueStub(p)
	if out != nil {
		t.Errorf("expected no continuations for a word with no dictionary superstrings, got %+v", out)
	}
	idx := cw.indexOf(p)
	if idx < 0 {
		t.Fatal("expected the stub placement to still be present after closing")
	}
	if !cw.Placements[idx].Pre && !cw.Placements[idx].Post {
		t.Error("expected closeStub to set one of Pre/Post")
	}
}

func TestStubsReturnsOnlyIncompletePlacements(t *testing.T) {
	cw := newTestCrossword(t, "", "CAT", 5, 5)
	complete := domain.Placement{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}, Pre: true, Post: true}
	cw.Placements = append(cw.Placements, complete)

	stubs := cw.Stubs()
	if len(stubs) != 0 {
		t.Errorf("expected no stubs among fully-terminated placements, got %+v", stubs)
	}
}
