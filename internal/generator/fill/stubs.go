package fill

import (
	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
)

// isStub reports whether p is a stub per §4.4: at least 2 letters long and
// missing at least one terminator flag.
func isStub(p domain.Placement) bool {
	return len([]rune(p.Word)) >= 2 && (!p.Pre || !p.Post)
}

// Stubs returns the current placements that are still stubs.
func (cw *Crossword) Stubs() []domain.Placement {
	var out []domain.Placement
	for _, p := range cw.Placements {
		if isStub(p) {
			out = append(out, p)
		}
	}
	return out
}

// ContinueStub implements §4.4 for a single stub: query the dictionary for
// continuations of its text, and either return candidate extensions or
// close the stub itself (inserting a terminating BLOCK) and return none.
func (cw *Crossword) ContinueStub(p domain.Placement) []domain.Placement {
	matches := cw.Dict.ContainsSubstring(p.Word)
	if len(matches) == 0 {
		cw.closeStub(p)
		return nil
	}

	c := cross.New(cw.Grid(), p.Position.Row, p.Position.Col, cw.Table)
	if c.IsExhausted(p.Position.Orientation) {
		cw.closeStub(p)
		return nil
	}

	var out []domain.Placement
	for _, w := range matches {
		if w == p.Word {
			continue
		}
		for _, cand := range c.Enumerate(w, cross.Options{Only: p.Position.Orientation}) {
			out = append(out, domain.Placement{Word: cand.Word, Position: cand.Position})
		}
	}
	if len(out) == 0 {
		c.MarkExhausted(p.Position.Orientation)
		cw.closeStub(p)
	}
	return out
}

// closeStub terminates p in place: if the cell just past its end is
// EMPTY, set post=true; otherwise set pre=true. DeriveGrid places the
// terminating BLOCK one cell before the first letter on its own, so the
// letters themselves never move. A closure whose BLOCK would land on a
// letter is not applied, so the placement list always derives cleanly.
// Mirrors the original driver's stub-closing policy.
func (cw *Crossword) closeStub(p domain.Placement) {
	idx := cw.indexOf(p)
	if idx < 0 {
		return
	}
	after := p.End().Advance()
	updated := cw.Placements[idx]
	if cw.Grid().At(after.Row, after.Col).IsEmpty() {
		updated.Post = true
	} else {
		updated.Pre = true
	}
	trial := append([]domain.Placement(nil), cw.Placements...)
	trial[idx] = updated
	if _, err := domain.DeriveGrid(cw.Height, cw.Width, trial); err != nil {
		return
	}
	cw.Placements[idx] = updated
	cw.invalidateGrid()
}
