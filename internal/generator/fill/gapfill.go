package fill

import (
	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
)

// GapFillCandidates implements §4.5: for every cross that is occupied,
// unlocked, and not a BLOCK, look east and south for a run of EMPTY cells
// closed off by a letter, and query the dictionary's gap-fit index for
// words spanning that exact gap.
func (cw *Crossword) GapFillCandidates() []domain.Placement {
	var out []domain.Placement
	g := cw.Grid()
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; c++ {
			cell := g.At(r, c)
			if !cell.IsLetter() {
				continue
			}
			cr := cross.New(g, r, c, cw.Table)
			out = append(out, cw.gapFillAt(cr, domain.Horizontal, cross.East)...)
			out = append(out, cw.gapFillAt(cr, domain.Vertical, cross.South)...)
		}
	}
	return out
}

func (cw *Crossword) gapFillAt(cr *cross.Cross, o domain.Orientation, d cross.Direction) []domain.Placement {
	if cr.Locked(o) {
		return nil
	}
	gap := cr.Freedom(d)
	if gap == 0 {
		return nil
	}

	pos := domain.Position{Row: cr.Row, Col: cr.Col, Orientation: o}
	terminal := pos
	for i := 0; i < gap+1; i++ {
		terminal = terminal.Advance()
	}
	terminalCell := cw.Grid().At(terminal.Row, terminal.Col)
	if !terminalCell.IsLetter() {
		return nil
	}

	origin := string(cw.Grid().At(cr.Row, cr.Col).Rune)
	target := string(terminalCell.Rune)
	words := cw.Dict.GapFit(origin, target, gap)

	var out []domain.Placement
	wantLen := gap + 2 // origin letter + gap wildcards + terminator letter
	for _, w := range words {
		if len([]rune(w)) != wantLen {
			continue
		}
		out = append(out, domain.Placement{Word: w, Position: pos})
	}
	return out
}
