package fill

import (
	"golang.org/x/exp/slices"

	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
)

// rareLetters boosts priority for crosses sitting on an uncommon letter,
// per §4.6. The Swedish-leaning extended alphabet members are included
// alongside the classically rare Latin consonants.
var rareLetters = map[rune]bool{
	'Z': true, 'X': true, 'C': true, 'F': true, 'H': true,
	'B': true, 'Y': true, 'Q': true, 'U': true, 'W': true,
	'J': true, 'Å': true, 'Ä': true, 'Ö': true,
}

// crossHairLimit caps how many candidates are drawn per chosen cross.
const crossHairLimit = 25

// crossHairTopRare caps the rare-letter priority tier.
const crossHairTopRare = 10

// openCrosses returns every currently-letter-holding cell that is not
// fully locked on both axes — i.e. still worth visiting.
func (cw *Crossword) openCrosses() []domain.Cell2D {
	var out []domain.Cell2D
	g := cw.Grid()
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; c++ {
			if !g.At(r, c).IsLetter() {
				continue
			}
			cr := cross.New(g, r, c, cw.Table)
			if cr.Locked(domain.Horizontal) && cr.Locked(domain.Vertical) {
				continue
			}
			out = append(out, domain.Cell2D{Row: r, Col: c})
		}
	}
	return out
}

// CrossHairCrosses ranks candidate crosses per §4.6: a rare-letter
// priority tier (top 10, randomly ordered among ties) interleaved with
// crosses ranked by horizontal freedom and by vertical freedom.
func (cw *Crossword) CrossHairCrosses() []domain.Cell2D {
	open := cw.openCrosses()
	if len(open) == 0 {
		return nil
	}
	g := cw.Grid()

	rare := make([]domain.Cell2D, 0, len(open))
	for _, cell := range open {
		if rareLetters[g.At(cell.Row, cell.Col).Rune] {
			rare = append(rare, cell)
		}
	}
	cw.RNG.Shuffle(len(rare), func(i, j int) { rare[i], rare[j] = rare[j], rare[i] })
	if len(rare) > crossHairTopRare {
		rare = rare[:crossHairTopRare]
	}

	byHorizontal := append([]domain.Cell2D(nil), open...)
	slices.SortFunc(byHorizontal, func(a, b domain.Cell2D) bool {
		ca := cross.New(g, a.Row, a.Col, cw.Table)
		cb := cross.New(g, b.Row, b.Col, cw.Table)
		return ca.Freedom(cross.East)+ca.Freedom(cross.West) > cb.Freedom(cross.East)+cb.Freedom(cross.West)
	})

	byVertical := append([]domain.Cell2D(nil), open...)
	slices.SortFunc(byVertical, func(a, b domain.Cell2D) bool {
		ca := cross.New(g, a.Row, a.Col, cw.Table)
		cb := cross.New(g, b.Row, b.Col, cw.Table)
		return ca.Freedom(cross.North)+ca.Freedom(cross.South) > cb.Freedom(cross.North)+cb.Freedom(cross.South)
	})

	return interleaveThree(rare, byHorizontal, byVertical)
}

func interleaveThree(a, b, c []domain.Cell2D) []domain.Cell2D {
	out := make([]domain.Cell2D, 0, len(a)+len(b)+len(c))
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if len(c) > n {
		n = len(c)
	}
	for i := 0; i < n; i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
		if i < len(c) {
			out = append(out, c[i])
		}
	}
	return out
}

// CrossHairCandidates enumerates up to crossHairLimit placements against
// cell, drawing from the dictionary's words that contain cell's letter.
func (cw *Crossword) CrossHairCandidates(cell domain.Cell2D) []domain.Placement {
	g := cw.Grid()
	letterCell := g.At(cell.Row, cell.Col)
	if !letterCell.IsLetter() {
		return nil
	}
	words := cw.Dict.ContainsSubstring(string(letterCell.Rune))
	c := cross.New(g, cell.Row, cell.Col, cw.Table)

	var out []domain.Placement
	for _, w := range words {
		if len(out) >= crossHairLimit {
			break
		}
		for _, cand := range c.Enumerate(w, cross.Options{Both: true}) {
			out = append(out, domain.Placement{Word: cand.Word, Position: cand.Position})
			if len(out) >= crossHairLimit {
				break
			}
		}
	}
	return out
}
