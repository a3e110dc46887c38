package fill

import (
	"fmt"

	"crossgen/internal/domain"
	"crossgen/internal/generator/cross"
	"crossgen/internal/generator/dictionary"
)

var alphabetLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖÉ")

// Seed implements §4.9: pick a uniformly random letter, place it as a
// 1-letter placement at a uniformly random cross, then immediately
// enumerate placements at that cross restricted to special words and
// commit the first candidate produced. This anchors the grid with at
// least one high-scoring word.
func (cw *Crossword) Seed() error {
	row := cw.RNG.Intn(cw.Height)
	col := cw.RNG.Intn(cw.Width)
	letter := alphabetLetters[cw.RNG.Intn(len(alphabetLetters))]

	anchor := domain.Placement{
		Word:     string(letter),
		Position: domain.Position{Row: row, Col: col, Orientation: domain.Horizontal},
	}
	if err := cw.Apply(anchor); err != nil {
		return fmt.Errorf("seeding anchor letter: %w", err)
	}

	c := cross.New(cw.Grid(), row, col, cw.Table)
	for _, w := range specialWords(cw.Dict) {
		cands := c.Enumerate(w, cross.Options{Both: true})
		if len(cands) == 0 {
			continue
		}
		chosen := cands[0]
		placement := domain.Placement{Word: chosen.Word, Position: chosen.Position, Special: true}
		return cw.Apply(placement)
	}
	return nil
}

func specialWords(dict *dictionary.Dictionary) []string {
	var out []string
	for _, w := range dict.Words() {
		if w.Special {
			out = append(out, w.Text)
		}
	}
	return out
}
