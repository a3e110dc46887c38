package fill

// Score implements §4.11: sum of placement scores times the average
// placement length times coverage (letter-bearing cells / H*W).
func (cw *Crossword) Score(scoreOf func(word string) float64) float64 {
	if len(cw.Placements) == 0 {
		return 0
	}

	var sumScore, sumLength float64
	letterCells := make(map[[2]int]bool)
	for _, p := range cw.Placements {
		sumScore += scoreOf(p.Word)
		n := len([]rune(p.Word))
		sumLength += float64(n)
		for _, cell := range p.Cells() {
			letterCells[[2]int{cell.Row, cell.Col}] = true
		}
	}

	avgLength := sumLength / float64(len(cw.Placements))
	coverage := float64(len(letterCells)) / float64(cw.Height*cw.Width)
	return sumScore * avgLength * coverage
}

// ScoreFromDictionary scores the crossword using each placement's own
// dictionary-assigned score, falling back to its letter count for a
// word the dictionary does not carry a score for (e.g. a single-letter
// seed anchor).
func (cw *Crossword) ScoreFromDictionary() float64 {
	return cw.Score(func(word string) float64 {
		if w, ok := cw.Dict.Get(word); ok {
			return w.Score
		}
		return float64(len([]rune(word)))
	})
}
