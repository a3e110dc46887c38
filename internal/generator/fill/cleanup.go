package fill

// Cleanup implements §4.10: scan placements for "dwarfs" — placements
// whose text and position are strictly contained by a longer placement at
// the same position — and remove them. Per the resolved Open Question in
// SPEC_FULL §9, a placement is only removed when BOTH its text is a
// substring of the longer placement's text AND the two share the same
// start position and orientation (position-sensitive containment, not a
// text-only match).
func (cw *Crossword) Cleanup() {
	removed := make(map[int]bool)

	for i, short := range cw.Placements {
		for j, long := range cw.Placements {
			if i == j {
				continue
			}
			if short.Position != long.Position {
				continue
			}
			if len([]rune(short.Word)) >= len([]rune(long.Word)) {
				continue
			}
			if containsAsPrefix(long.Word, short.Word) {
				removed[i] = true
				break
			}
		}
	}
	if len(removed) == 0 {
		return
	}

	filtered := cw.Placements[:0:0]
	var effects [][]wordKey
	for i, p := range cw.Placements {
		if !removed[i] {
			filtered = append(filtered, p)
			if i < len(cw.effectsAdded) {
				effects = append(effects, cw.effectsAdded[i])
			}
		}
	}
	cw.Placements = filtered
	cw.effectsAdded = effects
	cw.invalidateGrid()
}

// containsAsPrefix reports whether short is a literal prefix of long —
// both placements share a start position, so a position-sensitive
// containment can only mean short occupies a leading span of long.
func containsAsPrefix(long, short string) bool {
	lr, sr := []rune(long), []rune(short)
	if len(sr) > len(lr) {
		return false
	}
	for i := range sr {
		if lr[i] != sr[i] {
			return false
		}
	}
	return true
}
