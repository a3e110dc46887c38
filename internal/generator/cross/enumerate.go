package cross

import "crossgen/internal/domain"

// Options restricts enumeration.
type Options struct {
	// Only restricts enumeration to a single orientation. Zero value
	// (domain.Horizontal) combined with Both=true means "no restriction".
	Only domain.Orientation
	Both bool
	// Override permits a placement whose axis is locked at both ends, and
	// bypasses the per-cross memoization skip (used during repair, where
	// the side effect's own orientation must still be explored even if a
	// word was already tried there for a different placement attempt).
	Override bool
	// SuppressMemoWrite, when true, enumerates without recording tried
	// words — used during repair trials so a failed attempt doesn't
	// permanently poison future independent searches at the same cross.
	SuppressMemoWrite bool
}

func occurrences(word string, letter rune) []int {
	var idx []int
	for i, r := range []rune(word) {
		if r == letter {
			idx = append(idx, i)
		}
	}
	return idx
}

// startFor computes the tentative starting position so that word[i] lands
// on the cross, for the given orientation.
func (c *Cross) startFor(o domain.Orientation, i int) domain.Position {
	if o == domain.Horizontal {
		return domain.Position{Row: c.Row, Col: c.Col - i, Orientation: domain.Horizontal}
	}
	return domain.Position{Row: c.Row - i, Col: c.Col, Orientation: domain.Vertical}
}

// withinBounds reports whether placing a word of length n starting at pos
// stays inside the grid on its axis.
func (c *Cross) withinBounds(pos domain.Position, n int) bool {
	if pos.Orientation == domain.Horizontal {
		return pos.Col >= 0 && pos.Col+n <= c.Grid.Width && pos.Row >= 0 && pos.Row < c.Grid.Height
	}
	return pos.Row >= 0 && pos.Row+n <= c.Grid.Height && pos.Col >= 0 && pos.Col < c.Grid.Width
}

// fits walks the axis from pos and verifies every cell is either EMPTY or
// already holds the matching letter of word.
func (c *Cross) fits(pos domain.Position, word string) bool {
	p := pos
	for _, r := range word {
		cell := c.Grid.At(p.Row, p.Col)
		if !(cell.IsEmpty() || (cell.IsLetter() && cell.Rune == r)) {
			return false
		}
		p = p.Advance()
	}
	return true
}

// hasRoom confirms the cell immediately before the start and the cell
// immediately after the end are never themselves letters: a placement may
// not silently fuse into an adjacent word's run.
func (c *Cross) hasRoom(pos domain.Position, n int) bool {
	if !pos.IsEdge() {
		before := pos.Retreat()
		if c.Grid.At(before.Row, before.Col).IsLetter() {
			return false
		}
	}
	end := pos
	for i := 1; i < n; i++ {
		end = end.Advance()
	}
	after := end.Advance()
	return !c.Grid.At(after.Row, after.Col).IsLetter()
}

// Candidate is a candidate placement emitted by enumeration, with the
// terminator flags left at their default (false); stub-closure and
// gap-fill policies set them afterward.
type Candidate struct {
	Word     string
	Position domain.Position
}

// Enumerate yields every viable placement of word through this cross, per
// §4.3: for each occurrence of the cross's current letter within word and
// each permitted orientation, compute the tentative start, bounds-check,
// fit-test, and room-check. If the cross currently holds BLOCK, enumerate
// only the two adjacent-opening special cases. For a letter cross,
// per-cross memoization is consulted and (unless suppressed) updated; the
// BLOCK case does not use it.
func (c *Cross) Enumerate(word string, opts Options) []Candidate {
	if c.IsBlock() {
		return c.enumerateAtBlock(word, opts)
	}
	if !c.IsLetter() {
		return nil
	}

	var out []Candidate
	letter := c.Letter()
	n := len([]rune(word))

	for _, o := range c.orientations(opts) {
		if !opts.Override && c.Locked(o) {
			continue
		}
		if !opts.Override && c.table.WasTried(c.cell(), word, o) {
			continue
		}
		for _, i := range occurrences(word, letter) {
			pos := c.startFor(o, i)
			if !c.withinBounds(pos, n) {
				continue
			}
			if !c.fits(pos, word) {
				continue
			}
			if !c.hasRoom(pos, n) {
				continue
			}
			out = append(out, Candidate{Word: word, Position: pos})
		}
		if !opts.SuppressMemoWrite {
			c.table.MarkTried(c.cell(), word, o)
		}
	}
	return out
}

// enumerateAtBlock handles the "riddle cell" special case: a word may open
// immediately after the block or close immediately before it. The fit test
// skips the block cell itself.
func (c *Cross) enumerateAtBlock(word string, opts Options) []Candidate {
	var out []Candidate
	n := len([]rune(word))

	for _, o := range c.orientations(opts) {
		// opens at C+1
		var openStart domain.Position
		if o == domain.Horizontal {
			openStart = domain.Position{Row: c.Row, Col: c.Col + 1, Orientation: domain.Horizontal}
		} else {
			openStart = domain.Position{Row: c.Row + 1, Col: c.Col, Orientation: domain.Vertical}
		}
		if c.withinBounds(openStart, n) && c.fits(openStart, word) {
			out = append(out, Candidate{Word: word, Position: openStart})
		}

		// closes ending at C-1
		var closeStart domain.Position
		if o == domain.Horizontal {
			closeStart = domain.Position{Row: c.Row, Col: c.Col - n, Orientation: domain.Horizontal}
		} else {
			closeStart = domain.Position{Row: c.Row - n, Col: c.Col, Orientation: domain.Vertical}
		}
		if c.withinBounds(closeStart, n) && c.fits(closeStart, word) {
			out = append(out, Candidate{Word: word, Position: closeStart})
		}
	}
	return out
}

func (c *Cross) orientations(opts Options) []domain.Orientation {
	if opts.Both {
		return []domain.Orientation{domain.Horizontal, domain.Vertical}
	}
	return []domain.Orientation{opts.Only}
}
