package domain

import "fmt"

// Grid is a derived H x W array of cells. It is never mutated directly by
// search code; callers rebuild it from a placement list via DeriveGrid.
type Grid struct {
	Height, Width int
	cells         [][]Cell
}

// NewGrid returns an all-EMPTY grid of the given dimensions.
func NewGrid(height, width int) *Grid {
	g := &Grid{Height: height, Width: width}
	g.cells = make([][]Cell, height)
	for r := range g.cells {
		row := make([]Cell, width)
		for c := range row {
			row[c] = EmptyCell
		}
		g.cells[r] = row
	}
	return g
}

// At returns the cell at (row, col), or the BLOCK sentinel if out of bounds
// so axis walks near the edge behave as if the grid were block-bordered.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return BlockCell
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// set writes a cell, enforcing the overwrite invariant from §4.1: a cell
// may only be overwritten with an equal value. Returns a wrapped
// ErrInvariant on conflict.
func (g *Grid) set(row, col int, cell Cell) error {
	if !g.inBounds(row, col) {
		return nil // pre/post terminators off the edge are simply skipped
	}
	existing := g.cells[row][col]
	if existing.IsEmpty() || existing == cell {
		g.cells[row][col] = cell
		return nil
	}
	return fmt.Errorf("%w: cell (%d,%d) holds %v, cannot overwrite with %v", ErrInvariant, row, col, existing, cell)
}

// DeriveGrid rebuilds the grid from scratch given the authoritative
// placement list. This is a pure function: the same placements, regardless
// of slice order, yield the same grid as long as they do not conflict.
func DeriveGrid(height, width int, placements []Placement) (*Grid, error) {
	g := NewGrid(height, width)
	for _, p := range placements {
		pos := p.Position
		for _, r := range p.Word {
			if err := g.set(pos.Row, pos.Col, LetterCell(r)); err != nil {
				return nil, err
			}
			pos = pos.Advance()
		}
		if p.Pre && !p.Position.IsEdge() {
			before := p.Position.Retreat()
			if err := g.set(before.Row, before.Col, BlockCell); err != nil {
				return nil, err
			}
		}
		if p.Post {
			after := p.End().Advance()
			if err := g.set(after.Row, after.Col, BlockCell); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Row returns the W cells of row r left to right.
func (g *Grid) Row(r int) []Cell {
	out := make([]Cell, g.Width)
	copy(out, g.cells[r])
	return out
}

// Column returns the H cells of column c top to bottom.
func (g *Grid) Column(c int) []Cell {
	out := make([]Cell, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = g.cells[r][c]
	}
	return out
}

// Run is a maximal letter run of length >= 2 extracted from a row or
// column: its text and the position of its first letter.
type Run struct {
	Text  string
	Start Position
}

// extractRuns splits a sequence of cells on EMPTY and BLOCK alike and keeps
// runs of length >= 2, per §4.1.
func extractRuns(cells []Cell, index int, orientation Orientation) []Run {
	var runs []Run
	start := -1
	var buf []rune

	flush := func() {
		if len(buf) >= 2 {
			var pos Position
			if orientation == Horizontal {
				pos = Position{Row: index, Col: start, Orientation: Horizontal}
			} else {
				pos = Position{Row: start, Col: index, Orientation: Vertical}
			}
			runs = append(runs, Run{Text: string(buf), Start: pos})
		}
		buf = nil
		start = -1
	}

	for i, cell := range cells {
		if cell.IsLetter() {
			if start == -1 {
				start = i
			}
			buf = append(buf, cell.Rune)
			continue
		}
		flush()
	}
	flush()
	return runs
}

// RowRuns returns the maximal letter runs of row r.
func (g *Grid) RowRuns(r int) []Run {
	return extractRuns(g.Row(r), r, Horizontal)
}

// ColumnRuns returns the maximal letter runs of column c.
func (g *Grid) ColumnRuns(c int) []Run {
	return extractRuns(g.Column(c), c, Vertical)
}

// AllRuns returns every maximal letter run across every row and column:
// every word currently present in the grid.
func (g *Grid) AllRuns() []Run {
	var out []Run
	for r := 0; r < g.Height; r++ {
		out = append(out, g.RowRuns(r)...)
	}
	for c := 0; c < g.Width; c++ {
		out = append(out, g.ColumnRuns(c)...)
	}
	return out
}

// Render draws the grid using a single space between cells and the
// glyph set: uppercase letters, □ for EMPTY, ■ for BLOCK.
func (g *Grid) Render() string {
	out := make([]byte, 0, g.Height*(2*g.Width+1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if c > 0 {
				out = append(out, ' ')
			}
			out = append(out, []byte(string(g.cells[r][c].Glyph()))...)
		}
		out = append(out, '\n')
	}
	return string(out)
}
