// Package cross implements the per-cell Cross view: derived surrounding-run
// information, freedom counts, and candidate enumeration against a single
// word. A Cross is recomputed from the current grid on every access; only
// its memoization and exhaustion flags, held in a Table keyed by cell, are
// persistent.
package cross

import "crossgen/internal/domain"

// TryMark records which orientation(s) a word has already been tried at a
// given cross.
type TryMark int

const (
	None TryMark = iota
	TriedHorizontal
	TriedVertical
	TriedBoth
)

func (m TryMark) add(o domain.Orientation) TryMark {
	switch {
	case m == TriedBoth:
		return TriedBoth
	case m == None:
		if o == domain.Horizontal {
			return TriedHorizontal
		}
		return TriedVertical
	case m == TriedHorizontal && o == domain.Vertical:
		return TriedBoth
	case m == TriedVertical && o == domain.Horizontal:
		return TriedBoth
	default:
		return m
	}
}

func (m TryMark) has(o domain.Orientation) bool {
	if o == domain.Horizontal {
		return m == TriedHorizontal || m == TriedBoth
	}
	return m == TriedVertical || m == TriedBoth
}

// Table holds the persistent state that survives across Cross rebuilds:
// per-cross per-word try marks, and the per-orientation exhaustion flags.
type Table struct {
	tried     map[domain.Cell2D]map[string]TryMark
	exhausted map[domain.Cell2D]map[domain.Orientation]bool
}

// NewTable returns an empty memoization table.
func NewTable() *Table {
	return &Table{
		tried:     make(map[domain.Cell2D]map[string]TryMark),
		exhausted: make(map[domain.Cell2D]map[domain.Orientation]bool),
	}
}

// MarkTried records that word was offered as a candidate at cell in
// orientation o.
func (t *Table) MarkTried(cell domain.Cell2D, word string, o domain.Orientation) {
	m, ok := t.tried[cell]
	if !ok {
		m = make(map[string]TryMark)
		t.tried[cell] = m
	}
	m[word] = m[word].add(o)
}

// WasTried reports whether word has already been offered at cell in
// orientation o.
func (t *Table) WasTried(cell domain.Cell2D, word string, o domain.Orientation) bool {
	m, ok := t.tried[cell]
	if !ok {
		return false
	}
	return m[word].has(o)
}

// MarkExhausted records that no further candidates remain at cell for
// orientation o.
func (t *Table) MarkExhausted(cell domain.Cell2D, o domain.Orientation) {
	m, ok := t.exhausted[cell]
	if !ok {
		m = make(map[domain.Orientation]bool)
		t.exhausted[cell] = m
	}
	m[o] = true
}

// IsExhausted reports whether cell has been marked exhausted for o.
func (t *Table) IsExhausted(cell domain.Cell2D, o domain.Orientation) bool {
	return t.exhausted[cell][o]
}

// Cross is a read-only view of a single grid cell, rebuilt fresh from the
// current grid on every access.
type Cross struct {
	Grid  *domain.Grid
	Row   int
	Col   int
	table *Table
}

// New builds a Cross view at (row, col) against grid, backed by table for
// its persistent memoization and exhaustion state.
func New(grid *domain.Grid, row, col int, table *Table) *Cross {
	return &Cross{Grid: grid, Row: row, Col: col, table: table}
}

func (c *Cross) cell() domain.Cell2D { return domain.Cell2D{Row: c.Row, Col: c.Col} }

// IsLetter reports whether the cross currently holds a letter.
func (c *Cross) IsLetter() bool { return c.Grid.At(c.Row, c.Col).IsLetter() }

// IsBlock reports whether the cross currently holds a BLOCK ("riddle cell").
func (c *Cross) IsBlock() bool { return c.Grid.At(c.Row, c.Col).IsBlock() }

// IsEmpty reports whether the cross is currently unoccupied.
func (c *Cross) IsEmpty() bool { return c.Grid.At(c.Row, c.Col).IsEmpty() }

// Letter returns the letter at the cross. Only valid when IsLetter is true.
func (c *Cross) Letter() rune { return c.Grid.At(c.Row, c.Col).Rune }

// Direction is one of the four cardinal directions Freedom walks in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (c *Cross) step(d Direction) (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

// Freedom returns the count of consecutive EMPTY cells from the cross in
// direction d until a letter or BLOCK (or the grid edge) is hit.
func (c *Cross) Freedom(d Direction) int {
	dr, dc := c.step(d)
	r, col := c.Row+dr, c.Col+dc
	n := 0
	for c.Grid.At(r, col).IsEmpty() {
		n++
		r += dr
		col += dc
	}
	return n
}

// Locked reports whether orientation o is locked at this cross: both
// adjacent cells along that axis are non-EMPTY, so no placement through
// here can grow in either direction.
func (c *Cross) Locked(o domain.Orientation) bool {
	if o == domain.Horizontal {
		return !c.Grid.At(c.Row, c.Col-1).IsEmpty() && !c.Grid.At(c.Row, c.Col+1).IsEmpty()
	}
	return !c.Grid.At(c.Row-1, c.Col).IsEmpty() && !c.Grid.At(c.Row+1, c.Col).IsEmpty()
}

// IsExhausted reports whether orientation o has been marked exhausted at
// this cross.
func (c *Cross) IsExhausted(o domain.Orientation) bool {
	return c.table.IsExhausted(c.cell(), o)
}

// MarkExhausted records that orientation o yielded no further candidates at
// this cross.
func (c *Cross) MarkExhausted(o domain.Orientation) {
	c.table.MarkExhausted(c.cell(), o)
}
