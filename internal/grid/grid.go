// Package grid provides the compacted cell grid shared by the pipeline stages.
package grid

import "fmt"

// Cell is the classification of one compacted cell.
//
// A cell starts Free and may be promoted exactly once, either to Wall by the
// rasterizer or to Filled by the flood filler. It never moves back.
type Cell uint8

const (
	// Free cells are untouched. After flood fill they are exterior.
	Free Cell = iota

	// Wall cells lie on the boundary.
	Wall

	// Filled cells were reached by the interior flood fill.
	Filled
)

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Free:
		return "Free"
	case Wall:
		return "Wall"
	case Filled:
		return "Filled"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Point addresses a cell by compacted row and column.
type Point struct {
	Row, Col int
}

// Grid is a rows x cols array of cells.
//
// Cells are stored in a flat slice in row-major order:
// index = row*cols + col.
//
// Thread safety: Grid is NOT safe for concurrent mutation. Pipeline stages
// hand a finished grid to the next stage, which clones it before writing.
type Grid struct {
	// rows is the number of compacted rows.
	rows int

	// cols is the number of compacted columns.
	cols int

	// cells holds the classification of every cell.
	cells []Cell
}

// New creates a grid with every cell Free.
// Non-positive dimensions produce an empty grid.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// In reports whether (r, c) lies inside the grid.
func (g *Grid) In(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r, c). Out-of-range positions read as Free.
func (g *Grid) At(r, c int) Cell {
	if !g.In(r, c) {
		return Free
	}
	return g.cells[r*g.cols+c]
}

// Promote moves the cell at (r, c) from Free to state.
// It returns false, leaving the grid unchanged, if the position is out of
// range, the cell is not Free or state is Free.
func (g *Grid) Promote(r, c int, state Cell) bool {
	if state == Free || !g.In(r, c) {
		return false
	}
	i := r*g.cols + c
	if g.cells[i] != Free {
		return false
	}
	g.cells[i] = state
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Count returns the number of cells in state.
func (g *Grid) Count(state Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line: '.' Free, '#' Wall, 'o' Filled.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := range g.rows {
		for c := range g.cols {
			switch g.At(r, c) {
			case Wall:
				buf = append(buf, '#')
			case Filled:
				buf = append(buf, 'o')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
