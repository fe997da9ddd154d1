package core

import "image"

// Grid stores one generation of cells as a flat row-major arena.
// The number of columns is the row stride: index(x, y) = y*cols + x,
// with x in [0, cols) and y in [0, rows).
type Grid struct {
	rows, cols int
	cells      []uint8
}

// NewGrid allocates a grid with the given dimensions, all cells dead.
// The size is fixed for the grid's lifetime.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for column x, row y.
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// InBounds reports whether (x, y) denotes a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool { return g.cells[g.Index(x, y)] != 0 }

// SetAlive sets the state of the cell at (x, y).
func (g *Grid) SetAlive(x, y int, alive bool) {
	if alive {
		g.cells[g.Index(x, y)] = 1
		return
	}
	g.cells[g.Index(x, y)] = 0
}

// Toggle flips the cell at (x, y) and reports the new state.
func (g *Grid) Toggle(x, y int) bool {
	i := g.Index(x, y)
	g.cells[i] ^= 1
	return g.cells[i] != 0
}

// Population counts the currently alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// CellRect returns the pixel rectangle of cell (x, y) for the given cell
// size. Geometry is derived from the grid coordinates each draw; it is not
// part of the cell state.
func (g *Grid) CellRect(x, y, cellW, cellH int) image.Rectangle {
	return image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)
}
