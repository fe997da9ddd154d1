// Package life implements the Game of Life generation rule over grid pairs.
package life

import "golife/internal/core"

// Step computes the next generation of src into dst and returns the
// population of dst. The two grids must have identical dimensions and
// distinct storage; updating in place would corrupt neighbor counts for
// cells not yet visited, so violating either precondition panics.
//
// Neighbor positions outside the grid are skipped, not wrapped: the board
// has hard edges.
func Step(dst, src *core.Grid) int {
	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		panic("life: step grids must have identical dimensions")
	}
	if dst == src || &dst.Cells()[0] == &src.Cells()[0] {
		panic("life: step grids must not share storage")
	}

	rows, cols := src.Rows(), src.Cols()
	cells := src.Cells()
	out := dst.Cells()
	pop := 0

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
						continue
					}
					neighbors += int(cells[ny*cols+nx])
				}
			}
			idx := y*cols + x
			alive := cells[idx] != 0
			out[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = 1
				pop++
			}
		}
	}
	return pop
}
