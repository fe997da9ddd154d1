package seed

import "golife/internal/core"

// Randomize marks cells in the central 50%-by-50% sub-rectangle alive with
// the given percent probability and returns the resulting population. Cells
// outside the sub-rectangle stay dead.
func Randomize(g *core.Grid, percent int, rng *core.RNG) int {
	rows, cols := g.Rows(), g.Cols()
	pop := 0
	for y := rows / 4; y < 3*rows/4; y++ {
		for x := cols / 4; x < 3*cols/4; x++ {
			if rng.Chance(percent) {
				g.SetAlive(x, y, true)
				pop++
			}
		}
	}
	return pop
}
