package life

import (
	"testing"

	"golife/internal/core"
)

func TestAllDeadStaysDead(t *testing.T) {
	src := core.NewGrid(6, 9)
	dst := core.NewGrid(6, 9)

	pop := Step(dst, src)
	if pop != 0 {
		t.Fatalf("population = %d, expected 0", pop)
	}
	for i, c := range dst.Cells() {
		if c != 0 {
			t.Fatalf("cell index %d alive in next generation of an empty grid", i)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	cur := core.NewGrid(5, 5)
	nxt := core.NewGrid(5, 5)

	cur.SetAlive(2, 1, true)
	cur.SetAlive(2, 2, true)
	cur.SetAlive(2, 3, true)

	pop := Step(nxt, cur)
	if pop != 3 {
		t.Fatalf("population = %d, expected 3", pop)
	}

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if nxt.Alive(x, y) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, nxt.Alive(x, y), shouldBeAlive)
			}
		}
	}

	cur, nxt = nxt, cur
	Step(nxt, cur)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if nxt.Alive(x, y) != shouldBeAlive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, nxt.Alive(x, y), shouldBeAlive)
			}
		}
	}
}

func TestRuleTable(t *testing.T) {
	// Center cell of a 3x3 grid with n alive neighbors.
	cases := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"lonely live cell dies", true, 1, false},
		{"live cell with two survives", true, 2, true},
		{"live cell with three survives", true, 3, true},
		{"crowded live cell dies", true, 4, false},
		{"dead cell with three is born", false, 3, true},
		{"dead cell with two stays dead", false, 2, false},
		{"dead cell with four stays dead", false, 4, false},
	}

	// Neighbor positions around (1,1), filled in order.
	spots := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	for _, tc := range cases {
		cur := core.NewGrid(3, 3)
		nxt := core.NewGrid(3, 3)
		cur.SetAlive(1, 1, tc.alive)
		for i := 0; i < tc.neighbors; i++ {
			cur.SetAlive(spots[i][0], spots[i][1], true)
		}
		Step(nxt, cur)
		if nxt.Alive(1, 1) != tc.want {
			t.Fatalf("%s: center alive=%v, expected %v", tc.name, nxt.Alive(1, 1), tc.want)
		}
	}
}

func TestPopulationMatchesOutputGrid(t *testing.T) {
	cur := core.NewGrid(10, 10)
	nxt := core.NewGrid(10, 10)

	// R-pentomino in the middle.
	for _, p := range [][2]int{{5, 4}, {6, 4}, {4, 5}, {5, 5}, {5, 6}} {
		cur.SetAlive(p[0], p[1], true)
	}

	for i := 0; i < 8; i++ {
		pop := Step(nxt, cur)
		if pop != nxt.Population() {
			t.Fatalf("step %d returned population %d but grid holds %d", i, pop, nxt.Population())
		}
		cur, nxt = nxt, cur
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	rows, cols := 7, 9
	cur := core.NewGrid(rows, cols)
	nxt := core.NewGrid(rows, cols)

	// Fill the whole border and leave the interior dead.
	for x := 0; x < cols; x++ {
		cur.SetAlive(x, 0, true)
		cur.SetAlive(x, rows-1, true)
	}
	for y := 0; y < rows; y++ {
		cur.SetAlive(0, y, true)
		cur.SetAlive(cols-1, y, true)
	}

	Step(nxt, cur)

	// With hard edges a corner sees exactly 2 live neighbors and survives;
	// with wrapping it would see more and die. Edge cells away from the
	// corners see 3 or 4 depending on position.
	for _, corner := range [][2]int{{0, 0}, {cols - 1, 0}, {0, rows - 1}, {cols - 1, rows - 1}} {
		if !nxt.Alive(corner[0], corner[1]) {
			t.Fatalf("corner (%d,%d) died; edge neighbors must not wrap", corner[0], corner[1])
		}
	}

	// Cells two rows deep have at most the 3 border cells above them as
	// neighbors only when adjacent to the border; the deep interior stays dead.
	for y := 2; y < rows-2; y++ {
		for x := 2; x < cols-2; x++ {
			if nxt.Alive(x, y) {
				t.Fatalf("interior cell (%d,%d) came alive away from the border", x, y)
			}
		}
	}
}

func TestStepRejectsMismatchedGrids(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched grid dimensions")
		}
	}()
	Step(core.NewGrid(4, 4), core.NewGrid(5, 5))
}

func TestStepRejectsSharedStorage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for in-place step")
		}
	}()
	g := core.NewGrid(4, 4)
	Step(g, g)
}
