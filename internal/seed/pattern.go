package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golife/internal/core"
)

// FromFile seeds the grid from the pattern file at path. The caller gets no
// grid contents on error; a file that cannot be opened or parsed means the
// simulation must not start.
func FromFile(g *core.Grid, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	pop, err := ReadPattern(g, f)
	if err != nil {
		return 0, fmt.Errorf("pattern %s: %w", path, err)
	}
	return pop, nil
}

// ReadPattern parses a pattern stream into the grid and returns the
// population. The format is CSV: one header line, discarded unconditionally,
// then one x,y offset per line, relative to the grid center. Malformed
// fields and offsets that land outside the grid are errors, not silently
// clamped or wrapped.
func ReadPattern(g *core.Grid, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// Header. An empty file seeds an empty grid.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("header: %w", err)
	}

	pop := 0
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return pop, nil
		}
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) != 2 {
			return 0, fmt.Errorf("line %d: want 2 fields, got %d", line, len(rec))
		}
		px, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return 0, fmt.Errorf("line %d: bad x %q", line, rec[0])
		}
		py, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return 0, fmt.Errorf("line %d: bad y %q", line, rec[1])
		}
		x := px + g.Cols()/2
		y := py + g.Rows()/2
		if !g.InBounds(x, y) {
			return 0, fmt.Errorf("line %d: offset %d,%d lands outside the %dx%d grid",
				line, px, py, g.Cols(), g.Rows())
		}
		if !g.Alive(x, y) {
			g.SetAlive(x, y, true)
			pop++
		}
	}
}
