// Package export writes the alive cells of a generation to a CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golife/internal/core"
	"golife/internal/seed"
)

const timestampLayout = "2006-01-02-15:04:05"

// Exporter serializes generations under a fixed directory. Export failures
// are reported, never fatal; the simulation keeps running without them.
type Exporter struct {
	Dir string
}

// Export writes the alive cells of g to a timestamped CSV file and returns
// its path. The filename encodes the seeding mode, the row count, and the
// cell pixel height. The directory is created if absent.
func (e Exporter) Export(g *core.Grid, mode seed.Mode, cellH int, now time.Time) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}

	name := fmt.Sprintf("mode%c-n%d-d%d-%s.csv",
		mode.Rune(), g.Rows(), cellH, now.Format(timestampLayout))
	path := filepath.Join(e.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	for x := 0; x < g.Cols(); x++ {
		for y := 0; y < g.Rows(); y++ {
			if !g.Alive(x, y) {
				continue
			}
			if err := w.Write([]string{strconv.Itoa(x), strconv.Itoa(y)}); err != nil {
				return "", fmt.Errorf("export %s: %w", path, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	return path, nil
}
