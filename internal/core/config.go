package core

import (
	"fmt"
	"image/color"

	"github.com/integrii/flaggy"
)

// Config carries the settings every component reads: grid and cell geometry,
// colors, seeding mode and its parameters. It is constructed once in main and
// passed by pointer; nothing here is global.
type Config struct {
	Rows  int
	Cols  int
	CellW int
	CellH int

	Mode        string
	AliveProb   int
	PatternPath string

	GridLines       bool
	AliveColor      color.RGBA
	BackgroundColor color.RGBA

	ExportDir string
	TPS       int
	Seed      int64

	aliveHex string
	bgHex    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:            100,
		Cols:            100,
		CellW:           8,
		CellH:           8,
		Mode:            "random",
		AliveProb:       20,
		GridLines:       false,
		AliveColor:      color.RGBA{A: 255},
		BackgroundColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ExportDir:       "data/patterns/export",
		TPS:             10,
		aliveHex:        "000000",
		bgHex:           "ffffff",
	}
}

// Bind attaches the configuration to the flaggy default parser.
func (c *Config) Bind() {
	flaggy.Int(&c.Rows, "y", "rows", "Number of grid rows")
	flaggy.Int(&c.Cols, "x", "cols", "Number of grid columns")
	flaggy.Int(&c.CellW, "", "cell-width", "Cell width in pixels")
	flaggy.Int(&c.CellH, "", "cell-height", "Cell height in pixels")
	flaggy.String(&c.Mode, "m", "mode", "Seeding mode [random|pattern|drawing]")
	flaggy.Int(&c.AliveProb, "a", "alive-prob", "Random mode alive probability in percent (0-100)")
	flaggy.String(&c.PatternPath, "p", "pattern", "Pattern file for pattern mode")
	flaggy.Bool(&c.GridLines, "g", "grid-lines", "Draw grid lines between cells")
	flaggy.String(&c.aliveHex, "", "alive-color", "Alive cell color as RRGGBB hex")
	flaggy.String(&c.bgHex, "", "bg-color", "Background color as RRGGBB hex")
	flaggy.String(&c.ExportDir, "e", "export-dir", "Directory for exported generations")
	flaggy.Int(&c.TPS, "t", "tps", "Simulation steps per second")
	flaggy.Int64(&c.Seed, "s", "seed", "Random seed (0 uses the current time)")
}

// Validate checks the parsed values and resolves the color flags.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Cols, c.Rows)
	}
	if c.CellW <= 0 || c.CellH <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellW, c.CellH)
	}
	if c.AliveProb < 0 || c.AliveProb > 100 {
		return fmt.Errorf("alive probability must be 0-100, got %d", c.AliveProb)
	}
	switch c.Mode {
	case "random", "drawing":
	case "pattern":
		if c.PatternPath == "" {
			return fmt.Errorf("pattern mode requires a pattern file")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	var err error
	if c.AliveColor, err = parseHexColor(c.aliveHex); err != nil {
		return fmt.Errorf("alive-color: %w", err)
	}
	if c.BackgroundColor, err = parseHexColor(c.bgHex); err != nil {
		return fmt.Errorf("bg-color: %w", err)
	}
	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("want RRGGBB hex, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("want RRGGBB hex, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
