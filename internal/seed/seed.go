// Package seed populates generation zero of a grid under one of three
// policies: random center fill, pattern file, or interactive drawing.
package seed

import (
	"fmt"

	"golife/internal/core"
)

// Mode selects the seeding policy.
type Mode int

const (
	// Random fills the central quarter of the grid probabilistically.
	Random Mode = iota
	// Pattern loads alive cells from a coordinate file.
	Pattern
	// Drawing lets the user toggle cells interactively before the run.
	Drawing
)

// ParseMode maps a mode name to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "random":
		return Random, nil
	case "pattern":
		return Pattern, nil
	case "drawing":
		return Drawing, nil
	}
	return 0, fmt.Errorf("unknown seeding mode %q", s)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Pattern:
		return "pattern"
	case Drawing:
		return "drawing"
	}
	return "unknown"
}

// Rune returns the single-character mode tag used in export filenames.
func (m Mode) Rune() rune {
	switch m {
	case Pattern:
		return 'p'
	case Drawing:
		return 'd'
	}
	return 'r'
}

// Populate seeds the grid under the given non-interactive mode and returns
// the resulting population. Drawing mode is frame-driven and handled by a
// Session instead.
func Populate(mode Mode, g *core.Grid, cfg *core.Config, rng *core.RNG) (int, error) {
	switch mode {
	case Random:
		return Randomize(g, cfg.AliveProb, rng), nil
	case Pattern:
		return FromFile(g, cfg.PatternPath)
	}
	return 0, fmt.Errorf("mode %s cannot be populated non-interactively", mode)
}
