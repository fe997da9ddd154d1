//go:build !ebiten

package render

import (
	"image/color"

	"golife/internal/core"
)

// Painter is a placeholder that satisfies the API expected by the GUI build.
type Painter struct{}

// NewPainter panics to indicate that the ebiten build tag is required.
func NewPainter(*core.Config) *Painter {
	panic("render.NewPainter requires building with the 'ebiten' tag")
}

// DrawGrid is a no-op placeholder.
func (p *Painter) DrawGrid(any, *core.Grid) {}

// DrawStatistics is a no-op placeholder.
func (p *Painter) DrawStatistics(any, int, int) {}

// DrawLabel is a no-op placeholder.
func (p *Painter) DrawLabel(any, string, color.Color, int, int) {}
