//go:build ebiten

// Package render draws grid snapshots and HUD text to an ebiten image.
package render

import (
	"fmt"
	"image/color"

	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var gridLineColor = color.RGBA{R: 215, G: 215, B: 215, A: 255}

// Painter renders a grid with the configured cell geometry and colors.
type Painter struct {
	cfg *core.Config
}

// NewPainter constructs a Painter bound to the shared configuration.
func NewPainter(cfg *core.Config) *Painter {
	return &Painter{cfg: cfg}
}

// DrawGrid clears dst to the background color and draws every cell, with a
// light outline per cell when grid lines are on.
func (p *Painter) DrawGrid(dst *ebiten.Image, g *core.Grid) {
	dst.Fill(p.cfg.BackgroundColor)
	for x := 0; x < g.Cols(); x++ {
		for y := 0; y < g.Rows(); y++ {
			r := g.CellRect(x, y, p.cfg.CellW, p.cfg.CellH)
			if g.Alive(x, y) {
				vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y),
					float32(r.Dx()), float32(r.Dy()), p.cfg.AliveColor, false)
			}
			if p.cfg.GridLines {
				vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y),
					float32(r.Dx()), float32(r.Dy()), 1, gridLineColor, false)
			}
		}
	}
}

// DrawStatistics prints the generation and population readout.
func (p *Painter) DrawStatistics(dst *ebiten.Image, generation, population int) {
	msg := fmt.Sprintf("generation: %d  population: %d", generation, population)
	text.Draw(dst, msg, basicfont.Face7x13, 6, 16, color.RGBA{R: 200, G: 40, B: 40, A: 255})
}

// DrawLabel prints a free-form text label at the given pixel position.
func (p *Painter) DrawLabel(dst *ebiten.Image, label string, col color.Color, x, y int) {
	text.Draw(dst, label, basicfont.Face7x13, x, y, col)
}
