//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/export"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/seed"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reporter receives operator-visible export results.
type Reporter interface {
	ExportDone(path string)
	ExportFailed(err error)
}

// Game drives the simulation against the ebiten frame loop. It owns the
// double-buffered grid pair; cur is always the render target and src of the
// next step, nxt the destination, swapped after every step.
type Game struct {
	cfg     *core.Config
	mode    seed.Mode
	painter *render.Painter

	cur, nxt *core.Grid

	drawing *seed.Session

	exporter export.Exporter
	reporter Reporter

	generation int
	population int
	paused     bool
	tickOnce   bool
}

// New constructs a Game over a seeded grid pair. When mode is seed.Drawing
// the grid starts empty and the game opens in the interactive drawing phase.
func New(cfg *core.Config, mode seed.Mode, cur, nxt *core.Grid, population int, reporter Reporter) *Game {
	g := &Game{
		cfg:        cfg,
		mode:       mode,
		painter:    render.NewPainter(cfg),
		cur:        cur,
		nxt:        nxt,
		exporter:   export.Exporter{Dir: cfg.ExportDir},
		reporter:   reporter,
		population: population,
	}
	if mode == seed.Drawing {
		g.drawing = seed.NewSession(cur, cfg)
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.drawing != nil {
		return g.updateDrawing()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.export()
	}

	if !g.paused || g.tickOnce {
		g.population = life.Step(g.nxt, g.cur)
		g.cur, g.nxt = g.nxt, g.cur
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// updateDrawing feeds this frame's input into the drawing session.
func (g *Game) updateDrawing() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.drawing.Handle(seed.Event{Kind: seed.EventCancel})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.drawing.Handle(seed.Event{Kind: seed.EventConfirm})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.drawing.Handle(seed.Event{Kind: seed.EventClick, X: x, Y: y})
	}

	switch g.drawing.State() {
	case seed.Aborted:
		return ebiten.Termination
	case seed.Done:
		g.population = g.drawing.Population()
		g.drawing = nil
		ebiten.SetTPS(g.cfg.TPS)
	default:
		g.population = g.drawing.Population()
	}
	return nil
}

func (g *Game) export() {
	path, err := g.exporter.Export(g.cur, g.mode, g.cfg.CellH, time.Now())
	if err != nil {
		if g.reporter != nil {
			g.reporter.ExportFailed(err)
		}
		return
	}
	if g.reporter != nil {
		g.reporter.ExportDone(path)
	}
}

// Draw renders the current grid and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.DrawGrid(screen, g.cur)
	g.painter.DrawStatistics(screen, g.generation, g.population)
	if g.drawing != nil {
		g.painter.DrawLabel(screen, "DRAWING MODE", color.Black, 25, 100)
	}
}

// Layout returns the window size in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.cfg.CellW, g.cfg.Rows * g.cfg.CellH
}
