//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/seed"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	cfg := core.NewConfig()
	flaggy.SetName("golife")
	flaggy.SetDescription("Conway's Game of Life with random, pattern, and drawing seed modes")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.Bind()
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	mode, err := seed.ParseMode(cfg.Mode)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	seedVal := cfg.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}

	cur := core.NewGrid(cfg.Rows, cfg.Cols)
	nxt := core.NewGrid(cfg.Rows, cfg.Cols)

	population := 0
	if mode != seed.Drawing {
		population, err = seed.Populate(mode, cur, cfg, core.NewRNG(seedVal))
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
	}

	game := app.New(cfg, mode, cur, nxt, population, consoleReporter{})

	ebiten.SetWindowTitle("golife — " + mode.String())
	if mode == seed.Drawing {
		// Drawing wants responsive input; the configured rate takes over
		// once the user confirms.
		ebiten.SetTPS(60)
	} else {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowSize(cfg.Cols*cfg.CellW, cfg.Rows*cfg.CellH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// consoleReporter prints export results to stderr.
type consoleReporter struct{}

func (consoleReporter) ExportDone(path string) {
	fmt.Fprintln(os.Stderr, aurora.Green("Export located at "+path))
}

func (consoleReporter) ExportFailed(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red("Export failed: "+err.Error()))
}
