package seed

import (
	"testing"

	"golife/internal/core"
)

func newDrawingFixture() (*core.Grid, *core.Config, *Session) {
	cfg := core.NewConfig()
	cfg.Rows, cfg.Cols = 10, 10
	cfg.CellW, cfg.CellH = 8, 8
	cfg.GridLines = false
	g := core.NewGrid(cfg.Rows, cfg.Cols)
	return g, cfg, NewSession(g, cfg)
}

func TestSessionToggleRoundTrip(t *testing.T) {
	g, _, s := newDrawingFixture()

	// Pixel (20, 9) falls in cell (2, 1).
	s.Handle(Event{Kind: EventClick, X: 20, Y: 9})
	if !g.Alive(2, 1) {
		t.Fatal("click did not set cell (2,1) alive")
	}
	if s.Population() != 1 {
		t.Fatalf("population = %d, expected 1", s.Population())
	}

	s.Handle(Event{Kind: EventClick, X: 20, Y: 9})
	if g.Alive(2, 1) {
		t.Fatal("second click did not clear cell (2,1)")
	}
	if s.Population() != 0 {
		t.Fatalf("population = %d, expected 0", s.Population())
	}
}

func TestSessionIgnoresClicksOutsideGrid(t *testing.T) {
	_, _, s := newDrawingFixture()
	s.Handle(Event{Kind: EventClick, X: 500, Y: 500})
	if s.Population() != 0 {
		t.Fatalf("population = %d, expected 0", s.Population())
	}
	if s.State() != Capturing {
		t.Fatalf("state = %v, expected capturing", s.State())
	}
}

func TestSessionConfirmKeepsGrid(t *testing.T) {
	g, _, s := newDrawingFixture()
	s.Handle(Event{Kind: EventClick, X: 0, Y: 0})
	s.Handle(Event{Kind: EventConfirm})
	if s.State() != Done {
		t.Fatalf("state = %v, expected done", s.State())
	}
	if !g.Alive(0, 0) || s.Population() != 1 {
		t.Fatal("confirmed session lost the drawn cells")
	}
}

func TestSessionQuitAndCancelAbort(t *testing.T) {
	for _, kind := range []EventKind{EventQuit, EventCancel} {
		_, _, s := newDrawingFixture()
		s.Handle(Event{Kind: kind})
		if s.State() != Aborted {
			t.Fatalf("event %v: state = %v, expected aborted", kind, s.State())
		}
	}
}

func TestSessionForcesAndRestoresGridLines(t *testing.T) {
	_, cfg, s := newDrawingFixture()
	if !cfg.GridLines {
		t.Fatal("grid lines not forced on while drawing")
	}
	s.Handle(Event{Kind: EventConfirm})
	if cfg.GridLines {
		t.Fatal("grid lines not restored after drawing")
	}

	// The prior setting is restored on abort as well.
	cfg2 := core.NewConfig()
	cfg2.GridLines = true
	s2 := NewSession(core.NewGrid(5, 5), cfg2)
	s2.Handle(Event{Kind: EventQuit})
	if !cfg2.GridLines {
		t.Fatal("grid lines setting lost on abort")
	}
}

func TestSessionIgnoresEventsAfterTerminal(t *testing.T) {
	g, _, s := newDrawingFixture()
	s.Handle(Event{Kind: EventConfirm})
	s.Handle(Event{Kind: EventClick, X: 0, Y: 0})
	if g.Population() != 0 {
		t.Fatal("click after confirm mutated the grid")
	}
}
