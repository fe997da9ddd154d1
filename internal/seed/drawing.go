package seed

import "golife/internal/core"

// EventKind discriminates drawing-session input events.
type EventKind int

const (
	// EventQuit is a window-close request.
	EventQuit EventKind = iota
	// EventConfirm finishes drawing and starts the simulation.
	EventConfirm
	// EventCancel aborts drawing, like EventQuit.
	EventCancel
	// EventClick is a primary-button press at pixel coordinates X, Y.
	EventClick
)

// Event is one input event fed into a drawing Session.
type Event struct {
	Kind EventKind
	X, Y int
}

// SessionState is the drawing session's lifecycle state.
type SessionState int

const (
	// Capturing means the session is waiting for input.
	Capturing SessionState = iota
	// Done means the user confirmed; the grid holds the seeded cells.
	Done
	// Aborted means the user quit or cancelled; no grid is produced and
	// the caller should shut the program down.
	Aborted
)

// Session is the interactive drawing policy: a state machine driven by
// injected events so it runs against any event source, including tests.
// Grid lines are forced on while the session is live and restored when it
// reaches a terminal state.
type Session struct {
	grid  *core.Grid
	cfg   *core.Config
	pop   int
	state SessionState

	prevGridLines bool
}

// NewSession starts a drawing session over the given grid.
func NewSession(g *core.Grid, cfg *core.Config) *Session {
	s := &Session{grid: g, cfg: cfg, pop: g.Population(), prevGridLines: cfg.GridLines}
	cfg.GridLines = true
	return s
}

// Handle applies one event. Events arriving after a terminal state are
// ignored.
func (s *Session) Handle(ev Event) {
	if s.state != Capturing {
		return
	}
	switch ev.Kind {
	case EventQuit, EventCancel:
		s.finish(Aborted)
	case EventConfirm:
		s.finish(Done)
	case EventClick:
		s.toggle(ev.X, ev.Y)
	}
}

// toggle maps a pixel position to a cell and flips it.
func (s *Session) toggle(px, py int) {
	x := px / s.cfg.CellW
	y := py / s.cfg.CellH
	if !s.grid.InBounds(x, y) {
		return
	}
	if s.grid.Toggle(x, y) {
		s.pop++
	} else {
		s.pop--
	}
}

func (s *Session) finish(state SessionState) {
	s.state = state
	s.cfg.GridLines = s.prevGridLines
}

// State returns the session state.
func (s *Session) State() SessionState { return s.state }

// Population returns the live-cell count drawn so far.
func (s *Session) Population() int { return s.pop }
