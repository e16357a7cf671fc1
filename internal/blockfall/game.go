// Package blockfall is the falling-block puzzle simulation: the grid and
// collision rules, the tetromino catalog with its wall kicks, the line clear
// and chunk gravity cascade, and the stack of gameplay states that ties them
// together.
//
// The package does no I/O. A host feeds it elapsed time and logical key
// events through Advance and pulls a Frame to draw after each call.
package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is a running simulation.
type Game struct {
	session *Session
	states  *machine
	running bool
}

// New builds a game sitting at the main menu, or in play with WithSkipMenu.
func New(opts ...Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.timing.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	var initial State = newMainMenu()
	if o.skipMenu {
		initial = newPlay()
	}

	g := &Game{
		session: newSession(o),
		states:  newMachine(initial),
		running: true,
	}
	g.states.Start(g.session)
	o.logger.Debug("game created", "seed", o.seed, "start_tier", o.startTier, "skip_menu", o.skipMenu)
	return g, nil
}

// Advance delivers the input events in order and then runs one update of
// dt seconds. It returns false once the state stack is empty; further calls
// are no-ops.
func (g *Game) Advance(dt float64, events []core.InputEvent) bool {
	if !g.running {
		return false
	}
	for _, ev := range events {
		g.states.HandleInput(g.session, ev)
	}
	g.running = g.states.Update(g.session, dt)
	return g.running
}

// Running reports whether the game still has states to run.
func (g *Game) Running() bool {
	return g.running
}

// Snapshot renders the current state stack into a new Frame.
func (g *Game) Snapshot() Frame {
	var f Frame
	g.states.Render(g.session, &f)
	return f
}

// Session exposes the game data for inspection. Callers must not mutate it.
func (g *Game) Session() *Session {
	return g.session
}

// Depth returns the height of the outer state stack.
func (g *Game) Depth() int {
	return g.states.Depth()
}
