// Package tui hosts the blockfall simulation in a Bubble Tea program. It
// maps terminal keys to logical keys, feeds elapsed time to the game and
// draws the frame snapshot with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// maxStep caps a single simulation step after a stall.
const maxStep = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clock turns tick timestamps into elapsed seconds.
type clock struct {
	last     time.Time
	fallback float64
}

func newClock(cfg core.RuntimeConfig) *clock {
	return &clock{fallback: cfg.TickSeconds()}
}

// step returns the seconds since the previous tick, capped at maxStep.
func (c *clock) step(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return core.ClampF(dt, 0, maxStep)
}
