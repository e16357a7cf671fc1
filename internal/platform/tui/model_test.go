package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := blockfall.New(blockfall.WithSeed(1))
	if err != nil {
		t.Fatalf("blockfall.New failed: %v", err)
	}
	return NewModel(game, Options{
		Runtime: core.DefaultConfig(),
		Keys: NewKeyMap(map[core.Key][]string{
			core.KeyMenuDown: {"down"},
			core.KeyConfirm:  {"enter"},
		}),
		HoldTimeout: 80 * time.Millisecond,
	})
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if got := next.(Model).View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}

func TestModelMenuQuitEndsProgram(t *testing.T) {
	var model tea.Model = newTestModel(t)
	now := time.Unix(100, 0)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(TickMsg(now))
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, cmd := model.Update(TickMsg(now.Add(16 * time.Millisecond)))

	if cmd == nil {
		t.Fatal("expected quit command once the game stops")
	}
	if !model.(Model).quitting {
		t.Error("model should be quitting after the menu's quit entry")
	}
}

func TestModelResizeKeepsMinimum(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	s := next.(Model).screen
	if s.Width() != MinWidth || s.Height() != MinHeight {
		t.Errorf("screen = %dx%d, expected %dx%d", s.Width(), s.Height(), MinWidth, MinHeight)
	}
}
