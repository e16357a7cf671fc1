package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	menuStart = iota
	menuQuit
)

var menuItems = []string{"Start game", "Quit"}

type mainMenu struct {
	base
	selection int
	confirmed bool
}

func newMainMenu() *mainMenu {
	return &mainMenu{}
}

func (m *mainMenu) HandleInput(_ *Session, ev core.InputEvent) {
	if !ev.Pressed {
		return
	}
	switch ev.Key {
	case core.KeyMenuUp:
		m.selection = (m.selection + len(menuItems) - 1) % len(menuItems)
	case core.KeyMenuDown:
		m.selection = (m.selection + 1) % len(menuItems)
	case core.KeyConfirm:
		m.confirmed = true
	}
}

func (m *mainMenu) Update(s *Session, _ float64) directive {
	if !m.confirmed {
		return hold()
	}
	m.confirmed = false

	switch m.selection {
	case menuStart:
		return transition(newPlay())
	case menuQuit:
		s.logger.Debug("quit from menu")
		return pop()
	default:
		panic(fmt.Sprintf("blockfall: menu selection %d out of range", m.selection))
	}
}

func (m *mainMenu) Render(_ *Session, f *Frame) {
	f.Screen = ScreenMenu
	f.MenuItems = menuItems
	f.MenuSelection = m.selection
}
