package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Options configures the host around a game.
type Options struct {
	Runtime     core.RuntimeConfig
	Keys        KeyMap
	HoldTimeout time.Duration
	Logger      *log.Logger
}

// Model is the Bubble Tea model that drives a blockfall game.
type Model struct {
	game     *blockfall.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *held
	clock    *clock
	pending  []core.InputEvent
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *blockfall.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(max(cfg.ScreenW, MinWidth), max(cfg.ScreenH-1, MinHeight)),
		config: cfg,
		keys:   opts.Keys,
		help:   help.New(),
		held:   newHeld(opts.HoldTimeout),
		clock:  newClock(cfg),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the logical key events for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(now); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	for _, k := range m.keys.Match(msg) {
		m.pending = append(m.pending, m.held.press(k, now)...)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, MinWidth), max(msg.Height-1, MinHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.step(now)
	events := append(m.pending, m.held.expire(now)...)
	m.pending = nil

	if !m.game.Advance(dt, events) {
		m.logger.Debug("game finished")
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot(now time.Time) (string, error) {
	frame := m.game.Snapshot()
	DrawFrame(m.screen, &frame)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.game.Snapshot()
	DrawFrame(m.screen, &frame)

	var footer string
	if frame.Screen == blockfall.ScreenPlay {
		footer = m.help.View(m.keys)
	} else {
		footer = m.help.View(menuHelp{km: m.keys})
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for game.
func Run(game *blockfall.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
