package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// palette is the ANSI 256-color code for each screen color.
var palette = [core.ColorCount]string{
	core.ColorCyan:    "6",
	core.ColorYellow:  "3",
	core.ColorMagenta: "5",
	core.ColorGreen:   "2",
	core.ColorRed:     "1",
	core.ColorBlue:    "4",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
	core.ColorWhite:   "7",
	core.ColorBright:  "15",
	core.ColorAccent:  "11",
}

var colorStyles = newColorStyles()

func newColorStyles() [core.ColorCount]lipgloss.Style {
	var styles [core.ColorCount]lipgloss.Style
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

// styleFor returns the style for c; unknown colors draw unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen turns the cell buffer into terminal output, one styled
// span per run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(string(run)))
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(color).Render(string(run)))
			run = run[:0]
		}
	}
	return sb.String()
}
