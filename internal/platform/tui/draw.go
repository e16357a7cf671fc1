package tui

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout of the play screen. Each board cell is two characters wide.
const (
	cellW    = 2
	boardX   = 1
	boardY   = 1
	boardW   = blockfall.Width*cellW + 2
	boardH   = blockfall.Height + 2
	panelX   = boardX + boardW + 2
	previewW = 4*cellW + 2
	previewH = 4 + 2
)

// MinWidth and MinHeight are the smallest screen DrawFrame fits in.
const (
	MinWidth  = panelX + 16
	MinHeight = boardY + boardH
)

var kindColors = [blockfall.KindCount]core.Color{
	blockfall.KindI: core.ColorCyan,
	blockfall.KindO: core.ColorYellow,
	blockfall.KindT: core.ColorMagenta,
	blockfall.KindS: core.ColorGreen,
	blockfall.KindZ: core.ColorRed,
	blockfall.KindJ: core.ColorBlue,
	blockfall.KindL: core.ColorOrange,
}

func cellColor(c blockfall.Cell) core.Color {
	if k, ok := c.Kind(); ok {
		return kindColors[k]
	}
	return core.ColorGray
}

// DrawFrame draws a simulation snapshot into dst.
func DrawFrame(dst *core.Screen, f *blockfall.Frame) {
	dst.Clear()
	switch f.Screen {
	case blockfall.ScreenMenu:
		drawMenu(dst, f)
	case blockfall.ScreenPlay:
		drawPlay(dst, f)
	case blockfall.ScreenPause:
		drawPlay(dst, f)
		drawBanner(dst, "PAUSED", "p/esc: resume")
	case blockfall.ScreenScore:
		drawScore(dst, f)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

func boardCell(p core.Point) (int, int) {
	return boardX + 1 + p.X*cellW, boardY + 1 + p.Y
}

func drawPlay(dst *core.Screen, f *blockfall.Frame) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	for y := 0; y < blockfall.Height; y++ {
		for x := 0; x < blockfall.Width; x++ {
			sx, sy := boardCell(core.Pt(x, y))
			c := f.Board.At(core.Pt(x, y))
			if !c.Filled() || f.Hidden(y) {
				dst.SetColored(sx, sy, ' ', core.ColorDefault)
				dst.SetColored(sx+1, sy, '.', core.ColorGray)
				continue
			}
			drawBlock(dst, sx, sy, cellColor(c))
		}
	}

	for _, ch := range f.Chunks {
		for i, p := range ch.Cells {
			if p.Y < 0 {
				continue
			}
			sx, sy := boardCell(p)
			drawBlock(dst, sx, sy, cellColor(ch.Tags[i]))
		}
	}

	if f.HasActive {
		for _, p := range f.Active {
			if p.Y < 0 {
				continue
			}
			sx, sy := boardCell(p)
			drawBlock(dst, sx, sy, kindColors[f.ActiveKind])
		}
	}

	drawPanel(dst, f)
}

func drawPanel(dst *core.Screen, f *blockfall.Frame) {
	dst.DrawTextColored(panelX, boardY, "NEXT", core.ColorBright)
	box := core.NewRect(panelX, boardY+1, previewW, previewH)
	dst.DrawBox(box, core.ColorGray)
	for _, p := range f.Preview {
		at := p.Add(f.PreviewOffset)
		drawBlock(dst, box.X+1+at.X*cellW, box.Y+1+at.Y, kindColors[f.PreviewKind])
	}

	y := box.Bottom() + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", f.Score)},
		{"LEVEL", fmt.Sprintf("%d", f.Tier)},
		{"LINES", fmt.Sprintf("%d", f.Lines)},
		{"PIECES", fmt.Sprintf("%d", f.Pieces)},
	}
	for _, st := range stats {
		dst.DrawTextColored(panelX, y, st.label, core.ColorAccent)
		dst.DrawText(panelX, y+1, st.value)
		y += 3
	}
}

func drawBanner(dst *core.Screen, title, hint string) {
	w := max(len(title), len(hint)) + 4
	x := boardX + (boardW-w)/2
	y := boardY + boardH/2 - 2
	dst.DrawRect(core.NewRect(x, y, w, 4), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, w, 4), core.ColorBright)
	dst.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorAccent)
	dst.DrawTextColored(x+(w-len(hint))/2, y+2, hint, core.ColorGray)
}

func drawMenu(dst *core.Screen, f *blockfall.Frame) {
	top := dst.Height()/2 - len(f.MenuItems) - 2
	dst.DrawTextCentered(top, "B L O C K F A L L", core.ColorCyan)
	for i, item := range f.MenuItems {
		label := "  " + item + "  "
		color := core.ColorWhite
		if i == f.MenuSelection {
			label = "> " + item + " <"
			color = core.ColorAccent
		}
		dst.DrawTextCentered(top+3+i*2, label, color)
	}
}

func drawScore(dst *core.Screen, f *blockfall.Frame) {
	top := dst.Height()/2 - 4
	dst.DrawTextCentered(top, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(top+2, fmt.Sprintf("Score: %d", f.Score), core.ColorAccent)
	dst.DrawTextCentered(top+3, fmt.Sprintf("Level: %d", f.Tier), core.ColorWhite)
	dst.DrawTextCentered(top+4, fmt.Sprintf("Lines: %d", f.Lines), core.ColorWhite)
	dst.DrawTextCentered(top+6, "enter: main menu", core.ColorGray)
}
