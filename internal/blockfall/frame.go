package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Screen says which view a frame belongs to.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlay
	ScreenPause
	ScreenScore
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlay:
		return "play"
	case ScreenPause:
		return "pause"
	case ScreenScore:
		return "score"
	default:
		return "unknown"
	}
}

// Band is a range of board rows, inclusive on both ends.
type Band struct {
	Top    int
	Bottom int
}

// Contains reports whether row y lies in the band.
func (b Band) Contains(y int) bool {
	return y >= b.Top && y <= b.Bottom
}

// FloatingChunk is a chunk in flight, in absolute board positions.
type FloatingChunk struct {
	Cells []core.Point
	Tags  []Cell
}

// Frame is the read-only snapshot a renderer draws from. States fill it in
// during the render pass; a fresh Frame is built for every Snapshot call.
type Frame struct {
	Screen Screen

	MenuItems     []string
	MenuSelection int

	Board Grid

	Active     []core.Point
	ActiveKind Kind
	HasActive  bool

	Preview       []core.Point
	PreviewKind   Kind
	PreviewOffset core.Point

	Score  uint64
	Tier   int
	Lines  int
	Pieces int

	Chunks []FloatingChunk

	// HiddenRows is set while a cleared band blinks out.
	HiddenRows *Band

	GameOver bool
}

// Hidden reports whether board row y is blanked this frame.
func (f *Frame) Hidden(y int) bool {
	return f.HiddenRows != nil && f.HiddenRows.Contains(y)
}

func (f *Frame) drawSession(s *Session) {
	f.Board = s.Grid
	f.Score = s.Score
	f.Tier = s.Tier
	f.Lines = s.TotalLines
	f.Pieces = s.Pieces
	f.PreviewKind = s.Next
	f.Preview = Catalog[s.Next].Rotations[0].Shape()
	f.PreviewOffset = PreviewOffset(s.Next)
}

func (f *Frame) drawActive(s *Session) {
	f.Active = s.Active.Cells()
	f.ActiveKind = s.Active.Kind
	f.HasActive = true
}
