package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return "?"
}

// Cell is a grid occupancy marker. The zero value is empty; a filled cell
// remembers the kind of piece it came from.
type Cell uint8

// Empty is an unoccupied cell.
const Empty Cell = 0

// CellOf returns a filled cell tagged with k.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != Empty
}

// Kind returns the tag of a filled cell.
func (c Cell) Kind() (Kind, bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Grid is the row-major playfield, index = x + y*Width.
type Grid [Width * Height]Cell

var bounds = core.NewRect(0, 0, Width, Height)

func inside(p core.Point) bool {
	return bounds.Contains(p)
}

// At returns the cell at p, or Empty when p is off the board.
func (g *Grid) At(p core.Point) Cell {
	if !inside(p) {
		return Empty
	}
	return g[p.X+p.Y*Width]
}

// Set writes c at p. Off-board writes are dropped.
func (g *Grid) Set(p core.Point, c Cell) {
	if !inside(p) {
		return
	}
	g[p.X+p.Y*Width] = c
}

// Occupied reports whether p holds a filled cell. Points above the board
// (y < 0) are never occupied; callers that care must check y themselves.
func (g *Grid) Occupied(p core.Point) bool {
	return g.At(p).Filled()
}

// Fits reports whether shape placed at pivot collides with nothing.
// Cells above the board are free; cells past the side walls or the floor
// always collide.
func (g *Grid) Fits(shape []core.Point, pivot core.Point) bool {
	for _, rel := range shape {
		p := pivot.Add(rel)
		if p.Y < 0 {
			continue
		}
		if p.X < 0 || p.X >= Width || p.Y >= Height {
			return false
		}
		if g.Occupied(p) {
			return false
		}
	}
	return true
}

// Merge writes c into every cell of shape at pivot that lies on the board.
// Cells above the top edge are dropped.
func (g *Grid) Merge(shape []core.Point, pivot core.Point, c Cell) {
	for _, rel := range shape {
		g.Set(pivot.Add(rel), c)
	}
}

// FilledLines returns the indices of completely occupied rows, top to bottom.
func (g *Grid) FilledLines() []int {
	var lines []int
	for y := 0; y < Height; y++ {
		full := true
		for x := 0; x < Width; x++ {
			if !g[x+y*Width].Filled() {
				full = false
				break
			}
		}
		if full {
			lines = append(lines, y)
		}
	}
	return lines
}

// ClearRows resets every cell of the given rows to Empty. Rows above the
// cleared band are left where they are; chunk gravity moves them.
func (g *Grid) ClearRows(rows []int) {
	for _, y := range rows {
		if y < 0 || y >= Height {
			continue
		}
		for x := 0; x < Width; x++ {
			g[x+y*Width] = Empty
		}
	}
}

// Reset empties the whole grid.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g {
		if c.Filled() {
			n++
		}
	}
	return n
}
