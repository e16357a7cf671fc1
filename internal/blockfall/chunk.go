package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// Chunk is a connected group of cells lifted out of the grid after a line
// clear. Cells are relative to Base; Tags keeps each cell's kind so the
// chunk lands with its original colors.
type Chunk struct {
	Base  core.Point
	Cells []core.Point
	Tags  []Cell
}

// Len returns the number of cells in the chunk.
func (c *Chunk) Len() int {
	return len(c.Cells)
}

// Absolute returns the chunk's board positions when lowered by drop rows.
func (c *Chunk) Absolute(drop int) []core.Point {
	out := make([]core.Point, len(c.Cells))
	base := c.Base.Down(drop)
	for i, rel := range c.Cells {
		out[i] = base.Add(rel)
	}
	return out
}

// Fits reports whether the chunk lowered by drop rows collides with the grid.
func (c *Chunk) Fits(g *Grid, drop int) bool {
	return g.Fits(c.Cells, c.Base.Down(drop))
}

// Land writes the chunk back into the grid lowered by drop rows.
func (c *Chunk) Land(g *Grid, drop int) {
	base := c.Base.Down(drop)
	for i, rel := range c.Cells {
		g.Set(base.Add(rel), c.Tags[i])
	}
}

// ExtractChunks lifts every 4-connected group of filled cells out of the
// grid and returns them as chunks. The bottom begin rows are not searched,
// so begin = 0 covers the whole board. begin is clamped to [0, Height].
// Extracted cells are cleared.
func ExtractChunks(g *Grid, begin int) []Chunk {
	rows := Height - core.Clamp(begin, 0, Height)
	if rows == 0 {
		return nil
	}
	size := rows * Width
	visited := make([]bool, size)
	stack := make([]int, 0, 16)
	var chunks []Chunk

	visit := func(idx int) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		if g[idx].Filled() {
			stack = append(stack, idx)
		}
	}

	for start := 0; start < size; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		if !g[start].Filled() {
			continue
		}

		var points []core.Point
		var tags []Cell
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			points = append(points, core.Pt(idx%Width, idx/Width))
			tags = append(tags, g[idx])
			g[idx] = Empty

			x, y := idx%Width, idx/Width
			if x > 0 {
				visit(idx - 1)
			}
			if x < Width-1 {
				visit(idx + 1)
			}
			if y > 0 {
				visit(idx - Width)
			}
			if y < rows-1 {
				visit(idx + Width)
			}
		}
		chunks = append(chunks, newChunk(points, tags))
	}
	return chunks
}

// newChunk anchors absolute points at their bounding-box origin.
func newChunk(points []core.Point, tags []Cell) Chunk {
	base := points[0]
	for _, p := range points[1:] {
		base.X = min(base.X, p.X)
		base.Y = min(base.Y, p.Y)
	}
	cells := make([]core.Point, len(points))
	for i, p := range points {
		cells[i] = p.Sub(base)
	}
	return Chunk{Base: base, Cells: cells, Tags: tags}
}
