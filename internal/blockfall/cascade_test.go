package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// runCascade drives a line clear on its own machine until it pops.
func runCascade(t *testing.T, s *Session) int {
	t.Helper()
	m := newMachine(newLineClearing())
	m.Start(s)
	ticks := 0
	for m.Update(s, 1) {
		ticks++
		require.Less(t, ticks, 200, "cascade did not settle")
	}
	return ticks
}

func TestCascadeDropsDebris(t *testing.T) {
	s := testSession(t)
	drawRows(t, &s.Grid, 17,
		"...##.....",
		".......#..",
		"##########",
	)

	runCascade(t, s)

	assert.Equal(t, 1, s.TotalLines)
	assert.Equal(t, uint64(300), s.Score)
	assert.Equal(t, 3, s.Grid.Count())
	for _, x := range []int{3, 4, 7} {
		assert.True(t, s.Grid.Occupied(core.Pt(x, Height-1)), "column %d landed on the floor", x)
	}
}

func TestCascadeReentersOnNewLine(t *testing.T) {
	s := testSession(t)
	drawRows(t, &s.Grid, 17,
		".........#",
		"#########.",
		"##########",
	)

	runCascade(t, s)

	assert.Equal(t, 2, s.TotalLines, "landed chunks complete a second row")
	assert.Equal(t, uint64(600), s.Score)
	assert.Zero(t, s.Grid.Count())
}

func TestCascadeKeepsUnsupportedRowsBelowBand(t *testing.T) {
	s := testSession(t)
	drawRows(t, &s.Grid, 16,
		"..#.......",
		"##########",
		"..........",
		"#.#.......",
	)

	runCascade(t, s)

	assert.Equal(t, 1, s.TotalLines)
	assert.True(t, s.Grid.Occupied(core.Pt(0, 19)), "rows under the band are not searched")
	assert.True(t, s.Grid.Occupied(core.Pt(2, 18)), "debris falls to the first obstacle")
	assert.Equal(t, 3, s.Grid.Count())
}

func TestZeroLinePassSpawnsNext(t *testing.T) {
	s := testSession(t)
	next := s.Next

	ticks := runCascade(t, s)

	assert.Zero(t, ticks)
	assert.Equal(t, next, s.Active.Kind)
	assert.Zero(t, s.Score)
}

func TestChunkFallRendersFloatingCells(t *testing.T) {
	s := testSession(t)
	drawRows(t, &s.Grid, 10, "....#.....")

	cf := newChunkFall(Height)
	cf.Enter(s)
	require.Len(t, cf.chunks, 1)

	cf.Update(s, 1)
	var f Frame
	cf.Render(s, &f)
	require.Len(t, f.Chunks, 1)
	assert.Equal(t, []core.Point{core.Pt(4, 11)}, f.Chunks[0].Cells)
	assert.Equal(t, []Cell{CellOf(KindI)}, f.Chunks[0].Tags)
}
