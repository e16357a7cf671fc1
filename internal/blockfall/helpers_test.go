package blockfall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// drawRows paints rows onto g starting at board row top. '.' is empty,
// anything else is a filled I cell.
func drawRows(t *testing.T, g *Grid, top int, rows ...string) {
	t.Helper()
	for dy, row := range rows {
		require.Len(t, row, Width, "row %d", dy)
		for x, ch := range row {
			c := Empty
			if ch != '.' {
				c = CellOf(KindI)
			}
			g.Set(core.Pt(x, top+dy), c)
		}
	}
}

// fillRow fills row y except for the listed columns.
func fillRow(g *Grid, y int, except ...int) {
	for x := 0; x < Width; x++ {
		g.Set(core.Pt(x, y), CellOf(KindT))
	}
	for _, x := range except {
		g.Set(core.Pt(x, y), Empty)
	}
}

func unitTiming() Timing {
	return Timing{
		Fall:            1,
		Control:         1,
		FastFall:        1,
		Blink:           1,
		BlinkIterations: 5,
		ChunkFall:       1,
	}
}

func testSession(t *testing.T) *Session {
	t.Helper()
	o := defaultOptions()
	o.timing = unitTiming()
	return newSession(o)
}

func newPlayingGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(append([]Option{WithSkipMenu(), WithSeed(7)}, opts...)...)
	require.NoError(t, err)
	return g
}
