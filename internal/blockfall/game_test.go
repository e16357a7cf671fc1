package blockfall

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func press(k core.Key) []core.InputEvent {
	return []core.InputEvent{core.Press(k)}
}

func TestNewRejectsBadTiming(t *testing.T) {
	bad := DefaultTiming()
	bad.Blink = 0
	_, err := New(WithTiming(bad))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTiming))

	bad = DefaultTiming()
	bad.BlinkIterations = 0
	_, err = New(WithTiming(bad))
	assert.ErrorIs(t, err, ErrInvalidTiming)
}

func TestMenuQuit(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	f := g.Snapshot()
	assert.Equal(t, ScreenMenu, f.Screen)
	assert.Equal(t, []string{"Start game", "Quit"}, f.MenuItems)
	assert.Equal(t, 0, f.MenuSelection)

	assert.True(t, g.Advance(0.016, press(core.KeyMenuDown)))
	assert.Equal(t, 1, g.Snapshot().MenuSelection)

	assert.False(t, g.Advance(0.016, press(core.KeyConfirm)))
	assert.False(t, g.Running())
	assert.False(t, g.Advance(0.016, nil), "stopped game stays stopped")
}

func TestMenuSelectionWraps(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	g.Advance(0.016, press(core.KeyMenuUp))
	assert.Equal(t, 1, g.Snapshot().MenuSelection)
	g.Advance(0.016, press(core.KeyMenuDown))
	assert.Equal(t, 0, g.Snapshot().MenuSelection)
}

func TestMenuStartsPlay(t *testing.T) {
	g, err := New(WithSeed(3))
	require.NoError(t, err)

	require.True(t, g.Advance(0.016, press(core.KeyConfirm)))
	f := g.Snapshot()
	assert.Equal(t, ScreenPlay, f.Screen)
	assert.True(t, f.HasActive)
	assert.Len(t, f.Active, 4)
	assert.Len(t, f.Preview, 4)
	assert.Equal(t, g.Session().Next, f.PreviewKind)
	assert.Equal(t, 1, g.Depth())
}

func TestPauseAndResume(t *testing.T) {
	g := newPlayingGame(t)
	pivot := g.Session().Active.Pivot

	require.True(t, g.Advance(0.01, press(core.KeyPause)))
	assert.Equal(t, 2, g.Depth())
	f := g.Snapshot()
	assert.Equal(t, ScreenPause, f.Screen)
	assert.Len(t, f.Active, 4, "board stays visible under the pause screen")

	// Time does not pass for the covered play state.
	for range 100 {
		g.Advance(0.1, nil)
	}
	assert.Equal(t, pivot, g.Session().Active.Pivot)

	require.True(t, g.Advance(0.01, press(core.KeyCancel)))
	assert.Equal(t, 1, g.Depth())
	assert.Equal(t, ScreenPlay, g.Snapshot().Screen)
}

func TestGravityLocksAtFloor(t *testing.T) {
	g := newPlayingGame(t, WithTiming(unitTiming()))
	s := g.Session()
	s.Active = NewPiece(KindL)

	// L spawn layout spans rows -1..0, so the pivot rests on row 19.
	expected := Piece{Kind: KindL, Pivot: core.Pt(5, Height-1)}.Cells()

	for i := 0; i < 40 && s.Pieces == 0; i++ {
		require.True(t, g.Advance(1, nil))
	}
	require.Equal(t, 1, s.Pieces)
	for _, c := range expected {
		assert.Equal(t, CellOf(KindL), s.Grid.At(c), "cell %v", c)
	}
	assert.Equal(t, 4, s.Grid.Count())
}

func TestHardDropLandsPiece(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindO)

	require.True(t, g.Advance(0.01, press(core.KeyHardDrop)))
	assert.Equal(t, 1, g.Depth(), "fast fall lives on the inner stack")
	for i := 0; i < 500 && s.Pieces == 0; i++ {
		require.True(t, g.Advance(0.01, nil))
	}
	require.Equal(t, 1, s.Pieces)

	for _, c := range []core.Point{core.Pt(5, 18), core.Pt(6, 18), core.Pt(5, 19), core.Pt(6, 19)} {
		assert.Equal(t, CellOf(KindO), s.Grid.At(c), "cell %v", c)
	}
}

func TestSoftDropStopsOnRelease(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindO)

	g.Advance(0.01, press(core.KeySoftDrop))
	for range 10 {
		g.Advance(0.01, nil)
	}
	g.Advance(0.01, []core.InputEvent{core.Release(core.KeySoftDrop)})
	y := s.Active.Pivot.Y
	assert.Positive(t, y)

	// Back under normal gravity: a few short ticks do not move the piece.
	for range 5 {
		g.Advance(0.01, nil)
	}
	assert.Equal(t, y, s.Active.Pivot.Y)
	assert.Zero(t, s.Pieces)
}

func TestSoftDropEndsAfterPause(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindO)

	g.Advance(0.01, press(core.KeySoftDrop))
	for range 3 {
		g.Advance(0.01, nil)
	}
	require.True(t, g.Advance(0.01, press(core.KeyPause)))
	require.Equal(t, 2, g.Depth())

	// The release lands on the pause screen.
	g.Advance(0.01, []core.InputEvent{core.Release(core.KeySoftDrop)})
	require.True(t, g.Advance(0.01, press(core.KeyPause)))
	require.Equal(t, 1, g.Depth())
	y := s.Active.Pivot.Y

	for range 5 {
		g.Advance(0.01, nil)
	}
	assert.Equal(t, y, s.Active.Pivot.Y, "piece is back under normal gravity")
	assert.Zero(t, s.Pieces)
}

func TestHardDropSurvivesPause(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindO)

	g.Advance(0.01, press(core.KeyHardDrop))
	g.Advance(0.01, press(core.KeyPause))
	g.Advance(0.01, press(core.KeyPause))
	y := s.Active.Pivot.Y

	for range 5 {
		g.Advance(0.01, nil)
	}
	assert.Greater(t, s.Active.Pivot.Y, y)
}

func TestHorizontalStrokeAndRepeat(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindO)

	g.Advance(0.01, press(core.KeyLeft))
	assert.Equal(t, 4, s.Active.Pivot.X, "press moves immediately")

	g.Advance(0.1, nil)
	assert.Equal(t, 3, s.Active.Pivot.X, "held key repeats each control interval")

	g.Advance(0.01, []core.InputEvent{core.Release(core.KeyLeft)})
	g.Advance(0.1, nil)
	assert.Equal(t, 3, s.Active.Pivot.X, "release stops movement")
}

func TestRotateFromInput(t *testing.T) {
	g := newPlayingGame(t)
	s := g.Session()
	s.Active = NewPiece(KindT)
	s.Active.Pivot = core.Pt(5, 5)

	g.Advance(0.01, press(core.KeyRotateCW))
	assert.Equal(t, 1, s.Active.Rotation)
	g.Advance(0.01, press(core.KeyRotateCCW))
	assert.Equal(t, 0, s.Active.Rotation)
}

func TestSingleLineClear(t *testing.T) {
	g := newPlayingGame(t, WithTiming(unitTiming()))
	s := g.Session()
	fillRow(&s.Grid, Height-1, 4, 5, 6, 7)
	s.Active = NewPiece(KindI)

	sawBlink := false
	for i := 0; i < 100 && s.TotalLines == 0; i++ {
		require.True(t, g.Advance(1, nil))
		if f := g.Snapshot(); f.HiddenRows != nil {
			sawBlink = true
			assert.Equal(t, Band{Top: Height - 1, Bottom: Height - 1}, *f.HiddenRows)
		}
	}

	require.Equal(t, 1, s.TotalLines)
	assert.True(t, sawBlink)
	assert.Equal(t, LineClearPoints(1, TierMultiplier(0)), s.Score)
	assert.Zero(t, s.Grid.Count())
}

func TestGameOverGoesToScoreScreen(t *testing.T) {
	g := newPlayingGame(t, WithTiming(unitTiming()))
	s := g.Session()
	fillRow(&s.Grid, 1, 0)
	s.Active = NewPiece(KindT)
	s.AddScore(700)

	require.True(t, g.Advance(1, nil))
	f := g.Snapshot()
	assert.Equal(t, ScreenScore, f.Screen)
	assert.True(t, f.GameOver)
	assert.Equal(t, uint64(700), f.Score)
	assert.True(t, s.GameOver)

	require.True(t, g.Advance(0.01, press(core.KeyConfirm)))
	assert.Equal(t, ScreenMenu, g.Snapshot().Screen)

	require.True(t, g.Advance(0.01, press(core.KeyConfirm)))
	assert.Equal(t, ScreenPlay, g.Snapshot().Screen)
	assert.Zero(t, s.Score, "replay resets the session")
	assert.Zero(t, s.Grid.Count())
}
