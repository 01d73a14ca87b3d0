package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
	"cube-ca/internal/sim"
)

func newLoop(t *testing.T, n int) (*Loop, tcell.SimulationScreen) {
	t.Helper()
	info := config.DefaultGameInfo()
	info.NumObjects = n
	info.Density = 0
	require.NoError(t, info.Resolve())
	s, err := sim.NewSession(info)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)
	return New(screen, s), screen
}

func glyphAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDrawShowsEveryFace(t *testing.T) {
	l, screen := newLoop(t, 3)
	require.NoError(t, l.session.Engine.SetCell(core.North, 1, 0, cell.P1Alive))
	require.NoError(t, l.session.Engine.SetCell(core.Floor, 2, 2, cell.P2AliveMarked))
	l.Draw()

	for _, side := range core.Sides() {
		x, y := l.CellPosition(side, 0, 1)
		require.Equal(t, '·', glyphAt(screen, x, y), "side %s", side)
	}
	x, y := l.CellPosition(core.North, 1, 0)
	require.Equal(t, 'o', glyphAt(screen, x, y))
	x, y = l.CellPosition(core.Floor, 2, 2)
	require.Equal(t, 'X', glyphAt(screen, x, y))
	require.Equal(t, 'g', glyphAt(screen, 0, 0), "status line starts with the generation")
}

func TestLocateInvertsCellPosition(t *testing.T) {
	l, _ := newLoop(t, 4)
	for _, side := range core.Sides() {
		x, y := l.CellPosition(side, 3, 2)
		s, r, c, ok := l.Locate(x, y)
		require.True(t, ok)
		require.Equal(t, side, s)
		require.Equal(t, 3, r)
		require.Equal(t, 2, c)
	}
	_, _, _, ok := l.Locate(0, 0)
	require.False(t, ok)
}

func TestMouseTogglesAndMarks(t *testing.T) {
	l, screen := newLoop(t, 3)
	e := l.session.Engine
	x, y := l.CellPosition(core.East, 2, 1)

	require.True(t, l.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)))
	st, err := e.Cell(core.East, 2, 1)
	require.NoError(t, err)
	require.Equal(t, cell.P1Alive, st)

	// Holding the button does not toggle again.
	require.True(t, l.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)))
	st, _ = e.Cell(core.East, 2, 1)
	require.Equal(t, cell.P1Alive, st)

	l.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	l.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button2, tcell.ModNone))
	st, _ = e.Cell(core.East, 2, 1)
	require.Equal(t, cell.P2Alive, st)

	l.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	l.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModShift))
	st, _ = e.Cell(core.East, 2, 1)
	require.Equal(t, cell.P2AliveMarked, st)

	l.Draw()
	require.Equal(t, 'X', glyphAt(screen, x, y))
}

func TestKeys(t *testing.T) {
	l, _ := newLoop(t, 3)
	s := l.session
	now := time.Unix(100, 0)
	l.now = func() time.Time { return now }

	require.True(t, l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	require.True(t, s.Autoplay.Enabled())

	require.True(t, l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone)))
	require.InDelta(t, 0.55, s.Autoplay.Interval().Seconds(), 1e-6)
	for i := 0; i < 20; i++ {
		l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone))
	}
	require.InDelta(t, 0.05, s.Autoplay.Interval().Seconds(), 1e-6)

	l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	require.True(t, l.Tick(now))
	require.False(t, l.Tick(now))
	require.Equal(t, 1, s.Engine.Generation())

	require.False(t, l.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, l.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnQuitKey(t *testing.T) {
	l, screen := newLoop(t, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, l.Run(ctx, 10*time.Millisecond))
	require.NoError(t, ctx.Err(), "loop returned before the timeout")
}
