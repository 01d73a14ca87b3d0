package board

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
)

func newCube(t *testing.T, n int) *Cube {
	t.Helper()
	info := config.DefaultGameInfo()
	info.NumObjects = n
	require.NoError(t, info.Resolve())
	c, err := NewCube(info)
	require.NoError(t, err)
	return c
}

func TestNewBoardStartsDead(t *testing.T) {
	c := newCube(t, 5)
	for _, b := range c.Boards() {
		require.Len(t, b.Cells(), 25)
		for _, s := range b.Cells() {
			require.Equal(t, cell.Dead, s)
		}
		require.Equal(t, 5, b.N)
	}
	require.Nil(t, c.Board(core.NumSides))
	require.Equal(t, core.East, c.Board(core.East).Side)
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	info := config.DefaultBoardInfo(core.Floor, 1, 1)
	require.Panics(t, func() { New(core.Floor, info, 0) })
	require.Panics(t, func() { New(core.NumSides, info, 3) })

	gi := config.DefaultGameInfo()
	gi.NumObjects = 0
	_, err := NewCube(gi)
	require.Error(t, err)
}

func TestCellTransformFormula(t *testing.T) {
	c := newCube(t, 4)
	b := c.Board(core.East)
	tr := b.CellTransform(2, 3)
	want := b.Start.Add(b.RowStep.Mul(2)).Add(b.ColStep.Mul(3))
	require.True(t, tr.Pos.ApproxEqual(want))
	require.Equal(t, Rotation(core.East), tr.Rot)

	require.Panics(t, func() { b.CellTransform(4, 0) })
	require.Panics(t, func() { b.At(-1, 0) })
}

func TestCellTransformInjective(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		c := newCube(t, n)
		seen := map[string]string{}
		for _, b := range c.Boards() {
			for r := 0; r < n; r++ {
				for col := 0; col < n; col++ {
					p := b.CellTransform(r, col).Pos
					key := fmt.Sprintf("%.4f,%.4f,%.4f", p[0], p[1], p[2])
					where := fmt.Sprintf("%s(%d,%d)", b.Side, r, col)
					prev, dup := seen[key]
					require.False(t, dup, "n=%d: %s and %s share position %s", n, prev, where, key)
					seen[key] = where
				}
			}
		}
		require.Len(t, seen, 6*n*n)
	}
}

func TestNormalsPointOutward(t *testing.T) {
	want := map[core.Side]mgl32.Vec3{
		core.Floor: {0, -1, 0},
		core.Roof:  {0, 1, 0},
		core.North: {0, 0, -1},
		core.South: {0, 0, 1},
		core.East:  {1, 0, 0},
		core.West:  {-1, 0, 0},
	}
	c := newCube(t, 3)
	for _, b := range c.Boards() {
		n := b.Normal()
		require.True(t, n.ApproxEqualThreshold(want[b.Side], 1e-5), "%s normal %v", b.Side, n)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				require.Greater(t, b.CellTransform(r, col).Pos.Dot(n), float32(0))
			}
		}
	}
}

func TestSeamsAlign(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		c := newCube(t, n)
		require.NoError(t, c.CheckSeams(), "n=%d", n)
	}
}

func TestSeamsDetectMisplacedFace(t *testing.T) {
	info := config.DefaultGameInfo()
	info.NumObjects = 3
	require.NoError(t, info.Resolve())
	info.Sides[core.North].Start = info.Sides[core.North].Start.Add(mgl32.Vec3{0.5, 0, 0})
	c, err := NewCube(info)
	require.NoError(t, err)
	require.Error(t, c.CheckSeams())
}

func TestStageAndCommit(t *testing.T) {
	c := newCube(t, 2)
	b := c.Board(core.Floor)
	b.Stage(0, 0, cell.P1AliveFuture)
	b.Stage(0, 1, cell.P2DeadFuture)
	b.Stage(1, 0, cell.Dead)
	b.Stage(1, 1, cell.P2AliveFuture)
	require.Equal(t, cell.Dead, b.At(0, 0), "staged values are not visible before commit")

	b.Commit()
	require.Equal(t, []cell.State{cell.P1Alive, cell.Dead, cell.Dead, cell.P2Alive}, b.Cells())
	p1, p2 := b.Population()
	require.Equal(t, 1, p1)
	require.Equal(t, 1, p2)
}

func TestNeighborsCountPerPlayer(t *testing.T) {
	c := newCube(t, 3)
	b := c.Board(core.Roof)
	b.Set(0, 0, cell.P1Alive)
	b.Set(0, 1, cell.P2AliveMarked)
	b.Set(1, 0, cell.P1DeadMarked)
	b.Set(2, 2, cell.P1Alive)
	p1, p2 := b.Neighbors(1, 1)
	require.Equal(t, 2, p1)
	require.Equal(t, 1, p2)

	require.Panics(t, func() { b.Set(0, 0, cell.P1AliveFuture) })
}
