package board

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/config"
	"cube-ca/internal/core"
)

// Cube is the six boards of one session.
type Cube struct {
	N      int
	boards [core.NumSides]*Board
}

// NewCube creates all six boards from resolved configuration.
func NewCube(info config.GameInfo) (*Cube, error) {
	if info.NumObjects <= 0 {
		return nil, fmt.Errorf("board: grid size must be positive, got %d", info.NumObjects)
	}
	c := &Cube{N: info.NumObjects}
	for _, side := range core.Sides() {
		c.boards[side] = New(side, info.Sides[side], info.NumObjects)
	}
	return c, nil
}

// Board returns the board for side, or nil for an invalid side.
func (c *Cube) Board(side core.Side) *Board {
	if !side.Valid() {
		return nil
	}
	return c.boards[side]
}

// Boards returns every board in side order.
func (c *Cube) Boards() []*Board { return c.boards[:] }

// Clear kills every cell on every board.
func (c *Cube) Clear() {
	for _, b := range c.boards {
		b.Clear()
	}
}

// Edge identifies a run of cells along one border of a board.
type Edge uint8

const (
	EdgeFirstRow Edge = iota
	EdgeLastRow
	EdgeFirstCol
	EdgeLastCol
)

// EdgeCells returns the world positions of the cells along edge, in index
// order.
func (b *Board) EdgeCells(edge Edge) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, b.N)
	for i := 0; i < b.N; i++ {
		var r, c int
		switch edge {
		case EdgeFirstRow:
			r, c = 0, i
		case EdgeLastRow:
			r, c = b.N-1, i
		case EdgeFirstCol:
			r, c = i, 0
		case EdgeLastCol:
			r, c = i, b.N-1
		}
		out = append(out, b.CellTransform(r, c).Pos)
	}
	return out
}

// Seam is an edge shared by two adjoining faces.
type Seam struct {
	A, B         core.Side
	EdgeA, EdgeB Edge
}

// Seams lists the twelve cube edges for the default cube geometry.
func Seams() []Seam {
	return []Seam{
		{core.Floor, core.North, EdgeFirstRow, EdgeFirstRow},
		{core.Floor, core.South, EdgeLastRow, EdgeFirstRow},
		{core.Floor, core.West, EdgeFirstCol, EdgeFirstRow},
		{core.Floor, core.East, EdgeLastCol, EdgeFirstRow},
		{core.Roof, core.North, EdgeFirstRow, EdgeLastRow},
		{core.Roof, core.South, EdgeLastRow, EdgeLastRow},
		{core.Roof, core.West, EdgeFirstCol, EdgeLastRow},
		{core.Roof, core.East, EdgeLastCol, EdgeLastRow},
		{core.North, core.West, EdgeFirstCol, EdgeFirstCol},
		{core.North, core.East, EdgeLastCol, EdgeFirstCol},
		{core.South, core.West, EdgeFirstCol, EdgeLastCol},
		{core.South, core.East, EdgeLastCol, EdgeLastCol},
	}
}

const seamTolerance = 1e-4

// CheckSeams verifies that adjoining faces meet: the outermost rows of two
// neighbouring faces must mirror each other across their shared cube edge.
func (c *Cube) CheckSeams() error {
	var errs []error
	for _, s := range Seams() {
		a, b := c.boards[s.A], c.boards[s.B]
		ea, eb := a.EdgeCells(s.EdgeA), b.EdgeCells(s.EdgeB)
		na, nb := a.Normal(), b.Normal()
		for i := range ea {
			d := eb[i].Sub(ea[i])
			// Crossing the edge moves inward along A's normal and outward
			// along B's by the same amount, and not at all along the edge.
			along := a.stepAlong(s.EdgeA)
			if !mgl32.FloatEqualThreshold(d.Dot(along), 0, seamTolerance) {
				errs = append(errs, fmt.Errorf("%s/%s seam: cell %d offset %v along the edge", s.A, s.B, i, d))
				continue
			}
			if !mgl32.FloatEqualThreshold(d.Dot(na), -d.Dot(nb), seamTolerance) || d.Dot(na) >= 0 {
				errs = append(errs, fmt.Errorf("%s/%s seam: cell %d offset %v is not symmetric about the edge", s.A, s.B, i, d))
			}
		}
	}
	return errors.Join(errs...)
}

func (b *Board) stepAlong(edge Edge) mgl32.Vec3 {
	if edge == EdgeFirstRow || edge == EdgeLastRow {
		return b.ColStep.Normalize()
	}
	return b.RowStep.Normalize()
}
