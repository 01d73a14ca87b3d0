package board

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
)

// Transform places one cell instance in world space.
type Transform struct {
	Pos mgl32.Vec3
	Rot mgl32.Vec3
}

// Board is one N×N face of the cube. cur holds the committed states; next
// is the staging buffer written during a generation step.
type Board struct {
	Side    core.Side
	Name    string
	N       int
	Start   mgl32.Vec3
	RowStep mgl32.Vec3
	ColStep mgl32.Vec3
	Pattern config.Pattern

	cur  *core.Grid[cell.State]
	next *core.Grid[cell.State]
}

// New allocates a board for side with every cell Dead. n must be positive.
func New(side core.Side, info config.BoardInfo, n int) *Board {
	if !side.Valid() {
		panic(fmt.Sprintf("board: invalid side %d", side))
	}
	if n <= 0 {
		panic(fmt.Sprintf("board: invalid grid size %d", n))
	}
	return &Board{
		Side:    side,
		Name:    info.Name,
		N:       n,
		Start:   info.Start,
		RowStep: info.RowStep,
		ColStep: info.ColStep,
		Pattern: info.Pattern,
		cur:     core.NewGrid[cell.State](n, n),
		next:    core.NewGrid[cell.State](n, n),
	}
}

// InBounds reports whether (row, col) addresses a cell on this board.
func (b *Board) InBounds(row, col int) bool { return b.cur.InBounds(row, col) }

// At returns the committed state at (row, col). Out of range panics.
func (b *Board) At(row, col int) cell.State { return b.cur.At(row, col) }

// Set stores a committed state. Staged values are rejected.
func (b *Board) Set(row, col int, s cell.State) {
	if !s.Valid() || s.Future() {
		panic(fmt.Sprintf("board: cannot store %v as current state", s))
	}
	b.cur.Set(row, col, s)
}

// Cells exposes the committed states in row-major order.
func (b *Board) Cells() []cell.State { return b.cur.Cells() }

// Clear kills every cell, marks included.
func (b *Board) Clear() { b.cur.Fill(cell.Dead) }

// Neighbors counts live neighbours of (row, col) per player.
func (b *Board) Neighbors(row, col int) (p1, p2 int) {
	b.cur.Neighbors(row, col, func(s cell.State) {
		if !s.Alive() {
			return
		}
		switch s.Owner() {
		case cell.P1:
			p1++
		case cell.P2:
			p2++
		}
	})
	return p1, p2
}

// Stage writes a future value for (row, col) into the staging buffer.
func (b *Board) Stage(row, col int, s cell.State) { b.next.Set(row, col, s) }

// Staged returns the staging buffer, for inspection between compute and
// commit.
func (b *Board) Staged() []cell.State { return b.next.Cells() }

// Commit swaps the staging buffer in and clears the future flag on every
// cell.
func (b *Board) Commit() {
	b.cur, b.next = b.next, b.cur
	cells := b.cur.Cells()
	for i, s := range cells {
		cells[i] = s.Commit()
	}
}

// Population counts live cells per player.
func (b *Board) Population() (p1, p2 int) {
	for _, s := range b.cur.Cells() {
		if !s.Alive() {
			continue
		}
		if s.Owner() == cell.P1 {
			p1++
		} else {
			p2++
		}
	}
	return p1, p2
}

// CellTransform returns the world position and rotation of (row, col).
func (b *Board) CellTransform(row, col int) Transform {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("board: %s cell (%d,%d) outside %dx%d", b.Side, row, col, b.N, b.N))
	}
	pos := b.Start.Add(b.RowStep.Mul(float32(row))).Add(b.ColStep.Mul(float32(col)))
	return Transform{Pos: pos, Rot: Rotation(b.Side)}
}

// Normal returns the outward facing normal of the board.
func (b *Board) Normal() mgl32.Vec3 { return Normal(b.Side) }

var rotations = [core.NumSides]mgl32.Vec3{
	core.Floor: {math.Pi, 0, 0},
	core.Roof:  {0, 0, 0},
	core.North: {-math.Pi / 2, 0, 0},
	core.South: {math.Pi / 2, 0, 0},
	core.East:  {0, 0, -math.Pi / 2},
	core.West:  {0, 0, math.Pi / 2},
}

// Rotation returns the Euler angles (radians, X then Y then Z) that turn a
// tile lying in the XZ plane, facing +Y, to face outward from side.
func Rotation(side core.Side) mgl32.Vec3 { return rotations[side] }

// RotationMatrix builds the rotation for Euler angles applied X, then Y,
// then Z.
func RotationMatrix(rot mgl32.Vec3) mgl32.Mat3 {
	return mgl32.Rotate3DZ(rot[2]).Mul3(mgl32.Rotate3DY(rot[1])).Mul3(mgl32.Rotate3DX(rot[0]))
}

// Normal returns the outward unit normal of side.
func Normal(side core.Side) mgl32.Vec3 {
	return RotationMatrix(Rotation(side)).Mul3x1(mgl32.Vec3{0, 1, 0})
}
