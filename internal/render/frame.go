package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/board"
	"cube-ca/internal/cell"
	"cube-ca/internal/core"
)

// Instance is one drawable cell: where it sits on the cube and what it shows.
type Instance struct {
	Side      core.Side
	Row, Col  int
	State     cell.State
	Code      int
	Transform board.Transform
	Normal    mgl32.Vec3
}

// Collect appends one instance per cell of cube to dst[:0] and returns it.
// Boards are visited in side order, cells in row-major order. A staged
// value in the committed buffer is a broken invariant and panics.
func Collect(cube *board.Cube, dst []Instance) []Instance {
	dst = dst[:0]
	for _, b := range cube.Boards() {
		normal := b.Normal()
		for r := 0; r < b.N; r++ {
			for c := 0; c < b.N; c++ {
				s := b.At(r, c)
				if s.Future() {
					panic(fmt.Sprintf("render: %s cell (%d,%d) holds uncommitted state %v", b.Side, r, c, s))
				}
				dst = append(dst, Instance{
					Side:      b.Side,
					Row:       r,
					Col:       c,
					State:     s,
					Code:      s.Code(),
					Transform: b.CellTransform(r, c),
					Normal:    normal,
				})
			}
		}
	}
	return dst
}
