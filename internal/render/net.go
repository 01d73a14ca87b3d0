package render

import (
	"image/color"

	"cube-ca/internal/board"
	"cube-ca/internal/core"
)

// Net lays the six faces out flat as a cross, four blocks wide and three
// tall:
//
//	. R . .
//	W N E S
//	. F . .
//
// Blocks are N cells square with Gap empty cells between them.
type Net struct {
	N   int
	Gap int
}

var netBlocks = [core.NumSides][2]int{
	core.Roof:  {1, 0},
	core.West:  {0, 1},
	core.North: {1, 1},
	core.East:  {2, 1},
	core.South: {3, 1},
	core.Floor: {1, 2},
}

func (n Net) pitch() int { return n.N + n.Gap }

// Size returns the extent of the whole net in cells.
func (n Net) Size() core.Size {
	return core.Size{W: 4*n.pitch() - n.Gap, H: 3*n.pitch() - n.Gap}
}

// Origin returns the top-left cell of side's block.
func (n Net) Origin(side core.Side) (x, y int) {
	b := netBlocks[side]
	return b[0] * n.pitch(), b[1] * n.pitch()
}

// Locate maps a net position back to a face cell.
func (n Net) Locate(x, y int) (side core.Side, row, col int, ok bool) {
	if n.N <= 0 || x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	bx, by := x/n.pitch(), y/n.pitch()
	col, row = x%n.pitch(), y%n.pitch()
	if col >= n.N || row >= n.N {
		return 0, 0, 0, false
	}
	for _, s := range core.Sides() {
		if netBlocks[s] == [2]int{bx, by} {
			return s, row, col, true
		}
	}
	return 0, 0, 0, false
}

// FillNetRGBA paints every cell of cube into buf, one pixel per cell, using
// the net layout. buf must hold 4*W*H bytes for the net size; gaps are left
// transparent.
func FillNetRGBA(buf []byte, cube *board.Cube, net Net, palette Palette) {
	size := net.Size()
	for i := range buf {
		buf[i] = 0
	}
	for _, b := range cube.Boards() {
		ox, oy := net.Origin(b.Side)
		for r := 0; r < b.N; r++ {
			for c := 0; c < b.N; c++ {
				base := ((oy+r)*size.W + ox + c) * 4
				putRGBA(buf[base:base+4], palette.Color(b.At(r, c)))
			}
		}
	}
}

func putRGBA(px []byte, col color.RGBA) {
	px[0] = col.R
	px[1] = col.G
	px[2] = col.B
	px[3] = col.A
}
