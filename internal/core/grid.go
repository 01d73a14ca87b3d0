package core

import "fmt"

// Grid stores a square-or-rectangular 2D grid in row-major order. Row r,
// column c lives at index r*W+c.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive sizes are
// a programming error.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the value at (row, col) and panics when out of range.
func (g *Grid[T]) At(row, col int) T {
	g.mustContain(row, col)
	return g.data[g.Index(row, col)]
}

// Set stores v at (row, col) and panics when out of range.
func (g *Grid[T]) Set(row, col int, v T) {
	g.mustContain(row, col)
	g.data[g.Index(row, col)] = v
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Neighbors calls fn for each of the up to eight cells around (row, col).
// Edges do not wrap.
func (g *Grid[T]) Neighbors(row, col int, fn func(v T)) {
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.H {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.W {
				continue
			}
			fn(g.data[r*g.W+c])
		}
	}
}

func (g *Grid[T]) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.W, g.H))
	}
}
