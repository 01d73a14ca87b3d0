package sim

import (
	"cube-ca/internal/board"
	"cube-ca/internal/rules"
)

// StepGeneration advances every board of cube by one generation. All boards
// are computed from committed states before any board is committed, so the
// result does not depend on visiting order.
func StepGeneration(cube *board.Cube, set rules.Set) {
	for _, b := range cube.Boards() {
		compute(b, set)
	}
	for _, b := range cube.Boards() {
		b.Commit()
	}
}

// compute writes a future value for every cell of b. It reads committed
// states only.
func compute(b *board.Board, set rules.Set) {
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			cur := b.At(r, c)
			n1, n2 := b.Neighbors(r, c)
			owner, alive := set.Next(cur, n1, n2)
			b.Stage(r, c, cur.ToFuture(owner, alive))
		}
	}
}
