package sim

import (
	"cube-ca/internal/board"
	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
)

// Seed fills b according to its pattern. Each side draws from its own stream
// of seed so boards are reproducible independently.
func Seed(b *board.Board, seed int64, density float64) {
	b.Clear()
	if b.Pattern == config.PatternEmpty || b.Pattern == "" {
		return
	}
	rng := core.NewRNG(seed, uint64(b.Side)+1)
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			if !rng.Chance(density) {
				continue
			}
			owner := cell.P1
			switch b.Pattern {
			case config.PatternP2:
				owner = cell.P2
			case config.PatternMixed:
				if rng.Bool() {
					owner = cell.P2
				}
			}
			b.Set(r, c, cell.New(owner, true))
		}
	}
}
