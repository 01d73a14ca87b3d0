package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"cube-ca/internal/board"
	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
	"cube-ca/internal/rules"
)

var (
	// ErrInvalidCell reports an edit addressed outside the cube.
	ErrInvalidCell = errors.New("sim: no such cell")
	// ErrInvalidOwner reports an edit on behalf of no player.
	ErrInvalidOwner = errors.New("sim: invalid owner")
)

// Engine owns the cube for one session and applies generation steps and
// interactive edits to it. It is not safe for concurrent use; the frame loop
// is its only caller.
type Engine struct {
	info       config.GameInfo
	cube       *board.Cube
	rules      rules.Set
	seed       int64
	generation int
}

// NewEngine builds the cube from info and seeds every board.
func NewEngine(info config.GameInfo) (*Engine, error) {
	cube, err := board.NewCube(info)
	if err != nil {
		return nil, err
	}
	if err := cube.CheckSeams(); err != nil {
		custom := customSides(info)
		if len(custom) == 0 {
			return nil, fmt.Errorf("sim: default board geometry: %w", err)
		}
		log.Warn().Err(err).Strs("custom_sides", custom).Msg("board geometry does not form a closed cube")
	}
	e := &Engine{info: info, cube: cube, rules: info.Rules}
	e.Reseed(info.Seed)
	log.Info().
		Int("n", info.NumObjects).
		Str("p1_rule", e.rules.For(cell.P1).String()).
		Str("p2_rule", e.rules.For(cell.P2).String()).
		Stringer("tie_break", e.rules.TieBreak).
		Int64("seed", info.Seed).
		Msg("engine ready")
	return e, nil
}

// Info returns the configuration the engine was built from.
func (e *Engine) Info() config.GameInfo { return e.info }

// Cube exposes the boards for rendering.
func (e *Engine) Cube() *board.Cube { return e.cube }

// Rules returns the active rule set.
func (e *Engine) Rules() rules.Set { return e.rules }

// SetRules replaces the active rule set.
func (e *Engine) SetRules(set rules.Set) { e.rules = set }

// Generation returns the number of steps taken since the last reseed.
func (e *Engine) Generation() int { return e.generation }

// Seed returns the seed used by the last reseed.
func (e *Engine) Seed() int64 { return e.seed }

// StepGeneration advances the whole cube by one generation.
func (e *Engine) StepGeneration() {
	StepGeneration(e.cube, e.rules)
	e.generation++
	log.Debug().Int("generation", e.generation).Msg("step")
}

// Reseed repopulates every board from its pattern and resets the
// generation counter.
func (e *Engine) Reseed(seed int64) {
	e.seed = seed
	e.generation = 0
	for _, b := range e.cube.Boards() {
		Seed(b, seed, e.info.Density)
	}
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.cube.Clear()
	e.generation = 0
}

func (e *Engine) lookup(side core.Side, row, col int) (*board.Board, error) {
	b := e.cube.Board(side)
	if b == nil || !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: %s (%d,%d)", ErrInvalidCell, side, row, col)
	}
	return b, nil
}

// Cell returns the current state of a cell.
func (e *Engine) Cell(side core.Side, row, col int) (cell.State, error) {
	b, err := e.lookup(side, row, col)
	if err != nil {
		return cell.Dead, err
	}
	return b.At(row, col), nil
}

// ToggleCell flips a cell between alive for owner and dead. The change is
// visible immediately.
func (e *Engine) ToggleCell(side core.Side, row, col int, owner cell.Player) error {
	if owner != cell.P1 && owner != cell.P2 {
		return fmt.Errorf("%w: %v", ErrInvalidOwner, owner)
	}
	b, err := e.lookup(side, row, col)
	if err != nil {
		return err
	}
	b.Set(row, col, b.At(row, col).Toggle(owner))
	return nil
}

// SetCell stores a committed state directly.
func (e *Engine) SetCell(side core.Side, row, col int, s cell.State) error {
	if !s.Valid() || s.Future() {
		return fmt.Errorf("sim: cannot set %v", s)
	}
	b, err := e.lookup(side, row, col)
	if err != nil {
		return err
	}
	b.Set(row, col, s)
	return nil
}

// MarkCell toggles the mark on a cell. Marking an empty cell gives it to
// owner so the mark can be drawn in that player's colour.
func (e *Engine) MarkCell(side core.Side, row, col int, owner cell.Player) error {
	b, err := e.lookup(side, row, col)
	if err != nil {
		return err
	}
	cur := b.At(row, col)
	if !cur.Marked() && cur.Owner() == cell.None && owner != cell.P1 && owner != cell.P2 {
		return fmt.Errorf("%w: %v", ErrInvalidOwner, owner)
	}
	b.Set(row, col, cur.WithMarked(!cur.Marked(), owner))
	return nil
}

// Population counts live cells per side and player.
type Population struct {
	Side core.Side
	P1   int
	P2   int
}

// Populations reports live cells for every side.
func (e *Engine) Populations() []Population {
	out := make([]Population, 0, core.NumSides)
	for _, b := range e.cube.Boards() {
		p1, p2 := b.Population()
		out = append(out, Population{Side: b.Side, P1: p1, P2: p2})
	}
	return out
}

// Totals sums live cells across the cube.
func (e *Engine) Totals() (p1, p2 int) {
	for _, p := range e.Populations() {
		p1 += p.P1
		p2 += p.P2
	}
	return p1, p2
}

// Run steps the engine steps times and hands the populations to sample for
// generation zero and then every every generations, plus the final one.
func (e *Engine) Run(steps, every int, sample func(generation int, pops []Population) error) error {
	if every < 1 {
		every = 1
	}
	if err := sample(e.generation, e.Populations()); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		e.StepGeneration()
		if i%every == 0 || i == steps {
			if err := sample(e.generation, e.Populations()); err != nil {
				return err
			}
		}
	}
	return nil
}

// customSides lists the sides whose basis came from the launch file.
func customSides(info config.GameInfo) []string {
	var out []string
	for _, side := range core.Sides() {
		if info.Sides[side].Custom() {
			out = append(out, side.Key())
		}
	}
	return out
}
