package cell

import "fmt"

// Player identifies the owner of a cell.
type Player uint8

const (
	// None marks an unowned cell. Only Dead carries no owner.
	None Player = iota
	// P1 is the first player.
	P1
	// P2 is the second player.
	P2
)

// NumPlayers counts the real players (None excluded).
const NumPlayers = 2

// String implements fmt.Stringer.
func (p Player) String() string {
	switch p {
	case None:
		return "none"
	case P1:
		return "p1"
	case P2:
		return "p2"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// State packs owner, liveness, phase and mark into one byte so that grids
// stay flat []State slices.
type State uint8

const (
	ownerMask  State = 0x03
	aliveBit   State = 0x04
	futureBit  State = 0x08
	markedBit  State = 0x10
	stateWidth State = 0x1f
)

// Named states. The first eleven mirror the codes used by texture tables.
const (
	Dead State = 0

	P1Alive = State(P1) | aliveBit
	P2Alive = State(P2) | aliveBit

	P1AliveFuture = P1Alive | futureBit
	P2AliveFuture = P2Alive | futureBit
	P1DeadFuture  = State(P1) | futureBit
	P2DeadFuture  = State(P2) | futureBit

	P1AliveMarked = P1Alive | markedBit
	P2AliveMarked = P2Alive | markedBit
	P1DeadMarked  = State(P1) | markedBit
	P2DeadMarked  = State(P2) | markedBit
)

// Legacy state codes, used as indices into per-state texture tables.
const (
	CodeDead = iota
	CodeP1AliveFuture
	CodeP2AliveFuture
	CodeP1Alive
	CodeP2Alive
	CodeP1DeadFuture
	CodeP2DeadFuture
	CodeP1AliveMarked
	CodeP2AliveMarked
	CodeP1DeadMarked
	CodeP2DeadMarked
	NumCodes
)

var byCode = [NumCodes]State{
	CodeDead:          Dead,
	CodeP1AliveFuture: P1AliveFuture,
	CodeP2AliveFuture: P2AliveFuture,
	CodeP1Alive:       P1Alive,
	CodeP2Alive:       P2Alive,
	CodeP1DeadFuture:  P1DeadFuture,
	CodeP2DeadFuture:  P2DeadFuture,
	CodeP1AliveMarked: P1AliveMarked,
	CodeP2AliveMarked: P2AliveMarked,
	CodeP1DeadMarked:  P1DeadMarked,
	CodeP2DeadMarked:  P2DeadMarked,
}

var codeNames = [NumCodes]string{
	CodeDead:          "dead",
	CodeP1AliveFuture: "p1_alive_future",
	CodeP2AliveFuture: "p2_alive_future",
	CodeP1Alive:       "p1_alive",
	CodeP2Alive:       "p2_alive",
	CodeP1DeadFuture:  "p1_dead_future",
	CodeP2DeadFuture:  "p2_dead_future",
	CodeP1AliveMarked: "p1_alive_marked",
	CodeP2AliveMarked: "p2_alive_marked",
	CodeP1DeadMarked:  "p1_dead_marked",
	CodeP2DeadMarked:  "p2_dead_marked",
}

// fromCode returns the state for a legacy code.
func fromCode(code int) (State, bool) {
	if code < 0 || code >= NumCodes {
		return Dead, false
	}
	return byCode[code], true
}

// CodeName returns the snake_case name of a legacy code, or "" if unknown.
func CodeName(code int) string {
	if code < 0 || code >= NumCodes {
		return ""
	}
	return codeNames[code]
}

// New assembles a state from its components. The result is Dead when owner
// is None.
func New(owner Player, alive bool) State {
	if owner == None || owner > P2 {
		return Dead
	}
	s := State(owner)
	if alive {
		s |= aliveBit
	}
	return s
}

// Owner reports which player the cell belongs to.
func (s State) Owner() Player { return Player(s & ownerMask) }

// Alive reports whether the cell counts as a live neighbour.
func (s State) Alive() bool { return s&aliveBit != 0 }

// Future reports whether the value is a staged, uncommitted result.
func (s State) Future() bool { return s&futureBit != 0 }

// Marked reports whether the cell is flagged for highlighting.
func (s State) Marked() bool { return s&markedBit != 0 }

// Stable reports whether the value may be observed as a current state.
func (s State) Stable() bool { return !s.Future() }

// Valid reports whether the bits form a legal combination.
func (s State) Valid() bool {
	if s&^stateWidth != 0 {
		return false
	}
	owner := s.Owner()
	if owner > P2 {
		return false
	}
	if owner == None {
		return s == Dead
	}
	// An owned dead cell must be either staged or marked.
	return s.Alive() || s.Future() || s.Marked()
}

// ToFuture stages s as the next-generation value for a cell. Marks carry over.
func (s State) ToFuture(owner Player, alive bool) State {
	next := New(owner, alive)
	if next == Dead {
		return Dead
	}
	next |= futureBit
	if s.Marked() {
		next |= markedBit
	}
	return next
}

// Commit clears the future flag. An unmarked dead value loses its owner.
func (s State) Commit() State {
	s &^= futureBit
	if !s.Alive() && !s.Marked() {
		return Dead
	}
	return s
}

// WithMarked sets or clears the mark. Marking an unowned cell assigns owner;
// unmarking a dead cell drops its owner.
func (s State) WithMarked(marked bool, owner Player) State {
	if marked {
		if s.Owner() == None {
			if owner == None {
				return s
			}
			s = State(owner)
		}
		return s | markedBit
	}
	s &^= markedBit
	if !s.Alive() {
		return Dead
	}
	return s
}

// Toggle flips liveness for the given owner: a cell alive for owner becomes
// dead, anything else becomes alive for owner. The mark is preserved.
func (s State) Toggle(owner Player) State {
	if owner == None {
		return s
	}
	marked := s.Marked()
	if s.Alive() && s.Owner() == owner {
		if marked {
			return State(owner) | markedBit
		}
		return Dead
	}
	next := New(owner, true)
	if marked {
		next |= markedBit
	}
	return next
}

// Code maps s to the nearest legacy code. Future values that are also marked
// report their future code.
func (s State) Code() int {
	if s.Owner() == None {
		return CodeDead
	}
	p2 := s.Owner() == P2
	pick := func(a, b int) int {
		if p2 {
			return b
		}
		return a
	}
	switch {
	case s.Future() && s.Alive():
		return pick(CodeP1AliveFuture, CodeP2AliveFuture)
	case s.Future():
		return pick(CodeP1DeadFuture, CodeP2DeadFuture)
	case s.Marked() && s.Alive():
		return pick(CodeP1AliveMarked, CodeP2AliveMarked)
	case s.Marked():
		return pick(CodeP1DeadMarked, CodeP2DeadMarked)
	case s.Alive():
		return pick(CodeP1Alive, CodeP2Alive)
	default:
		return CodeDead
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%#x)", uint8(s))
	}
	name := codeNames[s.Code()]
	if s.Future() && s.Marked() {
		name += "+marked"
	}
	return name
}
