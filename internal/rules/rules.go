package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cube-ca/internal/cell"
)

// Rule holds the birth and survival neighbour counts for one player as
// bitmasks over 0..8.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Born reports whether a dead cell with n live neighbours comes alive.
func (r Rule) Born(n int) bool { return n >= 0 && n <= 8 && r.Birth&(1<<n) != 0 }

// Survives reports whether a live cell with n live neighbours stays alive.
func (r Rule) Survives(n int) bool { return n >= 0 && n <= 8 && r.Survive&(1<<n) != 0 }

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// ErrBadRule reports malformed rule notation.
var ErrBadRule = errors.New("rules: malformed rule")

// ParseRule reads B/S notation ("B3/S23", case-insensitive, parts in either
// order) or the survival/birth shorthand "23/3".
func ParseRule(s string) (Rule, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0]+parts[1] == "" {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	var r Rule
	if !strings.HasPrefix(parts[0], "B") && !strings.HasPrefix(parts[0], "S") {
		// S/B shorthand: survival first.
		var err error
		if r.Survive, err = parseCounts(parts[0]); err != nil {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		if r.Birth, err = parseCounts(parts[1]); err != nil {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		return r, nil
	}
	seen := map[byte]bool{}
	for _, p := range parts {
		if p == "" {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		kind := p[0]
		if (kind != 'B' && kind != 'S') || seen[kind] {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		seen[kind] = true
		mask, err := parseCounts(p[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		if kind == 'B' {
			r.Birth = mask
		} else {
			r.Survive = mask
		}
	}
	return r, nil
}

func parseCounts(s string) (uint16, error) {
	var mask uint16
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return 0, strconv.ErrSyntax
		}
		mask |= 1 << (ch - '0')
	}
	return mask, nil
}

// TieBreak decides contested births, where both players qualify for the same
// dead cell in one generation.
type TieBreak uint8

const (
	// Majority gives the cell to the player with more live neighbours. Equal
	// counts leave the cell dead.
	Majority TieBreak = iota
	// Dies leaves every contested cell dead.
	Dies
	numTieBreaks
)

var tieBreakNames = [numTieBreaks]string{"majority", "dies"}

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	if t >= numTieBreaks {
		return fmt.Sprintf("tiebreak(%d)", uint8(t))
	}
	return tieBreakNames[t]
}

// Valid reports whether t is a known policy.
func (t TieBreak) Valid() bool { return t < numTieBreaks }

// ParseTieBreak resolves a policy by name.
func ParseTieBreak(s string) (TieBreak, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range tieBreakNames {
		if n == s {
			return TieBreak(i), nil
		}
	}
	return 0, fmt.Errorf("rules: unknown tie break %q", s)
}

// Set bundles the per-player rules and the contest policy.
type Set struct {
	Players  [cell.NumPlayers]Rule
	TieBreak TieBreak
}

// For returns the rule for p. p must be P1 or P2.
func (s Set) For(p cell.Player) Rule {
	switch p {
	case cell.P1, cell.P2:
		return s.Players[p-1]
	default:
		panic(fmt.Sprintf("rules: no rule for %v", p))
	}
}

// With returns a copy of s with p's rule replaced.
func (s Set) With(p cell.Player, r Rule) Set {
	switch p {
	case cell.P1, cell.P2:
		s.Players[p-1] = r
	default:
		panic(fmt.Sprintf("rules: no rule for %v", p))
	}
	return s
}

// Next resolves the next owner and liveness of a cell from its current state
// and the live-neighbour counts of each player.
func (s Set) Next(cur cell.State, n1, n2 int) (cell.Player, bool) {
	if cur.Alive() {
		owner := cur.Owner()
		n := n1
		if owner == cell.P2 {
			n = n2
		}
		return owner, s.For(owner).Survives(n)
	}
	b1 := s.For(cell.P1).Born(n1)
	b2 := s.For(cell.P2).Born(n2)
	switch {
	case b1 && !b2:
		return cell.P1, true
	case b2 && !b1:
		return cell.P2, true
	case b1 && b2:
		if s.TieBreak == Majority {
			if n1 > n2 {
				return cell.P1, true
			}
			if n2 > n1 {
				return cell.P2, true
			}
		}
	}
	return cur.Owner(), false
}
