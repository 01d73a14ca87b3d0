package core

import (
	"fmt"
	"strings"
)

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Side names one face of the cube.
type Side uint8

const (
	Floor Side = iota
	Roof
	North
	South
	East
	West
	NumSides
)

var sideNames = [NumSides]string{"floor", "roof", "north", "south", "east", "west"}

// Sides lists every face in index order.
func Sides() []Side {
	return []Side{Floor, Roof, North, South, East, West}
}

// Valid reports whether s names a cube face.
func (s Side) Valid() bool { return s < NumSides }

// String implements fmt.Stringer.
func (s Side) String() string {
	if !s.Valid() {
		return fmt.Sprintf("side(%d)", uint8(s))
	}
	return sideNames[s]
}

// Key returns the upper-case prefix used for per-side launch file keys.
func (s Side) Key() string { return strings.ToUpper(s.String()) }

// ParseSide resolves a side by its case-insensitive name.
func ParseSide(name string) (Side, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("unknown side %q", name)
}
