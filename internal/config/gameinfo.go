package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/cell"
	"cube-ca/internal/core"
	"cube-ca/internal/rules"
)

// Pattern selects how a board is populated when the session starts.
type Pattern string

const (
	PatternEmpty Pattern = "empty"
	PatternP1    Pattern = "p1"
	PatternP2    Pattern = "p2"
	PatternMixed Pattern = "mixed"
)

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool {
	switch p {
	case PatternEmpty, PatternP1, PatternP2, PatternMixed:
		return true
	}
	return false
}

// ObjectInfo describes the per-cell object and its material.
type ObjectInfo struct {
	File      string
	Scale     mgl32.Vec3
	Rotation  mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// BoardInfo describes one face: its display name, grid size and the basis
// used to place cells in space.
type BoardInfo struct {
	Name    string
	Size    core.Size
	Start   mgl32.Vec3
	RowStep mgl32.Vec3
	ColStep mgl32.Vec3
	Pattern Pattern

	hasStart, hasRow, hasCol bool
}

// DisplayInfo holds window and menu panel dimensions.
type DisplayInfo struct {
	Window     core.Size
	FullScreen bool
	Menu       core.Size
}

// GameInfo is the resolved, immutable session configuration.
type GameInfo struct {
	Object           ObjectInfo
	Textures         [cell.NumCodes]string
	Ambient          mgl32.Vec3
	AutoplayInterval float64
	NumObjects       int
	Spacing          float32
	Sides            [core.NumSides]BoardInfo
	Rules            rules.Set
	Seed             int64
	Density          float64
	Display          DisplayInfo
}

var sideTitles = [core.NumSides]string{"Floor", "Roof", "North", "South", "East", "West"}

// DefaultGameInfo returns the built-in configuration used when no launch file
// is present.
func DefaultGameInfo() GameInfo {
	info := GameInfo{
		Object: ObjectInfo{
			Scale:     mgl32.Vec3{0.9, 0.9, 0.9},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:  mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess: 16,
		},
		Ambient:          mgl32.Vec3{0.35, 0.35, 0.35},
		AutoplayInterval: 0.5,
		NumObjects:       8,
		Spacing:          1,
		Rules:            rules.Default(),
		Seed:             42,
		Density:          0.25,
		Display: DisplayInfo{
			Window: core.Size{W: 1280, H: 720},
			Menu:   core.Size{W: 240, H: 720},
		},
	}
	for _, side := range core.Sides() {
		info.Sides[side] = BoardInfo{Name: sideTitles[side], Pattern: PatternMixed}
	}
	return info
}

// DefaultBoardInfo places the cells of side on the surface of a cube centred
// at the origin. Cell centres sit spacing/2 in from every cube edge so that
// the outermost rows of neighbouring faces line up along the shared edge.
func DefaultBoardInfo(side core.Side, n int, spacing float32) BoardInfo {
	h := float32(n) * spacing / 2
	a := -h + spacing/2
	x := mgl32.Vec3{spacing, 0, 0}
	y := mgl32.Vec3{0, spacing, 0}
	z := mgl32.Vec3{0, 0, spacing}

	info := BoardInfo{Name: sideTitles[side%core.NumSides], Size: core.Size{W: n, H: n}, Pattern: PatternMixed}
	switch side {
	case core.Floor:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{a, -h, a}, z, x
	case core.Roof:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{a, h, a}, z, x
	case core.North:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{a, a, -h}, y, x
	case core.South:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{a, a, h}, y, x
	case core.East:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{h, a, a}, y, z
	case core.West:
		info.Start, info.RowStep, info.ColStep = mgl32.Vec3{-h, a, a}, y, z
	default:
		panic(fmt.Sprintf("config: unknown side %v", side))
	}
	return info
}

// Apply overlays command line overrides onto info.
func (g *GameInfo) Apply(args Args) {
	if args.Has(FlagAutoplay) {
		g.AutoplayInterval = args.AutoplayInterval
	}
	if args.Has(FlagNumObjects) {
		g.NumObjects = args.NumObjects
	}
	if args.Has(FlagAmbient) {
		g.Ambient = args.Ambient
	}
	if args.Has(FlagWindowSize) {
		g.Display.Window = args.WindowSize
	}
	if args.Has(FlagFullScreen) {
		g.Display.FullScreen = true
		g.Display.Window = core.Size{}
	}
	if args.Has(FlagMenuSize) {
		g.Display.Menu = args.MenuSize
	}
	if args.Has(FlagObjectFile) {
		g.Object.File = args.ObjectFile
	}
}

// Resolve sizes every board to N×N, fills in default geometry for anything
// the launch file left out and validates the result.
func (g *GameInfo) Resolve() error {
	if g.NumObjects <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %d", g.NumObjects)
	}
	if !(g.Spacing > 0) || !finite(float64(g.Spacing)) {
		return fmt.Errorf("config: cell spacing must be a positive finite number, got %g", g.Spacing)
	}
	// A window with no area means the outside screen decides.
	if g.Display.Window.W == 0 || g.Display.Window.H == 0 {
		g.Display.FullScreen = true
		g.Display.Window = core.Size{}
	}
	for _, side := range core.Sides() {
		b := &g.Sides[side]
		def := DefaultBoardInfo(side, g.NumObjects, g.Spacing)
		b.Size = def.Size
		if b.Name == "" {
			b.Name = def.Name
		}
		if b.Pattern == "" {
			b.Pattern = def.Pattern
		}
		if !b.hasStart {
			b.Start = def.Start
		}
		if !b.hasRow {
			b.RowStep = def.RowStep
		}
		if !b.hasCol {
			b.ColStep = def.ColStep
		}
	}
	return g.Validate()
}

// Custom reports whether the launch file overrode any part of the board basis.
func (b BoardInfo) Custom() bool { return b.hasStart || b.hasRow || b.hasCol }

// Validate checks the invariants the engine relies on.
func (g *GameInfo) Validate() error {
	var errs []error
	if g.NumObjects <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %d", g.NumObjects))
	}
	if !(g.AutoplayInterval > 0 && g.AutoplayInterval <= MaxAutoplayInterval) {
		errs = append(errs, fmt.Errorf("autoplay interval must be within (0,%g], got %g", MaxAutoplayInterval, g.AutoplayInterval))
	}
	if !(g.Density >= 0 && g.Density <= 1) {
		errs = append(errs, fmt.Errorf("pattern density must be within [0,1], got %g", g.Density))
	}
	if !(g.Spacing > 0) || !finite(float64(g.Spacing)) {
		errs = append(errs, fmt.Errorf("cell spacing must be a positive finite number, got %g", g.Spacing))
	}
	for i, c := range g.Ambient {
		if !(c >= 0) || !finite(float64(c)) {
			errs = append(errs, fmt.Errorf("ambient component %d must be a non-negative finite number, got %g", i, c))
		}
	}
	if g.Display.Menu.W <= 0 || g.Display.Menu.H <= 0 {
		errs = append(errs, fmt.Errorf("menu size must be positive, got %dx%d", g.Display.Menu.W, g.Display.Menu.H))
	}
	if g.Display.Window.W < 0 || g.Display.Window.H < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", g.Display.Window.W, g.Display.Window.H))
	}
	if !g.Rules.TieBreak.Valid() {
		errs = append(errs, fmt.Errorf("unknown tie break %v", g.Rules.TieBreak))
	}
	for _, side := range core.Sides() {
		b := g.Sides[side]
		if !b.Pattern.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown pattern %q", side, b.Pattern))
		}
		if b.Size.W != g.NumObjects || b.Size.H != g.NumObjects {
			errs = append(errs, fmt.Errorf("%s: board is %dx%d, want %dx%d", side, b.Size.W, b.Size.H, g.NumObjects, g.NumObjects))
		}
		if b.RowStep.Len() == 0 || b.ColStep.Len() == 0 {
			errs = append(errs, fmt.Errorf("%s: row and column steps must be non-zero", side))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
