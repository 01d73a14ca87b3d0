package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
)

// Palette assigns a base colour to every legacy state code.
type Palette [cell.NumCodes]color.RGBA

// DefaultPalette returns the built-in colours: blue for the first player,
// red for the second, pale tints for staged values and gold for marks.
func DefaultPalette() Palette {
	return Palette{
		cell.CodeDead:          {R: 36, G: 38, B: 46, A: 255},
		cell.CodeP1AliveFuture: {R: 140, G: 180, B: 250, A: 255},
		cell.CodeP2AliveFuture: {R: 250, G: 150, B: 140, A: 255},
		cell.CodeP1Alive:       {R: 50, G: 110, B: 230, A: 255},
		cell.CodeP2Alive:       {R: 220, G: 60, B: 50, A: 255},
		cell.CodeP1DeadFuture:  {R: 60, G: 70, B: 100, A: 255},
		cell.CodeP2DeadFuture:  {R: 100, G: 60, B: 60, A: 255},
		cell.CodeP1AliveMarked: {R: 120, G: 200, B: 255, A: 255},
		cell.CodeP2AliveMarked: {R: 255, G: 170, B: 60, A: 255},
		cell.CodeP1DeadMarked:  {R: 90, G: 110, B: 60, A: 255},
		cell.CodeP2DeadMarked:  {R: 130, G: 110, B: 40, A: 255},
	}
}

// Color returns the base colour for s.
func (p Palette) Color(s cell.State) color.RGBA {
	return p[s.Code()]
}

// Lighting is an ambient term plus one directional light.
type Lighting struct {
	Ambient mgl32.Vec3
	Diffuse mgl32.Vec3
	// Dir points from the scene towards the light.
	Dir mgl32.Vec3
}

// LightingFrom builds the scene lighting from the session configuration.
func LightingFrom(info config.GameInfo) Lighting {
	return Lighting{
		Ambient: info.Ambient,
		Diffuse: info.Object.Diffuse,
		Dir:     mgl32.Vec3{0.4, 1, 0.7}.Normalize(),
	}
}

// Shade applies Lambert lighting to c for a surface with the given normal.
// Alpha is kept.
func Shade(c color.RGBA, normal mgl32.Vec3, l Lighting) color.RGBA {
	lambert := normal.Dot(l.Dir)
	if lambert < 0 {
		lambert = 0
	}
	return color.RGBA{
		R: shadeChannel(c.R, l.Ambient[0]+l.Diffuse[0]*lambert),
		G: shadeChannel(c.G, l.Ambient[1]+l.Diffuse[1]*lambert),
		B: shadeChannel(c.B, l.Ambient[2]+l.Diffuse[2]*lambert),
		A: c.A,
	}
}

func shadeChannel(v uint8, k float32) uint8 {
	if k <= 0 {
		return 0
	}
	if k >= 1 {
		return v
	}
	return uint8(math.Round(float64(v) * float64(k)))
}
