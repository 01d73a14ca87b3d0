//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"cube-ca/internal/board"
	"cube-ca/internal/render"
)

// HelpLines is the key reference shown by the help overlay.
var HelpLines = []string{
	"Space  autoplay on/off",
	"N      single step",
	"R      reseed   C  clear",
	"Arrows rotate   +/-  zoom",
	"[ ]    autoplay interval",
	"G      face outlines",
	"M      net view",
	"H      this help",
	"Q/Esc  quit",
	"",
	"Left click   toggle P1",
	"Right click  toggle P2",
	"Shift+click  mark",
}

// Overlay draws optional visuals on top of the cube: the help text, the
// cube edges and a flat net of all six faces.
type Overlay struct {
	ShowHelp     bool
	ShowOutlines bool
	ShowNet      bool

	palette render.Palette
	net     render.Net
	netImg  *ebiten.Image
	netBuf  []byte
}

// NewOverlay constructs an overlay for a cube with n×n faces.
func NewOverlay(n int, palette render.Palette) *Overlay {
	return &Overlay{
		ShowHelp:     true,
		ShowOutlines: true,
		palette:      palette,
		net:          render.Net{N: n, Gap: 1},
	}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.ShowHelp = !o.ShowHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.ShowOutlines = !o.ShowOutlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.ShowNet = !o.ShowNet
	}
}

// Draw renders the enabled overlays. halfExtent is the distance from the
// cube centre to each face.
func (o *Overlay) Draw(screen *ebiten.Image, cam *render.Camera, cube *board.Cube, halfExtent float32, status string) {
	if o.ShowOutlines {
		o.drawOutlines(screen, cam, halfExtent)
	}
	if o.ShowNet {
		o.drawNet(screen, cube, cam.Width)
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 10, cam.Height-10, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	if o.ShowHelp {
		text.Draw(screen, strings.Join(HelpLines, "\n"), face, 10, 20, color.RGBA{R: 200, G: 200, B: 210, A: 220})
	}
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (o *Overlay) drawOutlines(screen *ebiten.Image, cam *render.Camera, h float32) {
	var corners [8]mgl32.Vec2
	var ok [8]bool
	for i := range corners {
		p := mgl32.Vec3{-h, -h, -h}
		if i&1 != 0 {
			p[0] = h
		}
		if i&2 != 0 {
			p[1] = h
		}
		if i&4 != 0 {
			p[2] = h
		}
		corners[i], _, ok[i] = cam.Project(p)
	}
	col := color.RGBA{R: 240, G: 220, B: 120, A: 200}
	for _, e := range cubeEdges {
		if !ok[e[0]] || !ok[e[1]] {
			continue
		}
		a, b := corners[e[0]], corners[e[1]]
		vector.StrokeLine(screen, a.X(), a.Y(), b.X(), b.Y(), 1.5, col, true)
	}
}

func (o *Overlay) drawNet(screen *ebiten.Image, cube *board.Cube, viewWidth int) {
	size := o.net.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.netImg == nil {
		o.netImg = ebiten.NewImage(size.W, size.H)
		o.netBuf = make([]byte, 4*size.W*size.H)
	}
	render.FillNetRGBA(o.netBuf, cube, o.net, o.palette)
	o.netImg.WritePixels(o.netBuf)

	scale := 160 / size.W
	if scale < 1 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(viewWidth-size.W*scale-10), 10)
	screen.DrawImage(o.netImg, op)
}
