//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/render"
	"cube-ca/internal/sim"
	"cube-ca/internal/ui"
)

const (
	rotateStep   = 0.03
	zoomStep     = 0.98
	intervalStep = 0.05
)

// Game adapts a session to the ebiten.Game interface. Each Update polls
// input, then runs at most one generation; Draw renders the committed cube.
type Game struct {
	session *sim.Session
	camera  *render.Camera
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	palette render.Palette
	light   render.Lighting
	half    float32
	tile    float32

	instances []render.Instance
	quads     []render.Quad

	display   config.DisplayInfo
	width     int
	height    int
	viewWidth int

	now func() time.Time
}

// New constructs a Game for the provided session. Texture load failures are
// returned.
func New(s *sim.Session) (*Game, error) {
	info := s.Engine.Info()
	painter, err := render.NewPainter(info.Textures)
	if err != nil {
		return nil, err
	}

	vp := ComputeViewport(0, 0, info.Display)
	half := float32(info.NumObjects) * info.Spacing / 2
	palette := render.DefaultPalette()

	return &Game{
		session:   s,
		camera:    render.NewCamera(half, vp.View, vp.Height),
		painter:   painter,
		hud:       ui.NewHUD(s, "Cube Controls", vp.Menu),
		overlay:   ui.NewOverlay(info.NumObjects, palette),
		palette:   palette,
		light:     render.LightingFrom(info),
		half:      half,
		tile:      info.Spacing * info.Object.Scale.X() / 2,
		display:   info.Display,
		width:     vp.Width,
		height:    vp.Height,
		viewWidth: vp.View,
		now:       time.Now,
	}, nil
}

// Update handles per-frame logic and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := g.now()
	g.handleKeys(now)
	if !g.hud.Update(g.viewWidth) {
		g.handleMouse()
	}
	g.overlay.Update()
	g.session.Frame(now)
	return nil
}

func (g *Game) handleKeys(now time.Time) {
	e := g.session.Engine
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Autoplay.Toggle(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.Reseed(e.Seed())
		log.Info().Int64("seed", e.Seed()).Msg("reseeded")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.Clear()
		log.Info().Msg("cleared")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.adjustInterval(-intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.adjustInterval(intervalStep)
	}

	var dyaw, dpitch float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dyaw -= rotateStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dyaw += rotateStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dpitch += rotateStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dpitch -= rotateStep
	}
	if dyaw != 0 || dpitch != 0 {
		g.camera.Rotate(dyaw, dpitch)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.camera.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.camera.Zoom(1 / zoomStep)
	}
}

func (g *Game) adjustInterval(delta float64) {
	next := g.session.Autoplay.Interval().Seconds() + delta
	if next < intervalStep {
		next = intervalStep
	}
	g.session.SetFloatParameter("autoplay_interval", next)
}

func (g *Game) handleMouse() {
	var owner cell.Player
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		owner = cell.P1
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		owner = cell.P2
	default:
		return
	}
	x, y := ebiten.CursorPosition()
	if x >= g.viewWidth {
		return
	}
	in, ok := render.Pick(g.quads, float32(x), float32(y))
	if !ok {
		return
	}
	e := g.session.Engine
	var err error
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		err = e.MarkCell(in.Side, in.Row, in.Col, owner)
	} else {
		err = e.ToggleCell(in.Side, in.Row, in.Col, owner)
	}
	if err != nil {
		log.Warn().Err(err).Msg("edit rejected")
	}
}

// Draw renders the cube, the overlay and the menu panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	e := g.session.Engine
	g.instances = render.Collect(e.Cube(), g.instances)
	g.quads = g.camera.Quads(g.instances, g.tile, g.quads)
	g.painter.Draw(screen, g.quads, g.palette, g.light)

	p1, p2 := e.Totals()
	status := ui.Status(e.Generation(), p1, p2, g.session.Autoplay.Enabled(), g.session.Autoplay.Interval().Seconds())
	g.overlay.Draw(screen, g.camera, e.Cube(), g.half, status)
	g.hud.Draw(screen, g.viewWidth, g.height)
}

// Layout returns the logical screen size. A fullscreen display follows the
// outside size, so the camera and the menu panel are resized with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := ComputeViewport(outsideWidth, outsideHeight, g.display)
	if vp.Width != g.width || vp.Height != g.height {
		g.width, g.height, g.viewWidth = vp.Width, vp.Height, vp.View
		g.camera.Resize(vp.View, vp.Height)
		g.hud.Resize(vp.Menu)
	}
	return g.width, g.height
}
