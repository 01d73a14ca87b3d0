//go:build ebiten

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/cell"
)

const maxBatchVertices = 1 << 14

// Painter draws projected cell quads with DrawTriangles. Codes with a
// texture are drawn textured and tinted by the lighting; the rest use a
// flat palette colour.
type Painter struct {
	white    *ebiten.Image
	textures [cell.NumCodes]*ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	src      *ebiten.Image
}

// NewPainter loads the texture table. Empty entries stay untextured; a file
// that fails to load is an error.
func NewPainter(textures [cell.NumCodes]string) (*Painter, error) {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	p := &Painter{white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
	for code, path := range textures {
		if path == "" {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("render: texture %s: %w", cell.CodeName(code), err)
		}
		p.textures[code] = img
		log.Debug().Str("state", cell.CodeName(code)).Str("file", path).Msg("texture loaded")
	}
	return p, nil
}

// Draw renders quads in order onto dst. quads must already be sorted back to
// front.
func (p *Painter) Draw(dst *ebiten.Image, quads []Quad, palette Palette, light Lighting) {
	for _, q := range quads {
		src := p.white
		tint := Shade(palette[q.Instance.Code], q.Instance.Normal, light)
		if tex := p.textures[q.Instance.Code]; tex != nil {
			src = tex
			tint = Shade(color.RGBA{R: 255, G: 255, B: 255, A: 255}, q.Instance.Normal, light)
		}
		if src != p.src || len(p.vertices)+4 > maxBatchVertices {
			p.flush(dst)
			p.src = src
		}
		p.appendQuad(q, src, tint)
	}
	p.flush(dst)
}

func (p *Painter) appendQuad(q Quad, src *ebiten.Image, tint color.RGBA) {
	b := src.Bounds()
	uv := [4][2]float32{
		{float32(b.Min.X), float32(b.Min.Y)},
		{float32(b.Max.X), float32(b.Min.Y)},
		{float32(b.Max.X), float32(b.Max.Y)},
		{float32(b.Min.X), float32(b.Max.Y)},
	}
	r := float32(tint.R) / 255
	g := float32(tint.G) / 255
	bl := float32(tint.B) / 255
	a := float32(tint.A) / 255

	first := uint16(len(p.vertices))
	for i, c := range q.Corners {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   c.X(),
			DstY:   c.Y(),
			SrcX:   uv[i][0],
			SrcY:   uv[i][1],
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		})
	}
	p.indices = append(p.indices, first, first+1, first+2, first, first+2, first+3)
}

func (p *Painter) flush(dst *ebiten.Image) {
	if len(p.indices) > 0 && p.src != nil {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(p.vertices, p.indices, p.src, op)
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}
