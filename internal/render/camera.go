package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/board"
)

const (
	maxPitch  = math.Pi/2 - 0.05
	nearPlane = 0.1
)

// Camera orbits the origin. Yaw turns around +Y, pitch tilts towards it.
type Camera struct {
	Yaw      float32
	Pitch    float32
	Distance float32
	FovY     float32

	Width  int
	Height int

	minDistance float32
	maxDistance float32
}

// NewCamera frames a cube of the given half extent in a w×h viewport.
func NewCamera(halfExtent float32, w, h int) *Camera {
	if halfExtent <= 0 {
		halfExtent = 1
	}
	return &Camera{
		Yaw:         mgl32.DegToRad(30),
		Pitch:       mgl32.DegToRad(25),
		Distance:    halfExtent * 4,
		FovY:        mgl32.DegToRad(45),
		Width:       w,
		Height:      h,
		minDistance: halfExtent * 2,
		maxDistance: halfExtent * 20,
	}
}

// Resize updates the viewport.
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// Rotate turns the camera by the given angles. Pitch stops short of the poles.
func (c *Camera) Rotate(dyaw, dpitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dyaw), 2*math.Pi))
	c.Pitch = mgl32.Clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Zoom scales the orbit distance. Factors below one move closer.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = mgl32.Clamp(c.Distance*factor, c.minDistance, c.maxDistance)
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		c.Distance * cp * float32(math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cp * float32(math.Cos(float64(c.Yaw))),
	}
}

// ViewProjection returns the combined world to clip space transform.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	proj := mgl32.Perspective(c.FovY, aspect, nearPlane, c.Distance*4+nearPlane)
	view := mgl32.LookAtV(c.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a world point to viewport pixels. depth grows away from the
// camera. ok is false for points behind the eye.
func (c *Camera) Project(p mgl32.Vec3) (screen mgl32.Vec2, depth float32, ok bool) {
	return project(c.ViewProjection(), c.Width, c.Height, p)
}

func project(vp mgl32.Mat4, w, h int, p mgl32.Vec3) (mgl32.Vec2, float32, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= nearPlane/2 {
		return mgl32.Vec2{}, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * float32(w)
	y := (1 - ndc.Y()) / 2 * float32(h)
	return mgl32.Vec2{x, y}, ndc.Z(), true
}

// Quad is the screen-space footprint of one visible cell.
type Quad struct {
	Instance Instance
	Corners  [4]mgl32.Vec2
	Depth    float32
}

var tileCorners = [4]mgl32.Vec3{
	{-1, 0, -1},
	{1, 0, -1},
	{1, 0, 1},
	{-1, 0, 1},
}

// Quads projects each instance as a square tile with the given half size,
// drops tiles facing away from the camera and sorts the rest back to front.
func (c *Camera) Quads(instances []Instance, half float32, dst []Quad) []Quad {
	dst = dst[:0]
	vp := c.ViewProjection()
	eye := c.Eye()
	for _, in := range instances {
		pos := in.Transform.Pos
		if in.Normal.Dot(eye.Sub(pos)) <= 0 {
			continue
		}
		rot := board.RotationMatrix(in.Transform.Rot)
		q := Quad{Instance: in}
		visible := true
		for i, corner := range tileCorners {
			world := pos.Add(rot.Mul3x1(corner.Mul(half)))
			pt, _, ok := project(vp, c.Width, c.Height, world)
			if !ok {
				visible = false
				break
			}
			q.Corners[i] = pt
		}
		if !visible {
			continue
		}
		_, q.Depth, _ = project(vp, c.Width, c.Height, pos)
		dst = append(dst, q)
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].Depth > dst[j].Depth })
	return dst
}

// Pick returns the front-most quad containing the point (x, y).
func Pick(quads []Quad, x, y float32) (Instance, bool) {
	p := mgl32.Vec2{x, y}
	for i := len(quads) - 1; i >= 0; i-- {
		if quads[i].Contains(p) {
			return quads[i].Instance, true
		}
	}
	return Instance{}, false
}

// Contains reports whether p lies inside the convex quad, in either winding.
func (q Quad) Contains(p mgl32.Vec2) bool {
	var pos, neg bool
	for i := range q.Corners {
		a, b := q.Corners[i], q.Corners[(i+1)%len(q.Corners)]
		cross := (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
