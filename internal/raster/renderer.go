package raster

import (
	"github.com/Shriken/rusterize/internal/geom"
)

// pointSize is the side length of the square painted by DrawPoint.
const pointSize = 7

// Renderer orchestrates drawing. It owns a FrameBuffer sized to its
// device and holds the mutable draw state: current transform, draw color,
// light position, and shader. Single-threaded; every draw call runs to
// completion before returning.
type Renderer struct {
	device Device
	fb     *FrameBuffer

	transform geom.Transform
	color     Pixel
	light     geom.Point
	shader    Shader
}

// NewRenderer builds a renderer with a framebuffer sized to the device,
// an identity transform, white draw color, light at the origin, and the
// flat shader.
func NewRenderer(d Device) *Renderer {
	return &Renderer{
		device:    d,
		fb:        NewFrameBuffer(d.Width(), d.Height()),
		transform: geom.Identity(),
		color:     White,
		shader:    FlatShader,
	}
}

// FrameBuffer exposes the render target, mostly for tests and devices
// that want to inspect the last frame.
func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

// DrawPoint paints a 7×7 square of the current color centered at the
// transformed point's (x, y), with -z as the depth of every pixel.
func (r *Renderer) DrawPoint(p geom.Point) {
	tp := p.Apply(r.transform)
	x, y := int(tp.X), int(tp.Y)
	half := pointSize / 2
	for row := 0; row < pointSize; row++ {
		r.fb.SetRow(x-half, x+half, y+row-half, -tp.Z, -tp.Z, r.color)
	}
}

// DrawLine rasterizes the segment between the transformed endpoints using
// integer-error stepping along the dominant axis. Both endpoint pixels
// are always painted. Depth is interpolated between the endpoints'
// negated z along the dominant axis.
func (r *Renderer) DrawLine(p1, p2 geom.Point) {
	tp1 := p1.Apply(r.transform)
	tp2 := p2.Apply(r.transform)

	x1, y1 := int(tp1.X), int(tp1.Y)
	x2, y2 := int(tp2.X), int(tp2.Y)
	d1, d2 := -tp1.Z, -tp2.Z

	dx := x2 - x1
	dy := y2 - y1
	adx, ady := absInt(dx), absInt(dy)

	xStep, yStep := 1, 1
	if x2 <= x1 {
		xStep = -1
	}
	if y2 <= y1 {
		yStep = -1
	}

	x, y := x1, y1
	errAcc := 0
	for {
		if adx >= ady {
			if 2*errAcc > adx {
				y += yStep
				errAcc -= adx
			}
			errAcc += ady
		} else {
			if 2*errAcc > ady {
				x += xStep
				errAcc -= ady
			}
			errAcc += adx
		}

		d := d1
		if adx >= ady {
			if adx > 0 {
				t := float64(absInt(x-x1)) / float64(adx)
				d = d1*(1-t) + d2*t
			}
		} else {
			t := float64(absInt(y-y1)) / float64(ady)
			d = d1*(1-t) + d2*t
		}
		r.fb.SetPixel(x, y, d, r.color)

		if adx >= ady {
			if x == x2 {
				break
			}
			x += xStep
		} else {
			if y == y2 {
				break
			}
			y += yStep
		}
	}
}

// FillTriangle rasterizes the triangle under the current transform.
// The face is discarded when the transformed normal dotted with the
// untransformed centroid is non-negative, which also culls degenerate
// (collinear) triangles. The fill color is the current draw color run
// through the shader with the per-face lighting intensity.
func (r *Renderer) FillTriangle(t geom.Triangle) {
	centroid := t.Centroid()
	ct := t.Apply(r.transform)

	if ct.Normal().Dot(centroid) >= 0 {
		return
	}

	// Lighting in the untransformed space.
	lightDir := r.light.Sub(centroid).Normalized()
	intensity := lightDir.Dot(t.Normal())
	if intensity < 0 {
		intensity = 0
	}
	c := r.shader(r.color, intensity)

	s := ct.SortedByY()
	top, mid, bot := s.P1, s.P2, s.P3
	switch {
	case top.Y == mid.Y:
		r.fillTopFlat(top, mid, bot, c)
	case mid.Y == bot.Y:
		r.fillBottomFlat(top, mid, bot, c)
	default:
		v4 := s.SplitAtMiddleY()
		r.fillBottomFlat(top, mid, v4, c)
		r.fillTopFlat(mid, v4, bot, c)
	}
}

// fillBottomFlat scans a triangle whose bottom edge (left–right) is
// horizontal, from the apex down to and including the base row. The base
// row uses the exact endpoint x coordinates.
func (r *Renderer) fillBottomFlat(top, left, right geom.Point, c Pixel) {
	if left.X > right.X {
		left, right = right, left
	}
	invSlope1 := (left.X - top.X) / (left.Y - top.Y)
	invSlope2 := (right.X - top.X) / (right.Y - top.Y)
	curX1 := top.X
	curX2 := top.X

	for y := int(top.Y); y < int(left.Y); y++ {
		t := (float64(y) - top.Y) / (left.Y - top.Y)
		zLeft := left.Z*t + top.Z*(1-t)
		zRight := right.Z*t + top.Z*(1-t)
		r.fb.SetRow(int(curX1), int(curX2), y, -zLeft, -zRight, c)
		curX1 += invSlope1
		curX2 += invSlope2
	}

	r.fb.SetRow(int(left.X), int(right.X), int(left.Y), -left.Z, -right.Z, c)
}

// fillTopFlat scans a triangle whose top edge (left–right) is horizontal,
// from the top edge down to and including the bottom apex row.
func (r *Renderer) fillTopFlat(left, right, bot geom.Point, c Pixel) {
	if left.X > right.X {
		left, right = right, left
	}
	invSlope1 := (bot.X - left.X) / (bot.Y - left.Y)
	invSlope2 := (bot.X - right.X) / (bot.Y - right.Y)
	curX1 := left.X
	curX2 := right.X

	for y := int(left.Y); y <= int(bot.Y); y++ {
		t := (float64(y) - left.Y) / (bot.Y - left.Y)
		zLeft := bot.Z*t + left.Z*(1-t)
		zRight := bot.Z*t + right.Z*(1-t)
		r.fb.SetRow(int(curX1), int(curX2), y, -zLeft, -zRight, c)
		curX1 += invSlope1
		curX2 += invSlope2
	}
}

// Clear resets the framebuffer for a new frame.
func (r *Renderer) Clear() {
	r.fb.Clear()
}

// Display hands the finished framebuffer to the output device. Device
// failures are returned unchanged; nothing is retried here.
func (r *Renderer) Display() error {
	return r.device.Display(r.fb)
}

// SetTransform replaces the current transform outright.
func (r *Renderer) SetTransform(t geom.Transform) { r.transform = t }

// ClearTransform resets the current transform to identity.
func (r *Renderer) ClearTransform() { r.transform = geom.Identity() }

// Transform returns the current transform.
func (r *Renderer) Transform() geom.Transform { return r.transform }

// Translate prepends a translation to the current transform. Because
// mutations prepend, the earliest-issued operation acts nearest the
// original point: translate-then-rotate moves first, then rotates.
func (r *Renderer) Translate(p geom.Point) {
	r.transform = geom.Translate(p).Mul(r.transform)
}

// RotateX prepends a rotation about the x axis, in radians.
func (r *Renderer) RotateX(theta float64) {
	r.transform = geom.RotateX(theta).Mul(r.transform)
}

// RotateY prepends a rotation about the y axis.
func (r *Renderer) RotateY(theta float64) {
	r.transform = geom.RotateY(theta).Mul(r.transform)
}

// RotateZ prepends a rotation about the z axis.
func (r *Renderer) RotateZ(theta float64) {
	r.transform = geom.RotateZ(theta).Mul(r.transform)
}

// Scale prepends an axis-aligned scale.
func (r *Renderer) Scale(x, y, z float64) {
	r.transform = geom.Scale(x, y, z).Mul(r.transform)
}

// Perspective prepends the fixed perspective projection.
func (r *Renderer) Perspective() {
	r.transform = geom.Perspective().Mul(r.transform)
}

// WithTransform runs fn with the current transform temporarily replaced
// by t, restoring the previous transform on every exit path.
func (r *Renderer) WithTransform(t geom.Transform, fn func()) {
	old := r.transform
	r.transform = t
	defer func() { r.transform = old }()
	fn()
}

// SetColor sets the current draw color.
func (r *Renderer) SetColor(c Pixel) { r.color = c }

// SetLightPos sets the light position used for triangle shading.
func (r *Renderer) SetLightPos(p geom.Point) { r.light = p }

// SetShader installs the triangle shading hook. A nil shader disables
// lighting.
func (r *Renderer) SetShader(s Shader) {
	if s == nil {
		s = Unshaded
	}
	r.shader = s
}

// SetDepthTest toggles per-pixel depth testing on the framebuffer.
func (r *Renderer) SetDepthTest(on bool) {
	r.fb.SetDepthTest(on)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
