// Package scene holds the demo geometry and frame composition shared by
// the interactive and offline renderers.
package scene

import (
	"math"

	"github.com/Shriken/rusterize/internal/geom"
	"github.com/Shriken/rusterize/internal/raster"
)

const half = 0.5

// Cube returns a unit cube centered at the origin as 12 triangles with
// outward-facing winding (face normals point away from the center).
func Cube() []geom.Triangle {
	quads := cubeQuads()
	tris := make([]geom.Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			geom.Trigon(q[0], q[1], q[2]),
			geom.Trigon(q[0], q[2], q[3]),
		)
	}
	return tris
}

func cubeQuads() [][4]geom.Point {
	return [][4]geom.Point{
		// -z
		{geom.Pt(-half, -half, -half), geom.Pt(-half, half, -half), geom.Pt(half, half, -half), geom.Pt(half, -half, -half)},
		// +z
		{geom.Pt(-half, -half, half), geom.Pt(half, -half, half), geom.Pt(half, half, half), geom.Pt(-half, half, half)},
		// -x
		{geom.Pt(-half, -half, -half), geom.Pt(-half, -half, half), geom.Pt(-half, half, half), geom.Pt(-half, half, -half)},
		// +x
		{geom.Pt(half, -half, -half), geom.Pt(half, half, -half), geom.Pt(half, half, half), geom.Pt(half, -half, half)},
		// -y
		{geom.Pt(-half, -half, -half), geom.Pt(half, -half, -half), geom.Pt(half, -half, half), geom.Pt(-half, -half, half)},
		// +y
		{geom.Pt(-half, half, -half), geom.Pt(-half, half, half), geom.Pt(half, half, half), geom.Pt(half, half, -half)},
	}
}

// Edges returns the cube's 12 edges for wireframe drawing.
func Edges() [][2]geom.Point {
	e := make([][2]geom.Point, 0, 12)
	for _, z := range []float64{-half, half} {
		e = append(e,
			[2]geom.Point{geom.Pt(-half, -half, z), geom.Pt(half, -half, z)},
			[2]geom.Point{geom.Pt(half, -half, z), geom.Pt(half, half, z)},
			[2]geom.Point{geom.Pt(half, half, z), geom.Pt(-half, half, z)},
			[2]geom.Point{geom.Pt(-half, half, z), geom.Pt(-half, -half, z)},
		)
	}
	for _, x := range []float64{-half, half} {
		for _, y := range []float64{-half, half} {
			e = append(e, [2]geom.Point{geom.Pt(x, y, -half), geom.Pt(x, y, half)})
		}
	}
	return e
}

// Frame draws one frame of the spinning-cube demo at time t seconds.
// Geometry is moved into camera space in scene code, so the renderer's
// transform carries only projection and viewport mapping and the
// back-face test sees camera-relative centroids.
func Frame(r *raster.Renderer, t float64, wire bool) {
	fb := r.FrameBuffer()
	w := float64(fb.Width())
	h := float64(fb.Height())

	r.Clear()

	r.ClearTransform()
	r.Perspective()
	r.Scale(1.4*w, 1.4*h, 1)
	r.Translate(geom.Pt(w/2, h/2, 0))

	// Model motion: spin about y with a slow x-axis wobble, pushed out
	// to z=3 in front of the camera.
	model := geom.Translate(geom.Pt(0, 0, 3)).
		Mul(geom.RotateX(0.45 * math.Sin(0.7*t))).
		Mul(geom.RotateY(t))

	r.SetColor(raster.White)
	for _, tri := range Cube() {
		r.FillTriangle(tri.Apply(model))
	}

	if wire {
		r.SetColor(raster.Green)
		for _, e := range Edges() {
			r.DrawLine(e[0].Apply(model), e[1].Apply(model))
		}
	}

	// Viewport border in raw pixel coordinates, outside the 3-D
	// transform.
	r.WithTransform(geom.Identity(), func() {
		r.SetColor(raster.Gray)
		r.DrawLine(geom.Pt(0, 0, 0), geom.Pt(w-1, 0, 0))
		r.DrawLine(geom.Pt(w-1, 0, 0), geom.Pt(w-1, h-1, 0))
		r.DrawLine(geom.Pt(w-1, h-1, 0), geom.Pt(0, h-1, 0))
		r.DrawLine(geom.Pt(0, h-1, 0), geom.Pt(0, 0, 0))
	})
}
