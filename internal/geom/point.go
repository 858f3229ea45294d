package geom

import "math"

// Point is a 3-D coordinate. Whether it lives in model, world, or screen
// space depends on the pipeline stage; nothing is enforced. Value type,
// never mutated in place.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Point) Sub(b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

func (a Point) Dot(b Point) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Point) Cross(b Point) Point {
	return Point{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalized returns the unit vector in p's direction. A vector too short
// to divide by yields the zero vector instead of NaNs.
func (p Point) Normalized() Point {
	l := p.Len()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l, p.Z / l}
}

// Apply transforms the point by m, performing the perspective divide when
// the resulting w is non-negligible. A w of (near) zero leaves the point
// undivided rather than blowing up.
func (p Point) Apply(m Transform) Point {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]

	if w != 1 {
		if math.Abs(w) < 1e-12 {
			return Point{x, y, z}
		}
		inv := 1.0 / w
		return Point{x * inv, y * inv, z * inv}
	}
	return Point{x, y, z}
}
