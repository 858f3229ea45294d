package geom

import "sort"

// Triangle is three vertices in caller-supplied order. Derived values
// (centroid, normal) are recomputed on demand, never cached.
type Triangle struct {
	P1, P2, P3 Point
}

// Trigon is shorthand for constructing a Triangle.
func Trigon(p1, p2, p3 Point) Triangle {
	return Triangle{P1: p1, P2: p2, P3: p3}
}

// Apply transforms all three vertices by m.
func (t Triangle) Apply(m Transform) Triangle {
	return Triangle{t.P1.Apply(m), t.P2.Apply(m), t.P3.Apply(m)}
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle) Centroid() Point {
	return t.P1.Add(t.P2).Add(t.P3).Scale(1.0 / 3.0)
}

// Normal returns the unit face normal, computed from the edge vectors in
// vertex order. Collinear vertices give the zero vector.
func (t Triangle) Normal() Point {
	return t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Normalized()
}

// SortedByY returns the triangle with vertices reordered by ascending y.
// The relative order of vertices with equal y is kept stable; pixel-exact
// output for such ties is unspecified.
func (t Triangle) SortedByY() Triangle {
	v := []Point{t.P1, t.P2, t.P3}
	sort.SliceStable(v, func(i, j int) bool { return v[i].Y < v[j].Y })
	return Triangle{v[0], v[1], v[2]}
}

// SplitAtMiddleY computes the synthetic fourth vertex on the top-to-bottom
// edge at the middle vertex's height, interpolating x and z by the
// fractional y distance. The receiver must already be sorted by y.
func (t Triangle) SplitAtMiddleY() Point {
	k := (t.P2.Y - t.P1.Y) / (t.P3.Y - t.P1.Y)
	return Point{
		X: t.P1.X + k*(t.P3.X-t.P1.X),
		Y: t.P2.Y,
		Z: t.P1.Z + k*(t.P3.Z-t.P1.Z),
	}
}
