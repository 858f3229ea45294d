package geom

import "math"

// Transform is a 4×4 matrix stored row-major. Points apply column-style
// (M·p), so in a.Mul(b) the right factor acts on a point first. Identity
// is the neutral element under Mul in either order.
type Transform [16]float64

func Identity() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(p Point) Transform {
	return Transform{
		1, 0, 0, p.X,
		0, 1, 0, p.Y,
		0, 0, 1, p.Z,
		0, 0, 0, 1,
	}
}

// RotateX rotates about the x axis. Angle in radians.
func RotateX(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return Transform{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY rotates about the y axis.
func RotateY(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return Transform{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates about the z axis.
func RotateZ(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	return Transform{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Scale(sx, sy, sz float64) Transform {
	return Transform{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns the fixed projective-divide matrix: identity plus a
// w-row z coefficient of 1, so applying it maps w to z+1 and Apply divides
// x, y, z by z+1.
func Perspective() Transform {
	m := Identity()
	m[14] = 1
	return m
}

// Mul returns the matrix product a×b. Applied to a point, b's effect comes
// first and a's second.
func (a Transform) Mul(b Transform) Transform {
	var m Transform
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}
