package scene

import (
	"io"
	"testing"

	"github.com/Shriken/rusterize/internal/device"
	"github.com/Shriken/rusterize/internal/geom"
	"github.com/Shriken/rusterize/internal/raster"
)

func TestCubeGeometry(t *testing.T) {
	tris := Cube()
	if len(tris) != 12 {
		t.Fatalf("Cube has %d triangles, want 12", len(tris))
	}

	// Outward winding: every face normal points away from the center.
	for i, tri := range tris {
		n := tri.Normal()
		if n == (geom.Point{}) {
			t.Errorf("triangle %d is degenerate", i)
			continue
		}
		if n.Dot(tri.Centroid()) <= 0 {
			t.Errorf("triangle %d winds inward: normal %v, centroid %v", i, n, tri.Centroid())
		}
	}
}

func TestEdges(t *testing.T) {
	edges := Edges()
	if len(edges) != 12 {
		t.Fatalf("cube has %d edges, want 12", len(edges))
	}
	for i, e := range edges {
		if e[0] == e[1] {
			t.Errorf("edge %d has identical endpoints", i)
		}
	}
}

func TestFramePaintsCube(t *testing.T) {
	txt := device.NewText(24, 24, io.Discard)
	r := raster.NewRenderer(txt)
	r.SetLightPos(geom.Pt(2, -2, -1))

	Frame(r, 0, true)

	fb := r.FrameBuffer()
	// The front face projects over the buffer center.
	if fb.At(12, 12) == raster.Background {
		t.Error("center pixel unpainted, cube face missing")
	}
	// The viewport border is drawn in screen space.
	if fb.At(0, 0) != raster.Gray {
		t.Errorf("border corner = %v, want Gray", fb.At(0, 0))
	}
}

func TestFrameRestoresScreenTransform(t *testing.T) {
	txt := device.NewText(16, 16, io.Discard)
	r := raster.NewRenderer(txt)

	Frame(r, 0.5, false)
	after := r.Transform()

	// The border is drawn under a scoped identity override; the 3-D view
	// transform must survive the frame.
	if after == geom.Identity() {
		t.Error("frame left the identity override installed")
	}
}
