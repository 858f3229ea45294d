package raster

import "math"

// FrameBuffer is the render target for one frame: one color and one depth
// value per cell, row-major (index = y*w + x). Depth starts at -Inf,
// meaning nothing drawn; draw calls store negated view-space z, so nearer
// surfaces carry larger depth values.
//
// Writes outside the buffer are silently ignored so callers need not
// pre-clip.
type FrameBuffer struct {
	w, h      int
	color     []Pixel
	depth     []float64
	depthTest bool
}

// NewFrameBuffer allocates both grids: color set to Background, depth to
// negative infinity.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		w:     w,
		h:     h,
		color: make([]Pixel, n),
		depth: make([]float64, n),
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.w }
func (fb *FrameBuffer) Height() int { return fb.h }

// At returns the color at (x, y). Out-of-range coordinates return the
// background color.
func (fb *FrameBuffer) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return Background
	}
	return fb.color[y*fb.w+x]
}

// DepthAt returns the depth at (x, y), or -Inf out of range.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return math.Inf(-1)
	}
	return fb.depth[y*fb.w+x]
}

// SetDepthTest toggles the nearer-wins depth compare on pixel writes.
// Off by default: visibility is then last-write-wins in call order.
func (fb *FrameBuffer) SetDepthTest(on bool) {
	fb.depthTest = on
}

// SetPixel writes one cell. Coordinates outside [0,w)×[0,h) are a no-op.
func (fb *FrameBuffer) SetPixel(x, y int, depth float64, c Pixel) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	fb.setPixelUnchecked(x, y, depth, c)
}

func (fb *FrameBuffer) setPixelUnchecked(x, y int, depth float64, c Pixel) {
	i := y*fb.w + x
	if fb.depthTest && depth < fb.depth[i] {
		return
	}
	fb.depth[i] = depth
	fb.color[i] = c
}

// SetRow fills the horizontal span [x1, x2] on row y. The row is a no-op
// if y is outside the buffer or the span misses it entirely; otherwise
// both endpoints are clamped in and every pixel of the clamped inclusive
// range is written, with depth interpolated between d1 and d2 across the
// unclamped span.
func (fb *FrameBuffer) SetRow(x1, x2, y int, d1, d2 float64, c Pixel) {
	if y < 0 || y >= fb.h {
		return
	}
	if x2 < 0 || x1 >= fb.w {
		return
	}

	start := clampInt(x1, 0, fb.w-1)
	end := clampInt(x2, 0, fb.w-1)

	for x := start; x <= end; x++ {
		d := d1
		if x1 != x2 {
			t := float64(x-x1) / float64(x2-x1)
			d = d1*(1-t) + d2*t
		}
		fb.setPixelUnchecked(x, y, d, c)
	}
}

// Clear resets every cell to the background color and -Inf depth.
func (fb *FrameBuffer) Clear() {
	negInf := math.Inf(-1)
	for i := range fb.color {
		fb.color[i] = Background
		fb.depth[i] = negInf
	}
}

// SetAllPixels overwrites the color grid only, leaving depth untouched.
func (fb *FrameBuffer) SetAllPixels(c Pixel) {
	for i := range fb.color {
		fb.color[i] = c
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
