// Package device provides output-device implementations for the
// rasterizer: a terminal glyph grid, an ebiten-backed desktop window, and
// an offline frame recorder.
package device

import (
	"io"
	"strings"

	"github.com/Shriken/rusterize/internal/raster"
)

// Text renders frames as a bordered glyph grid, one character per pixel,
// to an io.Writer (typically stdout).
type Text struct {
	w, h int
	out  io.Writer
}

func NewText(w, h int, out io.Writer) *Text {
	return &Text{w: w, h: h, out: out}
}

func (t *Text) Width() int  { return t.w }
func (t *Text) Height() int { return t.h }

// Display writes the frame as text. Writer failures propagate to the
// caller unchanged.
func (t *Text) Display(fb *raster.FrameBuffer) error {
	var b strings.Builder
	bar := strings.Repeat("-", fb.Width()*2+3)

	b.WriteString(bar)
	b.WriteByte('\n')
	for y := 0; y < fb.Height(); y++ {
		b.WriteString("| ")
		for x := 0; x < fb.Width(); x++ {
			b.WriteByte(fb.At(x, y).Glyph())
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(bar)
	b.WriteByte('\n')

	_, err := io.WriteString(t.out, b.String())
	return err
}
