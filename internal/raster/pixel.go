package raster

import "image/color"

// Pixel is an RGB color with 8-bit channels.
type Pixel struct {
	R, G, B uint8
}

// Canonical colors.
var (
	Black = Pixel{0, 0, 0}
	White = Pixel{255, 255, 255}
	Red   = Pixel{255, 0, 0}
	Green = Pixel{0, 255, 0}
	Blue  = Pixel{0, 0, 255}
	Gray  = Pixel{128, 128, 128}
)

// Background is what Clear resets the color grid to.
var Background = Black

func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Shade scales each channel by k, clamping to [0, 255].
func (p Pixel) Shade(k float64) Pixel {
	return Pixel{
		R: clamp255(float64(p.R) * k),
		G: clamp255(float64(p.G) * k),
		B: clamp255(float64(p.B) * k),
	}
}

// NRGBA bridges to the standard color model for image-based devices.
// Rendered pixels are always opaque.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// glyphRamp orders printable characters by increasing brightness.
const glyphRamp = " .:-=+*#%@"

// Glyph maps the pixel to a printable character by luminance. Black maps
// to a space, white to '@'. Used only by text output devices.
func (p Pixel) Glyph() byte {
	lum := 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
	i := int(lum/255*float64(len(glyphRamp)-1) + 0.5)
	if i < 0 {
		i = 0
	}
	if i >= len(glyphRamp) {
		i = len(glyphRamp) - 1
	}
	return glyphRamp[i]
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
