package raster

// Shader turns the current draw color and a per-face lighting intensity
// (already clamped at zero) into the color a triangle is filled with.
type Shader func(base Pixel, intensity float64) Pixel

// FlatShader scales the draw color's channels by the lighting intensity.
func FlatShader(base Pixel, intensity float64) Pixel {
	return base.Shade(intensity)
}

// Unshaded ignores lighting and fills with the draw color as-is.
func Unshaded(base Pixel, _ float64) Pixel {
	return base
}
