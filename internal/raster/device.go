package raster

// Device is the output surface a Renderer publishes finished frames to.
// Width and Height size the framebuffer at renderer construction; Display
// blits a finished frame to the visible surface and may fail with a
// device-specific error, which the renderer surfaces unchanged.
type Device interface {
	Width() int
	Height() int
	Display(fb *FrameBuffer) error
}
