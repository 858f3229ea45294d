package device

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"

	"github.com/Shriken/rusterize/internal/raster"
)

// Recorder writes each displayed frame to a numbered image file. It
// reports supersampled dimensions so the renderer draws at ss× the output
// resolution, then downsamples before encoding.
type Recorder struct {
	width, height int // logical output size
	supersample   int
	dir           string
	format        string
	frame         int
}

// NewRecorder creates the output directory and validates the format
// ("webp", "tga", or "png").
func NewRecorder(w, h, supersample int, dir, format string) (*Recorder, error) {
	if supersample < 1 {
		supersample = 1
	}
	switch format {
	case "webp", "tga", "png":
	default:
		return nil, fmt.Errorf("device: unknown format %q", format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("device: create %s: %w", dir, err)
	}
	return &Recorder{
		width:       w,
		height:      h,
		supersample: supersample,
		dir:         dir,
		format:      format,
	}, nil
}

func (r *Recorder) Width() int  { return r.width * r.supersample }
func (r *Recorder) Height() int { return r.height * r.supersample }

// FrameCount reports how many frames have been written.
func (r *Recorder) FrameCount() int { return r.frame }

// SetFrame sets the number used for the next output file, letting
// parallel workers interleave into one sequence.
func (r *Recorder) SetFrame(n int) { r.frame = n }

// Display downsamples the frame to the output size and encodes it as
// frame_NNNN.<format> in the output directory.
func (r *Recorder) Display(fb *raster.FrameBuffer) error {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			i := img.PixOffset(x, y)
			p := fb.At(x, y)
			img.Pix[i] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = 255
		}
	}

	if r.supersample > 1 {
		img = downsample(img, r.width, r.height)
	}

	name := filepath.Join(r.dir, fmt.Sprintf("frame_%04d.%s", r.frame, r.format))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("device: create %s: %w", name, err)
	}
	defer f.Close()

	switch r.format {
	case "webp":
		err = nativewebp.Encode(f, img, nil)
	case "tga":
		err = tga.Encode(f, img)
	case "png":
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("device: encode %s: %w", name, err)
	}

	r.frame++
	return nil
}

// downsample scales the supersampled frame to the output size with
// CatmullRom filtering. Frames are fully opaque, so no alpha
// premultiplication is needed.
func downsample(src *image.NRGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
