package device

import (
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Shriken/rusterize/internal/raster"
)

// ErrQuit can be returned by a step function to close the window without
// reporting an error.
var ErrQuit = errors.New("device: quit")

// Window shows frames in a desktop window. Display snapshots the
// framebuffer into a mutex-guarded pixel buffer; Run drives the ebiten
// game loop, which redraws the latest snapshot at the configured tick
// rate.
type Window struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte // RGBA interleaved, len = w*h*4
}

func NewWindow(w, h int) *Window {
	return &Window{
		width:  w,
		height: h,
		pix:    make([]byte, w*h*4),
	}
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Display copies the framebuffer into the snapshot shown by the window.
func (w *Window) Display(fb *raster.FrameBuffer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			p := fb.At(x, y)
			i := (y*w.width + x) * 4
			w.pix[i] = p.R
			w.pix[i+1] = p.G
			w.pix[i+2] = p.B
			w.pix[i+3] = 0xFF
		}
	}
	return nil
}

// Run opens the window scaled up by scale and calls step once per tick
// (tps ticks per second) until the window closes, Escape is pressed, or
// step returns an error. ErrQuit from step closes cleanly. Blocks until
// the window closes.
func (w *Window) Run(title string, scale, tps int, step func() error) error {
	if scale < 1 {
		scale = 1
	}
	g := &game{win: w, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width*scale, w.height*scale)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}

type game struct {
	win   *Window
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.win
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w.width, w.height))
		g.fbImg = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	copy(g.img.Pix, w.pix)
	w.mu.Unlock()

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.width, g.win.height
}
