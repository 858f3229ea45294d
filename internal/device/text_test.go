package device

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Shriken/rusterize/internal/raster"
)

func TestTextDisplay(t *testing.T) {
	fb := raster.NewFrameBuffer(2, 2)
	fb.SetPixel(0, 0, 0, raster.White)

	var buf bytes.Buffer
	txt := NewText(2, 2, &buf)
	if txt.Width() != 2 || txt.Height() != 2 {
		t.Fatalf("dims = %d×%d, want 2×2", txt.Width(), txt.Height())
	}

	if err := txt.Display(fb); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := "-------\n" +
		"| @   |\n" +
		"|     |\n" +
		"-------\n"
	if got := buf.String(); got != want {
		t.Errorf("Display output:\n%q\nwant:\n%q", got, want)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestTextDisplayPropagatesWriteError(t *testing.T) {
	boom := errors.New("tty gone")
	txt := NewText(2, 2, failWriter{err: boom})

	if err := txt.Display(raster.NewFrameBuffer(2, 2)); !errors.Is(err, boom) {
		t.Errorf("Display() = %v, want writer error", err)
	}
}
