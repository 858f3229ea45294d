package device

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shriken/rusterize/internal/raster"
)

func TestRecorderUnknownFormat(t *testing.T) {
	if _, err := NewRecorder(4, 4, 1, t.TempDir(), "bmp"); err == nil {
		t.Error("NewRecorder accepted an unknown format")
	}
}

func TestRecorderWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(4, 4, 1, dir, "png")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if rec.Width() != 4 || rec.Height() != 4 {
		t.Fatalf("dims = %d×%d, want 4×4", rec.Width(), rec.Height())
	}

	fb := raster.NewFrameBuffer(4, 4)
	fb.SetAllPixels(raster.Red)
	for i := 0; i < 2; i++ {
		if err := rec.Display(fb); err != nil {
			t.Fatalf("Display %d: %v", i, err)
		}
	}
	if rec.FrameCount() != 2 {
		t.Errorf("FrameCount = %d, want 2", rec.FrameCount())
	}

	for _, name := range []string{"frame_0000.png", "frame_0001.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
			t.Errorf("%s is %d×%d, want 4×4", name, b.Dx(), b.Dy())
		}
	}
}

func TestRecorderSupersamples(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(4, 4, 2, dir, "png")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if rec.Width() != 8 || rec.Height() != 8 {
		t.Fatalf("supersampled dims = %d×%d, want 8×8", rec.Width(), rec.Height())
	}

	fb := raster.NewFrameBuffer(8, 8)
	fb.SetAllPixels(raster.White)
	if err := rec.Display(fb); err != nil {
		t.Fatalf("Display: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "frame_0000.png"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("output is %d×%d, want downsampled 4×4", b.Dx(), b.Dy())
	}
}

func TestRecorderSetFrame(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(2, 2, 1, dir, "png")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	rec.SetFrame(7)
	if err := rec.Display(raster.NewFrameBuffer(2, 2)); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_0007.png")); err != nil {
		t.Errorf("frame_0007.png missing: %v", err)
	}
}
