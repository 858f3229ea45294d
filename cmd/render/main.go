package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Shriken/rusterize/internal/config"
	"github.com/Shriken/rusterize/internal/device"
	"github.com/Shriken/rusterize/internal/geom"
	"github.com/Shriken/rusterize/internal/raster"
	"github.com/Shriken/rusterize/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Raster columns (default: 20)")
	height := flag.Int("height", 0, "Raster rows (default: 20)")
	fps := flag.Int("fps", 0, "Target frame rate (default: 60)")
	dev := flag.String("device", "", "Output device: window or text (default: window)")
	frames := flag.Int("frames", 0, "Frame count for the text device (default: 120)")
	wire := flag.Bool("wire", false, "Overlay wireframe edges")
	ztest := flag.Bool("ztest", false, "Enable per-pixel depth testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		TargetFPS: *fps,
		Device:    *dev,
		Frames:    *frames,
	})

	var err error
	switch cfg.Device {
	case "window":
		err = runWindow(cfg, *wire, *ztest)
	case "text":
		err = runText(cfg, *wire, *ztest)
	default:
		err = fmt.Errorf("unknown device %q (want window or text)", cfg.Device)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWindow(cfg config.Config, wire, ztest bool) error {
	win := device.NewWindow(cfg.Width, cfg.Height)
	r := newDemoRenderer(win, ztest)

	frame := 0
	step := func() error {
		scene.Frame(r, float64(frame)/float64(cfg.TargetFPS), wire)
		frame++
		return r.Display()
	}
	return win.Run("rusterize", cfg.Scale, cfg.TargetFPS, step)
}

// runText paces frames itself: measure the frame's wall-clock cost and
// sleep for the remainder of the frame interval. Quits between frames
// on interrupt.
func runText(cfg config.Config, wire, ztest bool) error {
	txt := device.NewText(cfg.Width, cfg.Height, os.Stdout)
	r := newDemoRenderer(txt, ztest)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	frameLen := time.Second / time.Duration(cfg.TargetFPS)
	for frame := 0; frame < cfg.Frames; frame++ {
		select {
		case <-quit:
			return nil
		default:
		}

		frameStart := time.Now()
		scene.Frame(r, float64(frame)/float64(cfg.TargetFPS), wire)
		if err := r.Display(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameLen {
			time.Sleep(frameLen - elapsed)
		}
	}
	return nil
}

func newDemoRenderer(d raster.Device, ztest bool) *raster.Renderer {
	r := raster.NewRenderer(d)
	r.SetDepthTest(ztest)
	r.SetLightPos(geom.Pt(2, -2, -1))
	return r
}
