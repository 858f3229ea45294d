package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Shriken/rusterize/internal/anim"
	"github.com/Shriken/rusterize/internal/config"
	"github.com/Shriken/rusterize/internal/geom"
	"github.com/Shriken/rusterize/internal/raster"
	"github.com/Shriken/rusterize/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Raster columns (default: 20)")
	height := flag.Int("height", 0, "Raster rows (default: 20)")
	fps := flag.Int("fps", 0, "Animation frame rate (default: 60)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	format := flag.String("format", "", "Output format: webp, tga, or png (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
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
		Frames:    *frames,
		Format:    *format,
		OutputDir: *outputDir,
		Workers:   *workers,
	})

	fmt.Printf("rusterize: recording %s frames\n", cfg.Format)
	fmt.Printf("Frames: %d, Workers: %d\n", cfg.Frames, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := anim.Run(cfg, func(r *raster.Renderer, t float64) {
		r.SetDepthTest(*ztest)
		r.SetLightPos(geom.Pt(2, -2, -1))
		scene.Frame(r, t, *wire)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", res.Frame, res.Error)
		}
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs (%d ok, %d failed)\n", elapsed.Seconds(), len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
