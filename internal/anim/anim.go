// Package anim renders animation sequences offline across a worker pool.
package anim

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Shriken/rusterize/internal/config"
	"github.com/Shriken/rusterize/internal/device"
	"github.com/Shriken/rusterize/internal/raster"
)

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Success bool
	Error   string
}

// RenderFunc draws one frame at time t (seconds) into the renderer.
type RenderFunc func(r *raster.Renderer, t float64)

// Run renders cfg.Frames frames through render using cfg.Workers
// goroutines. Each worker owns its renderer and recorder, so no
// framebuffer is ever shared between goroutines.
func Run(cfg config.Config, render RenderFunc) ([]Result, error) {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()
	defer close(done)

	// One recorder per worker, all writing into the same sequence.
	recorders := make([]*device.Recorder, cfg.Workers)
	for w := range recorders {
		rec, err := device.NewRecorder(cfg.Width, cfg.Height, cfg.Supersample, cfg.OutputDir, cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("anim: %w", err)
		}
		recorders[w] = rec
	}

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for _, rec := range recorders {
		wg.Add(1)
		go func(rec *device.Recorder) {
			defer wg.Done()
			r := raster.NewRenderer(rec)
			for idx := range frameChan {
				rec.SetFrame(idx)
				render(r, float64(idx)/float64(cfg.TargetFPS))
				if err := r.Display(); err != nil {
					results[idx] = Result{Frame: idx, Error: err.Error()}
				} else {
					results[idx] = Result{Frame: idx, Success: true}
				}
				processed.Add(1)
			}
		}(rec)
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	return results, nil
}
