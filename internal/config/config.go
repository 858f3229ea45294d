package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all render and output settings.
type Config struct {
	// Raster dimensions and pacing
	Width     int `json:"width"`
	Height    int `json:"height"`
	TargetFPS int `json:"target_fps"`
	Scale     int `json:"scale"`

	// Output device: "window" or "text"
	Device string `json:"device"`

	// Offline recording
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"`
	Supersample int    `json:"supersample"`
	Frames      int    `json:"frames"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	TargetFPS int
	Device    string
	OutputDir string
	Format    string
	Frames    int
	Workers   int
}

// Resolve applies CLI flag overrides, then fills any remaining zero
// fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.TargetFPS > 0 {
		c.TargetFPS = flags.TargetFPS
	}
	if flags.Device != "" {
		c.Device = flags.Device
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 20
	}
	if c.Height <= 0 {
		c.Height = 20
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.Scale <= 0 {
		c.Scale = 16
	}
	if c.Device == "" {
		c.Device = "window"
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
