// Package game hosts the flow-field sketch in a raylib window.
package game

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketches/config"
	"github.com/pthm-cable/sketches/flow"
	"github.com/pthm-cable/sketches/noise"
	"github.com/pthm-cable/sketches/renderer"
	"github.com/pthm-cable/sketches/telemetry"
	"github.com/pthm-cable/sketches/ui"
)

// Options configures a Sketch beyond what config.yaml holds.
type Options struct {
	Seed      int64  // Noise seed
	LogStats  bool   // Log frame stats via slog
	OutputDir string // Directory for config snapshot and frames.csv (empty = disabled)
}

// Sketch holds the complete sketch state.
type Sketch struct {
	cfg    *config.Config
	params flow.Params
	driver *flow.Driver
	canvas *renderer.RaylibCanvas
	panel  *ui.Panel

	start     time.Time
	frames    int64
	lastFrame flow.Frame

	collector     *telemetry.FrameCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastFlush     float64 // Clock reading of the last stats flush, ms

	warnedStep bool
}

// New creates a sketch from the loaded config. It must be called after
// rl.InitWindow.
func New(cfg *config.Config, opts Options) (*Sketch, error) {
	sampler, err := noise.New(cfg.Noise.Kind, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating noise sampler: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	params := cfg.Derived.Params

	panel := ui.NewPanel(10, 40, int32(cfg.Panel.Width), params)
	panel.SetVisible(cfg.Panel.Visible)

	s := &Sketch{
		cfg:           cfg,
		params:        params,
		driver:        flow.NewDriver(sampler, width, height),
		canvas:        renderer.NewRaylibCanvas(int32(width), int32(height)),
		panel:         panel,
		start:         time.Now(),
		collector:     telemetry.NewFrameCollector(cfg.Telemetry.StatsWindow),
		outputManager: om,
		logStats:      opts.LogStats,
	}

	slog.Info("sketch created",
		"seed", opts.Seed,
		"noise", cfg.Noise.Kind,
		"width", width,
		"height", height,
		"output_dir", om.Dir(),
	)
	return s, nil
}

// Params returns a pointer to the live parameters.
func (s *Sketch) Params() *flow.Params {
	return &s.params
}

// Frames returns the number of frames drawn.
func (s *Sketch) Frames() int64 {
	return s.frames
}

// now returns the sketch clock in ms since creation.
func (s *Sketch) now() float64 {
	return float64(time.Since(s.start)) / float64(time.Millisecond)
}

// Unload flushes telemetry and releases resources.
func (s *Sketch) Unload() {
	if s.collector.Frames() > 0 {
		s.flushTelemetry()
	}
	if err := s.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
