// Package main renders the flow field headlessly to PNG frames on a fixed
// clock, without opening a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/sketches/config"
	"github.com/pthm-cable/sketches/flow"
	"github.com/pthm-cable/sketches/noise"
	"github.com/pthm-cable/sketches/renderer"
	"github.com/pthm-cable/sketches/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "Noise seed (0 = use config, then 1)")
	frames := flag.Int("frames", 1, "Number of frames to render")
	fps := flag.Float64("fps", 60, "Frame rate of the fixed clock")
	width := flag.Int("width", 0, "Image width (0 = use config)")
	height := flag.Int("height", 0, "Image height (0 = use config)")
	lineWidth := flag.Float64("line-width", 1, "Stroke width in pixels")
	outputDir := flag.String("output", "frames", "Output directory for PNG frames and frames.csv")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *seed, *frames, *fps, *width, *height, *lineWidth, *outputDir); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, frames int, fps float64, width, height int, lineWidth float64, outputDir string) error {
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	if outputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", fps)
	}
	if width <= 0 {
		width = cfg.Screen.Width
	}
	if height <= 0 {
		height = cfg.Screen.Height
	}

	if seed == 0 {
		seed = cfg.Noise.Seed
	}
	if seed == 0 {
		// Fixed fallback keeps headless output reproducible
		seed = 1
	}

	sampler, err := noise.New(cfg.Noise.Kind, seed)
	if err != nil {
		return fmt.Errorf("creating noise sampler: %w", err)
	}

	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	params := cfg.Derived.Params
	driver := flow.NewDriver(sampler, width, height)
	canvas := renderer.NewImageCanvas(width, height)
	canvas.SetLineWidth(lineWidth)
	collector := telemetry.NewFrameCollector(cfg.Telemetry.StatsWindow)

	slog.Info("rendering",
		"frames", frames,
		"fps", fps,
		"width", width,
		"height", height,
		"seed", seed,
		"output", outputDir,
	)

	start := time.Now()
	interval := 1000 / fps
	var last flow.Frame
	for i := 1; i <= frames; i++ {
		collector.StartFrame()
		collector.StartPhase(telemetry.PhaseAdvance)
		f := driver.Advance(float64(i)*interval, params)

		collector.StartPhase(telemetry.PhaseRender)
		driver.Render(&f, params, canvas)

		collector.StartPhase(telemetry.PhasePresent)
		path := om.Path(fmt.Sprintf("frame_%04d.png", i))
		if err := canvas.SavePNG(path); err != nil {
			return err
		}
		collector.EndFrame(f)
		last = f
	}

	stats := collector.Stats()
	if err := om.WriteFrames(stats, last.TimeOffset); err != nil {
		return err
	}

	slog.Info("done",
		"frames", frames,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"dir", filepath.Clean(outputDir),
		"stats", stats,
	)
	return nil
}
