// Package config provides configuration loading and access for the sketch.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/sketches/flow"
	"github.com/pthm-cable/sketches/noise"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sketch configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Noise     NoiseConfig     `yaml:"noise"`
	Sketch    SketchConfig    `yaml:"sketch"`
	Panel     PanelConfig     `yaml:"panel"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	Resizable bool `yaml:"resizable"`
}

// NoiseConfig selects the noise backend.
type NoiseConfig struct {
	Kind string `yaml:"kind"` // simplex | fractal
	Seed int64  `yaml:"seed"` // 0 = time-based
}

// SketchConfig holds the initial values of the live-tunable parameters.
// Colours are hex strings ("#rrggbb").
type SketchConfig struct {
	Step       int          `yaml:"step"`
	NoiseScale float64      `yaml:"noise_scale"`
	Speed      float64      `yaml:"speed"`
	Length     float64      `yaml:"length"`
	Color1     string       `yaml:"color1"`
	Color2     string       `yaml:"color2"`
	Background string       `yaml:"background"`
	Debug      bool         `yaml:"debug"`
	Bounce     BounceConfig `yaml:"bounce"`
}

// BounceConfig holds the beat envelope parameters.
type BounceConfig struct {
	BPM         float64 `yaml:"bpm"`
	Decay       float64 `yaml:"decay"`        // Decay rate per ms
	TimeBoost   float64 `yaml:"time_boost"`   // Extra time offset per beat, scaled by speed
	Background  string  `yaml:"background"`   // Background colour at the beat
	LengthBoost float64 `yaml:"length_boost"` // Extra segment length at the beat
}

// PanelConfig holds parameter panel settings.
type PanelConfig struct {
	Visible bool `yaml:"visible"`
	Width   int  `yaml:"width"`
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	StatsWindow int     `yaml:"stats_window"` // Frames in the rolling window
	LogInterval float64 `yaml:"log_interval"` // Seconds between stats log lines (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Params    flow.Params // Sketch section with colours parsed
	ScreenW32 float32     // Screen.Width as float32
	ScreenH32 float32     // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if err := noise.ValidKind(c.Noise.Kind); err != nil {
		return fmt.Errorf("noise: %w", err)
	}

	params, err := c.Sketch.Params()
	if err != nil {
		return err
	}
	c.Derived.Params = params
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	return nil
}

// Params converts the sketch section into flow parameters.
// Numeric values are passed through unvalidated.
func (s SketchConfig) Params() (flow.Params, error) {
	p := flow.Params{
		Step:              s.Step,
		NoiseScale:        s.NoiseScale,
		Speed:             s.Speed,
		Length:            s.Length,
		Debug:             s.Debug,
		BounceBPM:         s.Bounce.BPM,
		BounceDecay:       s.Bounce.Decay,
		BounceTimeBoost:   s.Bounce.TimeBoost,
		BounceLengthBoost: s.Bounce.LengthBoost,
	}

	colors := []struct {
		field string
		hex   string
		dst   *colorful.Color
	}{
		{"sketch.color1", s.Color1, &p.Color1},
		{"sketch.color2", s.Color2, &p.Color2},
		{"sketch.background", s.Background, &p.Background},
		{"sketch.bounce.background", s.Bounce.Background, &p.BounceBackground},
	}
	for _, c := range colors {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return flow.Params{}, fmt.Errorf("%s: invalid colour %q: %w", c.field, c.hex, err)
		}
		*c.dst = col
	}
	return p, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
