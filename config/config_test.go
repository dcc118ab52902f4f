package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	p := cfg.Derived.Params
	if p.Step != 10 {
		t.Errorf("Step = %d, want 10", p.Step)
	}
	if p.NoiseScale != 0.005 {
		t.Errorf("NoiseScale = %v, want 0.005", p.NoiseScale)
	}
	if p.BounceBPM != 80 {
		t.Errorf("BounceBPM = %v, want 80", p.BounceBPM)
	}
	if got := p.Background.Hex(); got != "#000000" {
		t.Errorf("Background = %s, want #000000", got)
	}
	if cfg.Noise.Kind != "simplex" {
		t.Errorf("Noise.Kind = %q, want simplex", cfg.Noise.Kind)
	}
	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("ScreenW32 = %v, want %d", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := writeConfig(t, `
sketch:
  step: 25
  bounce:
    bpm: 120
    background: "#ff0000"
noise:
  kind: fractal
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := cfg.Derived.Params
	if p.Step != 25 {
		t.Errorf("Step = %d, want 25", p.Step)
	}
	if p.BounceBPM != 120 {
		t.Errorf("BounceBPM = %v, want 120", p.BounceBPM)
	}
	if p.BounceDecay != 0.01 {
		t.Errorf("BounceDecay = %v, want default 0.01", p.BounceDecay)
	}
	if got := p.BounceBackground.Hex(); got != "#ff0000" {
		t.Errorf("BounceBackground = %s, want #ff0000", got)
	}
	if cfg.Noise.Kind != "fractal" {
		t.Errorf("Noise.Kind = %q, want fractal", cfg.Noise.Kind)
	}
}

func TestLoadPassesThroughOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, `
sketch:
  step: -3
  bounce:
    bpm: 0
    decay: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.Params.Step != -3 {
		t.Errorf("Step = %d, want -3 passed through", cfg.Derived.Params.Step)
	}
	if cfg.Derived.Params.GridStep() != 1 {
		t.Errorf("GridStep = %v, want floor of 1", cfg.Derived.Params.GridStep())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"bad yaml", "sketch: [unclosed", "parsing config file"},
		{"bad colour", "sketch:\n  color1: \"not-a-colour\"\n", "sketch.color1"},
		{"bad bounce colour", "sketch:\n  bounce:\n    background: \"#12\"\n", "sketch.bounce.background"},
		{"unknown noise", "noise:\n  kind: worley\n", "noise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Sketch.Step = 33

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if reloaded.Derived.Params.Step != 33 {
		t.Errorf("reloaded Step = %d, want 33", reloaded.Derived.Params.Step)
	}
}
