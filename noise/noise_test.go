package noise

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{"", KindSimplex, false},
		{"simplex", KindSimplex, false},
		{" Simplex ", KindSimplex, false},
		{"FRACTAL", KindFractal, false},
		{"perlin", "", true},
		{"worley", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := New(tt.kind, 1)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) expected error", tt.kind)
				}
				if ValidKind(tt.kind) == nil {
					t.Errorf("ValidKind(%q) accepted an unknown kind", tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) unexpected error: %v", tt.kind, err)
			}
			if err := ValidKind(tt.kind); err != nil {
				t.Errorf("ValidKind(%q) = %v", tt.kind, err)
			}
			switch s.(type) {
			case *Simplex:
				if tt.want != KindSimplex {
					t.Errorf("New(%q) returned *Simplex, want %s", tt.kind, tt.want)
				}
			case *Fractal:
				if tt.want != KindFractal {
					t.Errorf("New(%q) returned *Fractal, want %s", tt.kind, tt.want)
				}
			default:
				t.Errorf("New(%q) returned %T", tt.kind, s)
			}
		})
	}
}

func TestSamplersInRange(t *testing.T) {
	samplers := map[string]Sampler{
		"simplex":      NewSimplex(42),
		"fractal":      NewFractal(42, DefaultOctaves, DefaultLacunarity, DefaultGain),
		"fractal-loud": NewFractal(42, 6, 2.5, 0.9),
	}

	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 2000; i++ {
				x := float64(i) * 0.137
				y := float64(i) * -0.071
				z := float64(i) * 0.013
				v := s.Sample(x, y, z)
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("Sample(%v, %v, %v) = %v, outside [-1, 1]", x, y, z, v)
				}
			}
		})
	}
}

func TestSamplersDeterministic(t *testing.T) {
	sa := NewSimplex(7)
	sb := NewSimplex(7)
	fa := NewFractal(7, 3, 2, 0.5)
	fb := NewFractal(7, 3, 2, 0.5)

	for i := 0; i < 100; i++ {
		x, y, z := float64(i)*0.31, float64(i)*0.17, float64(i)*0.05
		if sa.Sample(x, y, z) != sb.Sample(x, y, z) {
			t.Fatalf("simplex with same seed diverged at %d", i)
		}
		if fa.Sample(x, y, z) != fb.Sample(x, y, z) {
			t.Fatalf("fractal with same seed diverged at %d", i)
		}
	}
}

func TestSamplersContinuous(t *testing.T) {
	samplers := map[string]Sampler{
		"simplex": NewSimplex(3),
		"fractal": NewFractal(3, DefaultOctaves, DefaultLacunarity, DefaultGain),
	}
	const eps = 1e-4

	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				x := float64(i) * 0.173
				y := float64(i) * 0.091
				z := float64(i) * 0.011
				d := math.Abs(s.Sample(x, y, z) - s.Sample(x+eps, y, z+eps))
				if d > 0.01 {
					t.Errorf("discontinuity at (%v, %v, %v): delta %v", x, y, z, d)
				}
			}
		})
	}
}

func TestFractalSingleOctaveMatchesSimplex(t *testing.T) {
	s := NewSimplex(5)
	f := NewFractal(5, 1, 2, 0.5)
	zero := NewFractal(5, 0, 2, 0.5)

	for i := 0; i < 50; i++ {
		x, y, z := float64(i)*0.21, float64(i)*0.13, float64(i)*0.07
		want := s.Sample(x, y, z)
		if got := f.Sample(x, y, z); math.Abs(got-want) > 1e-12 {
			t.Fatalf("one octave = %v, want simplex %v", got, want)
		}
		if got := zero.Sample(x, y, z); math.Abs(got-want) > 1e-12 {
			t.Fatalf("octaves raised to 1: got %v, want %v", got, want)
		}
	}
}

func TestConstant(t *testing.T) {
	tests := []struct {
		c    Constant
		want float64
	}{
		{0.5, 0.5},
		{-0.25, -0.25},
		{3, 1},
		{-3, -1},
	}

	for _, tt := range tests {
		if got := tt.c.Sample(1, 2, 3); got != tt.want {
			t.Errorf("Constant(%v).Sample = %v, want %v", float64(tt.c), got, tt.want)
		}
	}
}
