// Package noise provides seeded 3D coherent-noise samplers.
//
// All samplers return values in [-1, 1] and are deterministic for a given
// seed. A sampler is seeded once and reused; reseeding breaks temporal
// continuity of anything animated along the z axis.
package noise

import (
	"fmt"
	"strings"
)

// Sampler returns a coherent noise value in [-1, 1] for a 3D coordinate.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// Kinds accepted by New. An empty kind selects KindSimplex.
const (
	KindSimplex = "simplex"
	KindFractal = "fractal"
)

func normalizeKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	if k == "" {
		return KindSimplex
	}
	return k
}

// ValidKind reports whether New accepts kind.
func ValidKind(kind string) error {
	switch normalizeKind(kind) {
	case KindSimplex, KindFractal:
		return nil
	}
	return fmt.Errorf("unknown noise kind %q", kind)
}

// New creates a sampler of the named kind.
func New(kind string, seed int64) (Sampler, error) {
	switch normalizeKind(kind) {
	case KindSimplex:
		return NewSimplex(seed), nil
	case KindFractal:
		return NewFractal(seed, DefaultOctaves, DefaultLacunarity, DefaultGain), nil
	}
	return nil, fmt.Errorf("unknown noise kind %q", kind)
}

// Constant is a sampler that ignores its input.
type Constant float64

// Sample returns the constant, clamped to [-1, 1].
func (c Constant) Sample(x, y, z float64) float64 {
	return clamp(float64(c))
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
