package noise

import "github.com/ojrac/opensimplex-go"

// Simplex wraps OpenSimplex 3D noise.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a new OpenSimplex sampler.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample returns the noise value at (x, y, z), clamped to [-1, 1].
func (s *Simplex) Sample(x, y, z float64) float64 {
	return clamp(s.n.Eval3(x, y, z))
}
