package noise

import "github.com/ojrac/opensimplex-go"

// Fractal layers octaves of OpenSimplex noise (fBm). Each octave doubles the
// frequency and scales the amplitude by Gain; the sum is divided by the total
// amplitude so the result stays in [-1, 1].
type Fractal struct {
	n          opensimplex.Noise
	octaves    int
	lacunarity float64
	gain       float64
	norm       float64
}

// Default fBm shape.
const (
	DefaultOctaves    = 4
	DefaultLacunarity = 2.0
	DefaultGain       = 0.5
)

// NewFractal creates an fBm sampler. Octaves below 1 are raised to 1.
func NewFractal(seed int64, octaves int, lacunarity, gain float64) *Fractal {
	octaves = max(octaves, 1)

	amp, total := 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += amp
		amp *= gain
	}

	return &Fractal{
		n:          opensimplex.New(seed),
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
		norm:       total,
	}
}

// Sample returns the normalised fBm value at (x, y, z).
func (f *Fractal) Sample(x, y, z float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		sum += f.n.Eval3(x*freq, y*freq, z*freq) * amp
		freq *= f.lacunarity
		amp *= f.gain
	}
	if f.norm == 0 {
		return 0
	}
	return clamp(sum / f.norm)
}
