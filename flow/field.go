package flow

import (
	"math"

	"github.com/pthm-cable/sketches/noise"
)

const (
	// angleTurns is how many full turns the noise range maps onto. Several
	// turns make neighbouring cells point in visibly different directions.
	angleTurns = 4

	// magnitudeOffset moves the magnitude sample to a disjoint region of the
	// same field so it is uncorrelated with the angle sample.
	magnitudeOffset = 20
)

// Vector is the field value at one grid cell.
type Vector struct {
	Angle     float64 // Radians in [0, 8π]
	Magnitude float64 // Segment length in pixels
	ColorKey  float64 // Bucketing key in [-1, 1]
}

// Endpoint returns the segment end for a vector anchored at (x, y).
func (v Vector) Endpoint(x, y float64) (float64, float64) {
	return x + math.Cos(v.Angle)*v.Magnitude, y + math.Sin(v.Angle)*v.Magnitude
}

// Evaluate samples the field at pixel (x, y) and time offset t.
// progress is the envelope's BounceSample.Progress for this frame.
//
// The colour key reuses the magnitude sample, so longer segments are drawn
// further along the gradient.
func Evaluate(s noise.Sampler, x, y, t float64, p Params, progress float64) Vector {
	sx := x * p.NoiseScale
	sy := y * p.NoiseScale

	n1 := s.Sample(sx, sy, t)
	angle := remap(n1, -1, 1, 0, 2*math.Pi*angleTurns)

	n2 := s.Sample(sx+magnitudeOffset, sy, t)
	boost := 1 + (1-progress)*p.BounceLengthBoost
	magnitude := remap(n2, -1, 1, 0, p.GridStep()*p.Length) * boost

	return Vector{
		Angle:     angle,
		Magnitude: magnitude,
		ColorKey:  n2,
	}
}

// remap linearly maps v from [inMin, inMax] to [outMin, outMax].
func remap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
}
