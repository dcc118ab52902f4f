// Package flow implements the flow-field animation core: a noise-driven
// vector field rendered as colour-bucketed line segments, pulsed by a
// beat-synchronised decay envelope.
package flow

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// MinStep is the smallest grid step the driver will iterate with.
// Non-positive steps are floored to it so the grid loop always progresses.
const MinStep = 1

// Params holds the live-tunable sketch parameters.
// Params is a value type: the host passes a copy into each frame, so edits
// made by the panel between frames never tear a frame in progress.
type Params struct {
	Step       int     // Grid spacing in pixels (5-50)
	NoiseScale float64 // Noise frequency per pixel (0.001-0.05)
	Speed      float64 // Time-axis advance per second (0-1)
	Length     float64 // Segment length as a multiple of Step (0-5)

	Color1     colorful.Color // Gradient colour for low colour keys
	Color2     colorful.Color // Gradient colour for high colour keys
	Background colorful.Color

	Debug bool // Draw the FPS overlay

	BounceBPM         float64        // Beat rate (0-200, 0 disables the envelope)
	BounceDecay       float64        // Exponential decay rate per ms (0.001-0.05)
	BounceTimeBoost   float64        // Extra time advance per beat (0-0.5)
	BounceBackground  colorful.Color // Background colour at the moment of a beat
	BounceLengthBoost float64        // Extra segment length right after a beat (0-10)
}

// DefaultParams returns the parameters of the original flow-field sketch.
func DefaultParams() Params {
	return Params{
		Step:              10,
		NoiseScale:        0.005,
		Speed:             0.2,
		Length:            0.5,
		Color1:            colorful.Color{R: 0.18, G: 0.36, B: 0.95},
		Color2:            colorful.Color{R: 0.98, G: 0.36, B: 0.62},
		Background:        colorful.Color{R: 0, G: 0, B: 0},
		BounceBPM:         80,
		BounceDecay:       0.01,
		BounceTimeBoost:   0.25,
		BounceBackground:  colorful.Color{R: 0.16, G: 0.1, B: 0.22},
		BounceLengthBoost: 1,
	}
}

// GridStep returns the step used by the grid loop, floored at MinStep.
func (p Params) GridStep() float64 {
	if p.Step < MinStep {
		return MinStep
	}
	return float64(p.Step)
}

// ToggleDebug flips the diagnostic overlay flag.
func (p *Params) ToggleDebug() {
	p.Debug = !p.Debug
}

// Range is the declared panel range for a numeric parameter.
type Range struct {
	Min, Max float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// Field names a numeric parameter that has a panel range.
type Field int

const (
	FieldStep Field = iota
	FieldNoiseScale
	FieldSpeed
	FieldLength
	FieldBounceBPM
	FieldBounceDecay
	FieldBounceTimeBoost
	FieldBounceLengthBoost
	numFields
)

// Fields lists every ranged field in declaration order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// ranges holds the panel range per field. Values outside these ranges are
// still accepted by the core.
var ranges = [numFields]Range{
	FieldStep:              {5, 50},
	FieldNoiseScale:        {0.001, 0.05},
	FieldSpeed:             {0, 1},
	FieldLength:            {0, 5},
	FieldBounceBPM:         {0, 200},
	FieldBounceDecay:       {0.001, 0.05},
	FieldBounceTimeBoost:   {0, 0.5},
	FieldBounceLengthBoost: {0, 10},
}

var fieldNames = [numFields]string{
	FieldStep:              "Step",
	FieldNoiseScale:        "NoiseScale",
	FieldSpeed:             "Speed",
	FieldLength:            "Length",
	FieldBounceBPM:         "BounceBPM",
	FieldBounceDecay:       "BounceDecay",
	FieldBounceTimeBoost:   "BounceTimeBoost",
	FieldBounceLengthBoost: "BounceLengthBoost",
}

// Range returns the field's panel range. It panics on an unknown field.
func (f Field) Range() Range {
	if f < 0 || f >= numFields {
		panic(fmt.Sprintf("flow: unknown field %d", int(f)))
	}
	return ranges[f]
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}
