package flow

import "math"

// linearDecayEpsilon is the decay rate below which Phi switches to the
// non-decaying (linear) energy model.
const linearDecayEpsilon = 1e-9

// BounceSample is the envelope output for one frame.
type BounceSample struct {
	Fraction float64 // Share of the beat's decay energy released during this frame
	Progress float64 // Cumulative share released since the last beat (0 = just hit, 1 = fully decayed)
}

// Neutral is the envelope output when bouncing is disabled.
var Neutral = BounceSample{Fraction: 0, Progress: 1}

// Phi integrates e^(-k·τ) over [a, b] (τ in ms since the last beat).
// For k at or near zero the decay is treated as constant and Phi = b - a.
func Phi(a, b, k float64) float64 {
	if math.Abs(k) < linearDecayEpsilon {
		return b - a
	}
	return (math.Exp(-k*a) - math.Exp(-k*b)) / k
}

// BeatPeriod returns the beat period in ms, or 0 when bpm does not describe a beat.
func BeatPeriod(bpm float64) float64 {
	if !(bpm > 0) || math.IsInf(bpm, 1) {
		return 0
	}
	return 60000 / bpm
}

// Bounce evaluates the envelope for a frame ending at now (ms) that lasted dt ms.
// A frame spanning a beat boundary only counts the part after the trigger.
func Bounce(now, dt, bpm, decay float64) BounceSample {
	period := BeatPeriod(bpm)
	if period == 0 {
		return Neutral
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	phase := math.Mod(now, period)
	if phase < 0 {
		phase += period
	}

	// (now-dt) mod P when the frame started inside this beat, otherwise the
	// trigger itself. Computed from phase directly so rounding in beatStart
	// can never wrap the start to the far end of the beat.
	start := phase - dt
	if start < 0 {
		start = 0
	}

	total := Phi(0, period, decay)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Neutral
	}

	return BounceSample{
		Fraction: clamp01(Phi(start, phase, decay) / total),
		Progress: clamp01(Phi(0, phase, decay) / total),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
