package flow

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

func TestPhiAdditivity(t *testing.T) {
	tests := []struct {
		name    string
		a, c, b float64
		k       float64
	}{
		{"slow decay", 0, 300, 750, 0.001},
		{"default decay", 0, 120, 750, 0.01},
		{"fast decay", 10, 11, 500, 0.05},
		{"c at a", 50, 50, 400, 0.02},
		{"c at b", 50, 400, 400, 0.02},
		{"linear", 0, 250, 600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole := Phi(tt.a, tt.b, tt.k)
			parts := Phi(tt.a, tt.c, tt.k) + Phi(tt.c, tt.b, tt.k)
			if math.Abs(whole-parts) > 1e-9 {
				t.Errorf("Phi(%v,%v) = %v, split at %v sums to %v", tt.a, tt.b, whole, tt.c, parts)
			}
		})
	}
}

func TestPhiMatchesNumericalIntegral(t *testing.T) {
	for _, k := range []float64{0.001, 0.01, 0.05} {
		const a, b = 40.0, 700.0
		const n = 2001

		xs := make([]float64, n)
		floats.Span(xs, a, b)
		fs := make([]float64, n)
		for i, x := range xs {
			fs[i] = math.Exp(-k * x)
		}

		want := integrate.Simpsons(xs, fs)
		got := Phi(a, b, k)
		if math.Abs(got-want) > 1e-6*math.Max(1, want) {
			t.Errorf("k=%v: Phi = %v, Simpson = %v", k, got, want)
		}
	}
}

func TestPhiLinearModel(t *testing.T) {
	if got := Phi(100, 350, 0); got != 250 {
		t.Errorf("Phi with k=0 = %v, want 250", got)
	}
	if got := Phi(100, 350, 1e-12); got != 250 {
		t.Errorf("Phi with k=1e-12 = %v, want linear 250", got)
	}
}

func TestBounceDisabled(t *testing.T) {
	for _, bpm := range []float64{0, -60, math.NaN()} {
		for _, now := range []float64{0, 16, 750, 12345.6} {
			got := Bounce(now, 16.67, bpm, 0.01)
			if got != Neutral {
				t.Errorf("Bounce(now=%v, bpm=%v) = %+v, want %+v", now, bpm, got, Neutral)
			}
		}
	}
}

func TestBounceRanges(t *testing.T) {
	bpms := []float64{1, 60, 80, 128, 200}
	decays := []float64{0, 0.001, 0.01, 0.05, 0.5}

	for _, bpm := range bpms {
		for _, k := range decays {
			for now := 0.0; now < 5000; now += 7.3 {
				b := Bounce(now, 16.67, bpm, k)
				if b.Fraction < 0 || b.Fraction > 1 {
					t.Fatalf("bpm=%v k=%v now=%v: Fraction %v outside [0,1]", bpm, k, now, b.Fraction)
				}
				if b.Progress < 0 || b.Progress > 1 {
					t.Fatalf("bpm=%v k=%v now=%v: Progress %v outside [0,1]", bpm, k, now, b.Progress)
				}
			}
		}
	}
}

func TestBounceProgressMonotonicWithinBeat(t *testing.T) {
	const bpm, k = 80.0, 0.01
	period := BeatPeriod(bpm) // 750ms

	prev := -1.0
	for now := 0.0; now < period; now += 5 {
		p := Bounce(now, 5, bpm, k).Progress
		if p < prev {
			t.Fatalf("progress decreased within beat at now=%v: %v < %v", now, p, prev)
		}
		prev = p
	}

	before := Bounce(period-1, 16, bpm, k).Progress
	after := Bounce(period+1, 16, bpm, k).Progress
	if before < 0.99 {
		t.Errorf("progress just before beat = %v, want close to 1", before)
	}
	if after > 0.02 {
		t.Errorf("progress just after beat = %v, want close to 0", after)
	}
}

func TestBounceFrameSpanningBeat(t *testing.T) {
	const bpm, k = 80.0, 0.01
	period := BeatPeriod(bpm)

	// Frame from 740ms to 760ms crosses the 750ms trigger: only the 10ms
	// after the trigger count.
	got := Bounce(period+10, 20, bpm, k)
	want := Phi(0, 10, k) / Phi(0, period, k)
	if math.Abs(got.Fraction-want) > 1e-12 {
		t.Errorf("Fraction = %v, want %v", got.Fraction, want)
	}
	if math.Abs(got.Fraction-got.Progress) > 1e-12 {
		t.Errorf("post-trigger frame should have Fraction == Progress, got %v vs %v", got.Fraction, got.Progress)
	}
}

func TestBounceFractionsSumToOnePerBeat(t *testing.T) {
	const bpm, k, dt = 80.0, 0.02, 10.0
	period := BeatPeriod(bpm)

	var sum float64
	for now := dt; now <= period; now += dt {
		sum += Bounce(now, dt, bpm, k).Fraction
	}
	// The last frame lands on the next trigger (phase 0), so the beat's
	// final slice is not counted; for fast decay it is negligible.
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("fractions over one beat sum to %v, want ~1", sum)
	}
}

func TestBounceNegativeDelta(t *testing.T) {
	got := Bounce(500, -30, 80, 0.01)
	if got.Fraction != 0 {
		t.Errorf("negative delta Fraction = %v, want 0", got.Fraction)
	}
}
