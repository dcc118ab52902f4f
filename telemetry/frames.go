// Package telemetry collects rolling frame statistics for the sketch and
// writes them to structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/sketches/flow"
)

// Phase names for the frame.
const (
	PhaseAdvance = "advance"
	PhaseRender  = "render"
	PhasePanel   = "panel"
	PhasePresent = "present"
)

// FrameSample holds timing and envelope data for a single frame.
type FrameSample struct {
	Delta    float64 // ms between frames, from the sketch clock
	Work     time.Duration
	Phases   map[string]time.Duration
	Segments int
	Fraction float64
	Progress float64
}

// FrameCollector tracks frame metrics over a rolling window.
type FrameCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	frames        int64
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewFrameCollector creates a new collector.
// windowSize: number of frames to aggregate over (e.g., 120 for 2 seconds at 60fps).
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (c *FrameCollector) StartFrame() {
	c.frameStart = time.Now()
	c.currentPhases = make(map[string]time.Duration)
	c.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (c *FrameCollector) StartPhase(phase string) {
	now := time.Now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.phaseStart = now
	c.lastPhase = phase
}

// EndFrame finishes timing and records the frame's driver output.
func (c *FrameCollector) EndFrame(f flow.Frame) {
	now := time.Now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}

	c.samples[c.writeIndex] = FrameSample{
		Delta:    f.Delta,
		Work:     now.Sub(c.frameStart),
		Phases:   c.currentPhases,
		Segments: f.Segments,
		Fraction: f.Bounce.Fraction,
		Progress: f.Bounce.Progress,
	}
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}
	c.frames++
}

// Frames returns the total number of frames recorded.
func (c *FrameCollector) Frames() int64 {
	return c.frames
}

// FrameStats holds aggregated statistics over the window.
type FrameStats struct {
	Frames int64 // Total frames recorded when computed

	// Frame interval in ms (from the sketch clock)
	MeanDelta float64
	P50Delta  float64
	P90Delta  float64
	MaxDelta  float64
	FPS       float64 // 1000 / MeanDelta

	// CPU time spent inside the frame
	AvgWork  time.Duration
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	MeanSegments float64
	MeanFraction float64
	MinProgress  float64
}

// Stats computes aggregated statistics over the current window.
func (c *FrameCollector) Stats() FrameStats {
	if c.sampleCount == 0 {
		return FrameStats{
			Frames:   c.frames,
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	n := c.sampleCount
	deltas := make([]float64, n)
	segments := make([]float64, n)
	fractions := make([]float64, n)
	progress := make([]float64, n)
	var totalWork time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < n; i++ {
		s := c.samples[i]
		deltas[i] = s.Delta
		segments[i] = float64(s.Segments)
		fractions[i] = s.Fraction
		progress[i] = s.Progress
		totalWork += s.Work
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	meanDelta := stat.Mean(deltas, nil)
	sorted := append([]float64(nil), deltas...)
	sort.Float64s(sorted)

	avgWork := totalWork / time.Duration(n)
	phaseAvg := make(map[string]time.Duration, len(phaseSum))
	phasePct := make(map[string]float64, len(phaseSum))
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(n)
		if avgWork > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avgWork) * 100
		}
	}

	var fps float64
	if meanDelta > 0 {
		fps = 1000 / meanDelta
	}

	return FrameStats{
		Frames:       c.frames,
		MeanDelta:    meanDelta,
		P50Delta:     Percentile(sorted, 0.5),
		P90Delta:     Percentile(sorted, 0.9),
		MaxDelta:     floats.Max(deltas),
		FPS:          fps,
		AvgWork:      avgWork,
		PhaseAvg:     phaseAvg,
		PhasePct:     phasePct,
		MeanSegments: stat.Mean(segments, nil),
		MeanFraction: stat.Mean(fractions, nil),
		MinProgress:  floats.Min(progress),
	}
}

// Percentile calculates the p-th percentile of a sorted slice using linear
// interpolation between closest ranks. p should be in [0, 1]. Returns 0 if
// the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(pos)
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("frames", s.Frames),
		slog.Float64("fps", s.FPS),
		slog.Float64("mean_delta_ms", s.MeanDelta),
		slog.Float64("p90_delta_ms", s.P90Delta),
		slog.Float64("max_delta_ms", s.MaxDelta),
		slog.Int64("avg_work_us", s.AvgWork.Microseconds()),
		slog.Float64("mean_segments", s.MeanSegments),
		slog.Float64("mean_boost_fraction", s.MeanFraction),
	}
	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Frame        int64   `csv:"frame"`
	TimeOffset   float64 `csv:"time_offset"`
	FPS          float64 `csv:"fps"`
	MeanDeltaMS  float64 `csv:"mean_delta_ms"`
	P50DeltaMS   float64 `csv:"p50_delta_ms"`
	P90DeltaMS   float64 `csv:"p90_delta_ms"`
	MaxDeltaMS   float64 `csv:"max_delta_ms"`
	AvgWorkUS    int64   `csv:"avg_work_us"`
	MeanSegments float64 `csv:"mean_segments"`
	MeanFraction float64 `csv:"mean_boost_fraction"`
	MinProgress  float64 `csv:"min_boost_progress"`
	AdvancePct   float64 `csv:"advance_pct"`
	RenderPct    float64 `csv:"render_pct"`
	PanelPct     float64 `csv:"panel_pct"`
	PresentPct   float64 `csv:"present_pct"`
}

// ToCSV converts FrameStats to a flat CSV-friendly struct.
func (s FrameStats) ToCSV(timeOffset float64) FrameStatsCSV {
	return FrameStatsCSV{
		Frame:        s.Frames,
		TimeOffset:   timeOffset,
		FPS:          s.FPS,
		MeanDeltaMS:  s.MeanDelta,
		P50DeltaMS:   s.P50Delta,
		P90DeltaMS:   s.P90Delta,
		MaxDeltaMS:   s.MaxDelta,
		AvgWorkUS:    s.AvgWork.Microseconds(),
		MeanSegments: s.MeanSegments,
		MeanFraction: s.MeanFraction,
		MinProgress:  s.MinProgress,
		AdvancePct:   s.PhasePct[PhaseAdvance],
		RenderPct:    s.PhasePct[PhaseRender],
		PanelPct:     s.PhasePct[PhasePanel],
		PresentPct:   s.PhasePct[PhasePresent],
	}
}
