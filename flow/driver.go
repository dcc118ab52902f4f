package flow

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sketches/noise"
)

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	// Background clears the surface to c.
	Background(c colorful.Color)
	// Lines strokes every segment with colour c.
	Lines(c colorful.Color, segs []Segment)
	// Text draws s at a fixed screen position, unaffected by any transform.
	Text(s string, x, y float64)
}

// Debug overlay placement.
const (
	overlayX = 10
	overlayY = 10
)

// State is the animation state carried between frames.
type State struct {
	TimeOffset float64 // z coordinate fed to the noise sampler
	LastFrame  float64 // Clock reading of the previous frame, ms
}

// Frame describes what one Step did.
type Frame struct {
	Now         float64 // Clock reading, ms
	Delta       float64 // ms since the previous frame
	Bounce      BounceSample
	TimeAdvance float64 // Amount added to the time offset this frame
	TimeOffset  float64 // Time offset after advancing
	Step        float64 // Effective grid step
	Segments    int     // Segments drawn
	Background  colorful.Color
}

// FPS returns the instantaneous frame rate implied by Delta.
func (f Frame) FPS() float64 {
	if f.Delta <= 0 {
		return 0
	}
	return 1000 / f.Delta
}

// Driver advances and renders the flow field one frame at a time.
// It is not safe for concurrent use; the host calls Step once per refresh.
type Driver struct {
	noise   noise.Sampler
	state   State
	width   float64
	height  float64
	buckets Buckets
}

// NewDriver creates a driver over a width x height canvas.
// The sampler must already be seeded; the driver never reseeds it.
func NewDriver(s noise.Sampler, width, height int) *Driver {
	d := &Driver{noise: s}
	d.Resize(width, height)
	return d
}

// Resize replaces the grid bounds used by subsequent frames.
func (d *Driver) Resize(width, height int) {
	d.width = float64(max(width, 0))
	d.height = float64(max(height, 0))
}

// Size returns the current grid bounds.
func (d *Driver) Size() (width, height int) {
	return int(d.width), int(d.height)
}

// State returns a copy of the animation state.
func (d *Driver) State() State {
	return d.state
}

// Step runs one full frame: advance time, then render onto c.
func (d *Driver) Step(now float64, p Params, c Canvas) Frame {
	f := d.Advance(now, p)
	d.Render(&f, p, c)
	return f
}

// Advance updates the animation clock and time offset for a frame at now.
func (d *Driver) Advance(now float64, p Params) Frame {
	dt := now - d.state.LastFrame
	d.state.LastFrame = now

	b := Bounce(now, dt, p.BounceBPM, p.BounceDecay)

	// Steady per-second drift plus the beat kick, both scaled by Speed
	advance := p.Speed*dt/1000 + p.Speed*b.Fraction*p.BounceTimeBoost
	d.state.TimeOffset += advance

	return Frame{
		Now:         now,
		Delta:       dt,
		Bounce:      b,
		TimeAdvance: advance,
		TimeOffset:  d.state.TimeOffset,
		Step:        p.GridStep(),
	}
}

// Render evaluates the field over the grid and draws it onto c.
// f must come from the Advance call for this frame.
func (d *Driver) Render(f *Frame, p Params, c Canvas) {
	f.Background = p.BounceBackground.BlendRgb(p.Background, f.Bounce.Progress)
	c.Background(f.Background)

	d.fill(f.TimeOffset, f.Step, p, f.Bounce.Progress)
	f.Segments = d.buckets.Len()

	d.buckets.Each(func(i int, segs []Segment) {
		c.Lines(BucketColor(i, p.Color1, p.Color2), segs)
	})

	if p.Debug {
		c.Text(fmt.Sprintf("FPS: %.0f", f.FPS()), overlayX, overlayY)
	}
}

// fill evaluates every grid cell into the bucket arena.
func (d *Driver) fill(t, step float64, p Params, progress float64) {
	d.buckets.Reset()
	for x := 0.0; x < d.width; x += step {
		for y := 0.0; y < d.height; y += step {
			v := Evaluate(d.noise, x, y, t, p, progress)
			x2, y2 := v.Endpoint(x, y)
			d.buckets.Add(Segment{X1: x, Y1: y, X2: x2, Y2: y2}, v.ColorKey)
		}
	}
}

// Buckets exposes the segments produced by the most recent Render.
func (d *Driver) Buckets() *Buckets {
	return &d.buckets
}
