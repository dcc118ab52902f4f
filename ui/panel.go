package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sketches/flow"
)

// Control binds one slider to a Params field.
type Control struct {
	Section string
	Label   string
	Format  string
	Min     float64
	Max     float64
	Get     func(p *flow.Params) float64
	Set     func(p *flow.Params, v float64)
	Color   func(p *flow.Params) colorful.Color // Swatch, nil for plain numbers

	field  flow.Field
	ranged bool // false for colour controls
}

// numeric builds a control whose bounds come from the field's declared range.
func numeric(section, label string, field flow.Field, format string, get func(*flow.Params) float64, set func(*flow.Params, float64)) Control {
	r := field.Range()
	return Control{
		Section: section,
		Label:   label,
		Format:  format,
		Min:     r.Min,
		Max:     r.Max,
		Get:     get,
		Set:     set,
		field:   field,
		ranged:  true,
	}
}

// hue builds a control that rotates a colour's hue, keeping saturation and value.
func hue(section, label string, field func(p *flow.Params) *colorful.Color) Control {
	return Control{
		Section: section,
		Label:   label,
		Format:  "%.0f",
		Min:     0,
		Max:     360,
		Get: func(p *flow.Params) float64 {
			h, _, _ := field(p).Hsv()
			return h
		},
		Set: func(p *flow.Params, v float64) {
			c := field(p)
			_, s, val := c.Hsv()
			*c = colorful.Hsv(math.Mod(v, 360), s, val)
		},
		Color: func(p *flow.Params) colorful.Color { return *field(p) },
	}
}

// brightness builds a control over a colour's HSV value, keeping hue and saturation.
func brightness(section, label string, field func(p *flow.Params) *colorful.Color) Control {
	return Control{
		Section: section,
		Label:   label,
		Format:  "%.2f",
		Min:     0,
		Max:     1,
		Get: func(p *flow.Params) float64 {
			_, _, v := field(p).Hsv()
			return v
		},
		Set: func(p *flow.Params, v float64) {
			c := field(p)
			h, s, _ := c.Hsv()
			*c = colorful.Hsv(h, s, v)
		},
		Color: func(p *flow.Params) colorful.Color { return *field(p) },
	}
}

// Controls returns the panel's sliders in display order.
func Controls() []Control {
	return []Control{
		numeric("Field", "Step", flow.FieldStep, "%.0f",
			func(p *flow.Params) float64 { return float64(p.Step) },
			func(p *flow.Params, v float64) { p.Step = int(math.Round(v)) }),
		numeric("Field", "Noise scale", flow.FieldNoiseScale, "%.3f",
			func(p *flow.Params) float64 { return p.NoiseScale },
			func(p *flow.Params, v float64) { p.NoiseScale = v }),
		numeric("Field", "Speed", flow.FieldSpeed, "%.2f",
			func(p *flow.Params) float64 { return p.Speed },
			func(p *flow.Params, v float64) { p.Speed = v }),
		numeric("Field", "Length", flow.FieldLength, "%.2f",
			func(p *flow.Params) float64 { return p.Length },
			func(p *flow.Params, v float64) { p.Length = v }),
		hue("Colours", "Colour 1 hue", func(p *flow.Params) *colorful.Color { return &p.Color1 }),
		hue("Colours", "Colour 2 hue", func(p *flow.Params) *colorful.Color { return &p.Color2 }),
		brightness("Colours", "Background", func(p *flow.Params) *colorful.Color { return &p.Background }),
		numeric("Bounce", "BPM", flow.FieldBounceBPM, "%.0f",
			func(p *flow.Params) float64 { return p.BounceBPM },
			func(p *flow.Params, v float64) { p.BounceBPM = v }),
		numeric("Bounce", "Decay", flow.FieldBounceDecay, "%.3f",
			func(p *flow.Params) float64 { return p.BounceDecay },
			func(p *flow.Params, v float64) { p.BounceDecay = v }),
		numeric("Bounce", "Time boost", flow.FieldBounceTimeBoost, "%.2f",
			func(p *flow.Params) float64 { return p.BounceTimeBoost },
			func(p *flow.Params, v float64) { p.BounceTimeBoost = v }),
		numeric("Bounce", "Length boost", flow.FieldBounceLengthBoost, "%.1f",
			func(p *flow.Params) float64 { return p.BounceLengthBoost },
			func(p *flow.Params, v float64) { p.BounceLengthBoost = v }),
		hue("Bounce", "Background hue", func(p *flow.Params) *colorful.Color { return &p.BounceBackground }),
	}
}

// sliderValue returns the current value clamped to the control's bounds,
// which is what the slider reports back when left alone.
func (c Control) sliderValue(p *flow.Params) float32 {
	return float32(min(max(c.Get(p), c.Min), c.Max))
}

// apply writes v only when it differs from what the slider was given, so an
// out-of-range value survives until the slider is moved.
func (c Control) apply(p *flow.Params, shown, v float32) bool {
	if v == shown {
		return false
	}
	c.Set(p, float64(v))
	return true
}

// Panel is the live parameter editor. It mutates the host's Params between
// frames; the host snapshots Params before each frame.
type Panel struct {
	renderer *Renderer
	controls []Control
	defaults flow.Params
	x, y     int32
	width    int32
	visible  bool
}

// NewPanel creates a hidden panel. defaults is what the reset button restores.
func NewPanel(x, y, width int32, defaults flow.Params) *Panel {
	return &Panel{
		renderer: NewRenderer(NewTheme(defaults)),
		controls: Controls(),
		defaults: defaults,
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Reset restores params to the panel's defaults, keeping the debug flag.
func (p *Panel) Reset(params *flow.Params) {
	debug := params.Debug
	*params = p.defaults
	params.Debug = debug
}

// Height returns the pixel height the panel occupies when drawn.
func (p *Panel) Height() int32 {
	t := p.renderer.Theme
	sections := int32(0)
	last := ""
	for _, c := range p.controls {
		if c.Section != last {
			sections++
			last = c.Section
		}
	}
	rows := int32(len(p.controls)) * (t.LineHeight + t.SliderHeight + 6)
	headers := sections * (t.LineHeight + 2)
	buttons := 2 * (t.ButtonHeight + 6)
	return t.Padding*2 + rows + headers + buttons
}

// Draw renders the panel and applies any edits to params.
// It reports whether anything changed.
func (p *Panel) Draw(params *flow.Params) bool {
	if !p.visible {
		return false
	}

	r := p.renderer
	t := r.Theme
	r.DrawPanel(p.x, p.y, p.width, p.Height())

	x := p.x + t.Padding
	y := p.y + t.Padding
	inner := p.width - 2*t.Padding
	changed := false
	section := ""

	for _, c := range p.controls {
		if c.Section != section {
			section = c.Section
			y = r.DrawSectionHeader(x, y, section)
		}

		width := inner
		if c.Color != nil {
			r.DrawSwatch(x+inner-t.SliderHeight, y+t.LineHeight, toRaylib(c.Color(params)))
			width -= t.SliderHeight + 4
		}

		shown := c.sliderValue(params)
		text := fmt.Sprintf(c.Format, c.Get(params))
		v, next := r.DrawSlider(x, y, width, c.Label, text, shown, float32(c.Min), float32(c.Max))
		if c.apply(params, shown, v) {
			changed = true
		}
		y = next
	}

	clicked, y := r.DrawButton(x, y, inner, toggleText(params.Debug, "Hide FPS", "Show FPS"))
	if clicked {
		params.ToggleDebug()
		changed = true
	}
	if clicked, _ = r.DrawButton(x, y, inner, "Reset to defaults"); clicked {
		p.Reset(params)
		changed = true
	}

	return changed
}

func toRaylib(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: 255}
}
