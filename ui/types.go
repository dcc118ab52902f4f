// Package ui draws the live parameter panel over the sketch.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sketches/flow"
)

// Theme holds the panel's colours and metrics.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Header      rl.Color
	Text        rl.Color

	Padding      int32
	LineHeight   int32
	SliderHeight int32
	ValueWidth   int32
	ButtonHeight int32
	FontSize     int32
}

// NewTheme derives the panel palette from the sketch colours: the beat
// background darkened for the panel, the gradient ends for border and headers.
func NewTheme(p flow.Params) Theme {
	white := colorful.Color{R: 1, G: 1, B: 1}
	bg := toRaylib(p.BounceBackground.BlendRgb(colorful.Color{}, 0.4))
	bg.A = 230

	return Theme{
		PanelBg:      bg,
		PanelBorder:  toRaylib(p.Color1),
		Header:       toRaylib(p.Color2.BlendRgb(white, 0.2)),
		Text:         toRaylib(p.Background.BlendRgb(white, 0.85)),
		Padding:      10,
		LineHeight:   16,
		SliderHeight: 16,
		ValueWidth:   50,
		ButtonHeight: 24,
		FontSize:     12,
	}
}
