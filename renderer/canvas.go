// Package renderer provides the drawing surfaces the flow field is rendered onto.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sketches/flow"
)

// RaylibCanvas draws into the current raylib frame.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibCanvas struct {
	width    int32
	height   int32
	fontSize int32
}

// NewRaylibCanvas creates a canvas over a width x height window.
func NewRaylibCanvas(width, height int32) *RaylibCanvas {
	return &RaylibCanvas{
		width:    width,
		height:   height,
		fontSize: 20,
	}
}

// Resize updates the canvas dimensions after a window resize.
func (c *RaylibCanvas) Resize(width, height int32) {
	c.width = width
	c.height = height
}

// Background clears the frame.
func (c *RaylibCanvas) Background(col colorful.Color) {
	rl.ClearBackground(toRaylib(col))
}

// Lines strokes a batch of segments in one colour.
func (c *RaylibCanvas) Lines(col colorful.Color, segs []flow.Segment) {
	rc := toRaylib(col)
	for _, s := range segs {
		rl.DrawLineV(
			rl.Vector2{X: float32(s.X1), Y: float32(s.Y1)},
			rl.Vector2{X: float32(s.X2), Y: float32(s.Y2)},
			rc,
		)
	}
}

// Text draws s in screen space.
func (c *RaylibCanvas) Text(s string, x, y float64) {
	rl.DrawText(s, int32(x), int32(y), c.fontSize, rl.Lime)
}

// Size returns the canvas dimensions.
func (c *RaylibCanvas) Size() (int32, int32) {
	return c.width, c.height
}

// toRaylib converts a colour to an opaque raylib colour.
func toRaylib(col colorful.Color) rl.Color {
	r, g, b := col.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: 255}
}
