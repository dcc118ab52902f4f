package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sketches/flow"
)

// ImageCanvas draws into an offscreen image for headless rendering.
type ImageCanvas struct {
	ctx *gg.Context
}

// NewImageCanvas creates an offscreen canvas of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	ctx := gg.NewContext(width, height)
	ctx.SetLineWidth(1)
	return &ImageCanvas{ctx: ctx}
}

// Background fills the whole image.
func (c *ImageCanvas) Background(col colorful.Color) {
	c.ctx.SetColor(col.Clamped())
	c.ctx.Clear()
}

// Lines strokes all segments as a single path.
func (c *ImageCanvas) Lines(col colorful.Color, segs []flow.Segment) {
	if len(segs) == 0 {
		return
	}
	for _, s := range segs {
		c.ctx.MoveTo(s.X1, s.Y1)
		c.ctx.LineTo(s.X2, s.Y2)
	}
	c.ctx.SetColor(col.Clamped())
	c.ctx.Stroke()
}

// Text draws s with the built-in face, baseline offset so (x, y) is the top-left.
func (c *ImageCanvas) Text(s string, x, y float64) {
	c.ctx.SetColor(color.RGBA{R: 0, G: 228, B: 48, A: 255})
	c.ctx.DrawStringAnchored(s, x, y, 0, 1)
}

// SetLineWidth sets the stroke width used by Lines.
func (c *ImageCanvas) SetLineWidth(w float64) {
	c.ctx.SetLineWidth(w)
}

// Image returns the rendered image.
func (c *ImageCanvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the current image to path.
func (c *ImageCanvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
