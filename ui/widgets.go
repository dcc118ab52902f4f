package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.FontSize+2, r.Theme.Header)
	return y + r.Theme.LineHeight + 2
}

// DrawSlider draws a labelled slider with text to its right and returns the
// slider's value and the new Y position.
func (r *Renderer) DrawSlider(x, y, width int32, label, text string, value, minVal, maxVal float32) (float32, int32) {
	t := r.Theme
	rl.DrawText(label, x, y, t.FontSize, t.Text)
	y += t.LineHeight

	bounds := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width - t.ValueWidth - 5),
		Height: float32(t.SliderHeight),
	}
	value = gui.SliderBar(bounds, "", "", value, minVal, maxVal)
	rl.DrawText(text, x+width-t.ValueWidth, y+2, t.FontSize, t.Text)

	return value, y + t.SliderHeight + 6
}

// DrawSwatch draws a colour preview square at the end of a row.
func (r *Renderer) DrawSwatch(x, y int32, c rl.Color) {
	size := r.Theme.SliderHeight
	rl.DrawRectangle(x, y, size, size, c)
	rl.DrawRectangleLines(x, y, size, size, r.Theme.PanelBorder)
}

// DrawButton draws a button spanning width and reports whether it was clicked.
func (r *Renderer) DrawButton(x, y, width int32, text string) (bool, int32) {
	bounds := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(r.Theme.ButtonHeight),
	}
	clicked := gui.Button(bounds, text)
	return clicked, y + r.Theme.ButtonHeight + 6
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
