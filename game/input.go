package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update processes input between frames.
func (s *Sketch) Update() {
	s.handleInput()
}

// handleInput processes keyboard input.
func (s *Sketch) handleInput() {
	// Window resize propagation
	s.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// FPS overlay
	if rl.IsKeyPressed(rl.KeyD) {
		s.params.ToggleDebug()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		s.panel.Toggle()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (s *Sketch) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	s.driver.Resize(w, h)
	s.canvas.Resize(int32(w), int32(h))
	slog.Debug("window resized", "width", w, "height", h)
}
