package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketches/flow"
	"github.com/pthm-cable/sketches/telemetry"
)

// Draw runs one animation frame.
func (s *Sketch) Draw() {
	s.collector.StartFrame()

	// Snapshot so panel edits land on the next frame
	p := s.params
	s.warnStep(p)

	s.collector.StartPhase(telemetry.PhaseAdvance)
	f := s.driver.Advance(s.now(), p)

	rl.BeginDrawing()

	s.collector.StartPhase(telemetry.PhaseRender)
	s.driver.Render(&f, p, s.canvas)

	s.collector.StartPhase(telemetry.PhasePanel)
	if s.panel.IsVisible() {
		s.panel.Draw(&s.params)
	}
	_, h := s.canvas.Size()
	rl.DrawText("P: panel  D: fps  F11: fullscreen", 10, h-20, 10, rl.Gray)

	s.collector.StartPhase(telemetry.PhasePresent)
	rl.EndDrawing()

	s.collector.EndFrame(f)
	s.lastFrame = f
	s.frames++

	if s.flushDue(f.Now) {
		s.flushTelemetry()
	}
}

// warnStep logs once when the grid step has to be floored.
func (s *Sketch) warnStep(p flow.Params) {
	if p.Step >= flow.MinStep {
		s.warnedStep = false
		return
	}
	if !s.warnedStep {
		slog.Warn("grid step below minimum, clamping", "step", p.Step, "min", flow.MinStep)
		s.warnedStep = true
	}
}
