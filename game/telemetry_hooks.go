package game

import (
	"log/slog"
)

// flushDue reports whether the log interval has elapsed since the last flush.
func (s *Sketch) flushDue(now float64) bool {
	interval := s.cfg.Telemetry.LogInterval * 1000
	if interval <= 0 {
		return false
	}
	if now-s.lastFlush < interval {
		return false
	}
	s.lastFlush = now
	return true
}

// flushTelemetry logs and records the current frame window.
func (s *Sketch) flushTelemetry() {
	stats := s.collector.Stats()

	if s.logStats {
		slog.Info("frames", "stats", stats, "time_offset", s.lastFrame.TimeOffset)
	}

	if err := s.outputManager.WriteFrames(stats, s.lastFrame.TimeOffset); err != nil {
		slog.Error("failed to write frames", "error", err)
	}
}
