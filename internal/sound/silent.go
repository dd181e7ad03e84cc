// Package sound provides the alert sinks: an oto-backed beeper and a
// silent sink for muted runs.
package sound

import (
	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/logger"
)

// Compile-time interface check.
var _ domain.AlertSink = (*Silent)(nil)

// Silent is an alert sink that plays nothing. Used when sound is muted.
type Silent struct {
	log *logger.Logger
}

// NewSilent creates a silent sink.
func NewSilent(log *logger.Logger) *Silent {
	return &Silent{log: log}
}

// Play logs the would-be alert.
func (s *Silent) Play() {
	s.log.Debug("sound muted: skipping alert")
}

// Stop does nothing.
func (s *Silent) Stop() {}
