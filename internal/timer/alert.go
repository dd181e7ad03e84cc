package timer

import (
	"time"

	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/logger"
)

// Trigger fires the alert sink once per countdown cycle.
type Trigger struct {
	sink domain.AlertSink
	log  *logger.Logger
}

// NewTrigger creates a trigger that plays through sink.
func NewTrigger(sink domain.AlertSink, log *logger.Logger) *Trigger {
	return &Trigger{sink: sink, log: log}
}

// Check runs once per tick. It plays the alert and returns true when the
// countdown is running, has reached zero, and has not alerted this cycle.
// A countdown paused at or past expiry alerts on the first check after
// it resumes.
func (t *Trigger) Check(c *Countdown, now time.Time) bool {
	if c.paused || c.alertFired || c.Remaining(now) > 0 {
		return false
	}
	c.alertFired = true
	t.log.Info("countdown %s finished after %s, sounding alert", shortID(c.runID), c.duration)
	t.sink.Play()
	return true
}

// Release silences any alert still playing.
func (t *Trigger) Release() {
	t.sink.Stop()
	t.log.Debug("alert released")
}

// shortID trims a run id for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
