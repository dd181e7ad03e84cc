// Package timer implements the countdown state machine and the one-shot
// alert trigger that watches it.
//
// All time accounting is derived from clock readings passed in by the
// caller. Nothing here counts ticks, so a slow or skipped tick never
// drifts the countdown.
package timer

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDuration replaces a zero or negative countdown length.
const DefaultDuration = 10 * time.Second

// State is the derived phase of a countdown.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateCompleted
)

// String returns a human-readable state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "done"
	default:
		return "unknown"
	}
}

// Option configures a countdown.
type Option func(*Countdown)

// WithDefaultDuration sets the length used when New receives a
// non-positive duration. Non-positive values are ignored.
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.fallback = d
		}
	}
}

// Countdown is a single pausable countdown. It is owned by one goroutine
// (the display loop) and is not safe for concurrent use.
type Countdown struct {
	duration time.Duration
	fallback time.Duration

	// start is when counting would have begun had there been no pauses.
	// Resume shifts it forward by the length of each pause.
	start      time.Time
	paused     bool
	pausedAt   time.Time // zero unless paused
	alertFired bool
	runID      string
}

// New creates a running countdown of length d starting at now.
// A non-positive d becomes DefaultDuration (or the WithDefaultDuration value).
func New(d time.Duration, now time.Time, opts ...Option) *Countdown {
	c := &Countdown{fallback: DefaultDuration}
	for _, opt := range opts {
		opt(c)
	}
	if d <= 0 {
		d = c.fallback
	}
	c.duration = d
	c.begin(now)
	return c
}

func (c *Countdown) begin(now time.Time) {
	c.start = now
	c.paused = false
	c.pausedAt = time.Time{}
	c.alertFired = false
	c.runID = uuid.NewString()
}

// Duration returns the configured countdown length.
func (c *Countdown) Duration() time.Duration { return c.duration }

// RunID identifies the current cycle. It changes on every Reset.
func (c *Countdown) RunID() string { return c.runID }

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool { return c.paused }

// PausedAt returns when the current pause began. ok is false when running.
func (c *Countdown) PausedAt() (t time.Time, ok bool) {
	return c.pausedAt, c.paused
}

// AlertFired reports whether the alert already fired for this cycle.
func (c *Countdown) AlertFired() bool { return c.alertFired }

// Elapsed returns the counted time at now. While paused it is frozen at
// the moment the pause began. Never negative.
func (c *Countdown) Elapsed(now time.Time) time.Duration {
	ref := now
	if c.paused {
		ref = c.pausedAt
	}
	e := ref.Sub(c.start)
	if e < 0 {
		return 0
	}
	return e
}

// Remaining returns the time left at now, floored at zero.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	left := c.duration - c.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns the completed fraction in [0, 1].
func (c *Countdown) Progress(now time.Time) float64 {
	e := c.Elapsed(now)
	if e >= c.duration {
		return 1.0
	}
	return float64(e) / float64(c.duration)
}

// State derives the phase at now.
func (c *Countdown) State(now time.Time) State {
	switch {
	case c.paused:
		return StatePaused
	case c.Remaining(now) == 0:
		return StateCompleted
	default:
		return StateRunning
	}
}

// Pause freezes the countdown at now. No-op when already paused.
func (c *Countdown) Pause(now time.Time) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume continues a paused countdown. The pause span is added to the
// start reference so the paused interval never counts against the
// countdown. No-op when not paused.
func (c *Countdown) Resume(now time.Time) {
	if !c.paused {
		return
	}
	if span := now.Sub(c.pausedAt); span > 0 {
		c.start = c.start.Add(span)
	}
	c.paused = false
	c.pausedAt = time.Time{}
}

// Toggle pauses a running countdown or resumes a paused one.
func (c *Countdown) Toggle(now time.Time) {
	if c.paused {
		c.Resume(now)
		return
	}
	c.Pause(now)
}

// Reset restarts the full duration from now and re-arms the alert.
func (c *Countdown) Reset(now time.Time) {
	c.begin(now)
}
