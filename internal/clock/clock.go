// Package clock provides the time sources the countdown reads from.
// Production code uses System; tests drive a Manual clock by hand.
package clock

import (
	"sync"
	"time"

	"github.com/hammamikhairi/pomo/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Clock = System{}
	_ domain.Clock = (*Manual)(nil)
)

// System reads the real clock. time.Now carries a monotonic reading, so
// differences between two readings are immune to wall-clock jumps.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock reading start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current reading.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new reading.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set moves the clock to t. Going backwards is allowed; consumers clamp.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
