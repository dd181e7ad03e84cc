// Package domain defines the interfaces shared by the countdown core and its
// collaborators. All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Clock supplies "now" readings. Implementations can be the system clock
// or a manually advanced clock for tests.
type Clock interface {
	Now() time.Time
}

// AlertSink plays the expiry alert. Play must return immediately and
// swallow its own failures; the countdown display never waits on audio.
// Stop silences whatever Play started and is safe to call when idle.
type AlertSink interface {
	Play()
	Stop()
}
