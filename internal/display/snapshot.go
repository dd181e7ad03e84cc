package display

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/hammamikhairi/pomo/internal/timer"
)

// Snapshot is everything the view needs to draw one frame.
type Snapshot struct {
	Remaining string  // MM:SS
	Progress  float64 // [0, 1]
	Paused    bool
	Completed bool
	Hints     []Hint
}

// Hint is one footer entry such as "Quit <Q>".
type Hint struct {
	Label string
	Key   string
}

// Render builds the snapshot for a countdown reading. It has no side effects.
func Render(remaining time.Duration, progress float64, state timer.State, keys KeyMap) Snapshot {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	return Snapshot{
		Remaining: FormatClock(remaining),
		Progress:  progress,
		Paused:    state == timer.StatePaused,
		Completed: state == timer.StateCompleted,
		Hints:     hintsFor(keys.Hints()),
	}
}

// SnapshotOf reads a snapshot straight from a countdown at now.
func SnapshotOf(c *timer.Countdown, now time.Time, keys KeyMap) Snapshot {
	return Render(c.Remaining(now), c.Progress(now), c.State(now), keys)
}

// FormatClock renders d as zero-padded MM:SS, truncating to whole seconds.
// Minutes are not wrapped into hours, so 100 minutes reads "100:00".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func hintsFor(bindings []key.Binding) []Hint {
	out := make([]Hint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, Hint{Label: h.Desc, Key: h.Key})
	}
	return out
}
