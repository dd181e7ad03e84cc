package display

import (
	"testing"
	"time"

	"github.com/hammamikhairi/pomo/internal/timer"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{125 * time.Second, "02:05"},
		{0, "00:00"},
		{-3 * time.Second, "00:00"},
		{59*time.Second + 999*time.Millisecond, "00:59"},
		{25 * time.Minute, "25:00"},
		{100 * time.Minute, "100:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := FormatClock(tt.in); got != tt.want {
				t.Fatalf("FormatClock(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderSnapshot(t *testing.T) {
	keys := DefaultKeyMap()

	s := Render(125*time.Second, 0.25, timer.StateRunning, keys)
	if s.Remaining != "02:05" || s.Progress != 0.25 || s.Paused || s.Completed {
		t.Fatalf("unexpected running snapshot: %+v", s)
	}

	s = Render(0, 1.7, timer.StateCompleted, keys)
	if s.Progress != 1 || !s.Completed {
		t.Fatalf("completed snapshot should clamp progress and flag done: %+v", s)
	}

	s = Render(time.Minute, -0.5, timer.StatePaused, keys)
	if s.Progress != 0 || !s.Paused {
		t.Fatalf("paused snapshot should clamp progress and flag paused: %+v", s)
	}
}

func TestRenderHints(t *testing.T) {
	s := Render(time.Minute, 0, timer.StateRunning, DefaultKeyMap())

	want := []Hint{{"Quit", "Q"}, {"Pause", "Space"}, {"Reset", "R"}}
	if len(s.Hints) != len(want) {
		t.Fatalf("got %d hints, want %d", len(s.Hints), len(want))
	}
	for i, h := range want {
		if s.Hints[i] != h {
			t.Fatalf("hint %d = %+v, want %+v", i, s.Hints[i], h)
		}
	}
}

func TestSnapshotOfCountdown(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := timer.New(150*time.Second, start)

	s := SnapshotOf(c, start.Add(25*time.Second), DefaultKeyMap())
	if s.Remaining != "02:05" {
		t.Fatalf("remaining = %q, want 02:05", s.Remaining)
	}
	if want := 25.0 / 150.0; s.Progress != want {
		t.Fatalf("progress = %f, want %f", s.Progress, want)
	}
}
