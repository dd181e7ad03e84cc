package timer

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return t0.Add(d) }

func TestNewCoercesNonPositiveDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		opts []Option
		want time.Duration
	}{
		{"zero uses default", 0, nil, 10 * time.Second},
		{"negative uses default", -time.Second, nil, 10 * time.Second},
		{"positive kept", 25 * time.Minute, nil, 25 * time.Minute},
		{"configured default", 0, []Option{WithDefaultDuration(time.Minute)}, time.Minute},
		{"bad configured default ignored", 0, []Option{WithDefaultDuration(-time.Minute)}, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.in, t0, tt.opts...)
			if c.Duration() != tt.want {
				t.Fatalf("duration = %s, want %s", c.Duration(), tt.want)
			}
			if c.Remaining(t0) != tt.want {
				t.Fatalf("remaining at start = %s, want %s", c.Remaining(t0), tt.want)
			}
			if c.Paused() || c.AlertFired() {
				t.Fatal("new countdown should be running with the alert armed")
			}
			if c.RunID() == "" {
				t.Fatal("expected a run id")
			}
		})
	}
}

func TestElapsedIsMonotonicWhileRunning(t *testing.T) {
	c := New(time.Minute, t0)

	var prev time.Duration
	for i := 0; i <= 120; i++ {
		e := c.Elapsed(at(time.Duration(i) * 500 * time.Millisecond))
		if e < prev {
			t.Fatalf("elapsed went backwards at step %d: %s < %s", i, e, prev)
		}
		prev = e
	}
}

func TestElapsedClampsBeforeStart(t *testing.T) {
	c := New(time.Minute, t0)
	if e := c.Elapsed(t0.Add(-time.Second)); e != 0 {
		t.Fatalf("elapsed before start = %s, want 0", e)
	}
	if p := c.Progress(t0.Add(-time.Second)); p != 0 {
		t.Fatalf("progress before start = %f, want 0", p)
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	spans := []time.Duration{0, time.Millisecond, 7 * time.Second, 3 * time.Hour}

	for _, span := range spans {
		t.Run(span.String(), func(t *testing.T) {
			c := New(time.Minute, t0)
			t1 := at(20 * time.Second)
			t2 := t1.Add(span)

			c.Pause(t1)
			before := c.Elapsed(t1)
			if frozen := c.Elapsed(t2); frozen != before {
				t.Fatalf("elapsed advanced while paused: %s -> %s", before, frozen)
			}

			c.Resume(t2)
			if after := c.Elapsed(t2); after != before {
				t.Fatalf("elapsed after resume = %s, want %s", after, before)
			}
			if c.Remaining(t2.Add(time.Second)) != 39*time.Second {
				t.Fatalf("remaining one second after resume = %s, want 39s", c.Remaining(t2.Add(time.Second)))
			}
		})
	}
}

func TestPausedAtPresentIffPaused(t *testing.T) {
	c := New(time.Minute, t0)

	if _, ok := c.PausedAt(); ok {
		t.Fatal("running countdown reported a pause time")
	}

	c.Pause(at(5 * time.Second))
	got, ok := c.PausedAt()
	if !ok || !got.Equal(at(5*time.Second)) {
		t.Fatalf("PausedAt = %s, %v; want %s, true", got, ok, at(5*time.Second))
	}

	c.Resume(at(9 * time.Second))
	if got, ok := c.PausedAt(); ok || !got.IsZero() {
		t.Fatalf("PausedAt after resume = %s, %v; want zero, false", got, ok)
	}
}

func TestPauseAndResumeAreIdempotent(t *testing.T) {
	c := New(time.Minute, t0)

	c.Pause(at(10 * time.Second))
	c.Pause(at(30 * time.Second)) // must not move the pause start
	if e := c.Elapsed(at(40 * time.Second)); e != 10*time.Second {
		t.Fatalf("elapsed after double pause = %s, want 10s", e)
	}

	c.Resume(at(50 * time.Second))
	c.Resume(at(70 * time.Second)) // must not shift the start again
	if e := c.Elapsed(at(70 * time.Second)); e != 30*time.Second {
		t.Fatalf("elapsed after double resume = %s, want 30s", e)
	}
}

func TestResumeBeforePauseTimeDoesNotRewind(t *testing.T) {
	c := New(time.Minute, t0)
	c.Pause(at(10 * time.Second))
	c.Resume(at(5 * time.Second))
	if e := c.Elapsed(at(10 * time.Second)); e != 10*time.Second {
		t.Fatalf("elapsed = %s, want 10s", e)
	}
}

func TestToggle(t *testing.T) {
	c := New(time.Minute, t0)

	c.Toggle(at(time.Second))
	if !c.Paused() {
		t.Fatal("toggle on a running countdown should pause it")
	}
	c.Toggle(at(3 * time.Second))
	if c.Paused() {
		t.Fatal("toggle on a paused countdown should resume it")
	}
	if e := c.Elapsed(at(3 * time.Second)); e != time.Second {
		t.Fatalf("elapsed = %s, want 1s", e)
	}
}

func TestRemainingZeroIffProgressComplete(t *testing.T) {
	c := New(5*time.Second, t0)

	for ms := 0; ms <= 8000; ms += 250 {
		now := at(time.Duration(ms) * time.Millisecond)
		rem := c.Remaining(now)
		prog := c.Progress(now)
		if prog < 0 || prog > 1 {
			t.Fatalf("progress out of range at %dms: %f", ms, prog)
		}
		if (rem == 0) != (prog == 1.0) {
			t.Fatalf("at %dms remaining=%s progress=%f disagree", ms, rem, prog)
		}
	}
}

func TestState(t *testing.T) {
	c := New(5*time.Second, t0)

	if s := c.State(at(time.Second)); s != StateRunning {
		t.Fatalf("state = %s, want running", s)
	}
	if s := c.State(at(5 * time.Second)); s != StateCompleted {
		t.Fatalf("state = %s, want done", s)
	}
	c.Pause(at(6 * time.Second))
	if s := c.State(at(7 * time.Second)); s != StatePaused {
		t.Fatalf("state = %s, want paused", s)
	}
	c.Reset(at(8 * time.Second))
	if s := c.State(at(8 * time.Second)); s != StateRunning {
		t.Fatalf("state after reset = %s, want running", s)
	}
}

func TestResetFromEveryState(t *testing.T) {
	sink := &mockSink{}
	trig := NewTrigger(sink, testLogger())

	setups := map[string]func(c *Countdown){
		"running": func(c *Countdown) {},
		"paused": func(c *Countdown) {
			c.Pause(at(2 * time.Second))
		},
		"completed": func(c *Countdown) {
			trig.Check(c, at(6*time.Second))
		},
		"paused after completion": func(c *Countdown) {
			trig.Check(c, at(6*time.Second))
			c.Pause(at(7 * time.Second))
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			c := New(5*time.Second, t0)
			setup(c)
			oldRun := c.RunID()

			resetAt := at(20 * time.Second)
			c.Reset(resetAt)

			if c.Remaining(resetAt) != c.Duration() {
				t.Fatalf("remaining after reset = %s, want %s", c.Remaining(resetAt), c.Duration())
			}
			if c.AlertFired() {
				t.Fatal("alert should be re-armed after reset")
			}
			if c.Paused() {
				t.Fatal("reset should leave the countdown running")
			}
			if _, ok := c.PausedAt(); ok {
				t.Fatal("reset should clear the pause time")
			}
			if c.RunID() == oldRun {
				t.Fatal("reset should start a new run id")
			}
		})
	}
}
