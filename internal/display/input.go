package display

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/pomo/internal/logger"
	"github.com/hammamikhairi/pomo/internal/timer"
)

// Action is what a key press asks the countdown to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggle
	ActionReset
)

// String returns a human-readable action.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionToggle:
		return "toggle"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// Dispatcher maps key presses to countdown transitions.
//
// Bubble Tea only delivers key presses, never releases, so a terminal
// that reports both cannot double-trigger a binding.
type Dispatcher struct {
	keys      KeyMap
	countdown *timer.Countdown
	trigger   *timer.Trigger
	log       *logger.Logger
}

// NewDispatcher creates a dispatcher acting on countdown.
func NewDispatcher(keys KeyMap, countdown *timer.Countdown, trigger *timer.Trigger, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		keys:      keys,
		countdown: countdown,
		trigger:   trigger,
		log:       log,
	}
}

// Resolve returns the action bound to msg without applying it.
// Pasted text never resolves to an action.
func (d *Dispatcher) Resolve(msg tea.KeyMsg) Action {
	if msg.Paste {
		return ActionNone
	}
	switch {
	case key.Matches(msg, d.keys.Quit):
		return ActionQuit
	case key.Matches(msg, d.keys.Toggle):
		return ActionToggle
	case key.Matches(msg, d.keys.Reset):
		return ActionReset
	}
	return ActionNone
}

// Dispatch resolves msg and applies the transition at now.
// Quitting is left to the caller.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg, now time.Time) Action {
	action := d.Resolve(msg)
	switch action {
	case ActionToggle:
		d.countdown.Toggle(now)
		d.log.Debug("countdown %s -> %s (remaining %s)",
			d.countdown.RunID()[:8], d.countdown.State(now), d.countdown.Remaining(now).Round(time.Second))
	case ActionReset:
		d.countdown.Reset(now)
		d.trigger.Release()
		d.log.Info("countdown reset to %s (run %s)", d.countdown.Duration(), d.countdown.RunID()[:8])
	case ActionNone:
		d.log.Debug("ignored key %q", msg.String())
	}
	return action
}
