// Package display runs the countdown in the terminal using Bubble Tea.
//
// Bubble Tea owns the terminal for the whole run: it enters raw mode and
// the alternate screen in [Run] and restores both before Run returns,
// whether the user quit, the loop failed, or the model panicked.
// Each tick reads the clock, checks the alert, and redraws.
package display

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/logger"
	"github.com/hammamikhairi/pomo/internal/timer"
)

// DefaultTickInterval is the redraw and alert-check cadence.
const DefaultTickInterval = 100 * time.Millisecond

// Option configures the model.
type Option func(*Model)

// WithTickInterval sets how often the loop redraws and checks the alert.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// Model is the Bubble Tea model driving one countdown.
type Model struct {
	countdown *timer.Countdown
	trigger   *timer.Trigger
	dispatch  *Dispatcher
	clock     domain.Clock
	log       *logger.Logger
	keys      KeyMap
	interval  time.Duration
	gauge     progress.Model

	now      time.Time // clock reading the current frame is drawn for
	width    int
	quitting bool
}

// NewModel creates the event loop model for countdown.
func NewModel(countdown *timer.Countdown, trigger *timer.Trigger, clock domain.Clock, log *logger.Logger, opts ...Option) *Model {
	m := &Model{
		countdown: countdown,
		trigger:   trigger,
		clock:     clock,
		log:       log,
		keys:      DefaultKeyMap(),
		interval:  DefaultTickInterval,
		gauge:     newGauge(),
		now:       clock.Now(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.dispatch = NewDispatcher(m.keys, countdown, trigger, log)
	return m
}

// Messages.
type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.log.Info("countdown %s started: %s, tick=%s", m.countdown.RunID()[:8], m.countdown.Duration(), m.interval)
	return tea.Batch(m.tickCmd(), tea.SetWindowTitle(m.titleStr()))
}

// Update applies one message: a tick, a key press, or a resize.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.clock.Now()
		m.trigger.Check(m.countdown, m.now)
		return m, tea.Batch(m.tickCmd(), tea.SetWindowTitle(m.titleStr()))

	case tea.KeyMsg:
		m.now = m.clock.Now()
		if m.dispatch.Dispatch(msg, m.now) == ActionQuit {
			m.log.Info("quit with %s remaining", m.countdown.Remaining(m.now).Round(time.Second))
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

// View draws the frame for the latest clock reading.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return renderFrame(m.Snapshot(), m.gauge, m.width)
}

// Snapshot returns what the current frame shows.
func (m *Model) Snapshot() Snapshot {
	return SnapshotOf(m.countdown, m.now, m.keys)
}

func (m *Model) titleStr() string {
	s := m.Snapshot()
	switch {
	case s.Completed:
		return "pomo — done"
	case s.Paused:
		return fmt.Sprintf("pomo — %s (paused)", s.Remaining)
	default:
		return "pomo — " + s.Remaining
	}
}

// Run takes over the terminal and blocks until the user quits or ctx is
// cancelled. The terminal is restored before Run returns.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			m.log.Info("display stopped: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("running display: %w", err)
	}
	return nil
}
