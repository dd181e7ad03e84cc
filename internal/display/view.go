package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	clockDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	gaugeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#3f3f46")).
			Padding(0, 1)

	statusRunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	statusPausedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#71717a")).
				Italic(true)

	statusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	hintLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

const (
	title        = " Pomodoro Timer "
	fallbackW    = 60
	minGaugeW    = 10
	frameChromeW = 2 + 4 // border + horizontal padding
	gaugeChromeW = 2 + 2
)

func newGauge() progress.Model {
	return progress.New(
		progress.WithSolidFill("#22c55e"),
		progress.WithoutPercentage(),
	)
}

// renderFrame draws one snapshot into a frame of the given outer width.
func renderFrame(s Snapshot, gauge progress.Model, width int) string {
	if width <= 0 {
		width = fallbackW
	}
	inner := width - frameChromeW
	if inner < minGaugeW+gaugeChromeW {
		inner = minGaugeW + gaugeChromeW
		width = inner + frameChromeW
	}

	gauge.Width = inner - gaugeChromeW

	clock := clockStyle
	if s.Completed {
		clock = clockDoneStyle
	}

	sections := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, titleStyle.Render(title)),
		"",
		sectionStyle.Render("Time"),
		clock.Render(s.Remaining) + "  " + renderStatus(s),
		"",
		sectionStyle.Render("Progress"),
		gaugeBoxStyle.Width(inner - 2).Render(gauge.ViewAs(s.Progress)),
		renderHints(s.Hints),
	}

	return frameStyle.Width(width - 2).Render(strings.Join(sections, "\n"))
}

func renderStatus(s Snapshot) string {
	switch {
	case s.Paused:
		return statusPausedStyle.Render("paused")
	case s.Completed:
		return statusDoneStyle.Render("done")
	default:
		return statusRunStyle.Render("running")
	}
}

func renderHints(hints []Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, hintLabelStyle.Render(h.Label+" ")+hintKeyStyle.Render("<"+h.Key+">"))
	}
	return strings.Join(parts, sepStyle.Render("  │  "))
}
