package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/ui/theme"
)

// TimerBar displays the remaining quiz time as a draining bar with a
// mm:ss readout. The bar shifts to warning colors as time runs low.
type TimerBar struct {
	Total     time.Duration
	Remaining time.Duration
	Width     int
}

// NewTimerBar creates a timer bar for the given total duration.
func NewTimerBar(total, remaining time.Duration, width int) TimerBar {
	return TimerBar{Total: total, Remaining: remaining, Width: width}
}

// View renders the timer bar.
func (t TimerBar) View() string {
	remaining := t.Remaining
	if remaining < 0 {
		remaining = 0
	}

	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	readout := fmt.Sprintf(" %02d:%02d", mins, secs)

	barWidth := t.Width - len(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if t.Total > 0 {
		frac = float64(remaining) / float64(t.Total)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fillColor := theme.Secondary
	switch {
	case frac < 0.1:
		fillColor = theme.Error
	case frac < 0.25:
		fillColor = theme.Warning
	}

	bar := lipgloss.NewStyle().
		Background(fillColor).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", barWidth-filled))

	readoutStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if frac < 0.1 {
		readoutStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	return bar + readoutStyle.Render(readout)
}

// FormatRemaining renders a compact mm:ss string for the header.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("⏱ %02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
}
