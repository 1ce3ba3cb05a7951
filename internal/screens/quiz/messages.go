package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ityord/aistudy/internal/quizgen"
)

// quizReadyMsg is sent when quiz generation completes (or fails).
type quizReadyMsg struct {
	Err error
}

// timerTickMsg drives the countdown, one tick per second.
type timerTickMsg time.Time

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg struct{}

// suggestionsMsg carries the study-material recommendations for the
// results view. Err is non-nil when generation failed.
type suggestionsMsg struct {
	Suggestion *quizgen.Suggestion
	Err        error
}

// improvementsMsg carries the weak-topic analysis for the results view.
type improvementsMsg struct {
	Improvement *quizgen.ImprovementSuggestion
	Err         error
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
