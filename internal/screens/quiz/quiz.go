// Package quiz implements the quiz session UI: generation loading,
// the active question flow, and the results review.
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/router"
	"github.com/Ityord/aistudy/internal/screen"
	"github.com/Ityord/aistudy/internal/session"
	"github.com/Ityord/aistudy/internal/syllabus"
	"github.com/Ityord/aistudy/internal/ui/components"
	"github.com/Ityord/aistudy/internal/ui/layout"
)

// quizDuration is the total time for a full quiz, 60s per question.
const quizDuration = time.Duration(quizgen.QuestionCount) * time.Minute

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen drives a single quiz session end to end.
type QuizScreen struct {
	controller *session.Controller
	generator  quizgen.Generator
	cfg        syllabus.QuizConfig

	lists        []components.OptionList
	current      int
	remaining    time.Duration
	spinnerFrame int
	confirming   bool
	confirmEarly bool
	confirmYes   bool
	errMsg       string

	// Results state, populated after Finish.
	finished       *session.Result
	revealLists    []components.OptionList
	suggestion     *quizgen.Suggestion
	improvement    *quizgen.ImprovementSuggestion
	suggestErr     string
	improveErr     string
	suggestPending bool
	improvePending bool
	scroll         int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a quiz screen that generates a fresh quiz for cfg.
func New(controller *session.Controller, generator quizgen.Generator, cfg syllabus.QuizConfig) *QuizScreen {
	return &QuizScreen{
		controller: controller,
		generator:  generator,
		cfg:        cfg,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.startCmd(), spinnerTick())
}

func (s *QuizScreen) Title() string {
	if s.finished != nil {
		return "Results"
	}
	return "Quiz"
}

// Status shows the countdown in the header while the quiz runs.
func (s *QuizScreen) Status() string {
	if s.controller.Phase() == session.PhaseActive && !s.confirming {
		return components.FormatRemaining(s.remaining)
	}
	return ""
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirming {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Y/N", Description: "Shortcuts"},
		}
	}
	if s.finished != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "T", Description: "Try again"},
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Home"},
		}
	}
	if s.controller.Phase() == session.PhaseActive {
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "End early"},
		}
	}
	return nil
}

// HandleEsc intercepts Esc so an active quiz is never discarded silently.
func (s *QuizScreen) HandleEsc() (bool, tea.Cmd) {
	switch {
	case s.confirming:
		s.confirming = false
		return true, nil
	case s.finished != nil:
		s.controller.NewTopic()
		return true, func() tea.Msg { return router.PopScreenMsg{} }
	case s.controller.Phase() == session.PhaseActive:
		s.confirming = true
		s.confirmEarly = true
		s.confirmYes = false
		return true, nil
	}
	return false, nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case spinnerTickMsg:
		s.spinnerFrame++
		if s.loading() {
			return s, spinnerTick()
		}
		return s, nil

	case suggestionsMsg:
		s.suggestPending = false
		if msg.Err != nil {
			s.suggestErr = msg.Err.Error()
		} else {
			s.suggestion = msg.Suggestion
		}
		return s, nil

	case improvementsMsg:
		s.improvePending = false
		if msg.Err != nil {
			s.improveErr = msg.Err.Error()
		} else {
			s.improvement = msg.Improvement
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) loading() bool {
	return s.controller.Phase() == session.PhaseLoading || s.suggestPending || s.improvePending
}

// startCmd runs quiz generation off the UI loop.
func (s *QuizScreen) startCmd() tea.Cmd {
	cfg := s.cfg
	return func() tea.Msg {
		return quizReadyMsg{Err: s.controller.Start(context.Background(), cfg)}
	}
}

func (s *QuizScreen) tryAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return quizReadyMsg{Err: s.controller.TryAgain(context.Background())}
	}
}

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	questions := s.controller.Questions()
	s.lists = make([]components.OptionList, len(questions))
	for i, q := range questions {
		s.lists[i] = components.NewOptionList(q.Options, q.CorrectAnswerIndex)
	}
	s.current = 0
	s.remaining = quizDuration
	s.finished = nil
	s.revealLists = nil
	s.suggestion = nil
	s.improvement = nil
	s.suggestErr = ""
	s.improveErr = ""
	s.suggestPending = false
	s.improvePending = false
	s.scroll = 0

	return s, timerTick()
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.controller.Phase() != session.PhaseActive {
		return s, nil
	}

	s.remaining -= time.Second
	if s.remaining <= 0 {
		s.remaining = 0
		return s.finish(session.FinishTimeExpired)
	}
	return s, timerTick()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirming {
		switch key {
		case "y", "Y":
			return s.confirmFinish()
		case "n", "N", "esc":
			s.confirming = false
		case "left", "right", "tab", "h", "l":
			s.confirmYes = !s.confirmYes
		case "enter":
			yes, no := s.confirmButtons()
			if s.confirmYes {
				_, cmd := yes.Update(msg)
				return s, cmd
			}
			_, cmd := no.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.finished != nil {
		return s.handleResultsKey(key)
	}

	if s.controller.Phase() != session.PhaseActive {
		return s, nil
	}

	switch key {
	case "left", "h", "p":
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case "right", "l", "n":
		if s.current < len(s.lists)-1 {
			s.current++
		}
		return s, nil
	case "s", "S":
		if s.answeredCount() == len(s.lists) {
			return s.finish(session.FinishSubmitted)
		}
		s.confirming = true
		s.confirmEarly = false
		s.confirmYes = false
		return s, nil
	}

	list, cmd := s.lists[s.current].Update(msg)
	s.lists[s.current] = list
	if list.Answered() {
		s.controller.Answer(s.current, list.Chosen)
	}
	// Enter advances after choosing, so the happy path is one key per question.
	if key == "enter" && list.Answered() && s.current < len(s.lists)-1 {
		s.current++
	}
	return s, cmd
}

func (s *QuizScreen) answeredCount() int {
	n := 0
	for _, l := range s.lists {
		if l.Answered() {
			n++
		}
	}
	return n
}

// confirmButtons builds the Yes/No pair for the confirm dialog. Only the
// active button fires on Enter.
func (s *QuizScreen) confirmButtons() (components.Button, components.Button) {
	yes := components.NewButton("Yes", s.confirmYes, func() tea.Cmd {
		_, cmd := s.confirmFinish()
		return cmd
	})
	no := components.NewButton("Keep going", !s.confirmYes, func() tea.Cmd {
		s.confirming = false
		return nil
	})
	return yes, no
}

// confirmFinish resolves the pending confirmation into a finish.
func (s *QuizScreen) confirmFinish() (screen.Screen, tea.Cmd) {
	s.confirming = false
	reason := session.FinishSubmitted
	if s.confirmEarly {
		reason = session.FinishEndedEarly
	}
	return s.finish(reason)
}

// finish hands the session to the controller and sets up the results view.
func (s *QuizScreen) finish(reason session.FinishReason) (screen.Screen, tea.Cmd) {
	result := s.controller.Finish(context.Background(), reason)
	if result == nil {
		return s, nil
	}
	s.finished = result
	s.confirming = false
	s.scroll = 0

	// Reveal views for the mistakes, with the user's wrong pick marked.
	s.revealLists = make([]components.OptionList, len(result.Incorrect))
	for i, inc := range result.Incorrect {
		l := components.NewOptionList(inc.Options, inc.CorrectAnswerIndex)
		l.Chosen = inc.UserAnswerIndex
		l.Reveal = true
		s.revealLists[i] = l
	}

	if len(result.Incorrect) == 0 {
		return s, nil
	}
	s.suggestPending = true
	s.improvePending = true
	incorrect := result.Incorrect
	cfg := result.Config
	return s, tea.Batch(
		func() tea.Msg {
			sug, err := s.generator.GenerateSuggestions(context.Background(), cfg, incorrect)
			return suggestionsMsg{Suggestion: sug, Err: err}
		},
		func() tea.Msg {
			imp, err := s.generator.GenerateImprovements(context.Background(), cfg, incorrect)
			return improvementsMsg{Improvement: imp, Err: err}
		},
		spinnerTick(),
	)
}

func (s *QuizScreen) handleResultsKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "t", "T":
		return s, tea.Batch(s.tryAgainCmd(), spinnerTick())
	case "n", "N":
		s.controller.NewTopic()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.controller.Phase() == session.PhaseLoading:
		return s.renderLoading(width)
	case s.confirming:
		return s.renderConfirm(width)
	case s.finished != nil:
		return s.renderResults(width, height)
	case s.controller.Phase() == session.PhaseActive:
		return s.renderQuestion(width)
	}
	return ""
}

func (s *QuizScreen) spinner() string {
	return spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
}

func topicLabel(cfg syllabus.QuizConfig) string {
	label := cfg.Topic
	if cfg.MergeTopic != "" {
		label = fmt.Sprintf("%s + %s", cfg.Topic, cfg.MergeTopic)
	}
	return label
}
