package quiz

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/screen"
	"github.com/Ityord/aistudy/internal/session"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// fakeGenerator implements quizgen.Generator for testing.
type fakeGenerator struct {
	count    int
	err      error
	retryLog [][]quizgen.IncorrectAnswer
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, _ syllabus.QuizConfig, incorrect []quizgen.IncorrectAnswer) ([]quizgen.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.retryLog = append(f.retryLog, incorrect)
	questions := make([]quizgen.Question, f.count)
	for i := range questions {
		questions[i] = quizgen.Question{
			Question:           fmt.Sprintf("Q%d", i),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: 0,
			Explanation:        "because",
		}
	}
	return questions, nil
}

func (f *fakeGenerator) GenerateSuggestions(_ context.Context, _ syllabus.QuizConfig, _ []quizgen.IncorrectAnswer) (*quizgen.Suggestion, error) {
	return &quizgen.Suggestion{}, nil
}

func (f *fakeGenerator) GenerateImprovements(_ context.Context, _ syllabus.QuizConfig, _ []quizgen.IncorrectAnswer) (*quizgen.ImprovementSuggestion, error) {
	return &quizgen.ImprovementSuggestion{}, nil
}

// memRepo keeps history in memory.
type memRepo struct {
	items []history.Item
}

func (m *memRepo) Load(context.Context) ([]history.Item, error) { return m.items, nil }
func (m *memRepo) Save(_ context.Context, items []history.Item) error {
	m.items = items
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testConfig() syllabus.QuizConfig {
	return syllabus.QuizConfig{
		Exam:    syllabus.ExamJEE,
		Subject: syllabus.SubjectPhysics,
		Topic:   "Kinematics",
		Level:   syllabus.LevelMains,
	}
}

func testScreen(gen *fakeGenerator) *QuizScreen {
	controller := session.NewController(gen, history.NewStore(&memRepo{}))
	return New(controller, gen, testConfig())
}

// start runs the generation command synchronously and feeds the result back.
func start(t *testing.T, s *QuizScreen) {
	t.Helper()
	msg := s.startCmd()()
	if _, _ = s.Update(msg); s.controller.Phase() != session.PhaseActive {
		t.Fatalf("expected active phase, got %v", s.controller.Phase())
	}
}

func TestQuizScreenStartBuildsOptionLists(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 4})
	start(t, s)

	if len(s.lists) != 4 {
		t.Fatalf("lists = %d, want 4", len(s.lists))
	}
	if s.remaining != quizDuration {
		t.Fatalf("remaining = %v, want %v", s.remaining, quizDuration)
	}
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want Quiz", s.Title())
	}
}

func TestQuizScreenGenerationFailureShowsError(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("boom")}
	s := testScreen(gen)

	msg := s.startCmd()()
	_, _ = s.Update(msg)

	if s.errMsg == "" {
		t.Fatal("expected error message after failed generation")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestQuizScreenAnswerRecordsWithController(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 4})
	start(t, s)

	// Hotkey 'b' chooses option index 1 on the current question.
	_, _ = s.Update(keyPress('b'))

	answers := s.controller.Answers()
	if answers[0] == nil || *answers[0] != 1 {
		t.Fatalf("expected answer 1 recorded for question 0, got %v", answers[0])
	}
}

func TestQuizScreenSubmitConfirmThenFinish(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 4})
	start(t, s)

	// Answer only the first question, then submit.
	_, _ = s.Update(keyPress('a'))
	_, _ = s.Update(keyPress('s'))
	if !s.confirming {
		t.Fatal("expected confirmation before partial submit")
	}
	_, _ = s.Update(keyPress('y'))

	if s.finished == nil {
		t.Fatal("expected finished result")
	}
	if s.finished.Score != 1 {
		t.Errorf("score = %d, want 1", s.finished.Score)
	}
	if len(s.finished.Unattempted) != 3 {
		t.Errorf("unattempted = %d, want 3", len(s.finished.Unattempted))
	}
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want Results", s.Title())
	}
	if view := s.View(80, 40); view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestQuizScreenConfirmButtons(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 4})
	start(t, s)

	_, _ = s.Update(keyPress('a'))
	_, _ = s.Update(keyPress('s'))
	if !s.confirming {
		t.Fatal("expected confirmation before partial submit")
	}
	if s.confirmYes {
		t.Fatal("expected Keep going selected by default")
	}

	// Enter on Keep going dismisses without finishing.
	_, _ = s.Update(specialKey(tea.KeyEnter))
	if s.confirming {
		t.Fatal("expected dialog dismissed")
	}
	if s.finished != nil {
		t.Fatal("expected quiz still running")
	}

	// Toggle to Yes and press the button.
	_, _ = s.Update(keyPress('s'))
	_, _ = s.Update(keyPress('l'))
	if !s.confirmYes {
		t.Fatal("expected Yes selected after toggling")
	}
	_, _ = s.Update(specialKey(tea.KeyEnter))
	if s.finished == nil {
		t.Fatal("expected finished result via the Yes button")
	}
	if s.finished.Reason != session.FinishSubmitted {
		t.Errorf("reason = %v, want %v", s.finished.Reason, session.FinishSubmitted)
	}
}

func TestQuizScreenTimerExpiryFinishes(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 2})
	start(t, s)

	_, _ = s.Update(keyPress('a'))
	s.remaining = time.Second
	_, _ = s.Update(timerTickMsg(time.Now()))

	if s.finished == nil {
		t.Fatal("expected timer expiry to finish the quiz")
	}
	if s.finished.Reason != session.FinishTimeExpired {
		t.Errorf("reason = %v, want FinishTimeExpired", s.finished.Reason)
	}
	if s.finished.Score != 1 {
		t.Errorf("score = %d, want 1", s.finished.Score)
	}
}

func TestQuizScreenEscOpensConfirm(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 2})
	start(t, s)

	handled, _ := s.HandleEsc()
	if !handled {
		t.Fatal("expected esc to be intercepted during an active quiz")
	}
	if !s.confirming || !s.confirmEarly {
		t.Fatal("expected early-end confirmation")
	}

	// N dismisses the dialog.
	_, _ = s.Update(keyPress('n'))
	if s.confirming {
		t.Error("expected confirmation to be dismissed")
	}
}

func TestQuizScreenTryAgainPassesMistakes(t *testing.T) {
	gen := &fakeGenerator{count: 2}
	s := testScreen(gen)
	start(t, s)

	// Answer both wrong, then finish.
	_, _ = s.Update(keyPress('b'))
	_, _ = s.Update(keyPress('n'))
	_, _ = s.Update(keyPress('b'))
	_, _ = s.Update(keyPress('s'))

	if s.finished == nil {
		t.Fatal("expected finished result")
	}
	if len(s.finished.Incorrect) != 2 {
		t.Fatalf("incorrect = %d, want 2", len(s.finished.Incorrect))
	}

	// Try again regenerates with the mistakes.
	msg := s.tryAgainCmd()()
	_, _ = s.Update(msg)

	last := gen.retryLog[len(gen.retryLog)-1]
	if len(last) != 2 {
		t.Fatalf("expected 2 mistakes passed to regeneration, got %d", len(last))
	}
	if s.finished != nil {
		t.Error("expected results state to reset for the new quiz")
	}
}

func TestQuizScreenKeyHints(t *testing.T) {
	s := testScreen(&fakeGenerator{count: 2})
	start(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

var _ screen.Screen = (*QuizScreen)(nil)
