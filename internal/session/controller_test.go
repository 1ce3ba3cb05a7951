package session

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// fakeGenerator returns canned question sets and records calls.
type fakeGenerator struct {
	mu        sync.Mutex
	questions []quizgen.Question
	err       error
	calls     int
	incorrect [][]quizgen.IncorrectAnswer

	// block, when non-nil, is closed by the test to release Generate.
	block chan struct{}
}

func (f *fakeGenerator) GenerateQuiz(_ context.Context, _ syllabus.QuizConfig, incorrect []quizgen.IncorrectAnswer) ([]quizgen.Question, error) {
	f.mu.Lock()
	f.calls++
	f.incorrect = append(f.incorrect, incorrect)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func (f *fakeGenerator) GenerateSuggestions(context.Context, syllabus.QuizConfig, []quizgen.IncorrectAnswer) (*quizgen.Suggestion, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGenerator) GenerateImprovements(context.Context, syllabus.QuizConfig, []quizgen.IncorrectAnswer) (*quizgen.ImprovementSuggestion, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memRepo is an in-memory history.Repo.
type memRepo struct {
	items []history.Item
}

func (m *memRepo) Load(context.Context) ([]history.Item, error) { return m.items, nil }
func (m *memRepo) Save(_ context.Context, items []history.Item) error {
	m.items = items
	return nil
}

// failRepo is a history.Repo whose writes always fail.
type failRepo struct{}

func (failRepo) Load(context.Context) ([]history.Item, error) { return nil, nil }
func (failRepo) Save(context.Context, []history.Item) error {
	return errors.New("disk full")
}

func makeQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, n)
	for i := range qs {
		qs[i] = quizgen.Question{
			Question:           fmt.Sprintf("Q%d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "because",
		}
	}
	return qs
}

func testConfig() syllabus.QuizConfig {
	return syllabus.QuizConfig{
		Exam:    syllabus.ExamJEE,
		Subject: syllabus.SubjectPhysics,
		Topic:   "Kinematics",
		Level:   syllabus.LevelBoards,
	}
}

func startedController(t *testing.T, gen *fakeGenerator, repo *memRepo) *Controller {
	t.Helper()
	c := NewController(gen, history.NewStore(repo))
	if err := c.Start(context.Background(), testConfig()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if c.Phase() != PhaseActive {
		t.Fatalf("expected active phase, got %s", c.Phase())
	}
	return c
}

func TestStartTransitionsToActive(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(20)}
	c := startedController(t, gen, &memRepo{})

	if len(c.Questions()) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(c.Questions()))
	}
	if c.Err() != "" {
		t.Fatalf("unexpected error message: %q", c.Err())
	}
}

func TestStartFailureReturnsToIdle(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("the AI service is currently unavailable")}
	c := NewController(gen, nil)

	err := c.Start(context.Background(), testConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("expected idle after failure, got %s", c.Phase())
	}
	if c.Err() == "" {
		t.Fatal("expected error message retained for the banner")
	}
	c.ClearErr()
	if c.Err() != "" {
		t.Fatal("expected error message cleared")
	}
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(20)}
	c := NewController(gen, nil)

	cfg := testConfig()
	cfg.Subject = syllabus.SubjectBiology // Not offered for JEE.
	if err := c.Start(context.Background(), cfg); err == nil {
		t.Fatal("expected validation error")
	}
	if gen.callCount() != 0 {
		t.Fatal("generator must not be called for an invalid config")
	}
}

func TestSecondStartSilentlyDropped(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(20), block: make(chan struct{})}
	c := NewController(gen, nil)

	done := make(chan error, 1)
	go func() {
		done <- c.Start(context.Background(), testConfig())
	}()

	// Wait for the first request to be in flight.
	for c.Phase() != PhaseLoading {
		runtime.Gosched()
	}

	if err := c.Start(context.Background(), testConfig()); err != nil {
		t.Fatalf("dropped start must not error: %v", err)
	}

	close(gen.block)
	if err := <-done; err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if gen.callCount() != 1 {
		t.Fatalf("expected exactly 1 generation call, got %d", gen.callCount())
	}
}

func TestFinishAllCorrect(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(20)}
	repo := &memRepo{}
	c := startedController(t, gen, repo)

	for i, q := range c.Questions() {
		c.Answer(i, q.CorrectAnswerIndex)
	}
	result := c.Finish(context.Background(), FinishSubmitted)

	if result.Score != 20 || result.Percentage != 100 {
		t.Fatalf("expected 20/100, got %d/%d", result.Score, result.Percentage)
	}
	if len(result.Incorrect) != 0 || len(result.Unattempted) != 0 {
		t.Fatalf("expected clean sheet, got %d incorrect, %d unattempted",
			len(result.Incorrect), len(result.Unattempted))
	}
	if len(repo.items) != 1 || repo.items[0].Percentage != 100 {
		t.Fatalf("expected one history entry at 100%%, got %+v", repo.items)
	}
}

func TestFinishWithUnattempted(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(20)}
	c := startedController(t, gen, &memRepo{})

	// Answer the first 15 correctly, leave the last 5 blank.
	for i, q := range c.Questions()[:15] {
		c.Answer(i, q.CorrectAnswerIndex)
	}
	result := c.Finish(context.Background(), FinishEndedEarly)

	if result.Score != 15 || result.Percentage != 75 {
		t.Fatalf("expected 15/75, got %d/%d", result.Score, result.Percentage)
	}
	if len(result.Unattempted) != 5 {
		t.Fatalf("expected 5 unattempted, got %d", len(result.Unattempted))
	}
	if len(result.Incorrect) != 0 {
		t.Fatalf("expected no incorrect, got %d", len(result.Incorrect))
	}
}

func TestFinishPartitionsIncorrect(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := startedController(t, gen, &memRepo{})

	qs := c.Questions()
	c.Answer(0, qs[0].CorrectAnswerIndex)
	c.Answer(1, (qs[1].CorrectAnswerIndex+1)%4)
	c.Answer(2, (qs[2].CorrectAnswerIndex+1)%4)
	// Question 3 left unattempted.

	result := c.Finish(context.Background(), FinishSubmitted)
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
	if len(result.Incorrect) != 2 {
		t.Fatalf("expected 2 incorrect, got %d", len(result.Incorrect))
	}
	if result.Incorrect[0].UserAnswerIndex != (qs[1].CorrectAnswerIndex+1)%4 {
		t.Fatal("incorrect entry missing the user's actual choice")
	}
	if len(result.Unattempted) != 1 || result.Unattempted[0] != 3 {
		t.Fatalf("expected question 3 unattempted, got %v", result.Unattempted)
	}
	if result.Percentage != 25 {
		t.Fatalf("expected 25%%, got %d", result.Percentage)
	}
}

func TestFinishFirstCompletionWins(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := startedController(t, gen, &memRepo{})

	c.Answer(0, c.Questions()[0].CorrectAnswerIndex)

	first := c.Finish(context.Background(), FinishTimeExpired)
	second := c.Finish(context.Background(), FinishSubmitted)

	if first != second {
		t.Fatal("expected the first completion's result returned to later callers")
	}
	if first.Reason != FinishTimeExpired {
		t.Fatal("expected the first completion's reason preserved")
	}
}

func TestFinishRecordsFailedHistoryWrite(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := NewController(gen, history.NewStore(failRepo{}))
	if err := c.Start(context.Background(), testConfig()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	c.Answer(0, c.Questions()[0].CorrectAnswerIndex)

	r := c.Finish(context.Background(), FinishSubmitted)

	if r == nil {
		t.Fatal("expected a result despite the failed write")
	}
	if r.Score != 1 {
		t.Fatalf("expected score 1, got %d", r.Score)
	}
	if r.SaveErr == nil {
		t.Fatal("expected the failed history write recorded on the result")
	}
	if c.Phase() != PhaseFinished {
		t.Fatalf("expected finished phase, got %s", c.Phase())
	}
}

func TestFinishOutsideActiveIsNoop(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := NewController(gen, nil)

	if r := c.Finish(context.Background(), FinishSubmitted); r != nil {
		t.Fatal("expected nil result in idle phase")
	}
}

func TestAnswerIgnoredOutsideActive(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := startedController(t, gen, &memRepo{})
	c.Finish(context.Background(), FinishSubmitted)

	c.Answer(0, 1) // Finished, must be ignored.
	if got := c.Result().Answers[0]; got != nil {
		t.Fatal("expected answer ignored after finish")
	}
}

func TestTryAgainPassesMistakesAndResets(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := startedController(t, gen, &memRepo{})

	qs := c.Questions()
	for i, q := range qs {
		c.Answer(i, (q.CorrectAnswerIndex+1)%4) // All wrong.
	}
	c.Finish(context.Background(), FinishSubmitted)

	if err := c.TryAgain(context.Background()); err != nil {
		t.Fatalf("try again failed: %v", err)
	}
	if c.Phase() != PhaseActive {
		t.Fatalf("expected active after try again, got %s", c.Phase())
	}
	if gen.callCount() != 2 {
		t.Fatalf("expected 2 generation calls, got %d", gen.callCount())
	}
	if len(gen.incorrect[1]) != 4 {
		t.Fatalf("expected 4 mistakes passed to regeneration, got %d", len(gen.incorrect[1]))
	}
	for i, a := range c.Answers() {
		if a != nil {
			t.Fatalf("expected answer %d reset after regeneration", i)
		}
	}
	if c.Result() != nil {
		t.Fatal("expected previous result discarded")
	}
}

func TestNewTopicReturnsToIdle(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := startedController(t, gen, &memRepo{})
	c.Finish(context.Background(), FinishSubmitted)

	c.NewTopic()
	if c.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", c.Phase())
	}
	if len(c.Questions()) != 0 {
		t.Fatal("expected questions discarded")
	}
	if gen.callCount() != 1 {
		t.Fatal("new topic must not generate anything")
	}
}

func TestTryAgainOutsideFinishedIsNoop(t *testing.T) {
	gen := &fakeGenerator{questions: makeQuestions(4)}
	c := NewController(gen, nil)

	if err := c.TryAgain(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.callCount() != 0 {
		t.Fatal("try again in idle must not generate")
	}
}
