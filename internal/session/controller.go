// Package session orchestrates the quiz lifecycle: idle, loading, active,
// finished. It owns the question set and recorded answers, computes the
// score, and appends finished quizzes to the history store.
package session

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// Controller drives the quiz state machine. All methods are safe for
// concurrent use; at most one generation request is in flight at a time.
type Controller struct {
	mu        sync.Mutex
	generator quizgen.Generator
	history   *history.Store

	phase     Phase
	inFlight  bool
	sessionID string
	config    syllabus.QuizConfig
	questions []quizgen.Question
	answers   []*int
	result    *Result
	lastErr   string
}

// NewController creates a Controller in the idle phase.
func NewController(gen quizgen.Generator, hist *history.Store) *Controller {
	return &Controller{
		generator: gen,
		history:   hist,
		phase:     PhaseIdle,
	}
}

// Start begins a new quiz: idle to loading, then active on success or back
// to idle with an error message on failure. A start request arriving while
// a generation call is already in flight is silently dropped.
// Start blocks until generation completes; run it from a goroutine or
// command when the caller must stay responsive.
func (c *Controller) Start(ctx context.Context, cfg syllabus.QuizConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return c.load(ctx, cfg, nil)
}

// TryAgain regenerates a quiz for the finished session's config, passing
// the just-computed mistakes so the new quiz targets the same weak
// concepts. Valid only in the finished phase.
func (c *Controller) TryAgain(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != PhaseFinished || c.result == nil {
		c.mu.Unlock()
		return nil
	}
	cfg := c.result.Config
	incorrect := c.result.Incorrect
	c.mu.Unlock()

	return c.load(ctx, cfg, incorrect)
}

// load runs one guarded generation request.
func (c *Controller) load(ctx context.Context, cfg syllabus.QuizConfig, incorrect []quizgen.IncorrectAnswer) error {
	c.mu.Lock()
	if c.inFlight {
		// Second start while one is pending: dropped, not queued.
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	c.phase = PhaseLoading
	c.lastErr = ""
	c.mu.Unlock()

	questions, err := c.generator.GenerateQuiz(ctx, cfg, incorrect)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		c.phase = PhaseIdle
		c.lastErr = err.Error()
		return err
	}

	c.phase = PhaseActive
	c.sessionID = uuid.NewString()
	c.config = cfg
	c.questions = questions
	c.answers = make([]*int, len(questions))
	c.result = nil
	return nil
}

// Answer records the user's choice for a question. Out-of-range indices
// and calls outside the active phase are ignored.
func (c *Controller) Answer(questionIndex, optionIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseActive {
		return
	}
	if questionIndex < 0 || questionIndex >= len(c.answers) {
		return
	}
	if optionIndex < 0 || optionIndex > 3 {
		return
	}
	choice := optionIndex
	c.answers[questionIndex] = &choice
}

// Finish ends the quiz and computes the result: active to finished.
// The first completion wins; a timer expiry and a manual submission racing
// each other resolve to whichever called Finish first, and later calls
// return the already-computed result. The finished quiz is appended to
// history best-effort; persistence failures never block the transition.
func (c *Controller) Finish(ctx context.Context, reason FinishReason) *Result {
	c.mu.Lock()

	if c.phase == PhaseFinished {
		r := c.result
		c.mu.Unlock()
		return r
	}
	if c.phase != PhaseActive {
		c.mu.Unlock()
		return nil
	}

	result := c.score(reason)
	c.phase = PhaseFinished
	c.result = result
	item := history.NewItem(result.Config, result.Score, len(result.Questions))
	c.mu.Unlock()

	if c.history != nil {
		// History is best-effort, a failed write never blocks the result.
		if err := c.history.Add(ctx, item); err != nil {
			c.mu.Lock()
			result.SaveErr = err
			c.mu.Unlock()
		}
	}
	return result
}

// score computes the result for the current session. Caller must hold mu.
func (c *Controller) score(reason FinishReason) *Result {
	result := &Result{
		SessionID:   c.sessionID,
		Config:      c.config,
		Questions:   c.questions,
		Answers:     c.answers,
		Reason:      reason,
		CompletedAt: time.Now(),
	}

	for i, q := range c.questions {
		answer := c.answers[i]
		if answer == nil {
			result.Unattempted = append(result.Unattempted, i)
			continue
		}
		if *answer == q.CorrectAnswerIndex {
			result.Score++
			continue
		}
		result.Incorrect = append(result.Incorrect, quizgen.IncorrectAnswer{
			Question:        q,
			UserAnswerIndex: *answer,
		})
	}

	if n := len(c.questions); n > 0 {
		result.Percentage = int(math.Round(100 * float64(result.Score) / float64(n)))
	}
	return result
}

// NewTopic discards the finished session and returns to idle without
// generating anything.
func (c *Controller) NewTopic() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseFinished {
		return
	}
	c.phase = PhaseIdle
	c.sessionID = ""
	c.config = syllabus.QuizConfig{}
	c.questions = nil
	c.answers = nil
	c.result = nil
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Questions returns the active question set.
func (c *Controller) Questions() []quizgen.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questions
}

// Answers returns a copy of the recorded answers, indexed like Questions.
// A nil entry means unattempted.
func (c *Controller) Answers() []*int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*int, len(c.answers))
	copy(out, c.answers)
	return out
}

// Config returns the active quiz configuration.
func (c *Controller) Config() syllabus.QuizConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Result returns the finished result, or nil before the quiz ends.
func (c *Controller) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Err returns the last generation error message, empty when none.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ClearErr dismisses the error banner.
func (c *Controller) ClearErr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = ""
}
