package session

import (
	"time"

	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// Phase represents the quiz lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // No quiz configured
	PhaseLoading               // Generation request in flight
	PhaseActive                // Quiz in progress
	PhaseFinished              // Quiz scored, result available
)

// String returns the phase name for display and logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// FinishReason records what ended the quiz.
type FinishReason int

const (
	FinishSubmitted   FinishReason = iota // User answered the last question or submitted
	FinishEndedEarly                      // User ended the quiz before the last question
	FinishTimeExpired                     // Countdown timer ran out
)

// Result is the scored outcome of a finished quiz.
type Result struct {
	SessionID string
	Config    syllabus.QuizConfig
	Questions []quizgen.Question

	// Answers mirrors Questions by index. A nil entry means unattempted.
	Answers []*int

	// Score is the number of exact correct-index matches.
	Score int

	// Percentage is Score over len(Questions), rounded.
	Percentage int

	// Incorrect holds answered-but-wrong questions with the user's choice.
	Incorrect []quizgen.IncorrectAnswer

	// Unattempted holds indices of questions with no recorded answer.
	Unattempted []int

	Reason      FinishReason
	CompletedAt time.Time

	// SaveErr records a failed history write. The result itself is
	// unaffected; the UI surfaces it as a warning.
	SaveErr error
}
