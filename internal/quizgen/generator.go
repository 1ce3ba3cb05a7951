package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ityord/aistudy/internal/llm"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// Generator produces quizzes and study suggestions using an LLM provider.
type Generator interface {
	// GenerateQuiz produces a non-empty ordered question set for the config.
	// A non-empty incorrect list requests a targeted retry quiz covering
	// the same weak concepts with different questions.
	GenerateQuiz(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) ([]Question, error)

	// GenerateSuggestions produces book and video recommendations for the
	// given mistakes. The incorrect list must be non-empty.
	GenerateSuggestions(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) (*Suggestion, error)

	// GenerateImprovements produces weak-topic analysis for the given
	// mistakes. The incorrect list must be non-empty.
	GenerateImprovements(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) (*ImprovementSuggestion, error)
}

// Service implements Generator using the LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

func (s *Service) GenerateQuiz(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := s.generate(ctx, BuildQuizPrompt(cfg, incorrect), QuizSchema)
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, formatError(resp.Content, fmt.Errorf("quiz is not an array of questions: %w", err))
	}
	if len(questions) == 0 {
		return nil, formatError(resp.Content, errors.New("quiz is empty"))
	}
	for i, q := range questions {
		if len(q.Options) != 4 {
			return nil, formatError(resp.Content, fmt.Errorf("question %d has %d options, want 4", i+1, len(q.Options)))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex > 3 {
			return nil, formatError(resp.Content, fmt.Errorf("question %d has correct index %d out of range", i+1, q.CorrectAnswerIndex))
		}
	}

	return questions, nil
}

func (s *Service) GenerateSuggestions(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) (*Suggestion, error) {
	if len(incorrect) == 0 {
		return nil, errors.New("no incorrect answers to build suggestions from")
	}
	ctx = llm.WithPurpose(ctx, "suggestion-gen")

	resp, err := s.generate(ctx, BuildSuggestionPrompt(cfg, incorrect), SuggestionSchema)
	if err != nil {
		return nil, err
	}

	fields, err := topLevelFields(resp.Content)
	if err != nil {
		return nil, formatError(resp.Content, err)
	}
	if _, ok := fields["books"]; !ok {
		return nil, formatError(resp.Content, errors.New("missing books field"))
	}
	if _, ok := fields["youtube"]; !ok {
		return nil, formatError(resp.Content, errors.New("missing youtube field"))
	}

	var suggestion Suggestion
	if err := json.Unmarshal(resp.Content, &suggestion); err != nil {
		return nil, formatError(resp.Content, err)
	}
	return &suggestion, nil
}

func (s *Service) GenerateImprovements(ctx context.Context, cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) (*ImprovementSuggestion, error) {
	if len(incorrect) == 0 {
		return nil, errors.New("no incorrect answers to analyze")
	}
	ctx = llm.WithPurpose(ctx, "improvement-gen")

	resp, err := s.generate(ctx, BuildImprovementPrompt(cfg, incorrect), ImprovementSchema)
	if err != nil {
		return nil, err
	}

	fields, err := topLevelFields(resp.Content)
	if err != nil {
		return nil, formatError(resp.Content, err)
	}
	if _, ok := fields["topicsToImprove"]; !ok {
		return nil, formatError(resp.Content, errors.New("missing topicsToImprove field"))
	}

	var improvement ImprovementSuggestion
	if err := json.Unmarshal(resp.Content, &improvement); err != nil {
		return nil, formatError(resp.Content, err)
	}
	return &improvement, nil
}

// generate runs one provider call. Provider and invoker errors propagate
// unchanged; they already carry the user-appropriate message.
func (s *Service) generate(ctx context.Context, prompt string, schema *llm.Schema) (*llm.Response, error) {
	req := llm.Request{
		System: systemPromptFor(schema),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}
	return s.provider.Generate(ctx, req)
}

func systemPromptFor(schema *llm.Schema) string {
	if schema == QuizSchema {
		return quizSystemPrompt
	}
	return suggestionSystemPrompt
}

// formatError classifies a shape failure the same way schema validation
// failures from the provider layer are classified.
func formatError(content json.RawMessage, err error) error {
	return &llm.ErrInvalidResponse{Content: content, Err: err}
}

// topLevelFields returns the keys of a JSON object without decoding values.
func topLevelFields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	return fields, nil
}
