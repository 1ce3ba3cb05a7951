package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Ityord/aistudy/internal/llm"
)

func quizJSON(n int) json.RawMessage {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"question": "Q%d",
			"options": ["a", "b", "c", "d"],
			"correctAnswerIndex": 0,
			"explanation": "because",
			"sourceHint": "Kinematics",
			"resourceLink": {"title": "NCERT", "url": "https://ncert.nic.in"}
		}`, i+1)
	}
	return json.RawMessage("[" + strings.Join(items, ",") + "]")
}

func TestGenerateQuiz_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(20)},
	)
	svc := New(mock, DefaultConfig())

	questions, err := svc.GenerateQuiz(context.Background(), kinematicsConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(questions))
	}
	if questions[0].Question != "Q1" {
		t.Fatalf("unexpected first question: %q", questions[0].Question)
	}

	req := mock.LastRequest()
	if req.Schema != QuizSchema {
		t.Error("expected quiz schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Kinematics") {
		t.Error("expected topic in the prompt")
	}
}

func TestGenerateQuiz_EmptyArrayIsFormatError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: quizJSON(20)}, // Won't be reached.
	)
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateQuiz(context.Background(), kinematicsConfig(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected no further provider calls, got %d", mock.CallCount())
	}
}

func TestGenerateQuiz_NotAnArrayIsFormatError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"question": "only one"}`)},
	)
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateQuiz(context.Background(), kinematicsConfig(), nil)
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestGenerateQuiz_ProviderErrorPropagatesUnchanged(t *testing.T) {
	wantErr := &llm.ErrServiceUnavailable{Err: errors.New("down")}
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: wantErr},
	)
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateQuiz(context.Background(), kinematicsConfig(), nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected invoker error unchanged, got: %v", err)
	}
}

func TestGenerateQuiz_RetryPassesMistakes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(20)},
	)
	svc := New(mock, DefaultConfig())

	mistakes := sampleMistakes()
	_, err := svc.GenerateQuiz(context.Background(), kinematicsConfig(), mistakes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastRequest().Messages[0].Content
	if !strings.Contains(prompt, mistakes[0].Question.Question) {
		t.Error("expected mistake question in the retry prompt")
	}
}

func TestGenerateSuggestions_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"books": [{"title": "Concepts of Physics", "author": "H.C. Verma", "shortDescription": "Classic JEE prep"}],
			"youtube": [{"title": "Kinematics One Shot", "channel": "Physics Wallah", "link": "https://youtube.com/watch?v=x"}]
		}`)},
	)
	svc := New(mock, DefaultConfig())

	s, err := svc.GenerateSuggestions(context.Background(), kinematicsConfig(), sampleMistakes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Books) != 1 || s.Books[0].Author != "H.C. Verma" {
		t.Fatalf("unexpected books: %+v", s.Books)
	}
	if len(s.YouTube) != 1 || s.YouTube[0].Channel != "Physics Wallah" {
		t.Fatalf("unexpected videos: %+v", s.YouTube)
	}
}

func TestGenerateSuggestions_MissingFieldIsFormatError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing youtube", `{"books": []}`},
		{"missing books", `{"youtube": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(
				llm.MockResponse{Content: json.RawMessage(tt.body)},
			)
			svc := New(mock, DefaultConfig())

			_, err := svc.GenerateSuggestions(context.Background(), kinematicsConfig(), sampleMistakes())
			var invResp *llm.ErrInvalidResponse
			if !errors.As(err, &invResp) {
				t.Fatalf("expected ErrInvalidResponse, got: %v", err)
			}
		})
	}
}

func TestGenerateSuggestions_RequiresMistakes(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateSuggestions(context.Background(), kinematicsConfig(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 0 {
		t.Fatal("provider must not be called without mistakes")
	}
}

func TestGenerateImprovements_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"topicsToImprove": [{
				"topicName": "Graphs of Motion",
				"reason": "Confused a parabola with uniform acceleration",
				"resourceLink": {"title": "Khan Academy", "url": "https://khanacademy.org/x"}
			}]
		}`)},
	)
	svc := New(mock, DefaultConfig())

	imp, err := svc.GenerateImprovements(context.Background(), kinematicsConfig(), sampleMistakes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(imp.TopicsToImprove) != 1 || imp.TopicsToImprove[0].TopicName != "Graphs of Motion" {
		t.Fatalf("unexpected topics: %+v", imp.TopicsToImprove)
	}
}

func TestGenerateImprovements_MissingFieldIsFormatError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"topics": []}`)},
	)
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateImprovements(context.Background(), kinematicsConfig(), sampleMistakes())
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}
