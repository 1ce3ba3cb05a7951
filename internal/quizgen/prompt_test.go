package quizgen

import (
	"strings"
	"testing"

	"github.com/Ityord/aistudy/internal/syllabus"
)

func kinematicsConfig() syllabus.QuizConfig {
	return syllabus.QuizConfig{
		Exam:    syllabus.ExamJEE,
		Subject: syllabus.SubjectPhysics,
		Topic:   "Kinematics",
		Level:   syllabus.LevelBoards,
	}
}

func sampleMistakes() []IncorrectAnswer {
	return []IncorrectAnswer{
		{
			Question: Question{
				Question:           "A ball is dropped from rest. What is its speed after 2 s?",
				Options:            []string{"$9.8$ m/s", "$19.6$ m/s", "$4.9$ m/s", "$39.2$ m/s"},
				CorrectAnswerIndex: 1,
			},
			UserAnswerIndex: 0,
		},
		{
			Question: Question{
				Question:           "Which graph shows uniform acceleration?",
				Options:            []string{"Horizontal line", "Straight sloped line", "Parabola", "Hyperbola"},
				CorrectAnswerIndex: 1,
			},
			UserAnswerIndex: 2,
		},
	}
}

func TestBuildQuizPrompt_ContainsConfigTokens(t *testing.T) {
	msg := BuildQuizPrompt(kinematicsConfig(), nil)

	for _, want := range []string{"20", "Kinematics", "JEE", "Physics", "Boards"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildQuizPrompt_Foundational(t *testing.T) {
	cfg := kinematicsConfig()
	cfg.Topic = syllabus.TopicFoundational
	msg := BuildQuizPrompt(cfg, nil)

	if !strings.Contains(msg, "entire JEE Physics syllabus") {
		t.Error("expected syllabus-wide instruction for foundational topic")
	}
	if strings.Contains(msg, "Topic: Foundational Concepts") {
		t.Error("sentinel must not be passed through as a literal topic")
	}
}

func TestBuildQuizPrompt_MergeTopic(t *testing.T) {
	cfg := kinematicsConfig()
	cfg.MergeTopic = "Vectors"
	msg := BuildQuizPrompt(cfg, nil)

	if !strings.Contains(msg, "Vectors") {
		t.Error("prompt missing merge topic")
	}
	if !strings.Contains(msg, "multi-concept") {
		t.Error("prompt missing blend instruction")
	}
}

func TestBuildQuizPrompt_DifficultyPolicies(t *testing.T) {
	cfg := kinematicsConfig()

	cfg.Level = syllabus.LevelAdvanced
	if msg := BuildQuizPrompt(cfg, nil); !strings.Contains(msg, "highly analytical") {
		t.Error("expected analytical policy for Advanced")
	}

	cfg.Level = syllabus.LevelMains
	if msg := BuildQuizPrompt(cfg, nil); !strings.Contains(msg, "core concepts") {
		t.Error("expected core-concept policy for Mains")
	}

	cfg.Level = syllabus.LevelBoards
	if msg := BuildQuizPrompt(cfg, nil); !strings.Contains(msg, "knowledge-based") {
		t.Error("expected knowledge-based policy for Boards")
	}
}

func TestBuildQuizPrompt_MistakeBlock(t *testing.T) {
	mistakes := sampleMistakes()
	msg := BuildQuizPrompt(kinematicsConfig(), mistakes)

	for _, ia := range mistakes {
		if !strings.Contains(msg, ia.Options[ia.UserAnswerIndex]) {
			t.Errorf("prompt missing user's chosen option %q", ia.Options[ia.UserAnswerIndex])
		}
		if !strings.Contains(msg, ia.Options[ia.CorrectAnswerIndex]) {
			t.Errorf("prompt missing correct option %q", ia.Options[ia.CorrectAnswerIndex])
		}
	}
	if !strings.Contains(msg, "DIFFERENT quiz") {
		t.Error("prompt missing regeneration instruction")
	}

	plain := BuildQuizPrompt(kinematicsConfig(), nil)
	if plain == msg {
		t.Error("retry prompt must differ from the plain prompt")
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	msg := BuildSuggestionPrompt(kinematicsConfig(), sampleMistakes())

	for _, want := range []string{"books", "YouTube", "Never fabricate"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(msg, "uniform acceleration") {
		t.Error("prompt missing mistake text")
	}
}

func TestBuildImprovementPrompt(t *testing.T) {
	msg := BuildImprovementPrompt(kinematicsConfig(), sampleMistakes())

	for _, want := range []string{"topicName", "reason", "resourceLink", "Never fabricate"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
