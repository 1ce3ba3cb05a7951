package store

import (
	"context"
	"testing"
	"time"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/syllabus"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-backed DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"quiz-gen", "quiz-gen", "suggestion-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 1000,
			LatencyMs:    2500,
			Success:      true,
			RequestBody:  "[user]\nGenerate exactly 20 questions",
			ResponseBody: "[]",
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "suggestion-gen" {
		t.Errorf("expected newest event first, got %q", events[0].Purpose)
	}
	if events[0].Sequence <= events[2].Sequence {
		t.Error("expected descending sequence order")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event, got %d", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "schema validation failed",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.ErrorMessage != "schema validation failed" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 2000, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 300, OutputTokens: 4000, LatencyMs: 3000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "improvement-gen", InputTokens: 50, OutputTokens: 500, LatencyMs: 500, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	found := false
	for _, u := range byPurpose {
		if u.Purpose != "quiz-gen" {
			continue
		}
		found = true
		if u.Calls != 2 || u.InputTokens != 400 || u.OutputTokens != 6000 {
			t.Errorf("unexpected quiz-gen usage: %+v", u)
		}
		if u.AvgLatencyMs != 2000 {
			t.Errorf("expected avg latency 2000, got %d", u.AvgLatencyMs)
		}
	}
	if !found {
		t.Fatal("expected quiz-gen aggregate")
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
}

func TestHistoryRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty history, got %d items", len(empty))
	}

	now := time.Now()
	items := []history.Item{
		{
			ID: now.UnixMilli() + 1,
			Config: syllabus.QuizConfig{
				Exam:    syllabus.ExamNEET,
				Subject: syllabus.SubjectBiology,
				Topic:   "Genetics",
				Level:   syllabus.LevelMains,
			},
			Score:          18,
			TotalQuestions: 20,
			Percentage:     90,
			Date:           now,
		},
		{
			ID: now.UnixMilli(),
			Config: syllabus.QuizConfig{
				Exam:       syllabus.ExamJEE,
				Subject:    syllabus.SubjectPhysics,
				Topic:      "Kinematics",
				Level:      syllabus.LevelBoards,
				MergeTopic: "Vectors",
			},
			Score:          15,
			TotalQuestions: 20,
			Percentage:     75,
			Date:           now.Add(-time.Hour),
		},
	}

	if err := repo.Save(ctx, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded))
	}
	if loaded[0].Config.Topic != "Genetics" {
		t.Errorf("expected newest first, got %q", loaded[0].Config.Topic)
	}
	if loaded[1].Config.MergeTopic != "Vectors" {
		t.Errorf("expected merge topic preserved, got %q", loaded[1].Config.MergeTopic)
	}

	// Replace with empty (clear).
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cleared, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(cleared) != 0 {
		t.Fatalf("expected cleared history, got %d items", len(cleared))
	}
}
