package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/syllabus"
)

type stubHistoryRepo struct {
	items   []history.Item
	loadErr error
}

func (r *stubHistoryRepo) Load(context.Context) ([]history.Item, error) {
	return r.items, r.loadErr
}

func (r *stubHistoryRepo) Save(_ context.Context, items []history.Item) error {
	r.items = items
	return nil
}

func TestLoadHistoryWarnsOnFailure(t *testing.T) {
	repo := &stubHistoryRepo{loadErr: errors.New("database is locked")}
	var buf bytes.Buffer

	hist := loadHistory(context.Background(), repo, &buf)

	if hist == nil {
		t.Fatal("expected a usable store despite the load failure")
	}
	if hist.Len() != 0 {
		t.Fatalf("expected empty store, got %d items", hist.Len())
	}
	out := buf.String()
	if !strings.Contains(out, "could not load quiz history") {
		t.Fatalf("expected a load warning, got: %q", out)
	}
	if !strings.Contains(out, "database is locked") {
		t.Fatalf("expected the warning to carry the cause, got: %q", out)
	}
}

func TestLoadHistorySilentOnSuccess(t *testing.T) {
	cfg := syllabus.QuizConfig{
		Exam:    syllabus.ExamJEE,
		Subject: syllabus.SubjectPhysics,
		Topic:   "Kinematics",
		Level:   syllabus.LevelMains,
	}
	repo := &stubHistoryRepo{items: []history.Item{history.NewItem(cfg, 15, 20)}}
	var buf bytes.Buffer

	hist := loadHistory(context.Background(), repo, &buf)

	if hist.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", hist.Len())
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no warning, got: %q", buf.String())
	}
}
