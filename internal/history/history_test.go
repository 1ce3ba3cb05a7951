package history

import (
	"context"
	"errors"
	"testing"

	"github.com/Ityord/aistudy/internal/syllabus"
)

// fakeRepo is an in-memory Repo for testing.
type fakeRepo struct {
	items     []Item
	loadErr   error
	saveErr   error
	saveCalls int
}

func (f *fakeRepo) Load(_ context.Context) ([]Item, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.items, nil
}

func (f *fakeRepo) Save(_ context.Context, items []Item) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items = items
	return nil
}

func testConfig() syllabus.QuizConfig {
	return syllabus.QuizConfig{
		Exam:    syllabus.ExamJEE,
		Subject: syllabus.SubjectPhysics,
		Topic:   "Kinematics",
		Level:   syllabus.LevelBoards,
	}
}

func TestNewItemPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{20, 20, 100},
		{15, 20, 75},
		{0, 20, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}
	for _, tt := range tests {
		item := NewItem(testConfig(), tt.score, tt.total)
		if item.Percentage != tt.want {
			t.Errorf("NewItem(%d/%d).Percentage = %d, want %d", tt.score, tt.total, item.Percentage, tt.want)
		}
	}
}

func TestNewItemIDIsTimeBased(t *testing.T) {
	item := NewItem(testConfig(), 10, 20)
	if item.ID != item.Date.UnixMilli() {
		t.Fatalf("ID %d does not match creation time %d", item.ID, item.Date.UnixMilli())
	}
}

func TestStoreAddPrepends(t *testing.T) {
	repo := &fakeRepo{}
	s := NewStore(repo)

	first := NewItem(testConfig(), 10, 20)
	second := NewItem(testConfig(), 18, 20)

	if err := s.Add(context.Background(), first); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(context.Background(), second); err != nil {
		t.Fatal(err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Score != 18 {
		t.Error("expected newest item first")
	}
	if len(repo.items) != 2 {
		t.Error("expected repo to hold the saved sequence")
	}
}

func TestStoreLoadFailureLeavesEmpty(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("corrupt")}
	s := NewStore(repo)

	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error surfaced")
	}
	if s.Len() != 0 {
		t.Fatal("expected empty history after failed load")
	}
}

func TestStoreSaveFailureKeepsMemoryState(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	s := NewStore(repo)

	err := s.Add(context.Background(), NewItem(testConfig(), 10, 20))
	if err == nil {
		t.Fatal("expected save error surfaced")
	}
	if s.Len() != 1 {
		t.Fatal("in-memory state must survive a failed save")
	}
}

func TestStoreClear(t *testing.T) {
	repo := &fakeRepo{items: []Item{NewItem(testConfig(), 5, 20)}}
	s := NewStore(repo)

	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatal("expected loaded item")
	}

	if err := s.Clear(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatal("expected empty store after clear")
	}
	if len(repo.items) != 0 {
		t.Fatal("expected cleared sequence persisted")
	}
}
