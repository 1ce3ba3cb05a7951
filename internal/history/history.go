// Package history keeps the append-only log of completed quiz summaries.
// Persistence goes through the Repo port so the store is testable without
// a real database.
package history

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Ityord/aistudy/internal/syllabus"
)

// Item is one completed quiz summary. Immutable once created.
type Item struct {
	// ID is a time-based unique identifier (Unix milliseconds at creation).
	ID int64

	Config         syllabus.QuizConfig
	Score          int
	TotalQuestions int

	// Percentage is Score over TotalQuestions, rounded to the nearest
	// integer in [0,100].
	Percentage int

	Date time.Time
}

// NewItem builds an Item for a finished quiz.
func NewItem(cfg syllabus.QuizConfig, score, total int) Item {
	now := time.Now()
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(score) / float64(total)))
	}
	return Item{
		ID:             now.UnixMilli(),
		Config:         cfg,
		Score:          score,
		TotalQuestions: total,
		Percentage:     pct,
		Date:           now,
	}
}

// Repo is the persistence port for history items.
type Repo interface {
	// Load returns all items, newest first. A missing backing record
	// returns an empty slice, not an error.
	Load(ctx context.Context) ([]Item, error)

	// Save replaces the persisted sequence with the given items.
	Save(ctx context.Context, items []Item) error
}

// Store holds the in-memory history sequence and mirrors every mutation
// to the Repo. Persistence failures never interrupt the quiz flow: the
// in-memory state is updated first and the repo error is returned for
// the caller to log.
type Store struct {
	mu    sync.Mutex
	repo  Repo
	items []Item
}

// NewStore creates a Store backed by the given repo.
func NewStore(repo Repo) *Store {
	return &Store{repo: repo}
}

// Load reads the persisted history into memory. A repo failure leaves the
// store empty and returns the error; callers treat it as non-fatal.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = nil
		return err
	}
	s.items = items
	return nil
}

// Add prepends an item and persists the new sequence.
func (s *Store) Add(ctx context.Context, item Item) error {
	s.mu.Lock()
	s.items = append([]Item{item}, s.items...)
	items := s.snapshot()
	s.mu.Unlock()

	return s.repo.Save(ctx, items)
}

// Clear discards all items and persists the empty sequence.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	return s.repo.Save(ctx, nil)
}

// Items returns a copy of the current sequence, newest first.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// snapshot copies items. Caller must hold mu.
func (s *Store) snapshot() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}
