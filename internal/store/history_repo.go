package store

import (
	"context"
	"fmt"

	"github.com/Ityord/aistudy/ent"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/syllabus"
)

// HistoryRepo implements history.Repo on the ent QuizHistoryItem table.
// Save replaces the whole persisted sequence, matching the store's
// write-after-every-mutation contract.
type HistoryRepo struct {
	client *ent.Client
}

// Load returns all history items, newest first.
func (r *HistoryRepo) Load(ctx context.Context) ([]history.Item, error) {
	rows, err := r.client.QuizHistoryItem.Query().
		Order(ent.Desc(quizhistoryitem.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quiz history: %w", err)
	}

	items := make([]history.Item, len(rows))
	for i, row := range rows {
		items[i] = history.Item{
			ID: row.ItemID,
			Config: syllabus.QuizConfig{
				Exam:       syllabus.Exam(row.Exam),
				Subject:    syllabus.Subject(row.Subject),
				Topic:      row.Topic,
				Level:      syllabus.Level(row.Level),
				MergeTopic: row.MergeTopic,
			},
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Percentage:     row.Percentage,
			Date:           row.Date,
		}
	}
	return items, nil
}

// Save replaces the persisted sequence with the given items in one
// transaction.
func (r *HistoryRepo) Save(ctx context.Context, items []history.Item) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin history save: %w", err)
	}

	if _, err := tx.QuizHistoryItem.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear quiz history: %w", err)
	}

	if len(items) > 0 {
		builders := make([]*ent.QuizHistoryItemCreate, len(items))
		for i, item := range items {
			builders[i] = tx.QuizHistoryItem.Create().
				SetItemID(item.ID).
				SetExam(string(item.Config.Exam)).
				SetSubject(string(item.Config.Subject)).
				SetTopic(item.Config.Topic).
				SetLevel(string(item.Config.Level)).
				SetMergeTopic(item.Config.MergeTopic).
				SetScore(item.Score).
				SetTotalQuestions(item.TotalQuestions).
				SetPercentage(item.Percentage).
				SetDate(item.Date)
		}
		if _, err := tx.QuizHistoryItem.CreateBulk(builders...).Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("save quiz history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history save: %w", err)
	}
	return nil
}
