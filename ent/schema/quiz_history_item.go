package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizHistoryItem is one completed quiz summary. Rows are immutable once
// written; the whole set is replaced on save and deleted on clear.
type QuizHistoryItem struct {
	ent.Schema
}

func (QuizHistoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("item_id").
			Unique().
			Immutable().
			Comment("Time-based identifier (Unix milliseconds at completion)"),
		field.String("exam").
			NotEmpty().
			Comment("JEE or NEET"),
		field.String("subject").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("Boards, Mains, or Advanced"),
		field.String("merge_topic").
			Default("").
			Comment("Optional secondary topic"),
		field.Int("score"),
		field.Int("total_questions"),
		field.Int("percentage").
			Comment("Rounded score percentage in [0,100]"),
		field.Time("date").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizHistoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("date"),
	}
}
