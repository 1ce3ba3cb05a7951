// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizHistoryItem is the predicate function for quizhistoryitem builders.
type QuizHistoryItem func(*sql.Selector)
