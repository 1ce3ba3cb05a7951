// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
)

// QuizHistoryItem is the model entity for the QuizHistoryItem schema.
type QuizHistoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Time-based identifier (Unix milliseconds at completion)
	ItemID int64 `json:"item_id,omitempty"`
	// JEE or NEET
	Exam string `json:"exam,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Boards, Mains, or Advanced
	Level string `json:"level,omitempty"`
	// Optional secondary topic
	MergeTopic string `json:"merge_topic,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Rounded score percentage in [0,100]
	Percentage int `json:"percentage,omitempty"`
	// Date holds the value of the "date" field.
	Date         time.Time `json:"date,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizHistoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizhistoryitem.FieldID, quizhistoryitem.FieldItemID, quizhistoryitem.FieldScore, quizhistoryitem.FieldTotalQuestions, quizhistoryitem.FieldPercentage:
			values[i] = new(sql.NullInt64)
		case quizhistoryitem.FieldExam, quizhistoryitem.FieldSubject, quizhistoryitem.FieldTopic, quizhistoryitem.FieldLevel, quizhistoryitem.FieldMergeTopic:
			values[i] = new(sql.NullString)
		case quizhistoryitem.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizHistoryItem fields.
func (_m *QuizHistoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizhistoryitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizhistoryitem.FieldItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.Int64
			}
		case quizhistoryitem.FieldExam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam", values[i])
			} else if value.Valid {
				_m.Exam = value.String
			}
		case quizhistoryitem.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case quizhistoryitem.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case quizhistoryitem.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case quizhistoryitem.FieldMergeTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merge_topic", values[i])
			} else if value.Valid {
				_m.MergeTopic = value.String
			}
		case quizhistoryitem.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case quizhistoryitem.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case quizhistoryitem.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case quizhistoryitem.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizHistoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *QuizHistoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizHistoryItem.
// Note that you need to call QuizHistoryItem.Unwrap() before calling this method if this QuizHistoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizHistoryItem) Update() *QuizHistoryItemUpdateOne {
	return NewQuizHistoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizHistoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizHistoryItem) Unwrap() *QuizHistoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizHistoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizHistoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("QuizHistoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemID))
	builder.WriteString(", ")
	builder.WriteString("exam=")
	builder.WriteString(_m.Exam)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("merge_topic=")
	builder.WriteString(_m.MergeTopic)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizHistoryItems is a parsable slice of QuizHistoryItem.
type QuizHistoryItems []*QuizHistoryItem
