// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ityord/aistudy/ent/predicate"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
)

// QuizHistoryItemUpdate is the builder for updating QuizHistoryItem entities.
type QuizHistoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *QuizHistoryItemMutation
}

// Where appends a list predicates to the QuizHistoryItemUpdate builder.
func (_u *QuizHistoryItemUpdate) Where(ps ...predicate.QuizHistoryItem) *QuizHistoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExam sets the "exam" field.
func (_u *QuizHistoryItemUpdate) SetExam(v string) *QuizHistoryItemUpdate {
	_u.mutation.SetExam(v)
	return _u
}

// SetNillableExam sets the "exam" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableExam(v *string) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetExam(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizHistoryItemUpdate) SetSubject(v string) *QuizHistoryItemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableSubject(v *string) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizHistoryItemUpdate) SetTopic(v string) *QuizHistoryItemUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableTopic(v *string) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizHistoryItemUpdate) SetLevel(v string) *QuizHistoryItemUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableLevel(v *string) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMergeTopic sets the "merge_topic" field.
func (_u *QuizHistoryItemUpdate) SetMergeTopic(v string) *QuizHistoryItemUpdate {
	_u.mutation.SetMergeTopic(v)
	return _u
}

// SetNillableMergeTopic sets the "merge_topic" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableMergeTopic(v *string) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetMergeTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizHistoryItemUpdate) SetScore(v int) *QuizHistoryItemUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableScore(v *int) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizHistoryItemUpdate) AddScore(v int) *QuizHistoryItemUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizHistoryItemUpdate) SetTotalQuestions(v int) *QuizHistoryItemUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillableTotalQuestions(v *int) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizHistoryItemUpdate) AddTotalQuestions(v int) *QuizHistoryItemUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizHistoryItemUpdate) SetPercentage(v int) *QuizHistoryItemUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizHistoryItemUpdate) SetNillablePercentage(v *int) *QuizHistoryItemUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizHistoryItemUpdate) AddPercentage(v int) *QuizHistoryItemUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// Mutation returns the QuizHistoryItemMutation object of the builder.
func (_u *QuizHistoryItemUpdate) Mutation() *QuizHistoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizHistoryItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizHistoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizHistoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizHistoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizHistoryItemUpdate) check() error {
	if v, ok := _u.mutation.Exam(); ok {
		if err := quizhistoryitem.ExamValidator(v); err != nil {
			return &ValidationError{Name: "exam", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.exam": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizhistoryitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizhistoryitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizhistoryitem.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizHistoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizhistoryitem.Table, quizhistoryitem.Columns, sqlgraph.NewFieldSpec(quizhistoryitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Exam(); ok {
		_spec.SetField(quizhistoryitem.FieldExam, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizhistoryitem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizhistoryitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizhistoryitem.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MergeTopic(); ok {
		_spec.SetField(quizhistoryitem.FieldMergeTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizhistoryitem.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizhistoryitem.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizhistoryitem.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizhistoryitem.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizhistoryitem.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizhistoryitem.FieldPercentage, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizhistoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizHistoryItemUpdateOne is the builder for updating a single QuizHistoryItem entity.
type QuizHistoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizHistoryItemMutation
}

// SetExam sets the "exam" field.
func (_u *QuizHistoryItemUpdateOne) SetExam(v string) *QuizHistoryItemUpdateOne {
	_u.mutation.SetExam(v)
	return _u
}

// SetNillableExam sets the "exam" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableExam(v *string) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetExam(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizHistoryItemUpdateOne) SetSubject(v string) *QuizHistoryItemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableSubject(v *string) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizHistoryItemUpdateOne) SetTopic(v string) *QuizHistoryItemUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableTopic(v *string) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *QuizHistoryItemUpdateOne) SetLevel(v string) *QuizHistoryItemUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableLevel(v *string) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetMergeTopic sets the "merge_topic" field.
func (_u *QuizHistoryItemUpdateOne) SetMergeTopic(v string) *QuizHistoryItemUpdateOne {
	_u.mutation.SetMergeTopic(v)
	return _u
}

// SetNillableMergeTopic sets the "merge_topic" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableMergeTopic(v *string) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetMergeTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizHistoryItemUpdateOne) SetScore(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableScore(v *int) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizHistoryItemUpdateOne) AddScore(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizHistoryItemUpdateOne) SetTotalQuestions(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillableTotalQuestions(v *int) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizHistoryItemUpdateOne) AddTotalQuestions(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizHistoryItemUpdateOne) SetPercentage(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizHistoryItemUpdateOne) SetNillablePercentage(v *int) *QuizHistoryItemUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizHistoryItemUpdateOne) AddPercentage(v int) *QuizHistoryItemUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// Mutation returns the QuizHistoryItemMutation object of the builder.
func (_u *QuizHistoryItemUpdateOne) Mutation() *QuizHistoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizHistoryItemUpdate builder.
func (_u *QuizHistoryItemUpdateOne) Where(ps ...predicate.QuizHistoryItem) *QuizHistoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizHistoryItemUpdateOne) Select(field string, fields ...string) *QuizHistoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizHistoryItem entity.
func (_u *QuizHistoryItemUpdateOne) Save(ctx context.Context) (*QuizHistoryItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizHistoryItemUpdateOne) SaveX(ctx context.Context) *QuizHistoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizHistoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizHistoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizHistoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Exam(); ok {
		if err := quizhistoryitem.ExamValidator(v); err != nil {
			return &ValidationError{Name: "exam", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.exam": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizhistoryitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizhistoryitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := quizhistoryitem.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizHistoryItemUpdateOne) sqlSave(ctx context.Context) (_node *QuizHistoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizhistoryitem.Table, quizhistoryitem.Columns, sqlgraph.NewFieldSpec(quizhistoryitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizHistoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizhistoryitem.FieldID)
		for _, f := range fields {
			if !quizhistoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizhistoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Exam(); ok {
		_spec.SetField(quizhistoryitem.FieldExam, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizhistoryitem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizhistoryitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(quizhistoryitem.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MergeTopic(); ok {
		_spec.SetField(quizhistoryitem.FieldMergeTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizhistoryitem.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizhistoryitem.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizhistoryitem.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizhistoryitem.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizhistoryitem.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizhistoryitem.FieldPercentage, field.TypeInt, value)
	}
	_node = &QuizHistoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizhistoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
