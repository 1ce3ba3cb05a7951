// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
)

// QuizHistoryItemCreate is the builder for creating a QuizHistoryItem entity.
type QuizHistoryItemCreate struct {
	config
	mutation *QuizHistoryItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *QuizHistoryItemCreate) SetItemID(v int64) *QuizHistoryItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetExam sets the "exam" field.
func (_c *QuizHistoryItemCreate) SetExam(v string) *QuizHistoryItemCreate {
	_c.mutation.SetExam(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuizHistoryItemCreate) SetSubject(v string) *QuizHistoryItemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizHistoryItemCreate) SetTopic(v string) *QuizHistoryItemCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *QuizHistoryItemCreate) SetLevel(v string) *QuizHistoryItemCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetMergeTopic sets the "merge_topic" field.
func (_c *QuizHistoryItemCreate) SetMergeTopic(v string) *QuizHistoryItemCreate {
	_c.mutation.SetMergeTopic(v)
	return _c
}

// SetNillableMergeTopic sets the "merge_topic" field if the given value is not nil.
func (_c *QuizHistoryItemCreate) SetNillableMergeTopic(v *string) *QuizHistoryItemCreate {
	if v != nil {
		_c.SetMergeTopic(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizHistoryItemCreate) SetScore(v int) *QuizHistoryItemCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizHistoryItemCreate) SetTotalQuestions(v int) *QuizHistoryItemCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *QuizHistoryItemCreate) SetPercentage(v int) *QuizHistoryItemCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *QuizHistoryItemCreate) SetDate(v time.Time) *QuizHistoryItemCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *QuizHistoryItemCreate) SetNillableDate(v *time.Time) *QuizHistoryItemCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// Mutation returns the QuizHistoryItemMutation object of the builder.
func (_c *QuizHistoryItemCreate) Mutation() *QuizHistoryItemMutation {
	return _c.mutation
}

// Save creates the QuizHistoryItem in the database.
func (_c *QuizHistoryItemCreate) Save(ctx context.Context) (*QuizHistoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizHistoryItemCreate) SaveX(ctx context.Context) *QuizHistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizHistoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizHistoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizHistoryItemCreate) defaults() {
	if _, ok := _c.mutation.MergeTopic(); !ok {
		v := quizhistoryitem.DefaultMergeTopic
		_c.mutation.SetMergeTopic(v)
	}
	if _, ok := _c.mutation.Date(); !ok {
		v := quizhistoryitem.DefaultDate()
		_c.mutation.SetDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizHistoryItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "QuizHistoryItem.item_id"`)}
	}
	if _, ok := _c.mutation.Exam(); !ok {
		return &ValidationError{Name: "exam", err: errors.New(`ent: missing required field "QuizHistoryItem.exam"`)}
	}
	if v, ok := _c.mutation.Exam(); ok {
		if err := quizhistoryitem.ExamValidator(v); err != nil {
			return &ValidationError{Name: "exam", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.exam": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "QuizHistoryItem.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := quizhistoryitem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizHistoryItem.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizhistoryitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "QuizHistoryItem.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := quizhistoryitem.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "QuizHistoryItem.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MergeTopic(); !ok {
		return &ValidationError{Name: "merge_topic", err: errors.New(`ent: missing required field "QuizHistoryItem.merge_topic"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizHistoryItem.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizHistoryItem.total_questions"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "QuizHistoryItem.percentage"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "QuizHistoryItem.date"`)}
	}
	return nil
}

func (_c *QuizHistoryItemCreate) sqlSave(ctx context.Context) (*QuizHistoryItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizHistoryItemCreate) createSpec() (*QuizHistoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizHistoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizhistoryitem.Table, sqlgraph.NewFieldSpec(quizhistoryitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(quizhistoryitem.FieldItemID, field.TypeInt64, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Exam(); ok {
		_spec.SetField(quizhistoryitem.FieldExam, field.TypeString, value)
		_node.Exam = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(quizhistoryitem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizhistoryitem.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(quizhistoryitem.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.MergeTopic(); ok {
		_spec.SetField(quizhistoryitem.FieldMergeTopic, field.TypeString, value)
		_node.MergeTopic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizhistoryitem.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizhistoryitem.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(quizhistoryitem.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(quizhistoryitem.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	return _node, _spec
}

// QuizHistoryItemCreateBulk is the builder for creating many QuizHistoryItem entities in bulk.
type QuizHistoryItemCreateBulk struct {
	config
	err      error
	builders []*QuizHistoryItemCreate
}

// Save creates the QuizHistoryItem entities in the database.
func (_c *QuizHistoryItemCreateBulk) Save(ctx context.Context) ([]*QuizHistoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizHistoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizHistoryItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizHistoryItemCreateBulk) SaveX(ctx context.Context) []*QuizHistoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizHistoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizHistoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
