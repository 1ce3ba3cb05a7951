// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ityord/aistudy/ent/predicate"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
)

// QuizHistoryItemDelete is the builder for deleting a QuizHistoryItem entity.
type QuizHistoryItemDelete struct {
	config
	hooks    []Hook
	mutation *QuizHistoryItemMutation
}

// Where appends a list predicates to the QuizHistoryItemDelete builder.
func (_d *QuizHistoryItemDelete) Where(ps ...predicate.QuizHistoryItem) *QuizHistoryItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuizHistoryItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizHistoryItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuizHistoryItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizhistoryitem.Table, sqlgraph.NewFieldSpec(quizhistoryitem.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuizHistoryItemDeleteOne is the builder for deleting a single QuizHistoryItem entity.
type QuizHistoryItemDeleteOne struct {
	_d *QuizHistoryItemDelete
}

// Where appends a list predicates to the QuizHistoryItemDelete builder.
func (_d *QuizHistoryItemDeleteOne) Where(ps ...predicate.QuizHistoryItem) *QuizHistoryItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuizHistoryItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizhistoryitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizHistoryItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
