// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/predicate"
)

// DocumentSeriesDelete is the builder for deleting a DocumentSeries entity.
type DocumentSeriesDelete struct {
	config
	hooks    []Hook
	mutation *DocumentSeriesMutation
}

// Where appends a list predicates to the DocumentSeriesDelete builder.
func (_d *DocumentSeriesDelete) Where(ps ...predicate.DocumentSeries) *DocumentSeriesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentSeriesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentSeriesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentSeriesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentseries.Table, sqlgraph.NewFieldSpec(documentseries.FieldID, field.TypeString))
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

// DocumentSeriesDeleteOne is the builder for deleting a single DocumentSeries entity.
type DocumentSeriesDeleteOne struct {
	_d *DocumentSeriesDelete
}

// Where appends a list predicates to the DocumentSeriesDelete builder.
func (_d *DocumentSeriesDeleteOne) Where(ps ...predicate.DocumentSeries) *DocumentSeriesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentSeriesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentseries.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentSeriesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
