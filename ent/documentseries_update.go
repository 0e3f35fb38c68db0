// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/predicate"
	"github.com/docfold/docfold/ent/series"
)

// DocumentSeriesUpdate is the builder for updating DocumentSeries entities.
type DocumentSeriesUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentSeriesMutation
}

// Where appends a list predicates to the DocumentSeriesUpdate builder.
func (_u *DocumentSeriesUpdate) Where(ps ...predicate.DocumentSeries) *DocumentSeriesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentSeriesUpdate) SetDocumentID(v string) *DocumentSeriesUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentSeriesUpdate) SetNillableDocumentID(v *string) *DocumentSeriesUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSeriesID sets the "series_id" field.
func (_u *DocumentSeriesUpdate) SetSeriesID(v string) *DocumentSeriesUpdate {
	_u.mutation.SetSeriesID(v)
	return _u
}

// SetNillableSeriesID sets the "series_id" field if the given value is not nil.
func (_u *DocumentSeriesUpdate) SetNillableSeriesID(v *string) *DocumentSeriesUpdate {
	if v != nil {
		_u.SetSeriesID(*v)
	}
	return _u
}

// SetAddedBy sets the "added_by" field.
func (_u *DocumentSeriesUpdate) SetAddedBy(v string) *DocumentSeriesUpdate {
	_u.mutation.SetAddedBy(v)
	return _u
}

// SetNillableAddedBy sets the "added_by" field if the given value is not nil.
func (_u *DocumentSeriesUpdate) SetNillableAddedBy(v *string) *DocumentSeriesUpdate {
	if v != nil {
		_u.SetAddedBy(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentSeriesUpdate) SetDocument(v *Document) *DocumentSeriesUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetSeries sets the "series" edge to the Series entity.
func (_u *DocumentSeriesUpdate) SetSeries(v *Series) *DocumentSeriesUpdate {
	return _u.SetSeriesID(v.ID)
}

// Mutation returns the DocumentSeriesMutation object of the builder.
func (_u *DocumentSeriesUpdate) Mutation() *DocumentSeriesMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentSeriesUpdate) ClearDocument() *DocumentSeriesUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSeries clears the "series" edge to the Series entity.
func (_u *DocumentSeriesUpdate) ClearSeries() *DocumentSeriesUpdate {
	_u.mutation.ClearSeries()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentSeriesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentSeriesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentSeriesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentSeriesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentSeriesUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentSeries.document"`)
	}
	if _u.mutation.SeriesCleared() && len(_u.mutation.SeriesIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentSeries.series"`)
	}
	return nil
}

func (_u *DocumentSeriesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentseries.Table, documentseries.Columns, sqlgraph.NewFieldSpec(documentseries.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AddedBy(); ok {
		_spec.SetField(documentseries.FieldAddedBy, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.DocumentTable,
			Columns: []string{documentseries.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.DocumentTable,
			Columns: []string{documentseries.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SeriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.SeriesTable,
			Columns: []string{documentseries.SeriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(series.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SeriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.SeriesTable,
			Columns: []string{documentseries.SeriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(series.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentSeriesUpdateOne is the builder for updating a single DocumentSeries entity.
type DocumentSeriesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentSeriesMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentSeriesUpdateOne) SetDocumentID(v string) *DocumentSeriesUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentSeriesUpdateOne) SetNillableDocumentID(v *string) *DocumentSeriesUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSeriesID sets the "series_id" field.
func (_u *DocumentSeriesUpdateOne) SetSeriesID(v string) *DocumentSeriesUpdateOne {
	_u.mutation.SetSeriesID(v)
	return _u
}

// SetNillableSeriesID sets the "series_id" field if the given value is not nil.
func (_u *DocumentSeriesUpdateOne) SetNillableSeriesID(v *string) *DocumentSeriesUpdateOne {
	if v != nil {
		_u.SetSeriesID(*v)
	}
	return _u
}

// SetAddedBy sets the "added_by" field.
func (_u *DocumentSeriesUpdateOne) SetAddedBy(v string) *DocumentSeriesUpdateOne {
	_u.mutation.SetAddedBy(v)
	return _u
}

// SetNillableAddedBy sets the "added_by" field if the given value is not nil.
func (_u *DocumentSeriesUpdateOne) SetNillableAddedBy(v *string) *DocumentSeriesUpdateOne {
	if v != nil {
		_u.SetAddedBy(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentSeriesUpdateOne) SetDocument(v *Document) *DocumentSeriesUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetSeries sets the "series" edge to the Series entity.
func (_u *DocumentSeriesUpdateOne) SetSeries(v *Series) *DocumentSeriesUpdateOne {
	return _u.SetSeriesID(v.ID)
}

// Mutation returns the DocumentSeriesMutation object of the builder.
func (_u *DocumentSeriesUpdateOne) Mutation() *DocumentSeriesMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentSeriesUpdateOne) ClearDocument() *DocumentSeriesUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearSeries clears the "series" edge to the Series entity.
func (_u *DocumentSeriesUpdateOne) ClearSeries() *DocumentSeriesUpdateOne {
	_u.mutation.ClearSeries()
	return _u
}

// Where appends a list predicates to the DocumentSeriesUpdate builder.
func (_u *DocumentSeriesUpdateOne) Where(ps ...predicate.DocumentSeries) *DocumentSeriesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentSeriesUpdateOne) Select(field string, fields ...string) *DocumentSeriesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentSeries entity.
func (_u *DocumentSeriesUpdateOne) Save(ctx context.Context) (*DocumentSeries, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentSeriesUpdateOne) SaveX(ctx context.Context) *DocumentSeries {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentSeriesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentSeriesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentSeriesUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentSeries.document"`)
	}
	if _u.mutation.SeriesCleared() && len(_u.mutation.SeriesIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentSeries.series"`)
	}
	return nil
}

func (_u *DocumentSeriesUpdateOne) sqlSave(ctx context.Context) (_node *DocumentSeries, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentseries.Table, documentseries.Columns, sqlgraph.NewFieldSpec(documentseries.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentSeries.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentseries.FieldID)
		for _, f := range fields {
			if !documentseries.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentseries.FieldID {
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
	if value, ok := _u.mutation.AddedBy(); ok {
		_spec.SetField(documentseries.FieldAddedBy, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.DocumentTable,
			Columns: []string{documentseries.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.DocumentTable,
			Columns: []string{documentseries.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SeriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.SeriesTable,
			Columns: []string{documentseries.SeriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(series.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SeriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documentseries.SeriesTable,
			Columns: []string{documentseries.SeriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(series.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentSeries{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentseries.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
