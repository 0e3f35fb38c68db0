// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/series"
)

// DocumentSeriesCreate is the builder for creating a DocumentSeries entity.
type DocumentSeriesCreate struct {
	config
	mutation *DocumentSeriesMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentSeriesCreate) SetDocumentID(v string) *DocumentSeriesCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSeriesID sets the "series_id" field.
func (_c *DocumentSeriesCreate) SetSeriesID(v string) *DocumentSeriesCreate {
	_c.mutation.SetSeriesID(v)
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *DocumentSeriesCreate) SetAddedAt(v time.Time) *DocumentSeriesCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *DocumentSeriesCreate) SetNillableAddedAt(v *time.Time) *DocumentSeriesCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetAddedBy sets the "added_by" field.
func (_c *DocumentSeriesCreate) SetAddedBy(v string) *DocumentSeriesCreate {
	_c.mutation.SetAddedBy(v)
	return _c
}

// SetNillableAddedBy sets the "added_by" field if the given value is not nil.
func (_c *DocumentSeriesCreate) SetNillableAddedBy(v *string) *DocumentSeriesCreate {
	if v != nil {
		_c.SetAddedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentSeriesCreate) SetID(v string) *DocumentSeriesCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentSeriesCreate) SetDocument(v *Document) *DocumentSeriesCreate {
	return _c.SetDocumentID(v.ID)
}

// SetSeries sets the "series" edge to the Series entity.
func (_c *DocumentSeriesCreate) SetSeries(v *Series) *DocumentSeriesCreate {
	return _c.SetSeriesID(v.ID)
}

// Mutation returns the DocumentSeriesMutation object of the builder.
func (_c *DocumentSeriesCreate) Mutation() *DocumentSeriesMutation {
	return _c.mutation
}

// Save creates the DocumentSeries in the database.
func (_c *DocumentSeriesCreate) Save(ctx context.Context) (*DocumentSeries, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentSeriesCreate) SaveX(ctx context.Context) *DocumentSeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentSeriesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentSeriesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentSeriesCreate) defaults() {
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := documentseries.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
	if _, ok := _c.mutation.AddedBy(); !ok {
		v := documentseries.DefaultAddedBy
		_c.mutation.SetAddedBy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentSeriesCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentSeries.document_id"`)}
	}
	if _, ok := _c.mutation.SeriesID(); !ok {
		return &ValidationError{Name: "series_id", err: errors.New(`ent: missing required field "DocumentSeries.series_id"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "DocumentSeries.added_at"`)}
	}
	if _, ok := _c.mutation.AddedBy(); !ok {
		return &ValidationError{Name: "added_by", err: errors.New(`ent: missing required field "DocumentSeries.added_by"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentSeries.document"`)}
	}
	if len(_c.mutation.SeriesIDs()) == 0 {
		return &ValidationError{Name: "series", err: errors.New(`ent: missing required edge "DocumentSeries.series"`)}
	}
	return nil
}

func (_c *DocumentSeriesCreate) sqlSave(ctx context.Context) (*DocumentSeries, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DocumentSeries.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentSeriesCreate) createSpec() (*DocumentSeries, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentSeries{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentseries.Table, sqlgraph.NewFieldSpec(documentseries.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(documentseries.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if value, ok := _c.mutation.AddedBy(); ok {
		_spec.SetField(documentseries.FieldAddedBy, field.TypeString, value)
		_node.AddedBy = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SeriesIDs(); len(nodes) > 0 {
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
		_node.SeriesID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentSeriesCreateBulk is the builder for creating many DocumentSeries entities in bulk.
type DocumentSeriesCreateBulk struct {
	config
	err      error
	builders []*DocumentSeriesCreate
}

// Save creates the DocumentSeries entities in the database.
func (_c *DocumentSeriesCreateBulk) Save(ctx context.Context) ([]*DocumentSeries, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentSeries, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentSeriesMutation)
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
func (_c *DocumentSeriesCreateBulk) SaveX(ctx context.Context) []*DocumentSeries {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentSeriesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentSeriesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
