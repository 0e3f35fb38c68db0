// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/series"
)

// SeriesCreate is the builder for creating a Series entity.
type SeriesCreate struct {
	config
	mutation *SeriesMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *SeriesCreate) SetTitle(v string) *SeriesCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetEntity sets the "entity" field.
func (_c *SeriesCreate) SetEntity(v string) *SeriesCreate {
	_c.mutation.SetEntity(v)
	return _c
}

// SetSeriesType sets the "series_type" field.
func (_c *SeriesCreate) SetSeriesType(v string) *SeriesCreate {
	_c.mutation.SetSeriesType(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *SeriesCreate) SetFrequency(v string) *SeriesCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableFrequency(v *string) *SeriesCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SeriesCreate) SetDescription(v string) *SeriesCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableDescription(v *string) *SeriesCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SeriesCreate) SetMetadata(v map[string]interface{}) *SeriesCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *SeriesCreate) SetOwner(v string) *SeriesCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableOwner(v *string) *SeriesCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetFirstDocumentDate sets the "first_document_date" field.
func (_c *SeriesCreate) SetFirstDocumentDate(v time.Time) *SeriesCreate {
	_c.mutation.SetFirstDocumentDate(v)
	return _c
}

// SetNillableFirstDocumentDate sets the "first_document_date" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableFirstDocumentDate(v *time.Time) *SeriesCreate {
	if v != nil {
		_c.SetFirstDocumentDate(*v)
	}
	return _c
}

// SetLastDocumentDate sets the "last_document_date" field.
func (_c *SeriesCreate) SetLastDocumentDate(v time.Time) *SeriesCreate {
	_c.mutation.SetLastDocumentDate(v)
	return _c
}

// SetNillableLastDocumentDate sets the "last_document_date" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableLastDocumentDate(v *time.Time) *SeriesCreate {
	if v != nil {
		_c.SetLastDocumentDate(*v)
	}
	return _c
}

// SetDocumentCount sets the "document_count" field.
func (_c *SeriesCreate) SetDocumentCount(v int) *SeriesCreate {
	_c.mutation.SetDocumentCount(v)
	return _c
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableDocumentCount(v *int) *SeriesCreate {
	if v != nil {
		_c.SetDocumentCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SeriesCreate) SetStatus(v series.Status) *SeriesCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableStatus(v *series.Status) *SeriesCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *SeriesCreate) SetSource(v series.Source) *SeriesCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableSource(v *series.Source) *SeriesCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SeriesCreate) SetCreatedAt(v time.Time) *SeriesCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableCreatedAt(v *time.Time) *SeriesCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SeriesCreate) SetUpdatedAt(v time.Time) *SeriesCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SeriesCreate) SetNillableUpdatedAt(v *time.Time) *SeriesCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SeriesCreate) SetID(v string) *SeriesCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by IDs.
func (_c *SeriesCreate) AddDocumentSeriesIDs(ids ...string) *SeriesCreate {
	_c.mutation.AddDocumentSeriesIDs(ids...)
	return _c
}

// AddDocumentSeries adds the "document_series" edges to the DocumentSeries entity.
func (_c *SeriesCreate) AddDocumentSeries(v ...*DocumentSeries) *SeriesCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentSeriesIDs(ids...)
}

// Mutation returns the SeriesMutation object of the builder.
func (_c *SeriesCreate) Mutation() *SeriesMutation {
	return _c.mutation
}

// Save creates the Series in the database.
func (_c *SeriesCreate) Save(ctx context.Context) (*Series, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SeriesCreate) SaveX(ctx context.Context) *Series {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeriesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeriesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SeriesCreate) defaults() {
	if _, ok := _c.mutation.Frequency(); !ok {
		v := series.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.Owner(); !ok {
		v := series.DefaultOwner
		_c.mutation.SetOwner(v)
	}
	if _, ok := _c.mutation.DocumentCount(); !ok {
		v := series.DefaultDocumentCount
		_c.mutation.SetDocumentCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := series.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := series.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := series.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := series.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SeriesCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Series.title"`)}
	}
	if _, ok := _c.mutation.Entity(); !ok {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required field "Series.entity"`)}
	}
	if _, ok := _c.mutation.SeriesType(); !ok {
		return &ValidationError{Name: "series_type", err: errors.New(`ent: missing required field "Series.series_type"`)}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "Series.frequency"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "Series.owner"`)}
	}
	if _, ok := _c.mutation.DocumentCount(); !ok {
		return &ValidationError{Name: "document_count", err: errors.New(`ent: missing required field "Series.document_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Series.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := series.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Series.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Series.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := series.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Series.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Series.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Series.updated_at"`)}
	}
	return nil
}

func (_c *SeriesCreate) sqlSave(ctx context.Context) (*Series, error) {
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
			return nil, fmt.Errorf("unexpected Series.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SeriesCreate) createSpec() (*Series, *sqlgraph.CreateSpec) {
	var (
		_node = &Series{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(series.Table, sqlgraph.NewFieldSpec(series.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(series.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Entity(); ok {
		_spec.SetField(series.FieldEntity, field.TypeString, value)
		_node.Entity = value
	}
	if value, ok := _c.mutation.SeriesType(); ok {
		_spec.SetField(series.FieldSeriesType, field.TypeString, value)
		_node.SeriesType = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(series.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(series.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(series.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(series.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.FirstDocumentDate(); ok {
		_spec.SetField(series.FieldFirstDocumentDate, field.TypeTime, value)
		_node.FirstDocumentDate = &value
	}
	if value, ok := _c.mutation.LastDocumentDate(); ok {
		_spec.SetField(series.FieldLastDocumentDate, field.TypeTime, value)
		_node.LastDocumentDate = &value
	}
	if value, ok := _c.mutation.DocumentCount(); ok {
		_spec.SetField(series.FieldDocumentCount, field.TypeInt, value)
		_node.DocumentCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(series.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(series.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(series.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(series.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentSeriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   series.DocumentSeriesTable,
			Columns: []string{series.DocumentSeriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentseries.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SeriesCreateBulk is the builder for creating many Series entities in bulk.
type SeriesCreateBulk struct {
	config
	err      error
	builders []*SeriesCreate
}

// Save creates the Series entities in the database.
func (_c *SeriesCreateBulk) Save(ctx context.Context) ([]*Series, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Series, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeriesMutation)
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
func (_c *SeriesCreateBulk) SaveX(ctx context.Context) []*Series {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SeriesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SeriesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
