// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/predicate"
	"github.com/docfold/docfold/ent/series"
)

// SeriesUpdate is the builder for updating Series entities.
type SeriesUpdate struct {
	config
	hooks    []Hook
	mutation *SeriesMutation
}

// Where appends a list predicates to the SeriesUpdate builder.
func (_u *SeriesUpdate) Where(ps ...predicate.Series) *SeriesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SeriesUpdate) SetTitle(v string) *SeriesUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableTitle(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetEntity sets the "entity" field.
func (_u *SeriesUpdate) SetEntity(v string) *SeriesUpdate {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableEntity(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetSeriesType sets the "series_type" field.
func (_u *SeriesUpdate) SetSeriesType(v string) *SeriesUpdate {
	_u.mutation.SetSeriesType(v)
	return _u
}

// SetNillableSeriesType sets the "series_type" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableSeriesType(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetSeriesType(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *SeriesUpdate) SetFrequency(v string) *SeriesUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableFrequency(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SeriesUpdate) SetDescription(v string) *SeriesUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableDescription(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SeriesUpdate) ClearDescription() *SeriesUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SeriesUpdate) SetMetadata(v map[string]interface{}) *SeriesUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SeriesUpdate) ClearMetadata() *SeriesUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SeriesUpdate) SetOwner(v string) *SeriesUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableOwner(v *string) *SeriesUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetFirstDocumentDate sets the "first_document_date" field.
func (_u *SeriesUpdate) SetFirstDocumentDate(v time.Time) *SeriesUpdate {
	_u.mutation.SetFirstDocumentDate(v)
	return _u
}

// SetNillableFirstDocumentDate sets the "first_document_date" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableFirstDocumentDate(v *time.Time) *SeriesUpdate {
	if v != nil {
		_u.SetFirstDocumentDate(*v)
	}
	return _u
}

// ClearFirstDocumentDate clears the value of the "first_document_date" field.
func (_u *SeriesUpdate) ClearFirstDocumentDate() *SeriesUpdate {
	_u.mutation.ClearFirstDocumentDate()
	return _u
}

// SetLastDocumentDate sets the "last_document_date" field.
func (_u *SeriesUpdate) SetLastDocumentDate(v time.Time) *SeriesUpdate {
	_u.mutation.SetLastDocumentDate(v)
	return _u
}

// SetNillableLastDocumentDate sets the "last_document_date" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableLastDocumentDate(v *time.Time) *SeriesUpdate {
	if v != nil {
		_u.SetLastDocumentDate(*v)
	}
	return _u
}

// ClearLastDocumentDate clears the value of the "last_document_date" field.
func (_u *SeriesUpdate) ClearLastDocumentDate() *SeriesUpdate {
	_u.mutation.ClearLastDocumentDate()
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SeriesUpdate) SetDocumentCount(v int) *SeriesUpdate {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableDocumentCount(v *int) *SeriesUpdate {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SeriesUpdate) AddDocumentCount(v int) *SeriesUpdate {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SeriesUpdate) SetStatus(v series.Status) *SeriesUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableStatus(v *series.Status) *SeriesUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SeriesUpdate) SetSource(v series.Source) *SeriesUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SeriesUpdate) SetNillableSource(v *series.Source) *SeriesUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeriesUpdate) SetUpdatedAt(v time.Time) *SeriesUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by IDs.
func (_u *SeriesUpdate) AddDocumentSeriesIDs(ids ...string) *SeriesUpdate {
	_u.mutation.AddDocumentSeriesIDs(ids...)
	return _u
}

// AddDocumentSeries adds the "document_series" edges to the DocumentSeries entity.
func (_u *SeriesUpdate) AddDocumentSeries(v ...*DocumentSeries) *SeriesUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentSeriesIDs(ids...)
}

// Mutation returns the SeriesMutation object of the builder.
func (_u *SeriesUpdate) Mutation() *SeriesMutation {
	return _u.mutation
}

// ClearDocumentSeries clears all "document_series" edges to the DocumentSeries entity.
func (_u *SeriesUpdate) ClearDocumentSeries() *SeriesUpdate {
	_u.mutation.ClearDocumentSeries()
	return _u
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to DocumentSeries entities by IDs.
func (_u *SeriesUpdate) RemoveDocumentSeriesIDs(ids ...string) *SeriesUpdate {
	_u.mutation.RemoveDocumentSeriesIDs(ids...)
	return _u
}

// RemoveDocumentSeries removes "document_series" edges to DocumentSeries entities.
func (_u *SeriesUpdate) RemoveDocumentSeries(v ...*DocumentSeries) *SeriesUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentSeriesIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SeriesUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeriesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SeriesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeriesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeriesUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := series.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SeriesUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := series.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Series.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := series.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Series.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SeriesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(series.Table, series.Columns, sqlgraph.NewFieldSpec(series.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(series.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(series.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeriesType(); ok {
		_spec.SetField(series.FieldSeriesType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(series.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(series.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(series.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(series.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(series.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(series.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstDocumentDate(); ok {
		_spec.SetField(series.FieldFirstDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.FirstDocumentDateCleared() {
		_spec.ClearField(series.FieldFirstDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDocumentDate(); ok {
		_spec.SetField(series.FieldLastDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.LastDocumentDateCleared() {
		_spec.ClearField(series.FieldLastDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(series.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(series.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(series.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(series.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(series.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentSeriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentSeriesIDs(); len(nodes) > 0 && !_u.mutation.DocumentSeriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentSeriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{series.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SeriesUpdateOne is the builder for updating a single Series entity.
type SeriesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SeriesMutation
}

// SetTitle sets the "title" field.
func (_u *SeriesUpdateOne) SetTitle(v string) *SeriesUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableTitle(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetEntity sets the "entity" field.
func (_u *SeriesUpdateOne) SetEntity(v string) *SeriesUpdateOne {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableEntity(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetSeriesType sets the "series_type" field.
func (_u *SeriesUpdateOne) SetSeriesType(v string) *SeriesUpdateOne {
	_u.mutation.SetSeriesType(v)
	return _u
}

// SetNillableSeriesType sets the "series_type" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableSeriesType(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetSeriesType(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *SeriesUpdateOne) SetFrequency(v string) *SeriesUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableFrequency(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SeriesUpdateOne) SetDescription(v string) *SeriesUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableDescription(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SeriesUpdateOne) ClearDescription() *SeriesUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SeriesUpdateOne) SetMetadata(v map[string]interface{}) *SeriesUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SeriesUpdateOne) ClearMetadata() *SeriesUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SeriesUpdateOne) SetOwner(v string) *SeriesUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableOwner(v *string) *SeriesUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetFirstDocumentDate sets the "first_document_date" field.
func (_u *SeriesUpdateOne) SetFirstDocumentDate(v time.Time) *SeriesUpdateOne {
	_u.mutation.SetFirstDocumentDate(v)
	return _u
}

// SetNillableFirstDocumentDate sets the "first_document_date" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableFirstDocumentDate(v *time.Time) *SeriesUpdateOne {
	if v != nil {
		_u.SetFirstDocumentDate(*v)
	}
	return _u
}

// ClearFirstDocumentDate clears the value of the "first_document_date" field.
func (_u *SeriesUpdateOne) ClearFirstDocumentDate() *SeriesUpdateOne {
	_u.mutation.ClearFirstDocumentDate()
	return _u
}

// SetLastDocumentDate sets the "last_document_date" field.
func (_u *SeriesUpdateOne) SetLastDocumentDate(v time.Time) *SeriesUpdateOne {
	_u.mutation.SetLastDocumentDate(v)
	return _u
}

// SetNillableLastDocumentDate sets the "last_document_date" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableLastDocumentDate(v *time.Time) *SeriesUpdateOne {
	if v != nil {
		_u.SetLastDocumentDate(*v)
	}
	return _u
}

// ClearLastDocumentDate clears the value of the "last_document_date" field.
func (_u *SeriesUpdateOne) ClearLastDocumentDate() *SeriesUpdateOne {
	_u.mutation.ClearLastDocumentDate()
	return _u
}

// SetDocumentCount sets the "document_count" field.
func (_u *SeriesUpdateOne) SetDocumentCount(v int) *SeriesUpdateOne {
	_u.mutation.ResetDocumentCount()
	_u.mutation.SetDocumentCount(v)
	return _u
}

// SetNillableDocumentCount sets the "document_count" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableDocumentCount(v *int) *SeriesUpdateOne {
	if v != nil {
		_u.SetDocumentCount(*v)
	}
	return _u
}

// AddDocumentCount adds value to the "document_count" field.
func (_u *SeriesUpdateOne) AddDocumentCount(v int) *SeriesUpdateOne {
	_u.mutation.AddDocumentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SeriesUpdateOne) SetStatus(v series.Status) *SeriesUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableStatus(v *series.Status) *SeriesUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SeriesUpdateOne) SetSource(v series.Source) *SeriesUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SeriesUpdateOne) SetNillableSource(v *series.Source) *SeriesUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SeriesUpdateOne) SetUpdatedAt(v time.Time) *SeriesUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by IDs.
func (_u *SeriesUpdateOne) AddDocumentSeriesIDs(ids ...string) *SeriesUpdateOne {
	_u.mutation.AddDocumentSeriesIDs(ids...)
	return _u
}

// AddDocumentSeries adds the "document_series" edges to the DocumentSeries entity.
func (_u *SeriesUpdateOne) AddDocumentSeries(v ...*DocumentSeries) *SeriesUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentSeriesIDs(ids...)
}

// Mutation returns the SeriesMutation object of the builder.
func (_u *SeriesUpdateOne) Mutation() *SeriesMutation {
	return _u.mutation
}

// ClearDocumentSeries clears all "document_series" edges to the DocumentSeries entity.
func (_u *SeriesUpdateOne) ClearDocumentSeries() *SeriesUpdateOne {
	_u.mutation.ClearDocumentSeries()
	return _u
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to DocumentSeries entities by IDs.
func (_u *SeriesUpdateOne) RemoveDocumentSeriesIDs(ids ...string) *SeriesUpdateOne {
	_u.mutation.RemoveDocumentSeriesIDs(ids...)
	return _u
}

// RemoveDocumentSeries removes "document_series" edges to DocumentSeries entities.
func (_u *SeriesUpdateOne) RemoveDocumentSeries(v ...*DocumentSeries) *SeriesUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentSeriesIDs(ids...)
}

// Where appends a list predicates to the SeriesUpdate builder.
func (_u *SeriesUpdateOne) Where(ps ...predicate.Series) *SeriesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SeriesUpdateOne) Select(field string, fields ...string) *SeriesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Series entity.
func (_u *SeriesUpdateOne) Save(ctx context.Context) (*Series, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SeriesUpdateOne) SaveX(ctx context.Context) *Series {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SeriesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SeriesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SeriesUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := series.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SeriesUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := series.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Series.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := series.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Series.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SeriesUpdateOne) sqlSave(ctx context.Context) (_node *Series, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(series.Table, series.Columns, sqlgraph.NewFieldSpec(series.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Series.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, series.FieldID)
		for _, f := range fields {
			if !series.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != series.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(series.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(series.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeriesType(); ok {
		_spec.SetField(series.FieldSeriesType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(series.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(series.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(series.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(series.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(series.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(series.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstDocumentDate(); ok {
		_spec.SetField(series.FieldFirstDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.FirstDocumentDateCleared() {
		_spec.ClearField(series.FieldFirstDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.LastDocumentDate(); ok {
		_spec.SetField(series.FieldLastDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.LastDocumentDateCleared() {
		_spec.ClearField(series.FieldLastDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentCount(); ok {
		_spec.SetField(series.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocumentCount(); ok {
		_spec.AddField(series.FieldDocumentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(series.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(series.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(series.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentSeriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentSeriesIDs(); len(nodes) > 0 && !_u.mutation.DocumentSeriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentSeriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Series{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{series.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
