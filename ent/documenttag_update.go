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
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/predicate"
	"github.com/docfold/docfold/ent/tag"
)

// DocumentTagUpdate is the builder for updating DocumentTag entities.
type DocumentTagUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentTagMutation
}

// Where appends a list predicates to the DocumentTagUpdate builder.
func (_u *DocumentTagUpdate) Where(ps ...predicate.DocumentTag) *DocumentTagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentTagUpdate) SetDocumentID(v string) *DocumentTagUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentTagUpdate) SetNillableDocumentID(v *string) *DocumentTagUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *DocumentTagUpdate) SetTagID(v string) *DocumentTagUpdate {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *DocumentTagUpdate) SetNillableTagID(v *string) *DocumentTagUpdate {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DocumentTagUpdate) SetSource(v documenttag.Source) *DocumentTagUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentTagUpdate) SetNillableSource(v *documenttag.Source) *DocumentTagUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentTagUpdate) SetDocument(v *Document) *DocumentTagUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetTag sets the "tag" edge to the Tag entity.
func (_u *DocumentTagUpdate) SetTag(v *Tag) *DocumentTagUpdate {
	return _u.SetTagID(v.ID)
}

// Mutation returns the DocumentTagMutation object of the builder.
func (_u *DocumentTagUpdate) Mutation() *DocumentTagMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentTagUpdate) ClearDocument() *DocumentTagUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTag clears the "tag" edge to the Tag entity.
func (_u *DocumentTagUpdate) ClearTag() *DocumentTagUpdate {
	_u.mutation.ClearTag()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentTagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentTagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTagUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := documenttag.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentTag.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentTag.document"`)
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentTag.tag"`)
	}
	return nil
}

func (_u *DocumentTagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttag.Table, documenttag.Columns, sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documenttag.FieldSource, field.TypeEnum, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.DocumentTable,
			Columns: []string{documenttag.DocumentColumn},
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
			Table:   documenttag.DocumentTable,
			Columns: []string{documenttag.DocumentColumn},
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
	if _u.mutation.TagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.TagTable,
			Columns: []string{documenttag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.TagTable,
			Columns: []string{documenttag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentTagUpdateOne is the builder for updating a single DocumentTag entity.
type DocumentTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentTagMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentTagUpdateOne) SetDocumentID(v string) *DocumentTagUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentTagUpdateOne) SetNillableDocumentID(v *string) *DocumentTagUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *DocumentTagUpdateOne) SetTagID(v string) *DocumentTagUpdateOne {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *DocumentTagUpdateOne) SetNillableTagID(v *string) *DocumentTagUpdateOne {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DocumentTagUpdateOne) SetSource(v documenttag.Source) *DocumentTagUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentTagUpdateOne) SetNillableSource(v *documenttag.Source) *DocumentTagUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentTagUpdateOne) SetDocument(v *Document) *DocumentTagUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetTag sets the "tag" edge to the Tag entity.
func (_u *DocumentTagUpdateOne) SetTag(v *Tag) *DocumentTagUpdateOne {
	return _u.SetTagID(v.ID)
}

// Mutation returns the DocumentTagMutation object of the builder.
func (_u *DocumentTagUpdateOne) Mutation() *DocumentTagMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentTagUpdateOne) ClearDocument() *DocumentTagUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTag clears the "tag" edge to the Tag entity.
func (_u *DocumentTagUpdateOne) ClearTag() *DocumentTagUpdateOne {
	_u.mutation.ClearTag()
	return _u
}

// Where appends a list predicates to the DocumentTagUpdate builder.
func (_u *DocumentTagUpdateOne) Where(ps ...predicate.DocumentTag) *DocumentTagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentTagUpdateOne) Select(field string, fields ...string) *DocumentTagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentTag entity.
func (_u *DocumentTagUpdateOne) Save(ctx context.Context) (*DocumentTag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTagUpdateOne) SaveX(ctx context.Context) *DocumentTag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentTagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTagUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := documenttag.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentTag.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentTag.document"`)
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentTag.tag"`)
	}
	return nil
}

func (_u *DocumentTagUpdateOne) sqlSave(ctx context.Context) (_node *DocumentTag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttag.Table, documenttag.Columns, sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documenttag.FieldID)
		for _, f := range fields {
			if !documenttag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documenttag.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documenttag.FieldSource, field.TypeEnum, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.DocumentTable,
			Columns: []string{documenttag.DocumentColumn},
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
			Table:   documenttag.DocumentTable,
			Columns: []string{documenttag.DocumentColumn},
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
	if _u.mutation.TagCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.TagTable,
			Columns: []string{documenttag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   documenttag.TagTable,
			Columns: []string{documenttag.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentTag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
