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
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/ent/predicate"
)

// FileDocumentUpdate is the builder for updating FileDocument entities.
type FileDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *FileDocumentMutation
}

// Where appends a list predicates to the FileDocumentUpdate builder.
func (_u *FileDocumentUpdate) Where(ps ...predicate.FileDocument) *FileDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *FileDocumentUpdate) SetFileID(v string) *FileDocumentUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileDocumentUpdate) SetNillableFileID(v *string) *FileDocumentUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FileDocumentUpdate) SetDocumentID(v string) *FileDocumentUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FileDocumentUpdate) SetNillableDocumentID(v *string) *FileDocumentUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the File entity.
func (_u *FileDocumentUpdate) SetFile(v *File) *FileDocumentUpdate {
	return _u.SetFileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FileDocumentUpdate) SetDocument(v *Document) *FileDocumentUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FileDocumentMutation object of the builder.
func (_u *FileDocumentUpdate) Mutation() *FileDocumentMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the File entity.
func (_u *FileDocumentUpdate) ClearFile() *FileDocumentUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FileDocumentUpdate) ClearDocument() *FileDocumentUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileDocumentUpdate) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDocument.file"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDocument.document"`)
	}
	return nil
}

func (_u *FileDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filedocument.Table, filedocument.Columns, sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.FileTable,
			Columns: []string{filedocument.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.FileTable,
			Columns: []string{filedocument.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.DocumentTable,
			Columns: []string{filedocument.DocumentColumn},
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
			Table:   filedocument.DocumentTable,
			Columns: []string{filedocument.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileDocumentUpdateOne is the builder for updating a single FileDocument entity.
type FileDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileDocumentMutation
}

// SetFileID sets the "file_id" field.
func (_u *FileDocumentUpdateOne) SetFileID(v string) *FileDocumentUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *FileDocumentUpdateOne) SetNillableFileID(v *string) *FileDocumentUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FileDocumentUpdateOne) SetDocumentID(v string) *FileDocumentUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FileDocumentUpdateOne) SetNillableDocumentID(v *string) *FileDocumentUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the File entity.
func (_u *FileDocumentUpdateOne) SetFile(v *File) *FileDocumentUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FileDocumentUpdateOne) SetDocument(v *Document) *FileDocumentUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FileDocumentMutation object of the builder.
func (_u *FileDocumentUpdateOne) Mutation() *FileDocumentMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the File entity.
func (_u *FileDocumentUpdateOne) ClearFile() *FileDocumentUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FileDocumentUpdateOne) ClearDocument() *FileDocumentUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the FileDocumentUpdate builder.
func (_u *FileDocumentUpdateOne) Where(ps ...predicate.FileDocument) *FileDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileDocumentUpdateOne) Select(field string, fields ...string) *FileDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileDocument entity.
func (_u *FileDocumentUpdateOne) Save(ctx context.Context) (*FileDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileDocumentUpdateOne) SaveX(ctx context.Context) *FileDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileDocumentUpdateOne) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDocument.file"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FileDocument.document"`)
	}
	return nil
}

func (_u *FileDocumentUpdateOne) sqlSave(ctx context.Context) (_node *FileDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filedocument.Table, filedocument.Columns, sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filedocument.FieldID)
		for _, f := range fields {
			if !filedocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filedocument.FieldID {
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
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.FileTable,
			Columns: []string{filedocument.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.FileTable,
			Columns: []string{filedocument.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(file.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   filedocument.DocumentTable,
			Columns: []string{filedocument.DocumentColumn},
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
			Table:   filedocument.DocumentTable,
			Columns: []string{filedocument.DocumentColumn},
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
	_node = &FileDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
