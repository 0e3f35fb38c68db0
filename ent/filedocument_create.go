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
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
)

// FileDocumentCreate is the builder for creating a FileDocument entity.
type FileDocumentCreate struct {
	config
	mutation *FileDocumentMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *FileDocumentCreate) SetFileID(v string) *FileDocumentCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *FileDocumentCreate) SetDocumentID(v string) *FileDocumentCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *FileDocumentCreate) SetAddedAt(v time.Time) *FileDocumentCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *FileDocumentCreate) SetNillableAddedAt(v *time.Time) *FileDocumentCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileDocumentCreate) SetID(v string) *FileDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFile sets the "file" edge to the File entity.
func (_c *FileDocumentCreate) SetFile(v *File) *FileDocumentCreate {
	return _c.SetFileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *FileDocumentCreate) SetDocument(v *Document) *FileDocumentCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the FileDocumentMutation object of the builder.
func (_c *FileDocumentCreate) Mutation() *FileDocumentMutation {
	return _c.mutation
}

// Save creates the FileDocument in the database.
func (_c *FileDocumentCreate) Save(ctx context.Context) (*FileDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileDocumentCreate) SaveX(ctx context.Context) *FileDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileDocumentCreate) defaults() {
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := filedocument.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileDocumentCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "FileDocument.file_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "FileDocument.document_id"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "FileDocument.added_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "FileDocument.file"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "FileDocument.document"`)}
	}
	return nil
}

func (_c *FileDocumentCreate) sqlSave(ctx context.Context) (*FileDocument, error) {
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
			return nil, fmt.Errorf("unexpected FileDocument.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileDocumentCreate) createSpec() (*FileDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &FileDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filedocument.Table, sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(filedocument.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FileDocumentCreateBulk is the builder for creating many FileDocument entities in bulk.
type FileDocumentCreateBulk struct {
	config
	err      error
	builders []*FileDocumentCreate
}

// Save creates the FileDocument entities in the database.
func (_c *FileDocumentCreateBulk) Save(ctx context.Context) ([]*FileDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileDocumentMutation)
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
func (_c *FileDocumentCreateBulk) SaveX(ctx context.Context) []*FileDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
