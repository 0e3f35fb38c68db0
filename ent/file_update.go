// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/ent/predicate"
)

// FileUpdate is the builder for updating File entities.
type FileUpdate struct {
	config
	hooks    []Hook
	mutation *FileMutation
}

// Where appends a list predicates to the FileUpdate builder.
func (_u *FileUpdate) Where(ps ...predicate.File) *FileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTags sets the "tags" field.
func (_u *FileUpdate) SetTags(v []string) *FileUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *FileUpdate) AppendTags(v []string) *FileUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTagSignature sets the "tag_signature" field.
func (_u *FileUpdate) SetTagSignature(v string) *FileUpdate {
	_u.mutation.SetTagSignature(v)
	return _u
}

// SetNillableTagSignature sets the "tag_signature" field if the given value is not nil.
func (_u *FileUpdate) SetNillableTagSignature(v *string) *FileUpdate {
	if v != nil {
		_u.SetTagSignature(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FileUpdate) SetSource(v file.Source) *FileUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FileUpdate) SetNillableSource(v *file.Source) *FileUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileUpdate) SetStatus(v file.Status) *FileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileUpdate) SetNillableStatus(v *file.Status) *FileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *FileUpdate) SetSummaryText(v string) *FileUpdate {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *FileUpdate) SetNillableSummaryText(v *string) *FileUpdate {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *FileUpdate) ClearSummaryText() *FileUpdate {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetSummaryMetadata sets the "summary_metadata" field.
func (_u *FileUpdate) SetSummaryMetadata(v map[string]interface{}) *FileUpdate {
	_u.mutation.SetSummaryMetadata(v)
	return _u
}

// ClearSummaryMetadata clears the value of the "summary_metadata" field.
func (_u *FileUpdate) ClearSummaryMetadata() *FileUpdate {
	_u.mutation.ClearSummaryMetadata()
	return _u
}

// SetLastGeneratedAt sets the "last_generated_at" field.
func (_u *FileUpdate) SetLastGeneratedAt(v time.Time) *FileUpdate {
	_u.mutation.SetLastGeneratedAt(v)
	return _u
}

// SetNillableLastGeneratedAt sets the "last_generated_at" field if the given value is not nil.
func (_u *FileUpdate) SetNillableLastGeneratedAt(v *time.Time) *FileUpdate {
	if v != nil {
		_u.SetLastGeneratedAt(*v)
	}
	return _u
}

// ClearLastGeneratedAt clears the value of the "last_generated_at" field.
func (_u *FileUpdate) ClearLastGeneratedAt() *FileUpdate {
	_u.mutation.ClearLastGeneratedAt()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *FileUpdate) SetProcessingStartedAt(v time.Time) *FileUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *FileUpdate) SetNillableProcessingStartedAt(v *time.Time) *FileUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *FileUpdate) ClearProcessingStartedAt() *FileUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FileUpdate) SetRetryCount(v int) *FileUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FileUpdate) SetNillableRetryCount(v *int) *FileUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FileUpdate) AddRetryCount(v int) *FileUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *FileUpdate) SetMaxRetries(v int) *FileUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *FileUpdate) SetNillableMaxRetries(v *int) *FileUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *FileUpdate) AddMaxRetries(v int) *FileUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FileUpdate) SetLastError(v string) *FileUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FileUpdate) SetNillableLastError(v *string) *FileUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FileUpdate) ClearLastError() *FileUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileUpdate) SetUpdatedAt(v time.Time) *FileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by IDs.
func (_u *FileUpdate) AddFileDocumentIDs(ids ...string) *FileUpdate {
	_u.mutation.AddFileDocumentIDs(ids...)
	return _u
}

// AddFileDocuments adds the "file_documents" edges to the FileDocument entity.
func (_u *FileUpdate) AddFileDocuments(v ...*FileDocument) *FileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileDocumentIDs(ids...)
}

// Mutation returns the FileMutation object of the builder.
func (_u *FileUpdate) Mutation() *FileMutation {
	return _u.mutation
}

// ClearFileDocuments clears all "file_documents" edges to the FileDocument entity.
func (_u *FileUpdate) ClearFileDocuments() *FileUpdate {
	_u.mutation.ClearFileDocuments()
	return _u
}

// RemoveFileDocumentIDs removes the "file_documents" edge to FileDocument entities by IDs.
func (_u *FileUpdate) RemoveFileDocumentIDs(ids ...string) *FileUpdate {
	_u.mutation.RemoveFileDocumentIDs(ids...)
	return _u
}

// RemoveFileDocuments removes "file_documents" edges to FileDocument entities.
func (_u *FileUpdate) RemoveFileDocuments(v ...*FileDocument) *FileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := file.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := file.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "File.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := file.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "File.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(file.Table, file.Columns, sqlgraph.NewFieldSpec(file.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(file.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, file.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TagSignature(); ok {
		_spec.SetField(file.FieldTagSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(file.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(file.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(file.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(file.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryMetadata(); ok {
		_spec.SetField(file.FieldSummaryMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SummaryMetadataCleared() {
		_spec.ClearField(file.FieldSummaryMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastGeneratedAt(); ok {
		_spec.SetField(file.FieldLastGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedAtCleared() {
		_spec.ClearField(file.FieldLastGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(file.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(file.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(file.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(file.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(file.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(file.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(file.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(file.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(file.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFileDocumentsIDs(); len(nodes) > 0 && !_u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{file.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileUpdateOne is the builder for updating a single File entity.
type FileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileMutation
}

// SetTags sets the "tags" field.
func (_u *FileUpdateOne) SetTags(v []string) *FileUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *FileUpdateOne) AppendTags(v []string) *FileUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// SetTagSignature sets the "tag_signature" field.
func (_u *FileUpdateOne) SetTagSignature(v string) *FileUpdateOne {
	_u.mutation.SetTagSignature(v)
	return _u
}

// SetNillableTagSignature sets the "tag_signature" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableTagSignature(v *string) *FileUpdateOne {
	if v != nil {
		_u.SetTagSignature(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FileUpdateOne) SetSource(v file.Source) *FileUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableSource(v *file.Source) *FileUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileUpdateOne) SetStatus(v file.Status) *FileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableStatus(v *file.Status) *FileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *FileUpdateOne) SetSummaryText(v string) *FileUpdateOne {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableSummaryText(v *string) *FileUpdateOne {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// ClearSummaryText clears the value of the "summary_text" field.
func (_u *FileUpdateOne) ClearSummaryText() *FileUpdateOne {
	_u.mutation.ClearSummaryText()
	return _u
}

// SetSummaryMetadata sets the "summary_metadata" field.
func (_u *FileUpdateOne) SetSummaryMetadata(v map[string]interface{}) *FileUpdateOne {
	_u.mutation.SetSummaryMetadata(v)
	return _u
}

// ClearSummaryMetadata clears the value of the "summary_metadata" field.
func (_u *FileUpdateOne) ClearSummaryMetadata() *FileUpdateOne {
	_u.mutation.ClearSummaryMetadata()
	return _u
}

// SetLastGeneratedAt sets the "last_generated_at" field.
func (_u *FileUpdateOne) SetLastGeneratedAt(v time.Time) *FileUpdateOne {
	_u.mutation.SetLastGeneratedAt(v)
	return _u
}

// SetNillableLastGeneratedAt sets the "last_generated_at" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableLastGeneratedAt(v *time.Time) *FileUpdateOne {
	if v != nil {
		_u.SetLastGeneratedAt(*v)
	}
	return _u
}

// ClearLastGeneratedAt clears the value of the "last_generated_at" field.
func (_u *FileUpdateOne) ClearLastGeneratedAt() *FileUpdateOne {
	_u.mutation.ClearLastGeneratedAt()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *FileUpdateOne) SetProcessingStartedAt(v time.Time) *FileUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *FileUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *FileUpdateOne) ClearProcessingStartedAt() *FileUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *FileUpdateOne) SetRetryCount(v int) *FileUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableRetryCount(v *int) *FileUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *FileUpdateOne) AddRetryCount(v int) *FileUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *FileUpdateOne) SetMaxRetries(v int) *FileUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableMaxRetries(v *int) *FileUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *FileUpdateOne) AddMaxRetries(v int) *FileUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FileUpdateOne) SetLastError(v string) *FileUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FileUpdateOne) SetNillableLastError(v *string) *FileUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FileUpdateOne) ClearLastError() *FileUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileUpdateOne) SetUpdatedAt(v time.Time) *FileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by IDs.
func (_u *FileUpdateOne) AddFileDocumentIDs(ids ...string) *FileUpdateOne {
	_u.mutation.AddFileDocumentIDs(ids...)
	return _u
}

// AddFileDocuments adds the "file_documents" edges to the FileDocument entity.
func (_u *FileUpdateOne) AddFileDocuments(v ...*FileDocument) *FileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileDocumentIDs(ids...)
}

// Mutation returns the FileMutation object of the builder.
func (_u *FileUpdateOne) Mutation() *FileMutation {
	return _u.mutation
}

// ClearFileDocuments clears all "file_documents" edges to the FileDocument entity.
func (_u *FileUpdateOne) ClearFileDocuments() *FileUpdateOne {
	_u.mutation.ClearFileDocuments()
	return _u
}

// RemoveFileDocumentIDs removes the "file_documents" edge to FileDocument entities by IDs.
func (_u *FileUpdateOne) RemoveFileDocumentIDs(ids ...string) *FileUpdateOne {
	_u.mutation.RemoveFileDocumentIDs(ids...)
	return _u
}

// RemoveFileDocuments removes "file_documents" edges to FileDocument entities.
func (_u *FileUpdateOne) RemoveFileDocuments(v ...*FileDocument) *FileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileDocumentIDs(ids...)
}

// Where appends a list predicates to the FileUpdate builder.
func (_u *FileUpdateOne) Where(ps ...predicate.File) *FileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileUpdateOne) Select(field string, fields ...string) *FileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated File entity.
func (_u *FileUpdateOne) Save(ctx context.Context) (*File, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileUpdateOne) SaveX(ctx context.Context) *File {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := file.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := file.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "File.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := file.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "File.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FileUpdateOne) sqlSave(ctx context.Context) (_node *File, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(file.Table, file.Columns, sqlgraph.NewFieldSpec(file.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "File.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, file.FieldID)
		for _, f := range fields {
			if !file.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != file.FieldID {
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
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(file.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, file.FieldTags, value)
		})
	}
	if value, ok := _u.mutation.TagSignature(); ok {
		_spec.SetField(file.FieldTagSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(file.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(file.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(file.FieldSummaryText, field.TypeString, value)
	}
	if _u.mutation.SummaryTextCleared() {
		_spec.ClearField(file.FieldSummaryText, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryMetadata(); ok {
		_spec.SetField(file.FieldSummaryMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SummaryMetadataCleared() {
		_spec.ClearField(file.FieldSummaryMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastGeneratedAt(); ok {
		_spec.SetField(file.FieldLastGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedAtCleared() {
		_spec.ClearField(file.FieldLastGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(file.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(file.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(file.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(file.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(file.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(file.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(file.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(file.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(file.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFileDocumentsIDs(); len(nodes) > 0 && !_u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileDocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   file.FileDocumentsTable,
			Columns: []string{file.FileDocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filedocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &File{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{file.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
