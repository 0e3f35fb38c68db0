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
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFolderPath sets the "folder_path" field.
func (_u *DocumentUpdate) SetFolderPath(v string) *DocumentUpdate {
	_u.mutation.SetFolderPath(v)
	return _u
}

// SetNillableFolderPath sets the "folder_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFolderPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFolderPath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdate) SetMimeType(v string) *DocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMimeType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *DocumentUpdate) ClearMimeType() *DocumentUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *DocumentUpdate) SetSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSizeBytes(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *DocumentUpdate) AddSizeBytes(v int64) *DocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *DocumentUpdate) ClearSizeBytes() *DocumentUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v document.Status) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *document.Status) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdate) SetExtractedText(v string) *DocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdate) ClearExtractedText() *DocumentUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdate) SetOcrConfidence(v float64) *DocumentUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrConfidence(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdate) AddOcrConfidence(v float64) *DocumentUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdate) ClearOcrConfidence() *DocumentUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdate) ClearDocumentType() *DocumentUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DocumentUpdate) SetClassificationConfidence(v float64) *DocumentUpdate {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClassificationConfidence(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DocumentUpdate) AddClassificationConfidence(v float64) *DocumentUpdate {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (_u *DocumentUpdate) ClearClassificationConfidence() *DocumentUpdate {
	_u.mutation.ClearClassificationConfidence()
	return _u
}

// SetClassificationReasoning sets the "classification_reasoning" field.
func (_u *DocumentUpdate) SetClassificationReasoning(v string) *DocumentUpdate {
	_u.mutation.SetClassificationReasoning(v)
	return _u
}

// SetNillableClassificationReasoning sets the "classification_reasoning" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClassificationReasoning(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetClassificationReasoning(*v)
	}
	return _u
}

// ClearClassificationReasoning clears the value of the "classification_reasoning" field.
func (_u *DocumentUpdate) ClearClassificationReasoning() *DocumentUpdate {
	_u.mutation.ClearClassificationReasoning()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentUpdate) SetSummary(v string) *DocumentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSummary(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentUpdate) ClearSummary() *DocumentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdate) SetStructuredData(v map[string]interface{}) *DocumentUpdate {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdate) ClearStructuredData() *DocumentUpdate {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdate) SetProcessingStartedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdate) ClearProcessingStartedAt() *DocumentUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdate) SetRetryCount(v int) *DocumentUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRetryCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdate) AddRetryCount(v int) *DocumentUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *DocumentUpdate) SetMaxRetries(v int) *DocumentUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMaxRetries(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *DocumentUpdate) AddMaxRetries(v int) *DocumentUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DocumentUpdate) SetLastError(v string) *DocumentUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLastError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DocumentUpdate) ClearLastError() *DocumentUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentTagIDs adds the "document_tags" edge to the DocumentTag entity by IDs.
func (_u *DocumentUpdate) AddDocumentTagIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddDocumentTagIDs(ids...)
	return _u
}

// AddDocumentTags adds the "document_tags" edges to the DocumentTag entity.
func (_u *DocumentUpdate) AddDocumentTags(v ...*DocumentTag) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentTagIDs(ids...)
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by IDs.
func (_u *DocumentUpdate) AddDocumentSeriesIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddDocumentSeriesIDs(ids...)
	return _u
}

// AddDocumentSeries adds the "document_series" edges to the DocumentSeries entity.
func (_u *DocumentUpdate) AddDocumentSeries(v ...*DocumentSeries) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentSeriesIDs(ids...)
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by IDs.
func (_u *DocumentUpdate) AddFileDocumentIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddFileDocumentIDs(ids...)
	return _u
}

// AddFileDocuments adds the "file_documents" edges to the FileDocument entity.
func (_u *DocumentUpdate) AddFileDocuments(v ...*FileDocument) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileDocumentIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearDocumentTags clears all "document_tags" edges to the DocumentTag entity.
func (_u *DocumentUpdate) ClearDocumentTags() *DocumentUpdate {
	_u.mutation.ClearDocumentTags()
	return _u
}

// RemoveDocumentTagIDs removes the "document_tags" edge to DocumentTag entities by IDs.
func (_u *DocumentUpdate) RemoveDocumentTagIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveDocumentTagIDs(ids...)
	return _u
}

// RemoveDocumentTags removes "document_tags" edges to DocumentTag entities.
func (_u *DocumentUpdate) RemoveDocumentTags(v ...*DocumentTag) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentTagIDs(ids...)
}

// ClearDocumentSeries clears all "document_series" edges to the DocumentSeries entity.
func (_u *DocumentUpdate) ClearDocumentSeries() *DocumentUpdate {
	_u.mutation.ClearDocumentSeries()
	return _u
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to DocumentSeries entities by IDs.
func (_u *DocumentUpdate) RemoveDocumentSeriesIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveDocumentSeriesIDs(ids...)
	return _u
}

// RemoveDocumentSeries removes "document_series" edges to DocumentSeries entities.
func (_u *DocumentUpdate) RemoveDocumentSeries(v ...*DocumentSeries) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentSeriesIDs(ids...)
}

// ClearFileDocuments clears all "file_documents" edges to the FileDocument entity.
func (_u *DocumentUpdate) ClearFileDocuments() *DocumentUpdate {
	_u.mutation.ClearFileDocuments()
	return _u
}

// RemoveFileDocumentIDs removes the "file_documents" edge to FileDocument entities by IDs.
func (_u *DocumentUpdate) RemoveFileDocumentIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveFileDocumentIDs(ids...)
	return _u
}

// RemoveFileDocuments removes "file_documents" edges to FileDocument entities.
func (_u *DocumentUpdate) RemoveFileDocuments(v ...*FileDocument) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FolderPath(); ok {
		_spec.SetField(document.FieldFolderPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(document.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(document.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(document.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(document.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(document.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(document.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ClassificationConfidenceCleared() {
		_spec.ClearField(document.FieldClassificationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClassificationReasoning(); ok {
		_spec.SetField(document.FieldClassificationReasoning, field.TypeString, value)
	}
	if _u.mutation.ClassificationReasoningCleared() {
		_spec.ClearField(document.FieldClassificationReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(document.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(document.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(document.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(document.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(document.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(document.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentTagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentTagsIDs(); len(nodes) > 0 && !_u.mutation.DocumentTagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentTagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentSeriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
	if _u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFolderPath sets the "folder_path" field.
func (_u *DocumentUpdateOne) SetFolderPath(v string) *DocumentUpdateOne {
	_u.mutation.SetFolderPath(v)
	return _u
}

// SetNillableFolderPath sets the "folder_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFolderPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFolderPath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdateOne) SetMimeType(v string) *DocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMimeType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *DocumentUpdateOne) ClearMimeType() *DocumentUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *DocumentUpdateOne) SetSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSizeBytes(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *DocumentUpdateOne) AddSizeBytes(v int64) *DocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *DocumentUpdateOne) ClearSizeBytes() *DocumentUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v document.Status) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *document.Status) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdateOne) SetExtractedText(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdateOne) ClearExtractedText() *DocumentUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdateOne) SetOcrConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrConfidence(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdateOne) AddOcrConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdateOne) ClearOcrConfidence() *DocumentUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdateOne) ClearDocumentType() *DocumentUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (_u *DocumentUpdateOne) SetClassificationConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.ResetClassificationConfidence()
	_u.mutation.SetClassificationConfidence(v)
	return _u
}

// SetNillableClassificationConfidence sets the "classification_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClassificationConfidence(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetClassificationConfidence(*v)
	}
	return _u
}

// AddClassificationConfidence adds value to the "classification_confidence" field.
func (_u *DocumentUpdateOne) AddClassificationConfidence(v float64) *DocumentUpdateOne {
	_u.mutation.AddClassificationConfidence(v)
	return _u
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (_u *DocumentUpdateOne) ClearClassificationConfidence() *DocumentUpdateOne {
	_u.mutation.ClearClassificationConfidence()
	return _u
}

// SetClassificationReasoning sets the "classification_reasoning" field.
func (_u *DocumentUpdateOne) SetClassificationReasoning(v string) *DocumentUpdateOne {
	_u.mutation.SetClassificationReasoning(v)
	return _u
}

// SetNillableClassificationReasoning sets the "classification_reasoning" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClassificationReasoning(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetClassificationReasoning(*v)
	}
	return _u
}

// ClearClassificationReasoning clears the value of the "classification_reasoning" field.
func (_u *DocumentUpdateOne) ClearClassificationReasoning() *DocumentUpdateOne {
	_u.mutation.ClearClassificationReasoning()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentUpdateOne) SetSummary(v string) *DocumentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSummary(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentUpdateOne) ClearSummary() *DocumentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdateOne) SetStructuredData(v map[string]interface{}) *DocumentUpdateOne {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdateOne) ClearStructuredData() *DocumentUpdateOne {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *DocumentUpdateOne) SetProcessingStartedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *DocumentUpdateOne) ClearProcessingStartedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DocumentUpdateOne) SetRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRetryCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DocumentUpdateOne) AddRetryCount(v int) *DocumentUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *DocumentUpdateOne) SetMaxRetries(v int) *DocumentUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMaxRetries(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *DocumentUpdateOne) AddMaxRetries(v int) *DocumentUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DocumentUpdateOne) SetLastError(v string) *DocumentUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLastError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *DocumentUpdateOne) ClearLastError() *DocumentUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentTagIDs adds the "document_tags" edge to the DocumentTag entity by IDs.
func (_u *DocumentUpdateOne) AddDocumentTagIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddDocumentTagIDs(ids...)
	return _u
}

// AddDocumentTags adds the "document_tags" edges to the DocumentTag entity.
func (_u *DocumentUpdateOne) AddDocumentTags(v ...*DocumentTag) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentTagIDs(ids...)
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by IDs.
func (_u *DocumentUpdateOne) AddDocumentSeriesIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddDocumentSeriesIDs(ids...)
	return _u
}

// AddDocumentSeries adds the "document_series" edges to the DocumentSeries entity.
func (_u *DocumentUpdateOne) AddDocumentSeries(v ...*DocumentSeries) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentSeriesIDs(ids...)
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by IDs.
func (_u *DocumentUpdateOne) AddFileDocumentIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddFileDocumentIDs(ids...)
	return _u
}

// AddFileDocuments adds the "file_documents" edges to the FileDocument entity.
func (_u *DocumentUpdateOne) AddFileDocuments(v ...*FileDocument) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileDocumentIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearDocumentTags clears all "document_tags" edges to the DocumentTag entity.
func (_u *DocumentUpdateOne) ClearDocumentTags() *DocumentUpdateOne {
	_u.mutation.ClearDocumentTags()
	return _u
}

// RemoveDocumentTagIDs removes the "document_tags" edge to DocumentTag entities by IDs.
func (_u *DocumentUpdateOne) RemoveDocumentTagIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveDocumentTagIDs(ids...)
	return _u
}

// RemoveDocumentTags removes "document_tags" edges to DocumentTag entities.
func (_u *DocumentUpdateOne) RemoveDocumentTags(v ...*DocumentTag) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentTagIDs(ids...)
}

// ClearDocumentSeries clears all "document_series" edges to the DocumentSeries entity.
func (_u *DocumentUpdateOne) ClearDocumentSeries() *DocumentUpdateOne {
	_u.mutation.ClearDocumentSeries()
	return _u
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to DocumentSeries entities by IDs.
func (_u *DocumentUpdateOne) RemoveDocumentSeriesIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveDocumentSeriesIDs(ids...)
	return _u
}

// RemoveDocumentSeries removes "document_series" edges to DocumentSeries entities.
func (_u *DocumentUpdateOne) RemoveDocumentSeries(v ...*DocumentSeries) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentSeriesIDs(ids...)
}

// ClearFileDocuments clears all "file_documents" edges to the FileDocument entity.
func (_u *DocumentUpdateOne) ClearFileDocuments() *DocumentUpdateOne {
	_u.mutation.ClearFileDocuments()
	return _u
}

// RemoveFileDocumentIDs removes the "file_documents" edge to FileDocument entities by IDs.
func (_u *DocumentUpdateOne) RemoveFileDocumentIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveFileDocumentIDs(ids...)
	return _u
}

// RemoveFileDocuments removes "file_documents" edges to FileDocument entities.
func (_u *DocumentUpdateOne) RemoveFileDocuments(v ...*FileDocument) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileDocumentIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.FolderPath(); ok {
		_spec.SetField(document.FieldFolderPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(document.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(document.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(document.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(document.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.ClassificationConfidence(); ok {
		_spec.SetField(document.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClassificationConfidence(); ok {
		_spec.AddField(document.FieldClassificationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ClassificationConfidenceCleared() {
		_spec.ClearField(document.FieldClassificationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClassificationReasoning(); ok {
		_spec.SetField(document.FieldClassificationReasoning, field.TypeString, value)
	}
	if _u.mutation.ClassificationReasoningCleared() {
		_spec.ClearField(document.FieldClassificationReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(document.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(document.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(document.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(document.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(document.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(document.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(document.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(document.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(document.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentTagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentTagsIDs(); len(nodes) > 0 && !_u.mutation.DocumentTagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentTagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentTagsTable,
			Columns: []string{document.DocumentTagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documenttag.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentSeriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
			Table:   document.DocumentSeriesTable,
			Columns: []string{document.DocumentSeriesColumn},
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
	if _u.mutation.FileDocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
			Table:   document.FileDocumentsTable,
			Columns: []string{document.FileDocumentsColumn},
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
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
