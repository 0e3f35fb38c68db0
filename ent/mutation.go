// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/documenttag"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
	"github.com/docfold/docfold/ent/predicate"
	"github.com/docfold/docfold/ent/prompt"
	"github.com/docfold/docfold/ent/series"
	"github.com/docfold/docfold/ent/tag"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument       = "Document"
	TypeDocumentSeries = "DocumentSeries"
	TypeDocumentTag    = "DocumentTag"
	TypeFile           = "File"
	TypeFileDocument   = "FileDocument"
	TypePrompt         = "Prompt"
	TypeSeries         = "Series"
	TypeTag            = "Tag"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	folder_path                  *string
	filename                     *string
	mime_type                    *string
	size_bytes                   *int64
	addsize_bytes                *int64
	status                       *document.Status
	extracted_text               *string
	ocr_confidence               *float64
	addocr_confidence            *float64
	document_type                *string
	classification_confidence    *float64
	addclassification_confidence *float64
	classification_reasoning     *string
	summary                      *string
	structured_data              *map[string]interface{}
	processing_started_at        *time.Time
	retry_count                  *int
	addretry_count               *int
	max_retries                  *int
	addmax_retries               *int
	last_error                   *string
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	document_tags                map[string]struct{}
	removeddocument_tags         map[string]struct{}
	cleareddocument_tags         bool
	document_series              map[string]struct{}
	removeddocument_series       map[string]struct{}
	cleareddocument_series       bool
	file_documents               map[string]struct{}
	removedfile_documents        map[string]struct{}
	clearedfile_documents        bool
	done                         bool
	oldValue                     func(context.Context) (*Document, error)
	predicates                   []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFolderPath sets the "folder_path" field.
func (m *DocumentMutation) SetFolderPath(s string) {
	m.folder_path = &s
}

// FolderPath returns the value of the "folder_path" field in the mutation.
func (m *DocumentMutation) FolderPath() (r string, exists bool) {
	v := m.folder_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFolderPath returns the old "folder_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFolderPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolderPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolderPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolderPath: %w", err)
	}
	return oldValue.FolderPath, nil
}

// ResetFolderPath resets all changes to the "folder_path" field.
func (m *DocumentMutation) ResetFolderPath() {
	m.folder_path = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *DocumentMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[document.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *DocumentMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, document.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *DocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *DocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *DocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *DocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *DocumentMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[document.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *DocumentMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[document.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *DocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, document.FieldSizeBytes)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(d document.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r document.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v document.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *DocumentMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[document.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, document.FieldExtractedText)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *DocumentMutation) SetOcrConfidence(f float64) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *DocumentMutation) OcrConfidence() (r float64, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *DocumentMutation) AddOcrConfidence(f float64) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *DocumentMutation) AddedOcrConfidence() (r float64, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *DocumentMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[document.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *DocumentMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *DocumentMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, document.FieldOcrConfidence)
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *DocumentMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[document.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *DocumentMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, document.FieldDocumentType)
}

// SetClassificationConfidence sets the "classification_confidence" field.
func (m *DocumentMutation) SetClassificationConfidence(f float64) {
	m.classification_confidence = &f
	m.addclassification_confidence = nil
}

// ClassificationConfidence returns the value of the "classification_confidence" field in the mutation.
func (m *DocumentMutation) ClassificationConfidence() (r float64, exists bool) {
	v := m.classification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationConfidence returns the old "classification_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClassificationConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationConfidence: %w", err)
	}
	return oldValue.ClassificationConfidence, nil
}

// AddClassificationConfidence adds f to the "classification_confidence" field.
func (m *DocumentMutation) AddClassificationConfidence(f float64) {
	if m.addclassification_confidence != nil {
		*m.addclassification_confidence += f
	} else {
		m.addclassification_confidence = &f
	}
}

// AddedClassificationConfidence returns the value that was added to the "classification_confidence" field in this mutation.
func (m *DocumentMutation) AddedClassificationConfidence() (r float64, exists bool) {
	v := m.addclassification_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearClassificationConfidence clears the value of the "classification_confidence" field.
func (m *DocumentMutation) ClearClassificationConfidence() {
	m.classification_confidence = nil
	m.addclassification_confidence = nil
	m.clearedFields[document.FieldClassificationConfidence] = struct{}{}
}

// ClassificationConfidenceCleared returns if the "classification_confidence" field was cleared in this mutation.
func (m *DocumentMutation) ClassificationConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldClassificationConfidence]
	return ok
}

// ResetClassificationConfidence resets all changes to the "classification_confidence" field.
func (m *DocumentMutation) ResetClassificationConfidence() {
	m.classification_confidence = nil
	m.addclassification_confidence = nil
	delete(m.clearedFields, document.FieldClassificationConfidence)
}

// SetClassificationReasoning sets the "classification_reasoning" field.
func (m *DocumentMutation) SetClassificationReasoning(s string) {
	m.classification_reasoning = &s
}

// ClassificationReasoning returns the value of the "classification_reasoning" field in the mutation.
func (m *DocumentMutation) ClassificationReasoning() (r string, exists bool) {
	v := m.classification_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldClassificationReasoning returns the old "classification_reasoning" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClassificationReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassificationReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassificationReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassificationReasoning: %w", err)
	}
	return oldValue.ClassificationReasoning, nil
}

// ClearClassificationReasoning clears the value of the "classification_reasoning" field.
func (m *DocumentMutation) ClearClassificationReasoning() {
	m.classification_reasoning = nil
	m.clearedFields[document.FieldClassificationReasoning] = struct{}{}
}

// ClassificationReasoningCleared returns if the "classification_reasoning" field was cleared in this mutation.
func (m *DocumentMutation) ClassificationReasoningCleared() bool {
	_, ok := m.clearedFields[document.FieldClassificationReasoning]
	return ok
}

// ResetClassificationReasoning resets all changes to the "classification_reasoning" field.
func (m *DocumentMutation) ResetClassificationReasoning() {
	m.classification_reasoning = nil
	delete(m.clearedFields, document.FieldClassificationReasoning)
}

// SetSummary sets the "summary" field.
func (m *DocumentMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *DocumentMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *DocumentMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[document.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *DocumentMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[document.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *DocumentMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, document.FieldSummary)
}

// SetStructuredData sets the "structured_data" field.
func (m *DocumentMutation) SetStructuredData(value map[string]interface{}) {
	m.structured_data = &value
}

// StructuredData returns the value of the "structured_data" field in the mutation.
func (m *DocumentMutation) StructuredData() (r map[string]interface{}, exists bool) {
	v := m.structured_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredData returns the old "structured_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStructuredData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredData: %w", err)
	}
	return oldValue.StructuredData, nil
}

// ClearStructuredData clears the value of the "structured_data" field.
func (m *DocumentMutation) ClearStructuredData() {
	m.structured_data = nil
	m.clearedFields[document.FieldStructuredData] = struct{}{}
}

// StructuredDataCleared returns if the "structured_data" field was cleared in this mutation.
func (m *DocumentMutation) StructuredDataCleared() bool {
	_, ok := m.clearedFields[document.FieldStructuredData]
	return ok
}

// ResetStructuredData resets all changes to the "structured_data" field.
func (m *DocumentMutation) ResetStructuredData() {
	m.structured_data = nil
	delete(m.clearedFields, document.FieldStructuredData)
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *DocumentMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *DocumentMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *DocumentMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[document.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *DocumentMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, document.FieldProcessingStartedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *DocumentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DocumentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DocumentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DocumentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DocumentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *DocumentMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *DocumentMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *DocumentMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *DocumentMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *DocumentMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetLastError sets the "last_error" field.
func (m *DocumentMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *DocumentMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *DocumentMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[document.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *DocumentMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *DocumentMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, document.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentTagIDs adds the "document_tags" edge to the DocumentTag entity by ids.
func (m *DocumentMutation) AddDocumentTagIDs(ids ...string) {
	if m.document_tags == nil {
		m.document_tags = make(map[string]struct{})
	}
	for i := range ids {
		m.document_tags[ids[i]] = struct{}{}
	}
}

// ClearDocumentTags clears the "document_tags" edge to the DocumentTag entity.
func (m *DocumentMutation) ClearDocumentTags() {
	m.cleareddocument_tags = true
}

// DocumentTagsCleared reports if the "document_tags" edge to the DocumentTag entity was cleared.
func (m *DocumentMutation) DocumentTagsCleared() bool {
	return m.cleareddocument_tags
}

// RemoveDocumentTagIDs removes the "document_tags" edge to the DocumentTag entity by IDs.
func (m *DocumentMutation) RemoveDocumentTagIDs(ids ...string) {
	if m.removeddocument_tags == nil {
		m.removeddocument_tags = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_tags, ids[i])
		m.removeddocument_tags[ids[i]] = struct{}{}
	}
}

// RemovedDocumentTags returns the removed IDs of the "document_tags" edge to the DocumentTag entity.
func (m *DocumentMutation) RemovedDocumentTagsIDs() (ids []string) {
	for id := range m.removeddocument_tags {
		ids = append(ids, id)
	}
	return
}

// DocumentTagsIDs returns the "document_tags" edge IDs in the mutation.
func (m *DocumentMutation) DocumentTagsIDs() (ids []string) {
	for id := range m.document_tags {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentTags resets all changes to the "document_tags" edge.
func (m *DocumentMutation) ResetDocumentTags() {
	m.document_tags = nil
	m.cleareddocument_tags = false
	m.removeddocument_tags = nil
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by ids.
func (m *DocumentMutation) AddDocumentSeriesIDs(ids ...string) {
	if m.document_series == nil {
		m.document_series = make(map[string]struct{})
	}
	for i := range ids {
		m.document_series[ids[i]] = struct{}{}
	}
}

// ClearDocumentSeries clears the "document_series" edge to the DocumentSeries entity.
func (m *DocumentMutation) ClearDocumentSeries() {
	m.cleareddocument_series = true
}

// DocumentSeriesCleared reports if the "document_series" edge to the DocumentSeries entity was cleared.
func (m *DocumentMutation) DocumentSeriesCleared() bool {
	return m.cleareddocument_series
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to the DocumentSeries entity by IDs.
func (m *DocumentMutation) RemoveDocumentSeriesIDs(ids ...string) {
	if m.removeddocument_series == nil {
		m.removeddocument_series = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_series, ids[i])
		m.removeddocument_series[ids[i]] = struct{}{}
	}
}

// RemovedDocumentSeries returns the removed IDs of the "document_series" edge to the DocumentSeries entity.
func (m *DocumentMutation) RemovedDocumentSeriesIDs() (ids []string) {
	for id := range m.removeddocument_series {
		ids = append(ids, id)
	}
	return
}

// DocumentSeriesIDs returns the "document_series" edge IDs in the mutation.
func (m *DocumentMutation) DocumentSeriesIDs() (ids []string) {
	for id := range m.document_series {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentSeries resets all changes to the "document_series" edge.
func (m *DocumentMutation) ResetDocumentSeries() {
	m.document_series = nil
	m.cleareddocument_series = false
	m.removeddocument_series = nil
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by ids.
func (m *DocumentMutation) AddFileDocumentIDs(ids ...string) {
	if m.file_documents == nil {
		m.file_documents = make(map[string]struct{})
	}
	for i := range ids {
		m.file_documents[ids[i]] = struct{}{}
	}
}

// ClearFileDocuments clears the "file_documents" edge to the FileDocument entity.
func (m *DocumentMutation) ClearFileDocuments() {
	m.clearedfile_documents = true
}

// FileDocumentsCleared reports if the "file_documents" edge to the FileDocument entity was cleared.
func (m *DocumentMutation) FileDocumentsCleared() bool {
	return m.clearedfile_documents
}

// RemoveFileDocumentIDs removes the "file_documents" edge to the FileDocument entity by IDs.
func (m *DocumentMutation) RemoveFileDocumentIDs(ids ...string) {
	if m.removedfile_documents == nil {
		m.removedfile_documents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.file_documents, ids[i])
		m.removedfile_documents[ids[i]] = struct{}{}
	}
}

// RemovedFileDocuments returns the removed IDs of the "file_documents" edge to the FileDocument entity.
func (m *DocumentMutation) RemovedFileDocumentsIDs() (ids []string) {
	for id := range m.removedfile_documents {
		ids = append(ids, id)
	}
	return
}

// FileDocumentsIDs returns the "file_documents" edge IDs in the mutation.
func (m *DocumentMutation) FileDocumentsIDs() (ids []string) {
	for id := range m.file_documents {
		ids = append(ids, id)
	}
	return
}

// ResetFileDocuments resets all changes to the "file_documents" edge.
func (m *DocumentMutation) ResetFileDocuments() {
	m.file_documents = nil
	m.clearedfile_documents = false
	m.removedfile_documents = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.folder_path != nil {
		fields = append(fields, document.FieldFolderPath)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, document.FieldOcrConfidence)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.classification_confidence != nil {
		fields = append(fields, document.FieldClassificationConfidence)
	}
	if m.classification_reasoning != nil {
		fields = append(fields, document.FieldClassificationReasoning)
	}
	if m.summary != nil {
		fields = append(fields, document.FieldSummary)
	}
	if m.structured_data != nil {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.processing_started_at != nil {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, document.FieldMaxRetries)
	}
	if m.last_error != nil {
		fields = append(fields, document.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFolderPath:
		return m.FolderPath()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldSizeBytes:
		return m.SizeBytes()
	case document.FieldStatus:
		return m.Status()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldOcrConfidence:
		return m.OcrConfidence()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldClassificationConfidence:
		return m.ClassificationConfidence()
	case document.FieldClassificationReasoning:
		return m.ClassificationReasoning()
	case document.FieldSummary:
		return m.Summary()
	case document.FieldStructuredData:
		return m.StructuredData()
	case document.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case document.FieldRetryCount:
		return m.RetryCount()
	case document.FieldMaxRetries:
		return m.MaxRetries()
	case document.FieldLastError:
		return m.LastError()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFolderPath:
		return m.OldFolderPath(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldClassificationConfidence:
		return m.OldClassificationConfidence(ctx)
	case document.FieldClassificationReasoning:
		return m.OldClassificationReasoning(ctx)
	case document.FieldSummary:
		return m.OldSummary(ctx)
	case document.FieldStructuredData:
		return m.OldStructuredData(ctx)
	case document.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case document.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case document.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case document.FieldLastError:
		return m.OldLastError(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFolderPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolderPath(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(document.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldClassificationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationConfidence(v)
		return nil
	case document.FieldClassificationReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassificationReasoning(v)
		return nil
	case document.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case document.FieldStructuredData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredData(v)
		return nil
	case document.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case document.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case document.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, document.FieldOcrConfidence)
	}
	if m.addclassification_confidence != nil {
		fields = append(fields, document.FieldClassificationConfidence)
	}
	if m.addretry_count != nil {
		fields = append(fields, document.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, document.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSizeBytes:
		return m.AddedSizeBytes()
	case document.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case document.FieldClassificationConfidence:
		return m.AddedClassificationConfidence()
	case document.FieldRetryCount:
		return m.AddedRetryCount()
	case document.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case document.FieldOcrConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case document.FieldClassificationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassificationConfidence(v)
		return nil
	case document.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case document.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldMimeType) {
		fields = append(fields, document.FieldMimeType)
	}
	if m.FieldCleared(document.FieldSizeBytes) {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.FieldCleared(document.FieldExtractedText) {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.FieldCleared(document.FieldOcrConfidence) {
		fields = append(fields, document.FieldOcrConfidence)
	}
	if m.FieldCleared(document.FieldDocumentType) {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.FieldCleared(document.FieldClassificationConfidence) {
		fields = append(fields, document.FieldClassificationConfidence)
	}
	if m.FieldCleared(document.FieldClassificationReasoning) {
		fields = append(fields, document.FieldClassificationReasoning)
	}
	if m.FieldCleared(document.FieldSummary) {
		fields = append(fields, document.FieldSummary)
	}
	if m.FieldCleared(document.FieldStructuredData) {
		fields = append(fields, document.FieldStructuredData)
	}
	if m.FieldCleared(document.FieldProcessingStartedAt) {
		fields = append(fields, document.FieldProcessingStartedAt)
	}
	if m.FieldCleared(document.FieldLastError) {
		fields = append(fields, document.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldMimeType:
		m.ClearMimeType()
		return nil
	case document.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	case document.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case document.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case document.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case document.FieldClassificationConfidence:
		m.ClearClassificationConfidence()
		return nil
	case document.FieldClassificationReasoning:
		m.ClearClassificationReasoning()
		return nil
	case document.FieldSummary:
		m.ClearSummary()
		return nil
	case document.FieldStructuredData:
		m.ClearStructuredData()
		return nil
	case document.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case document.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFolderPath:
		m.ResetFolderPath()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldClassificationConfidence:
		m.ResetClassificationConfidence()
		return nil
	case document.FieldClassificationReasoning:
		m.ResetClassificationReasoning()
		return nil
	case document.FieldSummary:
		m.ResetSummary()
		return nil
	case document.FieldStructuredData:
		m.ResetStructuredData()
		return nil
	case document.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case document.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case document.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case document.FieldLastError:
		m.ResetLastError()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.document_tags != nil {
		edges = append(edges, document.EdgeDocumentTags)
	}
	if m.document_series != nil {
		edges = append(edges, document.EdgeDocumentSeries)
	}
	if m.file_documents != nil {
		edges = append(edges, document.EdgeFileDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDocumentTags:
		ids := make([]ent.Value, 0, len(m.document_tags))
		for id := range m.document_tags {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeDocumentSeries:
		ids := make([]ent.Value, 0, len(m.document_series))
		for id := range m.document_series {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFileDocuments:
		ids := make([]ent.Value, 0, len(m.file_documents))
		for id := range m.file_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocument_tags != nil {
		edges = append(edges, document.EdgeDocumentTags)
	}
	if m.removeddocument_series != nil {
		edges = append(edges, document.EdgeDocumentSeries)
	}
	if m.removedfile_documents != nil {
		edges = append(edges, document.EdgeFileDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeDocumentTags:
		ids := make([]ent.Value, 0, len(m.removeddocument_tags))
		for id := range m.removeddocument_tags {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeDocumentSeries:
		ids := make([]ent.Value, 0, len(m.removeddocument_series))
		for id := range m.removeddocument_series {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFileDocuments:
		ids := make([]ent.Value, 0, len(m.removedfile_documents))
		for id := range m.removedfile_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocument_tags {
		edges = append(edges, document.EdgeDocumentTags)
	}
	if m.cleareddocument_series {
		edges = append(edges, document.EdgeDocumentSeries)
	}
	if m.clearedfile_documents {
		edges = append(edges, document.EdgeFileDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeDocumentTags:
		return m.cleareddocument_tags
	case document.EdgeDocumentSeries:
		return m.cleareddocument_series
	case document.EdgeFileDocuments:
		return m.clearedfile_documents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeDocumentTags:
		m.ResetDocumentTags()
		return nil
	case document.EdgeDocumentSeries:
		m.ResetDocumentSeries()
		return nil
	case document.EdgeFileDocuments:
		m.ResetFileDocuments()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentSeriesMutation represents an operation that mutates the DocumentSeries nodes in the graph.
type DocumentSeriesMutation struct {
	config
	op              Op
	typ             string
	id              *string
	added_at        *time.Time
	added_by        *string
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	series          *string
	clearedseries   bool
	done            bool
	oldValue        func(context.Context) (*DocumentSeries, error)
	predicates      []predicate.DocumentSeries
}

var _ ent.Mutation = (*DocumentSeriesMutation)(nil)

// documentseriesOption allows management of the mutation configuration using functional options.
type documentseriesOption func(*DocumentSeriesMutation)

// newDocumentSeriesMutation creates new mutation for the DocumentSeries entity.
func newDocumentSeriesMutation(c config, op Op, opts ...documentseriesOption) *DocumentSeriesMutation {
	m := &DocumentSeriesMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentSeries,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentSeriesID sets the ID field of the mutation.
func withDocumentSeriesID(id string) documentseriesOption {
	return func(m *DocumentSeriesMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentSeries
		)
		m.oldValue = func(ctx context.Context) (*DocumentSeries, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentSeries.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentSeries sets the old DocumentSeries of the mutation.
func withDocumentSeries(node *DocumentSeries) documentseriesOption {
	return func(m *DocumentSeriesMutation) {
		m.oldValue = func(context.Context) (*DocumentSeries, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentSeriesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentSeriesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentSeries entities.
func (m *DocumentSeriesMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentSeriesMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentSeriesMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentSeries.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentSeriesMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentSeriesMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentSeries entity.
// If the DocumentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentSeriesMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentSeriesMutation) ResetDocumentID() {
	m.document = nil
}

// SetSeriesID sets the "series_id" field.
func (m *DocumentSeriesMutation) SetSeriesID(s string) {
	m.series = &s
}

// SeriesID returns the value of the "series_id" field in the mutation.
func (m *DocumentSeriesMutation) SeriesID() (r string, exists bool) {
	v := m.series
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriesID returns the old "series_id" field's value of the DocumentSeries entity.
// If the DocumentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentSeriesMutation) OldSeriesID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriesID: %w", err)
	}
	return oldValue.SeriesID, nil
}

// ResetSeriesID resets all changes to the "series_id" field.
func (m *DocumentSeriesMutation) ResetSeriesID() {
	m.series = nil
}

// SetAddedAt sets the "added_at" field.
func (m *DocumentSeriesMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *DocumentSeriesMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the DocumentSeries entity.
// If the DocumentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentSeriesMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *DocumentSeriesMutation) ResetAddedAt() {
	m.added_at = nil
}

// SetAddedBy sets the "added_by" field.
func (m *DocumentSeriesMutation) SetAddedBy(s string) {
	m.added_by = &s
}

// AddedBy returns the value of the "added_by" field in the mutation.
func (m *DocumentSeriesMutation) AddedBy() (r string, exists bool) {
	v := m.added_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedBy returns the old "added_by" field's value of the DocumentSeries entity.
// If the DocumentSeries object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentSeriesMutation) OldAddedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedBy: %w", err)
	}
	return oldValue.AddedBy, nil
}

// ResetAddedBy resets all changes to the "added_by" field.
func (m *DocumentSeriesMutation) ResetAddedBy() {
	m.added_by = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentSeriesMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentseries.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentSeriesMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentSeriesMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentSeriesMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearSeries clears the "series" edge to the Series entity.
func (m *DocumentSeriesMutation) ClearSeries() {
	m.clearedseries = true
	m.clearedFields[documentseries.FieldSeriesID] = struct{}{}
}

// SeriesCleared reports if the "series" edge to the Series entity was cleared.
func (m *DocumentSeriesMutation) SeriesCleared() bool {
	return m.clearedseries
}

// SeriesIDs returns the "series" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SeriesID instead. It exists only for internal usage by the builders.
func (m *DocumentSeriesMutation) SeriesIDs() (ids []string) {
	if id := m.series; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSeries resets all changes to the "series" edge.
func (m *DocumentSeriesMutation) ResetSeries() {
	m.series = nil
	m.clearedseries = false
}

// Where appends a list predicates to the DocumentSeriesMutation builder.
func (m *DocumentSeriesMutation) Where(ps ...predicate.DocumentSeries) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentSeriesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentSeriesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentSeries, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentSeriesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentSeriesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentSeries).
func (m *DocumentSeriesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentSeriesMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document != nil {
		fields = append(fields, documentseries.FieldDocumentID)
	}
	if m.series != nil {
		fields = append(fields, documentseries.FieldSeriesID)
	}
	if m.added_at != nil {
		fields = append(fields, documentseries.FieldAddedAt)
	}
	if m.added_by != nil {
		fields = append(fields, documentseries.FieldAddedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentSeriesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentseries.FieldDocumentID:
		return m.DocumentID()
	case documentseries.FieldSeriesID:
		return m.SeriesID()
	case documentseries.FieldAddedAt:
		return m.AddedAt()
	case documentseries.FieldAddedBy:
		return m.AddedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentSeriesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentseries.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentseries.FieldSeriesID:
		return m.OldSeriesID(ctx)
	case documentseries.FieldAddedAt:
		return m.OldAddedAt(ctx)
	case documentseries.FieldAddedBy:
		return m.OldAddedBy(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentSeries field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentSeriesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentseries.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentseries.FieldSeriesID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriesID(v)
		return nil
	case documentseries.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	case documentseries.FieldAddedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedBy(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentSeries field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentSeriesMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentSeriesMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentSeriesMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentSeries numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentSeriesMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentSeriesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentSeriesMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentSeries nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentSeriesMutation) ResetField(name string) error {
	switch name {
	case documentseries.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentseries.FieldSeriesID:
		m.ResetSeriesID()
		return nil
	case documentseries.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	case documentseries.FieldAddedBy:
		m.ResetAddedBy()
		return nil
	}
	return fmt.Errorf("unknown DocumentSeries field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentSeriesMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, documentseries.EdgeDocument)
	}
	if m.series != nil {
		edges = append(edges, documentseries.EdgeSeries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentSeriesMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentseries.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case documentseries.EdgeSeries:
		if id := m.series; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentSeriesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentSeriesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentSeriesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, documentseries.EdgeDocument)
	}
	if m.clearedseries {
		edges = append(edges, documentseries.EdgeSeries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentSeriesMutation) EdgeCleared(name string) bool {
	switch name {
	case documentseries.EdgeDocument:
		return m.cleareddocument
	case documentseries.EdgeSeries:
		return m.clearedseries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentSeriesMutation) ClearEdge(name string) error {
	switch name {
	case documentseries.EdgeDocument:
		m.ClearDocument()
		return nil
	case documentseries.EdgeSeries:
		m.ClearSeries()
		return nil
	}
	return fmt.Errorf("unknown DocumentSeries unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentSeriesMutation) ResetEdge(name string) error {
	switch name {
	case documentseries.EdgeDocument:
		m.ResetDocument()
		return nil
	case documentseries.EdgeSeries:
		m.ResetSeries()
		return nil
	}
	return fmt.Errorf("unknown DocumentSeries edge %s", name)
}

// DocumentTagMutation represents an operation that mutates the DocumentTag nodes in the graph.
type DocumentTagMutation struct {
	config
	op              Op
	typ             string
	id              *string
	source          *documenttag.Source
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	tag             *string
	clearedtag      bool
	done            bool
	oldValue        func(context.Context) (*DocumentTag, error)
	predicates      []predicate.DocumentTag
}

var _ ent.Mutation = (*DocumentTagMutation)(nil)

// documenttagOption allows management of the mutation configuration using functional options.
type documenttagOption func(*DocumentTagMutation)

// newDocumentTagMutation creates new mutation for the DocumentTag entity.
func newDocumentTagMutation(c config, op Op, opts ...documenttagOption) *DocumentTagMutation {
	m := &DocumentTagMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentTagID sets the ID field of the mutation.
func withDocumentTagID(id string) documenttagOption {
	return func(m *DocumentTagMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentTag
		)
		m.oldValue = func(ctx context.Context) (*DocumentTag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentTag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentTag sets the old DocumentTag of the mutation.
func withDocumentTag(node *DocumentTag) documenttagOption {
	return func(m *DocumentTagMutation) {
		m.oldValue = func(context.Context) (*DocumentTag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentTagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentTagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentTag entities.
func (m *DocumentTagMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentTagMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentTagMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentTag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentTagMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentTagMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentTag entity.
// If the DocumentTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTagMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentTagMutation) ResetDocumentID() {
	m.document = nil
}

// SetTagID sets the "tag_id" field.
func (m *DocumentTagMutation) SetTagID(s string) {
	m.tag = &s
}

// TagID returns the value of the "tag_id" field in the mutation.
func (m *DocumentTagMutation) TagID() (r string, exists bool) {
	v := m.tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTagID returns the old "tag_id" field's value of the DocumentTag entity.
// If the DocumentTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTagMutation) OldTagID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagID: %w", err)
	}
	return oldValue.TagID, nil
}

// ResetTagID resets all changes to the "tag_id" field.
func (m *DocumentTagMutation) ResetTagID() {
	m.tag = nil
}

// SetSource sets the "source" field.
func (m *DocumentTagMutation) SetSource(d documenttag.Source) {
	m.source = &d
}

// Source returns the value of the "source" field in the mutation.
func (m *DocumentTagMutation) Source() (r documenttag.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the DocumentTag entity.
// If the DocumentTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTagMutation) OldSource(ctx context.Context) (v documenttag.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DocumentTagMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentTagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentTagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentTag entity.
// If the DocumentTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentTagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentTagMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documenttag.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentTagMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentTagMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentTagMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearTag clears the "tag" edge to the Tag entity.
func (m *DocumentTagMutation) ClearTag() {
	m.clearedtag = true
	m.clearedFields[documenttag.FieldTagID] = struct{}{}
}

// TagCleared reports if the "tag" edge to the Tag entity was cleared.
func (m *DocumentTagMutation) TagCleared() bool {
	return m.clearedtag
}

// TagIDs returns the "tag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TagID instead. It exists only for internal usage by the builders.
func (m *DocumentTagMutation) TagIDs() (ids []string) {
	if id := m.tag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTag resets all changes to the "tag" edge.
func (m *DocumentTagMutation) ResetTag() {
	m.tag = nil
	m.clearedtag = false
}

// Where appends a list predicates to the DocumentTagMutation builder.
func (m *DocumentTagMutation) Where(ps ...predicate.DocumentTag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentTagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentTagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentTag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentTagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentTagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentTag).
func (m *DocumentTagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentTagMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document != nil {
		fields = append(fields, documenttag.FieldDocumentID)
	}
	if m.tag != nil {
		fields = append(fields, documenttag.FieldTagID)
	}
	if m.source != nil {
		fields = append(fields, documenttag.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, documenttag.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentTagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documenttag.FieldDocumentID:
		return m.DocumentID()
	case documenttag.FieldTagID:
		return m.TagID()
	case documenttag.FieldSource:
		return m.Source()
	case documenttag.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentTagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documenttag.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documenttag.FieldTagID:
		return m.OldTagID(ctx)
	case documenttag.FieldSource:
		return m.OldSource(ctx)
	case documenttag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentTag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documenttag.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documenttag.FieldTagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagID(v)
		return nil
	case documenttag.FieldSource:
		v, ok := value.(documenttag.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case documenttag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentTag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentTagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentTagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentTag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentTagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentTagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentTagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentTag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentTagMutation) ResetField(name string) error {
	switch name {
	case documenttag.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documenttag.FieldTagID:
		m.ResetTagID()
		return nil
	case documenttag.FieldSource:
		m.ResetSource()
		return nil
	case documenttag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentTag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentTagMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, documenttag.EdgeDocument)
	}
	if m.tag != nil {
		edges = append(edges, documenttag.EdgeTag)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentTagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documenttag.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case documenttag.EdgeTag:
		if id := m.tag; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentTagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentTagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentTagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, documenttag.EdgeDocument)
	}
	if m.clearedtag {
		edges = append(edges, documenttag.EdgeTag)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentTagMutation) EdgeCleared(name string) bool {
	switch name {
	case documenttag.EdgeDocument:
		return m.cleareddocument
	case documenttag.EdgeTag:
		return m.clearedtag
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentTagMutation) ClearEdge(name string) error {
	switch name {
	case documenttag.EdgeDocument:
		m.ClearDocument()
		return nil
	case documenttag.EdgeTag:
		m.ClearTag()
		return nil
	}
	return fmt.Errorf("unknown DocumentTag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentTagMutation) ResetEdge(name string) error {
	switch name {
	case documenttag.EdgeDocument:
		m.ResetDocument()
		return nil
	case documenttag.EdgeTag:
		m.ResetTag()
		return nil
	}
	return fmt.Errorf("unknown DocumentTag edge %s", name)
}

// FileMutation represents an operation that mutates the File nodes in the graph.
type FileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	tags                  *[]string
	appendtags            []string
	tag_signature         *string
	source                *file.Source
	status                *file.Status
	summary_text          *string
	summary_metadata      *map[string]interface{}
	last_generated_at     *time.Time
	processing_started_at *time.Time
	retry_count           *int
	addretry_count        *int
	max_retries           *int
	addmax_retries        *int
	last_error            *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	file_documents        map[string]struct{}
	removedfile_documents map[string]struct{}
	clearedfile_documents bool
	done                  bool
	oldValue              func(context.Context) (*File, error)
	predicates            []predicate.File
}

var _ ent.Mutation = (*FileMutation)(nil)

// fileOption allows management of the mutation configuration using functional options.
type fileOption func(*FileMutation)

// newFileMutation creates new mutation for the File entity.
func newFileMutation(c config, op Op, opts ...fileOption) *FileMutation {
	m := &FileMutation{
		config:        c,
		op:            op,
		typ:           TypeFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileID sets the ID field of the mutation.
func withFileID(id string) fileOption {
	return func(m *FileMutation) {
		var (
			err   error
			once  sync.Once
			value *File
		)
		m.oldValue = func(ctx context.Context) (*File, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().File.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFile sets the old File of the mutation.
func withFile(node *File) fileOption {
	return func(m *FileMutation) {
		m.oldValue = func(context.Context) (*File, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of File entities.
func (m *FileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().File.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTags sets the "tags" field.
func (m *FileMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *FileMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *FileMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *FileMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ResetTags resets all changes to the "tags" field.
func (m *FileMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
}

// SetTagSignature sets the "tag_signature" field.
func (m *FileMutation) SetTagSignature(s string) {
	m.tag_signature = &s
}

// TagSignature returns the value of the "tag_signature" field in the mutation.
func (m *FileMutation) TagSignature() (r string, exists bool) {
	v := m.tag_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldTagSignature returns the old "tag_signature" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldTagSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagSignature: %w", err)
	}
	return oldValue.TagSignature, nil
}

// ResetTagSignature resets all changes to the "tag_signature" field.
func (m *FileMutation) ResetTagSignature() {
	m.tag_signature = nil
}

// SetSource sets the "source" field.
func (m *FileMutation) SetSource(f file.Source) {
	m.source = &f
}

// Source returns the value of the "source" field in the mutation.
func (m *FileMutation) Source() (r file.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldSource(ctx context.Context) (v file.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FileMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *FileMutation) SetStatus(f file.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FileMutation) Status() (r file.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldStatus(ctx context.Context) (v file.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileMutation) ResetStatus() {
	m.status = nil
}

// SetSummaryText sets the "summary_text" field.
func (m *FileMutation) SetSummaryText(s string) {
	m.summary_text = &s
}

// SummaryText returns the value of the "summary_text" field in the mutation.
func (m *FileMutation) SummaryText() (r string, exists bool) {
	v := m.summary_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryText returns the old "summary_text" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldSummaryText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryText: %w", err)
	}
	return oldValue.SummaryText, nil
}

// ClearSummaryText clears the value of the "summary_text" field.
func (m *FileMutation) ClearSummaryText() {
	m.summary_text = nil
	m.clearedFields[file.FieldSummaryText] = struct{}{}
}

// SummaryTextCleared returns if the "summary_text" field was cleared in this mutation.
func (m *FileMutation) SummaryTextCleared() bool {
	_, ok := m.clearedFields[file.FieldSummaryText]
	return ok
}

// ResetSummaryText resets all changes to the "summary_text" field.
func (m *FileMutation) ResetSummaryText() {
	m.summary_text = nil
	delete(m.clearedFields, file.FieldSummaryText)
}

// SetSummaryMetadata sets the "summary_metadata" field.
func (m *FileMutation) SetSummaryMetadata(value map[string]interface{}) {
	m.summary_metadata = &value
}

// SummaryMetadata returns the value of the "summary_metadata" field in the mutation.
func (m *FileMutation) SummaryMetadata() (r map[string]interface{}, exists bool) {
	v := m.summary_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryMetadata returns the old "summary_metadata" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldSummaryMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryMetadata: %w", err)
	}
	return oldValue.SummaryMetadata, nil
}

// ClearSummaryMetadata clears the value of the "summary_metadata" field.
func (m *FileMutation) ClearSummaryMetadata() {
	m.summary_metadata = nil
	m.clearedFields[file.FieldSummaryMetadata] = struct{}{}
}

// SummaryMetadataCleared returns if the "summary_metadata" field was cleared in this mutation.
func (m *FileMutation) SummaryMetadataCleared() bool {
	_, ok := m.clearedFields[file.FieldSummaryMetadata]
	return ok
}

// ResetSummaryMetadata resets all changes to the "summary_metadata" field.
func (m *FileMutation) ResetSummaryMetadata() {
	m.summary_metadata = nil
	delete(m.clearedFields, file.FieldSummaryMetadata)
}

// SetLastGeneratedAt sets the "last_generated_at" field.
func (m *FileMutation) SetLastGeneratedAt(t time.Time) {
	m.last_generated_at = &t
}

// LastGeneratedAt returns the value of the "last_generated_at" field in the mutation.
func (m *FileMutation) LastGeneratedAt() (r time.Time, exists bool) {
	v := m.last_generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGeneratedAt returns the old "last_generated_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldLastGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGeneratedAt: %w", err)
	}
	return oldValue.LastGeneratedAt, nil
}

// ClearLastGeneratedAt clears the value of the "last_generated_at" field.
func (m *FileMutation) ClearLastGeneratedAt() {
	m.last_generated_at = nil
	m.clearedFields[file.FieldLastGeneratedAt] = struct{}{}
}

// LastGeneratedAtCleared returns if the "last_generated_at" field was cleared in this mutation.
func (m *FileMutation) LastGeneratedAtCleared() bool {
	_, ok := m.clearedFields[file.FieldLastGeneratedAt]
	return ok
}

// ResetLastGeneratedAt resets all changes to the "last_generated_at" field.
func (m *FileMutation) ResetLastGeneratedAt() {
	m.last_generated_at = nil
	delete(m.clearedFields, file.FieldLastGeneratedAt)
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *FileMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *FileMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *FileMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[file.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *FileMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[file.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *FileMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, file.FieldProcessingStartedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *FileMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *FileMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *FileMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *FileMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *FileMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *FileMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *FileMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *FileMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *FileMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *FileMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetLastError sets the "last_error" field.
func (m *FileMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *FileMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *FileMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[file.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *FileMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[file.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *FileMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, file.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *FileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the File entity.
// If the File object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFileDocumentIDs adds the "file_documents" edge to the FileDocument entity by ids.
func (m *FileMutation) AddFileDocumentIDs(ids ...string) {
	if m.file_documents == nil {
		m.file_documents = make(map[string]struct{})
	}
	for i := range ids {
		m.file_documents[ids[i]] = struct{}{}
	}
}

// ClearFileDocuments clears the "file_documents" edge to the FileDocument entity.
func (m *FileMutation) ClearFileDocuments() {
	m.clearedfile_documents = true
}

// FileDocumentsCleared reports if the "file_documents" edge to the FileDocument entity was cleared.
func (m *FileMutation) FileDocumentsCleared() bool {
	return m.clearedfile_documents
}

// RemoveFileDocumentIDs removes the "file_documents" edge to the FileDocument entity by IDs.
func (m *FileMutation) RemoveFileDocumentIDs(ids ...string) {
	if m.removedfile_documents == nil {
		m.removedfile_documents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.file_documents, ids[i])
		m.removedfile_documents[ids[i]] = struct{}{}
	}
}

// RemovedFileDocuments returns the removed IDs of the "file_documents" edge to the FileDocument entity.
func (m *FileMutation) RemovedFileDocumentsIDs() (ids []string) {
	for id := range m.removedfile_documents {
		ids = append(ids, id)
	}
	return
}

// FileDocumentsIDs returns the "file_documents" edge IDs in the mutation.
func (m *FileMutation) FileDocumentsIDs() (ids []string) {
	for id := range m.file_documents {
		ids = append(ids, id)
	}
	return
}

// ResetFileDocuments resets all changes to the "file_documents" edge.
func (m *FileMutation) ResetFileDocuments() {
	m.file_documents = nil
	m.clearedfile_documents = false
	m.removedfile_documents = nil
}

// Where appends a list predicates to the FileMutation builder.
func (m *FileMutation) Where(ps ...predicate.File) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.File, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (File).
func (m *FileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tags != nil {
		fields = append(fields, file.FieldTags)
	}
	if m.tag_signature != nil {
		fields = append(fields, file.FieldTagSignature)
	}
	if m.source != nil {
		fields = append(fields, file.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, file.FieldStatus)
	}
	if m.summary_text != nil {
		fields = append(fields, file.FieldSummaryText)
	}
	if m.summary_metadata != nil {
		fields = append(fields, file.FieldSummaryMetadata)
	}
	if m.last_generated_at != nil {
		fields = append(fields, file.FieldLastGeneratedAt)
	}
	if m.processing_started_at != nil {
		fields = append(fields, file.FieldProcessingStartedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, file.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, file.FieldMaxRetries)
	}
	if m.last_error != nil {
		fields = append(fields, file.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, file.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, file.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case file.FieldTags:
		return m.Tags()
	case file.FieldTagSignature:
		return m.TagSignature()
	case file.FieldSource:
		return m.Source()
	case file.FieldStatus:
		return m.Status()
	case file.FieldSummaryText:
		return m.SummaryText()
	case file.FieldSummaryMetadata:
		return m.SummaryMetadata()
	case file.FieldLastGeneratedAt:
		return m.LastGeneratedAt()
	case file.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case file.FieldRetryCount:
		return m.RetryCount()
	case file.FieldMaxRetries:
		return m.MaxRetries()
	case file.FieldLastError:
		return m.LastError()
	case file.FieldCreatedAt:
		return m.CreatedAt()
	case file.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case file.FieldTags:
		return m.OldTags(ctx)
	case file.FieldTagSignature:
		return m.OldTagSignature(ctx)
	case file.FieldSource:
		return m.OldSource(ctx)
	case file.FieldStatus:
		return m.OldStatus(ctx)
	case file.FieldSummaryText:
		return m.OldSummaryText(ctx)
	case file.FieldSummaryMetadata:
		return m.OldSummaryMetadata(ctx)
	case file.FieldLastGeneratedAt:
		return m.OldLastGeneratedAt(ctx)
	case file.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case file.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case file.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case file.FieldLastError:
		return m.OldLastError(ctx)
	case file.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case file.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown File field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case file.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case file.FieldTagSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagSignature(v)
		return nil
	case file.FieldSource:
		v, ok := value.(file.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case file.FieldStatus:
		v, ok := value.(file.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case file.FieldSummaryText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryText(v)
		return nil
	case file.FieldSummaryMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryMetadata(v)
		return nil
	case file.FieldLastGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGeneratedAt(v)
		return nil
	case file.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case file.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case file.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case file.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case file.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case file.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, file.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, file.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case file.FieldRetryCount:
		return m.AddedRetryCount()
	case file.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case file.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case file.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown File numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(file.FieldSummaryText) {
		fields = append(fields, file.FieldSummaryText)
	}
	if m.FieldCleared(file.FieldSummaryMetadata) {
		fields = append(fields, file.FieldSummaryMetadata)
	}
	if m.FieldCleared(file.FieldLastGeneratedAt) {
		fields = append(fields, file.FieldLastGeneratedAt)
	}
	if m.FieldCleared(file.FieldProcessingStartedAt) {
		fields = append(fields, file.FieldProcessingStartedAt)
	}
	if m.FieldCleared(file.FieldLastError) {
		fields = append(fields, file.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileMutation) ClearField(name string) error {
	switch name {
	case file.FieldSummaryText:
		m.ClearSummaryText()
		return nil
	case file.FieldSummaryMetadata:
		m.ClearSummaryMetadata()
		return nil
	case file.FieldLastGeneratedAt:
		m.ClearLastGeneratedAt()
		return nil
	case file.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case file.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown File nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileMutation) ResetField(name string) error {
	switch name {
	case file.FieldTags:
		m.ResetTags()
		return nil
	case file.FieldTagSignature:
		m.ResetTagSignature()
		return nil
	case file.FieldSource:
		m.ResetSource()
		return nil
	case file.FieldStatus:
		m.ResetStatus()
		return nil
	case file.FieldSummaryText:
		m.ResetSummaryText()
		return nil
	case file.FieldSummaryMetadata:
		m.ResetSummaryMetadata()
		return nil
	case file.FieldLastGeneratedAt:
		m.ResetLastGeneratedAt()
		return nil
	case file.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case file.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case file.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case file.FieldLastError:
		m.ResetLastError()
		return nil
	case file.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case file.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown File field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file_documents != nil {
		edges = append(edges, file.EdgeFileDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeFileDocuments:
		ids := make([]ent.Value, 0, len(m.file_documents))
		for id := range m.file_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfile_documents != nil {
		edges = append(edges, file.EdgeFileDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case file.EdgeFileDocuments:
		ids := make([]ent.Value, 0, len(m.removedfile_documents))
		for id := range m.removedfile_documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile_documents {
		edges = append(edges, file.EdgeFileDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileMutation) EdgeCleared(name string) bool {
	switch name {
	case file.EdgeFileDocuments:
		return m.clearedfile_documents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown File unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileMutation) ResetEdge(name string) error {
	switch name {
	case file.EdgeFileDocuments:
		m.ResetFileDocuments()
		return nil
	}
	return fmt.Errorf("unknown File edge %s", name)
}

// FileDocumentMutation represents an operation that mutates the FileDocument nodes in the graph.
type FileDocumentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	added_at        *time.Time
	clearedFields   map[string]struct{}
	file            *string
	clearedfile     bool
	document        *string
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*FileDocument, error)
	predicates      []predicate.FileDocument
}

var _ ent.Mutation = (*FileDocumentMutation)(nil)

// filedocumentOption allows management of the mutation configuration using functional options.
type filedocumentOption func(*FileDocumentMutation)

// newFileDocumentMutation creates new mutation for the FileDocument entity.
func newFileDocumentMutation(c config, op Op, opts ...filedocumentOption) *FileDocumentMutation {
	m := &FileDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeFileDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileDocumentID sets the ID field of the mutation.
func withFileDocumentID(id string) filedocumentOption {
	return func(m *FileDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *FileDocument
		)
		m.oldValue = func(ctx context.Context) (*FileDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileDocument sets the old FileDocument of the mutation.
func withFileDocument(node *FileDocument) filedocumentOption {
	return func(m *FileDocumentMutation) {
		m.oldValue = func(context.Context) (*FileDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileDocument entities.
func (m *FileDocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileDocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileDocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *FileDocumentMutation) SetFileID(s string) {
	m.file = &s
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *FileDocumentMutation) FileID() (r string, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the FileDocument entity.
// If the FileDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDocumentMutation) OldFileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *FileDocumentMutation) ResetFileID() {
	m.file = nil
}

// SetDocumentID sets the "document_id" field.
func (m *FileDocumentMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *FileDocumentMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the FileDocument entity.
// If the FileDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDocumentMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *FileDocumentMutation) ResetDocumentID() {
	m.document = nil
}

// SetAddedAt sets the "added_at" field.
func (m *FileDocumentMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *FileDocumentMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the FileDocument entity.
// If the FileDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileDocumentMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *FileDocumentMutation) ResetAddedAt() {
	m.added_at = nil
}

// ClearFile clears the "file" edge to the File entity.
func (m *FileDocumentMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[filedocument.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the File entity was cleared.
func (m *FileDocumentMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *FileDocumentMutation) FileIDs() (ids []string) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *FileDocumentMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *FileDocumentMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[filedocument.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *FileDocumentMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *FileDocumentMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *FileDocumentMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the FileDocumentMutation builder.
func (m *FileDocumentMutation) Where(ps ...predicate.FileDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileDocument).
func (m *FileDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileDocumentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.file != nil {
		fields = append(fields, filedocument.FieldFileID)
	}
	if m.document != nil {
		fields = append(fields, filedocument.FieldDocumentID)
	}
	if m.added_at != nil {
		fields = append(fields, filedocument.FieldAddedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filedocument.FieldFileID:
		return m.FileID()
	case filedocument.FieldDocumentID:
		return m.DocumentID()
	case filedocument.FieldAddedAt:
		return m.AddedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filedocument.FieldFileID:
		return m.OldFileID(ctx)
	case filedocument.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case filedocument.FieldAddedAt:
		return m.OldAddedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FileDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filedocument.FieldFileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case filedocument.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case filedocument.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FileDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileDocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileDocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileDocumentMutation) ResetField(name string) error {
	switch name {
	case filedocument.FieldFileID:
		m.ResetFileID()
		return nil
	case filedocument.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case filedocument.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	}
	return fmt.Errorf("unknown FileDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, filedocument.EdgeFile)
	}
	if m.document != nil {
		edges = append(edges, filedocument.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filedocument.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case filedocument.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, filedocument.EdgeFile)
	}
	if m.cleareddocument {
		edges = append(edges, filedocument.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case filedocument.EdgeFile:
		return m.clearedfile
	case filedocument.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileDocumentMutation) ClearEdge(name string) error {
	switch name {
	case filedocument.EdgeFile:
		m.ClearFile()
		return nil
	case filedocument.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown FileDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileDocumentMutation) ResetEdge(name string) error {
	switch name {
	case filedocument.EdgeFile:
		m.ResetFile()
		return nil
	case filedocument.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown FileDocument edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	prompt_type           *prompt.PromptType
	document_type         *string
	version               *int
	addversion            *int
	prompt_text           *string
	performance_score     *float64
	addperformance_score  *float64
	can_evolve            *bool
	score_ceiling         *float64
	addscore_ceiling      *float64
	regenerates_on_update *bool
	is_active             *bool
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Prompt, error)
	predicates            []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPromptType sets the "prompt_type" field.
func (m *PromptMutation) SetPromptType(pt prompt.PromptType) {
	m.prompt_type = &pt
}

// PromptType returns the value of the "prompt_type" field in the mutation.
func (m *PromptMutation) PromptType() (r prompt.PromptType, exists bool) {
	v := m.prompt_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptType returns the old "prompt_type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPromptType(ctx context.Context) (v prompt.PromptType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptType: %w", err)
	}
	return oldValue.PromptType, nil
}

// ResetPromptType resets all changes to the "prompt_type" field.
func (m *PromptMutation) ResetPromptType() {
	m.prompt_type = nil
}

// SetDocumentType sets the "document_type" field.
func (m *PromptMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *PromptMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldDocumentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *PromptMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[prompt.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *PromptMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[prompt.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *PromptMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, prompt.FieldDocumentType)
}

// SetVersion sets the "version" field.
func (m *PromptMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPromptText sets the "prompt_text" field.
func (m *PromptMutation) SetPromptText(s string) {
	m.prompt_text = &s
}

// PromptText returns the value of the "prompt_text" field in the mutation.
func (m *PromptMutation) PromptText() (r string, exists bool) {
	v := m.prompt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptText returns the old "prompt_text" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPromptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptText: %w", err)
	}
	return oldValue.PromptText, nil
}

// ResetPromptText resets all changes to the "prompt_text" field.
func (m *PromptMutation) ResetPromptText() {
	m.prompt_text = nil
}

// SetPerformanceScore sets the "performance_score" field.
func (m *PromptMutation) SetPerformanceScore(f float64) {
	m.performance_score = &f
	m.addperformance_score = nil
}

// PerformanceScore returns the value of the "performance_score" field in the mutation.
func (m *PromptMutation) PerformanceScore() (r float64, exists bool) {
	v := m.performance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceScore returns the old "performance_score" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPerformanceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceScore: %w", err)
	}
	return oldValue.PerformanceScore, nil
}

// AddPerformanceScore adds f to the "performance_score" field.
func (m *PromptMutation) AddPerformanceScore(f float64) {
	if m.addperformance_score != nil {
		*m.addperformance_score += f
	} else {
		m.addperformance_score = &f
	}
}

// AddedPerformanceScore returns the value that was added to the "performance_score" field in this mutation.
func (m *PromptMutation) AddedPerformanceScore() (r float64, exists bool) {
	v := m.addperformance_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearPerformanceScore clears the value of the "performance_score" field.
func (m *PromptMutation) ClearPerformanceScore() {
	m.performance_score = nil
	m.addperformance_score = nil
	m.clearedFields[prompt.FieldPerformanceScore] = struct{}{}
}

// PerformanceScoreCleared returns if the "performance_score" field was cleared in this mutation.
func (m *PromptMutation) PerformanceScoreCleared() bool {
	_, ok := m.clearedFields[prompt.FieldPerformanceScore]
	return ok
}

// ResetPerformanceScore resets all changes to the "performance_score" field.
func (m *PromptMutation) ResetPerformanceScore() {
	m.performance_score = nil
	m.addperformance_score = nil
	delete(m.clearedFields, prompt.FieldPerformanceScore)
}

// SetCanEvolve sets the "can_evolve" field.
func (m *PromptMutation) SetCanEvolve(b bool) {
	m.can_evolve = &b
}

// CanEvolve returns the value of the "can_evolve" field in the mutation.
func (m *PromptMutation) CanEvolve() (r bool, exists bool) {
	v := m.can_evolve
	if v == nil {
		return
	}
	return *v, true
}

// OldCanEvolve returns the old "can_evolve" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCanEvolve(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanEvolve is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanEvolve requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanEvolve: %w", err)
	}
	return oldValue.CanEvolve, nil
}

// ResetCanEvolve resets all changes to the "can_evolve" field.
func (m *PromptMutation) ResetCanEvolve() {
	m.can_evolve = nil
}

// SetScoreCeiling sets the "score_ceiling" field.
func (m *PromptMutation) SetScoreCeiling(f float64) {
	m.score_ceiling = &f
	m.addscore_ceiling = nil
}

// ScoreCeiling returns the value of the "score_ceiling" field in the mutation.
func (m *PromptMutation) ScoreCeiling() (r float64, exists bool) {
	v := m.score_ceiling
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreCeiling returns the old "score_ceiling" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldScoreCeiling(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreCeiling is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreCeiling requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreCeiling: %w", err)
	}
	return oldValue.ScoreCeiling, nil
}

// AddScoreCeiling adds f to the "score_ceiling" field.
func (m *PromptMutation) AddScoreCeiling(f float64) {
	if m.addscore_ceiling != nil {
		*m.addscore_ceiling += f
	} else {
		m.addscore_ceiling = &f
	}
}

// AddedScoreCeiling returns the value that was added to the "score_ceiling" field in this mutation.
func (m *PromptMutation) AddedScoreCeiling() (r float64, exists bool) {
	v := m.addscore_ceiling
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreCeiling clears the value of the "score_ceiling" field.
func (m *PromptMutation) ClearScoreCeiling() {
	m.score_ceiling = nil
	m.addscore_ceiling = nil
	m.clearedFields[prompt.FieldScoreCeiling] = struct{}{}
}

// ScoreCeilingCleared returns if the "score_ceiling" field was cleared in this mutation.
func (m *PromptMutation) ScoreCeilingCleared() bool {
	_, ok := m.clearedFields[prompt.FieldScoreCeiling]
	return ok
}

// ResetScoreCeiling resets all changes to the "score_ceiling" field.
func (m *PromptMutation) ResetScoreCeiling() {
	m.score_ceiling = nil
	m.addscore_ceiling = nil
	delete(m.clearedFields, prompt.FieldScoreCeiling)
}

// SetRegeneratesOnUpdate sets the "regenerates_on_update" field.
func (m *PromptMutation) SetRegeneratesOnUpdate(b bool) {
	m.regenerates_on_update = &b
}

// RegeneratesOnUpdate returns the value of the "regenerates_on_update" field in the mutation.
func (m *PromptMutation) RegeneratesOnUpdate() (r bool, exists bool) {
	v := m.regenerates_on_update
	if v == nil {
		return
	}
	return *v, true
}

// OldRegeneratesOnUpdate returns the old "regenerates_on_update" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldRegeneratesOnUpdate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegeneratesOnUpdate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegeneratesOnUpdate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegeneratesOnUpdate: %w", err)
	}
	return oldValue.RegeneratesOnUpdate, nil
}

// ResetRegeneratesOnUpdate resets all changes to the "regenerates_on_update" field.
func (m *PromptMutation) ResetRegeneratesOnUpdate() {
	m.regenerates_on_update = nil
}

// SetIsActive sets the "is_active" field.
func (m *PromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.prompt_type != nil {
		fields = append(fields, prompt.FieldPromptType)
	}
	if m.document_type != nil {
		fields = append(fields, prompt.FieldDocumentType)
	}
	if m.version != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.prompt_text != nil {
		fields = append(fields, prompt.FieldPromptText)
	}
	if m.performance_score != nil {
		fields = append(fields, prompt.FieldPerformanceScore)
	}
	if m.can_evolve != nil {
		fields = append(fields, prompt.FieldCanEvolve)
	}
	if m.score_ceiling != nil {
		fields = append(fields, prompt.FieldScoreCeiling)
	}
	if m.regenerates_on_update != nil {
		fields = append(fields, prompt.FieldRegeneratesOnUpdate)
	}
	if m.is_active != nil {
		fields = append(fields, prompt.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldPromptType:
		return m.PromptType()
	case prompt.FieldDocumentType:
		return m.DocumentType()
	case prompt.FieldVersion:
		return m.Version()
	case prompt.FieldPromptText:
		return m.PromptText()
	case prompt.FieldPerformanceScore:
		return m.PerformanceScore()
	case prompt.FieldCanEvolve:
		return m.CanEvolve()
	case prompt.FieldScoreCeiling:
		return m.ScoreCeiling()
	case prompt.FieldRegeneratesOnUpdate:
		return m.RegeneratesOnUpdate()
	case prompt.FieldIsActive:
		return m.IsActive()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	case prompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldPromptType:
		return m.OldPromptType(ctx)
	case prompt.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case prompt.FieldVersion:
		return m.OldVersion(ctx)
	case prompt.FieldPromptText:
		return m.OldPromptText(ctx)
	case prompt.FieldPerformanceScore:
		return m.OldPerformanceScore(ctx)
	case prompt.FieldCanEvolve:
		return m.OldCanEvolve(ctx)
	case prompt.FieldScoreCeiling:
		return m.OldScoreCeiling(ctx)
	case prompt.FieldRegeneratesOnUpdate:
		return m.OldRegeneratesOnUpdate(ctx)
	case prompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldPromptType:
		v, ok := value.(prompt.PromptType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptType(v)
		return nil
	case prompt.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompt.FieldPromptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptText(v)
		return nil
	case prompt.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceScore(v)
		return nil
	case prompt.FieldCanEvolve:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanEvolve(v)
		return nil
	case prompt.FieldScoreCeiling:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreCeiling(v)
		return nil
	case prompt.FieldRegeneratesOnUpdate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegeneratesOnUpdate(v)
		return nil
	case prompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.addperformance_score != nil {
		fields = append(fields, prompt.FieldPerformanceScore)
	}
	if m.addscore_ceiling != nil {
		fields = append(fields, prompt.FieldScoreCeiling)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldVersion:
		return m.AddedVersion()
	case prompt.FieldPerformanceScore:
		return m.AddedPerformanceScore()
	case prompt.FieldScoreCeiling:
		return m.AddedScoreCeiling()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case prompt.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerformanceScore(v)
		return nil
	case prompt.FieldScoreCeiling:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreCeiling(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldDocumentType) {
		fields = append(fields, prompt.FieldDocumentType)
	}
	if m.FieldCleared(prompt.FieldPerformanceScore) {
		fields = append(fields, prompt.FieldPerformanceScore)
	}
	if m.FieldCleared(prompt.FieldScoreCeiling) {
		fields = append(fields, prompt.FieldScoreCeiling)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case prompt.FieldPerformanceScore:
		m.ClearPerformanceScore()
		return nil
	case prompt.FieldScoreCeiling:
		m.ClearScoreCeiling()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldPromptType:
		m.ResetPromptType()
		return nil
	case prompt.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case prompt.FieldVersion:
		m.ResetVersion()
		return nil
	case prompt.FieldPromptText:
		m.ResetPromptText()
		return nil
	case prompt.FieldPerformanceScore:
		m.ResetPerformanceScore()
		return nil
	case prompt.FieldCanEvolve:
		m.ResetCanEvolve()
		return nil
	case prompt.FieldScoreCeiling:
		m.ResetScoreCeiling()
		return nil
	case prompt.FieldRegeneratesOnUpdate:
		m.ResetRegeneratesOnUpdate()
		return nil
	case prompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// SeriesMutation represents an operation that mutates the Series nodes in the graph.
type SeriesMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	title                  *string
	entity                 *string
	series_type            *string
	frequency              *string
	description            *string
	metadata               *map[string]interface{}
	owner                  *string
	first_document_date    *time.Time
	last_document_date     *time.Time
	document_count         *int
	adddocument_count      *int
	status                 *series.Status
	source                 *series.Source
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	document_series        map[string]struct{}
	removeddocument_series map[string]struct{}
	cleareddocument_series bool
	done                   bool
	oldValue               func(context.Context) (*Series, error)
	predicates             []predicate.Series
}

var _ ent.Mutation = (*SeriesMutation)(nil)

// seriesOption allows management of the mutation configuration using functional options.
type seriesOption func(*SeriesMutation)

// newSeriesMutation creates new mutation for the Series entity.
func newSeriesMutation(c config, op Op, opts ...seriesOption) *SeriesMutation {
	m := &SeriesMutation{
		config:        c,
		op:            op,
		typ:           TypeSeries,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeriesID sets the ID field of the mutation.
func withSeriesID(id string) seriesOption {
	return func(m *SeriesMutation) {
		var (
			err   error
			once  sync.Once
			value *Series
		)
		m.oldValue = func(ctx context.Context) (*Series, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Series.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeries sets the old Series of the mutation.
func withSeries(node *Series) seriesOption {
	return func(m *SeriesMutation) {
		m.oldValue = func(context.Context) (*Series, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeriesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeriesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Series entities.
func (m *SeriesMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeriesMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeriesMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Series.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SeriesMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SeriesMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SeriesMutation) ResetTitle() {
	m.title = nil
}

// SetEntity sets the "entity" field.
func (m *SeriesMutation) SetEntity(s string) {
	m.entity = &s
}

// Entity returns the value of the "entity" field in the mutation.
func (m *SeriesMutation) Entity() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntity returns the old "entity" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntity: %w", err)
	}
	return oldValue.Entity, nil
}

// ResetEntity resets all changes to the "entity" field.
func (m *SeriesMutation) ResetEntity() {
	m.entity = nil
}

// SetSeriesType sets the "series_type" field.
func (m *SeriesMutation) SetSeriesType(s string) {
	m.series_type = &s
}

// SeriesType returns the value of the "series_type" field in the mutation.
func (m *SeriesMutation) SeriesType() (r string, exists bool) {
	v := m.series_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriesType returns the old "series_type" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldSeriesType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriesType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriesType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriesType: %w", err)
	}
	return oldValue.SeriesType, nil
}

// ResetSeriesType resets all changes to the "series_type" field.
func (m *SeriesMutation) ResetSeriesType() {
	m.series_type = nil
}

// SetFrequency sets the "frequency" field.
func (m *SeriesMutation) SetFrequency(s string) {
	m.frequency = &s
}

// Frequency returns the value of the "frequency" field in the mutation.
func (m *SeriesMutation) Frequency() (r string, exists bool) {
	v := m.frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldFrequency returns the old "frequency" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrequency: %w", err)
	}
	return oldValue.Frequency, nil
}

// ResetFrequency resets all changes to the "frequency" field.
func (m *SeriesMutation) ResetFrequency() {
	m.frequency = nil
}

// SetDescription sets the "description" field.
func (m *SeriesMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SeriesMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SeriesMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[series.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SeriesMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[series.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SeriesMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, series.FieldDescription)
}

// SetMetadata sets the "metadata" field.
func (m *SeriesMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SeriesMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SeriesMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[series.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SeriesMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[series.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SeriesMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, series.FieldMetadata)
}

// SetOwner sets the "owner" field.
func (m *SeriesMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *SeriesMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *SeriesMutation) ResetOwner() {
	m.owner = nil
}

// SetFirstDocumentDate sets the "first_document_date" field.
func (m *SeriesMutation) SetFirstDocumentDate(t time.Time) {
	m.first_document_date = &t
}

// FirstDocumentDate returns the value of the "first_document_date" field in the mutation.
func (m *SeriesMutation) FirstDocumentDate() (r time.Time, exists bool) {
	v := m.first_document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDocumentDate returns the old "first_document_date" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldFirstDocumentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDocumentDate: %w", err)
	}
	return oldValue.FirstDocumentDate, nil
}

// ClearFirstDocumentDate clears the value of the "first_document_date" field.
func (m *SeriesMutation) ClearFirstDocumentDate() {
	m.first_document_date = nil
	m.clearedFields[series.FieldFirstDocumentDate] = struct{}{}
}

// FirstDocumentDateCleared returns if the "first_document_date" field was cleared in this mutation.
func (m *SeriesMutation) FirstDocumentDateCleared() bool {
	_, ok := m.clearedFields[series.FieldFirstDocumentDate]
	return ok
}

// ResetFirstDocumentDate resets all changes to the "first_document_date" field.
func (m *SeriesMutation) ResetFirstDocumentDate() {
	m.first_document_date = nil
	delete(m.clearedFields, series.FieldFirstDocumentDate)
}

// SetLastDocumentDate sets the "last_document_date" field.
func (m *SeriesMutation) SetLastDocumentDate(t time.Time) {
	m.last_document_date = &t
}

// LastDocumentDate returns the value of the "last_document_date" field in the mutation.
func (m *SeriesMutation) LastDocumentDate() (r time.Time, exists bool) {
	v := m.last_document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDocumentDate returns the old "last_document_date" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldLastDocumentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDocumentDate: %w", err)
	}
	return oldValue.LastDocumentDate, nil
}

// ClearLastDocumentDate clears the value of the "last_document_date" field.
func (m *SeriesMutation) ClearLastDocumentDate() {
	m.last_document_date = nil
	m.clearedFields[series.FieldLastDocumentDate] = struct{}{}
}

// LastDocumentDateCleared returns if the "last_document_date" field was cleared in this mutation.
func (m *SeriesMutation) LastDocumentDateCleared() bool {
	_, ok := m.clearedFields[series.FieldLastDocumentDate]
	return ok
}

// ResetLastDocumentDate resets all changes to the "last_document_date" field.
func (m *SeriesMutation) ResetLastDocumentDate() {
	m.last_document_date = nil
	delete(m.clearedFields, series.FieldLastDocumentDate)
}

// SetDocumentCount sets the "document_count" field.
func (m *SeriesMutation) SetDocumentCount(i int) {
	m.document_count = &i
	m.adddocument_count = nil
}

// DocumentCount returns the value of the "document_count" field in the mutation.
func (m *SeriesMutation) DocumentCount() (r int, exists bool) {
	v := m.document_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentCount returns the old "document_count" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldDocumentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentCount: %w", err)
	}
	return oldValue.DocumentCount, nil
}

// AddDocumentCount adds i to the "document_count" field.
func (m *SeriesMutation) AddDocumentCount(i int) {
	if m.adddocument_count != nil {
		*m.adddocument_count += i
	} else {
		m.adddocument_count = &i
	}
}

// AddedDocumentCount returns the value that was added to the "document_count" field in this mutation.
func (m *SeriesMutation) AddedDocumentCount() (r int, exists bool) {
	v := m.adddocument_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocumentCount resets all changes to the "document_count" field.
func (m *SeriesMutation) ResetDocumentCount() {
	m.document_count = nil
	m.adddocument_count = nil
}

// SetStatus sets the "status" field.
func (m *SeriesMutation) SetStatus(s series.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SeriesMutation) Status() (r series.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldStatus(ctx context.Context) (v series.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SeriesMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *SeriesMutation) SetSource(s series.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SeriesMutation) Source() (r series.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldSource(ctx context.Context) (v series.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SeriesMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SeriesMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SeriesMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SeriesMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SeriesMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SeriesMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Series entity.
// If the Series object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SeriesMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentSeriesIDs adds the "document_series" edge to the DocumentSeries entity by ids.
func (m *SeriesMutation) AddDocumentSeriesIDs(ids ...string) {
	if m.document_series == nil {
		m.document_series = make(map[string]struct{})
	}
	for i := range ids {
		m.document_series[ids[i]] = struct{}{}
	}
}

// ClearDocumentSeries clears the "document_series" edge to the DocumentSeries entity.
func (m *SeriesMutation) ClearDocumentSeries() {
	m.cleareddocument_series = true
}

// DocumentSeriesCleared reports if the "document_series" edge to the DocumentSeries entity was cleared.
func (m *SeriesMutation) DocumentSeriesCleared() bool {
	return m.cleareddocument_series
}

// RemoveDocumentSeriesIDs removes the "document_series" edge to the DocumentSeries entity by IDs.
func (m *SeriesMutation) RemoveDocumentSeriesIDs(ids ...string) {
	if m.removeddocument_series == nil {
		m.removeddocument_series = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_series, ids[i])
		m.removeddocument_series[ids[i]] = struct{}{}
	}
}

// RemovedDocumentSeries returns the removed IDs of the "document_series" edge to the DocumentSeries entity.
func (m *SeriesMutation) RemovedDocumentSeriesIDs() (ids []string) {
	for id := range m.removeddocument_series {
		ids = append(ids, id)
	}
	return
}

// DocumentSeriesIDs returns the "document_series" edge IDs in the mutation.
func (m *SeriesMutation) DocumentSeriesIDs() (ids []string) {
	for id := range m.document_series {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentSeries resets all changes to the "document_series" edge.
func (m *SeriesMutation) ResetDocumentSeries() {
	m.document_series = nil
	m.cleareddocument_series = false
	m.removeddocument_series = nil
}

// Where appends a list predicates to the SeriesMutation builder.
func (m *SeriesMutation) Where(ps ...predicate.Series) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeriesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeriesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Series, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeriesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeriesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Series).
func (m *SeriesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeriesMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, series.FieldTitle)
	}
	if m.entity != nil {
		fields = append(fields, series.FieldEntity)
	}
	if m.series_type != nil {
		fields = append(fields, series.FieldSeriesType)
	}
	if m.frequency != nil {
		fields = append(fields, series.FieldFrequency)
	}
	if m.description != nil {
		fields = append(fields, series.FieldDescription)
	}
	if m.metadata != nil {
		fields = append(fields, series.FieldMetadata)
	}
	if m.owner != nil {
		fields = append(fields, series.FieldOwner)
	}
	if m.first_document_date != nil {
		fields = append(fields, series.FieldFirstDocumentDate)
	}
	if m.last_document_date != nil {
		fields = append(fields, series.FieldLastDocumentDate)
	}
	if m.document_count != nil {
		fields = append(fields, series.FieldDocumentCount)
	}
	if m.status != nil {
		fields = append(fields, series.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, series.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, series.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, series.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeriesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case series.FieldTitle:
		return m.Title()
	case series.FieldEntity:
		return m.Entity()
	case series.FieldSeriesType:
		return m.SeriesType()
	case series.FieldFrequency:
		return m.Frequency()
	case series.FieldDescription:
		return m.Description()
	case series.FieldMetadata:
		return m.Metadata()
	case series.FieldOwner:
		return m.Owner()
	case series.FieldFirstDocumentDate:
		return m.FirstDocumentDate()
	case series.FieldLastDocumentDate:
		return m.LastDocumentDate()
	case series.FieldDocumentCount:
		return m.DocumentCount()
	case series.FieldStatus:
		return m.Status()
	case series.FieldSource:
		return m.Source()
	case series.FieldCreatedAt:
		return m.CreatedAt()
	case series.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeriesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case series.FieldTitle:
		return m.OldTitle(ctx)
	case series.FieldEntity:
		return m.OldEntity(ctx)
	case series.FieldSeriesType:
		return m.OldSeriesType(ctx)
	case series.FieldFrequency:
		return m.OldFrequency(ctx)
	case series.FieldDescription:
		return m.OldDescription(ctx)
	case series.FieldMetadata:
		return m.OldMetadata(ctx)
	case series.FieldOwner:
		return m.OldOwner(ctx)
	case series.FieldFirstDocumentDate:
		return m.OldFirstDocumentDate(ctx)
	case series.FieldLastDocumentDate:
		return m.OldLastDocumentDate(ctx)
	case series.FieldDocumentCount:
		return m.OldDocumentCount(ctx)
	case series.FieldStatus:
		return m.OldStatus(ctx)
	case series.FieldSource:
		return m.OldSource(ctx)
	case series.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case series.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Series field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeriesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case series.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case series.FieldEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntity(v)
		return nil
	case series.FieldSeriesType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriesType(v)
		return nil
	case series.FieldFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrequency(v)
		return nil
	case series.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case series.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case series.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case series.FieldFirstDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDocumentDate(v)
		return nil
	case series.FieldLastDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDocumentDate(v)
		return nil
	case series.FieldDocumentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentCount(v)
		return nil
	case series.FieldStatus:
		v, ok := value.(series.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case series.FieldSource:
		v, ok := value.(series.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case series.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case series.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Series field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeriesMutation) AddedFields() []string {
	var fields []string
	if m.adddocument_count != nil {
		fields = append(fields, series.FieldDocumentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeriesMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case series.FieldDocumentCount:
		return m.AddedDocumentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeriesMutation) AddField(name string, value ent.Value) error {
	switch name {
	case series.FieldDocumentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Series numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeriesMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(series.FieldDescription) {
		fields = append(fields, series.FieldDescription)
	}
	if m.FieldCleared(series.FieldMetadata) {
		fields = append(fields, series.FieldMetadata)
	}
	if m.FieldCleared(series.FieldFirstDocumentDate) {
		fields = append(fields, series.FieldFirstDocumentDate)
	}
	if m.FieldCleared(series.FieldLastDocumentDate) {
		fields = append(fields, series.FieldLastDocumentDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeriesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeriesMutation) ClearField(name string) error {
	switch name {
	case series.FieldDescription:
		m.ClearDescription()
		return nil
	case series.FieldMetadata:
		m.ClearMetadata()
		return nil
	case series.FieldFirstDocumentDate:
		m.ClearFirstDocumentDate()
		return nil
	case series.FieldLastDocumentDate:
		m.ClearLastDocumentDate()
		return nil
	}
	return fmt.Errorf("unknown Series nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeriesMutation) ResetField(name string) error {
	switch name {
	case series.FieldTitle:
		m.ResetTitle()
		return nil
	case series.FieldEntity:
		m.ResetEntity()
		return nil
	case series.FieldSeriesType:
		m.ResetSeriesType()
		return nil
	case series.FieldFrequency:
		m.ResetFrequency()
		return nil
	case series.FieldDescription:
		m.ResetDescription()
		return nil
	case series.FieldMetadata:
		m.ResetMetadata()
		return nil
	case series.FieldOwner:
		m.ResetOwner()
		return nil
	case series.FieldFirstDocumentDate:
		m.ResetFirstDocumentDate()
		return nil
	case series.FieldLastDocumentDate:
		m.ResetLastDocumentDate()
		return nil
	case series.FieldDocumentCount:
		m.ResetDocumentCount()
		return nil
	case series.FieldStatus:
		m.ResetStatus()
		return nil
	case series.FieldSource:
		m.ResetSource()
		return nil
	case series.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case series.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Series field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeriesMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document_series != nil {
		edges = append(edges, series.EdgeDocumentSeries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeriesMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case series.EdgeDocumentSeries:
		ids := make([]ent.Value, 0, len(m.document_series))
		for id := range m.document_series {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeriesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocument_series != nil {
		edges = append(edges, series.EdgeDocumentSeries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeriesMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case series.EdgeDocumentSeries:
		ids := make([]ent.Value, 0, len(m.removeddocument_series))
		for id := range m.removeddocument_series {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeriesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument_series {
		edges = append(edges, series.EdgeDocumentSeries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeriesMutation) EdgeCleared(name string) bool {
	switch name {
	case series.EdgeDocumentSeries:
		return m.cleareddocument_series
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeriesMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Series unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeriesMutation) ResetEdge(name string) error {
	switch name {
	case series.EdgeDocumentSeries:
		m.ResetDocumentSeries()
		return nil
	}
	return fmt.Errorf("unknown Series edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	document_tags        map[string]struct{}
	removeddocument_tags map[string]struct{}
	cleareddocument_tags bool
	done                 bool
	oldValue             func(context.Context) (*Tag, error)
	predicates           []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id string) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tag entities.
func (m *TagMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDocumentTagIDs adds the "document_tags" edge to the DocumentTag entity by ids.
func (m *TagMutation) AddDocumentTagIDs(ids ...string) {
	if m.document_tags == nil {
		m.document_tags = make(map[string]struct{})
	}
	for i := range ids {
		m.document_tags[ids[i]] = struct{}{}
	}
}

// ClearDocumentTags clears the "document_tags" edge to the DocumentTag entity.
func (m *TagMutation) ClearDocumentTags() {
	m.cleareddocument_tags = true
}

// DocumentTagsCleared reports if the "document_tags" edge to the DocumentTag entity was cleared.
func (m *TagMutation) DocumentTagsCleared() bool {
	return m.cleareddocument_tags
}

// RemoveDocumentTagIDs removes the "document_tags" edge to the DocumentTag entity by IDs.
func (m *TagMutation) RemoveDocumentTagIDs(ids ...string) {
	if m.removeddocument_tags == nil {
		m.removeddocument_tags = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.document_tags, ids[i])
		m.removeddocument_tags[ids[i]] = struct{}{}
	}
}

// RemovedDocumentTags returns the removed IDs of the "document_tags" edge to the DocumentTag entity.
func (m *TagMutation) RemovedDocumentTagsIDs() (ids []string) {
	for id := range m.removeddocument_tags {
		ids = append(ids, id)
	}
	return
}

// DocumentTagsIDs returns the "document_tags" edge IDs in the mutation.
func (m *TagMutation) DocumentTagsIDs() (ids []string) {
	for id := range m.document_tags {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentTags resets all changes to the "document_tags" edge.
func (m *TagMutation) ResetDocumentTags() {
	m.document_tags = nil
	m.cleareddocument_tags = false
	m.removeddocument_tags = nil
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, tag.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	case tag.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	case tag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	case tag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document_tags != nil {
		edges = append(edges, tag.EdgeDocumentTags)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeDocumentTags:
		ids := make([]ent.Value, 0, len(m.document_tags))
		for id := range m.document_tags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocument_tags != nil {
		edges = append(edges, tag.EdgeDocumentTags)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeDocumentTags:
		ids := make([]ent.Value, 0, len(m.removeddocument_tags))
		for id := range m.removeddocument_tags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument_tags {
		edges = append(edges, tag.EdgeDocumentTags)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	switch name {
	case tag.EdgeDocumentTags:
		return m.cleareddocument_tags
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	switch name {
	case tag.EdgeDocumentTags:
		m.ResetDocumentTags()
		return nil
	}
	return fmt.Errorf("unknown Tag edge %s", name)
}
