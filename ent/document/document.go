// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldFolderPath holds the string denoting the folder_path field in the database.
	FieldFolderPath = "folder_path"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldClassificationConfidence holds the string denoting the classification_confidence field in the database.
	FieldClassificationConfidence = "classification_confidence"
	// FieldClassificationReasoning holds the string denoting the classification_reasoning field in the database.
	FieldClassificationReasoning = "classification_reasoning"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStructuredData holds the string denoting the structured_data field in the database.
	FieldStructuredData = "structured_data"
	// FieldProcessingStartedAt holds the string denoting the processing_started_at field in the database.
	FieldProcessingStartedAt = "processing_started_at"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentTags holds the string denoting the document_tags edge name in mutations.
	EdgeDocumentTags = "document_tags"
	// EdgeDocumentSeries holds the string denoting the document_series edge name in mutations.
	EdgeDocumentSeries = "document_series"
	// EdgeFileDocuments holds the string denoting the file_documents edge name in mutations.
	EdgeFileDocuments = "file_documents"
	// DocumentTagFieldID holds the string denoting the ID field of the DocumentTag.
	DocumentTagFieldID = "id"
	// DocumentSeriesFieldID holds the string denoting the ID field of the DocumentSeries.
	DocumentSeriesFieldID = "id"
	// FileDocumentFieldID holds the string denoting the ID field of the FileDocument.
	FileDocumentFieldID = "id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// DocumentTagsTable is the table that holds the document_tags relation/edge.
	DocumentTagsTable = "document_tags"
	// DocumentTagsInverseTable is the table name for the DocumentTag entity.
	// It exists in this package in order to avoid circular dependency with the "documenttag" package.
	DocumentTagsInverseTable = "document_tags"
	// DocumentTagsColumn is the table column denoting the document_tags relation/edge.
	DocumentTagsColumn = "document_id"
	// DocumentSeriesTable is the table that holds the document_series relation/edge.
	DocumentSeriesTable = "document_series"
	// DocumentSeriesInverseTable is the table name for the DocumentSeries entity.
	// It exists in this package in order to avoid circular dependency with the "documentseries" package.
	DocumentSeriesInverseTable = "document_series"
	// DocumentSeriesColumn is the table column denoting the document_series relation/edge.
	DocumentSeriesColumn = "document_id"
	// FileDocumentsTable is the table that holds the file_documents relation/edge.
	FileDocumentsTable = "file_documents"
	// FileDocumentsInverseTable is the table name for the FileDocument entity.
	// It exists in this package in order to avoid circular dependency with the "filedocument" package.
	FileDocumentsInverseTable = "file_documents"
	// FileDocumentsColumn is the table column denoting the file_documents relation/edge.
	FileDocumentsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFolderPath,
	FieldFilename,
	FieldMimeType,
	FieldSizeBytes,
	FieldStatus,
	FieldExtractedText,
	FieldOcrConfidence,
	FieldDocumentType,
	FieldClassificationConfidence,
	FieldClassificationReasoning,
	FieldSummary,
	FieldStructuredData,
	FieldProcessingStartedAt,
	FieldRetryCount,
	FieldMaxRetries,
	FieldLastError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending               Status = "pending"
	StatusOcrInProgress         Status = "ocr_in_progress"
	StatusOcrCompleted          Status = "ocr_completed"
	StatusClassifying           Status = "classifying"
	StatusClassified            Status = "classified"
	StatusScoringClassification Status = "scoring_classification"
	StatusScoredClassification  Status = "scored_classification"
	StatusSummarizing           Status = "summarizing"
	StatusSummarized            Status = "summarized"
	StatusScoringSummary        Status = "scoring_summary"
	StatusScoredSummary         Status = "scored_summary"
	StatusFiling                Status = "filing"
	StatusFiled                 Status = "filed"
	StatusCompleted             Status = "completed"
	StatusFailed                Status = "failed"
	StatusPermanentlyFailed     Status = "permanently_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusOcrInProgress, StatusOcrCompleted, StatusClassifying, StatusClassified, StatusScoringClassification, StatusScoredClassification, StatusSummarizing, StatusSummarized, StatusScoringSummary, StatusScoredSummary, StatusFiling, StatusFiled, StatusCompleted, StatusFailed, StatusPermanentlyFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFolderPath orders the results by the folder_path field.
func ByFolderPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFolderPath, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByClassificationConfidence orders the results by the classification_confidence field.
func ByClassificationConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassificationConfidence, opts...).ToFunc()
}

// ByClassificationReasoning orders the results by the classification_reasoning field.
func ByClassificationReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassificationReasoning, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByProcessingStartedAt orders the results by the processing_started_at field.
func ByProcessingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStartedAt, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentTagsCount orders the results by document_tags count.
func ByDocumentTagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentTagsStep(), opts...)
	}
}

// ByDocumentTags orders the results by document_tags terms.
func ByDocumentTags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentTagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentSeriesCount orders the results by document_series count.
func ByDocumentSeriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentSeriesStep(), opts...)
	}
}

// ByDocumentSeries orders the results by document_series terms.
func ByDocumentSeries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentSeriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFileDocumentsCount orders the results by file_documents count.
func ByFileDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFileDocumentsStep(), opts...)
	}
}

// ByFileDocuments orders the results by file_documents terms.
func ByFileDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentTagsInverseTable, DocumentTagFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, DocumentTagsTable, DocumentTagsColumn),
	)
}
func newDocumentSeriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentSeriesInverseTable, DocumentSeriesFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, DocumentSeriesTable, DocumentSeriesColumn),
	)
}
func newFileDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileDocumentsInverseTable, FileDocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, FileDocumentsTable, FileDocumentsColumn),
	)
}
