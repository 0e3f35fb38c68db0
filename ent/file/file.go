// Code generated by ent, DO NOT EDIT.

package file

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the file type in the database.
	Label = "file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "file_id"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldTagSignature holds the string denoting the tag_signature field in the database.
	FieldTagSignature = "tag_signature"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSummaryText holds the string denoting the summary_text field in the database.
	FieldSummaryText = "summary_text"
	// FieldSummaryMetadata holds the string denoting the summary_metadata field in the database.
	FieldSummaryMetadata = "summary_metadata"
	// FieldLastGeneratedAt holds the string denoting the last_generated_at field in the database.
	FieldLastGeneratedAt = "last_generated_at"
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
	// EdgeFileDocuments holds the string denoting the file_documents edge name in mutations.
	EdgeFileDocuments = "file_documents"
	// FileDocumentFieldID holds the string denoting the ID field of the FileDocument.
	FileDocumentFieldID = "id"
	// Table holds the table name of the file in the database.
	Table = "files"
	// FileDocumentsTable is the table that holds the file_documents relation/edge.
	FileDocumentsTable = "file_documents"
	// FileDocumentsInverseTable is the table name for the FileDocument entity.
	// It exists in this package in order to avoid circular dependency with the "filedocument" package.
	FileDocumentsInverseTable = "file_documents"
	// FileDocumentsColumn is the table column denoting the file_documents relation/edge.
	FileDocumentsColumn = "file_id"
)

// Columns holds all SQL columns for file fields.
var Columns = []string{
	FieldID,
	FieldTags,
	FieldTagSignature,
	FieldSource,
	FieldStatus,
	FieldSummaryText,
	FieldSummaryMetadata,
	FieldLastGeneratedAt,
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

// Source defines the type for the "source" enum field.
type Source string

// SourceLlm is the default value of the Source enum.
const DefaultSource = SourceLlm

// Source values.
const (
	SourceLlm  Source = "llm"
	SourceUser Source = "user"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceLlm, SourceUser:
		return nil
	default:
		return fmt.Errorf("file: invalid enum value for source field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending           Status = "pending"
	StatusGenerating        Status = "generating"
	StatusGenerated         Status = "generated"
	StatusOutdated          Status = "outdated"
	StatusRegenerating      Status = "regenerating"
	StatusPermanentlyFailed Status = "permanently_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusGenerating, StatusGenerated, StatusOutdated, StatusRegenerating, StatusPermanentlyFailed:
		return nil
	default:
		return fmt.Errorf("file: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the File queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTagSignature orders the results by the tag_signature field.
func ByTagSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagSignature, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySummaryText orders the results by the summary_text field.
func BySummaryText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryText, opts...).ToFunc()
}

// ByLastGeneratedAt orders the results by the last_generated_at field.
func ByLastGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGeneratedAt, opts...).ToFunc()
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
func newFileDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileDocumentsInverseTable, FileDocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, FileDocumentsTable, FileDocumentsColumn),
	)
}
