// Code generated by ent, DO NOT EDIT.

package series

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the series type in the database.
	Label = "series"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "series_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldEntity holds the string denoting the entity field in the database.
	FieldEntity = "entity"
	// FieldSeriesType holds the string denoting the series_type field in the database.
	FieldSeriesType = "series_type"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldFirstDocumentDate holds the string denoting the first_document_date field in the database.
	FieldFirstDocumentDate = "first_document_date"
	// FieldLastDocumentDate holds the string denoting the last_document_date field in the database.
	FieldLastDocumentDate = "last_document_date"
	// FieldDocumentCount holds the string denoting the document_count field in the database.
	FieldDocumentCount = "document_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumentSeries holds the string denoting the document_series edge name in mutations.
	EdgeDocumentSeries = "document_series"
	// DocumentSeriesFieldID holds the string denoting the ID field of the DocumentSeries.
	DocumentSeriesFieldID = "id"
	// Table holds the table name of the series in the database.
	Table = "series"
	// DocumentSeriesTable is the table that holds the document_series relation/edge.
	DocumentSeriesTable = "document_series"
	// DocumentSeriesInverseTable is the table name for the DocumentSeries entity.
	// It exists in this package in order to avoid circular dependency with the "documentseries" package.
	DocumentSeriesInverseTable = "document_series"
	// DocumentSeriesColumn is the table column denoting the document_series relation/edge.
	DocumentSeriesColumn = "series_id"
)

// Columns holds all SQL columns for series fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldEntity,
	FieldSeriesType,
	FieldFrequency,
	FieldDescription,
	FieldMetadata,
	FieldOwner,
	FieldFirstDocumentDate,
	FieldLastDocumentDate,
	FieldDocumentCount,
	FieldStatus,
	FieldSource,
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
	// DefaultFrequency holds the default value on creation for the "frequency" field.
	DefaultFrequency string
	// DefaultOwner holds the default value on creation for the "owner" field.
	DefaultOwner string
	// DefaultDocumentCount holds the default value on creation for the "document_count" field.
	DefaultDocumentCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusArchived:
		return nil
	default:
		return fmt.Errorf("series: invalid enum value for status field: %q", s)
	}
}

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
		return fmt.Errorf("series: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Series queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByEntity orders the results by the entity field.
func ByEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntity, opts...).ToFunc()
}

// BySeriesType orders the results by the series_type field.
func BySeriesType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeriesType, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByFirstDocumentDate orders the results by the first_document_date field.
func ByFirstDocumentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDocumentDate, opts...).ToFunc()
}

// ByLastDocumentDate orders the results by the last_document_date field.
func ByLastDocumentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDocumentDate, opts...).ToFunc()
}

// ByDocumentCount orders the results by the document_count field.
func ByDocumentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
func newDocumentSeriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentSeriesInverseTable, DocumentSeriesFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, DocumentSeriesTable, DocumentSeriesColumn),
	)
}
