// Code generated by ent, DO NOT EDIT.

package tag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tag type in the database.
	Label = "tag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tag_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocumentTags holds the string denoting the document_tags edge name in mutations.
	EdgeDocumentTags = "document_tags"
	// DocumentTagFieldID holds the string denoting the ID field of the DocumentTag.
	DocumentTagFieldID = "id"
	// Table holds the table name of the tag in the database.
	Table = "tags"
	// DocumentTagsTable is the table that holds the document_tags relation/edge.
	DocumentTagsTable = "document_tags"
	// DocumentTagsInverseTable is the table name for the DocumentTag entity.
	// It exists in this package in order to avoid circular dependency with the "documenttag" package.
	DocumentTagsInverseTable = "document_tags"
	// DocumentTagsColumn is the table column denoting the document_tags relation/edge.
	DocumentTagsColumn = "tag_id"
)

// Columns holds all SQL columns for tag fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tag queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
func newDocumentTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentTagsInverseTable, DocumentTagFieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, DocumentTagsTable, DocumentTagsColumn),
	)
}
