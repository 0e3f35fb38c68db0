// Code generated by ent, DO NOT EDIT.

package prompt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the prompt type in the database.
	Label = "prompt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_id"
	// FieldPromptType holds the string denoting the prompt_type field in the database.
	FieldPromptType = "prompt_type"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldPerformanceScore holds the string denoting the performance_score field in the database.
	FieldPerformanceScore = "performance_score"
	// FieldCanEvolve holds the string denoting the can_evolve field in the database.
	FieldCanEvolve = "can_evolve"
	// FieldScoreCeiling holds the string denoting the score_ceiling field in the database.
	FieldScoreCeiling = "score_ceiling"
	// FieldRegeneratesOnUpdate holds the string denoting the regenerates_on_update field in the database.
	FieldRegeneratesOnUpdate = "regenerates_on_update"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the prompt in the database.
	Table = "prompts"
)

// Columns holds all SQL columns for prompt fields.
var Columns = []string{
	FieldID,
	FieldPromptType,
	FieldDocumentType,
	FieldVersion,
	FieldPromptText,
	FieldPerformanceScore,
	FieldCanEvolve,
	FieldScoreCeiling,
	FieldRegeneratesOnUpdate,
	FieldIsActive,
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
	// DefaultCanEvolve holds the default value on creation for the "can_evolve" field.
	DefaultCanEvolve bool
	// DefaultRegeneratesOnUpdate holds the default value on creation for the "regenerates_on_update" field.
	DefaultRegeneratesOnUpdate bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PromptType defines the type for the "prompt_type" enum field.
type PromptType string

// PromptType values.
const (
	PromptTypeClassifier       PromptType = "classifier"
	PromptTypeSummarizer       PromptType = "summarizer"
	PromptTypeSeriesDetector   PromptType = "series_detector"
	PromptTypeFileSummarizer   PromptType = "file_summarizer"
	PromptTypeSeriesSummarizer PromptType = "series_summarizer"
)

func (pt PromptType) String() string {
	return string(pt)
}

// PromptTypeValidator is a validator for the "prompt_type" field enum values. It is called by the builders before save.
func PromptTypeValidator(pt PromptType) error {
	switch pt {
	case PromptTypeClassifier, PromptTypeSummarizer, PromptTypeSeriesDetector, PromptTypeFileSummarizer, PromptTypeSeriesSummarizer:
		return nil
	default:
		return fmt.Errorf("prompt: invalid enum value for prompt_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Prompt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPromptType orders the results by the prompt_type field.
func ByPromptType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptType, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}

// ByPerformanceScore orders the results by the performance_score field.
func ByPerformanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceScore, opts...).ToFunc()
}

// ByCanEvolve orders the results by the can_evolve field.
func ByCanEvolve(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanEvolve, opts...).ToFunc()
}

// ByScoreCeiling orders the results by the score_ceiling field.
func ByScoreCeiling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreCeiling, opts...).ToFunc()
}

// ByRegeneratesOnUpdate orders the results by the regenerates_on_update field.
func ByRegeneratesOnUpdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegeneratesOnUpdate, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
