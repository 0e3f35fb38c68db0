// Code generated by ent, DO NOT EDIT.

package file

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docfold/docfold/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.File {
	return predicate.File(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.File {
	return predicate.File(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.File {
	return predicate.File(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.File {
	return predicate.File(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.File {
	return predicate.File(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.File {
	return predicate.File(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.File {
	return predicate.File(sql.FieldContainsFold(FieldID, id))
}

// TagSignature applies equality check predicate on the "tag_signature" field. It's identical to TagSignatureEQ.
func TagSignature(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldTagSignature, v))
}

// SummaryText applies equality check predicate on the "summary_text" field. It's identical to SummaryTextEQ.
func SummaryText(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldSummaryText, v))
}

// LastGeneratedAt applies equality check predicate on the "last_generated_at" field. It's identical to LastGeneratedAtEQ.
func LastGeneratedAt(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldLastGeneratedAt, v))
}

// ProcessingStartedAt applies equality check predicate on the "processing_started_at" field. It's identical to ProcessingStartedAtEQ.
func ProcessingStartedAt(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.File {
	return predicate.File(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.File {
	return predicate.File(sql.FieldEQ(FieldMaxRetries, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldUpdatedAt, v))
}

// TagSignatureEQ applies the EQ predicate on the "tag_signature" field.
func TagSignatureEQ(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldTagSignature, v))
}

// TagSignatureNEQ applies the NEQ predicate on the "tag_signature" field.
func TagSignatureNEQ(v string) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldTagSignature, v))
}

// TagSignatureIn applies the In predicate on the "tag_signature" field.
func TagSignatureIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldIn(FieldTagSignature, vs...))
}

// TagSignatureNotIn applies the NotIn predicate on the "tag_signature" field.
func TagSignatureNotIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldTagSignature, vs...))
}

// TagSignatureGT applies the GT predicate on the "tag_signature" field.
func TagSignatureGT(v string) predicate.File {
	return predicate.File(sql.FieldGT(FieldTagSignature, v))
}

// TagSignatureGTE applies the GTE predicate on the "tag_signature" field.
func TagSignatureGTE(v string) predicate.File {
	return predicate.File(sql.FieldGTE(FieldTagSignature, v))
}

// TagSignatureLT applies the LT predicate on the "tag_signature" field.
func TagSignatureLT(v string) predicate.File {
	return predicate.File(sql.FieldLT(FieldTagSignature, v))
}

// TagSignatureLTE applies the LTE predicate on the "tag_signature" field.
func TagSignatureLTE(v string) predicate.File {
	return predicate.File(sql.FieldLTE(FieldTagSignature, v))
}

// TagSignatureContains applies the Contains predicate on the "tag_signature" field.
func TagSignatureContains(v string) predicate.File {
	return predicate.File(sql.FieldContains(FieldTagSignature, v))
}

// TagSignatureHasPrefix applies the HasPrefix predicate on the "tag_signature" field.
func TagSignatureHasPrefix(v string) predicate.File {
	return predicate.File(sql.FieldHasPrefix(FieldTagSignature, v))
}

// TagSignatureHasSuffix applies the HasSuffix predicate on the "tag_signature" field.
func TagSignatureHasSuffix(v string) predicate.File {
	return predicate.File(sql.FieldHasSuffix(FieldTagSignature, v))
}

// TagSignatureEqualFold applies the EqualFold predicate on the "tag_signature" field.
func TagSignatureEqualFold(v string) predicate.File {
	return predicate.File(sql.FieldEqualFold(FieldTagSignature, v))
}

// TagSignatureContainsFold applies the ContainsFold predicate on the "tag_signature" field.
func TagSignatureContainsFold(v string) predicate.File {
	return predicate.File(sql.FieldContainsFold(FieldTagSignature, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.File {
	return predicate.File(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.File {
	return predicate.File(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldSource, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.File {
	return predicate.File(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.File {
	return predicate.File(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldStatus, vs...))
}

// SummaryTextEQ applies the EQ predicate on the "summary_text" field.
func SummaryTextEQ(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryTextNEQ applies the NEQ predicate on the "summary_text" field.
func SummaryTextNEQ(v string) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldSummaryText, v))
}

// SummaryTextIn applies the In predicate on the "summary_text" field.
func SummaryTextIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldIn(FieldSummaryText, vs...))
}

// SummaryTextNotIn applies the NotIn predicate on the "summary_text" field.
func SummaryTextNotIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldSummaryText, vs...))
}

// SummaryTextGT applies the GT predicate on the "summary_text" field.
func SummaryTextGT(v string) predicate.File {
	return predicate.File(sql.FieldGT(FieldSummaryText, v))
}

// SummaryTextGTE applies the GTE predicate on the "summary_text" field.
func SummaryTextGTE(v string) predicate.File {
	return predicate.File(sql.FieldGTE(FieldSummaryText, v))
}

// SummaryTextLT applies the LT predicate on the "summary_text" field.
func SummaryTextLT(v string) predicate.File {
	return predicate.File(sql.FieldLT(FieldSummaryText, v))
}

// SummaryTextLTE applies the LTE predicate on the "summary_text" field.
func SummaryTextLTE(v string) predicate.File {
	return predicate.File(sql.FieldLTE(FieldSummaryText, v))
}

// SummaryTextContains applies the Contains predicate on the "summary_text" field.
func SummaryTextContains(v string) predicate.File {
	return predicate.File(sql.FieldContains(FieldSummaryText, v))
}

// SummaryTextHasPrefix applies the HasPrefix predicate on the "summary_text" field.
func SummaryTextHasPrefix(v string) predicate.File {
	return predicate.File(sql.FieldHasPrefix(FieldSummaryText, v))
}

// SummaryTextHasSuffix applies the HasSuffix predicate on the "summary_text" field.
func SummaryTextHasSuffix(v string) predicate.File {
	return predicate.File(sql.FieldHasSuffix(FieldSummaryText, v))
}

// SummaryTextIsNil applies the IsNil predicate on the "summary_text" field.
func SummaryTextIsNil() predicate.File {
	return predicate.File(sql.FieldIsNull(FieldSummaryText))
}

// SummaryTextNotNil applies the NotNil predicate on the "summary_text" field.
func SummaryTextNotNil() predicate.File {
	return predicate.File(sql.FieldNotNull(FieldSummaryText))
}

// SummaryTextEqualFold applies the EqualFold predicate on the "summary_text" field.
func SummaryTextEqualFold(v string) predicate.File {
	return predicate.File(sql.FieldEqualFold(FieldSummaryText, v))
}

// SummaryTextContainsFold applies the ContainsFold predicate on the "summary_text" field.
func SummaryTextContainsFold(v string) predicate.File {
	return predicate.File(sql.FieldContainsFold(FieldSummaryText, v))
}

// SummaryMetadataIsNil applies the IsNil predicate on the "summary_metadata" field.
func SummaryMetadataIsNil() predicate.File {
	return predicate.File(sql.FieldIsNull(FieldSummaryMetadata))
}

// SummaryMetadataNotNil applies the NotNil predicate on the "summary_metadata" field.
func SummaryMetadataNotNil() predicate.File {
	return predicate.File(sql.FieldNotNull(FieldSummaryMetadata))
}

// LastGeneratedAtEQ applies the EQ predicate on the "last_generated_at" field.
func LastGeneratedAtEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldLastGeneratedAt, v))
}

// LastGeneratedAtNEQ applies the NEQ predicate on the "last_generated_at" field.
func LastGeneratedAtNEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldLastGeneratedAt, v))
}

// LastGeneratedAtIn applies the In predicate on the "last_generated_at" field.
func LastGeneratedAtIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldIn(FieldLastGeneratedAt, vs...))
}

// LastGeneratedAtNotIn applies the NotIn predicate on the "last_generated_at" field.
func LastGeneratedAtNotIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldLastGeneratedAt, vs...))
}

// LastGeneratedAtGT applies the GT predicate on the "last_generated_at" field.
func LastGeneratedAtGT(v time.Time) predicate.File {
	return predicate.File(sql.FieldGT(FieldLastGeneratedAt, v))
}

// LastGeneratedAtGTE applies the GTE predicate on the "last_generated_at" field.
func LastGeneratedAtGTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldGTE(FieldLastGeneratedAt, v))
}

// LastGeneratedAtLT applies the LT predicate on the "last_generated_at" field.
func LastGeneratedAtLT(v time.Time) predicate.File {
	return predicate.File(sql.FieldLT(FieldLastGeneratedAt, v))
}

// LastGeneratedAtLTE applies the LTE predicate on the "last_generated_at" field.
func LastGeneratedAtLTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldLTE(FieldLastGeneratedAt, v))
}

// LastGeneratedAtIsNil applies the IsNil predicate on the "last_generated_at" field.
func LastGeneratedAtIsNil() predicate.File {
	return predicate.File(sql.FieldIsNull(FieldLastGeneratedAt))
}

// LastGeneratedAtNotNil applies the NotNil predicate on the "last_generated_at" field.
func LastGeneratedAtNotNil() predicate.File {
	return predicate.File(sql.FieldNotNull(FieldLastGeneratedAt))
}

// ProcessingStartedAtEQ applies the EQ predicate on the "processing_started_at" field.
func ProcessingStartedAtEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtNEQ applies the NEQ predicate on the "processing_started_at" field.
func ProcessingStartedAtNEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIn applies the In predicate on the "processing_started_at" field.
func ProcessingStartedAtIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtNotIn applies the NotIn predicate on the "processing_started_at" field.
func ProcessingStartedAtNotIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtGT applies the GT predicate on the "processing_started_at" field.
func ProcessingStartedAtGT(v time.Time) predicate.File {
	return predicate.File(sql.FieldGT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtGTE applies the GTE predicate on the "processing_started_at" field.
func ProcessingStartedAtGTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldGTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLT applies the LT predicate on the "processing_started_at" field.
func ProcessingStartedAtLT(v time.Time) predicate.File {
	return predicate.File(sql.FieldLT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLTE applies the LTE predicate on the "processing_started_at" field.
func ProcessingStartedAtLTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldLTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIsNil applies the IsNil predicate on the "processing_started_at" field.
func ProcessingStartedAtIsNil() predicate.File {
	return predicate.File(sql.FieldIsNull(FieldProcessingStartedAt))
}

// ProcessingStartedAtNotNil applies the NotNil predicate on the "processing_started_at" field.
func ProcessingStartedAtNotNil() predicate.File {
	return predicate.File(sql.FieldNotNull(FieldProcessingStartedAt))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.File {
	return predicate.File(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.File {
	return predicate.File(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.File {
	return predicate.File(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.File {
	return predicate.File(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.File {
	return predicate.File(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.File {
	return predicate.File(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.File {
	return predicate.File(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.File {
	return predicate.File(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.File {
	return predicate.File(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.File {
	return predicate.File(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.File {
	return predicate.File(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.File {
	return predicate.File(sql.FieldLTE(FieldMaxRetries, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.File {
	return predicate.File(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.File {
	return predicate.File(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.File {
	return predicate.File(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.File {
	return predicate.File(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.File {
	return predicate.File(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.File {
	return predicate.File(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.File {
	return predicate.File(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.File {
	return predicate.File(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.File {
	return predicate.File(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.File {
	return predicate.File(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.File {
	return predicate.File(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.File {
	return predicate.File(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.File {
	return predicate.File(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.File {
	return predicate.File(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.File {
	return predicate.File(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.File {
	return predicate.File(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.File {
	return predicate.File(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.File {
	return predicate.File(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.File {
	return predicate.File(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFileDocuments applies the HasEdge predicate on the "file_documents" edge.
func HasFileDocuments() predicate.File {
	return predicate.File(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, FileDocumentsTable, FileDocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileDocumentsWith applies the HasEdge predicate on the "file_documents" edge with a given conditions (other predicates).
func HasFileDocumentsWith(preds ...predicate.FileDocument) predicate.File {
	return predicate.File(func(s *sql.Selector) {
		step := newFileDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.File) predicate.File {
	return predicate.File(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.File) predicate.File {
	return predicate.File(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.File) predicate.File {
	return predicate.File(sql.NotPredicates(p))
}
