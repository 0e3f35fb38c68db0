// Code generated by ent, DO NOT EDIT.

package prompt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docfold/docfold/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Prompt {
	return predicate.Prompt(sql.FieldContainsFold(FieldID, id))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldDocumentType, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldVersion, v))
}

// PromptText applies equality check predicate on the "prompt_text" field. It's identical to PromptTextEQ.
func PromptText(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldPromptText, v))
}

// PerformanceScore applies equality check predicate on the "performance_score" field. It's identical to PerformanceScoreEQ.
func PerformanceScore(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldPerformanceScore, v))
}

// CanEvolve applies equality check predicate on the "can_evolve" field. It's identical to CanEvolveEQ.
func CanEvolve(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldCanEvolve, v))
}

// ScoreCeiling applies equality check predicate on the "score_ceiling" field. It's identical to ScoreCeilingEQ.
func ScoreCeiling(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldScoreCeiling, v))
}

// RegeneratesOnUpdate applies equality check predicate on the "regenerates_on_update" field. It's identical to RegeneratesOnUpdateEQ.
func RegeneratesOnUpdate(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldRegeneratesOnUpdate, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldUpdatedAt, v))
}

// PromptTypeEQ applies the EQ predicate on the "prompt_type" field.
func PromptTypeEQ(v PromptType) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldPromptType, v))
}

// PromptTypeNEQ applies the NEQ predicate on the "prompt_type" field.
func PromptTypeNEQ(v PromptType) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldPromptType, v))
}

// PromptTypeIn applies the In predicate on the "prompt_type" field.
func PromptTypeIn(vs ...PromptType) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldPromptType, vs...))
}

// PromptTypeNotIn applies the NotIn predicate on the "prompt_type" field.
func PromptTypeNotIn(vs ...PromptType) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldPromptType, vs...))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeIsNil applies the IsNil predicate on the "document_type" field.
func DocumentTypeIsNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldIsNull(FieldDocumentType))
}

// DocumentTypeNotNil applies the NotNil predicate on the "document_type" field.
func DocumentTypeNotNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldNotNull(FieldDocumentType))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldContainsFold(FieldDocumentType, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldVersion, v))
}

// PromptTextEQ applies the EQ predicate on the "prompt_text" field.
func PromptTextEQ(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldPromptText, v))
}

// PromptTextNEQ applies the NEQ predicate on the "prompt_text" field.
func PromptTextNEQ(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldPromptText, v))
}

// PromptTextIn applies the In predicate on the "prompt_text" field.
func PromptTextIn(vs ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldPromptText, vs...))
}

// PromptTextNotIn applies the NotIn predicate on the "prompt_text" field.
func PromptTextNotIn(vs ...string) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldPromptText, vs...))
}

// PromptTextGT applies the GT predicate on the "prompt_text" field.
func PromptTextGT(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldPromptText, v))
}

// PromptTextGTE applies the GTE predicate on the "prompt_text" field.
func PromptTextGTE(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldPromptText, v))
}

// PromptTextLT applies the LT predicate on the "prompt_text" field.
func PromptTextLT(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldPromptText, v))
}

// PromptTextLTE applies the LTE predicate on the "prompt_text" field.
func PromptTextLTE(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldPromptText, v))
}

// PromptTextContains applies the Contains predicate on the "prompt_text" field.
func PromptTextContains(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldContains(FieldPromptText, v))
}

// PromptTextHasPrefix applies the HasPrefix predicate on the "prompt_text" field.
func PromptTextHasPrefix(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldHasPrefix(FieldPromptText, v))
}

// PromptTextHasSuffix applies the HasSuffix predicate on the "prompt_text" field.
func PromptTextHasSuffix(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldHasSuffix(FieldPromptText, v))
}

// PromptTextEqualFold applies the EqualFold predicate on the "prompt_text" field.
func PromptTextEqualFold(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldEqualFold(FieldPromptText, v))
}

// PromptTextContainsFold applies the ContainsFold predicate on the "prompt_text" field.
func PromptTextContainsFold(v string) predicate.Prompt {
	return predicate.Prompt(sql.FieldContainsFold(FieldPromptText, v))
}

// PerformanceScoreEQ applies the EQ predicate on the "performance_score" field.
func PerformanceScoreEQ(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldPerformanceScore, v))
}

// PerformanceScoreNEQ applies the NEQ predicate on the "performance_score" field.
func PerformanceScoreNEQ(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldPerformanceScore, v))
}

// PerformanceScoreIn applies the In predicate on the "performance_score" field.
func PerformanceScoreIn(vs ...float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreNotIn applies the NotIn predicate on the "performance_score" field.
func PerformanceScoreNotIn(vs ...float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreGT applies the GT predicate on the "performance_score" field.
func PerformanceScoreGT(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldPerformanceScore, v))
}

// PerformanceScoreGTE applies the GTE predicate on the "performance_score" field.
func PerformanceScoreGTE(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldPerformanceScore, v))
}

// PerformanceScoreLT applies the LT predicate on the "performance_score" field.
func PerformanceScoreLT(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldPerformanceScore, v))
}

// PerformanceScoreLTE applies the LTE predicate on the "performance_score" field.
func PerformanceScoreLTE(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldPerformanceScore, v))
}

// PerformanceScoreIsNil applies the IsNil predicate on the "performance_score" field.
func PerformanceScoreIsNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldIsNull(FieldPerformanceScore))
}

// PerformanceScoreNotNil applies the NotNil predicate on the "performance_score" field.
func PerformanceScoreNotNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldNotNull(FieldPerformanceScore))
}

// CanEvolveEQ applies the EQ predicate on the "can_evolve" field.
func CanEvolveEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldCanEvolve, v))
}

// CanEvolveNEQ applies the NEQ predicate on the "can_evolve" field.
func CanEvolveNEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldCanEvolve, v))
}

// ScoreCeilingEQ applies the EQ predicate on the "score_ceiling" field.
func ScoreCeilingEQ(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldScoreCeiling, v))
}

// ScoreCeilingNEQ applies the NEQ predicate on the "score_ceiling" field.
func ScoreCeilingNEQ(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldScoreCeiling, v))
}

// ScoreCeilingIn applies the In predicate on the "score_ceiling" field.
func ScoreCeilingIn(vs ...float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldScoreCeiling, vs...))
}

// ScoreCeilingNotIn applies the NotIn predicate on the "score_ceiling" field.
func ScoreCeilingNotIn(vs ...float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldScoreCeiling, vs...))
}

// ScoreCeilingGT applies the GT predicate on the "score_ceiling" field.
func ScoreCeilingGT(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldScoreCeiling, v))
}

// ScoreCeilingGTE applies the GTE predicate on the "score_ceiling" field.
func ScoreCeilingGTE(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldScoreCeiling, v))
}

// ScoreCeilingLT applies the LT predicate on the "score_ceiling" field.
func ScoreCeilingLT(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldScoreCeiling, v))
}

// ScoreCeilingLTE applies the LTE predicate on the "score_ceiling" field.
func ScoreCeilingLTE(v float64) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldScoreCeiling, v))
}

// ScoreCeilingIsNil applies the IsNil predicate on the "score_ceiling" field.
func ScoreCeilingIsNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldIsNull(FieldScoreCeiling))
}

// ScoreCeilingNotNil applies the NotNil predicate on the "score_ceiling" field.
func ScoreCeilingNotNil() predicate.Prompt {
	return predicate.Prompt(sql.FieldNotNull(FieldScoreCeiling))
}

// RegeneratesOnUpdateEQ applies the EQ predicate on the "regenerates_on_update" field.
func RegeneratesOnUpdateEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldRegeneratesOnUpdate, v))
}

// RegeneratesOnUpdateNEQ applies the NEQ predicate on the "regenerates_on_update" field.
func RegeneratesOnUpdateNEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldRegeneratesOnUpdate, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prompt {
	return predicate.Prompt(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prompt) predicate.Prompt {
	return predicate.Prompt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prompt) predicate.Prompt {
	return predicate.Prompt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prompt) predicate.Prompt {
	return predicate.Prompt(sql.NotPredicates(p))
}
