// Code generated by ent, DO NOT EDIT.

package series

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docfold/docfold/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldTitle, v))
}

// Entity applies equality check predicate on the "entity" field. It's identical to EntityEQ.
func Entity(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldEntity, v))
}

// SeriesType applies equality check predicate on the "series_type" field. It's identical to SeriesTypeEQ.
func SeriesType(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldSeriesType, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldFrequency, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldDescription, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldOwner, v))
}

// FirstDocumentDate applies equality check predicate on the "first_document_date" field. It's identical to FirstDocumentDateEQ.
func FirstDocumentDate(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldFirstDocumentDate, v))
}

// LastDocumentDate applies equality check predicate on the "last_document_date" field. It's identical to LastDocumentDateEQ.
func LastDocumentDate(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldLastDocumentDate, v))
}

// DocumentCount applies equality check predicate on the "document_count" field. It's identical to DocumentCountEQ.
func DocumentCount(v int) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldDocumentCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldTitle, v))
}

// EntityEQ applies the EQ predicate on the "entity" field.
func EntityEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldEntity, v))
}

// EntityNEQ applies the NEQ predicate on the "entity" field.
func EntityNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldEntity, v))
}

// EntityIn applies the In predicate on the "entity" field.
func EntityIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldEntity, vs...))
}

// EntityNotIn applies the NotIn predicate on the "entity" field.
func EntityNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldEntity, vs...))
}

// EntityGT applies the GT predicate on the "entity" field.
func EntityGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldEntity, v))
}

// EntityGTE applies the GTE predicate on the "entity" field.
func EntityGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldEntity, v))
}

// EntityLT applies the LT predicate on the "entity" field.
func EntityLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldEntity, v))
}

// EntityLTE applies the LTE predicate on the "entity" field.
func EntityLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldEntity, v))
}

// EntityContains applies the Contains predicate on the "entity" field.
func EntityContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldEntity, v))
}

// EntityHasPrefix applies the HasPrefix predicate on the "entity" field.
func EntityHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldEntity, v))
}

// EntityHasSuffix applies the HasSuffix predicate on the "entity" field.
func EntityHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldEntity, v))
}

// EntityEqualFold applies the EqualFold predicate on the "entity" field.
func EntityEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldEntity, v))
}

// EntityContainsFold applies the ContainsFold predicate on the "entity" field.
func EntityContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldEntity, v))
}

// SeriesTypeEQ applies the EQ predicate on the "series_type" field.
func SeriesTypeEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldSeriesType, v))
}

// SeriesTypeNEQ applies the NEQ predicate on the "series_type" field.
func SeriesTypeNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldSeriesType, v))
}

// SeriesTypeIn applies the In predicate on the "series_type" field.
func SeriesTypeIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldSeriesType, vs...))
}

// SeriesTypeNotIn applies the NotIn predicate on the "series_type" field.
func SeriesTypeNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldSeriesType, vs...))
}

// SeriesTypeGT applies the GT predicate on the "series_type" field.
func SeriesTypeGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldSeriesType, v))
}

// SeriesTypeGTE applies the GTE predicate on the "series_type" field.
func SeriesTypeGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldSeriesType, v))
}

// SeriesTypeLT applies the LT predicate on the "series_type" field.
func SeriesTypeLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldSeriesType, v))
}

// SeriesTypeLTE applies the LTE predicate on the "series_type" field.
func SeriesTypeLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldSeriesType, v))
}

// SeriesTypeContains applies the Contains predicate on the "series_type" field.
func SeriesTypeContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldSeriesType, v))
}

// SeriesTypeHasPrefix applies the HasPrefix predicate on the "series_type" field.
func SeriesTypeHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldSeriesType, v))
}

// SeriesTypeHasSuffix applies the HasSuffix predicate on the "series_type" field.
func SeriesTypeHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldSeriesType, v))
}

// SeriesTypeEqualFold applies the EqualFold predicate on the "series_type" field.
func SeriesTypeEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldSeriesType, v))
}

// SeriesTypeContainsFold applies the ContainsFold predicate on the "series_type" field.
func SeriesTypeContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldSeriesType, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldFrequency, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Series {
	return predicate.Series(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Series {
	return predicate.Series(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldDescription, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Series {
	return predicate.Series(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Series {
	return predicate.Series(sql.FieldNotNull(FieldMetadata))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Series {
	return predicate.Series(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Series {
	return predicate.Series(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Series {
	return predicate.Series(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Series {
	return predicate.Series(sql.FieldContainsFold(FieldOwner, v))
}

// FirstDocumentDateEQ applies the EQ predicate on the "first_document_date" field.
func FirstDocumentDateEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldFirstDocumentDate, v))
}

// FirstDocumentDateNEQ applies the NEQ predicate on the "first_document_date" field.
func FirstDocumentDateNEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldFirstDocumentDate, v))
}

// FirstDocumentDateIn applies the In predicate on the "first_document_date" field.
func FirstDocumentDateIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldFirstDocumentDate, vs...))
}

// FirstDocumentDateNotIn applies the NotIn predicate on the "first_document_date" field.
func FirstDocumentDateNotIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldFirstDocumentDate, vs...))
}

// FirstDocumentDateGT applies the GT predicate on the "first_document_date" field.
func FirstDocumentDateGT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldFirstDocumentDate, v))
}

// FirstDocumentDateGTE applies the GTE predicate on the "first_document_date" field.
func FirstDocumentDateGTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldFirstDocumentDate, v))
}

// FirstDocumentDateLT applies the LT predicate on the "first_document_date" field.
func FirstDocumentDateLT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldFirstDocumentDate, v))
}

// FirstDocumentDateLTE applies the LTE predicate on the "first_document_date" field.
func FirstDocumentDateLTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldFirstDocumentDate, v))
}

// FirstDocumentDateIsNil applies the IsNil predicate on the "first_document_date" field.
func FirstDocumentDateIsNil() predicate.Series {
	return predicate.Series(sql.FieldIsNull(FieldFirstDocumentDate))
}

// FirstDocumentDateNotNil applies the NotNil predicate on the "first_document_date" field.
func FirstDocumentDateNotNil() predicate.Series {
	return predicate.Series(sql.FieldNotNull(FieldFirstDocumentDate))
}

// LastDocumentDateEQ applies the EQ predicate on the "last_document_date" field.
func LastDocumentDateEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldLastDocumentDate, v))
}

// LastDocumentDateNEQ applies the NEQ predicate on the "last_document_date" field.
func LastDocumentDateNEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldLastDocumentDate, v))
}

// LastDocumentDateIn applies the In predicate on the "last_document_date" field.
func LastDocumentDateIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldLastDocumentDate, vs...))
}

// LastDocumentDateNotIn applies the NotIn predicate on the "last_document_date" field.
func LastDocumentDateNotIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldLastDocumentDate, vs...))
}

// LastDocumentDateGT applies the GT predicate on the "last_document_date" field.
func LastDocumentDateGT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldLastDocumentDate, v))
}

// LastDocumentDateGTE applies the GTE predicate on the "last_document_date" field.
func LastDocumentDateGTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldLastDocumentDate, v))
}

// LastDocumentDateLT applies the LT predicate on the "last_document_date" field.
func LastDocumentDateLT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldLastDocumentDate, v))
}

// LastDocumentDateLTE applies the LTE predicate on the "last_document_date" field.
func LastDocumentDateLTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldLastDocumentDate, v))
}

// LastDocumentDateIsNil applies the IsNil predicate on the "last_document_date" field.
func LastDocumentDateIsNil() predicate.Series {
	return predicate.Series(sql.FieldIsNull(FieldLastDocumentDate))
}

// LastDocumentDateNotNil applies the NotNil predicate on the "last_document_date" field.
func LastDocumentDateNotNil() predicate.Series {
	return predicate.Series(sql.FieldNotNull(FieldLastDocumentDate))
}

// DocumentCountEQ applies the EQ predicate on the "document_count" field.
func DocumentCountEQ(v int) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldDocumentCount, v))
}

// DocumentCountNEQ applies the NEQ predicate on the "document_count" field.
func DocumentCountNEQ(v int) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldDocumentCount, v))
}

// DocumentCountIn applies the In predicate on the "document_count" field.
func DocumentCountIn(vs ...int) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldDocumentCount, vs...))
}

// DocumentCountNotIn applies the NotIn predicate on the "document_count" field.
func DocumentCountNotIn(vs ...int) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldDocumentCount, vs...))
}

// DocumentCountGT applies the GT predicate on the "document_count" field.
func DocumentCountGT(v int) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldDocumentCount, v))
}

// DocumentCountGTE applies the GTE predicate on the "document_count" field.
func DocumentCountGTE(v int) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldDocumentCount, v))
}

// DocumentCountLT applies the LT predicate on the "document_count" field.
func DocumentCountLT(v int) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldDocumentCount, v))
}

// DocumentCountLTE applies the LTE predicate on the "document_count" field.
func DocumentCountLTE(v int) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldDocumentCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldSource, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Series {
	return predicate.Series(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Series {
	return predicate.Series(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumentSeries applies the HasEdge predicate on the "document_series" edge.
func HasDocumentSeries() predicate.Series {
	return predicate.Series(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, DocumentSeriesTable, DocumentSeriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentSeriesWith applies the HasEdge predicate on the "document_series" edge with a given conditions (other predicates).
func HasDocumentSeriesWith(preds ...predicate.DocumentSeries) predicate.Series {
	return predicate.Series(func(s *sql.Selector) {
		step := newDocumentSeriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Series) predicate.Series {
	return predicate.Series(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Series) predicate.Series {
	return predicate.Series(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Series) predicate.Series {
	return predicate.Series(sql.NotPredicates(p))
}
