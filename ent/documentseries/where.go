// Code generated by ent, DO NOT EDIT.

package documentseries

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docfold/docfold/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldDocumentID, v))
}

// SeriesID applies equality check predicate on the "series_id" field. It's identical to SeriesIDEQ.
func SeriesID(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldSeriesID, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldAddedAt, v))
}

// AddedBy applies equality check predicate on the "added_by" field. It's identical to AddedByEQ.
func AddedBy(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldAddedBy, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContainsFold(FieldDocumentID, v))
}

// SeriesIDEQ applies the EQ predicate on the "series_id" field.
func SeriesIDEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldSeriesID, v))
}

// SeriesIDNEQ applies the NEQ predicate on the "series_id" field.
func SeriesIDNEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNEQ(FieldSeriesID, v))
}

// SeriesIDIn applies the In predicate on the "series_id" field.
func SeriesIDIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldIn(FieldSeriesID, vs...))
}

// SeriesIDNotIn applies the NotIn predicate on the "series_id" field.
func SeriesIDNotIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNotIn(FieldSeriesID, vs...))
}

// SeriesIDGT applies the GT predicate on the "series_id" field.
func SeriesIDGT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGT(FieldSeriesID, v))
}

// SeriesIDGTE applies the GTE predicate on the "series_id" field.
func SeriesIDGTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGTE(FieldSeriesID, v))
}

// SeriesIDLT applies the LT predicate on the "series_id" field.
func SeriesIDLT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLT(FieldSeriesID, v))
}

// SeriesIDLTE applies the LTE predicate on the "series_id" field.
func SeriesIDLTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLTE(FieldSeriesID, v))
}

// SeriesIDContains applies the Contains predicate on the "series_id" field.
func SeriesIDContains(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContains(FieldSeriesID, v))
}

// SeriesIDHasPrefix applies the HasPrefix predicate on the "series_id" field.
func SeriesIDHasPrefix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasPrefix(FieldSeriesID, v))
}

// SeriesIDHasSuffix applies the HasSuffix predicate on the "series_id" field.
func SeriesIDHasSuffix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasSuffix(FieldSeriesID, v))
}

// SeriesIDEqualFold applies the EqualFold predicate on the "series_id" field.
func SeriesIDEqualFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEqualFold(FieldSeriesID, v))
}

// SeriesIDContainsFold applies the ContainsFold predicate on the "series_id" field.
func SeriesIDContainsFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContainsFold(FieldSeriesID, v))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLTE(FieldAddedAt, v))
}

// AddedByEQ applies the EQ predicate on the "added_by" field.
func AddedByEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEQ(FieldAddedBy, v))
}

// AddedByNEQ applies the NEQ predicate on the "added_by" field.
func AddedByNEQ(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNEQ(FieldAddedBy, v))
}

// AddedByIn applies the In predicate on the "added_by" field.
func AddedByIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldIn(FieldAddedBy, vs...))
}

// AddedByNotIn applies the NotIn predicate on the "added_by" field.
func AddedByNotIn(vs ...string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldNotIn(FieldAddedBy, vs...))
}

// AddedByGT applies the GT predicate on the "added_by" field.
func AddedByGT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGT(FieldAddedBy, v))
}

// AddedByGTE applies the GTE predicate on the "added_by" field.
func AddedByGTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldGTE(FieldAddedBy, v))
}

// AddedByLT applies the LT predicate on the "added_by" field.
func AddedByLT(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLT(FieldAddedBy, v))
}

// AddedByLTE applies the LTE predicate on the "added_by" field.
func AddedByLTE(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldLTE(FieldAddedBy, v))
}

// AddedByContains applies the Contains predicate on the "added_by" field.
func AddedByContains(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContains(FieldAddedBy, v))
}

// AddedByHasPrefix applies the HasPrefix predicate on the "added_by" field.
func AddedByHasPrefix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasPrefix(FieldAddedBy, v))
}

// AddedByHasSuffix applies the HasSuffix predicate on the "added_by" field.
func AddedByHasSuffix(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldHasSuffix(FieldAddedBy, v))
}

// AddedByEqualFold applies the EqualFold predicate on the "added_by" field.
func AddedByEqualFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldEqualFold(FieldAddedBy, v))
}

// AddedByContainsFold applies the ContainsFold predicate on the "added_by" field.
func AddedByContainsFold(v string) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.FieldContainsFold(FieldAddedBy, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentSeries {
	return predicate.DocumentSeries(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentSeries {
	return predicate.DocumentSeries(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSeries applies the HasEdge predicate on the "series" edge.
func HasSeries() predicate.DocumentSeries {
	return predicate.DocumentSeries(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, SeriesTable, SeriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSeriesWith applies the HasEdge predicate on the "series" edge with a given conditions (other predicates).
func HasSeriesWith(preds ...predicate.Series) predicate.DocumentSeries {
	return predicate.DocumentSeries(func(s *sql.Selector) {
		step := newSeriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentSeries) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentSeries) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentSeries) predicate.DocumentSeries {
	return predicate.DocumentSeries(sql.NotPredicates(p))
}
