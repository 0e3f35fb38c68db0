// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/documentseries"
	"github.com/docfold/docfold/ent/series"
)

// DocumentSeries is the model entity for the DocumentSeries schema.
type DocumentSeries struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// SeriesID holds the value of the "series_id" field.
	SeriesID string `json:"series_id,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// AddedBy holds the value of the "added_by" field.
	AddedBy string `json:"added_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentSeriesQuery when eager-loading is set.
	Edges        DocumentSeriesEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentSeriesEdges holds the relations/edges for other nodes in the graph.
type DocumentSeriesEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Series holds the value of the series edge.
	Series *Series `json:"series,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentSeriesEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// SeriesOrErr returns the Series value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentSeriesEdges) SeriesOrErr() (*Series, error) {
	if e.Series != nil {
		return e.Series, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: series.Label}
	}
	return nil, &NotLoadedError{edge: "series"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentSeries) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentseries.FieldID, documentseries.FieldDocumentID, documentseries.FieldSeriesID, documentseries.FieldAddedBy:
			values[i] = new(sql.NullString)
		case documentseries.FieldAddedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentSeries fields.
func (_m *DocumentSeries) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentseries.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documentseries.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case documentseries.FieldSeriesID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field series_id", values[i])
			} else if value.Valid {
				_m.SeriesID = value.String
			}
		case documentseries.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		case documentseries.FieldAddedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field added_by", values[i])
			} else if value.Valid {
				_m.AddedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentSeries.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentSeries) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentSeries entity.
func (_m *DocumentSeries) QueryDocument() *DocumentQuery {
	return NewDocumentSeriesClient(_m.config).QueryDocument(_m)
}

// QuerySeries queries the "series" edge of the DocumentSeries entity.
func (_m *DocumentSeries) QuerySeries() *SeriesQuery {
	return NewDocumentSeriesClient(_m.config).QuerySeries(_m)
}

// Update returns a builder for updating this DocumentSeries.
// Note that you need to call DocumentSeries.Unwrap() before calling this method if this DocumentSeries
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentSeries) Update() *DocumentSeriesUpdateOne {
	return NewDocumentSeriesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentSeries entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentSeries) Unwrap() *DocumentSeries {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentSeries is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentSeries) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentSeries(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("series_id=")
	builder.WriteString(_m.SeriesID)
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("added_by=")
	builder.WriteString(_m.AddedBy)
	builder.WriteByte(')')
	return builder.String()
}

// DocumentSeriesSlice is a parsable slice of DocumentSeries.
type DocumentSeriesSlice []*DocumentSeries
