// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docfold/docfold/ent/document"
	"github.com/docfold/docfold/ent/file"
	"github.com/docfold/docfold/ent/filedocument"
)

// FileDocument is the model entity for the FileDocument schema.
type FileDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID string `json:"file_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileDocumentQuery when eager-loading is set.
	Edges        FileDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileDocumentEdges holds the relations/edges for other nodes in the graph.
type FileDocumentEdges struct {
	// File holds the value of the file edge.
	File *File `json:"file,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileDocumentEdges) FileOrErr() (*File, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: file.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileDocumentEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filedocument.FieldID, filedocument.FieldFileID, filedocument.FieldDocumentID:
			values[i] = new(sql.NullString)
		case filedocument.FieldAddedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileDocument fields.
func (_m *FileDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filedocument.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case filedocument.FieldFileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value.Valid {
				_m.FileID = value.String
			}
		case filedocument.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case filedocument.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileDocument.
// This includes values selected through modifiers, order, etc.
func (_m *FileDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the FileDocument entity.
func (_m *FileDocument) QueryFile() *FileQuery {
	return NewFileDocumentClient(_m.config).QueryFile(_m)
}

// QueryDocument queries the "document" edge of the FileDocument entity.
func (_m *FileDocument) QueryDocument() *DocumentQuery {
	return NewFileDocumentClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this FileDocument.
// Note that you need to call FileDocument.Unwrap() before calling this method if this FileDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileDocument) Update() *FileDocumentUpdateOne {
	return NewFileDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileDocument) Unwrap() *FileDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileDocument) String() string {
	var builder strings.Builder
	builder.WriteString("FileDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(_m.FileID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FileDocuments is a parsable slice of FileDocument.
type FileDocuments []*FileDocument
