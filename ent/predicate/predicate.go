// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentSeries is the predicate function for documentseries builders.
type DocumentSeries func(*sql.Selector)

// DocumentTag is the predicate function for documenttag builders.
type DocumentTag func(*sql.Selector)

// File is the predicate function for file builders.
type File func(*sql.Selector)

// FileDocument is the predicate function for filedocument builders.
type FileDocument func(*sql.Selector)

// Prompt is the predicate function for prompt builders.
type Prompt func(*sql.Selector)

// Series is the predicate function for series builders.
type Series func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)
