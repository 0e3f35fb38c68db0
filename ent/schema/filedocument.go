package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileDocument caches file membership (document tag set ⊇ file tag set).
type FileDocument struct {
	ent.Schema
}

// Fields of the FileDocument.
func (FileDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("file_id"),
		field.String("document_id"),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FileDocument.
func (FileDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("file", File.Type).
			Unique().
			Required().
			Field("file_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("document", Document.Type).
			Unique().
			Required().
			Field("document_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the FileDocument.
func (FileDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "document_id").
			Unique(),
		index.Fields("document_id"),
	}
}
