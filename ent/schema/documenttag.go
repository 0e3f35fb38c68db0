package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentTag is the document↔tag junction. It carries the tag source so
// system-generated tags (document type, series tags) and LLM tags coexist
// on the same document.
type DocumentTag struct {
	ent.Schema
}

// Fields of the DocumentTag.
func (DocumentTag) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("tag_id"),
		field.Enum("source").
			Values("system", "llm", "user").
			Default("llm"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentTag.
func (DocumentTag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document", Document.Type).
			Unique().
			Required().
			Field("document_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tag", Tag.Type).
			Unique().
			Required().
			Field("tag_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DocumentTag.
func (DocumentTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "tag_id").
			Unique(),
		index.Fields("tag_id"),
	}
}
