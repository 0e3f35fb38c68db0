package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// File holds the schema definition for the File entity: a multi-document
// aggregate identified by its tag signature (normalized, sorted,
// colon-joined tag list). Membership is derivable — a document belongs to a
// file when its tag set is a superset of the file's tags — and cached in the
// file_documents junction.
type File struct {
	ent.Schema
}

// Fields of the File.
func (File) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.JSON("tags", []string{}).
			Comment("Normalized, sorted tag list"),
		field.String("tag_signature").
			Comment("Colon-joined tags for exact-match lookup"),
		field.Enum("source").
			Values("llm", "user").
			Default("llm"),
		field.Enum("status").
			Values("pending", "generating", "generated", "outdated", "regenerating", "permanently_failed").
			Default("pending"),
		field.Text("summary_text").
			Optional().
			Nillable(),
		field.JSON("summary_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("last_generated_at").
			Optional().
			Nillable(),
		field.Time("processing_started_at").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the File.
func (File) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file_documents", FileDocument.Type).
			Ref("file"),
	}
}

// Indexes of the File.
func (File) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "tag_signature").
			Unique(),
		index.Fields("status"),
		index.Fields("status", "updated_at"),
	}
}
