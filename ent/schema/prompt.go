package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity. Prompts are
// append-only and versioned per (prompt_type, document_type) scope; at most
// one row per scope is active (enforced by a partial unique index, see
// pkg/database.CreatePartialUniqueIndexes).
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.Enum("prompt_type").
			Values("classifier", "summarizer", "series_detector", "file_summarizer", "series_summarizer"),
		field.String("document_type").
			Optional().
			Nillable().
			Comment("Scope; nil for the generic prompt of this type"),
		field.Int("version").
			Comment("Monotonic within the (prompt_type, document_type) scope"),
		field.Text("prompt_text"),
		field.Float("performance_score").
			Optional().
			Nillable(),
		field.Bool("can_evolve").
			Default(true),
		field.Float("score_ceiling").
			Optional().
			Nillable().
			Comment("Evolution stops at or above this score"),
		field.Bool("regenerates_on_update").
			Default(false).
			Comment("Aggregation prompts: an upgrade outdates dependent files"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_type", "document_type"),
		index.Fields("prompt_type", "is_active"),
	}
}
