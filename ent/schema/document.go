package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
// A document is the unit of work for the pipeline: inserted by the inbox
// scanner in status "pending" and advanced through the stage DAG until
// "completed" or "permanently_failed".
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("folder_path").
			Comment("Source folder populated by the inbox scanner"),
		field.String("filename"),
		field.String("mime_type").
			Optional(),
		field.Int64("size_bytes").
			Optional(),
		field.Enum("status").
			Values(
				"pending",
				"ocr_in_progress",
				"ocr_completed",
				"classifying",
				"classified",
				"scoring_classification",
				"scored_classification",
				"summarizing",
				"summarized",
				"scoring_summary",
				"scored_summary",
				"filing",
				"filed",
				"completed",
				"failed",
				"permanently_failed",
			).
			Default("pending"),
		field.Text("extracted_text").
			Optional().
			Nillable().
			Comment("OCR output (full-text searchable)"),
		field.Float("ocr_confidence").
			Optional().
			Nillable(),
		field.String("document_type").
			Optional().
			Nillable().
			Comment("Classifier output, e.g. 'bill'"),
		field.Float("classification_confidence").
			Optional().
			Nillable(),
		field.Text("classification_reasoning").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.JSON("structured_data", map[string]interface{}{}).
			Optional().
			Comment("Free-form key/value map extracted by the summarizer"),
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
			UpdateDefault(time.Now).
			Comment("Drives the orchestrator's stuck-row sweep"),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_tags", DocumentTag.Type).
			Ref("document"),
		edge.From("document_series", DocumentSeries.Type).
			Ref("document"),
		edge.From("file_documents", FileDocument.Type).
			Ref("document"),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_type"),
		index.Fields("status", "created_at"),
		index.Fields("status", "updated_at"),
	}
}
