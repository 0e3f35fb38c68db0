package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Series holds the schema definition for the Series entity: a stable
// grouping of recurring documents from one entity, independent of
// classifier tag drift. Identity is the (entity, series_type, owner) tuple.
type Series struct {
	ent.Schema
}

// Fields of the Series.
func (Series) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("series_id").
			Unique().
			Immutable(),
		field.String("title").
			Comment("Human-readable title, e.g. 'PG&E Monthly Bill'"),
		field.String("entity").
			Comment("Canonical issuing entity, e.g. 'Pacific Gas & Electric'"),
		field.String("series_type").
			Comment("snake_case series kind, e.g. 'monthly_utility_bill'"),
		field.String("frequency").
			Default("irregular").
			Comment("monthly/quarterly/annual/irregular"),
		field.Text("description").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("owner").
			Default("").
			Comment("Owning user; empty for single-user deployments"),
		field.Time("first_document_date").
			Optional().
			Nillable(),
		field.Time("last_document_date").
			Optional().
			Nillable(),
		field.Int("document_count").
			Default(0),
		field.Enum("status").
			Values("active", "completed", "archived").
			Default("active"),
		field.Enum("source").
			Values("llm", "user").
			Default("llm"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Series.
func (Series) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document_series", DocumentSeries.Type).
			Ref("series"),
	}
}

// Indexes of the Series.
func (Series) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity", "series_type", "owner").
			Unique(),
		index.Fields("status"),
	}
}
