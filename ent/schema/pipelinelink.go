package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineLink holds the schema definition for the PipelineLink entity.
// One row per (user, source event) pipeline outcome: which Notion page /
// Linear issue a calendar event ended up as, or why the run failed.
// Re-runs upsert the same row instead of appending.
type PipelineLink struct {
	ent.Schema
}

// Fields of the PipelineLink.
func (PipelineLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("event_id").
			Comment("Source-side identifier (e.g. Google Calendar event id)"),
		field.String("notion_page_id").
			Optional().
			Nillable(),
		field.String("linear_issue_id").
			Optional().
			Nillable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Human-readable label for the dashboard"),
		field.Enum("status").
			Values("succeeded", "failed", "manual_required"),
		field.String("error_code").
			Optional().
			Nillable().
			Comment("Canonical error code for failed/manual_required rows"),
		field.Enum("compensation_status").
			Values("not_required", "completed", "failed").
			Default("not_required"),
		field.String("run_id").
			Comment("Pipeline run that produced/last updated this row"),
		field.String("pipeline_id").
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

// Indexes of the PipelineLink.
func (PipelineLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "event_id").
			Unique(),
		index.Fields("user_id", "status"),
		index.Fields("run_id"),
	}
}
