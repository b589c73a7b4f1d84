package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineStepLog holds the schema definition for the PipelineStepLog entity.
// Append-only per-node execution record for pipeline runs (classical, DAG,
// and stepwise alike). Fan-out units carry their item index.
type PipelineStepLog struct {
	ent.Schema
}

// Fields of the PipelineStepLog.
func (PipelineStepLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Immutable().
			Comment("Orchestrator call the run belongs to"),
		field.String("run_id").
			Immutable().
			Comment("Pipeline run id (one per DAG execution)"),
		field.String("pipeline_id").
			Optional().
			Nillable(),
		field.String("node_id"),
		field.String("node_type").
			Comment("skill, llm_transform, for_each, verify, tool, llm, stepwise"),
		field.String("tool_name").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("succeeded", "failed", "skipped", "compensated"),
		field.Int("attempt").
			Default(1).
			Comment("1-based; >1 means the step was retried"),
		field.Int("item_index").
			Optional().
			Nillable().
			Comment("Fan-out unit index within a for_each node"),
		field.Int("latency_ms"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.Text("detail").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PipelineStepLog.
func (PipelineStepLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("run_id", "created_at"),
		index.Fields("run_id", "node_id"),
		index.Fields("created_at"),
	}
}
