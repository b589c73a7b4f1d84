package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommandLog holds the schema definition for the CommandLog entity.
// Append-only record of every analyzed request. The detail column is a
// semicolon-joined key=value string the rollout evaluators parse; it is
// masked before it gets here.
type CommandLog struct {
	ent.Schema
}

// Fields of the CommandLog.
func (CommandLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("command").
			Comment("Command family, e.g. 'agent_plan'"),
		field.String("status").
			Comment("Immediate outcome: success, failed, clarify, rejected"),
		field.String("final_status").
			Optional().
			Nillable().
			Comment("Outcome after verification, when it differs from status"),
		field.String("plan_source").
			Optional().
			Nillable().
			Comment("rule, llm, or stepwise"),
		field.String("execution_mode").
			Optional().
			Nillable().
			Comment("classical, pipeline_dag, stepwise, or autonomous"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("verification_reason").
			Optional().
			Nillable(),
		field.String("autonomous_fallback_reason").
			Optional().
			Nillable(),
		field.Text("detail").
			Optional().
			Comment("key=value pairs joined by ';' (services, request_id, pipeline_run_id, rollout flags, ...)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CommandLog.
func (CommandLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("command", "status"),
		index.Fields("created_at"),
	}
}
