package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingAction holds the schema definition for the PendingAction entity.
// At most one row per user: the half-finished request we are waiting on
// slot answers for. Rows past expires_at are treated as absent.
type PendingAction struct {
	ent.Schema
}

// Fields of the PendingAction.
func (PendingAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("intent").
			Comment("Intent family the slots belong to (e.g. 'notion_update')"),
		field.String("action").
			Comment("Action id the slot schema is keyed by"),
		field.String("task_id").
			Optional().
			Comment("Task inside the suspended plan that is waiting on slots"),
		field.JSON("plan", map[string]interface{}{}).
			Optional().
			Comment("Serialized plan suspended until slots are complete"),
		field.String("plan_source").
			Optional().
			Comment("rule, llm, or stepwise"),
		field.JSON("collected_slots", map[string]interface{}{}).
			Optional().
			Comment("Normalized slot values gathered so far"),
		field.Strings("missing_slots").
			Optional().
			Comment("Slot names still required, in ask order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Comment("TTL boundary; reads past this point behave as not-found"),
	}
}

// Indexes of the PendingAction.
func (PendingAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
