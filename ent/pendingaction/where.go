// Code generated by ent, DO NOT EDIT.

package pendingaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldID, id))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldIntent, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldAction, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldTaskID, v))
}

// PlanSource applies equality check predicate on the "plan_source" field. It's identical to PlanSourceEQ.
func PlanSource(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldPlanSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldIntent, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldAction, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldTaskID, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldPlan))
}

// PlanSourceEQ applies the EQ predicate on the "plan_source" field.
func PlanSourceEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldPlanSource, v))
}

// PlanSourceNEQ applies the NEQ predicate on the "plan_source" field.
func PlanSourceNEQ(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldPlanSource, v))
}

// PlanSourceIn applies the In predicate on the "plan_source" field.
func PlanSourceIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldPlanSource, vs...))
}

// PlanSourceNotIn applies the NotIn predicate on the "plan_source" field.
func PlanSourceNotIn(vs ...string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldPlanSource, vs...))
}

// PlanSourceGT applies the GT predicate on the "plan_source" field.
func PlanSourceGT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldPlanSource, v))
}

// PlanSourceGTE applies the GTE predicate on the "plan_source" field.
func PlanSourceGTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldPlanSource, v))
}

// PlanSourceLT applies the LT predicate on the "plan_source" field.
func PlanSourceLT(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldPlanSource, v))
}

// PlanSourceLTE applies the LTE predicate on the "plan_source" field.
func PlanSourceLTE(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldPlanSource, v))
}

// PlanSourceContains applies the Contains predicate on the "plan_source" field.
func PlanSourceContains(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContains(FieldPlanSource, v))
}

// PlanSourceHasPrefix applies the HasPrefix predicate on the "plan_source" field.
func PlanSourceHasPrefix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasPrefix(FieldPlanSource, v))
}

// PlanSourceHasSuffix applies the HasSuffix predicate on the "plan_source" field.
func PlanSourceHasSuffix(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldHasSuffix(FieldPlanSource, v))
}

// PlanSourceIsNil applies the IsNil predicate on the "plan_source" field.
func PlanSourceIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldPlanSource))
}

// PlanSourceNotNil applies the NotNil predicate on the "plan_source" field.
func PlanSourceNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldPlanSource))
}

// PlanSourceEqualFold applies the EqualFold predicate on the "plan_source" field.
func PlanSourceEqualFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEqualFold(FieldPlanSource, v))
}

// PlanSourceContainsFold applies the ContainsFold predicate on the "plan_source" field.
func PlanSourceContainsFold(v string) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldContainsFold(FieldPlanSource, v))
}

// CollectedSlotsIsNil applies the IsNil predicate on the "collected_slots" field.
func CollectedSlotsIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldCollectedSlots))
}

// CollectedSlotsNotNil applies the NotNil predicate on the "collected_slots" field.
func CollectedSlotsNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldCollectedSlots))
}

// MissingSlotsIsNil applies the IsNil predicate on the "missing_slots" field.
func MissingSlotsIsNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIsNull(FieldMissingSlots))
}

// MissingSlotsNotNil applies the NotNil predicate on the "missing_slots" field.
func MissingSlotsNotNil() predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotNull(FieldMissingSlots))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PendingAction {
	return predicate.PendingAction(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingAction) predicate.PendingAction {
	return predicate.PendingAction(sql.NotPredicates(p))
}
