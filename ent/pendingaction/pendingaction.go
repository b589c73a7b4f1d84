// Code generated by ent, DO NOT EDIT.

package pendingaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pendingaction type in the database.
	Label = "pending_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldPlanSource holds the string denoting the plan_source field in the database.
	FieldPlanSource = "plan_source"
	// FieldCollectedSlots holds the string denoting the collected_slots field in the database.
	FieldCollectedSlots = "collected_slots"
	// FieldMissingSlots holds the string denoting the missing_slots field in the database.
	FieldMissingSlots = "missing_slots"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the pendingaction in the database.
	Table = "pending_actions"
)

// Columns holds all SQL columns for pendingaction fields.
var Columns = []string{
	FieldID,
	FieldIntent,
	FieldAction,
	FieldTaskID,
	FieldPlan,
	FieldPlanSource,
	FieldCollectedSlots,
	FieldMissingSlots,
	FieldCreatedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PendingAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByPlanSource orders the results by the plan_source field.
func ByPlanSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
