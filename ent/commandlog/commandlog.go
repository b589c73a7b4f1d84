// Code generated by ent, DO NOT EDIT.

package commandlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the commandlog type in the database.
	Label = "command_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFinalStatus holds the string denoting the final_status field in the database.
	FieldFinalStatus = "final_status"
	// FieldPlanSource holds the string denoting the plan_source field in the database.
	FieldPlanSource = "plan_source"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldVerificationReason holds the string denoting the verification_reason field in the database.
	FieldVerificationReason = "verification_reason"
	// FieldAutonomousFallbackReason holds the string denoting the autonomous_fallback_reason field in the database.
	FieldAutonomousFallbackReason = "autonomous_fallback_reason"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the commandlog in the database.
	Table = "command_logs"
)

// Columns holds all SQL columns for commandlog fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCommand,
	FieldStatus,
	FieldFinalStatus,
	FieldPlanSource,
	FieldExecutionMode,
	FieldErrorCode,
	FieldVerificationReason,
	FieldAutonomousFallbackReason,
	FieldDetail,
	FieldCreatedAt,
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

// OrderOption defines the ordering options for the CommandLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFinalStatus orders the results by the final_status field.
func ByFinalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalStatus, opts...).ToFunc()
}

// ByPlanSource orders the results by the plan_source field.
func ByPlanSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSource, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByVerificationReason orders the results by the verification_reason field.
func ByVerificationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationReason, opts...).ToFunc()
}

// ByAutonomousFallbackReason orders the results by the autonomous_fallback_reason field.
func ByAutonomousFallbackReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutonomousFallbackReason, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
