// Code generated by ent, DO NOT EDIT.

package pipelinelink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pipelinelink type in the database.
	Label = "pipeline_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldNotionPageID holds the string denoting the notion_page_id field in the database.
	FieldNotionPageID = "notion_page_id"
	// FieldLinearIssueID holds the string denoting the linear_issue_id field in the database.
	FieldLinearIssueID = "linear_issue_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldCompensationStatus holds the string denoting the compensation_status field in the database.
	FieldCompensationStatus = "compensation_status"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pipelinelink in the database.
	Table = "pipeline_links"
)

// Columns holds all SQL columns for pipelinelink fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEventID,
	FieldNotionPageID,
	FieldLinearIssueID,
	FieldTitle,
	FieldStatus,
	FieldErrorCode,
	FieldCompensationStatus,
	FieldRunID,
	FieldPipelineID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSucceeded      Status = "succeeded"
	StatusFailed         Status = "failed"
	StatusManualRequired Status = "manual_required"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSucceeded, StatusFailed, StatusManualRequired:
		return nil
	default:
		return fmt.Errorf("pipelinelink: invalid enum value for status field: %q", s)
	}
}

// CompensationStatus defines the type for the "compensation_status" enum field.
type CompensationStatus string

// CompensationStatusNotRequired is the default value of the CompensationStatus enum.
const DefaultCompensationStatus = CompensationStatusNotRequired

// CompensationStatus values.
const (
	CompensationStatusNotRequired CompensationStatus = "not_required"
	CompensationStatusCompleted   CompensationStatus = "completed"
	CompensationStatusFailed      CompensationStatus = "failed"
)

func (cs CompensationStatus) String() string {
	return string(cs)
}

// CompensationStatusValidator is a validator for the "compensation_status" field enum values. It is called by the builders before save.
func CompensationStatusValidator(cs CompensationStatus) error {
	switch cs {
	case CompensationStatusNotRequired, CompensationStatusCompleted, CompensationStatusFailed:
		return nil
	default:
		return fmt.Errorf("pipelinelink: invalid enum value for compensation_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the PipelineLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByNotionPageID orders the results by the notion_page_id field.
func ByNotionPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotionPageID, opts...).ToFunc()
}

// ByLinearIssueID orders the results by the linear_issue_id field.
func ByLinearIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinearIssueID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByCompensationStatus orders the results by the compensation_status field.
func ByCompensationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompensationStatus, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
