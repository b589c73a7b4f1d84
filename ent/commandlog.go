// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/commandlog"
)

// CommandLog is the model entity for the CommandLog schema.
type CommandLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Command family, e.g. 'agent_plan'
	Command string `json:"command,omitempty"`
	// Immediate outcome: success, failed, clarify, rejected
	Status string `json:"status,omitempty"`
	// Outcome after verification, when it differs from status
	FinalStatus *string `json:"final_status,omitempty"`
	// rule, llm, or stepwise
	PlanSource *string `json:"plan_source,omitempty"`
	// classical, pipeline_dag, stepwise, or autonomous
	ExecutionMode *string `json:"execution_mode,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// VerificationReason holds the value of the "verification_reason" field.
	VerificationReason *string `json:"verification_reason,omitempty"`
	// AutonomousFallbackReason holds the value of the "autonomous_fallback_reason" field.
	AutonomousFallbackReason *string `json:"autonomous_fallback_reason,omitempty"`
	// key=value pairs joined by ';' (services, request_id, pipeline_run_id, rollout flags, ...)
	Detail string `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommandLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commandlog.FieldID:
			values[i] = new(sql.NullInt64)
		case commandlog.FieldUserID, commandlog.FieldCommand, commandlog.FieldStatus, commandlog.FieldFinalStatus, commandlog.FieldPlanSource, commandlog.FieldExecutionMode, commandlog.FieldErrorCode, commandlog.FieldVerificationReason, commandlog.FieldAutonomousFallbackReason, commandlog.FieldDetail:
			values[i] = new(sql.NullString)
		case commandlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommandLog fields.
func (_m *CommandLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commandlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case commandlog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case commandlog.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case commandlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case commandlog.FieldFinalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_status", values[i])
			} else if value.Valid {
				_m.FinalStatus = new(string)
				*_m.FinalStatus = value.String
			}
		case commandlog.FieldPlanSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_source", values[i])
			} else if value.Valid {
				_m.PlanSource = new(string)
				*_m.PlanSource = value.String
			}
		case commandlog.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = new(string)
				*_m.ExecutionMode = value.String
			}
		case commandlog.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case commandlog.FieldVerificationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_reason", values[i])
			} else if value.Valid {
				_m.VerificationReason = new(string)
				*_m.VerificationReason = value.String
			}
		case commandlog.FieldAutonomousFallbackReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field autonomous_fallback_reason", values[i])
			} else if value.Valid {
				_m.AutonomousFallbackReason = new(string)
				*_m.AutonomousFallbackReason = value.String
			}
		case commandlog.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case commandlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommandLog.
// This includes values selected through modifiers, order, etc.
func (_m *CommandLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CommandLog.
// Note that you need to call CommandLog.Unwrap() before calling this method if this CommandLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommandLog) Update() *CommandLogUpdateOne {
	return NewCommandLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommandLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommandLog) Unwrap() *CommandLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommandLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommandLog) String() string {
	var builder strings.Builder
	builder.WriteString("CommandLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.FinalStatus; v != nil {
		builder.WriteString("final_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanSource; v != nil {
		builder.WriteString("plan_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionMode; v != nil {
		builder.WriteString("execution_mode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerificationReason; v != nil {
		builder.WriteString("verification_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AutonomousFallbackReason; v != nil {
		builder.WriteString("autonomous_fallback_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CommandLogs is a parsable slice of CommandLog.
type CommandLogs []*CommandLog
