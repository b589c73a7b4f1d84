// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
)

// PipelineStepLog is the model entity for the PipelineStepLog schema.
type PipelineStepLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Orchestrator call the run belongs to
	RequestID string `json:"request_id,omitempty"`
	// Pipeline run id (one per DAG execution)
	RunID string `json:"run_id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID *string `json:"pipeline_id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// skill, llm_transform, for_each, verify, tool, llm, stepwise
	NodeType string `json:"node_type,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName *string `json:"tool_name,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinesteplog.Status `json:"status,omitempty"`
	// 1-based; >1 means the step was retried
	Attempt int `json:"attempt,omitempty"`
	// Fan-out unit index within a for_each node
	ItemIndex *int `json:"item_index,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStepLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinesteplog.FieldID, pipelinesteplog.FieldAttempt, pipelinesteplog.FieldItemIndex, pipelinesteplog.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case pipelinesteplog.FieldRequestID, pipelinesteplog.FieldRunID, pipelinesteplog.FieldPipelineID, pipelinesteplog.FieldNodeID, pipelinesteplog.FieldNodeType, pipelinesteplog.FieldToolName, pipelinesteplog.FieldStatus, pipelinesteplog.FieldErrorCode, pipelinesteplog.FieldDetail:
			values[i] = new(sql.NullString)
		case pipelinesteplog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStepLog fields.
func (_m *PipelineStepLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinesteplog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelinesteplog.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case pipelinesteplog.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pipelinesteplog.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = new(string)
				*_m.PipelineID = value.String
			}
		case pipelinesteplog.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case pipelinesteplog.FieldNodeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_type", values[i])
			} else if value.Valid {
				_m.NodeType = value.String
			}
		case pipelinesteplog.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = new(string)
				*_m.ToolName = value.String
			}
		case pipelinesteplog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinesteplog.Status(value.String)
			}
		case pipelinesteplog.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case pipelinesteplog.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = new(int)
				*_m.ItemIndex = int(value.Int64)
			}
		case pipelinesteplog.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case pipelinesteplog.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case pipelinesteplog.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case pipelinesteplog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStepLog.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStepLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineStepLog.
// Note that you need to call PipelineStepLog.Unwrap() before calling this method if this PipelineStepLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStepLog) Update() *PipelineStepLogUpdateOne {
	return NewPipelineStepLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStepLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStepLog) Unwrap() *PipelineStepLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStepLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStepLog) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStepLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	if v := _m.PipelineID; v != nil {
		builder.WriteString("pipeline_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("node_type=")
	builder.WriteString(_m.NodeType)
	builder.WriteString(", ")
	if v := _m.ToolName; v != nil {
		builder.WriteString("tool_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.ItemIndex; v != nil {
		builder.WriteString("item_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
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

// PipelineStepLogs is a parsable slice of PipelineStepLog.
type PipelineStepLogs []*PipelineStepLog
