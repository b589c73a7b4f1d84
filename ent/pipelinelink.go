// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/pipelinelink"
)

// PipelineLink is the model entity for the PipelineLink schema.
type PipelineLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Source-side identifier (e.g. Google Calendar event id)
	EventID string `json:"event_id,omitempty"`
	// NotionPageID holds the value of the "notion_page_id" field.
	NotionPageID *string `json:"notion_page_id,omitempty"`
	// LinearIssueID holds the value of the "linear_issue_id" field.
	LinearIssueID *string `json:"linear_issue_id,omitempty"`
	// Human-readable label for the dashboard
	Title *string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinelink.Status `json:"status,omitempty"`
	// Canonical error code for failed/manual_required rows
	ErrorCode *string `json:"error_code,omitempty"`
	// CompensationStatus holds the value of the "compensation_status" field.
	CompensationStatus pipelinelink.CompensationStatus `json:"compensation_status,omitempty"`
	// Pipeline run that produced/last updated this row
	RunID string `json:"run_id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID *string `json:"pipeline_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinelink.FieldID:
			values[i] = new(sql.NullInt64)
		case pipelinelink.FieldUserID, pipelinelink.FieldEventID, pipelinelink.FieldNotionPageID, pipelinelink.FieldLinearIssueID, pipelinelink.FieldTitle, pipelinelink.FieldStatus, pipelinelink.FieldErrorCode, pipelinelink.FieldCompensationStatus, pipelinelink.FieldRunID, pipelinelink.FieldPipelineID:
			values[i] = new(sql.NullString)
		case pipelinelink.FieldCreatedAt, pipelinelink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineLink fields.
func (_m *PipelineLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinelink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelinelink.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pipelinelink.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case pipelinelink.FieldNotionPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notion_page_id", values[i])
			} else if value.Valid {
				_m.NotionPageID = new(string)
				*_m.NotionPageID = value.String
			}
		case pipelinelink.FieldLinearIssueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linear_issue_id", values[i])
			} else if value.Valid {
				_m.LinearIssueID = new(string)
				*_m.LinearIssueID = value.String
			}
		case pipelinelink.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case pipelinelink.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinelink.Status(value.String)
			}
		case pipelinelink.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case pipelinelink.FieldCompensationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field compensation_status", values[i])
			} else if value.Valid {
				_m.CompensationStatus = pipelinelink.CompensationStatus(value.String)
			}
		case pipelinelink.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pipelinelink.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = new(string)
				*_m.PipelineID = value.String
			}
		case pipelinelink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinelink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineLink.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineLink.
// Note that you need to call PipelineLink.Unwrap() before calling this method if this PipelineLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineLink) Update() *PipelineLinkUpdateOne {
	return NewPipelineLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineLink) Unwrap() *PipelineLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineLink) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	if v := _m.NotionPageID; v != nil {
		builder.WriteString("notion_page_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinearIssueID; v != nil {
		builder.WriteString("linear_issue_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("compensation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompensationStatus))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	if v := _m.PipelineID; v != nil {
		builder.WriteString("pipeline_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineLinks is a parsable slice of PipelineLink.
type PipelineLinks []*PipelineLink
