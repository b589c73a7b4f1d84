// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/pendingaction"
)

// PendingAction is the model entity for the PendingAction schema.
type PendingAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Intent family the slots belong to (e.g. 'notion_update')
	Intent string `json:"intent,omitempty"`
	// Action id the slot schema is keyed by
	Action string `json:"action,omitempty"`
	// Task inside the suspended plan that is waiting on slots
	TaskID string `json:"task_id,omitempty"`
	// Serialized plan suspended until slots are complete
	Plan map[string]interface{} `json:"plan,omitempty"`
	// rule, llm, or stepwise
	PlanSource string `json:"plan_source,omitempty"`
	// Normalized slot values gathered so far
	CollectedSlots map[string]interface{} `json:"collected_slots,omitempty"`
	// Slot names still required, in ask order
	MissingSlots []string `json:"missing_slots,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TTL boundary; reads past this point behave as not-found
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingaction.FieldPlan, pendingaction.FieldCollectedSlots, pendingaction.FieldMissingSlots:
			values[i] = new([]byte)
		case pendingaction.FieldID, pendingaction.FieldIntent, pendingaction.FieldAction, pendingaction.FieldTaskID, pendingaction.FieldPlanSource:
			values[i] = new(sql.NullString)
		case pendingaction.FieldCreatedAt, pendingaction.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingAction fields.
func (_m *PendingAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendingaction.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case pendingaction.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case pendingaction.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case pendingaction.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case pendingaction.FieldPlanSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_source", values[i])
			} else if value.Valid {
				_m.PlanSource = value.String
			}
		case pendingaction.FieldCollectedSlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field collected_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CollectedSlots); err != nil {
					return fmt.Errorf("unmarshal field collected_slots: %w", err)
				}
			}
		case pendingaction.FieldMissingSlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingSlots); err != nil {
					return fmt.Errorf("unmarshal field missing_slots: %w", err)
				}
			}
		case pendingaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pendingaction.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingAction.
// This includes values selected through modifiers, order, etc.
func (_m *PendingAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingAction.
// Note that you need to call PendingAction.Unwrap() before calling this method if this PendingAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingAction) Update() *PendingActionUpdateOne {
	return NewPendingActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingAction) Unwrap() *PendingAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingAction) String() string {
	var builder strings.Builder
	builder.WriteString("PendingAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("plan_source=")
	builder.WriteString(_m.PlanSource)
	builder.WriteString(", ")
	builder.WriteString("collected_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollectedSlots))
	builder.WriteString(", ")
	builder.WriteString("missing_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingSlots))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PendingActions is a parsable slice of PendingAction.
type PendingActions []*PendingAction
