// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/braid-labs/braid/ent/pendingaction"
	"github.com/braid-labs/braid/ent/predicate"
)

// PendingActionUpdate is the builder for updating PendingAction entities.
type PendingActionUpdate struct {
	config
	hooks    []Hook
	mutation *PendingActionMutation
}

// Where appends a list predicates to the PendingActionUpdate builder.
func (_u *PendingActionUpdate) Where(ps ...predicate.PendingAction) *PendingActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *PendingActionUpdate) SetIntent(v string) *PendingActionUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableIntent(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PendingActionUpdate) SetAction(v string) *PendingActionUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableAction(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PendingActionUpdate) SetTaskID(v string) *PendingActionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableTaskID(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *PendingActionUpdate) ClearTaskID() *PendingActionUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *PendingActionUpdate) SetPlan(v map[string]interface{}) *PendingActionUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *PendingActionUpdate) ClearPlan() *PendingActionUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *PendingActionUpdate) SetPlanSource(v string) *PendingActionUpdate {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillablePlanSource(v *string) *PendingActionUpdate {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *PendingActionUpdate) ClearPlanSource() *PendingActionUpdate {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetCollectedSlots sets the "collected_slots" field.
func (_u *PendingActionUpdate) SetCollectedSlots(v map[string]interface{}) *PendingActionUpdate {
	_u.mutation.SetCollectedSlots(v)
	return _u
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (_u *PendingActionUpdate) ClearCollectedSlots() *PendingActionUpdate {
	_u.mutation.ClearCollectedSlots()
	return _u
}

// SetMissingSlots sets the "missing_slots" field.
func (_u *PendingActionUpdate) SetMissingSlots(v []string) *PendingActionUpdate {
	_u.mutation.SetMissingSlots(v)
	return _u
}

// AppendMissingSlots appends value to the "missing_slots" field.
func (_u *PendingActionUpdate) AppendMissingSlots(v []string) *PendingActionUpdate {
	_u.mutation.AppendMissingSlots(v)
	return _u
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (_u *PendingActionUpdate) ClearMissingSlots() *PendingActionUpdate {
	_u.mutation.ClearMissingSlots()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingActionUpdate) SetExpiresAt(v time.Time) *PendingActionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingActionUpdate) SetNillableExpiresAt(v *time.Time) *PendingActionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the PendingActionMutation object of the builder.
func (_u *PendingActionUpdate) Mutation() *PendingActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PendingActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pendingaction.Table, pendingaction.Columns, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(pendingaction.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pendingaction.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(pendingaction.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(pendingaction.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(pendingaction.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(pendingaction.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(pendingaction.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(pendingaction.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.CollectedSlots(); ok {
		_spec.SetField(pendingaction.FieldCollectedSlots, field.TypeJSON, value)
	}
	if _u.mutation.CollectedSlotsCleared() {
		_spec.ClearField(pendingaction.FieldCollectedSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingSlots(); ok {
		_spec.SetField(pendingaction.FieldMissingSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingaction.FieldMissingSlots, value)
		})
	}
	if _u.mutation.MissingSlotsCleared() {
		_spec.ClearField(pendingaction.FieldMissingSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingActionUpdateOne is the builder for updating a single PendingAction entity.
type PendingActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingActionMutation
}

// SetIntent sets the "intent" field.
func (_u *PendingActionUpdateOne) SetIntent(v string) *PendingActionUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableIntent(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PendingActionUpdateOne) SetAction(v string) *PendingActionUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableAction(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PendingActionUpdateOne) SetTaskID(v string) *PendingActionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableTaskID(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *PendingActionUpdateOne) ClearTaskID() *PendingActionUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *PendingActionUpdateOne) SetPlan(v map[string]interface{}) *PendingActionUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *PendingActionUpdateOne) ClearPlan() *PendingActionUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *PendingActionUpdateOne) SetPlanSource(v string) *PendingActionUpdateOne {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillablePlanSource(v *string) *PendingActionUpdateOne {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *PendingActionUpdateOne) ClearPlanSource() *PendingActionUpdateOne {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetCollectedSlots sets the "collected_slots" field.
func (_u *PendingActionUpdateOne) SetCollectedSlots(v map[string]interface{}) *PendingActionUpdateOne {
	_u.mutation.SetCollectedSlots(v)
	return _u
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (_u *PendingActionUpdateOne) ClearCollectedSlots() *PendingActionUpdateOne {
	_u.mutation.ClearCollectedSlots()
	return _u
}

// SetMissingSlots sets the "missing_slots" field.
func (_u *PendingActionUpdateOne) SetMissingSlots(v []string) *PendingActionUpdateOne {
	_u.mutation.SetMissingSlots(v)
	return _u
}

// AppendMissingSlots appends value to the "missing_slots" field.
func (_u *PendingActionUpdateOne) AppendMissingSlots(v []string) *PendingActionUpdateOne {
	_u.mutation.AppendMissingSlots(v)
	return _u
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (_u *PendingActionUpdateOne) ClearMissingSlots() *PendingActionUpdateOne {
	_u.mutation.ClearMissingSlots()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingActionUpdateOne) SetExpiresAt(v time.Time) *PendingActionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingActionUpdateOne) SetNillableExpiresAt(v *time.Time) *PendingActionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the PendingActionMutation object of the builder.
func (_u *PendingActionUpdateOne) Mutation() *PendingActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingActionUpdate builder.
func (_u *PendingActionUpdateOne) Where(ps ...predicate.PendingAction) *PendingActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingActionUpdateOne) Select(field string, fields ...string) *PendingActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingAction entity.
func (_u *PendingActionUpdateOne) Save(ctx context.Context) (*PendingAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingActionUpdateOne) SaveX(ctx context.Context) *PendingAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PendingActionUpdateOne) sqlSave(ctx context.Context) (_node *PendingAction, err error) {
	_spec := sqlgraph.NewUpdateSpec(pendingaction.Table, pendingaction.Columns, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingaction.FieldID)
		for _, f := range fields {
			if !pendingaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(pendingaction.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pendingaction.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(pendingaction.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(pendingaction.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(pendingaction.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(pendingaction.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(pendingaction.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(pendingaction.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.CollectedSlots(); ok {
		_spec.SetField(pendingaction.FieldCollectedSlots, field.TypeJSON, value)
	}
	if _u.mutation.CollectedSlotsCleared() {
		_spec.ClearField(pendingaction.FieldCollectedSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissingSlots(); ok {
		_spec.SetField(pendingaction.FieldMissingSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingaction.FieldMissingSlots, value)
		})
	}
	if _u.mutation.MissingSlotsCleared() {
		_spec.ClearField(pendingaction.FieldMissingSlots, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &PendingAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
