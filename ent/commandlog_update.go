// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/braid-labs/braid/ent/commandlog"
	"github.com/braid-labs/braid/ent/predicate"
)

// CommandLogUpdate is the builder for updating CommandLog entities.
type CommandLogUpdate struct {
	config
	hooks    []Hook
	mutation *CommandLogMutation
}

// Where appends a list predicates to the CommandLogUpdate builder.
func (_u *CommandLogUpdate) Where(ps ...predicate.CommandLog) *CommandLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CommandLogUpdate) SetUserID(v string) *CommandLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableUserID(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *CommandLogUpdate) SetCommand(v string) *CommandLogUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableCommand(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommandLogUpdate) SetStatus(v string) *CommandLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableStatus(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *CommandLogUpdate) SetFinalStatus(v string) *CommandLogUpdate {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableFinalStatus(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// ClearFinalStatus clears the value of the "final_status" field.
func (_u *CommandLogUpdate) ClearFinalStatus() *CommandLogUpdate {
	_u.mutation.ClearFinalStatus()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *CommandLogUpdate) SetPlanSource(v string) *CommandLogUpdate {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillablePlanSource(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *CommandLogUpdate) ClearPlanSource() *CommandLogUpdate {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *CommandLogUpdate) SetExecutionMode(v string) *CommandLogUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableExecutionMode(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *CommandLogUpdate) ClearExecutionMode() *CommandLogUpdate {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *CommandLogUpdate) SetErrorCode(v string) *CommandLogUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableErrorCode(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *CommandLogUpdate) ClearErrorCode() *CommandLogUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetVerificationReason sets the "verification_reason" field.
func (_u *CommandLogUpdate) SetVerificationReason(v string) *CommandLogUpdate {
	_u.mutation.SetVerificationReason(v)
	return _u
}

// SetNillableVerificationReason sets the "verification_reason" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableVerificationReason(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetVerificationReason(*v)
	}
	return _u
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (_u *CommandLogUpdate) ClearVerificationReason() *CommandLogUpdate {
	_u.mutation.ClearVerificationReason()
	return _u
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (_u *CommandLogUpdate) SetAutonomousFallbackReason(v string) *CommandLogUpdate {
	_u.mutation.SetAutonomousFallbackReason(v)
	return _u
}

// SetNillableAutonomousFallbackReason sets the "autonomous_fallback_reason" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableAutonomousFallbackReason(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetAutonomousFallbackReason(*v)
	}
	return _u
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (_u *CommandLogUpdate) ClearAutonomousFallbackReason() *CommandLogUpdate {
	_u.mutation.ClearAutonomousFallbackReason()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CommandLogUpdate) SetDetail(v string) *CommandLogUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CommandLogUpdate) SetNillableDetail(v *string) *CommandLogUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CommandLogUpdate) ClearDetail() *CommandLogUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the CommandLogMutation object of the builder.
func (_u *CommandLogUpdate) Mutation() *CommandLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommandLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommandLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandlog.Table, commandlog.Columns, sqlgraph.NewFieldSpec(commandlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(commandlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(commandlog.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commandlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(commandlog.FieldFinalStatus, field.TypeString, value)
	}
	if _u.mutation.FinalStatusCleared() {
		_spec.ClearField(commandlog.FieldFinalStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(commandlog.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(commandlog.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(commandlog.FieldExecutionMode, field.TypeString, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(commandlog.FieldExecutionMode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(commandlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(commandlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationReason(); ok {
		_spec.SetField(commandlog.FieldVerificationReason, field.TypeString, value)
	}
	if _u.mutation.VerificationReasonCleared() {
		_spec.ClearField(commandlog.FieldVerificationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AutonomousFallbackReason(); ok {
		_spec.SetField(commandlog.FieldAutonomousFallbackReason, field.TypeString, value)
	}
	if _u.mutation.AutonomousFallbackReasonCleared() {
		_spec.ClearField(commandlog.FieldAutonomousFallbackReason, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(commandlog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(commandlog.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommandLogUpdateOne is the builder for updating a single CommandLog entity.
type CommandLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommandLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *CommandLogUpdateOne) SetUserID(v string) *CommandLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableUserID(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *CommandLogUpdateOne) SetCommand(v string) *CommandLogUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableCommand(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommandLogUpdateOne) SetStatus(v string) *CommandLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableStatus(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *CommandLogUpdateOne) SetFinalStatus(v string) *CommandLogUpdateOne {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableFinalStatus(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// ClearFinalStatus clears the value of the "final_status" field.
func (_u *CommandLogUpdateOne) ClearFinalStatus() *CommandLogUpdateOne {
	_u.mutation.ClearFinalStatus()
	return _u
}

// SetPlanSource sets the "plan_source" field.
func (_u *CommandLogUpdateOne) SetPlanSource(v string) *CommandLogUpdateOne {
	_u.mutation.SetPlanSource(v)
	return _u
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillablePlanSource(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetPlanSource(*v)
	}
	return _u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (_u *CommandLogUpdateOne) ClearPlanSource() *CommandLogUpdateOne {
	_u.mutation.ClearPlanSource()
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *CommandLogUpdateOne) SetExecutionMode(v string) *CommandLogUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableExecutionMode(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *CommandLogUpdateOne) ClearExecutionMode() *CommandLogUpdateOne {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *CommandLogUpdateOne) SetErrorCode(v string) *CommandLogUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableErrorCode(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *CommandLogUpdateOne) ClearErrorCode() *CommandLogUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetVerificationReason sets the "verification_reason" field.
func (_u *CommandLogUpdateOne) SetVerificationReason(v string) *CommandLogUpdateOne {
	_u.mutation.SetVerificationReason(v)
	return _u
}

// SetNillableVerificationReason sets the "verification_reason" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableVerificationReason(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetVerificationReason(*v)
	}
	return _u
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (_u *CommandLogUpdateOne) ClearVerificationReason() *CommandLogUpdateOne {
	_u.mutation.ClearVerificationReason()
	return _u
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (_u *CommandLogUpdateOne) SetAutonomousFallbackReason(v string) *CommandLogUpdateOne {
	_u.mutation.SetAutonomousFallbackReason(v)
	return _u
}

// SetNillableAutonomousFallbackReason sets the "autonomous_fallback_reason" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableAutonomousFallbackReason(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetAutonomousFallbackReason(*v)
	}
	return _u
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (_u *CommandLogUpdateOne) ClearAutonomousFallbackReason() *CommandLogUpdateOne {
	_u.mutation.ClearAutonomousFallbackReason()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CommandLogUpdateOne) SetDetail(v string) *CommandLogUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CommandLogUpdateOne) SetNillableDetail(v *string) *CommandLogUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CommandLogUpdateOne) ClearDetail() *CommandLogUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the CommandLogMutation object of the builder.
func (_u *CommandLogUpdateOne) Mutation() *CommandLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommandLogUpdate builder.
func (_u *CommandLogUpdateOne) Where(ps ...predicate.CommandLog) *CommandLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommandLogUpdateOne) Select(field string, fields ...string) *CommandLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommandLog entity.
func (_u *CommandLogUpdateOne) Save(ctx context.Context) (*CommandLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandLogUpdateOne) SaveX(ctx context.Context) *CommandLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommandLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandLogUpdateOne) sqlSave(ctx context.Context) (_node *CommandLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandlog.Table, commandlog.Columns, sqlgraph.NewFieldSpec(commandlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommandLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commandlog.FieldID)
		for _, f := range fields {
			if !commandlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commandlog.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(commandlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(commandlog.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(commandlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(commandlog.FieldFinalStatus, field.TypeString, value)
	}
	if _u.mutation.FinalStatusCleared() {
		_spec.ClearField(commandlog.FieldFinalStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PlanSource(); ok {
		_spec.SetField(commandlog.FieldPlanSource, field.TypeString, value)
	}
	if _u.mutation.PlanSourceCleared() {
		_spec.ClearField(commandlog.FieldPlanSource, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(commandlog.FieldExecutionMode, field.TypeString, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(commandlog.FieldExecutionMode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(commandlog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(commandlog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.VerificationReason(); ok {
		_spec.SetField(commandlog.FieldVerificationReason, field.TypeString, value)
	}
	if _u.mutation.VerificationReasonCleared() {
		_spec.ClearField(commandlog.FieldVerificationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AutonomousFallbackReason(); ok {
		_spec.SetField(commandlog.FieldAutonomousFallbackReason, field.TypeString, value)
	}
	if _u.mutation.AutonomousFallbackReasonCleared() {
		_spec.ClearField(commandlog.FieldAutonomousFallbackReason, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(commandlog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(commandlog.FieldDetail, field.TypeString)
	}
	_node = &CommandLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
