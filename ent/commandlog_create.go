// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/braid-labs/braid/ent/commandlog"
)

// CommandLogCreate is the builder for creating a CommandLog entity.
type CommandLogCreate struct {
	config
	mutation *CommandLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CommandLogCreate) SetUserID(v string) *CommandLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *CommandLogCreate) SetCommand(v string) *CommandLogCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommandLogCreate) SetStatus(v string) *CommandLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFinalStatus sets the "final_status" field.
func (_c *CommandLogCreate) SetFinalStatus(v string) *CommandLogCreate {
	_c.mutation.SetFinalStatus(v)
	return _c
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableFinalStatus(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetFinalStatus(*v)
	}
	return _c
}

// SetPlanSource sets the "plan_source" field.
func (_c *CommandLogCreate) SetPlanSource(v string) *CommandLogCreate {
	_c.mutation.SetPlanSource(v)
	return _c
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillablePlanSource(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetPlanSource(*v)
	}
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *CommandLogCreate) SetExecutionMode(v string) *CommandLogCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableExecutionMode(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *CommandLogCreate) SetErrorCode(v string) *CommandLogCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableErrorCode(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetVerificationReason sets the "verification_reason" field.
func (_c *CommandLogCreate) SetVerificationReason(v string) *CommandLogCreate {
	_c.mutation.SetVerificationReason(v)
	return _c
}

// SetNillableVerificationReason sets the "verification_reason" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableVerificationReason(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetVerificationReason(*v)
	}
	return _c
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (_c *CommandLogCreate) SetAutonomousFallbackReason(v string) *CommandLogCreate {
	_c.mutation.SetAutonomousFallbackReason(v)
	return _c
}

// SetNillableAutonomousFallbackReason sets the "autonomous_fallback_reason" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableAutonomousFallbackReason(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetAutonomousFallbackReason(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *CommandLogCreate) SetDetail(v string) *CommandLogCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableDetail(v *string) *CommandLogCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommandLogCreate) SetCreatedAt(v time.Time) *CommandLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommandLogCreate) SetNillableCreatedAt(v *time.Time) *CommandLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CommandLogMutation object of the builder.
func (_c *CommandLogCreate) Mutation() *CommandLogMutation {
	return _c.mutation
}

// Save creates the CommandLog in the database.
func (_c *CommandLogCreate) Save(ctx context.Context) (*CommandLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommandLogCreate) SaveX(ctx context.Context) *CommandLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommandLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commandlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommandLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CommandLog.user_id"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "CommandLog.command"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CommandLog.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommandLog.created_at"`)}
	}
	return nil
}

func (_c *CommandLogCreate) sqlSave(ctx context.Context) (*CommandLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommandLogCreate) createSpec() (*CommandLog, *sqlgraph.CreateSpec) {
	var (
		_node = &CommandLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commandlog.Table, sqlgraph.NewFieldSpec(commandlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(commandlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(commandlog.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(commandlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FinalStatus(); ok {
		_spec.SetField(commandlog.FieldFinalStatus, field.TypeString, value)
		_node.FinalStatus = &value
	}
	if value, ok := _c.mutation.PlanSource(); ok {
		_spec.SetField(commandlog.FieldPlanSource, field.TypeString, value)
		_node.PlanSource = &value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(commandlog.FieldExecutionMode, field.TypeString, value)
		_node.ExecutionMode = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(commandlog.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.VerificationReason(); ok {
		_spec.SetField(commandlog.FieldVerificationReason, field.TypeString, value)
		_node.VerificationReason = &value
	}
	if value, ok := _c.mutation.AutonomousFallbackReason(); ok {
		_spec.SetField(commandlog.FieldAutonomousFallbackReason, field.TypeString, value)
		_node.AutonomousFallbackReason = &value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(commandlog.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commandlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommandLog.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommandLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CommandLogCreate) OnConflict(opts ...sql.ConflictOption) *CommandLogUpsertOne {
	_c.conflict = opts
	return &CommandLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommandLogCreate) OnConflictColumns(columns ...string) *CommandLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommandLogUpsertOne{
		create: _c,
	}
}

type (
	// CommandLogUpsertOne is the builder for "upsert"-ing
	//  one CommandLog node.
	CommandLogUpsertOne struct {
		create *CommandLogCreate
	}

	// CommandLogUpsert is the "OnConflict" setter.
	CommandLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CommandLogUpsert) SetUserID(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateUserID() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldUserID)
	return u
}

// SetCommand sets the "command" field.
func (u *CommandLogUpsert) SetCommand(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldCommand, v)
	return u
}

// UpdateCommand sets the "command" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateCommand() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldCommand)
	return u
}

// SetStatus sets the "status" field.
func (u *CommandLogUpsert) SetStatus(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateStatus() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldStatus)
	return u
}

// SetFinalStatus sets the "final_status" field.
func (u *CommandLogUpsert) SetFinalStatus(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldFinalStatus, v)
	return u
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateFinalStatus() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldFinalStatus)
	return u
}

// ClearFinalStatus clears the value of the "final_status" field.
func (u *CommandLogUpsert) ClearFinalStatus() *CommandLogUpsert {
	u.SetNull(commandlog.FieldFinalStatus)
	return u
}

// SetPlanSource sets the "plan_source" field.
func (u *CommandLogUpsert) SetPlanSource(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldPlanSource, v)
	return u
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdatePlanSource() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldPlanSource)
	return u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *CommandLogUpsert) ClearPlanSource() *CommandLogUpsert {
	u.SetNull(commandlog.FieldPlanSource)
	return u
}

// SetExecutionMode sets the "execution_mode" field.
func (u *CommandLogUpsert) SetExecutionMode(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldExecutionMode, v)
	return u
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateExecutionMode() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldExecutionMode)
	return u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *CommandLogUpsert) ClearExecutionMode() *CommandLogUpsert {
	u.SetNull(commandlog.FieldExecutionMode)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *CommandLogUpsert) SetErrorCode(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateErrorCode() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *CommandLogUpsert) ClearErrorCode() *CommandLogUpsert {
	u.SetNull(commandlog.FieldErrorCode)
	return u
}

// SetVerificationReason sets the "verification_reason" field.
func (u *CommandLogUpsert) SetVerificationReason(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldVerificationReason, v)
	return u
}

// UpdateVerificationReason sets the "verification_reason" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateVerificationReason() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldVerificationReason)
	return u
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (u *CommandLogUpsert) ClearVerificationReason() *CommandLogUpsert {
	u.SetNull(commandlog.FieldVerificationReason)
	return u
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (u *CommandLogUpsert) SetAutonomousFallbackReason(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldAutonomousFallbackReason, v)
	return u
}

// UpdateAutonomousFallbackReason sets the "autonomous_fallback_reason" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateAutonomousFallbackReason() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldAutonomousFallbackReason)
	return u
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (u *CommandLogUpsert) ClearAutonomousFallbackReason() *CommandLogUpsert {
	u.SetNull(commandlog.FieldAutonomousFallbackReason)
	return u
}

// SetDetail sets the "detail" field.
func (u *CommandLogUpsert) SetDetail(v string) *CommandLogUpsert {
	u.Set(commandlog.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CommandLogUpsert) UpdateDetail() *CommandLogUpsert {
	u.SetExcluded(commandlog.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *CommandLogUpsert) ClearDetail() *CommandLogUpsert {
	u.SetNull(commandlog.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CommandLogUpsertOne) UpdateNewValues() *CommandLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(commandlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommandLogUpsertOne) Ignore() *CommandLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommandLogUpsertOne) DoNothing() *CommandLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommandLogCreate.OnConflict
// documentation for more info.
func (u *CommandLogUpsertOne) Update(set func(*CommandLogUpsert)) *CommandLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommandLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CommandLogUpsertOne) SetUserID(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateUserID() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateUserID()
	})
}

// SetCommand sets the "command" field.
func (u *CommandLogUpsertOne) SetCommand(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetCommand(v)
	})
}

// UpdateCommand sets the "command" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateCommand() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateCommand()
	})
}

// SetStatus sets the "status" field.
func (u *CommandLogUpsertOne) SetStatus(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateStatus() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateStatus()
	})
}

// SetFinalStatus sets the "final_status" field.
func (u *CommandLogUpsertOne) SetFinalStatus(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetFinalStatus(v)
	})
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateFinalStatus() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateFinalStatus()
	})
}

// ClearFinalStatus clears the value of the "final_status" field.
func (u *CommandLogUpsertOne) ClearFinalStatus() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearFinalStatus()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *CommandLogUpsertOne) SetPlanSource(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdatePlanSource() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *CommandLogUpsertOne) ClearPlanSource() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearPlanSource()
	})
}

// SetExecutionMode sets the "execution_mode" field.
func (u *CommandLogUpsertOne) SetExecutionMode(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetExecutionMode(v)
	})
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateExecutionMode() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateExecutionMode()
	})
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *CommandLogUpsertOne) ClearExecutionMode() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearExecutionMode()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *CommandLogUpsertOne) SetErrorCode(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateErrorCode() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *CommandLogUpsertOne) ClearErrorCode() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetVerificationReason sets the "verification_reason" field.
func (u *CommandLogUpsertOne) SetVerificationReason(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetVerificationReason(v)
	})
}

// UpdateVerificationReason sets the "verification_reason" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateVerificationReason() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateVerificationReason()
	})
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (u *CommandLogUpsertOne) ClearVerificationReason() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearVerificationReason()
	})
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (u *CommandLogUpsertOne) SetAutonomousFallbackReason(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetAutonomousFallbackReason(v)
	})
}

// UpdateAutonomousFallbackReason sets the "autonomous_fallback_reason" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateAutonomousFallbackReason() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateAutonomousFallbackReason()
	})
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (u *CommandLogUpsertOne) ClearAutonomousFallbackReason() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearAutonomousFallbackReason()
	})
}

// SetDetail sets the "detail" field.
func (u *CommandLogUpsertOne) SetDetail(v string) *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CommandLogUpsertOne) UpdateDetail() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *CommandLogUpsertOne) ClearDetail() *CommandLogUpsertOne {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *CommandLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommandLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommandLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommandLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommandLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommandLogCreateBulk is the builder for creating many CommandLog entities in bulk.
type CommandLogCreateBulk struct {
	config
	err      error
	builders []*CommandLogCreate
	conflict []sql.ConflictOption
}

// Save creates the CommandLog entities in the database.
func (_c *CommandLogCreateBulk) Save(ctx context.Context) ([]*CommandLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommandLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommandLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommandLogCreateBulk) SaveX(ctx context.Context) []*CommandLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CommandLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommandLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CommandLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommandLogUpsertBulk {
	_c.conflict = opts
	return &CommandLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommandLogCreateBulk) OnConflictColumns(columns ...string) *CommandLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommandLogUpsertBulk{
		create: _c,
	}
}

// CommandLogUpsertBulk is the builder for "upsert"-ing
// a bulk of CommandLog nodes.
type CommandLogUpsertBulk struct {
	create *CommandLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CommandLogUpsertBulk) UpdateNewValues() *CommandLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(commandlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CommandLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommandLogUpsertBulk) Ignore() *CommandLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommandLogUpsertBulk) DoNothing() *CommandLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommandLogCreateBulk.OnConflict
// documentation for more info.
func (u *CommandLogUpsertBulk) Update(set func(*CommandLogUpsert)) *CommandLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommandLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CommandLogUpsertBulk) SetUserID(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateUserID() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateUserID()
	})
}

// SetCommand sets the "command" field.
func (u *CommandLogUpsertBulk) SetCommand(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetCommand(v)
	})
}

// UpdateCommand sets the "command" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateCommand() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateCommand()
	})
}

// SetStatus sets the "status" field.
func (u *CommandLogUpsertBulk) SetStatus(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateStatus() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateStatus()
	})
}

// SetFinalStatus sets the "final_status" field.
func (u *CommandLogUpsertBulk) SetFinalStatus(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetFinalStatus(v)
	})
}

// UpdateFinalStatus sets the "final_status" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateFinalStatus() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateFinalStatus()
	})
}

// ClearFinalStatus clears the value of the "final_status" field.
func (u *CommandLogUpsertBulk) ClearFinalStatus() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearFinalStatus()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *CommandLogUpsertBulk) SetPlanSource(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdatePlanSource() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *CommandLogUpsertBulk) ClearPlanSource() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearPlanSource()
	})
}

// SetExecutionMode sets the "execution_mode" field.
func (u *CommandLogUpsertBulk) SetExecutionMode(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetExecutionMode(v)
	})
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateExecutionMode() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateExecutionMode()
	})
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *CommandLogUpsertBulk) ClearExecutionMode() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearExecutionMode()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *CommandLogUpsertBulk) SetErrorCode(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateErrorCode() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *CommandLogUpsertBulk) ClearErrorCode() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetVerificationReason sets the "verification_reason" field.
func (u *CommandLogUpsertBulk) SetVerificationReason(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetVerificationReason(v)
	})
}

// UpdateVerificationReason sets the "verification_reason" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateVerificationReason() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateVerificationReason()
	})
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (u *CommandLogUpsertBulk) ClearVerificationReason() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearVerificationReason()
	})
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (u *CommandLogUpsertBulk) SetAutonomousFallbackReason(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetAutonomousFallbackReason(v)
	})
}

// UpdateAutonomousFallbackReason sets the "autonomous_fallback_reason" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateAutonomousFallbackReason() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateAutonomousFallbackReason()
	})
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (u *CommandLogUpsertBulk) ClearAutonomousFallbackReason() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearAutonomousFallbackReason()
	})
}

// SetDetail sets the "detail" field.
func (u *CommandLogUpsertBulk) SetDetail(v string) *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *CommandLogUpsertBulk) UpdateDetail() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *CommandLogUpsertBulk) ClearDetail() *CommandLogUpsertBulk {
	return u.Update(func(s *CommandLogUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *CommandLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommandLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommandLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommandLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
