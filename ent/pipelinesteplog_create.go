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
	"github.com/braid-labs/braid/ent/pipelinesteplog"
)

// PipelineStepLogCreate is the builder for creating a PipelineStepLog entity.
type PipelineStepLogCreate struct {
	config
	mutation *PipelineStepLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *PipelineStepLogCreate) SetRequestID(v string) *PipelineStepLogCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *PipelineStepLogCreate) SetRunID(v string) *PipelineStepLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *PipelineStepLogCreate) SetPipelineID(v string) *PipelineStepLogCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillablePipelineID(v *string) *PipelineStepLogCreate {
	if v != nil {
		_c.SetPipelineID(*v)
	}
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *PipelineStepLogCreate) SetNodeID(v string) *PipelineStepLogCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNodeType sets the "node_type" field.
func (_c *PipelineStepLogCreate) SetNodeType(v string) *PipelineStepLogCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *PipelineStepLogCreate) SetToolName(v string) *PipelineStepLogCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableToolName(v *string) *PipelineStepLogCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineStepLogCreate) SetStatus(v pipelinesteplog.Status) *PipelineStepLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PipelineStepLogCreate) SetAttempt(v int) *PipelineStepLogCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableAttempt(v *int) *PipelineStepLogCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *PipelineStepLogCreate) SetItemIndex(v int) *PipelineStepLogCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableItemIndex(v *int) *PipelineStepLogCreate {
	if v != nil {
		_c.SetItemIndex(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *PipelineStepLogCreate) SetLatencyMs(v int) *PipelineStepLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *PipelineStepLogCreate) SetErrorCode(v string) *PipelineStepLogCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableErrorCode(v *string) *PipelineStepLogCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *PipelineStepLogCreate) SetDetail(v string) *PipelineStepLogCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableDetail(v *string) *PipelineStepLogCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineStepLogCreate) SetCreatedAt(v time.Time) *PipelineStepLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineStepLogCreate) SetNillableCreatedAt(v *time.Time) *PipelineStepLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PipelineStepLogMutation object of the builder.
func (_c *PipelineStepLogCreate) Mutation() *PipelineStepLogMutation {
	return _c.mutation
}

// Save creates the PipelineStepLog in the database.
func (_c *PipelineStepLogCreate) Save(ctx context.Context) (*PipelineStepLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStepLogCreate) SaveX(ctx context.Context) *PipelineStepLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStepLogCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := pipelinesteplog.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinesteplog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStepLogCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "PipelineStepLog.request_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "PipelineStepLog.run_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "PipelineStepLog.node_id"`)}
	}
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "PipelineStepLog.node_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineStepLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinesteplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineStepLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PipelineStepLog.attempt"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "PipelineStepLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineStepLog.created_at"`)}
	}
	return nil
}

func (_c *PipelineStepLogCreate) sqlSave(ctx context.Context) (*PipelineStepLog, error) {
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

func (_c *PipelineStepLogCreate) createSpec() (*PipelineStepLog, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStepLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinesteplog.Table, sqlgraph.NewFieldSpec(pipelinesteplog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(pipelinesteplog.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(pipelinesteplog.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.PipelineID(); ok {
		_spec.SetField(pipelinesteplog.FieldPipelineID, field.TypeString, value)
		_node.PipelineID = &value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeType, field.TypeString, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(pipelinesteplog.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinesteplog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(pipelinesteplog.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(pipelinesteplog.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(pipelinesteplog.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinesteplog.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(pipelinesteplog.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinesteplog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStepLog.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStepLogUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStepLogCreate) OnConflict(opts ...sql.ConflictOption) *PipelineStepLogUpsertOne {
	_c.conflict = opts
	return &PipelineStepLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStepLogCreate) OnConflictColumns(columns ...string) *PipelineStepLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStepLogUpsertOne{
		create: _c,
	}
}

type (
	// PipelineStepLogUpsertOne is the builder for "upsert"-ing
	//  one PipelineStepLog node.
	PipelineStepLogUpsertOne struct {
		create *PipelineStepLogCreate
	}

	// PipelineStepLogUpsert is the "OnConflict" setter.
	PipelineStepLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineStepLogUpsert) SetPipelineID(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldPipelineID, v)
	return u
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdatePipelineID() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldPipelineID)
	return u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineStepLogUpsert) ClearPipelineID() *PipelineStepLogUpsert {
	u.SetNull(pipelinesteplog.FieldPipelineID)
	return u
}

// SetNodeID sets the "node_id" field.
func (u *PipelineStepLogUpsert) SetNodeID(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldNodeID, v)
	return u
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateNodeID() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldNodeID)
	return u
}

// SetNodeType sets the "node_type" field.
func (u *PipelineStepLogUpsert) SetNodeType(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldNodeType, v)
	return u
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateNodeType() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldNodeType)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *PipelineStepLogUpsert) SetToolName(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateToolName() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldToolName)
	return u
}

// ClearToolName clears the value of the "tool_name" field.
func (u *PipelineStepLogUpsert) ClearToolName() *PipelineStepLogUpsert {
	u.SetNull(pipelinesteplog.FieldToolName)
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineStepLogUpsert) SetStatus(v pipelinesteplog.Status) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateStatus() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldStatus)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *PipelineStepLogUpsert) SetAttempt(v int) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateAttempt() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineStepLogUpsert) AddAttempt(v int) *PipelineStepLogUpsert {
	u.Add(pipelinesteplog.FieldAttempt, v)
	return u
}

// SetItemIndex sets the "item_index" field.
func (u *PipelineStepLogUpsert) SetItemIndex(v int) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldItemIndex, v)
	return u
}

// UpdateItemIndex sets the "item_index" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateItemIndex() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldItemIndex)
	return u
}

// AddItemIndex adds v to the "item_index" field.
func (u *PipelineStepLogUpsert) AddItemIndex(v int) *PipelineStepLogUpsert {
	u.Add(pipelinesteplog.FieldItemIndex, v)
	return u
}

// ClearItemIndex clears the value of the "item_index" field.
func (u *PipelineStepLogUpsert) ClearItemIndex() *PipelineStepLogUpsert {
	u.SetNull(pipelinesteplog.FieldItemIndex)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *PipelineStepLogUpsert) SetLatencyMs(v int) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateLatencyMs() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *PipelineStepLogUpsert) AddLatencyMs(v int) *PipelineStepLogUpsert {
	u.Add(pipelinesteplog.FieldLatencyMs, v)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineStepLogUpsert) SetErrorCode(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateErrorCode() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineStepLogUpsert) ClearErrorCode() *PipelineStepLogUpsert {
	u.SetNull(pipelinesteplog.FieldErrorCode)
	return u
}

// SetDetail sets the "detail" field.
func (u *PipelineStepLogUpsert) SetDetail(v string) *PipelineStepLogUpsert {
	u.Set(pipelinesteplog.FieldDetail, v)
	return u
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PipelineStepLogUpsert) UpdateDetail() *PipelineStepLogUpsert {
	u.SetExcluded(pipelinesteplog.FieldDetail)
	return u
}

// ClearDetail clears the value of the "detail" field.
func (u *PipelineStepLogUpsert) ClearDetail() *PipelineStepLogUpsert {
	u.SetNull(pipelinesteplog.FieldDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineStepLogUpsertOne) UpdateNewValues() *PipelineStepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(pipelinesteplog.FieldRequestID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(pipelinesteplog.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinesteplog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineStepLogUpsertOne) Ignore() *PipelineStepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStepLogUpsertOne) DoNothing() *PipelineStepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStepLogCreate.OnConflict
// documentation for more info.
func (u *PipelineStepLogUpsertOne) Update(set func(*PipelineStepLogUpsert)) *PipelineStepLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStepLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineStepLogUpsertOne) SetPipelineID(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetPipelineID(v)
	})
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdatePipelineID() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdatePipelineID()
	})
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineStepLogUpsertOne) ClearPipelineID() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearPipelineID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *PipelineStepLogUpsertOne) SetNodeID(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateNodeID() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateNodeID()
	})
}

// SetNodeType sets the "node_type" field.
func (u *PipelineStepLogUpsertOne) SetNodeType(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetNodeType(v)
	})
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateNodeType() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateNodeType()
	})
}

// SetToolName sets the "tool_name" field.
func (u *PipelineStepLogUpsertOne) SetToolName(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateToolName() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *PipelineStepLogUpsertOne) ClearToolName() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearToolName()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineStepLogUpsertOne) SetStatus(v pipelinesteplog.Status) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateStatus() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineStepLogUpsertOne) SetAttempt(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineStepLogUpsertOne) AddAttempt(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateAttempt() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateAttempt()
	})
}

// SetItemIndex sets the "item_index" field.
func (u *PipelineStepLogUpsertOne) SetItemIndex(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetItemIndex(v)
	})
}

// AddItemIndex adds v to the "item_index" field.
func (u *PipelineStepLogUpsertOne) AddItemIndex(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddItemIndex(v)
	})
}

// UpdateItemIndex sets the "item_index" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateItemIndex() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateItemIndex()
	})
}

// ClearItemIndex clears the value of the "item_index" field.
func (u *PipelineStepLogUpsertOne) ClearItemIndex() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearItemIndex()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *PipelineStepLogUpsertOne) SetLatencyMs(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *PipelineStepLogUpsertOne) AddLatencyMs(v int) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateLatencyMs() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineStepLogUpsertOne) SetErrorCode(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateErrorCode() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineStepLogUpsertOne) ClearErrorCode() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetDetail sets the "detail" field.
func (u *PipelineStepLogUpsertOne) SetDetail(v string) *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PipelineStepLogUpsertOne) UpdateDetail() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *PipelineStepLogUpsertOne) ClearDetail() *PipelineStepLogUpsertOne {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *PipelineStepLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStepLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStepLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineStepLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineStepLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineStepLogCreateBulk is the builder for creating many PipelineStepLog entities in bulk.
type PipelineStepLogCreateBulk struct {
	config
	err      error
	builders []*PipelineStepLogCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineStepLog entities in the database.
func (_c *PipelineStepLogCreateBulk) Save(ctx context.Context) ([]*PipelineStepLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStepLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStepLogMutation)
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
func (_c *PipelineStepLogCreateBulk) SaveX(ctx context.Context) []*PipelineStepLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStepLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStepLogUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStepLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineStepLogUpsertBulk {
	_c.conflict = opts
	return &PipelineStepLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStepLogCreateBulk) OnConflictColumns(columns ...string) *PipelineStepLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStepLogUpsertBulk{
		create: _c,
	}
}

// PipelineStepLogUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineStepLog nodes.
type PipelineStepLogUpsertBulk struct {
	create *PipelineStepLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineStepLogUpsertBulk) UpdateNewValues() *PipelineStepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(pipelinesteplog.FieldRequestID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(pipelinesteplog.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinesteplog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStepLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineStepLogUpsertBulk) Ignore() *PipelineStepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStepLogUpsertBulk) DoNothing() *PipelineStepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStepLogCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineStepLogUpsertBulk) Update(set func(*PipelineStepLogUpsert)) *PipelineStepLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStepLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineStepLogUpsertBulk) SetPipelineID(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetPipelineID(v)
	})
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdatePipelineID() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdatePipelineID()
	})
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineStepLogUpsertBulk) ClearPipelineID() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearPipelineID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *PipelineStepLogUpsertBulk) SetNodeID(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateNodeID() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateNodeID()
	})
}

// SetNodeType sets the "node_type" field.
func (u *PipelineStepLogUpsertBulk) SetNodeType(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetNodeType(v)
	})
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateNodeType() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateNodeType()
	})
}

// SetToolName sets the "tool_name" field.
func (u *PipelineStepLogUpsertBulk) SetToolName(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateToolName() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *PipelineStepLogUpsertBulk) ClearToolName() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearToolName()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineStepLogUpsertBulk) SetStatus(v pipelinesteplog.Status) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateStatus() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *PipelineStepLogUpsertBulk) SetAttempt(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *PipelineStepLogUpsertBulk) AddAttempt(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateAttempt() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateAttempt()
	})
}

// SetItemIndex sets the "item_index" field.
func (u *PipelineStepLogUpsertBulk) SetItemIndex(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetItemIndex(v)
	})
}

// AddItemIndex adds v to the "item_index" field.
func (u *PipelineStepLogUpsertBulk) AddItemIndex(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddItemIndex(v)
	})
}

// UpdateItemIndex sets the "item_index" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateItemIndex() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateItemIndex()
	})
}

// ClearItemIndex clears the value of the "item_index" field.
func (u *PipelineStepLogUpsertBulk) ClearItemIndex() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearItemIndex()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *PipelineStepLogUpsertBulk) SetLatencyMs(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *PipelineStepLogUpsertBulk) AddLatencyMs(v int) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateLatencyMs() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineStepLogUpsertBulk) SetErrorCode(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateErrorCode() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineStepLogUpsertBulk) ClearErrorCode() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearErrorCode()
	})
}

// SetDetail sets the "detail" field.
func (u *PipelineStepLogUpsertBulk) SetDetail(v string) *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.SetDetail(v)
	})
}

// UpdateDetail sets the "detail" field to the value that was provided on create.
func (u *PipelineStepLogUpsertBulk) UpdateDetail() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.UpdateDetail()
	})
}

// ClearDetail clears the value of the "detail" field.
func (u *PipelineStepLogUpsertBulk) ClearDetail() *PipelineStepLogUpsertBulk {
	return u.Update(func(s *PipelineStepLogUpsert) {
		s.ClearDetail()
	})
}

// Exec executes the query.
func (u *PipelineStepLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineStepLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStepLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStepLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
