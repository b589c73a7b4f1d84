// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
	"github.com/braid-labs/braid/ent/predicate"
)

// PipelineStepLogUpdate is the builder for updating PipelineStepLog entities.
type PipelineStepLogUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStepLogMutation
}

// Where appends a list predicates to the PipelineStepLogUpdate builder.
func (_u *PipelineStepLogUpdate) Where(ps ...predicate.PipelineStepLog) *PipelineStepLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *PipelineStepLogUpdate) SetPipelineID(v string) *PipelineStepLogUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillablePipelineID(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *PipelineStepLogUpdate) ClearPipelineID() *PipelineStepLogUpdate {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PipelineStepLogUpdate) SetNodeID(v string) *PipelineStepLogUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableNodeID(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *PipelineStepLogUpdate) SetNodeType(v string) *PipelineStepLogUpdate {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableNodeType(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *PipelineStepLogUpdate) SetToolName(v string) *PipelineStepLogUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableToolName(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *PipelineStepLogUpdate) ClearToolName() *PipelineStepLogUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineStepLogUpdate) SetStatus(v pipelinesteplog.Status) *PipelineStepLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableStatus(v *pipelinesteplog.Status) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineStepLogUpdate) SetAttempt(v int) *PipelineStepLogUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableAttempt(v *int) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineStepLogUpdate) AddAttempt(v int) *PipelineStepLogUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *PipelineStepLogUpdate) SetItemIndex(v int) *PipelineStepLogUpdate {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableItemIndex(v *int) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *PipelineStepLogUpdate) AddItemIndex(v int) *PipelineStepLogUpdate {
	_u.mutation.AddItemIndex(v)
	return _u
}

// ClearItemIndex clears the value of the "item_index" field.
func (_u *PipelineStepLogUpdate) ClearItemIndex() *PipelineStepLogUpdate {
	_u.mutation.ClearItemIndex()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PipelineStepLogUpdate) SetLatencyMs(v int) *PipelineStepLogUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableLatencyMs(v *int) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PipelineStepLogUpdate) AddLatencyMs(v int) *PipelineStepLogUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineStepLogUpdate) SetErrorCode(v string) *PipelineStepLogUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableErrorCode(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineStepLogUpdate) ClearErrorCode() *PipelineStepLogUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *PipelineStepLogUpdate) SetDetail(v string) *PipelineStepLogUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *PipelineStepLogUpdate) SetNillableDetail(v *string) *PipelineStepLogUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *PipelineStepLogUpdate) ClearDetail() *PipelineStepLogUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the PipelineStepLogMutation object of the builder.
func (_u *PipelineStepLogUpdate) Mutation() *PipelineStepLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStepLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStepLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinesteplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineStepLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinesteplog.Table, pipelinesteplog.Columns, sqlgraph.NewFieldSpec(pipelinesteplog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(pipelinesteplog.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(pipelinesteplog.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(pipelinesteplog.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(pipelinesteplog.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinesteplog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinesteplog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinesteplog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(pipelinesteplog.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(pipelinesteplog.FieldItemIndex, field.TypeInt, value)
	}
	if _u.mutation.ItemIndexCleared() {
		_spec.ClearField(pipelinesteplog.FieldItemIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(pipelinesteplog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(pipelinesteplog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinesteplog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinesteplog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(pipelinesteplog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(pipelinesteplog.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinesteplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStepLogUpdateOne is the builder for updating a single PipelineStepLog entity.
type PipelineStepLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStepLogMutation
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *PipelineStepLogUpdateOne) SetPipelineID(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillablePipelineID(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *PipelineStepLogUpdateOne) ClearPipelineID() *PipelineStepLogUpdateOne {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *PipelineStepLogUpdateOne) SetNodeID(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableNodeID(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *PipelineStepLogUpdateOne) SetNodeType(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableNodeType(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *PipelineStepLogUpdateOne) SetToolName(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableToolName(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *PipelineStepLogUpdateOne) ClearToolName() *PipelineStepLogUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineStepLogUpdateOne) SetStatus(v pipelinesteplog.Status) *PipelineStepLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableStatus(v *pipelinesteplog.Status) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineStepLogUpdateOne) SetAttempt(v int) *PipelineStepLogUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableAttempt(v *int) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineStepLogUpdateOne) AddAttempt(v int) *PipelineStepLogUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetItemIndex sets the "item_index" field.
func (_u *PipelineStepLogUpdateOne) SetItemIndex(v int) *PipelineStepLogUpdateOne {
	_u.mutation.ResetItemIndex()
	_u.mutation.SetItemIndex(v)
	return _u
}

// SetNillableItemIndex sets the "item_index" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableItemIndex(v *int) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetItemIndex(*v)
	}
	return _u
}

// AddItemIndex adds value to the "item_index" field.
func (_u *PipelineStepLogUpdateOne) AddItemIndex(v int) *PipelineStepLogUpdateOne {
	_u.mutation.AddItemIndex(v)
	return _u
}

// ClearItemIndex clears the value of the "item_index" field.
func (_u *PipelineStepLogUpdateOne) ClearItemIndex() *PipelineStepLogUpdateOne {
	_u.mutation.ClearItemIndex()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PipelineStepLogUpdateOne) SetLatencyMs(v int) *PipelineStepLogUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableLatencyMs(v *int) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PipelineStepLogUpdateOne) AddLatencyMs(v int) *PipelineStepLogUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineStepLogUpdateOne) SetErrorCode(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableErrorCode(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineStepLogUpdateOne) ClearErrorCode() *PipelineStepLogUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *PipelineStepLogUpdateOne) SetDetail(v string) *PipelineStepLogUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *PipelineStepLogUpdateOne) SetNillableDetail(v *string) *PipelineStepLogUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *PipelineStepLogUpdateOne) ClearDetail() *PipelineStepLogUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the PipelineStepLogMutation object of the builder.
func (_u *PipelineStepLogUpdateOne) Mutation() *PipelineStepLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineStepLogUpdate builder.
func (_u *PipelineStepLogUpdateOne) Where(ps ...predicate.PipelineStepLog) *PipelineStepLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStepLogUpdateOne) Select(field string, fields ...string) *PipelineStepLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStepLog entity.
func (_u *PipelineStepLogUpdateOne) Save(ctx context.Context) (*PipelineStepLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepLogUpdateOne) SaveX(ctx context.Context) *PipelineStepLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStepLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinesteplog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineStepLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepLogUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStepLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinesteplog.Table, pipelinesteplog.Columns, sqlgraph.NewFieldSpec(pipelinesteplog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStepLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinesteplog.FieldID)
		for _, f := range fields {
			if !pipelinesteplog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinesteplog.FieldID {
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
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(pipelinesteplog.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(pipelinesteplog.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(pipelinesteplog.FieldNodeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(pipelinesteplog.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(pipelinesteplog.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinesteplog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinesteplog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinesteplog.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemIndex(); ok {
		_spec.SetField(pipelinesteplog.FieldItemIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemIndex(); ok {
		_spec.AddField(pipelinesteplog.FieldItemIndex, field.TypeInt, value)
	}
	if _u.mutation.ItemIndexCleared() {
		_spec.ClearField(pipelinesteplog.FieldItemIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(pipelinesteplog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(pipelinesteplog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinesteplog.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinesteplog.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(pipelinesteplog.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(pipelinesteplog.FieldDetail, field.TypeString)
	}
	_node = &PipelineStepLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinesteplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
