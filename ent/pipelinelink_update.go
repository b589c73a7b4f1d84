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
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/ent/predicate"
)

// PipelineLinkUpdate is the builder for updating PipelineLink entities.
type PipelineLinkUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineLinkMutation
}

// Where appends a list predicates to the PipelineLinkUpdate builder.
func (_u *PipelineLinkUpdate) Where(ps ...predicate.PipelineLink) *PipelineLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PipelineLinkUpdate) SetUserID(v string) *PipelineLinkUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableUserID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *PipelineLinkUpdate) SetEventID(v string) *PipelineLinkUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableEventID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetNotionPageID sets the "notion_page_id" field.
func (_u *PipelineLinkUpdate) SetNotionPageID(v string) *PipelineLinkUpdate {
	_u.mutation.SetNotionPageID(v)
	return _u
}

// SetNillableNotionPageID sets the "notion_page_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableNotionPageID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetNotionPageID(*v)
	}
	return _u
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (_u *PipelineLinkUpdate) ClearNotionPageID() *PipelineLinkUpdate {
	_u.mutation.ClearNotionPageID()
	return _u
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (_u *PipelineLinkUpdate) SetLinearIssueID(v string) *PipelineLinkUpdate {
	_u.mutation.SetLinearIssueID(v)
	return _u
}

// SetNillableLinearIssueID sets the "linear_issue_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableLinearIssueID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetLinearIssueID(*v)
	}
	return _u
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (_u *PipelineLinkUpdate) ClearLinearIssueID() *PipelineLinkUpdate {
	_u.mutation.ClearLinearIssueID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PipelineLinkUpdate) SetTitle(v string) *PipelineLinkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableTitle(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PipelineLinkUpdate) ClearTitle() *PipelineLinkUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineLinkUpdate) SetStatus(v pipelinelink.Status) *PipelineLinkUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableStatus(v *pipelinelink.Status) *PipelineLinkUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineLinkUpdate) SetErrorCode(v string) *PipelineLinkUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableErrorCode(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineLinkUpdate) ClearErrorCode() *PipelineLinkUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetCompensationStatus sets the "compensation_status" field.
func (_u *PipelineLinkUpdate) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkUpdate {
	_u.mutation.SetCompensationStatus(v)
	return _u
}

// SetNillableCompensationStatus sets the "compensation_status" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableCompensationStatus(v *pipelinelink.CompensationStatus) *PipelineLinkUpdate {
	if v != nil {
		_u.SetCompensationStatus(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PipelineLinkUpdate) SetRunID(v string) *PipelineLinkUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillableRunID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *PipelineLinkUpdate) SetPipelineID(v string) *PipelineLinkUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *PipelineLinkUpdate) SetNillablePipelineID(v *string) *PipelineLinkUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *PipelineLinkUpdate) ClearPipelineID() *PipelineLinkUpdate {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineLinkUpdate) SetUpdatedAt(v time.Time) *PipelineLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineLinkMutation object of the builder.
func (_u *PipelineLinkUpdate) Mutation() *PipelineLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinelink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineLinkUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompensationStatus(); ok {
		if err := pipelinelink.CompensationStatusValidator(v); err != nil {
			return &ValidationError{Name: "compensation_status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.compensation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinelink.Table, pipelinelink.Columns, sqlgraph.NewFieldSpec(pipelinelink.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pipelinelink.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(pipelinelink.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotionPageID(); ok {
		_spec.SetField(pipelinelink.FieldNotionPageID, field.TypeString, value)
	}
	if _u.mutation.NotionPageIDCleared() {
		_spec.ClearField(pipelinelink.FieldNotionPageID, field.TypeString)
	}
	if value, ok := _u.mutation.LinearIssueID(); ok {
		_spec.SetField(pipelinelink.FieldLinearIssueID, field.TypeString, value)
	}
	if _u.mutation.LinearIssueIDCleared() {
		_spec.ClearField(pipelinelink.FieldLinearIssueID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pipelinelink.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(pipelinelink.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinelink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinelink.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinelink.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.CompensationStatus(); ok {
		_spec.SetField(pipelinelink.FieldCompensationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinelink.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(pipelinelink.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(pipelinelink.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinelink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineLinkUpdateOne is the builder for updating a single PipelineLink entity.
type PipelineLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineLinkMutation
}

// SetUserID sets the "user_id" field.
func (_u *PipelineLinkUpdateOne) SetUserID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableUserID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *PipelineLinkUpdateOne) SetEventID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableEventID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetNotionPageID sets the "notion_page_id" field.
func (_u *PipelineLinkUpdateOne) SetNotionPageID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetNotionPageID(v)
	return _u
}

// SetNillableNotionPageID sets the "notion_page_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableNotionPageID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetNotionPageID(*v)
	}
	return _u
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (_u *PipelineLinkUpdateOne) ClearNotionPageID() *PipelineLinkUpdateOne {
	_u.mutation.ClearNotionPageID()
	return _u
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (_u *PipelineLinkUpdateOne) SetLinearIssueID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetLinearIssueID(v)
	return _u
}

// SetNillableLinearIssueID sets the "linear_issue_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableLinearIssueID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetLinearIssueID(*v)
	}
	return _u
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (_u *PipelineLinkUpdateOne) ClearLinearIssueID() *PipelineLinkUpdateOne {
	_u.mutation.ClearLinearIssueID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PipelineLinkUpdateOne) SetTitle(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableTitle(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PipelineLinkUpdateOne) ClearTitle() *PipelineLinkUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineLinkUpdateOne) SetStatus(v pipelinelink.Status) *PipelineLinkUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableStatus(v *pipelinelink.Status) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineLinkUpdateOne) SetErrorCode(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableErrorCode(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineLinkUpdateOne) ClearErrorCode() *PipelineLinkUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetCompensationStatus sets the "compensation_status" field.
func (_u *PipelineLinkUpdateOne) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkUpdateOne {
	_u.mutation.SetCompensationStatus(v)
	return _u
}

// SetNillableCompensationStatus sets the "compensation_status" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableCompensationStatus(v *pipelinelink.CompensationStatus) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetCompensationStatus(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PipelineLinkUpdateOne) SetRunID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillableRunID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPipelineID sets the "pipeline_id" field.
func (_u *PipelineLinkUpdateOne) SetPipelineID(v string) *PipelineLinkUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *PipelineLinkUpdateOne) SetNillablePipelineID(v *string) *PipelineLinkUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (_u *PipelineLinkUpdateOne) ClearPipelineID() *PipelineLinkUpdateOne {
	_u.mutation.ClearPipelineID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineLinkUpdateOne) SetUpdatedAt(v time.Time) *PipelineLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PipelineLinkMutation object of the builder.
func (_u *PipelineLinkUpdateOne) Mutation() *PipelineLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineLinkUpdate builder.
func (_u *PipelineLinkUpdateOne) Where(ps ...predicate.PipelineLink) *PipelineLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineLinkUpdateOne) Select(field string, fields ...string) *PipelineLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineLink entity.
func (_u *PipelineLinkUpdateOne) Save(ctx context.Context) (*PipelineLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineLinkUpdateOne) SaveX(ctx context.Context) *PipelineLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinelink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompensationStatus(); ok {
		if err := pipelinelink.CompensationStatusValidator(v); err != nil {
			return &ValidationError{Name: "compensation_status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.compensation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineLinkUpdateOne) sqlSave(ctx context.Context) (_node *PipelineLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinelink.Table, pipelinelink.Columns, sqlgraph.NewFieldSpec(pipelinelink.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinelink.FieldID)
		for _, f := range fields {
			if !pipelinelink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinelink.FieldID {
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
		_spec.SetField(pipelinelink.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(pipelinelink.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotionPageID(); ok {
		_spec.SetField(pipelinelink.FieldNotionPageID, field.TypeString, value)
	}
	if _u.mutation.NotionPageIDCleared() {
		_spec.ClearField(pipelinelink.FieldNotionPageID, field.TypeString)
	}
	if value, ok := _u.mutation.LinearIssueID(); ok {
		_spec.SetField(pipelinelink.FieldLinearIssueID, field.TypeString, value)
	}
	if _u.mutation.LinearIssueIDCleared() {
		_spec.ClearField(pipelinelink.FieldLinearIssueID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pipelinelink.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(pipelinelink.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinelink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinelink.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinelink.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.CompensationStatus(); ok {
		_spec.SetField(pipelinelink.FieldCompensationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinelink.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PipelineID(); ok {
		_spec.SetField(pipelinelink.FieldPipelineID, field.TypeString, value)
	}
	if _u.mutation.PipelineIDCleared() {
		_spec.ClearField(pipelinelink.FieldPipelineID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinelink.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PipelineLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
