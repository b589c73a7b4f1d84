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
)

// PipelineLinkCreate is the builder for creating a PipelineLink entity.
type PipelineLinkCreate struct {
	config
	mutation *PipelineLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PipelineLinkCreate) SetUserID(v string) *PipelineLinkCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *PipelineLinkCreate) SetEventID(v string) *PipelineLinkCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNotionPageID sets the "notion_page_id" field.
func (_c *PipelineLinkCreate) SetNotionPageID(v string) *PipelineLinkCreate {
	_c.mutation.SetNotionPageID(v)
	return _c
}

// SetNillableNotionPageID sets the "notion_page_id" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableNotionPageID(v *string) *PipelineLinkCreate {
	if v != nil {
		_c.SetNotionPageID(*v)
	}
	return _c
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (_c *PipelineLinkCreate) SetLinearIssueID(v string) *PipelineLinkCreate {
	_c.mutation.SetLinearIssueID(v)
	return _c
}

// SetNillableLinearIssueID sets the "linear_issue_id" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableLinearIssueID(v *string) *PipelineLinkCreate {
	if v != nil {
		_c.SetLinearIssueID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PipelineLinkCreate) SetTitle(v string) *PipelineLinkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableTitle(v *string) *PipelineLinkCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineLinkCreate) SetStatus(v pipelinelink.Status) *PipelineLinkCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *PipelineLinkCreate) SetErrorCode(v string) *PipelineLinkCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableErrorCode(v *string) *PipelineLinkCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetCompensationStatus sets the "compensation_status" field.
func (_c *PipelineLinkCreate) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkCreate {
	_c.mutation.SetCompensationStatus(v)
	return _c
}

// SetNillableCompensationStatus sets the "compensation_status" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableCompensationStatus(v *pipelinelink.CompensationStatus) *PipelineLinkCreate {
	if v != nil {
		_c.SetCompensationStatus(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *PipelineLinkCreate) SetRunID(v string) *PipelineLinkCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *PipelineLinkCreate) SetPipelineID(v string) *PipelineLinkCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillablePipelineID(v *string) *PipelineLinkCreate {
	if v != nil {
		_c.SetPipelineID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineLinkCreate) SetCreatedAt(v time.Time) *PipelineLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableCreatedAt(v *time.Time) *PipelineLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineLinkCreate) SetUpdatedAt(v time.Time) *PipelineLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineLinkCreate) SetNillableUpdatedAt(v *time.Time) *PipelineLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PipelineLinkMutation object of the builder.
func (_c *PipelineLinkCreate) Mutation() *PipelineLinkMutation {
	return _c.mutation
}

// Save creates the PipelineLink in the database.
func (_c *PipelineLinkCreate) Save(ctx context.Context) (*PipelineLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineLinkCreate) SaveX(ctx context.Context) *PipelineLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineLinkCreate) defaults() {
	if _, ok := _c.mutation.CompensationStatus(); !ok {
		v := pipelinelink.DefaultCompensationStatus
		_c.mutation.SetCompensationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinelink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinelink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineLinkCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PipelineLink.user_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "PipelineLink.event_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineLink.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompensationStatus(); !ok {
		return &ValidationError{Name: "compensation_status", err: errors.New(`ent: missing required field "PipelineLink.compensation_status"`)}
	}
	if v, ok := _c.mutation.CompensationStatus(); ok {
		if err := pipelinelink.CompensationStatusValidator(v); err != nil {
			return &ValidationError{Name: "compensation_status", err: fmt.Errorf(`ent: validator failed for field "PipelineLink.compensation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "PipelineLink.run_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineLink.updated_at"`)}
	}
	return nil
}

func (_c *PipelineLinkCreate) sqlSave(ctx context.Context) (*PipelineLink, error) {
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

func (_c *PipelineLinkCreate) createSpec() (*PipelineLink, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinelink.Table, sqlgraph.NewFieldSpec(pipelinelink.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pipelinelink.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(pipelinelink.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.NotionPageID(); ok {
		_spec.SetField(pipelinelink.FieldNotionPageID, field.TypeString, value)
		_node.NotionPageID = &value
	}
	if value, ok := _c.mutation.LinearIssueID(); ok {
		_spec.SetField(pipelinelink.FieldLinearIssueID, field.TypeString, value)
		_node.LinearIssueID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(pipelinelink.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinelink.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinelink.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.CompensationStatus(); ok {
		_spec.SetField(pipelinelink.FieldCompensationStatus, field.TypeEnum, value)
		_node.CompensationStatus = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(pipelinelink.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.PipelineID(); ok {
		_spec.SetField(pipelinelink.FieldPipelineID, field.TypeString, value)
		_node.PipelineID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinelink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinelink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineLink.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineLinkUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineLinkCreate) OnConflict(opts ...sql.ConflictOption) *PipelineLinkUpsertOne {
	_c.conflict = opts
	return &PipelineLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineLinkCreate) OnConflictColumns(columns ...string) *PipelineLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineLinkUpsertOne{
		create: _c,
	}
}

type (
	// PipelineLinkUpsertOne is the builder for "upsert"-ing
	//  one PipelineLink node.
	PipelineLinkUpsertOne struct {
		create *PipelineLinkCreate
	}

	// PipelineLinkUpsert is the "OnConflict" setter.
	PipelineLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PipelineLinkUpsert) SetUserID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateUserID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldUserID)
	return u
}

// SetEventID sets the "event_id" field.
func (u *PipelineLinkUpsert) SetEventID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateEventID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldEventID)
	return u
}

// SetNotionPageID sets the "notion_page_id" field.
func (u *PipelineLinkUpsert) SetNotionPageID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldNotionPageID, v)
	return u
}

// UpdateNotionPageID sets the "notion_page_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateNotionPageID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldNotionPageID)
	return u
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (u *PipelineLinkUpsert) ClearNotionPageID() *PipelineLinkUpsert {
	u.SetNull(pipelinelink.FieldNotionPageID)
	return u
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (u *PipelineLinkUpsert) SetLinearIssueID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldLinearIssueID, v)
	return u
}

// UpdateLinearIssueID sets the "linear_issue_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateLinearIssueID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldLinearIssueID)
	return u
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (u *PipelineLinkUpsert) ClearLinearIssueID() *PipelineLinkUpsert {
	u.SetNull(pipelinelink.FieldLinearIssueID)
	return u
}

// SetTitle sets the "title" field.
func (u *PipelineLinkUpsert) SetTitle(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateTitle() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *PipelineLinkUpsert) ClearTitle() *PipelineLinkUpsert {
	u.SetNull(pipelinelink.FieldTitle)
	return u
}

// SetStatus sets the "status" field.
func (u *PipelineLinkUpsert) SetStatus(v pipelinelink.Status) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateStatus() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldStatus)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineLinkUpsert) SetErrorCode(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateErrorCode() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineLinkUpsert) ClearErrorCode() *PipelineLinkUpsert {
	u.SetNull(pipelinelink.FieldErrorCode)
	return u
}

// SetCompensationStatus sets the "compensation_status" field.
func (u *PipelineLinkUpsert) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldCompensationStatus, v)
	return u
}

// UpdateCompensationStatus sets the "compensation_status" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateCompensationStatus() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldCompensationStatus)
	return u
}

// SetRunID sets the "run_id" field.
func (u *PipelineLinkUpsert) SetRunID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateRunID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldRunID)
	return u
}

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineLinkUpsert) SetPipelineID(v string) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldPipelineID, v)
	return u
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdatePipelineID() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldPipelineID)
	return u
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineLinkUpsert) ClearPipelineID() *PipelineLinkUpsert {
	u.SetNull(pipelinelink.FieldPipelineID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineLinkUpsert) SetUpdatedAt(v time.Time) *PipelineLinkUpsert {
	u.Set(pipelinelink.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineLinkUpsert) UpdateUpdatedAt() *PipelineLinkUpsert {
	u.SetExcluded(pipelinelink.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineLinkUpsertOne) UpdateNewValues() *PipelineLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinelink.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineLinkUpsertOne) Ignore() *PipelineLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineLinkUpsertOne) DoNothing() *PipelineLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineLinkCreate.OnConflict
// documentation for more info.
func (u *PipelineLinkUpsertOne) Update(set func(*PipelineLinkUpsert)) *PipelineLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PipelineLinkUpsertOne) SetUserID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateUserID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateUserID()
	})
}

// SetEventID sets the "event_id" field.
func (u *PipelineLinkUpsertOne) SetEventID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateEventID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetNotionPageID sets the "notion_page_id" field.
func (u *PipelineLinkUpsertOne) SetNotionPageID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetNotionPageID(v)
	})
}

// UpdateNotionPageID sets the "notion_page_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateNotionPageID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateNotionPageID()
	})
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (u *PipelineLinkUpsertOne) ClearNotionPageID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearNotionPageID()
	})
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (u *PipelineLinkUpsertOne) SetLinearIssueID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetLinearIssueID(v)
	})
}

// UpdateLinearIssueID sets the "linear_issue_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateLinearIssueID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateLinearIssueID()
	})
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (u *PipelineLinkUpsertOne) ClearLinearIssueID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearLinearIssueID()
	})
}

// SetTitle sets the "title" field.
func (u *PipelineLinkUpsertOne) SetTitle(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateTitle() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PipelineLinkUpsertOne) ClearTitle() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineLinkUpsertOne) SetStatus(v pipelinelink.Status) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateStatus() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineLinkUpsertOne) SetErrorCode(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateErrorCode() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineLinkUpsertOne) ClearErrorCode() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearErrorCode()
	})
}

// SetCompensationStatus sets the "compensation_status" field.
func (u *PipelineLinkUpsertOne) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetCompensationStatus(v)
	})
}

// UpdateCompensationStatus sets the "compensation_status" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateCompensationStatus() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateCompensationStatus()
	})
}

// SetRunID sets the "run_id" field.
func (u *PipelineLinkUpsertOne) SetRunID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateRunID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateRunID()
	})
}

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineLinkUpsertOne) SetPipelineID(v string) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetPipelineID(v)
	})
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdatePipelineID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdatePipelineID()
	})
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineLinkUpsertOne) ClearPipelineID() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearPipelineID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineLinkUpsertOne) SetUpdatedAt(v time.Time) *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineLinkUpsertOne) UpdateUpdatedAt() *PipelineLinkUpsertOne {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineLinkUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineLinkUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineLinkCreateBulk is the builder for creating many PipelineLink entities in bulk.
type PipelineLinkCreateBulk struct {
	config
	err      error
	builders []*PipelineLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineLink entities in the database.
func (_c *PipelineLinkCreateBulk) Save(ctx context.Context) ([]*PipelineLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineLinkMutation)
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
func (_c *PipelineLinkCreateBulk) SaveX(ctx context.Context) []*PipelineLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineLinkUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineLinkUpsertBulk {
	_c.conflict = opts
	return &PipelineLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineLinkCreateBulk) OnConflictColumns(columns ...string) *PipelineLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineLinkUpsertBulk{
		create: _c,
	}
}

// PipelineLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineLink nodes.
type PipelineLinkUpsertBulk struct {
	create *PipelineLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PipelineLinkUpsertBulk) UpdateNewValues() *PipelineLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinelink.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineLinkUpsertBulk) Ignore() *PipelineLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineLinkUpsertBulk) DoNothing() *PipelineLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineLinkCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineLinkUpsertBulk) Update(set func(*PipelineLinkUpsert)) *PipelineLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PipelineLinkUpsertBulk) SetUserID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateUserID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateUserID()
	})
}

// SetEventID sets the "event_id" field.
func (u *PipelineLinkUpsertBulk) SetEventID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateEventID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateEventID()
	})
}

// SetNotionPageID sets the "notion_page_id" field.
func (u *PipelineLinkUpsertBulk) SetNotionPageID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetNotionPageID(v)
	})
}

// UpdateNotionPageID sets the "notion_page_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateNotionPageID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateNotionPageID()
	})
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (u *PipelineLinkUpsertBulk) ClearNotionPageID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearNotionPageID()
	})
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (u *PipelineLinkUpsertBulk) SetLinearIssueID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetLinearIssueID(v)
	})
}

// UpdateLinearIssueID sets the "linear_issue_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateLinearIssueID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateLinearIssueID()
	})
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (u *PipelineLinkUpsertBulk) ClearLinearIssueID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearLinearIssueID()
	})
}

// SetTitle sets the "title" field.
func (u *PipelineLinkUpsertBulk) SetTitle(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateTitle() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PipelineLinkUpsertBulk) ClearTitle() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *PipelineLinkUpsertBulk) SetStatus(v pipelinelink.Status) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateStatus() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *PipelineLinkUpsertBulk) SetErrorCode(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateErrorCode() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *PipelineLinkUpsertBulk) ClearErrorCode() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearErrorCode()
	})
}

// SetCompensationStatus sets the "compensation_status" field.
func (u *PipelineLinkUpsertBulk) SetCompensationStatus(v pipelinelink.CompensationStatus) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetCompensationStatus(v)
	})
}

// UpdateCompensationStatus sets the "compensation_status" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateCompensationStatus() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateCompensationStatus()
	})
}

// SetRunID sets the "run_id" field.
func (u *PipelineLinkUpsertBulk) SetRunID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateRunID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateRunID()
	})
}

// SetPipelineID sets the "pipeline_id" field.
func (u *PipelineLinkUpsertBulk) SetPipelineID(v string) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetPipelineID(v)
	})
}

// UpdatePipelineID sets the "pipeline_id" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdatePipelineID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdatePipelineID()
	})
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (u *PipelineLinkUpsertBulk) ClearPipelineID() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.ClearPipelineID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PipelineLinkUpsertBulk) SetUpdatedAt(v time.Time) *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PipelineLinkUpsertBulk) UpdateUpdatedAt() *PipelineLinkUpsertBulk {
	return u.Update(func(s *PipelineLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PipelineLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
