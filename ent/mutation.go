// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/commandlog"
	"github.com/braid-labs/braid/ent/oauthtoken"
	"github.com/braid-labs/braid/ent/pendingaction"
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
	"github.com/braid-labs/braid/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCommandLog      = "CommandLog"
	TypeOAuthToken      = "OAuthToken"
	TypePendingAction   = "PendingAction"
	TypePipelineLink    = "PipelineLink"
	TypePipelineStepLog = "PipelineStepLog"
)

// CommandLogMutation represents an operation that mutates the CommandLog nodes in the graph.
type CommandLogMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	user_id                    *string
	command                    *string
	status                     *string
	final_status               *string
	plan_source                *string
	execution_mode             *string
	error_code                 *string
	verification_reason        *string
	autonomous_fallback_reason *string
	detail                     *string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*CommandLog, error)
	predicates                 []predicate.CommandLog
}

var _ ent.Mutation = (*CommandLogMutation)(nil)

// commandlogOption allows management of the mutation configuration using functional options.
type commandlogOption func(*CommandLogMutation)

// newCommandLogMutation creates new mutation for the CommandLog entity.
func newCommandLogMutation(c config, op Op, opts ...commandlogOption) *CommandLogMutation {
	m := &CommandLogMutation{
		config:        c,
		op:            op,
		typ:           TypeCommandLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommandLogID sets the ID field of the mutation.
func withCommandLogID(id int) commandlogOption {
	return func(m *CommandLogMutation) {
		var (
			err   error
			once  sync.Once
			value *CommandLog
		)
		m.oldValue = func(ctx context.Context) (*CommandLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CommandLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommandLog sets the old CommandLog of the mutation.
func withCommandLog(node *CommandLog) commandlogOption {
	return func(m *CommandLogMutation) {
		m.oldValue = func(context.Context) (*CommandLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommandLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommandLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommandLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommandLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CommandLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CommandLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CommandLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CommandLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetCommand sets the "command" field.
func (m *CommandLogMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *CommandLogMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *CommandLogMutation) ResetCommand() {
	m.command = nil
}

// SetStatus sets the "status" field.
func (m *CommandLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CommandLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CommandLogMutation) ResetStatus() {
	m.status = nil
}

// SetFinalStatus sets the "final_status" field.
func (m *CommandLogMutation) SetFinalStatus(s string) {
	m.final_status = &s
}

// FinalStatus returns the value of the "final_status" field in the mutation.
func (m *CommandLogMutation) FinalStatus() (r string, exists bool) {
	v := m.final_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalStatus returns the old "final_status" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldFinalStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalStatus: %w", err)
	}
	return oldValue.FinalStatus, nil
}

// ClearFinalStatus clears the value of the "final_status" field.
func (m *CommandLogMutation) ClearFinalStatus() {
	m.final_status = nil
	m.clearedFields[commandlog.FieldFinalStatus] = struct{}{}
}

// FinalStatusCleared returns if the "final_status" field was cleared in this mutation.
func (m *CommandLogMutation) FinalStatusCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldFinalStatus]
	return ok
}

// ResetFinalStatus resets all changes to the "final_status" field.
func (m *CommandLogMutation) ResetFinalStatus() {
	m.final_status = nil
	delete(m.clearedFields, commandlog.FieldFinalStatus)
}

// SetPlanSource sets the "plan_source" field.
func (m *CommandLogMutation) SetPlanSource(s string) {
	m.plan_source = &s
}

// PlanSource returns the value of the "plan_source" field in the mutation.
func (m *CommandLogMutation) PlanSource() (r string, exists bool) {
	v := m.plan_source
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSource returns the old "plan_source" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldPlanSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSource: %w", err)
	}
	return oldValue.PlanSource, nil
}

// ClearPlanSource clears the value of the "plan_source" field.
func (m *CommandLogMutation) ClearPlanSource() {
	m.plan_source = nil
	m.clearedFields[commandlog.FieldPlanSource] = struct{}{}
}

// PlanSourceCleared returns if the "plan_source" field was cleared in this mutation.
func (m *CommandLogMutation) PlanSourceCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldPlanSource]
	return ok
}

// ResetPlanSource resets all changes to the "plan_source" field.
func (m *CommandLogMutation) ResetPlanSource() {
	m.plan_source = nil
	delete(m.clearedFields, commandlog.FieldPlanSource)
}

// SetExecutionMode sets the "execution_mode" field.
func (m *CommandLogMutation) SetExecutionMode(s string) {
	m.execution_mode = &s
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *CommandLogMutation) ExecutionMode() (r string, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldExecutionMode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (m *CommandLogMutation) ClearExecutionMode() {
	m.execution_mode = nil
	m.clearedFields[commandlog.FieldExecutionMode] = struct{}{}
}

// ExecutionModeCleared returns if the "execution_mode" field was cleared in this mutation.
func (m *CommandLogMutation) ExecutionModeCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldExecutionMode]
	return ok
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *CommandLogMutation) ResetExecutionMode() {
	m.execution_mode = nil
	delete(m.clearedFields, commandlog.FieldExecutionMode)
}

// SetErrorCode sets the "error_code" field.
func (m *CommandLogMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *CommandLogMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *CommandLogMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[commandlog.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *CommandLogMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *CommandLogMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, commandlog.FieldErrorCode)
}

// SetVerificationReason sets the "verification_reason" field.
func (m *CommandLogMutation) SetVerificationReason(s string) {
	m.verification_reason = &s
}

// VerificationReason returns the value of the "verification_reason" field in the mutation.
func (m *CommandLogMutation) VerificationReason() (r string, exists bool) {
	v := m.verification_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationReason returns the old "verification_reason" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldVerificationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationReason: %w", err)
	}
	return oldValue.VerificationReason, nil
}

// ClearVerificationReason clears the value of the "verification_reason" field.
func (m *CommandLogMutation) ClearVerificationReason() {
	m.verification_reason = nil
	m.clearedFields[commandlog.FieldVerificationReason] = struct{}{}
}

// VerificationReasonCleared returns if the "verification_reason" field was cleared in this mutation.
func (m *CommandLogMutation) VerificationReasonCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldVerificationReason]
	return ok
}

// ResetVerificationReason resets all changes to the "verification_reason" field.
func (m *CommandLogMutation) ResetVerificationReason() {
	m.verification_reason = nil
	delete(m.clearedFields, commandlog.FieldVerificationReason)
}

// SetAutonomousFallbackReason sets the "autonomous_fallback_reason" field.
func (m *CommandLogMutation) SetAutonomousFallbackReason(s string) {
	m.autonomous_fallback_reason = &s
}

// AutonomousFallbackReason returns the value of the "autonomous_fallback_reason" field in the mutation.
func (m *CommandLogMutation) AutonomousFallbackReason() (r string, exists bool) {
	v := m.autonomous_fallback_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomousFallbackReason returns the old "autonomous_fallback_reason" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldAutonomousFallbackReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomousFallbackReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomousFallbackReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomousFallbackReason: %w", err)
	}
	return oldValue.AutonomousFallbackReason, nil
}

// ClearAutonomousFallbackReason clears the value of the "autonomous_fallback_reason" field.
func (m *CommandLogMutation) ClearAutonomousFallbackReason() {
	m.autonomous_fallback_reason = nil
	m.clearedFields[commandlog.FieldAutonomousFallbackReason] = struct{}{}
}

// AutonomousFallbackReasonCleared returns if the "autonomous_fallback_reason" field was cleared in this mutation.
func (m *CommandLogMutation) AutonomousFallbackReasonCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldAutonomousFallbackReason]
	return ok
}

// ResetAutonomousFallbackReason resets all changes to the "autonomous_fallback_reason" field.
func (m *CommandLogMutation) ResetAutonomousFallbackReason() {
	m.autonomous_fallback_reason = nil
	delete(m.clearedFields, commandlog.FieldAutonomousFallbackReason)
}

// SetDetail sets the "detail" field.
func (m *CommandLogMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *CommandLogMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *CommandLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[commandlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *CommandLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[commandlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *CommandLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, commandlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommandLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommandLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CommandLog entity.
// If the CommandLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommandLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommandLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CommandLogMutation builder.
func (m *CommandLogMutation) Where(ps ...predicate.CommandLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommandLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommandLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CommandLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommandLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommandLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CommandLog).
func (m *CommandLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommandLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, commandlog.FieldUserID)
	}
	if m.command != nil {
		fields = append(fields, commandlog.FieldCommand)
	}
	if m.status != nil {
		fields = append(fields, commandlog.FieldStatus)
	}
	if m.final_status != nil {
		fields = append(fields, commandlog.FieldFinalStatus)
	}
	if m.plan_source != nil {
		fields = append(fields, commandlog.FieldPlanSource)
	}
	if m.execution_mode != nil {
		fields = append(fields, commandlog.FieldExecutionMode)
	}
	if m.error_code != nil {
		fields = append(fields, commandlog.FieldErrorCode)
	}
	if m.verification_reason != nil {
		fields = append(fields, commandlog.FieldVerificationReason)
	}
	if m.autonomous_fallback_reason != nil {
		fields = append(fields, commandlog.FieldAutonomousFallbackReason)
	}
	if m.detail != nil {
		fields = append(fields, commandlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, commandlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommandLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case commandlog.FieldUserID:
		return m.UserID()
	case commandlog.FieldCommand:
		return m.Command()
	case commandlog.FieldStatus:
		return m.Status()
	case commandlog.FieldFinalStatus:
		return m.FinalStatus()
	case commandlog.FieldPlanSource:
		return m.PlanSource()
	case commandlog.FieldExecutionMode:
		return m.ExecutionMode()
	case commandlog.FieldErrorCode:
		return m.ErrorCode()
	case commandlog.FieldVerificationReason:
		return m.VerificationReason()
	case commandlog.FieldAutonomousFallbackReason:
		return m.AutonomousFallbackReason()
	case commandlog.FieldDetail:
		return m.Detail()
	case commandlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommandLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case commandlog.FieldUserID:
		return m.OldUserID(ctx)
	case commandlog.FieldCommand:
		return m.OldCommand(ctx)
	case commandlog.FieldStatus:
		return m.OldStatus(ctx)
	case commandlog.FieldFinalStatus:
		return m.OldFinalStatus(ctx)
	case commandlog.FieldPlanSource:
		return m.OldPlanSource(ctx)
	case commandlog.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case commandlog.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case commandlog.FieldVerificationReason:
		return m.OldVerificationReason(ctx)
	case commandlog.FieldAutonomousFallbackReason:
		return m.OldAutonomousFallbackReason(ctx)
	case commandlog.FieldDetail:
		return m.OldDetail(ctx)
	case commandlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CommandLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case commandlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case commandlog.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case commandlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case commandlog.FieldFinalStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalStatus(v)
		return nil
	case commandlog.FieldPlanSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSource(v)
		return nil
	case commandlog.FieldExecutionMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case commandlog.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case commandlog.FieldVerificationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationReason(v)
		return nil
	case commandlog.FieldAutonomousFallbackReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomousFallbackReason(v)
		return nil
	case commandlog.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case commandlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CommandLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommandLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommandLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommandLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CommandLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommandLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(commandlog.FieldFinalStatus) {
		fields = append(fields, commandlog.FieldFinalStatus)
	}
	if m.FieldCleared(commandlog.FieldPlanSource) {
		fields = append(fields, commandlog.FieldPlanSource)
	}
	if m.FieldCleared(commandlog.FieldExecutionMode) {
		fields = append(fields, commandlog.FieldExecutionMode)
	}
	if m.FieldCleared(commandlog.FieldErrorCode) {
		fields = append(fields, commandlog.FieldErrorCode)
	}
	if m.FieldCleared(commandlog.FieldVerificationReason) {
		fields = append(fields, commandlog.FieldVerificationReason)
	}
	if m.FieldCleared(commandlog.FieldAutonomousFallbackReason) {
		fields = append(fields, commandlog.FieldAutonomousFallbackReason)
	}
	if m.FieldCleared(commandlog.FieldDetail) {
		fields = append(fields, commandlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommandLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommandLogMutation) ClearField(name string) error {
	switch name {
	case commandlog.FieldFinalStatus:
		m.ClearFinalStatus()
		return nil
	case commandlog.FieldPlanSource:
		m.ClearPlanSource()
		return nil
	case commandlog.FieldExecutionMode:
		m.ClearExecutionMode()
		return nil
	case commandlog.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case commandlog.FieldVerificationReason:
		m.ClearVerificationReason()
		return nil
	case commandlog.FieldAutonomousFallbackReason:
		m.ClearAutonomousFallbackReason()
		return nil
	case commandlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown CommandLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommandLogMutation) ResetField(name string) error {
	switch name {
	case commandlog.FieldUserID:
		m.ResetUserID()
		return nil
	case commandlog.FieldCommand:
		m.ResetCommand()
		return nil
	case commandlog.FieldStatus:
		m.ResetStatus()
		return nil
	case commandlog.FieldFinalStatus:
		m.ResetFinalStatus()
		return nil
	case commandlog.FieldPlanSource:
		m.ResetPlanSource()
		return nil
	case commandlog.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case commandlog.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case commandlog.FieldVerificationReason:
		m.ResetVerificationReason()
		return nil
	case commandlog.FieldAutonomousFallbackReason:
		m.ResetAutonomousFallbackReason()
		return nil
	case commandlog.FieldDetail:
		m.ResetDetail()
		return nil
	case commandlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CommandLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommandLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommandLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommandLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommandLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommandLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommandLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommandLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CommandLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommandLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CommandLog edge %s", name)
}

// OAuthTokenMutation represents an operation that mutates the OAuthToken nodes in the graph.
type OAuthTokenMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	user_id                 *string
	provider                *string
	access_token_encrypted  *string
	refresh_token_encrypted *string
	scopes                  *[]string
	appendscopes            []string
	workspace_id            *string
	workspace_name          *string
	expires_at              *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*OAuthToken, error)
	predicates              []predicate.OAuthToken
}

var _ ent.Mutation = (*OAuthTokenMutation)(nil)

// oauthtokenOption allows management of the mutation configuration using functional options.
type oauthtokenOption func(*OAuthTokenMutation)

// newOAuthTokenMutation creates new mutation for the OAuthToken entity.
func newOAuthTokenMutation(c config, op Op, opts ...oauthtokenOption) *OAuthTokenMutation {
	m := &OAuthTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeOAuthToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOAuthTokenID sets the ID field of the mutation.
func withOAuthTokenID(id int) oauthtokenOption {
	return func(m *OAuthTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *OAuthToken
		)
		m.oldValue = func(ctx context.Context) (*OAuthToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OAuthToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOAuthToken sets the old OAuthToken of the mutation.
func withOAuthToken(node *OAuthToken) oauthtokenOption {
	return func(m *OAuthTokenMutation) {
		m.oldValue = func(context.Context) (*OAuthToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OAuthTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OAuthTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OAuthTokenMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OAuthTokenMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OAuthToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *OAuthTokenMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OAuthTokenMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OAuthTokenMutation) ResetUserID() {
	m.user_id = nil
}

// SetProvider sets the "provider" field.
func (m *OAuthTokenMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OAuthTokenMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OAuthTokenMutation) ResetProvider() {
	m.provider = nil
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (m *OAuthTokenMutation) SetAccessTokenEncrypted(s string) {
	m.access_token_encrypted = &s
}

// AccessTokenEncrypted returns the value of the "access_token_encrypted" field in the mutation.
func (m *OAuthTokenMutation) AccessTokenEncrypted() (r string, exists bool) {
	v := m.access_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenEncrypted returns the old "access_token_encrypted" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldAccessTokenEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenEncrypted: %w", err)
	}
	return oldValue.AccessTokenEncrypted, nil
}

// ResetAccessTokenEncrypted resets all changes to the "access_token_encrypted" field.
func (m *OAuthTokenMutation) ResetAccessTokenEncrypted() {
	m.access_token_encrypted = nil
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) SetRefreshTokenEncrypted(s string) {
	m.refresh_token_encrypted = &s
}

// RefreshTokenEncrypted returns the value of the "refresh_token_encrypted" field in the mutation.
func (m *OAuthTokenMutation) RefreshTokenEncrypted() (r string, exists bool) {
	v := m.refresh_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenEncrypted returns the old "refresh_token_encrypted" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldRefreshTokenEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenEncrypted: %w", err)
	}
	return oldValue.RefreshTokenEncrypted, nil
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) ClearRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	m.clearedFields[oauthtoken.FieldRefreshTokenEncrypted] = struct{}{}
}

// RefreshTokenEncryptedCleared returns if the "refresh_token_encrypted" field was cleared in this mutation.
func (m *OAuthTokenMutation) RefreshTokenEncryptedCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldRefreshTokenEncrypted]
	return ok
}

// ResetRefreshTokenEncrypted resets all changes to the "refresh_token_encrypted" field.
func (m *OAuthTokenMutation) ResetRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	delete(m.clearedFields, oauthtoken.FieldRefreshTokenEncrypted)
}

// SetScopes sets the "scopes" field.
func (m *OAuthTokenMutation) SetScopes(s []string) {
	m.scopes = &s
	m.appendscopes = nil
}

// Scopes returns the value of the "scopes" field in the mutation.
func (m *OAuthTokenMutation) Scopes() (r []string, exists bool) {
	v := m.scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldScopes returns the old "scopes" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldScopes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopes: %w", err)
	}
	return oldValue.Scopes, nil
}

// AppendScopes adds s to the "scopes" field.
func (m *OAuthTokenMutation) AppendScopes(s []string) {
	m.appendscopes = append(m.appendscopes, s...)
}

// AppendedScopes returns the list of values that were appended to the "scopes" field in this mutation.
func (m *OAuthTokenMutation) AppendedScopes() ([]string, bool) {
	if len(m.appendscopes) == 0 {
		return nil, false
	}
	return m.appendscopes, true
}

// ClearScopes clears the value of the "scopes" field.
func (m *OAuthTokenMutation) ClearScopes() {
	m.scopes = nil
	m.appendscopes = nil
	m.clearedFields[oauthtoken.FieldScopes] = struct{}{}
}

// ScopesCleared returns if the "scopes" field was cleared in this mutation.
func (m *OAuthTokenMutation) ScopesCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldScopes]
	return ok
}

// ResetScopes resets all changes to the "scopes" field.
func (m *OAuthTokenMutation) ResetScopes() {
	m.scopes = nil
	m.appendscopes = nil
	delete(m.clearedFields, oauthtoken.FieldScopes)
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *OAuthTokenMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *OAuthTokenMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldWorkspaceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (m *OAuthTokenMutation) ClearWorkspaceID() {
	m.workspace_id = nil
	m.clearedFields[oauthtoken.FieldWorkspaceID] = struct{}{}
}

// WorkspaceIDCleared returns if the "workspace_id" field was cleared in this mutation.
func (m *OAuthTokenMutation) WorkspaceIDCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldWorkspaceID]
	return ok
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *OAuthTokenMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	delete(m.clearedFields, oauthtoken.FieldWorkspaceID)
}

// SetWorkspaceName sets the "workspace_name" field.
func (m *OAuthTokenMutation) SetWorkspaceName(s string) {
	m.workspace_name = &s
}

// WorkspaceName returns the value of the "workspace_name" field in the mutation.
func (m *OAuthTokenMutation) WorkspaceName() (r string, exists bool) {
	v := m.workspace_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceName returns the old "workspace_name" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldWorkspaceName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceName: %w", err)
	}
	return oldValue.WorkspaceName, nil
}

// ClearWorkspaceName clears the value of the "workspace_name" field.
func (m *OAuthTokenMutation) ClearWorkspaceName() {
	m.workspace_name = nil
	m.clearedFields[oauthtoken.FieldWorkspaceName] = struct{}{}
}

// WorkspaceNameCleared returns if the "workspace_name" field was cleared in this mutation.
func (m *OAuthTokenMutation) WorkspaceNameCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldWorkspaceName]
	return ok
}

// ResetWorkspaceName resets all changes to the "workspace_name" field.
func (m *OAuthTokenMutation) ResetWorkspaceName() {
	m.workspace_name = nil
	delete(m.clearedFields, oauthtoken.FieldWorkspaceName)
}

// SetExpiresAt sets the "expires_at" field.
func (m *OAuthTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *OAuthTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *OAuthTokenMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[oauthtoken.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *OAuthTokenMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[oauthtoken.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *OAuthTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, oauthtoken.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OAuthTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OAuthTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OAuthTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OAuthTokenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OAuthTokenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OAuthToken entity.
// If the OAuthToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OAuthTokenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OAuthTokenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OAuthTokenMutation builder.
func (m *OAuthTokenMutation) Where(ps ...predicate.OAuthToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OAuthTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OAuthTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OAuthToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OAuthTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OAuthTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OAuthToken).
func (m *OAuthTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OAuthTokenMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, oauthtoken.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, oauthtoken.FieldProvider)
	}
	if m.access_token_encrypted != nil {
		fields = append(fields, oauthtoken.FieldAccessTokenEncrypted)
	}
	if m.refresh_token_encrypted != nil {
		fields = append(fields, oauthtoken.FieldRefreshTokenEncrypted)
	}
	if m.scopes != nil {
		fields = append(fields, oauthtoken.FieldScopes)
	}
	if m.workspace_id != nil {
		fields = append(fields, oauthtoken.FieldWorkspaceID)
	}
	if m.workspace_name != nil {
		fields = append(fields, oauthtoken.FieldWorkspaceName)
	}
	if m.expires_at != nil {
		fields = append(fields, oauthtoken.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, oauthtoken.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, oauthtoken.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OAuthTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oauthtoken.FieldUserID:
		return m.UserID()
	case oauthtoken.FieldProvider:
		return m.Provider()
	case oauthtoken.FieldAccessTokenEncrypted:
		return m.AccessTokenEncrypted()
	case oauthtoken.FieldRefreshTokenEncrypted:
		return m.RefreshTokenEncrypted()
	case oauthtoken.FieldScopes:
		return m.Scopes()
	case oauthtoken.FieldWorkspaceID:
		return m.WorkspaceID()
	case oauthtoken.FieldWorkspaceName:
		return m.WorkspaceName()
	case oauthtoken.FieldExpiresAt:
		return m.ExpiresAt()
	case oauthtoken.FieldCreatedAt:
		return m.CreatedAt()
	case oauthtoken.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OAuthTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oauthtoken.FieldUserID:
		return m.OldUserID(ctx)
	case oauthtoken.FieldProvider:
		return m.OldProvider(ctx)
	case oauthtoken.FieldAccessTokenEncrypted:
		return m.OldAccessTokenEncrypted(ctx)
	case oauthtoken.FieldRefreshTokenEncrypted:
		return m.OldRefreshTokenEncrypted(ctx)
	case oauthtoken.FieldScopes:
		return m.OldScopes(ctx)
	case oauthtoken.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case oauthtoken.FieldWorkspaceName:
		return m.OldWorkspaceName(ctx)
	case oauthtoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case oauthtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case oauthtoken.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OAuthToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oauthtoken.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case oauthtoken.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case oauthtoken.FieldAccessTokenEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenEncrypted(v)
		return nil
	case oauthtoken.FieldRefreshTokenEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenEncrypted(v)
		return nil
	case oauthtoken.FieldScopes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopes(v)
		return nil
	case oauthtoken.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case oauthtoken.FieldWorkspaceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceName(v)
		return nil
	case oauthtoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case oauthtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case oauthtoken.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OAuthToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OAuthTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OAuthTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OAuthTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OAuthToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OAuthTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(oauthtoken.FieldRefreshTokenEncrypted) {
		fields = append(fields, oauthtoken.FieldRefreshTokenEncrypted)
	}
	if m.FieldCleared(oauthtoken.FieldScopes) {
		fields = append(fields, oauthtoken.FieldScopes)
	}
	if m.FieldCleared(oauthtoken.FieldWorkspaceID) {
		fields = append(fields, oauthtoken.FieldWorkspaceID)
	}
	if m.FieldCleared(oauthtoken.FieldWorkspaceName) {
		fields = append(fields, oauthtoken.FieldWorkspaceName)
	}
	if m.FieldCleared(oauthtoken.FieldExpiresAt) {
		fields = append(fields, oauthtoken.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OAuthTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OAuthTokenMutation) ClearField(name string) error {
	switch name {
	case oauthtoken.FieldRefreshTokenEncrypted:
		m.ClearRefreshTokenEncrypted()
		return nil
	case oauthtoken.FieldScopes:
		m.ClearScopes()
		return nil
	case oauthtoken.FieldWorkspaceID:
		m.ClearWorkspaceID()
		return nil
	case oauthtoken.FieldWorkspaceName:
		m.ClearWorkspaceName()
		return nil
	case oauthtoken.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown OAuthToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OAuthTokenMutation) ResetField(name string) error {
	switch name {
	case oauthtoken.FieldUserID:
		m.ResetUserID()
		return nil
	case oauthtoken.FieldProvider:
		m.ResetProvider()
		return nil
	case oauthtoken.FieldAccessTokenEncrypted:
		m.ResetAccessTokenEncrypted()
		return nil
	case oauthtoken.FieldRefreshTokenEncrypted:
		m.ResetRefreshTokenEncrypted()
		return nil
	case oauthtoken.FieldScopes:
		m.ResetScopes()
		return nil
	case oauthtoken.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case oauthtoken.FieldWorkspaceName:
		m.ResetWorkspaceName()
		return nil
	case oauthtoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case oauthtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case oauthtoken.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OAuthToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OAuthTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OAuthTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OAuthTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OAuthTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OAuthTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OAuthTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OAuthTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OAuthToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OAuthTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OAuthToken edge %s", name)
}

// PendingActionMutation represents an operation that mutates the PendingAction nodes in the graph.
type PendingActionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	intent              *string
	action              *string
	task_id             *string
	plan                *map[string]interface{}
	plan_source         *string
	collected_slots     *map[string]interface{}
	missing_slots       *[]string
	appendmissing_slots []string
	created_at          *time.Time
	expires_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PendingAction, error)
	predicates          []predicate.PendingAction
}

var _ ent.Mutation = (*PendingActionMutation)(nil)

// pendingactionOption allows management of the mutation configuration using functional options.
type pendingactionOption func(*PendingActionMutation)

// newPendingActionMutation creates new mutation for the PendingAction entity.
func newPendingActionMutation(c config, op Op, opts ...pendingactionOption) *PendingActionMutation {
	m := &PendingActionMutation{
		config:        c,
		op:            op,
		typ:           TypePendingAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingActionID sets the ID field of the mutation.
func withPendingActionID(id string) pendingactionOption {
	return func(m *PendingActionMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingAction
		)
		m.oldValue = func(ctx context.Context) (*PendingAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingAction sets the old PendingAction of the mutation.
func withPendingAction(node *PendingAction) pendingactionOption {
	return func(m *PendingActionMutation) {
		m.oldValue = func(context.Context) (*PendingAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingAction entities.
func (m *PendingActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntent sets the "intent" field.
func (m *PendingActionMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *PendingActionMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ResetIntent resets all changes to the "intent" field.
func (m *PendingActionMutation) ResetIntent() {
	m.intent = nil
}

// SetAction sets the "action" field.
func (m *PendingActionMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *PendingActionMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *PendingActionMutation) ResetAction() {
	m.action = nil
}

// SetTaskID sets the "task_id" field.
func (m *PendingActionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PendingActionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *PendingActionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[pendingaction.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *PendingActionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PendingActionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, pendingaction.FieldTaskID)
}

// SetPlan sets the "plan" field.
func (m *PendingActionMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *PendingActionMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *PendingActionMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[pendingaction.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *PendingActionMutation) PlanCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *PendingActionMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, pendingaction.FieldPlan)
}

// SetPlanSource sets the "plan_source" field.
func (m *PendingActionMutation) SetPlanSource(s string) {
	m.plan_source = &s
}

// PlanSource returns the value of the "plan_source" field in the mutation.
func (m *PendingActionMutation) PlanSource() (r string, exists bool) {
	v := m.plan_source
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSource returns the old "plan_source" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldPlanSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSource: %w", err)
	}
	return oldValue.PlanSource, nil
}

// ClearPlanSource clears the value of the "plan_source" field.
func (m *PendingActionMutation) ClearPlanSource() {
	m.plan_source = nil
	m.clearedFields[pendingaction.FieldPlanSource] = struct{}{}
}

// PlanSourceCleared returns if the "plan_source" field was cleared in this mutation.
func (m *PendingActionMutation) PlanSourceCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldPlanSource]
	return ok
}

// ResetPlanSource resets all changes to the "plan_source" field.
func (m *PendingActionMutation) ResetPlanSource() {
	m.plan_source = nil
	delete(m.clearedFields, pendingaction.FieldPlanSource)
}

// SetCollectedSlots sets the "collected_slots" field.
func (m *PendingActionMutation) SetCollectedSlots(value map[string]interface{}) {
	m.collected_slots = &value
}

// CollectedSlots returns the value of the "collected_slots" field in the mutation.
func (m *PendingActionMutation) CollectedSlots() (r map[string]interface{}, exists bool) {
	v := m.collected_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedSlots returns the old "collected_slots" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldCollectedSlots(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedSlots: %w", err)
	}
	return oldValue.CollectedSlots, nil
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (m *PendingActionMutation) ClearCollectedSlots() {
	m.collected_slots = nil
	m.clearedFields[pendingaction.FieldCollectedSlots] = struct{}{}
}

// CollectedSlotsCleared returns if the "collected_slots" field was cleared in this mutation.
func (m *PendingActionMutation) CollectedSlotsCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldCollectedSlots]
	return ok
}

// ResetCollectedSlots resets all changes to the "collected_slots" field.
func (m *PendingActionMutation) ResetCollectedSlots() {
	m.collected_slots = nil
	delete(m.clearedFields, pendingaction.FieldCollectedSlots)
}

// SetMissingSlots sets the "missing_slots" field.
func (m *PendingActionMutation) SetMissingSlots(s []string) {
	m.missing_slots = &s
	m.appendmissing_slots = nil
}

// MissingSlots returns the value of the "missing_slots" field in the mutation.
func (m *PendingActionMutation) MissingSlots() (r []string, exists bool) {
	v := m.missing_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingSlots returns the old "missing_slots" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldMissingSlots(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingSlots: %w", err)
	}
	return oldValue.MissingSlots, nil
}

// AppendMissingSlots adds s to the "missing_slots" field.
func (m *PendingActionMutation) AppendMissingSlots(s []string) {
	m.appendmissing_slots = append(m.appendmissing_slots, s...)
}

// AppendedMissingSlots returns the list of values that were appended to the "missing_slots" field in this mutation.
func (m *PendingActionMutation) AppendedMissingSlots() ([]string, bool) {
	if len(m.appendmissing_slots) == 0 {
		return nil, false
	}
	return m.appendmissing_slots, true
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (m *PendingActionMutation) ClearMissingSlots() {
	m.missing_slots = nil
	m.appendmissing_slots = nil
	m.clearedFields[pendingaction.FieldMissingSlots] = struct{}{}
}

// MissingSlotsCleared returns if the "missing_slots" field was cleared in this mutation.
func (m *PendingActionMutation) MissingSlotsCleared() bool {
	_, ok := m.clearedFields[pendingaction.FieldMissingSlots]
	return ok
}

// ResetMissingSlots resets all changes to the "missing_slots" field.
func (m *PendingActionMutation) ResetMissingSlots() {
	m.missing_slots = nil
	m.appendmissing_slots = nil
	delete(m.clearedFields, pendingaction.FieldMissingSlots)
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PendingActionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PendingActionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PendingAction entity.
// If the PendingAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingActionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PendingActionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the PendingActionMutation builder.
func (m *PendingActionMutation) Where(ps ...predicate.PendingAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingAction).
func (m *PendingActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingActionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.intent != nil {
		fields = append(fields, pendingaction.FieldIntent)
	}
	if m.action != nil {
		fields = append(fields, pendingaction.FieldAction)
	}
	if m.task_id != nil {
		fields = append(fields, pendingaction.FieldTaskID)
	}
	if m.plan != nil {
		fields = append(fields, pendingaction.FieldPlan)
	}
	if m.plan_source != nil {
		fields = append(fields, pendingaction.FieldPlanSource)
	}
	if m.collected_slots != nil {
		fields = append(fields, pendingaction.FieldCollectedSlots)
	}
	if m.missing_slots != nil {
		fields = append(fields, pendingaction.FieldMissingSlots)
	}
	if m.created_at != nil {
		fields = append(fields, pendingaction.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, pendingaction.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingaction.FieldIntent:
		return m.Intent()
	case pendingaction.FieldAction:
		return m.Action()
	case pendingaction.FieldTaskID:
		return m.TaskID()
	case pendingaction.FieldPlan:
		return m.Plan()
	case pendingaction.FieldPlanSource:
		return m.PlanSource()
	case pendingaction.FieldCollectedSlots:
		return m.CollectedSlots()
	case pendingaction.FieldMissingSlots:
		return m.MissingSlots()
	case pendingaction.FieldCreatedAt:
		return m.CreatedAt()
	case pendingaction.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingaction.FieldIntent:
		return m.OldIntent(ctx)
	case pendingaction.FieldAction:
		return m.OldAction(ctx)
	case pendingaction.FieldTaskID:
		return m.OldTaskID(ctx)
	case pendingaction.FieldPlan:
		return m.OldPlan(ctx)
	case pendingaction.FieldPlanSource:
		return m.OldPlanSource(ctx)
	case pendingaction.FieldCollectedSlots:
		return m.OldCollectedSlots(ctx)
	case pendingaction.FieldMissingSlots:
		return m.OldMissingSlots(ctx)
	case pendingaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendingaction.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingaction.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case pendingaction.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case pendingaction.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case pendingaction.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case pendingaction.FieldPlanSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSource(v)
		return nil
	case pendingaction.FieldCollectedSlots:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedSlots(v)
		return nil
	case pendingaction.FieldMissingSlots:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingSlots(v)
		return nil
	case pendingaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendingaction.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingaction.FieldTaskID) {
		fields = append(fields, pendingaction.FieldTaskID)
	}
	if m.FieldCleared(pendingaction.FieldPlan) {
		fields = append(fields, pendingaction.FieldPlan)
	}
	if m.FieldCleared(pendingaction.FieldPlanSource) {
		fields = append(fields, pendingaction.FieldPlanSource)
	}
	if m.FieldCleared(pendingaction.FieldCollectedSlots) {
		fields = append(fields, pendingaction.FieldCollectedSlots)
	}
	if m.FieldCleared(pendingaction.FieldMissingSlots) {
		fields = append(fields, pendingaction.FieldMissingSlots)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingActionMutation) ClearField(name string) error {
	switch name {
	case pendingaction.FieldTaskID:
		m.ClearTaskID()
		return nil
	case pendingaction.FieldPlan:
		m.ClearPlan()
		return nil
	case pendingaction.FieldPlanSource:
		m.ClearPlanSource()
		return nil
	case pendingaction.FieldCollectedSlots:
		m.ClearCollectedSlots()
		return nil
	case pendingaction.FieldMissingSlots:
		m.ClearMissingSlots()
		return nil
	}
	return fmt.Errorf("unknown PendingAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingActionMutation) ResetField(name string) error {
	switch name {
	case pendingaction.FieldIntent:
		m.ResetIntent()
		return nil
	case pendingaction.FieldAction:
		m.ResetAction()
		return nil
	case pendingaction.FieldTaskID:
		m.ResetTaskID()
		return nil
	case pendingaction.FieldPlan:
		m.ResetPlan()
		return nil
	case pendingaction.FieldPlanSource:
		m.ResetPlanSource()
		return nil
	case pendingaction.FieldCollectedSlots:
		m.ResetCollectedSlots()
		return nil
	case pendingaction.FieldMissingSlots:
		m.ResetMissingSlots()
		return nil
	case pendingaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendingaction.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown PendingAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingAction edge %s", name)
}

// PipelineLinkMutation represents an operation that mutates the PipelineLink nodes in the graph.
type PipelineLinkMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	event_id            *string
	notion_page_id      *string
	linear_issue_id     *string
	title               *string
	status              *pipelinelink.Status
	error_code          *string
	compensation_status *pipelinelink.CompensationStatus
	run_id              *string
	pipeline_id         *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PipelineLink, error)
	predicates          []predicate.PipelineLink
}

var _ ent.Mutation = (*PipelineLinkMutation)(nil)

// pipelinelinkOption allows management of the mutation configuration using functional options.
type pipelinelinkOption func(*PipelineLinkMutation)

// newPipelineLinkMutation creates new mutation for the PipelineLink entity.
func newPipelineLinkMutation(c config, op Op, opts ...pipelinelinkOption) *PipelineLinkMutation {
	m := &PipelineLinkMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineLinkID sets the ID field of the mutation.
func withPipelineLinkID(id int) pipelinelinkOption {
	return func(m *PipelineLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineLink
		)
		m.oldValue = func(ctx context.Context) (*PipelineLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineLink sets the old PipelineLink of the mutation.
func withPipelineLink(node *PipelineLink) pipelinelinkOption {
	return func(m *PipelineLinkMutation) {
		m.oldValue = func(context.Context) (*PipelineLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PipelineLinkMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PipelineLinkMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PipelineLinkMutation) ResetUserID() {
	m.user_id = nil
}

// SetEventID sets the "event_id" field.
func (m *PipelineLinkMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *PipelineLinkMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *PipelineLinkMutation) ResetEventID() {
	m.event_id = nil
}

// SetNotionPageID sets the "notion_page_id" field.
func (m *PipelineLinkMutation) SetNotionPageID(s string) {
	m.notion_page_id = &s
}

// NotionPageID returns the value of the "notion_page_id" field in the mutation.
func (m *PipelineLinkMutation) NotionPageID() (r string, exists bool) {
	v := m.notion_page_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNotionPageID returns the old "notion_page_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldNotionPageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotionPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotionPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotionPageID: %w", err)
	}
	return oldValue.NotionPageID, nil
}

// ClearNotionPageID clears the value of the "notion_page_id" field.
func (m *PipelineLinkMutation) ClearNotionPageID() {
	m.notion_page_id = nil
	m.clearedFields[pipelinelink.FieldNotionPageID] = struct{}{}
}

// NotionPageIDCleared returns if the "notion_page_id" field was cleared in this mutation.
func (m *PipelineLinkMutation) NotionPageIDCleared() bool {
	_, ok := m.clearedFields[pipelinelink.FieldNotionPageID]
	return ok
}

// ResetNotionPageID resets all changes to the "notion_page_id" field.
func (m *PipelineLinkMutation) ResetNotionPageID() {
	m.notion_page_id = nil
	delete(m.clearedFields, pipelinelink.FieldNotionPageID)
}

// SetLinearIssueID sets the "linear_issue_id" field.
func (m *PipelineLinkMutation) SetLinearIssueID(s string) {
	m.linear_issue_id = &s
}

// LinearIssueID returns the value of the "linear_issue_id" field in the mutation.
func (m *PipelineLinkMutation) LinearIssueID() (r string, exists bool) {
	v := m.linear_issue_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinearIssueID returns the old "linear_issue_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldLinearIssueID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinearIssueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinearIssueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinearIssueID: %w", err)
	}
	return oldValue.LinearIssueID, nil
}

// ClearLinearIssueID clears the value of the "linear_issue_id" field.
func (m *PipelineLinkMutation) ClearLinearIssueID() {
	m.linear_issue_id = nil
	m.clearedFields[pipelinelink.FieldLinearIssueID] = struct{}{}
}

// LinearIssueIDCleared returns if the "linear_issue_id" field was cleared in this mutation.
func (m *PipelineLinkMutation) LinearIssueIDCleared() bool {
	_, ok := m.clearedFields[pipelinelink.FieldLinearIssueID]
	return ok
}

// ResetLinearIssueID resets all changes to the "linear_issue_id" field.
func (m *PipelineLinkMutation) ResetLinearIssueID() {
	m.linear_issue_id = nil
	delete(m.clearedFields, pipelinelink.FieldLinearIssueID)
}

// SetTitle sets the "title" field.
func (m *PipelineLinkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PipelineLinkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *PipelineLinkMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[pipelinelink.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *PipelineLinkMutation) TitleCleared() bool {
	_, ok := m.clearedFields[pipelinelink.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *PipelineLinkMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, pipelinelink.FieldTitle)
}

// SetStatus sets the "status" field.
func (m *PipelineLinkMutation) SetStatus(pi pipelinelink.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineLinkMutation) Status() (r pipelinelink.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldStatus(ctx context.Context) (v pipelinelink.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineLinkMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *PipelineLinkMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *PipelineLinkMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *PipelineLinkMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[pipelinelink.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *PipelineLinkMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[pipelinelink.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *PipelineLinkMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, pipelinelink.FieldErrorCode)
}

// SetCompensationStatus sets the "compensation_status" field.
func (m *PipelineLinkMutation) SetCompensationStatus(ps pipelinelink.CompensationStatus) {
	m.compensation_status = &ps
}

// CompensationStatus returns the value of the "compensation_status" field in the mutation.
func (m *PipelineLinkMutation) CompensationStatus() (r pipelinelink.CompensationStatus, exists bool) {
	v := m.compensation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCompensationStatus returns the old "compensation_status" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldCompensationStatus(ctx context.Context) (v pipelinelink.CompensationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompensationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompensationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompensationStatus: %w", err)
	}
	return oldValue.CompensationStatus, nil
}

// ResetCompensationStatus resets all changes to the "compensation_status" field.
func (m *PipelineLinkMutation) ResetCompensationStatus() {
	m.compensation_status = nil
}

// SetRunID sets the "run_id" field.
func (m *PipelineLinkMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PipelineLinkMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PipelineLinkMutation) ResetRunID() {
	m.run_id = nil
}

// SetPipelineID sets the "pipeline_id" field.
func (m *PipelineLinkMutation) SetPipelineID(s string) {
	m.pipeline_id = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *PipelineLinkMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldPipelineID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (m *PipelineLinkMutation) ClearPipelineID() {
	m.pipeline_id = nil
	m.clearedFields[pipelinelink.FieldPipelineID] = struct{}{}
}

// PipelineIDCleared returns if the "pipeline_id" field was cleared in this mutation.
func (m *PipelineLinkMutation) PipelineIDCleared() bool {
	_, ok := m.clearedFields[pipelinelink.FieldPipelineID]
	return ok
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *PipelineLinkMutation) ResetPipelineID() {
	m.pipeline_id = nil
	delete(m.clearedFields, pipelinelink.FieldPipelineID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineLink entity.
// If the PipelineLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineLinkMutation builder.
func (m *PipelineLinkMutation) Where(ps ...predicate.PipelineLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineLink).
func (m *PipelineLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineLinkMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, pipelinelink.FieldUserID)
	}
	if m.event_id != nil {
		fields = append(fields, pipelinelink.FieldEventID)
	}
	if m.notion_page_id != nil {
		fields = append(fields, pipelinelink.FieldNotionPageID)
	}
	if m.linear_issue_id != nil {
		fields = append(fields, pipelinelink.FieldLinearIssueID)
	}
	if m.title != nil {
		fields = append(fields, pipelinelink.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, pipelinelink.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, pipelinelink.FieldErrorCode)
	}
	if m.compensation_status != nil {
		fields = append(fields, pipelinelink.FieldCompensationStatus)
	}
	if m.run_id != nil {
		fields = append(fields, pipelinelink.FieldRunID)
	}
	if m.pipeline_id != nil {
		fields = append(fields, pipelinelink.FieldPipelineID)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinelink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinelink.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinelink.FieldUserID:
		return m.UserID()
	case pipelinelink.FieldEventID:
		return m.EventID()
	case pipelinelink.FieldNotionPageID:
		return m.NotionPageID()
	case pipelinelink.FieldLinearIssueID:
		return m.LinearIssueID()
	case pipelinelink.FieldTitle:
		return m.Title()
	case pipelinelink.FieldStatus:
		return m.Status()
	case pipelinelink.FieldErrorCode:
		return m.ErrorCode()
	case pipelinelink.FieldCompensationStatus:
		return m.CompensationStatus()
	case pipelinelink.FieldRunID:
		return m.RunID()
	case pipelinelink.FieldPipelineID:
		return m.PipelineID()
	case pipelinelink.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinelink.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinelink.FieldUserID:
		return m.OldUserID(ctx)
	case pipelinelink.FieldEventID:
		return m.OldEventID(ctx)
	case pipelinelink.FieldNotionPageID:
		return m.OldNotionPageID(ctx)
	case pipelinelink.FieldLinearIssueID:
		return m.OldLinearIssueID(ctx)
	case pipelinelink.FieldTitle:
		return m.OldTitle(ctx)
	case pipelinelink.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinelink.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case pipelinelink.FieldCompensationStatus:
		return m.OldCompensationStatus(ctx)
	case pipelinelink.FieldRunID:
		return m.OldRunID(ctx)
	case pipelinelink.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case pipelinelink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinelink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinelink.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pipelinelink.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case pipelinelink.FieldNotionPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotionPageID(v)
		return nil
	case pipelinelink.FieldLinearIssueID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinearIssueID(v)
		return nil
	case pipelinelink.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case pipelinelink.FieldStatus:
		v, ok := value.(pipelinelink.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinelink.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case pipelinelink.FieldCompensationStatus:
		v, ok := value.(pipelinelink.CompensationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompensationStatus(v)
		return nil
	case pipelinelink.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case pipelinelink.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case pipelinelink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinelink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinelink.FieldNotionPageID) {
		fields = append(fields, pipelinelink.FieldNotionPageID)
	}
	if m.FieldCleared(pipelinelink.FieldLinearIssueID) {
		fields = append(fields, pipelinelink.FieldLinearIssueID)
	}
	if m.FieldCleared(pipelinelink.FieldTitle) {
		fields = append(fields, pipelinelink.FieldTitle)
	}
	if m.FieldCleared(pipelinelink.FieldErrorCode) {
		fields = append(fields, pipelinelink.FieldErrorCode)
	}
	if m.FieldCleared(pipelinelink.FieldPipelineID) {
		fields = append(fields, pipelinelink.FieldPipelineID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineLinkMutation) ClearField(name string) error {
	switch name {
	case pipelinelink.FieldNotionPageID:
		m.ClearNotionPageID()
		return nil
	case pipelinelink.FieldLinearIssueID:
		m.ClearLinearIssueID()
		return nil
	case pipelinelink.FieldTitle:
		m.ClearTitle()
		return nil
	case pipelinelink.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case pipelinelink.FieldPipelineID:
		m.ClearPipelineID()
		return nil
	}
	return fmt.Errorf("unknown PipelineLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineLinkMutation) ResetField(name string) error {
	switch name {
	case pipelinelink.FieldUserID:
		m.ResetUserID()
		return nil
	case pipelinelink.FieldEventID:
		m.ResetEventID()
		return nil
	case pipelinelink.FieldNotionPageID:
		m.ResetNotionPageID()
		return nil
	case pipelinelink.FieldLinearIssueID:
		m.ResetLinearIssueID()
		return nil
	case pipelinelink.FieldTitle:
		m.ResetTitle()
		return nil
	case pipelinelink.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinelink.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case pipelinelink.FieldCompensationStatus:
		m.ResetCompensationStatus()
		return nil
	case pipelinelink.FieldRunID:
		m.ResetRunID()
		return nil
	case pipelinelink.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case pipelinelink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinelink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineLink edge %s", name)
}

// PipelineStepLogMutation represents an operation that mutates the PipelineStepLog nodes in the graph.
type PipelineStepLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	request_id    *string
	run_id        *string
	pipeline_id   *string
	node_id       *string
	node_type     *string
	tool_name     *string
	status        *pipelinesteplog.Status
	attempt       *int
	addattempt    *int
	item_index    *int
	additem_index *int
	latency_ms    *int
	addlatency_ms *int
	error_code    *string
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PipelineStepLog, error)
	predicates    []predicate.PipelineStepLog
}

var _ ent.Mutation = (*PipelineStepLogMutation)(nil)

// pipelinesteplogOption allows management of the mutation configuration using functional options.
type pipelinesteplogOption func(*PipelineStepLogMutation)

// newPipelineStepLogMutation creates new mutation for the PipelineStepLog entity.
func newPipelineStepLogMutation(c config, op Op, opts ...pipelinesteplogOption) *PipelineStepLogMutation {
	m := &PipelineStepLogMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStepLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStepLogID sets the ID field of the mutation.
func withPipelineStepLogID(id int) pipelinesteplogOption {
	return func(m *PipelineStepLogMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStepLog
		)
		m.oldValue = func(ctx context.Context) (*PipelineStepLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStepLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStepLog sets the old PipelineStepLog of the mutation.
func withPipelineStepLog(node *PipelineStepLog) pipelinesteplogOption {
	return func(m *PipelineStepLogMutation) {
		m.oldValue = func(context.Context) (*PipelineStepLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStepLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStepLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStepLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStepLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStepLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *PipelineStepLogMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *PipelineStepLogMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *PipelineStepLogMutation) ResetRequestID() {
	m.request_id = nil
}

// SetRunID sets the "run_id" field.
func (m *PipelineStepLogMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PipelineStepLogMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PipelineStepLogMutation) ResetRunID() {
	m.run_id = nil
}

// SetPipelineID sets the "pipeline_id" field.
func (m *PipelineStepLogMutation) SetPipelineID(s string) {
	m.pipeline_id = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *PipelineStepLogMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldPipelineID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ClearPipelineID clears the value of the "pipeline_id" field.
func (m *PipelineStepLogMutation) ClearPipelineID() {
	m.pipeline_id = nil
	m.clearedFields[pipelinesteplog.FieldPipelineID] = struct{}{}
}

// PipelineIDCleared returns if the "pipeline_id" field was cleared in this mutation.
func (m *PipelineStepLogMutation) PipelineIDCleared() bool {
	_, ok := m.clearedFields[pipelinesteplog.FieldPipelineID]
	return ok
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *PipelineStepLogMutation) ResetPipelineID() {
	m.pipeline_id = nil
	delete(m.clearedFields, pipelinesteplog.FieldPipelineID)
}

// SetNodeID sets the "node_id" field.
func (m *PipelineStepLogMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *PipelineStepLogMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *PipelineStepLogMutation) ResetNodeID() {
	m.node_id = nil
}

// SetNodeType sets the "node_type" field.
func (m *PipelineStepLogMutation) SetNodeType(s string) {
	m.node_type = &s
}

// NodeType returns the value of the "node_type" field in the mutation.
func (m *PipelineStepLogMutation) NodeType() (r string, exists bool) {
	v := m.node_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeType returns the old "node_type" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldNodeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeType: %w", err)
	}
	return oldValue.NodeType, nil
}

// ResetNodeType resets all changes to the "node_type" field.
func (m *PipelineStepLogMutation) ResetNodeType() {
	m.node_type = nil
}

// SetToolName sets the "tool_name" field.
func (m *PipelineStepLogMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *PipelineStepLogMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *PipelineStepLogMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[pipelinesteplog.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *PipelineStepLogMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[pipelinesteplog.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *PipelineStepLogMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, pipelinesteplog.FieldToolName)
}

// SetStatus sets the "status" field.
func (m *PipelineStepLogMutation) SetStatus(pi pipelinesteplog.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineStepLogMutation) Status() (r pipelinesteplog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldStatus(ctx context.Context) (v pipelinesteplog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineStepLogMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *PipelineStepLogMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PipelineStepLogMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PipelineStepLogMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PipelineStepLogMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PipelineStepLogMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetItemIndex sets the "item_index" field.
func (m *PipelineStepLogMutation) SetItemIndex(i int) {
	m.item_index = &i
	m.additem_index = nil
}

// ItemIndex returns the value of the "item_index" field in the mutation.
func (m *PipelineStepLogMutation) ItemIndex() (r int, exists bool) {
	v := m.item_index
	if v == nil {
		return
	}
	return *v, true
}

// OldItemIndex returns the old "item_index" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldItemIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemIndex: %w", err)
	}
	return oldValue.ItemIndex, nil
}

// AddItemIndex adds i to the "item_index" field.
func (m *PipelineStepLogMutation) AddItemIndex(i int) {
	if m.additem_index != nil {
		*m.additem_index += i
	} else {
		m.additem_index = &i
	}
}

// AddedItemIndex returns the value that was added to the "item_index" field in this mutation.
func (m *PipelineStepLogMutation) AddedItemIndex() (r int, exists bool) {
	v := m.additem_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearItemIndex clears the value of the "item_index" field.
func (m *PipelineStepLogMutation) ClearItemIndex() {
	m.item_index = nil
	m.additem_index = nil
	m.clearedFields[pipelinesteplog.FieldItemIndex] = struct{}{}
}

// ItemIndexCleared returns if the "item_index" field was cleared in this mutation.
func (m *PipelineStepLogMutation) ItemIndexCleared() bool {
	_, ok := m.clearedFields[pipelinesteplog.FieldItemIndex]
	return ok
}

// ResetItemIndex resets all changes to the "item_index" field.
func (m *PipelineStepLogMutation) ResetItemIndex() {
	m.item_index = nil
	m.additem_index = nil
	delete(m.clearedFields, pipelinesteplog.FieldItemIndex)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *PipelineStepLogMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *PipelineStepLogMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *PipelineStepLogMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *PipelineStepLogMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *PipelineStepLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetErrorCode sets the "error_code" field.
func (m *PipelineStepLogMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *PipelineStepLogMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *PipelineStepLogMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[pipelinesteplog.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *PipelineStepLogMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[pipelinesteplog.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *PipelineStepLogMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, pipelinesteplog.FieldErrorCode)
}

// SetDetail sets the "detail" field.
func (m *PipelineStepLogMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *PipelineStepLogMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *PipelineStepLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[pipelinesteplog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *PipelineStepLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[pipelinesteplog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *PipelineStepLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, pipelinesteplog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStepLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStepLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineStepLog entity.
// If the PipelineStepLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineStepLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PipelineStepLogMutation builder.
func (m *PipelineStepLogMutation) Where(ps ...predicate.PipelineStepLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStepLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStepLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStepLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStepLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStepLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStepLog).
func (m *PipelineStepLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStepLogMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.request_id != nil {
		fields = append(fields, pipelinesteplog.FieldRequestID)
	}
	if m.run_id != nil {
		fields = append(fields, pipelinesteplog.FieldRunID)
	}
	if m.pipeline_id != nil {
		fields = append(fields, pipelinesteplog.FieldPipelineID)
	}
	if m.node_id != nil {
		fields = append(fields, pipelinesteplog.FieldNodeID)
	}
	if m.node_type != nil {
		fields = append(fields, pipelinesteplog.FieldNodeType)
	}
	if m.tool_name != nil {
		fields = append(fields, pipelinesteplog.FieldToolName)
	}
	if m.status != nil {
		fields = append(fields, pipelinesteplog.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, pipelinesteplog.FieldAttempt)
	}
	if m.item_index != nil {
		fields = append(fields, pipelinesteplog.FieldItemIndex)
	}
	if m.latency_ms != nil {
		fields = append(fields, pipelinesteplog.FieldLatencyMs)
	}
	if m.error_code != nil {
		fields = append(fields, pipelinesteplog.FieldErrorCode)
	}
	if m.detail != nil {
		fields = append(fields, pipelinesteplog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinesteplog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStepLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinesteplog.FieldRequestID:
		return m.RequestID()
	case pipelinesteplog.FieldRunID:
		return m.RunID()
	case pipelinesteplog.FieldPipelineID:
		return m.PipelineID()
	case pipelinesteplog.FieldNodeID:
		return m.NodeID()
	case pipelinesteplog.FieldNodeType:
		return m.NodeType()
	case pipelinesteplog.FieldToolName:
		return m.ToolName()
	case pipelinesteplog.FieldStatus:
		return m.Status()
	case pipelinesteplog.FieldAttempt:
		return m.Attempt()
	case pipelinesteplog.FieldItemIndex:
		return m.ItemIndex()
	case pipelinesteplog.FieldLatencyMs:
		return m.LatencyMs()
	case pipelinesteplog.FieldErrorCode:
		return m.ErrorCode()
	case pipelinesteplog.FieldDetail:
		return m.Detail()
	case pipelinesteplog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStepLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinesteplog.FieldRequestID:
		return m.OldRequestID(ctx)
	case pipelinesteplog.FieldRunID:
		return m.OldRunID(ctx)
	case pipelinesteplog.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case pipelinesteplog.FieldNodeID:
		return m.OldNodeID(ctx)
	case pipelinesteplog.FieldNodeType:
		return m.OldNodeType(ctx)
	case pipelinesteplog.FieldToolName:
		return m.OldToolName(ctx)
	case pipelinesteplog.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinesteplog.FieldAttempt:
		return m.OldAttempt(ctx)
	case pipelinesteplog.FieldItemIndex:
		return m.OldItemIndex(ctx)
	case pipelinesteplog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case pipelinesteplog.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case pipelinesteplog.FieldDetail:
		return m.OldDetail(ctx)
	case pipelinesteplog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStepLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinesteplog.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case pipelinesteplog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case pipelinesteplog.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case pipelinesteplog.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case pipelinesteplog.FieldNodeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeType(v)
		return nil
	case pipelinesteplog.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case pipelinesteplog.FieldStatus:
		v, ok := value.(pipelinesteplog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinesteplog.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case pipelinesteplog.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemIndex(v)
		return nil
	case pipelinesteplog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case pipelinesteplog.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case pipelinesteplog.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case pipelinesteplog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStepLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStepLogMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, pipelinesteplog.FieldAttempt)
	}
	if m.additem_index != nil {
		fields = append(fields, pipelinesteplog.FieldItemIndex)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, pipelinesteplog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStepLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinesteplog.FieldAttempt:
		return m.AddedAttempt()
	case pipelinesteplog.FieldItemIndex:
		return m.AddedItemIndex()
	case pipelinesteplog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinesteplog.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case pipelinesteplog.FieldItemIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemIndex(v)
		return nil
	case pipelinesteplog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStepLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStepLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinesteplog.FieldPipelineID) {
		fields = append(fields, pipelinesteplog.FieldPipelineID)
	}
	if m.FieldCleared(pipelinesteplog.FieldToolName) {
		fields = append(fields, pipelinesteplog.FieldToolName)
	}
	if m.FieldCleared(pipelinesteplog.FieldItemIndex) {
		fields = append(fields, pipelinesteplog.FieldItemIndex)
	}
	if m.FieldCleared(pipelinesteplog.FieldErrorCode) {
		fields = append(fields, pipelinesteplog.FieldErrorCode)
	}
	if m.FieldCleared(pipelinesteplog.FieldDetail) {
		fields = append(fields, pipelinesteplog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStepLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStepLogMutation) ClearField(name string) error {
	switch name {
	case pipelinesteplog.FieldPipelineID:
		m.ClearPipelineID()
		return nil
	case pipelinesteplog.FieldToolName:
		m.ClearToolName()
		return nil
	case pipelinesteplog.FieldItemIndex:
		m.ClearItemIndex()
		return nil
	case pipelinesteplog.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case pipelinesteplog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown PipelineStepLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStepLogMutation) ResetField(name string) error {
	switch name {
	case pipelinesteplog.FieldRequestID:
		m.ResetRequestID()
		return nil
	case pipelinesteplog.FieldRunID:
		m.ResetRunID()
		return nil
	case pipelinesteplog.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case pipelinesteplog.FieldNodeID:
		m.ResetNodeID()
		return nil
	case pipelinesteplog.FieldNodeType:
		m.ResetNodeType()
		return nil
	case pipelinesteplog.FieldToolName:
		m.ResetToolName()
		return nil
	case pipelinesteplog.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinesteplog.FieldAttempt:
		m.ResetAttempt()
		return nil
	case pipelinesteplog.FieldItemIndex:
		m.ResetItemIndex()
		return nil
	case pipelinesteplog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case pipelinesteplog.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case pipelinesteplog.FieldDetail:
		m.ResetDetail()
		return nil
	case pipelinesteplog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineStepLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStepLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStepLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStepLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStepLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStepLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStepLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStepLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineStepLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStepLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineStepLog edge %s", name)
}
