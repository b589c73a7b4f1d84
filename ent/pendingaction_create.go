// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/braid-labs/braid/ent/pendingaction"
)

// PendingActionCreate is the builder for creating a PendingAction entity.
type PendingActionCreate struct {
	config
	mutation *PendingActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntent sets the "intent" field.
func (_c *PendingActionCreate) SetIntent(v string) *PendingActionCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PendingActionCreate) SetAction(v string) *PendingActionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *PendingActionCreate) SetTaskID(v string) *PendingActionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableTaskID(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *PendingActionCreate) SetPlan(v map[string]interface{}) *PendingActionCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetPlanSource sets the "plan_source" field.
func (_c *PendingActionCreate) SetPlanSource(v string) *PendingActionCreate {
	_c.mutation.SetPlanSource(v)
	return _c
}

// SetNillablePlanSource sets the "plan_source" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillablePlanSource(v *string) *PendingActionCreate {
	if v != nil {
		_c.SetPlanSource(*v)
	}
	return _c
}

// SetCollectedSlots sets the "collected_slots" field.
func (_c *PendingActionCreate) SetCollectedSlots(v map[string]interface{}) *PendingActionCreate {
	_c.mutation.SetCollectedSlots(v)
	return _c
}

// SetMissingSlots sets the "missing_slots" field.
func (_c *PendingActionCreate) SetMissingSlots(v []string) *PendingActionCreate {
	_c.mutation.SetMissingSlots(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingActionCreate) SetCreatedAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingActionCreate) SetNillableCreatedAt(v *time.Time) *PendingActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PendingActionCreate) SetExpiresAt(v time.Time) *PendingActionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PendingActionCreate) SetID(v string) *PendingActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingActionMutation object of the builder.
func (_c *PendingActionCreate) Mutation() *PendingActionMutation {
	return _c.mutation
}

// Save creates the PendingAction in the database.
func (_c *PendingActionCreate) Save(ctx context.Context) (*PendingAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingActionCreate) SaveX(ctx context.Context) *PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingActionCreate) check() error {
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "PendingAction.intent"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PendingAction.action"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingAction.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PendingAction.expires_at"`)}
	}
	return nil
}

func (_c *PendingActionCreate) sqlSave(ctx context.Context) (*PendingAction, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PendingAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingActionCreate) createSpec() (*PendingAction, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingaction.Table, sqlgraph.NewFieldSpec(pendingaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(pendingaction.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(pendingaction.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(pendingaction.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(pendingaction.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.PlanSource(); ok {
		_spec.SetField(pendingaction.FieldPlanSource, field.TypeString, value)
		_node.PlanSource = value
	}
	if value, ok := _c.mutation.CollectedSlots(); ok {
		_spec.SetField(pendingaction.FieldCollectedSlots, field.TypeJSON, value)
		_node.CollectedSlots = value
	}
	if value, ok := _c.mutation.MissingSlots(); ok {
		_spec.SetField(pendingaction.FieldMissingSlots, field.TypeJSON, value)
		_node.MissingSlots = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingaction.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingAction.Create().
//		SetIntent(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingActionUpsert) {
//			SetIntent(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingActionCreate) OnConflict(opts ...sql.ConflictOption) *PendingActionUpsertOne {
	_c.conflict = opts
	return &PendingActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingActionCreate) OnConflictColumns(columns ...string) *PendingActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingActionUpsertOne{
		create: _c,
	}
}

type (
	// PendingActionUpsertOne is the builder for "upsert"-ing
	//  one PendingAction node.
	PendingActionUpsertOne struct {
		create *PendingActionCreate
	}

	// PendingActionUpsert is the "OnConflict" setter.
	PendingActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetIntent sets the "intent" field.
func (u *PendingActionUpsert) SetIntent(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldIntent, v)
	return u
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateIntent() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldIntent)
	return u
}

// SetAction sets the "action" field.
func (u *PendingActionUpsert) SetAction(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateAction() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldAction)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *PendingActionUpsert) SetTaskID(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateTaskID() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *PendingActionUpsert) ClearTaskID() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldTaskID)
	return u
}

// SetPlan sets the "plan" field.
func (u *PendingActionUpsert) SetPlan(v map[string]interface{}) *PendingActionUpsert {
	u.Set(pendingaction.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdatePlan() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *PendingActionUpsert) ClearPlan() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldPlan)
	return u
}

// SetPlanSource sets the "plan_source" field.
func (u *PendingActionUpsert) SetPlanSource(v string) *PendingActionUpsert {
	u.Set(pendingaction.FieldPlanSource, v)
	return u
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdatePlanSource() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldPlanSource)
	return u
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PendingActionUpsert) ClearPlanSource() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldPlanSource)
	return u
}

// SetCollectedSlots sets the "collected_slots" field.
func (u *PendingActionUpsert) SetCollectedSlots(v map[string]interface{}) *PendingActionUpsert {
	u.Set(pendingaction.FieldCollectedSlots, v)
	return u
}

// UpdateCollectedSlots sets the "collected_slots" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateCollectedSlots() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldCollectedSlots)
	return u
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (u *PendingActionUpsert) ClearCollectedSlots() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldCollectedSlots)
	return u
}

// SetMissingSlots sets the "missing_slots" field.
func (u *PendingActionUpsert) SetMissingSlots(v []string) *PendingActionUpsert {
	u.Set(pendingaction.FieldMissingSlots, v)
	return u
}

// UpdateMissingSlots sets the "missing_slots" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateMissingSlots() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldMissingSlots)
	return u
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (u *PendingActionUpsert) ClearMissingSlots() *PendingActionUpsert {
	u.SetNull(pendingaction.FieldMissingSlots)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsert) SetExpiresAt(v time.Time) *PendingActionUpsert {
	u.Set(pendingaction.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsert) UpdateExpiresAt() *PendingActionUpsert {
	u.SetExcluded(pendingaction.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingActionUpsertOne) UpdateNewValues() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pendingaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pendingaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PendingActionUpsertOne) Ignore() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingActionUpsertOne) DoNothing() *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingActionCreate.OnConflict
// documentation for more info.
func (u *PendingActionUpsertOne) Update(set func(*PendingActionUpsert)) *PendingActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntent sets the "intent" field.
func (u *PendingActionUpsertOne) SetIntent(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateIntent() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateIntent()
	})
}

// SetAction sets the "action" field.
func (u *PendingActionUpsertOne) SetAction(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateAction() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateAction()
	})
}

// SetTaskID sets the "task_id" field.
func (u *PendingActionUpsertOne) SetTaskID(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateTaskID() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *PendingActionUpsertOne) ClearTaskID() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearTaskID()
	})
}

// SetPlan sets the "plan" field.
func (u *PendingActionUpsertOne) SetPlan(v map[string]interface{}) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdatePlan() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *PendingActionUpsertOne) ClearPlan() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearPlan()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *PendingActionUpsertOne) SetPlanSource(v string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdatePlanSource() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PendingActionUpsertOne) ClearPlanSource() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearPlanSource()
	})
}

// SetCollectedSlots sets the "collected_slots" field.
func (u *PendingActionUpsertOne) SetCollectedSlots(v map[string]interface{}) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetCollectedSlots(v)
	})
}

// UpdateCollectedSlots sets the "collected_slots" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateCollectedSlots() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateCollectedSlots()
	})
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (u *PendingActionUpsertOne) ClearCollectedSlots() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearCollectedSlots()
	})
}

// SetMissingSlots sets the "missing_slots" field.
func (u *PendingActionUpsertOne) SetMissingSlots(v []string) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetMissingSlots(v)
	})
}

// UpdateMissingSlots sets the "missing_slots" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateMissingSlots() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateMissingSlots()
	})
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (u *PendingActionUpsertOne) ClearMissingSlots() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearMissingSlots()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsertOne) SetExpiresAt(v time.Time) *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsertOne) UpdateExpiresAt() *PendingActionUpsertOne {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *PendingActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PendingActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PendingActionUpsertOne.ID is not supported by MySQL driver. Use PendingActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PendingActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PendingActionCreateBulk is the builder for creating many PendingAction entities in bulk.
type PendingActionCreateBulk struct {
	config
	err      error
	builders []*PendingActionCreate
	conflict []sql.ConflictOption
}

// Save creates the PendingAction entities in the database.
func (_c *PendingActionCreateBulk) Save(ctx context.Context) ([]*PendingAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingActionMutation)
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
func (_c *PendingActionCreateBulk) SaveX(ctx context.Context) []*PendingAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PendingAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PendingActionUpsert) {
//			SetIntent(v+v).
//		}).
//		Exec(ctx)
func (_c *PendingActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PendingActionUpsertBulk {
	_c.conflict = opts
	return &PendingActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PendingActionCreateBulk) OnConflictColumns(columns ...string) *PendingActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PendingActionUpsertBulk{
		create: _c,
	}
}

// PendingActionUpsertBulk is the builder for "upsert"-ing
// a bulk of PendingAction nodes.
type PendingActionUpsertBulk struct {
	create *PendingActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pendingaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PendingActionUpsertBulk) UpdateNewValues() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pendingaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pendingaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PendingAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PendingActionUpsertBulk) Ignore() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PendingActionUpsertBulk) DoNothing() *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PendingActionCreateBulk.OnConflict
// documentation for more info.
func (u *PendingActionUpsertBulk) Update(set func(*PendingActionUpsert)) *PendingActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PendingActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntent sets the "intent" field.
func (u *PendingActionUpsertBulk) SetIntent(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateIntent() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateIntent()
	})
}

// SetAction sets the "action" field.
func (u *PendingActionUpsertBulk) SetAction(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateAction() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateAction()
	})
}

// SetTaskID sets the "task_id" field.
func (u *PendingActionUpsertBulk) SetTaskID(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateTaskID() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *PendingActionUpsertBulk) ClearTaskID() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearTaskID()
	})
}

// SetPlan sets the "plan" field.
func (u *PendingActionUpsertBulk) SetPlan(v map[string]interface{}) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdatePlan() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *PendingActionUpsertBulk) ClearPlan() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearPlan()
	})
}

// SetPlanSource sets the "plan_source" field.
func (u *PendingActionUpsertBulk) SetPlanSource(v string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetPlanSource(v)
	})
}

// UpdatePlanSource sets the "plan_source" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdatePlanSource() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdatePlanSource()
	})
}

// ClearPlanSource clears the value of the "plan_source" field.
func (u *PendingActionUpsertBulk) ClearPlanSource() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearPlanSource()
	})
}

// SetCollectedSlots sets the "collected_slots" field.
func (u *PendingActionUpsertBulk) SetCollectedSlots(v map[string]interface{}) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetCollectedSlots(v)
	})
}

// UpdateCollectedSlots sets the "collected_slots" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateCollectedSlots() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateCollectedSlots()
	})
}

// ClearCollectedSlots clears the value of the "collected_slots" field.
func (u *PendingActionUpsertBulk) ClearCollectedSlots() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearCollectedSlots()
	})
}

// SetMissingSlots sets the "missing_slots" field.
func (u *PendingActionUpsertBulk) SetMissingSlots(v []string) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetMissingSlots(v)
	})
}

// UpdateMissingSlots sets the "missing_slots" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateMissingSlots() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateMissingSlots()
	})
}

// ClearMissingSlots clears the value of the "missing_slots" field.
func (u *PendingActionUpsertBulk) ClearMissingSlots() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.ClearMissingSlots()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *PendingActionUpsertBulk) SetExpiresAt(v time.Time) *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *PendingActionUpsertBulk) UpdateExpiresAt() *PendingActionUpsertBulk {
	return u.Update(func(s *PendingActionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *PendingActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PendingActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PendingActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PendingActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
