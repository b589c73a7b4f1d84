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
	"github.com/braid-labs/braid/ent/oauthtoken"
)

// OAuthTokenCreate is the builder for creating a OAuthToken entity.
type OAuthTokenCreate struct {
	config
	mutation *OAuthTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *OAuthTokenCreate) SetUserID(v string) *OAuthTokenCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OAuthTokenCreate) SetProvider(v string) *OAuthTokenCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (_c *OAuthTokenCreate) SetAccessTokenEncrypted(v string) *OAuthTokenCreate {
	_c.mutation.SetAccessTokenEncrypted(v)
	return _c
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (_c *OAuthTokenCreate) SetRefreshTokenEncrypted(v string) *OAuthTokenCreate {
	_c.mutation.SetRefreshTokenEncrypted(v)
	return _c
}

// SetNillableRefreshTokenEncrypted sets the "refresh_token_encrypted" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableRefreshTokenEncrypted(v *string) *OAuthTokenCreate {
	if v != nil {
		_c.SetRefreshTokenEncrypted(*v)
	}
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *OAuthTokenCreate) SetScopes(v []string) *OAuthTokenCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *OAuthTokenCreate) SetWorkspaceID(v string) *OAuthTokenCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableWorkspaceID(v *string) *OAuthTokenCreate {
	if v != nil {
		_c.SetWorkspaceID(*v)
	}
	return _c
}

// SetWorkspaceName sets the "workspace_name" field.
func (_c *OAuthTokenCreate) SetWorkspaceName(v string) *OAuthTokenCreate {
	_c.mutation.SetWorkspaceName(v)
	return _c
}

// SetNillableWorkspaceName sets the "workspace_name" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableWorkspaceName(v *string) *OAuthTokenCreate {
	if v != nil {
		_c.SetWorkspaceName(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *OAuthTokenCreate) SetExpiresAt(v time.Time) *OAuthTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableExpiresAt(v *time.Time) *OAuthTokenCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OAuthTokenCreate) SetCreatedAt(v time.Time) *OAuthTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableCreatedAt(v *time.Time) *OAuthTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OAuthTokenCreate) SetUpdatedAt(v time.Time) *OAuthTokenCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OAuthTokenCreate) SetNillableUpdatedAt(v *time.Time) *OAuthTokenCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the OAuthTokenMutation object of the builder.
func (_c *OAuthTokenCreate) Mutation() *OAuthTokenMutation {
	return _c.mutation
}

// Save creates the OAuthToken in the database.
func (_c *OAuthTokenCreate) Save(ctx context.Context) (*OAuthToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OAuthTokenCreate) SaveX(ctx context.Context) *OAuthToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OAuthTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oauthtoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := oauthtoken.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OAuthTokenCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OAuthToken.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "OAuthToken.provider"`)}
	}
	if _, ok := _c.mutation.AccessTokenEncrypted(); !ok {
		return &ValidationError{Name: "access_token_encrypted", err: errors.New(`ent: missing required field "OAuthToken.access_token_encrypted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OAuthToken.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OAuthToken.updated_at"`)}
	}
	return nil
}

func (_c *OAuthTokenCreate) sqlSave(ctx context.Context) (*OAuthToken, error) {
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

func (_c *OAuthTokenCreate) createSpec() (*OAuthToken, *sqlgraph.CreateSpec) {
	var (
		_node = &OAuthToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oauthtoken.Table, sqlgraph.NewFieldSpec(oauthtoken.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(oauthtoken.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(oauthtoken.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccessTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldAccessTokenEncrypted, field.TypeString, value)
		_node.AccessTokenEncrypted = value
	}
	if value, ok := _c.mutation.RefreshTokenEncrypted(); ok {
		_spec.SetField(oauthtoken.FieldRefreshTokenEncrypted, field.TypeString, value)
		_node.RefreshTokenEncrypted = &value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(oauthtoken.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(oauthtoken.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = &value
	}
	if value, ok := _c.mutation.WorkspaceName(); ok {
		_spec.SetField(oauthtoken.FieldWorkspaceName, field.TypeString, value)
		_node.WorkspaceName = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthtoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oauthtoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthtoken.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OAuthToken.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OAuthTokenUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OAuthTokenCreate) OnConflict(opts ...sql.ConflictOption) *OAuthTokenUpsertOne {
	_c.conflict = opts
	return &OAuthTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OAuthTokenCreate) OnConflictColumns(columns ...string) *OAuthTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OAuthTokenUpsertOne{
		create: _c,
	}
}

type (
	// OAuthTokenUpsertOne is the builder for "upsert"-ing
	//  one OAuthToken node.
	OAuthTokenUpsertOne struct {
		create *OAuthTokenCreate
	}

	// OAuthTokenUpsert is the "OnConflict" setter.
	OAuthTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *OAuthTokenUpsert) SetUserID(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateUserID() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldUserID)
	return u
}

// SetProvider sets the "provider" field.
func (u *OAuthTokenUpsert) SetProvider(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateProvider() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldProvider)
	return u
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *OAuthTokenUpsert) SetAccessTokenEncrypted(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldAccessTokenEncrypted, v)
	return u
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateAccessTokenEncrypted() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldAccessTokenEncrypted)
	return u
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsert) SetRefreshTokenEncrypted(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldRefreshTokenEncrypted, v)
	return u
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateRefreshTokenEncrypted() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldRefreshTokenEncrypted)
	return u
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsert) ClearRefreshTokenEncrypted() *OAuthTokenUpsert {
	u.SetNull(oauthtoken.FieldRefreshTokenEncrypted)
	return u
}

// SetScopes sets the "scopes" field.
func (u *OAuthTokenUpsert) SetScopes(v []string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldScopes, v)
	return u
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateScopes() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldScopes)
	return u
}

// ClearScopes clears the value of the "scopes" field.
func (u *OAuthTokenUpsert) ClearScopes() *OAuthTokenUpsert {
	u.SetNull(oauthtoken.FieldScopes)
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OAuthTokenUpsert) SetWorkspaceID(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateWorkspaceID() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldWorkspaceID)
	return u
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (u *OAuthTokenUpsert) ClearWorkspaceID() *OAuthTokenUpsert {
	u.SetNull(oauthtoken.FieldWorkspaceID)
	return u
}

// SetWorkspaceName sets the "workspace_name" field.
func (u *OAuthTokenUpsert) SetWorkspaceName(v string) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldWorkspaceName, v)
	return u
}

// UpdateWorkspaceName sets the "workspace_name" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateWorkspaceName() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldWorkspaceName)
	return u
}

// ClearWorkspaceName clears the value of the "workspace_name" field.
func (u *OAuthTokenUpsert) ClearWorkspaceName() *OAuthTokenUpsert {
	u.SetNull(oauthtoken.FieldWorkspaceName)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *OAuthTokenUpsert) SetExpiresAt(v time.Time) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateExpiresAt() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *OAuthTokenUpsert) ClearExpiresAt() *OAuthTokenUpsert {
	u.SetNull(oauthtoken.FieldExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OAuthTokenUpsert) SetUpdatedAt(v time.Time) *OAuthTokenUpsert {
	u.Set(oauthtoken.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OAuthTokenUpsert) UpdateUpdatedAt() *OAuthTokenUpsert {
	u.SetExcluded(oauthtoken.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OAuthTokenUpsertOne) UpdateNewValues() *OAuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(oauthtoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OAuthTokenUpsertOne) Ignore() *OAuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OAuthTokenUpsertOne) DoNothing() *OAuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OAuthTokenCreate.OnConflict
// documentation for more info.
func (u *OAuthTokenUpsertOne) Update(set func(*OAuthTokenUpsert)) *OAuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OAuthTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OAuthTokenUpsertOne) SetUserID(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateUserID() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *OAuthTokenUpsertOne) SetProvider(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateProvider() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *OAuthTokenUpsertOne) SetAccessTokenEncrypted(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetAccessTokenEncrypted(v)
	})
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateAccessTokenEncrypted() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateAccessTokenEncrypted()
	})
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsertOne) SetRefreshTokenEncrypted(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetRefreshTokenEncrypted(v)
	})
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateRefreshTokenEncrypted() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateRefreshTokenEncrypted()
	})
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsertOne) ClearRefreshTokenEncrypted() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearRefreshTokenEncrypted()
	})
}

// SetScopes sets the "scopes" field.
func (u *OAuthTokenUpsertOne) SetScopes(v []string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetScopes(v)
	})
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateScopes() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateScopes()
	})
}

// ClearScopes clears the value of the "scopes" field.
func (u *OAuthTokenUpsertOne) ClearScopes() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearScopes()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OAuthTokenUpsertOne) SetWorkspaceID(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateWorkspaceID() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateWorkspaceID()
	})
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (u *OAuthTokenUpsertOne) ClearWorkspaceID() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearWorkspaceID()
	})
}

// SetWorkspaceName sets the "workspace_name" field.
func (u *OAuthTokenUpsertOne) SetWorkspaceName(v string) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetWorkspaceName(v)
	})
}

// UpdateWorkspaceName sets the "workspace_name" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateWorkspaceName() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateWorkspaceName()
	})
}

// ClearWorkspaceName clears the value of the "workspace_name" field.
func (u *OAuthTokenUpsertOne) ClearWorkspaceName() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearWorkspaceName()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *OAuthTokenUpsertOne) SetExpiresAt(v time.Time) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateExpiresAt() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *OAuthTokenUpsertOne) ClearExpiresAt() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OAuthTokenUpsertOne) SetUpdatedAt(v time.Time) *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OAuthTokenUpsertOne) UpdateUpdatedAt() *OAuthTokenUpsertOne {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OAuthTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OAuthTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OAuthTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OAuthTokenUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OAuthTokenUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OAuthTokenCreateBulk is the builder for creating many OAuthToken entities in bulk.
type OAuthTokenCreateBulk struct {
	config
	err      error
	builders []*OAuthTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the OAuthToken entities in the database.
func (_c *OAuthTokenCreateBulk) Save(ctx context.Context) ([]*OAuthToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OAuthToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OAuthTokenMutation)
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
func (_c *OAuthTokenCreateBulk) SaveX(ctx context.Context) []*OAuthToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OAuthToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OAuthTokenUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OAuthTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *OAuthTokenUpsertBulk {
	_c.conflict = opts
	return &OAuthTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OAuthTokenCreateBulk) OnConflictColumns(columns ...string) *OAuthTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OAuthTokenUpsertBulk{
		create: _c,
	}
}

// OAuthTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of OAuthToken nodes.
type OAuthTokenUpsertBulk struct {
	create *OAuthTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OAuthTokenUpsertBulk) UpdateNewValues() *OAuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(oauthtoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OAuthToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OAuthTokenUpsertBulk) Ignore() *OAuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OAuthTokenUpsertBulk) DoNothing() *OAuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OAuthTokenCreateBulk.OnConflict
// documentation for more info.
func (u *OAuthTokenUpsertBulk) Update(set func(*OAuthTokenUpsert)) *OAuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OAuthTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OAuthTokenUpsertBulk) SetUserID(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateUserID() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *OAuthTokenUpsertBulk) SetProvider(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateProvider() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (u *OAuthTokenUpsertBulk) SetAccessTokenEncrypted(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetAccessTokenEncrypted(v)
	})
}

// UpdateAccessTokenEncrypted sets the "access_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateAccessTokenEncrypted() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateAccessTokenEncrypted()
	})
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsertBulk) SetRefreshTokenEncrypted(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetRefreshTokenEncrypted(v)
	})
}

// UpdateRefreshTokenEncrypted sets the "refresh_token_encrypted" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateRefreshTokenEncrypted() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateRefreshTokenEncrypted()
	})
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (u *OAuthTokenUpsertBulk) ClearRefreshTokenEncrypted() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearRefreshTokenEncrypted()
	})
}

// SetScopes sets the "scopes" field.
func (u *OAuthTokenUpsertBulk) SetScopes(v []string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetScopes(v)
	})
}

// UpdateScopes sets the "scopes" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateScopes() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateScopes()
	})
}

// ClearScopes clears the value of the "scopes" field.
func (u *OAuthTokenUpsertBulk) ClearScopes() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearScopes()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OAuthTokenUpsertBulk) SetWorkspaceID(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateWorkspaceID() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateWorkspaceID()
	})
}

// ClearWorkspaceID clears the value of the "workspace_id" field.
func (u *OAuthTokenUpsertBulk) ClearWorkspaceID() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearWorkspaceID()
	})
}

// SetWorkspaceName sets the "workspace_name" field.
func (u *OAuthTokenUpsertBulk) SetWorkspaceName(v string) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetWorkspaceName(v)
	})
}

// UpdateWorkspaceName sets the "workspace_name" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateWorkspaceName() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateWorkspaceName()
	})
}

// ClearWorkspaceName clears the value of the "workspace_name" field.
func (u *OAuthTokenUpsertBulk) ClearWorkspaceName() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearWorkspaceName()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *OAuthTokenUpsertBulk) SetExpiresAt(v time.Time) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateExpiresAt() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *OAuthTokenUpsertBulk) ClearExpiresAt() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.ClearExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OAuthTokenUpsertBulk) SetUpdatedAt(v time.Time) *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OAuthTokenUpsertBulk) UpdateUpdatedAt() *OAuthTokenUpsertBulk {
	return u.Update(func(s *OAuthTokenUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OAuthTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OAuthTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OAuthTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OAuthTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
