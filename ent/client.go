// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/braid-labs/braid/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/commandlog"
	"github.com/braid-labs/braid/ent/oauthtoken"
	"github.com/braid-labs/braid/ent/pendingaction"
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CommandLog is the client for interacting with the CommandLog builders.
	CommandLog *CommandLogClient
	// OAuthToken is the client for interacting with the OAuthToken builders.
	OAuthToken *OAuthTokenClient
	// PendingAction is the client for interacting with the PendingAction builders.
	PendingAction *PendingActionClient
	// PipelineLink is the client for interacting with the PipelineLink builders.
	PipelineLink *PipelineLinkClient
	// PipelineStepLog is the client for interacting with the PipelineStepLog builders.
	PipelineStepLog *PipelineStepLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CommandLog = NewCommandLogClient(c.config)
	c.OAuthToken = NewOAuthTokenClient(c.config)
	c.PendingAction = NewPendingActionClient(c.config)
	c.PipelineLink = NewPipelineLinkClient(c.config)
	c.PipelineStepLog = NewPipelineStepLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CommandLog:      NewCommandLogClient(cfg),
		OAuthToken:      NewOAuthTokenClient(cfg),
		PendingAction:   NewPendingActionClient(cfg),
		PipelineLink:    NewPipelineLinkClient(cfg),
		PipelineStepLog: NewPipelineStepLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CommandLog:      NewCommandLogClient(cfg),
		OAuthToken:      NewOAuthTokenClient(cfg),
		PendingAction:   NewPendingActionClient(cfg),
		PipelineLink:    NewPipelineLinkClient(cfg),
		PipelineStepLog: NewPipelineStepLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CommandLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CommandLog.Use(hooks...)
	c.OAuthToken.Use(hooks...)
	c.PendingAction.Use(hooks...)
	c.PipelineLink.Use(hooks...)
	c.PipelineStepLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CommandLog.Intercept(interceptors...)
	c.OAuthToken.Intercept(interceptors...)
	c.PendingAction.Intercept(interceptors...)
	c.PipelineLink.Intercept(interceptors...)
	c.PipelineStepLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CommandLogMutation:
		return c.CommandLog.mutate(ctx, m)
	case *OAuthTokenMutation:
		return c.OAuthToken.mutate(ctx, m)
	case *PendingActionMutation:
		return c.PendingAction.mutate(ctx, m)
	case *PipelineLinkMutation:
		return c.PipelineLink.mutate(ctx, m)
	case *PipelineStepLogMutation:
		return c.PipelineStepLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CommandLogClient is a client for the CommandLog schema.
type CommandLogClient struct {
	config
}

// NewCommandLogClient returns a client for the CommandLog from the given config.
func NewCommandLogClient(c config) *CommandLogClient {
	return &CommandLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `commandlog.Hooks(f(g(h())))`.
func (c *CommandLogClient) Use(hooks ...Hook) {
	c.hooks.CommandLog = append(c.hooks.CommandLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `commandlog.Intercept(f(g(h())))`.
func (c *CommandLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommandLog = append(c.inters.CommandLog, interceptors...)
}

// Create returns a builder for creating a CommandLog entity.
func (c *CommandLogClient) Create() *CommandLogCreate {
	mutation := newCommandLogMutation(c.config, OpCreate)
	return &CommandLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommandLog entities.
func (c *CommandLogClient) CreateBulk(builders ...*CommandLogCreate) *CommandLogCreateBulk {
	return &CommandLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommandLogClient) MapCreateBulk(slice any, setFunc func(*CommandLogCreate, int)) *CommandLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommandLogCreateBulk{err: fmt.Errorf("calling to CommandLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommandLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommandLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommandLog.
func (c *CommandLogClient) Update() *CommandLogUpdate {
	mutation := newCommandLogMutation(c.config, OpUpdate)
	return &CommandLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommandLogClient) UpdateOne(_m *CommandLog) *CommandLogUpdateOne {
	mutation := newCommandLogMutation(c.config, OpUpdateOne, withCommandLog(_m))
	return &CommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommandLogClient) UpdateOneID(id int) *CommandLogUpdateOne {
	mutation := newCommandLogMutation(c.config, OpUpdateOne, withCommandLogID(id))
	return &CommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommandLog.
func (c *CommandLogClient) Delete() *CommandLogDelete {
	mutation := newCommandLogMutation(c.config, OpDelete)
	return &CommandLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommandLogClient) DeleteOne(_m *CommandLog) *CommandLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommandLogClient) DeleteOneID(id int) *CommandLogDeleteOne {
	builder := c.Delete().Where(commandlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommandLogDeleteOne{builder}
}

// Query returns a query builder for CommandLog.
func (c *CommandLogClient) Query() *CommandLogQuery {
	return &CommandLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommandLog},
		inters: c.Interceptors(),
	}
}

// Get returns a CommandLog entity by its id.
func (c *CommandLogClient) Get(ctx context.Context, id int) (*CommandLog, error) {
	return c.Query().Where(commandlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommandLogClient) GetX(ctx context.Context, id int) *CommandLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommandLogClient) Hooks() []Hook {
	return c.hooks.CommandLog
}

// Interceptors returns the client interceptors.
func (c *CommandLogClient) Interceptors() []Interceptor {
	return c.inters.CommandLog
}

func (c *CommandLogClient) mutate(ctx context.Context, m *CommandLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommandLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommandLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommandLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommandLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommandLog mutation op: %q", m.Op())
	}
}

// OAuthTokenClient is a client for the OAuthToken schema.
type OAuthTokenClient struct {
	config
}

// NewOAuthTokenClient returns a client for the OAuthToken from the given config.
func NewOAuthTokenClient(c config) *OAuthTokenClient {
	return &OAuthTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oauthtoken.Hooks(f(g(h())))`.
func (c *OAuthTokenClient) Use(hooks ...Hook) {
	c.hooks.OAuthToken = append(c.hooks.OAuthToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oauthtoken.Intercept(f(g(h())))`.
func (c *OAuthTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.OAuthToken = append(c.inters.OAuthToken, interceptors...)
}

// Create returns a builder for creating a OAuthToken entity.
func (c *OAuthTokenClient) Create() *OAuthTokenCreate {
	mutation := newOAuthTokenMutation(c.config, OpCreate)
	return &OAuthTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OAuthToken entities.
func (c *OAuthTokenClient) CreateBulk(builders ...*OAuthTokenCreate) *OAuthTokenCreateBulk {
	return &OAuthTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OAuthTokenClient) MapCreateBulk(slice any, setFunc func(*OAuthTokenCreate, int)) *OAuthTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OAuthTokenCreateBulk{err: fmt.Errorf("calling to OAuthTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OAuthTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OAuthTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OAuthToken.
func (c *OAuthTokenClient) Update() *OAuthTokenUpdate {
	mutation := newOAuthTokenMutation(c.config, OpUpdate)
	return &OAuthTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OAuthTokenClient) UpdateOne(_m *OAuthToken) *OAuthTokenUpdateOne {
	mutation := newOAuthTokenMutation(c.config, OpUpdateOne, withOAuthToken(_m))
	return &OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OAuthTokenClient) UpdateOneID(id int) *OAuthTokenUpdateOne {
	mutation := newOAuthTokenMutation(c.config, OpUpdateOne, withOAuthTokenID(id))
	return &OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OAuthToken.
func (c *OAuthTokenClient) Delete() *OAuthTokenDelete {
	mutation := newOAuthTokenMutation(c.config, OpDelete)
	return &OAuthTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OAuthTokenClient) DeleteOne(_m *OAuthToken) *OAuthTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OAuthTokenClient) DeleteOneID(id int) *OAuthTokenDeleteOne {
	builder := c.Delete().Where(oauthtoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OAuthTokenDeleteOne{builder}
}

// Query returns a query builder for OAuthToken.
func (c *OAuthTokenClient) Query() *OAuthTokenQuery {
	return &OAuthTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOAuthToken},
		inters: c.Interceptors(),
	}
}

// Get returns a OAuthToken entity by its id.
func (c *OAuthTokenClient) Get(ctx context.Context, id int) (*OAuthToken, error) {
	return c.Query().Where(oauthtoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OAuthTokenClient) GetX(ctx context.Context, id int) *OAuthToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OAuthTokenClient) Hooks() []Hook {
	return c.hooks.OAuthToken
}

// Interceptors returns the client interceptors.
func (c *OAuthTokenClient) Interceptors() []Interceptor {
	return c.inters.OAuthToken
}

func (c *OAuthTokenClient) mutate(ctx context.Context, m *OAuthTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OAuthTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OAuthTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OAuthTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OAuthTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OAuthToken mutation op: %q", m.Op())
	}
}

// PendingActionClient is a client for the PendingAction schema.
type PendingActionClient struct {
	config
}

// NewPendingActionClient returns a client for the PendingAction from the given config.
func NewPendingActionClient(c config) *PendingActionClient {
	return &PendingActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingaction.Hooks(f(g(h())))`.
func (c *PendingActionClient) Use(hooks ...Hook) {
	c.hooks.PendingAction = append(c.hooks.PendingAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingaction.Intercept(f(g(h())))`.
func (c *PendingActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingAction = append(c.inters.PendingAction, interceptors...)
}

// Create returns a builder for creating a PendingAction entity.
func (c *PendingActionClient) Create() *PendingActionCreate {
	mutation := newPendingActionMutation(c.config, OpCreate)
	return &PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingAction entities.
func (c *PendingActionClient) CreateBulk(builders ...*PendingActionCreate) *PendingActionCreateBulk {
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingActionClient) MapCreateBulk(slice any, setFunc func(*PendingActionCreate, int)) *PendingActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingActionCreateBulk{err: fmt.Errorf("calling to PendingActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingAction.
func (c *PendingActionClient) Update() *PendingActionUpdate {
	mutation := newPendingActionMutation(c.config, OpUpdate)
	return &PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingActionClient) UpdateOne(_m *PendingAction) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingAction(_m))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingActionClient) UpdateOneID(id string) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingActionID(id))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingAction.
func (c *PendingActionClient) Delete() *PendingActionDelete {
	mutation := newPendingActionMutation(c.config, OpDelete)
	return &PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingActionClient) DeleteOne(_m *PendingAction) *PendingActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingActionClient) DeleteOneID(id string) *PendingActionDeleteOne {
	builder := c.Delete().Where(pendingaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingActionDeleteOne{builder}
}

// Query returns a query builder for PendingAction.
func (c *PendingActionClient) Query() *PendingActionQuery {
	return &PendingActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingAction},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingAction entity by its id.
func (c *PendingActionClient) Get(ctx context.Context, id string) (*PendingAction, error) {
	return c.Query().Where(pendingaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingActionClient) GetX(ctx context.Context, id string) *PendingAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingActionClient) Hooks() []Hook {
	return c.hooks.PendingAction
}

// Interceptors returns the client interceptors.
func (c *PendingActionClient) Interceptors() []Interceptor {
	return c.inters.PendingAction
}

func (c *PendingActionClient) mutate(ctx context.Context, m *PendingActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingAction mutation op: %q", m.Op())
	}
}

// PipelineLinkClient is a client for the PipelineLink schema.
type PipelineLinkClient struct {
	config
}

// NewPipelineLinkClient returns a client for the PipelineLink from the given config.
func NewPipelineLinkClient(c config) *PipelineLinkClient {
	return &PipelineLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinelink.Hooks(f(g(h())))`.
func (c *PipelineLinkClient) Use(hooks ...Hook) {
	c.hooks.PipelineLink = append(c.hooks.PipelineLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinelink.Intercept(f(g(h())))`.
func (c *PipelineLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineLink = append(c.inters.PipelineLink, interceptors...)
}

// Create returns a builder for creating a PipelineLink entity.
func (c *PipelineLinkClient) Create() *PipelineLinkCreate {
	mutation := newPipelineLinkMutation(c.config, OpCreate)
	return &PipelineLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineLink entities.
func (c *PipelineLinkClient) CreateBulk(builders ...*PipelineLinkCreate) *PipelineLinkCreateBulk {
	return &PipelineLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineLinkClient) MapCreateBulk(slice any, setFunc func(*PipelineLinkCreate, int)) *PipelineLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineLinkCreateBulk{err: fmt.Errorf("calling to PipelineLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineLink.
func (c *PipelineLinkClient) Update() *PipelineLinkUpdate {
	mutation := newPipelineLinkMutation(c.config, OpUpdate)
	return &PipelineLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineLinkClient) UpdateOne(_m *PipelineLink) *PipelineLinkUpdateOne {
	mutation := newPipelineLinkMutation(c.config, OpUpdateOne, withPipelineLink(_m))
	return &PipelineLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineLinkClient) UpdateOneID(id int) *PipelineLinkUpdateOne {
	mutation := newPipelineLinkMutation(c.config, OpUpdateOne, withPipelineLinkID(id))
	return &PipelineLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineLink.
func (c *PipelineLinkClient) Delete() *PipelineLinkDelete {
	mutation := newPipelineLinkMutation(c.config, OpDelete)
	return &PipelineLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineLinkClient) DeleteOne(_m *PipelineLink) *PipelineLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineLinkClient) DeleteOneID(id int) *PipelineLinkDeleteOne {
	builder := c.Delete().Where(pipelinelink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineLinkDeleteOne{builder}
}

// Query returns a query builder for PipelineLink.
func (c *PipelineLinkClient) Query() *PipelineLinkQuery {
	return &PipelineLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineLink},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineLink entity by its id.
func (c *PipelineLinkClient) Get(ctx context.Context, id int) (*PipelineLink, error) {
	return c.Query().Where(pipelinelink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineLinkClient) GetX(ctx context.Context, id int) *PipelineLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineLinkClient) Hooks() []Hook {
	return c.hooks.PipelineLink
}

// Interceptors returns the client interceptors.
func (c *PipelineLinkClient) Interceptors() []Interceptor {
	return c.inters.PipelineLink
}

func (c *PipelineLinkClient) mutate(ctx context.Context, m *PipelineLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineLink mutation op: %q", m.Op())
	}
}

// PipelineStepLogClient is a client for the PipelineStepLog schema.
type PipelineStepLogClient struct {
	config
}

// NewPipelineStepLogClient returns a client for the PipelineStepLog from the given config.
func NewPipelineStepLogClient(c config) *PipelineStepLogClient {
	return &PipelineStepLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinesteplog.Hooks(f(g(h())))`.
func (c *PipelineStepLogClient) Use(hooks ...Hook) {
	c.hooks.PipelineStepLog = append(c.hooks.PipelineStepLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinesteplog.Intercept(f(g(h())))`.
func (c *PipelineStepLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStepLog = append(c.inters.PipelineStepLog, interceptors...)
}

// Create returns a builder for creating a PipelineStepLog entity.
func (c *PipelineStepLogClient) Create() *PipelineStepLogCreate {
	mutation := newPipelineStepLogMutation(c.config, OpCreate)
	return &PipelineStepLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStepLog entities.
func (c *PipelineStepLogClient) CreateBulk(builders ...*PipelineStepLogCreate) *PipelineStepLogCreateBulk {
	return &PipelineStepLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStepLogClient) MapCreateBulk(slice any, setFunc func(*PipelineStepLogCreate, int)) *PipelineStepLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStepLogCreateBulk{err: fmt.Errorf("calling to PipelineStepLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStepLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStepLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStepLog.
func (c *PipelineStepLogClient) Update() *PipelineStepLogUpdate {
	mutation := newPipelineStepLogMutation(c.config, OpUpdate)
	return &PipelineStepLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStepLogClient) UpdateOne(_m *PipelineStepLog) *PipelineStepLogUpdateOne {
	mutation := newPipelineStepLogMutation(c.config, OpUpdateOne, withPipelineStepLog(_m))
	return &PipelineStepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStepLogClient) UpdateOneID(id int) *PipelineStepLogUpdateOne {
	mutation := newPipelineStepLogMutation(c.config, OpUpdateOne, withPipelineStepLogID(id))
	return &PipelineStepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStepLog.
func (c *PipelineStepLogClient) Delete() *PipelineStepLogDelete {
	mutation := newPipelineStepLogMutation(c.config, OpDelete)
	return &PipelineStepLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStepLogClient) DeleteOne(_m *PipelineStepLog) *PipelineStepLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStepLogClient) DeleteOneID(id int) *PipelineStepLogDeleteOne {
	builder := c.Delete().Where(pipelinesteplog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStepLogDeleteOne{builder}
}

// Query returns a query builder for PipelineStepLog.
func (c *PipelineStepLogClient) Query() *PipelineStepLogQuery {
	return &PipelineStepLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStepLog},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStepLog entity by its id.
func (c *PipelineStepLogClient) Get(ctx context.Context, id int) (*PipelineStepLog, error) {
	return c.Query().Where(pipelinesteplog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStepLogClient) GetX(ctx context.Context, id int) *PipelineStepLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineStepLogClient) Hooks() []Hook {
	return c.hooks.PipelineStepLog
}

// Interceptors returns the client interceptors.
func (c *PipelineStepLogClient) Interceptors() []Interceptor {
	return c.inters.PipelineStepLog
}

func (c *PipelineStepLogClient) mutate(ctx context.Context, m *PipelineStepLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStepLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStepLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStepLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStepLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStepLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CommandLog, OAuthToken, PendingAction, PipelineLink, PipelineStepLog []ent.Hook
	}
	inters struct {
		CommandLog, OAuthToken, PendingAction, PipelineLink,
		PipelineStepLog []ent.Interceptor
	}
)
