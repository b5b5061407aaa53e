// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/talentmatch/talentmatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/talentmatch/talentmatch/ent/answerevent"
	"github.com/talentmatch/talentmatch/ent/evaluationevent"
	"github.com/talentmatch/talentmatch/ent/interviewevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// EvaluationEvent is the client for interacting with the EvaluationEvent builders.
	EvaluationEvent *EvaluationEventClient
	// InterviewEvent is the client for interacting with the InterviewEvent builders.
	InterviewEvent *InterviewEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.EvaluationEvent = NewEvaluationEventClient(c.config)
	c.InterviewEvent = NewInterviewEventClient(c.config)
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
		AnswerEvent:     NewAnswerEventClient(cfg),
		EvaluationEvent: NewEvaluationEventClient(cfg),
		InterviewEvent:  NewInterviewEventClient(cfg),
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
		AnswerEvent:     NewAnswerEventClient(cfg),
		EvaluationEvent: NewEvaluationEventClient(cfg),
		InterviewEvent:  NewInterviewEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	c.AnswerEvent.Use(hooks...)
	c.EvaluationEvent.Use(hooks...)
	c.InterviewEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnswerEvent.Intercept(interceptors...)
	c.EvaluationEvent.Intercept(interceptors...)
	c.InterviewEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *EvaluationEventMutation:
		return c.EvaluationEvent.mutate(ctx, m)
	case *InterviewEventMutation:
		return c.InterviewEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// EvaluationEventClient is a client for the EvaluationEvent schema.
type EvaluationEventClient struct {
	config
}

// NewEvaluationEventClient returns a client for the EvaluationEvent from the given config.
func NewEvaluationEventClient(c config) *EvaluationEventClient {
	return &EvaluationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationevent.Hooks(f(g(h())))`.
func (c *EvaluationEventClient) Use(hooks ...Hook) {
	c.hooks.EvaluationEvent = append(c.hooks.EvaluationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationevent.Intercept(f(g(h())))`.
func (c *EvaluationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationEvent = append(c.inters.EvaluationEvent, interceptors...)
}

// Create returns a builder for creating a EvaluationEvent entity.
func (c *EvaluationEventClient) Create() *EvaluationEventCreate {
	mutation := newEvaluationEventMutation(c.config, OpCreate)
	return &EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationEvent entities.
func (c *EvaluationEventClient) CreateBulk(builders ...*EvaluationEventCreate) *EvaluationEventCreateBulk {
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationEventClient) MapCreateBulk(slice any, setFunc func(*EvaluationEventCreate, int)) *EvaluationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationEventCreateBulk{err: fmt.Errorf("calling to EvaluationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationEvent.
func (c *EvaluationEventClient) Update() *EvaluationEventUpdate {
	mutation := newEvaluationEventMutation(c.config, OpUpdate)
	return &EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationEventClient) UpdateOne(_m *EvaluationEvent) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEvent(_m))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationEventClient) UpdateOneID(id int) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEventID(id))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationEvent.
func (c *EvaluationEventClient) Delete() *EvaluationEventDelete {
	mutation := newEvaluationEventMutation(c.config, OpDelete)
	return &EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationEventClient) DeleteOne(_m *EvaluationEvent) *EvaluationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationEventClient) DeleteOneID(id int) *EvaluationEventDeleteOne {
	builder := c.Delete().Where(evaluationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationEventDeleteOne{builder}
}

// Query returns a query builder for EvaluationEvent.
func (c *EvaluationEventClient) Query() *EvaluationEventQuery {
	return &EvaluationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationEvent entity by its id.
func (c *EvaluationEventClient) Get(ctx context.Context, id int) (*EvaluationEvent, error) {
	return c.Query().Where(evaluationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationEventClient) GetX(ctx context.Context, id int) *EvaluationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationEventClient) Hooks() []Hook {
	return c.hooks.EvaluationEvent
}

// Interceptors returns the client interceptors.
func (c *EvaluationEventClient) Interceptors() []Interceptor {
	return c.inters.EvaluationEvent
}

func (c *EvaluationEventClient) mutate(ctx context.Context, m *EvaluationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationEvent mutation op: %q", m.Op())
	}
}

// InterviewEventClient is a client for the InterviewEvent schema.
type InterviewEventClient struct {
	config
}

// NewInterviewEventClient returns a client for the InterviewEvent from the given config.
func NewInterviewEventClient(c config) *InterviewEventClient {
	return &InterviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewevent.Hooks(f(g(h())))`.
func (c *InterviewEventClient) Use(hooks ...Hook) {
	c.hooks.InterviewEvent = append(c.hooks.InterviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewevent.Intercept(f(g(h())))`.
func (c *InterviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewEvent = append(c.inters.InterviewEvent, interceptors...)
}

// Create returns a builder for creating a InterviewEvent entity.
func (c *InterviewEventClient) Create() *InterviewEventCreate {
	mutation := newInterviewEventMutation(c.config, OpCreate)
	return &InterviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewEvent entities.
func (c *InterviewEventClient) CreateBulk(builders ...*InterviewEventCreate) *InterviewEventCreateBulk {
	return &InterviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewEventClient) MapCreateBulk(slice any, setFunc func(*InterviewEventCreate, int)) *InterviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewEventCreateBulk{err: fmt.Errorf("calling to InterviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewEvent.
func (c *InterviewEventClient) Update() *InterviewEventUpdate {
	mutation := newInterviewEventMutation(c.config, OpUpdate)
	return &InterviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewEventClient) UpdateOne(_m *InterviewEvent) *InterviewEventUpdateOne {
	mutation := newInterviewEventMutation(c.config, OpUpdateOne, withInterviewEvent(_m))
	return &InterviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewEventClient) UpdateOneID(id int) *InterviewEventUpdateOne {
	mutation := newInterviewEventMutation(c.config, OpUpdateOne, withInterviewEventID(id))
	return &InterviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewEvent.
func (c *InterviewEventClient) Delete() *InterviewEventDelete {
	mutation := newInterviewEventMutation(c.config, OpDelete)
	return &InterviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewEventClient) DeleteOne(_m *InterviewEvent) *InterviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewEventClient) DeleteOneID(id int) *InterviewEventDeleteOne {
	builder := c.Delete().Where(interviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewEventDeleteOne{builder}
}

// Query returns a query builder for InterviewEvent.
func (c *InterviewEventClient) Query() *InterviewEventQuery {
	return &InterviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewEvent entity by its id.
func (c *InterviewEventClient) Get(ctx context.Context, id int) (*InterviewEvent, error) {
	return c.Query().Where(interviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewEventClient) GetX(ctx context.Context, id int) *InterviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewEventClient) Hooks() []Hook {
	return c.hooks.InterviewEvent
}

// Interceptors returns the client interceptors.
func (c *InterviewEventClient) Interceptors() []Interceptor {
	return c.inters.InterviewEvent
}

func (c *InterviewEventClient) mutate(ctx context.Context, m *InterviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, EvaluationEvent, InterviewEvent []ent.Hook
	}
	inters struct {
		AnswerEvent, EvaluationEvent, InterviewEvent []ent.Interceptor
	}
)
