// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ndthanh/studycoach/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ndthanh/studycoach/ent/llmrequestevent"
	"github.com/ndthanh/studycoach/ent/masteryrecord"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
	"github.com/ndthanh/studycoach/ent/reviewcard"
	"github.com/ndthanh/studycoach/ent/reviewlog"
	"github.com/ndthanh/studycoach/ent/skill"
	"github.com/ndthanh/studycoach/ent/skilldependency"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// PredictionRecord is the client for interacting with the PredictionRecord builders.
	PredictionRecord *PredictionRecordClient
	// ReviewCard is the client for interacting with the ReviewCard builders.
	ReviewCard *ReviewCardClient
	// ReviewLog is the client for interacting with the ReviewLog builders.
	ReviewLog *ReviewLogClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
	// SkillDependency is the client for interacting with the SkillDependency builders.
	SkillDependency *SkillDependencyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.PredictionRecord = NewPredictionRecordClient(c.config)
	c.ReviewCard = NewReviewCardClient(c.config)
	c.ReviewLog = NewReviewLogClient(c.config)
	c.Skill = NewSkillClient(c.config)
	c.SkillDependency = NewSkillDependencyClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		PredictionRecord: NewPredictionRecordClient(cfg),
		ReviewCard:       NewReviewCardClient(cfg),
		ReviewLog:        NewReviewLogClient(cfg),
		Skill:            NewSkillClient(cfg),
		SkillDependency:  NewSkillDependencyClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		PredictionRecord: NewPredictionRecordClient(cfg),
		ReviewCard:       NewReviewCardClient(cfg),
		ReviewLog:        NewReviewLogClient(cfg),
		Skill:            NewSkillClient(cfg),
		SkillDependency:  NewSkillDependencyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.LLMRequestEvent, c.MasteryRecord, c.PredictionRecord, c.ReviewCard,
		c.ReviewLog, c.Skill, c.SkillDependency,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LLMRequestEvent, c.MasteryRecord, c.PredictionRecord, c.ReviewCard,
		c.ReviewLog, c.Skill, c.SkillDependency,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *PredictionRecordMutation:
		return c.PredictionRecord.mutate(ctx, m)
	case *ReviewCardMutation:
		return c.ReviewCard.mutate(ctx, m)
	case *ReviewLogMutation:
		return c.ReviewLog.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	case *SkillDependencyMutation:
		return c.SkillDependency.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// PredictionRecordClient is a client for the PredictionRecord schema.
type PredictionRecordClient struct {
	config
}

// NewPredictionRecordClient returns a client for the PredictionRecord from the given config.
func NewPredictionRecordClient(c config) *PredictionRecordClient {
	return &PredictionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `predictionrecord.Hooks(f(g(h())))`.
func (c *PredictionRecordClient) Use(hooks ...Hook) {
	c.hooks.PredictionRecord = append(c.hooks.PredictionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `predictionrecord.Intercept(f(g(h())))`.
func (c *PredictionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PredictionRecord = append(c.inters.PredictionRecord, interceptors...)
}

// Create returns a builder for creating a PredictionRecord entity.
func (c *PredictionRecordClient) Create() *PredictionRecordCreate {
	mutation := newPredictionRecordMutation(c.config, OpCreate)
	return &PredictionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PredictionRecord entities.
func (c *PredictionRecordClient) CreateBulk(builders ...*PredictionRecordCreate) *PredictionRecordCreateBulk {
	return &PredictionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictionRecordClient) MapCreateBulk(slice any, setFunc func(*PredictionRecordCreate, int)) *PredictionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictionRecordCreateBulk{err: fmt.Errorf("calling to PredictionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PredictionRecord.
func (c *PredictionRecordClient) Update() *PredictionRecordUpdate {
	mutation := newPredictionRecordMutation(c.config, OpUpdate)
	return &PredictionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictionRecordClient) UpdateOne(_m *PredictionRecord) *PredictionRecordUpdateOne {
	mutation := newPredictionRecordMutation(c.config, OpUpdateOne, withPredictionRecord(_m))
	return &PredictionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictionRecordClient) UpdateOneID(id int) *PredictionRecordUpdateOne {
	mutation := newPredictionRecordMutation(c.config, OpUpdateOne, withPredictionRecordID(id))
	return &PredictionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PredictionRecord.
func (c *PredictionRecordClient) Delete() *PredictionRecordDelete {
	mutation := newPredictionRecordMutation(c.config, OpDelete)
	return &PredictionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictionRecordClient) DeleteOne(_m *PredictionRecord) *PredictionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictionRecordClient) DeleteOneID(id int) *PredictionRecordDeleteOne {
	builder := c.Delete().Where(predictionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictionRecordDeleteOne{builder}
}

// Query returns a query builder for PredictionRecord.
func (c *PredictionRecordClient) Query() *PredictionRecordQuery {
	return &PredictionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePredictionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PredictionRecord entity by its id.
func (c *PredictionRecordClient) Get(ctx context.Context, id int) (*PredictionRecord, error) {
	return c.Query().Where(predictionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictionRecordClient) GetX(ctx context.Context, id int) *PredictionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PredictionRecordClient) Hooks() []Hook {
	return c.hooks.PredictionRecord
}

// Interceptors returns the client interceptors.
func (c *PredictionRecordClient) Interceptors() []Interceptor {
	return c.inters.PredictionRecord
}

func (c *PredictionRecordClient) mutate(ctx context.Context, m *PredictionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PredictionRecord mutation op: %q", m.Op())
	}
}

// ReviewCardClient is a client for the ReviewCard schema.
type ReviewCardClient struct {
	config
}

// NewReviewCardClient returns a client for the ReviewCard from the given config.
func NewReviewCardClient(c config) *ReviewCardClient {
	return &ReviewCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewcard.Hooks(f(g(h())))`.
func (c *ReviewCardClient) Use(hooks ...Hook) {
	c.hooks.ReviewCard = append(c.hooks.ReviewCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewcard.Intercept(f(g(h())))`.
func (c *ReviewCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewCard = append(c.inters.ReviewCard, interceptors...)
}

// Create returns a builder for creating a ReviewCard entity.
func (c *ReviewCardClient) Create() *ReviewCardCreate {
	mutation := newReviewCardMutation(c.config, OpCreate)
	return &ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewCard entities.
func (c *ReviewCardClient) CreateBulk(builders ...*ReviewCardCreate) *ReviewCardCreateBulk {
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewCardClient) MapCreateBulk(slice any, setFunc func(*ReviewCardCreate, int)) *ReviewCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCardCreateBulk{err: fmt.Errorf("calling to ReviewCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewCard.
func (c *ReviewCardClient) Update() *ReviewCardUpdate {
	mutation := newReviewCardMutation(c.config, OpUpdate)
	return &ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewCardClient) UpdateOne(_m *ReviewCard) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCard(_m))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewCardClient) UpdateOneID(id int) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCardID(id))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewCard.
func (c *ReviewCardClient) Delete() *ReviewCardDelete {
	mutation := newReviewCardMutation(c.config, OpDelete)
	return &ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewCardClient) DeleteOne(_m *ReviewCard) *ReviewCardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewCardClient) DeleteOneID(id int) *ReviewCardDeleteOne {
	builder := c.Delete().Where(reviewcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewCardDeleteOne{builder}
}

// Query returns a query builder for ReviewCard.
func (c *ReviewCardClient) Query() *ReviewCardQuery {
	return &ReviewCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewCard},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewCard entity by its id.
func (c *ReviewCardClient) Get(ctx context.Context, id int) (*ReviewCard, error) {
	return c.Query().Where(reviewcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewCardClient) GetX(ctx context.Context, id int) *ReviewCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewCardClient) Hooks() []Hook {
	return c.hooks.ReviewCard
}

// Interceptors returns the client interceptors.
func (c *ReviewCardClient) Interceptors() []Interceptor {
	return c.inters.ReviewCard
}

func (c *ReviewCardClient) mutate(ctx context.Context, m *ReviewCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewCard mutation op: %q", m.Op())
	}
}

// ReviewLogClient is a client for the ReviewLog schema.
type ReviewLogClient struct {
	config
}

// NewReviewLogClient returns a client for the ReviewLog from the given config.
func NewReviewLogClient(c config) *ReviewLogClient {
	return &ReviewLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewlog.Hooks(f(g(h())))`.
func (c *ReviewLogClient) Use(hooks ...Hook) {
	c.hooks.ReviewLog = append(c.hooks.ReviewLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewlog.Intercept(f(g(h())))`.
func (c *ReviewLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewLog = append(c.inters.ReviewLog, interceptors...)
}

// Create returns a builder for creating a ReviewLog entity.
func (c *ReviewLogClient) Create() *ReviewLogCreate {
	mutation := newReviewLogMutation(c.config, OpCreate)
	return &ReviewLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewLog entities.
func (c *ReviewLogClient) CreateBulk(builders ...*ReviewLogCreate) *ReviewLogCreateBulk {
	return &ReviewLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewLogClient) MapCreateBulk(slice any, setFunc func(*ReviewLogCreate, int)) *ReviewLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewLogCreateBulk{err: fmt.Errorf("calling to ReviewLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewLog.
func (c *ReviewLogClient) Update() *ReviewLogUpdate {
	mutation := newReviewLogMutation(c.config, OpUpdate)
	return &ReviewLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewLogClient) UpdateOne(_m *ReviewLog) *ReviewLogUpdateOne {
	mutation := newReviewLogMutation(c.config, OpUpdateOne, withReviewLog(_m))
	return &ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewLogClient) UpdateOneID(id int) *ReviewLogUpdateOne {
	mutation := newReviewLogMutation(c.config, OpUpdateOne, withReviewLogID(id))
	return &ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewLog.
func (c *ReviewLogClient) Delete() *ReviewLogDelete {
	mutation := newReviewLogMutation(c.config, OpDelete)
	return &ReviewLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewLogClient) DeleteOne(_m *ReviewLog) *ReviewLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewLogClient) DeleteOneID(id int) *ReviewLogDeleteOne {
	builder := c.Delete().Where(reviewlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewLogDeleteOne{builder}
}

// Query returns a query builder for ReviewLog.
func (c *ReviewLogClient) Query() *ReviewLogQuery {
	return &ReviewLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewLog entity by its id.
func (c *ReviewLogClient) Get(ctx context.Context, id int) (*ReviewLog, error) {
	return c.Query().Where(reviewlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewLogClient) GetX(ctx context.Context, id int) *ReviewLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewLogClient) Hooks() []Hook {
	return c.hooks.ReviewLog
}

// Interceptors returns the client interceptors.
func (c *ReviewLogClient) Interceptors() []Interceptor {
	return c.inters.ReviewLog
}

func (c *ReviewLogClient) mutate(ctx context.Context, m *ReviewLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewLog mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id int) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id int) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id int) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id int) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// SkillDependencyClient is a client for the SkillDependency schema.
type SkillDependencyClient struct {
	config
}

// NewSkillDependencyClient returns a client for the SkillDependency from the given config.
func NewSkillDependencyClient(c config) *SkillDependencyClient {
	return &SkillDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skilldependency.Hooks(f(g(h())))`.
func (c *SkillDependencyClient) Use(hooks ...Hook) {
	c.hooks.SkillDependency = append(c.hooks.SkillDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skilldependency.Intercept(f(g(h())))`.
func (c *SkillDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillDependency = append(c.inters.SkillDependency, interceptors...)
}

// Create returns a builder for creating a SkillDependency entity.
func (c *SkillDependencyClient) Create() *SkillDependencyCreate {
	mutation := newSkillDependencyMutation(c.config, OpCreate)
	return &SkillDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillDependency entities.
func (c *SkillDependencyClient) CreateBulk(builders ...*SkillDependencyCreate) *SkillDependencyCreateBulk {
	return &SkillDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillDependencyClient) MapCreateBulk(slice any, setFunc func(*SkillDependencyCreate, int)) *SkillDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillDependencyCreateBulk{err: fmt.Errorf("calling to SkillDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillDependency.
func (c *SkillDependencyClient) Update() *SkillDependencyUpdate {
	mutation := newSkillDependencyMutation(c.config, OpUpdate)
	return &SkillDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillDependencyClient) UpdateOne(_m *SkillDependency) *SkillDependencyUpdateOne {
	mutation := newSkillDependencyMutation(c.config, OpUpdateOne, withSkillDependency(_m))
	return &SkillDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillDependencyClient) UpdateOneID(id int) *SkillDependencyUpdateOne {
	mutation := newSkillDependencyMutation(c.config, OpUpdateOne, withSkillDependencyID(id))
	return &SkillDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillDependency.
func (c *SkillDependencyClient) Delete() *SkillDependencyDelete {
	mutation := newSkillDependencyMutation(c.config, OpDelete)
	return &SkillDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillDependencyClient) DeleteOne(_m *SkillDependency) *SkillDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillDependencyClient) DeleteOneID(id int) *SkillDependencyDeleteOne {
	builder := c.Delete().Where(skilldependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDependencyDeleteOne{builder}
}

// Query returns a query builder for SkillDependency.
func (c *SkillDependencyClient) Query() *SkillDependencyQuery {
	return &SkillDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillDependency entity by its id.
func (c *SkillDependencyClient) Get(ctx context.Context, id int) (*SkillDependency, error) {
	return c.Query().Where(skilldependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillDependencyClient) GetX(ctx context.Context, id int) *SkillDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillDependencyClient) Hooks() []Hook {
	return c.hooks.SkillDependency
}

// Interceptors returns the client interceptors.
func (c *SkillDependencyClient) Interceptors() []Interceptor {
	return c.inters.SkillDependency
}

func (c *SkillDependencyClient) mutate(ctx context.Context, m *SkillDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillDependency mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, MasteryRecord, PredictionRecord, ReviewCard, ReviewLog, Skill,
		SkillDependency []ent.Hook
	}
	inters struct {
		LLMRequestEvent, MasteryRecord, PredictionRecord, ReviewCard, ReviewLog, Skill,
		SkillDependency []ent.Interceptor
	}
)
