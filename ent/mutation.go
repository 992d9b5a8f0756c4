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
	"github.com/quantforge/strategist/ent/agentaction"
	"github.com/quantforge/strategist/ent/predicate"
	"github.com/quantforge/strategist/ent/researchsession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentAction     = "AgentAction"
	TypeResearchSession = "ResearchSession"
)

// AgentActionMutation represents an operation that mutates the AgentAction nodes in the graph.
type AgentActionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	tool_name        *string
	tool_args        *map[string]interface{}
	result           *map[string]interface{}
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *int
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*AgentAction, error)
	predicates       []predicate.AgentAction
}

var _ ent.Mutation = (*AgentActionMutation)(nil)

// agentactionOption allows management of the mutation configuration using functional options.
type agentactionOption func(*AgentActionMutation)

// newAgentActionMutation creates new mutation for the AgentAction entity.
func newAgentActionMutation(c config, op Op, opts ...agentactionOption) *AgentActionMutation {
	m := &AgentActionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentActionID sets the ID field of the mutation.
func withAgentActionID(id int) agentactionOption {
	return func(m *AgentActionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentAction
		)
		m.oldValue = func(ctx context.Context) (*AgentAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentAction sets the old AgentAction of the mutation.
func withAgentAction(node *AgentAction) agentactionOption {
	return func(m *AgentActionMutation) {
		m.oldValue = func(context.Context) (*AgentAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentActionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentActionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentActionMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentActionMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentActionMutation) ResetSessionID() {
	m.session = nil
}

// SetToolName sets the "tool_name" field.
func (m *AgentActionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *AgentActionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldToolName(ctx context.Context) (v string, err error) {
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

// ResetToolName resets all changes to the "tool_name" field.
func (m *AgentActionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolArgs sets the "tool_args" field.
func (m *AgentActionMutation) SetToolArgs(value map[string]interface{}) {
	m.tool_args = &value
}

// ToolArgs returns the value of the "tool_args" field in the mutation.
func (m *AgentActionMutation) ToolArgs() (r map[string]interface{}, exists bool) {
	v := m.tool_args
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArgs returns the old "tool_args" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldToolArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArgs: %w", err)
	}
	return oldValue.ToolArgs, nil
}

// ClearToolArgs clears the value of the "tool_args" field.
func (m *AgentActionMutation) ClearToolArgs() {
	m.tool_args = nil
	m.clearedFields[agentaction.FieldToolArgs] = struct{}{}
}

// ToolArgsCleared returns if the "tool_args" field was cleared in this mutation.
func (m *AgentActionMutation) ToolArgsCleared() bool {
	_, ok := m.clearedFields[agentaction.FieldToolArgs]
	return ok
}

// ResetToolArgs resets all changes to the "tool_args" field.
func (m *AgentActionMutation) ResetToolArgs() {
	m.tool_args = nil
	delete(m.clearedFields, agentaction.FieldToolArgs)
}

// SetResult sets the "result" field.
func (m *AgentActionMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *AgentActionMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AgentActionMutation) ClearResult() {
	m.result = nil
	m.clearedFields[agentaction.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AgentActionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[agentaction.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AgentActionMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, agentaction.FieldResult)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentActionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentActionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentActionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentActionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *AgentActionMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[agentaction.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *AgentActionMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[agentaction.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentActionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, agentaction.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentActionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentActionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentActionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentActionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *AgentActionMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[agentaction.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *AgentActionMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[agentaction.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentActionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, agentaction.FieldOutputTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentAction entity.
// If the AgentAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (m *AgentActionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentaction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ResearchSession entity was cleared.
func (m *AgentActionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentActionMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentActionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgentActionMutation builder.
func (m *AgentActionMutation) Where(ps ...predicate.AgentAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentAction).
func (m *AgentActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentActionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, agentaction.FieldSessionID)
	}
	if m.tool_name != nil {
		fields = append(fields, agentaction.FieldToolName)
	}
	if m.tool_args != nil {
		fields = append(fields, agentaction.FieldToolArgs)
	}
	if m.result != nil {
		fields = append(fields, agentaction.FieldResult)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentaction.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentaction.FieldOutputTokens)
	}
	if m.created_at != nil {
		fields = append(fields, agentaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentaction.FieldSessionID:
		return m.SessionID()
	case agentaction.FieldToolName:
		return m.ToolName()
	case agentaction.FieldToolArgs:
		return m.ToolArgs()
	case agentaction.FieldResult:
		return m.Result()
	case agentaction.FieldInputTokens:
		return m.InputTokens()
	case agentaction.FieldOutputTokens:
		return m.OutputTokens()
	case agentaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentaction.FieldToolName:
		return m.OldToolName(ctx)
	case agentaction.FieldToolArgs:
		return m.OldToolArgs(ctx)
	case agentaction.FieldResult:
		return m.OldResult(ctx)
	case agentaction.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentaction.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentaction.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentaction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case agentaction.FieldToolArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArgs(v)
		return nil
	case agentaction.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case agentaction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentaction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentActionMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, agentaction.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentaction.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentActionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentaction.FieldInputTokens:
		return m.AddedInputTokens()
	case agentaction.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentaction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentaction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AgentAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentaction.FieldToolArgs) {
		fields = append(fields, agentaction.FieldToolArgs)
	}
	if m.FieldCleared(agentaction.FieldResult) {
		fields = append(fields, agentaction.FieldResult)
	}
	if m.FieldCleared(agentaction.FieldInputTokens) {
		fields = append(fields, agentaction.FieldInputTokens)
	}
	if m.FieldCleared(agentaction.FieldOutputTokens) {
		fields = append(fields, agentaction.FieldOutputTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentActionMutation) ClearField(name string) error {
	switch name {
	case agentaction.FieldToolArgs:
		m.ClearToolArgs()
		return nil
	case agentaction.FieldResult:
		m.ClearResult()
		return nil
	case agentaction.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case agentaction.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	}
	return fmt.Errorf("unknown AgentAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentActionMutation) ResetField(name string) error {
	switch name {
	case agentaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentaction.FieldToolName:
		m.ResetToolName()
		return nil
	case agentaction.FieldToolArgs:
		m.ResetToolArgs()
		return nil
	case agentaction.FieldResult:
		m.ResetResult()
		return nil
	case agentaction.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentaction.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, agentaction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentActionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentaction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, agentaction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentActionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentaction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentActionMutation) ClearEdge(name string) error {
	switch name {
	case agentaction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentActionMutation) ResetEdge(name string) error {
	switch name {
	case agentaction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgentAction edge %s", name)
}

// ResearchSessionMutation represents an operation that mutates the ResearchSession nodes in the graph.
type ResearchSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	phase              *researchsession.Phase
	strategy_name      *string
	operation_id       *string
	outcome            *researchsession.Outcome
	error_message      *string
	assessment_text    *string
	assessment_metrics *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	actions            map[int]struct{}
	removedactions     map[int]struct{}
	clearedactions     bool
	done               bool
	oldValue           func(context.Context) (*ResearchSession, error)
	predicates         []predicate.ResearchSession
}

var _ ent.Mutation = (*ResearchSessionMutation)(nil)

// researchsessionOption allows management of the mutation configuration using functional options.
type researchsessionOption func(*ResearchSessionMutation)

// newResearchSessionMutation creates new mutation for the ResearchSession entity.
func newResearchSessionMutation(c config, op Op, opts ...researchsessionOption) *ResearchSessionMutation {
	m := &ResearchSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchSessionID sets the ID field of the mutation.
func withResearchSessionID(id int) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchSession
		)
		m.oldValue = func(ctx context.Context) (*ResearchSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchSession sets the old ResearchSession of the mutation.
func withResearchSession(node *ResearchSession) researchsessionOption {
	return func(m *ResearchSessionMutation) {
		m.oldValue = func(context.Context) (*ResearchSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPhase sets the "phase" field.
func (m *ResearchSessionMutation) SetPhase(r researchsession.Phase) {
	m.phase = &r
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ResearchSessionMutation) Phase() (r researchsession.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldPhase(ctx context.Context) (v researchsession.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *ResearchSessionMutation) ResetPhase() {
	m.phase = nil
}

// SetStrategyName sets the "strategy_name" field.
func (m *ResearchSessionMutation) SetStrategyName(s string) {
	m.strategy_name = &s
}

// StrategyName returns the value of the "strategy_name" field in the mutation.
func (m *ResearchSessionMutation) StrategyName() (r string, exists bool) {
	v := m.strategy_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyName returns the old "strategy_name" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldStrategyName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyName: %w", err)
	}
	return oldValue.StrategyName, nil
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (m *ResearchSessionMutation) ClearStrategyName() {
	m.strategy_name = nil
	m.clearedFields[researchsession.FieldStrategyName] = struct{}{}
}

// StrategyNameCleared returns if the "strategy_name" field was cleared in this mutation.
func (m *ResearchSessionMutation) StrategyNameCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldStrategyName]
	return ok
}

// ResetStrategyName resets all changes to the "strategy_name" field.
func (m *ResearchSessionMutation) ResetStrategyName() {
	m.strategy_name = nil
	delete(m.clearedFields, researchsession.FieldStrategyName)
}

// SetOperationID sets the "operation_id" field.
func (m *ResearchSessionMutation) SetOperationID(s string) {
	m.operation_id = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *ResearchSessionMutation) OperationID() (r string, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldOperationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ClearOperationID clears the value of the "operation_id" field.
func (m *ResearchSessionMutation) ClearOperationID() {
	m.operation_id = nil
	m.clearedFields[researchsession.FieldOperationID] = struct{}{}
}

// OperationIDCleared returns if the "operation_id" field was cleared in this mutation.
func (m *ResearchSessionMutation) OperationIDCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldOperationID]
	return ok
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *ResearchSessionMutation) ResetOperationID() {
	m.operation_id = nil
	delete(m.clearedFields, researchsession.FieldOperationID)
}

// SetOutcome sets the "outcome" field.
func (m *ResearchSessionMutation) SetOutcome(r researchsession.Outcome) {
	m.outcome = &r
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ResearchSessionMutation) Outcome() (r researchsession.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldOutcome(ctx context.Context) (v *researchsession.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *ResearchSessionMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[researchsession.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *ResearchSessionMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ResearchSessionMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, researchsession.FieldOutcome)
}

// SetErrorMessage sets the "error_message" field.
func (m *ResearchSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ResearchSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ResearchSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[researchsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ResearchSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ResearchSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, researchsession.FieldErrorMessage)
}

// SetAssessmentText sets the "assessment_text" field.
func (m *ResearchSessionMutation) SetAssessmentText(s string) {
	m.assessment_text = &s
}

// AssessmentText returns the value of the "assessment_text" field in the mutation.
func (m *ResearchSessionMutation) AssessmentText() (r string, exists bool) {
	v := m.assessment_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentText returns the old "assessment_text" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldAssessmentText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentText: %w", err)
	}
	return oldValue.AssessmentText, nil
}

// ClearAssessmentText clears the value of the "assessment_text" field.
func (m *ResearchSessionMutation) ClearAssessmentText() {
	m.assessment_text = nil
	m.clearedFields[researchsession.FieldAssessmentText] = struct{}{}
}

// AssessmentTextCleared returns if the "assessment_text" field was cleared in this mutation.
func (m *ResearchSessionMutation) AssessmentTextCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldAssessmentText]
	return ok
}

// ResetAssessmentText resets all changes to the "assessment_text" field.
func (m *ResearchSessionMutation) ResetAssessmentText() {
	m.assessment_text = nil
	delete(m.clearedFields, researchsession.FieldAssessmentText)
}

// SetAssessmentMetrics sets the "assessment_metrics" field.
func (m *ResearchSessionMutation) SetAssessmentMetrics(value map[string]interface{}) {
	m.assessment_metrics = &value
}

// AssessmentMetrics returns the value of the "assessment_metrics" field in the mutation.
func (m *ResearchSessionMutation) AssessmentMetrics() (r map[string]interface{}, exists bool) {
	v := m.assessment_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentMetrics returns the old "assessment_metrics" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldAssessmentMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentMetrics: %w", err)
	}
	return oldValue.AssessmentMetrics, nil
}

// ClearAssessmentMetrics clears the value of the "assessment_metrics" field.
func (m *ResearchSessionMutation) ClearAssessmentMetrics() {
	m.assessment_metrics = nil
	m.clearedFields[researchsession.FieldAssessmentMetrics] = struct{}{}
}

// AssessmentMetricsCleared returns if the "assessment_metrics" field was cleared in this mutation.
func (m *ResearchSessionMutation) AssessmentMetricsCleared() bool {
	_, ok := m.clearedFields[researchsession.FieldAssessmentMetrics]
	return ok
}

// ResetAssessmentMetrics resets all changes to the "assessment_metrics" field.
func (m *ResearchSessionMutation) ResetAssessmentMetrics() {
	m.assessment_metrics = nil
	delete(m.clearedFields, researchsession.FieldAssessmentMetrics)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearchSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResearchSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResearchSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ResearchSession entity.
// If the ResearchSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearchSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddActionIDs adds the "actions" edge to the AgentAction entity by ids.
func (m *ResearchSessionMutation) AddActionIDs(ids ...int) {
	if m.actions == nil {
		m.actions = make(map[int]struct{})
	}
	for i := range ids {
		m.actions[ids[i]] = struct{}{}
	}
}

// ClearActions clears the "actions" edge to the AgentAction entity.
func (m *ResearchSessionMutation) ClearActions() {
	m.clearedactions = true
}

// ActionsCleared reports if the "actions" edge to the AgentAction entity was cleared.
func (m *ResearchSessionMutation) ActionsCleared() bool {
	return m.clearedactions
}

// RemoveActionIDs removes the "actions" edge to the AgentAction entity by IDs.
func (m *ResearchSessionMutation) RemoveActionIDs(ids ...int) {
	if m.removedactions == nil {
		m.removedactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.actions, ids[i])
		m.removedactions[ids[i]] = struct{}{}
	}
}

// RemovedActions returns the removed IDs of the "actions" edge to the AgentAction entity.
func (m *ResearchSessionMutation) RemovedActionsIDs() (ids []int) {
	for id := range m.removedactions {
		ids = append(ids, id)
	}
	return
}

// ActionsIDs returns the "actions" edge IDs in the mutation.
func (m *ResearchSessionMutation) ActionsIDs() (ids []int) {
	for id := range m.actions {
		ids = append(ids, id)
	}
	return
}

// ResetActions resets all changes to the "actions" edge.
func (m *ResearchSessionMutation) ResetActions() {
	m.actions = nil
	m.clearedactions = false
	m.removedactions = nil
}

// Where appends a list predicates to the ResearchSessionMutation builder.
func (m *ResearchSessionMutation) Where(ps ...predicate.ResearchSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchSession).
func (m *ResearchSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.phase != nil {
		fields = append(fields, researchsession.FieldPhase)
	}
	if m.strategy_name != nil {
		fields = append(fields, researchsession.FieldStrategyName)
	}
	if m.operation_id != nil {
		fields = append(fields, researchsession.FieldOperationID)
	}
	if m.outcome != nil {
		fields = append(fields, researchsession.FieldOutcome)
	}
	if m.error_message != nil {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.assessment_text != nil {
		fields = append(fields, researchsession.FieldAssessmentText)
	}
	if m.assessment_metrics != nil {
		fields = append(fields, researchsession.FieldAssessmentMetrics)
	}
	if m.created_at != nil {
		fields = append(fields, researchsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, researchsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchsession.FieldPhase:
		return m.Phase()
	case researchsession.FieldStrategyName:
		return m.StrategyName()
	case researchsession.FieldOperationID:
		return m.OperationID()
	case researchsession.FieldOutcome:
		return m.Outcome()
	case researchsession.FieldErrorMessage:
		return m.ErrorMessage()
	case researchsession.FieldAssessmentText:
		return m.AssessmentText()
	case researchsession.FieldAssessmentMetrics:
		return m.AssessmentMetrics()
	case researchsession.FieldCreatedAt:
		return m.CreatedAt()
	case researchsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchsession.FieldPhase:
		return m.OldPhase(ctx)
	case researchsession.FieldStrategyName:
		return m.OldStrategyName(ctx)
	case researchsession.FieldOperationID:
		return m.OldOperationID(ctx)
	case researchsession.FieldOutcome:
		return m.OldOutcome(ctx)
	case researchsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case researchsession.FieldAssessmentText:
		return m.OldAssessmentText(ctx)
	case researchsession.FieldAssessmentMetrics:
		return m.OldAssessmentMetrics(ctx)
	case researchsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchsession.FieldPhase:
		v, ok := value.(researchsession.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case researchsession.FieldStrategyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyName(v)
		return nil
	case researchsession.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case researchsession.FieldOutcome:
		v, ok := value.(researchsession.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case researchsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case researchsession.FieldAssessmentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentText(v)
		return nil
	case researchsession.FieldAssessmentMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentMetrics(v)
		return nil
	case researchsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchsession.FieldStrategyName) {
		fields = append(fields, researchsession.FieldStrategyName)
	}
	if m.FieldCleared(researchsession.FieldOperationID) {
		fields = append(fields, researchsession.FieldOperationID)
	}
	if m.FieldCleared(researchsession.FieldOutcome) {
		fields = append(fields, researchsession.FieldOutcome)
	}
	if m.FieldCleared(researchsession.FieldErrorMessage) {
		fields = append(fields, researchsession.FieldErrorMessage)
	}
	if m.FieldCleared(researchsession.FieldAssessmentText) {
		fields = append(fields, researchsession.FieldAssessmentText)
	}
	if m.FieldCleared(researchsession.FieldAssessmentMetrics) {
		fields = append(fields, researchsession.FieldAssessmentMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ClearField(name string) error {
	switch name {
	case researchsession.FieldStrategyName:
		m.ClearStrategyName()
		return nil
	case researchsession.FieldOperationID:
		m.ClearOperationID()
		return nil
	case researchsession.FieldOutcome:
		m.ClearOutcome()
		return nil
	case researchsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case researchsession.FieldAssessmentText:
		m.ClearAssessmentText()
		return nil
	case researchsession.FieldAssessmentMetrics:
		m.ClearAssessmentMetrics()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchSessionMutation) ResetField(name string) error {
	switch name {
	case researchsession.FieldPhase:
		m.ResetPhase()
		return nil
	case researchsession.FieldStrategyName:
		m.ResetStrategyName()
		return nil
	case researchsession.FieldOperationID:
		m.ResetOperationID()
		return nil
	case researchsession.FieldOutcome:
		m.ResetOutcome()
		return nil
	case researchsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case researchsession.FieldAssessmentText:
		m.ResetAssessmentText()
		return nil
	case researchsession.FieldAssessmentMetrics:
		m.ResetAssessmentMetrics()
		return nil
	case researchsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.actions != nil {
		edges = append(edges, researchsession.EdgeActions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeActions:
		ids := make([]ent.Value, 0, len(m.actions))
		for id := range m.actions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedactions != nil {
		edges = append(edges, researchsession.EdgeActions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchsession.EdgeActions:
		ids := make([]ent.Value, 0, len(m.removedactions))
		for id := range m.removedactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedactions {
		edges = append(edges, researchsession.EdgeActions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case researchsession.EdgeActions:
		return m.clearedactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ResearchSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchSessionMutation) ResetEdge(name string) error {
	switch name {
	case researchsession.EdgeActions:
		m.ResetActions()
		return nil
	}
	return fmt.Errorf("unknown ResearchSession edge %s", name)
}
