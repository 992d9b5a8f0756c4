// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantforge/strategist/ent/agentaction"
	"github.com/quantforge/strategist/ent/predicate"
	"github.com/quantforge/strategist/ent/researchsession"
)

// AgentActionUpdate is the builder for updating AgentAction entities.
type AgentActionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentActionMutation
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdate) Where(ps ...predicate.AgentAction) *AgentActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentActionUpdate) SetSessionID(v int) *AgentActionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableSessionID(v *int) *AgentActionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentActionUpdate) SetToolName(v string) *AgentActionUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableToolName(v *string) *AgentActionUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *AgentActionUpdate) SetToolArgs(v map[string]interface{}) *AgentActionUpdate {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *AgentActionUpdate) ClearToolArgs() *AgentActionUpdate {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentActionUpdate) SetResult(v map[string]interface{}) *AgentActionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentActionUpdate) ClearResult() *AgentActionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentActionUpdate) SetInputTokens(v int) *AgentActionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableInputTokens(v *int) *AgentActionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentActionUpdate) AddInputTokens(v int) *AgentActionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentActionUpdate) ClearInputTokens() *AgentActionUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentActionUpdate) SetOutputTokens(v int) *AgentActionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableOutputTokens(v *int) *AgentActionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentActionUpdate) AddOutputTokens(v int) *AgentActionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentActionUpdate) ClearOutputTokens() *AgentActionUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *AgentActionUpdate) SetSession(v *ResearchSession) *AgentActionUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdate) Mutation() *AgentActionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *AgentActionUpdate) ClearSession() *AgentActionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentActionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentAction.session"`)
	}
	return nil
}

func (_u *AgentActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentaction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(agentaction.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(agentaction.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentaction.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentaction.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentaction.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentaction.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentaction.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentaction.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentaction.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentaction.FieldOutputTokens, field.TypeInt)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentaction.SessionTable,
			Columns: []string{agentaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentaction.SessionTable,
			Columns: []string{agentaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentActionUpdateOne is the builder for updating a single AgentAction entity.
type AgentActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentActionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AgentActionUpdateOne) SetSessionID(v int) *AgentActionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableSessionID(v *int) *AgentActionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentActionUpdateOne) SetToolName(v string) *AgentActionUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableToolName(v *string) *AgentActionUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *AgentActionUpdateOne) SetToolArgs(v map[string]interface{}) *AgentActionUpdateOne {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *AgentActionUpdateOne) ClearToolArgs() *AgentActionUpdateOne {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentActionUpdateOne) SetResult(v map[string]interface{}) *AgentActionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentActionUpdateOne) ClearResult() *AgentActionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentActionUpdateOne) SetInputTokens(v int) *AgentActionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableInputTokens(v *int) *AgentActionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentActionUpdateOne) AddInputTokens(v int) *AgentActionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *AgentActionUpdateOne) ClearInputTokens() *AgentActionUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentActionUpdateOne) SetOutputTokens(v int) *AgentActionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableOutputTokens(v *int) *AgentActionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentActionUpdateOne) AddOutputTokens(v int) *AgentActionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *AgentActionUpdateOne) ClearOutputTokens() *AgentActionUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_u *AgentActionUpdateOne) SetSession(v *ResearchSession) *AgentActionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdateOne) Mutation() *AgentActionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ResearchSession entity.
func (_u *AgentActionUpdateOne) ClearSession() *AgentActionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdateOne) Where(ps ...predicate.AgentAction) *AgentActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentActionUpdateOne) Select(field string, fields ...string) *AgentActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentAction entity.
func (_u *AgentActionUpdateOne) Save(ctx context.Context) (*AgentAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdateOne) SaveX(ctx context.Context) *AgentAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentActionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentAction.session"`)
	}
	return nil
}

func (_u *AgentActionUpdateOne) sqlSave(ctx context.Context) (_node *AgentAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentaction.FieldID)
		for _, f := range fields {
			if !agentaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentaction.FieldID {
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
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentaction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(agentaction.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(agentaction.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentaction.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentaction.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentaction.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentaction.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(agentaction.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentaction.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentaction.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(agentaction.FieldOutputTokens, field.TypeInt)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentaction.SessionTable,
			Columns: []string{agentaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentaction.SessionTable,
			Columns: []string{agentaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
