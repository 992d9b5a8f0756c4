// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quantforge/strategist/ent/agentaction"
	"github.com/quantforge/strategist/ent/researchsession"
)

// AgentActionCreate is the builder for creating a AgentAction entity.
type AgentActionCreate struct {
	config
	mutation *AgentActionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentActionCreate) SetSessionID(v int) *AgentActionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *AgentActionCreate) SetToolName(v string) *AgentActionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolArgs sets the "tool_args" field.
func (_c *AgentActionCreate) SetToolArgs(v map[string]interface{}) *AgentActionCreate {
	_c.mutation.SetToolArgs(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AgentActionCreate) SetResult(v map[string]interface{}) *AgentActionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AgentActionCreate) SetInputTokens(v int) *AgentActionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AgentActionCreate) SetNillableInputTokens(v *int) *AgentActionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AgentActionCreate) SetOutputTokens(v int) *AgentActionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AgentActionCreate) SetNillableOutputTokens(v *int) *AgentActionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentActionCreate) SetCreatedAt(v time.Time) *AgentActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentActionCreate) SetNillableCreatedAt(v *time.Time) *AgentActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_c *AgentActionCreate) SetSession(v *ResearchSession) *AgentActionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentActionMutation object of the builder.
func (_c *AgentActionCreate) Mutation() *AgentActionMutation {
	return _c.mutation
}

// Save creates the AgentAction in the database.
func (_c *AgentActionCreate) Save(ctx context.Context) (*AgentAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentActionCreate) SaveX(ctx context.Context) *AgentAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentActionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentActionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentAction.session_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "AgentAction.tool_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentAction.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentAction.session"`)}
	}
	return nil
}

func (_c *AgentActionCreate) sqlSave(ctx context.Context) (*AgentAction, error) {
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

func (_c *AgentActionCreate) createSpec() (*AgentAction, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentaction.Table, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(agentaction.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolArgs(); ok {
		_spec.SetField(agentaction.FieldToolArgs, field.TypeJSON, value)
		_node.ToolArgs = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(agentaction.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(agentaction.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(agentaction.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentActionCreateBulk is the builder for creating many AgentAction entities in bulk.
type AgentActionCreateBulk struct {
	config
	err      error
	builders []*AgentActionCreate
}

// Save creates the AgentAction entities in the database.
func (_c *AgentActionCreateBulk) Save(ctx context.Context) ([]*AgentAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentActionMutation)
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
func (_c *AgentActionCreateBulk) SaveX(ctx context.Context) []*AgentAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
