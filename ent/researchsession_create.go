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

// ResearchSessionCreate is the builder for creating a ResearchSession entity.
type ResearchSessionCreate struct {
	config
	mutation *ResearchSessionMutation
	hooks    []Hook
}

// SetPhase sets the "phase" field.
func (_c *ResearchSessionCreate) SetPhase(v researchsession.Phase) *ResearchSessionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillablePhase(v *researchsession.Phase) *ResearchSessionCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetStrategyName sets the "strategy_name" field.
func (_c *ResearchSessionCreate) SetStrategyName(v string) *ResearchSessionCreate {
	_c.mutation.SetStrategyName(v)
	return _c
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableStrategyName(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetStrategyName(*v)
	}
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *ResearchSessionCreate) SetOperationID(v string) *ResearchSessionCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableOperationID(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetOperationID(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ResearchSessionCreate) SetOutcome(v researchsession.Outcome) *ResearchSessionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableOutcome(v *researchsession.Outcome) *ResearchSessionCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ResearchSessionCreate) SetErrorMessage(v string) *ResearchSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableErrorMessage(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAssessmentText sets the "assessment_text" field.
func (_c *ResearchSessionCreate) SetAssessmentText(v string) *ResearchSessionCreate {
	_c.mutation.SetAssessmentText(v)
	return _c
}

// SetNillableAssessmentText sets the "assessment_text" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableAssessmentText(v *string) *ResearchSessionCreate {
	if v != nil {
		_c.SetAssessmentText(*v)
	}
	return _c
}

// SetAssessmentMetrics sets the "assessment_metrics" field.
func (_c *ResearchSessionCreate) SetAssessmentMetrics(v map[string]interface{}) *ResearchSessionCreate {
	_c.mutation.SetAssessmentMetrics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchSessionCreate) SetCreatedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableCreatedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResearchSessionCreate) SetUpdatedAt(v time.Time) *ResearchSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResearchSessionCreate) SetNillableUpdatedAt(v *time.Time) *ResearchSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddActionIDs adds the "actions" edge to the AgentAction entity by IDs.
func (_c *ResearchSessionCreate) AddActionIDs(ids ...int) *ResearchSessionCreate {
	_c.mutation.AddActionIDs(ids...)
	return _c
}

// AddActions adds the "actions" edges to the AgentAction entity.
func (_c *ResearchSessionCreate) AddActions(v ...*AgentAction) *ResearchSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActionIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_c *ResearchSessionCreate) Mutation() *ResearchSessionMutation {
	return _c.mutation
}

// Save creates the ResearchSession in the database.
func (_c *ResearchSessionCreate) Save(ctx context.Context) (*ResearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchSessionCreate) SaveX(ctx context.Context) *ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchSessionCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := researchsession.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := researchsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchSessionCreate) check() error {
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "ResearchSession.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := researchsession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.phase": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := researchsession.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ResearchSession.updated_at"`)}
	}
	return nil
}

func (_c *ResearchSessionCreate) sqlSave(ctx context.Context) (*ResearchSession, error) {
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

func (_c *ResearchSessionCreate) createSpec() (*ResearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchsession.Table, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(researchsession.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.StrategyName(); ok {
		_spec.SetField(researchsession.FieldStrategyName, field.TypeString, value)
		_node.StrategyName = &value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(researchsession.FieldOperationID, field.TypeString, value)
		_node.OperationID = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(researchsession.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.AssessmentText(); ok {
		_spec.SetField(researchsession.FieldAssessmentText, field.TypeString, value)
		_node.AssessmentText = &value
	}
	if value, ok := _c.mutation.AssessmentMetrics(); ok {
		_spec.SetField(researchsession.FieldAssessmentMetrics, field.TypeJSON, value)
		_node.AssessmentMetrics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.ActionsTable,
			Columns: []string{researchsession.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchSessionCreateBulk is the builder for creating many ResearchSession entities in bulk.
type ResearchSessionCreateBulk struct {
	config
	err      error
	builders []*ResearchSessionCreate
}

// Save creates the ResearchSession entities in the database.
func (_c *ResearchSessionCreateBulk) Save(ctx context.Context) ([]*ResearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchSessionMutation)
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
func (_c *ResearchSessionCreateBulk) SaveX(ctx context.Context) []*ResearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
