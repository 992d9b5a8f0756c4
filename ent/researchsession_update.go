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
	"github.com/quantforge/strategist/ent/agentaction"
	"github.com/quantforge/strategist/ent/predicate"
	"github.com/quantforge/strategist/ent/researchsession"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ResearchSessionUpdate) SetPhase(v researchsession.Phase) *ResearchSessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillablePhase(v *researchsession.Phase) *ResearchSessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStrategyName sets the "strategy_name" field.
func (_u *ResearchSessionUpdate) SetStrategyName(v string) *ResearchSessionUpdate {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableStrategyName(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (_u *ResearchSessionUpdate) ClearStrategyName() *ResearchSessionUpdate {
	_u.mutation.ClearStrategyName()
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ResearchSessionUpdate) SetOperationID(v string) *ResearchSessionUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableOperationID(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// ClearOperationID clears the value of the "operation_id" field.
func (_u *ResearchSessionUpdate) ClearOperationID() *ResearchSessionUpdate {
	_u.mutation.ClearOperationID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ResearchSessionUpdate) SetOutcome(v researchsession.Outcome) *ResearchSessionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableOutcome(v *researchsession.Outcome) *ResearchSessionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ResearchSessionUpdate) ClearOutcome() *ResearchSessionUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdate) SetErrorMessage(v string) *ResearchSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableErrorMessage(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdate) ClearErrorMessage() *ResearchSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssessmentText sets the "assessment_text" field.
func (_u *ResearchSessionUpdate) SetAssessmentText(v string) *ResearchSessionUpdate {
	_u.mutation.SetAssessmentText(v)
	return _u
}

// SetNillableAssessmentText sets the "assessment_text" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableAssessmentText(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetAssessmentText(*v)
	}
	return _u
}

// ClearAssessmentText clears the value of the "assessment_text" field.
func (_u *ResearchSessionUpdate) ClearAssessmentText() *ResearchSessionUpdate {
	_u.mutation.ClearAssessmentText()
	return _u
}

// SetAssessmentMetrics sets the "assessment_metrics" field.
func (_u *ResearchSessionUpdate) SetAssessmentMetrics(v map[string]interface{}) *ResearchSessionUpdate {
	_u.mutation.SetAssessmentMetrics(v)
	return _u
}

// ClearAssessmentMetrics clears the value of the "assessment_metrics" field.
func (_u *ResearchSessionUpdate) ClearAssessmentMetrics() *ResearchSessionUpdate {
	_u.mutation.ClearAssessmentMetrics()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdate) SetUpdatedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActionIDs adds the "actions" edge to the AgentAction entity by IDs.
func (_u *ResearchSessionUpdate) AddActionIDs(ids ...int) *ResearchSessionUpdate {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the AgentAction entity.
func (_u *ResearchSessionUpdate) AddActions(v ...*AgentAction) *ResearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the AgentAction entity.
func (_u *ResearchSessionUpdate) ClearActions() *ResearchSessionUpdate {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to AgentAction entities by IDs.
func (_u *ResearchSessionUpdate) RemoveActionIDs(ids ...int) *ResearchSessionUpdate {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to AgentAction entities.
func (_u *ResearchSessionUpdate) RemoveActions(v ...*AgentAction) *ResearchSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := researchsession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := researchsession.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(researchsession.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(researchsession.FieldStrategyName, field.TypeString, value)
	}
	if _u.mutation.StrategyNameCleared() {
		_spec.ClearField(researchsession.FieldStrategyName, field.TypeString)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(researchsession.FieldOperationID, field.TypeString, value)
	}
	if _u.mutation.OperationIDCleared() {
		_spec.ClearField(researchsession.FieldOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(researchsession.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(researchsession.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentText(); ok {
		_spec.SetField(researchsession.FieldAssessmentText, field.TypeString, value)
	}
	if _u.mutation.AssessmentTextCleared() {
		_spec.ClearField(researchsession.FieldAssessmentText, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentMetrics(); ok {
		_spec.SetField(researchsession.FieldAssessmentMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentMetricsCleared() {
		_spec.ClearField(researchsession.FieldAssessmentMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetPhase sets the "phase" field.
func (_u *ResearchSessionUpdateOne) SetPhase(v researchsession.Phase) *ResearchSessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillablePhase(v *researchsession.Phase) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStrategyName sets the "strategy_name" field.
func (_u *ResearchSessionUpdateOne) SetStrategyName(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetStrategyName(v)
	return _u
}

// SetNillableStrategyName sets the "strategy_name" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableStrategyName(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetStrategyName(*v)
	}
	return _u
}

// ClearStrategyName clears the value of the "strategy_name" field.
func (_u *ResearchSessionUpdateOne) ClearStrategyName() *ResearchSessionUpdateOne {
	_u.mutation.ClearStrategyName()
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ResearchSessionUpdateOne) SetOperationID(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableOperationID(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// ClearOperationID clears the value of the "operation_id" field.
func (_u *ResearchSessionUpdateOne) ClearOperationID() *ResearchSessionUpdateOne {
	_u.mutation.ClearOperationID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ResearchSessionUpdateOne) SetOutcome(v researchsession.Outcome) *ResearchSessionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableOutcome(v *researchsession.Outcome) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ResearchSessionUpdateOne) ClearOutcome() *ResearchSessionUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchSessionUpdateOne) SetErrorMessage(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableErrorMessage(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchSessionUpdateOne) ClearErrorMessage() *ResearchSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssessmentText sets the "assessment_text" field.
func (_u *ResearchSessionUpdateOne) SetAssessmentText(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetAssessmentText(v)
	return _u
}

// SetNillableAssessmentText sets the "assessment_text" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableAssessmentText(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetAssessmentText(*v)
	}
	return _u
}

// ClearAssessmentText clears the value of the "assessment_text" field.
func (_u *ResearchSessionUpdateOne) ClearAssessmentText() *ResearchSessionUpdateOne {
	_u.mutation.ClearAssessmentText()
	return _u
}

// SetAssessmentMetrics sets the "assessment_metrics" field.
func (_u *ResearchSessionUpdateOne) SetAssessmentMetrics(v map[string]interface{}) *ResearchSessionUpdateOne {
	_u.mutation.SetAssessmentMetrics(v)
	return _u
}

// ClearAssessmentMetrics clears the value of the "assessment_metrics" field.
func (_u *ResearchSessionUpdateOne) ClearAssessmentMetrics() *ResearchSessionUpdateOne {
	_u.mutation.ClearAssessmentMetrics()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdateOne) SetUpdatedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActionIDs adds the "actions" edge to the AgentAction entity by IDs.
func (_u *ResearchSessionUpdateOne) AddActionIDs(ids ...int) *ResearchSessionUpdateOne {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the AgentAction entity.
func (_u *ResearchSessionUpdateOne) AddActions(v ...*AgentAction) *ResearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the AgentAction entity.
func (_u *ResearchSessionUpdateOne) ClearActions() *ResearchSessionUpdateOne {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to AgentAction entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveActionIDs(ids ...int) *ResearchSessionUpdateOne {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to AgentAction entities.
func (_u *ResearchSessionUpdateOne) RemoveActions(v ...*AgentAction) *ResearchSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := researchsession.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := researchsession.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(researchsession.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategyName(); ok {
		_spec.SetField(researchsession.FieldStrategyName, field.TypeString, value)
	}
	if _u.mutation.StrategyNameCleared() {
		_spec.ClearField(researchsession.FieldStrategyName, field.TypeString)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(researchsession.FieldOperationID, field.TypeString, value)
	}
	if _u.mutation.OperationIDCleared() {
		_spec.ClearField(researchsession.FieldOperationID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(researchsession.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(researchsession.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentText(); ok {
		_spec.SetField(researchsession.FieldAssessmentText, field.TypeString, value)
	}
	if _u.mutation.AssessmentTextCleared() {
		_spec.ClearField(researchsession.FieldAssessmentText, field.TypeString)
	}
	if value, ok := _u.mutation.AssessmentMetrics(); ok {
		_spec.SetField(researchsession.FieldAssessmentMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentMetricsCleared() {
		_spec.ClearField(researchsession.FieldAssessmentMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
