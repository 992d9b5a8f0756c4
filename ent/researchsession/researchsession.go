// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchsession type in the database.
	Label = "research_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStrategyName holds the string denoting the strategy_name field in the database.
	FieldStrategyName = "strategy_name"
	// FieldOperationID holds the string denoting the operation_id field in the database.
	FieldOperationID = "operation_id"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAssessmentText holds the string denoting the assessment_text field in the database.
	FieldAssessmentText = "assessment_text"
	// FieldAssessmentMetrics holds the string denoting the assessment_metrics field in the database.
	FieldAssessmentMetrics = "assessment_metrics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeActions holds the string denoting the actions edge name in mutations.
	EdgeActions = "actions"
	// Table holds the table name of the researchsession in the database.
	Table = "research_sessions"
	// ActionsTable is the table that holds the actions relation/edge.
	ActionsTable = "agent_actions"
	// ActionsInverseTable is the table name for the AgentAction entity.
	// It exists in this package in order to avoid circular dependency with the "agentaction" package.
	ActionsInverseTable = "agent_actions"
	// ActionsColumn is the table column denoting the actions relation/edge.
	ActionsColumn = "session_id"
)

// Columns holds all SQL columns for researchsession fields.
var Columns = []string{
	FieldID,
	FieldPhase,
	FieldStrategyName,
	FieldOperationID,
	FieldOutcome,
	FieldErrorMessage,
	FieldAssessmentText,
	FieldAssessmentMetrics,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseDesigning is the default value of the Phase enum.
const DefaultPhase = PhaseDesigning

// Phase values.
const (
	PhaseIdle        Phase = "idle"
	PhaseDesigning   Phase = "designing"
	PhaseDesigned    Phase = "designed"
	PhaseTraining    Phase = "training"
	PhaseBacktesting Phase = "backtesting"
	PhaseAssessing   Phase = "assessing"
	PhaseComplete    Phase = "complete"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseIdle, PhaseDesigning, PhaseDesigned, PhaseTraining, PhaseBacktesting, PhaseAssessing, PhaseComplete:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for phase field: %q", ph)
	}
}

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeSuccess            Outcome = "success"
	OutcomeFailedDesign       Outcome = "failed_design"
	OutcomeFailedTraining     Outcome = "failed_training"
	OutcomeFailedTrainingGate Outcome = "failed_training_gate"
	OutcomeFailedBacktest     Outcome = "failed_backtest"
	OutcomeFailedBacktestGate Outcome = "failed_backtest_gate"
	OutcomeFailedAssessment   Outcome = "failed_assessment"
	OutcomeFailedTimeout      Outcome = "failed_timeout"
	OutcomeFailedInterrupted  Outcome = "failed_interrupted"
	OutcomeCancelled          Outcome = "cancelled"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeSuccess, OutcomeFailedDesign, OutcomeFailedTraining, OutcomeFailedTrainingGate, OutcomeFailedBacktest, OutcomeFailedBacktestGate, OutcomeFailedAssessment, OutcomeFailedTimeout, OutcomeFailedInterrupted, OutcomeCancelled:
		return nil
	default:
		return fmt.Errorf("researchsession: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the ResearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStrategyName orders the results by the strategy_name field.
func ByStrategyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyName, opts...).ToFunc()
}

// ByOperationID orders the results by the operation_id field.
func ByOperationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationID, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAssessmentText orders the results by the assessment_text field.
func ByAssessmentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByActionsCount orders the results by actions count.
func ByActionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActionsStep(), opts...)
	}
}

// ByActions orders the results by actions terms.
func ByActions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newActionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActionsTable, ActionsColumn),
	)
}
