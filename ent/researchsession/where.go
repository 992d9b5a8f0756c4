// Code generated by ent, DO NOT EDIT.

package researchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quantforge/strategist/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldID, id))
}

// StrategyName applies equality check predicate on the "strategy_name" field. It's identical to StrategyNameEQ.
func StrategyName(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStrategyName, v))
}

// OperationID applies equality check predicate on the "operation_id" field. It's identical to OperationIDEQ.
func OperationID(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOperationID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// AssessmentText applies equality check predicate on the "assessment_text" field. It's identical to AssessmentTextEQ.
func AssessmentText(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldAssessmentText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldPhase, vs...))
}

// StrategyNameEQ applies the EQ predicate on the "strategy_name" field.
func StrategyNameEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldStrategyName, v))
}

// StrategyNameNEQ applies the NEQ predicate on the "strategy_name" field.
func StrategyNameNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldStrategyName, v))
}

// StrategyNameIn applies the In predicate on the "strategy_name" field.
func StrategyNameIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldStrategyName, vs...))
}

// StrategyNameNotIn applies the NotIn predicate on the "strategy_name" field.
func StrategyNameNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldStrategyName, vs...))
}

// StrategyNameGT applies the GT predicate on the "strategy_name" field.
func StrategyNameGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldStrategyName, v))
}

// StrategyNameGTE applies the GTE predicate on the "strategy_name" field.
func StrategyNameGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldStrategyName, v))
}

// StrategyNameLT applies the LT predicate on the "strategy_name" field.
func StrategyNameLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldStrategyName, v))
}

// StrategyNameLTE applies the LTE predicate on the "strategy_name" field.
func StrategyNameLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldStrategyName, v))
}

// StrategyNameContains applies the Contains predicate on the "strategy_name" field.
func StrategyNameContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldStrategyName, v))
}

// StrategyNameHasPrefix applies the HasPrefix predicate on the "strategy_name" field.
func StrategyNameHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldStrategyName, v))
}

// StrategyNameHasSuffix applies the HasSuffix predicate on the "strategy_name" field.
func StrategyNameHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldStrategyName, v))
}

// StrategyNameIsNil applies the IsNil predicate on the "strategy_name" field.
func StrategyNameIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldStrategyName))
}

// StrategyNameNotNil applies the NotNil predicate on the "strategy_name" field.
func StrategyNameNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldStrategyName))
}

// StrategyNameEqualFold applies the EqualFold predicate on the "strategy_name" field.
func StrategyNameEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldStrategyName, v))
}

// StrategyNameContainsFold applies the ContainsFold predicate on the "strategy_name" field.
func StrategyNameContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldStrategyName, v))
}

// OperationIDEQ applies the EQ predicate on the "operation_id" field.
func OperationIDEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOperationID, v))
}

// OperationIDNEQ applies the NEQ predicate on the "operation_id" field.
func OperationIDNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldOperationID, v))
}

// OperationIDIn applies the In predicate on the "operation_id" field.
func OperationIDIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldOperationID, vs...))
}

// OperationIDNotIn applies the NotIn predicate on the "operation_id" field.
func OperationIDNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldOperationID, vs...))
}

// OperationIDGT applies the GT predicate on the "operation_id" field.
func OperationIDGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldOperationID, v))
}

// OperationIDGTE applies the GTE predicate on the "operation_id" field.
func OperationIDGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldOperationID, v))
}

// OperationIDLT applies the LT predicate on the "operation_id" field.
func OperationIDLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldOperationID, v))
}

// OperationIDLTE applies the LTE predicate on the "operation_id" field.
func OperationIDLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldOperationID, v))
}

// OperationIDContains applies the Contains predicate on the "operation_id" field.
func OperationIDContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldOperationID, v))
}

// OperationIDHasPrefix applies the HasPrefix predicate on the "operation_id" field.
func OperationIDHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldOperationID, v))
}

// OperationIDHasSuffix applies the HasSuffix predicate on the "operation_id" field.
func OperationIDHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldOperationID, v))
}

// OperationIDIsNil applies the IsNil predicate on the "operation_id" field.
func OperationIDIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldOperationID))
}

// OperationIDNotNil applies the NotNil predicate on the "operation_id" field.
func OperationIDNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldOperationID))
}

// OperationIDEqualFold applies the EqualFold predicate on the "operation_id" field.
func OperationIDEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldOperationID, v))
}

// OperationIDContainsFold applies the ContainsFold predicate on the "operation_id" field.
func OperationIDContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldOperationID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldOutcome))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AssessmentTextEQ applies the EQ predicate on the "assessment_text" field.
func AssessmentTextEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldAssessmentText, v))
}

// AssessmentTextNEQ applies the NEQ predicate on the "assessment_text" field.
func AssessmentTextNEQ(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldAssessmentText, v))
}

// AssessmentTextIn applies the In predicate on the "assessment_text" field.
func AssessmentTextIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldAssessmentText, vs...))
}

// AssessmentTextNotIn applies the NotIn predicate on the "assessment_text" field.
func AssessmentTextNotIn(vs ...string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldAssessmentText, vs...))
}

// AssessmentTextGT applies the GT predicate on the "assessment_text" field.
func AssessmentTextGT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldAssessmentText, v))
}

// AssessmentTextGTE applies the GTE predicate on the "assessment_text" field.
func AssessmentTextGTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldAssessmentText, v))
}

// AssessmentTextLT applies the LT predicate on the "assessment_text" field.
func AssessmentTextLT(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldAssessmentText, v))
}

// AssessmentTextLTE applies the LTE predicate on the "assessment_text" field.
func AssessmentTextLTE(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldAssessmentText, v))
}

// AssessmentTextContains applies the Contains predicate on the "assessment_text" field.
func AssessmentTextContains(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContains(FieldAssessmentText, v))
}

// AssessmentTextHasPrefix applies the HasPrefix predicate on the "assessment_text" field.
func AssessmentTextHasPrefix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasPrefix(FieldAssessmentText, v))
}

// AssessmentTextHasSuffix applies the HasSuffix predicate on the "assessment_text" field.
func AssessmentTextHasSuffix(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldHasSuffix(FieldAssessmentText, v))
}

// AssessmentTextIsNil applies the IsNil predicate on the "assessment_text" field.
func AssessmentTextIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldAssessmentText))
}

// AssessmentTextNotNil applies the NotNil predicate on the "assessment_text" field.
func AssessmentTextNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldAssessmentText))
}

// AssessmentTextEqualFold applies the EqualFold predicate on the "assessment_text" field.
func AssessmentTextEqualFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEqualFold(FieldAssessmentText, v))
}

// AssessmentTextContainsFold applies the ContainsFold predicate on the "assessment_text" field.
func AssessmentTextContainsFold(v string) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldContainsFold(FieldAssessmentText, v))
}

// AssessmentMetricsIsNil applies the IsNil predicate on the "assessment_metrics" field.
func AssessmentMetricsIsNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIsNull(FieldAssessmentMetrics))
}

// AssessmentMetricsNotNil applies the NotNil predicate on the "assessment_metrics" field.
func AssessmentMetricsNotNil() predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotNull(FieldAssessmentMetrics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ResearchSession {
	return predicate.ResearchSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasActions applies the HasEdge predicate on the "actions" edge.
func HasActions() predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActionsTable, ActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActionsWith applies the HasEdge predicate on the "actions" edge with a given conditions (other predicates).
func HasActionsWith(preds ...predicate.AgentAction) predicate.ResearchSession {
	return predicate.ResearchSession(func(s *sql.Selector) {
		step := newActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchSession) predicate.ResearchSession {
	return predicate.ResearchSession(sql.NotPredicates(p))
}
