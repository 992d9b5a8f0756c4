// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quantforge/strategist/ent/researchsession"
)

// ResearchSession is the model entity for the ResearchSession schema.
type ResearchSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase researchsession.Phase `json:"phase,omitempty"`
	// Set once during the designing->designed transition
	StrategyName *string `json:"strategy_name,omitempty"`
	// External job id while phase is training or backtesting
	OperationID *string `json:"operation_id,omitempty"`
	// Terminal outcome; set iff phase is complete
	Outcome *researchsession.Outcome `json:"outcome,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Final agent assessment (verdict narrative)
	AssessmentText *string `json:"assessment_text,omitempty"`
	// AssessmentMetrics holds the value of the "assessment_metrics" field.
	AssessmentMetrics map[string]interface{} `json:"assessment_metrics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchSessionQuery when eager-loading is set.
	Edges        ResearchSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchSessionEdges holds the relations/edges for other nodes in the graph.
type ResearchSessionEdges struct {
	// Actions holds the value of the actions edge.
	Actions []*AgentAction `json:"actions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActionsOrErr returns the Actions value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchSessionEdges) ActionsOrErr() ([]*AgentAction, error) {
	if e.loadedTypes[0] {
		return e.Actions, nil
	}
	return nil, &NotLoadedError{edge: "actions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldAssessmentMetrics:
			values[i] = new([]byte)
		case researchsession.FieldID:
			values[i] = new(sql.NullInt64)
		case researchsession.FieldPhase, researchsession.FieldStrategyName, researchsession.FieldOperationID, researchsession.FieldOutcome, researchsession.FieldErrorMessage, researchsession.FieldAssessmentText:
			values[i] = new(sql.NullString)
		case researchsession.FieldCreatedAt, researchsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchSession fields.
func (_m *ResearchSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case researchsession.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = researchsession.Phase(value.String)
			}
		case researchsession.FieldStrategyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_name", values[i])
			} else if value.Valid {
				_m.StrategyName = new(string)
				*_m.StrategyName = value.String
			}
		case researchsession.FieldOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value.Valid {
				_m.OperationID = new(string)
				*_m.OperationID = value.String
			}
		case researchsession.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = new(researchsession.Outcome)
				*_m.Outcome = researchsession.Outcome(value.String)
			}
		case researchsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchsession.FieldAssessmentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_text", values[i])
			} else if value.Valid {
				_m.AssessmentText = new(string)
				*_m.AssessmentText = value.String
			}
		case researchsession.FieldAssessmentMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssessmentMetrics); err != nil {
					return fmt.Errorf("unmarshal field assessment_metrics: %w", err)
				}
			}
		case researchsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchSession.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryActions queries the "actions" edge of the ResearchSession entity.
func (_m *ResearchSession) QueryActions() *AgentActionQuery {
	return NewResearchSessionClient(_m.config).QueryActions(_m)
}

// Update returns a builder for updating this ResearchSession.
// Note that you need to call ResearchSession.Unwrap() before calling this method if this ResearchSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchSession) Update() *ResearchSessionUpdateOne {
	return NewResearchSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchSession) Unwrap() *ResearchSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchSession) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	if v := _m.StrategyName; v != nil {
		builder.WriteString("strategy_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OperationID; v != nil {
		builder.WriteString("operation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Outcome; v != nil {
		builder.WriteString("outcome=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssessmentText; v != nil {
		builder.WriteString("assessment_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("assessment_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssessmentMetrics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ResearchSessions is a parsable slice of ResearchSession.
type ResearchSessions []*ResearchSession
