package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchSession holds the schema definition for one research cycle.
type ResearchSession struct {
	ent.Schema
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("phase").
			Values("idle", "designing", "designed", "training", "backtesting", "assessing", "complete").
			Default("designing"),
		field.String("strategy_name").
			Optional().
			Nillable().
			Comment("Set once during the designing->designed transition"),
		field.String("operation_id").
			Optional().
			Nillable().
			Comment("External job id while phase is training or backtesting"),
		field.Enum("outcome").
			Values("success", "failed_design", "failed_training", "failed_training_gate",
				"failed_backtest", "failed_backtest_gate", "failed_assessment",
				"failed_timeout", "failed_interrupted", "cancelled").
			Optional().
			Nillable().
			Comment("Terminal outcome; set iff phase is complete"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("assessment_text").
			Optional().
			Nillable().
			Comment("Final agent assessment (verdict narrative)"),
		field.JSON("assessment_metrics", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ResearchSession.
func (ResearchSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("actions", AgentAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phase"),
		index.Fields("phase", "created_at"),

		// Partial index accelerating the active-session query.
		index.Fields("phase").
			StorageKey("researchsession_phase_active").
			Annotations(entsql.IndexWhere("phase NOT IN ('idle', 'complete')")),
	}
}
