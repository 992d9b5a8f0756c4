package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentAction holds the schema definition for the append-only tool-call
// audit log. Records are written by workers and never read by the reconciler.
type AgentAction struct {
	ent.Schema
}

// Fields of the AgentAction.
func (AgentAction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id"),
		field.String("tool_name"),
		field.JSON("tool_args", map[string]interface{}{}).
			Optional(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentAction.
func (AgentAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("actions").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentAction.
func (AgentAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "created_at"),
	}
}
