// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentActionsColumns holds the columns for the "agent_actions" table.
	AgentActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_args", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
	}
	// AgentActionsTable holds the schema information for the "agent_actions" table.
	AgentActionsTable = &schema.Table{
		Name:       "agent_actions",
		Columns:    AgentActionsColumns,
		PrimaryKey: []*schema.Column{AgentActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_actions_research_sessions_actions",
				Columns:    []*schema.Column{AgentActionsColumns[7]},
				RefColumns: []*schema.Column{ResearchSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentaction_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[7]},
			},
			{
				Name:    "agentaction_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[7], AgentActionsColumns[6]},
			},
		},
	}
	// ResearchSessionsColumns holds the columns for the "research_sessions" table.
	ResearchSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"idle", "designing", "designed", "training", "backtesting", "assessing", "complete"}, Default: "designing"},
		{Name: "strategy_name", Type: field.TypeString, Nullable: true},
		{Name: "operation_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"success", "failed_design", "failed_training", "failed_training_gate", "failed_backtest", "failed_backtest_gate", "failed_assessment", "failed_timeout", "failed_interrupted", "cancelled"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "assessment_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assessment_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResearchSessionsTable holds the schema information for the "research_sessions" table.
	ResearchSessionsTable = &schema.Table{
		Name:       "research_sessions",
		Columns:    ResearchSessionsColumns,
		PrimaryKey: []*schema.Column{ResearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchsession_phase",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1]},
			},
			{
				Name:    "researchsession_phase_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1], ResearchSessionsColumns[8]},
			},
			{
				Name:    "researchsession_phase_active",
				Unique:  false,
				Columns: []*schema.Column{ResearchSessionsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "phase NOT IN ('idle', 'complete')",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentActionsTable,
		ResearchSessionsTable,
	}
)

func init() {
	AgentActionsTable.ForeignKeys[0].RefTable = ResearchSessionsTable
}
