// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommandLogsColumns holds the columns for the "command_logs" table.
	CommandLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "command", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "final_status", Type: field.TypeString, Nullable: true},
		{Name: "plan_source", Type: field.TypeString, Nullable: true},
		{Name: "execution_mode", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "verification_reason", Type: field.TypeString, Nullable: true},
		{Name: "autonomous_fallback_reason", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CommandLogsTable holds the schema information for the "command_logs" table.
	CommandLogsTable = &schema.Table{
		Name:       "command_logs",
		Columns:    CommandLogsColumns,
		PrimaryKey: []*schema.Column{CommandLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commandlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommandLogsColumns[1], CommandLogsColumns[11]},
			},
			{
				Name:    "commandlog_command_status",
				Unique:  false,
				Columns: []*schema.Column{CommandLogsColumns[2], CommandLogsColumns[3]},
			},
			{
				Name:    "commandlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommandLogsColumns[11]},
			},
		},
	}
	// OauthTokensColumns holds the columns for the "oauth_tokens" table.
	OauthTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "access_token_encrypted", Type: field.TypeString},
		{Name: "refresh_token_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "scopes", Type: field.TypeJSON, Nullable: true},
		{Name: "workspace_id", Type: field.TypeString, Nullable: true},
		{Name: "workspace_name", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OauthTokensTable holds the schema information for the "oauth_tokens" table.
	OauthTokensTable = &schema.Table{
		Name:       "oauth_tokens",
		Columns:    OauthTokensColumns,
		PrimaryKey: []*schema.Column{OauthTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oauthtoken_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{OauthTokensColumns[1], OauthTokensColumns[2]},
			},
			{
				Name:    "oauthtoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{OauthTokensColumns[1]},
			},
		},
	}
	// PendingActionsColumns holds the columns for the "pending_actions" table.
	PendingActionsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "intent", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "plan_source", Type: field.TypeString, Nullable: true},
		{Name: "collected_slots", Type: field.TypeJSON, Nullable: true},
		{Name: "missing_slots", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// PendingActionsTable holds the schema information for the "pending_actions" table.
	PendingActionsTable = &schema.Table{
		Name:       "pending_actions",
		Columns:    PendingActionsColumns,
		PrimaryKey: []*schema.Column{PendingActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingaction_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PendingActionsColumns[9]},
			},
		},
	}
	// PipelineLinksColumns holds the columns for the "pipeline_links" table.
	PipelineLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "notion_page_id", Type: field.TypeString, Nullable: true},
		{Name: "linear_issue_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"succeeded", "failed", "manual_required"}},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "compensation_status", Type: field.TypeEnum, Enums: []string{"not_required", "completed", "failed"}, Default: "not_required"},
		{Name: "run_id", Type: field.TypeString},
		{Name: "pipeline_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelineLinksTable holds the schema information for the "pipeline_links" table.
	PipelineLinksTable = &schema.Table{
		Name:       "pipeline_links",
		Columns:    PipelineLinksColumns,
		PrimaryKey: []*schema.Column{PipelineLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinelink_user_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{PipelineLinksColumns[1], PipelineLinksColumns[2]},
			},
			{
				Name:    "pipelinelink_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineLinksColumns[1], PipelineLinksColumns[6]},
			},
			{
				Name:    "pipelinelink_run_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineLinksColumns[9]},
			},
		},
	}
	// PipelineStepLogsColumns holds the columns for the "pipeline_step_logs" table.
	PipelineStepLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
		{Name: "pipeline_id", Type: field.TypeString, Nullable: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "node_type", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"succeeded", "failed", "skipped", "compensated"}},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "item_index", Type: field.TypeInt, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PipelineStepLogsTable holds the schema information for the "pipeline_step_logs" table.
	PipelineStepLogsTable = &schema.Table{
		Name:       "pipeline_step_logs",
		Columns:    PipelineStepLogsColumns,
		PrimaryKey: []*schema.Column{PipelineStepLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinesteplog_request_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepLogsColumns[1]},
			},
			{
				Name:    "pipelinesteplog_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepLogsColumns[2], PipelineStepLogsColumns[13]},
			},
			{
				Name:    "pipelinesteplog_run_id_node_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepLogsColumns[2], PipelineStepLogsColumns[4]},
			},
			{
				Name:    "pipelinesteplog_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineStepLogsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommandLogsTable,
		OauthTokensTable,
		PendingActionsTable,
		PipelineLinksTable,
		PipelineStepLogsTable,
	}
)

func init() {
	OauthTokensTable.Annotation = &entsql.Annotation{
		Table: "oauth_tokens",
	}
}
