// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "parent_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "partial", "failed", "paused", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "iteration_strategy", Type: field.TypeString},
		{Name: "llm_backend", Type: field.TypeString, Nullable: true},
		{Name: "llm_provider", Type: field.TypeString, Nullable: true},
		{Name: "task", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "conversation_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_alert_sessions_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[15]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_executions_stages_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[16]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_stage_id_agent_index",
				Unique:  true,
				Columns: []*schema.Column{AgentExecutionsColumns[16], AgentExecutionsColumns[3]},
			},
			{
				Name:    "agentexecution_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[0]},
			},
			{
				Name:    "agentexecution_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[15]},
			},
			{
				Name:    "agentexecution_parent_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1]},
			},
		},
	}
	// AlertSessionsColumns holds the columns for the "alert_sessions" table.
	AlertSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "alert_data", Type: field.TypeString, Size: 2147483647},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "alert_type", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "partial", "failed", "canceling", "cancelled", "paused"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "final_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "executive_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "executive_summary_error", Type: field.TypeString, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "runbook_url", Type: field.TypeString, Nullable: true},
		{Name: "mcp_selection", Type: field.TypeJSON, Nullable: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "current_stage_index", Type: field.TypeInt, Nullable: true},
		{Name: "current_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "slack_message_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertSessionsTable holds the schema information for the "alert_sessions" table.
	AlertSessionsTable = &schema.Table{
		Name:       "alert_sessions",
		Columns:    AlertSessionsColumns,
		PrimaryKey: []*schema.Column{AlertSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertsession_status",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4]},
			},
			{
				Name:    "alertsession_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[2]},
			},
			{
				Name:    "alertsession_alert_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[3]},
			},
			{
				Name:    "alertsession_chain_id",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[17]},
			},
			{
				Name:    "alertsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4], AlertSessionsColumns[5]},
			},
			{
				Name:    "alertsession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4], AlertSessionsColumns[6]},
			},
			{
				Name:    "alertsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4], AlertSessionsColumns[21]},
			},
			{
				Name:    "alertsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[23]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chats_alert_sessions_chat",
				Columns:    []*schema.Column{ChatsColumns[6]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chat_session_id",
				Unique:  true,
				Columns: []*schema.Column{ChatsColumns[6]},
			},
			{
				Name:    "chat_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[1]},
			},
			{
				Name:    "chat_pod_id_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[4], ChatsColumns[5]},
			},
		},
	}
	// ChatUserMessagesColumns holds the columns for the "chat_user_messages" table.
	ChatUserMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "author", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeString},
	}
	// ChatUserMessagesTable holds the schema information for the "chat_user_messages" table.
	ChatUserMessagesTable = &schema.Table{
		Name:       "chat_user_messages",
		Columns:    ChatUserMessagesColumns,
		PrimaryKey: []*schema.Column{ChatUserMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_user_messages_chats_user_messages",
				Columns:    []*schema.Column{ChatUserMessagesColumns[4]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatusermessage_chat_id",
				Unique:  false,
				Columns: []*schema.Column{ChatUserMessagesColumns[4]},
			},
			{
				Name:    "chatusermessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatUserMessagesColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_alert_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"iteration", "final_analysis", "executive_summary", "chat_response", "summarization"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "llm_request", Type: field.TypeJSON},
		{Name: "llm_response", Type: field.TypeJSON},
		{Name: "thinking_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "last_message_id", Type: field.TypeString, Nullable: true},
		{Name: "stage_id", Type: field.TypeString, Nullable: true},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_agent_executions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[13]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "llm_interactions_alert_sessions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[14]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "llm_interactions_messages_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[15]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "llm_interactions_stages_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[16]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[13], LlmInteractionsColumns[1]},
			},
			{
				Name:    "llminteraction_stage_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[16], LlmInteractionsColumns[1]},
			},
		},
	}
	// McpInteractionsColumns holds the columns for the "mcp_interactions" table.
	McpInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"tool_call", "tool_list"}},
		{Name: "server_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeJSON, Nullable: true},
		{Name: "available_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
	}
	// McpInteractionsTable holds the schema information for the "mcp_interactions" table.
	McpInteractionsTable = &schema.Table{
		Name:       "mcp_interactions",
		Columns:    McpInteractionsColumns,
		PrimaryKey: []*schema.Column{McpInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_interactions_agent_executions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[10]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "mcp_interactions_alert_sessions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[11]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "mcp_interactions_stages_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[12]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpinteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[10], McpInteractionsColumns[1]},
			},
			{
				Name:    "mcpinteraction_stage_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[12], McpInteractionsColumns[1]},
			},
			{
				Name:    "mcpinteraction_interaction_id",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[0]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_agent_executions_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "messages_alert_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "messages_stages_messages",
				Columns:    []*schema.Column{MessagesColumns[10]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_execution_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[1]},
			},
			{
				Name:    "message_stage_id_execution_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[10], MessagesColumns[8]},
			},
		},
	}
	// SessionScoresColumns holds the columns for the "session_scores" table.
	SessionScoresColumns = []*schema.Column{
		{Name: "score_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_hash", Type: field.TypeString, Nullable: true},
		{Name: "total_score", Type: field.TypeInt, Nullable: true},
		{Name: "score_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "missing_tools_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "score_triggered_by", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "timed_out", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionScoresTable holds the schema information for the "session_scores" table.
	SessionScoresTable = &schema.Table{
		Name:       "session_scores",
		Columns:    SessionScoresColumns,
		PrimaryKey: []*schema.Column{SessionScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_scores_alert_sessions_session_scores",
				Columns:    []*schema.Column{SessionScoresColumns[10]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionscore_prompt_hash",
				Unique:  false,
				Columns: []*schema.Column{SessionScoresColumns[1]},
			},
			{
				Name:    "sessionscore_total_score",
				Unique:  false,
				Columns: []*schema.Column{SessionScoresColumns[2]},
			},
			{
				Name:    "sessionscore_status",
				Unique:  false,
				Columns: []*schema.Column{SessionScoresColumns[6]},
			},
			{
				Name:    "sessionscore_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionScoresColumns[10], SessionScoresColumns[6]},
			},
			{
				Name:    "sessionscore_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionScoresColumns[6], SessionScoresColumns[7]},
			},
			{
				Name:    "sessionscore_session_id",
				Unique:  true,
				Columns: []*schema.Column{SessionScoresColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'in_progress')",
				},
			},
		},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "expected_agent_count", Type: field.TypeInt},
		{Name: "parallel_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"multi_agent", "replica"}},
		{Name: "success_policy", Type: field.TypeEnum, Nullable: true, Enums: []string{"all", "any"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "partial", "failed", "paused", "cancelled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "stage_output", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "chat_user_message_id", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_alert_sessions_stages",
				Columns:    []*schema.Column{StagesColumns[13]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "stages_chats_stages",
				Columns:    []*schema.Column{StagesColumns[14]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "stages_chat_user_messages_stage",
				Columns:    []*schema.Column{StagesColumns[15]},
				RefColumns: []*schema.Column{ChatUserMessagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stage_session_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StagesColumns[13], StagesColumns[2]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"llm_thinking", "llm_response", "llm_tool_call", "mcp_tool_summary", "error", "user_question", "executive_summary", "final_analysis", "code_execution", "google_search_result", "url_context_result", "task_assigned"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"streaming", "completed", "failed", "cancelled", "timed_out"}, Default: "streaming"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_execution_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "llm_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "mcp_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "stage_id", Type: field.TypeString, Nullable: true},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_agent_executions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[8]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "timeline_events_agent_executions_sub_agent_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[9]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "timeline_events_alert_sessions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[10]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "timeline_events_llm_interactions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[11]},
				RefColumns: []*schema.Column{LlmInteractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "timeline_events_mcp_interactions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[12]},
				RefColumns: []*schema.Column{McpInteractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "timeline_events_stages_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[13]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_session_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[10], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_stage_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[13], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_execution_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[8], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_parent_execution_id",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[9]},
			},
			{
				Name:    "timelineevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		AlertSessionsTable,
		ChatsTable,
		ChatUserMessagesTable,
		EventsTable,
		LlmInteractionsTable,
		McpInteractionsTable,
		MessagesTable,
		SessionScoresTable,
		StagesTable,
		TimelineEventsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	AgentExecutionsTable.ForeignKeys[1].RefTable = StagesTable
	ChatsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	ChatUserMessagesTable.ForeignKeys[0].RefTable = ChatsTable
	EventsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	LlmInteractionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	LlmInteractionsTable.ForeignKeys[1].RefTable = AlertSessionsTable
	LlmInteractionsTable.ForeignKeys[2].RefTable = MessagesTable
	LlmInteractionsTable.ForeignKeys[3].RefTable = StagesTable
	McpInteractionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	McpInteractionsTable.ForeignKeys[1].RefTable = AlertSessionsTable
	McpInteractionsTable.ForeignKeys[2].RefTable = StagesTable
	MessagesTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	MessagesTable.ForeignKeys[1].RefTable = AlertSessionsTable
	MessagesTable.ForeignKeys[2].RefTable = StagesTable
	SessionScoresTable.ForeignKeys[0].RefTable = AlertSessionsTable
	StagesTable.ForeignKeys[0].RefTable = AlertSessionsTable
	StagesTable.ForeignKeys[1].RefTable = ChatsTable
	StagesTable.ForeignKeys[2].RefTable = ChatUserMessagesTable
	TimelineEventsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	TimelineEventsTable.ForeignKeys[1].RefTable = AgentExecutionsTable
	TimelineEventsTable.ForeignKeys[2].RefTable = AlertSessionsTable
	TimelineEventsTable.ForeignKeys[3].RefTable = LlmInteractionsTable
	TimelineEventsTable.ForeignKeys[4].RefTable = McpInteractionsTable
	TimelineEventsTable.ForeignKeys[5].RefTable = StagesTable
}
