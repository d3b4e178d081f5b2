package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity (Layer 0b).
// Represents individual agent work within a stage.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Denormalized for performance"),
		field.String("parent_execution_id").
			Optional().
			Nillable().
			Immutable().
			Comment("For sub-agent executions: the dispatching orchestrator's execution ID"),

		// Agent Details
		field.String("agent_name").
			Comment("e.g., 'KubernetesAgent', 'ArgoCDAgent'"),
		field.Int("agent_index").
			Comment("1 for single, 1-N for parallel"),
		
		// Execution Status & Timing
		field.Enum("status").
			Values("pending", "active", "completed", "partial", "failed", "paused", "cancelled").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("paused_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Error details if failed"),
		
		// Agent Configuration
		field.String("iteration_strategy").
			Comment("e.g., 'react', 'native-thinking' (for observability)"),
		field.String("llm_backend").
			Optional().
			Comment("Resolved LLM backend, e.g., 'langchain', 'google-native'"),
		field.String("llm_provider").
			Optional().
			Comment("Resolved LLM provider name (for observability)"),
		field.Text("task").
			Optional().
			Nillable().
			Comment("Task assigned by the orchestrator (sub-agent executions only)"),

		// Pause/resume state
		field.JSON("conversation_snapshot", []map[string]interface{}{}).
			Optional().
			Comment("Conversation captured at the pause boundary; consumed on resume"),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", Stage.Type).
			Ref("agent_executions").
			Field("stage_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", AlertSession.Type).
			Ref("agent_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sub_agent_timeline_events", TimelineEvent.Type),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		// Unique constraint for agent ordering within stage
		index.Fields("stage_id", "agent_index").
			Unique(),
		// Primary lookups on id field (stored as execution_id)
		index.Fields("id"),
		// Session-wide queries
		index.Fields("session_id"),
		// Sub-agent lookups by parent orchestrator execution
		index.Fields("parent_execution_id"),
	}
}
