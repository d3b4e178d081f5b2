package models

import (
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// CreateStageRequest contains fields for creating a new stage
type CreateStageRequest struct {
	SessionID          string  `json:"session_id"`
	StageName          string  `json:"stage_name"`
	StageIndex         int     `json:"stage_index"`
	ExpectedAgentCount int     `json:"expected_agent_count"`
	ParallelType       *string `json:"parallel_type,omitempty"`  // "multi_agent" or "replica"
	SuccessPolicy      *string `json:"success_policy,omitempty"` // "all" or "any"
	ChatID             *string `json:"chat_id,omitempty"`
	ChatUserMessageID  *string `json:"chat_user_message_id,omitempty"`
}

// CreateAgentExecutionRequest contains fields for creating a new agent execution.
// ParentExecutionID and Task are set only for sub-agent executions dispatched
// by an orchestrator.
type CreateAgentExecutionRequest struct {
	StageID           string                   `json:"stage_id"`
	SessionID         string                   `json:"session_id"`
	AgentName         string                   `json:"agent_name"`
	AgentIndex        int                      `json:"agent_index"`
	IterationStrategy config.IterationStrategy `json:"iteration_strategy"`
	LLMBackend        config.LLMBackend        `json:"llm_backend,omitempty"`
	LLMProvider       string                   `json:"llm_provider,omitempty"`
	ParentExecutionID *string                  `json:"parent_execution_id,omitempty"`
	Task              *string                  `json:"task,omitempty"`
}

// StageResponse wraps a Stage with optional loaded edges
type StageResponse struct {
	*ent.Stage
}

// AgentExecutionResponse wraps an AgentExecution with optional loaded edges
type AgentExecutionResponse struct {
	*ent.AgentExecution
}
