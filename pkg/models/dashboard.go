package models

import "time"

// DashboardListParams contains parsed query parameters for the dashboard
// session list endpoint. Defaults are applied by the HTTP handler.
type DashboardListParams struct {
	Page      int
	PageSize  int
	SortBy    string // created_at, status, alert_type, author, duration
	SortOrder string // asc, desc

	Status    string // comma-separated status values
	AlertType string
	ChainID   string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// SessionListItem is a single row in the dashboard session list.
type SessionListItem struct {
	SessionID        string     `json:"session_id"`
	AlertType        string     `json:"alert_type"`
	ChainID          string     `json:"chain_id"`
	Status           string     `json:"status"`
	Author           *string    `json:"author,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	DurationMs       *int64     `json:"duration_ms,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	ExecutiveSummary *string    `json:"executive_summary,omitempty"`
}

// SessionListResult is the paginated dashboard session list response.
type SessionListResult struct {
	Sessions   []SessionListItem `json:"sessions"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ActiveSessionsResponse lists sessions that are not yet terminal.
type ActiveSessionsResponse struct {
	Sessions []SessionListItem `json:"sessions"`
	Count    int               `json:"count"`
}

// TokenUsage aggregates LLM token counts. All fields are null when no
// tokens were recorded (zero totals surface as null, not 0).
type TokenUsage struct {
	InputTokens  *int `json:"input_tokens"`
	OutputTokens *int `json:"output_tokens"`
	TotalTokens  *int `json:"total_tokens"`
}

// AgentExecutionDetail is a single agent execution in the session detail view.
type AgentExecutionDetail struct {
	ExecutionID       string     `json:"execution_id"`
	AgentName         string     `json:"agent_name"`
	AgentIndex        int        `json:"agent_index"`
	Status            string     `json:"status"`
	IterationStrategy string     `json:"iteration_strategy,omitempty"`
	LLMProvider       *string    `json:"llm_provider,omitempty"`
	ParentExecutionID *string    `json:"parent_execution_id,omitempty"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	PausedAt          *time.Time `json:"paused_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	DurationMs        *int       `json:"duration_ms,omitempty"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
}

// StageDetail is a single stage in the session detail view.
type StageDetail struct {
	StageID       string                 `json:"stage_id"`
	StageName     string                 `json:"stage_name"`
	StageIndex    int                    `json:"stage_index"`
	Status        string                 `json:"status"`
	ParallelType  *string                `json:"parallel_type,omitempty"`
	SuccessPolicy *string                `json:"success_policy,omitempty"`
	StartedAt     *time.Time             `json:"started_at,omitempty"`
	PausedAt      *time.Time             `json:"paused_at,omitempty"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	DurationMs    *int                   `json:"duration_ms,omitempty"`
	ErrorMessage  *string                `json:"error_message,omitempty"`
	Agents        []AgentExecutionDetail `json:"agents"`
}

// ChainDefinition is the live chain configuration attached to a session
// detail (no snapshot: looked up from the registry at read time).
type ChainDefinition struct {
	ChainID     string   `json:"chain_id"`
	Description string   `json:"description,omitempty"`
	StageNames  []string `json:"stage_names"`
	MCPServers  []string `json:"mcp_servers,omitempty"`
}

// SessionDetailResponse is the full dashboard session detail.
type SessionDetailResponse struct {
	SessionID         string           `json:"session_id"`
	AlertType         string           `json:"alert_type"`
	ChainID           string           `json:"chain_id"`
	Status            string           `json:"status"`
	Author            *string          `json:"author,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	StartedAt         *time.Time       `json:"started_at,omitempty"`
	PausedAt          *time.Time       `json:"paused_at,omitempty"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	DurationMs        *int64           `json:"duration_ms,omitempty"`
	AlertData         string           `json:"alert_data"`
	RunbookURL        *string          `json:"runbook_url,omitempty"`
	ErrorMessage      *string          `json:"error_message,omitempty"`
	FinalAnalysis     *string          `json:"final_analysis,omitempty"`
	ExecutiveSummary  *string          `json:"executive_summary,omitempty"`
	CurrentStageIndex *int             `json:"current_stage_index,omitempty"`
	CurrentStageID    *string          `json:"current_stage_id,omitempty"`
	ChatID            *string          `json:"chat_id,omitempty"`
	TokenUsage        TokenUsage       `json:"token_usage"`
	Chain             *ChainDefinition `json:"chain,omitempty"`
	Stages            []StageDetail    `json:"stages"`
}

// SessionSummaryResponse is the lightweight summary endpoint payload.
type SessionSummaryResponse struct {
	SessionID        string     `json:"session_id"`
	Status           string     `json:"status"`
	AlertType        string     `json:"alert_type"`
	ChainID          string     `json:"chain_id"`
	DurationMs       *int64     `json:"duration_ms,omitempty"`
	ExecutiveSummary *string    `json:"executive_summary,omitempty"`
	FinalAnalysis    *string    `json:"final_analysis,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	TokenUsage       TokenUsage `json:"token_usage"`
	StageCount       int        `json:"stage_count"`
	LLMCount         int        `json:"llm_interaction_count"`
	MCPCount         int        `json:"mcp_interaction_count"`
}

// SessionStatusResponse is the minimal status-poll payload.
type SessionStatusResponse struct {
	SessionID         string  `json:"session_id"`
	Status            string  `json:"status"`
	CurrentStageIndex *int    `json:"current_stage_index,omitempty"`
	CurrentStageID    *string `json:"current_stage_id,omitempty"`
}
