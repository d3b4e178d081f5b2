package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// Dashboard-facing queries and lifecycle operations. These back the REST API;
// the worker-facing lifecycle methods live in session_service.go.

// ListSessionsForDashboard lists sessions with dashboard filters, sorting and
// page-based pagination. Unknown sort fields silently fall back to created_at.
func (s *SessionService) ListSessionsForDashboard(ctx context.Context, params models.DashboardListParams) (*models.SessionListResult, error) {
	query := s.client.AlertSession.Query().
		Where(alertsession.DeletedAtIsNil())

	if params.Status != "" {
		var statuses []alertsession.Status
		for _, st := range strings.Split(params.Status, ",") {
			statuses = append(statuses, alertsession.Status(st))
		}
		query = query.Where(alertsession.StatusIn(statuses...))
	}
	if params.AlertType != "" {
		query = query.Where(alertsession.AlertTypeEQ(params.AlertType))
	}
	if params.ChainID != "" {
		query = query.Where(alertsession.ChainIDEQ(params.ChainID))
	}
	if params.Search != "" {
		search := params.Search
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', alert_data) @@ plainto_tsquery($1)", search),
				sql.ExprP("to_tsvector('english', COALESCE(final_analysis, '')) @@ plainto_tsquery($2)", search),
			))
		})
	}
	if params.StartDate != nil {
		query = query.Where(alertsession.CreatedAtGTE(*params.StartDate))
	}
	if params.EndDate != nil {
		query = query.Where(alertsession.CreatedAtLT(*params.EndDate))
	}

	totalItems, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	query = applySessionSort(query, params.SortBy, params.SortOrder)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 25
	}

	sessions, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	items := make([]models.SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, toSessionListItem(session))
	}

	totalPages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		totalPages++
	}

	return &models.SessionListResult{
		Sessions: items,
		Pagination: models.PaginationMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: totalItems,
		},
	}, nil
}

// applySessionSort applies sorting to a session query. Unknown fields fall
// back to created_at descending.
func applySessionSort(query *ent.AlertSessionQuery, sortBy, sortOrder string) *ent.AlertSessionQuery {
	desc := sortOrder != "asc"

	order := func(field string) *ent.AlertSessionQuery {
		if desc {
			return query.Order(ent.Desc(field))
		}
		return query.Order(ent.Asc(field))
	}

	switch sortBy {
	case "status":
		return order(alertsession.FieldStatus)
	case "alert_type":
		return order(alertsession.FieldAlertType)
	case "author":
		return order(alertsession.FieldAuthor)
	case "duration":
		dir := "ASC"
		if desc {
			dir = "DESC"
		}
		return query.Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr("(completed_at - started_at) " + dir + " NULLS LAST"))
		})
	case "created_at":
		return order(alertsession.FieldCreatedAt)
	default:
		return query.Order(ent.Desc(alertsession.FieldCreatedAt))
	}
}

// GetActiveSessions returns all non-terminal sessions, newest first.
func (s *SessionService) GetActiveSessions(ctx context.Context) (*models.ActiveSessionsResponse, error) {
	sessions, err := s.client.AlertSession.Query().
		Where(
			alertsession.DeletedAtIsNil(),
			alertsession.StatusIn(
				alertsession.StatusPending,
				alertsession.StatusInProgress,
				alertsession.StatusCanceling,
				alertsession.StatusPaused,
			),
		).
		Order(ent.Desc(alertsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	items := make([]models.SessionListItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, toSessionListItem(session))
	}

	return &models.ActiveSessionsResponse{
		Sessions: items,
		Count:    len(items),
	}, nil
}

// GetSessionDetail returns the full dashboard view of a session: stage and
// agent execution breakdown, chain definition, and token aggregation.
func (s *SessionService) GetSessionDetail(ctx context.Context, sessionID string) (*models.SessionDetailResponse, error) {
	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		WithStages(func(q *ent.StageQuery) {
			q.WithAgentExecutions().Order(ent.Asc(stage.FieldStageIndex))
		}).
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	tokens, err := s.aggregateSessionTokens(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	detail := &models.SessionDetailResponse{
		SessionID:         session.ID,
		AlertType:         session.AlertType,
		ChainID:           session.ChainID,
		Status:            string(session.Status),
		Author:            session.Author,
		CreatedAt:         session.CreatedAt,
		StartedAt:         session.StartedAt,
		PausedAt:          session.PausedAt,
		CompletedAt:       session.CompletedAt,
		DurationMs:        sessionDurationMs(session),
		AlertData:         session.AlertData,
		RunbookURL:        session.RunbookURL,
		ErrorMessage:      session.ErrorMessage,
		FinalAnalysis:     session.FinalAnalysis,
		ExecutiveSummary:  session.ExecutiveSummary,
		CurrentStageIndex: session.CurrentStageIndex,
		CurrentStageID:    session.CurrentStageID,
		TokenUsage:        tokens,
		Chain:             s.chainDefinition(session.ChainID),
		Stages:            make([]models.StageDetail, 0, len(session.Edges.Stages)),
	}

	if chat := session.Edges.Chat; chat != nil {
		detail.ChatID = &chat.ID
	}

	for _, stg := range session.Edges.Stages {
		detail.Stages = append(detail.Stages, toStageDetail(stg))
	}

	return detail, nil
}

// GetSessionSummary returns a lightweight summary with token and interaction
// counts, suitable for list hovers and notifications.
func (s *SessionService) GetSessionSummary(ctx context.Context, sessionID string) (*models.SessionSummaryResponse, error) {
	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	tokens, err := s.aggregateSessionTokens(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stageCount, err := s.client.Stage.Query().
		Where(stage.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stages: %w", err)
	}
	llmCount, err := s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count llm interactions: %w", err)
	}
	mcpCount, err := s.client.MCPInteraction.Query().
		Where(mcpinteraction.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count mcp interactions: %w", err)
	}

	return &models.SessionSummaryResponse{
		SessionID:        session.ID,
		Status:           string(session.Status),
		AlertType:        session.AlertType,
		ChainID:          session.ChainID,
		DurationMs:       sessionDurationMs(session),
		ExecutiveSummary: session.ExecutiveSummary,
		FinalAnalysis:    session.FinalAnalysis,
		ErrorMessage:     session.ErrorMessage,
		TokenUsage:       tokens,
		StageCount:       stageCount,
		LLMCount:         llmCount,
		MCPCount:         mcpCount,
	}, nil
}

// GetSessionStatus returns the minimal status-poll payload.
func (s *SessionService) GetSessionStatus(ctx context.Context, sessionID string) (*models.SessionStatusResponse, error) {
	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &models.SessionStatusResponse{
		SessionID:         session.ID,
		Status:            string(session.Status),
		CurrentStageIndex: session.CurrentStageIndex,
		CurrentStageID:    session.CurrentStageID,
	}, nil
}

// CancelSession requests cancellation of a session.
//
// pending and paused sessions have no running loop to cooperate with, so they
// go straight to cancelled. in_progress transitions to canceling; the executor
// observes that at the next iteration boundary and finishes the job. Repeating
// the request while canceling is a no-op.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	switch session.Status {
	case alertsession.StatusPending, alertsession.StatusPaused:
		err = s.client.AlertSession.UpdateOneID(sessionID).
			SetStatus(alertsession.StatusCancelled).
			SetCompletedAt(time.Now()).
			Exec(writeCtx)
	case alertsession.StatusInProgress:
		err = s.client.AlertSession.UpdateOneID(sessionID).
			SetStatus(alertsession.StatusCanceling).
			SetLastInteractionAt(time.Now()).
			Exec(writeCtx)
	case alertsession.StatusCanceling:
		return nil
	default:
		return ErrNotCancellable
	}

	if err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}
	return nil
}

// PauseSession validates that a session can be paused. The transition itself
// is cooperative: the executor records paused state at the next iteration
// boundary after the worker pool delivers the pause signal.
func (s *SessionService) PauseSession(ctx context.Context, sessionID string) error {
	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.Status != alertsession.StatusInProgress {
		return ErrInvalidState
	}
	return nil
}

// ResumeSession re-enqueues a paused session. The worker pool claims it like
// any pending session; the executor detects the paused stage and resumes from
// the preserved conversation snapshots.
func (s *SessionService) ResumeSession(ctx context.Context, sessionID string) (*ent.AlertSession, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session, err := s.client.AlertSession.Query().
		Where(alertsession.IDEQ(sessionID), alertsession.DeletedAtIsNil()).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Status != alertsession.StatusPaused {
		return nil, ErrInvalidState
	}

	session, err = s.client.AlertSession.UpdateOneID(sessionID).
		SetStatus(alertsession.StatusPending).
		ClearPausedAt().
		ClearPodID().
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}

	return session, nil
}

// GetDistinctAlertTypes returns the distinct alert types seen across sessions.
func (s *SessionService) GetDistinctAlertTypes(ctx context.Context) ([]string, error) {
	values, err := s.client.AlertSession.Query().
		Where(alertsession.DeletedAtIsNil(), alertsession.AlertTypeNEQ("")).
		Unique(true).
		Select(alertsession.FieldAlertType).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert types: %w", err)
	}
	return values, nil
}

// GetDistinctChainIDs returns the distinct chain IDs seen across sessions.
func (s *SessionService) GetDistinctChainIDs(ctx context.Context) ([]string, error) {
	values, err := s.client.AlertSession.Query().
		Where(alertsession.DeletedAtIsNil()).
		Unique(true).
		Select(alertsession.FieldChainID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chain ids: %w", err)
	}
	return values, nil
}

// aggregateSessionTokens sums token counts across all LLM interactions of a
// session. Missing counts are treated as zero during summation; zero totals
// surface as null in the response.
func (s *SessionService) aggregateSessionTokens(ctx context.Context, sessionID string) (models.TokenUsage, error) {
	var rows []struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
		TotalTokens  int `json:"total_tokens"`
	}
	err := s.client.LLMInteraction.Query().
		Where(llminteraction.SessionIDEQ(sessionID)).
		Select(
			llminteraction.FieldInputTokens,
			llminteraction.FieldOutputTokens,
			llminteraction.FieldTotalTokens,
		).
		Scan(ctx, &rows)
	if err != nil {
		return models.TokenUsage{}, fmt.Errorf("failed to aggregate tokens: %w", err)
	}

	var input, output, total int
	for _, row := range rows {
		input += row.InputTokens
		output += row.OutputTokens
		total += row.TotalTokens
	}

	usage := models.TokenUsage{}
	if input > 0 {
		usage.InputTokens = &input
	}
	if output > 0 {
		usage.OutputTokens = &output
	}
	if total > 0 {
		usage.TotalTokens = &total
	}
	return usage, nil
}

func (s *SessionService) chainDefinition(chainID string) *models.ChainDefinition {
	if s.chainRegistry == nil {
		return nil
	}
	chain, err := s.chainRegistry.Get(chainID)
	if err != nil {
		return nil
	}

	def := &models.ChainDefinition{
		ChainID:     chainID,
		Description: chain.Description,
	}

	seen := make(map[string]bool)
	for _, stageCfg := range chain.Stages {
		def.StageNames = append(def.StageNames, stageCfg.Name)
		for _, agent := range stageCfg.Agents {
			for _, serverID := range agent.MCPServers {
				if seen[serverID] {
					continue
				}
				seen[serverID] = true
				if s.mcpRegistry != nil {
					if _, err := s.mcpRegistry.Get(serverID); err != nil {
						continue
					}
				}
				def.MCPServers = append(def.MCPServers, serverID)
			}
		}
	}
	return def
}

func toSessionListItem(session *ent.AlertSession) models.SessionListItem {
	return models.SessionListItem{
		SessionID:        session.ID,
		AlertType:        session.AlertType,
		ChainID:          session.ChainID,
		Status:           string(session.Status),
		Author:           session.Author,
		CreatedAt:        session.CreatedAt,
		StartedAt:        session.StartedAt,
		CompletedAt:      session.CompletedAt,
		DurationMs:       sessionDurationMs(session),
		ErrorMessage:     session.ErrorMessage,
		ExecutiveSummary: session.ExecutiveSummary,
	}
}

func toStageDetail(stg *ent.Stage) models.StageDetail {
	detail := models.StageDetail{
		StageID:      stg.ID,
		StageName:    stg.StageName,
		StageIndex:   stg.StageIndex,
		Status:       string(stg.Status),
		StartedAt:    stg.StartedAt,
		PausedAt:     stg.PausedAt,
		CompletedAt:  stg.CompletedAt,
		DurationMs:   stg.DurationMs,
		ErrorMessage: stg.ErrorMessage,
		Agents:       make([]models.AgentExecutionDetail, 0, len(stg.Edges.AgentExecutions)),
	}
	if stg.ParallelType != nil {
		pt := string(*stg.ParallelType)
		detail.ParallelType = &pt
	}
	if stg.SuccessPolicy != nil {
		sp := string(*stg.SuccessPolicy)
		detail.SuccessPolicy = &sp
	}

	for _, exec := range stg.Edges.AgentExecutions {
		item := models.AgentExecutionDetail{
			ExecutionID:       exec.ID,
			AgentName:         exec.AgentName,
			AgentIndex:        exec.AgentIndex,
			Status:            string(exec.Status),
			IterationStrategy: exec.IterationStrategy,
			ParentExecutionID: exec.ParentExecutionID,
			StartedAt:         exec.StartedAt,
			PausedAt:          exec.PausedAt,
			CompletedAt:       exec.CompletedAt,
			DurationMs:        exec.DurationMs,
			ErrorMessage:      exec.ErrorMessage,
		}
		if exec.LlmProvider != "" {
			provider := exec.LlmProvider
			item.LLMProvider = &provider
		}
		detail.Agents = append(detail.Agents, item)
	}
	return detail
}

func sessionDurationMs(session *ent.AlertSession) *int64 {
	if session.StartedAt == nil || session.CompletedAt == nil {
		return nil
	}
	ms := session.CompletedAt.Sub(*session.StartedAt).Milliseconds()
	return &ms
}
