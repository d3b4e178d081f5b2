package queue

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/sessionscore"
	"github.com/tarsy-project/tarsy/pkg/agent"
	agentctx "github.com/tarsy-project/tarsy/pkg/agent/context"
	"github.com/tarsy-project/tarsy/pkg/agent/controller"
	"github.com/tarsy-project/tarsy/pkg/agent/prompt"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/hooks"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// ScoringExecutorConfig holds configuration for the scoring executor.
type ScoringExecutorConfig struct {
	Timeout time.Duration // Max duration for a scoring run (default: 10 minutes)
}

// ScoringExecutor runs asynchronous session quality evaluations. A scoring
// run replays a finished investigation to an LLM judge and persists the
// extracted score via the session_scores table. One run per session at a
// time; the DB enforces this with a partial unique index.
type ScoringExecutor struct {
	cfg           *config.Config
	llmClient     agent.LLMClient
	agentFactory  *agent.AgentFactory
	promptBuilder *prompt.PromptBuilder
	execConfig    ScoringExecutorConfig

	scoreService    *services.ScoreService
	timelineService *services.TimelineService
	hookPipeline    *hooks.Pipeline

	mu          sync.RWMutex
	activeExecs map[string]context.CancelFunc // sessionID → cancel
	wg          sync.WaitGroup
	stopped     bool
}

// NewScoringExecutor creates a new ScoringExecutor.
func NewScoringExecutor(cfg *config.Config, dbClient *ent.Client, llmClient agent.LLMClient, execConfig ScoringExecutorConfig) *ScoringExecutor {
	if execConfig.Timeout <= 0 {
		execConfig.Timeout = 10 * time.Minute
	}
	messageService := services.NewMessageService(dbClient)
	return &ScoringExecutor{
		cfg:             cfg,
		llmClient:       llmClient,
		agentFactory:    agent.NewAgentFactory(controller.NewFactory()),
		promptBuilder:   prompt.NewPromptBuilder(cfg.MCPServerRegistry),
		execConfig:      execConfig,
		scoreService:    services.NewScoreService(dbClient),
		timelineService: services.NewTimelineService(dbClient),
		hookPipeline:    hooks.NewPersistencePipeline(services.NewInteractionService(dbClient, messageService)),
		activeExecs:     make(map[string]context.CancelFunc),
	}
}

// Submit starts a scoring run for a finished session and returns the created
// score row. The evaluation itself runs asynchronously; poll the score via
// the score endpoints.
func (e *ScoringExecutor) Submit(ctx context.Context, session *ent.AlertSession, triggeredBy string) (*ent.SessionScore, error) {
	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		return nil, ErrShuttingDown
	}
	e.mu.RUnlock()

	chain, err := e.cfg.GetChain(session.ChainID)
	if err != nil {
		return nil, fmt.Errorf("chain %q not found: %w", session.ChainID, err)
	}
	if chain.Scoring == nil || !chain.Scoring.Enabled {
		return nil, ErrScoringDisabled
	}

	hash := prompt.GetCurrentPromptHash()
	score, err := e.scoreService.StartScoring(ctx, session.ID, triggeredBy, hex.EncodeToString(hash[:]))
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		_ = e.scoreService.FinishScoringWithStatus(context.Background(), score.ID, sessionscore.StatusCancelled, "executor shutting down")
		return nil, ErrShuttingDown
	}
	e.wg.Add(1)
	e.mu.RUnlock()

	// Detached context: scoring outlives the HTTP request that triggered it.
	go e.execute(context.Background(), session, chain, score)

	return score, nil
}

func (e *ScoringExecutor) execute(parentCtx context.Context, session *ent.AlertSession, chain *config.ChainConfig, score *ent.SessionScore) {
	defer e.wg.Done()

	logger := slog.With(
		"session_id", session.ID,
		"score_id", score.ID,
	)
	logger.Info("Scoring executor: starting evaluation")

	ctx, cancel := context.WithTimeout(parentCtx, e.execConfig.Timeout)
	defer cancel()

	e.registerExecution(session.ID, cancel)
	defer e.unregisterExecution(session.ID)

	resolvedConfig, err := agent.ResolveScoringConfig(e.cfg, chain, chain.Scoring)
	if err != nil {
		logger.Error("Failed to resolve scoring config", "error", err)
		e.finish(score.ID, sessionscore.StatusFailed, err.Error())
		return
	}

	// The judge sees the full investigation record: alert, timeline, analysis.
	scoringContext := e.buildScoringContext(ctx, session)

	execCtx := &agent.ExecutionContext{
		SessionID:     session.ID,
		AgentName:     resolvedConfig.AgentName,
		AgentIndex:    1,
		AlertData:     session.AlertData,
		AlertType:     session.AlertType,
		Config:        resolvedConfig,
		LLMClient:     e.llmClient,
		PromptBuilder: e.promptBuilder,
		Hooks:         e.hookPipeline,
	}

	agentInstance, err := e.agentFactory.CreateAgent(execCtx)
	if err != nil {
		logger.Error("Failed to create scoring agent", "error", err)
		e.finish(score.ID, sessionscore.StatusFailed, err.Error())
		return
	}

	result, execErr := agentInstance.Execute(ctx, execCtx, scoringContext)
	if execErr != nil {
		// ScoringAgent maps all controller errors into the result; a non-nil
		// error here is a programming error in the agent itself.
		logger.Error("Scoring agent returned error", "error", execErr)
		e.finish(score.ID, sessionscore.StatusFailed, execErr.Error())
		return
	}

	switch result.Status {
	case agent.ExecutionStatusCompleted:
		var parsed controller.ScoringResult
		if err := json.Unmarshal([]byte(result.FinalAnalysis), &parsed); err != nil {
			logger.Error("Failed to parse scoring result", "error", err)
			e.finish(score.ID, sessionscore.StatusFailed, fmt.Sprintf("unparseable scoring result: %v", err))
			return
		}
		if err := e.scoreService.CompleteScoring(context.Background(), score.ID, parsed.TotalScore, parsed.ScoreAnalysis, parsed.MissingToolsAnalysis); err != nil {
			logger.Error("Failed to persist session score", "error", err)
			return
		}
		logger.Info("Scoring complete", "total_score", parsed.TotalScore)
	case agent.ExecutionStatusTimedOut:
		e.finish(score.ID, sessionscore.StatusTimedOut, errText(result.Error))
	case agent.ExecutionStatusCancelled:
		e.finish(score.ID, sessionscore.StatusCancelled, errText(result.Error))
	default:
		e.finish(score.ID, sessionscore.StatusFailed, errText(result.Error))
	}
}

// buildScoringContext formats the session's timeline and final analysis for
// the judge. Fail-open: a timeline query failure still yields the analysis.
func (e *ScoringExecutor) buildScoringContext(ctx context.Context, session *ent.AlertSession) string {
	record := ""
	timelineEvents, err := e.timelineService.GetSessionTimeline(ctx, session.ID)
	if err != nil {
		slog.Warn("Failed to get session timeline for scoring",
			"session_id", session.ID, "error", err)
	} else {
		record = agentctx.FormatInvestigationContext(timelineEvents)
	}

	finalAnalysis := ""
	if session.FinalAnalysis != nil {
		finalAnalysis = *session.FinalAnalysis
	}

	return fmt.Sprintf("## Alert\n\nType: %s\n\n%s\n\n## Investigation Record\n\n%s\n\n## Final Analysis\n\n%s",
		session.AlertType, session.AlertData, record, finalAnalysis)
}

// CancelExecution cancels the active scoring run for a session.
// Returns true if a run was found and cancelled.
func (e *ScoringExecutor) CancelExecution(sessionID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if cancel, ok := e.activeExecs[sessionID]; ok {
		cancel()
		return true
	}
	return false
}

// Stop rejects new submissions, cancels active runs, and waits for them to drain.
func (e *ScoringExecutor) Stop() {
	e.mu.Lock()
	e.stopped = true
	for _, cancel := range e.activeExecs {
		cancel()
	}
	e.mu.Unlock()
	e.wg.Wait()
}

func (e *ScoringExecutor) registerExecution(sessionID string, cancel context.CancelFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.activeExecs[sessionID] = cancel
}

func (e *ScoringExecutor) unregisterExecution(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.activeExecs, sessionID)
}

func (e *ScoringExecutor) finish(scoreID string, status sessionscore.Status, errMsg string) {
	if err := e.scoreService.FinishScoringWithStatus(context.Background(), scoreID, status, errMsg); err != nil {
		slog.Error("Failed to finish session score", "score_id", scoreID, "error", err)
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
