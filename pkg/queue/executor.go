package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/agent/controller"
	"github.com/tarsy-project/tarsy/pkg/agent/prompt"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/hooks"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
	"sync"
)

// RealSessionExecutor implements SessionExecutor using the agent framework.
type RealSessionExecutor struct {
	cfg            *config.Config
	dbClient       *ent.Client
	llmClient      agent.LLMClient
	eventPublisher agent.EventPublisher
	agentFactory   *agent.AgentFactory
	promptBuilder  *prompt.PromptBuilder
	mcpFactory     *mcp.ClientFactory
}

// NewRealSessionExecutor creates a new session executor.
// eventPublisher may be nil (streaming disabled).
// mcpFactory may be nil (MCP disabled — uses stub tool executor).
func NewRealSessionExecutor(cfg *config.Config, dbClient *ent.Client, llmClient agent.LLMClient, eventPublisher agent.EventPublisher, mcpFactory *mcp.ClientFactory) *RealSessionExecutor {
	controllerFactory := controller.NewFactory()
	return &RealSessionExecutor{
		cfg:            cfg,
		dbClient:       dbClient,
		llmClient:      llmClient,
		eventPublisher: eventPublisher,
		agentFactory:   agent.NewAgentFactory(controllerFactory),
		promptBuilder:  prompt.NewPromptBuilder(cfg.MCPServerRegistry),
		mcpFactory:     mcpFactory,
	}
}

// ────────────────────────────────────────────────────────────
// Internal types
// ────────────────────────────────────────────────────────────

// stageResult captures the outcome of a single stage execution.
type stageResult struct {
	stageID       string
	stageName     string
	status        alertsession.Status // mapped from agent status
	finalAnalysis string
	err           error
	agentResults  []agentResult // always populated (1 entry for single-agent, N for multi-agent)
}

// agentResult captures the outcome of a single agent execution within a stage.
type agentResult struct {
	executionID     string
	status          agent.ExecutionStatus
	finalAnalysis   string
	err             error
	llmBackend      string // resolved backend (for synthesis context)
	llmProviderName string // resolved provider name (for synthesis context)
}

// executionConfig wraps agent config with display name for stage execution.
type executionConfig struct {
	agentConfig config.StageAgentConfig
	displayName string // for DB record and logs (differs from config name for replicas)
}

// indexedAgentResult pairs an agentResult with its original launch index.
type indexedAgentResult struct {
	index  int
	result agentResult
}

// agentResume carries the state needed to restart a paused agent execution:
// the existing DB record and the conversation captured at the pause boundary.
type agentResume struct {
	exec         *ent.AgentExecution
	conversation []agent.ConversationMessage
}

// executeStageInput groups all parameters for executeStage to keep the call signature clean.
type executeStageInput struct {
	session     *ent.AlertSession
	chain       *config.ChainConfig
	stageConfig config.StageConfig
	stageIndex  int // 0-based DB stage index (includes synthesis stages)
	prevContext string

	// Total expected stages (config + synthesis + executive summary).
	// Used for progress reporting so CurrentStageIndex never exceeds TotalStages.
	totalExpectedStages int

	// resumeStage, when non-nil, is a previously paused stage record (with
	// agent executions loaded). executeStage reuses it instead of creating a
	// new stage: completed children are kept, paused children restart from
	// their conversation snapshots.
	resumeStage *ent.Stage

	// Services (shared across stages)
	stageService       *services.StageService
	messageService     *services.MessageService
	timelineService    *services.TimelineService
	interactionService *services.InteractionService

	// Typed interaction pipeline (shared across stages). Controllers route
	// LLM/MCP interaction records through it; a misbehaving hook is disabled
	// after repeated failures instead of failing the investigation.
	hookPipeline *hooks.Pipeline
}

// ────────────────────────────────────────────────────────────
// Execute — main entry point (chain loop)
// ────────────────────────────────────────────────────────────

// Execute runs the session through the agent chain.
//
// Stages run sequentially. A partial stage contributes its best-effort output
// and the chain continues; a failed stage stops the chain (the session ends
// partial when earlier stages produced usable output, failed otherwise). A
// paused stage ends the run with a paused result; on the next claim the
// executor detects the existing stages and resumes where it left off.
// Between stages the session row is re-read so an external cancel request
// (status canceling) abandons the chain.
func (e *RealSessionExecutor) Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult {
	logger := slog.With(
		"session_id", session.ID,
		"chain_id", session.ChainID,
		"alert_type", session.AlertType,
		"alert_data_bytes", len(session.AlertData),
	)
	logger.Info("Session executor: starting execution")

	// 1. Resolve chain configuration
	chain, err := e.cfg.GetChain(session.ChainID)
	if err != nil {
		logger.Error("Failed to resolve chain config", "error", err)
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("chain %q not found: %w", session.ChainID, err),
		}
	}

	if len(chain.Stages) == 0 {
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("chain %q has no stages", session.ChainID),
		}
	}

	// 2. Initialize services (shared across all stages)
	stageService := services.NewStageService(e.dbClient)
	messageService := services.NewMessageService(e.dbClient)
	timelineService := services.NewTimelineService(e.dbClient)
	interactionService := services.NewInteractionService(e.dbClient, messageService)
	hookPipeline := hooks.NewPersistencePipeline(interactionService)

	// 3. Resume detection: existing stages mean this session was paused and
	// re-enqueued. Chat stages never participate in the investigation chain.
	existing, err := stageService.GetStagesBySession(ctx, session.ID, true)
	if err != nil {
		logger.Error("Failed to load existing stages", "error", err)
		return &ExecutionResult{
			Status: alertsession.StatusFailed,
			Error:  fmt.Errorf("failed to load existing stages: %w", err),
		}
	}
	var prior []*ent.Stage
	for _, stg := range existing {
		if stg.ChatID != nil {
			continue
		}
		prior = append(prior, stg)
	}
	if len(prior) > 0 {
		logger.Info("Resuming session from existing stages", "prior_stages", len(prior))
	}

	// 4. Sequential chain loop
	// dbStageIndex tracks the actual DB stage index, which may differ from the
	// config stage index when synthesis stages are inserted.
	var completedStages []stageResult
	prevContext := ""
	dbStageIndex := 0
	totalExpectedStages := countExpectedStages(chain)
	sawPartial := false
	brokeEarly := false
	pos := 0 // cursor into prior stages for resume

	for _, stageCfg := range chain.Stages {
		// Check for cancellation between stages
		if r := e.mapCancellation(ctx); r != nil {
			return r
		}

		// Cooperative pause between stages
		if agent.PauseSignalFrom(ctx).Requested() {
			return &ExecutionResult{Status: alertsession.StatusPaused}
		}

		// Re-read session status: an external cancel request transitions the
		// session to canceling and the chain is abandoned.
		if e.sessionCanceling(ctx, session.ID) {
			logger.Info("Session is canceling, abandoning chain")
			return &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  fmt.Errorf("cancelled by user"),
			}
		}

		// Resume bookkeeping: prior completed/partial stages are replayed from
		// their records; a prior paused stage is re-entered below.
		var resumeStage *ent.Stage
		if pos < len(prior) {
			prev := prior[pos]
			switch prev.Status {
			case stage.StatusCompleted, stage.StatusPartial:
				sr := stageResultFromRecord(prev)
				pos++
				dbStageIndex++
				// A synthesis stage record may follow; its result supersedes
				// the investigation stage for downstream context.
				if pos < len(prior) && prior[pos].StageName == prev.StageName+" - Synthesis" {
					if synth := prior[pos]; synth.Status == stage.StatusCompleted || synth.Status == stage.StatusPartial {
						sr = stageResultFromRecord(synth)
					}
					pos++
					dbStageIndex++
				}
				if sr.status == alertsession.StatusPartial {
					sawPartial = true
				}
				completedStages = append(completedStages, sr)
				prevContext = e.buildStageContext(completedStages)
				continue
			case stage.StatusPaused:
				resumeStage = prev
				dbStageIndex = prev.StageIndex - 1 // re-enter at its original index
				pos = len(prior)                   // nothing beyond a paused stage
			default:
				// Terminal failure leftovers should not exist for a resumable
				// session; execute fresh from here.
				pos = len(prior)
			}
		}

		// session progress + stage.status: started are published inside executeStage()
		// after Stage DB record is created (so stageID is always present)
		sr := e.executeStage(ctx, executeStageInput{
			session:             session,
			chain:               chain,
			stageConfig:         stageCfg,
			stageIndex:          dbStageIndex,
			prevContext:         prevContext,
			totalExpectedStages: totalExpectedStages,
			resumeStage:         resumeStage,
			stageService:        stageService,
			messageService:      messageService,
			timelineService:     timelineService,
			interactionService:  interactionService,
			hookPipeline:        hookPipeline,
		})

		// Publish stage terminal status (use background context — ctx may be cancelled)
		publishStageStatus(context.Background(), e.eventPublisher, session.ID, sr.stageID, sr.stageName, dbStageIndex, mapTerminalStatus(sr))
		dbStageIndex++

		switch sr.status {
		case alertsession.StatusPaused:
			logger.Info("Stage paused", "stage_name", sr.stageName)
			return &ExecutionResult{Status: alertsession.StatusPaused}

		case alertsession.StatusCancelled:
			return &ExecutionResult{
				Status: alertsession.StatusCancelled,
				Error:  sr.err,
			}

		case alertsession.StatusFailed:
			// A failed stage stops the chain. With usable output from earlier
			// stages the session ends partial (summary still generated);
			// without any, it fails.
			if extractFinalAnalysis(completedStages) == "" {
				logger.Warn("Stage failed with no prior output, failing session",
					"stage_name", sr.stageName, "error", sr.err)
				return &ExecutionResult{
					Status: alertsession.StatusFailed,
					Error:  sr.err,
				}
			}
			logger.Warn("Stage failed after usable output, finishing session as partial",
				"stage_name", sr.stageName, "error", sr.err)
			brokeEarly = true

		case alertsession.StatusPartial:
			sawPartial = true
		}

		if brokeEarly {
			break
		}

		// Synthesis runs only when the stage ran agents in parallel and the
		// chain config asks for it.
		if len(sr.agentResults) > 1 && stageCfg.Synthesis != nil {
			synthSr := e.executeSynthesisStage(ctx, executeStageInput{
				session:             session,
				chain:               chain,
				stageConfig:         stageCfg,
				stageIndex:          dbStageIndex,
				prevContext:         prevContext,
				totalExpectedStages: totalExpectedStages,
				stageService:        stageService,
				messageService:      messageService,
				timelineService:     timelineService,
				interactionService:  interactionService,
				hookPipeline:        hookPipeline,
			}, sr)

			publishStageStatus(context.Background(), e.eventPublisher, session.ID, synthSr.stageID, synthSr.stageName, dbStageIndex, mapTerminalStatus(synthSr))
			dbStageIndex++

			switch synthSr.status {
			case alertsession.StatusCompleted, alertsession.StatusPartial:
				if synthSr.status == alertsession.StatusPartial {
					sawPartial = true
				}
				// Synthesis result replaces investigation result for context passing
				sr = synthSr
			case alertsession.StatusCancelled:
				return &ExecutionResult{
					Status: alertsession.StatusCancelled,
					Error:  synthSr.err,
				}
			default:
				// Synthesis failure degrades the stage, not the session: fall
				// back to the investigation results already collected.
				logger.Warn("Synthesis failed, continuing with raw stage results",
					"stage_name", synthSr.stageName, "error", synthSr.err)
				sawPartial = true
			}
		}

		completedStages = append(completedStages, sr)

		// Persist the representative output handed to downstream stages, so a
		// later resume can rebuild context without re-running the stage.
		if sr.stageID != "" {
			if outErr := stageService.SetStageOutput(context.Background(), sr.stageID, map[string]interface{}{
				"final_analysis": sr.finalAnalysis,
				"status":         string(sr.status),
			}); outErr != nil {
				logger.Warn("Failed to persist stage output", "stage_id", sr.stageID, "error", outErr)
			}
		}

		// Build context for next stage
		prevContext = e.buildStageContext(completedStages)
	}

	// 5. Extract final analysis from completed stages
	finalAnalysis := extractFinalAnalysis(completedStages)

	sessionStatus := alertsession.StatusCompleted
	if sawPartial || brokeEarly {
		sessionStatus = alertsession.StatusPartial
	}

	// 6. Generate executive summary (fail-open)
	var execSummary string
	var execSummaryErr string
	if finalAnalysis != "" {
		summary, summaryErr := e.generateExecutiveSummary(ctx, session, chain, finalAnalysis, timelineService, interactionService)
		if summaryErr != nil {
			logger.Warn("Executive summary generation failed (fail-open)",
				"error", summaryErr)
			execSummaryErr = summaryErr.Error()
		} else {
			execSummary = summary
		}
	}

	logger.Info("Session executor: execution finished",
		"status", sessionStatus,
		"stages_completed", len(completedStages),
		"has_final_analysis", finalAnalysis != "",
		"has_executive_summary", execSummary != "",
	)

	return &ExecutionResult{
		Status:                sessionStatus,
		FinalAnalysis:         finalAnalysis,
		ExecutiveSummary:      execSummary,
		ExecutiveSummaryError: execSummaryErr,
	}
}

// sessionCanceling re-reads the session row and reports whether an external
// cancel request is pending.
func (e *RealSessionExecutor) sessionCanceling(ctx context.Context, sessionID string) bool {
	current, err := e.dbClient.AlertSession.Get(ctx, sessionID)
	if err != nil {
		slog.Warn("Failed to re-read session status", "session_id", sessionID, "error", err)
		return false
	}
	return current.Status == alertsession.StatusCanceling
}

// ────────────────────────────────────────────────────────────
// executeStage — unified stage execution (1 or N agents)
// ────────────────────────────────────────────────────────────

// executeStage creates the Stage DB record (or reactivates a paused one),
// launches goroutines for all agents, collects results, and aggregates status
// via success policy. A single-agent stage is not a special case — it's just N=1.
func (e *RealSessionExecutor) executeStage(ctx context.Context, input executeStageInput) stageResult {
	logger := slog.With(
		"session_id", input.session.ID,
		"stage_name", input.stageConfig.Name,
		"stage_index", input.stageIndex,
	)

	if len(input.stageConfig.Agents) == 0 {
		return stageResult{
			stageName: input.stageConfig.Name,
			status:    alertsession.StatusFailed,
			err:       fmt.Errorf("stage %q has no agents", input.stageConfig.Name),
		}
	}

	// 1. Build execution configs (1 for single-agent, N for multi-agent/replica)
	configs := buildConfigs(input.stageConfig)
	policy := e.resolvedSuccessPolicy(input)

	// 2. Create Stage DB record, or reactivate a paused one on resume
	var stg *ent.Stage
	if input.resumeStage != nil {
		stg = input.resumeStage
		if err := input.stageService.ReactivateStage(ctx, stg.ID); err != nil {
			logger.Error("Failed to reactivate paused stage", "error", err)
			return stageResult{
				stageID:   stg.ID,
				stageName: input.stageConfig.Name,
				status:    alertsession.StatusFailed,
				err:       fmt.Errorf("failed to reactivate stage: %w", err),
			}
		}
		logger.Info("Resuming paused stage", "stage_id", stg.ID)
	} else {
		created, err := input.stageService.CreateStage(ctx, models.CreateStageRequest{
			SessionID:          input.session.ID,
			StageName:          input.stageConfig.Name,
			StageIndex:         input.stageIndex + 1, // 1-based in DB
			ExpectedAgentCount: len(configs),
			ParallelType:       parallelTypePtr(input.stageConfig),
			SuccessPolicy:      successPolicyPtr(input.stageConfig, policy),
		})
		if err != nil {
			logger.Error("Failed to create stage", "error", err)
			return stageResult{
				stageName: input.stageConfig.Name,
				status:    alertsession.StatusFailed,
				err:       fmt.Errorf("failed to create stage: %w", err),
			}
		}
		stg = created
	}

	// 3. Update session progress + publish stage.status: started (stageID now available)
	e.updateSessionProgress(ctx, input.session.ID, input.stageIndex, stg.ID)
	publishStageStatus(ctx, e.eventPublisher, input.session.ID, stg.ID, input.stageConfig.Name, input.stageIndex, events.StageStatusStarted)
	publishSessionProgress(ctx, e.eventPublisher, input.session.ID, input.stageConfig.Name,
		input.stageIndex, input.totalExpectedStages, len(configs),
		fmt.Sprintf("Starting stage: %s", input.stageConfig.Name))

	// 4. Launch goroutines (one per execution config — even if just one).
	// On resume, children that already finished are replayed from their
	// records; paused children restart from their conversation snapshots.
	results := make(chan indexedAgentResult, len(configs))
	var wg sync.WaitGroup

	for i, cfg := range configs {
		if input.resumeStage != nil {
			if prev := findExecutionByIndex(stg, i+1); prev != nil {
				if prev.Status == agentexecution.StatusPaused {
					resume := &agentResume{
						exec:         prev,
						conversation: conversationFromSnapshot(prev.ConversationSnapshot),
					}
					wg.Add(1)
					go func(idx int, agentCfg config.StageAgentConfig, displayName string, r *agentResume) {
						defer wg.Done()
						ar := e.executeAgent(ctx, input, stg, agentCfg, idx, displayName, r)
						results <- indexedAgentResult{index: idx, result: ar}
					}(i, cfg.agentConfig, cfg.displayName, resume)
					continue
				}
				// Terminal child: keep its result as-is
				results <- indexedAgentResult{
					index:  i,
					result: agentResultFromRecord(ctx, prev, input.timelineService),
				}
				continue
			}
		}

		wg.Add(1)
		go func(idx int, agentCfg config.StageAgentConfig, displayName string) {
			defer wg.Done()
			ar := e.executeAgent(ctx, input, stg, agentCfg, idx, displayName, nil)
			results <- indexedAgentResult{index: idx, result: ar}
		}(i, cfg.agentConfig, cfg.displayName)
	}

	// 5. Wait for ALL goroutines to complete
	wg.Wait()
	close(results)

	// 6. Collect and sort by original index
	agentResults := collectAndSort(results)

	// 7. Aggregate status via success policy
	stageStatus := aggregateStatus(agentResults, policy)

	// 8. Update Stage in DB (use background context — ctx may be cancelled)
	if updateErr := input.stageService.UpdateStageStatus(context.Background(), stg.ID); updateErr != nil {
		logger.Error("Failed to update stage status", "error", updateErr)
	}

	// For single-agent stages, finalAnalysis comes directly from the agent.
	// For multi-agent stages without synthesis, take the best available child
	// analysis so downstream stages still get usable context.
	finalAnalysis := ""
	if len(agentResults) == 1 {
		finalAnalysis = agentResults[0].finalAnalysis
	} else if stageStatus == alertsession.StatusCompleted || stageStatus == alertsession.StatusPartial {
		for _, ar := range agentResults {
			if ar.finalAnalysis != "" {
				finalAnalysis = ar.finalAnalysis
				break
			}
		}
	}

	return stageResult{
		stageID:       stg.ID,
		stageName:     input.stageConfig.Name,
		status:        stageStatus,
		finalAnalysis: finalAnalysis,
		err:           aggregateError(agentResults, stageStatus, input.stageConfig),
		agentResults:  agentResults,
	}
}

// ────────────────────────────────────────────────────────────
// executeAgent — single agent execution within a stage
// ────────────────────────────────────────────────────────────

func (e *RealSessionExecutor) executeAgent(
	ctx context.Context,
	input executeStageInput,
	stg *ent.Stage,
	agentConfig config.StageAgentConfig,
	agentIndex int,
	displayName string, // overrides agentConfig.Name for DB record/logs; config name still used for registry lookup
	resume *agentResume, // non-nil when restarting a paused execution
) agentResult {
	logger := slog.With(
		"session_id", input.session.ID,
		"stage_id", stg.ID,
		"agent_name", displayName,
		"agent_index", agentIndex,
	)

	// Best-effort provider name for the error path (before ResolveAgentConfig
	// succeeds). The happy path uses resolvedConfig.LLMProviderName instead,
	// keeping ResolveAgentConfig as the single source of truth.
	var fallbackProviderName string
	if e.cfg.Defaults != nil {
		fallbackProviderName = e.cfg.Defaults.LLMProvider
	}
	if input.chain.LLMProvider != "" {
		fallbackProviderName = input.chain.LLMProvider
	}
	if agentConfig.LLMProvider != "" {
		fallbackProviderName = agentConfig.LLMProvider
	}

	// Resolve agent config from hierarchy (before creating execution record
	// so the DB record captures the correctly resolved iteration strategy).
	resolvedConfig, err := agent.ResolveAgentConfig(e.cfg, input.chain, input.stageConfig, agentConfig)
	if err != nil {
		resErr := fmt.Errorf("failed to resolve agent config: %w", err)
		logger.Error("Failed to resolve agent config", "error", err)

		// Best-effort: create a failed AgentExecution record so the stage can
		// be finalized via UpdateStageStatus. Without this, the stage has no
		// executions and UpdateStageStatus is a no-op, leaving it "pending".
		exec, createErr := input.stageService.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			StageID:     stg.ID,
			SessionID:   input.session.ID,
			AgentName:   displayName,
			AgentIndex:  agentIndex + 1, // 1-based in DB
			LLMProvider: fallbackProviderName,
		})
		if createErr != nil {
			logger.Error("Failed to create failed agent execution record", "error", createErr)
			// Last resort: directly mark stage as failed so the pipeline doesn't stay in_progress.
			if stageErr := input.stageService.ForceStageFailure(context.Background(), stg.ID, resErr.Error()); stageErr != nil {
				logger.Error("Failed to force stage to failed state", "error", stageErr)
			}
			return agentResult{
				status: agent.ExecutionStatusFailed,
				err:    resErr,
			}
		}
		// Mark the execution as failed with the resolution error.
		if updateErr := input.stageService.UpdateAgentExecutionStatus(
			context.Background(), exec.ID, agentexecution.StatusFailed, resErr.Error(),
		); updateErr != nil {
			logger.Error("Failed to update agent execution status to failed", "error", updateErr)
		}
		return agentResult{
			executionID:     exec.ID,
			status:          agent.ExecutionStatusFailed,
			err:             resErr,
			llmProviderName: fallbackProviderName,
		}
	}

	// Create AgentExecution DB record with resolved strategy and provider,
	// or reactivate the paused record on resume.
	var exec *ent.AgentExecution
	if resume != nil {
		exec = resume.exec
		if reErr := input.stageService.ReactivateExecution(ctx, exec.ID); reErr != nil {
			logger.Error("Failed to reactivate paused execution", "error", reErr)
			return agentResult{
				executionID:     exec.ID,
				status:          agent.ExecutionStatusFailed,
				err:             fmt.Errorf("failed to reactivate execution: %w", reErr),
				llmBackend:      string(resolvedConfig.LLMBackend),
				llmProviderName: resolvedConfig.LLMProviderName,
			}
		}
	} else {
		created, createErr := input.stageService.CreateAgentExecution(ctx, models.CreateAgentExecutionRequest{
			StageID:           stg.ID,
			SessionID:         input.session.ID,
			AgentName:         displayName,
			AgentIndex:        agentIndex + 1, // 1-based in DB
			IterationStrategy: resolvedConfig.IterationStrategy,
			LLMBackend:        resolvedConfig.LLMBackend,
			LLMProvider:       resolvedConfig.LLMProviderName,
		})
		if createErr != nil {
			logger.Error("Failed to create agent execution", "error", createErr)
			return agentResult{
				status: agent.ExecutionStatusFailed,
				err:    fmt.Errorf("failed to create agent execution: %w", createErr),
			}
		}
		exec = created
	}

	// Metadata carried on all agentResult returns below (for synthesis context).
	resolvedBackend := string(resolvedConfig.LLMBackend)

	// Resolve MCP servers and tool filter
	serverIDs, toolFilter, err := resolveMCPSelection(input.session, resolvedConfig, e.cfg.MCPServerRegistry)
	if err != nil {
		logger.Error("Failed to resolve MCP selection", "error", err)
		return agentResult{
			executionID:     exec.ID,
			status:          agent.ExecutionStatusFailed,
			err:             fmt.Errorf("invalid MCP selection: %w", err),
			llmBackend:      resolvedBackend,
			llmProviderName: resolvedConfig.LLMProviderName,
		}
	}

	// Create MCP tool executor
	toolExecutor, failedServers := createToolExecutor(ctx, e.mcpFactory, serverIDs, toolFilter, logger)
	defer func() { _ = toolExecutor.Close() }()

	// Build execution context
	execCtx := &agent.ExecutionContext{
		SessionID:      input.session.ID,
		StageID:        stg.ID,
		ExecutionID:    exec.ID,
		AgentName:      displayName,
		AgentIndex:     agentIndex + 1, // 1-based
		AlertData:      input.session.AlertData,
		AlertType:      input.session.AlertType,
		RunbookContent: config.GetBuiltinConfig().DefaultRunbook,
		Config:         resolvedConfig,
		LLMClient:      e.llmClient,
		ToolExecutor:   toolExecutor,
		EventPublisher: e.eventPublisher,
		PromptBuilder:  e.promptBuilder,
		FailedServers:  failedServers,
		Pause:          agent.PauseSignalFrom(ctx),
		Hooks:          input.hookPipeline,
		Services: &agent.ServiceBundle{
			Timeline:    input.timelineService,
			Message:     input.messageService,
			Interaction: input.interactionService,
			Stage:       input.stageService,
		},
	}
	if resume != nil {
		execCtx.ResumeConversation = resume.conversation
	}

	agentInstance, err := e.agentFactory.CreateAgent(execCtx)
	if err != nil {
		logger.Error("Failed to create agent", "error", err)
		return agentResult{
			executionID:     exec.ID,
			status:          agent.ExecutionStatusFailed,
			err:             fmt.Errorf("failed to create agent: %w", err),
			llmBackend:      resolvedBackend,
			llmProviderName: resolvedConfig.LLMProviderName,
		}
	}

	result, err := agentInstance.Execute(ctx, execCtx, input.prevContext)
	if err != nil {
		// Determine whether the error was caused by context cancellation/timeout.
		// When the context is cancelled (e.g. user cancel), the agent may fail with
		// an unrelated error (e.g. "failed to store assistant message") because it
		// tried to operate on a cancelled context. Override to the correct status.
		errStatus := agent.ExecutionStatusFailed
		if ctx.Err() == context.DeadlineExceeded {
			errStatus = agent.ExecutionStatusTimedOut
		} else if ctx.Err() != nil {
			errStatus = agent.ExecutionStatusCancelled
		}
		entErrStatus := mapAgentStatusToEntStatus(errStatus)
		logger.Error("Agent execution error", "error", err, "resolved_status", errStatus)
		if updateErr := input.stageService.UpdateAgentExecutionStatus(context.Background(), exec.ID, entErrStatus, err.Error()); updateErr != nil {
			logger.Error("Failed to update agent execution status after error", "error", updateErr)
		}
		return agentResult{
			executionID:     exec.ID,
			status:          errStatus,
			err:             err,
			llmBackend:      resolvedBackend,
			llmProviderName: resolvedConfig.LLMProviderName,
		}
	}

	// When the session context is cancelled/timed-out, the agent may return a
	// misleading status (e.g. "failed" due to a validation error caused by an
	// empty LLM response, or "completed" with empty content). Override to the
	// correct terminal status based on ctx.Err(). Only skip the override if the
	// agent already reported the right cancellation/timeout status.
	if result != nil && ctx.Err() != nil &&
		result.Status != agent.ExecutionStatusCancelled &&
		result.Status != agent.ExecutionStatusTimedOut {
		if ctx.Err() == context.DeadlineExceeded {
			result.Status = agent.ExecutionStatusTimedOut
			result.Error = ctx.Err()
		} else {
			result.Status = agent.ExecutionStatusCancelled
			result.Error = ctx.Err()
		}
	}

	// Paused executions persist their conversation snapshot before the status
	// update so a later resume always finds a usable snapshot.
	if result.Status == agent.ExecutionStatusPaused {
		if snapErr := input.stageService.SaveConversationSnapshot(
			context.Background(), exec.ID, snapshotFromConversation(result.Conversation),
		); snapErr != nil {
			logger.Error("Failed to save conversation snapshot", "error", snapErr)
		}
	}

	// Update AgentExecution status (use background context — ctx may be cancelled)
	entStatus := mapAgentStatusToEntStatus(result.Status)
	errMsg := ""
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	if updateErr := input.stageService.UpdateAgentExecutionStatus(context.Background(), exec.ID, entStatus, errMsg); updateErr != nil {
		logger.Error("Failed to update agent execution status", "error", updateErr)
		return agentResult{
			executionID:     exec.ID,
			status:          agent.ExecutionStatusFailed,
			finalAnalysis:   result.FinalAnalysis,
			err:             fmt.Errorf("agent completed but status update failed: %w", updateErr),
			llmBackend:      resolvedBackend,
			llmProviderName: resolvedConfig.LLMProviderName,
		}
	}

	return agentResult{
		executionID:     exec.ID,
		status:          result.Status,
		finalAnalysis:   result.FinalAnalysis,
		err:             result.Error,
		llmBackend:      resolvedBackend,
		llmProviderName: resolvedConfig.LLMProviderName,
	}
}
