package api

import (
	"context"
	"net/http"
	"os"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/tarsy-project/tarsy/pkg/database"
	"github.com/tarsy-project/tarsy/pkg/events"
	"github.com/tarsy-project/tarsy/pkg/mcp"
	"github.com/tarsy-project/tarsy/pkg/queue"
	"github.com/tarsy-project/tarsy/pkg/runbook"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// Server is the HTTP API server: REST endpoints, WebSocket upgrade, and
// optional dashboard SPA serving on a single listener.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	alertService       *services.AlertService
	sessionService     *services.SessionService
	stageService       *services.StageService
	timelineService    *services.TimelineService
	interactionService *services.InteractionService
	runbookService     *runbook.Service
	chatService        *services.ChatService
	warningService     *services.SystemWarningsService

	workerPool      *queue.WorkerPool
	chatExecutor    *queue.ChatMessageExecutor
	scoringExecutor *queue.ScoringExecutor
	scoreService    *services.ScoreService
	connManager     *events.ConnectionManager
	eventPublisher  *events.EventPublisher
	healthMonitor   *mcp.HealthMonitor

	echo         *echo.Echo
	httpServer   *http.Server
	dashboardDir string
}

// NewServer creates the API server and registers all routes. Optional
// collaborators (health monitor, chat, events, dashboard dir) are attached
// via the Set* methods before Start.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	alertService *services.AlertService,
	sessionService *services.SessionService,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	messageService := services.NewMessageService(dbClient.Client)

	s := &Server{
		cfg:                cfg,
		dbClient:           dbClient,
		alertService:       alertService,
		sessionService:     sessionService,
		stageService:       services.NewStageService(dbClient.Client),
		timelineService:    services.NewTimelineService(dbClient.Client),
		interactionService: services.NewInteractionService(dbClient.Client, messageService),
		runbookService:     newRunbookService(cfg),
		workerPool:         workerPool,
		connManager:        connManager,
		echo:               echo.New(),
	}

	s.registerRoutes()
	return s
}

// newRunbookService resolves the GitHub token from the configured env var.
// An empty token limits runbook listing to public repositories.
func newRunbookService(cfg *config.Config) *runbook.Service {
	token := ""
	if cfg.GitHub != nil && cfg.GitHub.TokenEnv != "" {
		token = os.Getenv(cfg.GitHub.TokenEnv)
	}
	defaultRunbook := ""
	if cfg.Defaults != nil {
		defaultRunbook = cfg.Defaults.Runbook
	}
	return runbook.NewService(cfg.Runbooks, token, defaultRunbook)
}

// SetHealthMonitor attaches the MCP health monitor (system endpoints).
func (s *Server) SetHealthMonitor(monitor *mcp.HealthMonitor) {
	s.healthMonitor = monitor
}

// SetWarningsService attaches the system warnings service.
func (s *Server) SetWarningsService(warnings *services.SystemWarningsService) {
	s.warningService = warnings
}

// SetChatService attaches the chat service.
func (s *Server) SetChatService(chat *services.ChatService) {
	s.chatService = chat
}

// SetChatExecutor attaches the async chat message executor.
func (s *Server) SetChatExecutor(executor *queue.ChatMessageExecutor) {
	s.chatExecutor = executor
}

// SetScoringExecutor attaches the async session scoring executor and its
// score service (score endpoints).
func (s *Server) SetScoringExecutor(executor *queue.ScoringExecutor) {
	s.scoringExecutor = executor
	s.scoreService = services.NewScoreService(s.dbClient.Client)
}

// SetEventPublisher attaches the event publisher used by write endpoints.
func (s *Server) SetEventPublisher(publisher *events.EventPublisher) {
	s.eventPublisher = publisher
}

// SetDashboardDir enables SPA serving from the given build directory.
// Must be called before Start; API routes keep priority over the fallback.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	api := e.Group("/api/v1")

	api.POST("/alerts", s.submitAlertHandler)
	api.GET("/alert-types", s.alertTypesHandler)
	api.GET("/runbooks", s.handleListRunbooks)

	api.GET("/sessions", s.listSessionsHandler)
	api.GET("/sessions/active", s.activeSessionsHandler)
	api.GET("/sessions/filter-options", s.filterOptionsHandler)
	api.GET("/sessions/:id", s.getSessionHandler)
	api.GET("/sessions/:id/status", s.sessionStatusHandler)
	api.GET("/sessions/:id/summary", s.sessionSummaryHandler)
	api.GET("/sessions/:id/timeline", s.getTimelineHandler)
	api.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	api.POST("/sessions/:id/pause", s.pauseSessionHandler)
	api.POST("/sessions/:id/resume", s.resumeSessionHandler)

	api.GET("/sessions/:id/debug", s.getDebugListHandler)
	api.GET("/sessions/:id/debug/llm/:interaction_id", s.getLLMInteractionHandler)
	api.GET("/sessions/:id/debug/mcp/:interaction_id", s.getMCPInteractionHandler)

	api.POST("/sessions/:id/chat/messages", s.sendChatMessageHandler)

	api.POST("/sessions/:id/score", s.triggerScoreHandler)
	api.GET("/sessions/:id/score", s.getScoreHandler)

	api.GET("/system/warnings", s.systemWarningsHandler)
	api.GET("/system/mcp-servers", s.mcpServersHandler)
	api.GET("/system/default-tools", s.defaultToolsHandler)
}

// Start listens on addr and blocks until the server stops.
// Returns http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
