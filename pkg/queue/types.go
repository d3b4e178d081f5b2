// Package queue provides session queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrShuttingDown indicates the executor rejects new work because Stop was called.
	ErrShuttingDown = errors.New("executor is shutting down")

	// ErrChatExecutionActive indicates a chat already has an execution in flight.
	ErrChatExecutionActive = errors.New("chat execution already active")

	// ErrScoringDisabled indicates the session's chain has no enabled scoring config.
	ErrScoringDisabled = errors.New("scoring is not enabled for this chain")
)

// SessionExecutor is the interface for session processing.
//
// The executor owns the ENTIRE session lifecycle internally:
//   - Executes all stages sequentially (from chain config)
//   - A failed stage stops the chain; a partial stage continues it
//   - A pause request ends the run with a paused result; the next claim resumes
//     from the persisted stage records and conversation snapshots
//
// The executor writes results PROGRESSIVELY during execution, not at the end.
// The worker only handles: claiming, heartbeat, terminal status update, and event cleanup.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.AlertSession) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state.
// All intermediate state (TimelineEvents, Interactions, Stages) was already
// written to DB by the executor during processing.
type ExecutionResult struct {
	Status                alertsession.Status // completed, partial, failed, cancelled, paused
	FinalAnalysis         string              // Final analysis text (if completed/partial)
	ExecutiveSummary      string              // Executive summary (if generated)
	ExecutiveSummaryError string              // Summary generation failure (fail-open; session status unaffected)
	Error                 error               // Error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
