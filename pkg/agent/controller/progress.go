package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/events"
)

// publishExecutionProgress publishes an execution.progress transient event for
// the session detail page. Nil-safe for EventPublisher. Best-effort: logs on
// failure, never aborts the investigation loop.
func publishExecutionProgress(ctx context.Context, execCtx *agent.ExecutionContext, phase, message string) {
	if execCtx.EventPublisher == nil {
		return
	}
	if err := execCtx.EventPublisher.PublishExecutionProgress(ctx, execCtx.SessionID, events.ExecutionProgressPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeExecutionProgress,
			SessionID: execCtx.SessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		StageID:     execCtx.StageID,
		ExecutionID: execCtx.ExecutionID,
		Phase:       phase,
		Message:     message,
	}); err != nil {
		slog.Warn("Failed to publish execution progress",
			"session_id", execCtx.SessionID, "phase", phase, "error", err)
	}
}

// publishInteractionCreated publishes an interaction.created event so the
// trace view can refresh incrementally. Nil-safe for EventPublisher.
func publishInteractionCreated(ctx context.Context, execCtx *agent.ExecutionContext, interactionID, interactionType string) {
	if execCtx.EventPublisher == nil {
		return
	}
	if err := execCtx.EventPublisher.PublishInteractionCreated(ctx, execCtx.SessionID, events.InteractionCreatedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeInteractionCreated,
			SessionID: execCtx.SessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		StageID:         execCtx.StageID,
		ExecutionID:     execCtx.ExecutionID,
		InteractionID:   interactionID,
		InteractionType: interactionType,
	}); err != nil {
		slog.Warn("Failed to publish interaction created",
			"session_id", execCtx.SessionID, "interaction_id", interactionID, "error", err)
	}
}
