package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/google/uuid"
)

// TimelineService manages timeline events
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// CreateTimelineEvent creates a new timeline event. StageID and ExecutionID
// are nil for session-level events (e.g. executive_summary). Status defaults
// to "streaming" when unset; streaming events start with empty content.
func (s *TimelineService) CreateTimelineEvent(httpCtx context.Context, req models.CreateTimelineEventRequest) (*ent.TimelineEvent, error) {
	// Validate request
	if req.SessionID == "" {
		return nil, NewValidationError("SessionID", "required")
	}
	if req.SequenceNumber <= 0 {
		return nil, NewValidationError("SequenceNumber", "must be positive")
	}
	if req.EventType == "" {
		return nil, NewValidationError("EventType", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := req.Status
	if status == "" {
		status = timelineevent.StatusStreaming
	}

	eventID := uuid.New().String()
	event, err := s.client.TimelineEvent.Create().
		SetID(eventID).
		SetSessionID(req.SessionID).
		SetNillableStageID(req.StageID).
		SetNillableExecutionID(req.ExecutionID).
		SetNillableParentExecutionID(req.ParentExecutionID).
		SetSequenceNumber(req.SequenceNumber).
		SetEventType(req.EventType).
		SetStatus(status).
		SetContent(req.Content).
		SetMetadata(req.Metadata).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create timeline event: %w", err)
	}

	return event, nil
}

// UpdateTimelineEvent updates event content during streaming
func (s *TimelineService) UpdateTimelineEvent(ctx context.Context, eventID string, content string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(content).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update timeline event: %w", err)
	}

	return nil
}

// CompleteTimelineEvent marks an event as completed with its final content and
// optional links to the underlying LLM/MCP interaction records.
func (s *TimelineService) CompleteTimelineEvent(ctx context.Context, eventID string, content string, llmInteractionID, mcpInteractionID *string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(content).
		SetStatus(timelineevent.StatusCompleted).
		SetUpdatedAt(time.Now())

	if llmInteractionID != nil {
		update = update.SetLlmInteractionID(*llmInteractionID)
	}
	if mcpInteractionID != nil {
		update = update.SetMcpInteractionID(*mcpInteractionID)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete timeline event: %w", err)
	}

	return nil
}

// CompleteTimelineEventWithMetadata completes an event and merges extra
// metadata into whatever the event already carries (read-modify-write).
// Used for tool call events where arguments were stored in metadata at
// creation time and the completion adds is_error.
func (s *TimelineService) CompleteTimelineEventWithMetadata(ctx context.Context, eventID string, content string, metadata map[string]any, llmInteractionID, mcpInteractionID *string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.TimelineEvent.Get(writeCtx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load timeline event for completion: %w", err)
	}

	merged := existing.Metadata
	if merged == nil {
		merged = make(map[string]any, len(metadata))
	}
	for k, v := range metadata {
		merged[k] = v
	}

	update := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(content).
		SetStatus(timelineevent.StatusCompleted).
		SetMetadata(merged).
		SetUpdatedAt(time.Now())

	if llmInteractionID != nil {
		update = update.SetLlmInteractionID(*llmInteractionID)
	}
	if mcpInteractionID != nil {
		update = update.SetMcpInteractionID(*mcpInteractionID)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete timeline event: %w", err)
	}

	return nil
}

// FailTimelineEvent marks an event as failed with its final content.
func (s *TimelineService) FailTimelineEvent(ctx context.Context, eventID string, content string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TimelineEvent.UpdateOneID(eventID).
		SetContent(content).
		SetStatus(timelineevent.StatusFailed).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail timeline event: %w", err)
	}

	return nil
}

// GetMaxSequenceNumber returns the highest sequence number recorded for a
// session, or 0 when the session has no timeline events yet.
func (s *TimelineService) GetMaxSequenceNumber(ctx context.Context, sessionID string) (int, error) {
	last, err := s.client.TimelineEvent.Query().
		Where(timelineevent.SessionIDEQ(sessionID)).
		Order(ent.Desc(timelineevent.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get max sequence number: %w", err)
	}

	return last.SequenceNumber, nil
}

// GetSessionTimeline retrieves all events for a session
func (s *TimelineService) GetSessionTimeline(ctx context.Context, sessionID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session timeline: %w", err)
	}

	return events, nil
}

// GetStageTimeline retrieves all events for a stage
func (s *TimelineService) GetStageTimeline(ctx context.Context, stageID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.StageIDEQ(stageID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage timeline: %w", err)
	}

	return events, nil
}

// GetAgentTimeline retrieves all events for an agent execution
func (s *TimelineService) GetAgentTimeline(ctx context.Context, executionID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.ExecutionIDEQ(executionID)).
		Order(ent.Asc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent timeline: %w", err)
	}

	return events, nil
}
