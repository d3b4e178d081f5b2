package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/pkg/models"
)

// EventService manages WebSocket event distribution
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetSessionID(req.SessionID).
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves events on a channel with id > sinceID, oldest
// first. limit <= 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// GetLatestEventID returns the highest event id on a channel, or 0 when the
// channel has no events yet. Used by the polling listener to seed its cursor
// so a fresh subscription starts at "now" (catchup handles history).
func (s *EventService) GetLatestEventID(ctx context.Context, channel string) (int, error) {
	latest, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel)).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest event id: %w", err)
	}
	return latest.ID, nil
}

// CleanupSessionEvents removes all events for a session
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}

	return count, nil
}

// CleanupOrphanedEvents removes events older than TTL
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}

	return count, nil
}
