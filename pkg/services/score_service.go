package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/sessionscore"
)

// ScoreService manages the session quality scoring lifecycle via the
// session_scores table. The scoring agent itself does not touch this table;
// the executor drives the row through in_progress → completed/failed.
type ScoreService struct {
	client *ent.Client
}

// NewScoreService creates a new score service.
func NewScoreService(client *ent.Client) *ScoreService {
	return &ScoreService{client: client}
}

// StartScoring creates an in_progress score row for a finished session.
// Returns ErrInvalidState when the session has no analysis to judge, and
// ErrAlreadyExists when a scoring run is already active for the session
// (enforced by a partial unique index on active statuses).
func (s *ScoreService) StartScoring(ctx context.Context, sessionID, triggeredBy, promptHash string) (*ent.SessionScore, error) {
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

	if session.Status != alertsession.StatusCompleted && session.Status != alertsession.StatusPartial {
		return nil, ErrInvalidState
	}

	score, err := s.client.SessionScore.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetScoreTriggeredBy(triggeredBy).
		SetPromptHash(promptHash).
		SetStatus(sessionscore.StatusInProgress).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session score: %w", err)
	}
	return score, nil
}

// CompleteScoring records a successful scoring run.
func (s *ScoreService) CompleteScoring(ctx context.Context, scoreID string, totalScore int, scoreAnalysis, missingToolsAnalysis string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.SessionScore.UpdateOneID(scoreID).
		SetStatus(sessionscore.StatusCompleted).
		SetTotalScore(totalScore).
		SetScoreAnalysis(scoreAnalysis).
		SetMissingToolsAnalysis(missingToolsAnalysis).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete session score: %w", err)
	}
	return nil
}

// FinishScoringWithStatus records a non-successful terminal state
// (failed, timed_out or cancelled) with an error message.
func (s *ScoreService) FinishScoringWithStatus(ctx context.Context, scoreID string, status sessionscore.Status, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := s.client.SessionScore.UpdateOneID(scoreID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish session score: %w", err)
	}
	return nil
}

// GetLatestScore returns the most recent score row for a session, any status.
// Returns ErrNotFound when the session was never scored.
func (s *ScoreService) GetLatestScore(ctx context.Context, sessionID string) (*ent.SessionScore, error) {
	score, err := s.client.SessionScore.Query().
		Where(sessionscore.SessionIDEQ(sessionID)).
		Order(ent.Desc(sessionscore.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest session score: %w", err)
	}
	return score, nil
}

// GetScores returns all score rows for a session, newest first.
func (s *ScoreService) GetScores(ctx context.Context, sessionID string) ([]*ent.SessionScore, error) {
	scores, err := s.client.SessionScore.Query().
		Where(sessionscore.SessionIDEQ(sessionID)).
		Order(ent.Desc(sessionscore.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session scores: %w", err)
	}
	return scores, nil
}
