package api

import (
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/pkg/queue"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// ScoreResponse is the HTTP representation of a session score.
type ScoreResponse struct {
	ScoreID              string     `json:"score_id"`
	SessionID            string     `json:"session_id"`
	Status               string     `json:"status"`
	TotalScore           *int       `json:"total_score,omitempty"`
	ScoreAnalysis        *string    `json:"score_analysis,omitempty"`
	MissingToolsAnalysis *string    `json:"missing_tools_analysis,omitempty"`
	TriggeredBy          string     `json:"triggered_by"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	ErrorMessage         *string    `json:"error_message,omitempty"`
}

// triggerScoreHandler handles POST /api/v1/sessions/:id/score.
// Starts an asynchronous LLM-judged quality evaluation of a finished session.
func (s *Server) triggerScoreHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.scoringExecutor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "scoring is not available")
	}

	session, err := s.sessionService.GetSession(c.Request().Context(), sessionID, false)
	if err != nil {
		return mapServiceError(err)
	}

	score, err := s.scoringExecutor.Submit(c.Request().Context(), session, extractAuthor(c))
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrScoringDisabled):
			return echo.NewHTTPError(http.StatusBadRequest, "scoring is not enabled for this chain")
		case errors.Is(err, services.ErrInvalidState):
			return echo.NewHTTPError(http.StatusConflict, "session has no finished analysis to score")
		case errors.Is(err, services.ErrAlreadyExists):
			return echo.NewHTTPError(http.StatusConflict, "a scoring run is already active for this session")
		case errors.Is(err, queue.ErrShuttingDown):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
		default:
			return mapServiceError(err)
		}
	}

	return c.JSON(http.StatusAccepted, scoreToResponse(score))
}

// getScoreHandler handles GET /api/v1/sessions/:id/score.
// Returns the most recent score for the session, any status.
func (s *Server) getScoreHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.scoreService == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "scoring is not available")
	}

	score, err := s.scoreService.GetLatestScore(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, scoreToResponse(score))
}

func scoreToResponse(score *ent.SessionScore) *ScoreResponse {
	return &ScoreResponse{
		ScoreID:              score.ID,
		SessionID:            score.SessionID,
		Status:               string(score.Status),
		TotalScore:           score.TotalScore,
		ScoreAnalysis:        score.ScoreAnalysis,
		MissingToolsAnalysis: score.MissingToolsAnalysis,
		TriggeredBy:          score.ScoreTriggeredBy,
		StartedAt:            score.StartedAt,
		CompletedAt:          score.CompletedAt,
		ErrorMessage:         score.ErrorMessage,
	}
}
