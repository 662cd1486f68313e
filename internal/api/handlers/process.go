package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealdrop/dealdrop/internal/alert"
)

// Runner defines the interface for triggering a processing run.
type Runner interface {
	ProcessAll(ctx context.Context) (*alert.Result, error)
}

// ProcessHandler handles manual processing trigger requests.
type ProcessHandler struct {
	runner Runner
}

// NewProcessHandler creates a new ProcessHandler.
func NewProcessHandler(r Runner) *ProcessHandler {
	return &ProcessHandler{runner: r}
}

// processResponse summarizes a completed run.
type processResponse struct {
	RunID      string              `json:"run_id"`
	AlertsSent int                 `json:"alerts_sent"`
	ErrorCount int                 `json:"error_count"`
	Errors     []processErrorEntry `json:"errors,omitempty"`
}

type processErrorEntry struct {
	TrackerID string `json:"tracker_id"`
	Stage     string `json:"stage"`
	Error     string `json:"error"`
}

// Trigger handles POST /api/v1/process.
//
// @Summary Trigger a processing run
// @Description Runs the full alert pipeline: fetch snapshots, evaluate
// @Description trackers, and send notifications. Returns 409 if a run is
// @Description already in flight.
// @Tags process
// @Produce json
// @Success 200 {object} processResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/process [post]
func (h *ProcessHandler) Trigger(c echo.Context) error {
	result, err := h.runner.ProcessAll(c.Request().Context())
	if errors.Is(err, alert.ErrRunInProgress) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "a processing run is already in progress",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "processing failed: " + err.Error(),
		})
	}

	resp := processResponse{
		RunID:      result.RunID,
		AlertsSent: result.AlertsSent,
		ErrorCount: len(result.Errors),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, processErrorEntry{
			TrackerID: e.TrackerID,
			Stage:     e.Stage,
			Error:     e.Err.Error(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}
