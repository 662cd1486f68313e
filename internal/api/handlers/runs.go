package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dealdrop/dealdrop/internal/alert"
	"github.com/dealdrop/dealdrop/internal/store"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

const defaultRunsLimit = 20

// RunsHandler handles processing run history requests.
type RunsHandler struct {
	store store.Store
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(s store.Store) *RunsHandler {
	return &RunsHandler{store: s}
}

// List handles GET /api/v1/runs.
//
// @Summary List processing runs
// @Description Returns recent processing runs, newest first.
// @Tags process
// @Produce json
// @Param limit query int false "Maximum number of runs to return" default(20)
// @Success 200 {array} domain.JobRun
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/runs [get]
func (h *RunsHandler) List(c echo.Context) error {
	limit := defaultRunsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := h.store.ListJobRuns(c.Request().Context(), alert.JobName, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing runs: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}
