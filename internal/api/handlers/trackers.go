package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/dealdrop/dealdrop/internal/catalog"
	"github.com/dealdrop/dealdrop/internal/store"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// TrackerHandler handles Tracker CRUD operations.
type TrackerHandler struct {
	store store.Store
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(s store.Store) *TrackerHandler {
	return &TrackerHandler{store: s}
}

// trackerRequest is the create/update body. Either asin or product_url must
// be set; a product URL is reduced to its ASIN server-side.
type trackerRequest struct {
	Recipient        string           `json:"recipient"`
	ASIN             string           `json:"asin"`
	ProductURL       string           `json:"product_url"`
	AlertMode        domain.AlertMode `json:"alert_mode"`
	TargetPrice      *decimal.Decimal `json:"target_price"`
	PercentThreshold *decimal.Decimal `json:"percent_threshold"`
	CooldownHours    int              `json:"cooldown_hours"`
	Enabled          *bool            `json:"enabled"`
}

// toTracker validates the request and converts it into a domain Tracker.
func (r *trackerRequest) toTracker() (*domain.Tracker, error) {
	asin := r.ASIN
	if asin == "" && r.ProductURL != "" {
		extracted, err := catalog.ExtractASIN(r.ProductURL)
		if err != nil {
			return nil, errors.New("product_url does not contain a recognizable ASIN")
		}
		asin = extracted
	}
	if !catalog.ValidASIN(asin) {
		return nil, errors.New("asin or product_url is required")
	}

	if r.Recipient == "" {
		return nil, errors.New("recipient is required")
	}
	if !r.AlertMode.Valid() {
		return nil, errors.New("alert_mode must be fixed_price or percentage_drop")
	}

	switch r.AlertMode {
	case domain.AlertFixedPrice:
		if r.TargetPrice == nil || !r.TargetPrice.IsPositive() {
			return nil, errors.New("target_price must be a positive amount for fixed_price trackers")
		}
	case domain.AlertPercentageDrop:
		if r.PercentThreshold == nil ||
			!r.PercentThreshold.IsPositive() ||
			r.PercentThreshold.GreaterThan(decimal.NewFromInt(100)) {
			return nil, errors.New("percent_threshold must be in (0, 100] for percentage_drop trackers")
		}
	}

	cooldown := r.CooldownHours
	if cooldown <= 0 {
		cooldown = domain.DefaultCooldownHours
	}

	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return &domain.Tracker{
		Recipient:        r.Recipient,
		ASIN:             asin,
		AlertMode:        r.AlertMode,
		TargetPrice:      r.TargetPrice,
		PercentThreshold: r.PercentThreshold,
		CooldownHours:    cooldown,
		Enabled:          enabled,
	}, nil
}

// List handles GET /api/v1/trackers.
//
// @Summary List trackers
// @Description Returns all trackers, optionally filtered by enabled status.
// @Tags trackers
// @Produce json
// @Param enabled query string false "Filter by enabled status" Enums(true, false)
// @Success 200 {array} domain.Tracker
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers [get]
func (h *TrackerHandler) List(c echo.Context) error {
	enabledOnly := c.QueryParam("enabled") == "true"

	trackers, err := h.store.ListTrackers(c.Request().Context(), enabledOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing trackers: " + err.Error(),
		})
	}

	if trackers == nil {
		trackers = []domain.Tracker{}
	}

	return c.JSON(http.StatusOK, trackers)
}

// Get handles GET /api/v1/trackers/:id.
//
// @Summary Get a tracker by ID
// @Description Returns a single tracker by its UUID.
// @Tags trackers
// @Produce json
// @Param id path string true "Tracker UUID"
// @Success 200 {object} domain.Tracker
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers/{id} [get]
func (h *TrackerHandler) Get(c echo.Context) error {
	id := c.Param("id")

	t, err := h.store.GetTracker(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "tracker not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting tracker: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, t)
}

// Create handles POST /api/v1/trackers.
//
// @Summary Create a tracker
// @Description Creates a new price tracker from an ASIN or Amazon product URL.
// @Tags trackers
// @Accept json
// @Produce json
// @Param tracker body trackerRequest true "Tracker to create"
// @Success 201 {object} domain.Tracker
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers [post]
func (h *TrackerHandler) Create(c echo.Context) error {
	var req trackerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	t, err := req.toTracker()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	if err := h.store.CreateTracker(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating tracker: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/v1/trackers/:id.
//
// @Summary Update a tracker
// @Description Updates an existing tracker by its UUID. Alert state fields
// @Description are owned by the processor and cannot be set here.
// @Tags trackers
// @Accept json
// @Produce json
// @Param id path string true "Tracker UUID"
// @Param tracker body trackerRequest true "Updated tracker"
// @Success 200 {object} domain.Tracker
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers/{id} [put]
func (h *TrackerHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req trackerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	t, err := req.toTracker()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	t.ID = id
	err = h.store.UpdateTracker(c.Request().Context(), t)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "tracker not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating tracker: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, t)
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled" example:"true"`
}

// SetEnabled handles PUT /api/v1/trackers/:id/enabled.
//
// @Summary Enable or disable a tracker
// @Description Sets the enabled status of a tracker.
// @Tags trackers
// @Accept json
// @Produce json
// @Param id path string true "Tracker UUID"
// @Param body body setEnabledRequest true "Enabled status"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers/{id}/enabled [put]
func (h *TrackerHandler) SetEnabled(c echo.Context) error {
	id := c.Param("id")

	var req setEnabledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	err := h.store.SetTrackerEnabled(c.Request().Context(), id, req.Enabled)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "tracker not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "setting tracker enabled: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "updated",
	})
}

// Delete handles DELETE /api/v1/trackers/:id.
//
// @Summary Delete a tracker
// @Description Deletes a tracker by its UUID.
// @Tags trackers
// @Param id path string true "Tracker UUID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trackers/{id} [delete]
func (h *TrackerHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteTracker(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting tracker: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
