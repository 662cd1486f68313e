package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dealdrop/dealdrop/internal/catalog"
	"github.com/dealdrop/dealdrop/internal/store"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

const defaultHistoryLimit = 100

// HistoryHandler handles price history queries.
type HistoryHandler struct {
	store store.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// Get handles GET /api/v1/history/:asin.
//
// @Summary Get price history for an ASIN
// @Description Returns observed price points for a product, newest first.
// @Tags history
// @Produce json
// @Param asin path string true "Product ASIN"
// @Param limit query int false "Maximum number of points to return" default(100)
// @Success 200 {array} domain.PricePoint
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history/{asin} [get]
func (h *HistoryHandler) Get(c echo.Context) error {
	asin := c.Param("asin")
	if !catalog.ValidASIN(asin) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid asin",
		})
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	points, err := h.store.ListPriceHistory(c.Request().Context(), asin, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing price history: " + err.Error(),
		})
	}

	if points == nil {
		points = []domain.PricePoint{}
	}

	return c.JSON(http.StatusOK, points)
}
