package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kroue/AlertX/internal/usecase"
)

// AlertsHandler resident-facing active alert feed
type AlertsHandler struct {
	feed usecase.AlertsFeedUseCase
}

func NewAlertsHandler(feed usecase.AlertsFeedUseCase) *AlertsHandler {
	return &AlertsHandler{
		feed: feed,
	}
}

// GetAlerts GET /alerts?limit=N
func (h *AlertsHandler) GetAlerts(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	resp, err := h.feed.GetRecentAlerts(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAlert GET /alerts/:id
func (h *AlertsHandler) GetAlert(c *gin.Context) {
	record, err := h.feed.GetAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// parseLimit optional positive limit query parameter; 0 when absent
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "limit must be a positive integer",
		})
		return 0, false
	}
	return limit, true
}
