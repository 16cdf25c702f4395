package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/usecase"
)

// AlertSessionHandler HTTP surface of the broadcast screens
type AlertSessionHandler struct {
	sessions usecase.AlertSessionUseCase
}

func NewAlertSessionHandler(sessions usecase.AlertSessionUseCase) *AlertSessionHandler {
	return &AlertSessionHandler{
		sessions: sessions,
	}
}

// CreateSession POST /sessions
func (h *AlertSessionHandler) CreateSession(c *gin.Context) {
	var req model.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.sessions.CreateSession(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession GET /sessions/:id
func (h *AlertSessionHandler) GetSession(c *gin.Context) {
	h.respondView(c)(h.sessions.GetSession(c.Request.Context(), c.Param("id")))
}

// CloseSession DELETE /sessions/:id
func (h *AlertSessionHandler) CloseSession(c *gin.Context) {
	if err := h.sessions.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleZone POST /sessions/:id/zones/:zoneId/toggle
func (h *AlertSessionHandler) ToggleZone(c *gin.Context) {
	h.respondView(c)(h.sessions.ToggleZone(c.Request.Context(), c.Param("id"), c.Param("zoneId")))
}

// TogglePath POST /sessions/:id/paths/toggle
func (h *AlertSessionHandler) TogglePath(c *gin.Context) {
	var req model.TogglePathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respondView(c)(h.sessions.TogglePath(c.Request.Context(), c.Param("id"), req.Path))
}

// ClearSelections POST /sessions/:id/selections/clear
func (h *AlertSessionHandler) ClearSelections(c *gin.Context) {
	h.respondView(c)(h.sessions.ClearSelections(c.Request.Context(), c.Param("id")))
}

// SetKind PUT /sessions/:id/kind
func (h *AlertSessionHandler) SetKind(c *gin.Context) {
	var req model.SetKindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respondView(c)(h.sessions.SetKind(c.Request.Context(), c.Param("id"), req.Kind))
}

// AddCustomKind POST /sessions/:id/kinds
func (h *AlertSessionHandler) AddCustomKind(c *gin.Context) {
	var req model.AddCustomKindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respondView(c)(h.sessions.AddCustomKind(c.Request.Context(), c.Param("id"), req.Name))
}

// RemoveCustomKind DELETE /sessions/:id/kinds/*name. The wildcard keeps names containing "/".
func (h *AlertSessionHandler) RemoveCustomKind(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	h.respondView(c)(h.sessions.RemoveCustomKind(c.Request.Context(), c.Param("id"), name))
}

// SetMessage PUT /sessions/:id/message
func (h *AlertSessionHandler) SetMessage(c *gin.Context) {
	var req model.SetMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respondView(c)(h.sessions.SetMessage(c.Request.Context(), c.Param("id"), req.Message))
}

// ClearMessage DELETE /sessions/:id/message
func (h *AlertSessionHandler) ClearMessage(c *gin.Context) {
	h.respondView(c)(h.sessions.ClearMessage(c.Request.Context(), c.Param("id")))
}

// ResetMessage POST /sessions/:id/message/reset
func (h *AlertSessionHandler) ResetMessage(c *gin.Context) {
	h.respondView(c)(h.sessions.ResetMessage(c.Request.Context(), c.Param("id")))
}

// AddImageClick POST /sessions/:id/points/click
func (h *AlertSessionHandler) AddImageClick(c *gin.Context) {
	var req model.ImageClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.sessions.AddImageClick(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddGeoClick POST /sessions/:id/points/geo
func (h *AlertSessionHandler) AddGeoClick(c *gin.Context) {
	var req model.GeoClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.sessions.AddGeoClick(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearPoints DELETE /sessions/:id/points
func (h *AlertSessionHandler) ClearPoints(c *gin.Context) {
	h.respondView(c)(h.sessions.ClearPoints(c.Request.Context(), c.Param("id")))
}

// SaveBoundary PUT /sessions/:id/boundary
func (h *AlertSessionHandler) SaveBoundary(c *gin.Context) {
	var req model.SaveBoundaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.respondBoundary(c)(h.sessions.SaveBoundary(c.Request.Context(), c.Param("id"), req.Points))
}

// LoadBoundary GET /sessions/:id/boundary
func (h *AlertSessionHandler) LoadBoundary(c *gin.Context) {
	h.respondBoundary(c)(h.sessions.LoadBoundary(c.Request.Context(), c.Param("id")))
}

// ClearBoundary DELETE /sessions/:id/boundary
func (h *AlertSessionHandler) ClearBoundary(c *gin.Context) {
	h.respondBoundary(c)(h.sessions.ClearBoundary(c.Request.Context(), c.Param("id")))
}

// Submit POST /sessions/:id/submit
func (h *AlertSessionHandler) Submit(c *gin.Context) {
	record, err := h.sessions.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *AlertSessionHandler) respondView(c *gin.Context) func(*model.SessionView, error) {
	return func(view *model.SessionView, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func (h *AlertSessionHandler) respondBoundary(c *gin.Context) func(*model.BoundaryResponse, error) {
	return func(resp *model.BoundaryResponse, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
