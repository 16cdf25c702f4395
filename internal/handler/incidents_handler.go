package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroue/AlertX/internal/application"
	"github.com/kroue/AlertX/internal/domain/model"
)

// IncidentsHandler resident incident reports
type IncidentsHandler struct {
	incidents application.IncidentsService
}

func NewIncidentsHandler(incidents application.IncidentsService) *IncidentsHandler {
	return &IncidentsHandler{
		incidents: incidents,
	}
}

// CreateIncident POST /incidents
func (h *IncidentsHandler) CreateIncident(c *gin.Context) {
	var req model.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.incidents.CreateIncident(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetIncidents GET /incidents?limit=N
func (h *IncidentsHandler) GetIncidents(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	incidents, err := h.incidents.GetRecentIncidents(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.GetIncidentsResponse{Incidents: incidents})
}

// GetIncidentTypes GET /incidents/types
func (h *IncidentsHandler) GetIncidentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": model.GetIncidentTypes()})
}
