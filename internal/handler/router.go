package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers every route group; IncidentsHandler may be nil when Supabase is not configured
type Handlers struct {
	Sessions  *AlertSessionHandler
	Alerts    *AlertsHandler
	Incidents *IncidentsHandler
	Zones     *ZonesHandler
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), IdentityMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "AlertX API is running",
		})
	})

	router.GET("/zones", h.Zones.GetZones)
	router.GET("/classes", h.Zones.GetAlertClasses)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.Sessions.CreateSession)
		sessions.GET("/:id", h.Sessions.GetSession)
		sessions.DELETE("/:id", h.Sessions.CloseSession)

		sessions.POST("/:id/zones/:zoneId/toggle", h.Sessions.ToggleZone)
		sessions.POST("/:id/paths/toggle", h.Sessions.TogglePath)
		sessions.POST("/:id/selections/clear", h.Sessions.ClearSelections)

		sessions.PUT("/:id/kind", h.Sessions.SetKind)
		sessions.POST("/:id/kinds", h.Sessions.AddCustomKind)
		sessions.DELETE("/:id/kinds/*name", h.Sessions.RemoveCustomKind)

		sessions.PUT("/:id/message", h.Sessions.SetMessage)
		sessions.DELETE("/:id/message", h.Sessions.ClearMessage)
		sessions.POST("/:id/message/reset", h.Sessions.ResetMessage)

		sessions.POST("/:id/points/click", h.Sessions.AddImageClick)
		sessions.POST("/:id/points/geo", h.Sessions.AddGeoClick)
		sessions.DELETE("/:id/points", h.Sessions.ClearPoints)

		sessions.PUT("/:id/boundary", h.Sessions.SaveBoundary)
		sessions.GET("/:id/boundary", h.Sessions.LoadBoundary)
		sessions.DELETE("/:id/boundary", h.Sessions.ClearBoundary)

		sessions.POST("/:id/submit", h.Sessions.Submit)
	}

	router.GET("/alerts", h.Alerts.GetAlerts)
	router.GET("/alerts/:id", h.Alerts.GetAlert)

	if h.Incidents != nil {
		router.GET("/incidents/types", h.Incidents.GetIncidentTypes)
		router.POST("/incidents", h.Incidents.CreateIncident)
		router.GET("/incidents", h.Incidents.GetIncidents)
	}

	return router
}
