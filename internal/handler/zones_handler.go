package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

type ZonesHandler struct {
	zonesRepo repository.ZonesRepository
}

func NewZonesHandler(zonesRepo repository.ZonesRepository) *ZonesHandler {
	return &ZonesHandler{
		zonesRepo: zonesRepo,
	}
}

// GetZones GET /zones
func (h *ZonesHandler) GetZones(c *gin.Context) {
	zones, err := h.zonesRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if zones == nil {
		zones = []model.Zone{}
	}
	c.JSON(http.StatusOK, gin.H{"zones": zones})
}

// GetAlertClasses GET /classes
func (h *ZonesHandler) GetAlertClasses(c *gin.Context) {
	classes := []gin.H{}
	for _, name := range model.GetAllAlertClasses() {
		cfg, _ := model.GetAlertClass(name)
		classes = append(classes, gin.H{
			"name":          cfg.Name,
			"default_kinds": cfg.DefaultKinds,
			"initial_kind":  cfg.InitialKind,
			"message_cap":   cfg.MessageCap,
			"targeting":     cfg.Targeting,
		})
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}
