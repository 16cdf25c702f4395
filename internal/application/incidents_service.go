package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/domain/service"
)

const defaultIncidentLimit = 50

// ZoneResolver maps a coordinate to a zone id
type ZoneResolver interface {
	Locate(lat, lng float64) (string, bool)
}

// IncidentsService resident incident reporting
type IncidentsService interface {
	// CreateIncident validates and stores a report, resolving its zone when coordinates are given
	CreateIncident(ctx context.Context, req *model.CreateIncidentRequest) (*model.CreateIncidentResponse, error)

	// GetRecentIncidents newest reports first
	GetRecentIncidents(ctx context.Context, limit int) ([]model.Incident, error)
}

type incidentsServiceImpl struct {
	incidentsRepo repository.IncidentsRepository
	zones         ZoneResolver
	identity      repository.IdentityProvider
	now           func() time.Time
}

// NewIncidentsService zones and identity may be nil
func NewIncidentsService(incidentsRepo repository.IncidentsRepository, zones ZoneResolver, identity repository.IdentityProvider) IncidentsService {
	return &incidentsServiceImpl{
		incidentsRepo: incidentsRepo,
		zones:         zones,
		identity:      identity,
		now:           time.Now,
	}
}

func (s *incidentsServiceImpl) CreateIncident(ctx context.Context, req *model.CreateIncidentRequest) (*model.CreateIncidentResponse, error) {
	if err := s.validateCreateIncidentRequest(req); err != nil {
		return nil, err
	}

	incident := &model.Incident{
		ID:            uuid.New().String(),
		Type:          req.Type,
		Description:   strings.TrimSpace(req.Description),
		Location:      strings.TrimSpace(req.Location),
		Urgent:        req.Urgent,
		PhotoAttached: req.PhotoAttached,
		CreatedAt:     s.now().UTC(),
	}

	if req.Coordinates != nil {
		lat, lng := req.Coordinates.Latitude, req.Coordinates.Longitude
		incident.Latitude = &lat
		incident.Longitude = &lng
		if s.zones != nil {
			if zoneID, ok := s.zones.Locate(lat, lng); ok {
				incident.ZoneID = zoneID
			} else {
				log.Printf("⚠️ Incident location outside every zone: %.5f,%.5f", lat, lng)
			}
		}
	}

	if s.identity != nil {
		if uid, ok := s.identity.CurrentUserID(ctx); ok {
			incident.ReportedBy = &uid
		}
	}

	if err := s.incidentsRepo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to store incident: %w", err)
	}

	if incident.Urgent {
		log.Printf("🚨 Urgent incident reported: %s (%s) zone=%q", incident.ID, incident.Type, incident.ZoneID)
	}

	return &model.CreateIncidentResponse{
		Status:     "success",
		IncidentID: incident.ID,
		ZoneID:     incident.ZoneID,
	}, nil
}

func (s *incidentsServiceImpl) GetRecentIncidents(ctx context.Context, limit int) ([]model.Incident, error) {
	if limit <= 0 {
		limit = defaultIncidentLimit
	}
	incidents, err := s.incidentsRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

// validateCreateIncidentRequest first failing field wins
func (s *incidentsServiceImpl) validateCreateIncidentRequest(req *model.CreateIncidentRequest) error {
	if req == nil {
		return &service.ValidationError{Field: "body", Message: "request body is required"}
	}
	if !isIncidentType(req.Type) {
		return &service.ValidationError{Field: "type", Message: "type must be one of: " + strings.Join(model.GetIncidentTypes(), ", ")}
	}
	if strings.TrimSpace(req.Description) == "" {
		return &service.ValidationError{Field: "description", Message: "description is required"}
	}
	if strings.TrimSpace(req.Location) == "" {
		return &service.ValidationError{Field: "location", Message: "location is required"}
	}
	if c := req.Coordinates; c != nil {
		if c.Latitude < -90 || c.Latitude > 90 {
			return &service.ValidationError{Field: "coordinates.latitude", Message: "latitude must be between -90 and 90"}
		}
		if c.Longitude < -180 || c.Longitude > 180 {
			return &service.ValidationError{Field: "coordinates.longitude", Message: "longitude must be between -180 and 180"}
		}
	}
	return nil
}

func isIncidentType(t string) bool {
	for _, known := range model.GetIncidentTypes() {
		if t == known {
			return true
		}
	}
	return false
}
