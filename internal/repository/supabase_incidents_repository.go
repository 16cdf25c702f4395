package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/infrastructure/database"
)

const incidentsTable = "incidents"

type SupabaseIncidentsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseIncidentsRepository(client *database.SupabaseClient) repository.IncidentsRepository {
	return &SupabaseIncidentsRepository{
		client: client,
	}
}

func (r *SupabaseIncidentsRepository) Create(ctx context.Context, incident *model.Incident) error {
	data, err := json.Marshal(IncidentToIncidentDB(incident))
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	_, _, err = r.client.GetClient().From(incidentsTable).Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	log.Printf("💾 Incident stored: %s (%s)", incident.ID, incident.Type)
	return nil
}

// GetRecent newest reports first, ordered and limited by PostgREST
func (r *SupabaseIncidentsRepository) GetRecent(ctx context.Context, limit int) ([]model.Incident, error) {
	query := r.client.GetClient().From(incidentsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if limit > 0 {
		query = query.Limit(limit, "")
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	var rows []IncidentDB
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidents: %w", err)
	}

	incidents := make([]model.Incident, 0, len(rows))
	for i := range rows {
		incident, err := rows[i].ToIncident()
		if err != nil {
			log.Printf("⚠️ Skipping incident %s: %v", rows[i].ID, err)
			continue
		}
		incidents = append(incidents, *incident)
	}

	return incidents, nil
}

// IncidentToIncidentDB converts a report to its row layout
func IncidentToIncidentDB(incident *model.Incident) *IncidentDB {
	row := &IncidentDB{
		ID:            incident.ID,
		Type:          incident.Type,
		Description:   incident.Description,
		Location:      incident.Location,
		Coordinates:   LocationToGeoPoint(incident.Latitude, incident.Longitude),
		Urgent:        incident.Urgent,
		PhotoAttached: incident.PhotoAttached,
		ReportedBy:    incident.ReportedBy,
		CreatedAt:     incident.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if incident.ZoneID != "" {
		zoneID := incident.ZoneID
		row.ZoneID = &zoneID
	}
	return row
}

// ToIncident converts a row back to the domain model
func (row *IncidentDB) ToIncident() (*model.Incident, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", row.CreatedAt, err)
	}

	lat, lng := GeoPointToLocation(row.Coordinates)
	incident := &model.Incident{
		ID:            row.ID,
		Type:          row.Type,
		Description:   row.Description,
		Location:      row.Location,
		Latitude:      lat,
		Longitude:     lng,
		Urgent:        row.Urgent,
		PhotoAttached: row.PhotoAttached,
		ReportedBy:    row.ReportedBy,
		CreatedAt:     createdAt,
	}
	if row.ZoneID != nil {
		incident.ZoneID = *row.ZoneID
	}
	return incident, nil
}
