package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/infrastructure/database"
)

type PostgresZonesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresZonesRepository(client *database.PostgreSQLClient) repository.ZonesRepository {
	return &PostgresZonesRepository{
		client: client,
	}
}

// ZoneResult raw zones row; paths and area are JSONB
type ZoneResult struct {
	ID    string
	Name  string
	Paths []byte
	Area  []byte
}

// ToZone converts the row to model.Zone
func (zr *ZoneResult) ToZone() (*model.Zone, error) {
	var paths []string
	if len(zr.Paths) > 0 {
		if err := json.Unmarshal(zr.Paths, &paths); err != nil {
			return nil, fmt.Errorf("paths JSONB parse error: %w", err)
		}
	}
	if paths == nil {
		paths = []string{}
	}

	area, err := PolygonFromJSON(zr.Area)
	if err != nil {
		return nil, err
	}

	return &model.Zone{
		ID:    zr.ID,
		Name:  zr.Name,
		Paths: paths,
		Area:  area,
	}, nil
}

// GetAll zones ordered by display position
func (r *PostgresZonesRepository) GetAll(ctx context.Context) ([]model.Zone, error) {
	query := `SELECT id, name, paths, area FROM zones ORDER BY position, id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []model.Zone
	for rows.Next() {
		var result ZoneResult
		if err := rows.Scan(&result.ID, &result.Name, &result.Paths, &result.Area); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}

		zone, err := result.ToZone()
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", result.ID, err)
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	log.Printf("✅ Loaded %d zones from PostgreSQL", len(zones))
	return zones, nil
}
