package repository

import (
	"context"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

// StaticZonesRepository serves a fixed zone list
type StaticZonesRepository struct {
	zones []model.Zone
}

// NewStaticZonesRepository nil zones fall back to the built-in defaults
func NewStaticZonesRepository(zones []model.Zone) repository.ZonesRepository {
	if zones == nil {
		zones = model.DefaultZones()
	}
	return &StaticZonesRepository{zones: zones}
}

func (r *StaticZonesRepository) GetAll(ctx context.Context) ([]model.Zone, error) {
	out := make([]model.Zone, len(r.zones))
	for i, z := range r.zones {
		z.Paths = append([]string{}, z.Paths...)
		out[i] = z
	}
	return out, nil
}
