package repository

import (
	"context"

	"github.com/kroue/AlertX/internal/domain/model"
)

// ZonesRepository read-only zone reference data, in display order
type ZonesRepository interface {
	GetAll(ctx context.Context) ([]model.Zone, error)
}
