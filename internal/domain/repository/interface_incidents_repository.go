package repository

import (
	"context"

	"github.com/kroue/AlertX/internal/domain/model"
)

type IncidentsRepository interface {
	Create(ctx context.Context, incident *model.Incident) error
	GetRecent(ctx context.Context, limit int) ([]model.Incident, error)
}
