package repository

import (
	"context"
	"errors"

	"github.com/kroue/AlertX/internal/domain/model"
)

// AlertDeliveryRepository the external delivery collaborator.
// Create persists the record and returns the generated identifier.
type AlertDeliveryRepository interface {
	Create(ctx context.Context, alert *model.AlertRecord) (string, error)
}

// AlertsRepository delivery plus the read side used by the resident alert feed
type AlertsRepository interface {
	AlertDeliveryRepository
	GetByID(ctx context.Context, id string) (*model.AlertRecord, error)
	GetRecent(ctx context.Context, limit int) ([]model.AlertRecord, error)
}

// ErrAlertNotFound returned by GetByID for unknown identifiers
var ErrAlertNotFound = errors.New("alert not found")
