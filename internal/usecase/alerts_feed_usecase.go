package usecase

import (
	"context"
	"fmt"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

type AlertsFeedUseCase interface {
	// GetRecentAlerts newest alerts first; limit<=0 uses the configured feed limit
	GetRecentAlerts(ctx context.Context, limit int) (*model.GetAlertsResponse, error)

	GetAlert(ctx context.Context, id string) (*model.AlertRecord, error)
}

type alertsFeedUseCaseImpl struct {
	alertsRepo repository.AlertsRepository
	feedLimit  int
}

func NewAlertsFeedUseCase(alertsRepo repository.AlertsRepository, feedLimit int) AlertsFeedUseCase {
	return &alertsFeedUseCaseImpl{
		alertsRepo: alertsRepo,
		feedLimit:  feedLimit,
	}
}

func (u *alertsFeedUseCaseImpl) GetRecentAlerts(ctx context.Context, limit int) (*model.GetAlertsResponse, error) {
	if limit <= 0 || limit > u.feedLimit {
		limit = u.feedLimit
	}

	alerts, err := u.alertsRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert feed: %w", err)
	}
	if alerts == nil {
		alerts = []model.AlertRecord{}
	}
	return &model.GetAlertsResponse{Alerts: alerts}, nil
}

func (u *alertsFeedUseCaseImpl) GetAlert(ctx context.Context, id string) (*model.AlertRecord, error) {
	return u.alertsRepo.GetByID(ctx, id)
}
