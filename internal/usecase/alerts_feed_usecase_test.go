package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
	domainrepo "github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/repository"
)

func TestAlertsFeed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSimulatedAlertsRepository(0)
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, &model.AlertRecord{
			Type:      model.KindFlood,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Status:    model.AlertQueued,
		})
		require.NoError(t, err)
	}

	feed := NewAlertsFeedUseCase(repo, 3)

	resp, err := feed.GetRecentAlerts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 3)
	assert.True(t, resp.Alerts[0].CreatedAt.After(resp.Alerts[1].CreatedAt))

	resp, err = feed.GetRecentAlerts(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 3, "limit is capped by the feed limit")

	resp, err = feed.GetRecentAlerts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 2)

	got, err := feed.GetAlert(ctx, resp.Alerts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Alerts[0].ID, got.ID)

	_, err = feed.GetAlert(ctx, "missing")
	assert.ErrorIs(t, err, domainrepo.ErrAlertNotFound)
}

func TestAlertsFeedEmpty(t *testing.T) {
	resp, err := NewAlertsFeedUseCase(repository.NewSimulatedAlertsRepository(0), 20).GetRecentAlerts(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, resp.Alerts)
	assert.Empty(t, resp.Alerts)
}
