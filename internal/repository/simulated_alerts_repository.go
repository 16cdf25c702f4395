package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

// SimulatedAlertsRepository in-process delivery used for demos and offline operation.
// Create waits for the configured delay and keeps the record in memory.
type SimulatedAlertsRepository struct {
	mu     sync.RWMutex
	delay  time.Duration
	alerts map[string]model.AlertRecord
	fail   error
}

func NewSimulatedAlertsRepository(delay time.Duration) *SimulatedAlertsRepository {
	return &SimulatedAlertsRepository{
		delay:  delay,
		alerts: make(map[string]model.AlertRecord),
	}
}

// FailWith makes every following Create return err; nil restores normal operation
func (r *SimulatedAlertsRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

func (r *SimulatedAlertsRepository) Create(ctx context.Context, alert *model.AlertRecord) (string, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return "", r.fail
	}

	id := fmt.Sprintf("sim_%s", uuid.New().String())
	stored := *alert
	stored.ID = id
	r.alerts[id] = stored

	log.Printf("💾 Simulated alert stored: %s (%s)", id, alert.Type)
	return id, nil
}

func (r *SimulatedAlertsRepository) GetByID(ctx context.Context, id string) (*model.AlertRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.alerts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrAlertNotFound, id)
	}
	return &record, nil
}

func (r *SimulatedAlertsRepository) GetRecent(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	r.mu.RLock()
	out := make([]model.AlertRecord, 0, len(r.alerts))
	for _, a := range r.alerts {
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
