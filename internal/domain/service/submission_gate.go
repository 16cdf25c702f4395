package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

// ValidationError a reason the draft cannot be sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DispatchError the delivery collaborator rejected the write
type DispatchError struct {
	Cause error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("alert dispatch failed: %v", e.Cause)
}

func (e *DispatchError) Unwrap() error { return e.Cause }

// ValidateDraft lists every failing check. The message cap is not one of them.
func ValidateDraft(d model.AlertDraft) []*ValidationError {
	var issues []*ValidationError
	if strings.TrimSpace(d.Message) == "" {
		issues = append(issues, &ValidationError{Field: "message", Message: "message must not be empty"})
	}
	if !hasTargets(d) {
		issues = append(issues, &ValidationError{Field: "targets", Message: targetHint(d.Targeting)})
	}
	return issues
}

// CanSubmit true iff the message is non-blank and the class's targeting mode has a target
func CanSubmit(d model.AlertDraft) bool {
	return len(ValidateDraft(d)) == 0
}

func hasTargets(d model.AlertDraft) bool {
	switch d.Targeting {
	case model.TargetZones:
		return len(d.Zones) > 0
	case model.TargetMapPoints:
		return len(d.Zones) > 0 || len(d.Paths) > 0 || len(d.Points) > 0
	default:
		return len(d.Zones) > 0 || len(d.Paths) > 0
	}
}

func targetHint(mode model.TargetingMode) string {
	switch mode {
	case model.TargetZones:
		return "select at least one zone"
	case model.TargetMapPoints:
		return "select at least one zone, path or map point"
	default:
		return "select at least one zone or path"
	}
}

// SubmissionGate builds alert records and hands them to the delivery collaborator
type SubmissionGate struct {
	delivery repository.AlertDeliveryRepository
	identity repository.IdentityProvider
	now      func() time.Time
}

// NewSubmissionGate identity may be nil, in which case sentBy stays empty
func NewSubmissionGate(delivery repository.AlertDeliveryRepository, identity repository.IdentityProvider) *SubmissionGate {
	return &SubmissionGate{
		delivery: delivery,
		identity: identity,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for createdAt
func (g *SubmissionGate) WithClock(now func() time.Time) *SubmissionGate {
	g.now = now
	return g
}

// Dispatch sends a submittable draft. Returns *ValidationError when the draft is not
// submittable and *DispatchError when the write fails. The draft's owner is never mutated.
func (g *SubmissionGate) Dispatch(ctx context.Context, d model.AlertDraft) (*model.AlertRecord, error) {
	if issues := ValidateDraft(d); len(issues) > 0 {
		return nil, issues[0]
	}

	record := g.buildRecord(ctx, d)

	id, err := g.delivery.Create(ctx, record)
	if err != nil {
		log.Printf("❌ Alert dispatch failed (%s/%s): %v", record.Class, record.Type, err)
		return nil, &DispatchError{Cause: err}
	}

	record.ID = id
	log.Printf("✅ Alert dispatched: %s (%s, %d zones, %d paths, %d points)",
		id, record.Type, len(record.Zones), len(record.Paths), len(record.MapPoints))
	return record, nil
}

func (g *SubmissionGate) buildRecord(ctx context.Context, d model.AlertDraft) *model.AlertRecord {
	record := &model.AlertRecord{
		Class:     d.Class,
		Type:      d.Kind,
		Zones:     append([]string{}, d.Zones...),
		Paths:     append([]string{}, d.Paths...),
		Message:   d.Message,
		MapPoints: append([]model.Point{}, d.Points...),
		CreatedAt: g.now().UTC(),
		Status:    model.AlertQueued,
	}
	if g.identity != nil {
		if uid, ok := g.identity.CurrentUserID(ctx); ok {
			record.SentBy = &uid
		}
	}
	return record
}
