package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

const alertsCollection = "alerts"

// FirestoreAlertsRepository writes dispatched alerts to the collection watched by the
// delivery backend and reads them back for the resident feed
type FirestoreAlertsRepository struct {
	client *firestore.Client
}

// NewFirestoreAlertsRepository creates a repository on the given client
func NewFirestoreAlertsRepository(client *firestore.Client) *FirestoreAlertsRepository {
	return &FirestoreAlertsRepository{
		client: client,
	}
}

// Create adds the alert document and returns the generated document id
func (r *FirestoreAlertsRepository) Create(ctx context.Context, alert *model.AlertRecord) (string, error) {
	ref, _, err := r.client.Collection(alertsCollection).Add(ctx, alert.ToFirestoreAlert())
	if err != nil {
		log.Printf("❌ Failed to write alert (%s): %v", alert.Type, err)
		return "", fmt.Errorf("failed to write alert: %w", err)
	}

	log.Printf("💾 Alert written to Firestore: %s", ref.ID)
	return ref.ID, nil
}

// GetByID reads one alert, including the status updated by the delivery backend
func (r *FirestoreAlertsRepository) GetByID(ctx context.Context, id string) (*model.AlertRecord, error) {
	doc, err := r.client.Collection(alertsCollection).Doc(id).Get(ctx)
	if err != nil {
		if msg := err.Error(); strings.Contains(msg, "NotFound") || strings.Contains(msg, "not found") {
			return nil, fmt.Errorf("%w: %s", repository.ErrAlertNotFound, id)
		}
		return nil, fmt.Errorf("failed to read alert %s: %w", id, err)
	}

	return decodeAlert(doc)
}

// GetRecent newest alerts first
func (r *FirestoreAlertsRepository) GetRecent(ctx context.Context, limit int) ([]model.AlertRecord, error) {
	iter := r.client.Collection(alertsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	alerts := []model.AlertRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list alerts: %w", err)
		}

		record, err := decodeAlert(doc)
		if err != nil {
			log.Printf("⚠️ Skipping unreadable alert %s: %v", doc.Ref.ID, err)
			continue
		}
		alerts = append(alerts, *record)
	}

	log.Printf("✅ Retrieved %d alerts", len(alerts))
	return alerts, nil
}

func decodeAlert(doc *firestore.DocumentSnapshot) (*model.AlertRecord, error) {
	var data model.FirestoreAlert
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("failed to decode alert %s: %w", doc.Ref.ID, err)
	}
	return data.ToAlertRecord(doc.Ref.ID)
}
