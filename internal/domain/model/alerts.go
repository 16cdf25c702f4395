package model

import (
	"fmt"
	"time"
)

// AlertStatus delivery status, owned by the external delivery collaborator
type AlertStatus string

const (
	AlertQueued AlertStatus = "queued"
	AlertSent   AlertStatus = "sent"
	AlertFailed AlertStatus = "failed"
)

// ParseAlertStatus validates a stored status value
func ParseAlertStatus(s string) (AlertStatus, error) {
	switch AlertStatus(s) {
	case AlertQueued, AlertSent, AlertFailed:
		return AlertStatus(s), nil
	default:
		return "", fmt.Errorf("unknown alert status: %q", s)
	}
}

// AlertDraft the composed, not yet dispatched alert
type AlertDraft struct {
	Class       string        `json:"class"`
	Targeting   TargetingMode `json:"targeting"`
	Kind        string        `json:"kind"`
	CustomKinds []string      `json:"custom_kinds"`
	Message     string        `json:"message"`
	MessageCap  int           `json:"message_cap"`
	Zones       []string      `json:"zones"` // selected zone ids
	Paths       []string      `json:"paths"` // explicit paths outside selected zones
	Points      []Point       `json:"points"`
}

// AlertRecord the immutable record handed to the delivery collaborator
type AlertRecord struct {
	ID        string      `json:"id"`
	Class     string      `json:"class"`
	Type      string      `json:"type"`
	Zones     []string    `json:"zones"`
	Paths     []string    `json:"paths"`
	Message   string      `json:"message"`
	MapPoints []Point     `json:"map_points"`
	CreatedAt time.Time   `json:"created_at"`
	SentBy    *string     `json:"sent_by,omitempty"`
	Status    AlertStatus `json:"status"`
}

// FirestoreAlert document layout of the alerts collection
type FirestoreAlert struct {
	Class     string    `firestore:"class"`
	Type      string    `firestore:"type"`
	Zones     []string  `firestore:"zones"`
	Paths     []string  `firestore:"paths"`
	Message   string    `firestore:"message"`
	MapPoints []Point   `firestore:"mapPoints"`
	CreatedAt time.Time `firestore:"createdAt"`
	SentBy    *string   `firestore:"sentBy"`
	Status    string    `firestore:"status"`
}

// ToFirestoreAlert converts the record for storage
func (a *AlertRecord) ToFirestoreAlert() *FirestoreAlert {
	return &FirestoreAlert{
		Class:     a.Class,
		Type:      a.Type,
		Zones:     nonNil(a.Zones),
		Paths:     nonNil(a.Paths),
		Message:   a.Message,
		MapPoints: a.MapPoints,
		CreatedAt: a.CreatedAt,
		SentBy:    a.SentBy,
		Status:    string(a.Status),
	}
}

// ToAlertRecord converts a stored document back to a record
func (fa *FirestoreAlert) ToAlertRecord(id string) (*AlertRecord, error) {
	status, err := ParseAlertStatus(fa.Status)
	if err != nil {
		return nil, err
	}
	return &AlertRecord{
		ID:        id,
		Class:     fa.Class,
		Type:      fa.Type,
		Zones:     fa.Zones,
		Paths:     fa.Paths,
		Message:   fa.Message,
		MapPoints: fa.MapPoints,
		CreatedAt: fa.CreatedAt,
		SentBy:    fa.SentBy,
		Status:    status,
	}, nil
}

// GetAlertsResponse response of the active alert feed
type GetAlertsResponse struct {
	Alerts []AlertRecord `json:"alerts"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
