package model

import "time"

// Incident types offered by the resident app
const (
	IncidentRisingWater           = "Rising Water"
	IncidentBlockedDrainage       = "Blocked Drainage"
	IncidentPersonNeedingRescue   = "Person Needing Rescue"
	IncidentDamagedInfrastructure = "Damaged Infrastructure"
	IncidentOther                 = "Other"
)

// GetIncidentTypes incident types in display order
func GetIncidentTypes() []string {
	return []string{
		IncidentRisingWater,
		IncidentBlockedDrainage,
		IncidentPersonNeedingRescue,
		IncidentDamagedInfrastructure,
		IncidentOther,
	}
}

// Incident a resident-submitted incident report
type Incident struct {
	ID            string    `json:"id" db:"id"`
	Type          string    `json:"type" db:"type"`
	Description   string    `json:"description" db:"description"`
	Location      string    `json:"location" db:"location"` // free text or "Current GPS Location"
	Latitude      *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64  `json:"longitude,omitempty" db:"longitude"`
	ZoneID        string    `json:"zone_id,omitempty" db:"zone_id"`
	Urgent        bool      `json:"urgent" db:"urgent"`
	PhotoAttached bool      `json:"photo_attached" db:"photo_attached"`
	ReportedBy    *string   `json:"reported_by,omitempty" db:"reported_by"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreateIncidentRequest struct {
	Type          string    `json:"type" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Coordinates   *Location `json:"coordinates"`
	Urgent        bool      `json:"urgent"`
	PhotoAttached bool      `json:"photo_attached"`
}

type CreateIncidentResponse struct {
	Status     string `json:"status"`
	IncidentID string `json:"incident_id"`
	ZoneID     string `json:"zone_id,omitempty"`
}

type GetIncidentsResponse struct {
	Incidents []Incident `json:"incidents"`
}

// Location latitude/longitude pair as sent by clients
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}
