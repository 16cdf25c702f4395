package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/infrastructure/database"
)

func TestIncidentRowConversion(t *testing.T) {
	lat, lng := 8.4612, 124.6418
	reporter := "resident-9"
	incident := &model.Incident{
		ID:          "inc-1",
		Type:        model.IncidentRisingWater,
		Description: "Knee deep near the creek",
		Location:    "Current GPS Location",
		Latitude:    &lat,
		Longitude:   &lng,
		ZoneID:      "zone1",
		Urgent:      true,
		ReportedBy:  &reporter,
		CreatedAt:   time.Date(2025, 7, 1, 6, 15, 0, 123000000, time.UTC),
	}

	row := IncidentToIncidentDB(incident)
	require.NotNil(t, row.Coordinates)
	assert.Equal(t, []float64{lng, lat}, row.Coordinates.Coordinates)
	require.NotNil(t, row.ZoneID)
	assert.Equal(t, "zone1", *row.ZoneID)

	back, err := row.ToIncident()
	require.NoError(t, err)
	assert.Equal(t, incident, back)
}

func TestIncidentRowWithoutCoordinates(t *testing.T) {
	incident := &model.Incident{ID: "inc-2", Type: model.IncidentOther, CreatedAt: time.Unix(0, 0).UTC()}
	row := IncidentToIncidentDB(incident)
	assert.Nil(t, row.Coordinates)
	assert.Nil(t, row.ZoneID)

	back, err := row.ToIncident()
	require.NoError(t, err)
	assert.Nil(t, back.Latitude)
	assert.Empty(t, back.ZoneID)

	row.CreatedAt = "yesterday"
	_, err = row.ToIncident()
	assert.Error(t, err)
}

func TestGetRecentOrdersAndLimitsInQuery(t *testing.T) {
	newest := IncidentToIncidentDB(&model.Incident{
		ID: "inc-2", Type: model.IncidentBlockedDrainage, CreatedAt: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
	})
	broken := &IncidentDB{ID: "inc-bad", Type: model.IncidentBlockedDrainage, CreatedAt: "yesterday"}
	older := IncidentToIncidentDB(&model.Incident{
		ID: "inc-1", Type: model.IncidentRisingWater, CreatedAt: time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC),
	})

	var queries []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/incidents", r.URL.Path)
		queries = append(queries, r.URL.Query())
		w.Header().Set("Content-Range", "0-2/3")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]*IncidentDB{newest, broken, older})
	}))
	defer srv.Close()

	client, err := database.NewSupabaseClient(srv.URL, "anon-key")
	require.NoError(t, err)
	repo := NewSupabaseIncidentsRepository(client)

	incidents, err := repo.GetRecent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "inc-2", incidents[0].ID)
	assert.Equal(t, "inc-1", incidents[1].ID)

	_, err = repo.GetRecent(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "created_at.desc.nullslast", queries[0].Get("order"))
	assert.Equal(t, "3", queries[0].Get("limit"))
	assert.Equal(t, "created_at.desc.nullslast", queries[1].Get("order"))
	assert.False(t, queries[1].Has("limit"))
}
