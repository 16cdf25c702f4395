package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/service"
)

type mockIncidentsRepo struct {
	mock.Mock
}

func (m *mockIncidentsRepo) Create(ctx context.Context, incident *model.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *mockIncidentsRepo) GetRecent(ctx context.Context, limit int) ([]model.Incident, error) {
	args := m.Called(ctx, limit)
	incidents, _ := args.Get(0).([]model.Incident)
	return incidents, args.Error(1)
}

type fixedResolver struct {
	zoneID string
}

func (r fixedResolver) Locate(lat, lng float64) (string, bool) {
	return r.zoneID, r.zoneID != ""
}

type fixedIdentity string

func (f fixedIdentity) CurrentUserID(context.Context) (string, bool) {
	return string(f), f != ""
}

func validRequest() *model.CreateIncidentRequest {
	return &model.CreateIncidentRequest{
		Type:        model.IncidentBlockedDrainage,
		Description: "  Canal clogged with debris  ",
		Location:    "Purok 3 corner",
	}
}

func TestCreateIncident_Validation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(r *model.CreateIncidentRequest)
		field string
	}{
		{"unknown type", func(r *model.CreateIncidentRequest) { r.Type = "Earthquake" }, "type"},
		{"blank description", func(r *model.CreateIncidentRequest) { r.Description = "   " }, "description"},
		{"blank location", func(r *model.CreateIncidentRequest) { r.Location = "" }, "location"},
		{"latitude", func(r *model.CreateIncidentRequest) {
			r.Coordinates = &model.Location{Latitude: 91, Longitude: 124}
		}, "coordinates.latitude"},
		{"longitude", func(r *model.CreateIncidentRequest) {
			r.Coordinates = &model.Location{Latitude: 8, Longitude: -181}
		}, "coordinates.longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockIncidentsRepo)
			svc := NewIncidentsService(repo, nil, nil)

			req := validRequest()
			tt.mut(req)
			_, err := svc.CreateIncident(context.Background(), req)

			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateIncident_ResolvesZoneAndReporter(t *testing.T) {
	repo := new(mockIncidentsRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Incident) bool {
		return i.ZoneID == "zone2" &&
			i.ReportedBy != nil && *i.ReportedBy == "resident-4" &&
			i.Description == "Canal clogged with debris" &&
			i.Latitude != nil && *i.Latitude == 8.459
	})).Return(nil).Once()

	svc := NewIncidentsService(repo, fixedResolver{zoneID: "zone2"}, fixedIdentity("resident-4"))
	req := validRequest()
	req.Coordinates = &model.Location{Latitude: 8.459, Longitude: 124.643}
	req.Urgent = true

	resp, err := svc.CreateIncident(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "zone2", resp.ZoneID)
	assert.NotEmpty(t, resp.IncidentID)
	repo.AssertExpectations(t)
}

func TestCreateIncident_OutsideZonesAndAnonymous(t *testing.T) {
	repo := new(mockIncidentsRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Incident) bool {
		return i.ZoneID == "" && i.ReportedBy == nil
	})).Return(nil).Once()

	svc := NewIncidentsService(repo, fixedResolver{}, fixedIdentity(""))
	req := validRequest()
	req.Coordinates = &model.Location{Latitude: 10, Longitude: 120}

	resp, err := svc.CreateIncident(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.ZoneID)
	repo.AssertExpectations(t)
}

func TestCreateIncident_RepositoryError(t *testing.T) {
	boom := errors.New("supabase unavailable")
	repo := new(mockIncidentsRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(boom)

	_, err := NewIncidentsService(repo, nil, nil).CreateIncident(context.Background(), validRequest())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to store incident")
}

func TestGetRecentIncidents(t *testing.T) {
	repo := new(mockIncidentsRepo)
	repo.On("GetRecent", mock.Anything, defaultIncidentLimit).Return([]model.Incident{{ID: "a"}}, nil).Once()
	repo.On("GetRecent", mock.Anything, 3).Return(nil, errors.New("down")).Once()

	svc := NewIncidentsService(repo, nil, nil)

	incidents, err := svc.GetRecentIncidents(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, incidents, 1)

	_, err = svc.GetRecentIncidents(context.Background(), 3)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}
