package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
)

func TestStaticZonesRepository(t *testing.T) {
	repo := NewStaticZonesRepository(nil)
	zones, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultZones(), zones)

	zones[0].Paths[0] = "changed"
	again, _ := repo.GetAll(context.Background())
	assert.Equal(t, "Zone 1 - Path A", again[0].Paths[0])
}

func TestZoneResultToZone(t *testing.T) {
	row := ZoneResult{
		ID:    "zone1",
		Name:  "Zone 1",
		Paths: []byte(`["Zone 1 - Path A","Zone 1 - Path B"]`),
		Area:  []byte(`{"type":"Polygon","coordinates":[[[124.64,8.46],[124.643,8.46],[124.643,8.462],[124.64,8.46]]]}`),
	}
	zone, err := row.ToZone()
	require.NoError(t, err)
	assert.Equal(t, []string{"Zone 1 - Path A", "Zone 1 - Path B"}, zone.Paths)
	require.NotNil(t, zone.Area)

	bare, err := (&ZoneResult{ID: "z", Name: "Z"}).ToZone()
	require.NoError(t, err)
	assert.Equal(t, []string{}, bare.Paths)
	assert.Nil(t, bare.Area)

	_, err = (&ZoneResult{ID: "z", Paths: []byte(`{`)}).ToZone()
	assert.Error(t, err)
}
