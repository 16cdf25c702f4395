package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/config"
)

func offlineConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080},
		Dispatch: config.DispatchConfig{Mode: config.DispatchSimulated},
		Zones:    config.ZonesConfig{Source: config.ZonesStatic},
		Cache:    config.CacheConfig{Driver: config.CacheMemory},
		Alerts:   config.AlertsConfig{FeedLimit: 20},
	}
}

func TestBuildOffline(t *testing.T) {
	deps, err := Build(context.Background(), offlineConfig())
	require.NoError(t, err)
	defer deps.Close()

	assert.NotNil(t, deps.Alerts)
	assert.NotNil(t, deps.Cache)
	assert.Nil(t, deps.Incidents)

	zones, err := deps.Zones.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, zones, 3)
	assert.Nil(t, zones[0].Area)
}

func TestBuildWithZoneAreas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "areas.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"zone_id": "zone2"},
			"geometry": {"type": "Polygon", "coordinates": [[[124.642,8.457],[124.646,8.457],[124.646,8.460],[124.642,8.457]]]}
		}]
	}`), 0o600))

	cfg := offlineConfig()
	cfg.Zones.AreasFile = path
	deps, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer deps.Close()

	zones, err := deps.Zones.GetAll(context.Background())
	require.NoError(t, err)
	assert.Nil(t, zones[0].Area)
	assert.NotNil(t, zones[1].Area)

	cfg.Zones.AreasFile = filepath.Join(t.TempDir(), "missing.geojson")
	_, err = Build(context.Background(), cfg)
	assert.Error(t, err)
}
