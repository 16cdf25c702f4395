package repository

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
)

func TestLocationGeoPointRoundTrip(t *testing.T) {
	lat, lng := 8.459, 124.643
	gp := LocationToGeoPoint(&lat, &lng)
	require.NotNil(t, gp)
	assert.Equal(t, "Point", gp.Type)
	assert.Equal(t, []float64{124.643, 8.459}, gp.Coordinates)

	la, ln := GeoPointToLocation(gp)
	require.NotNil(t, la)
	assert.Equal(t, lat, *la)
	assert.Equal(t, lng, *ln)

	assert.Nil(t, LocationToGeoPoint(nil, &lng))
	la, ln = GeoPointToLocation(&GeoPoint{Type: "Point", Coordinates: []float64{1}})
	assert.Nil(t, la)
	assert.Nil(t, ln)
}

func TestPolygonFromJSON(t *testing.T) {
	poly, err := PolygonFromJSON([]byte(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`))
	require.NoError(t, err)
	require.NotNil(t, poly)
	assert.Len(t, poly.Coordinates[0], 4)

	poly, err = PolygonFromJSON(nil)
	assert.NoError(t, err)
	assert.Nil(t, poly)

	poly, err = PolygonFromJSON([]byte("null"))
	assert.NoError(t, err)
	assert.Nil(t, poly)

	_, err = PolygonFromJSON([]byte(`{"type":"Point","coordinates":[0,0]}`))
	assert.Error(t, err)

	_, err = PolygonFromJSON([]byte(`{"type":"Polygon","coordinates":[[[0,0]]]}`))
	assert.Error(t, err)
}

func TestOrbToGeoPolygon(t *testing.T) {
	poly := OrbToGeoPolygon(orb.Bound{Min: orb.Point{124.64, 8.45}, Max: orb.Point{124.65, 8.46}}.ToPolygon())
	assert.Equal(t, "Polygon", poly.Type)
	require.Len(t, poly.Coordinates, 1)
	ring := poly.Coordinates[0]
	assert.Len(t, ring, 5)
	assert.Equal(t, []float64{124.64, 8.45}, ring[0])
	assert.Equal(t, ring[0], ring[4])
}

func TestAttachZoneAreas(t *testing.T) {
	raw := []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"zone_id":"zone2"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
		{"type":"Feature","properties":{"zone_id":"zone9"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}
	]}`)

	defaults := model.DefaultZones()
	zones, err := AttachZoneAreas(defaults, raw)
	require.NoError(t, err)
	require.Len(t, zones, 3)
	assert.Nil(t, zones[0].Area)
	require.NotNil(t, zones[1].Area)
	assert.Equal(t, "Polygon", zones[1].Area.Type)
	assert.Nil(t, defaults[1].Area, "input is not modified")

	_, err = AttachZoneAreas(defaults, []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"zone_id":"zone1"},"geometry":{"type":"Point","coordinates":[0,0]}}
	]}`))
	assert.Error(t, err)

	_, err = AttachZoneAreas(defaults, []byte(`not json`))
	assert.Error(t, err)
}
