package repository

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kroue/AlertX/internal/domain/model"
)

// GeoPoint PostGIS POINT as GeoJSON
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LocationToGeoPoint converts a lat/lng pair to a GeoJSON point; nil in, nil out
func LocationToGeoPoint(lat, lng *float64) *GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}

	point := orb.Point{*lng, *lat}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToLocation reverses LocationToGeoPoint
func GeoPointToLocation(geoPoint *GeoPoint) (lat, lng *float64) {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return nil, nil
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}
	la, ln := point.Lat(), point.Lon()
	return &la, &ln
}

// PolygonFromJSON parses a JSONB polygon column. Empty input means no area.
func PolygonFromJSON(raw []byte) (*model.GeoPolygon, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var poly model.GeoPolygon
	if err := json.Unmarshal(raw, &poly); err != nil {
		return nil, fmt.Errorf("area JSONB parse error: %w", err)
	}
	if poly.Type != "Polygon" {
		return nil, fmt.Errorf("area must be a Polygon, got %q", poly.Type)
	}
	if len(poly.Polygon()) == 0 {
		return nil, fmt.Errorf("area has no usable ring")
	}
	return &poly, nil
}

// IncidentDB incident row layout in the incidents table
type IncidentDB struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Coordinates   *GeoPoint `json:"coordinates"`
	ZoneID        *string   `json:"zone_id"`
	Urgent        bool      `json:"urgent"`
	PhotoAttached bool      `json:"photo_attached"`
	ReportedBy    *string   `json:"reported_by"`
	CreatedAt     string    `json:"created_at"`
}

// AttachZoneAreas sets Zone.Area from a GeoJSON FeatureCollection whose features carry a
// "zone_id" property and Polygon geometry. Features for unknown zones are ignored.
func AttachZoneAreas(zones []model.Zone, raw []byte) ([]model.Zone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("zone areas: %w", err)
	}

	byID := make(map[string]int, len(zones))
	for i, z := range zones {
		byID[z.ID] = i
	}

	out := make([]model.Zone, len(zones))
	copy(out, zones)
	for _, f := range fc.Features {
		zoneID := f.Properties.MustString("zone_id", "")
		idx, ok := byID[zoneID]
		if !ok {
			continue
		}
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return nil, fmt.Errorf("zone areas: %s geometry must be a Polygon", zoneID)
		}
		out[idx].Area = OrbToGeoPolygon(poly)
	}
	return out, nil
}

// OrbToGeoPolygon converts an orb polygon to its stored layout
func OrbToGeoPolygon(poly orb.Polygon) *model.GeoPolygon {
	coords := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		r := make([][]float64, 0, len(ring))
		for _, p := range ring {
			r = append(r, []float64{p.Lon(), p.Lat()})
		}
		coords = append(coords, r)
	}
	return &model.GeoPolygon{Type: "Polygon", Coordinates: coords}
}
