package helper

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kroue/AlertX/internal/domain/model"
)

// ErrMalformedBoundary the cached value is not a usable polygon
var ErrMalformedBoundary = errors.New("malformed boundary")

// EncodeBoundary serializes points as a GeoJSON Polygon feature with a closed ring.
// The closing vertex is always appended, even if the caller already closed the ring.
func EncodeBoundary(points []model.Point) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("%w: no points", ErrMalformedBoundary)
	}

	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, p.Orb())
	}
	ring = append(ring, ring[0])

	feature := geojson.NewFeature(orb.Polygon{ring})
	data, err := feature.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("boundary encode failed: %w", err)
	}
	return string(data), nil
}

// DecodeBoundary parses a cached boundary. Accepts a Feature, a FeatureCollection
// (first feature) or a bare Polygon geometry, and strips one closing vertex.
func DecodeBoundary(raw string, kind model.PointKind) ([]model.Point, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoundary, err)
	}

	var geometry orb.Geometry
	switch probe.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBoundary, err)
		}
		geometry = f.Geometry
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBoundary, err)
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("%w: empty feature collection", ErrMalformedBoundary)
		}
		geometry = fc.Features[0].Geometry
	case "Polygon":
		g, err := geojson.UnmarshalGeometry([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBoundary, err)
		}
		geometry = g.Geometry()
	default:
		return nil, fmt.Errorf("%w: unexpected type %q", ErrMalformedBoundary, probe.Type)
	}

	polygon, ok := geometry.(orb.Polygon)
	if !ok || len(polygon) == 0 {
		return nil, fmt.Errorf("%w: not a polygon", ErrMalformedBoundary)
	}

	ring := polygon[0]
	if len(ring) >= 2 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: ring has %d vertices", ErrMalformedBoundary, len(ring))
	}

	points := make([]model.Point, 0, len(ring))
	for _, op := range ring {
		p := model.PointFromOrb(kind, op)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: vertex out of range", ErrMalformedBoundary)
		}
		points = append(points, p)
	}
	return points, nil
}
