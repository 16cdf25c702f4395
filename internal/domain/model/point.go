package model

import (
	"encoding/json"
	"math"

	"github.com/paulmach/orb"
)

// PointKind coordinate representation. Image surfaces use fractions, map provider surfaces use lat/lng
type PointKind string

const (
	PointFraction PointKind = "fraction"
	PointGeo      PointKind = "geo"
)

// Point a normalized map annotation point.
// Fraction points carry X/Y in [0,1]; geographic points carry Lat/Lng.
type Point struct {
	Kind PointKind `json:"kind" firestore:"kind"`
	X    float64   `json:"x" firestore:"x"`
	Y    float64   `json:"y" firestore:"y"`
	Lat  float64   `json:"lat" firestore:"lat"`
	Lng  float64   `json:"lng" firestore:"lng"`
}

// MarshalJSON writes the coordinate pair of the point's kind, zeros included
func (p Point) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PointFraction:
		return json.Marshal(struct {
			Kind PointKind `json:"kind"`
			X    float64   `json:"x"`
			Y    float64   `json:"y"`
		}{p.Kind, p.X, p.Y})
	case PointGeo:
		return json.Marshal(struct {
			Kind PointKind `json:"kind"`
			Lat  float64   `json:"lat"`
			Lng  float64   `json:"lng"`
		}{p.Kind, p.Lat, p.Lng})
	default:
		type plain Point
		return json.Marshal(plain(p))
	}
}

// FractionPoint creates an image-relative point
func FractionPoint(x, y float64) Point {
	return Point{Kind: PointFraction, X: x, Y: y}
}

// GeoPoint creates a geographic point
func GeoPoint(lat, lng float64) Point {
	return Point{Kind: PointGeo, Lat: lat, Lng: lng}
}

// Valid reports whether the point satisfies its representation's range invariant
func (p Point) Valid() bool {
	switch p.Kind {
	case PointFraction:
		return inUnit(p.X) && inUnit(p.Y)
	case PointGeo:
		return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lng) &&
			p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
	default:
		return false
	}
}

// Orb converts to an orb.Point. GeoJSON order: [x, y] / [lng, lat]
func (p Point) Orb() orb.Point {
	if p.Kind == PointGeo {
		return orb.Point{p.Lng, p.Lat}
	}
	return orb.Point{p.X, p.Y}
}

// PointFromOrb builds a Point of the given kind from orb coordinates
func PointFromOrb(kind PointKind, op orb.Point) Point {
	if kind == PointGeo {
		return GeoPoint(op.Lat(), op.Lon())
	}
	return FractionPoint(op.X(), op.Y())
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Boundary a closed polygon drawn over a map context.
// Points hold the ring without the repeated closing vertex.
type Boundary struct {
	MapID  string    `json:"map_id"`
	Kind   PointKind `json:"kind"`
	Points []Point   `json:"points"`
}

// BoundaryCacheKey durable cache key for a map context's boundary
func BoundaryCacheKey(mapID string) string {
	return mapID + "-polygon"
}
