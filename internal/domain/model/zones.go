package model

import "github.com/paulmach/orb"

// Zone a named administrative area containing ordered path names
type Zone struct {
	ID    string      `json:"id" db:"id"`
	Name  string      `json:"name" db:"name"`
	Paths []string    `json:"paths" db:"paths"`
	Area  *GeoPolygon `json:"area,omitempty" db:"area"` // optional outline used by the zone locator
}

// GeoPolygon GeoJSON Polygon geometry as stored in the database
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"` // rings of [lng, lat]
}

// Polygon converts to an orb.Polygon. Rings with fewer than three vertices are dropped.
func (g *GeoPolygon) Polygon() orb.Polygon {
	if g == nil {
		return nil
	}
	poly := make(orb.Polygon, 0, len(g.Coordinates))
	for _, coords := range g.Coordinates {
		ring := make(orb.Ring, 0, len(coords))
		for _, c := range coords {
			if len(c) < 2 {
				continue
			}
			ring = append(ring, orb.Point{c[0], c[1]})
		}
		if len(ring) < 3 {
			continue
		}
		poly = append(poly, ring)
	}
	return poly
}

// DefaultZones reference zones for Brgy 26 used when no zones table is configured
func DefaultZones() []Zone {
	return []Zone{
		{ID: "zone1", Name: "Zone 1", Paths: []string{"Zone 1 - Path A", "Zone 1 - Path B", "Zone 1 - Path C"}},
		{ID: "zone2", Name: "Zone 2", Paths: []string{"Zone 2 - Path A", "Zone 2 - Path B"}},
		{ID: "zone3", Name: "Zone 3", Paths: []string{"Zone 3 - Path A", "Zone 3 - Path B", "Zone 3 - Path C"}},
	}
}

// SelectionState snapshot of selected zones and explicitly selected paths
type SelectionState struct {
	SelectedZones []string `json:"selected_zones"`
	SelectedPaths []string `json:"selected_paths"`
}

// EffectiveSelection zones plus every path they cover plus explicit paths of unselected zones
type EffectiveSelection struct {
	Zones []string `json:"zones"`
	Paths []string `json:"paths"`
}

// Empty reports whether nothing is targeted
func (e EffectiveSelection) Empty() bool {
	return len(e.Zones) == 0 && len(e.Paths) == 0
}
