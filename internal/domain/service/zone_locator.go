package service

import (
	"fmt"
	"log"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/kroue/AlertX/internal/domain/model"
)

const (
	locatorDimensions  = 2
	locatorMinChildren = 25
	locatorMaxChildren = 50
	// minimum box side in degrees; rtreego rejects zero-length rects
	locatorMinSide = 1e-9
)

// zoneArea wraps a zone outline for R-tree indexing
type zoneArea struct {
	zoneID string
	order  int
	poly   orb.Polygon
	rect   *rtreego.Rect
}

func (a *zoneArea) Bounds() *rtreego.Rect {
	return a.rect
}

// ZoneLocator resolves a geographic coordinate to the zone whose area contains it.
// Read-only after construction, safe for concurrent use.
type ZoneLocator struct {
	tree    *rtreego.Rtree
	indexed int
}

// NewZoneLocator indexes every zone carrying an area polygon. Zones without one are skipped.
func NewZoneLocator(zones []model.Zone) (*ZoneLocator, error) {
	l := &ZoneLocator{
		tree: rtreego.NewTree(locatorDimensions, locatorMinChildren, locatorMaxChildren),
	}

	for i, z := range zones {
		poly := z.Area.Polygon()
		if len(poly) == 0 {
			continue
		}

		rect, err := boundToRect(poly.Bound())
		if err != nil {
			return nil, fmt.Errorf("failed to index zone %s: %w", z.ID, err)
		}
		l.tree.Insert(&zoneArea{zoneID: z.ID, order: i, poly: poly, rect: rect})
		l.indexed++
	}

	log.Printf("✅ Zone locator ready: %d of %d zones have an area", l.indexed, len(zones))
	return l, nil
}

// Indexed number of zones with an area
func (l *ZoneLocator) Indexed() int {
	return l.indexed
}

// Locate returns the containing zone. Overlapping areas resolve to the zone listed first.
func (l *ZoneLocator) Locate(lat, lng float64) (string, bool) {
	if !model.GeoPoint(lat, lng).Valid() || l.indexed == 0 {
		return "", false
	}

	pt := orb.Point{lng, lat}
	query := rtreego.Point{lng, lat}.ToRect(locatorMinSide)

	var best *zoneArea
	for _, item := range l.tree.SearchIntersect(query) {
		area, ok := item.(*zoneArea)
		if !ok || !planar.PolygonContains(area.poly, pt) {
			continue
		}
		if best == nil || area.order < best.order {
			best = area
		}
	}

	if best == nil {
		return "", false
	}
	return best.zoneID, true
}

func boundToRect(b orb.Bound) (*rtreego.Rect, error) {
	width := b.Max.X() - b.Min.X()
	height := b.Max.Y() - b.Min.Y()
	if width < locatorMinSide {
		width = locatorMinSide
	}
	if height < locatorMinSide {
		height = locatorMinSide
	}
	return rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, []float64{width, height})
}
