package service

import "github.com/kroue/AlertX/internal/domain/model"

// PointerEvent viewport coordinates of a click
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// SurfaceRect bounding rectangle of the rendered image
type SurfaceRect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NormalizeImageClick converts a click on an image surface to fractional coordinates.
// Clicks outside the rendered image produce no point.
func NormalizeImageClick(ev PointerEvent, rect SurfaceRect) (model.Point, bool) {
	if !(rect.Width > 0) || !(rect.Height > 0) {
		return model.Point{}, false
	}

	x := (ev.ClientX - rect.Left) / rect.Width
	y := (ev.ClientY - rect.Top) / rect.Height
	p := model.FractionPoint(x, y)
	if !p.Valid() {
		return model.Point{}, false
	}
	return p, true
}

// NormalizeGeoClick wraps coordinates reported by the map provider's click callback.
// They are trusted as-is.
func NormalizeGeoClick(lat, lng float64) model.Point {
	return model.GeoPoint(lat, lng)
}
