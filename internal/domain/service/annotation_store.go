package service

import (
	"context"
	"errors"
	"log"

	"github.com/kroue/AlertX/internal/domain/helper"
	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
)

var (
	ErrBoundaryTooSmall = errors.New("boundary needs at least 3 points")
	ErrBoundarySurface  = errors.New("boundary points do not match the map surface")
)

// CacheOutcome result of a best-effort cache operation. Never surfaced as an error.
type CacheOutcome string

const (
	CacheOK        CacheOutcome = "ok"
	CacheMiss      CacheOutcome = "miss"
	CacheMalformed CacheOutcome = "malformed"
	CacheFailed    CacheOutcome = "failed"
)

// AnnotationStore operator-drawn points and the cached boundary of one map context.
// Not safe for concurrent use; each screen owns its store.
type AnnotationStore struct {
	mapID   string
	surface model.PointKind
	points  []model.Point
	cache   repository.KeyValueCache
}

// NewAnnotationStore creates a store for the given map context and surface kind
func NewAnnotationStore(mapID string, surface model.PointKind, cache repository.KeyValueCache) *AnnotationStore {
	return &AnnotationStore{
		mapID:   mapID,
		surface: surface,
		points:  []model.Point{},
		cache:   cache,
	}
}

func (s *AnnotationStore) MapID() string            { return s.mapID }
func (s *AnnotationStore) Surface() model.PointKind { return s.surface }

// AddPoint appends a point. Duplicates are kept
func (s *AnnotationStore) AddPoint(p model.Point) {
	s.points = append(s.points, p)
}

// ClearPoints drops every point
func (s *AnnotationStore) ClearPoints() {
	s.points = []model.Point{}
}

// Points returns the points in insertion order
func (s *AnnotationStore) Points() []model.Point {
	out := make([]model.Point, len(s.points))
	copy(out, s.points)
	return out
}

// SaveBoundary writes the polygon to the durable cache, replacing any previous one.
// Only the input is validated; a failing cache is reported through the outcome.
func (s *AnnotationStore) SaveBoundary(ctx context.Context, points []model.Point) (CacheOutcome, error) {
	if len(points) < 3 {
		return "", ErrBoundaryTooSmall
	}
	for _, p := range points {
		if p.Kind != s.surface || !p.Valid() {
			return "", ErrBoundarySurface
		}
	}

	raw, err := helper.EncodeBoundary(points)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, model.BoundaryCacheKey(s.mapID), raw); err != nil {
		log.Printf("⚠️ Boundary save failed for %s: %v", s.mapID, err)
		return CacheFailed, nil
	}
	return CacheOK, nil
}

// LoadBoundary reads the cached polygon. Missing, malformed and unreadable entries all yield nil.
func (s *AnnotationStore) LoadBoundary(ctx context.Context) (*model.Boundary, CacheOutcome) {
	raw, found, err := s.cache.Get(ctx, model.BoundaryCacheKey(s.mapID))
	if err != nil {
		log.Printf("⚠️ Boundary read failed for %s: %v", s.mapID, err)
		return nil, CacheFailed
	}
	if !found {
		return nil, CacheMiss
	}

	points, err := helper.DecodeBoundary(raw, s.surface)
	if err != nil {
		log.Printf("⚠️ Ignoring cached boundary for %s: %v", s.mapID, err)
		return nil, CacheMalformed
	}

	return &model.Boundary{MapID: s.mapID, Kind: s.surface, Points: points}, CacheOK
}

// ClearBoundary removes the cached polygon
func (s *AnnotationStore) ClearBoundary(ctx context.Context) CacheOutcome {
	if err := s.cache.Remove(ctx, model.BoundaryCacheKey(s.mapID)); err != nil {
		log.Printf("⚠️ Boundary clear failed for %s: %v", s.mapID, err)
		return CacheFailed
	}
	return CacheOK
}
