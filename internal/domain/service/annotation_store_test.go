package service

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroue/AlertX/internal/domain/model"
)

// mapCache minimal in-memory KeyValueCache
type mapCache map[string]string

func (m mapCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapCache) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m mapCache) Remove(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

// brokenCache fails every call
type brokenCache struct{}

var errCacheDown = errors.New("storage unavailable")

func (brokenCache) Get(context.Context, string) (string, bool, error) { return "", false, errCacheDown }
func (brokenCache) Set(context.Context, string, string) error         { return errCacheDown }
func (brokenCache) Remove(context.Context, string) error              { return errCacheDown }

func triangle() []model.Point {
	return []model.Point{
		model.FractionPoint(0.1, 0.1),
		model.FractionPoint(0.9, 0.1),
		model.FractionPoint(0.5, 0.8),
	}
}

func TestAnnotationStore_Points(t *testing.T) {
	store := NewAnnotationStore("brgy26", model.PointFraction, mapCache{})

	assert.Empty(t, store.Points())

	p := model.FractionPoint(0.25, 0.75)
	store.AddPoint(p)
	store.AddPoint(p)
	store.AddPoint(model.FractionPoint(1, 0))

	points := store.Points()
	require.Len(t, points, 3, "duplicates are kept")
	assert.Equal(t, p, points[0])
	assert.Equal(t, p, points[1])

	points[0] = model.FractionPoint(0, 0)
	assert.Equal(t, p, store.Points()[0], "Points returns a copy")

	store.ClearPoints()
	assert.Empty(t, store.Points())
}

func TestAnnotationStore_BoundaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := mapCache{}
	store := NewAnnotationStore("brgy26", model.PointFraction, cache)

	outcome, err := store.SaveBoundary(ctx, triangle())
	require.NoError(t, err)
	assert.Equal(t, CacheOK, outcome)
	assert.Contains(t, cache, "brgy26-polygon")

	boundary, outcome := store.LoadBoundary(ctx)
	assert.Equal(t, CacheOK, outcome)
	require.NotNil(t, boundary)
	assert.Equal(t, triangle(), boundary.Points)
	assert.Equal(t, "brgy26", boundary.MapID)

	// overwrite
	square := []model.Point{
		model.FractionPoint(0, 0), model.FractionPoint(1, 0),
		model.FractionPoint(1, 1), model.FractionPoint(0, 1),
	}
	_, err = store.SaveBoundary(ctx, square)
	require.NoError(t, err)
	boundary, _ = store.LoadBoundary(ctx)
	require.NotNil(t, boundary)
	assert.Equal(t, square, boundary.Points)

	assert.Equal(t, CacheOK, store.ClearBoundary(ctx))
	boundary, outcome = store.LoadBoundary(ctx)
	assert.Nil(t, boundary)
	assert.Equal(t, CacheMiss, outcome)
}

func TestAnnotationStore_GeoBoundary(t *testing.T) {
	ctx := context.Background()
	store := NewAnnotationStore("brgy26-google", model.PointGeo, mapCache{})

	pts := []model.Point{
		model.GeoPoint(8.458, 124.642),
		model.GeoPoint(8.458, 124.644),
		model.GeoPoint(8.460, 124.644),
		model.GeoPoint(8.460, 124.642),
	}
	_, err := store.SaveBoundary(ctx, pts)
	require.NoError(t, err)

	boundary, outcome := store.LoadBoundary(ctx)
	assert.Equal(t, CacheOK, outcome)
	require.NotNil(t, boundary)
	assert.Equal(t, pts, boundary.Points)
}

func TestAnnotationStore_SaveBoundaryRejectsInput(t *testing.T) {
	ctx := context.Background()
	cache := mapCache{}
	store := NewAnnotationStore("m", model.PointFraction, cache)

	_, err := store.SaveBoundary(ctx, triangle()[:2])
	assert.ErrorIs(t, err, ErrBoundaryTooSmall)

	mixed := append(triangle(), model.GeoPoint(1, 1))
	_, err = store.SaveBoundary(ctx, mixed)
	assert.ErrorIs(t, err, ErrBoundarySurface)

	outOfRange := append(triangle(), model.FractionPoint(1.5, 0))
	_, err = store.SaveBoundary(ctx, outOfRange)
	assert.ErrorIs(t, err, ErrBoundarySurface)

	assert.Empty(t, cache, "nothing written on rejected input")
}

func TestAnnotationStore_LoadBoundaryTolerance(t *testing.T) {
	ctx := context.Background()
	key := model.BoundaryCacheKey("m")

	cases := []struct {
		name    string
		raw     string
		outcome CacheOutcome
		points  int
	}{
		{"not json", "{oops", CacheMalformed, 0},
		{"wrong geometry", `{"type":"Point","coordinates":[0.1,0.2]}`, CacheMalformed, 0},
		{"too few vertices", `{"type":"Polygon","coordinates":[[[0.1,0.1],[0.2,0.2],[0.1,0.1]]]}`, CacheMalformed, 0},
		{"out of range vertex", `{"type":"Polygon","coordinates":[[[0.1,0.1],[2,0.1],[0.5,0.5],[0.1,0.1]]]}`, CacheMalformed, 0},
		{"bare polygon", `{"type":"Polygon","coordinates":[[[0.1,0.1],[0.9,0.1],[0.5,0.8],[0.1,0.1]]]}`, CacheOK, 3},
		{"feature collection", `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0.1,0.1],[0.9,0.1],[0.5,0.8],[0.1,0.1]]]}}]}`, CacheOK, 3},
		{"empty feature collection", `{"type":"FeatureCollection","features":[]}`, CacheMalformed, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewAnnotationStore("m", model.PointFraction, mapCache{key: tc.raw})
			boundary, outcome := store.LoadBoundary(ctx)
			assert.Equal(t, tc.outcome, outcome)
			if tc.points == 0 {
				assert.Nil(t, boundary)
				return
			}
			require.NotNil(t, boundary)
			assert.Len(t, boundary.Points, tc.points)
		})
	}
}

func TestAnnotationStore_CacheFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewAnnotationStore("m", model.PointFraction, brokenCache{})

	outcome, err := store.SaveBoundary(ctx, triangle())
	assert.NoError(t, err)
	assert.Equal(t, CacheFailed, outcome)

	boundary, outcome := store.LoadBoundary(ctx)
	assert.Nil(t, boundary)
	assert.Equal(t, CacheFailed, outcome)

	assert.Equal(t, CacheFailed, store.ClearBoundary(ctx))
}

func TestAnnotationStore_RoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	unit := gen.Float64Range(0, 1)
	coords := gen.SliceOfN(24, unit)

	properties.Property("saved boundaries load back unchanged", prop.ForAll(
		func(xs []float64, ys []float64, n int) bool {
			points := make([]model.Point, 0, n)
			for i := 0; i < n; i++ {
				points = append(points, model.FractionPoint(xs[i], ys[i]))
			}

			ctx := context.Background()
			store := NewAnnotationStore("prop", model.PointFraction, mapCache{})
			if _, err := store.SaveBoundary(ctx, points); err != nil {
				return false
			}
			boundary, outcome := store.LoadBoundary(ctx)
			if outcome != CacheOK || boundary == nil || len(boundary.Points) != n {
				return false
			}
			for i := range points {
				if boundary.Points[i] != points[i] {
					return false
				}
			}
			return true
		},
		coords,
		coords,
		gen.IntRange(3, 24),
	))

	properties.TestingRun(t)
}
