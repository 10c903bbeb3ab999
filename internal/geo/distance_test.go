package geo_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/netwatch/internal/geo"
	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func point(lat, lng float64) models.Coordinates {
	return models.Coordinates{Latitude: lat, Longitude: lng}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	t.Run("same point is zero", func(t *testing.T) {
		t.Parallel()
		for _, p := range []models.Coordinates{point(36.75, 3.05), point(0, 0), point(-89.9, 179.9), point(31.95, 5.33)} {
			assert.Zero(t, geo.Distance(p, p))
		}
	})

	t.Run("nearly identical points never yield NaN", func(t *testing.T) {
		t.Parallel()
		a := point(36.7538, 3.0588)
		b := point(36.7538+1e-12, 3.0588)
		d := geo.Distance(a, b)
		assert.False(t, math.IsNaN(d))
		assert.InDelta(t, 0, d, 1e-3)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		t.Parallel()
		d := geo.Distance(point(36.75, 3.05), point(37.75, 3.05))
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("antipodal points", func(t *testing.T) {
		t.Parallel()
		d := geo.Distance(point(0, 0), point(0, 180))
		assert.InDelta(t, math.Pi*geo.EarthRadiusKm, d, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		pairs := [][2]models.Coordinates{
			{point(36.75, 3.05), point(35.7, -0.6)},
			{point(36.3, 6.6), point(31.95, 5.3)},
			{point(-33.9, 151.2), point(51.5, -0.12)},
			{point(36.70, 3.00), point(36.71, 3.01)},
		}
		for _, pair := range pairs {
			assert.InDelta(t, geo.Distance(pair[0], pair[1]), geo.Distance(pair[1], pair[0]), 1e-9)
		}
	})

	t.Run("Alger to Oran", func(t *testing.T) {
		t.Parallel()
		d := geo.Distance(point(36.7538, 3.0588), point(35.6971, -0.6308))
		assert.InDelta(t, 354, d, 5)
	})
}
