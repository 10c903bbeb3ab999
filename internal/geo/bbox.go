package geo

import (
	"math"

	"github.com/UnknownOlympus/netwatch/internal/models"
)

// BoundingBox is an axis-aligned latitude/longitude rectangle in degrees.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the point lies inside the box, borders included.
func (b BoundingBox) Contains(c models.Coordinates) bool {
	return c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat &&
		c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}

// BoundingBoxAround returns a box that contains every point within radiusKm of center.
// It is only a prefilter: it may contain points farther than radiusKm, never fewer.
// When the circle reaches a pole or crosses the antimeridian the longitude span
// falls back to the full [-180, 180] range.
func BoundingBoxAround(center models.Coordinates, radiusKm float64) BoundingBox {
	angular := radiusKm / EarthRadiusKm
	if angular >= math.Pi {
		return BoundingBox{MinLat: -90, MaxLat: 90, MinLng: -180, MaxLng: 180}
	}

	dLat := degrees(angular)
	box := BoundingBox{
		MinLat: math.Max(center.Latitude-dLat, -90),
		MaxLat: math.Min(center.Latitude+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		return box
	}

	ratio := math.Sin(angular) / math.Cos(radians(center.Latitude))
	if ratio >= 1 {
		return box
	}

	dLng := degrees(math.Asin(ratio))
	minLng, maxLng := center.Longitude-dLng, center.Longitude+dLng
	if minLng < -180 || maxLng > 180 {
		return box
	}

	box.MinLng, box.MaxLng = minLng, maxLng

	return box
}
