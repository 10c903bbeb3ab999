// Package geo holds the spherical geometry used to associate towers with zones.
package geo

import (
	"math"

	"github.com/UnknownOlympus/netwatch/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for every distance computation (kilometres).
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the great-circle distance in kilometres between two points,
// using the spherical law of cosines. The acos argument is clamped to [-1, 1]
// because rounding pushes it slightly outside that range for nearly identical
// points, which would otherwise yield NaN.
func Distance(from, to models.Coordinates) float64 {
	if from == to {
		return 0
	}

	lat1, lat2 := radians(from.Latitude), radians(to.Latitude)
	dLng := radians(to.Longitude) - radians(from.Longitude)

	cosine := math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLng) + math.Sin(lat1)*math.Sin(lat2)

	return EarthRadiusKm * math.Acos(clamp(cosine, -1, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
