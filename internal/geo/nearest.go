package geo

import (
	"sort"

	"github.com/UnknownOlympus/netwatch/internal/models"
)

// Nearest ranks towers by distance to center. Towers without usable coordinates are
// skipped, towers farther than radiusKm are dropped, and the rest is sorted nearest
// first (ties keep input order). A positive limit truncates the result.
// The returned slice is never nil.
func Nearest(center models.Coordinates, towers []models.Tower, radiusKm float64, limit int) []models.TowerDistance {
	ranked := make([]models.TowerDistance, 0, len(towers))
	if !center.Valid() {
		return ranked
	}

	for _, tower := range towers {
		pos, ok := tower.Position()
		if !ok {
			continue
		}

		dist := Distance(center, pos)
		if dist <= radiusKm {
			ranked = append(ranked, models.TowerDistance{Tower: tower, DistanceKm: dist})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
