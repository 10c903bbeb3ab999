package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/netwatch/internal/geo"
	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/jackc/pgx/v5"
)

// FetchTowers returns the whole tower registry ordered by wilaya and commune.
func (r *Repository) FetchTowers(ctx context.Context) ([]models.Tower, error) {
	query := `
		SELECT id, nom, wilaya, commune, latitude, longitude, etat_a, etat_b, etat_c
		FROM bts_antennas
		ORDER BY wilaya, commune, id;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query towers: %w", err)
	}

	return r.collectTowers(ctx, rows)
}

// FetchTowersInBox returns the towers whose coordinates fall inside the box.
// Towers without coordinates never match.
func (r *Repository) FetchTowersInBox(ctx context.Context, box geo.BoundingBox) ([]models.Tower, error) {
	query := `
		SELECT id, nom, wilaya, commune, latitude, longitude, etat_a, etat_b, etat_c
		FROM bts_antennas
		WHERE
			latitude BETWEEN $1 AND $2
			AND longitude BETWEEN $3 AND $4
		ORDER BY id;
	`

	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to query towers in area: %w", err)
	}

	return r.collectTowers(ctx, rows)
}

func (r *Repository) collectTowers(ctx context.Context, rows pgx.Rows) ([]models.Tower, error) {
	defer rows.Close()

	towers := make([]models.Tower, 0)
	for rows.Next() {
		var (
			tower            models.Tower
			rawA, rawB, rawC string
		)
		if errScan := rows.Scan(
			&tower.ID, &tower.Name, &tower.Wilaya, &tower.Commune, &tower.Latitude, &tower.Longitude,
			&rawA, &rawB, &rawC,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan tower: %w", errScan)
		}

		var err error
		if tower.SectorA, err = models.ParseSectorState(rawA); err != nil {
			return nil, fmt.Errorf("failed to read sector A of tower %d: %w", tower.ID, err)
		}
		if tower.SectorB, err = models.ParseSectorState(rawB); err != nil {
			return nil, fmt.Errorf("failed to read sector B of tower %d: %w", tower.ID, err)
		}
		if tower.SectorC, err = models.ParseSectorState(rawC); err != nil {
			return nil, fmt.Errorf("failed to read sector C of tower %d: %w", tower.ID, err)
		}

		towers = append(towers, tower)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Towers fetched", "count", len(towers))

	return towers, nil
}
