package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaDDL string

// Store is the write side used by the seeder.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Truncate(ctx context.Context) error
	InsertSamples(ctx context.Context, samples []models.SpeedSample) (int64, error)
	InsertTowers(ctx context.Context, towers []models.Tower) (int64, error)
}

var (
	sampleColumns = []string{
		"test_id", "timestamp", "operator", "network_type", "device_type",
		"download_mbps", "upload_mbps", "latency_ms", "signal_strength_dbm",
		"wilaya", "commune", "latitude", "longitude",
	}
	towerColumns = []string{"nom", "wilaya", "commune", "latitude", "longitude", "etat_a", "etat_b", "etat_c"}
)

// EnsureSchema creates the tables and indexes when they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Truncate removes every sample and tower and resets their identifiers.
func (r *Repository) Truncate(ctx context.Context) error {
	query := `TRUNCATE speed_tests, bts_antennas RESTART IDENTITY;`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return nil
}

// InsertSamples bulk loads samples with COPY. Sample IDs are assigned by the database.
func (r *Repository) InsertSamples(ctx context.Context, samples []models.SpeedSample) (int64, error) {
	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"speed_tests"},
		sampleColumns,
		pgx.CopyFromSlice(len(samples), func(i int) ([]any, error) {
			s := samples[i]
			return []any{
				s.TestID, s.Timestamp, s.Operator, s.NetworkType, s.DeviceType,
				s.DownloadMbps, s.UploadMbps, s.LatencyMs, s.SignalStrength,
				s.Wilaya, s.Commune, s.Latitude, s.Longitude,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy speed tests: %w", err)
	}

	return copied, nil
}

// InsertTowers bulk loads towers with COPY. Tower IDs are assigned by the database.
func (r *Repository) InsertTowers(ctx context.Context, towers []models.Tower) (int64, error) {
	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"bts_antennas"},
		towerColumns,
		pgx.CopyFromSlice(len(towers), func(i int) ([]any, error) {
			t := towers[i]
			return []any{
				t.Name, t.Wilaya, t.Commune, t.Latitude, t.Longitude,
				string(t.SectorA), string(t.SectorB), string(t.SectorC),
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy towers: %w", err)
	}

	return copied, nil
}
