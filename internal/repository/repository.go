package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/netwatch/internal/geo"
	"github.com/UnknownOlympus/netwatch/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is the read side used by the API service.
type Interface interface {
	FetchSamples(ctx context.Context) ([]models.SpeedSample, error)
	FetchStats(ctx context.Context) (models.Stats, error)
	FetchCriticalZones(ctx context.Context, thresholdMbps float64) ([]models.CriticalZone, error)
	FetchTowers(ctx context.Context) ([]models.Tower, error)
	FetchTowersInBox(ctx context.Context, box geo.BoundingBox) ([]models.Tower, error)
	Ping(ctx context.Context) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// Ping checks that the underlying database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
