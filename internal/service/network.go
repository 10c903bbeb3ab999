package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/netwatch/internal/geo"
	"github.com/UnknownOlympus/netwatch/internal/metrics"
	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/UnknownOlympus/netwatch/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidPoint is returned when a coverage lookup is asked for coordinates off the globe.
var ErrInvalidPoint = errors.New("invalid coordinates")

// Settings are the thresholds of the zone aggregation and the proximity join.
type Settings struct {
	CriticalDownloadMbps float64
	CoverageRadiusKm     float64
	ResponsibleLimit     int
	LookupWorkers        int
}

// NetworkService answers the dashboard queries on top of the sample store and the tower registry.
type NetworkService struct {
	log      *slog.Logger         // Logger for service activities
	repo     repository.Interface // Sample store and tower registry
	metrics  *metrics.Metrics     // Store errors and lookup instrumentation
	settings Settings
}

// NewNetworkService creates a new instance of NetworkService.
// A non-positive worker count falls back to a single lookup at a time.
func NewNetworkService(
	log *slog.Logger,
	repo repository.Interface,
	metrics *metrics.Metrics,
	settings Settings,
) *NetworkService {
	if settings.LookupWorkers <= 0 {
		settings.LookupWorkers = 1
	}

	return &NetworkService{
		log:      log,
		repo:     repo,
		metrics:  metrics,
		settings: settings,
	}
}

// Samples returns every speed test, newest first.
func (ns *NetworkService) Samples(ctx context.Context) ([]models.SpeedSample, error) {
	samples, err := ns.repo.FetchSamples(ctx)
	if err != nil {
		ns.metrics.StoreErrors.WithLabelValues("samples").Inc()
		return nil, err
	}

	return samples, nil
}

// Stats returns the global sample count and averages.
func (ns *NetworkService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := ns.repo.FetchStats(ctx)
	if err != nil {
		ns.metrics.StoreErrors.WithLabelValues("stats").Inc()
		return models.Stats{}, err
	}

	return stats, nil
}

// CriticalZones returns the zones whose mean download is below the threshold, worst first.
func (ns *NetworkService) CriticalZones(ctx context.Context) ([]models.CriticalZone, error) {
	zones, err := ns.repo.FetchCriticalZones(ctx, ns.settings.CriticalDownloadMbps)
	if err != nil {
		ns.metrics.StoreErrors.WithLabelValues("critical_zones").Inc()
		return nil, err
	}

	ns.metrics.CriticalZones.Set(float64(len(zones)))

	return zones, nil
}

// Towers returns the whole tower registry.
func (ns *NetworkService) Towers(ctx context.Context) ([]models.Tower, error) {
	towers, err := ns.repo.FetchTowers(ctx)
	if err != nil {
		ns.metrics.StoreErrors.WithLabelValues("towers").Inc()
		return nil, err
	}

	return towers, nil
}

// Coverage returns every tower within the coverage radius of the point, nearest first.
func (ns *NetworkService) Coverage(ctx context.Context, point models.Coordinates) ([]models.TowerDistance, error) {
	if !point.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, point)
	}

	return ns.towersAround(ctx, point, 0)
}

// CriticalZonesWithTowers returns the critical zones, each with its responsible towers.
// Lookups run concurrently but the result keeps the aggregation order.
// The first failed lookup cancels the others and fails the whole call.
func (ns *NetworkService) CriticalZonesWithTowers(ctx context.Context) ([]models.ZoneWithTowers, error) {
	zones, err := ns.CriticalZones(ctx)
	if err != nil {
		return nil, err
	}

	ns.log.DebugContext(
		ctx,
		"Looking up responsible towers",
		"zones", len(zones),
		"num_workers", ns.settings.LookupWorkers,
	)

	results := make([]models.ZoneWithTowers, len(zones))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(ns.settings.LookupWorkers)

	for idx, zone := range zones {
		group.Go(func() error {
			towers, errLookup := ns.lookup(groupCtx, zone)
			if errLookup != nil {
				return fmt.Errorf("failed to find towers for %s/%s: %w", zone.Wilaya, zone.Commune, errLookup)
			}

			results[idx] = models.ZoneWithTowers{CriticalZone: zone, ResponsibleBTS: towers}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (ns *NetworkService) lookup(ctx context.Context, zone models.CriticalZone) ([]models.TowerDistance, error) {
	ns.metrics.ActiveZoneLookups.Inc()
	defer ns.metrics.ActiveZoneLookups.Dec()

	center, ok := zone.Centroid()
	if !ok {
		ns.metrics.ZoneLookups.WithLabelValues("no_centroid").Inc()
		return []models.TowerDistance{}, nil
	}

	startTime := time.Now()
	towers, err := ns.towersAround(ctx, center, ns.settings.ResponsibleLimit)
	ns.metrics.ZoneLookupSeconds.Observe(time.Since(startTime).Seconds())

	if err != nil {
		ns.metrics.ZoneLookups.WithLabelValues("failure").Inc()
		return nil, err
	}

	ns.metrics.ZoneLookups.WithLabelValues("success").Inc()

	return towers, nil
}

func (ns *NetworkService) towersAround(
	ctx context.Context,
	center models.Coordinates,
	limit int,
) ([]models.TowerDistance, error) {
	box := geo.BoundingBoxAround(center, ns.settings.CoverageRadiusKm)

	candidates, err := ns.repo.FetchTowersInBox(ctx, box)
	if err != nil {
		ns.metrics.StoreErrors.WithLabelValues("towers_in_box").Inc()
		return nil, err
	}

	return geo.Nearest(center, candidates, ns.settings.CoverageRadiusKm, limit), nil
}
