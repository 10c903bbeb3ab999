package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/netwatch/internal/models"
)

// FetchSamples returns every speed-test sample, newest first.
func (r *Repository) FetchSamples(ctx context.Context) ([]models.SpeedSample, error) {
	query := `
		SELECT id, test_id, "timestamp", operator, network_type, device_type,
			download_mbps, upload_mbps, latency_ms, signal_strength_dbm,
			wilaya, commune, latitude, longitude
		FROM speed_tests
		ORDER BY "timestamp" DESC, id DESC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query speed tests: %w", err)
	}
	defer rows.Close()

	samples := make([]models.SpeedSample, 0)
	for rows.Next() {
		var sample models.SpeedSample
		if errScan := rows.Scan(
			&sample.ID, &sample.TestID, &sample.Timestamp, &sample.Operator, &sample.NetworkType, &sample.DeviceType,
			&sample.DownloadMbps, &sample.UploadMbps, &sample.LatencyMs, &sample.SignalStrength,
			&sample.Wilaya, &sample.Commune, &sample.Latitude, &sample.Longitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan speed test: %w", errScan)
		}
		samples = append(samples, sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Speed tests fetched", "count", len(samples))

	return samples, nil
}

// FetchStats aggregates the whole sample store. The averages stay nil when the store is empty.
func (r *Repository) FetchStats(ctx context.Context) (models.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_tests,
			AVG(download_mbps) AS avg_download,
			AVG(upload_mbps) AS avg_upload,
			AVG(latency_ms) AS avg_latency
		FROM speed_tests;
	`

	var stats models.Stats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalTests, &stats.AvgDownload, &stats.AvgUpload, &stats.AvgLatency)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to aggregate speed tests: %w", err)
	}

	return stats, nil
}

// FetchCriticalZones groups samples by (commune, wilaya) and returns the groups whose
// mean download is strictly below thresholdMbps, worst first.
func (r *Repository) FetchCriticalZones(ctx context.Context, thresholdMbps float64) ([]models.CriticalZone, error) {
	query := `
		SELECT
			commune,
			wilaya,
			AVG(download_mbps) AS avg_download,
			AVG(upload_mbps) AS avg_upload,
			AVG(latency_ms) AS avg_latency,
			AVG(latitude) FILTER (WHERE latitude IS NOT NULL AND longitude IS NOT NULL) AS lat,
			AVG(longitude) FILTER (WHERE latitude IS NOT NULL AND longitude IS NOT NULL) AS lng,
			COUNT(*) AS test_count
		FROM speed_tests
		GROUP BY commune, wilaya
		HAVING AVG(download_mbps) < $1
		ORDER BY avg_download ASC, wilaya ASC, commune ASC;
	`

	rows, err := r.db.Query(ctx, query, thresholdMbps)
	if err != nil {
		return nil, fmt.Errorf("failed to query critical zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.CriticalZone, 0)
	for rows.Next() {
		var zone models.CriticalZone
		if errScan := rows.Scan(
			&zone.Commune, &zone.Wilaya, &zone.AvgDownload, &zone.AvgUpload, &zone.AvgLatency,
			&zone.Lat, &zone.Lng, &zone.TestCount,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan critical zone: %w", errScan)
		}
		zones = append(zones, zone)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Critical zones computed", "count", len(zones), "threshold_mbps", thresholdMbps)

	return zones, nil
}
