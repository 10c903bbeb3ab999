package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	RequestSeconds    *prometheus.HistogramVec
	StoreErrors       *prometheus.CounterVec
	ZoneLookups       *prometheus.CounterVec
	ZoneLookupSeconds prometheus.Histogram
	ActiveZoneLookups prometheus.Gauge
	CriticalZones     prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "netwatch_http_requests_total",
			Help: "Total number of handled API requests.",
		}, []string{"route", "method", "code"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "netwatch_http_request_duration_seconds",
			Help:    "Duration of API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		StoreErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "netwatch_store_errors_total",
			Help: "Total number of failed queries against the sample store and tower registry.",
		}, []string{"operation"}),
		ZoneLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "netwatch_zone_lookups_total",
			Help: "Total number of per-zone responsible tower lookups.",
		}, []string{"status"}),
		ZoneLookupSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "netwatch_zone_lookup_duration_seconds",
			Help:    "Duration of a single per-zone responsible tower lookup.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ActiveZoneLookups: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "netwatch_active_zone_lookups",
			Help: "Current number of per-zone lookups in flight.",
		}),
		CriticalZones: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "netwatch_critical_zones",
			Help: "Number of critical zones found by the last aggregation.",
		}),
	}
}
