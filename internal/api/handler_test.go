package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UnknownOlympus/netwatch/internal/api"
	"github.com/UnknownOlympus/netwatch/internal/metrics"
	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/UnknownOlympus/netwatch/internal/service"
	"github.com/UnknownOlympus/netwatch/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func newRouter(t *testing.T, opts api.Options) (http.Handler, *mocks.Service, *metrics.Metrics) {
	t.Helper()

	svc := mocks.NewService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewMetrics(prometheus.NewRegistry())
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}

	return api.NewRouter(opts, logger, svc, m), svc, m
}

const dashboardOrigin = "http://localhost:3000"

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	return getFrom(handler, target, dashboardOrigin)
}

func getFrom(handler http.Handler, target, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestListEndpoints(t *testing.T) {
	router, svc, _ := newRouter(t, api.Options{})

	sample := models.SpeedSample{
		ID:           1,
		TestID:       "6f1c1a51-1a7e-4f5f-a7c1-11c5a8f1d001",
		Timestamp:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Operator:     "Mobilis",
		NetworkType:  models.Network4G,
		DownloadMbps: 42.5,
		Wilaya:       "Alger",
		Commune:      "Hydra",
	}
	svc.On("Samples", mock.Anything).Return([]models.SpeedSample{sample}, nil).Once()
	svc.On("Stats", mock.Anything).Return(models.Stats{TotalTests: 1, AvgDownload: ptr(42.5)}, nil).Once()
	svc.On("CriticalZones", mock.Anything).Return(nil, nil).Once()
	svc.On("Towers", mock.Anything).Return([]models.Tower{}, nil).Once()

	rec := get(router, "/api/data")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var samples []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &samples))
	require.Len(t, samples, 1)
	assert.Equal(t, "Mobilis", samples[0]["operator"])
	assert.Nil(t, samples[0]["latitude"])

	rec = get(router, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_tests":1,"avg_download":42.5,"avg_upload":null,"avg_latency":null}`, rec.Body.String())

	rec = get(router, "/api/critical-zones")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = get(router, "/api/bts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestStoreErrorIsGeneric(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user netwatch")
	tests := []struct {
		target string
		method string
		args   []any
		ret    any
	}{
		{"/api/data", "Samples", []any{mock.Anything}, nil},
		{"/api/stats", "Stats", []any{mock.Anything}, models.Stats{}},
		{"/api/critical-zones", "CriticalZones", []any{mock.Anything}, nil},
		{"/api/bts", "Towers", []any{mock.Anything}, nil},
		{"/api/bts/coverage?lat=36.7&lng=3.0", "Coverage", []any{mock.Anything, mock.Anything}, nil},
		{"/api/critical-zones-with-bts", "CriticalZonesWithTowers", []any{mock.Anything}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			router, svc, _ := newRouter(t, api.Options{})
			svc.On(tt.method, tt.args...).Return(tt.ret, cause).Once()

			rec := get(router, tt.target)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}

func TestCoverage(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{})

		for _, target := range []string{
			"/api/bts/coverage",
			"/api/bts/coverage?lat=36.7",
			"/api/bts/coverage?lng=3.0",
			"/api/bts/coverage?lat=&lng=3.0",
		} {
			rec := get(router, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.JSONEq(t, `{"error":"lat and lng parameters required"}`, rec.Body.String(), target)
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{})

		for _, target := range []string{
			"/api/bts/coverage?lat=abc&lng=3.0",
			"/api/bts/coverage?lat=36.7&lng=east",
			"/api/bts/coverage?lat=91&lng=3.0",
			"/api/bts/coverage?lat=36.7&lng=-181",
			"/api/bts/coverage?lat=NaN&lng=3.0",
		} {
			rec := get(router, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.JSONEq(t, `{"error":"lat and lng must be valid coordinates"}`, rec.Body.String(), target)
		}
	})

	t.Run("service rejects point", func(t *testing.T) {
		router, svc, _ := newRouter(t, api.Options{})
		svc.On("Coverage", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidPoint).Once()

		rec := get(router, "/api/bts/coverage?lat=36.7&lng=3.0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("towers nearest first", func(t *testing.T) {
		router, svc, _ := newRouter(t, api.Options{})
		point := models.Coordinates{Latitude: 36.7525, Longitude: 3.042}
		towers := []models.TowerDistance{
			{
				Tower: models.Tower{
					ID: 7, Name: "ALG-007", Wilaya: "Alger", Commune: "Hydra",
					Latitude: ptr(36.75), Longitude: ptr(3.04),
					SectorA: models.SectorActive, SectorB: models.SectorMaintenance, SectorC: models.SectorDown,
				},
				DistanceKm: 0.35,
			},
		}
		svc.On("Coverage", mock.Anything, point).Return(towers, nil).Once()

		rec := get(router, "/api/bts/coverage?lat=36.7525&lng=3.042")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": 7, "nom": "ALG-007", "wilaya": "Alger", "commune": "Hydra",
			"latitude": 36.75, "longitude": 3.04,
			"etatA": "active", "etatB": "maintenance", "etatC": "down",
			"distance_km": 0.35
		}]`, rec.Body.String())
	})
}

func TestCriticalZonesWithTowers(t *testing.T) {
	router, svc, _ := newRouter(t, api.Options{})
	zones := []models.ZoneWithTowers{
		{CriticalZone: models.CriticalZone{Commune: "X", Wilaya: "W", AvgDownload: 2, TestCount: 1}},
	}
	svc.On("CriticalZonesWithTowers", mock.Anything).Return(zones, nil).Once()

	rec := get(router, "/api/critical-zones-with-bts")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"commune": "X", "wilaya": "W", "avg_download": 2, "avg_upload": 0, "avg_latency": 0,
		"lat": null, "lng": null, "test_count": 1, "responsible_bts": []
	}]`, rec.Body.String())
}

func TestRoutingErrors(t *testing.T) {
	router, _, _ := newRouter(t, api.Options{})

	rec := get(router, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/stats", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}

func TestMiddleware(t *testing.T) {
	t.Run("cors header on every response", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{AllowedOrigin: "https://dashboard.example.dz"})

		rec := getFrom(router, "/api/bts/coverage", "https://dashboard.example.dz")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "https://dashboard.example.dz", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin gets no cors header", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{AllowedOrigin: "https://dashboard.example.dz"})

		rec := getFrom(router, "/api/bts/coverage", "https://elsewhere.example.com")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard origin on errors too", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{})

		rec := get(router, "/api/unknown")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		router, _, _ := newRouter(t, api.Options{})
		req := httptest.NewRequest(http.MethodOptions, "/api/stats", nil)
		req.Header.Set("Origin", dashboardOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("rate limit", func(t *testing.T) {
		router, svc, _ := newRouter(t, api.Options{RateLimit: 0.001, RateBurst: 1})
		svc.On("Towers", mock.Anything).Return([]models.Tower{}, nil).Once()

		first := get(router, "/api/bts")
		second := get(router, "/api/bts")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.JSONEq(t, `{"error":"rate limit exceeded"}`, second.Body.String())
		assert.Equal(t, "*", second.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("rate limited requests are counted", func(t *testing.T) {
		router, svc, m := newRouter(t, api.Options{RateLimit: 0.001, RateBurst: 1})
		svc.On("Towers", mock.Anything).Return([]models.Tower{}, nil).Once()

		get(router, "/api/bts")
		get(router, "/api/bts")
		get(router, "/api/bts")

		ok := m.HTTPRequests.WithLabelValues("/api/bts", http.MethodGet, "200")
		limited := m.HTTPRequests.WithLabelValues("/api/bts", http.MethodGet, "429")
		assert.InDelta(t, 1.0, testutil.ToFloat64(ok), 1e-9)
		assert.InDelta(t, 2.0, testutil.ToFloat64(limited), 1e-9)
	})

	t.Run("requests are counted by route template", func(t *testing.T) {
		router, svc, m := newRouter(t, api.Options{})
		svc.On("Coverage", mock.Anything, mock.Anything).Return([]models.TowerDistance{}, nil).Twice()

		get(router, "/api/bts/coverage?lat=36.7&lng=3.0")
		get(router, "/api/bts/coverage?lat=35.6&lng=-0.6")
		get(router, "/api/bts/coverage")

		ok := m.HTTPRequests.WithLabelValues("/api/bts/coverage", http.MethodGet, "200")
		bad := m.HTTPRequests.WithLabelValues("/api/bts/coverage", http.MethodGet, "400")
		assert.InDelta(t, 2.0, testutil.ToFloat64(ok), 1e-9)
		assert.InDelta(t, 1.0, testutil.ToFloat64(bad), 1e-9)
	})
}
