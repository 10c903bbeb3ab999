package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/netwatch/internal/models"
	"github.com/UnknownOlympus/netwatch/internal/service"
	"github.com/gorilla/mux"
)

const (
	msgMissingCoordinates = "lat and lng parameters required"
	msgInvalidCoordinates = "lat and lng must be valid coordinates"
	msgInternal           = "internal server error"
	msgNotFound           = "not found"
	msgMethodNotAllowed   = "method not allowed"
	msgRateLimited        = "rate limit exceeded"
)

// Service is the query side the handlers depend on.
type Service interface {
	Samples(ctx context.Context) ([]models.SpeedSample, error)
	Stats(ctx context.Context) (models.Stats, error)
	CriticalZones(ctx context.Context) ([]models.CriticalZone, error)
	Towers(ctx context.Context) ([]models.Tower, error)
	Coverage(ctx context.Context, point models.Coordinates) ([]models.TowerDistance, error)
	CriticalZonesWithTowers(ctx context.Context) ([]models.ZoneWithTowers, error)
}

// Handler serves the dashboard JSON API.
type Handler struct {
	log     *slog.Logger
	service Service
}

func NewHandler(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// Register mounts every API route on the router.
func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/api/data", h.samples).Methods(http.MethodGet)
	router.HandleFunc("/api/stats", h.stats).Methods(http.MethodGet)
	router.HandleFunc("/api/critical-zones", h.criticalZones).Methods(http.MethodGet)
	router.HandleFunc("/api/bts", h.towers).Methods(http.MethodGet)
	router.HandleFunc("/api/bts/coverage", h.coverage).Methods(http.MethodGet)
	router.HandleFunc("/api/critical-zones-with-bts", h.criticalZonesWithTowers).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
}

func (h *Handler) samples(w http.ResponseWriter, r *http.Request) {
	samples, err := h.service.Samples(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(samples))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, stats)
}

func (h *Handler) criticalZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.CriticalZones(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(zones))
}

func (h *Handler) towers(w http.ResponseWriter, r *http.Request) {
	towers, err := h.service.Towers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(towers))
}

func (h *Handler) coverage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawLat, rawLng := query.Get("lat"), query.Get("lng")
	if rawLat == "" || rawLng == "" {
		writeError(w, http.StatusBadRequest, msgMissingCoordinates)
		return
	}

	point, ok := parsePoint(rawLat, rawLng)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidCoordinates)
		return
	}

	towers, err := h.service.Coverage(r.Context(), point)
	if errors.Is(err, service.ErrInvalidPoint) {
		writeError(w, http.StatusBadRequest, msgInvalidCoordinates)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(towers))
}

func (h *Handler) criticalZonesWithTowers(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.CriticalZonesWithTowers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	for i := range zones {
		zones[i].ResponsibleBTS = nonNil(zones[i].ResponsibleBTS)
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(zones))
}

func parsePoint(rawLat, rawLng string) (models.Coordinates, bool) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return models.Coordinates{}, false
	}

	point := models.Coordinates{Latitude: lat, Longitude: lng}

	return point, point.Valid()
}

// internalError logs the cause and answers with a generic body.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "Failed to serve request", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := writeJSON(w, status, payload); err != nil {
		h.log.WarnContext(r.Context(), "Failed to write response", "path", r.URL.Path, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, map[string]string{"error": message})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
