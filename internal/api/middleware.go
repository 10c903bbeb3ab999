package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/netwatch/internal/metrics"
	"github.com/felixge/httpsnoop"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// instrument logs every routed request and records it in the HTTP collectors,
// labelled by route template.
func instrument(log *slog.Logger, m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			snoop := httpsnoop.CaptureMetrics(next, w, r)

			m.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(snoop.Code)).Inc()
			m.RequestSeconds.WithLabelValues(route).Observe(snoop.Duration.Seconds())

			log.DebugContext(
				r.Context(),
				"Request served",
				"method", r.Method,
				"route", route,
				"status", snoop.Code,
				"bytes", snoop.Written,
				"duration", snoop.Duration,
			)
		})
	}
}

// withCORS lets the dashboard call the API from another origin.
func withCORS(origin string) mux.MiddlewareFunc {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{http.MethodGet}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}

// withRateLimit rejects requests once the shared token bucket is empty.
func withRateLimit(limiter *rate.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
