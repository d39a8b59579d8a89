// Package http provides the HTTP and websocket surface: GraphQL over POST,
// GET and websocket, the REST channel API, health, version and metrics.
package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/artpar/coniql/adapters/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Service string `json:"service"`
}

// RouterConfig holds the handlers and options for the router.
type RouterConfig struct {
	GraphQL    http.Handler // Serves /graphql, and /ws for websocket clients
	Playground http.Handler // Optional GraphQL IDE on /playground
	Channels   *ChannelHandler
	Health     *HealthHandler

	Metrics        *metrics.Collector
	MetricsHandler http.Handler // Optional /metrics handler; defaults to promhttp when Metrics is set
	MetricsPath    string       // Defaults to /metrics
	Version        string
	RequestTimeout time.Duration // Applies to every route except /ws
}

// NewRouter creates the main HTTP router.
func NewRouter(cfg RouterConfig, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(NewMetricsMiddleware(cfg.Metrics, cfg.MetricsPath))
	}

	// Websocket connections outlive any request timeout.
	if cfg.GraphQL != nil {
		r.With(CountWebsockets(cfg.Metrics)).Get("/ws", cfg.GraphQL.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		r.Use(middleware.Timeout(timeout))

		if cfg.Health != nil {
			r.Get("/health", cfg.Health.Liveness)
			r.Get("/health/live", cfg.Health.Liveness)
			r.Get("/health/ready", cfg.Health.Readiness)
		}

		if cfg.MetricsHandler != nil {
			r.Handle(cfg.MetricsPath, cfg.MetricsHandler)
		} else if cfg.Metrics != nil {
			r.Handle(cfg.MetricsPath, promhttp.Handler())
		}

		r.Get("/version", Version(cfg.Version))

		if cfg.GraphQL != nil {
			r.With(middleware.RequestSize(maxRequestBody)).Handle("/graphql", cfg.GraphQL)
		}
		if cfg.Playground != nil {
			r.Get("/playground", cfg.Playground.ServeHTTP)
		}

		if cfg.Channels != nil {
			r.Route("/api/v1/channels", func(r chi.Router) {
				r.Put("/", cfg.Channels.Put)
				r.Get("/*", cfg.Channels.Get)
				r.MethodNotAllowed(cfg.Channels.MethodNotAllowed)
			})
		}
	})

	return r
}

// Version returns a handler reporting the service version.
func Version(version string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(VersionResponse{
			Version: version,
			Service: "coniql",
		})
	}
}

// NewMetricsMiddleware creates middleware that records request metrics.
// Requests to scrapePath, /health* and /ws are not counted.
func NewMetricsMiddleware(m *metrics.Collector, scrapePath string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == scrapePath || r.URL.Path == "/ws" {
				next.ServeHTTP(w, r)
				return
			}

			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := statusLabel(ww.Status())
			path := metrics.NormalizePath(r.URL.Path)

			m.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			m.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		})
	}
}

// statusLabel returns a string label for the status code.
func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "other"
	}
}

// NewLoggingMiddleware creates a new logging middleware.
func NewLoggingMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// Skip logging for health checks and metrics
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
				return
			}

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	transports TransportLister
}

// TransportLister reports the registered transports. *app.Store satisfies it.
type TransportLister interface {
	Transports() []string
	Default() string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(transports TransportLister) *HealthHandler {
	return &HealthHandler{transports: transports}
}

// Liveness returns a simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Readiness reports ready once at least one transport is registered.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	var transports []string
	var def string
	if h.transports != nil {
		transports = h.transports.Transports()
		def = h.transports.Default()
	}

	w.Header().Set("Content-Type", "application/json")
	if len(transports) == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "unhealthy",
			"error":  "no transports registered",
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":            "ok",
		"transports":        transports,
		"default_transport": def,
	})
}
