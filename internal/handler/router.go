package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/prn-tf/hunter-codex/internal/pkg/metrics"
)

// RouterConfig contains the dependencies for the API router.
type RouterConfig struct {
	AuthHandler    *AuthHandler
	ItemHandler    *ItemHandler
	AuthMiddleware func(http.Handler) http.Handler
	Metrics        *metrics.Metrics
	MetricsPath    string
	Logger         zerolog.Logger
}

// NewRouter assembles the HTTP routing tree.
//
// Auth routes are public; item routes sit behind the access control
// middleware so unauthenticated requests never reach a handler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/health", handleHealth)
	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		r.Method(http.MethodGet, cfg.MetricsPath, promhttp.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		cfg.AuthHandler.RegisterRoutes(r)
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Use(cfg.AuthMiddleware)
		cfg.ItemHandler.RegisterRoutes(r)
	})

	return r
}

// handleHealth handles health check requests.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// requestLogger logs one line per request with method, path, status, and duration.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("component", "http").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request handled")
		})
	}
}
