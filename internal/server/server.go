// Package server assembles the chi router and the huma API shared by every module.
package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"role-explorer/pkg/handlers"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/module"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures the router
type Options struct {
	ServiceName    string
	APIPrefix      string
	AllowedOrigins []string
	RequestTimeout time.Duration
	Catalog        *permissions.Catalog
	HealthChecks   map[string]handlers.HealthCheck
	Metrics        *metrics.Metrics
	// Registry is served on /metrics when set
	Registry *prometheus.Registry
}

// APIConfig returns the OpenAPI configuration for the service
func APIConfig() huma.Config {
	cfg := huma.DefaultConfig("Role Explorer API", version.Version)
	cfg.Info.Description = "Browse the permission catalog, resolve roles, derive role summaries and risk, and manage custom roles"
	return cfg
}

// NewAPI mounts a huma API on r, under prefix when one is set
func NewAPI(r chi.Router, prefix string) huma.API {
	cfg := APIConfig()
	if prefix == "" {
		return humachi.New(r, cfg)
	}

	var api huma.API
	r.Route(prefix, func(prefixRouter chi.Router) {
		api = humachi.New(prefixRouter, cfg)
	})
	return api
}

// New builds the router and registers every module on the unified API
func New(opts Options, modules ...module.Module) (http.Handler, huma.API) {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))
	r.Use(handlers.TracingMiddleware(opts.ServiceName))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	if opts.Registry != nil {
		r.Handle("/metrics", metrics.Handler(opts.Registry))
	}

	api := NewAPI(r, opts.APIPrefix)
	catalogSize := 0
	if opts.Catalog != nil {
		catalogSize = opts.Catalog.Len()
	}
	handlers.RegisterHealthRoute(api, opts.ServiceName, catalogSize, opts.HealthChecks)

	for _, mod := range modules {
		slog.Info("Registering module routes", "module", mod.Name())
		mod.RegisterUnifiedRoutes(api)
	}
	return r, api
}

// requestLogger logs requests but skips health and metrics probes
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(r.Context(), "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
