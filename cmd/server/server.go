package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/api"
	"github.com/tendant/simple-blog/pkg/simpleblog/config"
)

const maxBodyBytes = 1 << 20

// HTTPServer wraps the simple-blog service for HTTP access
type HTTPServer struct {
	service  simpleblog.Service
	config   *config.ServerConfig
	logger   *slog.Logger
	registry *prometheus.Registry
}

// NewHTTPServer creates a new HTTP server wrapper. A nil registry gets a fresh
// one with the Go and process collectors registered.
func NewHTTPServer(service simpleblog.Service, serverConfig *config.ServerConfig, logger *slog.Logger, registry *prometheus.Registry) *HTTPServer {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return &HTTPServer{
		service:  service,
		config:   serverConfig,
		logger:   logger,
		registry: registry,
	}
}

// Routes sets up the HTTP routes
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(api.RequestIDMiddleware)
	r.Use(api.LoggingMiddleware(s.logger))
	r.Use(api.RecoveryMiddleware(s.logger))
	if s.config.EnableMetrics {
		r.Use(api.MetricsMiddleware(api.NewPrometheusCollector(s.registry)))
	}
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(api.RequestSizeLimitMiddleware(maxBodyBytes))

	app.RoutesHealthz(r)
	app.RoutesHealthzReady(r)

	if s.config.EnableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Mount("/", api.NewBlogHandler(s.service, s.logger).Routes())

	return r
}
