// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the AgentHub marketplace.
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"agenthub/internal/api/handler/v1handler"
	"agenthub/internal/config"
	"agenthub/pkg/controller"
	"agenthub/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
}

// NewOptions maps HTTP server settings from cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	Database Pinger
}

type statusBody struct {
	Message  string `json:"message,omitempty"`
	Version  string `json:"version,omitempty"`
	Status   string `json:"status,omitempty"`
	Database string `json:"database,omitempty"`
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - root and health endpoints
// - Prometheus metrics endpoint (MetricsPath) fed by an OpenTelemetry exporter
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := newHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func newHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(r.Context(), w, http.StatusOK, statusBody{
			Message: "AgentHub API is running",
			Version: Version,
		})
	})
	mux.HandleFunc("GET /health", healthHandler(deps.Database))

	// prometheus metrics server
	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"AgentHub API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	mux.Handle("/v1/", http.StripPrefix("/v1", v1handler.New(deps.Deps).Routes(secHandler)))

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler := controller.WithCORS(opts.AllowedOrigins)(mux)
	handler = controller.WithLogger(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return handler, nil
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			writeStatus(r.Context(), w, http.StatusOK, statusBody{Status: "healthy"})

			return
		}

		if err := db.Ping(r.Context()); err != nil {
			logger.Warn(r.Context(), "database health check failed", zap.Error(err))
			writeStatus(r.Context(), w, http.StatusServiceUnavailable, statusBody{
				Status:   "unhealthy",
				Database: "unreachable",
			})

			return
		}

		writeStatus(r.Context(), w, http.StatusOK, statusBody{Status: "healthy", Database: "connected"})
	}
}

func writeStatus(ctx context.Context, w http.ResponseWriter, status int, body statusBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
