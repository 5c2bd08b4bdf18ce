// Package server is the shared server factory: every app builds its router
// here so the middleware stack stays identical across the workspace. The
// factory is option pass-through — it attaches exactly the plugins the
// options select, and nothing else.
package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"stackpad/internal/platform/metrics"
	"stackpad/pkg/platform/middleware/cors"
	"stackpad/pkg/platform/middleware/requestid"
	"stackpad/pkg/platform/middleware/requestlog"
	"stackpad/pkg/platform/middleware/secheaders"
	"stackpad/pkg/platform/middleware/tracing"
)

// Options is the static plugin record. Nil/false fields leave the
// corresponding plugin off.
type Options struct {
	// Service names the app for tracing spans and log lines.
	Service string

	// RequestID assigns or propagates X-Request-ID.
	RequestID bool
	// Tracing wraps each request in an OpenTelemetry span.
	Tracing bool
	// Metrics records request count/duration/in-flight into the registry.
	Metrics *metrics.Registry
	// RequestLog emits one structured log line per request.
	RequestLog bool
	// SecurityHeaders attaches the fixed security header set.
	SecurityHeaders bool
	// CORS enables cross-origin handling for the configured origins.
	CORS *cors.Config
	// Recover converts handler panics into 500 responses.
	Recover bool
}

// New returns a chi router with the selected plugins attached in a fixed
// order: request-id, tracing, metrics, request log, security headers, CORS,
// recover. Routes are registered by the caller.
func New(logger *slog.Logger, opts Options) *chi.Mux {
	r := chi.NewRouter()

	if opts.RequestID {
		r.Use(requestid.Middleware)
	}
	if opts.Tracing {
		r.Use(tracing.Middleware(opts.Service))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	if opts.RequestLog {
		r.Use(requestlog.Middleware(logger))
	}
	if opts.SecurityHeaders {
		r.Use(secheaders.Middleware)
	}
	if opts.CORS != nil {
		r.Use(cors.New(*opts.CORS).Handler)
	}
	if opts.Recover {
		r.Use(chimiddleware.Recoverer)
	}

	return r
}
