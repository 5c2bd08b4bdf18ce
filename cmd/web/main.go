// The web command runs the frontend process: embedded static assets plus a
// reverse proxy to the API service.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"stackpad/internal/platform/config"
	"stackpad/internal/platform/health"
	"stackpad/internal/platform/httpserver"
	"stackpad/internal/platform/logger"
	"stackpad/internal/platform/metrics"
	"stackpad/internal/web"
	"stackpad/pkg/platform/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("web failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadWeb()
	if err != nil {
		return err
	}
	log := logger.New("web", logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Same-origin app: the proxy makes CORS unnecessary here.
	reg := metrics.New("web")
	mux := server.New(log, server.Options{
		Service:         "web",
		RequestID:       true,
		Metrics:         reg,
		RequestLog:      true,
		SecurityHeaders: true,
		Recover:         true,
	})

	h, err := web.New(cfg.APIBaseURL, health.New(), log)
	if err != nil {
		return err
	}
	h.Register(mux)
	mux.Method(http.MethodGet, "/metrics", reg.Handler())

	srv := httpserver.New(cfg.Addr, mux)
	return httpserver.Run(context.Background(), srv, log)
}
