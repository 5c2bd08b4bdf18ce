// The api command runs the backend API process. It wires configuration,
// stores, and the shared server factory; business logic lives in
// internal/api.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"stackpad/internal/api/auth"
	"stackpad/internal/api/handler"
	"stackpad/internal/api/service"
	"stackpad/internal/api/store"
	"stackpad/internal/platform/config"
	"stackpad/internal/platform/health"
	"stackpad/internal/platform/httpserver"
	"stackpad/internal/platform/logger"
	"stackpad/internal/platform/metrics"
	"stackpad/internal/platform/postgres"
	"stackpad/internal/platform/redis"
	"stackpad/pkg/platform/middleware/cors"
	"stackpad/pkg/platform/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadAPI()
	if err != nil {
		return err
	}
	log := logger.New("api", logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx := context.Background()

	var (
		noteStore store.NoteStore = store.NewMemoryStore()
		checkers  []health.Checker
	)

	pool, err := postgres.New(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
		pg := store.NewPostgres(pool.Pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		noteStore = pg
		checkers = append(checkers, health.CheckerFunc{CheckName: "postgres", Fn: pool.Health})
		log.Info("using postgres note store")
	} else {
		log.Info("no DATABASE_URL set, using in-memory note store")
	}

	rds, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if rds != nil {
		defer rds.Close()
		checkers = append(checkers, health.CheckerFunc{CheckName: "redis", Fn: rds.Health})
	}

	authSvc, err := auth.New(cfg.JWTSigningKey, cfg.JWTTTL, cfg.DemoUser, cfg.DemoPassword)
	if err != nil {
		return err
	}

	reg := metrics.New("api")
	mux := server.New(log, server.Options{
		Service:         "api",
		RequestID:       true,
		Tracing:         true,
		Metrics:         reg,
		RequestLog:      true,
		SecurityHeaders: true,
		CORS:            &cors.Config{AllowedOrigins: cfg.CORSOrigins},
		Recover:         true,
	})

	h := handler.New(service.NewNotes(noteStore), authSvc, health.New(checkers...), log)
	h.Register(mux)
	mux.Method(http.MethodGet, "/metrics", reg.Handler())

	srv := httpserver.New(cfg.Addr, mux)
	return httpserver.Run(ctx, srv, log)
}
