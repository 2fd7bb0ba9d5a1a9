// Package main is the entry point for the PropLib catalog API server.
// It builds the generated local catalog, connects to optional services
// (PostgreSQL, Valkey), sets up routing, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"proplib/internal/cache"
	"proplib/internal/catalog"
	"proplib/internal/config"
	"proplib/internal/database"
	"proplib/internal/handlers"
	"proplib/internal/preview"
	"proplib/internal/router"
	"proplib/internal/store"
)

func main() {
	// Structured logger. Text output; level is debug so dev runs show
	// cache hits and fallbacks.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present (development convenience), then the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"postgres", cfg.IsDBConfigured(),
		"valkey", cfg.IsValkeyConfigured(),
	)

	// Build the generated local catalog. It is constructed once here and
	// injected read-only; it backs every request PostgreSQL can't serve.
	cat, err := catalog.New()
	if err != nil {
		slog.Error("failed to build local catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("local catalog generated", "components", cat.Len())

	// Connect to PostgreSQL if configured. Without it the service serves
	// the generated catalog only and the admin write path answers 503.
	var componentStore *store.ComponentStore
	var analyticsStore *store.AnalyticsStore
	if cfg.IsDBConfigured() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed development data (no-op if data already exists).
		if cfg.IsDev() {
			if err := database.Seed(db, cat.Records()); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}

		componentStore = store.NewComponentStore(db)
		analyticsStore = store.NewAnalyticsStore(db)
	} else {
		slog.Warn("postgres not configured, serving generated catalog only")
	}

	// Connect to Valkey if configured. A nil cache disables response caching.
	var respCache *cache.ResponseCache
	if cfg.IsValkeyConfigured() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	} else {
		slog.Warn("valkey not configured, response caching disabled")
	}

	// The preview registry resolves symbolic preview paths for the
	// frontend; unknown paths fall back to the default entry.
	registry := preview.NewRegistry()

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(cat, registry, componentStore, analyticsStore, respCache)
	analyticsHandlers := handlers.NewAnalytics(cat, componentStore, analyticsStore, respCache)
	adminHandlers := handlers.NewAdmin(componentStore, analyticsStore, respCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Config{
		AdminAPIKey: cfg.AdminAPIKey,
		CronSecret:  cfg.CronSecret,
	}, publicHandlers, analyticsHandlers, adminHandlers)

	// Create the HTTP server with sensible timeouts. Responses are small
	// JSON bodies, so the write timeout stays tight.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
