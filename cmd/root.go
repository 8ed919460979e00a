package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kisanmitra/cropadvisor/internal/config"
	"github.com/kisanmitra/cropadvisor/internal/handler"
	"github.com/kisanmitra/cropadvisor/internal/middleware"
	"github.com/kisanmitra/cropadvisor/internal/recommend"
	"github.com/kisanmitra/cropadvisor/internal/registry"
	"github.com/kisanmitra/cropadvisor/internal/services/soilgrid"
)

func Run() error {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	slog.Info("Loaded soil catalog",
		"regions", len(registry.Regions()),
		"centroids", len(registry.Centroids()))

	var soilSource recommend.SoilSource
	if cfg.SoilGrid.Enabled {
		soilSource = soilgrid.NewCachedService(cfg.SoilGrid.Timeout.Std(), cfg.SoilGrid.CacheTTL.Std())
		slog.Info("Live soil data enabled", "cache_ttl", cfg.SoilGrid.CacheTTL.Std().String())
	} else {
		slog.Info("Live soil data disabled, using regional and synthetic readings")
	}

	recommendService := recommend.NewService(soilSource)
	advisorHandler := handler.NewAdvisorHandler(recommendService)

	// Initialize router
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// API v1 subrouter
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/recommendations", advisorHandler.GetRecommendation).Methods(http.MethodPost)
	api.HandleFunc("/regions", advisorHandler.ListRegions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{name}", advisorHandler.GetRegion).Methods(http.MethodGet)

	var h http.Handler = r

	// Request IDs
	h = middleware.RequestID(h)

	// Recovery (catches panics)
	h = handlers.RecoveryHandler()(h)

	// CORS
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
	)(h)

	// Logging
	h = handlers.LoggingHandler(os.Stdout, h)

	slog.Info("starting api server")

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
	}

	return startServer(server, cfg.Server)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(h)
}

func startServer(server *http.Server, cfg config.ServerConfig) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped gracefully")
	}

	return nil
}
