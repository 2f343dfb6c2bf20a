// Command api is the Gridiron Data API server.
//
// Usage:
//
//	gridiron-api
//	API_PORT=8080 gridiron-api

// @title Gridiron Data API
// @version 1.0.0
// @description Football scoreboard normalization API: weekly scoreboards, season walks, team schedules and statistics, boxscore player stats, and assistant-backed game insights.
// @host localhost:8090
// @BasePath /api/v1
// @schemes http https
// @contact.name Gridiron
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/gridironhq/gridiron-data/internal/api"
	"github.com/gridironhq/gridiron-data/internal/cache"
	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/season"

	_ "github.com/gridironhq/gridiron-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Initialize cache and upstream client
	appCache := cache.New(cfg.CacheEnabled, cfg.CacheTTL)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

	client := espn.NewClient(cfg, appCache, logger)
	fetcher := season.NewFetcher(client, cfg, logger)

	// Create router
	router := api.NewRouter(client, appCache, fetcher, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Gridiron Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
