// Package handler provides HTTP handlers for all API endpoints. Handlers
// call the upstream client and normalizers directly — no service layer.
// List endpoints swallow upstream failures into empty results; single-
// resource endpoints surface them as 502s.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridironhq/gridiron-data/internal/api/respond"
	"github.com/gridironhq/gridiron-data/internal/assistant"
	"github.com/gridironhq/gridiron-data/internal/cache"
	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/season"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	client    *espn.Client
	cache     *cache.Cache
	fetcher   *season.Fetcher
	assistant *assistant.Client
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(client *espn.Client, c *cache.Cache, fetcher *season.Fetcher, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		client:    client,
		cache:     c,
		fetcher:   fetcher,
		assistant: assistant.NewClient(cfg.AssistantBaseURL, logger),
		cfg:       cfg,
		logger:    logger,
	}
}

// league extracts and validates the {league} path parameter. A write to w
// has already happened when ok is false.
func (h *Handler) league(w http.ResponseWriter, r *http.Request) (model.League, bool) {
	league := model.League(chi.URLParam(r, "league"))
	if !league.Valid() {
		respond.ErrorDetail(w, http.StatusBadRequest, "INVALID_LEAGUE",
			"Unknown league", "supported leagues: nfl, ncaa")
		return "", false
	}
	return league, true
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and feature summary.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Gridiron Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"leagues": []string{"nfl", "ncaa"},
		"features": []string{
			"scoreboard_normalization",
			"season_week_walk",
			"team_schedules",
			"team_stat_merging",
			"boxscore_players",
			"in_memory_cache",
			"gzip_compression",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckUpstream verifies the scoreboard API is reachable.
// @Summary Upstream health check
// @Description Verifies the scoreboard gateway responds.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/upstream [get]
func (h *Handler) HealthCheckUpstream(w http.ResponseWriter, r *http.Request) {
	_, err := h.client.CurrentWeek(r.Context(), model.LeagueNFL)
	if err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"upstream":  "unreachable",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"upstream":  "reachable",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CacheStats returns the cache statistics document.
// @Summary Cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/cache/stats [get]
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.cache.Stats())
}

// CacheClear empties the whole cache.
// @Summary Clear cache
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/cache [delete]
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	h.logger.Info("cache cleared by request")
	respond.JSON(w, http.StatusOK, map[string]interface{}{"status": "cleared"})
}

// CacheClearExpired sweeps only expired entries.
// @Summary Clear expired cache entries
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/cache/expired [delete]
func (h *Handler) CacheClearExpired(w http.ResponseWriter, r *http.Request) {
	removed := h.cache.ClearExpired()
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "cleared",
		"removed": removed,
	})
}
