package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gridironhq/gridiron-data/internal/api/handler"
	"github.com/gridironhq/gridiron-data/internal/cache"
	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/season"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(client *espn.Client, appCache *cache.Cache, fetcher *season.Fetcher, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(client, appCache, fetcher, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/upstream", h.HealthCheckUpstream)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Cache administration
		r.Get("/cache/stats", h.CacheStats)
		r.Delete("/cache", h.CacheClear)
		r.Delete("/cache/expired", h.CacheClearExpired)

		// Assistant insights
		r.Post("/insights/game-summary", h.GameInsightSummary)
		r.Post("/insights/game-details", h.GameInsightDetails)
		r.Post("/insights/quarterback-stats", h.QuarterbackInsight)
		r.Post("/insights/announcer-report", h.AnnouncerReport)

		// Per-league resources
		r.Route("/{league}", func(r chi.Router) {
			r.Get("/scoreboard", h.Scoreboard)
			r.Get("/season", h.Season)
			r.Get("/weeks/current", h.CurrentWeek)
			r.Get("/weeks/surrounding", h.Surrounding)
			r.Get("/teams", h.Teams)
			r.Get("/teams/{team}/games", h.TeamGames)
			r.Get("/teams/{team}/stats", h.TeamStats)
			r.Get("/teams/{team}/roster", h.Roster)
			r.Get("/games/{eventID}", h.GameDetails)
			r.Get("/games/{eventID}/boxscore", h.Boxscore)
			r.Get("/games/{eventID}/summary", h.Summary)
		})
	})

	return r
}
