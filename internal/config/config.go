// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/gridiron.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gridironhq/gridiron-data/internal/model"
)

// --------------------------------------------------------------------------
// League registry — one entry per supported league
// --------------------------------------------------------------------------

// LeagueConfig describes how a league maps onto the upstream API.
type LeagueConfig struct {
	ID   model.League
	Name string
	// Slug is the league path segment on the site API
	// (e.g. "nfl", "college-football").
	Slug string
	// MaxWeek bounds the week-range walk. A dataset convention, not a
	// domain invariant — overridable via GRIDIRON_<LEAGUE>_MAX_WEEK.
	MaxWeek int
	// TeamsPageSize covers the full league in one teams-list page.
	TeamsPageSize int
}

// LeagueRegistry is the single source of truth for league metadata.
var LeagueRegistry = map[model.League]LeagueConfig{
	model.LeagueNFL:  {ID: model.LeagueNFL, Name: "National Football League", Slug: "nfl", MaxWeek: 18, TeamsPageSize: 32},
	model.LeagueNCAA: {ID: model.LeagueNCAA, Name: "NCAA College Football", Slug: "college-football", MaxWeek: 12, TeamsPageSize: 130},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream scoreboard API
	SiteAPIBaseURL string
	CoreAPIBaseURL string
	UserAgent      string
	UpstreamRPM    int

	// Auxiliary AI/chat backend
	AssistantBaseURL string

	// Cache
	CacheEnabled bool
	CacheTTL     time.Duration

	// Week-range fetch pacing
	WeekFetchDelay time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// League overrides
	MaxWeeks map[model.League]int
}

// Load reads configuration from environment variables with sensible defaults.
// No credentials are required; the scoreboard API is public.
func Load() (*Config, error) {
	cfg := &Config{
		SiteAPIBaseURL: envOr("SITE_API_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports/football"),
		CoreAPIBaseURL: envOr("CORE_API_BASE_URL", "https://sports.core.api.espn.com/v2/sports/football/leagues"),
		UserAgent:      envOr("UPSTREAM_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		UpstreamRPM:    envInt("UPSTREAM_REQUESTS_PER_MINUTE", 300),

		AssistantBaseURL: envOr("ASSISTANT_BASE_URL", "http://localhost:8000"),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		WeekFetchDelay: time.Duration(envInt("WEEK_FETCH_DELAY_MS", 100)) * time.Millisecond,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8090)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		MaxWeeks: map[model.League]int{
			model.LeagueNFL:  envInt("GRIDIRON_NFL_MAX_WEEK", LeagueRegistry[model.LeagueNFL].MaxWeek),
			model.LeagueNCAA: envInt("GRIDIRON_NCAA_MAX_WEEK", LeagueRegistry[model.LeagueNCAA].MaxWeek),
		},
	}
	return cfg, nil
}

// MaxWeek returns the configured week ceiling for a league.
func (c *Config) MaxWeek(league model.League) int {
	if n, ok := c.MaxWeeks[league]; ok && n > 0 {
		return n
	}
	if lc, ok := LeagueRegistry[league]; ok {
		return lc.MaxWeek
	}
	return 18
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
