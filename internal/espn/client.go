// Package espn provides the HTTP client for the public football scoreboard
// API (site API for scoreboards/summaries, core API for teams and events).
//
// The API is unauthenticated; every request carries an Accept header and a
// browser-like User-Agent. Responses are cached by URL through the injected
// TTL cache, and outbound traffic is paced with a token bucket limiter.
// The client never retries — callers own retry and degradation policy.
package espn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/gridironhq/gridiron-data/internal/cache"
	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// Client is the shared HTTP client for all scoreboard endpoints.
type Client struct {
	httpClient *http.Client
	siteBase   string
	coreBase   string
	userAgent  string
	limiter    *rate.Limiter
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewClient creates a scoreboard API client. The cache may be a disabled
// (no-op) cache; fetches then always go to the network.
func NewClient(cfg *config.Config, c *cache.Cache, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = cache.New(false, 0)
	}
	rps := float64(cfg.UpstreamRPM) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		siteBase:   cfg.SiteAPIBaseURL,
		coreBase:   cfg.CoreAPIBaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), 5),
		cache:      c,
		logger:     logger,
	}
}

// slug resolves the league's path segment on both API hosts.
func slug(league model.League) string {
	if lc, ok := config.LeagueRegistry[league]; ok {
		return lc.Slug
	}
	return string(league)
}

// getJSON performs a cached, rate-limited GET and returns the raw body.
// Non-2xx responses become *StatusError with the (truncated) error payload;
// transport failures are wrapped and identifiable via IsNetworkError.
func (c *Client) getJSON(ctx context.Context, url string) ([]byte, error) {
	if payload, ok := c.cache.Get(url); ok {
		c.logger.Debug("cache hit", "url", url)
		return payload, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, URL: url, Body: truncate(body, 200)}
	}

	c.cache.Set(url, body)
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
