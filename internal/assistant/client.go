// Package assistant is the client for the companion analysis service that
// turns normalized game data into narrative summaries and reports. The
// service is optional; every method degrades to an error the handlers can
// translate into a "assistant unavailable" response.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridironhq/gridiron-data/internal/model"
)

const (
	defaultTimeout = 60 * time.Second
	maxErrorBody   = 200
)

// GameRequest is the payload every assistant endpoint accepts.
type GameRequest struct {
	GameID   string `json:"game_id"`
	AwayTeam string `json:"away_team"`
	HomeTeam string `json:"home_team"`
	League   string `json:"league"`
	Date     string `json:"date,omitempty"`
}

// StatusError is a non-2xx reply from the assistant service.
type StatusError struct {
	Status int
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("assistant request %s failed with status %d: %s", e.URL, e.Status, e.Body)
}

// Client talks to the assistant service over JSON-over-HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an assistant client. baseURL has no trailing slash.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// requestFor maps a normalized game into the assistant payload.
func requestFor(game model.Game) GameRequest {
	req := GameRequest{
		GameID:   game.ID,
		AwayTeam: game.AwayTeam,
		HomeTeam: game.HomeTeam,
		League:   string(game.League),
	}
	if !game.Kickoff.IsZero() {
		req.Date = game.Kickoff.Format("2006-01-02")
	}
	return req
}

// GameSummary returns the assistant's narrative summary for a game.
func (c *Client) GameSummary(ctx context.Context, game model.Game) (map[string]interface{}, error) {
	return c.post(ctx, "/game-summary", requestFor(game), "game_summary")
}

// GameDetails returns the assistant's structured detail breakdown.
func (c *Client) GameDetails(ctx context.Context, game model.Game) (map[string]interface{}, error) {
	return c.post(ctx, "/game-details", requestFor(game), "game_details")
}

// QuarterbackStats returns the assistant's quarterback comparison.
func (c *Client) QuarterbackStats(ctx context.Context, game model.Game) (map[string]interface{}, error) {
	return c.post(ctx, "/quarterback-stats", requestFor(game), "quarterback_stats")
}

// AnnouncerReport returns the long-form broadcast-style report. This is
// the slowest assistant call; the generous client timeout exists for it.
func (c *Client) AnnouncerReport(ctx context.Context, game model.Game) (map[string]interface{}, error) {
	return c.post(ctx, "/generate-announcer-report", requestFor(game), "announcer_report")
}

// post sends the request and unwraps the named envelope key when present.
// Some assistant deployments return the payload bare, so a missing key
// falls back to the whole document.
func (c *Client) post(ctx context.Context, path string, payload GameRequest, envelope string) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal assistant request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant request %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read assistant response %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Status: resp.StatusCode,
			URL:    url,
			Body:   truncate(raw, maxErrorBody),
		}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode assistant response %s: %w", url, err)
	}

	c.logger.Debug("assistant call complete",
		"path", path, "game_id", payload.GameID, "duration", time.Since(start))

	if inner, ok := doc[envelope].(map[string]interface{}); ok {
		return inner, nil
	}
	return doc, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
