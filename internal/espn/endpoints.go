package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// Scoreboard fetches a league's scoreboard. week <= 0 means the current
// week (no week query parameter).
func (c *Client) Scoreboard(ctx context.Context, league model.League, week int) (*ScoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.siteBase, slug(league))
	if week > 0 {
		url = fmt.Sprintf("%s?week=%d", url, week)
	}

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var sb ScoreboardResponse
	if err := json.Unmarshal(body, &sb); err != nil {
		return nil, fmt.Errorf("decode scoreboard: %w", err)
	}
	return &sb, nil
}

// CurrentWeek returns the league's current week number from the scoreboard
// metadata, defaulting to 1 when upstream omits it.
func (c *Client) CurrentWeek(ctx context.Context, league model.League) (int, error) {
	sb, err := c.Scoreboard(ctx, league, 0)
	if err != nil {
		return 0, err
	}
	if sb.Week.Number < 1 {
		return 1, nil
	}
	return sb.Week.Number, nil
}

// Teams lists every team in the league from the core API. The page size
// is taken from the league registry and covers the full league.
func (c *Client) Teams(ctx context.Context, league model.League) (*TeamListResponse, error) {
	pageSize := 32
	if lc, ok := config.LeagueRegistry[league]; ok {
		pageSize = lc.TeamsPageSize
	}
	url := fmt.Sprintf("%s/%s/teams?pageSize=%d", c.coreBase, slug(league), pageSize)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var list TeamListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode team list: %w", err)
	}
	return &list, nil
}

// FindTeamID resolves a team name to its upstream numeric ID: exact match
// on display name or short name first, then partial containment. Returns
// "" (no error) when nothing matches; the caller decides how to degrade.
func (c *Client) FindTeamID(ctx context.Context, league model.League, name string) (string, error) {
	list, err := c.Teams(ctx, league)
	if err != nil {
		return "", err
	}

	search := strings.ToLower(name)
	for _, t := range list.Items {
		if strings.ToLower(t.DisplayName) == search || strings.ToLower(t.Name) == search {
			return t.ID, nil
		}
	}
	for _, t := range list.Items {
		if strings.Contains(strings.ToLower(t.DisplayName), search) ||
			strings.Contains(strings.ToLower(t.Name), search) {
			return t.ID, nil
		}
	}
	return "", nil
}

// TeamStats fetches the site-API team statistics payload (direct mode).
func (c *Client) TeamStats(ctx context.Context, league model.League, teamID string) (*TeamStatsResponse, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/stats", c.siteBase, slug(league), teamID)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var stats TeamStatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode team stats: %w", err)
	}
	return &stats, nil
}

// Summary fetches the game summary (header + player stat splits) for one
// event via the event query parameter.
func (c *Client) Summary(ctx context.Context, league model.League, eventID string) (*GameSummaryResponse, error) {
	return c.eventDocument(ctx, league, "summary", eventID)
}

// Boxscore fetches the full boxscore (per-category athlete lines) for one
// event via the event query parameter.
func (c *Client) Boxscore(ctx context.Context, league model.League, eventID string) (*GameSummaryResponse, error) {
	return c.eventDocument(ctx, league, "boxscore", eventID)
}

func (c *Client) eventDocument(ctx context.Context, league model.League, kind, eventID string) (*GameSummaryResponse, error) {
	url := fmt.Sprintf("%s/%s/%s?event=%s", c.siteBase, slug(league), kind, eventID)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var doc GameSummaryResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return &doc, nil
}

// GameDetails fetches the core-API event document for one game.
func (c *Client) GameDetails(ctx context.Context, league model.League, eventID string) (*Event, error) {
	url := fmt.Sprintf("%s/%s/events/%s", c.coreBase, slug(league), eventID)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &ev, nil
}

// Roster fetches the core-API athlete list for a team.
func (c *Client) Roster(ctx context.Context, league model.League, teamID string) (*RosterResponse, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/athletes", c.coreBase, slug(league), teamID)

	body, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	var roster RosterResponse
	if err := json.Unmarshal(body, &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return &roster, nil
}
