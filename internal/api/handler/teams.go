package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gridironhq/gridiron-data/internal/api/respond"
	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/normalize"
	"github.com/gridironhq/gridiron-data/internal/season"
)

// Teams returns the league's team list.
// @Summary League teams
// @Tags teams
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/{league}/teams [get]
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}

	list, err := h.client.Teams(r.Context(), league)
	if err != nil {
		h.logger.Warn("team list fetch failed", "league", league, "error", err)
		respond.JSON(w, http.StatusOK, map[string]interface{}{
			"league": league, "teams": []model.Team{},
		})
		return
	}

	teams := make([]model.Team, 0, len(list.Items))
	for _, item := range list.Items {
		t := model.Team{
			Name:         item.DisplayName,
			UpstreamID:   item.ID,
			Abbreviation: item.Abbreviation,
			Location:     item.Location,
			League:       league,
		}
		if t.Name == "" {
			t.Name = item.Name
		}
		if item.Conference != nil {
			t.Conference = item.Conference.Name
		}
		if item.Division != nil {
			t.Division = item.Division.Name
		}
		teams = append(teams, t)
	}

	respond.Cached(w, map[string]interface{}{
		"league": league,
		"count":  len(teams),
		"teams":  teams,
	}, h.cfg.CacheTTL)
}

// TeamGames returns a team's schedule split into past and future games.
// @Summary Team schedule
// @Description Filters the season walk down to one team's games. Pass fallback=synthetic to get a marked placeholder schedule when no real games exist.
// @Tags teams
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param team path string true "Team name (lenient match)"
// @Param fallback query string false "Set to synthetic to allow placeholder data"
// @Success 200 {object} season.TeamSchedule
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/{league}/teams/{team}/games [get]
func (h *Handler) TeamGames(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	teamName := strings.TrimSpace(chi.URLParam(r, "team"))
	if teamName == "" {
		respond.Error(w, http.StatusBadRequest, "INVALID_TEAM", "team name is required")
		return
	}

	schedule, err := h.fetcher.TeamGames(r.Context(), league, teamName, 0)
	if err != nil {
		if errors.Is(err, season.ErrNoData) {
			if r.URL.Query().Get("fallback") == "synthetic" {
				respond.JSON(w, http.StatusOK, season.SyntheticTeamSchedule(teamName, league, time.Now()))
				return
			}
			respond.Error(w, http.StatusNotFound, "NO_GAMES", "No games found for team")
			return
		}
		h.upstreamError(w, err)
		return
	}
	respond.Cached(w, schedule, h.cfg.CacheTTL)
}

// TeamStats returns a team's season statistics: upstream direct stats
// merged over stats computed from final scores.
// @Summary Team statistics
// @Tags teams
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param team path string true "Team name (lenient match)"
// @Success 200 {object} model.TeamStats
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/{league}/teams/{team}/stats [get]
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	teamName := strings.TrimSpace(chi.URLParam(r, "team"))
	if teamName == "" {
		respond.Error(w, http.StatusBadRequest, "INVALID_TEAM", "team name is required")
		return
	}

	schedule, err := h.fetcher.TeamGames(r.Context(), league, teamName, 0)
	if err != nil {
		if errors.Is(err, season.ErrNoData) {
			respond.Error(w, http.StatusNotFound, "NO_GAMES", "No games found for team")
			return
		}
		h.upstreamError(w, err)
		return
	}
	// The schedule filter is lenient ("Lions" finds "Detroit Lions");
	// stat attribution needs the exact name the games carry.
	canonical := canonicalTeamName(schedule, teamName)
	computed := normalize.ComputeTeamStats(schedule.All(), canonical)

	// Direct upstream stats are best-effort; the computed record stands
	// on its own when lookup or fetch fails.
	var direct *model.TeamStats
	if teamID, err := h.client.FindTeamID(r.Context(), league, canonical); err == nil && teamID != "" {
		if resp, err := h.client.TeamStats(r.Context(), league, teamID); err == nil {
			direct = normalize.TeamStats(resp, canonical)
		} else {
			h.logger.Warn("direct team stats fetch failed", "team", teamName, "error", err)
		}
	}

	respond.Cached(w, normalize.MergeTeamStats(direct, computed), h.cfg.CacheTTL)
}

// Roster returns a team's athlete list.
// @Summary Team roster
// @Tags teams
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param team path string true "Team name (lenient match)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/{league}/teams/{team}/roster [get]
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	teamName := strings.TrimSpace(chi.URLParam(r, "team"))
	if teamName == "" {
		respond.Error(w, http.StatusBadRequest, "INVALID_TEAM", "team name is required")
		return
	}

	teamID, err := h.client.FindTeamID(r.Context(), league, teamName)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	if teamID == "" {
		respond.Error(w, http.StatusNotFound, "UNKNOWN_TEAM", "No team matched that name")
		return
	}

	roster, err := h.client.Roster(r.Context(), league, teamID)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	respond.Cached(w, map[string]interface{}{
		"league":  league,
		"team":    teamName,
		"players": normalize.RosterPlayers(roster, teamName),
	}, h.cfg.CacheTTL)
}

// canonicalTeamName returns the exact name the schedule's games carry for
// the leniently-matched team.
func canonicalTeamName(schedule season.TeamSchedule, search string) string {
	for _, g := range schedule.All() {
		if season.MatchesTeam(g.HomeTeam, search) {
			return g.HomeTeam
		}
		if season.MatchesTeam(g.AwayTeam, search) {
			return g.AwayTeam
		}
	}
	return search
}
