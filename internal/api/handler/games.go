package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gridironhq/gridiron-data/internal/api/respond"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/normalize"
	"github.com/gridironhq/gridiron-data/internal/season"
)

// Scoreboard returns one week's normalized games.
// @Summary Weekly scoreboard
// @Description Returns normalized games for a league week. Omitting week uses the upstream's current week.
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param week query int false "Week number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/{league}/scoreboard [get]
func (h *Handler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}

	week := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > h.cfg.MaxWeek(league) {
			respond.Error(w, http.StatusBadRequest, "INVALID_WEEK", "week must be a positive number in season range")
			return
		}
		week = n
	}

	sb, err := h.client.Scoreboard(r.Context(), league, week)
	if err != nil {
		// List boundary: degrade to an empty scoreboard.
		h.logger.Warn("scoreboard fetch failed", "league", league, "week", week, "error", err)
		respond.JSON(w, http.StatusOK, map[string]interface{}{
			"league": league, "week": week, "games": []model.Game{},
		})
		return
	}

	games := normalize.Games(sb.EventList(), league, h.logger)
	if week == 0 {
		week = sb.Week.Number
	}
	respond.Cached(w, map[string]interface{}{
		"league": league,
		"week":   week,
		"games":  games,
	}, h.cfg.CacheTTL)
}

// CurrentWeek returns the upstream's current week number.
// @Summary Current week
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/{league}/weeks/current [get]
func (h *Handler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}

	week, err := h.client.CurrentWeek(r.Context(), league)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	respond.Cached(w, map[string]interface{}{
		"league": league,
		"week":   week,
	}, h.cfg.CacheTTL)
}

// Season walks the season's weeks and returns every game found so far.
// @Summary Season games
// @Description Walks weeks 1 through current+4 and returns all games found.
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param currentWeek query int false "Override the current week"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/{league}/season [get]
func (h *Handler) Season(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}

	currentWeek := 0
	if raw := r.URL.Query().Get("currentWeek"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			currentWeek = n
		}
	}

	games, err := h.fetcher.SeasonGames(r.Context(), league, currentWeek)
	if err != nil && !errors.Is(err, season.ErrNoData) {
		h.upstreamError(w, err)
		return
	}
	if games == nil {
		games = []model.Game{}
	}
	respond.Cached(w, map[string]interface{}{
		"league": league,
		"count":  len(games),
		"games":  games,
	}, h.cfg.CacheTTL)
}

// Surrounding returns the previous, current, and next week's games.
// @Summary Surrounding weeks
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Success 200 {object} season.Surrounding
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/{league}/weeks/surrounding [get]
func (h *Handler) Surrounding(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}

	out, err := h.fetcher.SurroundingWeeks(r.Context(), league)
	if err != nil {
		h.upstreamError(w, err)
		return
	}
	respond.Cached(w, out, h.cfg.CacheTTL)
}

// Boxscore returns per-player stats for one game.
// @Summary Game boxscore
// @Description Returns players with merged per-category game stats.
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param eventID path string true "Upstream event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/{league}/games/{eventID}/boxscore [get]
func (h *Handler) Boxscore(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	eventID := chi.URLParam(r, "eventID")

	doc, err := h.client.Boxscore(r.Context(), league, eventID)
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	players := normalize.BoxscorePlayers(doc)
	respond.Cached(w, map[string]interface{}{
		"gameId":  eventID,
		"league":  league,
		"players": players,
	}, h.cfg.CacheTTL)
}

// Summary returns the game summary's players with season and game splits.
// @Summary Game summary players
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param eventID path string true "Upstream event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/{league}/games/{eventID}/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	eventID := chi.URLParam(r, "eventID")

	doc, err := h.client.Summary(r.Context(), league, eventID)
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	players := normalize.SummaryPlayers(doc)
	respond.Cached(w, map[string]interface{}{
		"gameId":  eventID,
		"league":  league,
		"players": players,
	}, h.cfg.CacheTTL)
}

// GameDetails returns one normalized game from the core event document.
// @Summary Game details
// @Tags games
// @Produce json
// @Param league path string true "League (nfl or ncaa)"
// @Param eventID path string true "Upstream event ID"
// @Success 200 {object} model.Game
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/{league}/games/{eventID} [get]
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	league, ok := h.league(w, r)
	if !ok {
		return
	}
	eventID := chi.URLParam(r, "eventID")

	ev, err := h.client.GameDetails(r.Context(), league, eventID)
	if err != nil {
		h.upstreamError(w, err)
		return
	}

	game, err := normalize.Game(*ev, league)
	if err != nil {
		respond.ErrorDetail(w, http.StatusBadGateway, "UPSTREAM_MALFORMED",
			"Upstream event could not be normalized", err.Error())
		return
	}
	respond.Cached(w, game, h.cfg.CacheTTL)
}

// upstreamError maps upstream failures on single-resource endpoints to a
// 502 with the underlying detail.
func (h *Handler) upstreamError(w http.ResponseWriter, err error) {
	var se *espn.StatusError
	if errors.As(err, &se) {
		respond.ErrorDetail(w, http.StatusBadGateway, "UPSTREAM_ERROR",
			"Upstream request failed", strconv.Itoa(se.Status))
		return
	}
	if espn.IsNetworkError(err) {
		respond.Error(w, http.StatusBadGateway, "UPSTREAM_UNREACHABLE", "Upstream unreachable")
		return
	}
	respond.Error(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
}
