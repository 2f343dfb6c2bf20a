package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gridironhq/gridiron-data/internal/api/respond"
	"github.com/gridironhq/gridiron-data/internal/assistant"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// insightRequest identifies the game an insight is requested for.
type insightRequest struct {
	GameID   string `json:"gameId"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	League   string `json:"league"`
	Date     string `json:"date,omitempty"`
}

func (req insightRequest) game() (model.Game, error) {
	league := model.League(req.League)
	if !league.Valid() {
		return model.Game{}, errors.New("unknown league")
	}
	if req.GameID == "" || req.HomeTeam == "" || req.AwayTeam == "" {
		return model.Game{}, errors.New("gameId, homeTeam, and awayTeam are required")
	}
	g := model.Game{
		ID:       req.GameID,
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
		League:   league,
	}
	if req.Date != "" {
		kickoff, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return model.Game{}, errors.New("date must be YYYY-MM-DD")
		}
		g.Kickoff = kickoff
	}
	return g, nil
}

type insightCall func(context.Context, model.Game) (map[string]interface{}, error)

// GameInsightSummary proxies a narrative summary request to the assistant.
// @Summary Assistant game summary
// @Tags insights
// @Accept json
// @Produce json
// @Param request body insightRequest true "Game identification"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/insights/game-summary [post]
func (h *Handler) GameInsightSummary(w http.ResponseWriter, r *http.Request) {
	h.insight(w, r, h.assistant.GameSummary)
}

// GameInsightDetails proxies a structured detail request to the assistant.
// @Summary Assistant game details
// @Tags insights
// @Accept json
// @Produce json
// @Param request body insightRequest true "Game identification"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/insights/game-details [post]
func (h *Handler) GameInsightDetails(w http.ResponseWriter, r *http.Request) {
	h.insight(w, r, h.assistant.GameDetails)
}

// QuarterbackInsight proxies a quarterback comparison request.
// @Summary Assistant quarterback comparison
// @Tags insights
// @Accept json
// @Produce json
// @Param request body insightRequest true "Game identification"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/insights/quarterback-stats [post]
func (h *Handler) QuarterbackInsight(w http.ResponseWriter, r *http.Request) {
	h.insight(w, r, h.assistant.QuarterbackStats)
}

// AnnouncerReport proxies the long-form broadcast report request.
// @Summary Assistant announcer report
// @Tags insights
// @Accept json
// @Produce json
// @Param request body insightRequest true "Game identification"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/insights/announcer-report [post]
func (h *Handler) AnnouncerReport(w http.ResponseWriter, r *http.Request) {
	h.insight(w, r, h.assistant.AnnouncerReport)
}

func (h *Handler) insight(w http.ResponseWriter, r *http.Request, call insightCall) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		return
	}
	game, err := req.game()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	out, err := call(r.Context(), game)
	if err != nil {
		var se *assistant.StatusError
		if errors.As(err, &se) {
			respond.ErrorDetail(w, http.StatusBadGateway, "ASSISTANT_ERROR",
				"Assistant request failed", se.Body)
			return
		}
		respond.Error(w, http.StatusBadGateway, "ASSISTANT_UNAVAILABLE", "Assistant unreachable")
		return
	}
	respond.JSON(w, http.StatusOK, out)
}
