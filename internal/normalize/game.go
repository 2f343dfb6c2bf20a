// Package normalize turns upstream API payloads into the canonical Game,
// Team, and Player records. Every function here is pure: it takes a
// decoded payload, returns values or an error, and touches no I/O.
package normalize

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// nameExtractors is the ordered fallback chain for resolving a
// competitor's display name. The order is part of the contract: prefer
// the full display name, then the short form, then the bare name.
var nameExtractors = []func(espn.Competitor) string{
	func(c espn.Competitor) string { return c.Team.DisplayName },
	func(c espn.Competitor) string { return c.Team.ShortDisplayName },
	func(c espn.Competitor) string { return c.Team.Name },
}

// statusTable maps upstream STATUS_* names onto the canonical enum.
// Anything unrecognized normalizes to Scheduled, never an error.
var statusTable = map[string]model.GameStatus{
	"STATUS_FINAL":       model.StatusFinal,
	"STATUS_IN_PROGRESS": model.StatusLive,
	"STATUS_HALFTIME":    model.StatusLive,
	"STATUS_END_PERIOD":  model.StatusLive,
	"STATUS_SCHEDULED":   model.StatusScheduled,
	"STATUS_POSTPONED":   model.StatusPostponed,
	"STATUS_CANCELED":    model.StatusCancelled,
	"STATUS_CANCELLED":   model.StatusCancelled,
}

// eventDateLayouts is tried in order; the upstream emits minute-precision
// RFC3339-like stamps ("2025-10-12T17:00Z") on most endpoints.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
}

// Game normalizes one upstream event into a canonical Game. It fails only
// when the home or away competitor cannot be located; every other missing
// field degrades to a documented default.
func Game(ev espn.Event, league model.League) (model.Game, error) {
	comps := eventCompetitors(ev)

	home, homeOK := findCompetitor(comps, "home")
	away, awayOK := findCompetitor(comps, "away")
	if !homeOK {
		return model.Game{}, &MalformedEventError{EventID: ev.ID, Reason: "no home competitor"}
	}
	if !awayOK {
		return model.Game{}, &MalformedEventError{EventID: ev.ID, Reason: "no away competitor"}
	}

	kickoff, hasDate := parseEventDate(ev.Date)
	status := eventStatus(ev)
	week := eventWeek(ev, kickoff, hasDate)

	g := model.Game{
		ID:        ev.ID,
		HomeTeam:  competitorName(home, "Home Team"),
		AwayTeam:  competitorName(away, "Away Team"),
		HomeScore: parseScore(home.Score),
		AwayScore: parseScore(away.Score),
		Status:    status,
		Kickoff:   kickoff,
		League:    league,
		Week:      week,
		WeekName:  weekLabel(week),
	}

	if hasDate {
		g.DisplayDate = kickoff.Format("Mon, Jan 2")
		g.DisplayTime = kickoff.Format("3:04 PM MST")
	} else {
		g.DisplayDate = "TBD"
		g.DisplayTime = "TBD"
	}
	return g, nil
}

// Games normalizes a batch, skipping malformed events. The skip-vs-abort
// decision is made here once for all scoreboard consumers: a bad event in
// a weekly feed never poisons its siblings.
func Games(events []espn.Event, league model.League, logger *slog.Logger) []model.Game {
	if logger == nil {
		logger = slog.Default()
	}
	games := make([]model.Game, 0, len(events))
	for _, ev := range events {
		g, err := Game(ev, league)
		if err != nil {
			logger.Warn("skipping malformed event", "event_id", ev.ID, "error", err)
			continue
		}
		games = append(games, g)
	}
	return games
}

// WeekFromDate derives a week number from a kickoff date: season start is
// September 1 of the event's year, weeks are ceil(elapsed/7d), floored
// at 1. Week-indexed fetches override this with the requested week.
func WeekFromDate(t time.Time) int {
	seasonStart := time.Date(t.Year(), time.September, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(seasonStart).Hours() / 24
	week := int(math.Ceil(days / 7))
	if week < 1 {
		return 1
	}
	return week
}

// --------------------------------------------------------------------------
// Field resolution
// --------------------------------------------------------------------------

// eventCompetitors resolves the competitor list: scoreboard events nest it
// under competitions[0], some event documents flatten it.
func eventCompetitors(ev espn.Event) []espn.Competitor {
	if len(ev.Competitions) > 0 && len(ev.Competitions[0].Competitors) > 0 {
		return ev.Competitions[0].Competitors
	}
	return ev.Competitors
}

func findCompetitor(comps []espn.Competitor, homeAway string) (espn.Competitor, bool) {
	for _, c := range comps {
		if c.HomeAway == homeAway {
			return c, true
		}
	}
	return espn.Competitor{}, false
}

// competitorName runs the extractor chain; a missing name is never an
// error, just the literal fallback.
func competitorName(c espn.Competitor, fallback string) string {
	for _, extract := range nameExtractors {
		if name := extract(c); name != "" {
			return name
		}
	}
	return fallback
}

// eventStatus resolves status from the event first, then the competition.
// The completed/inProgress boolean hints win over the STATUS_* name.
func eventStatus(ev espn.Event) model.GameStatus {
	st := ev.Status
	if st == nil && len(ev.Competitions) > 0 {
		st = ev.Competitions[0].Status
	}
	if st == nil {
		return model.StatusScheduled
	}
	if st.Type.Completed {
		return model.StatusFinal
	}
	if st.Type.InProgress {
		return model.StatusLive
	}
	if mapped, ok := statusTable[st.Type.Name]; ok {
		return mapped
	}
	return model.StatusScheduled
}

func eventWeek(ev espn.Event, kickoff time.Time, hasDate bool) int {
	if ev.Week != nil && ev.Week.Number > 0 {
		return ev.Week.Number
	}
	if ev.Season != nil && ev.Season.Week > 0 {
		return ev.Season.Week
	}
	if hasDate {
		return WeekFromDate(kickoff)
	}
	return 1
}

func parseEventDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func weekLabel(week int) string {
	return "Week " + strconv.Itoa(week)
}
