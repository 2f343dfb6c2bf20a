// Package season assembles multi-week game datasets from the one-week-at-
// a-time scoreboard endpoint: full season walks, team schedules, and the
// previous/current/next week view the dashboard opens with.
package season

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/normalize"
)

// ErrNoData reports zero games across an entire multi-week range. Callers
// may opt into the synthetic fallback instead of surfacing it.
var ErrNoData = errors.New("no games found for range")

// Client is the slice of the upstream client the fetcher needs.
type Client interface {
	Scoreboard(ctx context.Context, league model.League, week int) (*espn.ScoreboardResponse, error)
	CurrentWeek(ctx context.Context, league model.League) (int, error)
}

// Fetcher drives repeated per-week scoreboard fetches. The week walk is
// sequential with an inter-request delay; only the independent
// surrounding-week fetches fan out concurrently.
type Fetcher struct {
	client Client
	cfg    *config.Config
	delay  time.Duration
	logger *slog.Logger

	// FallbackSynthetic opts into the clearly-marked placeholder dataset
	// when a team walk finds nothing at all. Off by default.
	FallbackSynthetic bool

	now func() time.Time
}

// NewFetcher creates a Fetcher with the configured pacing delay.
func NewFetcher(client Client, cfg *config.Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: client,
		cfg:    cfg,
		delay:  cfg.WeekFetchDelay,
		logger: logger,
		now:    time.Now,
	}
}

// TeamSchedule is a team's games split around "now" at fetch time.
type TeamSchedule struct {
	Team   string       `json:"team"`
	League model.League `json:"league"`
	Past   []model.Game `json:"pastGames"`
	Future []model.Game `json:"futureGames"`
	// Synthetic is set when the whole schedule is placeholder data.
	Synthetic bool `json:"synthetic,omitempty"`
}

// All returns past followed by future games.
func (s TeamSchedule) All() []model.Game {
	all := make([]model.Game, 0, len(s.Past)+len(s.Future))
	all = append(all, s.Past...)
	all = append(all, s.Future...)
	return all
}

// SeasonGames walks weeks 1 through min(currentWeek+4, league max week)
// and returns every game found, de-duplicated by event ID and sorted by
// kickoff. A single week's failure is logged and skipped — the walk
// always yields whatever it could get; only a completely empty range is
// an error (ErrNoData).
func (f *Fetcher) SeasonGames(ctx context.Context, league model.League, currentWeek int) ([]model.Game, error) {
	currentWeek = f.resolveCurrentWeek(ctx, league, currentWeek)

	maxWeek := currentWeek + 4
	if limit := f.cfg.MaxWeek(league); maxWeek > limit {
		maxWeek = limit
	}

	var games []model.Game
	seen := make(map[string]bool)

	for week := 1; week <= maxWeek; week++ {
		sb, err := f.client.Scoreboard(ctx, league, week)
		if err != nil {
			f.logger.Warn("week fetch failed, continuing",
				"league", league, "week", week, "error", err)
		} else {
			for _, g := range normalize.Games(sb.EventList(), league, f.logger) {
				if g.ID != "" && seen[g.ID] {
					continue
				}
				seen[g.ID] = true
				// The requested week is trusted over the date-derived one.
				g.Week = week
				g.WeekName = "Week " + strconv.Itoa(week)
				g.WeekType = weekTypeFor(week, currentWeek)
				games = append(games, g)
			}
		}

		if week < maxWeek {
			if err := f.pace(ctx); err != nil {
				return games, err
			}
		}
	}

	if len(games) == 0 {
		return nil, ErrNoData
	}

	sort.Slice(games, func(i, j int) bool { return games[i].Kickoff.Before(games[j].Kickoff) })
	return games, nil
}

// TeamGames walks the same range and keeps only games involving the named
// team, split into past and future around now. Matching is lenient (see
// MatchesTeam); occasional false positives are accepted.
// When the walk finds nothing and FallbackSynthetic is set, a marked
// placeholder schedule is returned instead of ErrNoData.
func (f *Fetcher) TeamGames(ctx context.Context, league model.League, teamName string, currentWeek int) (TeamSchedule, error) {
	schedule := TeamSchedule{Team: teamName, League: league}

	games, err := f.SeasonGames(ctx, league, currentWeek)
	if err != nil && !errors.Is(err, ErrNoData) {
		return schedule, err
	}

	now := f.now()
	for _, g := range games {
		if !MatchesTeam(g.HomeTeam, teamName) && !MatchesTeam(g.AwayTeam, teamName) {
			continue
		}

		if MatchesTeam(g.HomeTeam, teamName) {
			g.IsHome = true
			g.Opponent = g.AwayTeam
		} else {
			g.Opponent = g.HomeTeam
		}

		if g.Kickoff.Before(now) {
			schedule.Past = append(schedule.Past, g)
		} else {
			schedule.Future = append(schedule.Future, g)
		}
	}

	if len(schedule.Past)+len(schedule.Future) == 0 {
		if !f.FallbackSynthetic {
			return schedule, ErrNoData
		}
		f.logger.Warn("no real games found, generating synthetic schedule",
			"team", teamName, "league", league)
		return SyntheticTeamSchedule(teamName, league, now), nil
	}
	return schedule, nil
}

// Surrounding holds the dashboard's opening view: the current week's games
// plus the neighboring weeks.
type Surrounding struct {
	League      model.League `json:"league"`
	CurrentWeek int          `json:"currentWeek"`
	Previous    []model.Game `json:"previous"`
	Current     []model.Game `json:"current"`
	Next        []model.Game `json:"next"`
}

// SurroundingWeeks fetches the previous, current, and next week
// concurrently — unlike the season walk these three are independent, so
// their latencies are overlapped. A failed week degrades to an empty
// slice.
func (f *Fetcher) SurroundingWeeks(ctx context.Context, league model.League) (Surrounding, error) {
	currentWeek, err := f.client.CurrentWeek(ctx, league)
	if err != nil {
		return Surrounding{}, err
	}

	prevWeek := currentWeek - 1
	if prevWeek < 1 {
		prevWeek = 1
	}
	nextWeek := currentWeek + 1
	if limit := f.cfg.MaxWeek(league); nextWeek > limit {
		nextWeek = limit
	}

	out := Surrounding{League: league, CurrentWeek: currentWeek}

	fetch := func(week int, weekType model.WeekType, dst *[]model.Game) {
		sb, err := f.client.Scoreboard(ctx, league, week)
		if err != nil {
			f.logger.Warn("surrounding week fetch failed",
				"league", league, "week", week, "error", err)
			return
		}
		games := normalize.Games(sb.EventList(), league, f.logger)
		for i := range games {
			games[i].Week = week
			games[i].WeekName = "Week " + strconv.Itoa(week)
			games[i].WeekType = weekType
		}
		*dst = games
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); fetch(prevWeek, model.WeekPrevious, &out.Previous) }()
	go func() { defer wg.Done(); fetch(currentWeek, model.WeekCurrent, &out.Current) }()
	go func() { defer wg.Done(); fetch(nextWeek, model.WeekNext, &out.Next) }()
	wg.Wait()

	return out, nil
}

// --------------------------------------------------------------------------
// Matching
// --------------------------------------------------------------------------

// MatchesTeam is the lenient name test used to keep a team's games from a
// weekly feed: case-insensitive substring in either direction, a
// space-stripped variant, and a last-token fallback for multi-word names
// ("Lions" finds "Detroit Lions"). Double matches are accepted as false
// positives by trade-off; the filter stays simple.
func MatchesTeam(candidate, search string) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	s := strings.ToLower(strings.TrimSpace(search))
	if c == "" || s == "" {
		return false
	}
	if strings.Contains(c, s) || strings.Contains(s, c) {
		return true
	}
	if compact := strings.ReplaceAll(s, " ", ""); strings.Contains(c, compact) {
		return true
	}
	if fields := strings.Fields(s); len(fields) > 1 {
		return strings.Contains(c, fields[len(fields)-1])
	}
	return false
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func (f *Fetcher) resolveCurrentWeek(ctx context.Context, league model.League, currentWeek int) int {
	if currentWeek > 0 {
		return currentWeek
	}
	week, err := f.client.CurrentWeek(ctx, league)
	if err != nil {
		f.logger.Warn("current week lookup failed, assuming week 1",
			"league", league, "error", err)
		return 1
	}
	return week
}

// pace sleeps the inter-request delay, honoring cancellation.
func (f *Fetcher) pace(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func weekTypeFor(week, currentWeek int) model.WeekType {
	switch {
	case week < currentWeek:
		return model.WeekPrevious
	case week > currentWeek:
		return model.WeekNext
	default:
		return model.WeekCurrent
	}
}
