package season

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// stubClient serves canned scoreboards per week and records which weeks
// were requested.
type stubClient struct {
	mu          sync.Mutex
	weeks       map[int]*espn.ScoreboardResponse
	errs        map[int]error
	requested   []int
	currentWeek int
	weekErr     error
}

func (s *stubClient) Scoreboard(_ context.Context, _ model.League, week int) (*espn.ScoreboardResponse, error) {
	s.mu.Lock()
	s.requested = append(s.requested, week)
	s.mu.Unlock()
	if err, ok := s.errs[week]; ok {
		return nil, err
	}
	if sb, ok := s.weeks[week]; ok {
		return sb, nil
	}
	return &espn.ScoreboardResponse{}, nil
}

func (s *stubClient) CurrentWeek(context.Context, model.League) (int, error) {
	if s.weekErr != nil {
		return 0, s.weekErr
	}
	return s.currentWeek, nil
}

func scoreboardWith(ids ...string) *espn.ScoreboardResponse {
	sb := &espn.ScoreboardResponse{}
	for i, id := range ids {
		ev := espn.Event{
			ID:   id,
			Date: fmt.Sprintf("2025-09-%02dT17:00Z", 7+i),
		}
		comp := espn.Competition{
			Competitors: []espn.Competitor{
				{HomeAway: "home", Score: "24", Team: espn.TeamRef{DisplayName: "Detroit Lions"}},
				{HomeAway: "away", Score: "17", Team: espn.TeamRef{DisplayName: "Chicago Bears"}},
			},
		}
		ev.Competitions = []espn.Competition{comp}
		sb.Events = append(sb.Events, ev)
	}
	return sb
}

func testFetcher(client Client) *Fetcher {
	cfg := &config.Config{
		MaxWeeks: map[model.League]int{model.LeagueNFL: 18, model.LeagueNCAA: 12},
	}
	f := NewFetcher(client, cfg, slog.New(slog.NewTextHandler(testWriter{}, nil)))
	f.delay = 0
	return f
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSeasonGamesSkipsFailedWeek(t *testing.T) {
	stub := &stubClient{
		weeks: map[int]*espn.ScoreboardResponse{
			1: scoreboardWith("w1-a", "w1-b"),
			3: scoreboardWith("w3-a"),
		},
		errs: map[int]error{
			2: &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{Op: "dial"}},
		},
	}
	f := testFetcher(stub)

	games, err := f.SeasonGames(context.Background(), model.LeagueNFL, 1)
	require.NoError(t, err)

	var ids []string
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	assert.ElementsMatch(t, []string{"w1-a", "w1-b", "w3-a"}, ids)
}

func TestSeasonGamesWalksThroughCurrentPlusFour(t *testing.T) {
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)

	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, stub.requested)
}

func TestSeasonGamesClampsAtLeagueMax(t *testing.T) {
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)

	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 17)
	require.NoError(t, err)
	assert.Len(t, stub.requested, 18)
	assert.Equal(t, 18, stub.requested[len(stub.requested)-1])
}

func TestSeasonGamesTagsWeekTypes(t *testing.T) {
	stub := &stubClient{
		weeks: map[int]*espn.ScoreboardResponse{
			1: scoreboardWith("g1"),
			2: scoreboardWith("g2"),
			3: scoreboardWith("g3"),
		},
	}
	f := testFetcher(stub)

	games, err := f.SeasonGames(context.Background(), model.LeagueNFL, 2)
	require.NoError(t, err)

	types := map[string]model.WeekType{}
	for _, g := range games {
		types[g.ID] = g.WeekType
	}
	assert.Equal(t, model.WeekPrevious, types["g1"])
	assert.Equal(t, model.WeekCurrent, types["g2"])
	assert.Equal(t, model.WeekNext, types["g3"])
}

func TestSeasonGamesDeduplicatesByEventID(t *testing.T) {
	stub := &stubClient{
		weeks: map[int]*espn.ScoreboardResponse{
			1: scoreboardWith("dup"),
			2: scoreboardWith("dup"),
		},
	}
	f := testFetcher(stub)

	games, err := f.SeasonGames(context.Background(), model.LeagueNFL, 1)
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestSeasonGamesEmptyRangeIsErrNoData(t *testing.T) {
	f := testFetcher(&stubClient{})

	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 1)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSeasonGamesResolvesCurrentWeekWhenUnset(t *testing.T) {
	stub := &stubClient{
		currentWeek: 2,
		weeks:       map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")},
	}
	f := testFetcher(stub)

	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, stub.requested[len(stub.requested)-1])
}

func TestSeasonGamesFallsBackToWeekOneOnLookupFailure(t *testing.T) {
	stub := &stubClient{
		weekErr: errors.New("boom"),
		weeks:   map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")},
	}
	f := testFetcher(stub)

	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, stub.requested[len(stub.requested)-1])
}

func TestSeasonGamesStopsOnCancelledContext(t *testing.T) {
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)
	f.delay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.SeasonGames(ctx, model.LeagueNFL, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTeamGamesFiltersAndSplits(t *testing.T) {
	past := scoreboardWith("past-game")
	future := &espn.ScoreboardResponse{Events: []espn.Event{{
		ID:   "future-game",
		Date: time.Now().AddDate(0, 0, 7).UTC().Format("2006-01-02T15:04Z"),
		Competitions: []espn.Competition{{
			Competitors: []espn.Competitor{
				{HomeAway: "home", Team: espn.TeamRef{DisplayName: "Green Bay Packers"}},
				{HomeAway: "away", Team: espn.TeamRef{DisplayName: "Detroit Lions"}},
			},
		}},
	}}}
	other := &espn.ScoreboardResponse{Events: []espn.Event{{
		ID:   "other-game",
		Date: "2025-09-14T17:00Z",
		Competitions: []espn.Competition{{
			Competitors: []espn.Competitor{
				{HomeAway: "home", Team: espn.TeamRef{DisplayName: "Dallas Cowboys"}},
				{HomeAway: "away", Team: espn.TeamRef{DisplayName: "Philadelphia Eagles"}},
			},
		}},
	}}}
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: past, 2: future, 3: other}}
	f := testFetcher(stub)

	schedule, err := f.TeamGames(context.Background(), model.LeagueNFL, "Lions", 1)
	require.NoError(t, err)

	require.Len(t, schedule.Past, 1)
	require.Len(t, schedule.Future, 1)
	assert.Equal(t, "past-game", schedule.Past[0].ID)
	assert.True(t, schedule.Past[0].IsHome)
	assert.Equal(t, "Chicago Bears", schedule.Past[0].Opponent)
	assert.Equal(t, "future-game", schedule.Future[0].ID)
	assert.False(t, schedule.Future[0].IsHome)
	assert.Equal(t, "Green Bay Packers", schedule.Future[0].Opponent)
}

func TestTeamGamesNoMatchesWithoutFallback(t *testing.T) {
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)

	_, err := f.TeamGames(context.Background(), model.LeagueNFL, "Seattle Seahawks", 1)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTeamGamesSyntheticFallback(t *testing.T) {
	f := testFetcher(&stubClient{})
	f.FallbackSynthetic = true

	schedule, err := f.TeamGames(context.Background(), model.LeagueNFL, "Seattle Seahawks", 1)
	require.NoError(t, err)

	assert.True(t, schedule.Synthetic)
	assert.Len(t, schedule.Past, 8)
	assert.Len(t, schedule.Future, 4)
	for _, g := range schedule.All() {
		assert.True(t, g.Synthetic)
		assert.Contains(t, g.ID, "synthetic-")
		assert.True(t, g.HomeTeam == "Seattle Seahawks" || g.AwayTeam == "Seattle Seahawks")
	}
	for _, g := range schedule.Past {
		assert.Equal(t, model.StatusFinal, g.Status)
	}
	for _, g := range schedule.Future {
		assert.Equal(t, model.StatusScheduled, g.Status)
	}
}

func TestSurroundingWeeksFetchesAllThree(t *testing.T) {
	stub := &stubClient{
		currentWeek: 5,
		weeks: map[int]*espn.ScoreboardResponse{
			4: scoreboardWith("g4"),
			5: scoreboardWith("g5"),
			6: scoreboardWith("g6"),
		},
	}
	f := testFetcher(stub)

	out, err := f.SurroundingWeeks(context.Background(), model.LeagueNFL)
	require.NoError(t, err)

	assert.Equal(t, 5, out.CurrentWeek)
	require.Len(t, out.Previous, 1)
	require.Len(t, out.Current, 1)
	require.Len(t, out.Next, 1)
	assert.Equal(t, model.WeekPrevious, out.Previous[0].WeekType)
	assert.Equal(t, model.WeekCurrent, out.Current[0].WeekType)
	assert.Equal(t, model.WeekNext, out.Next[0].WeekType)
}

func TestSurroundingWeeksClampsAtBoundaries(t *testing.T) {
	stub := &stubClient{currentWeek: 1, weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)

	_, err := f.SurroundingWeeks(context.Background(), model.LeagueNFL)
	require.NoError(t, err)

	for _, w := range stub.requested {
		assert.GreaterOrEqual(t, w, 1)
	}
}

func TestSurroundingWeeksToleratesOneFailure(t *testing.T) {
	stub := &stubClient{
		currentWeek: 5,
		weeks: map[int]*espn.ScoreboardResponse{
			5: scoreboardWith("g5"),
			6: scoreboardWith("g6"),
		},
		errs: map[int]error{4: errors.New("upstream down")},
	}
	f := testFetcher(stub)

	out, err := f.SurroundingWeeks(context.Background(), model.LeagueNFL)
	require.NoError(t, err)
	assert.Empty(t, out.Previous)
	assert.Len(t, out.Current, 1)
}

func TestSeasonGamesPacesBetweenWeeks(t *testing.T) {
	stub := &stubClient{weeks: map[int]*espn.ScoreboardResponse{1: scoreboardWith("g1")}}
	f := testFetcher(stub)
	f.delay = 5 * time.Millisecond

	start := time.Now()
	_, err := f.SeasonGames(context.Background(), model.LeagueNFL, 1)
	require.NoError(t, err)
	// 5 weeks walked, 4 gaps between them.
	assert.GreaterOrEqual(t, time.Since(start), 4*f.delay)
}

func TestMatchesTeam(t *testing.T) {
	tests := []struct {
		candidate string
		search    string
		want      bool
	}{
		{"Detroit Lions", "Lions", true},
		{"Detroit Lions", "detroit lions", true},
		{"Detroit Lions", "Detroit", true},
		{"Lions", "Detroit Lions", true},
		{"Detroit Lions", "DetroitLions", false},
		{"DetroitLions", "Detroit Lions", true},
		{"Green Bay Packers", "Packers", true},
		{"Green Bay Packers", "Chicago Bears", false},
		{"Detroit Lions", "", false},
		{"", "Lions", false},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, MatchesTeam(tc.candidate, tc.search),
			"MatchesTeam(%q, %q)", tc.candidate, tc.search)
	}
}
