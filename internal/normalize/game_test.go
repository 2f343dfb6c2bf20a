package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
)

func eventFromJSON(t *testing.T, raw string) espn.Event {
	t.Helper()
	var ev espn.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	return ev
}

func TestGameFinalScenario(t *testing.T) {
	ev := eventFromJSON(t, `{
		"id": "401547417",
		"date": "2025-10-12T17:00Z",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "score": "24", "team": {"displayName": "Detroit Lions"}},
				{"homeAway": "away", "score": "17", "team": {"displayName": "Chicago Bears"}}
			]
		}],
		"status": {"type": {"name": "STATUS_FINAL"}}
	}`)

	g, err := Game(ev, model.LeagueNFL)
	require.NoError(t, err)

	assert.Equal(t, "Detroit Lions", g.HomeTeam)
	assert.Equal(t, "Chicago Bears", g.AwayTeam)
	assert.Equal(t, 24, g.HomeScore)
	assert.Equal(t, 17, g.AwayScore)
	assert.Equal(t, model.StatusFinal, g.Status)
	assert.Equal(t, model.LeagueNFL, g.League)
	assert.Equal(t, time.Date(2025, 10, 12, 17, 0, 0, 0, time.UTC), g.Kickoff)
}

func TestGameMissingHomeCompetitor(t *testing.T) {
	ev := eventFromJSON(t, `{
		"id": "x1",
		"competitions": [{
			"competitors": [{"homeAway": "away", "team": {"displayName": "Chicago Bears"}}]
		}]
	}`)

	_, err := Game(ev, model.LeagueNFL)
	require.Error(t, err)

	var malformed *MalformedEventError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "x1", malformed.EventID)
}

func TestGameFlattenedCompetitors(t *testing.T) {
	ev := eventFromJSON(t, `{
		"id": "x2",
		"competitors": [
			{"homeAway": "home", "score": "10", "team": {"displayName": "Ohio State Buckeyes"}},
			{"homeAway": "away", "score": "7", "team": {"displayName": "Michigan Wolverines"}}
		]
	}`)

	g, err := Game(ev, model.LeagueNCAA)
	require.NoError(t, err)
	assert.Equal(t, "Ohio State Buckeyes", g.HomeTeam)
	assert.Equal(t, 10, g.HomeScore)
}

func TestGameNameFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		team string
		want string
	}{
		{"display name preferred", `{"displayName": "Detroit Lions", "name": "Lions"}`, "Detroit Lions"},
		{"short display name next", `{"shortDisplayName": "Lions", "name": "DET"}`, "Lions"},
		{"bare name next", `{"name": "Lions"}`, "Lions"},
		{"literal fallback last", `{}`, "Home Team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := eventFromJSON(t, `{
				"id": "x3",
				"competitions": [{
					"competitors": [
						{"homeAway": "home", "team": `+tt.team+`},
						{"homeAway": "away", "team": {"displayName": "Opponent"}}
					]
				}]
			}`)

			g, err := Game(ev, model.LeagueNFL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.HomeTeam)
		})
	}
}

func TestGameScoreDefaultsToZero(t *testing.T) {
	// A missing score on a Final game is indistinguishable from a real
	// 0-point result. That ambiguity is inherited from the upstream data
	// and kept on purpose — this test documents it.
	ev := eventFromJSON(t, `{
		"id": "x4",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "score": "not-a-number", "team": {"displayName": "A"}},
				{"homeAway": "away", "team": {"displayName": "B"}}
			]
		}],
		"status": {"type": {"name": "STATUS_FINAL"}}
	}`)

	g, err := Game(ev, model.LeagueNFL)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinal, g.Status)
	assert.Equal(t, 0, g.HomeScore)
	assert.Equal(t, 0, g.AwayScore)
}

func TestStatusTable(t *testing.T) {
	tests := []struct {
		upstream string
		want     model.GameStatus
	}{
		{"STATUS_FINAL", model.StatusFinal},
		{"STATUS_IN_PROGRESS", model.StatusLive},
		{"STATUS_HALFTIME", model.StatusLive},
		{"STATUS_SCHEDULED", model.StatusScheduled},
		{"STATUS_POSTPONED", model.StatusPostponed},
		{"STATUS_CANCELED", model.StatusCancelled},
		{"STATUS_CANCELLED", model.StatusCancelled},
		{"STATUS_SOMETHING_NEW", model.StatusScheduled},
		{"", model.StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.upstream, func(t *testing.T) {
			ev := eventFromJSON(t, `{
				"id": "x5",
				"competitions": [{
					"competitors": [
						{"homeAway": "home", "team": {"displayName": "A"}},
						{"homeAway": "away", "team": {"displayName": "B"}}
					]
				}],
				"status": {"type": {"name": "`+tt.upstream+`"}}
			}`)

			g, err := Game(ev, model.LeagueNFL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Status)
		})
	}
}

func TestGameCompletedHintWinsOverName(t *testing.T) {
	ev := eventFromJSON(t, `{
		"id": "x6",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "team": {"displayName": "A"}},
				{"homeAway": "away", "team": {"displayName": "B"}}
			]
		}],
		"status": {"type": {"name": "STATUS_SOMETHING", "completed": true}}
	}`)

	g, err := Game(ev, model.LeagueNFL)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinal, g.Status)
}

func TestWeekFromDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"opening weekend", time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC), 1},
		{"mid october", time.Date(2025, 10, 12, 13, 0, 0, 0, time.UTC), 6},
		{"before season start floors at 1", time.Date(2025, 8, 15, 13, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekFromDate(tt.date))
		})
	}
}

func TestGamePrefersUpstreamWeekNumber(t *testing.T) {
	ev := eventFromJSON(t, `{
		"id": "x7",
		"date": "2025-10-12T17:00Z",
		"week": {"number": 7},
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "team": {"displayName": "A"}},
				{"homeAway": "away", "team": {"displayName": "B"}}
			]
		}]
	}`)

	g, err := Game(ev, model.LeagueNFL)
	require.NoError(t, err)
	assert.Equal(t, 7, g.Week)
	assert.Equal(t, "Week 7", g.WeekName)
}

func TestGamesSkipsMalformed(t *testing.T) {
	events := []espn.Event{
		eventFromJSON(t, `{"id": "good", "competitions": [{"competitors": [
			{"homeAway": "home", "team": {"displayName": "A"}},
			{"homeAway": "away", "team": {"displayName": "B"}}
		]}]}`),
		eventFromJSON(t, `{"id": "bad", "competitions": [{"competitors": [
			{"homeAway": "home", "team": {"displayName": "A"}}
		]}]}`),
	}

	games := Games(events, model.LeagueNFL, nil)
	require.Len(t, games, 1)
	assert.Equal(t, "good", games[0].ID)
}

func TestGameNeverFailsWithBothCompetitors(t *testing.T) {
	// Degenerate but locatable competitors: no names, no scores, no
	// status, no date. Scores still >= 0, status still from the enum.
	ev := eventFromJSON(t, `{"id": "x8", "competitions": [{"competitors": [
		{"homeAway": "home", "team": {}},
		{"homeAway": "away", "team": {}}
	]}]}`)

	g, err := Game(ev, model.LeagueNFL)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.HomeScore, 0)
	assert.GreaterOrEqual(t, g.AwayScore, 0)
	assert.Contains(t, []model.GameStatus{
		model.StatusScheduled, model.StatusLive, model.StatusFinal,
		model.StatusPostponed, model.StatusCancelled,
	}, g.Status)
	assert.Equal(t, "TBD", g.DisplayDate)
}
