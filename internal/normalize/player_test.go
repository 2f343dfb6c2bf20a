package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironhq/gridiron-data/internal/espn"
)

func summaryFromJSON(t *testing.T, raw string) *espn.GameSummaryResponse {
	t.Helper()
	var doc espn.GameSummaryResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestBoxscorePlayersMergesAthleteAcrossCategories(t *testing.T) {
	// One athlete under both passing and rushing must yield exactly one
	// Player whose game stats are the union of both categories.
	doc := summaryFromJSON(t, `{
		"boxscore": {
			"teams": [{
				"team": {"displayName": "Detroit Lions"},
				"statistics": [
					{
						"name": "passing",
						"athletes": [{
							"athlete": {"id": "a1", "displayName": "Jared Goff", "jersey": "16",
								"position": {"abbreviation": "QB"}},
							"stats": [
								{"name": "passingYards", "value": 317},
								{"name": "passingTouchdowns", "value": 2}
							]
						}]
					},
					{
						"name": "rushing",
						"athletes": [
							{
								"athlete": {"id": "a1", "displayName": "Jared Goff"},
								"stats": [{"name": "rushingYards", "value": 12}]
							},
							{
								"athlete": {"id": "a2", "displayName": "David Montgomery", "jersey": "5",
									"position": {"abbreviation": "RB"}},
								"stats": [{"name": "rushingYards", "value": 94}]
							}
						]
					}
				]
			}]
		}
	}`)

	players := BoxscorePlayers(doc)
	require.Len(t, players, 2)

	goff := players[0]
	assert.Equal(t, "a1", goff.ID)
	assert.Equal(t, "Jared Goff", goff.Name)
	assert.Equal(t, "QB", goff.Position)
	assert.Equal(t, "Detroit Lions", goff.Team)
	assert.Equal(t, map[string]float64{
		"passingYards":      317,
		"passingTouchdowns": 2,
		"rushingYards":      12,
	}, goff.GameStats)

	assert.Equal(t, "a2", players[1].ID)
	assert.Equal(t, map[string]float64{"rushingYards": 94}, players[1].GameStats)
}

func TestBoxscorePlayersSkipsLinesWithoutAthlete(t *testing.T) {
	doc := summaryFromJSON(t, `{
		"boxscore": {
			"teams": [{
				"team": {"displayName": "A"},
				"statistics": [{
					"name": "passing",
					"athletes": [
						{"stats": [{"name": "passingYards", "value": 100}]},
						{"athlete": {"id": "a1", "displayName": "P1"},
							"stats": [{"name": "passingYards", "value": 50}]}
					]
				}]
			}]
		}
	}`)

	players := BoxscorePlayers(doc)
	require.Len(t, players, 1)
	assert.Equal(t, "a1", players[0].ID)
}

func TestBoxscorePlayersDefaults(t *testing.T) {
	doc := summaryFromJSON(t, `{
		"boxscore": {
			"teams": [{
				"statistics": [{
					"name": "kicking",
					"athletes": [{"athlete": {"id": "a9"}, "stats": []}]
				}]
			}]
		}
	}`)

	players := BoxscorePlayers(doc)
	require.Len(t, players, 1)
	assert.Equal(t, "Unknown Player", players[0].Name)
	assert.Equal(t, "Unknown Team", players[0].Team)
	assert.Equal(t, "N/A", players[0].Position)
	assert.Equal(t, "N/A", players[0].Jersey)
}

func TestSummaryPlayersSeasonAndGameSplits(t *testing.T) {
	doc := summaryFromJSON(t, `{
		"boxscore": {
			"players": [{
				"team": {"displayName": "Chicago Bears"},
				"athlete": {"id": "a3", "displayName": "Caleb Williams", "jersey": "18",
					"position": {"abbreviation": "QB"}},
				"stats": [
					{"label": "Season", "stats": [{"name": "passingYards", "value": "2104"}]},
					{"label": "Game", "stats": [{"name": "passingYards", "value": 246}]}
				]
			}]
		}
	}`)

	players := SummaryPlayers(doc)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "Caleb Williams", p.Name)
	assert.Equal(t, 2104.0, p.SeasonStats["passingYards"])
	assert.Equal(t, 246.0, p.GameStats["passingYards"])
}

func TestSummaryPlayersFallsBackToTeamCategories(t *testing.T) {
	doc := summaryFromJSON(t, `{
		"boxscore": {
			"teams": [{
				"team": {"displayName": "A"},
				"statistics": [{
					"name": "receiving",
					"athletes": [{"athlete": {"id": "a5", "displayName": "P5"},
						"stats": [{"name": "receptions", "value": 6}]}]
				}]
			}]
		}
	}`)

	players := SummaryPlayers(doc)
	require.Len(t, players, 1)
	assert.Equal(t, "a5", players[0].ID)
	assert.Equal(t, 6.0, players[0].GameStats["receptions"])
}

func TestRosterPlayers(t *testing.T) {
	roster := &espn.RosterResponse{Items: []espn.Athlete{
		{ID: "r1", DisplayName: "Aidan Hutchinson", Jersey: "97"},
		{ID: "r2"},
	}}

	players := RosterPlayers(roster, "Detroit Lions")
	require.Len(t, players, 2)
	assert.Equal(t, "Aidan Hutchinson", players[0].Name)
	assert.Equal(t, "Detroit Lions", players[0].Team)
	assert.Empty(t, players[0].GameStats)
	assert.Equal(t, "Unknown Player", players[1].Name)
}

func TestStatMapDropsNonNumeric(t *testing.T) {
	stats := statMap([]espn.StatValue{
		{Name: "sacks", Value: 3.0},
		{Label: "Tackles", Value: "11"},
		{Name: "note", Value: "DNP"},
		{Value: 5.0}, // no key at all
	})

	assert.Equal(t, map[string]float64{"sacks": 3, "Tackles": 11}, stats)
}

func TestExtractValueFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   float64
		wantOK bool
	}{
		{"float", 12.5, 12.5, true},
		{"numeric string", "42", 42, true},
		{"nested total", map[string]interface{}{"total": 15.0}, 15, true},
		{"nested value", map[string]interface{}{"value": "8"}, 8, true},
		{"garbage string", "n/a", 0, false},
		{"nil", nil, 0, false},
		{"empty object", map[string]interface{}{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractValue(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
