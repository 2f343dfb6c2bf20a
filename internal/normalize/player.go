package normalize

import (
	"strconv"

	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// BoxscorePlayers walks the per-team statistic categories of a boxscore
// and produces one Player per athlete. An athlete appearing under several
// categories (a quarterback with passing and rushing lines, say) is merged
// into a single record keyed by upstream athlete ID: the first occurrence
// creates it, later occurrences union in their stat fields. Later values
// win on a duplicated stat name.
func BoxscorePlayers(doc *espn.GameSummaryResponse) []model.Player {
	if doc == nil || doc.Boxscore == nil {
		return nil
	}

	var players []model.Player
	index := make(map[string]int) // athlete ID -> players slice position

	for _, team := range doc.Boxscore.Teams {
		teamName := team.Team.DisplayName
		if teamName == "" {
			teamName = "Unknown Team"
		}

		for _, category := range team.Statistics {
			for _, line := range category.Athletes {
				if line.Athlete == nil || line.Athlete.ID == "" {
					continue
				}
				stats := statMap(line.Stats)

				if pos, seen := index[line.Athlete.ID]; seen {
					for k, v := range stats {
						players[pos].GameStats[k] = v
					}
					continue
				}

				p := newPlayer(*line.Athlete, teamName)
				p.GameStats = stats
				index[line.Athlete.ID] = len(players)
				players = append(players, p)
			}
		}
	}
	return players
}

// SummaryPlayers extracts players from a game-summary document, resolving
// the players section from its known locations in order: boxscore.players,
// the top-level players array, then athlete lines nested under
// boxscore.teams. Each player's labeled stat splits ("Season", "Game")
// fill the corresponding canonical maps.
func SummaryPlayers(doc *espn.GameSummaryResponse) []model.Player {
	if doc == nil {
		return nil
	}

	groups := doc.Players
	if doc.Boxscore != nil && len(doc.Boxscore.Players) > 0 {
		groups = doc.Boxscore.Players
	}

	if len(groups) == 0 && doc.Boxscore != nil {
		return BoxscorePlayers(doc)
	}

	players := make([]model.Player, 0, len(groups))
	for i, group := range groups {
		if group.Athlete == nil {
			continue
		}
		p := newPlayer(*group.Athlete, group.Team.DisplayName)
		if p.ID == "" {
			p.ID = "player-" + strconv.Itoa(i)
		}
		for _, split := range group.Stats {
			switch split.Label {
			case "Season":
				p.SeasonStats = statMap(split.Stats)
			case "Game":
				p.GameStats = statMap(split.Stats)
			}
		}
		players = append(players, p)
	}
	return players
}

// RosterPlayers maps the core-API athlete list into canonical Players with
// empty stat maps, to be filled by later stat fetches.
func RosterPlayers(roster *espn.RosterResponse, teamName string) []model.Player {
	if roster == nil {
		return nil
	}
	players := make([]model.Player, 0, len(roster.Items))
	for _, a := range roster.Items {
		players = append(players, newPlayer(a, teamName))
	}
	return players
}

func newPlayer(a espn.Athlete, teamName string) model.Player {
	p := model.Player{
		ID:          a.ID,
		Name:        a.DisplayName,
		Jersey:      a.Jersey,
		Team:        teamName,
		Position:    "N/A",
		SeasonStats: map[string]float64{},
		GameStats:   map[string]float64{},
	}
	if p.Name == "" {
		p.Name = "Unknown Player"
	}
	if p.Jersey == "" {
		p.Jersey = "N/A"
	}
	if a.Position != nil && a.Position.Abbreviation != "" {
		p.Position = a.Position.Abbreviation
	}
	return p
}

// statMap flattens labeled stat values into the open-vocabulary canonical
// map. Keys prefer the machine name over the display label; entries with
// no extractable numeric value are dropped.
func statMap(values []espn.StatValue) map[string]float64 {
	stats := make(map[string]float64, len(values))
	for _, sv := range values {
		key := sv.Name
		if key == "" {
			key = sv.Label
		}
		if key == "" {
			continue
		}
		if f, ok := extractValue(sv.Value); ok {
			stats[key] = f
		}
	}
	return stats
}
