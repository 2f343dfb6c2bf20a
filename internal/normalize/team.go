package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
)

// offenseStatKeys and defenseStatKeys are the explicit direct-mode mapping
// tables. Upstream fields outside these tables are dropped, not passed
// through — the canonical shape is fixed.
var offenseStatKeys = []string{
	"pointsPerGame",
	"totalYards",
	"passingYards",
	"rushingYards",
	"turnovers",
}

var defenseStatKeys = []string{
	"pointsAllowedPerGame",
	"totalYardsAllowed",
	"passingYardsAllowed",
	"rushingYardsAllowed",
	"takeaways",
}

// TeamStats maps the upstream team-statistics payload into the canonical
// shape (direct mode). Returns nil when the payload has no stats section
// worth keeping.
func TeamStats(resp *espn.TeamStatsResponse, teamName string) *model.TeamStats {
	if resp == nil {
		return nil
	}

	offense := pickStats(resp.Stats.Offense, offenseStatKeys)
	defense := pickStats(resp.Stats.Defense, defenseStatKeys)
	if len(offense) == 0 && len(defense) == 0 {
		return nil
	}

	season := resp.Season
	if season == 0 {
		season = time.Now().Year()
	}
	return &model.TeamStats{
		TeamName: teamName,
		Season:   season,
		Offense:  offense,
		Defense:  defense,
	}
}

func pickStats(raw map[string]interface{}, keys []string) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	picked := make(map[string]float64, len(keys))
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if f, extracted := extractValue(v); extracted {
				picked[key] = f
			}
		}
	}
	if len(picked) == 0 {
		return nil
	}
	return picked
}

// ComputeTeamStats derives the season aggregate from a team's own game
// history (computed mode) — used when upstream offers no season-stat
// endpoint, or as the base that direct-mode fields are merged over.
// Only Final games count; wins+losses+ties always equals the number of
// Final games involving the team.
func ComputeTeamStats(games []model.Game, teamName string) model.TeamStats {
	stats := model.TeamStats{
		TeamName: teamName,
		Season:   time.Now().Year(),
	}

	finals := finalGamesFor(games, teamName)
	sort.Slice(finals, func(i, j int) bool { return finals[i].Kickoff.Before(finals[j].Kickoff) })

	for _, g := range finals {
		teamScore, oppScore, isHome := perspective(g, teamName)

		stats.PointsFor += teamScore
		stats.PointsAgainst += oppScore

		if isHome {
			stats.HomeGames++
			if teamScore > oppScore {
				stats.HomeWins++
			}
		} else {
			stats.AwayGames++
			if teamScore > oppScore {
				stats.AwayWins++
			}
		}

		switch {
		case teamScore > oppScore:
			stats.Wins++
		case teamScore < oppScore:
			stats.Losses++
		default:
			stats.Ties++
		}
	}

	stats.TotalGames = stats.Wins + stats.Losses + stats.Ties
	stats.PointDifferential = stats.PointsFor - stats.PointsAgainst
	if stats.TotalGames > 0 {
		stats.WinPercentage = round1(float64(stats.Wins) / float64(stats.TotalGames) * 100)
		stats.PointsPerGame = round1(float64(stats.PointsFor) / float64(stats.TotalGames))
		stats.PointsAllowedPG = round1(float64(stats.PointsAgainst) / float64(stats.TotalGames))
	}
	if stats.HomeGames > 0 {
		stats.HomeWinPercentage = round1(float64(stats.HomeWins) / float64(stats.HomeGames) * 100)
	}
	if stats.AwayGames > 0 {
		stats.AwayWinPercentage = round1(float64(stats.AwayWins) / float64(stats.AwayGames) * 100)
	}

	stats.LongestWinStreak, stats.LongestLossStreak = longestStreaks(finals, teamName)
	stats.CurrentStreakType, stats.CurrentStreakCount = currentStreak(finals, teamName)
	stats.RecentForm = recentForm(finals, teamName)

	return stats
}

// MergeTeamStats overlays direct-mode fields onto the computed aggregate.
// Direct fields win on conflict; computed-only fields are preserved.
func MergeTeamStats(direct *model.TeamStats, computed model.TeamStats) model.TeamStats {
	merged := computed
	if direct == nil {
		return merged
	}
	if direct.Season != 0 {
		merged.Season = direct.Season
	}
	if direct.Offense != nil {
		merged.Offense = direct.Offense
	}
	if direct.Defense != nil {
		merged.Defense = direct.Defense
	}
	return merged
}

// --------------------------------------------------------------------------
// Streaks and form
// --------------------------------------------------------------------------

// longestStreaks scans chronologically sorted Final games. A tie resets
// both counters — it terminates win and loss streaks without extending
// either.
func longestStreaks(finals []model.Game, teamName string) (longestWin, longestLoss int) {
	winRun, lossRun := 0, 0
	for _, g := range finals {
		switch outcome(g, teamName) {
		case "W":
			winRun++
			lossRun = 0
			if winRun > longestWin {
				longestWin = winRun
			}
		case "L":
			lossRun++
			winRun = 0
			if lossRun > longestLoss {
				longestLoss = lossRun
			}
		default:
			winRun, lossRun = 0, 0
		}
	}
	return longestWin, longestLoss
}

// currentStreak walks the most recent games backwards until the outcome
// type changes. A tie at the tail yields no streak.
func currentStreak(finals []model.Game, teamName string) (streakType string, count int) {
	for i := len(finals) - 1; i >= 0; i-- {
		o := outcome(finals[i], teamName)
		if o == "T" {
			break
		}
		if streakType == "" {
			streakType = o
			count = 1
			continue
		}
		if o != streakType {
			break
		}
		count++
	}
	return streakType, count
}

// recentForm is the W/L/T sequence of the last five Final games, in
// chronological order.
func recentForm(finals []model.Game, teamName string) model.RecentForm {
	start := len(finals) - 5
	if start < 0 {
		start = 0
	}
	recent := finals[start:]

	var form model.RecentForm
	var b strings.Builder
	for _, g := range recent {
		o := outcome(g, teamName)
		b.WriteString(o)
		switch o {
		case "W":
			form.Wins++
		case "L":
			form.Losses++
		default:
			form.Ties++
		}
	}
	form.Form = b.String()
	return form
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func finalGamesFor(games []model.Game, teamName string) []model.Game {
	finals := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.Status == model.StatusFinal && g.Involves(teamName) {
			finals = append(finals, g)
		}
	}
	return finals
}

func perspective(g model.Game, teamName string) (teamScore, oppScore int, isHome bool) {
	if g.HomeTeam == teamName {
		return g.HomeScore, g.AwayScore, true
	}
	return g.AwayScore, g.HomeScore, false
}

func outcome(g model.Game, teamName string) string {
	teamScore, oppScore, _ := perspective(g, teamName)
	switch {
	case teamScore > oppScore:
		return "W"
	case teamScore < oppScore:
		return "L"
	default:
		return "T"
	}
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
