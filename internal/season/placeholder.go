package season

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/normalize"
)

var placeholderOpponents = []string{
	"Green Bay Packers",
	"Chicago Bears",
	"Minnesota Vikings",
	"Dallas Cowboys",
	"Philadelphia Eagles",
	"San Francisco 49ers",
	"Kansas City Chiefs",
	"Buffalo Bills",
	"Baltimore Ravens",
	"Cincinnati Bengals",
	"Pittsburgh Steelers",
	"Miami Dolphins",
}

// SyntheticTeamSchedule builds a clearly-marked placeholder schedule for a
// team when upstream returned nothing at all: eight past results and four
// upcoming games, one per week around now. Every game carries
// Synthetic: true and a "synthetic-" id so it can never be mistaken for
// real data downstream.
func SyntheticTeamSchedule(teamName string, league model.League, now time.Time) TeamSchedule {
	rng := rand.New(rand.NewSource(now.UnixNano()))
	schedule := TeamSchedule{Team: teamName, League: league, Synthetic: true}

	for i := 8; i >= 1; i-- {
		kickoff := now.AddDate(0, 0, -7*i)
		teamScore := 10 + rng.Intn(35)
		oppScore := 10 + rng.Intn(35)
		opponent := placeholderOpponents[rng.Intn(len(placeholderOpponents))]
		home := rng.Intn(2) == 0

		g := syntheticGame(teamName, opponent, league, kickoff, home)
		g.Status = model.StatusFinal
		if home {
			g.HomeScore, g.AwayScore = teamScore, oppScore
		} else {
			g.HomeScore, g.AwayScore = oppScore, teamScore
		}
		schedule.Past = append(schedule.Past, g)
	}

	for i := 1; i <= 4; i++ {
		kickoff := now.AddDate(0, 0, 7*i)
		opponent := placeholderOpponents[rng.Intn(len(placeholderOpponents))]
		home := rng.Intn(2) == 0

		g := syntheticGame(teamName, opponent, league, kickoff, home)
		g.Status = model.StatusScheduled
		schedule.Future = append(schedule.Future, g)
	}

	return schedule
}

func syntheticGame(teamName, opponent string, league model.League, kickoff time.Time, home bool) model.Game {
	g := model.Game{
		ID:          "synthetic-" + uuid.NewString(),
		League:      league,
		Kickoff:     kickoff,
		DisplayDate: kickoff.Format("Mon, Jan 2"),
		DisplayTime: kickoff.Format("3:04 PM MST"),
		Week:        normalize.WeekFromDate(kickoff),
		Opponent:    opponent,
		IsHome:      home,
		Synthetic:   true,
	}
	g.WeekName = "Week " + strconv.Itoa(g.Week)
	if home {
		g.HomeTeam, g.AwayTeam = teamName, opponent
	} else {
		g.HomeTeam, g.AwayTeam = opponent, teamName
	}
	return g
}
