// Package model defines the canonical record shapes shared by every layer:
// Game, Team, Player, and TeamStats. These are normalized, upstream-agnostic
// value objects — a later fetch produces new records, never patches old ones.
package model

import "time"

// --------------------------------------------------------------------------
// League registry types
// --------------------------------------------------------------------------

// League identifies one of the supported football leagues.
type League string

const (
	LeagueNFL  League = "nfl"
	LeagueNCAA League = "ncaa"
)

// Valid reports whether l is one of the known leagues.
func (l League) Valid() bool {
	return l == LeagueNFL || l == LeagueNCAA
}

// --------------------------------------------------------------------------
// Game
// --------------------------------------------------------------------------

// GameStatus is the closed status enum for a Game.
type GameStatus string

const (
	StatusScheduled GameStatus = "Scheduled"
	StatusLive      GameStatus = "Live"
	StatusFinal     GameStatus = "Final"
	StatusPostponed GameStatus = "Postponed"
	StatusCancelled GameStatus = "Cancelled"
)

// WeekType classifies a game's week relative to "now" at fetch time.
type WeekType string

const (
	WeekPrevious WeekType = "previous"
	WeekCurrent  WeekType = "current"
	WeekNext     WeekType = "next"
)

// Game is one normalized event. Scores default to 0 until the game is
// Final; a missing score on a Final game is indistinguishable from a
// legitimate 0 (kept from the original behavior, see DESIGN.md).
type Game struct {
	ID        string     `json:"id"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	HomeScore int        `json:"homeScore"`
	AwayScore int        `json:"awayScore"`
	Status    GameStatus `json:"status"`

	// Kickoff is the machine-sortable timestamp; DisplayDate and
	// DisplayTime are for humans only. Callers must sort on Kickoff.
	Kickoff     time.Time `json:"kickoff"`
	DisplayDate string    `json:"date"`
	DisplayTime string    `json:"time"`

	League   League   `json:"league"`
	Week     int      `json:"weekNumber"`
	WeekName string   `json:"week"`
	WeekType WeekType `json:"weekType,omitempty"`

	// Team-perspective enrichment, populated by the season fetcher when
	// games were requested for a specific team.
	Opponent string `json:"opponent,omitempty"`
	IsHome   bool   `json:"isHome,omitempty"`

	// Synthetic marks placeholder data that did not come from upstream.
	Synthetic bool `json:"synthetic,omitempty"`
}

// Involves reports whether team appears as home or away, by exact name.
func (g Game) Involves(team string) bool {
	return g.HomeTeam == team || g.AwayTeam == team
}

// --------------------------------------------------------------------------
// Team
// --------------------------------------------------------------------------

// Team is a normalized team record. UpstreamID is the numeric identifier
// assigned by the scoreboard API, when known.
type Team struct {
	Name         string `json:"name"`
	UpstreamID   string `json:"upstreamId,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Location     string `json:"location,omitempty"`
	Conference   string `json:"conference,omitempty"`
	Division     string `json:"division,omitempty"`
	League       League `json:"league"`
}

// TeamStats is the canonical season-stat aggregate for a team. Fields are
// populated either directly from upstream (offense/defense tables) or
// computed from the team's own game history; MergeTeamStats combines the
// two with direct values winning.
type TeamStats struct {
	TeamName string `json:"teamName"`
	Season   int    `json:"season"`

	TotalGames int `json:"totalGames"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Ties       int `json:"ties"`

	WinPercentage     float64 `json:"winPercentage"`
	PointsFor         int     `json:"totalPointsFor"`
	PointsAgainst     int     `json:"totalPointsAgainst"`
	PointDifferential int     `json:"pointDifferential"`
	PointsPerGame     float64 `json:"pointsPerGame"`
	PointsAllowedPG   float64 `json:"pointsAllowedPerGame"`

	HomeGames         int     `json:"homeGames"`
	AwayGames         int     `json:"awayGames"`
	HomeWins          int     `json:"homeWins"`
	AwayWins          int     `json:"awayWins"`
	HomeWinPercentage float64 `json:"homeWinPercentage"`
	AwayWinPercentage float64 `json:"awayWinPercentage"`

	CurrentStreakType  string `json:"currentStreakType"`
	CurrentStreakCount int    `json:"currentStreak"`
	LongestWinStreak   int    `json:"longestWinStreak"`
	LongestLossStreak  int    `json:"longestLossStreak"`

	RecentForm RecentForm `json:"recentForm"`

	// Direct-mode groupings from the upstream statistics endpoint.
	// nil when only computed-mode data is available.
	Offense map[string]float64 `json:"offense,omitempty"`
	Defense map[string]float64 `json:"defense,omitempty"`
}

// RecentForm is the W/L/T outcome of the last five Final games, in
// chronological order ("WWLTW").
type RecentForm struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
	Form   string `json:"form"`
}

// --------------------------------------------------------------------------
// Player
// --------------------------------------------------------------------------

// Player is a normalized athlete record. The stat maps are open-vocabulary
// (upstream labels vary by category and league), keyed by stat name.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Jersey   string `json:"jersey"`
	Team     string `json:"team"`

	SeasonStats map[string]float64 `json:"seasonStats"`
	GameStats   map[string]float64 `json:"gameStats"`
}
