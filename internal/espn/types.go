package espn

// Response payload shapes for the scoreboard site API and the core API.
// Only the fields the normalizers consume are declared; everything else in
// the (very large) upstream payloads is ignored by encoding/json.

// --------------------------------------------------------------------------
// Scoreboard
// --------------------------------------------------------------------------

// ScoreboardResponse is the per-league, per-week scoreboard payload.
// Some gateway variants nest events under sports[0].leagues[0] instead of
// the top-level events array; EventList resolves both.
type ScoreboardResponse struct {
	Week struct {
		Number int `json:"number"`
	} `json:"week"`
	Events []Event `json:"events"`
	Sports []struct {
		Leagues []struct {
			Events []Event `json:"events"`
		} `json:"leagues"`
	} `json:"sports"`
}

// EventList returns the events array regardless of which nesting the
// response used.
func (s *ScoreboardResponse) EventList() []Event {
	if len(s.Events) > 0 {
		return s.Events
	}
	if len(s.Sports) > 0 && len(s.Sports[0].Leagues) > 0 {
		return s.Sports[0].Leagues[0].Events
	}
	return nil
}

// Event is one upstream game event. Scoreboard events nest competitors
// under competitions[0]; some core-API event payloads flatten them.
type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Week *struct {
		Number int `json:"number"`
	} `json:"week"`
	Season *struct {
		Year int `json:"year"`
		Week int `json:"week"`
	} `json:"season"`
	Competitions []Competition `json:"competitions"`
	Competitors  []Competitor  `json:"competitors"`
	Status       *EventStatus  `json:"status"`
}

// Competition holds the competitor pair and, on some endpoints, the status.
type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
	Status      *EventStatus `json:"status"`
}

// Competitor is one side of a game.
type Competitor struct {
	HomeAway string  `json:"homeAway"`
	Score    string  `json:"score"`
	Team     TeamRef `json:"team"`
}

// TeamRef is the embedded team reference on competitors and boxscore teams.
type TeamRef struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
	Location         string `json:"location"`
}

// EventStatus carries the upstream status type. The boolean hints are
// checked before the STATUS_* name, matching the original consumer.
type EventStatus struct {
	Type struct {
		Name        string `json:"name"`
		Completed   bool   `json:"completed"`
		InProgress  bool   `json:"inProgress"`
		Detail      string `json:"detail"`
		ShortDetail string `json:"shortDetail"`
	} `json:"type"`
}

// --------------------------------------------------------------------------
// Teams (core API)
// --------------------------------------------------------------------------

// TeamListResponse is the paged core-API team list.
type TeamListResponse struct {
	Count     int        `json:"count"`
	PageCount int        `json:"pageCount"`
	PageIndex int        `json:"pageIndex"`
	Items     []TeamItem `json:"items"`
}

// TeamItem is one team in the core-API list.
type TeamItem struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
	Conference   *struct {
		Name string `json:"name"`
	} `json:"conference"`
	Division *struct {
		Name string `json:"name"`
	} `json:"division"`
}

// --------------------------------------------------------------------------
// Team statistics (site API)
// --------------------------------------------------------------------------

// TeamStatsResponse is the site-API team statistics payload. Stat values
// are left untyped; upstream mixes numbers, numeric strings, and nested
// objects, so extraction goes through a fallback chain in normalize.
type TeamStatsResponse struct {
	Season int `json:"season"`
	Stats  struct {
		Offense map[string]interface{} `json:"offense"`
		Defense map[string]interface{} `json:"defense"`
	} `json:"stats"`
}

// --------------------------------------------------------------------------
// Summary / boxscore
// --------------------------------------------------------------------------

// GameSummaryResponse is shared by the summary and boxscore endpoints;
// they differ only in which sections are populated.
type GameSummaryResponse struct {
	ID       string        `json:"id"`
	Header   *GameHeader   `json:"header"`
	Boxscore *Boxscore     `json:"boxscore"`
	Players  []PlayerGroup `json:"players"`
}

// GameHeader identifies the game a summary belongs to.
type GameHeader struct {
	ID   string `json:"id"`
	Week int    `json:"week"`
}

// Boxscore holds per-team statistic categories and, on the summary
// endpoint, a players section grouped by team.
type Boxscore struct {
	Teams   []BoxscoreTeam `json:"teams"`
	Players []PlayerGroup  `json:"players"`
}

// BoxscoreTeam is one team's boxscore: its score and stat categories,
// each category listing athlete stat lines.
type BoxscoreTeam struct {
	Team       TeamRef        `json:"team"`
	Score      string         `json:"score"`
	Statistics []StatCategory `json:"statistics"`
}

// StatCategory is a named statistic grouping ("passing", "rushing", ...).
type StatCategory struct {
	Name     string        `json:"name"`
	Athletes []AthleteLine `json:"athletes"`
}

// PlayerGroup mirrors the summary endpoint's players section.
type PlayerGroup struct {
	Team       TeamRef        `json:"team"`
	Athlete    *Athlete       `json:"athlete"`
	Statistics []StatCategory `json:"statistics"`
	Stats      []StatSplit    `json:"stats"`
}

// AthleteLine is one athlete's row within a stat category.
type AthleteLine struct {
	Athlete *Athlete    `json:"athlete"`
	Stats   []StatValue `json:"stats"`
}

// StatSplit is a labeled stat collection ("Season", "Game").
type StatSplit struct {
	Label string      `json:"label"`
	Stats []StatValue `json:"stats"`
}

// StatValue is a single labeled stat. Value stays untyped for the same
// reason as TeamStatsResponse.
type StatValue struct {
	Label string      `json:"label"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Athlete is the upstream athlete record.
type Athlete struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Jersey      string `json:"jersey"`
	Position    *struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
}

// RosterResponse is the core-API team athletes list.
type RosterResponse struct {
	Count int       `json:"count"`
	Items []Athlete `json:"items"`
}
