package models

import "strings"

// LeagueResponse is one season snapshot as returned by the ESPN league endpoint.
type LeagueResponse struct {
	ID              int            `json:"id"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	SeasonID        int            `json:"seasonId"`
	SegmentID       int            `json:"segmentId"`
	Status          Status         `json:"status"`
	Teams           []Team         `json:"teams"`
	Schedule        []MatchupScore `json:"schedule"`
	Settings        Settings       `json:"settings"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	LatestScoringPeriod  int  `json:"latestScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type Team struct {
	ID                  int     `json:"id"`
	Abbreviation        string  `json:"abbrev"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Nickname            string  `json:"nickname"`
	PlayoffSeed         int     `json:"playoffSeed"`
	RankCalculatedFinal int     `json:"rankCalculatedFinal"`
	Points              float64 `json:"points"`
	Roster              Roster  `json:"roster"`
	Record              Record  `json:"record"`
}

// DisplayName falls back to "location nickname" for payloads that omit name.
func (t Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return strings.TrimSpace(t.Location + " " + t.Nickname)
}

type Roster struct {
	AppliedStatTotal float64       `json:"appliedStatTotal"`
	Entries          []RosterEntry `json:"entries"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type MatchupScore struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	Home            TeamScore  `json:"home"`
	Away            *TeamScore `json:"away,omitempty"`
	Winner          string     `json:"winner"`
}

// IsBye reports whether the home team had no opponent.
func (m MatchupScore) IsBye() bool {
	return m.Away == nil
}

type TeamScore struct {
	TeamID                int                `json:"teamId"`
	TotalPoints           float64            `json:"totalPoints"`
	TotalPointsLive       float64            `json:"totalPointsLive"`
	PointsByScoringPeriod map[string]float64 `json:"pointsByScoringPeriod"`
}

type RosterEntry struct {
	PlayerID        int             `json:"playerId"`
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
	LineupSlotID    int             `json:"lineupSlotId"`
	InjuryStatus    string          `json:"injuryStatus"`
}

type PlayerPoolEntry struct {
	ID               int     `json:"id"`
	OnTeamID         int     `json:"onTeamId"`
	Player           Player  `json:"player"`
	AppliedStatTotal float64 `json:"appliedStatTotal"`
}

type Player struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	DefaultPositionID int    `json:"defaultPositionId"`
	EligibleSlots     []int  `json:"eligibleSlots"`
	ProTeamID         int    `json:"proTeamId"`
	Stats             []Stat `json:"stats"`
	InjuryStatus      string `json:"injuryStatus"`
}

type Stat struct {
	StatSourceID    int     `json:"statSourceId"`
	StatSplitTypeID int     `json:"statSplitTypeId"`
	ScoringPeriodID int     `json:"scoringPeriodId"`
	SeasonID        int     `json:"seasonId"`
	AppliedTotal    float64 `json:"appliedTotal"`
}
