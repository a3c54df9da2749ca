package models

import "time"

type LeagueMetadata struct {
	LeagueID             int
	Name                 string
	CurrentWeek          int
	CurrentScoringPeriod int
	SeasonID             int
	FirstWeek            int
	LastWeek             int
	IsActive             bool
	LastUpdated          time.Time
}

type TeamStanding struct {
	Rank          int     `json:"rank" yaml:"rank"`
	TeamID        int     `json:"teamId" yaml:"teamId"`
	TeamName      string  `json:"teamName" yaml:"teamName"`
	Abbreviation  string  `json:"abbreviation" yaml:"abbreviation"`
	Wins          int     `json:"wins" yaml:"wins"`
	Losses        int     `json:"losses" yaml:"losses"`
	Ties          int     `json:"ties" yaml:"ties"`
	PointsFor     float64 `json:"pointsFor" yaml:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst" yaml:"pointsAgainst"`
	WinPercentage float64 `json:"winPercentage" yaml:"winPercentage"`
	PlayoffSeed   int     `json:"playoffSeed" yaml:"playoffSeed"`
}

// AwardRecipient is one team receiving an award, with the value that earned it.
type AwardRecipient struct {
	TeamID   int     `json:"teamId" yaml:"teamId"`
	TeamName string  `json:"teamName" yaml:"teamName"`
	Value    float64 `json:"value" yaml:"value"`
}

// WeekAwards lists every recipient per category; ties are all included.
// LargestWin and SmallestWin are empty when HasWinners is false.
type WeekAwards struct {
	Week             int              `json:"week" yaml:"week"`
	HighestScore     []AwardRecipient `json:"highestScore" yaml:"highestScore"`
	LowestScore      []AwardRecipient `json:"lowestScore" yaml:"lowestScore"`
	HighestPotential []AwardRecipient `json:"highestPotential" yaml:"highestPotential"`
	LowestPotential  []AwardRecipient `json:"lowestPotential" yaml:"lowestPotential"`
	BestManaged      []AwardRecipient `json:"bestManaged" yaml:"bestManaged"`
	WorstManaged     []AwardRecipient `json:"worstManaged" yaml:"worstManaged"`
	LargestWin       []AwardRecipient `json:"largestWin" yaml:"largestWin"`
	SmallestWin      []AwardRecipient `json:"smallestWin" yaml:"smallestWin"`
	HasWinners       bool             `json:"hasWinners" yaml:"hasWinners"`
}

type WeeklyLuck struct {
	Week   int     `json:"week" yaml:"week"`
	Points float64 `json:"points" yaml:"points"`
	Won    bool    `json:"won" yaml:"won"`
	Luck   int     `json:"luck" yaml:"luck"`
}

type TeamLuck struct {
	TeamID    int          `json:"teamId" yaml:"teamId"`
	TeamName  string       `json:"teamName" yaml:"teamName"`
	Weekly    []WeeklyLuck `json:"weekly" yaml:"weekly"`
	TotalLuck int          `json:"totalLuck" yaml:"totalLuck"`
}

type PowerRating struct {
	TeamID        int     `json:"teamId" yaml:"teamId"`
	TeamName      string  `json:"teamName" yaml:"teamName"`
	Average       float64 `json:"average" yaml:"average"`
	High          float64 `json:"high" yaml:"high"`
	Low           float64 `json:"low" yaml:"low"`
	WinPercentage float64 `json:"winPercentage" yaml:"winPercentage"`
	Rating        float64 `json:"rating" yaml:"rating"`
}

type CoachRating struct {
	TeamID        int     `json:"teamId" yaml:"teamId"`
	TeamName      string  `json:"teamName" yaml:"teamName"`
	WinPercentage float64 `json:"winPercentage" yaml:"winPercentage"`
	PointsFor     float64 `json:"pointsFor" yaml:"pointsFor"`
	OptimalPoints float64 `json:"optimalPoints" yaml:"optimalPoints"`
	Rating        float64 `json:"rating" yaml:"rating"`
}

type TeamPerformance struct {
	TeamID       int       `json:"teamId" yaml:"teamId"`
	TeamName     string    `json:"teamName" yaml:"teamName"`
	ExpectedWins float64   `json:"expectedWins" yaml:"expectedWins"`
	ActualWins   int       `json:"actualWins" yaml:"actualWins"`
	ExpectedRank int       `json:"expectedRank" yaml:"expectedRank"`
	ActualRank   int       `json:"actualRank" yaml:"actualRank"`
	WeeklyPoints []float64 `json:"weeklyPoints" yaml:"weeklyPoints"`
}

type LineupStarter struct {
	Slot       string  `json:"slot" yaml:"slot"`
	PlayerID   int     `json:"playerId" yaml:"playerId"`
	PlayerName string  `json:"playerName" yaml:"playerName"`
	Position   string  `json:"position" yaml:"position"`
	Points     float64 `json:"points" yaml:"points"`
}

type TeamLineup struct {
	TeamID        int             `json:"teamId" yaml:"teamId"`
	TeamName      string          `json:"teamName" yaml:"teamName"`
	Week          int             `json:"week" yaml:"week"`
	Starters      []LineupStarter `json:"starters" yaml:"starters"`
	OptimalPoints float64         `json:"optimalPoints" yaml:"optimalPoints"`
	ActualPoints  float64         `json:"actualPoints" yaml:"actualPoints"`
	BenchPoints   float64         `json:"benchPoints" yaml:"benchPoints"`
}
