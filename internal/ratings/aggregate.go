// Package ratings derives season and weekly metrics from a league snapshot.
// Every function is pure: the snapshot is never modified.
package ratings

import (
	"math"
	"strconv"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// WeeksPlayed is the snapshot's current matchup period, or 0 when unknown.
func WeeksPlayed(league *models.LeagueResponse) int {
	if league == nil {
		return 0
	}
	return league.Status.CurrentMatchupPeriod
}

// ActualTeamPoints returns what the team scored in week according to the
// schedule. Byes, unplayed weeks and unknown teams score 0.
func ActualTeamPoints(league *models.LeagueResponse, teamID, week int) float64 {
	for _, m := range league.Schedule {
		if m.MatchupPeriodID != week {
			continue
		}
		var side *models.TeamScore
		switch {
		case m.Away != nil && m.Away.TeamID == teamID:
			side = m.Away
		case m.Home.TeamID == teamID:
			if m.IsBye() {
				return 0
			}
			side = &m.Home
		default:
			continue
		}
		return side.PointsByScoringPeriod[strconv.Itoa(week)]
	}
	return 0
}

// weekResult is one team's outcome in one matchup period.
type weekResult struct {
	TeamID    int
	TeamName  string
	Points    float64
	Won       bool
	Margin    float64
	HasMargin bool
	Bye       bool
}

// weekResults flattens the week's matchups in schedule order, home before
// away. Teams missing from the team list are skipped.
func weekResults(league *models.LeagueResponse, week int) []weekResult {
	names := teamNames(league)

	var results []weekResult
	for _, m := range league.Schedule {
		if m.MatchupPeriodID != week {
			continue
		}
		homeName, ok := names[m.Home.TeamID]
		if !ok {
			continue
		}

		if m.IsBye() {
			results = append(results, weekResult{TeamID: m.Home.TeamID, TeamName: homeName, Points: m.Home.TotalPoints, Bye: true})
			continue
		}

		awayName, ok := names[m.Away.TeamID]
		if !ok {
			continue
		}

		home, away := m.Home.TotalPoints, m.Away.TotalPoints
		margin := math.Abs(home - away)
		results = append(results,
			weekResult{TeamID: m.Home.TeamID, TeamName: homeName, Points: home, Won: home > away, Margin: margin, HasMargin: home > away},
			weekResult{TeamID: m.Away.TeamID, TeamName: awayName, Points: away, Won: away > home, Margin: margin, HasMargin: away > home},
		)
	}
	return results
}

func teamNames(league *models.LeagueResponse) map[int]string {
	names := make(map[int]string, len(league.Teams))
	for _, t := range league.Teams {
		names[t.ID] = t.DisplayName()
	}
	return names
}

// playedMatchups returns matchups up to the weeks played, or the whole
// schedule when the snapshot does not say.
func playedMatchups(league *models.LeagueResponse) []models.MatchupScore {
	weeks := WeeksPlayed(league)
	if weeks == 0 {
		return league.Schedule
	}
	var played []models.MatchupScore
	for _, m := range league.Schedule {
		if m.MatchupPeriodID <= weeks {
			played = append(played, m)
		}
	}
	return played
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
