package ratings

import (
	"github.com/omarshaarawi/leaguedash/internal/lineup"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

// OptimalSeasonPoints sums each team's optimal lineup points over the played
// weeks. weekly holds one snapshot per week whose rosters reflect that week;
// weeks without one fall back to the season snapshot's rosters.
func OptimalSeasonPoints(league *models.LeagueResponse, weekly map[int]*models.LeagueResponse) map[int]float64 {
	totals := make(map[int]float64, len(league.Teams))
	for _, team := range league.Teams {
		totals[team.ID] = 0
	}

	for week := 1; week <= WeeksPlayed(league); week++ {
		source := league
		if snap, ok := weekly[week]; ok && snap != nil {
			source = snap
		}
		for _, team := range source.Teams {
			if _, ok := totals[team.ID]; !ok {
				continue
			}
			totals[team.ID] += lineup.OptimalPoints(lineup.RosterPlayers(team), week)
		}
	}
	return totals
}

// CoachRating averages the win percentage with the share of optimal points
// actually scored.
func CoachRating(winPercentage, pointsFor, optimalPoints float64) float64 {
	var efficiency float64
	if optimalPoints > 0 {
		efficiency = pointsFor / optimalPoints
	}
	return (winPercentage + efficiency) / 2
}

// CoachRatings rates every team in snapshot order.
func CoachRatings(league *models.LeagueResponse, weekly map[int]*models.LeagueResponse) []models.CoachRating {
	optimal := OptimalSeasonPoints(league, weekly)

	ratings := make([]models.CoachRating, 0, len(league.Teams))
	for _, team := range league.Teams {
		overall := team.Record.Overall
		ratings = append(ratings, models.CoachRating{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			WinPercentage: overall.Percentage,
			PointsFor:     overall.PointsFor,
			OptimalPoints: optimal[team.ID],
			Rating:        CoachRating(overall.Percentage, overall.PointsFor, optimal[team.ID]),
		})
	}
	return ratings
}
