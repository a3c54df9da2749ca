package ratings

import "github.com/omarshaarawi/leaguedash/internal/models"

// Power rating weights: average score 60%, high plus low 20%, and win
// percentage scaled to 40 points.
const (
	averageWeight  = 0.6
	extremesWeight = 0.2
	winPctScale    = 400.0 / 10
)

type highLow struct {
	high, low float64
}

func teamHighLows(league *models.LeagueResponse) map[int]highLow {
	results := make(map[int]highLow)
	record := func(teamID int, score float64) {
		hl, ok := results[teamID]
		if !ok {
			results[teamID] = highLow{high: score, low: score}
			return
		}
		hl.high = max(hl.high, score)
		hl.low = min(hl.low, score)
		results[teamID] = hl
	}

	for _, m := range playedMatchups(league) {
		record(m.Home.TeamID, m.Home.TotalPoints)
		if m.Away != nil {
			record(m.Away.TeamID, m.Away.TotalPoints)
		}
	}
	return results
}

// PowerRating blends a season average with the best and worst weeks and the
// win percentage.
func PowerRating(average, high, low, winPercentage float64) float64 {
	return average*averageWeight + (high+low)*extremesWeight + winPercentage*winPctScale
}

// PowerRatings rates every team in snapshot order.
func PowerRatings(league *models.LeagueResponse) []models.PowerRating {
	highLows := teamHighLows(league)

	ratings := make([]models.PowerRating, 0, len(league.Teams))
	for _, team := range league.Teams {
		overall := team.Record.Overall

		var average float64
		if games := overall.Wins + overall.Losses; games > 0 {
			average = overall.PointsFor / float64(games)
		}
		hl := highLows[team.ID]

		ratings = append(ratings, models.PowerRating{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			Average:       average,
			High:          hl.high,
			Low:           hl.low,
			WinPercentage: overall.Percentage,
			Rating:        PowerRating(average, hl.high, hl.low, overall.Percentage),
		})
	}
	return ratings
}
