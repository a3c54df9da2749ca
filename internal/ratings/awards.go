package ratings

import (
	"github.com/omarshaarawi/leaguedash/internal/lineup"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

type scored struct {
	teamID   int
	teamName string
	value    float64
}

// WeeklyAwards computes every award for week. The snapshot's rosters and
// stat lines must cover week for the potential and managed awards.
func WeeklyAwards(league *models.LeagueResponse, week int) models.WeekAwards {
	awards := models.WeekAwards{Week: week}

	results := weekResults(league, week)

	var points, margins []scored
	played := make(map[int]bool, len(results))
	for _, r := range results {
		played[r.TeamID] = !r.Bye
		points = append(points, scored{r.TeamID, r.TeamName, r.Points})
		if r.HasMargin {
			margins = append(margins, scored{r.TeamID, r.TeamName, r.Margin})
		}
	}
	awards.HighestScore = best(points, greater)
	awards.LowestScore = best(points, less)

	awards.HasWinners = len(margins) > 0
	awards.LargestWin = best(margins, greater)
	awards.SmallestWin = best(margins, less)

	var potentials, gaps []scored
	for _, team := range league.Teams {
		potential := round2(lineup.OptimalPoints(lineup.RosterPlayers(team), week))
		potentials = append(potentials, scored{team.ID, team.DisplayName(), potential})
		// A team on bye or without a matchup has no actual score to manage.
		if !played[team.ID] {
			continue
		}
		actual := ActualTeamPoints(league, team.ID, week)
		gaps = append(gaps, scored{team.ID, team.DisplayName(), round2(potential - actual)})
	}
	awards.HighestPotential = best(potentials, greater)
	awards.LowestPotential = best(potentials, less)

	// Best managed left the fewest points on the bench. Negative gaps only
	// show up with inconsistent upstream data and do not compete unless
	// nothing else is available.
	var nonNegative []scored
	for _, g := range gaps {
		if g.value >= 0 {
			nonNegative = append(nonNegative, g)
		}
	}
	if len(nonNegative) > 0 {
		awards.BestManaged = best(nonNegative, less)
	} else {
		awards.BestManaged = best(gaps, less)
	}
	awards.WorstManaged = best(gaps, greater)

	return awards
}

func greater(a, b float64) bool { return a > b }
func less(a, b float64) bool    { return a < b }

// best returns every entry tied for the top value under better, in input
// order. Values are compared after rounding to hundredths.
func best(entries []scored, better func(a, b float64) bool) []models.AwardRecipient {
	if len(entries) == 0 {
		return []models.AwardRecipient{}
	}

	top := round2(entries[0].value)
	for _, e := range entries[1:] {
		if v := round2(e.value); better(v, top) {
			top = v
		}
	}

	var recipients []models.AwardRecipient
	for _, e := range entries {
		if round2(e.value) == top {
			recipients = append(recipients, models.AwardRecipient{TeamID: e.teamID, TeamName: e.teamName, Value: e.value})
		}
	}
	return recipients
}
