package ratings

import (
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

const maxLuck = 10

// LuckForRank scores one team-week. idx is the 0-based position in the week's
// points ranking, highest first, out of count teams. Winning from low in the
// ranking is good luck, losing from high in it is bad luck.
//
// The top and bottom scorers always get 0. This departs from the plain
// win/loss formula, which would give a top scorer that tied or had a bye
// -min(fromBottom, 10); a team cannot be unlucky for outscoring everyone.
func LuckForRank(idx, count int, won bool) int {
	fromBottom := count - 1 - idx
	if idx == 0 || fromBottom == 0 {
		return 0
	}
	if won {
		return min(idx, maxLuck)
	}
	return -min(fromBottom, maxLuck)
}

// WeekLuck ranks the week's teams by points and scores each team's luck.
func WeekLuck(league *models.LeagueResponse, week int) map[int]models.WeeklyLuck {
	results := weekResults(league, week)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Points > results[j].Points
	})

	luck := make(map[int]models.WeeklyLuck, len(results))
	for idx, r := range results {
		luck[r.TeamID] = models.WeeklyLuck{
			Week:   week,
			Points: r.Points,
			Won:    r.Won,
			Luck:   LuckForRank(idx, len(results), r.Won),
		}
	}
	return luck
}

// Luck sums each team's weekly luck over the played weeks. Teams are
// returned in snapshot order with weekly rows sorted by week.
func Luck(league *models.LeagueResponse) []models.TeamLuck {
	teams := make([]models.TeamLuck, len(league.Teams))
	index := make(map[int]int, len(league.Teams))
	for i, t := range league.Teams {
		teams[i] = models.TeamLuck{TeamID: t.ID, TeamName: t.DisplayName(), Weekly: []models.WeeklyLuck{}}
		index[t.ID] = i
	}

	for week := 1; week <= WeeksPlayed(league); week++ {
		for teamID, wl := range WeekLuck(league, week) {
			i, ok := index[teamID]
			if !ok {
				continue
			}
			teams[i].Weekly = append(teams[i].Weekly, wl)
			teams[i].TotalLuck += wl.Luck
		}
	}

	for i := range teams {
		sort.Slice(teams[i].Weekly, func(a, b int) bool {
			return teams[i].Weekly[a].Week < teams[i].Weekly[b].Week
		})
	}
	return teams
}
