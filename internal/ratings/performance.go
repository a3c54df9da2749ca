package ratings

import (
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// WeekScore is one team's points in one week.
type WeekScore struct {
	TeamID int
	Points float64
}

// BeatenCounts returns, per team, how many teams it outscored in a week of
// scores. A tie group spanning ranks [r, r+k) shares the average of the
// counts those ranks would have earned, so the total over all teams stays
// numTeams*(numTeams-1)/2.
func BeatenCounts(scores []WeekScore, numTeams int) map[int]float64 {
	sorted := make([]WeekScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	counts := make(map[int]float64, len(sorted))
	for rank := 0; rank < len(sorted); {
		end := rank
		for end < len(sorted) && sorted[end].Points == sorted[rank].Points {
			end++
		}

		first := float64(numTeams - 1 - rank)
		last := float64(numTeams - 1 - (end - 1))
		avg := (first + last) / 2
		for _, s := range sorted[rank:end] {
			counts[s.TeamID] = avg
		}
		rank = end
	}
	return counts
}

// TeamPerformance compares each team's wins with the wins it would expect
// from its weekly scoring rank alone.
func TeamPerformance(league *models.LeagueResponse) []models.TeamPerformance {
	numTeams := len(league.Teams)

	weeks := make(map[int][]WeekScore)
	var order []int
	for _, m := range playedMatchups(league) {
		if _, ok := weeks[m.MatchupPeriodID]; !ok {
			order = append(order, m.MatchupPeriodID)
		}
		weeks[m.MatchupPeriodID] = append(weeks[m.MatchupPeriodID], WeekScore{m.Home.TeamID, m.Home.TotalPoints})
		if m.Away != nil {
			weeks[m.MatchupPeriodID] = append(weeks[m.MatchupPeriodID], WeekScore{m.Away.TeamID, m.Away.TotalPoints})
		}
	}
	sort.Ints(order)

	results := make([]models.TeamPerformance, numTeams)
	index := make(map[int]int, numTeams)
	for i, t := range league.Teams {
		results[i] = models.TeamPerformance{
			TeamID:       t.ID,
			TeamName:     t.DisplayName(),
			ActualWins:   t.Record.Overall.Wins,
			WeeklyPoints: []float64{},
		}
		index[t.ID] = i
	}

	if numTeams > 1 {
		for _, week := range order {
			for teamID, beaten := range BeatenCounts(weeks[week], numTeams) {
				i, ok := index[teamID]
				if !ok {
					continue
				}
				results[i].ExpectedWins += beaten / float64(numTeams-1)
				results[i].WeeklyPoints = append(results[i].WeeklyPoints, beaten)
			}
		}
	}

	assignExpectedRanks(results)
	assignActualRanks(league, results, index)
	return results
}

func assignExpectedRanks(results []models.TeamPerformance) {
	byExpected := make([]int, len(results))
	for i := range byExpected {
		byExpected[i] = i
	}
	sort.SliceStable(byExpected, func(a, b int) bool {
		return results[byExpected[a]].ExpectedWins > results[byExpected[b]].ExpectedWins
	})
	for rank, i := range byExpected {
		results[i].ExpectedRank = rank + 1
	}
}

// assignActualRanks uses the final rank once the season has one, otherwise
// the current standings.
func assignActualRanks(league *models.LeagueResponse, results []models.TeamPerformance, index map[int]int) {
	standingRank := make(map[int]int, len(results))
	for _, s := range Standings(league) {
		standingRank[s.TeamID] = s.Rank
	}

	for _, t := range league.Teams {
		rank := t.RankCalculatedFinal
		if rank <= 0 {
			rank = standingRank[t.ID]
		}
		results[index[t.ID]].ActualRank = rank
	}
}

// Standings orders teams by win percentage, then points for.
func Standings(league *models.LeagueResponse) []models.TeamStanding {
	standings := make([]models.TeamStanding, len(league.Teams))
	for i, team := range league.Teams {
		standings[i] = models.TeamStanding{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			Abbreviation:  team.Abbreviation,
			Wins:          team.Record.Overall.Wins,
			Losses:        team.Record.Overall.Losses,
			Ties:          team.Record.Overall.Ties,
			PointsFor:     team.Record.Overall.PointsFor,
			PointsAgainst: team.Record.Overall.PointsAgainst,
			WinPercentage: team.Record.Overall.Percentage,
			PlayoffSeed:   team.PlayoffSeed,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
