package ratings

import (
	"strconv"

	"github.com/omarshaarawi/leaguedash/internal/lineup"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

type leagueBuilder struct {
	league models.LeagueResponse
}

func newLeague(weeksPlayed int) *leagueBuilder {
	return &leagueBuilder{league: models.LeagueResponse{
		Status: models.Status{CurrentMatchupPeriod: weeksPlayed},
	}}
}

func (b *leagueBuilder) team(id int, name string, wins, losses int, pointsFor float64, players ...models.Player) *leagueBuilder {
	t := models.Team{ID: id, Name: name}
	t.Record.Overall = models.RecordDetails{
		Wins:      wins,
		Losses:    losses,
		PointsFor: pointsFor,
	}
	if games := wins + losses; games > 0 {
		t.Record.Overall.Percentage = float64(wins) / float64(games)
	}
	for _, p := range players {
		t.Roster.Entries = append(t.Roster.Entries, models.RosterEntry{
			PlayerPoolEntry: models.PlayerPoolEntry{ID: p.ID, Player: p},
		})
	}
	b.league.Teams = append(b.league.Teams, t)
	return b
}

func side(teamID, week int, points float64) models.TeamScore {
	return models.TeamScore{
		TeamID:                teamID,
		TotalPoints:           points,
		PointsByScoringPeriod: map[string]float64{strconv.Itoa(week): points},
	}
}

func (b *leagueBuilder) game(week, home int, homePts float64, away int, awayPts float64) *leagueBuilder {
	a := side(away, week, awayPts)
	b.league.Schedule = append(b.league.Schedule, models.MatchupScore{
		MatchupPeriodID: week,
		Home:            side(home, week, homePts),
		Away:            &a,
	})
	return b
}

func (b *leagueBuilder) bye(week, home int, pts float64) *leagueBuilder {
	b.league.Schedule = append(b.league.Schedule, models.MatchupScore{
		MatchupPeriodID: week,
		Home:            side(home, week, pts),
	})
	return b
}

func (b *leagueBuilder) build() *models.LeagueResponse {
	return &b.league
}

func starter(id, position, week int, pts float64) models.Player {
	return models.Player{
		ID:                id,
		FullName:          "Player " + strconv.Itoa(id),
		DefaultPositionID: position,
		EligibleSlots:     []int{lineup.SlotBench},
		Stats: []models.Stat{
			{ScoringPeriodID: week, StatSourceID: 0, StatSplitTypeID: 1, AppliedTotal: pts},
		},
	}
}

func names(recipients []models.AwardRecipient) []string {
	out := make([]string, len(recipients))
	for i, r := range recipients {
		out[i] = r.TeamName
	}
	return out
}
