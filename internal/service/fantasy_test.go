package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/omarshaarawi/leaguedash/internal/lineup"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu            sync.Mutex
	league        *models.LeagueResponse
	metadata      *models.LeagueMetadata
	seasonErr     error
	weeklyErr     error
	metadataCalls int
	seasonCalls   []int
	weeklyWeeks   []int
}

func (f *fakeAPI) GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metadataCalls++
	m := *f.metadata
	m.SeasonID = year
	m.LastUpdated = time.Now()
	return &m, nil
}

func (f *fakeAPI) GetSeason(ctx context.Context, year, week int) (*models.LeagueResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasonCalls = append(f.seasonCalls, week)
	if f.seasonErr != nil {
		return nil, f.seasonErr
	}
	return f.league, nil
}

func (f *fakeAPI) GetWeeklySnapshots(ctx context.Context, year int, weeks []int) (map[int]*models.LeagueResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weeklyWeeks = weeks
	if f.weeklyErr != nil {
		return nil, f.weeklyErr
	}
	out := make(map[int]*models.LeagueResponse, len(weeks))
	for _, w := range weeks {
		out[w] = f.league
	}
	return out, nil
}

func player(id, position, week int, pts float64) models.Player {
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

func score(teamID, week int, pts float64) models.TeamScore {
	return models.TeamScore{
		TeamID:                teamID,
		TotalPoints:           pts,
		PointsByScoringPeriod: map[string]float64{strconv.Itoa(week): pts},
	}
}

func testLeague() *models.LeagueResponse {
	roster := []models.Player{
		player(1, lineup.PositionQB, 2, 25),
		player(2, lineup.PositionRB, 2, 15),
		player(3, lineup.PositionRB, 2, 10),
		player(4, lineup.PositionRB, 2, 5),
		player(5, lineup.PositionWR, 2, 12),
		player(6, lineup.PositionWR, 2, 8),
		player(7, lineup.PositionTE, 2, 6),
		player(8, lineup.PositionK, 2, 9),
		player(9, lineup.PositionDST, 2, 7),
	}
	ghosts := models.Team{ID: 1, Abbreviation: "GG", Name: "Gridiron Ghosts"}
	ghosts.Record.Overall = models.RecordDetails{Wins: 2, Losses: 0, Percentage: 1, PointsFor: 200}
	for _, p := range roster {
		ghosts.Roster.Entries = append(ghosts.Roster.Entries, models.RosterEntry{
			PlayerPoolEntry: models.PlayerPoolEntry{ID: p.ID, Player: p},
		})
	}
	downers := models.Team{ID: 2, Abbreviation: "FD", Location: "Fourth", Nickname: "Downers"}
	downers.Record.Overall = models.RecordDetails{Wins: 0, Losses: 2, Percentage: 0, PointsFor: 150}

	away1, away2 := score(2, 1, 70), score(2, 2, 80)
	return &models.LeagueResponse{
		Status: models.Status{CurrentMatchupPeriod: 2},
		Teams:  []models.Team{ghosts, downers},
		Schedule: []models.MatchupScore{
			{MatchupPeriodID: 1, Home: score(1, 1, 110), Away: &away1, Winner: "HOME"},
			{MatchupPeriodID: 2, Home: score(1, 2, 90), Away: &away2, Winner: "HOME"},
		},
	}
}

func newTestService(api *fakeAPI) *FantasyService {
	if api.metadata == nil {
		api.metadata = &models.LeagueMetadata{CurrentWeek: 2}
	}
	return NewFantasyService(api, memory.NewRepository(), 2024)
}

func TestCurrentWeek_CachesMetadata(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	for i := 0; i < 3; i++ {
		week, err := svc.CurrentWeek(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 2, week)
	}
	assert.Equal(t, 1, api.metadataCalls)

	_, err := svc.CurrentWeek(context.Background(), 2023)
	require.NoError(t, err)
	assert.Equal(t, 2, api.metadataCalls)
}

func TestWeeklyAwards_DefaultsToCurrentWeek(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	awards, err := svc.WeeklyAwards(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, awards.Week)
	assert.Equal(t, []int{2}, api.seasonCalls)
	require.Len(t, awards.HighestScore, 1)
	assert.Equal(t, "Gridiron Ghosts", awards.HighestScore[0].TeamName)
	assert.True(t, awards.HasWinners)
}

func TestWeeklyAwards_SeasonError(t *testing.T) {
	api := &fakeAPI{seasonErr: errors.New("boom")}
	svc := newTestService(api)

	_, err := svc.WeeklyAwards(context.Background(), 2024, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching season")
}

func TestOptimalLineup(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	got, err := svc.OptimalLineup(context.Background(), 2024, "gridiron ghost", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TeamID)
	assert.Equal(t, 97.0, got.OptimalPoints)
	assert.Equal(t, 90.0, got.ActualPoints)
	assert.Equal(t, 7.0, got.BenchPoints)

	slots := make([]string, len(got.Starters))
	for i, s := range got.Starters {
		slots[i] = s.Slot
	}
	assert.Equal(t, []string{"QB", "RB", "RB", "WR", "WR", "TE", "D/ST", "K", "FLEX"}, slots)
	assert.Equal(t, 4, got.Starters[8].PlayerID)
	assert.Equal(t, "RB", got.Starters[8].Position)
}

func TestOptimalLineup_ByAbbreviation(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	got, err := svc.OptimalLineup(context.Background(), 2024, "fd", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fourth Downers", got.TeamName)
	assert.Empty(t, got.Starters)
	assert.Equal(t, 70.0, got.ActualPoints)
}

func TestOptimalLineup_TeamNotFound(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	_, err := svc.OptimalLineup(context.Background(), 2024, "Taco Corp", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTeamNotFound))
}

func TestCoachRatings_FetchesPlayedWeeks(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)

	coach, err := svc.CoachRatings(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, api.weeklyWeeks)
	require.Len(t, coach, 2)
	assert.Equal(t, "Gridiron Ghosts", coach[0].TeamName)
	assert.GreaterOrEqual(t, coach[0].Rating, coach[1].Rating)
}

func TestCoachRatings_WeeklyFailureAborts(t *testing.T) {
	api := &fakeAPI{league: testLeague(), weeklyErr: errors.New("week 2 failed")}
	svc := newTestService(api)

	coach, err := svc.CoachRatings(context.Background(), 2024)
	require.Error(t, err)
	assert.Nil(t, coach)
}

func TestRankedViewsAreSorted(t *testing.T) {
	api := &fakeAPI{league: testLeague()}
	svc := newTestService(api)
	ctx := context.Background()

	power, err := svc.PowerRatings(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, power, 2)
	assert.Greater(t, power[0].Rating, power[1].Rating)

	perf, err := svc.TeamPerformance(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, perf, 2)
	assert.Equal(t, 1, perf[0].ExpectedRank)

	standings, err := svc.Standings(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "Gridiron Ghosts", standings[0].TeamName)

	luck, err := svc.Luck(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, luck, 2)
	assert.GreaterOrEqual(t, luck[0].TotalLuck, luck[1].TotalLuck)
}

func TestFindTeam(t *testing.T) {
	teams := testLeague().Teams

	team, ok := findTeam(teams, "Fourth Downerz")
	require.True(t, ok)
	assert.Equal(t, 2, team.ID)

	_, ok = findTeam(teams, "")
	assert.False(t, ok)

	_, ok = findTeam(teams, "xyz")
	assert.False(t, ok)
}

func TestFormatAwards_NoWinners(t *testing.T) {
	out := FormatAwards(models.WeekAwards{
		Week:         4,
		HighestScore: []models.AwardRecipient{{TeamName: "A", Value: 100}, {TeamName: "B", Value: 100}},
	})

	assert.True(t, strings.HasPrefix(out, "🏅 *Week 4 Awards*"))
	assert.Contains(t, out, "  • A (100.00 pts)\n  • B (100.00 pts)\n")
	assert.Contains(t, out, "No decided matchups this week.")
	assert.NotContains(t, out, "Largest Win")
}

func TestFormatLineup(t *testing.T) {
	out := FormatLineup(models.TeamLineup{
		TeamName:      "Gridiron Ghosts",
		Week:          2,
		Starters:      []models.LineupStarter{{Slot: "QB", PlayerName: "Player 1", Position: "QB", Points: 25}},
		OptimalPoints: 97,
		ActualPoints:  90,
		BenchPoints:   7,
	})

	assert.Contains(t, out, "QB    Player 1 (QB) 25.00")
	assert.Contains(t, out, "Left on bench: 7.00")
}
