package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/leaguedash/internal/lineup"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/omarshaarawi/leaguedash/internal/ratings"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
)

var ErrTeamNotFound = errors.New("team not found")

const (
	metadataTTL        = 24 * time.Hour
	teamMatchThreshold = 0.6
)

// LeagueAPI is the subset of the fantasy API the service reads from.
type LeagueAPI interface {
	GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error)
	GetSeason(ctx context.Context, year, week int) (*models.LeagueResponse, error)
	GetWeeklySnapshots(ctx context.Context, year int, weeks []int) (map[int]*models.LeagueResponse, error)
}

type FantasyService struct {
	api         LeagueAPI
	repo        *memory.Repository
	defaultYear int
}

func NewFantasyService(api LeagueAPI, repo *memory.Repository, defaultYear int) *FantasyService {
	return &FantasyService{api: api, repo: repo, defaultYear: defaultYear}
}

func (s *FantasyService) year(year int) int {
	if year <= 0 {
		return s.defaultYear
	}
	return year
}

// CurrentWeek is the number of matchup periods ESPN reports for the season.
func (s *FantasyService) CurrentWeek(ctx context.Context, year int) (int, error) {
	metadata, err := s.getLeagueMetadata(ctx, s.year(year))
	if err != nil {
		return 0, err
	}

	slog.Info("Current week", "year", s.year(year), "week", metadata.CurrentWeek)
	return metadata.CurrentWeek, nil
}

func (s *FantasyService) getLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error) {
	metadata := s.repo.GetMetadata(year)
	if metadata == nil || time.Since(metadata.LastUpdated) > metadataTTL {
		newMetadata, err := s.api.GetLeagueMetadata(ctx, year)
		if err != nil {
			return nil, err
		}
		s.repo.SaveMetadata(year, newMetadata)
		return newMetadata, nil
	}
	return metadata, nil
}

func (s *FantasyService) season(ctx context.Context, year, week int) (*models.LeagueResponse, error) {
	league, err := s.api.GetSeason(ctx, s.year(year), week)
	if err != nil {
		return nil, fmt.Errorf("fetching season: %w", err)
	}
	return league, nil
}

func (s *FantasyService) resolveWeek(ctx context.Context, year, week int) (int, error) {
	if week > 0 {
		return week, nil
	}
	current, err := s.CurrentWeek(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("fetching current week: %w", err)
	}
	return max(1, current), nil
}

// WeeklyAwards computes the award table for week, defaulting to the current
// week when week is 0.
func (s *FantasyService) WeeklyAwards(ctx context.Context, year, week int) (models.WeekAwards, error) {
	week, err := s.resolveWeek(ctx, year, week)
	if err != nil {
		return models.WeekAwards{}, err
	}

	league, err := s.season(ctx, year, week)
	if err != nil {
		return models.WeekAwards{}, err
	}

	return ratings.WeeklyAwards(league, week), nil
}

// Luck is sorted by total luck, luckiest first.
func (s *FantasyService) Luck(ctx context.Context, year int) ([]models.TeamLuck, error) {
	league, err := s.season(ctx, year, 0)
	if err != nil {
		return nil, err
	}

	luck := ratings.Luck(league)
	sort.SliceStable(luck, func(i, j int) bool {
		return luck[i].TotalLuck > luck[j].TotalLuck
	})
	return luck, nil
}

func (s *FantasyService) PowerRatings(ctx context.Context, year int) ([]models.PowerRating, error) {
	league, err := s.season(ctx, year, 0)
	if err != nil {
		return nil, err
	}

	power := ratings.PowerRatings(league)
	sort.SliceStable(power, func(i, j int) bool {
		return power[i].Rating > power[j].Rating
	})
	return power, nil
}

// CoachRatings needs rosters as they stood each week, so it fetches one
// snapshot per played week before rating anyone.
func (s *FantasyService) CoachRatings(ctx context.Context, year int) ([]models.CoachRating, error) {
	league, err := s.season(ctx, year, 0)
	if err != nil {
		return nil, err
	}

	played := ratings.WeeksPlayed(league)
	weeks := make([]int, 0, played)
	for week := 1; week <= played; week++ {
		weeks = append(weeks, week)
	}

	weekly, err := s.api.GetWeeklySnapshots(ctx, s.year(year), weeks)
	if err != nil {
		return nil, fmt.Errorf("fetching weekly rosters: %w", err)
	}

	coach := ratings.CoachRatings(league, weekly)
	sort.SliceStable(coach, func(i, j int) bool {
		return coach[i].Rating > coach[j].Rating
	})
	return coach, nil
}

// TeamPerformance is ordered by expected rank.
func (s *FantasyService) TeamPerformance(ctx context.Context, year int) ([]models.TeamPerformance, error) {
	league, err := s.season(ctx, year, 0)
	if err != nil {
		return nil, err
	}

	perf := ratings.TeamPerformance(league)
	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].ExpectedRank < perf[j].ExpectedRank
	})
	return perf, nil
}

func (s *FantasyService) Standings(ctx context.Context, year int) ([]models.TeamStanding, error) {
	league, err := s.season(ctx, year, 0)
	if err != nil {
		return nil, err
	}
	return ratings.Standings(league), nil
}

// OptimalLineup builds the best legal lineup for the team whose name is
// closest to teamName, and compares it with what the team actually scored.
func (s *FantasyService) OptimalLineup(ctx context.Context, year int, teamName string, week int) (models.TeamLineup, error) {
	week, err := s.resolveWeek(ctx, year, week)
	if err != nil {
		return models.TeamLineup{}, err
	}

	league, err := s.season(ctx, year, week)
	if err != nil {
		return models.TeamLineup{}, err
	}

	team, ok := findTeam(league.Teams, teamName)
	if !ok {
		return models.TeamLineup{}, fmt.Errorf("%q: %w", teamName, ErrTeamNotFound)
	}

	best := lineup.Optimal(lineup.RosterPlayers(team), week)
	starters := make([]models.LineupStarter, 0, len(best))
	for _, st := range best {
		starters = append(starters, models.LineupStarter{
			Slot:       lineup.SlotName(st.Slot),
			PlayerID:   st.Player.ID,
			PlayerName: st.Player.FullName,
			Position:   lineup.PositionName(st.Player.DefaultPositionID),
			Points:     st.Points,
		})
	}

	optimal := round2(best.Points())
	actual := round2(ratings.ActualTeamPoints(league, team.ID, week))

	return models.TeamLineup{
		TeamID:        team.ID,
		TeamName:      team.DisplayName(),
		Week:          week,
		Starters:      starters,
		OptimalPoints: optimal,
		ActualPoints:  actual,
		BenchPoints:   round2(optimal - actual),
	}, nil
}

// findTeam matches on abbreviation first, then on the closest display name by
// Levenshtein similarity.
func findTeam(teams []models.Team, name string) (models.Team, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.Team{}, false
	}

	for _, team := range teams {
		if strings.ToLower(team.Abbreviation) == query {
			return team, true
		}
	}

	bestScore := -1.0
	var bestMatch *models.Team
	for i, team := range teams {
		current := strings.ToLower(team.DisplayName())
		distance := fuzzy.LevenshteinDistance(query, current)
		maxLen := float64(max(len(query), len(current)))
		similarity := 1 - float64(distance)/maxLen

		if similarity >= teamMatchThreshold && similarity > bestScore {
			bestScore = similarity
			bestMatch = &teams[i]
		}
	}

	if bestMatch == nil {
		return models.Team{}, false
	}
	return *bestMatch, true
}
