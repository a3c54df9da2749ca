package espn

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/omarshaarawi/leaguedash/internal/models"
	"golang.org/x/sync/errgroup"
)

// ErrIncompleteSnapshot means ESPN answered without a schedule or without teams.
var ErrIncompleteSnapshot = errors.New("season snapshot missing schedule or teams")

const seasonViews = "mMatchup,mMatchupScore,mTeam"

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint(year int) string {
	return fmt.Sprintf("/seasons/%d/segments/0/leagues/%s", year, a.client.Config.LeagueID)
}

func (a *API) GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(year), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	metadata := &models.LeagueMetadata{
		LeagueID:             espnResponse.ID,
		Name:                 espnResponse.Settings.Name,
		CurrentWeek:          espnResponse.Status.CurrentMatchupPeriod,
		CurrentScoringPeriod: espnResponse.ScoringPeriodID,
		SeasonID:             espnResponse.SeasonID,
		FirstWeek:            espnResponse.Status.FirstScoringPeriod,
		LastWeek:             espnResponse.Status.FinalScoringPeriod,
		IsActive:             espnResponse.Status.IsActive,
		LastUpdated:          time.Now(),
	}

	return metadata, nil
}

// GetSeason fetches the season snapshot with rosters as of week. A week of 0
// leaves the scoring period to ESPN's default.
func (a *API) GetSeason(ctx context.Context, year, week int) (*models.LeagueResponse, error) {
	var league models.LeagueResponse
	params := map[string]string{
		"view": seasonViews,
	}
	if week > 0 {
		params["scoringPeriodId"] = strconv.Itoa(week)
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(year), params, nil, &league); err != nil {
		return nil, fmt.Errorf("fetching season %d week %d: %w", year, week, err)
	}

	if len(league.Schedule) == 0 || len(league.Teams) == 0 {
		return nil, fmt.Errorf("season %d week %d: %w", year, week, ErrIncompleteSnapshot)
	}

	return &league, nil
}

// GetWeeklySnapshots fetches one snapshot per week concurrently. The first
// failure cancels the remaining fetches and no partial result is returned.
func (a *API) GetWeeklySnapshots(ctx context.Context, year int, weeks []int) (map[int]*models.LeagueResponse, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, a.client.Config.FetchConcurrency))

	var mu sync.Mutex
	snapshots := make(map[int]*models.LeagueResponse, len(weeks))

	for _, week := range weeks {
		week := week
		g.Go(func() error {
			league, err := a.GetSeason(ctx, year, week)
			if err != nil {
				return err
			}
			mu.Lock()
			snapshots[week] = league
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching weekly snapshots: %w", err)
	}

	return snapshots, nil
}
