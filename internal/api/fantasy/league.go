package fantasy

import (
	"context"

	"github.com/omarshaarawi/leaguedash/internal/api/espn"
	"github.com/omarshaarawi/leaguedash/internal/models"
)

type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) GetLeagueMetadata(ctx context.Context, year int) (*models.LeagueMetadata, error) {
	return a.espnAPI.GetLeagueMetadata(ctx, year)
}

func (a *API) GetSeason(ctx context.Context, year, week int) (*models.LeagueResponse, error) {
	return a.espnAPI.GetSeason(ctx, year, week)
}

func (a *API) GetWeeklySnapshots(ctx context.Context, year int, weeks []int) (map[int]*models.LeagueResponse, error) {
	return a.espnAPI.GetWeeklySnapshots(ctx, year, weeks)
}
