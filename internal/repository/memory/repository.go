package memory

import (
	"sync"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// Repository caches league metadata per season year.
type Repository struct {
	metadata map[int]*models.LeagueMetadata
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{metadata: make(map[int]*models.LeagueMetadata)}
}

func (r *Repository) SaveMetadata(year int, metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata[year] = metadata
}

func (r *Repository) GetMetadata(year int) *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata[year]
}
