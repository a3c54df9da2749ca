package lineup

import "github.com/omarshaarawi/leaguedash/internal/models"

const (
	statSourceActual   = 0
	statSplitScoringPd = 1
)

// PlayerPoints returns the player's actual points for week. A missing stat
// line counts as zero; when duplicates exist the first one is used.
func PlayerPoints(p models.Player, week int) float64 {
	for _, stat := range p.Stats {
		if stat.ScoringPeriodID == week &&
			stat.StatSourceID == statSourceActual &&
			stat.StatSplitTypeID == statSplitScoringPd {
			return stat.AppliedTotal
		}
	}
	return 0
}

// WeekPoints sums each player's actual points for week.
func WeekPoints(players []models.Player, week int) float64 {
	var total float64
	for _, p := range players {
		total += PlayerPoints(p, week)
	}
	return total
}
