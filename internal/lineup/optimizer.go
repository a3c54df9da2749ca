package lineup

import (
	"slices"
	"sort"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// SlotRequirement is one group of starting slots in the lineup template.
type SlotRequirement struct {
	Slot             int
	Count            int
	AllowedPositions []int
}

// StandardTemplate is filled in order. FLEX must stay last: filling every
// single-position group with its best players first is only optimal while
// FLEX is the sole cross-position slot. A template with more flexible slots
// needs an assignment solver instead.
var StandardTemplate = []SlotRequirement{
	{Slot: SlotQB, Count: 1, AllowedPositions: []int{PositionQB}},
	{Slot: SlotRB, Count: 2, AllowedPositions: []int{PositionRB}},
	{Slot: SlotWR, Count: 2, AllowedPositions: []int{PositionWR}},
	{Slot: SlotTE, Count: 1, AllowedPositions: []int{PositionTE}},
	{Slot: SlotDST, Count: 1, AllowedPositions: []int{PositionDST}},
	{Slot: SlotK, Count: 1, AllowedPositions: []int{PositionK}},
	{Slot: SlotFlex, Count: 1, AllowedPositions: []int{PositionRB, PositionWR, PositionTE}},
}

// Starter is a player placed in a lineup slot.
type Starter struct {
	Slot   int
	Player models.Player
	Points float64
}

type Lineup []Starter

func (l Lineup) Players() []models.Player {
	players := make([]models.Player, len(l))
	for i, s := range l {
		players[i] = s.Player
	}
	return players
}

func (l Lineup) Points() float64 {
	var total float64
	for _, s := range l {
		total += s.Points
	}
	return total
}

// Optimal picks the highest-scoring legal lineup for week. Players must
// already be normalized; positions are read from DefaultPositionID. Equal
// scores keep the input order. Slots with no candidate are left out.
func Optimal(players []models.Player, week int) Lineup {
	points := make([]float64, len(players))
	remaining := make([]int, len(players))
	for i, p := range players {
		points[i] = PlayerPoints(p, week)
		remaining[i] = i
	}

	var lineup Lineup
	for _, req := range StandardTemplate {
		var candidates []int
		for _, i := range remaining {
			if slices.Contains(req.AllowedPositions, players[i].DefaultPositionID) {
				candidates = append(candidates, i)
			}
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			return points[candidates[a]] > points[candidates[b]]
		})

		picked := make(map[int]bool)
		for _, i := range candidates[:min(req.Count, len(candidates))] {
			picked[i] = true
			lineup = append(lineup, Starter{Slot: req.Slot, Player: players[i], Points: points[i]})
		}

		remaining = slices.DeleteFunc(remaining, func(i int) bool { return picked[i] })
	}

	return lineup
}

// OptimalPoints is the total of the optimal lineup for week.
func OptimalPoints(players []models.Player, week int) float64 {
	return Optimal(players, week).Points()
}
