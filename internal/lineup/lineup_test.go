package lineup

import (
	"math/rand"
	"testing"

	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(id, position int, weekPoints map[int]float64) models.Player {
	p := models.Player{ID: id, FullName: "Player", DefaultPositionID: position}
	for week, pts := range weekPoints {
		p.Stats = append(p.Stats, models.Stat{
			ScoringPeriodID: week,
			StatSourceID:    0,
			StatSplitTypeID: 1,
			AppliedTotal:    pts,
		})
	}
	return p
}

func wk1(id, position int, pts float64) models.Player {
	return player(id, position, map[int]float64{1: pts})
}

func TestResolvePosition(t *testing.T) {
	tests := []struct {
		name  string
		p     models.Player
		wants int
	}{
		{
			name:  "no flex keeps default",
			p:     models.Player{DefaultPositionID: PositionQB, EligibleSlots: []int{SlotQB, SlotBench}},
			wants: PositionQB,
		},
		{
			name:  "flex wide receiver with wrong default",
			p:     models.Player{DefaultPositionID: PositionRB, EligibleSlots: []int{SlotWR, SlotFlex, SlotBench}},
			wants: PositionWR,
		},
		{
			name:  "running back wins over receiver",
			p:     models.Player{DefaultPositionID: PositionWR, EligibleSlots: []int{SlotWR, SlotRB, SlotFlex}},
			wants: PositionRB,
		},
		{
			name:  "tight end",
			p:     models.Player{DefaultPositionID: PositionQB, EligibleSlots: []int{SlotTE, SlotFlex}},
			wants: PositionTE,
		},
		{
			name:  "flex only falls through to default",
			p:     models.Player{DefaultPositionID: PositionK, EligibleSlots: []int{SlotFlex}},
			wants: PositionK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, ResolvePosition(tt.p))
		})
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	team := models.Team{Roster: models.Roster{Entries: []models.RosterEntry{
		{PlayerPoolEntry: models.PlayerPoolEntry{Player: models.Player{
			ID: 7, DefaultPositionID: PositionRB, EligibleSlots: []int{SlotWR, SlotFlex},
		}}},
	}}}

	players := RosterPlayers(team)

	require.Len(t, players, 1)
	assert.Equal(t, PositionWR, players[0].DefaultPositionID)
	assert.Equal(t, PositionRB, team.Roster.Entries[0].PlayerPoolEntry.Player.DefaultPositionID)
}

func TestPlayerPoints(t *testing.T) {
	p := models.Player{Stats: []models.Stat{
		{ScoringPeriodID: 3, StatSourceID: 1, StatSplitTypeID: 1, AppliedTotal: 99},
		{ScoringPeriodID: 3, StatSourceID: 0, StatSplitTypeID: 0, AppliedTotal: 250},
		{ScoringPeriodID: 3, StatSourceID: 0, StatSplitTypeID: 1, AppliedTotal: 12.4},
		{ScoringPeriodID: 3, StatSourceID: 0, StatSplitTypeID: 1, AppliedTotal: 40},
	}}

	assert.Equal(t, 12.4, PlayerPoints(p, 3))
	assert.Zero(t, PlayerPoints(p, 4))
}

func TestWeekPoints(t *testing.T) {
	players := []models.Player{wk1(1, PositionQB, 20.5), wk1(2, PositionRB, 9.5), player(3, PositionK, nil)}
	assert.InDelta(t, 30.0, WeekPoints(players, 1), 1e-9)
	assert.Zero(t, WeekPoints(players, 2))
}

func TestOptimal_FullRoster(t *testing.T) {
	players := []models.Player{
		wk1(1, PositionQB, 18),
		wk1(2, PositionQB, 25),
		wk1(3, PositionRB, 10),
		wk1(4, PositionRB, 22),
		wk1(5, PositionRB, 15),
		wk1(6, PositionRB, 3),
		wk1(7, PositionWR, 8),
		wk1(8, PositionWR, 30),
		wk1(9, PositionWR, 12),
		wk1(10, PositionTE, 14),
		wk1(11, PositionTE, 6),
		wk1(12, PositionDST, 4),
		wk1(13, PositionK, 9),
	}

	l := Optimal(players, 1)

	bySlot := map[int][]int{}
	for _, s := range l {
		bySlot[s.Slot] = append(bySlot[s.Slot], s.Player.ID)
	}
	assert.Equal(t, []int{2}, bySlot[SlotQB])
	assert.ElementsMatch(t, []int{4, 5}, bySlot[SlotRB])
	assert.ElementsMatch(t, []int{8, 9}, bySlot[SlotWR])
	assert.Equal(t, []int{10}, bySlot[SlotTE])
	assert.Equal(t, []int{12}, bySlot[SlotDST])
	assert.Equal(t, []int{13}, bySlot[SlotK])
	assert.Equal(t, []int{3}, bySlot[SlotFlex])
	assert.InDelta(t, 25+22+15+30+12+14+4+9+10.0, l.Points(), 1e-9)
}

func TestOptimal_MissingPositionOmitsSlot(t *testing.T) {
	players := []models.Player{
		wk1(1, PositionQB, 18),
		wk1(2, PositionRB, 10),
		wk1(3, PositionWR, 11),
	}

	l := Optimal(players, 1)

	require.Len(t, l, 3)
	for _, s := range l {
		assert.NotEqual(t, SlotK, s.Slot)
		assert.NotEqual(t, SlotFlex, s.Slot)
	}
}

func TestOptimal_TiesKeepInputOrder(t *testing.T) {
	players := []models.Player{
		wk1(1, PositionQB, 20),
		wk1(2, PositionQB, 20),
		wk1(3, PositionTE, 5),
		wk1(4, PositionTE, 5),
		wk1(5, PositionTE, 5),
	}

	l := Optimal(players, 1)

	require.Len(t, l, 3)
	assert.Equal(t, 1, l[0].Player.ID)
	assert.Equal(t, SlotTE, l[1].Slot)
	assert.Equal(t, 3, l[1].Player.ID)
	assert.Equal(t, SlotFlex, l[2].Slot)
	assert.Equal(t, 4, l[2].Player.ID)
}

func TestOptimal_MissingStatCountsAsZero(t *testing.T) {
	players := []models.Player{
		player(1, PositionQB, map[int]float64{2: 40}),
		wk1(2, PositionQB, 1),
	}

	l := Optimal(players, 1)

	require.Len(t, l, 1)
	assert.Equal(t, 2, l[0].Player.ID)
}

func TestOptimal_SlotLimitsAndNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	positions := []int{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST}
	limits := map[int]int{SlotQB: 1, SlotRB: 2, SlotWR: 2, SlotTE: 1, SlotK: 1, SlotDST: 1, SlotFlex: 1}

	for round := 0; round < 200; round++ {
		var players []models.Player
		for id := 1; id <= 16; id++ {
			players = append(players, wk1(id, positions[rng.Intn(len(positions))], float64(rng.Intn(30))))
		}

		l := Optimal(players, 1)

		seen := map[int]bool{}
		counts := map[int]int{}
		for _, s := range l {
			assert.False(t, seen[s.Player.ID], "player %d selected twice", s.Player.ID)
			seen[s.Player.ID] = true
			counts[s.Slot]++
		}
		for slot, n := range counts {
			assert.LessOrEqual(t, n, limits[slot])
		}
		assert.LessOrEqual(t, len(l), 9)
	}
}

// bestLegal enumerates every legal assignment of players to the template.
func bestLegal(players []models.Player, week int) float64 {
	var slots [][]int
	for _, req := range StandardTemplate {
		for i := 0; i < req.Count; i++ {
			slots = append(slots, req.AllowedPositions)
		}
	}

	used := make([]bool, len(players))
	var walk func(slot int) float64
	walk = func(slot int) float64 {
		if slot == len(slots) {
			return 0
		}
		best := walk(slot + 1) // leave slot empty
		for i, p := range players {
			if used[i] || !containsInt(slots[slot], p.DefaultPositionID) {
				continue
			}
			used[i] = true
			best = max(best, PlayerPoints(p, week)+walk(slot+1))
			used[i] = false
		}
		return best
	}
	return walk(0)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestOptimal_MatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	positions := []int{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST}

	for round := 0; round < 40; round++ {
		var players []models.Player
		for id := 1; id <= 9; id++ {
			players = append(players, wk1(id, positions[rng.Intn(len(positions))], float64(rng.Intn(25))))
		}

		assert.InDelta(t, bestLegal(players, 1), OptimalPoints(players, 1), 1e-9, "round %d", round)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "D/ST", PositionName(PositionDST))
	assert.Equal(t, "Unknown", PositionName(99))
	assert.Equal(t, "FLEX", SlotName(SlotFlex))
	assert.Equal(t, "Bench", SlotName(SlotBench))
}
