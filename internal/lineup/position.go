package lineup

import (
	"slices"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

// ESPN default position ids.
const (
	PositionQB  = 1
	PositionRB  = 2
	PositionWR  = 3
	PositionTE  = 4
	PositionK   = 5
	PositionDST = 16
)

// ESPN lineup slot ids, as found in eligibleSlots and lineupSlotId.
const (
	SlotQB    = 0
	SlotRB    = 2
	SlotWR    = 4
	SlotTE    = 6
	SlotDST   = 16
	SlotK     = 17
	SlotBench = 20
	SlotIR    = 21
	SlotFlex  = 23
)

// flexResolution is checked in order; the first eligible slot wins.
var flexResolution = []struct {
	slot     int
	position int
}{
	{SlotRB, PositionRB},
	{SlotWR, PositionWR},
	{SlotTE, PositionTE},
}

// ResolvePosition returns the position a player actually plays. Flex-eligible
// players resolve through their eligible slots because defaultPositionId is
// unreliable for them.
func ResolvePosition(p models.Player) int {
	if !slices.Contains(p.EligibleSlots, SlotFlex) {
		return p.DefaultPositionID
	}
	for _, r := range flexResolution {
		if slices.Contains(p.EligibleSlots, r.slot) {
			return r.position
		}
	}
	return p.DefaultPositionID
}

// Normalize returns a copy of p with DefaultPositionID set to the resolved
// position. p itself is left untouched.
func Normalize(p models.Player) models.Player {
	p.DefaultPositionID = ResolvePosition(p)
	return p
}

// RosterPlayers returns the team's rostered players, normalized.
func RosterPlayers(team models.Team) []models.Player {
	players := make([]models.Player, 0, len(team.Roster.Entries))
	for _, entry := range team.Roster.Entries {
		players = append(players, Normalize(entry.PlayerPoolEntry.Player))
	}
	return players
}

func PositionName(positionID int) string {
	positions := map[int]string{
		PositionQB: "QB", PositionRB: "RB", PositionWR: "WR", PositionTE: "TE", PositionK: "K", PositionDST: "D/ST",
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

func SlotName(slotID int) string {
	switch slotID {
	case SlotQB:
		return "QB"
	case SlotRB:
		return "RB"
	case SlotWR:
		return "WR"
	case SlotTE:
		return "TE"
	case SlotDST:
		return "D/ST"
	case SlotK:
		return "K"
	case SlotBench:
		return "Bench"
	case SlotIR:
		return "IR"
	case SlotFlex:
		return "FLEX"
	default:
		return "Unknown"
	}
}
