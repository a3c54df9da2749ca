package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/omarshaarawi/leaguedash/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func FormatAwards(awards models.WeekAwards) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏅 *Week %d Awards*\n\n", awards.Week))

	writeAward(&sb, "🔥 Highest Score", awards.HighestScore, "%.2f pts")
	writeAward(&sb, "🧊 Lowest Score", awards.LowestScore, "%.2f pts")
	writeAward(&sb, "🚀 Highest Potential", awards.HighestPotential, "%.2f pts")
	writeAward(&sb, "🪫 Lowest Potential", awards.LowestPotential, "%.2f pts")
	writeAward(&sb, "🧠 Best Managed", awards.BestManaged, "%.2f left on bench")
	writeAward(&sb, "🤡 Worst Managed", awards.WorstManaged, "%.2f left on bench")

	if !awards.HasWinners {
		sb.WriteString("No decided matchups this week.\n")
		return sb.String()
	}
	writeAward(&sb, "💥 Largest Win", awards.LargestWin, "by %.2f")
	writeAward(&sb, "😅 Smallest Win", awards.SmallestWin, "by %.2f")

	return sb.String()
}

func writeAward(sb *strings.Builder, title string, recipients []models.AwardRecipient, valueFormat string) {
	if len(recipients) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("*%s*\n", title))
	for _, r := range recipients {
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", r.TeamName, fmt.Sprintf(valueFormat, r.Value)))
	}
	sb.WriteString("\n")
}

func FormatLuck(luck []models.TeamLuck) string {
	var sb strings.Builder
	sb.WriteString("🍀 *Luck Score*\n\n")
	for i, team := range luck {
		sb.WriteString(fmt.Sprintf("%d. *%s*: %+d\n", i+1, team.TeamName, team.TotalLuck))
	}
	return sb.String()
}

func FormatPowerRatings(power []models.PowerRating) string {
	var sb strings.Builder
	sb.WriteString("⚡ *Power Ratings*\n\n")
	for i, team := range power {
		sb.WriteString(fmt.Sprintf("%d. *%s*: %.2f\n", i+1, team.TeamName, team.Rating))
		sb.WriteString(fmt.Sprintf("   Avg: %.2f | High: %.2f | Low: %.2f\n", team.Average, team.High, team.Low))
	}
	return sb.String()
}

func FormatCoachRatings(coach []models.CoachRating) string {
	var sb strings.Builder
	sb.WriteString("📋 *Coach Ratings*\n\n")
	for i, team := range coach {
		sb.WriteString(fmt.Sprintf("%d. *%s*: %.2f\n", i+1, team.TeamName, team.Rating))
		sb.WriteString(fmt.Sprintf("   Points: %.2f of %.2f possible\n", team.PointsFor, team.OptimalPoints))
	}
	return sb.String()
}

func FormatTeamPerformance(perf []models.TeamPerformance) string {
	var sb strings.Builder
	sb.WriteString("📈 *Team Performance*\n\n")
	for _, team := range perf {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.ExpectedRank, team.TeamName))
		sb.WriteString(fmt.Sprintf("   Expected Wins: %.2f | Actual Wins: %d\n", team.ExpectedWins, team.ActualWins))
		sb.WriteString(fmt.Sprintf("   Actual Rank: %d\n", team.ActualRank))
	}
	return sb.String()
}

func FormatStandings(standings []models.TeamStanding) string {
	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Rank, team.TeamName))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}
	return sb.String()
}

func FormatLineup(l models.TeamLineup) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* Week %d Optimal Lineup\n", l.TeamName, l.Week))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	for _, s := range l.Starters {
		sb.WriteString(fmt.Sprintf("%-5s %s (%s) %.2f\n", s.Slot, s.PlayerName, s.Position, s.Points))
	}
	sb.WriteString(fmt.Sprintf("\nOptimal: %.2f\n", l.OptimalPoints))
	sb.WriteString(fmt.Sprintf("Actual: %.2f\n", l.ActualPoints))
	sb.WriteString(fmt.Sprintf("Left on bench: %.2f\n", l.BenchPoints))
	return sb.String()
}
