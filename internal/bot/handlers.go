package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

const helpText = `Available commands:
/awards [week] [year] - Weekly awards
/luck [year] - Luck score
/power [year] - Power ratings
/coach [year] - Coach ratings
/performance [year] - Expected vs actual wins
/lineup <team> [week] - Optimal lineup for a team
/standings [year] - League standings`

// Reports is the set of league reports the bot can render.
type Reports interface {
	WeeklyAwards(ctx context.Context, year, week int) (models.WeekAwards, error)
	Luck(ctx context.Context, year int) ([]models.TeamLuck, error)
	PowerRatings(ctx context.Context, year int) ([]models.PowerRating, error)
	CoachRatings(ctx context.Context, year int) ([]models.CoachRating, error)
	TeamPerformance(ctx context.Context, year int) ([]models.TeamPerformance, error)
	Standings(ctx context.Context, year int) ([]models.TeamStanding, error)
	OptimalLineup(ctx context.Context, year int, teamName string, week int) (models.TeamLineup, error)
}

type Handler struct {
	reports Reports
}

func NewHandler(reports Reports) *Handler {
	return &Handler{reports: reports}
}

// commandArgs is what a command's free-form arguments parse into. A four
// digit number is a season, any other number is a week, and the remaining
// words form a team name.
type commandArgs struct {
	year int
	week int
	team string
}

func parseArgs(args string) commandArgs {
	var parsed commandArgs
	var words []string
	for _, field := range strings.Fields(args) {
		n, err := strconv.Atoi(field)
		switch {
		case err != nil || n <= 0:
			words = append(words, field)
		case len(field) == 4 && parsed.year == 0:
			parsed.year = n
		case len(field) != 4 && parsed.week == 0:
			parsed.week = n
		default:
			words = append(words, field)
		}
	}
	parsed.team = strings.Join(words, " ")
	return parsed
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := parseArgs(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to LeagueDash! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "awards":
		awards, err := h.reports.WeeklyAwards(ctx, args.year, args.week)
		msg.Text = render(err, "Error fetching awards", func() string { return service.FormatAwards(awards) })
	case "luck":
		luck, err := h.reports.Luck(ctx, args.year)
		msg.Text = render(err, "Error fetching luck scores", func() string { return service.FormatLuck(luck) })
	case "power":
		power, err := h.reports.PowerRatings(ctx, args.year)
		msg.Text = render(err, "Error fetching power ratings", func() string { return service.FormatPowerRatings(power) })
	case "coach":
		coach, err := h.reports.CoachRatings(ctx, args.year)
		msg.Text = render(err, "Error fetching coach ratings", func() string { return service.FormatCoachRatings(coach) })
	case "performance":
		perf, err := h.reports.TeamPerformance(ctx, args.year)
		msg.Text = render(err, "Error fetching team performance", func() string { return service.FormatTeamPerformance(perf) })
	case "standings":
		standings, err := h.reports.Standings(ctx, args.year)
		msg.Text = render(err, "Error fetching standings", func() string { return service.FormatStandings(standings) })
	case "lineup":
		h.handleLineup(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleLineup(ctx context.Context, msg *tgbotapi.MessageConfig, args commandArgs) {
	if args.team == "" {
		msg.Text = "Please provide a team name. Usage: /lineup <team name> [week]"
		return
	}
	result, err := h.reports.OptimalLineup(ctx, args.year, args.team, args.week)
	if errors.Is(err, service.ErrTeamNotFound) {
		msg.Text = fmt.Sprintf("🔍 No team found matching '%s'.", args.team)
		return
	}
	msg.Text = render(err, "Error building lineup", func() string { return service.FormatLineup(result) })
}

func render(err error, prefix string, format func() string) string {
	if err != nil {
		return fmt.Sprintf("%s: %v", prefix, err)
	}
	return format()
}
