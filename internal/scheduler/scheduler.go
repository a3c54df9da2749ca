package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

const jobTimeout = 2 * time.Minute

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
}

func NewScheduler(fantasyService *service.FantasyService, timezone string, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		sendMessage:    sendMessage,
	}, nil
}

type weeklyJob struct {
	name string
	day  time.Weekday
	task func(context.Context) (string, error)
}

func (s *Scheduler) jobs() []weeklyJob {
	return []weeklyJob{
		{"awards", time.Tuesday, s.awardsReport},
		{"standings", time.Wednesday, s.standingsReport},
		{"luck", time.Thursday, s.luckReport},
		{"coach", time.Friday, s.coachReport},
	}
}

// Start registers every report at 07:30 on its weekday.
func (s *Scheduler) Start() error {
	for _, job := range s.jobs() {
		_, err := s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(job.day), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
			gocron.NewTask(s.run, job.name, job.task),
			gocron.WithName(job.name),
		)
		if err != nil {
			return fmt.Errorf("failed to create %s job: %w", job.name, err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) run(name string, task func(context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := task(ctx)
	if err != nil {
		slog.Error("Failed to build scheduled report", "job", name, "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send scheduled report", "job", name, "error", err)
	}
}

// awardsReport covers ESPN's current matchup period, the same default the
// /awards command uses.
func (s *Scheduler) awardsReport(ctx context.Context) (string, error) {
	awards, err := s.fantasyService.WeeklyAwards(ctx, 0, 0)
	if err != nil {
		return "", err
	}
	return service.FormatAwards(awards), nil
}

func (s *Scheduler) standingsReport(ctx context.Context) (string, error) {
	standings, err := s.fantasyService.Standings(ctx, 0)
	if err != nil {
		return "", err
	}
	power, err := s.fantasyService.PowerRatings(ctx, 0)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(service.FormatStandings(standings))
	sb.WriteString("\n")
	sb.WriteString(service.FormatPowerRatings(power))
	return sb.String(), nil
}

func (s *Scheduler) luckReport(ctx context.Context) (string, error) {
	luck, err := s.fantasyService.Luck(ctx, 0)
	if err != nil {
		return "", err
	}
	return service.FormatLuck(luck), nil
}

func (s *Scheduler) coachReport(ctx context.Context) (string, error) {
	coach, err := s.fantasyService.CoachRatings(ctx, 0)
	if err != nil {
		return "", err
	}
	return service.FormatCoachRatings(coach), nil
}
