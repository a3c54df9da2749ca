package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/omarshaarawi/leaguedash/internal/server"
	"github.com/omarshaarawi/leaguedash/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var metrics = []string{"awards", "luck", "power", "coach", "performance", "lineup", "standings"}

type reportOptions struct {
	year   int
	week   int
	team   string
	format string
}

func newReportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:       "report <metric>",
		Short:     "Print one league report and exit",
		Long:      "Print one league report and exit.\n\nMetrics: " + strings.Join(metrics, ", "),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: metrics,
		Example: `  leaguedash report awards --week 5
  leaguedash report lineup --team "Gridiron Ghosts" --week 3 --format json
  leaguedash report coach --year 2023 --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), a.service, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "season year (defaults to YEAR)")
	cmd.Flags().IntVar(&opts.week, "week", 0, "week for awards and lineup (defaults to the current week)")
	cmd.Flags().StringVar(&opts.team, "team", "", "team name for lineup")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func runReport(ctx context.Context, reports server.Reports, metric string, opts reportOptions, w io.Writer) error {
	var (
		value interface{}
		text  func() string
		err   error
	)

	switch metric {
	case "awards":
		awards, e := reports.WeeklyAwards(ctx, opts.year, opts.week)
		value, text, err = awards, func() string { return service.FormatAwards(awards) }, e
	case "luck":
		luck, e := reports.Luck(ctx, opts.year)
		value, text, err = luck, func() string { return service.FormatLuck(luck) }, e
	case "power":
		power, e := reports.PowerRatings(ctx, opts.year)
		value, text, err = power, func() string { return service.FormatPowerRatings(power) }, e
	case "coach":
		coach, e := reports.CoachRatings(ctx, opts.year)
		value, text, err = coach, func() string { return service.FormatCoachRatings(coach) }, e
	case "performance":
		perf, e := reports.TeamPerformance(ctx, opts.year)
		value, text, err = perf, func() string { return service.FormatTeamPerformance(perf) }, e
	case "standings":
		standings, e := reports.Standings(ctx, opts.year)
		value, text, err = standings, func() string { return service.FormatStandings(standings) }, e
	case "lineup":
		if opts.team == "" {
			return fmt.Errorf("lineup needs --team")
		}
		l, e := reports.OptimalLineup(ctx, opts.year, opts.team, opts.week)
		value, text, err = l, func() string { return service.FormatLineup(l) }, e
	default:
		return fmt.Errorf("unknown metric %q", metric)
	}
	if err != nil {
		return fmt.Errorf("building %s report: %w", metric, err)
	}

	return writeReport(w, opts.format, value, text)
}

func writeReport(w io.Writer, format string, value interface{}, text func() string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := io.WriteString(w, text())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
