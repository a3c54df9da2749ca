package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/leaguedash/internal/api/espn"
	"github.com/omarshaarawi/leaguedash/internal/api/fantasy"
	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
	"github.com/omarshaarawi/leaguedash/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "leaguedash",
		Short:         "Fantasy football league statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				slog.Debug("No .env file loaded", "error", err)
			}
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newReportCmd())
	return root
}

// app holds the wiring shared by every subcommand.
type app struct {
	cfg      *config.Config
	registry *prometheus.Registry
	service  *service.FantasyService
}

func newApp() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	espnClient := espn.NewClient(cfg.ESPNAPI, espn.WithMetrics(espn.NewMetrics(registry)))
	espnAPI := espn.NewAPI(espnClient)
	fantasyAPI := fantasy.NewAPI(espnAPI)

	repo := memory.NewRepository()
	fantasyService := service.NewFantasyService(fantasyAPI, repo, cfg.ESPNAPI.Year)

	return &app{cfg: cfg, registry: registry, service: fantasyService}, nil
}
