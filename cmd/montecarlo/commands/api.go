package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/montecarlo/internal/api"
	"github.com/wonny/montecarlo/internal/api/handlers"
	"github.com/wonny/montecarlo/internal/scheduler"
	"github.com/wonny/montecarlo/internal/scheduler/jobs"
	"github.com/wonny/montecarlo/internal/service"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API server for the resolved scenario file.

When REFRESH_ENABLED=true a cron job re-runs the simulation on
REFRESH_SCHEDULE with a fresh seed; the latest report is served from memory.

Endpoints:
  GET  /health                    - Health check
  GET  /api/scenarios             - Scenario file, effective weights, hash
  POST /api/simulations           - Run {trials, seed, bins, include_records}
  GET  /api/simulations/latest    - Report of the last refresh
  GET  /api/default-probability   - ?company_yield=&treasury_yield=&months=
  GET  /api/jobs                  - Refresh job statistics
  GET  /api/jobs/{name}/history   - Latest runs of one job (?limit=)

Example:
  go run ./cmd/montecarlo api
  go run ./cmd/montecarlo api --port 8090 --file configs/chegg.yaml`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default: PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Load scenario file
	f, source, err := loadScenario(cfg)
	if err != nil {
		return err
	}
	applyOverrides(f, cfg)

	log.WithFields(map[string]interface{}{
		"port":     cfg.Port,
		"env":      cfg.Env,
		"scenario": source,
	}).Info("Initializing API server")

	// 3. Create service
	svc, err := service.New(f, log)
	if err != nil {
		return err
	}
	latest := service.NewLatestStore()

	// 4. Create scheduler
	sched := scheduler.New(log, scheduler.WithRetries(cfg.Refresh.Retries, cfg.Refresh.RetryDelay))
	if cfg.Refresh.Enabled {
		refresh := jobs.NewRefreshJob(svc, latest, cfg.Refresh.Schedule, 0, log)
		if err := sched.AddJob(refresh); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		// warm the latest report instead of waiting for the first tick
		result, err := sched.RunJobSync(refresh.Name())
		if err != nil {
			return err
		}
		if !result.Success {
			log.WithField("error", result.Error).Warn("Initial refresh failed; /api/simulations/latest stays empty until the next tick")
		}
	}

	// 5. Create router and server
	router := api.NewRouter(api.Handlers{
		Simulation: handlers.NewSimulationHandler(svc, latest, cfg.API.MaxTrials, cfg.Simulation.MaxBins, log),
		Scenario:   handlers.NewScenarioHandler(svc),
		Financials: handlers.NewFinancialsHandler(),
		Jobs:       handlers.NewJobsHandler(sched),
	}, cfg.API, log)
	server := api.New(cfg, log, router)

	// 6. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	out := NewPrinter(cmd.OutOrStdout())
	out.Success(fmt.Sprintf("Server running on http://localhost:%s", cfg.Port))
	out.Info("Press Ctrl+C to stop")

	// Wait for interrupt signal (cancels cmd.Context) or a startup failure
	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
