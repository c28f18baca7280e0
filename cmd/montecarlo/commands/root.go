package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/pkg/config"
	"github.com/wonny/montecarlo/pkg/logger"
)

var (
	// Global flags
	scenarioFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Scenario Monte Carlo for a single equity position",
	Long: `Monte Carlo simulation of one equity position under four scenarios
(bankruptcy, buyout, turnaround, stagnation).

Each trial draws a scenario by weight and an exit price from the scenario's
triangular (low, mode, high) valuation range, then records percent and dollar
gain against the entry price.

Usage:
  go run ./cmd/montecarlo [command]

Examples:
  go run ./cmd/montecarlo simulate
  go run ./cmd/montecarlo simulate --file configs/chegg.yaml --trials 50000 --seed 42
  go run ./cmd/montecarlo default-prob --company-yield 0.2251 --treasury-yield 0.0412 --months 15
  go run ./cmd/montecarlo scenarios validate configs/chegg.yaml
  go run ./cmd/montecarlo api`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Ctrl+C cancels a running simulation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&scenarioFile, "file", "f", "", "scenario YAML file (default: SCENARIO_FILE or built-in CHGG position)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads process config and creates the logger
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}

// loadScenario resolves the scenario file: --file, then SCENARIO_FILE, then the built-in default
func loadScenario(cfg *config.Config) (*scenario.File, string, error) {
	path := scenarioFile
	if path == "" {
		path = cfg.ScenarioFile
	}
	if path == "" {
		return scenario.Default(), "built-in", nil
	}

	f, _, err := scenario.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("load %s: %w", path, err)
	}
	return f, path, nil
}

// applyOverrides replaces the file's simulation settings with SIM_TRIALS / SIM_SEED when set
func applyOverrides(f *scenario.File, cfg *config.Config) {
	f.Simulation.Trials = firstNonZero(cfg.Simulation.Trials, f.Simulation.Trials)
	f.Simulation.Seed = firstNonZero(cfg.Simulation.Seed, f.Simulation.Seed)
}
