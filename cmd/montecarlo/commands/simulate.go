package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/montecarlo/internal/report"
	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/internal/service"
	"github.com/wonny/montecarlo/internal/simulation"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the Monte Carlo simulation and print a report",
	Long: `Runs the simulation for the scenario file and prints summary statistics,
the scenario distribution, a percent-ROI histogram and a CDF.

Trial count and seed resolve as: flag, then SIM_TRIALS / SIM_SEED, then the
scenario file. Seed 0 picks a random seed; the effective seed is printed so
the run can be repeated.

Example:
  go run ./cmd/montecarlo simulate
  go run ./cmd/montecarlo simulate --trials 100000 --seed 42 --bins 30
  go run ./cmd/montecarlo simulate --csv trials.csv
  go run ./cmd/montecarlo simulate --json > report.json`,
	RunE: runSimulate,
}

var (
	simTrials  int
	simSeed    uint64
	simBins    int
	simCSVPath string
	simJSON    bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simTrials, "trials", "n", 0, "number of trials (0 = SIM_TRIALS or file)")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "random seed (0 = SIM_SEED, file, or random)")
	simulateCmd.Flags().IntVar(&simBins, "bins", report.DefaultBins, "histogram bins")
	simulateCmd.Flags().StringVar(&simCSVPath, "csv", "", "write every trial record to this CSV file")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "print the report as JSON instead of charts")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	if simBins <= 0 || simBins > cfg.Simulation.MaxBins {
		return fmt.Errorf("--bins must be in [1, %d], got %d", cfg.Simulation.MaxBins, simBins)
	}

	f, source, err := loadScenario(cfg)
	if err != nil {
		return err
	}
	applyOverrides(f, cfg)

	svc, err := service.New(f, log)
	if err != nil {
		return err
	}

	req := service.Request{
		Trials: simTrials,
		Seed:   simSeed,
		Bins:   simBins,
	}

	rep, result, err := svc.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if simCSVPath != "" {
		if err := writeCSVFile(simCSVPath, result.Records); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	p := NewPrinter(out)
	p.Info(fmt.Sprintf("scenario file: %s (hash %s)", source, svc.Hash()[:12]))
	for _, w := range scenario.Warn(f) {
		p.Warning(fmt.Sprintf("[%s] %s", w.Code, w.Message))
	}
	fmt.Fprintln(out)

	if err := report.Render(out, rep); err != nil {
		return err
	}

	if simCSVPath != "" {
		fmt.Fprintln(out)
		p.Success(fmt.Sprintf("%d trial records written to %s", len(result.Records), simCSVPath))
	}
	return nil
}

func writeCSVFile(path string, records []simulation.TrialRecord) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteCSV(file, records)
}

func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
