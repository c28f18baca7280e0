package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/montecarlo/internal/report"
	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/pkg/config"
)

// run executes the CLI with args after resetting every flag to its default
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithEnv(t, nil, args...)
}

func runWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SCENARIO_FILE", "")
	t.Setenv("SIM_TRIALS", "")
	t.Setenv("SIM_SEED", "")
	t.Setenv("SIM_MAX_BINS", "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestSimulateRendersReport(t *testing.T) {
	out, err := run(t, "simulate", "--trials", "2000", "--seed", "42", "--bins", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "scenario file: built-in")
	assert.Contains(t, out, "CHGG Monte Carlo (2000 trials)")
	assert.Contains(t, out, "Scenario distribution")
	assert.Contains(t, out, "Percent ROI histogram")
}

func TestSimulateJSONIsReproducible(t *testing.T) {
	decode := func() report.Report {
		out, err := run(t, "simulate", "--trials", "500", "--seed", "7", "--json")
		require.NoError(t, err)

		var rep report.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		return rep
	}

	a, b := decode(), decode()
	assert.Equal(t, uint64(7), a.Seed)
	assert.Equal(t, 500, a.Summary.Trials)
	assert.Equal(t, a.Summary, b.Summary)
	assert.Equal(t, a.Distribution, b.Distribution)
}

func TestSimulateUsesEnvironmentOverrides(t *testing.T) {
	out, err := runWithEnv(t, map[string]string{"SIM_TRIALS": "250", "SIM_SEED": "11"}, "simulate", "--json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, uint64(11), rep.Seed)
	assert.Equal(t, 250, rep.Summary.Trials)

	// flags win over the environment
	out, err = runWithEnv(t, map[string]string{"SIM_TRIALS": "250", "SIM_SEED": "11"},
		"simulate", "--json", "--trials", "120", "--seed", "4")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, uint64(4), rep.Seed)
	assert.Equal(t, 120, rep.Summary.Trials)
}

func TestSimulateRejectsOversizedBins(t *testing.T) {
	_, err := run(t, "simulate", "--trials", "100", "--bins", "1099511627776")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bins")

	_, err = runWithEnv(t, map[string]string{"SIM_MAX_BINS": "5"}, "simulate", "--trials", "100", "--bins", "6")
	require.Error(t, err)

	_, err = run(t, "simulate", "--trials", "100", "--bins", "0")
	require.Error(t, err)
}

func TestSimulateWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.csv")

	out, err := run(t, "simulate", "--trials", "100", "--seed", "3", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "100 trial records written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 101)
	assert.Equal(t, "scenario,price,percent_gain,dollar_gain", lines[0])
}

func TestSimulateUsesFile(t *testing.T) {
	out, err := run(t, "simulate", "--file", "../../../configs/chegg.yaml", "--trials", "100", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "chegg.yaml")
}

func TestSimulateMissingFile(t *testing.T) {
	_, err := run(t, "simulate", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultProb(t *testing.T) {
	out, err := run(t, "default-prob", "--company-yield", "0.2251", "--treasury-yield", "0.0412", "--months", "15")
	require.NoError(t, err)

	assert.Contains(t, out, "Recovery rate")
	assert.Contains(t, out, "20%")
	assert.Contains(t, out, "22.99%")
	assert.Contains(t, out, "weight 0.23")
	assert.Contains(t, out, "15 months")
}

func TestDefaultProbRequiresYields(t *testing.T) {
	_, err := run(t, "default-prob", "--company-yield", "0.1")
	require.Error(t, err)
}

func TestScenariosShow(t *testing.T) {
	out, err := run(t, "scenarios", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "CHGG scenarios (built-in)")
	assert.Contains(t, out, "bankruptcy")
	assert.Contains(t, out, "0.23")
	assert.Contains(t, out, "1.00")
}

func TestScenariosShowYAML(t *testing.T) {
	out, err := run(t, "scenarios", "show", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "ticker: CHGG")
	assert.Contains(t, out, "default_model:")
}

func TestScenariosValidate(t *testing.T) {
	out, err := run(t, "scenarios", "validate", "../../../configs/chegg.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "no warnings")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("meta:\n  ticker: X\nposition:\n  entry_price: 0\n  share_count: 1\n"), 0o644))

	out, err = run(t, "scenarios", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "position.entry_price")
}

func TestApplyOverrides(t *testing.T) {
	f := scenario.Default()
	applyOverrides(f, &config.Config{})
	assert.Equal(t, 100000, f.Simulation.Trials)
	assert.Equal(t, uint64(0), f.Simulation.Seed)

	applyOverrides(f, &config.Config{Simulation: config.SimulationConfig{Trials: 500, Seed: 42}})
	assert.Equal(t, 500, f.Simulation.Trials)
	assert.Equal(t, uint64(42), f.Simulation.Seed)
}

func TestFirstNonZero(t *testing.T) {
	assert.Equal(t, 5, firstNonZero(0, 5, 7))
	assert.Equal(t, 0, firstNonZero(0, 0))
	assert.Equal(t, uint64(9), firstNonZero[uint64](9, 1))
}
