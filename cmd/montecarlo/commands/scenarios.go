package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/montecarlo/internal/report"
	"github.com/wonny/montecarlo/internal/scenario"
)

// scenariosCmd represents the scenarios command group
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Inspect and validate scenario files",
}

var scenariosShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective scenario weights and valuation ranges",
	Long: `Prints the scenario table of the resolved scenario file (--file, SCENARIO_FILE
or the built-in position), including weights derived from default_model.

Example:
  go run ./cmd/montecarlo scenarios show
  go run ./cmd/montecarlo scenarios show --yaml`,
	RunE: runScenariosShow,
}

var scenariosValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a scenario file and print its hash and warnings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenariosValidate,
}

var showYAML bool

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosShowCmd, scenariosValidateCmd)

	scenariosShowCmd.Flags().BoolVar(&showYAML, "yaml", false, "print the file as YAML")
}

func runScenariosShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	f, source, err := loadScenario(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showYAML {
		data, err := scenario.Marshal(f)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	weights, err := f.Probabilities()
	if err != nil {
		return err
	}
	valuations, err := f.Valuations()
	if err != nil {
		return err
	}

	p := NewPrinter(out)
	p.Header(fmt.Sprintf("%s scenarios (%s)", f.Meta.Ticker, source))
	p.KeyValue("Position", fmt.Sprintf("%d @ %s", f.Position.ShareCount, report.FormatMoney(f.Position.EntryPrice)), 10)
	if f.DefaultModel != nil {
		p.KeyValue("Derived", fmt.Sprintf("%s weight from %.2f%% yield over %.2f%% treasury",
			f.DefaultModel.Scenario, f.DefaultModel.CompanyYield*100, f.DefaultModel.TreasuryYield*100), 10)
	}
	fmt.Fprintln(out)

	widths := []int{12, 8, 8, 8, 8}
	p.TableHeader([]string{"SCENARIO", "WEIGHT", "LOW", "MODE", "HIGH"}, widths)
	for _, s := range weights.Scenarios() {
		r := valuations[s]
		p.TableRow([]string{
			s.String(),
			fmt.Sprintf("%.2f", weights[s]),
			fmt.Sprintf("%.2f", r.Low),
			fmt.Sprintf("%.2f", r.Mode),
			fmt.Sprintf("%.2f", r.High),
		}, widths)
	}
	p.TableRow([]string{"total", fmt.Sprintf("%.2f", weights.Total()), "", "", ""}, widths)

	return nil
}

func runScenariosValidate(cmd *cobra.Command, args []string) error {
	path := scenarioFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("scenario file path is required")
	}

	p := NewPrinter(cmd.OutOrStdout())

	f, data, err := scenario.Load(path)
	if err != nil {
		p.Error(err.Error())
		return err
	}

	hash, err := scenario.Hash(f)
	if err != nil {
		return err
	}

	p.Success(fmt.Sprintf("%s is valid (%d bytes)", path, len(data)))
	p.KeyValue("Ticker", f.Meta.Ticker, 8)
	p.KeyValue("Hash", hash, 8)

	warnings := scenario.Warn(f)
	for _, w := range warnings {
		p.Warning(fmt.Sprintf("[%s] %s", w.Code, w.Message))
	}
	if len(warnings) == 0 {
		p.Info("no warnings")
	} else {
		p.Info(fmt.Sprintf("%d warning(s): %s", len(warnings), strings.Join(warningCodes(warnings), ", ")))
	}
	return nil
}

func warningCodes(warnings []scenario.Warning) []string {
	codes := make([]string, len(warnings))
	for i, w := range warnings {
		codes[i] = w.Code
	}
	return codes
}
