package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/montecarlo/internal/financials"
)

// defaultProbCmd represents the default-prob command
var defaultProbCmd = &cobra.Command{
	Use:   "default-prob",
	Short: "Estimate default probability from bond yields",
	Long: `Converts a company's bond yield spread over treasuries into a
probability of default, using a recovery rate bucketed by the company yield:

  yield <= 6%   recovery 55%
  yield <= 10%  recovery 40%
  yield <= 15%  recovery 30%
  yield <= 20%  recovery 25%
  otherwise     recovery 20%

  probability = (company_yield - treasury_yield) / (1 - recovery)

Yields are decimals (0.2251 = 22.51%).

Example:
  go run ./cmd/montecarlo default-prob --company-yield 0.2251 --treasury-yield 0.0412 --months 15`,
	RunE: runDefaultProb,
}

var (
	companyYield  float64
	treasuryYield float64
	timeFrame     int
)

func init() {
	rootCmd.AddCommand(defaultProbCmd)

	defaultProbCmd.Flags().Float64Var(&companyYield, "company-yield", 0, "company bond yield (decimal)")
	defaultProbCmd.Flags().Float64Var(&treasuryYield, "treasury-yield", 0, "treasury yield of matching maturity (decimal)")
	defaultProbCmd.Flags().IntVar(&timeFrame, "months", 12, "bond time frame in months")
	_ = defaultProbCmd.MarkFlagRequired("company-yield")
	_ = defaultProbCmd.MarkFlagRequired("treasury-yield")
}

func runDefaultProb(cmd *cobra.Command, args []string) error {
	if timeFrame <= 0 {
		return fmt.Errorf("--months must be > 0")
	}

	est := financials.EstimateDefault(companyYield, treasuryYield, timeFrame)

	p := NewPrinter(cmd.OutOrStdout())
	p.Header("Default Probability Estimate")
	p.KeyValue("Company yield", fmt.Sprintf("%.2f%%", est.CompanyYield*100), 16)
	p.KeyValue("Treasury yield", fmt.Sprintf("%.2f%%", est.TreasuryYield*100), 16)
	p.KeyValue("Spread", fmt.Sprintf("%.2f%%", est.Spread*100), 16)
	p.KeyValue("Recovery rate", fmt.Sprintf("%.0f%%", est.RecoveryRate*100), 16)
	p.KeyValue("Time frame", fmt.Sprintf("%d months", est.TimeFrameMonths), 16)
	p.Separator()
	p.KeyValue("Default chance", fmt.Sprintf("%.2f%% (weight %.2f)", est.Probability*100, financials.RoundCents(est.Probability)), 16)

	if est.Probability < 0 {
		p.Warning("company yield is below the treasury yield; the estimate is negative")
	}
	return nil
}
