package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/montecarlo/internal/financials"
	"github.com/wonny/montecarlo/internal/simulation"
)

// ErrNoRecords is returned when there is nothing to summarise
var ErrNoRecords = errors.New("no trial records")

// Stats describes one distribution of trial outcomes
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P5     float64 `json:"p5"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
}

// Summary aggregates a simulation result
type Summary struct {
	Trials            int     `json:"trials"`
	CostBasis         float64 `json:"cost_basis"`
	ExpectedExitPrice float64 `json:"expected_exit_price"`
	ProbabilityOfLoss float64 `json:"probability_of_loss"`
	PercentGain       Stats   `json:"percent_gain"`
	DollarGain        Stats   `json:"dollar_gain"`
}

// Summarize computes summary statistics over the records of result
func Summarize(result *simulation.Result) (Summary, error) {
	if result == nil || len(result.Records) == 0 {
		return Summary{}, ErrNoRecords
	}

	prices := make([]float64, len(result.Records))
	losses := 0
	for i, rec := range result.Records {
		prices[i] = rec.Price
		if rec.DollarGain < 0 {
			losses++
		}
	}

	meanPrice, err := stats.Mean(prices)
	if err != nil {
		return Summary{}, fmt.Errorf("mean exit price: %w", err)
	}

	percent, err := describe(result.PercentGains())
	if err != nil {
		return Summary{}, fmt.Errorf("percent gain: %w", err)
	}
	dollar, err := describe(result.DollarGains())
	if err != nil {
		return Summary{}, fmt.Errorf("dollar gain: %w", err)
	}

	return Summary{
		Trials:            len(result.Records),
		CostBasis:         financials.CostBasis(result.Position.ShareCount, result.Position.EntryPrice),
		ExpectedExitPrice: financials.RoundCents(meanPrice),
		ProbabilityOfLoss: float64(losses) / float64(len(result.Records)),
		PercentGain:       percent,
		DollarGain:        dollar,
	}, nil
}

func describe(values []float64) (Stats, error) {
	var s Stats
	var err error

	if s.Mean, err = stats.Mean(values); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(values); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(values); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(values); err != nil {
		return s, err
	}

	// sample deviation is undefined for a single trial
	if len(values) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(values); err != nil {
			return s, err
		}
	}

	// empirical quantiles are defined for any non-empty sample
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s.P5 = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	s.P25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.P75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	s.Mean = financials.RoundCents(s.Mean)
	s.StdDev = financials.RoundCents(s.StdDev)
	return s, nil
}
