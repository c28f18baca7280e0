package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/wonny/montecarlo/internal/simulation"
)

const (
	// DefaultBins is the histogram resolution used when none is given
	DefaultBins = 20
	// MaxBins bounds the histogram allocation
	MaxBins = 1000
)

// Report is everything presented about one run
type Report struct {
	RunID        uuid.UUID                `json:"run_id"`
	RunDate      time.Time                `json:"run_date"`
	Ticker       string                   `json:"ticker"`
	Seed         uint64                   `json:"seed"`
	ConfigHash   string                   `json:"config_hash,omitempty"`
	Position     simulation.Position      `json:"position"`
	Summary      Summary                  `json:"summary"`
	Distribution []ScenarioShare          `json:"distribution"`
	Histogram    []Bin                    `json:"histogram"`
	CDF          []CDFPoint               `json:"cdf"`
	Records      []simulation.TrialRecord `json:"records,omitempty"`
}

// Build derives a report from a result. Records are attached only when includeRecords is set.
func Build(ticker string, result *simulation.Result, bins int, includeRecords bool) (*Report, error) {
	summary, err := Summarize(result)
	if err != nil {
		return nil, err
	}

	if bins <= 0 {
		bins = DefaultBins
	}
	gains := result.PercentGains()
	hist, err := Histogram(gains, bins)
	if err != nil {
		return nil, err
	}

	r := &Report{
		RunID:        result.RunID,
		RunDate:      result.RunDate,
		Ticker:       ticker,
		Seed:         result.Seed,
		ConfigHash:   result.ConfigHash,
		Position:     result.Position,
		Summary:      summary,
		Distribution: ScenarioDistribution(result.Records),
		Histogram:    hist,
		CDF:          cdfAt(gains, cdfMarks),
	}
	if includeRecords {
		r.Records = result.Records
	}
	return r, nil
}

// cdfMarks are the percent-gain thresholds reported on the CDF
var cdfMarks = []float64{-100, -50, -25, 0, 25, 50, 100, 150}
