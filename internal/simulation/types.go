package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/montecarlo/internal/scenario"
)

// Position is the held stake; read-only during a run
type Position struct {
	EntryPrice float64 `json:"entry_price"`
	ShareCount int     `json:"share_count"`
}

// Validate requires a finite entry price > 0 and at least one share
func (p Position) Validate() error {
	if !(p.EntryPrice > 0) || math.IsInf(p.EntryPrice, 0) {
		return fmt.Errorf("%w: entry price must be > 0, got %g", ErrInvalidArgument, p.EntryPrice)
	}
	if p.ShareCount <= 0 {
		return fmt.Errorf("%w: share count must be > 0, got %d", ErrInvalidArgument, p.ShareCount)
	}
	return nil
}

// TrialRecord is the outcome of one trial
type TrialRecord struct {
	Scenario    scenario.Scenario `json:"scenario" csv:"scenario"`
	Price       float64           `json:"price" csv:"price"`
	PercentGain float64           `json:"percent_gain" csv:"percent_gain"`
	DollarGain  float64           `json:"dollar_gain" csv:"dollar_gain"`
}

// Result is one complete simulation run
type Result struct {
	RunID      uuid.UUID     `json:"run_id"`
	RunDate    time.Time     `json:"run_date"`
	Duration   time.Duration `json:"duration"`
	Seed       uint64        `json:"seed"`
	ConfigHash string        `json:"config_hash,omitempty"`
	Position   Position      `json:"position"`
	TrialCount int           `json:"trial_count"`
	Records    []TrialRecord `json:"records"`
}

// Counts returns how many trials landed in each scenario
func (r *Result) Counts() map[scenario.Scenario]int {
	counts := make(map[scenario.Scenario]int)
	for _, rec := range r.Records {
		counts[rec.Scenario]++
	}
	return counts
}

// PercentGains returns the percent gain of every trial in order
func (r *Result) PercentGains() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.PercentGain
	}
	return out
}

// DollarGains returns the dollar gain of every trial in order
func (r *Result) DollarGains() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.DollarGain
	}
	return out
}
